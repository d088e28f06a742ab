/*
Command uaxnorm normalizes text to one of the Unicode normalization forms.

Usage

	uaxnorm [flags] [file ...]

Input is read from the files given, or from stdin if there are none, and
the normalized text is written to stdout.

	echo '1E0A 0323' | uaxnorm --form NFD --codepoints
	=> 0044 0323 0307

With --codepoints, input and output are lines of blank-separated hex
code-points, the format of the UCD test files. With --check, nothing is
written; uaxnorm reports for every input whether it is already normalized,
and exits with status 1 if one of them is not.

Configuration

Flags may as well be set from a configuration file (--config), using the
flag names as keys. The file may also select a tracing adapter (key
"tracing") and trace levels (key "tracelevel.root").

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uax15.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("uax15.cmd")
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errNotNormalized) {
			fmt.Fprintf(os.Stderr, "uaxnorm: %v\n", err)
		}
		os.Exit(1)
	}
}
