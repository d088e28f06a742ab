/*
Package ucd provides the character properties needed for Unicode
normalization: canonical combining classes, decomposition mappings,
canonical composition pairs and the composition exclusion set.

The data is taken from the Unicode Character Database as compiled into
golang.org/x/text/unicode/norm. Per-rune properties are queried directly.
The tables for canonical composition (which x/text does not export) are
derived from the decomposition data once, on first use.

Attention

Deriving the composition tables walks the whole code space. Clients which
want to control the point in time this happens may call

	ucd.Setup()

beforehand. Otherwise setup is done behind the scenes. After setup all
tables are read-only and safe for concurrent use.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ucd

import (
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

// tracer traces to uax15.ucd .
func tracer() tracing.Trace {
	return tracing.Select("uax15.ucd")
}

// Version is the Unicode version of the character data.
const Version = norm.Version
