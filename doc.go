/*
Package uax15 implements Unicode Standard Annex #15, Unicode Normalization
Forms.

Description

From the Unicode Consortium:

This annex describes normalization forms for Unicode text. When
implementations keep strings in a normalized form, they can be assured
that equivalent strings have a unique binary representation.

[...]

Unicode Normalization Forms are formally defined normalizations of
Unicode strings which make it possible to determine whether any two
Unicode strings are equivalent to each other. Depending on the particular
Unicode Normalization Form, that equivalence can either be a canonical
equivalence or a compatibility equivalence.

This package provides the four normalization forms NFD, NFC, NFKD and
NFKC, each with an optional stream-safe variant (UAX#15, section 13),
which limits runs of combining marks to 30 by inserting
U+034F COMBINING GRAPHEME JOINER.

Typical Usage

Normalization is a lazy transform over an io.RuneReader. Every call to
Next() pulls as much input as needed to produce the next rune.

	it := uax15.ToNFC(strings.NewReader("á"))
	for it.Next() {
	    r := it.Rune()      // => 'á'
	    …
	}
	if err := it.Err(); err != nil { … }

Iterators are io.RuneReaders themselves, so transforms may be chained.
For small strings there are shortcuts

	s := uax15.NFKC.String("ﬁ")                // => "fi"
	t := uax15.NFC.StreamSafe().String(input)

and byte-oriented clients will find a transform.Transformer for each form.

Attention

The character property tables are read-only and shared by all
iterators. Iterators themselves are not safe for concurrent use.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package uax15

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax15/ucd"
)

// tracer traces to uax15 .
func tracer() tracing.Trace {
	return tracing.Select("uax15")
}

// Version is the Unicode version this package conforms to.
const Version = ucd.Version

// Stream-safe text format constants (UAX#15, section 13), valid for
// Unicode 15.0.0.
const (
	// MaxNonStarters is the maximum number of consecutive non-starters in
	// stream-safe text.
	MaxNonStarters = 30
	// GraphemeJoiner is inserted to break up longer runs of non-starters.
	GraphemeJoiner = '\u034F'
)

// Errors reported by iterators when reading from their source.
var (
	ErrInvalidUTF8 = errors.New("uax15: invalid UTF-8 input")
	ErrInvalidRune = errors.New("uax15: input is not a Unicode scalar value")
)
