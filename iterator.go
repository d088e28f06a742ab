package uax15

import (
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// Iterator is a lazy normalization transform over a source of runes.
// Each call to Next pulls as many runes from the source as are needed to
// produce the next rune of the normalized text, but no more.
//
// Iterators implement io.RuneReader and may therefore be chained, for
// example to produce stream-safe NFC from the output of a custom filter.
// Iterators are forward-only; to normalize another text, re-initialize
// an iterator with Init.
type Iterator struct {
	form  Form
	bound streamSafe
	dec   decomposer
	rec   recomposer
	out   io.RuneReader // last stage of the pipeline
	r     rune          // current rune
	err   error         // first non-EOF error
	done  bool
}

func newIterator(f Form, src io.RuneReader) *Iterator {
	it := &Iterator{form: f}
	it.Init(src)
	return it
}

// Init initializes an iterator with an io.RuneReader to read from. it is
// either a newly created iterator or one already in use, which will drop
// any buffered state.
func (it *Iterator) Init(src io.RuneReader) {
	if src == nil {
		src = strings.NewReader("")
	}
	it.r, it.err, it.done = 0, nil, false
	if it.form.IsStreamSafe() {
		it.bound.init(src)
		src = &it.bound
	}
	if it.form.base() != identity {
		it.dec.init(src, it.form.kind())
		src = &it.dec
		if it.form.IsComposing() {
			it.rec.init(src)
			src = &it.rec
		}
	}
	it.out = src
}

// Form returns the normalization form this iterator produces.
func (it *Iterator) Form() Form {
	return it.form
}

// Next advances the iterator to the next rune, which will then be available
// through Rune(). It returns false when the iteration stops, either by
// reaching the end of the input or an error. After Next() returns false,
// Err() will return any error that occurred, except for io.EOF.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	r, _, err := it.out.ReadRune()
	if err != nil {
		it.done = true
		if err != io.EOF {
			it.err = err
			tracer().Errorf("%s: %v", it.form.Name(), err)
		}
		return false
	}
	it.r = r
	return true
}

// Rune returns the most recent rune produced by a call to Next.
func (it *Iterator) Rune() rune {
	return it.r
}

// Err returns the first non-EOF error that was encountered by the iterator.
func (it *Iterator) Err() error {
	return it.err
}

// ReadRune is part of interface io.RuneReader. It returns io.EOF at the
// end of input, and the error from Err() otherwise.
func (it *Iterator) ReadRune() (rune, int, error) {
	if it.Next() {
		return it.r, utf8.RuneLen(it.r), nil
	}
	if it.err != nil {
		return 0, 0, it.err
	}
	return 0, 0, io.EOF
}

// All returns the remaining runes of the iteration as a sequence.
// Clients should check Err() after the sequence is exhausted.
func (it *Iterator) All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for it.Next() {
			if !yield(it.r) {
				return
			}
		}
	}
}

// --- Sources ---------------------------------------------------------------

// runeSlice is an io.RuneReader over a slice of runes.
type runeSlice struct {
	runes []rune
	pos   int
}

// FromRunes returns an io.RuneReader reading from rs.
func FromRunes(rs []rune) io.RuneReader {
	return &runeSlice{runes: rs}
}

func (rs *runeSlice) ReadRune() (rune, int, error) {
	if rs.pos >= len(rs.runes) {
		return 0, 0, io.EOF
	}
	r := rs.runes[rs.pos]
	rs.pos++
	return r, utf8.RuneLen(r), nil
}

// replacing wraps a rune reader on UTF-8 data and replaces invalid bytes by
// U+FFFD, the same way a range loop over a Go string does.
type replacing struct {
	io.RuneReader
}

func (rr replacing) ReadRune() (rune, int, error) {
	r, size, err := rr.RuneReader.ReadRune()
	if err == nil && r == utf8.RuneError && size == 1 {
		size = utf8.RuneLen(utf8.RuneError)
	}
	return r, size, err
}
