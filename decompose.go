package uax15

import (
	"io"
	"unicode/utf8"

	"github.com/npillmayer/uax15/hangul"
	"github.com/npillmayer/uax15/ucd"
)

// decompose expands r into its full decomposition of the given kind and
// calls emit for every resulting rune. Mappings are re-expanded from a
// work-list until no rune on it has a further mapping.
func decompose(r rune, kind ucd.Kind, emit func(rune)) {
	if r < 0xA0 {
		emit(r)
		return
	}
	if hangul.Decompose(r, emit) {
		return
	}
	var stackbuf [2 * ucd.MaxDecompositionLength]rune
	var mapbuf [ucd.MaxDecompositionLength]rune
	stack := append(stackbuf[:0], r)
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		m, ok := ucd.AppendDecomposition(mapbuf[:0], c, kind)
		if !ok {
			if !hangul.Decompose(c, emit) {
				emit(c)
			}
			continue
		}
		for i := len(m) - 1; i >= 0; i-- { // leftmost rune on top
			stack = append(stack, m[i])
		}
	}
}

// entry is a buffered rune together with its combining class.
type entry struct {
	r   rune
	ccc uint8
}

// decomposer is a lazy transform to NFD or NFKD.
//
// Decomposed runes are collected in buf. Everything up to and including
// the most recent starter is in canonical order and ready to be read; the
// non-starters behind it are pending until the next starter (or the end
// of input) lets us sort them.
type decomposer struct {
	src   io.RuneReader
	kind  ucd.Kind
	buf   []entry
	ready int        // buf[:ready] is in canonical order
	pos   int        // next entry of buf to read
	err   error      // sticky error of src, io.EOF included
	emit  func(rune) // d.push, bound once
}

func (d *decomposer) init(src io.RuneReader, kind ucd.Kind) {
	d.src = src
	d.kind = kind
	d.buf = d.buf[:0]
	d.ready, d.pos = 0, 0
	d.err = nil
	if d.emit == nil {
		d.emit = d.push
	}
}

func (d *decomposer) push(r rune) {
	ccc := ucd.CombiningClass(r)
	if ccc == 0 {
		canonicalOrder(d.buf[d.ready:])
		d.buf = append(d.buf, entry{r: r})
		d.ready = len(d.buf)
		return
	}
	d.buf = append(d.buf, entry{r: r, ccc: ccc})
}

// ReadRune is part of interface io.RuneReader.
func (d *decomposer) ReadRune() (rune, int, error) {
	for d.pos == d.ready {
		if d.pos > 0 { // drop entries already read
			n := copy(d.buf, d.buf[d.pos:])
			d.buf = d.buf[:n]
			d.ready, d.pos = 0, 0
		}
		if d.err != nil {
			if len(d.buf) == 0 {
				return 0, 0, d.err
			}
			canonicalOrder(d.buf)
			d.ready = len(d.buf)
			break
		}
		r, err := readRune(d.src)
		if err != nil {
			d.err = err
			continue
		}
		decompose(r, d.kind, d.emit)
	}
	e := d.buf[d.pos]
	d.pos++
	return e.r, utf8.RuneLen(e.r), nil
}

// readRune reads the next rune from src and rejects anything which is not
// a Unicode scalar value.
func readRune(src io.RuneReader) (rune, error) {
	r, size, err := src.ReadRune()
	if err != nil {
		return 0, err
	}
	if r == utf8.RuneError && size == 1 {
		return 0, ErrInvalidUTF8
	}
	if !utf8.ValidRune(r) {
		return 0, ErrInvalidRune
	}
	return r, nil
}
