package uax15

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/npillmayer/uax15/ucd"
	"golang.org/x/text/transform"
)

// Form implements transform.Transformer.
var _ transform.Transformer = NFC

// Reset is part of interface transform.Transformer. Forms carry no state.
func (f Form) Reset() {}

// Transform is part of interface transform.Transformer. It normalizes UTF-8
// text from src to dst.
//
// Input is normalized segment by segment, a segment starting at a rune which
// never interacts with the text before it. For stream-safe forms a segment
// also ends where a GraphemeJoiner has to be inserted, which limits segments
// to MaxNonStarters+1 runes. Unless atEOF is set, the last segment of src is
// held back, as more input might extend it. A segment has to fit into dst as
// a whole. Invalid UTF-8 results in ErrInvalidUTF8.
//
// For the unbounded forms a segment may grow beyond any buffer size of a
// transform.Reader or transform.Writer; use Form.Reader and Form.Writer
// instead, which do not have this restriction.
func (f Form) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var rd bytes.Reader
	it := borrowIterator(f, nil)
	defer it.releaseIntoPool()
	for nSrc < len(src) {
		n, joiner := nextSegment(src[nSrc:], f)
		if !atEOF && nSrc+n == len(src) && !joiner {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if n == 1 && src[nSrc] < utf8.RuneSelf && !joiner { // ASCII is invariant
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = src[nSrc]
			nDst, nSrc = nDst+1, nSrc+1
			continue
		}
		rd.Reset(src[nSrc : nSrc+n])
		it.Init(&rd)
		w := nDst
		for it.Next() {
			r := it.Rune()
			if w+utf8.RuneLen(r) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			w += utf8.EncodeRune(dst[w:], r)
		}
		if it.Err() != nil {
			return nDst, nSrc, it.Err()
		}
		if joiner {
			if w+utf8.RuneLen(GraphemeJoiner) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			w += utf8.EncodeRune(dst[w:], GraphemeJoiner)
		}
		nDst, nSrc = w, nSrc+n
	}
	return nDst, nSrc, nil
}

// nextSegment returns the length of the first segment in b. For stream-safe
// forms, joiner tells if a GraphemeJoiner has to follow the segment.
//
// Every segment starts with a fresh non-starter count. This is correct as
// segments start either after a joiner or at a rune without leading
// non-starters.
func nextSegment(b []byte, f Form) (n int, joiner bool) {
	kind, bounded := f.kind(), f.IsStreamSafe()
	var counter streamSafe
	r, i := utf8.DecodeRune(b)
	if bounded {
		counter.step(r)
	}
	for i < len(b) {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 { // incomplete or invalid
			i += size
			continue
		}
		if bounded && counter.step(r) {
			return i, true
		}
		if isSegmentStart(r, kind, bounded) {
			return i, false
		}
		i += size
	}
	return len(b), false
}

func isSegmentStart(r rune, kind ucd.Kind, bounded bool) bool {
	if !ucd.IsBoundaryBefore(r, kind) {
		return false
	}
	if bounded {
		lead, _, _ := ucd.NonStarterCounts(r)
		return lead == 0
	}
	return true
}

// --- Streams ---------------------------------------------------------------

// Reader returns a reader delivering the normalized form of the text read
// from r. Invalid UTF-8 results in ErrInvalidUTF8.
func (f Form) Reader(r io.Reader) io.Reader {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &reader{it: f.Iterate(rr)}
}

type reader struct {
	it   *Iterator
	rest []byte // tail of a rune which did not fit into the caller's buffer
	enc  [utf8.UTFMax]byte
}

func (rd *reader) Read(p []byte) (int, error) {
	n := copy(p, rd.rest)
	rd.rest = rd.rest[n:]
	for n < len(p) && len(rd.rest) == 0 {
		if !rd.it.Next() {
			if n > 0 {
				return n, nil
			}
			if err := rd.it.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		r := rd.it.Rune()
		if utf8.RuneLen(r) <= len(p)-n {
			n += utf8.EncodeRune(p[n:], r)
			continue
		}
		m := utf8.EncodeRune(rd.enc[:], r)
		k := copy(p[n:], rd.enc[:m])
		rd.rest = rd.enc[k:m]
		n += k
	}
	return n, nil
}

// Writer returns a writer which normalizes text before writing it to w.
// Clients must call Close to flush the last segment. Close does not close w.
//
// Text is held back up to the start of the last segment written. For the
// stream-safe forms this is at most MaxNonStarters+1 runes.
func (f Form) Writer(w io.Writer) io.WriteCloser {
	return &writer{form: f, w: w}
}

type writer struct {
	form Form
	w    io.Writer
	src  []byte // input not yet normalized, starting at a segment
	dst  []byte
}

func (wr *writer) Write(p []byte) (int, error) {
	wr.src = append(wr.src, p...)
	if err := wr.flush(false); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (wr *writer) Close() error {
	return wr.flush(true)
}

// flush normalizes as much of the pending input as possible. dst grows as
// long as a segment does not fit into it.
func (wr *writer) flush(atEOF bool) error {
	if wr.dst == nil {
		wr.dst = make([]byte, 4096)
	}
	for len(wr.src) > 0 {
		nDst, nSrc, err := wr.form.Transform(wr.dst, wr.src, atEOF)
		if nDst > 0 {
			if _, werr := wr.w.Write(wr.dst[:nDst]); werr != nil {
				return werr
			}
		}
		wr.src = wr.src[:copy(wr.src, wr.src[nSrc:])]
		switch {
		case err == nil, errors.Is(err, transform.ErrShortSrc):
			return nil
		case errors.Is(err, transform.ErrShortDst):
			if nSrc == 0 {
				wr.dst = make([]byte, 2*len(wr.dst))
			}
		default:
			return err
		}
	}
	return nil
}
