package uax15

import (
	"io"
	"unicode/utf8"

	"github.com/npillmayer/uax15/ucd"
)

// streamSafe is a lazy transform to the Stream-Safe Text Format
// (UAX#15, section 13). It inserts a GraphemeJoiner wherever a rune would
// extend a run of non-starters beyond MaxNonStarters. Counting is done on
// compatibility decompositions, which makes the output stream-safe for
// every normalization form.
type streamSafe struct {
	src        io.RuneReader
	count      int // non-starters since the last starter or joiner
	pending    rune
	hasPending bool // pending has been held back for a joiner
}

func (s *streamSafe) init(src io.RuneReader) {
	s.src = src
	s.count = 0
	s.hasPending = false
}

// ReadRune is part of interface io.RuneReader.
func (s *streamSafe) ReadRune() (rune, int, error) {
	var r rune
	if s.hasPending {
		r, s.hasPending = s.pending, false
	} else {
		var err error
		if r, err = readRune(s.src); err != nil {
			return 0, 0, err
		}
	}
	if s.step(r) {
		s.pending, s.hasPending = r, true
		tracer().Debugf("stream-safe: joiner inserted before %#U", r)
		return GraphemeJoiner, utf8.RuneLen(GraphemeJoiner), nil
	}
	return r, utf8.RuneLen(r), nil
}

// step counts r. It returns true if a joiner has to go before r; the
// counter is reset then, and r has still to be counted again.
func (s *streamSafe) step(r rune) bool {
	lead, trail, n := ucd.NonStarterCounts(r)
	if s.count+lead > MaxNonStarters {
		s.count = 0
		return true
	}
	if lead == n { // r consists of non-starters only
		s.count += n
	} else {
		s.count = trail
	}
	return false
}

// IsStreamSafe is true if s contains no run of more than MaxNonStarters
// non-starters, counted in NFKD.
func IsStreamSafe(s string) bool {
	var counter streamSafe
	for _, r := range s {
		if counter.step(r) {
			return false
		}
	}
	return true
}
