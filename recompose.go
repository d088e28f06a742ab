package uax15

import (
	"io"
	"unicode/utf8"
)

// States of a recomposer.
const (
	composing = iota // reading input, combining into the composee
	purging          // a starter was blocked: flush buffered non-starters
	finishing        // input is exhausted: flush buffered non-starters
)

// recomposer is a lazy transform to NFC or NFKC. Its source must deliver
// decomposed runes in canonical order.
//
// The composee is the last starter seen. Non-starters which did not
// combine with it are buffered behind it, lastCCC tracking the class of
// the most recent one. A non-starter whose class is not greater than
// lastCCC is blocked from the composee.
type recomposer struct {
	src         io.RuneReader
	state       int
	buf         []rune // non-starters which did not combine
	next        int    // next rune of buf to deliver while purging or finishing
	composee    rune
	hasComposee bool
	lastCCC     int // -1 if buf is empty
	err         error
}

func (c *recomposer) init(src io.RuneReader) {
	c.src = src
	c.state = composing
	c.buf = c.buf[:0]
	c.next = 0
	c.hasComposee = false
	c.lastCCC = -1
	c.err = nil
}

// ReadRune is part of interface io.RuneReader.
func (c *recomposer) ReadRune() (rune, int, error) {
	for {
		switch c.state {
		case composing:
			r, _, err := c.src.ReadRune()
			if err != nil {
				c.err = err
				c.state, c.next = finishing, 0
				if c.hasComposee {
					c.hasComposee = false
					return c.composee, utf8.RuneLen(c.composee), nil
				}
				continue
			}
			if k, ok := c.compose(r); ok {
				return k, utf8.RuneLen(k), nil
			}
		case purging:
			if c.next < len(c.buf) {
				r := c.buf[c.next]
				c.next++
				return r, utf8.RuneLen(r), nil
			}
			c.buf = c.buf[:0]
			c.state = composing
		case finishing:
			if c.next < len(c.buf) {
				r := c.buf[c.next]
				c.next++
				return r, utf8.RuneLen(r), nil
			}
			c.buf = c.buf[:0]
			return 0, 0, c.err
		}
	}
}

// compose feeds r into the composition. If a rune is ready for output,
// it is returned together with true.
func (c *recomposer) compose(r rune) (rune, bool) {
	ccc := int(CombiningClass(r))
	if !c.hasComposee {
		if ccc != 0 { // non-starter at start of text
			return r, true
		}
		c.composee, c.hasComposee = r, true
		return 0, false
	}
	if c.lastCCC < 0 { // r is adjacent to the composee
		if k, ok := Compose(c.composee, r); ok {
			c.composee = k
			return 0, false
		}
		if ccc == 0 {
			k := c.composee
			c.composee = r
			return k, true
		}
		c.buf = append(c.buf, r)
		c.lastCCC = ccc
		return 0, false
	}
	if c.lastCCC >= ccc { // blocked
		if ccc == 0 {
			k := c.composee
			c.composee = r
			c.lastCCC = -1
			c.state, c.next = purging, 0
			return k, true
		}
		c.buf = append(c.buf, r)
		c.lastCCC = ccc
		return 0, false
	}
	if k, ok := Compose(c.composee, r); ok {
		c.composee = k
		return 0, false
	}
	c.buf = append(c.buf, r)
	c.lastCCC = ccc
	return 0, false
}
