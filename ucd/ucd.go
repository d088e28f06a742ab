package ucd

import (
	"unicode/utf8"

	"github.com/npillmayer/uax15/hangul"
	"golang.org/x/text/unicode/norm"
)

// Kind selects between canonical and compatibility decomposition mappings.
type Kind uint8

const (
	Canonical     Kind = iota // canonical mappings only
	Compatibility             // compatibility mappings, falling back to canonical ones
)

func (k Kind) String() string {
	if k == Compatibility {
		return "compatibility"
	}
	return "canonical"
}

// MaxDecompositionLength is the length of the longest full decomposition of
// any single rune (U+FDFA, compatibility).
const MaxDecompositionLength = 18

// properties looks up the x/text properties of r. NFC and NFD share
// a trie, as do NFKC and NFKD.
func properties(r rune, kind Kind) norm.Properties {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	if kind == Compatibility {
		return norm.NFKD.Properties(buf[:n])
	}
	return norm.NFD.Properties(buf[:n])
}

// CombiningClass returns the canonical combining class of r.
// Runes not listed in the database have class 0.
func CombiningClass(r rune) uint8 {
	if r < 0x0300 {
		return 0
	}
	return properties(r, Canonical).CCC()
}

// AppendDecomposition appends the full decomposition mapping of r to dst.
// If r has no mapping of the requested kind, dst is returned unchanged
// together with false. A compatibility lookup for a rune with only a
// canonical mapping yields the canonical mapping.
//
// Hangul syllables have no listed mappings; see package hangul.
func AppendDecomposition(dst []rune, r rune, kind Kind) ([]rune, bool) {
	if r < 0xA0 || (kind == Canonical && r < 0xC0) {
		return dst, false
	}
	d := properties(r, kind).Decomposition()
	if d == nil && kind == Compatibility {
		d = properties(r, Canonical).Decomposition()
	}
	if d == nil {
		return dst, false
	}
	for len(d) > 0 {
		c, n := utf8.DecodeRune(d)
		dst = append(dst, c)
		d = d[n:]
	}
	return dst, true
}

// Decomposition returns the full decomposition mapping of r, or nil.
func Decomposition(r rune, kind Kind) []rune {
	d, _ := AppendDecomposition(nil, r, kind)
	return d
}

// NonStarterCounts classifies r by its full compatibility decomposition:
// the number of leading and trailing non-starters and the length of the
// decomposition. A rune without a mapping counts as a decomposition of
// length 1. If all runes of the decomposition are non-starters, then
// lead == trail == length.
func NonStarterCounts(r rune) (lead, trail, length int) {
	if r < 0xA0 {
		return 0, 0, 1
	}
	if n := hangul.Length(r); n > 0 {
		return 0, 0, n
	}
	var buf [MaxDecompositionLength]rune
	d, ok := AppendDecomposition(buf[:0], r, Compatibility)
	if !ok {
		d = append(d, r)
	}
	for lead < len(d) && CombiningClass(d[lead]) != 0 {
		lead++
	}
	if lead == len(d) {
		return lead, lead, lead
	}
	for trail < len(d) && CombiningClass(d[len(d)-1-trail]) != 0 {
		trail++
	}
	return lead, trail, len(d)
}

// IsBoundaryBefore is true if r starts a new normalization segment: it is
// a starter (after decomposition of the given kind) and never combines
// with a preceding rune. Text may be normalized independently on either
// side of such a rune.
func IsBoundaryBefore(r rune, kind Kind) bool {
	if r < 0x0300 {
		return true
	}
	return properties(r, kind).BoundaryBefore()
}
