package uax15

import (
	"unicode"

	"github.com/npillmayer/uax15/hangul"
	"github.com/npillmayer/uax15/ucd"
)

// CombiningClass returns the canonical combining class of r. A class of 0
// marks r as a starter.
func CombiningClass(r rune) uint8 {
	return ucd.CombiningClass(r)
}

// IsCombiningMark is true for runes of general category Mark (Mn, Mc, Me).
// This is different from having a non-zero combining class: many marks are
// starters.
func IsCombiningMark(r rune) bool {
	if r < 0x0300 {
		return false
	}
	return unicode.Is(unicode.M, r)
}

// Compose returns the canonical composite of the pair (a, b), if one exists.
// Hangul LV and LVT syllables are composed arithmetically, all other pairs
// are looked up in the composition table. Compose never yields a
// composition-excluded rune.
func Compose(a, b rune) (rune, bool) {
	if c, ok := hangul.Compose(a, b); ok {
		return c, true
	}
	return ucd.Compose(a, b)
}

// DecomposeCanonical calls emit for each rune of the full canonical
// decomposition of r, in mapping order. Runes without a decomposition are
// emitted unchanged.
func DecomposeCanonical(r rune, emit func(rune)) {
	decompose(r, ucd.Canonical, emit)
}

// DecomposeCompatible calls emit for each rune of the full compatibility
// decomposition of r, in mapping order. If r has no compatibility mapping,
// its canonical decomposition is used.
func DecomposeCompatible(r rune, emit func(rune)) {
	decompose(r, ucd.Compatibility, emit)
}
