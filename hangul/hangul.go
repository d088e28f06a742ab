/*
Package hangul implements the algorithmic decomposition and composition of
Hangul syllables, as described in section 3.12 of the Unicode Standard
("Conjoining Jamo Behavior").

Precomposed Hangul syllables are not listed in the Unicode character
database with individual decomposition mappings. Instead, every syllable
maps arithmetically to a leading consonant (L), a vowel (V) and an
optional trailing consonant (T):

	S = SBase + (LIndex * VCount + VIndex) * TCount + TIndex

All jamo produced and consumed by this package are starters
(canonical combining class 0).

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hangul

// Constants of the Hangul syllable algorithm.
const (
	SBase  = 0xAC00
	LBase  = 0x1100
	VBase  = 0x1161
	TBase  = 0x11A7
	LCount = 19
	VCount = 21
	TCount = 28
	NCount = VCount * TCount // 588
	SCount = LCount * NCount // 11172
)

// IsSyllable is true for precomposed Hangul syllables U+AC00 … U+D7A3.
func IsSyllable(r rune) bool {
	return r >= SBase && r < SBase+SCount
}

// IsLV is true for syllables without a trailing consonant.
func IsLV(r rune) bool {
	return IsSyllable(r) && (r-SBase)%TCount == 0
}

// IsL is true for leading consonants (choseong) taking part in composition.
func IsL(r rune) bool {
	return r >= LBase && r < LBase+LCount
}

// IsV is true for vowels (jungseong) taking part in composition.
func IsV(r rune) bool {
	return r >= VBase && r < VBase+VCount
}

// IsT is true for trailing consonants (jongseong) taking part in composition.
// TBase itself is not a jamo and is excluded.
func IsT(r rune) bool {
	return r > TBase && r < TBase+TCount
}

// Decompose calls emit with the jamo of syllable s, in order L, V and
// optionally T. If s is not a precomposed syllable, Decompose returns false
// and emit is never called.
func Decompose(s rune, emit func(rune)) bool {
	if !IsSyllable(s) {
		return false
	}
	sindex := s - SBase
	emit(LBase + sindex/NCount)
	emit(VBase + (sindex%NCount)/TCount)
	if t := sindex % TCount; t > 0 {
		emit(TBase + t)
	}
	return true
}

// Length returns the number of jamo a syllable decomposes into (2 or 3), or
// 0 if s is not a precomposed syllable.
func Length(s rune) int {
	if !IsSyllable(s) {
		return 0
	}
	if (s-SBase)%TCount == 0 {
		return 2
	}
	return 3
}

// Compose combines L+V into an LV syllable and LV+T into an LVT syllable.
// For all other pairs Compose returns false.
func Compose(a, b rune) (rune, bool) {
	switch {
	case IsL(a) && IsV(b):
		lindex := a - LBase
		vindex := b - VBase
		return SBase + (lindex*VCount+vindex)*TCount, true
	case IsLV(a) && IsT(b):
		return a + (b - TBase), true
	}
	return 0, false
}
