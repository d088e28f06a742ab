package ucd

import (
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/lists/arraylist"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/rangetable"
)

var (
	setupOnce    sync.Once
	compositions map[uint64]rune     // (starter, combining) -> primary composite
	exclusions   *unicode.RangeTable // Full_Composition_Exclusion
)

// Setup derives the composition tables. It is safe to call Setup more than
// once, and from concurrent goroutines; only the first call does any work.
func Setup() {
	setupOnce.Do(setupTables)
}

func pairKey(a, b rune) uint64 {
	return uint64(uint32(a))<<32 | uint64(uint32(b))
}

// setupTables walks all code points with a canonical decomposition. A rune
// which does not survive NFC is composition-excluded; every other one is a
// primary composite and gets a pair entry.
func setupTables() {
	excluded := arraylist.New()
	composites := arraylist.New()
	for r := rune(0xC0); r <= unicode.MaxRune; r++ {
		if r == 0xD800 {
			r = 0xDFFF // skip surrogates
			continue
		}
		if properties(r, Canonical).Decomposition() == nil {
			continue
		}
		if s := string(r); norm.NFC.String(s) != s {
			excluded.Add(r)
		} else {
			composites.Add(r)
		}
	}
	exclusions = rangetable.New(runesOf(excluded)...)
	compositions = make(map[uint64]rune, composites.Size())
	composites.Each(func(_ int, v interface{}) {
		c := v.(rune)
		first, second, ok := primaryPair(c)
		if !ok {
			tracer().Errorf("no composition pair found for %#U", c)
			return
		}
		compositions[pairKey(first, second)] = c
	})
	tracer().Infof("Unicode %s: %d composition pairs, %d composition exclusions",
		Version, len(compositions), excluded.Size())
}

func runesOf(list *arraylist.List) []rune {
	runes := make([]rune, 0, list.Size())
	it := list.Iterator()
	for it.Next() {
		runes = append(runes, it.Value().(rune))
	}
	return runes
}

// primaryPair finds the one-level canonical mapping of a primary composite c:
// a starter (itself in NFC) and a single combining rune. The full
// decomposition of c is canonically ordered, so the combining rune is
// usually its last element. Should a mark have been moved by reordering,
// earlier positions are tried, too.
func primaryPair(c rune) (rune, rune, bool) {
	var buf [MaxDecompositionLength]rune
	full, _ := AppendDecomposition(buf[:0], c, Canonical)
	nfd := string(full)
	rest := make([]rune, 0, len(full))
	for i := len(full) - 1; i >= 1; i-- {
		rest = append(append(rest[:0], full[:i]...), full[i+1:]...)
		composed := norm.NFC.String(string(rest))
		first, size := utf8.DecodeRuneInString(composed)
		if size == 0 || size != len(composed) {
			continue // does not compose to a single starter
		}
		if norm.NFD.String(string([]rune{first, full[i]})) == nfd {
			return first, full[i], true
		}
	}
	return 0, 0, false
}

// Compose returns the primary composite for the canonical pair (a, b), if
// there is one. Hangul syllables are not covered; see package hangul.
// Compose never returns a composition-excluded rune.
func Compose(a, b rune) (rune, bool) {
	Setup()
	c, ok := compositions[pairKey(a, b)]
	return c, ok
}

// IsExcluded is true if r has a canonical decomposition but must never be
// produced by canonical composition (Full_Composition_Exclusion).
func IsExcluded(r rune) bool {
	Setup()
	return unicode.Is(exclusions, r)
}

// CompositionExclusions returns the set of composition-excluded runes.
// The table must not be modified by clients.
func CompositionExclusions() *unicode.RangeTable {
	Setup()
	return exclusions
}
