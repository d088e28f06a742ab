package uax15

import "github.com/npillmayer/uax15/ucd"

// canonicalOrder sorts a run of non-starters by ascending combining class.
// Marks of equal class keep their relative order.
func canonicalOrder(run []entry) {
	for i := 1; i < len(run); i++ {
		e := run[i]
		j := i
		for j > 0 && run[j-1].ccc > e.ccc {
			run[j] = run[j-1]
			j--
		}
		run[j] = e
	}
}

// CanonicalOrder applies the canonical ordering algorithm to rs in place:
// every maximal run of non-starters is stably sorted by combining class.
// Starters never move. CanonicalOrder does not decompose.
func CanonicalOrder(rs []rune) {
	for i := 1; i < len(rs); i++ {
		r := rs[i]
		ccc := ucd.CombiningClass(r)
		if ccc == 0 {
			continue
		}
		j := i
		for j > 0 && ucd.CombiningClass(rs[j-1]) > ccc {
			rs[j] = rs[j-1]
			j--
		}
		rs[j] = r
	}
}
