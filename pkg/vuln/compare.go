package vuln

import (
	"cmp"
	"slices"
)

// Compare orders IDs by kind, then by year (IDs without a year first), then by
// text. It returns -1, 0, or +1 like cmp.Compare.
//
// This ordering is for stable display only. It says nothing about which
// advisory source takes precedence.
func Compare(a, b ID) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}

	switch {
	case a.hasYear && !b.hasYear:
		return 1
	case !a.hasYear && b.hasYear:
		return -1
	}
	if c := cmp.Compare(a.year, b.year); c != 0 {
		return c
	}

	return cmp.Compare(a.raw, b.raw)
}

// SortIDs sorts the given IDs in place using Compare.
func SortIDs(ids []ID) {
	slices.SortStableFunc(ids, Compare)
}
