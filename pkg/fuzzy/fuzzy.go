// Package fuzzy implements the loose title search used by the search query.
//
// A needle matches a haystack when every rune of the needle appears in the
// haystack in the same order, with any number of runes in between. This is
// a subsequence test: "ac" matches "abc", "cab" does not. Comparison is
// case-insensitive through strings.ToLower; no other folding is applied.
package fuzzy

import "strings"

// Match reports whether needle is a case-insensitive subsequence of haystack.
// An empty needle matches everything.
func Match(haystack, needle string) bool {
	if needle == "" {
		return true
	}

	want := []rune(strings.ToLower(needle))
	i := 0
	for _, r := range strings.ToLower(haystack) {
		if r != want[i] {
			continue
		}
		i++
		if i == len(want) {
			return true
		}
	}

	return false
}
