package util

import (
	"cmp"
	"slices"

	"golang.org/x/exp/maps"
)

/*
Utility functions.
*/

////////////////////////////////////////////////////////////////////////////////

// Okeys returns the keys of a map in sorted order.
func Okeys[T cmp.Ordered, K any](m map[T]K) []T {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
