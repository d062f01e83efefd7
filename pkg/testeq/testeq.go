// Package testeq compares expected and actual test data
// reporting every difference instead of stopping at the first.
package testeq

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Writer is implemented by *testing.T and *testing.B.
type Writer interface {
	Helper()
	Errorf(format string, v ...any)
}

// Maps reports missing, unexpected and mismatching entries of actual
// in ascending key order.
func Maps[K constraints.Ordered, V comparable](
	w Writer,
	title string,
	expected, actual map[K]V,
) (ok bool) {
	w.Helper()
	ok = true

	keys := maps.Keys(expected)
	slices.Sort(keys)
	for _, k := range keys {
		av, found := actual[k]
		if !found {
			w.Errorf("missing %s %v (%v)", title, k, expected[k])
			ok = false
			continue
		}
		if ev := expected[k]; ev != av {
			w.Errorf("mismatching %s %v: expected %v, got %v", title, k, ev, av)
			ok = false
		}
	}

	keys = maps.Keys(actual)
	slices.Sort(keys)
	for _, k := range keys {
		if _, found := expected[k]; !found {
			w.Errorf("unexpected %s %v (%v)", title, k, actual[k])
			ok = false
		}
	}
	return ok
}

// Slices reports mismatching, missing and unexpected elements by index.
func Slices[T comparable](w Writer, title string, expected, actual []T) (ok bool) {
	w.Helper()
	ok = true
	for i := 0; i < len(expected) && i < len(actual); i++ {
		if expected[i] != actual[i] {
			w.Errorf(
				"mismatching %s at index %d: expected %v, got %v",
				title, i, expected[i], actual[i],
			)
			ok = false
		}
	}
	for i := len(expected); i < len(actual); i++ {
		w.Errorf("unexpected %s at index %d (%v)", title, i, actual[i])
		ok = false
	}
	for i := len(actual); i < len(expected); i++ {
		w.Errorf("missing %s at index %d (%v)", title, i, expected[i])
		ok = false
	}
	return ok
}
