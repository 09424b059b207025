package comp

import (
	"golang.org/x/exp/constraints"
)

// Comparator is a function type that compares two values
// It returns a negative value if a < b, zero if a == b, and a positive value if a > b
type Comparator[T any] func(a, b T) int

// GenericComparator returns a Comparator for any ordered type
func GenericComparator[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

// ReverseComparator returns a reversed Comparator
func ReverseComparator[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return -cmp(a, b)
	}
}

// ChainComparators chains multiple Comparators
func ChainComparators[T any](comparators ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		for _, cmp := range comparators {
			if result := cmp(a, b); result != 0 {
				return result
			}
		}
		return 0
	}
}

// Min returns the minimum of two values
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// ByteSliceComparator compares two byte slices lexicographically
func ByteSliceComparator(a, b []byte) int {
	minLen := Min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return len(a) - len(b)
}

// PairComparator builds a Comparator over a (K, V) pair that orders by
// key only, for the map variants layered on top of the tree index.
func PairComparator[K any, V any](comp func(K, K) int) func(Pair[K, V], Pair[K, V]) int {
	return func(a, b Pair[K, V]) int {
		return comp(a.Key, b.Key)
	}
}

// Pair is the composite (key, value) type associative containers index on.
type Pair[K any, V any] struct {
	Key   K
	Value V
}
