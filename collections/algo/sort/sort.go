// Package sort is the algorithms consumer layer: generic sort/find/
// for_each/lower_bound operations written against collections/comp and
// collections/iterator rather than against any one container, so the
// same algorithm runs over a Vec, a List, or a tree/hash container's
// iterator range.
package sort

import (
	"github.com/ielm/gostl/collections/comp"
	"github.com/ielm/gostl/collections/iterator"
	"github.com/ielm/gostl/errors"
)

// QuickSort performs an in-place quicksort on slice using comparator.
func QuickSort[T any](slice []T, comparator comp.Comparator[T]) {
	if len(slice) < 2 {
		return
	}
	quickSortRecursive(slice, 0, len(slice)-1, comparator)
}

func quickSortRecursive[T any](slice []T, low, high int, comparator comp.Comparator[T]) {
	if low < high {
		p := partition(slice, low, high, comparator)
		quickSortRecursive(slice, low, p-1, comparator)
		quickSortRecursive(slice, p+1, high, comparator)
	}
}

func partition[T any](slice []T, low, high int, comparator comp.Comparator[T]) int {
	pivot := slice[high]
	i := low - 1
	for j := low; j < high; j++ {
		if comparator(slice[j], pivot) <= 0 {
			i++
			slice[i], slice[j] = slice[j], slice[i]
		}
	}
	slice[i+1], slice[high] = slice[high], slice[i+1]
	return i + 1
}

// Sorted returns a new sorted copy of slice, leaving the input unmodified.
func Sorted[T any](slice []T, comparator comp.Comparator[T]) ([]T, error) {
	if slice == nil {
		return nil, errors.InvalidArgument("input slice is nil")
	}
	out := make([]T, len(slice))
	copy(out, slice)
	QuickSort(out, comparator)
	return out, nil
}

// SortedDescending returns a new copy of slice sorted in the reverse of
// comparator's order, leaving the input unmodified.
func SortedDescending[T any](slice []T, comparator comp.Comparator[T]) ([]T, error) {
	return Sorted(slice, comp.ReverseComparator(comparator))
}

// SortedBy returns a new sorted copy of slice ordered by the given
// comparators in priority order: the first comparator that reports a
// difference between two elements decides their order, matching a
// "sort by key, then by tiebreaker" query.
func SortedBy[T any](slice []T, comparators ...comp.Comparator[T]) ([]T, error) {
	return Sorted(slice, comp.ChainComparators(comparators...))
}

// Collect walks a Forward range [first, last) and returns its values as a slice.
func Collect[T any](first, last iterator.Forward[T]) []T {
	var out []T
	for it := first; !it.Equal(last); it = it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// SortRange collects [first, last), sorts the collected values with
// comparator, and returns them — ranges themselves are not
// sort-in-place since the iterator protocol makes no random-write
// guarantee below RandomAccess.
func SortRange[T any](first, last iterator.Forward[T], comparator comp.Comparator[T]) []T {
	values := Collect(first, last)
	QuickSort(values, comparator)
	return values
}

// Find returns an iterator to the first element in [first, last)
// equal to target under comparator, or last if none matches.
func Find[T any](first, last iterator.Forward[T], target T, comparator comp.Comparator[T]) iterator.Forward[T] {
	for it := first; !it.Equal(last); it = it.Next() {
		if comparator(it.Value(), target) == 0 {
			return it
		}
	}
	return last
}

// FindIf returns an iterator to the first element in [first, last)
// satisfying pred, or last if none does.
func FindIf[T any](first, last iterator.Forward[T], pred func(T) bool) iterator.Forward[T] {
	for it := first; !it.Equal(last); it = it.Next() {
		if pred(it.Value()) {
			return it
		}
	}
	return last
}

// ForEach calls fn with every value in [first, last), in iteration order.
func ForEach[T any](first, last iterator.Forward[T], fn func(T)) {
	for it := first; !it.Equal(last); it = it.Next() {
		fn(it.Value())
	}
}

// Count returns how many elements in [first, last) satisfy pred.
func Count[T any](first, last iterator.Forward[T], pred func(T) bool) int {
	n := 0
	for it := first; !it.Equal(last); it = it.Next() {
		if pred(it.Value()) {
			n++
		}
	}
	return n
}

// LowerBound returns an iterator to the first element in the
// RandomAccess range [first, last) not less than target, using binary
// search. The range must already be sorted by comparator.
func LowerBound[T any](first, last iterator.RandomAccess[T], target T, comparator comp.Comparator[T]) iterator.RandomAccess[T] {
	lo, hi := first.Index(), last.Index()
	for lo < hi {
		mid := lo + (hi-lo)/2
		midIt := first.Advance(mid - first.Index())
		if comparator(midIt.Value(), target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return first.Advance(lo - first.Index())
}
