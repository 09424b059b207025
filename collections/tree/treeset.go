package tree

import (
	"github.com/ielm/gostl/collections/comp"
	"golang.org/x/exp/constraints"
)

// TreeSet is the unique, ordered set container: no two elements
// compare equivalent under the comparator (spec §3 invariant 2).
type TreeSet[T any] struct {
	e *engine[T, T]
}

// NewTreeSet creates an empty TreeSet ordered by less.
func NewTreeSet[T any](less func(a, b T) bool) *TreeSet[T] {
	return &TreeSet[T]{e: newEngine[T, T](less, identity[T], false)}
}

// NewOrderedTreeSet creates an empty TreeSet for an orderable type
// using its natural `<` ordering.
func NewOrderedTreeSet[T constraints.Ordered]() *TreeSet[T] {
	return NewTreeSet[T](comp.LessOrdered[T])
}

// NewTreeSetFromSlice builds a TreeSet from values, keeping only one
// cell per group of equivalent keys (later duplicates are discarded).
func NewTreeSetFromSlice[T any](values []T, less func(a, b T) bool) *TreeSet[T] {
	s := NewTreeSet(less)
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

func identity[T any](v T) T { return v }

// Size returns the number of elements.
func (s *TreeSet[T]) Size() int { return s.e.size() }

// IsEmpty reports whether the set has no elements.
func (s *TreeSet[T]) IsEmpty() bool { return s.e.isEmpty() }

// Clear removes every element.
func (s *TreeSet[T]) Clear() { s.e.clear() }

// Begin returns an iterator to the first (smallest) element.
func (s *TreeSet[T]) Begin() Iterator[T] { return s.e.begin() }

// End returns the one-past-the-last sentinel iterator.
func (s *TreeSet[T]) End() Iterator[T] { return s.e.end() }

// Find returns an iterator to an element equivalent to value, if any.
func (s *TreeSet[T]) Find(value T) (Iterator[T], bool) { return s.e.find(value) }

// Count returns 1 if an equivalent element exists, 0 otherwise
// (always ≤ 1 for a unique container).
func (s *TreeSet[T]) Count(value T) int { return s.e.count(value) }

// LowerBound returns an iterator to the first element not less than value.
func (s *TreeSet[T]) LowerBound(value T) Iterator[T] { return s.e.lowerBound(value) }

// UpperBound returns an iterator to the first element strictly greater than value.
func (s *TreeSet[T]) UpperBound(value T) Iterator[T] { return s.e.upperBound(value) }

// EqualRange returns [LowerBound(value), UpperBound(value)).
func (s *TreeSet[T]) EqualRange(value T) (Iterator[T], Iterator[T]) { return s.e.equalRange(value) }

// Insert adds value if no equivalent element exists. The bool reports
// whether the insert actually happened; on false, the returned
// iterator refers to the existing equivalent element.
func (s *TreeSet[T]) Insert(value T) (Iterator[T], bool) { return s.e.insert(value) }

// InsertHint inserts value right after hint without a key search when
// the hint holds (spec.md §4.5), falling back to the full insert if it
// doesn't. Either way the cost is O(log n).
func (s *TreeSet[T]) InsertHint(hint Iterator[T], value T) (Iterator[T], bool) {
	return s.e.insertWithHint(hint, value)
}

// InsertSlice inserts every value, skipping any that are already present.
func (s *TreeSet[T]) InsertSlice(values []T) {
	hint := s.e.end()
	for _, v := range values {
		it, _ := s.e.insertWithHint(hint, v)
		hint = it
	}
}

// Erase removes the element at it and returns the next iterator.
func (s *TreeSet[T]) Erase(it Iterator[T]) Iterator[T] { return s.e.erase(it) }

// EraseRange removes every element in [first, last).
func (s *TreeSet[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	return s.e.eraseRange(first, last)
}

// EraseValue removes the element equivalent to value, if any, and
// reports how many elements were removed (0 or 1).
func (s *TreeSet[T]) EraseValue(value T) int { return s.e.eraseKey(value) }

// Swap exchanges contents (including the comparator) with other, in O(1).
func (s *TreeSet[T]) Swap(other *TreeSet[T]) { s.e.swap(other.e) }

// KeyComp returns the comparator used to order elements.
func (s *TreeSet[T]) KeyComp() comp.Comparator[T] { return s.e.keyComp() }

// ValueComp is the same as KeyComp for a set (value == key).
func (s *TreeSet[T]) ValueComp() comp.Comparator[T] { return s.e.keyComp() }

// Values returns every element in sorted order.
func (s *TreeSet[T]) Values() []T {
	out := make([]T, 0, s.Size())
	for it := s.Begin(); !it.Equal(s.End()); it = it.Next().(Iterator[T]) {
		out = append(out, it.Value())
	}
	return out
}

// TreeMultiSet is the multi-key ordered set: equivalent elements are
// allowed and kept contiguous in iteration order (spec §4.4/§4.5).
type TreeMultiSet[T any] struct {
	e *engine[T, T]
}

// NewTreeMultiSet creates an empty TreeMultiSet ordered by less.
func NewTreeMultiSet[T any](less func(a, b T) bool) *TreeMultiSet[T] {
	return &TreeMultiSet[T]{e: newEngine[T, T](less, identity[T], true)}
}

// NewOrderedTreeMultiSet creates an empty TreeMultiSet for an
// orderable type using its natural `<` ordering.
func NewOrderedTreeMultiSet[T constraints.Ordered]() *TreeMultiSet[T] {
	return NewTreeMultiSet[T](comp.LessOrdered[T])
}

// NewTreeMultiSetFromSlice builds a TreeMultiSet containing every value.
func NewTreeMultiSetFromSlice[T any](values []T, less func(a, b T) bool) *TreeMultiSet[T] {
	s := NewTreeMultiSet(less)
	s.InsertSlice(values)
	return s
}

func (s *TreeMultiSet[T]) Size() int                    { return s.e.size() }
func (s *TreeMultiSet[T]) IsEmpty() bool                { return s.e.isEmpty() }
func (s *TreeMultiSet[T]) Clear()                       { s.e.clear() }
func (s *TreeMultiSet[T]) Begin() Iterator[T]           { return s.e.begin() }
func (s *TreeMultiSet[T]) End() Iterator[T]             { return s.e.end() }
func (s *TreeMultiSet[T]) Count(value T) int            { return s.e.count(value) }
func (s *TreeMultiSet[T]) LowerBound(value T) Iterator[T] { return s.e.lowerBound(value) }
func (s *TreeMultiSet[T]) UpperBound(value T) Iterator[T] { return s.e.upperBound(value) }

func (s *TreeMultiSet[T]) EqualRange(value T) (Iterator[T], Iterator[T]) {
	return s.e.equalRange(value)
}

// Find returns an iterator to one element equivalent to value, if any.
func (s *TreeMultiSet[T]) Find(value T) (Iterator[T], bool) { return s.e.find(value) }

// Insert always succeeds and returns an iterator to the new element.
func (s *TreeMultiSet[T]) Insert(value T) Iterator[T] {
	it, _ := s.e.insert(value)
	return it
}

// InsertHint is the multi-container hint-insert: the predicate is
// weakened with equivalence per spec.md §4.5.
func (s *TreeMultiSet[T]) InsertHint(hint Iterator[T], value T) Iterator[T] {
	it, _ := s.e.insertWithHint(hint, value)
	return it
}

// InsertSlice inserts every value.
func (s *TreeMultiSet[T]) InsertSlice(values []T) {
	hint := s.e.end()
	for _, v := range values {
		hint, _ = s.e.insertWithHint(hint, v)
	}
}

func (s *TreeMultiSet[T]) Erase(it Iterator[T]) Iterator[T] { return s.e.erase(it) }
func (s *TreeMultiSet[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	return s.e.eraseRange(first, last)
}
func (s *TreeMultiSet[T]) EraseValue(value T) int       { return s.e.eraseKey(value) }
func (s *TreeMultiSet[T]) Swap(other *TreeMultiSet[T])  { s.e.swap(other.e) }
func (s *TreeMultiSet[T]) KeyComp() comp.Comparator[T]  { return s.e.keyComp() }
func (s *TreeMultiSet[T]) ValueComp() comp.Comparator[T] { return s.e.keyComp() }

// Values returns every element in sorted order, with duplicates
// appearing contiguously.
func (s *TreeMultiSet[T]) Values() []T {
	out := make([]T, 0, s.Size())
	for it := s.Begin(); !it.Equal(s.End()); it = it.Next().(Iterator[T]) {
		out = append(out, it.Value())
	}
	return out
}
