// Package vec provides the contiguous sequence containers, Vec and
// VecDeque, both exposing the RandomAccess iterator protocol
// (collections/iterator) over their backing slice/ring buffer.
package vec

import (
	"github.com/ielm/gostl/collections/comp"
	"github.com/ielm/gostl/collections/iterator"
	"github.com/ielm/gostl/errors"
)

// Vec is a contiguous growable array type, similar to Rust's Vec or
// C++'s std::vector.
type Vec[T any] struct {
	data       []T
	comparator comp.Comparator[T]
}

// New creates a new empty Vec without allocating memory.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// VecWithCapacity creates a new Vec with the given capacity and comparator.
func VecWithCapacity[T any](capacity int, comparator comp.Comparator[T]) *Vec[T] {
	return &Vec[T]{
		data:       make([]T, 0, capacity),
		comparator: comparator,
	}
}

// NewVecFromSlice builds a Vec holding a copy of values.
func NewVecFromSlice[T any](values []T) *Vec[T] {
	v := &Vec[T]{data: make([]T, len(values))}
	copy(v.data, values)
	return v
}

// Push appends an element to the back of the Vec.
func (v *Vec[T]) Push(item T) { v.data = append(v.data, item) }

// Pop removes and returns the last element from the Vec.
func (v *Vec[T]) Pop() (T, bool) {
	if len(v.data) == 0 {
		var zero T
		return zero, false
	}
	item := v.data[len(v.data)-1]
	v.data = v.data[:len(v.data)-1]
	return item, true
}

// Get returns the element at the given index, or a LogicError(out-of-range).
func (v *Vec[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(v.data) {
		var zero T
		return zero, errors.OutOfRange("index out of bounds")
	}
	return v.data[index], nil
}

// Set assigns the element at the given index, or returns a LogicError(out-of-range).
func (v *Vec[T]) Set(index int, item T) error {
	if index < 0 || index >= len(v.data) {
		return errors.OutOfRange("index out of bounds")
	}
	v.data[index] = item
	return nil
}

// Len returns the number of elements in the Vec.
func (v *Vec[T]) Len() int { return len(v.data) }

// Cap returns the capacity of the Vec.
func (v *Vec[T]) Cap() int { return cap(v.data) }

// Clear removes all elements from the Vec.
func (v *Vec[T]) Clear() { v.data = v.data[:0] }

// IsEmpty returns true if the Vec contains no elements.
func (v *Vec[T]) IsEmpty() bool { return len(v.data) == 0 }

// Reserve ensures capacity for at least n more elements, per the
// "true capacity hint, not a resize to n" reading of reserve().
func (v *Vec[T]) Reserve(n int) {
	if cap(v.data)-len(v.data) >= n {
		return
	}
	grown := make([]T, len(v.data), len(v.data)+n)
	copy(grown, v.data)
	v.data = grown
}

// SetComparator sets the comparator used by Contains/IndexOf/Remove.
func (v *Vec[T]) SetComparator(comparator comp.Comparator[T]) { v.comparator = comparator }

// Contains reports whether item is present, using the configured comparator.
func (v *Vec[T]) Contains(item T) bool { return v.IndexOf(item) >= 0 }

// IndexOf returns the index of the first occurrence of item, or -1.
func (v *Vec[T]) IndexOf(item T) int {
	if v.comparator == nil {
		panic("vec: comparator not set")
	}
	for i, elem := range v.data {
		if v.comparator(elem, item) == 0 {
			return i
		}
	}
	return -1
}

// Remove removes the first occurrence of item, reporting whether one was found.
func (v *Vec[T]) Remove(item T) bool {
	index := v.IndexOf(item)
	if index == -1 {
		return false
	}
	v.RemoveAt(index)
	return true
}

// RemoveAt removes the element at index, preserving order.
func (v *Vec[T]) RemoveAt(index int) error {
	if index < 0 || index >= len(v.data) {
		return errors.OutOfRange("index out of bounds")
	}
	copy(v.data[index:], v.data[index+1:])
	var zero T
	v.data[len(v.data)-1] = zero
	v.data = v.data[:len(v.data)-1]
	return nil
}

// Values returns the underlying slice. Mutating it mutates the Vec.
func (v *Vec[T]) Values() []T { return v.data }

// Iter is the RandomAccess iterator over a Vec.
type Iter[T any] struct {
	v   *Vec[T]
	pos int
}

// Begin returns an iterator to the first element.
func (v *Vec[T]) Begin() Iter[T] { return Iter[T]{v: v, pos: 0} }

// End returns the one-past-the-last iterator.
func (v *Vec[T]) End() Iter[T] { return Iter[T]{v: v, pos: len(v.data)} }

func (it Iter[T]) Value() T { return it.v.data[it.pos] }

func (it Iter[T]) Next() iterator.Forward[T] {
	if it.pos >= len(it.v.data) {
		return it
	}
	return Iter[T]{v: it.v, pos: it.pos + 1}
}

func (it Iter[T]) Prev() iterator.Bidirectional[T] {
	if it.pos <= 0 {
		return it
	}
	return Iter[T]{v: it.v, pos: it.pos - 1}
}

func (it Iter[T]) Index() int { return it.pos }

func (it Iter[T]) Advance(n int) iterator.RandomAccess[T] {
	return Iter[T]{v: it.v, pos: it.pos + n}
}

func (it Iter[T]) Compare(other iterator.RandomAccess[T]) int {
	o := other.(Iter[T])
	return it.pos - o.pos
}

func (it Iter[T]) Equal(other iterator.Forward[T]) bool {
	o, ok := other.(Iter[T])
	return ok && o.v == it.v && o.pos == it.pos
}

var (
	_ iterator.Forward[int]       = Iter[int]{}
	_ iterator.Bidirectional[int] = Iter[int]{}
	_ iterator.RandomAccess[int]  = Iter[int]{}
)
