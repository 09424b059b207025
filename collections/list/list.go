// Package list provides the node-based sequence containers: List, a
// doubly linked list exposing a Bidirectional iterator, and SkipList,
// a probabilistic ordered structure exposing the same protocol.
package list

import (
	"github.com/ielm/gostl/collections/iterator"
	"github.com/ielm/gostl/internal/dlist"
)

// Iterator is List's Bidirectional iterator, a thin re-export of the
// intrusive element list's own iterator type.
type Iterator[T any] = dlist.Iter[T]

// List is a doubly linked sequence container. Unlike Vec, inserting or
// erasing any element never invalidates iterators to other elements.
type List[T any] struct {
	l *dlist.List[T]
}

// New creates an empty List.
func New[T any]() *List[T] { return &List[T]{l: dlist.New[T]()} }

// NewFromSlice builds a List containing every value of values, in order.
func NewFromSlice[T any](values []T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

func (l *List[T]) Len() int     { return l.l.Size() }
func (l *List[T]) IsEmpty() bool { return l.l.Empty() }
func (l *List[T]) Clear()       { l.l.Clear() }

func (l *List[T]) Begin() Iterator[T] { return l.l.At(l.l.Begin()) }
func (l *List[T]) End() Iterator[T]   { return l.l.At(l.l.End()) }

// PushBack appends value to the end of the list.
func (l *List[T]) PushBack(value T) Iterator[T] { return l.l.At(l.l.PushBack(value)) }

// PushFront prepends value to the front of the list.
func (l *List[T]) PushFront(value T) Iterator[T] { return l.l.At(l.l.PushFront(value)) }

// Front returns the first element, if any.
func (l *List[T]) Front() (T, bool) {
	if l.l.Empty() {
		var zero T
		return zero, false
	}
	return l.l.Begin().Value(), true
}

// Back returns the last element, if any.
func (l *List[T]) Back() (T, bool) {
	if l.l.Empty() {
		var zero T
		return zero, false
	}
	return l.l.End().Prev().Value(), true
}

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() (T, bool) {
	if l.l.Empty() {
		var zero T
		return zero, false
	}
	c := l.l.Begin()
	v := c.Value()
	l.l.Erase(c)
	return v, true
}

// PopBack removes and returns the last element.
func (l *List[T]) PopBack() (T, bool) {
	if l.l.Empty() {
		var zero T
		return zero, false
	}
	c := l.l.End().Prev()
	v := c.Value()
	l.l.Erase(c)
	return v, true
}

// InsertBefore inserts value immediately before it, returning an
// iterator to the new element.
func (l *List[T]) InsertBefore(it Iterator[T], value T) Iterator[T] {
	return l.l.At(l.l.InsertBefore(it.Cell(), value))
}

// Erase removes the element at it and returns the next iterator.
func (l *List[T]) Erase(it Iterator[T]) Iterator[T] {
	return l.l.At(l.l.Erase(it.Cell()))
}

// Values returns every element, in list order.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.Len())
	for it := l.Begin(); !it.Equal(l.End()); it = it.Next().(Iterator[T]) {
		out = append(out, it.Value())
	}
	return out
}

var (
	_ iterator.Forward[int]       = Iterator[int]{}
	_ iterator.Bidirectional[int] = Iterator[int]{}
)
