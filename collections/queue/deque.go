package queue

import "github.com/ielm/gostl/collections/vec"

// Deque is a double-ended queue adaptor over the ring-buffer VecDeque.
type Deque[T any] struct {
	d *vec.VecDeque[T]
}

// NewDeque creates an empty Deque with the given initial capacity.
func NewDeque[T any](capacity int) *Deque[T] { return &Deque[T]{d: vec.NewVecDeque[T](capacity)} }

func (q *Deque[T]) PushFront(item T) { q.d.PushFront(item) }
func (q *Deque[T]) PushBack(item T)  { q.d.PushBack(item) }
func (q *Deque[T]) PopFront() (T, bool) { return q.d.PopFront() }
func (q *Deque[T]) PopBack() (T, bool)  { return q.d.PopBack() }
func (q *Deque[T]) Front() (T, bool)    { return q.d.Front() }
func (q *Deque[T]) Back() (T, bool)     { return q.d.Back() }
func (q *Deque[T]) Len() int            { return q.d.Len() }
func (q *Deque[T]) IsEmpty() bool       { return q.d.IsEmpty() }
func (q *Deque[T]) Clear()              { q.d.Clear() }
