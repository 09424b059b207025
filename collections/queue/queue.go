// Package queue provides FIFO adaptors built on top of the sequence
// containers in collections/list and collections/vec.
package queue

import "github.com/ielm/gostl/collections/list"

// Queue is a FIFO adaptor over a doubly linked List.
type Queue[T any] struct {
	l *list.List[T]
}

// New creates an empty Queue.
func New[T any]() *Queue[T] { return &Queue[T]{l: list.New[T]()} }

// Enqueue appends item to the back of the queue.
func (q *Queue[T]) Enqueue(item T) { q.l.PushBack(item) }

// Dequeue removes and returns the item at the front of the queue.
func (q *Queue[T]) Dequeue() (T, bool) { return q.l.PopFront() }

// Front returns the item at the front of the queue without removing it.
func (q *Queue[T]) Front() (T, bool) { return q.l.Front() }

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.l.Len() }

// IsEmpty reports whether the queue has no items.
func (q *Queue[T]) IsEmpty() bool { return q.l.IsEmpty() }

// Clear removes every queued item.
func (q *Queue[T]) Clear() { q.l.Clear() }
