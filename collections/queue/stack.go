package queue

import "github.com/ielm/gostl/collections/list"

// Stack is a LIFO adaptor over a doubly linked List.
type Stack[T any] struct {
	l *list.List[T]
}

// NewStack creates an empty Stack.
func NewStack[T any]() *Stack[T] { return &Stack[T]{l: list.New[T]()} }

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) { s.l.PushBack(item) }

// Pop removes and returns the item on top of the stack.
func (s *Stack[T]) Pop() (T, bool) { return s.l.PopBack() }

// Top returns the item on top of the stack without removing it.
func (s *Stack[T]) Top() (T, bool) { return s.l.Back() }

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return s.l.Len() }

// IsEmpty reports whether the stack has no items.
func (s *Stack[T]) IsEmpty() bool { return s.l.IsEmpty() }

// Clear removes every item.
func (s *Stack[T]) Clear() { s.l.Clear() }
