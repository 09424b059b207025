// Package dlist is the intrusive, sentinel-terminated doubly linked
// list every associative container uses as its element storage (the
// "element list" of spec §3/§4.2). Every operation except EraseRange,
// which is O(range length), is O(1); node identity is stable for the cell's
// lifetime, which is what lets the red-black tree and hash indexes
// hold bare *Cell pointers as payload instead of copies of the value.
package dlist

import "github.com/ielm/gostl/collections/iterator"

// Cell is one element of the list: the stored value plus its two
// neighbor links. The zero Cell{} serves as the list's own sentinel
// ("end"): sentinel.next is begin(), sentinel.prev is the last cell.
type Cell[T any] struct {
	value      T
	next, prev *Cell[T]
	owner      *List[T]
	index      any
}

// Index returns the opaque back-pointer an index structure (the
// red-black tree or the hash table) has attached to this cell, for
// O(1) erase-after-find. Nil until an index sets it.
func (c *Cell[T]) Index() any { return c.index }

// SetIndex attaches the index structure's own node/handle to this cell.
func (c *Cell[T]) SetIndex(v any) { c.index = v }

// Value returns the cell's stored value. Calling Value on the
// sentinel cell (the end iterator) is undefined, matching the
// protocol's rule that end is never dereferenceable.
func (c *Cell[T]) Value() T { return c.value }

// SetValue mutates the cell's stored value in place. This is how map
// containers support "value assignable through iterator" while
// keeping the key portion of the value immutable is the caller's
// responsibility, not the list's.
func (c *Cell[T]) SetValue(v T) { c.value = v }

// ValuePtr returns a pointer into the cell's stored value, for callers
// (map containers) that need to mutate one field of a composite value
// in place rather than replace it wholesale via SetValue.
func (c *Cell[T]) ValuePtr() *T { return &c.value }

// Next returns the raw next cell (possibly the sentinel), for index
// structures that need to walk a contiguous run of equal-keyed cells
// (the hash-multi equal_range scan).
func (c *Cell[T]) Next() *Cell[T] { return c.next }

// Prev returns the raw previous cell (possibly the sentinel).
func (c *Cell[T]) Prev() *Cell[T] { return c.prev }

// List is the backing store: a doubly linked ring anchored on a
// sentinel node so begin()/end() never need a nil check.
type List[T any] struct {
	sentinel Cell[T]
	size     int
}

// New returns an empty list ready for use.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.sentinel.owner = l
	l.sentinel.next = &l.sentinel
	l.sentinel.prev = &l.sentinel
	return l
}

// Size returns the number of cells in the list.
func (l *List[T]) Size() int { return l.size }

// Empty reports whether the list has no cells.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Begin returns the first cell, or the sentinel if the list is empty.
func (l *List[T]) Begin() *Cell[T] { return l.sentinel.next }

// End returns the one-past-the-last sentinel cell. It is never
// dereferenceable and compares equal only to other end iterators of
// this same list.
func (l *List[T]) End() *Cell[T] { return &l.sentinel }

// InsertBefore splices a new cell holding value immediately before
// mark (which may be End()) and returns the new cell. O(1).
func (l *List[T]) InsertBefore(mark *Cell[T], value T) *Cell[T] {
	c := &Cell[T]{value: value, owner: l, prev: mark.prev, next: mark}
	mark.prev.next = c
	mark.prev = c
	l.size++
	return c
}

// PushBack appends value to the end of the list.
func (l *List[T]) PushBack(value T) *Cell[T] { return l.InsertBefore(l.End(), value) }

// PushFront prepends value to the front of the list.
func (l *List[T]) PushFront(value T) *Cell[T] { return l.InsertBefore(l.Begin(), value) }

// Erase unlinks c and returns the cell that followed it (c.next,
// taken before unlinking). O(1); c itself must not be the sentinel.
func (l *List[T]) Erase(c *Cell[T]) *Cell[T] {
	next := c.next
	c.prev.next = c.next
	c.next.prev = c.prev
	c.next, c.prev, c.owner = nil, nil, nil
	l.size--
	return next
}

// EraseRange erases every cell in the half-open range [first, last)
// and returns last. O(range length).
func (l *List[T]) EraseRange(first, last *Cell[T]) *Cell[T] {
	for first != last {
		first = l.Erase(first)
	}
	return last
}

// Clear empties the list in O(1) by pointing the sentinel back at
// itself; the former cells are no longer reachable from the list.
func (l *List[T]) Clear() {
	l.sentinel.next = &l.sentinel
	l.sentinel.prev = &l.sentinel
	l.size = 0
}

// Owns reports whether c belongs to this list (or is its sentinel).
// No container in this module calls it, so iterators from a different
// container are not rejected.
func (l *List[T]) Owns(c *Cell[T]) bool { return c != nil && c.owner == l || c == &l.sentinel }

// Iter is the list's own Bidirectional iterator: a (list, cell) handle.
type Iter[T any] struct {
	list *List[T]
	cell *Cell[T]
}

// At wraps a cell as an iterator over l. Used by callers (and by the
// tree/hash indexes) that already hold a *Cell[T] handle.
func (l *List[T]) At(c *Cell[T]) Iter[T] { return Iter[T]{list: l, cell: c} }

// Cell exposes the raw handle an index structure stores as payload.
func (it Iter[T]) Cell() *Cell[T] { return it.cell }

// List exposes the owning list, so containers can call further dlist operations.
func (it Iter[T]) List() *List[T] { return it.list }

func (it Iter[T]) Value() T { return it.cell.Value() }

func (it Iter[T]) Next() iterator.Forward[T] {
	if it.cell.next == nil || it.cell == it.list.End() {
		return it
	}
	return Iter[T]{list: it.list, cell: it.cell.next}
}

func (it Iter[T]) Prev() iterator.Bidirectional[T] {
	if it.cell.prev == nil {
		return it
	}
	return Iter[T]{list: it.list, cell: it.cell.prev}
}

func (it Iter[T]) Equal(other iterator.Forward[T]) bool {
	o, ok := other.(Iter[T])
	return ok && o.list == it.list && o.cell == it.cell
}

var (
	_ iterator.Forward[int]       = Iter[int]{}
	_ iterator.Bidirectional[int] = Iter[int]{}
)
