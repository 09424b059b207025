package vec

import (
	"github.com/ielm/gostl/collections/iterator"
	"github.com/ielm/gostl/errors"
)

// VecDeque is a double-ended queue implemented with a growable ring buffer.
type VecDeque[T any] struct {
	buf  []T
	head int
	tail int
	len  int
}

// NewVecDeque creates a new VecDeque with the given initial capacity.
func NewVecDeque[T any](capacity int) *VecDeque[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &VecDeque[T]{buf: make([]T, capacity)}
}

// PushBack appends an element to the back of the VecDeque.
func (vd *VecDeque[T]) PushBack(item T) {
	if vd.len == len(vd.buf) {
		vd.grow()
	}
	vd.buf[vd.tail] = item
	vd.tail = (vd.tail + 1) % len(vd.buf)
	vd.len++
}

// PushFront prepends an element to the front of the VecDeque.
func (vd *VecDeque[T]) PushFront(item T) {
	if vd.len == len(vd.buf) {
		vd.grow()
	}
	vd.head = (vd.head - 1 + len(vd.buf)) % len(vd.buf)
	vd.buf[vd.head] = item
	vd.len++
}

// PopBack removes and returns the last element.
func (vd *VecDeque[T]) PopBack() (T, bool) {
	if vd.len == 0 {
		var zero T
		return zero, false
	}
	vd.tail = (vd.tail - 1 + len(vd.buf)) % len(vd.buf)
	item := vd.buf[vd.tail]
	vd.len--
	return item, true
}

// PopFront removes and returns the first element.
func (vd *VecDeque[T]) PopFront() (T, bool) {
	if vd.len == 0 {
		var zero T
		return zero, false
	}
	item := vd.buf[vd.head]
	vd.head = (vd.head + 1) % len(vd.buf)
	vd.len--
	return item, true
}

// Front returns the first element without removing it.
func (vd *VecDeque[T]) Front() (T, bool) {
	if vd.len == 0 {
		var zero T
		return zero, false
	}
	return vd.buf[vd.head], true
}

// Back returns the last element without removing it.
func (vd *VecDeque[T]) Back() (T, bool) {
	if vd.len == 0 {
		var zero T
		return zero, false
	}
	return vd.buf[(vd.tail-1+len(vd.buf))%len(vd.buf)], true
}

// Get returns the element at the given logical index.
func (vd *VecDeque[T]) Get(index int) (T, error) {
	if index < 0 || index >= vd.len {
		var zero T
		return zero, errors.OutOfRange("index out of bounds")
	}
	return vd.buf[(vd.head+index)%len(vd.buf)], nil
}

// Set assigns the element at the given logical index.
func (vd *VecDeque[T]) Set(index int, item T) error {
	if index < 0 || index >= vd.len {
		return errors.OutOfRange("index out of bounds")
	}
	vd.buf[(vd.head+index)%len(vd.buf)] = item
	return nil
}

// Len returns the number of elements in the VecDeque.
func (vd *VecDeque[T]) Len() int { return vd.len }

// IsEmpty returns true if the VecDeque contains no elements.
func (vd *VecDeque[T]) IsEmpty() bool { return vd.len == 0 }

// Clear removes all elements from the VecDeque.
func (vd *VecDeque[T]) Clear() {
	vd.head, vd.tail, vd.len = 0, 0, 0
}

func (vd *VecDeque[T]) grow() {
	newCap := len(vd.buf) * 2
	newBuf := make([]T, newCap)
	if vd.tail > vd.head || vd.len == 0 {
		copy(newBuf, vd.buf[vd.head:vd.head+vd.len])
	} else {
		n := copy(newBuf, vd.buf[vd.head:])
		copy(newBuf[n:], vd.buf[:vd.tail])
	}
	vd.buf = newBuf
	vd.head = 0
	vd.tail = vd.len
}

// MakeContiguous rotates the buffer so elements do not wrap, and
// returns a mutable slice over the now-contiguous elements.
func (vd *VecDeque[T]) MakeContiguous() []T {
	if vd.len == 0 {
		return vd.buf[:0]
	}
	if vd.head <= vd.tail && vd.head+vd.len <= len(vd.buf) {
		return vd.buf[vd.head : vd.head+vd.len]
	}
	rotated := make([]T, vd.len)
	n := copy(rotated, vd.buf[vd.head:])
	copy(rotated[n:], vd.buf[:vd.tail])
	copy(vd.buf, rotated)
	vd.head = 0
	vd.tail = vd.len % len(vd.buf)
	return vd.buf[:vd.len]
}

// DequeIter is the RandomAccess iterator over a VecDeque's logical index space.
type DequeIter[T any] struct {
	vd  *VecDeque[T]
	pos int
}

// Begin returns an iterator to the first element.
func (vd *VecDeque[T]) Begin() DequeIter[T] { return DequeIter[T]{vd: vd, pos: 0} }

// End returns the one-past-the-last iterator.
func (vd *VecDeque[T]) End() DequeIter[T] { return DequeIter[T]{vd: vd, pos: vd.len} }

func (it DequeIter[T]) Value() T {
	v, _ := it.vd.Get(it.pos)
	return v
}

func (it DequeIter[T]) Next() iterator.Forward[T] {
	if it.pos >= it.vd.len {
		return it
	}
	return DequeIter[T]{vd: it.vd, pos: it.pos + 1}
}

func (it DequeIter[T]) Prev() iterator.Bidirectional[T] {
	if it.pos <= 0 {
		return it
	}
	return DequeIter[T]{vd: it.vd, pos: it.pos - 1}
}

func (it DequeIter[T]) Index() int { return it.pos }

func (it DequeIter[T]) Advance(n int) iterator.RandomAccess[T] {
	return DequeIter[T]{vd: it.vd, pos: it.pos + n}
}

func (it DequeIter[T]) Compare(other iterator.RandomAccess[T]) int {
	return it.pos - other.(DequeIter[T]).pos
}

func (it DequeIter[T]) Equal(other iterator.Forward[T]) bool {
	o, ok := other.(DequeIter[T])
	return ok && o.vd == it.vd && o.pos == it.pos
}

var (
	_ iterator.Forward[int]       = DequeIter[int]{}
	_ iterator.Bidirectional[int] = DequeIter[int]{}
	_ iterator.RandomAccess[int]  = DequeIter[int]{}
)
