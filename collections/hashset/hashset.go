// Package hashset provides the two unordered set containers, HashSet
// (unique) and HashMultiSet (multi), built on the bucketed hash index
// (internal/hashidx) over an intrusive element list (internal/dlist).
package hashset

import (
	"github.com/ielm/gostl/collections/comp"
	"github.com/ielm/gostl/internal/dlist"
	"github.com/ielm/gostl/internal/hashidx"
)

// Iterator is the common iterator type for hash containers.
type Iterator[T any] = dlist.Iter[T]

type engine[T any] struct {
	list  *dlist.List[T]
	index *hashidx.Index[T, T]
	hash  func(T) uint32
	equal func(a, b T) bool
	multi bool
}

func newEngine[T any](hash func(T) uint32, equal func(a, b T) bool, multi bool) *engine[T] {
	identity := func(v T) T { return v }
	return &engine[T]{
		list:  dlist.New[T](),
		index: hashidx.New[T, T](hash, equal, identity),
		hash:  hash,
		equal: equal,
		multi: multi,
	}
}

func (e *engine[T]) size() int     { return e.list.Size() }
func (e *engine[T]) isEmpty() bool { return e.list.Size() == 0 }

func (e *engine[T]) clear() {
	e.list.Clear()
	e.index = hashidx.New[T, T](e.hash, e.equal, func(v T) T { return v })
}

func (e *engine[T]) begin() Iterator[T] { return e.list.At(e.list.Begin()) }
func (e *engine[T]) end() Iterator[T]   { return e.list.At(e.list.End()) }

func (e *engine[T]) find(value T) (Iterator[T], bool) {
	c, ok := e.index.Find(value)
	if !ok {
		return e.end(), false
	}
	return e.list.At(c), true
}

func (e *engine[T]) count(value T) int { return e.index.Count(value) }

// equalRange scans the contiguous run of equal-keyed cells the
// multi-container's insert path is responsible for maintaining.
func (e *engine[T]) equalRange(value T) (Iterator[T], Iterator[T]) {
	match, ok := e.index.Find(value)
	if !ok {
		return e.end(), e.end()
	}
	start := match
	for start != e.list.Begin() {
		p := start.Prev()
		if !e.equal(p.Value(), value) {
			break
		}
		start = p
	}
	stop := match
	for {
		n := stop.Next()
		if n == e.list.End() || !e.equal(n.Value(), value) {
			break
		}
		stop = n
	}
	return e.list.At(start), e.list.At(stop.Next())
}

func (e *engine[T]) insertUnique(value T) (Iterator[T], bool) {
	if c, ok := e.index.Find(value); ok {
		return e.list.At(c), false
	}
	cell := e.list.PushBack(value)
	e.index.Insert(cell)
	return e.list.At(cell), true
}

// insertMulti places the new cell adjacent to any existing
// equal-keyed cell (spec §4.4), otherwise at the list tail.
func (e *engine[T]) insertMulti(value T) Iterator[T] {
	var cell *dlist.Cell[T]
	if existing, ok := e.index.Find(value); ok {
		cell = e.list.InsertBefore(existing.Next(), value)
	} else {
		cell = e.list.PushBack(value)
	}
	e.index.Insert(cell)
	return e.list.At(cell)
}

func (e *engine[T]) erase(it Iterator[T]) Iterator[T] {
	cell := it.Cell()
	if cell == e.list.End() {
		return it
	}
	e.index.Erase(cell)
	next := e.list.Erase(cell)
	return e.list.At(next)
}

func (e *engine[T]) eraseValue(value T) int {
	lo, hi := e.equalRange(value)
	n := 0
	for c := lo.Cell(); c != hi.Cell(); {
		e.index.Erase(c)
		c = e.list.Erase(c)
		n++
	}
	return n
}

func (e *engine[T]) swap(o *engine[T]) {
	e.list, o.list = o.list, e.list
	e.index, o.index = o.index, e.index
	e.hash, o.hash = o.hash, e.hash
	e.equal, o.equal = o.equal, e.equal
	e.multi, o.multi = o.multi, e.multi
}

// HashSet is the unique unordered set.
type HashSet[T any] struct{ e *engine[T] }

// NewHashSet creates an empty HashSet using hash and equal for hashing/equality.
func NewHashSet[T any](hash func(T) uint32, equal func(a, b T) bool) *HashSet[T] {
	return &HashSet[T]{e: newEngine[T](hash, equal, false)}
}

// NewDefaultHashSet creates an empty HashSet using the library's
// default FNV-1a hash and deep-equality predicate.
func NewDefaultHashSet[T any]() *HashSet[T] {
	return NewHashSet[T](func(v T) uint32 { return comp.Hash(v) }, func(a, b T) bool { return comp.EqualTo(a, b) })
}

func (s *HashSet[T]) Size() int            { return s.e.size() }
func (s *HashSet[T]) IsEmpty() bool        { return s.e.isEmpty() }
func (s *HashSet[T]) Clear()               { s.e.clear() }
func (s *HashSet[T]) Begin() Iterator[T]   { return s.e.begin() }
func (s *HashSet[T]) End() Iterator[T]     { return s.e.end() }
func (s *HashSet[T]) Find(v T) (Iterator[T], bool) { return s.e.find(v) }
func (s *HashSet[T]) Count(v T) int        { return s.e.count(v) }
func (s *HashSet[T]) Insert(v T) (Iterator[T], bool) { return s.e.insertUnique(v) }
func (s *HashSet[T]) Erase(it Iterator[T]) Iterator[T] { return s.e.erase(it) }
func (s *HashSet[T]) EraseValue(v T) int   { return s.e.eraseValue(v) }
func (s *HashSet[T]) Swap(other *HashSet[T]) { s.e.swap(other.e) }
func (s *HashSet[T]) BucketCount() int     { return s.e.index.BucketCount() }
func (s *HashSet[T]) LoadFactor() float64  { return s.e.index.LoadFactor() }
func (s *HashSet[T]) Rehash(n int)         { s.e.index.Rehash(n) }
func (s *HashSet[T]) HashFunction() func(T) uint32 { return s.e.hash }
func (s *HashSet[T]) KeyEq() func(a, b T) bool     { return s.e.equal }

// InsertSlice inserts every value, skipping duplicates.
func (s *HashSet[T]) InsertSlice(values []T) {
	for _, v := range values {
		s.Insert(v)
	}
}

// Values returns every element in the element list's order, which is
// insertion order.
func (s *HashSet[T]) Values() []T {
	out := make([]T, 0, s.Size())
	for it := s.Begin(); !it.Equal(s.End()); it = it.Next().(Iterator[T]) {
		out = append(out, it.Value())
	}
	return out
}

// HashMultiSet is the multi-key unordered set.
type HashMultiSet[T any] struct{ e *engine[T] }

// NewHashMultiSet creates an empty HashMultiSet using hash and equal.
func NewHashMultiSet[T any](hash func(T) uint32, equal func(a, b T) bool) *HashMultiSet[T] {
	return &HashMultiSet[T]{e: newEngine[T](hash, equal, true)}
}

// NewDefaultHashMultiSet creates an empty HashMultiSet using the
// library's default FNV-1a hash and deep-equality predicate.
func NewDefaultHashMultiSet[T any]() *HashMultiSet[T] {
	return NewHashMultiSet[T](func(v T) uint32 { return comp.Hash(v) }, func(a, b T) bool { return comp.EqualTo(a, b) })
}

func (s *HashMultiSet[T]) Size() int          { return s.e.size() }
func (s *HashMultiSet[T]) IsEmpty() bool      { return s.e.isEmpty() }
func (s *HashMultiSet[T]) Clear()             { s.e.clear() }
func (s *HashMultiSet[T]) Begin() Iterator[T] { return s.e.begin() }
func (s *HashMultiSet[T]) End() Iterator[T]   { return s.e.end() }
func (s *HashMultiSet[T]) Find(v T) (Iterator[T], bool)        { return s.e.find(v) }
func (s *HashMultiSet[T]) Count(v T) int                       { return s.e.count(v) }
func (s *HashMultiSet[T]) EqualRange(v T) (Iterator[T], Iterator[T]) { return s.e.equalRange(v) }
func (s *HashMultiSet[T]) Insert(v T) Iterator[T]              { return s.e.insertMulti(v) }
func (s *HashMultiSet[T]) Erase(it Iterator[T]) Iterator[T]    { return s.e.erase(it) }
func (s *HashMultiSet[T]) EraseValue(v T) int                  { return s.e.eraseValue(v) }
func (s *HashMultiSet[T]) Swap(other *HashMultiSet[T])         { s.e.swap(other.e) }
func (s *HashMultiSet[T]) BucketCount() int                    { return s.e.index.BucketCount() }
func (s *HashMultiSet[T]) Rehash(n int)                        { s.e.index.Rehash(n) }

// InsertSlice inserts every value, placing equal-keyed values adjacently.
func (s *HashMultiSet[T]) InsertSlice(values []T) {
	for _, v := range values {
		s.Insert(v)
	}
}

// Values returns every element; equal-keyed elements are contiguous.
func (s *HashMultiSet[T]) Values() []T {
	out := make([]T, 0, s.Size())
	for it := s.Begin(); !it.Equal(s.End()); it = it.Next().(Iterator[T]) {
		out = append(out, it.Value())
	}
	return out
}
