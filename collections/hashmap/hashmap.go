// Package hashmap provides the two unordered map containers, HashMap
// (unique) and HashMultiMap (multi), built on the bucketed hash index
// (internal/hashidx) over an intrusive element list (internal/dlist).
//
// This replaces the teacher's SIMD-control-byte, open-addressed
// HashMap: that design stored values directly in a flat slab indexed
// by probe sequence, which cannot satisfy spec §3 invariant 6
// ("insertion never invalidates any iterator") because a resize moves
// every entry. Keeping values in the intrusive list and only
// rehashing bucket *references* (internal/hashidx.rehash) preserves
// that invariant while keeping the teacher's load-factor/rehash
// vocabulary (a max load factor and a rehash step; the teacher's
// defaultLoadFactor/shouldResize names are not used).
package hashmap

import (
	"github.com/ielm/gostl/collections/comp"
	"github.com/ielm/gostl/errors"
	"github.com/ielm/gostl/internal/dlist"
	"github.com/ielm/gostl/internal/hashidx"
)

// Iterator is the common iterator type for hash-map containers.
type Iterator[K any, V any] = dlist.Iter[comp.Pair[K, V]]

type engine[K any, V any] struct {
	list  *dlist.List[comp.Pair[K, V]]
	index *hashidx.Index[comp.Pair[K, V], K]
	hash  func(K) uint32
	equal func(a, b K) bool
	multi bool
}

func keyOf[K any, V any](p comp.Pair[K, V]) K { return p.Key }

func newEngine[K any, V any](hash func(K) uint32, equal func(a, b K) bool, multi bool) *engine[K, V] {
	return &engine[K, V]{
		list:  dlist.New[comp.Pair[K, V]](),
		index: hashidx.New[comp.Pair[K, V], K](hash, equal, keyOf[K, V]),
		hash:  hash,
		equal: equal,
		multi: multi,
	}
}

func (e *engine[K, V]) size() int     { return e.list.Size() }
func (e *engine[K, V]) isEmpty() bool { return e.list.Size() == 0 }

func (e *engine[K, V]) clear() {
	e.list.Clear()
	e.index = hashidx.New[comp.Pair[K, V], K](e.hash, e.equal, keyOf[K, V])
}

func (e *engine[K, V]) begin() Iterator[K, V] { return e.list.At(e.list.Begin()) }
func (e *engine[K, V]) end() Iterator[K, V]   { return e.list.At(e.list.End()) }

func (e *engine[K, V]) find(key K) (Iterator[K, V], bool) {
	c, ok := e.index.Find(key)
	if !ok {
		return e.end(), false
	}
	return e.list.At(c), true
}

func (e *engine[K, V]) count(key K) int { return e.index.Count(key) }

func (e *engine[K, V]) equalRange(key K) (Iterator[K, V], Iterator[K, V]) {
	match, ok := e.index.Find(key)
	if !ok {
		return e.end(), e.end()
	}
	start := match
	for start != e.list.Begin() {
		p := start.Prev()
		if !e.equal(p.Value().Key, key) {
			break
		}
		start = p
	}
	stop := match
	for {
		n := stop.Next()
		if n == e.list.End() || !e.equal(n.Value().Key, key) {
			break
		}
		stop = n
	}
	return e.list.At(start), e.list.At(stop.Next())
}

func (e *engine[K, V]) insertUnique(key K, value V) (Iterator[K, V], bool) {
	if c, ok := e.index.Find(key); ok {
		return e.list.At(c), false
	}
	cell := e.list.PushBack(comp.Pair[K, V]{Key: key, Value: value})
	e.index.Insert(cell)
	return e.list.At(cell), true
}

func (e *engine[K, V]) insertMulti(key K, value V) Iterator[K, V] {
	var cell *dlist.Cell[comp.Pair[K, V]]
	if existing, ok := e.index.Find(key); ok {
		cell = e.list.InsertBefore(existing.Next(), comp.Pair[K, V]{Key: key, Value: value})
	} else {
		cell = e.list.PushBack(comp.Pair[K, V]{Key: key, Value: value})
	}
	e.index.Insert(cell)
	return e.list.At(cell)
}

func (e *engine[K, V]) erase(it Iterator[K, V]) Iterator[K, V] {
	cell := it.Cell()
	if cell == e.list.End() {
		return it
	}
	e.index.Erase(cell)
	next := e.list.Erase(cell)
	return e.list.At(next)
}

func (e *engine[K, V]) eraseKey(key K) int {
	lo, hi := e.equalRange(key)
	n := 0
	for c := lo.Cell(); c != hi.Cell(); {
		e.index.Erase(c)
		c = e.list.Erase(c)
		n++
	}
	return n
}

func (e *engine[K, V]) swap(o *engine[K, V]) {
	e.list, o.list = o.list, e.list
	e.index, o.index = o.index, e.index
	e.hash, o.hash = o.hash, e.hash
	e.equal, o.equal = o.equal, e.equal
	e.multi, o.multi = o.multi, e.multi
}

// HashMap is the unique unordered map.
type HashMap[K any, V any] struct{ e *engine[K, V] }

// NewHashMap creates an empty HashMap using hash and equal for keys.
func NewHashMap[K any, V any](hash func(K) uint32, equal func(a, b K) bool) *HashMap[K, V] {
	return &HashMap[K, V]{e: newEngine[K, V](hash, equal, false)}
}

// NewDefaultHashMap creates an empty HashMap using the library's
// default FNV-1a hash and deep-equality predicate over K.
func NewDefaultHashMap[K any, V any]() *HashMap[K, V] {
	return NewHashMap[K, V](func(k K) uint32 { return comp.Hash(k) }, func(a, b K) bool { return comp.EqualTo(a, b) })
}

func (m *HashMap[K, V]) Size() int             { return m.e.size() }
func (m *HashMap[K, V]) IsEmpty() bool         { return m.e.isEmpty() }
func (m *HashMap[K, V]) Clear()                { m.e.clear() }
func (m *HashMap[K, V]) Begin() Iterator[K, V] { return m.e.begin() }
func (m *HashMap[K, V]) End() Iterator[K, V]   { return m.e.end() }
func (m *HashMap[K, V]) Find(key K) (Iterator[K, V], bool) { return m.e.find(key) }
func (m *HashMap[K, V]) Count(key K) int                   { return m.e.count(key) }
func (m *HashMap[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	return m.e.insertUnique(key, value)
}
func (m *HashMap[K, V]) Erase(it Iterator[K, V]) Iterator[K, V] { return m.e.erase(it) }
func (m *HashMap[K, V]) EraseKey(key K) bool                    { return m.e.eraseKey(key) > 0 }
func (m *HashMap[K, V]) Swap(other *HashMap[K, V])              { m.e.swap(other.e) }
func (m *HashMap[K, V]) BucketCount() int                       { return m.e.index.BucketCount() }
func (m *HashMap[K, V]) LoadFactor() float64                    { return m.e.index.LoadFactor() }
func (m *HashMap[K, V]) Rehash(n int)                           { m.e.index.Rehash(n) }
func (m *HashMap[K, V]) HashFunction() func(K) uint32           { return m.e.hash }
func (m *HashMap[K, V]) KeyEq() func(a, b K) bool               { return m.e.equal }

// At returns the value for key, or a LogicError(out-of-range) if absent.
func (m *HashMap[K, V]) At(key K) (V, error) {
	it, ok := m.e.find(key)
	if !ok {
		var zero V
		return zero, errors.OutOfRange("key not found")
	}
	return it.Value().Value, nil
}

// Get returns the value for key and whether it was present.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	it, ok := m.e.find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return it.Value().Value, true
}

// Ref returns a pointer to key's value, default-inserting a zero value
// first if key is absent.
func (m *HashMap[K, V]) Ref(key K) *V {
	it, ok := m.e.find(key)
	if !ok {
		it, _ = m.e.insertUnique(key, *new(V))
	}
	return &it.Cell().ValuePtr().Value
}

// Set assigns value to key's entry, default-inserting if absent.
func (m *HashMap[K, V]) Set(key K, value V) {
	it, ok := m.e.find(key)
	if !ok {
		m.e.insertUnique(key, value)
		return
	}
	it.Cell().SetValue(comp.Pair[K, V]{Key: key, Value: value})
}

// Keys returns every key in the element list's order, which is
// insertion order.
func (m *HashMap[K, V]) Keys() []K {
	out := make([]K, 0, m.Size())
	for it := m.Begin(); !it.Equal(m.End()); it = it.Next().(Iterator[K, V]) {
		out = append(out, it.Value().Key)
	}
	return out
}

// HashMultiMap is the multi-key unordered map.
type HashMultiMap[K any, V any] struct{ e *engine[K, V] }

// NewHashMultiMap creates an empty HashMultiMap using hash and equal for keys.
func NewHashMultiMap[K any, V any](hash func(K) uint32, equal func(a, b K) bool) *HashMultiMap[K, V] {
	return &HashMultiMap[K, V]{e: newEngine[K, V](hash, equal, true)}
}

// NewDefaultHashMultiMap creates an empty HashMultiMap using the
// library's default FNV-1a hash and deep-equality predicate over K.
func NewDefaultHashMultiMap[K any, V any]() *HashMultiMap[K, V] {
	return NewHashMultiMap[K, V](func(k K) uint32 { return comp.Hash(k) }, func(a, b K) bool { return comp.EqualTo(a, b) })
}

func (m *HashMultiMap[K, V]) Size() int             { return m.e.size() }
func (m *HashMultiMap[K, V]) IsEmpty() bool         { return m.e.isEmpty() }
func (m *HashMultiMap[K, V]) Clear()                { m.e.clear() }
func (m *HashMultiMap[K, V]) Begin() Iterator[K, V] { return m.e.begin() }
func (m *HashMultiMap[K, V]) End() Iterator[K, V]   { return m.e.end() }
func (m *HashMultiMap[K, V]) Find(key K) (Iterator[K, V], bool)        { return m.e.find(key) }
func (m *HashMultiMap[K, V]) Count(key K) int                          { return m.e.count(key) }
func (m *HashMultiMap[K, V]) EqualRange(key K) (Iterator[K, V], Iterator[K, V]) {
	return m.e.equalRange(key)
}
func (m *HashMultiMap[K, V]) Insert(key K, value V) Iterator[K, V] {
	return m.e.insertMulti(key, value)
}
func (m *HashMultiMap[K, V]) Erase(it Iterator[K, V]) Iterator[K, V] { return m.e.erase(it) }
func (m *HashMultiMap[K, V]) EraseKey(key K) int                     { return m.e.eraseKey(key) }
func (m *HashMultiMap[K, V]) Swap(other *HashMultiMap[K, V])         { m.e.swap(other.e) }
func (m *HashMultiMap[K, V]) BucketCount() int                       { return m.e.index.BucketCount() }
func (m *HashMultiMap[K, V]) Rehash(n int)                           { m.e.index.Rehash(n) }
