package tree

import (
	"github.com/ielm/gostl/collections/comp"
	"github.com/ielm/gostl/errors"
	"golang.org/x/exp/constraints"
)

func pairKey[K any, V any](p comp.Pair[K, V]) K { return p.Key }

// TreeMap is the unique, ordered map: keys are ordered by less and no
// two keys compare equivalent.
type TreeMap[K any, V any] struct {
	e *engine[comp.Pair[K, V], K]
}

// NewTreeMap creates an empty TreeMap ordered by less over K.
func NewTreeMap[K any, V any](less func(a, b K) bool) *TreeMap[K, V] {
	return &TreeMap[K, V]{e: newEngine[comp.Pair[K, V], K](less, pairKey[K, V], false)}
}

// NewOrderedTreeMap creates an empty TreeMap whose key type orders naturally.
func NewOrderedTreeMap[K constraints.Ordered, V any]() *TreeMap[K, V] {
	return NewTreeMap[K, V](comp.LessOrdered[K])
}

func (m *TreeMap[K, V]) Size() int          { return m.e.size() }
func (m *TreeMap[K, V]) IsEmpty() bool      { return m.e.isEmpty() }
func (m *TreeMap[K, V]) Clear()             { m.e.clear() }
func (m *TreeMap[K, V]) Begin() Iterator[comp.Pair[K, V]] { return m.e.begin() }
func (m *TreeMap[K, V]) End() Iterator[comp.Pair[K, V]]   { return m.e.end() }

// Find returns an iterator to the (key, value) pair for key, if present.
func (m *TreeMap[K, V]) Find(key K) (Iterator[comp.Pair[K, V]], bool) { return m.e.find(key) }

// Count returns 1 if key is present, 0 otherwise.
func (m *TreeMap[K, V]) Count(key K) int { return m.e.count(key) }

func (m *TreeMap[K, V]) LowerBound(key K) Iterator[comp.Pair[K, V]] { return m.e.lowerBound(key) }
func (m *TreeMap[K, V]) UpperBound(key K) Iterator[comp.Pair[K, V]] { return m.e.upperBound(key) }

func (m *TreeMap[K, V]) EqualRange(key K) (Iterator[comp.Pair[K, V]], Iterator[comp.Pair[K, V]]) {
	return m.e.equalRange(key)
}

// Insert adds (key, value) if key is absent. On false, the returned
// iterator refers to the existing entry and value is discarded —
// matching spec.md's "keys are immutable post-insertion" state machine.
func (m *TreeMap[K, V]) Insert(key K, value V) (Iterator[comp.Pair[K, V]], bool) {
	return m.e.insert(comp.Pair[K, V]{Key: key, Value: value})
}

// InsertHint is the hint-insert form of Insert.
func (m *TreeMap[K, V]) InsertHint(hint Iterator[comp.Pair[K, V]], key K, value V) (Iterator[comp.Pair[K, V]], bool) {
	return m.e.insertWithHint(hint, comp.Pair[K, V]{Key: key, Value: value})
}

func (m *TreeMap[K, V]) Erase(it Iterator[comp.Pair[K, V]]) Iterator[comp.Pair[K, V]] {
	return m.e.erase(it)
}

func (m *TreeMap[K, V]) EraseRange(first, last Iterator[comp.Pair[K, V]]) Iterator[comp.Pair[K, V]] {
	return m.e.eraseRange(first, last)
}

// EraseKey removes the entry for key, if present, and reports whether
// anything was removed.
func (m *TreeMap[K, V]) EraseKey(key K) bool { return m.e.eraseKey(key) > 0 }

// At returns the value for key, or a LogicError(out-of-range) if absent.
func (m *TreeMap[K, V]) At(key K) (V, error) {
	it, ok := m.e.find(key)
	if !ok {
		var zero V
		return zero, errors.OutOfRange("key not found")
	}
	return it.Value().Value, nil
}

// Get returns the value for key and whether it was present.
func (m *TreeMap[K, V]) Get(key K) (V, bool) {
	it, ok := m.e.find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return it.Value().Value, true
}

// Ref returns a pointer to key's value, default-inserting a zero value
// first if key is absent — the operator[]-style default-inserting
// lookup spec.md §4.5 asks for, expressed as a mutable reference since
// Go has no index-operator overload.
func (m *TreeMap[K, V]) Ref(key K) *V {
	it, ok := m.e.find(key)
	if !ok {
		it, _ = m.e.insert(comp.Pair[K, V]{Key: key})
	}
	return &it.Cell().ValuePtr().Value
}

// Set assigns value to key's entry, default-inserting if absent (the
// mutate-through-iterator path for map values spec.md §4.5 describes).
func (m *TreeMap[K, V]) Set(key K, value V) {
	it, ok := m.e.find(key)
	if !ok {
		m.e.insert(comp.Pair[K, V]{Key: key, Value: value})
		return
	}
	it.Cell().SetValue(comp.Pair[K, V]{Key: key, Value: value})
}

func (m *TreeMap[K, V]) Swap(other *TreeMap[K, V]) { m.e.swap(other.e) }
func (m *TreeMap[K, V]) KeyComp() comp.Comparator[K] { return m.e.keyComp() }
func (m *TreeMap[K, V]) ValueComp() comp.Comparator[comp.Pair[K, V]] {
	kc := m.e.keyComp()
	return comp.PairComparator[K, V](kc)
}

// Keys returns every key in sorted order.
func (m *TreeMap[K, V]) Keys() []K {
	out := make([]K, 0, m.Size())
	for it := m.Begin(); !it.Equal(m.End()); it = it.Next().(Iterator[comp.Pair[K, V]]) {
		out = append(out, it.Value().Key)
	}
	return out
}

// TreeMultiMap is the multi-key ordered map: duplicate keys are
// allowed and kept contiguous in iteration order.
type TreeMultiMap[K any, V any] struct {
	e *engine[comp.Pair[K, V], K]
}

// NewTreeMultiMap creates an empty TreeMultiMap ordered by less over K.
func NewTreeMultiMap[K any, V any](less func(a, b K) bool) *TreeMultiMap[K, V] {
	return &TreeMultiMap[K, V]{e: newEngine[comp.Pair[K, V], K](less, pairKey[K, V], true)}
}

// NewOrderedTreeMultiMap creates an empty TreeMultiMap whose key type orders naturally.
func NewOrderedTreeMultiMap[K constraints.Ordered, V any]() *TreeMultiMap[K, V] {
	return NewTreeMultiMap[K, V](comp.LessOrdered[K])
}

func (m *TreeMultiMap[K, V]) Size() int          { return m.e.size() }
func (m *TreeMultiMap[K, V]) IsEmpty() bool      { return m.e.isEmpty() }
func (m *TreeMultiMap[K, V]) Clear()             { m.e.clear() }
func (m *TreeMultiMap[K, V]) Begin() Iterator[comp.Pair[K, V]] { return m.e.begin() }
func (m *TreeMultiMap[K, V]) End() Iterator[comp.Pair[K, V]]   { return m.e.end() }
func (m *TreeMultiMap[K, V]) Count(key K) int    { return m.e.count(key) }

func (m *TreeMultiMap[K, V]) Find(key K) (Iterator[comp.Pair[K, V]], bool) { return m.e.find(key) }
func (m *TreeMultiMap[K, V]) LowerBound(key K) Iterator[comp.Pair[K, V]]   { return m.e.lowerBound(key) }
func (m *TreeMultiMap[K, V]) UpperBound(key K) Iterator[comp.Pair[K, V]]   { return m.e.upperBound(key) }

func (m *TreeMultiMap[K, V]) EqualRange(key K) (Iterator[comp.Pair[K, V]], Iterator[comp.Pair[K, V]]) {
	return m.e.equalRange(key)
}

// Insert always succeeds and returns an iterator to the new entry.
func (m *TreeMultiMap[K, V]) Insert(key K, value V) Iterator[comp.Pair[K, V]] {
	it, _ := m.e.insert(comp.Pair[K, V]{Key: key, Value: value})
	return it
}

func (m *TreeMultiMap[K, V]) InsertHint(hint Iterator[comp.Pair[K, V]], key K, value V) Iterator[comp.Pair[K, V]] {
	it, _ := m.e.insertWithHint(hint, comp.Pair[K, V]{Key: key, Value: value})
	return it
}

func (m *TreeMultiMap[K, V]) Erase(it Iterator[comp.Pair[K, V]]) Iterator[comp.Pair[K, V]] {
	return m.e.erase(it)
}

func (m *TreeMultiMap[K, V]) EraseRange(first, last Iterator[comp.Pair[K, V]]) Iterator[comp.Pair[K, V]] {
	return m.e.eraseRange(first, last)
}

func (m *TreeMultiMap[K, V]) EraseKey(key K) int { return m.e.eraseKey(key) }

func (m *TreeMultiMap[K, V]) Swap(other *TreeMultiMap[K, V]) { m.e.swap(other.e) }
func (m *TreeMultiMap[K, V]) KeyComp() comp.Comparator[K]    { return m.e.keyComp() }

