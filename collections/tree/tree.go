// Package tree provides the four tree-backed associative containers —
// TreeSet, TreeMultiSet, TreeMap, TreeMultiMap — built on the
// red-black tree index (internal/rbtree) over an intrusive element
// list (internal/dlist). This file holds the engine the four public
// types share; treeset.go and treemap.go add the set- and map-shaped
// surface spec.md §4.5 describes.
package tree

import (
	"github.com/ielm/gostl/collections/comp"
	"github.com/ielm/gostl/internal/dlist"
	"github.com/ielm/gostl/internal/rbtree"
)

// Iterator is the common iterator type for every tree container: a
// (list, cell) handle satisfying iterator.Bidirectional[T].
type Iterator[T any] = dlist.Iter[T]

// engine is the shared list+index plumbing parameterized by the
// element type T (T itself for sets, comp.Pair[K,V] for maps) and the
// key type K the tree actually orders by.
type engine[T any, K any] struct {
	list  *dlist.List[T]
	index *rbtree.Tree[T, K]
	keyOf func(T) K
	less  func(a, b K) bool
	multi bool
}

func newEngine[T any, K any](less func(a, b K) bool, keyOf func(T) K, multi bool) *engine[T, K] {
	return &engine[T, K]{
		list:  dlist.New[T](),
		index: rbtree.New[T, K](less),
		keyOf: keyOf,
		less:  less,
		multi: multi,
	}
}

func (e *engine[T, K]) size() int   { return e.list.Size() }
func (e *engine[T, K]) isEmpty() bool { return e.list.Size() == 0 }

func (e *engine[T, K]) clear() {
	e.list.Clear()
	e.index = rbtree.New[T, K](e.less)
}

func (e *engine[T, K]) begin() Iterator[T] { return e.list.At(e.list.Begin()) }
func (e *engine[T, K]) end() Iterator[T]   { return e.list.At(e.list.End()) }

func (e *engine[T, K]) find(key K) (Iterator[T], bool) {
	n, ok := e.index.Find(key)
	if !ok {
		return e.end(), false
	}
	return e.list.At(n.Cell()), true
}

func (e *engine[T, K]) count(key K) int { return e.index.Count(key) }

func (e *engine[T, K]) lowerBound(key K) Iterator[T] {
	n := e.index.LowerBound(key)
	if e.index.Nil(n) {
		return e.end()
	}
	return e.list.At(n.Cell())
}

func (e *engine[T, K]) upperBound(key K) Iterator[T] {
	n := e.index.UpperBound(key)
	if e.index.Nil(n) {
		return e.end()
	}
	return e.list.At(n.Cell())
}

func (e *engine[T, K]) equalRange(key K) (Iterator[T], Iterator[T]) {
	return e.lowerBound(key), e.upperBound(key)
}

// nodeOfCell maps a list cell back to its tree node, treating the
// list's own end() sentinel as the tree's end() sentinel.
func (e *engine[T, K]) nodeOfCell(c *dlist.Cell[T]) *rbtree.Node[T, K] {
	if c == e.list.End() {
		return e.index.End()
	}
	return c.Index().(*rbtree.Node[T, K])
}

// insert performs the full O(log n) insert. For unique containers it
// first checks for an equivalent key and refuses the insert if found.
func (e *engine[T, K]) insert(value T) (Iterator[T], bool) {
	key := e.keyOf(value)
	if !e.multi {
		if n, ok := e.index.Find(key); ok {
			return e.list.At(n.Cell()), false
		}
	}
	successor := e.index.UpperBound(key)
	var mark *dlist.Cell[T]
	if e.index.Nil(successor) {
		mark = e.list.End()
	} else {
		mark = successor.Cell()
	}
	cell := e.list.InsertBefore(mark, value)
	e.index.Insert(cell, key)
	return e.list.At(cell), true
}

// insertWithHint implements spec.md §4.5's hint contract: when the
// hint is verified adjacent to the right spot the value is placed
// there without a key search (the unique-key check and the tree
// attach still cost O(log n)); otherwise it falls back to the full
// search.
func (e *engine[T, K]) insertWithHint(hint Iterator[T], value T) (Iterator[T], bool) {
	key := e.keyOf(value)
	hintCell := hint.Cell()

	hintPositioned := hintCell != e.list.End() &&
		(e.less(e.keyOf(hintCell.Value()), key) || (e.multi && e.equiv(e.keyOf(hintCell.Value()), key)))
	if hintPositioned {
		nextCell := hint.Next().(Iterator[T]).Cell()
		boundaryOK := nextCell == e.list.End() || e.less(key, e.keyOf(nextCell.Value()))
		if boundaryOK {
			if !e.multi {
				if n, ok := e.index.Find(key); ok {
					return e.list.At(n.Cell()), false
				}
			}
			cell := e.list.InsertBefore(nextCell, value)
			e.index.InsertBeforeNode(e.nodeOfCell(nextCell), cell, key)
			return e.list.At(cell), true
		}
	}
	return e.insert(value)
}

func (e *engine[T, K]) equiv(a, b K) bool { return !e.less(a, b) && !e.less(b, a) }

func (e *engine[T, K]) erase(it Iterator[T]) Iterator[T] {
	cell := it.Cell()
	if cell == e.list.End() {
		return it
	}
	node := cell.Index().(*rbtree.Node[T, K])
	e.index.Delete(node)
	next := e.list.Erase(cell)
	return e.list.At(next)
}

func (e *engine[T, K]) eraseRange(first, last Iterator[T]) Iterator[T] {
	for c := first.Cell(); c != last.Cell(); {
		n := c.Index().(*rbtree.Node[T, K])
		e.index.Delete(n)
		c = e.list.Erase(c)
	}
	return last
}

func (e *engine[T, K]) eraseKey(key K) int {
	lo, hi := e.equalRange(key)
	n := 0
	for c := lo.Cell(); c != hi.Cell(); {
		node := c.Index().(*rbtree.Node[T, K])
		e.index.Delete(node)
		c = e.list.Erase(c)
		n++
	}
	return n
}

func (e *engine[T, K]) swap(o *engine[T, K]) {
	e.list, o.list = o.list, e.list
	e.index, o.index = o.index, e.index
	e.keyOf, o.keyOf = o.keyOf, e.keyOf
	e.less, o.less = o.less, e.less
	e.multi, o.multi = o.multi, e.multi
}

// keyComp exposes the ordering predicate, for the KeyComp/ValueComp
// observers spec.md §4.5 requires.
func (e *engine[T, K]) keyComp() comp.Comparator[K] {
	less := e.less
	return func(a, b K) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}
