// Package rbtree implements the red-black tree index that backs every
// ordered (tree) associative container: TreeSet, TreeMultiSet,
// TreeMap, TreeMultiMap. The tree never stores values itself — each
// node's payload is a *dlist.Cell[T] pointing into the container's
// element list, so a lookup projects through the cell to reach the
// value (spec §4.3: "the node payload is a pointer to the list
// iterator, not a copy of the value").
//
// Equivalence, not strong equality, governs uniqueness here: two keys
// a, b are equivalent when !less(a,b) && !less(b,a). Tree-multi
// containers rely on that same relation to group equal keys into a
// contiguous equal_range.
package rbtree

import "github.com/ielm/gostl/internal/dlist"

type color bool

const (
	red   color = true
	black color = false
)

// Node is one vertex of the tree. left/right/parent point at nilNode
// (never real nil) for missing children/root's parent, the classic
// sentinel trick that keeps Insert/Delete free of nil checks.
type Node[T any, K any] struct {
	key                 K
	cell                *dlist.Cell[T]
	color               color
	left, right, parent *Node[T, K]
}

// Key returns the node's indexed key.
func (n *Node[T, K]) Key() K { return n.key }

// Cell returns the list cell this node indexes.
func (n *Node[T, K]) Cell() *dlist.Cell[T] { return n.cell }

// Tree is a red-black tree keyed by a strict weak ordering `less`.
type Tree[T any, K any] struct {
	nilNode *Node[T, K]
	root    *Node[T, K]
	size    int
	less    func(a, b K) bool
}

// New creates an empty tree ordered by less.
func New[T any, K any](less func(a, b K) bool) *Tree[T, K] {
	t := &Tree[T, K]{less: less}
	t.nilNode = &Node[T, K]{color: black}
	t.nilNode.left, t.nilNode.right, t.nilNode.parent = t.nilNode, t.nilNode, t.nilNode
	t.root = t.nilNode
	return t
}

// Size returns the number of indexed nodes.
func (t *Tree[T, K]) Size() int { return t.size }

// Nil reports whether n is the tree's sentinel (i.e. "no such node").
func (t *Tree[T, K]) Nil(n *Node[T, K]) bool { return n == t.nilNode }

// End returns the tree's sentinel node, the structural counterpart of
// the element list's end() used when translating a list position into
// a tree position (e.g. for hint-insert).
func (t *Tree[T, K]) End() *Node[T, K] { return t.nilNode }

func (t *Tree[T, K]) equiv(a, b K) bool { return !t.less(a, b) && !t.less(b, a) }

// Min returns the leftmost (smallest-key) node, or the sentinel if empty.
func (t *Tree[T, K]) Min() *Node[T, K] { return t.min(t.root) }

func (t *Tree[T, K]) min(n *Node[T, K]) *Node[T, K] {
	if t.Nil(n) {
		return n
	}
	for !t.Nil(n.left) {
		n = n.left
	}
	return n
}

// Max returns the rightmost (largest-key) node, or the sentinel if empty.
func (t *Tree[T, K]) Max() *Node[T, K] { return t.max(t.root) }

func (t *Tree[T, K]) max(n *Node[T, K]) *Node[T, K] {
	if t.Nil(n) {
		return n
	}
	for !t.Nil(n.right) {
		n = n.right
	}
	return n
}

// Successor returns the in-order successor of n, or the sentinel if n is the max.
func (t *Tree[T, K]) Successor(n *Node[T, K]) *Node[T, K] {
	if !t.Nil(n.right) {
		return t.min(n.right)
	}
	p := n.parent
	for !t.Nil(p) && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

// Predecessor returns the in-order predecessor of n, or the sentinel if n is the min.
func (t *Tree[T, K]) Predecessor(n *Node[T, K]) *Node[T, K] {
	if !t.Nil(n.left) {
		return t.max(n.left)
	}
	p := n.parent
	for !t.Nil(p) && n == p.left {
		n = p
		p = p.parent
	}
	return p
}

// Find returns the node whose key is equivalent to key, if any.
func (t *Tree[T, K]) Find(key K) (*Node[T, K], bool) {
	n := t.root
	for !t.Nil(n) {
		switch {
		case t.less(key, n.key):
			n = n.left
		case t.less(n.key, key):
			n = n.right
		default:
			return n, true
		}
	}
	return nil, false
}

// LowerBound returns the smallest-keyed node not less than key, or the
// sentinel if every key is less than key.
func (t *Tree[T, K]) LowerBound(key K) *Node[T, K] {
	n, result := t.root, t.nilNode
	for !t.Nil(n) {
		if !t.less(n.key, key) {
			result = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return result
}

// UpperBound returns the smallest-keyed node strictly greater than
// key, or the sentinel if no such node exists.
func (t *Tree[T, K]) UpperBound(key K) *Node[T, K] {
	n, result := t.root, t.nilNode
	for !t.Nil(n) {
		if t.less(key, n.key) {
			result = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return result
}

// EqualRange returns [LowerBound(key), UpperBound(key)).
func (t *Tree[T, K]) EqualRange(key K) (*Node[T, K], *Node[T, K]) {
	return t.LowerBound(key), t.UpperBound(key)
}

// Count returns the number of nodes equivalent to key.
func (t *Tree[T, K]) Count(key K) int {
	lo, hi := t.EqualRange(key)
	n := 0
	for cur := lo; cur != hi; cur = t.Successor(cur) {
		n++
	}
	return n
}

// Insert performs a full O(log n) search-and-insert of cell under key,
// ignoring uniqueness (callers enforce the unique/multi policy before
// calling this). Returns the new node.
func (t *Tree[T, K]) Insert(cell *dlist.Cell[T], key K) *Node[T, K] {
	parent := t.nilNode
	cur := t.root
	goLeft := false
	for !t.Nil(cur) {
		parent = cur
		if t.less(key, cur.key) {
			cur = cur.left
			goLeft = true
		} else {
			cur = cur.right
			goLeft = false
		}
	}
	return t.attach(parent, goLeft, cell, key)
}

// InsertBeforeNode places a new node holding (cell, key) as the
// in-order predecessor of successor (or as the new maximum if
// successor is the sentinel), without any key comparisons. It still
// walks down to the maximum of successor's left subtree (or of the
// whole tree, when successor is the sentinel) to find the attach
// point, so it costs O(log n) pointer steps plus the rebalancing.
// Insert-with-hint uses it once the position is known from a verified hint.
func (t *Tree[T, K]) InsertBeforeNode(successor *Node[T, K], cell *dlist.Cell[T], key K) *Node[T, K] {
	if t.Nil(successor) {
		max := t.Max()
		if t.Nil(max) {
			return t.attach(t.nilNode, false, cell, key)
		}
		return t.attach(max, false, cell, key)
	}
	if t.Nil(successor.left) {
		return t.attach(successor, true, cell, key)
	}
	pred := t.max(successor.left)
	return t.attach(pred, false, cell, key)
}

func (t *Tree[T, K]) attach(parent *Node[T, K], asLeft bool, cell *dlist.Cell[T], key K) *Node[T, K] {
	n := &Node[T, K]{key: key, cell: cell, color: red, left: t.nilNode, right: t.nilNode, parent: parent}
	cell.SetIndex(n)
	if t.Nil(parent) {
		t.root = n
	} else if asLeft {
		parent.left = n
	} else {
		parent.right = n
	}
	t.size++
	t.fixInsert(n)
	return n
}

func (t *Tree[T, K]) rotateLeft(x *Node[T, K]) {
	y := x.right
	x.right = y.left
	if !t.Nil(y.left) {
		y.left.parent = x
	}
	y.parent = x.parent
	if t.Nil(x.parent) {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree[T, K]) rotateRight(x *Node[T, K]) {
	y := x.left
	x.left = y.right
	if !t.Nil(y.right) {
		y.right.parent = x
	}
	y.parent = x.parent
	if t.Nil(x.parent) {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

func (t *Tree[T, K]) fixInsert(z *Node[T, K]) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.rotateLeft(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateRight(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateLeft(z.parent.parent)
			}
		}
		if z == t.root {
			break
		}
	}
	t.root.color = black
}

func (t *Tree[T, K]) transplant(u, v *Node[T, K]) {
	if t.Nil(u.parent) {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

// Delete removes node z from the tree. O(log n).
func (t *Tree[T, K]) Delete(z *Node[T, K]) {
	y := z
	yOriginalColor := y.color
	var x *Node[T, K]

	if t.Nil(z.left) {
		x = z.right
		t.transplant(z, z.right)
	} else if t.Nil(z.right) {
		x = z.left
		t.transplant(z, z.left)
	} else {
		y = t.min(z.right)
		yOriginalColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOriginalColor == black {
		t.fixDelete(x)
	}
	t.size--
}

func (t *Tree[T, K]) fixDelete(x *Node[T, K]) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					t.rotateRight(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.rotateLeft(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.rotateLeft(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rotateRight(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}

// InOrder returns the keys in sorted order, for invariant testing only.
func (t *Tree[T, K]) InOrder() []K {
	keys := make([]K, 0, t.size)
	var walk func(n *Node[T, K])
	walk = func(n *Node[T, K]) {
		if t.Nil(n) {
			return
		}
		walk(n.left)
		keys = append(keys, n.key)
		walk(n.right)
	}
	walk(t.root)
	return keys
}

// BlackHeight verifies red-black invariants (no red-red, equal black
// height on every path) and returns the common black height, or -1 if
// violated. For invariant testing only.
func (t *Tree[T, K]) BlackHeight() int {
	if t.root.color != black {
		return -1
	}
	h, ok := t.blackHeight(t.root)
	if !ok {
		return -1
	}
	return h
}

func (t *Tree[T, K]) blackHeight(n *Node[T, K]) (int, bool) {
	if t.Nil(n) {
		return 1, true
	}
	if n.color == red && (n.left.color == red || n.right.color == red) {
		return 0, false
	}
	lh, lok := t.blackHeight(n.left)
	rh, rok := t.blackHeight(n.right)
	if !lok || !rok || lh != rh {
		return 0, false
	}
	add := 0
	if n.color == black {
		add = 1
	}
	return lh + add, true
}
