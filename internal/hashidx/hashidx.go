// Package hashidx implements the bucketed hash index backing the
// unordered (hash) associative containers: HashSet, HashMultiSet,
// HashMap, HashMultiMap. Each bucket holds the *dlist.Cell handles
// whose key hashes to it modulo the bucket count; like rbtree, the
// index never stores values, only cell pointers (spec §4.4).
//
// Order within a bucket is unspecified. Keeping every equal-keyed cell
// contiguous in the external list — required for equal_range on the
// multi variants — is a property the container maintains at insert
// time (see collections/hashset, collections/hashmap); this package
// only needs to find any one cell with a matching key.
package hashidx

import "github.com/ielm/gostl/internal/dlist"

const defaultBucketCount = 8

// Index is the hash table itself: an array of buckets, each an
// unordered slice of cell handles.
type Index[T any, K any] struct {
	buckets       [][]*dlist.Cell[T]
	size          int
	maxLoadFactor float64
	hash          func(K) uint32
	equal         func(a, b K) bool
	keyOf         func(T) K
}

// New creates an empty index with the default bucket count and a
// max_load_factor of 1.0 (spec §3 invariant 3's default).
func New[T any, K any](hash func(K) uint32, equal func(a, b K) bool, keyOf func(T) K) *Index[T, K] {
	idx := &Index[T, K]{
		maxLoadFactor: 1.0,
		hash:          hash,
		equal:         equal,
		keyOf:         keyOf,
	}
	idx.buckets = make([][]*dlist.Cell[T], defaultBucketCount)
	return idx
}

// Size returns the number of indexed cells.
func (idx *Index[T, K]) Size() int { return idx.size }

// BucketCount returns the current number of buckets (always ≥ 1).
func (idx *Index[T, K]) BucketCount() int { return len(idx.buckets) }

// LoadFactor returns size / bucket_count.
func (idx *Index[T, K]) LoadFactor() float64 {
	return float64(idx.size) / float64(len(idx.buckets))
}

// SetMaxLoadFactor changes the threshold that triggers a rehash on
// the next insert that would exceed it.
func (idx *Index[T, K]) SetMaxLoadFactor(f float64) { idx.maxLoadFactor = f }

func (idx *Index[T, K]) bucketFor(key K) int {
	return int(idx.hash(key) % uint32(len(idx.buckets)))
}

// Find returns one cell whose key equals key, if any exist.
func (idx *Index[T, K]) Find(key K) (*dlist.Cell[T], bool) {
	b := idx.buckets[idx.bucketFor(key)]
	for _, c := range b {
		if idx.equal(idx.keyOf(c.Value()), key) {
			return c, true
		}
	}
	return nil, false
}

// Count returns how many cells in key's bucket match key (O(bucket length)).
func (idx *Index[T, K]) Count(key K) int {
	n := 0
	for _, c := range idx.buckets[idx.bucketFor(key)] {
		if idx.equal(idx.keyOf(c.Value()), key) {
			n++
		}
	}
	return n
}

// Insert adds cell to the bucket its key maps to, rehashing first if
// that would push the load factor above max_load_factor.
func (idx *Index[T, K]) Insert(cell *dlist.Cell[T]) {
	if float64(idx.size+1)/float64(len(idx.buckets)) > idx.maxLoadFactor {
		idx.rehash(len(idx.buckets) * 2)
	}
	key := idx.keyOf(cell.Value())
	b := idx.bucketFor(key)
	idx.buckets[b] = append(idx.buckets[b], cell)
	cell.SetIndex(b)
	idx.size++
}

// Erase removes cell from its bucket. O(bucket length).
func (idx *Index[T, K]) Erase(cell *dlist.Cell[T]) bool {
	b, ok := cell.Index().(int)
	if !ok {
		b = idx.bucketFor(idx.keyOf(cell.Value()))
	}
	bucket := idx.buckets[b]
	for i, c := range bucket {
		if c == cell {
			idx.buckets[b] = append(bucket[:i], bucket[i+1:]...)
			idx.size--
			return true
		}
	}
	return false
}

// rehash rebuilds the bucket array with newBucketCount buckets,
// redistributing every cell. Cells themselves, and the element list
// they belong to, are untouched — only the internal bucket arrays
// change, so no iterator is invalidated.
func (idx *Index[T, K]) rehash(newBucketCount int) {
	if newBucketCount < 1 {
		newBucketCount = 1
	}
	old := idx.buckets
	idx.buckets = make([][]*dlist.Cell[T], newBucketCount)
	for _, bucket := range old {
		for _, cell := range bucket {
			key := idx.keyOf(cell.Value())
			b := idx.bucketFor(key)
			idx.buckets[b] = append(idx.buckets[b], cell)
			cell.SetIndex(b)
		}
	}
}

// Rehash forces the bucket count to at least newBucketCount,
// preserving the invariant that bucket count is always ≥ 1.
func (idx *Index[T, K]) Rehash(newBucketCount int) { idx.rehash(newBucketCount) }

// Clear empties the index back to the default bucket count.
func (idx *Index[T, K]) Clear() {
	idx.buckets = make([][]*dlist.Cell[T], defaultBucketCount)
	idx.size = 0
}
