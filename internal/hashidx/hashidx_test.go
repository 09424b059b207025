package hashidx

import (
	"testing"

	"github.com/ielm/gostl/internal/dlist"
)

func identity(v int) int { return v }
func equalInt(a, b int) bool { return a == b }
func hashInt(v int) uint32 { return uint32(v) }

func TestInsertFindCount(t *testing.T) {
	idx := New[int, int](hashInt, equalInt, identity)
	l := dlist.New[int]()
	for _, v := range []int{1, 2, 3, 4, 5} {
		idx.Insert(l.PushBack(v))
	}

	if idx.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", idx.Size())
	}
	if _, ok := idx.Find(3); !ok {
		t.Fatalf("Find(3) missed")
	}
	if _, ok := idx.Find(99); ok {
		t.Fatalf("Find(99) should miss")
	}
	if idx.Count(3) != 1 {
		t.Fatalf("Count(3) = %d, want 1", idx.Count(3))
	}
}

func TestRehashOnLoadFactor(t *testing.T) {
	idx := New[int, int](hashInt, equalInt, identity)
	l := dlist.New[int]()
	start := idx.BucketCount()
	for i := 0; i < start*4; i++ {
		idx.Insert(l.PushBack(i))
	}
	if idx.BucketCount() <= start {
		t.Fatalf("BucketCount() did not grow: %d", idx.BucketCount())
	}
	if idx.LoadFactor() > 1.0 {
		t.Fatalf("LoadFactor() = %f, exceeds max", idx.LoadFactor())
	}
	for i := 0; i < start*4; i++ {
		if _, ok := idx.Find(i); !ok {
			t.Fatalf("Find(%d) missed after rehash", i)
		}
	}
}

func TestEraseRemovesExactCell(t *testing.T) {
	idx := New[int, int](hashInt, equalInt, identity)
	l := dlist.New[int]()
	c1 := l.PushBack(7)
	c2 := l.PushBack(7) // same key, distinct cell (multi-style use)
	idx.Insert(c1)
	idx.Insert(c2)

	if idx.Count(7) != 2 {
		t.Fatalf("Count(7) = %d, want 2", idx.Count(7))
	}
	if !idx.Erase(c1) {
		t.Fatalf("Erase(c1) returned false")
	}
	if idx.Count(7) != 1 {
		t.Fatalf("Count(7) after erase = %d, want 1", idx.Count(7))
	}
	found, ok := idx.Find(7)
	if !ok || found != c2 {
		t.Fatalf("Find(7) after erase did not return the remaining cell")
	}
}

func TestExplicitRehashPreservesEntries(t *testing.T) {
	idx := New[int, int](hashInt, equalInt, identity)
	l := dlist.New[int]()
	for i := 0; i < 10; i++ {
		idx.Insert(l.PushBack(i))
	}
	idx.Rehash(64)
	if idx.BucketCount() != 64 {
		t.Fatalf("BucketCount() = %d, want 64", idx.BucketCount())
	}
	for i := 0; i < 10; i++ {
		if _, ok := idx.Find(i); !ok {
			t.Fatalf("Find(%d) missed after explicit rehash", i)
		}
	}
}
