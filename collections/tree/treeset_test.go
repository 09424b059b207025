package tree

import (
	"testing"

	"github.com/ielm/gostl/collections/comp"
)

func TestTreeSetInsertRejectsDuplicates(t *testing.T) {
	s := NewOrderedTreeSet[int]()
	if _, ok := s.Insert(5); !ok {
		t.Fatalf("first insert of 5 should succeed")
	}
	if _, ok := s.Insert(5); ok {
		t.Fatalf("second insert of 5 should report false")
	}
	if s.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", s.Size())
	}
}

func TestTreeSetValuesAreSorted(t *testing.T) {
	s := NewTreeSetFromSlice([]int{5, 1, 4, 1, 5, 9, 2, 6}, comp.LessOrdered[int])
	got := s.Values()
	want := []int{1, 2, 4, 5, 6, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestTreeSetLowerUpperBound(t *testing.T) {
	s := NewTreeSetFromSlice([]int{10, 20, 30, 40}, comp.LessOrdered[int])
	if it := s.LowerBound(25); it.Value() != 30 {
		t.Fatalf("LowerBound(25) = %d, want 30", it.Value())
	}
	if it := s.UpperBound(20); it.Value() != 30 {
		t.Fatalf("UpperBound(20) = %d, want 30", it.Value())
	}
	if !s.UpperBound(40).Equal(s.End()) {
		t.Fatalf("UpperBound(40) should be end()")
	}
}

func TestTreeSetEraseValue(t *testing.T) {
	s := NewTreeSetFromSlice([]int{1, 2, 3}, comp.LessOrdered[int])
	if n := s.EraseValue(2); n != 1 {
		t.Fatalf("EraseValue(2) = %d, want 1", n)
	}
	if n := s.EraseValue(2); n != 0 {
		t.Fatalf("second EraseValue(2) = %d, want 0", n)
	}
	if _, ok := s.Find(2); ok {
		t.Fatalf("2 should no longer be present")
	}
	if s.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", s.Size())
	}
}

func TestTreeSetInsertHintFallsBackWhenWrong(t *testing.T) {
	s := NewTreeSetFromSlice([]int{1, 5, 10}, comp.LessOrdered[int])
	// hint points at the wrong spot; insert must still land correctly.
	_, ok := s.InsertHint(s.Begin(), 7)
	if !ok {
		t.Fatalf("InsertHint(7) should succeed even with a bad hint")
	}
	got := s.Values()
	want := []int{1, 5, 7, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestTreeMultiSetKeepsDuplicates(t *testing.T) {
	ms := NewTreeMultiSetFromSlice([]int{3, 1, 3, 2, 3}, comp.LessOrdered[int])
	if ms.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", ms.Size())
	}
	if ms.Count(3) != 3 {
		t.Fatalf("Count(3) = %d, want 3", ms.Count(3))
	}
	got := ms.Values()
	want := []int{1, 2, 3, 3, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestTreeMultiSetEqualRangeSpansAllDuplicates(t *testing.T) {
	ms := NewTreeMultiSetFromSlice([]int{1, 2, 2, 2, 3}, comp.LessOrdered[int])
	lo, hi := ms.EqualRange(2)
	n := 0
	for it := lo; !it.Equal(hi); it = it.Next().(Iterator[int]) {
		if it.Value() != 2 {
			t.Fatalf("EqualRange(2) yielded %d", it.Value())
		}
		n++
	}
	if n != 3 {
		t.Fatalf("EqualRange(2) spans %d elements, want 3", n)
	}
}

func TestTreeMultiSetEraseValueRemovesAllEquivalent(t *testing.T) {
	ms := NewTreeMultiSetFromSlice([]int{1, 2, 2, 2, 3}, comp.LessOrdered[int])
	if n := ms.EraseValue(2); n != 3 {
		t.Fatalf("EraseValue(2) = %d, want 3", n)
	}
	if ms.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", ms.Size())
	}
}
