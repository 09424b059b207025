package sort

import (
	"testing"

	"github.com/ielm/gostl/collections/comp"
	"github.com/ielm/gostl/collections/vec"
)

func TestQuickSortInPlace(t *testing.T) {
	s := []int{5, 3, 8, 1, 9, 2}
	QuickSort(s, comp.GenericComparator[int]())
	want := []int{1, 2, 3, 5, 8, 9}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("got %v, want %v", s, want)
		}
	}
}

func TestSortedLeavesInputUnmodified(t *testing.T) {
	in := []int{3, 1, 2}
	out, err := Sorted(in, comp.GenericComparator[int]())
	if err != nil {
		t.Fatalf("Sorted errored: %v", err)
	}
	if in[0] != 3 {
		t.Fatalf("Sorted mutated the input slice")
	}
	want := []int{1, 2, 3}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("got %v, want %v", out, want)
		}
	}
}

func TestSortedRejectsNilSlice(t *testing.T) {
	if _, err := Sorted[int](nil, comp.GenericComparator[int]()); err == nil {
		t.Fatalf("Sorted(nil) should error")
	}
}

func TestSortedDescending(t *testing.T) {
	out, err := SortedDescending([]int{3, 1, 2}, comp.GenericComparator[int]())
	if err != nil {
		t.Fatalf("SortedDescending errored: %v", err)
	}
	want := []int{3, 2, 1}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("got %v, want %v", out, want)
		}
	}
}

func TestSortedByChainsComparatorsInPriorityOrder(t *testing.T) {
	type pair struct{ a, b int }
	in := []pair{{1, 2}, {1, 1}, {0, 5}}
	byA := func(x, y pair) int { return x.a - y.a }
	byB := func(x, y pair) int { return x.b - y.b }
	out, err := SortedBy(in, byA, byB)
	if err != nil {
		t.Fatalf("SortedBy errored: %v", err)
	}
	want := []pair{{0, 5}, {1, 1}, {1, 2}}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("got %v, want %v", out, want)
		}
	}
}

func TestCollectAndSortRangeOverVec(t *testing.T) {
	v := vec.NewVecFromSlice([]int{3, 1, 2})
	collected := Collect[int](v.Begin(), v.End())
	if len(collected) != 3 {
		t.Fatalf("Collect returned %v", collected)
	}
	sorted := SortRange[int](v.Begin(), v.End(), comp.GenericComparator[int]())
	want := []int{1, 2, 3}
	for i := range want {
		if sorted[i] != want[i] {
			t.Fatalf("got %v, want %v", sorted, want)
		}
	}
}

func TestFindAndFindIf(t *testing.T) {
	v := vec.NewVecFromSlice([]int{10, 20, 30})
	found := Find[int](v.Begin(), v.End(), 20, comp.GenericComparator[int]())
	if found.Value() != 20 {
		t.Fatalf("Find(20) = %d, want 20", found.Value())
	}
	miss := Find[int](v.Begin(), v.End(), 99, comp.GenericComparator[int]())
	if !miss.Equal(v.End()) {
		t.Fatalf("Find(99) should return the end iterator")
	}

	over20 := FindIf[int](v.Begin(), v.End(), func(x int) bool { return x > 20 })
	if over20.Value() != 30 {
		t.Fatalf("FindIf(>20) = %d, want 30", over20.Value())
	}
}

func TestForEachAndCount(t *testing.T) {
	v := vec.NewVecFromSlice([]int{1, 2, 3, 4, 5})
	sum := 0
	ForEach[int](v.Begin(), v.End(), func(x int) { sum += x })
	if sum != 15 {
		t.Fatalf("ForEach sum = %d, want 15", sum)
	}
	evens := Count[int](v.Begin(), v.End(), func(x int) bool { return x%2 == 0 })
	if evens != 2 {
		t.Fatalf("Count(even) = %d, want 2", evens)
	}
}

func TestLowerBoundOnSortedRange(t *testing.T) {
	v := vec.NewVecFromSlice([]int{1, 3, 5, 7, 9})
	it := LowerBound[int](v.Begin(), v.End(), 6, comp.GenericComparator[int]())
	if it.Value() != 7 {
		t.Fatalf("LowerBound(6) = %d, want 7", it.Value())
	}
	it = LowerBound[int](v.Begin(), v.End(), 5, comp.GenericComparator[int]())
	if it.Value() != 5 {
		t.Fatalf("LowerBound(5) = %d, want 5", it.Value())
	}
}
