package vec

import (
	"testing"

	"github.com/ielm/gostl/collections/comp"
)

func TestVecPushPopOrder(t *testing.T) {
	v := New[int]()
	v.Push(1)
	v.Push(2)
	v.Push(3)
	if v.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", v.Len())
	}
	got, ok := v.Pop()
	if !ok || got != 3 {
		t.Fatalf("Pop() = (%d, %v), want (3, true)", got, ok)
	}
	if v.Len() != 2 {
		t.Fatalf("Len() after Pop = %d, want 2", v.Len())
	}
}

func TestVecGetSetBounds(t *testing.T) {
	v := NewVecFromSlice([]int{1, 2, 3})
	if val, err := v.Get(1); err != nil || val != 2 {
		t.Fatalf("Get(1) = (%d, %v)", val, err)
	}
	if err := v.Set(1, 99); err != nil {
		t.Fatalf("Set(1, 99) errored: %v", err)
	}
	if val, _ := v.Get(1); val != 99 {
		t.Fatalf("Get(1) after Set = %d, want 99", val)
	}
	if _, err := v.Get(10); err == nil {
		t.Fatalf("Get(10) should error on out-of-bounds index")
	}
}

func TestVecReserveGrowsCapacityWithoutChangingLen(t *testing.T) {
	v := NewVecFromSlice([]int{1, 2})
	before := v.Len()
	v.Reserve(50)
	if v.Len() != before {
		t.Fatalf("Reserve changed Len() to %d, want %d", v.Len(), before)
	}
	if v.Cap()-v.Len() < 50 {
		t.Fatalf("Reserve(50) left only %d spare capacity", v.Cap()-v.Len())
	}
}

func TestVecContainsAndRemove(t *testing.T) {
	v := NewVecFromSlice([]int{1, 2, 3})
	v.SetComparator(comp.GenericComparator[int]())
	if !v.Contains(2) {
		t.Fatalf("Contains(2) should be true")
	}
	if !v.Remove(2) {
		t.Fatalf("Remove(2) should report true")
	}
	if v.Contains(2) {
		t.Fatalf("2 should be gone after Remove")
	}
	if v.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", v.Len())
	}
}

func TestVecRemoveAtPreservesOrder(t *testing.T) {
	v := NewVecFromSlice([]int{10, 20, 30, 40})
	if err := v.RemoveAt(1); err != nil {
		t.Fatalf("RemoveAt(1) errored: %v", err)
	}
	want := []int{10, 30, 40}
	got := v.Values()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestVecIteratorRandomAccess(t *testing.T) {
	v := NewVecFromSlice([]int{1, 2, 3, 4})
	it := v.Begin().Advance(2)
	if it.Value() != 3 {
		t.Fatalf("Advance(2).Value() = %d, want 3", it.Value())
	}
	if it.Index() != 2 {
		t.Fatalf("Index() = %d, want 2", it.Index())
	}
	if v.Begin().Compare(v.End()) >= 0 {
		t.Fatalf("Begin() should compare before End()")
	}
}
