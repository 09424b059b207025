package hashmap

import "testing"

func hashStr(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}
func equalStr(a, b string) bool { return a == b }

func TestHashMapInsertDiscardsValueOnDuplicateKey(t *testing.T) {
	m := NewHashMap[string, int](hashStr, equalStr)
	if _, ok := m.Insert("a", 1); !ok {
		t.Fatalf("first insert should succeed")
	}
	if _, ok := m.Insert("a", 2); ok {
		t.Fatalf("duplicate key insert should report false")
	}
	if v, _ := m.Get("a"); v != 1 {
		t.Fatalf("Get(\"a\") = %d, want 1 (discarded duplicate value)", v)
	}
}

func TestHashMapAtErrorsWhenAbsent(t *testing.T) {
	m := NewDefaultHashMap[string, int]()
	m.Insert("a", 1)
	if v, err := m.At("a"); err != nil || v != 1 {
		t.Fatalf("At(\"a\") = (%d, %v)", v, err)
	}
	if _, err := m.At("b"); err == nil {
		t.Fatalf("At(\"b\") should error")
	}
}

func TestHashMapRefAndSet(t *testing.T) {
	m := NewDefaultHashMap[string, int]()
	*m.Ref("x") = 10
	if v, _ := m.Get("x"); v != 10 {
		t.Fatalf("Ref-mutated value = %d, want 10", v)
	}
	m.Set("x", 20)
	if v, _ := m.Get("x"); v != 20 {
		t.Fatalf("Set did not overwrite, got %d", v)
	}
}

func TestHashMapEraseKey(t *testing.T) {
	m := NewDefaultHashMap[string, int]()
	m.Insert("a", 1)
	m.Insert("b", 2)
	if !m.EraseKey("a") {
		t.Fatalf("EraseKey(\"a\") should report true")
	}
	if m.EraseKey("a") {
		t.Fatalf("second EraseKey(\"a\") should report false")
	}
	if m.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", m.Size())
	}
}

func TestHashMultiMapAllowsDuplicateKeysWithDistinctValues(t *testing.T) {
	mm := NewDefaultHashMultiMap[string, int]()
	mm.Insert("a", 1)
	mm.Insert("a", 2)
	mm.Insert("a", 3)
	if mm.Count("a") != 3 {
		t.Fatalf("Count(\"a\") = %d, want 3", mm.Count("a"))
	}
	lo, hi := mm.EqualRange("a")
	sum := 0
	for it := lo; !it.Equal(hi); it = it.Next().(Iterator[string, int]) {
		sum += it.Value().Value
	}
	if sum != 6 {
		t.Fatalf("EqualRange(\"a\") values sum to %d, want 6", sum)
	}
}

func TestHashMultiMapEraseKeyRemovesAllEntries(t *testing.T) {
	mm := NewDefaultHashMultiMap[string, int]()
	mm.Insert("a", 1)
	mm.Insert("a", 2)
	mm.Insert("b", 3)
	if n := mm.EraseKey("a"); n != 2 {
		t.Fatalf("EraseKey(\"a\") = %d, want 2", n)
	}
	if mm.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", mm.Size())
	}
}
