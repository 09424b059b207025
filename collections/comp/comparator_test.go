package comp

import "testing"

func TestGenericComparator(t *testing.T) {
	cmp := GenericComparator[int]()
	if cmp(1, 2) >= 0 {
		t.Fatalf("cmp(1,2) should be negative")
	}
	if cmp(2, 1) <= 0 {
		t.Fatalf("cmp(2,1) should be positive")
	}
	if cmp(1, 1) != 0 {
		t.Fatalf("cmp(1,1) should be zero")
	}
}

func TestReverseComparator(t *testing.T) {
	cmp := ReverseComparator(GenericComparator[int]())
	if cmp(1, 2) <= 0 {
		t.Fatalf("reversed cmp(1,2) should be positive")
	}
}

func TestChainComparators(t *testing.T) {
	byLen := func(a, b string) int { return len(a) - len(b) }
	lex := func(a, b string) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	cmp := ChainComparators(byLen, lex)
	if cmp("aa", "b") <= 0 {
		t.Fatalf("\"aa\" should sort after \"b\" by length")
	}
	if cmp("aa", "ab") >= 0 {
		t.Fatalf("equal length falls through to lexical order")
	}
}

func TestPairComparatorOrdersByKeyOnly(t *testing.T) {
	cmp := PairComparator[int, string](GenericComparator[int]())
	a := Pair[int, string]{Key: 1, Value: "z"}
	b := Pair[int, string]{Key: 1, Value: "a"}
	if cmp(a, b) != 0 {
		t.Fatalf("pairs with equal keys must compare equal regardless of value")
	}
}

func TestMin(t *testing.T) {
	if Min(3, 5) != 3 {
		t.Fatalf("Min(3,5) != 3")
	}
	if Min(5, 3) != 3 {
		t.Fatalf("Min(5,3) != 3")
	}
}

func TestByteSliceComparator(t *testing.T) {
	if ByteSliceComparator([]byte("ab"), []byte("ac")) >= 0 {
		t.Fatalf("\"ab\" should sort before \"ac\"")
	}
	if ByteSliceComparator([]byte("ab"), []byte("ab")) != 0 {
		t.Fatalf("identical slices should compare equal")
	}
	if ByteSliceComparator([]byte("ab"), []byte("a")) <= 0 {
		t.Fatalf("\"ab\" should sort after its own prefix \"a\"")
	}
}
