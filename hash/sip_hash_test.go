package hash

import "testing"

func newHasher(t *testing.T) *SipHasher {
	t.Helper()
	h, err := NewSipHasher()
	if err != nil {
		t.Fatalf("NewSipHasher: %v", err)
	}
	return h
}

func TestHashKeyIsDeterministicForSameHasher(t *testing.T) {
	h := newHasher(t)
	a, err := h.HashKey("hello")
	if err != nil {
		t.Fatalf("HashKey: %v", err)
	}
	b, err := h.HashKey("hello")
	if err != nil {
		t.Fatalf("HashKey: %v", err)
	}
	if len(a) != 8 || len(b) != 8 {
		t.Fatalf("HashKey should produce an 8-byte digest, got %d/%d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("HashKey(%q) is not deterministic: %v != %v", "hello", a, b)
		}
	}
}

func TestHashKeyDiffersAcrossHasherInstances(t *testing.T) {
	h1 := newHasher(t)
	h2 := newHasher(t)
	a, _ := h1.HashKey("same-input")
	b, _ := h2.HashKey("same-input")
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("two independently-keyed hashers produced the same digest; keys are not being randomized")
	}
}

func TestHashKeyVariesWithInput(t *testing.T) {
	h := newHasher(t)
	a, _ := h.HashKey(uint64(1))
	b, _ := h.HashKey(uint64(2))
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("HashKey(1) and HashKey(2) produced the same digest")
	}
}
