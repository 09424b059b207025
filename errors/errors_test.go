package errors

import "testing"

func TestErrorCodeString(t *testing.T) {
	cases := map[ErrorCode]string{
		ErrOutOfRange:      "out-of-range",
		ErrInvalidArgument: "invalid-argument",
		ErrSystem:          "system",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", code, got, want)
		}
	}
}

func TestOutOfRangeAndInvalidArgumentConstructors(t *testing.T) {
	e := OutOfRange("index 5 out of bounds")
	if e.Code != ErrOutOfRange {
		t.Fatalf("OutOfRange should carry ErrOutOfRange, got %v", e.Code)
	}
	if e.Error() == "" {
		t.Fatalf("Error() should not be empty")
	}

	a := InvalidArgument("bad iterator")
	if a.Code != ErrInvalidArgument {
		t.Fatalf("InvalidArgument should carry ErrInvalidArgument, got %v", a.Code)
	}
}

func TestRuntimeErrorAndSystemError(t *testing.T) {
	r := NewRuntimeError(ErrOverflow, "counter overflowed")
	if r.Code != ErrOverflow {
		t.Fatalf("NewRuntimeError did not preserve the code")
	}

	s := NewSystemError("allocator", "rehash failed")
	if s.Category != "allocator" || s.Code != ErrSystem {
		t.Fatalf("NewSystemError = %+v", s)
	}
}

func TestLogicErrorSatisfiesErrorInterface(t *testing.T) {
	var err error = OutOfRange("boom")
	if err.Error() == "" {
		t.Fatalf("LogicError should satisfy the error interface with a non-empty message")
	}
}
