package res

import (
	"errors"
	"testing"

	gostlerrors "github.com/ielm/gostl/errors"
)

func TestOkAndErrBasics(t *testing.T) {
	ok := Ok(42)
	if !ok.IsOk() || ok.Unwrap() != 42 {
		t.Fatalf("Ok(42) not recognized as Ok")
	}
	bad := Err[int](errors.New("boom"))
	if !bad.IsErr() {
		t.Fatalf("Err should report IsErr()")
	}
	if bad.UnwrapOr(7) != 7 {
		t.Fatalf("UnwrapOr on Err should return the default")
	}
}

func TestResultMapAndAndThen(t *testing.T) {
	r := Ok(2).Map(func(v int) int { return v * 10 })
	if r.Unwrap() != 20 {
		t.Fatalf("Map result = %d, want 20", r.Unwrap())
	}
	chained := Ok(2).AndThen(func(v int) Result[int] { return Ok(v + 1) })
	if chained.Unwrap() != 3 {
		t.Fatalf("AndThen result = %d, want 3", chained.Unwrap())
	}
	failed := Err[int](errors.New("x")).AndThen(func(v int) Result[int] { return Ok(v + 1) })
	if !failed.IsErr() {
		t.Fatalf("AndThen on Err should stay Err")
	}
}

func TestResultToOption(t *testing.T) {
	if opt := Ok(5).ToOption(); !opt.IsSome() || opt.Unwrap() != 5 {
		t.Fatalf("ToOption on Ok should be Some")
	}
	if opt := Err[int](errors.New("x")).ToOption(); opt.IsSome() {
		t.Fatalf("ToOption on Err should be None")
	}
}

func TestTryRecoversPanic(t *testing.T) {
	r := Try(func() int { panic("oops") })
	if !r.IsErr() {
		t.Fatalf("Try should capture the panic as an Err")
	}
}

func TestCollectStopsOnFirstError(t *testing.T) {
	boom := errors.New("boom")
	r := Collect([]int{1, 2, 3}, func(v int) Result[int] {
		if v == 2 {
			return Err[int](boom)
		}
		return Ok(v * 2)
	})
	if !r.IsErr() {
		t.Fatalf("Collect should propagate the error")
	}
}

func TestPartitionSeparatesOkAndErr(t *testing.T) {
	results := []Result[int]{Ok(1), Err[int](errors.New("a")), Ok(3)}
	oks, errs := Partition(results)
	if len(oks) != 2 || len(errs) != 1 {
		t.Fatalf("Partition() = (%v, %v)", oks, errs)
	}
}

func TestIsErrorCodeMatchesLogicError(t *testing.T) {
	r := Err[int](gostlerrors.OutOfRange("bad index"))
	if !r.IsErrorCode(gostlerrors.ErrOutOfRange) {
		t.Fatalf("IsErrorCode should match the wrapped LogicError's code")
	}
	if r.IsErrorCode(gostlerrors.ErrInvalidArgument) {
		t.Fatalf("IsErrorCode should not match an unrelated code")
	}
}
