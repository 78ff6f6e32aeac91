package result_test

import (
	"errors"
	"testing"

	"github.com/samber/mo"

	"github.com/charmingruby/functional/curry"
	"github.com/charmingruby/functional/result"
	"github.com/charmingruby/functional/tuple"
)

func TestZipAndSequence(t *testing.T) {
	left := result.Ok(1)
	right := result.Ok(2)
	zip := result.Zip2(left, right)
	if zip.IsErr() {
		t.Fatalf("expected zip ok: %v", zip.Err())
	}
	if zip.UnwrapOr(tuple.Pair[int, int]{}).First != 1 {
		t.Fatalf("unexpected first value")
	}
	seq := result.Sequence([]result.Result[int]{result.Ok(1), result.Ok(2)})
	if seq.IsErr() {
		t.Fatalf("sequence failed: %v", seq.Err())
	}
	values := seq.UnwrapOr(nil)
	if len(values) != 2 {
		t.Fatalf("unexpected length")
	}
}

func TestResultTypeClassAndCollect(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	inc := curry.Func1(func(v int) int {
		calls++
		return v + 1
	})
	failed := result.Fmap(inc, result.Err[int](boom))
	if !errors.Is(failed.Err(), boom) || calls != 0 {
		t.Fatalf("expected error to short circuit, got %v after %d calls", failed.Err(), calls)
	}
	if got := result.BindFunc(inc, result.Ok(1)).UnwrapOr(0); got != 2 {
		t.Fatalf("unexpected bind func value %d", got)
	}
	if got := result.BindVal(result.Ok("kept"), result.Ok(1)).UnwrapOr(""); got != "kept" {
		t.Fatalf("unexpected bind val value %q", got)
	}
	if !result.BindVal(result.Ok("kept"), result.Err[int](boom)).IsErr() {
		t.Fatalf("expected bind val to keep the left error")
	}
	fn := result.Pure[curry.Applyable1[int, int]](inc)
	if got := result.Ap(fn, result.Ok(41)).UnwrapOr(0); got != 42 {
		t.Fatalf("unexpected ap value %d", got)
	}
	if res := result.Ap(result.Err[curry.Applyable1[int, int]](boom), result.Ok(41)); !errors.Is(res.Err(), boom) {
		t.Fatalf("expected function error, got %v", res.Err())
	}
	results := []result.Result[int]{result.Ok(1), result.Err[int](boom), result.Ok(2)}
	values := result.Collect(results)
	if len(values) != 2 || values[1] != 2 {
		t.Fatalf("expected 2 successes got %v", values)
	}
}

func TestResultMoInterop(t *testing.T) {
	res := result.FromMo(mo.Ok(5))
	if res.UnwrapOr(0) != 5 {
		t.Fatalf("expected ok from mo")
	}
	boom := errors.New("boom")
	if !errors.Is(result.FromMo(mo.Err[int](boom)).Err(), boom) {
		t.Fatalf("expected error from mo")
	}
	if v, err := result.Ok("a").ToMo().Get(); err != nil || v != "a" {
		t.Fatalf("unexpected mo conversion %v %v", v, err)
	}
	if !result.Err[int](boom).ToMo().IsError() {
		t.Fatalf("expected mo error")
	}
}

func TestTraverseStopsAtFirstError(t *testing.T) {
	calls := 0
	res := result.Traverse([]int{1, 2, 3}, func(v int) result.Result[int] {
		calls++
		if v == 2 {
			return result.Err[int](errors.New("stop"))
		}
		return result.Ok(v * 2)
	})
	if res.IsOk() || calls != 2 {
		t.Fatalf("expected error after two calls, got %v after %d", res, calls)
	}
	if got := result.Sequence([]result.Result[int]{result.Ok(1), result.Ok(2)}).UnwrapOr(nil); len(got) != 2 {
		t.Fatalf("unexpected sequence %v", got)
	}
}

func TestTupleInteropAndString(t *testing.T) {
	res := result.FromTuple(10, nil)
	value, err := res.Unwrap()
	if err != nil || value != 10 {
		t.Fatalf("unexpected tuple back %v %v", value, err)
	}
	if res.String() != "Ok(10)" {
		t.Fatalf("unexpected string %q", res.String())
	}
	failed := result.FromTuple(0, errors.New("boom"))
	if failed.IsOk() || failed.String() != "Err(boom)" {
		t.Fatalf("expected error result, got %v", failed)
	}
	if result.Err[int](nil).IsOk() {
		t.Fatalf("Err(nil) must not be a success")
	}
	if got := failed.UnwrapOrElse(func(err error) int { return len(err.Error()) }); got != 4 {
		t.Fatalf("unexpected fallback %d", got)
	}
}
