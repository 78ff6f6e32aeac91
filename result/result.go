// Package result provides Result, a value or an error.
//
// Result is the third container variant of the type-class layer: it only
// supplies Prims (Bind and Unit) and gets Fmap, Ap, BindVal and BindFunc
// from typeclass.Default. The first error short-circuits every chain.
//
// Example:
//
//	parse := curry.Func1(func(s string) result.Result[int] {
//		n, err := strconv.Atoi(s)
//		return result.FromTuple(n, err)
//	})
//	n := result.Bind(parse, result.Ok("42")) // Ok(42)
package result

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/charmingruby/functional/tuple"
)

var errNil = errors.New("result: nil error")

// Result is the outcome of a computation that either produced a value or
// failed with an error.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps value as a success.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err wraps err as a failure. A nil err is replaced so that Err never
// produces a success.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errNil
	}
	return Result[T]{err: err}
}

// FromTuple converts a (value, error) pair.
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk reports success.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Err returns the error, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// UnwrapOr returns the value, or fallback on failure.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err == nil {
		return r.value
	}
	return fallback
}

// UnwrapOrElse returns the value, or fn applied to the error.
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.err == nil {
		return r.value
	}
	return fn(r.err)
}

// Collect keeps the values of the successful Results.
func Collect[T any](results []Result[T]) []T {
	return lo.FilterMap(results, func(r Result[T], _ int) (T, bool) {
		return r.value, r.err == nil
	})
}

// Zip2 pairs two successes. The first failure, left to right, wins.
func Zip2[A any, B any](ra Result[A], rb Result[B]) Result[tuple.Pair[A, B]] {
	if ra.err != nil {
		return Err[tuple.Pair[A, B]](ra.err)
	}
	if rb.err != nil {
		return Err[tuple.Pair[A, B]](rb.err)
	}
	return Ok(tuple.NewPair(ra.value, rb.value))
}

// Sequence collects every value or returns the first error.
func Sequence[T any](results []Result[T]) Result[[]T] {
	return Traverse(results, func(r Result[T]) Result[T] { return r })
}

// Traverse maps items through fn and collects the values. fn is not called
// again after its first error.
//
// Example:
//
//	users := result.Traverse(ids, loadUser)
func Traverse[A any, B any](items []A, fn func(A) Result[B]) Result[[]B] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		res := fn(item)
		if res.err != nil {
			return Err[[]B](res.err)
		}
		values = append(values, res.value)
	}
	return Ok(values)
}

// String renders Ok(v) or Err(e).
func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}
