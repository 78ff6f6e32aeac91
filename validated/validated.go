// Package validated accumulates errors instead of stopping at the first one.
//
// Validated is a Functor and an Applicative but deliberately not a Monad:
// Ap inspects both sides and reports the errors of each, which a Bind
// could not do because its continuation depends on a value that may not
// exist. Use it where every problem should be reported at once.
package validated

import (
	"errors"

	"github.com/samber/lo"

	"github.com/charmingruby/functional/result"
	"github.com/charmingruby/functional/tuple"
)

// Validated holds either a value or the errors collected while producing it.
type Validated[E any, T any] struct {
	value  T
	errors []E
}

// Valid constructs a successful Validated value.
func Valid[E any, T any](value T) Validated[E, T] {
	return Validated[E, T]{value: value}
}

// Invalid constructs a failed Validated holding a copy of errs. At least one
// error is required for the value to report itself invalid.
func Invalid[E any, T any](errs ...E) Validated[E, T] {
	return Validated[E, T]{errors: append([]E(nil), errs...)}
}

// IsValid reports whether no error was collected.
func (v Validated[E, T]) IsValid() bool {
	return len(v.errors) == 0
}

// Errors returns a copy of the collected errors.
func (v Validated[E, T]) Errors() []E {
	return append([]E{}, v.errors...)
}

// UnsafeValue returns the stored value even when invalid.
func (v Validated[E, T]) UnsafeValue() T {
	return v.value
}

// Map transforms the stored value when valid.
func Map[E any, A any, B any](v Validated[E, A], fn func(A) B) Validated[E, B] {
	if !v.IsValid() {
		return Validated[E, B]{errors: v.errors}
	}
	return Valid[E](fn(v.value))
}

// Zip pairs two values, accumulating the errors of both sides.
func Zip[E any, A any, B any](a Validated[E, A], b Validated[E, B]) Validated[E, tuple.Pair[A, B]] {
	if a.IsValid() && b.IsValid() {
		return Valid[E](tuple.NewPair(a.value, b.value))
	}
	return Validated[E, tuple.Pair[A, B]]{errors: concat(a.errors, b.errors)}
}

// Traverse maps every item and collects all values or all errors.
func Traverse[E any, A any, B any](items []A, fn func(A) Validated[E, B]) Validated[E, []B] {
	return lo.Reduce(items, func(acc Validated[E, []B], item A, _ int) Validated[E, []B] {
		next := fn(item)
		if !acc.IsValid() || !next.IsValid() {
			return Validated[E, []B]{errors: concat(acc.errors, next.errors)}
		}
		return Valid[E](append(acc.value, next.value))
	}, Valid[E]([]B{}))
}

// Sequence collects the values of items, or every error among them.
func Sequence[E any, T any](items []Validated[E, T]) Validated[E, []T] {
	return Traverse(items, func(v Validated[E, T]) Validated[E, T] { return v })
}

// FromResult lifts a Result into a Validated of errors.
func FromResult[T any](res result.Result[T]) Validated[error, T] {
	value, err := res.Unwrap()
	if err != nil {
		return Invalid[error, T](err)
	}
	return Valid[error](value)
}

// ToResult converts a Validated of errors into a Result, joining the errors
// when invalid.
func ToResult[T any](v Validated[error, T]) result.Result[T] {
	if v.IsValid() {
		return result.Ok(v.value)
	}
	return result.Err[T](errors.Join(v.errors...))
}

func concat[E any](a, b []E) []E {
	out := make([]E, 0, len(a)+len(b))
	return append(append(out, a...), b...)
}
