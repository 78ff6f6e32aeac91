// Package option implements the optional-value container: a generic Option
// type for presence/absence semantics that is also a Functor, Applicative and
// Monad (see Monad). Absence short-circuits every chain without invoking the
// functions downstream of it.
//
// Example:
//
//	half := option.Bind(curry.Func1(func(x float64) option.Option[float64] {
//		return divide(x, 2)
//	}), option.Some(1.0))
package option

import (
	"errors"
	"fmt"

	"github.com/charmingruby/functional/result"
)

var errMissing = errors.New("option: missing value")

// Option holds a value of type T or nothing. The zero value is None.
// Some(nil) is present for nil-capable types.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps value as present.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns the absent Option of T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk builds an Option from a comma-ok pair such as a map lookup.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is absent.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// UnwrapMutable returns a pointer to the stored value so it can be updated in
// place, or nil when the Option is None.
func (o *Option[T]) UnwrapMutable() *T {
	if !o.ok {
		return nil
	}
	return &o.value
}

// UnsafeGet returns the value and panics on None.
func (o Option[T]) UnsafeGet() T {
	if !o.ok {
		panic("option: UnsafeGet on None")
	}
	return o.value
}

// GetOrElse returns the value, or fallback on None.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// ToResult turns None into the error produced by errFactory. A nil factory
// or a nil error yields a generic missing-value error.
//
// Example:
//
//	res := divide(1, 0).ToResult(func() error { return ErrDivByZero })
func (o Option[T]) ToResult(errFactory func() error) result.Result[T] {
	if o.ok {
		return result.Ok(o.value)
	}
	err := errMissing
	if errFactory != nil {
		if e := errFactory(); e != nil {
			err = e
		}
	}
	return result.Err[T](err)
}

// String renders Some(v) or None.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
