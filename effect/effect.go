// Package effect provides Effect, a container that always holds exactly one
// value. It is the unconditional counterpart to option.Option: every
// type-class operation on an Effect runs its function eagerly.
//
// Values that depend on the outside world are produced by an explicit
// context, such as Counter, that the caller threads to the code that needs it.
package effect

import "fmt"

// Effect holds one computed value.
type Effect[T any] struct {
	value T
}

// Of wraps value.
//
// Example:
//
//	e := effect.Of(42)
//	fmt.Println(e.Unwrap()) // 42
func Of[T any](value T) Effect[T] {
	return Effect[T]{value: value}
}

// Unwrap returns the contained value.
func (e Effect[T]) Unwrap() T {
	return e.value
}

// UnwrapMutable returns a pointer to the contained value so it can be
// updated in place.
func (e *Effect[T]) UnwrapMutable() *T {
	return &e.value
}

// String implements fmt.Stringer.
func (e Effect[T]) String() string {
	return fmt.Sprintf("Effect(%v)", e.value)
}
