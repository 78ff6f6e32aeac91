package result

import (
	"github.com/charmingruby/functional/curry"
	"github.com/charmingruby/functional/typeclass"
)

// Prims are the two primitives Result supplies to the type-class layer.
type Prims[A, B any] struct{}

// Bind runs f on a successful value and propagates an error untouched.
func (Prims[A, B]) Bind(f curry.Applyable1[A, Result[B]], ma Result[A]) Result[B] {
	if ma.err != nil {
		return Err[B](ma.err)
	}
	return f.Apply(ma.value)
}

// Unit wraps b as a success.
func (Prims[A, B]) Unit(b B) Result[B] {
	return Ok(b)
}

// Instance is the derived Functor, Applicative and Monad for Result.
type Instance[A, B any] = typeclass.Default[A, B, Result[A], Result[B], Result[curry.Applyable1[A, B]]]

// Monad returns the type-class instance for Results mapping A to B.
func Monad[A, B any]() Instance[A, B] {
	return typeclass.Derive[A, B, Result[A], Result[B], Result[curry.Applyable1[A, B]]](
		Prims[A, B]{},
		Prims[curry.Applyable1[A, B], B]{},
	)
}

// Fmap transforms a successful value.
func Fmap[A, B any](f curry.Applyable1[A, B], r Result[A]) Result[B] {
	return Monad[A, B]().Fmap(f, r)
}

// Pure wraps v as a success.
func Pure[A any](v A) Result[A] {
	return Monad[A, A]().Pure(v)
}

// Ap applies a successful function to a successful argument, reporting the
// function's error first.
func Ap[A, B any](rf Result[curry.Applyable1[A, B]], ra Result[A]) Result[B] {
	return Monad[A, B]().Applicative(rf, ra)
}

// Bind chains a Result-producing computation.
func Bind[A, B any](f curry.Applyable1[A, Result[B]], r Result[A]) Result[B] {
	return Monad[A, B]().Bind(f, r)
}

// Unit is Pure under the Monad name.
func Unit[A any](v A) Result[A] {
	return Monad[A, A]().Unit(v)
}

// BindVal returns b when a succeeded, otherwise a's error.
func BindVal[A, B any](b Result[B], a Result[A]) Result[B] {
	return Monad[A, B]().BindVal(b, a)
}

// BindFunc binds a plain function, wrapping its result with Unit.
func BindFunc[A, B any](f curry.Applyable1[A, B], a Result[A]) Result[B] {
	return Monad[A, B]().BindFunc(f, a)
}
