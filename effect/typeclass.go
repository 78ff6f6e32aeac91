package effect

import (
	"github.com/charmingruby/functional/curry"
	"github.com/charmingruby/functional/typeclass"
)

// Prims are the two primitives Effect supplies to the type-class layer.
type Prims[A, B any] struct{}

// Bind always invokes f on the contained value.
func (Prims[A, B]) Bind(f curry.Applyable1[A, Effect[B]], ma Effect[A]) Effect[B] {
	return f.Apply(ma.value)
}

// Unit wraps b.
func (Prims[A, B]) Unit(b B) Effect[B] {
	return Of(b)
}

// Instance is the derived Functor, Applicative and Monad for Effect.
type Instance[A, B any] = typeclass.Default[A, B, Effect[A], Effect[B], Effect[curry.Applyable1[A, B]]]

// Monad returns the type-class instance for Effects mapping A to B.
func Monad[A, B any]() Instance[A, B] {
	return typeclass.Derive[A, B, Effect[A], Effect[B], Effect[curry.Applyable1[A, B]]](
		Prims[A, B]{},
		Prims[curry.Applyable1[A, B], B]{},
	)
}

// Fmap applies f to the contained value.
func Fmap[A, B any](f curry.Applyable1[A, B], m Effect[A]) Effect[B] {
	return Monad[A, B]().Fmap(f, m)
}

// Pure wraps v.
func Pure[A any](v A) Effect[A] {
	return Monad[A, A]().Pure(v)
}

// Ap applies the contained function to the contained argument.
func Ap[A, B any](mf Effect[curry.Applyable1[A, B]], ma Effect[A]) Effect[B] {
	return Monad[A, B]().Applicative(mf, ma)
}

// Bind feeds the contained value to f.
func Bind[A, B any](f curry.Applyable1[A, Effect[B]], m Effect[A]) Effect[B] {
	return Monad[A, B]().Bind(f, m)
}

// Unit is Pure under the Monad name.
func Unit[A any](v A) Effect[A] {
	return Monad[A, A]().Unit(v)
}

// BindVal sequences a before b and returns b.
func BindVal[A, B any](b Effect[B], a Effect[A]) Effect[B] {
	return Monad[A, B]().BindVal(b, a)
}

// BindFunc binds a plain function, wrapping its result with Unit.
func BindFunc[A, B any](f curry.Applyable1[A, B], a Effect[A]) Effect[B] {
	return Monad[A, B]().BindFunc(f, a)
}
