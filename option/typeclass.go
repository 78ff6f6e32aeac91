package option

import (
	"github.com/charmingruby/functional/curry"
	"github.com/charmingruby/functional/typeclass"
)

// Prims are the two primitives Option supplies to the type-class layer.
type Prims[A, B any] struct{}

// Bind runs f on the contained value. A None input short-circuits to None
// and f is never invoked.
func (Prims[A, B]) Bind(f curry.Applyable1[A, Option[B]], ma Option[A]) Option[B] {
	if !ma.ok {
		return None[B]()
	}
	return f.Apply(ma.value)
}

// Unit wraps b as a present value.
func (Prims[A, B]) Unit(b B) Option[B] {
	return Some(b)
}

// Instance is the derived Functor, Applicative and Monad for Option.
type Instance[A, B any] = typeclass.Default[A, B, Option[A], Option[B], Option[curry.Applyable1[A, B]]]

// Monad returns the type-class instance for Options mapping A to B.
func Monad[A, B any]() Instance[A, B] {
	return typeclass.Derive[A, B, Option[A], Option[B], Option[curry.Applyable1[A, B]]](
		Prims[A, B]{},
		Prims[curry.Applyable1[A, B], B]{},
	)
}

// Fmap applies f to the value when present. None stays None and f is not
// invoked.
func Fmap[A, B any](f curry.Applyable1[A, B], m Option[A]) Option[B] {
	return Monad[A, B]().Fmap(f, m)
}

// Pure wraps v as a present Option.
func Pure[A any](v A) Option[A] {
	return Monad[A, A]().Pure(v)
}

// Ap applies the function held by mf to the value held by ma. The result is
// None when either side is None.
//
// Example:
//
//	inc := option.Some[curry.Applyable1[int, int]](curry.Func1(func(i int) int { return i + 1 }))
//	option.Ap(inc, option.Some(41)) // Some(42)
func Ap[A, B any](mf Option[curry.Applyable1[A, B]], ma Option[A]) Option[B] {
	return Monad[A, B]().Applicative(mf, ma)
}

// Bind sequences an Option-producing computation after m.
func Bind[A, B any](f curry.Applyable1[A, Option[B]], m Option[A]) Option[B] {
	return Monad[A, B]().Bind(f, m)
}

// Unit is Pure under the Monad name.
func Unit[A any](v A) Option[A] {
	return Monad[A, A]().Unit(v)
}

// BindVal returns b when a is present and None otherwise.
func BindVal[A, B any](b Option[B], a Option[A]) Option[B] {
	return Monad[A, B]().BindVal(b, a)
}

// BindFunc binds a plain function, wrapping its result with Unit.
func BindFunc[A, B any](f curry.Applyable1[A, B], a Option[A]) Option[B] {
	return Monad[A, B]().BindFunc(f, a)
}
