package validated

import (
	"github.com/charmingruby/functional/curry"
	"github.com/charmingruby/functional/typeclass"
)

// Instance is the Functor and Applicative for Validated. It is written by
// hand rather than derived because Ap must see both sides.
type Instance[E, A, B any] struct{}

var _ typeclass.Functor[int, int, Validated[string, int], Validated[string, int]] = Instance[string, int, int]{}

var _ typeclass.Applicative[int, int, Validated[string, int], Validated[string, int], Validated[string, curry.Applyable1[int, int]]] = Instance[string, int, int]{}

// Fmap applies f to a valid value.
func (Instance[E, A, B]) Fmap(f curry.Applyable1[A, B], ma Validated[E, A]) Validated[E, B] {
	if !ma.IsValid() {
		return Validated[E, B]{errors: ma.errors}
	}
	return Valid[E](f.Apply(ma.value))
}

// Pure wraps b as valid.
func (Instance[E, A, B]) Pure(b B) Validated[E, B] {
	return Valid[E](b)
}

// Applicative applies a valid function to a valid argument. When either side
// is invalid the errors of the function come first, then those of the
// argument.
func (Instance[E, A, B]) Applicative(mf Validated[E, curry.Applyable1[A, B]], ma Validated[E, A]) Validated[E, B] {
	if mf.IsValid() && ma.IsValid() {
		return Valid[E](mf.value.Apply(ma.value))
	}
	return Validated[E, B]{errors: concat(mf.errors, ma.errors)}
}

// Fmap applies f to a valid value.
func Fmap[E, A, B any](f curry.Applyable1[A, B], v Validated[E, A]) Validated[E, B] {
	return Instance[E, A, B]{}.Fmap(f, v)
}

// Pure wraps v as valid.
func Pure[E, A any](v A) Validated[E, A] {
	return Instance[E, A, A]{}.Pure(v)
}

// Ap applies vf to va, accumulating the errors of both.
//
// Example:
//
//	mk := curry.Func1(curry.Func2(newUser).Bind)
//	u := validated.Ap(validated.Fmap(mk, name), age)
func Ap[E, A, B any](vf Validated[E, curry.Applyable1[A, B]], va Validated[E, A]) Validated[E, B] {
	return Instance[E, A, B]{}.Applicative(vf, va)
}
