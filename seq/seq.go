// Package seq makes plain slices a container of the type-class layer.
//
// A slice stands for every possible result of a computation. Bind runs the
// continuation on each element and concatenates what it returns, so chains
// enumerate all combinations and an empty slice short-circuits like None.
//
// Example:
//
//	pairs := seq.Bind(curry.Func1(func(x int) []string {
//		return seq.Fmap(curry.Func1(func(y string) string {
//			return strconv.Itoa(x) + y
//		}), []string{"a", "b"})
//	}), []int{1, 2})
//	// [1a 1b 2a 2b]
package seq

import (
	"github.com/samber/lo"

	"github.com/charmingruby/functional/curry"
	"github.com/charmingruby/functional/tuple"
	"github.com/charmingruby/functional/typeclass"
)

// Prims are the two primitives slices supply to the type-class layer.
type Prims[A, B any] struct{}

// Bind flat-maps f over ma.
func (Prims[A, B]) Bind(f curry.Applyable1[A, []B], ma []A) []B {
	return lo.FlatMap(ma, func(a A, _ int) []B {
		return f.Apply(a)
	})
}

// Unit builds a singleton.
func (Prims[A, B]) Unit(b B) []B {
	return []B{b}
}

// Instance is the derived Functor, Applicative and Monad for slices.
type Instance[A, B any] = typeclass.Default[A, B, []A, []B, []curry.Applyable1[A, B]]

// Monad returns the type-class instance for slices mapping A to B.
func Monad[A, B any]() Instance[A, B] {
	return typeclass.Derive[A, B, []A, []B, []curry.Applyable1[A, B]](
		Prims[A, B]{},
		Prims[curry.Applyable1[A, B], B]{},
	)
}

// Fmap applies f to every element.
func Fmap[A, B any](f curry.Applyable1[A, B], s []A) []B {
	return Monad[A, B]().Fmap(f, s)
}

// Pure builds a singleton.
func Pure[A any](v A) []A {
	return Monad[A, A]().Pure(v)
}

// Ap applies every function to every argument, functions outermost.
func Ap[A, B any](fs []curry.Applyable1[A, B], s []A) []B {
	return Monad[A, B]().Applicative(fs, s)
}

// Bind runs f on every element and concatenates the results.
func Bind[A, B any](f curry.Applyable1[A, []B], s []A) []B {
	return Monad[A, B]().Bind(f, s)
}

// Unit is Pure under the Monad name.
func Unit[A any](v A) []A {
	return Monad[A, A]().Unit(v)
}

// BindVal repeats b once per element of a.
func BindVal[A, B any](b []B, a []A) []B {
	return Monad[A, B]().BindVal(b, a)
}

// BindFunc binds a plain function, wrapping its result with Unit.
func BindFunc[A, B any](f curry.Applyable1[A, B], a []A) []B {
	return Monad[A, B]().BindFunc(f, a)
}

// Zip pairs the elements of a and b up to the shorter length.
func Zip[A any, B any](a []A, b []B) []tuple.Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]tuple.Pair[A, B], n)
	for i := range n {
		out[i] = tuple.NewPair(a[i], b[i])
	}
	return out
}
