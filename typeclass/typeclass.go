// Package typeclass defines the Functor, Applicative and Monad capabilities
// and derives all of them from two primitives a container supplies.
//
// Go has no higher-kinded types, so each capability is parameterized by the
// element types and by the concrete container types on both sides of the
// arrow: MA holds an A, MB holds a B and MF holds a curry.Applyable1[A, B].
// A container variant only implements Primitives (Bind and Unit); Derive
// turns that into a Default that satisfies every capability:
//
//	m := typeclass.Derive[int, string, Box[int], Box[string], Box[curry.Applyable1[int, string]]](
//		boxPrims[int, string]{},
//		boxPrims[curry.Applyable1[int, string], string]{},
//	)
//	out := m.Fmap(curry.Func1(strconv.Itoa), box)
package typeclass

import "github.com/charmingruby/functional/curry"

// Functor maps a function over the contents of a container.
type Functor[A, B, MA, MB any] interface {
	Fmap(f curry.Applyable1[A, B], ma MA) MB
}

// Applicative lifts values into a container and applies contained functions
// to contained arguments.
type Applicative[A, B, MA, MB, MF any] interface {
	Pure(b B) MB
	Applicative(mf MF, ma MA) MB
}

// Monad sequences container-producing computations.
type Monad[A, B, MA, MB any] interface {
	Bind(f curry.Applyable1[A, MB], ma MA) MB
	Unit(b B) MB
	BindVal(mb MB, ma MA) MB
	BindFunc(f curry.Applyable1[A, B], ma MA) MB
}

// Primitives is everything a container variant has to provide. Bind decides
// whether and how f runs for the contents of ma; Unit wraps a bare value.
type Primitives[A, B, MA, MB any] interface {
	Bind(f curry.Applyable1[A, MB], ma MA) MB
	Unit(b B) MB
}
