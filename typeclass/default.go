package typeclass

import "github.com/charmingruby/functional/curry"

// Default implements Functor, Applicative and Monad on top of a variant's
// Primitives. fprims are the primitives of the same container holding
// functions, used to unwrap the function side of Applicative.
type Default[A, B, MA, MB, MF any] struct {
	prims  Primitives[A, B, MA, MB]
	fprims Primitives[curry.Applyable1[A, B], B, MF, MB]
}

// Derive builds the default instance for a container variant.
func Derive[A, B, MA, MB, MF any](
	prims Primitives[A, B, MA, MB],
	fprims Primitives[curry.Applyable1[A, B], B, MF, MB],
) Default[A, B, MA, MB, MF] {
	return Default[A, B, MA, MB, MF]{prims: prims, fprims: fprims}
}

// Fmap applies f to the contents of ma. It is Bind with f's result wrapped
// by Unit, so a variant that skips Bind also skips f.
func (d Default[A, B, MA, MB, MF]) Fmap(f curry.Applyable1[A, B], ma MA) MB {
	return d.prims.Bind(curry.Func1(func(a A) MB {
		return d.prims.Unit(f.Apply(a))
	}), ma)
}

// Pure wraps b.
func (d Default[A, B, MA, MB, MF]) Pure(b B) MB {
	return d.prims.Unit(b)
}

// Applicative unwraps the function held by mf and maps it over ma. The
// result is absent when either side is.
func (d Default[A, B, MA, MB, MF]) Applicative(mf MF, ma MA) MB {
	return d.fprims.Bind(curry.Func1(func(f curry.Applyable1[A, B]) MB {
		return d.Fmap(f, ma)
	}), mf)
}

// Bind sequences f after ma.
func (d Default[A, B, MA, MB, MF]) Bind(f curry.Applyable1[A, MB], ma MA) MB {
	return d.prims.Bind(f, ma)
}

// Unit is Pure under the Monad name.
func (d Default[A, B, MA, MB, MF]) Unit(b B) MB {
	return d.Pure(b)
}

// BindVal sequences ma and mb, keeping mb. Whatever stops ma from binding
// also stops mb from being returned.
func (d Default[A, B, MA, MB, MF]) BindVal(mb MB, ma MA) MB {
	return d.Bind(curry.Func1(func(A) MB {
		return mb
	}), ma)
}

// BindFunc binds a plain function by wrapping its result with Unit.
func (d Default[A, B, MA, MB, MF]) BindFunc(f curry.Applyable1[A, B], ma MA) MB {
	return d.Bind(curry.Func1(func(a A) MB {
		return d.Unit(f.Apply(a))
	}), ma)
}
