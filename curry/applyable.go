package curry

// Applyable0 is a capability handle over a nullary callable.
type Applyable0[R any] interface {
	Apply() R
}

// Applyable1 is a capability handle over a callable with one remaining
// parameter.
type Applyable1[A, R any] interface {
	Apply(a A) R
}

// Applyable2 is a capability handle over a callable with two remaining
// parameters. Bind fixes the first one and hands back the rest.
type Applyable2[A, B, R any] interface {
	Apply(a A, b B) R
	Bind(a A) Applyable1[B, R]
}

// Applyable3 is a capability handle over a callable with three remaining
// parameters.
type Applyable3[A, B, C, R any] interface {
	Apply(a A, b B, c C) R
	Bind(a A) Applyable2[B, C, R]
}

// Applyable4 is a capability handle over a callable with four remaining
// parameters.
type Applyable4[A, B, C, D, R any] interface {
	Apply(a A, b B, c C, d D) R
	Bind(a A) Applyable3[B, C, D, R]
}

// Applyable5 is a capability handle over a callable with five remaining
// parameters.
type Applyable5[A, B, C, D, E, R any] interface {
	Apply(a A, b B, c C, d D, e E) R
	Bind(a A) Applyable4[B, C, D, E, R]
}

// Curryable is satisfied by every curried form in this package and by the
// fixed-point wrappers in package combinator.
type Curryable interface {
	Arity() int
}
