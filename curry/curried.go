package curry

import "github.com/charmingruby/functional/tuple"

// Curried1 is the last link of a curried chain: one parameter remains and
// calling it produces the result. L holds the arguments bound so far.
type Curried1[L tuple.List, A, R any] struct {
	bound L
	fn    func(L, A) R
}

// Call supplies the final argument and returns the result.
func (c Curried1[L, A, R]) Call(a A) R {
	return c.fn(c.bound, a)
}

// Apply is Call under the Applyable1 name.
func (c Curried1[L, A, R]) Apply(a A) R {
	return c.fn(c.bound, a)
}

// Bound returns the arguments bound so far, most recent first.
func (c Curried1[L, A, R]) Bound() L {
	return c.bound
}

// Arity reports the number of parameters still to be supplied.
func (c Curried1[L, A, R]) Arity() int {
	return 1
}

// Func returns the link as a plain Go function.
func (c Curried1[L, A, R]) Func() func(A) R {
	return c.Call
}

// Curried2 is a curried callable with two parameters remaining.
type Curried2[L tuple.List, A, B, R any] struct {
	bound L
	fn    func(L, A, B) R
}

// Call binds a and returns the next link.
//
// Example:
//
//	add := curry.Func2(func(a, b int) int { return a + b })
//	inc := add.Call(1)
//	fmt.Println(inc.Call(41)) // 42
func (c Curried2[L, A, B, R]) Call(a A) Curried1[tuple.Cons[A, L], B, R] {
	fn := c.fn
	return Curried1[tuple.Cons[A, L], B, R]{
		bound: tuple.Prepend(a, c.bound),
		fn: func(l tuple.Cons[A, L], b B) R {
			return fn(l.Tail, l.Head, b)
		},
	}
}

// Apply invokes the callable with both remaining arguments at once.
func (c Curried2[L, A, B, R]) Apply(a A, b B) R {
	return c.fn(c.bound, a, b)
}

// Bind is Call returning the next link as a capability handle.
func (c Curried2[L, A, B, R]) Bind(a A) Applyable1[B, R] {
	return c.Call(a)
}

// Bound returns the arguments bound so far, most recent first.
func (c Curried2[L, A, B, R]) Bound() L {
	return c.bound
}

// Arity reports the number of parameters still to be supplied.
func (c Curried2[L, A, B, R]) Arity() int {
	return 2
}

// Func returns the chain as nested Go closures.
func (c Curried2[L, A, B, R]) Func() func(A) func(B) R {
	return func(a A) func(B) R {
		return c.Call(a).Func()
	}
}

// Curried3 is a curried callable with three parameters remaining.
type Curried3[L tuple.List, A, B, C, R any] struct {
	bound L
	fn    func(L, A, B, C) R
}

// Call binds a and returns the next link.
func (c Curried3[L, A, B, C, R]) Call(a A) Curried2[tuple.Cons[A, L], B, C, R] {
	fn := c.fn
	return Curried2[tuple.Cons[A, L], B, C, R]{
		bound: tuple.Prepend(a, c.bound),
		fn: func(l tuple.Cons[A, L], b B, cc C) R {
			return fn(l.Tail, l.Head, b, cc)
		},
	}
}

// Apply invokes the callable with all remaining arguments at once.
func (c Curried3[L, A, B, C, R]) Apply(a A, b B, cc C) R {
	return c.fn(c.bound, a, b, cc)
}

// Bind is Call returning the next link as a capability handle.
func (c Curried3[L, A, B, C, R]) Bind(a A) Applyable2[B, C, R] {
	return c.Call(a)
}

// Bound returns the arguments bound so far, most recent first.
func (c Curried3[L, A, B, C, R]) Bound() L {
	return c.bound
}

// Arity reports the number of parameters still to be supplied.
func (c Curried3[L, A, B, C, R]) Arity() int {
	return 3
}

// Func returns the chain as nested Go closures.
func (c Curried3[L, A, B, C, R]) Func() func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return c.Call(a).Func()
	}
}

// Curried4 is a curried callable with four parameters remaining.
type Curried4[L tuple.List, A, B, C, D, R any] struct {
	bound L
	fn    func(L, A, B, C, D) R
}

// Call binds a and returns the next link.
func (c Curried4[L, A, B, C, D, R]) Call(a A) Curried3[tuple.Cons[A, L], B, C, D, R] {
	fn := c.fn
	return Curried3[tuple.Cons[A, L], B, C, D, R]{
		bound: tuple.Prepend(a, c.bound),
		fn: func(l tuple.Cons[A, L], b B, cc C, d D) R {
			return fn(l.Tail, l.Head, b, cc, d)
		},
	}
}

// Apply invokes the callable with all remaining arguments at once.
func (c Curried4[L, A, B, C, D, R]) Apply(a A, b B, cc C, d D) R {
	return c.fn(c.bound, a, b, cc, d)
}

// Bind is Call returning the next link as a capability handle.
func (c Curried4[L, A, B, C, D, R]) Bind(a A) Applyable3[B, C, D, R] {
	return c.Call(a)
}

// Bound returns the arguments bound so far, most recent first.
func (c Curried4[L, A, B, C, D, R]) Bound() L {
	return c.bound
}

// Arity reports the number of parameters still to be supplied.
func (c Curried4[L, A, B, C, D, R]) Arity() int {
	return 4
}

// Func returns the chain as nested Go closures.
func (c Curried4[L, A, B, C, D, R]) Func() func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return c.Call(a).Func()
	}
}

// Curried5 is a curried callable with five parameters remaining.
type Curried5[L tuple.List, A, B, C, D, E, R any] struct {
	bound L
	fn    func(L, A, B, C, D, E) R
}

// Call binds a and returns the next link.
func (c Curried5[L, A, B, C, D, E, R]) Call(a A) Curried4[tuple.Cons[A, L], B, C, D, E, R] {
	fn := c.fn
	return Curried4[tuple.Cons[A, L], B, C, D, E, R]{
		bound: tuple.Prepend(a, c.bound),
		fn: func(l tuple.Cons[A, L], b B, cc C, d D, e E) R {
			return fn(l.Tail, l.Head, b, cc, d, e)
		},
	}
}

// Apply invokes the callable with all remaining arguments at once.
func (c Curried5[L, A, B, C, D, E, R]) Apply(a A, b B, cc C, d D, e E) R {
	return c.fn(c.bound, a, b, cc, d, e)
}

// Bind is Call returning the next link as a capability handle.
func (c Curried5[L, A, B, C, D, E, R]) Bind(a A) Applyable4[B, C, D, E, R] {
	return c.Call(a)
}

// Bound returns the arguments bound so far, most recent first.
func (c Curried5[L, A, B, C, D, E, R]) Bound() L {
	return c.bound
}

// Arity reports the number of parameters still to be supplied.
func (c Curried5[L, A, B, C, D, E, R]) Arity() int {
	return 5
}

// Func returns the chain as nested Go closures.
func (c Curried5[L, A, B, C, D, E, R]) Func() func(A) func(B) func(C) func(D) func(E) R {
	return func(a A) func(B) func(C) func(D) func(E) R {
		return c.Call(a).Func()
	}
}
