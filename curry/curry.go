package curry

import "github.com/charmingruby/functional/tuple"

// Value returns v unchanged. A value that is not callable is its own curried
// form with arity zero.
func Value[T any](v T) T {
	return v
}

// Of returns an already curried form unchanged, so currying twice is the same
// as currying once.
//
// Example:
//
//	add := curry.Func2(func(a, b int) int { return a + b })
//	same := curry.Of(add) // same type, same behavior
func Of[C Curryable](c C) C {
	return c
}

// Func0 invokes f immediately. A nullary function has nothing left to defer.
func Func0[R any](f func() R) R {
	return f()
}

// Func1 wraps a unary function as the last link of a chain.
//
// Example:
//
//	square := curry.Func1(func(i int) int { return i * i })
//	fmt.Println(square.Call(5)) // 25
func Func1[A, R any](f func(A) R) Curried1[tuple.Nil, A, R] {
	return Curried1[tuple.Nil, A, R]{
		fn: func(_ tuple.Nil, a A) R {
			return f(a)
		},
	}
}

// Func2 curries a binary function.
//
// Example:
//
//	add := curry.Func2(func(a, b int) int { return a + b })
//	fmt.Println(add.Call(5).Call(10)) // 15
func Func2[A, B, R any](f func(A, B) R) Curried2[tuple.Nil, A, B, R] {
	return Curried2[tuple.Nil, A, B, R]{
		fn: func(_ tuple.Nil, a A, b B) R {
			return f(a, b)
		},
	}
}

// Func3 curries a ternary function.
func Func3[A, B, C, R any](f func(A, B, C) R) Curried3[tuple.Nil, A, B, C, R] {
	return Curried3[tuple.Nil, A, B, C, R]{
		fn: func(_ tuple.Nil, a A, b B, c C) R {
			return f(a, b, c)
		},
	}
}

// Func4 curries a function of four parameters.
func Func4[A, B, C, D, R any](f func(A, B, C, D) R) Curried4[tuple.Nil, A, B, C, D, R] {
	return Curried4[tuple.Nil, A, B, C, D, R]{
		fn: func(_ tuple.Nil, a A, b B, c C, d D) R {
			return f(a, b, c, d)
		},
	}
}

// Func5 curries a function of five parameters.
func Func5[A, B, C, D, E, R any](f func(A, B, C, D, E) R) Curried5[tuple.Nil, A, B, C, D, E, R] {
	return Curried5[tuple.Nil, A, B, C, D, E, R]{
		fn: func(_ tuple.Nil, a A, b B, c C, d D, e E) R {
			return f(a, b, c, d, e)
		},
	}
}

// Apply0 invokes a nullary capability handle immediately.
func Apply0[R any](h Applyable0[R]) R {
	return h.Apply()
}

// Apply1 curries a capability handle without committing to its concrete type.
func Apply1[A, R any](h Applyable1[A, R]) Curried1[tuple.Nil, A, R] {
	return Func1(h.Apply)
}

// Apply2 curries a two-parameter capability handle.
//
// Example:
//
//	var h curry.Applyable2[int, int, int] = curry.Func2(add)
//	fmt.Println(curry.Apply2(h).Call(5).Call(10))
func Apply2[A, B, R any](h Applyable2[A, B, R]) Curried2[tuple.Nil, A, B, R] {
	return Func2(h.Apply)
}

// Apply3 curries a three-parameter capability handle.
func Apply3[A, B, C, R any](h Applyable3[A, B, C, R]) Curried3[tuple.Nil, A, B, C, R] {
	return Func3(h.Apply)
}

// Apply4 curries a four-parameter capability handle.
func Apply4[A, B, C, D, R any](h Applyable4[A, B, C, D, R]) Curried4[tuple.Nil, A, B, C, D, R] {
	return Func4(h.Apply)
}

// Apply5 curries a five-parameter capability handle.
func Apply5[A, B, C, D, E, R any](h Applyable5[A, B, C, D, E, R]) Curried5[tuple.Nil, A, B, C, D, E, R] {
	return Func5(h.Apply)
}
