// Package fp provides lightweight functional composition helpers for Go.
//
// Example:
//
//	value := fp.Pipe("go",
//		func(s string) string { return strings.ToUpper(s) },
//		func(s string) string { return s + "!" },
//	)
//
//	shout := fp.Compose(strings.ToUpper, strings.TrimSpace)
package fp

import "github.com/charmingruby/functional/curry"

// Identity returns the supplied value unchanged.
//
// Example:
//
//	value := Identity(42)
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always returns v.
//
// Example:
//
//	getDefault := Constant(time.Minute)
//	fmt.Println(getDefault())
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Pipe applies a sequence of functions to value. All functions must accept and
// return the same type.
//
// Example:
//
//	result := Pipe(2,
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 1 },
//	)
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// Compose returns the function computing f(g(x)). Neither operand needs to
// be curried; a curried link is passed through its Call method.
//
// Example:
//
//	square := func(n int) int { return n * n }
//	tenfold := func(n int) int { return n * 10 }
//	fn := Compose(square, tenfold)
//	value := fn(5) // 2500
func Compose[A any, B any, C any](f func(B) C, g func(A) B) func(A) C {
	return func(x A) C {
		return f(g(x))
	}
}

// ComposeAll composes same-typed functions in right-to-left order.
//
// Example:
//
//	fn := ComposeAll(
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 3 },
//	)
//	value := fn(5)
func ComposeAll[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}

// Curry converts a binary function into its curried form.
//
// Example:
//
//	add := func(a, b int) int { return a + b }
//	curried := Curry(add)
//	addFive := curried(5)
//	result := addFive(3)
func Curry[A any, B any, C any](fn func(A, B) C) func(A) func(B) C {
	return curry.Func2(fn).Func()
}

// Uncurry inverts Curry.
func Uncurry[A any, B any, C any](fn func(A) func(B) C) func(A, B) C {
	return curry.Uncurry2(fn)
}

// Flip swaps the parameters of a binary function.
//
// Example:
//
//	sub := func(a, b int) int { return a - b }
//	value := Flip(sub)(1, 10) // 9
func Flip[A any, B any, C any](fn func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return fn(a, b)
	}
}
