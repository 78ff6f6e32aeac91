// Package combinator provides a fixed-point combinator for writing recursive
// functions without a named recursive binding.
//
// The recursive definition receives, as its first argument, a capability
// handle to itself:
//
//	fac := combinator.Y1(func(self curry.Applyable1[int, int], n int) int {
//		if n == 0 {
//			return 1
//		}
//		return n * self.Apply(n-1)
//	})
//	fmt.Println(fac.Apply(5)) // 120
//
// Every call is evaluated afresh; nothing is memoized. Recursion runs on the
// goroutine stack, so unbounded recursion ends the process with a stack
// overflow. Callers that need a bound must count depth themselves.
package combinator

import (
	"github.com/charmingruby/functional/curry"
	"github.com/charmingruby/functional/tuple"
)

// Y1 returns the fixed point of a one-argument recursive definition.
func Y1[A, R any](f func(self curry.Applyable1[A, R], a A) R) Fixed1[A, R] {
	return Fixed1[A, R]{f: f}
}

// Y2 returns the fixed point of a two-argument recursive definition.
//
// Example:
//
//	gcd := combinator.Y2(func(self curry.Applyable2[int, int, int], a, b int) int {
//		if b == 0 {
//			return a
//		}
//		return self.Apply(b, a%b)
//	})
func Y2[A, B, R any](f func(self curry.Applyable2[A, B, R], a A, b B) R) Fixed2[A, B, R] {
	return Fixed2[A, B, R]{f: f}
}

// Y3 returns the fixed point of a three-argument recursive definition.
func Y3[A, B, C, R any](f func(self curry.Applyable3[A, B, C, R], a A, b B, c C) R) Fixed3[A, B, C, R] {
	return Fixed3[A, B, C, R]{f: f}
}

// Fixed1 is the fixed point of a one-argument recursive definition. It is
// the handle passed back to the definition on every call.
type Fixed1[A, R any] struct {
	f func(curry.Applyable1[A, R], A) R
}

// Apply calls the definition with the wrapper itself as the recursive handle.
func (y Fixed1[A, R]) Apply(a A) R {
	return y.f(y, a)
}

// Call is Apply under the curried-form name.
func (y Fixed1[A, R]) Call(a A) R {
	return y.Apply(a)
}

// Arity reports the number of arguments the fixed point takes.
func (y Fixed1[A, R]) Arity() int {
	return 1
}

// Fixed2 is the fixed point of a two-argument recursive definition.
type Fixed2[A, B, R any] struct {
	f func(curry.Applyable2[A, B, R], A, B) R
}

// Apply calls the definition with the wrapper itself as the recursive handle.
func (y Fixed2[A, B, R]) Apply(a A, b B) R {
	return y.f(y, a, b)
}

// Bind fixes the first argument.
func (y Fixed2[A, B, R]) Bind(a A) curry.Applyable1[B, R] {
	return curry.Func2(y.Apply).Bind(a)
}

// Call fixes the first argument and returns the next curried link.
func (y Fixed2[A, B, R]) Call(a A) curry.Curried1[tuple.Cons[A, tuple.Nil], B, R] {
	return curry.Func2(y.Apply).Call(a)
}

// Arity reports the number of arguments the fixed point takes.
func (y Fixed2[A, B, R]) Arity() int {
	return 2
}

// Fixed3 is the fixed point of a three-argument recursive definition.
type Fixed3[A, B, C, R any] struct {
	f func(curry.Applyable3[A, B, C, R], A, B, C) R
}

// Apply calls the definition with the wrapper itself as the recursive handle.
func (y Fixed3[A, B, C, R]) Apply(a A, b B, c C) R {
	return y.f(y, a, b, c)
}

// Bind fixes the first argument.
func (y Fixed3[A, B, C, R]) Bind(a A) curry.Applyable2[B, C, R] {
	return curry.Func3(y.Apply).Bind(a)
}

// Call fixes the first argument and returns the next curried link.
func (y Fixed3[A, B, C, R]) Call(a A) curry.Curried2[tuple.Cons[A, tuple.Nil], B, C, R] {
	return curry.Func3(y.Apply).Call(a)
}

// Arity reports the number of arguments the fixed point takes.
func (y Fixed3[A, B, C, R]) Arity() int {
	return 3
}
