package curry

import "github.com/charmingruby/functional/tuple"

// Method0 calls a nullary method on recv immediately. m is a method
// expression such as Counter.Value or (*Counter).Reset.
func Method0[S, R any](recv S, m func(S) R) R {
	return m(recv)
}

// Method1 binds recv as the receiver of m. The receiver is the first bound
// argument of the returned link.
func Method1[S, A, R any](recv S, m func(S, A) R) Curried1[tuple.Cons[S, tuple.Nil], A, R] {
	return Func2(m).Call(recv)
}

// Method2 binds recv as the receiver of a two-parameter method.
//
// Example:
//
//	c := &Calc{k: 3}
//	sum := curry.Method2(c, (*Calc).Add).Call(5).Call(7) // 15
func Method2[S, A, B, R any](recv S, m func(S, A, B) R) Curried2[tuple.Cons[S, tuple.Nil], A, B, R] {
	return Func3(m).Call(recv)
}

// Method3 binds recv as the receiver of a three-parameter method.
func Method3[S, A, B, C, R any](recv S, m func(S, A, B, C) R) Curried3[tuple.Cons[S, tuple.Nil], A, B, C, R] {
	return Func4(m).Call(recv)
}

// Method4 binds recv as the receiver of a four-parameter method.
func Method4[S, A, B, C, D, R any](recv S, m func(S, A, B, C, D) R) Curried4[tuple.Cons[S, tuple.Nil], A, B, C, D, R] {
	return Func5(m).Call(recv)
}
