// Package curry turns multi-parameter callables into chains of
// single-argument calls.
//
// Every supported callable shape has its own constructor, chosen by the
// caller at compile time:
//
//	curry.Value(v)          // a bare value is its own curried form
//	curry.Func0(f)          // a nullary function is invoked immediately
//	curry.Func3(f)          // func(A, B, C) R  -> Curried3
//	curry.Apply3(h)         // Applyable3 handle -> Curried3
//	curry.Method2(recv, m)  // method expression bound to recv
//	curry.Of(c)             // an already curried form is returned unchanged
//
// A CurriedN value records the arguments bound so far as a tuple.List whose
// front is the most recently bound argument. Calling it with one argument
// returns the next link, CurriedN-1, until the last link which returns the
// result:
//
//	add3 := curry.Func3(func(a, b, c int) int { return a + b + c })
//	sum := add3.Call(1).Call(2).Call(3) // 6
//
// Go has no variadic type parameters, so arities are spelled out from 0 to 5.
// Supplying the wrong number or type of arguments is a compile error; nothing
// in this package inspects types at run time.
package curry
