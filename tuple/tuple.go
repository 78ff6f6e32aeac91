// Package tuple provides heterogeneous tuples as typed cons lists.
//
// A tuple is either Nil or a Cons cell holding a head value and the rest of
// the tuple. The element types are tracked in the static type, so
// tuple.Cons[int, tuple.Cons[string, tuple.Nil]] holds exactly an int followed
// by a string.
//
// Example:
//
//	t := tuple.Of3(1, 2.0, "A")
//	fmt.Println(t.Head, t.Tail.Head, t.Tail.Tail.Head)
package tuple

import "fmt"

// List is implemented by every tuple.
type List interface {
	Len() int
}

// Nil is the empty tuple.
type Nil struct{}

// Len always returns 0.
func (Nil) Len() int {
	return 0
}

// String implements fmt.Stringer.
func (Nil) String() string {
	return "()"
}

// Cons prepends Head to the tuple Tail.
type Cons[H any, T List] struct {
	Head H
	Tail T
}

// Len reports the number of elements in the tuple.
func (c Cons[H, T]) Len() int {
	return 1 + c.Tail.Len()
}

// String renders the tuple as (a, b, c).
func (c Cons[H, T]) String() string {
	return "(" + c.elements() + ")"
}

func (c Cons[H, T]) elements() string {
	head := fmt.Sprintf("%v", c.Head)
	if rest, ok := any(c.Tail).(interface{ elements() string }); ok {
		return head + ", " + rest.elements()
	}
	return head
}

// Prepend returns a new tuple with head in front of tail.
//
// Example:
//
//	t := Prepend("x", Of1(1)) // ("x", 1)
func Prepend[H any, T List](head H, tail T) Cons[H, T] {
	return Cons[H, T]{Head: head, Tail: tail}
}

// Of0 returns the empty tuple.
func Of0() Nil {
	return Nil{}
}

// Of1 builds a one-element tuple.
func Of1[A any](a A) Cons[A, Nil] {
	return Prepend(a, Nil{})
}

// Of2 builds a two-element tuple with a at the front.
func Of2[A, B any](a A, b B) Cons[A, Cons[B, Nil]] {
	return Prepend(a, Of1(b))
}

// Of3 builds a three-element tuple with a at the front.
func Of3[A, B, C any](a A, b B, c C) Cons[A, Cons[B, Cons[C, Nil]]] {
	return Prepend(a, Of2(b, c))
}

// Of4 builds a four-element tuple with a at the front.
func Of4[A, B, C, D any](a A, b B, c C, d D) Cons[A, Cons[B, Cons[C, Cons[D, Nil]]]] {
	return Prepend(a, Of3(b, c, d))
}
