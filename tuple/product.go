package tuple

// Pair represents a pair of values.
//
// Example:
//
//	p := tuple.Pair[int, string]{First: 1, Second: "a"}
type Pair[A any, B any] struct {
	First  A
	Second B
}

// NewPair builds a Pair.
func NewPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Unpack returns both members as multiple return values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap exchanges the members.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// Triple represents three values.
//
// Example:
//
//	t := tuple.Triple[int, string, bool]{First: 1, Second: "a", Third: true}
type Triple[A any, B any, C any] struct {
	First  A
	Second B
	Third  C
}

// NewTriple builds a Triple.
func NewTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

// Unpack returns all members as multiple return values.
func (t Triple[A, B, C]) Unpack() (A, B, C) {
	return t.First, t.Second, t.Third
}
