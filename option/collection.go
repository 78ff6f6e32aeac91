package option

import (
	"github.com/samber/lo"

	"github.com/charmingruby/functional/tuple"
)

// Zip pairs two Options. The result is None when either input is.
func Zip[A any, B any](a Option[A], b Option[B]) Option[tuple.Pair[A, B]] {
	if !a.ok || !b.ok {
		return None[tuple.Pair[A, B]]()
	}
	return Some(tuple.NewPair(a.value, b.value))
}

// Sequence turns a slice of Options into an Option of a slice, failing on
// the first None.
//
// Example:
//
//	all := option.Sequence([]option.Option[int]{option.Some(1), option.Some(2)})
func Sequence[T any](items []Option[T]) Option[[]T] {
	return Traverse(items, func(o Option[T]) Option[T] { return o })
}

// Traverse maps items through fn and sequences the results. fn is not called
// again once it has returned None.
func Traverse[A any, B any](items []A, fn func(A) Option[B]) Option[[]B] {
	return lo.Reduce(items, func(acc Option[[]B], item A, _ int) Option[[]B] {
		if !acc.ok {
			return acc
		}
		next := fn(item)
		if !next.ok {
			return None[[]B]()
		}
		return Some(append(acc.value, next.value))
	}, Some(make([]B, 0, len(items))))
}
