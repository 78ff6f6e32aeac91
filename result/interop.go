package result

import "github.com/samber/mo"

// FromMo converts a samber/mo Result.
func FromMo[T any](r mo.Result[T]) Result[T] {
	value, err := r.Get()
	return FromTuple(value, err)
}

// ToMo converts the Result into a samber/mo Result.
func (r Result[T]) ToMo() mo.Result[T] {
	if r.err != nil {
		return mo.Err[T](r.err)
	}
	return mo.Ok(r.value)
}
