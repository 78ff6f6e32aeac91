package option

import "github.com/samber/mo"

// FromMo converts a samber/mo Option.
func FromMo[T any](o mo.Option[T]) Option[T] {
	value, ok := o.Get()
	return FromOk(value, ok)
}

// ToMo converts the Option into a samber/mo Option.
func (o Option[T]) ToMo() mo.Option[T] {
	if !o.ok {
		return mo.None[T]()
	}
	return mo.Some(o.value)
}
