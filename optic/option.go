package optic

import (
	"errors"
	"fmt"
)

// ErrNoValue is the panic value raised when the payload of a None is read.
var ErrNoValue = errors.New("optic: read of an absent option value")

// Option is either Some(value) or None.
// The zero value is None.
type Option[V any] struct {
	value V
	ok    bool
}

// Some returns an Option holding v.
func Some[V any](v V) Option[V] {
	return Option[V]{value: v, ok: true}
}

// None returns an empty Option.
func None[V any]() Option[V] {
	return Option[V]{}
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise. The option
// holds a copy; the pointer identity is not kept.
func FromPtr[V any](p *V) Option[V] {
	if p == nil {
		return None[V]()
	}

	return Some(*p)
}

// IsSome reports whether the option holds a value.
func (o Option[V]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the option is empty.
func (o Option[V]) IsNone() bool {
	return !o.ok
}

// Get returns the value and true, or the zero value and false.
func (o Option[V]) Get() (V, bool) {
	return o.value, o.ok
}

// MustGet returns the value. It panics with ErrNoValue on None.
func (o Option[V]) MustGet() V {
	if !o.ok {
		panic(ErrNoValue)
	}

	return o.value
}

// OrElse returns the value, or v when the option is empty.
func (o Option[V]) OrElse(v V) V {
	if o.ok {
		return o.value
	}

	return v
}

// OrElseGet returns the value, or the result of f when the option is empty.
// f is only called for None.
func (o Option[V]) OrElseGet(f func() V) V {
	if o.ok {
		return o.value
	}

	return f()
}

// ToPtr returns a pointer to a copy of the value, or nil for None.
// Round-tripping a pointer through FromPtr and ToPtr yields an equal pointee
// at a new address.
func (o Option[V]) ToPtr() *V {
	if !o.ok {
		return nil
	}

	v := o.value

	return &v
}

// String implements fmt.Stringer.
func (o Option[V]) String() string {
	if !o.ok {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

// MapOption applies f to the value of o, if any.
func MapOption[V, W any](o Option[V], f func(V) W) Option[W] {
	if !o.ok {
		return None[W]()
	}

	return Some(f(o.value))
}

// FlatMapOption applies f to the value of o, if any, and returns its result.
func FlatMapOption[V, W any](o Option[V], f func(V) Option[W]) Option[W] {
	if !o.ok {
		return None[W]()
	}

	return f(o.value)
}

// MatchOption eliminates an Option by case analysis.
func MatchOption[V, T any](o Option[V], onNone func() T, onSome func(V) T) T {
	if !o.ok {
		return onNone()
	}

	return onSome(o.value)
}
