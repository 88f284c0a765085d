package optic

// Constructor builds an S from an A.
type Constructor[S, A any] struct {
	construct func(A) S
}

// NewConstructor returns a Constructor backed by construct.
func NewConstructor[S, A any](construct func(A) S) Constructor[S, A] {
	return Constructor[S, A]{construct: construct}
}

// Construct builds an S from value.
func (c Constructor[S, A]) Construct(value A) S {
	return c.construct(value)
}

// ToSetter views c as a Setter that ignores the source.
func (c Constructor[S, A]) ToSetter() Setter[S, A] {
	return SetterFromConstructor(c)
}

// MapConstructor adapts the input of c with f.
func MapConstructor[S, A, B any](c Constructor[S, A], f func(B) A) Constructor[S, B] {
	return NewConstructor(func(value B) S {
		return c.construct(f(value))
	})
}

// Optic returns the general form of c.
func (c Constructor[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{kind: KindConstructor, construct: c.construct}
}
