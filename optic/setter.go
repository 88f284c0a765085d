package optic

// Setter replaces a value of type A inside an S.
type Setter[S, A any] struct {
	set func(S, A) S
}

// NewSetter returns a Setter backed by set.
func NewSetter[S, A any](set func(S, A) S) Setter[S, A] {
	return Setter[S, A]{set: set}
}

// SetterFromConstructor returns a Setter that ignores the source and
// builds a fresh S from the value.
func SetterFromConstructor[S, A any](c Constructor[S, A]) Setter[S, A] {
	return NewSetter(func(_ S, value A) S {
		return c.construct(value)
	})
}

// Set returns a copy of source with the focused value replaced.
func (s Setter[S, A]) Set(source S, value A) S {
	return s.set(source, value)
}

// Optic returns the general form of s.
func (s Setter[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{kind: KindSetter, set: s.set}
}
