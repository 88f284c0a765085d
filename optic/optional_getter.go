package optic

// OptionalGetter reads a value of type A that may be absent from an S.
type OptionalGetter[S, A any] struct {
	get func(S) Option[A]
}

// NewOptionalGetter returns an OptionalGetter backed by get.
func NewOptionalGetter[S, A any](get func(S) Option[A]) OptionalGetter[S, A] {
	return OptionalGetter[S, A]{get: get}
}

// Get reads the focused value, if any.
func (g OptionalGetter[S, A]) Get(source S) Option[A] {
	return g.get(source)
}

// OrElse returns a Getter that falls back to def when nothing is focused.
// def is only called in that case.
func (g OptionalGetter[S, A]) OrElse(def func(S) A) Getter[S, A] {
	return NewGetter(func(source S) A {
		if value, ok := g.get(source).Get(); ok {
			return value
		}

		return def(source)
	})
}

// OrElseValue is OrElse with a constant default.
func (g OptionalGetter[S, A]) OrElseValue(value A) Getter[S, A] {
	return g.OrElse(func(S) A { return value })
}

// Optic returns the general form of g.
func (g OptionalGetter[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{kind: KindOptionalGetter, preview: g.get}
}
