package optic

// Getter reads a value of type A out of an S.
type Getter[S, A any] struct {
	get func(S) A
}

// NewGetter returns a Getter backed by get.
func NewGetter[S, A any](get func(S) A) Getter[S, A] {
	return Getter[S, A]{get: get}
}

// Get reads the focused value.
func (g Getter[S, A]) Get(source S) A {
	return g.get(source)
}

// ToOptionalGetter views g as an OptionalGetter that always finds a value.
func (g Getter[S, A]) ToOptionalGetter() OptionalGetter[S, A] {
	return NewOptionalGetter(g.preview)
}

func (g Getter[S, A]) preview(source S) Option[A] {
	return Some(g.get(source))
}

// Optic returns the general form of g.
func (g Getter[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{kind: KindGetter, get: g.get, preview: g.preview}
}
