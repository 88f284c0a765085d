package optic

// Lens reads and replaces a value of type A that is always present in an S.
//
// A lawful lens satisfies:
//
//	Set(s, Get(s)) == s
//	Get(Set(s, v)) == v
type Lens[S, A any] struct {
	get func(S) A
	set func(S, A) S
}

// NewLens returns a Lens backed by get and set.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// LensOf assembles a Lens from a Getter and a Setter over the same part.
func LensOf[S, A any](getter Getter[S, A], setter Setter[S, A]) Lens[S, A] {
	return NewLens(getter.get, setter.set)
}

// Get reads the focused value.
func (l Lens[S, A]) Get(source S) A {
	return l.get(source)
}

// Set returns a copy of source with the focused value replaced.
func (l Lens[S, A]) Set(source S, value A) S {
	return l.set(source, value)
}

// Modify replaces the focused value with f applied to it.
func (l Lens[S, A]) Modify(source S, f func(A) A) S {
	return l.set(source, f(l.get(source)))
}

// ModifyWith is Modify with access to the source.
func (l Lens[S, A]) ModifyWith(source S, f func(S, A) A) S {
	return l.set(source, f(source, l.get(source)))
}

// Transform returns a Lens that maps values on the way out (mapGet) and on
// the way in (mapSet). A nil function leaves that direction unchanged.
func (l Lens[S, A]) Transform(mapGet, mapSet func(A) A) Lens[S, A] {
	return NewLens(
		func(source S) A {
			value := l.get(source)
			if mapGet != nil {
				value = mapGet(value)
			}

			return value
		},
		func(source S, value A) S {
			if mapSet != nil {
				value = mapSet(value)
			}

			return l.set(source, value)
		},
	)
}

// ToGetter drops the write side of l.
func (l Lens[S, A]) ToGetter() Getter[S, A] {
	return NewGetter(l.get)
}

// ToSetter drops the read side of l.
func (l Lens[S, A]) ToSetter() Setter[S, A] {
	return NewSetter(l.set)
}

// ToOptionalGetter views l as an OptionalGetter that always finds a value.
func (l Lens[S, A]) ToOptionalGetter() OptionalGetter[S, A] {
	return NewOptionalGetter(l.preview)
}

// ToOptional views l as an Optional that always finds a value.
func (l Lens[S, A]) ToOptional() Optional[S, A] {
	return NewOptional(l.preview, l.set)
}

func (l Lens[S, A]) preview(source S) Option[A] {
	return Some(l.get(source))
}

// Optic returns the general form of l.
func (l Lens[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{kind: KindLens, get: l.get, preview: l.preview, set: l.set}
}
