package optic

// Optional reads and replaces a value of type A that may be absent from an S.
//
// A lawful optional satisfies:
//
//	Get(s) == Some(_)  =>  Get(Set(s, v)) == Some(v)
//	Get(s) == None     =>  Set(s, v) == s
type Optional[S, A any] struct {
	get func(S) Option[A]
	set func(S, A) S
}

// NewOptional returns an Optional backed by get and set. The returned
// accessor guards set so that it never runs when get finds nothing.
func NewOptional[S, A any](get func(S) Option[A], set func(S, A) S) Optional[S, A] {
	return Optional[S, A]{
		get: get,
		set: func(source S, value A) S {
			if get(source).IsNone() {
				return source
			}

			return set(source, value)
		},
	}
}

// OptionalOf assembles an Optional from an OptionalGetter and a Setter.
func OptionalOf[S, A any](getter OptionalGetter[S, A], setter Setter[S, A]) Optional[S, A] {
	return NewOptional(getter.get, setter.set)
}

// Get reads the focused value, if any.
func (o Optional[S, A]) Get(source S) Option[A] {
	return o.get(source)
}

// Set returns a copy of source with the focused value replaced, or source
// itself when nothing is focused.
func (o Optional[S, A]) Set(source S, value A) S {
	return o.set(source, value)
}

// Modify replaces the focused value with f applied to it. It is a no-op when
// nothing is focused.
func (o Optional[S, A]) Modify(source S, f func(A) A) S {
	value, ok := o.get(source).Get()
	if !ok {
		return source
	}

	return o.set(source, f(value))
}

// ModifyOption is Modify with a modifier that may decline; a None result
// leaves source unchanged.
func (o Optional[S, A]) ModifyOption(source S, f func(A) Option[A]) S {
	value, ok := o.get(source).Get()
	if !ok {
		return source
	}

	next, ok := f(value).Get()
	if !ok {
		return source
	}

	return o.set(source, next)
}

// ToOptionalGetter drops the write side of o.
func (o Optional[S, A]) ToOptionalGetter() OptionalGetter[S, A] {
	return NewOptionalGetter(o.get)
}

// ToSetter drops the read side of o.
func (o Optional[S, A]) ToSetter() Setter[S, A] {
	return NewSetter(o.set)
}

// OrElse narrows o to a Lens that reads def(source) when nothing is focused.
// Writing where nothing is focused stays a no-op.
func (o Optional[S, A]) OrElse(def func(S) A) Lens[S, A] {
	return NewLens(o.ToOptionalGetter().OrElse(def).get, o.set)
}

// OrElseValue is OrElse with a constant default.
func (o Optional[S, A]) OrElseValue(value A) Lens[S, A] {
	return o.OrElse(func(S) A { return value })
}

// GetterOrElse narrows the read side of o to a Getter.
func (o Optional[S, A]) GetterOrElse(def func(S) A) Getter[S, A] {
	return o.ToOptionalGetter().OrElse(def)
}

// Optic returns the general form of o.
func (o Optional[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{kind: KindOptional, preview: o.get, set: o.set}
}
