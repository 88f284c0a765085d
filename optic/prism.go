package optic

// Prism matches one case of an S and builds an S back from that case.
//
// A lawful prism satisfies Get(Construct(v)) == Some(v).
type Prism[S, A any] struct {
	get       func(S) Option[A]
	construct func(A) S
}

// NewPrism returns a Prism backed by get and construct.
func NewPrism[S, A any](get func(S) Option[A], construct func(A) S) Prism[S, A] {
	return Prism[S, A]{get: get, construct: construct}
}

// PrismOf assembles a Prism from an OptionalGetter and a Constructor.
func PrismOf[S, A any](getter OptionalGetter[S, A], c Constructor[S, A]) Prism[S, A] {
	return NewPrism(getter.get, c.construct)
}

// Get reads the matched case, if any.
func (p Prism[S, A]) Get(source S) Option[A] {
	return p.get(source)
}

// Construct builds an S from the case value.
func (p Prism[S, A]) Construct(value A) S {
	return p.construct(value)
}

// Set replaces the matched case with value. It is a no-op when source does
// not match.
func (p Prism[S, A]) Set(source S, value A) S {
	if p.get(source).IsNone() {
		return source
	}

	return p.construct(value)
}

// Modify rebuilds source from f applied to the matched case. It is a no-op
// when source does not match.
func (p Prism[S, A]) Modify(source S, f func(A) A) S {
	value, ok := p.get(source).Get()
	if !ok {
		return source
	}

	return p.construct(f(value))
}

// ToOptionalGetter drops the construct side of p.
func (p Prism[S, A]) ToOptionalGetter() OptionalGetter[S, A] {
	return NewOptionalGetter(p.get)
}

// ToConstructor drops the read side of p.
func (p Prism[S, A]) ToConstructor() Constructor[S, A] {
	return NewConstructor(p.construct)
}

// ToOptional views p as an Optional.
func (p Prism[S, A]) ToOptional() Optional[S, A] {
	return NewOptional(p.get, p.Set)
}

// ToSetter views p as a Setter.
func (p Prism[S, A]) ToSetter() Setter[S, A] {
	return NewSetter(p.Set)
}

// OrElse narrows p to an Iso that reads def(source) when source does not
// match. The result is only lawful when every S matches.
func (p Prism[S, A]) OrElse(def func(S) A) Iso[S, A] {
	return NewIso(p.GetterOrElse(def).get, p.construct)
}

// GetterOrElse narrows the read side of p to a Getter.
func (p Prism[S, A]) GetterOrElse(def func(S) A) Getter[S, A] {
	return p.ToOptionalGetter().OrElse(def)
}

// Optic returns the general form of p.
func (p Prism[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{kind: KindPrism, preview: p.get, set: p.Set, construct: p.construct}
}
