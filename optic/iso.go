package optic

// Iso converts losslessly between S and A.
//
// A lawful iso satisfies:
//
//	Construct(Get(s)) == s
//	Get(Construct(v)) == v
type Iso[S, A any] struct {
	get       func(S) A
	construct func(A) S
}

// NewIso returns an Iso backed by get and construct.
func NewIso[S, A any](get func(S) A, construct func(A) S) Iso[S, A] {
	return Iso[S, A]{get: get, construct: construct}
}

// IsoOf assembles an Iso from a Getter and a Constructor.
func IsoOf[S, A any](getter Getter[S, A], c Constructor[S, A]) Iso[S, A] {
	return NewIso(getter.get, c.construct)
}

// Get converts an S into an A.
func (i Iso[S, A]) Get(source S) A {
	return i.get(source)
}

// Construct converts an A into an S.
func (i Iso[S, A]) Construct(value A) S {
	return i.construct(value)
}

// Set replaces the whole of source by value.
func (i Iso[S, A]) Set(_ S, value A) S {
	return i.construct(value)
}

// Modify converts source, applies f and converts back.
func (i Iso[S, A]) Modify(source S, f func(A) A) S {
	return i.construct(f(i.get(source)))
}

// Reverse swaps the two directions of i.
func (i Iso[S, A]) Reverse() Iso[A, S] {
	return NewIso(i.construct, i.get)
}

// ToGetter drops the construct side of i.
func (i Iso[S, A]) ToGetter() Getter[S, A] {
	return NewGetter(i.get)
}

// ToOptionalGetter views i as an OptionalGetter that always finds a value.
func (i Iso[S, A]) ToOptionalGetter() OptionalGetter[S, A] {
	return NewOptionalGetter(i.preview)
}

// ToConstructor drops the read side of i.
func (i Iso[S, A]) ToConstructor() Constructor[S, A] {
	return NewConstructor(i.construct)
}

// ToLens views i as a Lens.
func (i Iso[S, A]) ToLens() Lens[S, A] {
	return NewLens(i.get, i.Set)
}

// ToPrism views i as a Prism that always matches.
func (i Iso[S, A]) ToPrism() Prism[S, A] {
	return NewPrism(i.preview, i.construct)
}

// ToOptional views i as an Optional that always finds a value.
func (i Iso[S, A]) ToOptional() Optional[S, A] {
	return NewOptional(i.preview, i.Set)
}

// ToSetter views i as a Setter.
func (i Iso[S, A]) ToSetter() Setter[S, A] {
	return NewSetter(i.Set)
}

func (i Iso[S, A]) preview(source S) Option[A] {
	return Some(i.get(source))
}

// Optic returns the general form of i.
func (i Iso[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{kind: KindIso, get: i.get, preview: i.preview, set: i.Set, construct: i.construct}
}
