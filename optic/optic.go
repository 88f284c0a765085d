package optic

// Optic is the kind-tagged general form every accessor converts to.
// Only the functions its kind supports are set; calling any other operation
// panics with a *KindError.
type Optic[S, A any] struct {
	kind      Kind
	get       func(S) A
	preview   func(S) Option[A]
	set       func(S, A) S
	construct func(A) S
}

// Kind returns the accessor kind.
func (o Optic[S, A]) Kind() Kind {
	return o.kind
}

func (o Optic[S, A]) require(want Kind) {
	if !o.kind.Covers(want) {
		panic(&KindError{Have: o.kind, Want: want})
	}
}

// Get reads the focused value. The kind must read totally.
func (o Optic[S, A]) Get(source S) A {
	o.require(KindGetter)

	return o.get(source)
}

// Preview reads the focused value, if any.
func (o Optic[S, A]) Preview(source S) Option[A] {
	o.require(KindOptionalGetter)

	return o.preview(source)
}

// Set replaces the focused value.
func (o Optic[S, A]) Set(source S, value A) S {
	o.require(KindSetter)

	return o.set(source, value)
}

// Construct builds a whole from a part.
func (o Optic[S, A]) Construct(value A) S {
	o.require(KindConstructor)

	return o.construct(value)
}

// Compose chains outer (S -> A) with inner (A -> B).
// The result kind is Join(outer.Kind(), inner.Kind()); Compose panics with
// a *JoinError when the join is undefined.
//
// Reads short-circuit: if outer finds nothing, inner is never consulted.
// Writes are all-or-nothing: if either side finds nothing to replace, the
// source is returned unchanged.
func Compose[S, A, B any](outer Optic[S, A], inner Optic[A, B]) Optic[S, B] {
	kind, ok := Join(outer.kind, inner.kind)
	if !ok {
		panic(&JoinError{Outer: outer.kind, Inner: inner.kind})
	}

	res := Optic[S, B]{kind: kind}

	if kind.CanGet() {
		res.get = func(source S) B {
			return inner.get(outer.get(source))
		}
	}

	if kind.CanPreview() {
		res.preview = func(source S) Option[B] {
			a, ok := outer.preview(source).Get()
			if !ok {
				return None[B]()
			}

			return inner.preview(a)
		}
	}

	if kind.CanSet() {
		res.set = func(source S, value B) S {
			a, ok := outer.preview(source).Get()
			if !ok {
				return source
			}

			if inner.preview != nil && inner.preview(a).IsNone() {
				return source
			}

			return outer.set(source, inner.set(a, value))
		}
	}

	if kind.CanConstruct() {
		res.construct = func(value B) S {
			return outer.construct(inner.construct(value))
		}
	}

	return res
}

// Modify reads the focused value, applies f and writes the result back.
// It is a no-op when nothing is focused.
func Modify[S, A any](o Optic[S, A], source S, f func(A) A) S {
	o.require(KindOptional)

	a, ok := o.preview(source).Get()
	if !ok {
		return source
	}

	return o.set(source, f(a))
}

// AsGetter views o as a Getter.
func (o Optic[S, A]) AsGetter() Getter[S, A] {
	o.require(KindGetter)

	return Getter[S, A]{get: o.get}
}

// AsSetter views o as a Setter.
func (o Optic[S, A]) AsSetter() Setter[S, A] {
	o.require(KindSetter)

	return Setter[S, A]{set: o.set}
}

// AsLens views o as a Lens.
func (o Optic[S, A]) AsLens() Lens[S, A] {
	o.require(KindLens)

	return Lens[S, A]{get: o.get, set: o.set}
}

// AsOptionalGetter views o as an OptionalGetter.
func (o Optic[S, A]) AsOptionalGetter() OptionalGetter[S, A] {
	o.require(KindOptionalGetter)

	return OptionalGetter[S, A]{get: o.preview}
}

// AsOptional views o as an Optional.
func (o Optic[S, A]) AsOptional() Optional[S, A] {
	o.require(KindOptional)

	return Optional[S, A]{get: o.preview, set: o.set}
}

// AsPrism views o as a Prism.
func (o Optic[S, A]) AsPrism() Prism[S, A] {
	o.require(KindPrism)

	return Prism[S, A]{get: o.preview, construct: o.construct}
}

// AsIso views o as an Iso.
func (o Optic[S, A]) AsIso() Iso[S, A] {
	o.require(KindIso)

	return Iso[S, A]{get: o.get, construct: o.construct}
}

// AsConstructor views o as a Constructor.
func (o Optic[S, A]) AsConstructor() Constructor[S, A] {
	o.require(KindConstructor)

	return Constructor[S, A]{construct: o.construct}
}

// ComposeLens composes two lenses into a lens.
func ComposeLens[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Compose(outer.Optic(), inner.Optic()).AsLens()
}

// ComposeOptional composes two optionals into an optional.
func ComposeOptional[S, A, B any](outer Optional[S, A], inner Optional[A, B]) Optional[S, B] {
	return Compose(outer.Optic(), inner.Optic()).AsOptional()
}

// ComposePrism composes two prisms into a prism.
func ComposePrism[S, A, B any](outer Prism[S, A], inner Prism[A, B]) Prism[S, B] {
	return Compose(outer.Optic(), inner.Optic()).AsPrism()
}

// ComposeIso composes two isos into an iso.
func ComposeIso[S, A, B any](outer Iso[S, A], inner Iso[A, B]) Iso[S, B] {
	return Compose(outer.Optic(), inner.Optic()).AsIso()
}

// ComposeGetter composes two getters into a getter.
func ComposeGetter[S, A, B any](outer Getter[S, A], inner Getter[A, B]) Getter[S, B] {
	return Compose(outer.Optic(), inner.Optic()).AsGetter()
}

// ComposeOptionalGetter composes two optional getters into an optional getter.
func ComposeOptionalGetter[S, A, B any](outer OptionalGetter[S, A], inner OptionalGetter[A, B]) OptionalGetter[S, B] {
	return Compose(outer.Optic(), inner.Optic()).AsOptionalGetter()
}

// ComposeSetter composes a setter after any accessor that can read.
func ComposeSetter[S, A, B any](outer Optic[S, A], inner Setter[A, B]) Setter[S, B] {
	return Compose(outer, inner.Optic()).AsSetter()
}

// ComposeConstructor composes two constructors into a constructor.
func ComposeConstructor[S, A, B any](outer Constructor[S, A], inner Constructor[A, B]) Constructor[S, B] {
	return Compose(outer.Optic(), inner.Optic()).AsConstructor()
}

// ComposeLensOptional composes a lens with an optional into an optional.
func ComposeLensOptional[S, A, B any](outer Lens[S, A], inner Optional[A, B]) Optional[S, B] {
	return Compose(outer.Optic(), inner.Optic()).AsOptional()
}

// ComposeOptionalLens composes an optional with a lens into an optional.
func ComposeOptionalLens[S, A, B any](outer Optional[S, A], inner Lens[A, B]) Optional[S, B] {
	return Compose(outer.Optic(), inner.Optic()).AsOptional()
}
