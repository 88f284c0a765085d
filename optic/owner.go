package optic

import "errors"

// ErrAbsentOwner is the panic value raised by a lowered accessor when the
// lifted setter drops a present owner.
var ErrAbsentOwner = errors.New("optic: owner-lifted set returned an absent owner for a present one")

// LiftOwner re-specializes o over an owner that may be absent. Reading an
// absent owner finds nothing; writing to an absent owner is a no-op.
func LiftOwner[S, A any](o Optional[S, A]) Optional[Option[S], A] {
	return Optional[Option[S], A]{
		get: func(owner Option[S]) Option[A] {
			return FlatMapOption(owner, o.get)
		},
		set: func(owner Option[S], value A) Option[S] {
			source, ok := owner.Get()
			if !ok {
				return owner
			}

			return Some(o.set(source, value))
		},
	}
}

// LiftLensOwner is LiftOwner for a Lens.
func LiftLensOwner[S, A any](l Lens[S, A]) Optional[Option[S], A] {
	return LiftOwner(l.ToOptional())
}

// LowerOwner undoes LiftOwner. The lifted setter must keep a present owner
// present; LowerOwner panics with ErrAbsentOwner otherwise.
func LowerOwner[S, A any](o Optional[Option[S], A]) Optional[S, A] {
	return Optional[S, A]{
		get: func(source S) Option[A] {
			return o.get(Some(source))
		},
		set: func(source S, value A) S {
			res, ok := o.set(Some(source), value).Get()
			if !ok {
				panic(ErrAbsentOwner)
			}

			return res
		},
	}
}

// Flatten degrades a Lens onto an optional part into an Optional onto the
// part itself. Writing where the part is absent is a no-op.
func Flatten[S, A any](l Lens[S, Option[A]]) Optional[S, A] {
	return NewOptional(l.get, func(source S, value A) S {
		return l.set(source, Some(value))
	})
}

// ComposeOrElse chains an Optional with a Lens into a Lens. Reads through an
// absent intermediate use def(source) in its place; writes through an
// absent intermediate are a no-op.
func ComposeOrElse[S, A, B any](outer Optional[S, A], inner Lens[A, B], def func(S) A) Lens[S, B] {
	return NewLens(
		func(source S) B {
			return inner.get(outer.get(source).OrElseGet(func() A { return def(source) }))
		},
		func(source S, value B) S {
			a, ok := outer.get(source).Get()
			if !ok {
				return source
			}

			return outer.set(source, inner.set(a, value))
		},
	)
}
