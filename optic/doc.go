// Package optic provides typed, composable accessors into immutable values.
//
// An accessor is a small immutable bundle of pure functions that reads and/or
// writes one part of a value without mutating it. Eight kinds exist:
//
//   - [Getter]: total read (S -> A)
//   - [Setter]: total write ((S, A) -> S)
//   - [Lens]: total read and write
//   - [OptionalGetter]: partial read (S -> Option[A])
//   - [Optional]: partial read and write; writing where nothing is focused is a no-op
//   - [Prism]: partial read and construction (A -> S)
//   - [Iso]: total read and construction, lossless in both directions
//   - [Constructor]: construction only
//
// # Composition
//
// Every typed kind converts to the kind-tagged general form [Optic]. [Compose]
// chains two optics and picks the result kind with [Join]: the composite keeps
// only the capabilities both operands have, so the result is the strongest
// kind both can support (Iso above Lens/Prism above Optional/Getter above
// OptionalGetter, plus Setter and Constructor). Typed shortcuts such as
// [ComposeLens] and [ComposeOptional] cover the same-kind cases.
//
// An undefined join (for example a Getter followed by a Setter) is a
// programming error and panics with a [*JoinError].
//
// # Defaults
//
// Narrowing a partial accessor to a total one never happens implicitly. Use
// [Optional.OrElse], [Prism.OrElse] or [OptionalGetter.OrElse] with a default
// function that is invoked only when nothing is focused.
//
// # Optional owners
//
// [LiftOwner] re-specializes an Optional[S, A] into Optional[Option[S], A] so
// that derived accessors can be chained through a parent that may be absent.
// [LowerOwner] goes back and panics with [ErrAbsentOwner] if the lifted
// setter ever drops a present owner.
//
// # Pointer members
//
// A member declared as *T is focused as Option[T] through [FromPtr] and
// written back with [Option.ToPtr], which allocates. For such a lens
// Set(s, Get(s)) equals s under reflect.DeepEqual but the member pointer is
// a fresh one, so == on the pointer (or on a struct holding it) fails.
//
// All accessors are safe for concurrent use.
package optic
