// Package derive turns requests for target types into accessor
// specifications.
//
// A run takes a batch of requests (built with a Registry or read from a
// manifest), resolves every target type through a model.TypeIntrospector,
// rejects types that cannot be derived with a diagnostic, classifies the
// members of the others and synthesizes one accessor per eligible member:
//
//   - plain member V:    Lens[T, V]
//   - optional member V: Lens[T, Option[V]]
//
// The optional-owner family re-specializes the same accessors over an owner
// that may be absent: Optional[Option[T], V] and Optional[Option[T], Option[V]].
//
// Every run owns its deduplication set; a target requested twice in the same
// shape is processed once. Failures are isolated per request.
package derive
