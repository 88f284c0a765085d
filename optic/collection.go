package optic

import (
	"maps"
	"slices"
)

// At focuses on the element idx of the collection a Lens points at, using
// lookup to read it and update to write it. Writing where lookup finds
// nothing is a no-op.
func At[S, C, I, V any](
	l Lens[S, C],
	lookup func(C, I) Option[V],
	update func(C, I, V) C,
	idx I,
) Optional[S, V] {
	return NewOptional(
		func(source S) Option[V] {
			return lookup(l.get(source), idx)
		},
		func(source S, value V) S {
			return l.set(source, update(l.get(source), idx, value))
		},
	)
}

// Key focuses on the entry k of a map. Writing copies the map; the source
// map is never modified.
func Key[S any, K comparable, V any](l Lens[S, map[K]V], k K) Optional[S, V] {
	return At(l, lookupKey[K, V], updateKey[K, V], k)
}

func lookupKey[K comparable, V any](m map[K]V, k K) Option[V] {
	v, ok := m[k]
	if !ok {
		return None[V]()
	}

	return Some(v)
}

func updateKey[K comparable, V any](m map[K]V, k K, v V) map[K]V {
	res := maps.Clone(m)
	res[k] = v

	return res
}

// Index focuses on the element i of a slice. Writing copies the slice; the
// source slice is never modified.
func Index[S, V any](l Lens[S, []V], i int) Optional[S, V] {
	return At(l, lookupIndex[V], updateIndex[V], i)
}

func lookupIndex[V any](s []V, i int) Option[V] {
	if i < 0 || i >= len(s) {
		return None[V]()
	}

	return Some(s[i])
}

func updateIndex[V any](s []V, i int, v V) []V {
	res := slices.Clone(s)
	res[i] = v

	return res
}
