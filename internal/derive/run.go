package derive

import (
	"context"

	"github.com/google/uuid"

	"optics-generator/internal/model"
)

// groupKey identifies one emitted group of accessors.
type groupKey struct {
	target    model.TypeID
	family    Family
	container model.TypeID
}

type described struct {
	desc *model.TargetTypeDescriptor
	err  error
}

// run is the state of one derivation batch. It is never shared between
// batches.
type run struct {
	id          string
	seen        map[groupKey]struct{}
	rejected    map[model.TypeID]struct{}
	descriptors map[model.TypeID]described
}

func newRun() *run {
	return &run{
		id:          uuid.Must(uuid.NewV7()).String(),
		seen:        make(map[groupKey]struct{}),
		rejected:    make(map[model.TypeID]struct{}),
		descriptors: make(map[model.TypeID]described),
	}
}

// markSeen records key and reports whether it was new.
func (r *run) markSeen(key groupKey) bool {
	if _, ok := r.seen[key]; ok {
		return false
	}

	r.seen[key] = struct{}{}

	return true
}

// markRejected records a rejected target and reports whether it was new.
func (r *run) markRejected(id model.TypeID) bool {
	if _, ok := r.rejected[id]; ok {
		return false
	}

	r.rejected[id] = struct{}{}

	return true
}

// describe resolves each target once per run.
func (r *run) describe(ctx context.Context, in model.TypeIntrospector, id model.TypeID) (*model.TargetTypeDescriptor, error) {
	if d, ok := r.descriptors[id]; ok {
		return d.desc, d.err
	}

	desc, err := in.Describe(ctx, id)
	r.descriptors[id] = described{desc: desc, err: err}

	return desc, err
}
