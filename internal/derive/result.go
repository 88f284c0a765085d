package derive

import (
	"optics-generator/internal/classify"
	"optics-generator/internal/diagnostic"
	"optics-generator/internal/model"
)

// Group is the accessors derived for one request, in member declaration
// order.
type Group struct {
	Target *model.TargetTypeDescriptor
	Family Family
	// Container is nil for the shared shape.
	Container *model.ContainerDescriptor
	Location  model.Location
	Accessors []GeneratedAccessor
	Skipped   []classify.Skipped
}

// Shape returns how the group is emitted.
func (g *Group) Shape() Shape {
	if g.Container == nil {
		return ShapeShared
	}

	return ShapeNested
}

// Result is the outcome of one run.
type Result struct {
	// RunID identifies the run.
	RunID       string
	Groups      []Group
	Diagnostics diagnostic.Diagnostics
}

// Accessors returns the accessors of every group, in group order.
func (r *Result) Accessors() []GeneratedAccessor {
	var res []GeneratedAccessor
	for _, g := range r.Groups {
		res = append(res, g.Accessors...)
	}

	return res
}

// GroupsFor returns the groups derived for target.
func (r *Result) GroupsFor(target model.TypeID) []Group {
	var res []Group
	for _, g := range r.Groups {
		if g.Target.ID == target {
			res = append(res, g)
		}
	}

	return res
}
