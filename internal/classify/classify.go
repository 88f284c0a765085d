// Package classify decides which members of a target type are eligible for
// derived accessors and whether each one is plain or optional.
package classify

import (
	"cmp"
	"slices"

	"optics-generator/internal/common"
	"optics-generator/internal/model"
)

// Class is the optionality classification of an eligible member.
type Class int

const (
	ClassPlain Class = iota
	ClassOptional
)

// String returns a human-readable class name.
func (c Class) String() string {
	switch c {
	case ClassPlain:
		return "plain"
	case ClassOptional:
		return "optional"
	default:
		return common.UnknownStr
	}
}

// Reason explains why a member is not eligible. The zero value means eligible.
type Reason string

const (
	Eligible       Reason = ""
	NotExported    Reason = "not exported"
	NotReadable    Reason = "not readable"
	NotWritable    Reason = "neither writable nor write-once"
	IndexedMember  Reason = "indexed member"
	StaticMember   Reason = "static member"
	ConstantMember Reason = "constant member"
	ExcludedMember Reason = "excluded by declaration"
	Shadowed       Reason = "shadowed by a shallower member"
	Unnameable     Reason = "type cannot be named from the generated package"
)

// Member is an eligible member with its classification.
type Member struct {
	model.MemberDescriptor
	Class Class
}

// Skipped is an ineligible member with the reason it was dropped.
type Skipped struct {
	model.MemberDescriptor
	Reason Reason
}

// Check returns the reason m is not eligible, or Eligible.
func Check(m model.MemberDescriptor) Reason {
	switch {
	case m.Excluded:
		return ExcludedMember
	case !m.Exported:
		return NotExported
	case !m.Readable:
		return NotReadable
	case !m.Writable && !m.WriteOnce:
		return NotWritable
	case m.Indexed:
		return IndexedMember
	case m.Static:
		return StaticMember
	case m.Constant:
		return ConstantMember
	default:
		return Eligible
	}
}

// ClassOf classifies an eligible member from its optionality flag.
func ClassOf(m model.MemberDescriptor) Class {
	if m.Optional {
		return ClassOptional
	}

	return ClassPlain
}

// Members returns the eligible members of t in declaration order, own
// members before inherited ones. A name is listed once: the shallowest
// declaration wins, the first one on ties. It never fails; a type without
// eligible members yields an empty list.
func Members(t *model.TargetTypeDescriptor) ([]Member, []Skipped) {
	var (
		eligible []Member
		skipped  []Skipped
	)

	for _, m := range dedupe(t.Members, &skipped) {
		if reason := Check(m); reason != Eligible {
			skipped = append(skipped, Skipped{MemberDescriptor: m, Reason: reason})
			continue
		}

		eligible = append(eligible, Member{MemberDescriptor: m, Class: ClassOf(m)})
	}

	return eligible, skipped
}

// Nameable splits members into those whose value type can be written in
// package pkgPath and those that cannot.
func Nameable(members []Member, pkgPath string) ([]Member, []Skipped) {
	var (
		kept    []Member
		skipped []Skipped
	)

	for _, m := range members {
		if !m.Type.NameableFrom(pkgPath) {
			skipped = append(skipped, Skipped{MemberDescriptor: m.MemberDescriptor, Reason: Unnameable})
			continue
		}

		kept = append(kept, m)
	}

	return kept, skipped
}

// dedupe keeps the shallowest member per name, ordered by depth then
// declaration index.
func dedupe(members []model.MemberDescriptor, skipped *[]Skipped) []model.MemberDescriptor {
	best := make(map[string]int, len(members))
	for i, m := range members {
		j, ok := best[m.Name]
		if !ok || m.Depth < members[j].Depth {
			best[m.Name] = i
		}
	}

	res := make([]model.MemberDescriptor, 0, len(best))
	for i, m := range members {
		if best[m.Name] != i {
			*skipped = append(*skipped, Skipped{MemberDescriptor: m, Reason: Shadowed})
			continue
		}

		res = append(res, m)
	}

	slices.SortStableFunc(res, func(a, b model.MemberDescriptor) int {
		return cmp.Or(cmp.Compare(a.Depth, b.Depth), cmp.Compare(a.Index, b.Index))
	})

	return res
}
