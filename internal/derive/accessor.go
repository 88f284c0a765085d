package derive

import (
	"optics-generator/internal/classify"
	"optics-generator/internal/model"
	"optics-generator/optic"
)

// BodyKind is the shape of a symbolic accessor function body.
type BodyKind int

const (
	BodyNone         BodyKind = iota
	BodyFieldRead             // s.F
	BodyFieldReplace          // s.F = v
	BodyPtrToOption           // optic.FromPtr(s.F)
	BodyOptionToPtr           // s.F = v.ToPtr()
)

// Body is a symbolic accessor function body over one member.
type Body struct {
	Kind  BodyKind
	Field string
}

// GeneratedAccessor specifies one derived accessor. Derived kinds never
// construct, so only the read and write bodies are carried.
type GeneratedAccessor struct {
	Target model.TypeID
	Member string
	Kind   optic.Kind
	Family Family
	Class  classify.Class
	// Owner is the source type of the accessor: T, or Option[T] when Lifted.
	Owner model.TypeRef
	// Focus is the focused type: V, or Option[V] for an optional member.
	Focus model.TypeRef
	// Value is the declared member type.
	Value model.TypeRef
	Get   Body
	Set   Body
	// Lifted is set for the optional-owner family: the accessor is built as a
	// lens over T and lifted with optic.LiftLensOwner.
	Lifted bool
	// Depth is the embedding depth the member is promoted from.
	Depth int
}

// synthesize builds the accessor of one eligible member.
func synthesize(target *model.TargetTypeDescriptor, m classify.Member, family Family) GeneratedAccessor {
	acc := GeneratedAccessor{
		Target: target.ID,
		Member: m.Name,
		Kind:   optic.KindLens,
		Family: family,
		Class:  m.Class,
		Owner:  target.Ref(),
		Focus:  m.Type,
		Value:  m.Type,
		Get:    Body{Kind: BodyFieldRead, Field: m.Name},
		Set:    Body{Kind: BodyFieldReplace, Field: m.Name},
		Depth:  m.Depth,
	}

	if m.Class == classify.ClassOptional {
		acc.Focus = model.OptionOf(m.ValueType())
		acc.Get.Kind = BodyPtrToOption
		acc.Set.Kind = BodyOptionToPtr
	}

	if family == FamilyOptionalOwner {
		acc.Kind = optic.KindOptional
		acc.Owner = model.OptionOf(acc.Owner)
		acc.Lifted = true
	}

	return acc
}
