package emit

import (
	"optics-generator/internal/classify"
	"optics-generator/internal/derive"
	"optics-generator/internal/model"
	"optics-generator/optic"
)

const (
	peoplePkg = "example.com/people"
	hrPkg     = "example.com/hr"
)

var (
	personID    = model.TypeID{PkgPath: peoplePkg, Name: "Person"}
	addressID   = model.TypeID{PkgPath: peoplePkg, Name: "Address"}
	personLens  = model.TypeID{PkgPath: peoplePkg, Name: "personLens"}
	staffLenses = model.TypeID{PkgPath: hrPkg, Name: "staffLenses"}
)

func target(id model.TypeID, taken ...string) *model.TargetTypeDescriptor {
	return &model.TargetTypeDescriptor{
		ID:             id,
		Package:        "people",
		CopyWithUpdate: true,
		Underlying:     "struct",
		Taken:          taken,
		Dir:            "/src/people",
	}
}

func container(id model.TypeID, pkgName, dir string, taken ...string) *model.ContainerDescriptor {
	return &model.ContainerDescriptor{
		ID:         id,
		Package:    pkgName,
		Nesting:    []model.Scope{{Kind: model.ScopePackage, Name: pkgName}},
		StaticOnly: true,
		Resolved:   true,
		Taken:      taken,
		Dir:        dir,
	}
}

// accessors mirrors what derivation produces for Person{Name string; Address *Address}.
func accessors(t *model.TargetTypeDescriptor, family derive.Family) []derive.GeneratedAccessor {
	addressRef := model.Named(addressID, "people")

	name := derive.GeneratedAccessor{
		Target: t.ID,
		Member: "Name",
		Kind:   optic.KindLens,
		Family: family,
		Class:  classify.ClassPlain,
		Owner:  t.Ref(),
		Focus:  model.Basic("string"),
		Value:  model.Basic("string"),
		Get:    derive.Body{Kind: derive.BodyFieldRead, Field: "Name"},
		Set:    derive.Body{Kind: derive.BodyFieldReplace, Field: "Name"},
	}

	address := derive.GeneratedAccessor{
		Target: t.ID,
		Member: "Address",
		Kind:   optic.KindLens,
		Family: family,
		Class:  classify.ClassOptional,
		Owner:  t.Ref(),
		Focus:  model.OptionOf(addressRef),
		Value:  model.PointerTo(addressRef),
		Get:    derive.Body{Kind: derive.BodyPtrToOption, Field: "Address"},
		Set:    derive.Body{Kind: derive.BodyOptionToPtr, Field: "Address"},
	}

	res := []derive.GeneratedAccessor{name, address}

	if family == derive.FamilyOptionalOwner {
		for i := range res {
			res[i].Kind = optic.KindOptional
			res[i].Owner = model.OptionOf(t.Ref())
			res[i].Lifted = true
		}
	}

	return res
}

func group(t *model.TargetTypeDescriptor, family derive.Family, c *model.ContainerDescriptor) derive.Group {
	return derive.Group{
		Target:    t,
		Family:    family,
		Container: c,
		Accessors: accessors(t, family),
	}
}
