package derive

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Family -trimprefix=Family

// Family selects which accessor family is derived for a target type.
type Family uint8

const (
	// FamilyLens derives Lens[T, V] per member.
	FamilyLens Family = iota
	// FamilyOptionalOwner derives Optional[Option[T], V] per member.
	FamilyOptionalOwner
)

// ParseFamily parses a family name as written in a manifest.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lens":
		return FamilyLens, nil
	case "optional", "optional-owner", "optionalowner":
		return FamilyOptionalOwner, nil
	default:
		return 0, fmt.Errorf("unknown accessor family %q", s)
	}
}

// Shape is how the accessors of a request are emitted.
type Shape int

const (
	// ShapeShared renders one package-level selector per target type.
	ShapeShared Shape = iota
	// ShapeNested renders methods on a requesting container.
	ShapeNested
)
