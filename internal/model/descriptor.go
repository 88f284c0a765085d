package model

import "context"

// MemberDescriptor describes one member of a target type.
type MemberDescriptor struct {
	Name string
	// Type is the declared type of the member. For an optional member it is
	// the pointer type; the value type is Type.Elem.
	Type TypeRef
	// Optional reports whether absence of a value is representable.
	Optional bool
	// Mutable reports whether the member takes part in copy-with-update.
	Mutable bool

	Exported  bool
	Readable  bool
	Writable  bool
	WriteOnce bool // writable only while the value is being constructed
	Indexed   bool
	Static    bool
	Constant  bool
	// Excluded is set when the declaration opts the member out.
	Excluded bool

	// Depth is 0 for a member declared on the type itself and n for a member
	// promoted through n levels of embedding.
	Depth      int
	DeclaredBy TypeID
	// Index is the position of the member in declaration order.
	Index int
}

// ValueType returns the type the member's accessor focuses on, i.e. the
// pointee of an optional member.
func (m MemberDescriptor) ValueType() TypeRef {
	if m.Optional && m.Type.Kind == RefPointer {
		return *m.Type.Elem
	}

	return m.Type
}

// TargetTypeDescriptor describes a type accessors are derived for.
type TargetTypeDescriptor struct {
	ID TypeID
	// Package is the package name of the declaring package.
	Package string
	Members []MemberDescriptor
	// CopyWithUpdate reports whether a copy of a value can be produced with
	// exactly one member replaced.
	CopyWithUpdate     bool
	OptionalityWrapped bool
	Generic            bool
	// Underlying names the shape of the type (struct, interface, map, ...).
	Underlying string
	// Taken lists package-level identifiers already in use next to the type.
	Taken    []string
	Dir      string
	Location Location
}

// Ref returns a reference to the target type itself.
func (t *TargetTypeDescriptor) Ref() TypeRef {
	return Named(t.ID, t.Package)
}

// ContainerDescriptor describes a caller-designated type that receives nested
// accessors.
type ContainerDescriptor struct {
	ID      TypeID
	Package string
	// Nesting is the enclosing chain, outermost first.
	Nesting    []Scope
	Generic    bool
	StaticOnly bool
	Resolved   bool
	// Taken lists member names already declared on the container.
	Taken    []string
	Dir      string
	Location Location
}

// TypeIntrospector produces descriptors for the types named by requests.
type TypeIntrospector interface {
	// Describe returns the descriptor of a target type.
	Describe(ctx context.Context, id TypeID) (*TargetTypeDescriptor, error)
	// Container returns the descriptor of a requesting container. An
	// unresolvable container is reported with Resolved unset, not an error.
	Container(ctx context.Context, id TypeID) (*ContainerDescriptor, error)
}
