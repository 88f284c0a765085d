package model

import (
	"fmt"
	"go/token"
	"strconv"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "optics-generator/examples/people"
	Name    string // e.g., "Person"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// IsZero reports whether the TypeID is unset.
func (t TypeID) IsZero() bool {
	return t.PkgPath == "" && t.Name == ""
}

// ParseTypeID splits "path/to/pkg.Name" at the last dot.
func ParseTypeID(s string) (TypeID, error) {
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case '.':
			if i == 0 || i == len(s)-1 {
				return TypeID{}, fmt.Errorf("malformed type %q", s)
			}

			return TypeID{PkgPath: s[:i], Name: s[i+1:]}, nil
		case '/':
			return TypeID{}, fmt.Errorf("type %q has no package qualifier", s)
		}
	}

	return TypeID{}, fmt.Errorf("type %q has no package qualifier", s)
}

// RefKind is the shape of a TypeRef.
type RefKind int

const (
	RefInvalid RefKind = iota
	RefBasic           // int, string, any, ...
	RefNamed           // named type, possibly instantiated
	RefPointer         // *Elem
	RefSlice           // []Elem
	RefArray           // [Len]Elem
	RefMap             // map[Key]Elem
	RefOther           // anything else, kept as a rendered expression
)

// TypeRef is a structural reference to a type.
type TypeRef struct {
	Kind RefKind
	// ID names basic and named types. Basic types have an empty PkgPath.
	ID TypeID
	// Package is the package name used to qualify a named type.
	Package string
	Args    []TypeRef // type arguments of an instantiated named type
	Elem    *TypeRef
	Key     *TypeRef
	Len     int64
	// Expr is the rendered form of a RefOther, qualified relative to
	// DeclPkg, the package that declares the member. Uses lists the packages
	// it qualifies; Local is set when it mentions types of DeclPkg
	// unqualified.
	Expr    string
	Uses    []PackageRef
	DeclPkg string
	Local   bool
	// Hidden lists the unexported types and members a RefOther mentions.
	Hidden []TypeID
}

// PackageRef names an imported package.
type PackageRef struct {
	Path string
	Name string
}

// OpticPkgPath is the import path of the accessor library.
const OpticPkgPath = "optics-generator/optic"

// OptionOf returns a reference to optic.Option[v].
func OptionOf(v TypeRef) TypeRef {
	return Named(TypeID{PkgPath: OpticPkgPath, Name: "Option"}, "optic", v)
}

// Basic returns a reference to a predeclared type.
func Basic(name string) TypeRef {
	return TypeRef{Kind: RefBasic, ID: TypeID{Name: name}}
}

// Named returns a reference to the named type id declared in package pkg.
func Named(id TypeID, pkg string, args ...TypeRef) TypeRef {
	return TypeRef{Kind: RefNamed, ID: id, Package: pkg, Args: args}
}

// PointerTo returns a reference to *elem.
func PointerTo(elem TypeRef) TypeRef {
	return TypeRef{Kind: RefPointer, Elem: &elem}
}

// SliceOf returns a reference to []elem.
func SliceOf(elem TypeRef) TypeRef {
	return TypeRef{Kind: RefSlice, Elem: &elem}
}

// MapOf returns a reference to map[key]elem.
func MapOf(key, elem TypeRef) TypeRef {
	return TypeRef{Kind: RefMap, Key: &key, Elem: &elem}
}

// ArrayOf returns a reference to [n]elem.
func ArrayOf(n int64, elem TypeRef) TypeRef {
	return TypeRef{Kind: RefArray, Len: n, Elem: &elem}
}

// Render renders the reference as Go source seen from package ctxPkg.
// Every package the expression qualifies is reported to use.
func (r TypeRef) Render(ctxPkg string, use func(pkgPath, name string)) string {
	switch r.Kind {
	case RefBasic:
		return r.ID.Name
	case RefNamed:
		name := r.ID.Name
		if r.ID.PkgPath != "" && r.ID.PkgPath != ctxPkg {
			if use != nil {
				use(r.ID.PkgPath, r.Package)
			}

			name = r.Package + "." + name
		}

		if len(r.Args) == 0 {
			return name
		}

		name += "["
		for i, arg := range r.Args {
			if i > 0 {
				name += ", "
			}

			name += arg.Render(ctxPkg, use)
		}

		return name + "]"
	case RefPointer:
		return "*" + r.Elem.Render(ctxPkg, use)
	case RefSlice:
		return "[]" + r.Elem.Render(ctxPkg, use)
	case RefArray:
		return "[" + strconv.FormatInt(r.Len, 10) + "]" + r.Elem.Render(ctxPkg, use)
	case RefMap:
		return "map[" + r.Key.Render(ctxPkg, use) + "]" + r.Elem.Render(ctxPkg, use)
	case RefOther:
		if use != nil {
			for _, p := range r.Uses {
				use(p.Path, p.Name)
			}
		}

		return r.Expr
	default:
		return "any"
	}
}

// NameableFrom reports whether the type can be written in package pkgPath:
// every type it mentions is exported or declared in pkgPath, and a RefOther
// expression is valid there.
func (r TypeRef) NameableFrom(pkgPath string) bool {
	switch r.Kind {
	case RefNamed:
		if r.ID.PkgPath != "" && r.ID.PkgPath != pkgPath && !token.IsExported(r.ID.Name) {
			return false
		}

		for _, arg := range r.Args {
			if !arg.NameableFrom(pkgPath) {
				return false
			}
		}

		return true
	case RefPointer, RefSlice, RefArray:
		return r.Elem.NameableFrom(pkgPath)
	case RefMap:
		return r.Key.NameableFrom(pkgPath) && r.Elem.NameableFrom(pkgPath)
	case RefOther:
		if r.DeclPkg != pkgPath {
			if r.Local {
				return false
			}

			for _, p := range r.Uses {
				if p.Path == pkgPath {
					return false
				}
			}
		}

		for _, id := range r.Hidden {
			if id.PkgPath != pkgPath {
				return false
			}
		}

		return true
	default:
		return true
	}
}

// String renders the reference with package-name qualifiers everywhere.
func (r TypeRef) String() string {
	return r.Render("", nil)
}

// Location attributes a descriptor or diagnostic to source.
type Location struct {
	File   string
	Line   int
	Column int
}

// IsZero reports whether the location is unknown.
func (l Location) IsZero() bool {
	return l.File == ""
}

func (l Location) String() string {
	if l.IsZero() {
		return ""
	}

	if l.Line == 0 {
		return l.File
	}

	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// ScopeKind tells what kind of scope encloses a container.
type ScopeKind int

const (
	ScopePackage ScopeKind = iota
	ScopeType
)

// Scope is one level of a container's enclosing chain.
type Scope struct {
	Kind ScopeKind
	Name string
}
