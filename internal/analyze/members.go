package analyze

import (
	"go/types"
	"reflect"

	"golang.org/x/tools/go/packages"

	"optics-generator/internal/model"
)

// embedded is a struct reached through value embedding.
type embedded struct {
	named *types.Named
	st    *types.Struct
	depth int
}

// members lists the fields of st in declaration order, followed by the fields
// promoted through value-embedded structs, breadth first. A promoted field is
// listed only when it is the field a selector on the type resolves to.
func (a *Analyzer) members(pkg *packages.Package, named *types.Named, st *types.Struct) []model.MemberDescriptor {
	var res []model.MemberDescriptor

	owner := model.TypeID{PkgPath: pkg.PkgPath, Name: named.Obj().Name()}
	queue := []embedded{{named: named, st: st}}
	visited := map[*types.Named]bool{named: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		declaredBy := owner
		if cur.depth > 0 {
			declaredBy = model.TypeID{PkgPath: pathOf(cur.named.Obj().Pkg()), Name: cur.named.Obj().Name()}
		}

		for i := range cur.st.NumFields() {
			field := cur.st.Field(i)
			if field.Name() == "_" {
				continue
			}

			if cur.depth > 0 && !resolvesTo(named, pkg.Types, field, cur.depth) {
				continue
			}

			res = append(res, a.member(field, reflect.StructTag(cur.st.Tag(i)), cur.depth, declaredBy, len(res)))

			if !field.Embedded() {
				continue
			}

			inner, ok := types.Unalias(field.Type()).(*types.Named)
			if !ok || visited[inner] {
				continue
			}

			innerSt, ok := inner.Underlying().(*types.Struct)
			if !ok {
				continue
			}

			visited[inner] = true
			queue = append(queue, embedded{named: inner, st: innerSt, depth: cur.depth + 1})
		}
	}

	return res
}

// resolvesTo reports whether selecting field's name on named, from pkg,
// yields field itself through value embedding only.
func resolvesTo(named *types.Named, pkg *types.Package, field *types.Var, depth int) bool {
	obj, index, indirect := types.LookupFieldOrMethod(named, false, pkg, field.Name())

	return obj == field && len(index) == depth+1 && !indirect
}

func (a *Analyzer) member(
	field *types.Var,
	tag reflect.StructTag,
	depth int,
	declaredBy model.TypeID,
	index int,
) model.MemberDescriptor {
	m := model.MemberDescriptor{
		Name:       field.Name(),
		Type:       typeRef(field.Type(), field.Pkg()),
		Mutable:    true,
		Exported:   field.Exported(),
		Readable:   true,
		Writable:   true,
		Depth:      depth,
		DeclaredBy: declaredBy,
		Index:      index,
	}

	_, isPtr := types.Unalias(field.Type()).(*types.Pointer)
	m.Optional = isPtr

	switch tag.Get(TagKey) {
	case "-":
		m.Excluded = true
	case "required":
		m.Optional = false
	}

	return m
}

func pathOf(pkg *types.Package) string {
	if pkg == nil {
		return ""
	}

	return pkg.Path()
}
