package analyze

import (
	"go/types"

	"optics-generator/internal/model"
)

// typeRef converts t into a model.TypeRef. Types without a structural
// counterpart are rendered relative to declPkg.
func typeRef(t types.Type, declPkg *types.Package) model.TypeRef {
	switch tt := t.(type) {
	case *types.Alias:
		return typeRef(types.Unalias(tt), declPkg)

	case *types.Basic:
		if tt.Kind() == types.UnsafePointer {
			break
		}

		return model.Basic(tt.Name())

	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() == nil {
			// error, comparable
			return model.Basic(obj.Name())
		}

		var args []model.TypeRef
		for i := range tt.TypeArgs().Len() {
			args = append(args, typeRef(tt.TypeArgs().At(i), declPkg))
		}

		return model.Named(model.TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}, obj.Pkg().Name(), args...)

	case *types.Pointer:
		return model.PointerTo(typeRef(tt.Elem(), declPkg))

	case *types.Slice:
		return model.SliceOf(typeRef(tt.Elem(), declPkg))

	case *types.Array:
		return model.ArrayOf(tt.Len(), typeRef(tt.Elem(), declPkg))

	case *types.Map:
		return model.MapOf(typeRef(tt.Key(), declPkg), typeRef(tt.Elem(), declPkg))

	case *types.Interface:
		if tt.Empty() {
			return model.Basic("any")
		}
	}

	ref := model.TypeRef{Kind: model.RefOther, Hidden: hiddenTypes(t, map[types.Type]bool{})}
	if declPkg != nil {
		ref.DeclPkg = declPkg.Path()
	}

	ref.Expr = types.TypeString(t, func(p *types.Package) string {
		if p == declPkg {
			ref.Local = true

			return ""
		}

		ref.Uses = append(ref.Uses, model.PackageRef{Path: p.Path(), Name: p.Name()})

		return p.Name()
	})

	return ref
}

// hiddenTypes lists the unexported named types, struct fields and interface
// methods mentioned by t. Writing t outside their package is impossible.
func hiddenTypes(t types.Type, seen map[types.Type]bool) []model.TypeID {
	if seen[t] {
		return nil
	}

	seen[t] = true

	hidden := func(obj types.Object) []model.TypeID {
		if obj.Exported() || obj.Pkg() == nil {
			return nil
		}

		return []model.TypeID{{PkgPath: obj.Pkg().Path(), Name: obj.Name()}}
	}

	var ids []model.TypeID

	switch tt := t.(type) {
	case *types.Alias:
		ids = append(ids, hidden(tt.Obj())...)
		ids = append(ids, hiddenTypes(types.Unalias(tt), seen)...)
	case *types.Named:
		ids = append(ids, hidden(tt.Obj())...)
		for i := range tt.TypeArgs().Len() {
			ids = append(ids, hiddenTypes(tt.TypeArgs().At(i), seen)...)
		}
	case *types.Pointer:
		ids = hiddenTypes(tt.Elem(), seen)
	case *types.Slice:
		ids = hiddenTypes(tt.Elem(), seen)
	case *types.Array:
		ids = hiddenTypes(tt.Elem(), seen)
	case *types.Chan:
		ids = hiddenTypes(tt.Elem(), seen)
	case *types.Map:
		ids = append(hiddenTypes(tt.Key(), seen), hiddenTypes(tt.Elem(), seen)...)
	case *types.Signature:
		for _, vars := range []*types.Tuple{tt.Params(), tt.Results()} {
			for i := range vars.Len() {
				ids = append(ids, hiddenTypes(vars.At(i).Type(), seen)...)
			}
		}
	case *types.Struct:
		for i := range tt.NumFields() {
			ids = append(ids, hidden(tt.Field(i))...)
			ids = append(ids, hiddenTypes(tt.Field(i).Type(), seen)...)
		}
	case *types.Interface:
		for i := range tt.NumExplicitMethods() {
			ids = append(ids, hidden(tt.ExplicitMethod(i))...)
			ids = append(ids, hiddenTypes(tt.ExplicitMethod(i).Type(), seen)...)
		}

		for i := range tt.NumEmbeddeds() {
			ids = append(ids, hiddenTypes(tt.EmbeddedType(i), seen)...)
		}
	}

	return ids
}
