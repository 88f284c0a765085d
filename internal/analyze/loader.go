package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/tools/go/packages"

	"optics-generator/internal/model"
)

// LoadMode specifies what information to load from packages.
// Dependencies are type-checked from source, so a package whose generated
// files no longer compile still yields complete types to its importers.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports |
	packages.NeedDeps

// ErrTypeNotFound is returned when a package does not declare the requested type.
var ErrTypeNotFound = errors.New("type not found")

// Analyzer loads Go packages and describes their types.
// It is safe for concurrent use; loaded packages are cached.
type Analyzer struct {
	config Config

	mu       sync.Mutex
	pkgs     map[string]*packages.Package
	packages map[string]*PackageInfo
}

var _ model.TypeIntrospector = (*Analyzer)(nil)

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(config Config) *Analyzer {
	return &Analyzer{
		config:   config,
		pkgs:     make(map[string]*packages.Package),
		packages: make(map[string]*PackageInfo),
	}
}

// LoadPackages loads the specified packages.
// Patterns are standard Go package patterns (e.g., "./examples/people").
// Parse and type errors located in generated files are recorded on the
// package instead of failing the load: they are the output of an earlier run
// that the next run replaces.
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) ([]*PackageInfo, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     a.config.Dir,
	}

	if len(a.config.BuildTags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(a.config.BuildTags, ",")}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var (
		errs      []error
		generated = make(map[*packages.Package][]string)
	)

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if a.inGeneratedFile(e) {
				generated[pkg] = append(generated[pkg], e.Error())
				continue
			}

			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	infos := make([]*PackageInfo, 0, len(pkgs))
	for _, pkg := range pkgs {
		info := a.register(pkg)
		info.GeneratedErrors = generated[pkg]
		infos = append(infos, info)
	}

	return infos, nil
}

// inGeneratedFile reports whether e is a parse or type error positioned in a
// generated file.
func (a *Analyzer) inGeneratedFile(e packages.Error) bool {
	if e.Kind != packages.TypeError && e.Kind != packages.ParseError {
		return false
	}

	return a.isGeneratedFile(errorFile(e.Pos))
}

// errorFile strips the line and column from an error position such as
// "/src/people/lens_of.gen.go:37:41".
func errorFile(pos string) string {
	for range 2 {
		i := strings.LastIndexByte(pos, ':')
		if i < 0 {
			break
		}

		if _, err := strconv.Atoi(pos[i+1:]); err != nil {
			break
		}

		pos = pos[:i]
	}

	return pos
}

// Package returns information about a loaded package, or nil.
func (a *Analyzer) Package(pkgPath string) *PackageInfo {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.packages[pkgPath]
}

// register caches pkg. The caller holds a.mu.
func (a *Analyzer) register(pkg *packages.Package) *PackageInfo {
	info := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		if a.isGenerated(pkg.Fset, scope.Lookup(name).Pos()) {
			continue
		}

		info.Names = append(info.Names, name)
	}

	a.pkgs[pkg.PkgPath] = pkg
	a.packages[pkg.PkgPath] = info

	return info
}

// load returns the cached package, loading it first if needed.
func (a *Analyzer) load(ctx context.Context, pkgPath string) (*packages.Package, *PackageInfo, error) {
	a.mu.Lock()
	pkg, ok := a.pkgs[pkgPath]
	info := a.packages[pkgPath]
	a.mu.Unlock()

	if ok {
		return pkg, info, nil
	}

	if _, err := a.LoadPackages(ctx, pkgPath); err != nil {
		return nil, nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	pkg, ok = a.pkgs[pkgPath]
	if !ok {
		return nil, nil, fmt.Errorf("package %s not found", pkgPath)
	}

	return pkg, a.packages[pkgPath], nil
}

func (a *Analyzer) isGenerated(fset *token.FileSet, pos token.Pos) bool {
	if !pos.IsValid() {
		return false
	}

	return a.isGeneratedFile(fset.Position(pos).Filename)
}

func (a *Analyzer) isGeneratedFile(name string) bool {
	return a.config.GeneratedSuffix != "" && strings.HasSuffix(name, a.config.GeneratedSuffix)
}

func location(fset *token.FileSet, pos token.Pos) model.Location {
	if !pos.IsValid() {
		return model.Location{}
	}

	p := fset.Position(pos)

	return model.Location{File: p.Filename, Line: p.Line, Column: p.Column}
}

// lookupType finds the type name id in its package.
func (a *Analyzer) lookupType(ctx context.Context, id model.TypeID) (*packages.Package, *PackageInfo, *types.TypeName, error) {
	pkg, info, err := a.load(ctx, id.PkgPath)
	if err != nil {
		return nil, nil, nil, err
	}

	obj, ok := pkg.Types.Scope().Lookup(id.Name).(*types.TypeName)
	if !ok {
		if hint := suggestType(pkg.Types.Scope(), id.Name); hint != "" {
			return pkg, info, nil, fmt.Errorf("%w: %s (did you mean %s?)", ErrTypeNotFound, id, hint)
		}

		return pkg, info, nil, fmt.Errorf("%w: %s", ErrTypeNotFound, id)
	}

	return pkg, info, obj, nil
}

// Describe implements model.TypeIntrospector.
func (a *Analyzer) Describe(ctx context.Context, id model.TypeID) (*model.TargetTypeDescriptor, error) {
	pkg, info, obj, err := a.lookupType(ctx, id)
	if err != nil {
		return nil, err
	}

	desc := &model.TargetTypeDescriptor{
		ID:       id,
		Package:  info.Name,
		Taken:    slices.Clone(info.Names),
		Dir:      info.Dir,
		Location: location(pkg.Fset, obj.Pos()),
	}

	t := types.Unalias(obj.Type())
	desc.Underlying = UnderlyingKind(t)

	if isOptionalityWrapped(t) {
		desc.OptionalityWrapped = true
		return desc, nil
	}

	named, ok := t.(*types.Named)
	if !ok || named.TypeParams().Len() > 0 || obj.IsAlias() && named.TypeArgs().Len() > 0 {
		desc.Generic = ok
		return desc, nil
	}

	if named.Obj().Pkg() == nil {
		return desc, nil
	}

	if named.Obj().Pkg() != pkg.Types {
		// alias to a type declared elsewhere; describe it where it lives
		return a.Describe(ctx, model.TypeID{PkgPath: named.Obj().Pkg().Path(), Name: named.Obj().Name()})
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return desc, nil
	}

	desc.CopyWithUpdate = true
	desc.Members = a.members(pkg, named, st)

	return desc, nil
}

// isOptionalityWrapped reports whether t is a pointer or an optic.Option,
// directly or through its underlying type.
func isOptionalityWrapped(t types.Type) bool {
	if _, ok := t.Underlying().(*types.Pointer); ok {
		return true
	}

	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return false
	}

	return named.Obj().Pkg().Path() == model.OpticPkgPath && named.Obj().Name() == "Option"
}

// UnderlyingKind names the shape of a type for diagnostics.
func UnderlyingKind(t types.Type) string {
	switch t.Underlying().(type) {
	case *types.Struct:
		return "struct"
	case *types.Interface:
		return "interface"
	case *types.Pointer:
		return "pointer"
	case *types.Slice:
		return "slice"
	case *types.Array:
		return "array"
	case *types.Map:
		return "map"
	case *types.Chan:
		return "channel"
	case *types.Signature:
		return "func"
	case *types.Basic:
		return "basic"
	default:
		return "unknown"
	}
}

// Container implements model.TypeIntrospector.
func (a *Analyzer) Container(ctx context.Context, id model.TypeID) (*model.ContainerDescriptor, error) {
	pkg, info, obj, err := a.lookupType(ctx, id)
	if errors.Is(err, ErrTypeNotFound) {
		return &model.ContainerDescriptor{ID: id}, nil
	}

	if err != nil {
		return nil, err
	}

	desc := &model.ContainerDescriptor{
		ID:       id,
		Package:  info.Name,
		Nesting:  []model.Scope{{Kind: model.ScopePackage, Name: info.Name}},
		Resolved: true,
		Dir:      info.Dir,
		Location: location(pkg.Fset, obj.Pos()),
	}

	named, ok := obj.Type().(*types.Named)
	if !ok || obj.IsAlias() {
		// methods cannot be declared on an alias or a predeclared type
		desc.Resolved = false
		return desc, nil
	}

	desc.Generic = named.TypeParams().Len() > 0

	st, ok := named.Underlying().(*types.Struct)
	desc.StaticOnly = ok && st.NumFields() == 0

	for i := range named.NumMethods() {
		m := named.Method(i)
		if !a.isGenerated(pkg.Fset, m.Pos()) {
			desc.Taken = append(desc.Taken, m.Name())
		}
	}

	if ok {
		for i := range st.NumFields() {
			desc.Taken = append(desc.Taken, st.Field(i).Name())
		}
	}

	slices.Sort(desc.Taken)

	return desc, nil
}
