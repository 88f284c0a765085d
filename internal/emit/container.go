package emit

import (
	"optics-generator/internal/derive"
	"optics-generator/internal/model"
	"optics-generator/optic"
)

// Config holds naming configuration for emission.
type Config struct {
	// LensPrefix prefixes shared selectors of the lens family.
	LensPrefix string
	// OptionalPrefix prefixes shared selectors of the optional-owner family.
	OptionalPrefix string
	// GeneratedSuffix ends every generated file name.
	GeneratedSuffix string
	// Policy escapes reserved identifiers. Nil means GoNamePolicy.
	Policy NamePolicy
}

// DefaultConfig returns the default emission configuration.
func DefaultConfig() Config {
	return Config{
		LensPrefix:      "LensOf",
		OptionalPrefix:  "OptionalOf",
		GeneratedSuffix: ".gen.go",
		Policy:          GoNamePolicy{},
	}
}

// Declaration is one named accessor.
type Declaration struct {
	Name     string
	Accessor derive.GeneratedAccessor
	// Path is the nesting path of the declaration, outermost first:
	// package, container or selector, declaration name.
	Path []string
}

// Section holds the declarations of one target within a container.
type Section struct {
	Target *model.TargetTypeDescriptor
	Family derive.Family
	// Selector is the shared selector variable; empty for nested sections.
	Selector string
	// Hint is the file the section renders to; empty for shared sections,
	// which render into their container's file.
	Hint         string
	Declarations []Declaration
}

// Container is one emission unit.
type Container struct {
	// ID is the requesting container for the nested shape and
	// {package, prefix} for the shared shape.
	ID      model.TypeID
	Shape   derive.Shape
	Family  derive.Family
	Package string
	Dir     string
	Nesting []model.Scope
	// Hint is the file of a shared container.
	Hint     string
	Sections []Section
}

// Emitter groups derived accessors into containers and names them.
type Emitter struct {
	config Config
}

// NewEmitter creates an Emitter with the given configuration.
func NewEmitter(config Config) *Emitter {
	if config.Policy == nil {
		config.Policy = GoNamePolicy{}
	}

	return &Emitter{config: config}
}

type sharedKey struct {
	pkgPath string
	family  derive.Family
}

// Emit returns one container per requesting container and per
// (package, family) of shared requests, in first-request order.
// Groups without accessors produce nothing.
func (e *Emitter) Emit(res *derive.Result) []Container {
	var (
		order      []*Container
		shared     = make(map[sharedKey]*Container)
		nested     = make(map[model.TypeID]*Container)
		pkgNames   = make(map[string]*Namespace)
		memberSets = make(map[model.TypeID]*Namespace)
	)

	for _, g := range res.Groups {
		if len(g.Accessors) == 0 {
			continue
		}

		if g.Shape() == derive.ShapeShared {
			key := sharedKey{pkgPath: g.Target.ID.PkgPath, family: g.Family}

			c, ok := shared[key]
			if !ok {
				prefix := e.prefix(g.Family)
				c = &Container{
					ID:      model.TypeID{PkgPath: key.pkgPath, Name: prefix},
					Shape:   derive.ShapeShared,
					Family:  g.Family,
					Package: g.Target.Package,
					Dir:     g.Target.Dir,
					Nesting: []model.Scope{{Kind: model.ScopePackage, Name: g.Target.Package}},
					Hint:    SharedHint(prefix, e.config.GeneratedSuffix),
				}
				shared[key] = c
				order = append(order, c)
			}

			ns, ok := pkgNames[key.pkgPath]
			if !ok {
				ns = NewNamespace(g.Target.Taken...)
				pkgNames[key.pkgPath] = ns
			}

			selector := ns.Claim(e.config.Policy.Escape(e.prefix(g.Family) + g.Target.ID.Name))
			sec := Section{Target: g.Target, Family: g.Family, Selector: selector}
			sec.Declarations = e.declare(g.Accessors, NewNamespace(), []string{c.Package, selector})
			c.Sections = append(c.Sections, sec)

			continue
		}

		cd := g.Container

		c, ok := nested[cd.ID]
		if !ok {
			c = &Container{
				ID:      cd.ID,
				Shape:   derive.ShapeNested,
				Family:  g.Family,
				Package: cd.Package,
				Dir:     cd.Dir,
				Nesting: cd.Nesting,
			}
			nested[cd.ID] = c
			memberSets[cd.ID] = NewNamespace(cd.Taken...)
			order = append(order, c)
		}

		path := make([]string, 0, len(cd.Nesting)+1)
		for _, s := range cd.Nesting {
			path = append(path, s.Name)
		}

		path = append(path, cd.ID.Name)

		sec := Section{
			Target: g.Target,
			Family: g.Family,
			Hint:   NestedHint(cd.ID, g.Target.ID, g.Family, len(g.Accessors), e.config.GeneratedSuffix),
		}
		sec.Declarations = e.declare(g.Accessors, memberSets[cd.ID], path)
		c.Sections = append(c.Sections, sec)
	}

	containers := make([]Container, 0, len(order))
	for _, c := range order {
		containers = append(containers, *c)
	}

	return containers
}

func (e *Emitter) declare(accs []derive.GeneratedAccessor, ns *Namespace, path []string) []Declaration {
	decls := make([]Declaration, 0, len(accs))
	for _, acc := range accs {
		name := ns.Claim(e.config.Policy.Escape(acc.Member))
		decls = append(decls, Declaration{
			Name:     name,
			Accessor: acc,
			Path:     append(append([]string(nil), path...), name),
		})
	}

	return decls
}

func (e *Emitter) prefix(f derive.Family) string {
	if f == derive.FamilyOptionalOwner {
		return e.config.OptionalPrefix
	}

	return e.config.LensPrefix
}

// AccessorType renders the declared type of an accessor seen from ctxPkg,
// e.g. optic.Lens[Person, string].
func AccessorType(acc derive.GeneratedAccessor, ctxPkg string, use func(pkgPath, name string)) string {
	kind := "Lens"
	if acc.Kind == optic.KindOptional {
		kind = "Optional"
	}

	return qualifier(ctxPkg, use) + kind + "[" + acc.Owner.Render(ctxPkg, use) + ", " +
		acc.Focus.Render(ctxPkg, use) + "]"
}

// qualifier returns the optic package qualifier seen from ctxPkg.
func qualifier(ctxPkg string, use func(pkgPath, name string)) string {
	if ctxPkg == model.OpticPkgPath {
		return ""
	}

	if use != nil {
		use(model.OpticPkgPath, "optic")
	}

	return "optic."
}
