package emit

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"optics-generator/internal/common"
	"optics-generator/internal/derive"
	"optics-generator/internal/model"
)

// DefaultHeader marks every rendered file as generated.
const DefaultHeader = "// Code generated by optics-generator. DO NOT EDIT."

// ErrDuplicateFile is returned when two sections render to the same path.
var ErrDuplicateFile = errors.New("duplicate generated file")

// RenderConfig holds configuration for rendering.
type RenderConfig struct {
	// Header is the first line of every file.
	Header string
	// OutputDir overrides the directory of every file when set.
	OutputDir string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultRenderConfig returns the default render configuration.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Header:           DefaultHeader,
		GenerateComments: true,
	}
}

// GeneratedFile is one rendered Go source file.
type GeneratedFile struct {
	// Dir is the directory of the package the file belongs to.
	Dir string
	// Filename is the base name of the file, e.g. lens_of.gen.go.
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the path the file is written to.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Renderer renders containers as Go source.
type Renderer struct {
	config RenderConfig
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config RenderConfig) *Renderer {
	return &Renderer{config: config}
}

type importSpec struct {
	Alias string
	Path  string
}

type declData struct {
	Name       string
	Member     string
	TargetName string
	Type       string
	Expr       string
}

type sectionData struct {
	Selector   string
	TargetName string
	KindPlural string
	Decls      []declData
}

type fileData struct {
	Header   string
	Package  string
	Imports  []importSpec
	Comments bool
	Receiver string
	Sections []sectionData
}

// Render renders every container. A shared container renders into one file,
// a nested container into one file per section. No two files may share a
// path.
func (r *Renderer) Render(containers []Container) ([]GeneratedFile, error) {
	var files []GeneratedFile

	seen := make(map[string]model.TypeID)
	add := func(c *Container, file *GeneratedFile) error {
		if prev, ok := seen[file.Path()]; ok {
			return fmt.Errorf("%w: %s (rendered for %s and %s)", ErrDuplicateFile, file.Path(), prev, c.ID)
		}

		seen[file.Path()] = c.ID
		files = append(files, *file)

		return nil
	}

	for i := range containers {
		c := &containers[i]

		if c.Shape == derive.ShapeShared {
			file, err := r.renderFile(c, c.Sections, c.Hint, sharedTemplate)
			if err != nil {
				return nil, fmt.Errorf("rendering %s: %w", c.ID, err)
			}

			if err := add(c, file); err != nil {
				return nil, err
			}

			continue
		}

		for j := range c.Sections {
			sec := c.Sections[j : j+1]

			file, err := r.renderFile(c, sec, sec[0].Hint, nestedTemplate)
			if err != nil {
				return nil, fmt.Errorf("rendering %s for %s: %w", c.ID, sec[0].Target.ID, err)
			}

			if err := add(c, file); err != nil {
				return nil, err
			}
		}
	}

	return files, nil
}

// OutputDirs returns every directory the groups of res render into,
// including groups that no longer produce a file.
func (r *Renderer) OutputDirs(res *derive.Result) []string {
	var dirs []string

	for _, g := range res.Groups {
		dir := r.config.OutputDir

		switch {
		case dir != "":
		case g.Container != nil:
			dir = g.Container.Dir
		case g.Target != nil:
			dir = g.Target.Dir
		}

		if dir != "" {
			dirs = append(dirs, dir)
		}
	}

	slices.Sort(dirs)

	return slices.Compact(dirs)
}

func (r *Renderer) renderFile(
	c *Container,
	sections []Section,
	filename string,
	tmpl *template.Template,
) (*GeneratedFile, error) {
	ctxPkg := c.ID.PkgPath
	imports := make(map[string]importSpec)
	use := func(pkgPath, name string) {
		if pkgPath == "" || pkgPath == ctxPkg {
			return
		}

		spec := importSpec{Path: pkgPath}
		if name != common.PkgAlias(pkgPath) {
			spec.Alias = name
		}

		imports[pkgPath] = spec
	}

	data := &fileData{
		Header:   r.config.Header,
		Package:  c.Package,
		Comments: r.config.GenerateComments,
		Receiver: c.ID.Name,
	}

	for _, sec := range sections {
		sd := sectionData{
			Selector:   sec.Selector,
			TargetName: sec.Target.ID.Name,
			KindPlural: kindPlural(sec.Family),
		}

		for _, d := range sec.Declarations {
			sd.Decls = append(sd.Decls, declData{
				Name:       d.Name,
				Member:     d.Accessor.Member,
				TargetName: sec.Target.ID.Name,
				Type:       AccessorType(d.Accessor, ctxPkg, use),
				Expr:       accessorExpr(d.Accessor, sec.Target.Ref(), ctxPkg, use),
			})
		}

		data.Sections = append(data.Sections, sd)
	}

	for _, imp := range imports {
		data.Imports = append(data.Imports, imp)
	}

	slices.SortFunc(data.Imports, func(a, b importSpec) int {
		return strings.Compare(a.Path, b.Path)
	})

	dir := c.Dir
	if r.config.OutputDir != "" {
		dir = r.config.OutputDir
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(dir, filename, buf.Bytes())

		return &GeneratedFile{
			Dir:      dir,
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Dir:      dir,
		Filename: filename,
		Content:  formatted,
	}, nil
}

// accessorExpr renders the expression building one accessor.
func accessorExpr(acc derive.GeneratedAccessor, owner model.TypeRef, ctxPkg string, use func(pkgPath, name string)) string {
	q := qualifier(ctxPkg, use)
	t := owner.Render(ctxPkg, use)
	v := acc.Focus.Render(ctxPkg, use)

	var b strings.Builder

	if acc.Lifted {
		b.WriteString(q + "LiftLensOwner(")
	}

	fmt.Fprintf(&b, "%sNewLens(\n", q)
	fmt.Fprintf(&b, "func(s %s) %s { return %s },\n", t, v, readBody(acc.Get, q))
	fmt.Fprintf(&b, "func(s %s, v %s) %s { %s; return s },\n", t, v, t, writeBody(acc.Set))
	b.WriteString(")")

	if acc.Lifted {
		b.WriteString(")")
	}

	return b.String()
}

func readBody(body derive.Body, q string) string {
	if body.Kind == derive.BodyPtrToOption {
		return q + "FromPtr(s." + body.Field + ")"
	}

	return "s." + body.Field
}

func writeBody(body derive.Body) string {
	if body.Kind == derive.BodyOptionToPtr {
		return "s." + body.Field + " = v.ToPtr()"
	}

	return "s." + body.Field + " = v"
}

func kindPlural(f derive.Family) string {
	if f == derive.FamilyOptionalOwner {
		return "optionals"
	}

	return "lenses"
}

var sharedTemplate = template.Must(template.New("shared").Parse(`{{.Header}}

package {{.Package}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{- range .Sections}}
{{if $.Comments}}// {{.Selector}} holds the {{.KindPlural}} of {{.TargetName}}, one per member.
{{end}}var {{.Selector}} = struct {
{{range .Decls}}	{{.Name}} {{.Type}}
{{end}}}{
{{range .Decls}}	{{.Name}}: {{.Expr}},
{{end}}}
{{end}}`))

var nestedTemplate = template.Must(template.New("nested").Parse(`{{.Header}}

package {{.Package}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{- range .Sections}}{{range .Decls}}
{{if $.Comments}}// {{.Name}} focuses on the {{.Member}} member of {{.TargetName}}.
{{end}}func ({{$.Receiver}}) {{.Name}}() {{.Type}} {
	return {{.Expr}}
}
{{end}}{{end}}`))
