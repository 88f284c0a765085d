package emit

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optics-generator/internal/derive"
	"optics-generator/internal/model"
)

func parseFile(t *testing.T, content []byte) *ast.File {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", content, parser.ParseComments)
	require.NoError(t, err, string(content))

	return f
}

func importPaths(f *ast.File) []string {
	var res []string
	for _, imp := range f.Imports {
		res = append(res, imp.Path.Value)
	}

	return res
}

func TestRender_Shared(t *testing.T) {
	person := target(personID)
	res := &derive.Result{Groups: []derive.Group{group(person, derive.FamilyLens, nil)}}

	files, err := NewRenderer(DefaultRenderConfig()).Render(NewEmitter(DefaultConfig()).Emit(res))
	require.NoError(t, err)
	require.Len(t, files, 1)

	file := files[0]
	assert.Equal(t, "lens_of.gen.go", file.Filename)
	assert.Equal(t, filepath.Join("/src/people", "lens_of.gen.go"), file.Path())

	src := string(file.Content)
	assert.Contains(t, src, DefaultHeader)
	assert.Contains(t, src, "// LensOfPerson holds the lenses of Person, one per member.")
	assert.Contains(t, src, "var LensOfPerson = struct {")
	assert.Contains(t, src, "return s.Name")
	assert.Contains(t, src, "s.Name = v")
	assert.Contains(t, src, "return optic.FromPtr(s.Address)")
	assert.Contains(t, src, "s.Address = v.ToPtr()")

	f := parseFile(t, file.Content)
	assert.Equal(t, "people", f.Name.Name)
	assert.Equal(t, []string{`"optics-generator/optic"`}, importPaths(f))
}

func TestRender_NestedInAnotherPackage(t *testing.T) {
	lenses := container(staffLenses, "hr", "/src/hr")
	res := &derive.Result{Groups: []derive.Group{group(target(personID), derive.FamilyOptionalOwner, lenses)}}

	files, err := NewRenderer(DefaultRenderConfig()).Render(NewEmitter(DefaultConfig()).Emit(res))
	require.NoError(t, err)
	require.Len(t, files, 1)

	file := files[0]
	assert.Equal(t, "/src/hr", file.Dir)

	src := string(file.Content)
	assert.Contains(t, src, "func (staffLenses) Name() optic.Optional[optic.Option[people.Person], string] {")
	assert.Contains(t, src, "func (staffLenses) Address() optic.Optional[optic.Option[people.Person], optic.Option[people.Address]] {")
	assert.Contains(t, src, "optic.LiftLensOwner(optic.NewLens(")
	assert.Contains(t, src, "func(s people.Person) string { return s.Name }")

	f := parseFile(t, file.Content)
	assert.Equal(t, "hr", f.Name.Name)
	assert.Equal(t, []string{`"example.com/people"`, `"optics-generator/optic"`}, importPaths(f))

	var methods []string
	for _, decl := range f.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			methods = append(methods, fn.Name.Name)
		}
	}

	assert.Equal(t, []string{"Name", "Address"}, methods)
}

func TestRender_BothFamiliesInOneContainer(t *testing.T) {
	lenses := container(staffLenses, "hr", "/src/hr")
	res := &derive.Result{Groups: []derive.Group{
		group(target(personID), derive.FamilyLens, lenses),
		group(target(personID), derive.FamilyOptionalOwner, lenses),
	}}

	files, err := NewRenderer(DefaultRenderConfig()).Render(NewEmitter(DefaultConfig()).Emit(res))
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.NotEqual(t, files[0].Path(), files[1].Path())

	assert.Contains(t, string(files[0].Content), "func (staffLenses) Name() optic.Lens[people.Person, string] {")
	assert.Contains(t, string(files[1].Content),
		"func (staffLenses) Name2() optic.Optional[optic.Option[people.Person], string] {")
}

func TestRender_DuplicatePath(t *testing.T) {
	employee := target(model.TypeID{PkgPath: hrPkg, Name: "Employee"})
	employee.Package = "hr"
	employee.Dir = "/src/hr"

	config := DefaultRenderConfig()
	config.OutputDir = "/tmp/out"

	res := &derive.Result{Groups: []derive.Group{
		group(target(personID), derive.FamilyLens, nil),
		group(employee, derive.FamilyLens, nil),
	}}

	_, err := NewRenderer(config).Render(NewEmitter(DefaultConfig()).Emit(res))
	require.ErrorIs(t, err, ErrDuplicateFile)
	assert.Contains(t, err.Error(), filepath.Join("/tmp/out", "lens_of.gen.go"))
}

func TestRender_WithoutComments(t *testing.T) {
	config := DefaultRenderConfig()
	config.GenerateComments = false

	res := &derive.Result{Groups: []derive.Group{group(target(personID), derive.FamilyLens, nil)}}

	files, err := NewRenderer(config).Render(NewEmitter(DefaultConfig()).Emit(res))
	require.NoError(t, err)
	assert.NotContains(t, string(files[0].Content), "holds the lenses")
}

func TestRender_OutputDirOverride(t *testing.T) {
	config := DefaultRenderConfig()
	config.OutputDir = "/tmp/out"

	res := &derive.Result{Groups: []derive.Group{group(target(personID), derive.FamilyLens, nil)}}

	files, err := NewRenderer(config).Render(NewEmitter(DefaultConfig()).Emit(res))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", files[0].Dir)
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	files := []GeneratedFile{
		{Dir: filepath.Join(dir, "people"), Filename: "lens_of.gen.go", Content: []byte("package people\n")},
		{Dir: filepath.Join(dir, "hr"), Filename: "person_2.0b6bb987.gen.go", Content: []byte("package hr\n")},
	}

	require.NoError(t, WriteFiles(files))

	for _, file := range files {
		content, err := os.ReadFile(file.Path())
		require.NoError(t, err)
		assert.Equal(t, file.Content, content)
	}
}

func TestOrphans(t *testing.T) {
	dir := t.TempDir()
	header := DefaultHeader + "\n\npackage people\n"

	current := GeneratedFile{Dir: dir, Filename: "person_5.af82393f.gen.go", Content: []byte(header)}
	require.NoError(t, WriteFiles([]GeneratedFile{
		current,
		{Dir: dir, Filename: "person_4.af82393f.gen.go", Content: []byte(header)},
		{Dir: dir, Filename: "handwritten.gen.go", Content: []byte("package people\n")},
		{Dir: dir, Filename: "short.gen.go", Content: []byte("//")},
		{Dir: dir, Filename: "people.go", Content: []byte(header)},
	}))

	missing := filepath.Join(dir, "missing")

	orphans, err := Orphans([]string{dir, missing, dir}, []GeneratedFile{current}, DefaultHeader, ".gen.go")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "person_4.af82393f.gen.go")}, orphans)

	require.NoError(t, RemoveFiles(append(orphans, filepath.Join(missing, "gone.gen.go"))))
	assert.NoFileExists(t, orphans[0])
	assert.FileExists(t, current.Path())
	assert.FileExists(t, filepath.Join(dir, "handwritten.gen.go"))
}

func TestRenderer_OutputDirs(t *testing.T) {
	empty := derive.Group{Target: target(model.TypeID{PkgPath: peoplePkg, Name: "Empty"})}
	res := &derive.Result{Groups: []derive.Group{
		group(target(personID), derive.FamilyLens, container(staffLenses, "hr", "/src/hr")),
		group(target(personID), derive.FamilyLens, nil),
		empty,
	}}

	assert.Equal(t, []string{"/src/hr", "/src/people"}, NewRenderer(DefaultRenderConfig()).OutputDirs(res))

	config := DefaultRenderConfig()
	config.OutputDir = "/tmp/out"
	assert.Equal(t, []string{"/tmp/out"}, NewRenderer(config).OutputDirs(res))
}

func TestWriteDebugUnformatted(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeDebugUnformatted(dir, "lens_of.gen.go", []byte("package")))

	content, err := os.ReadFile(filepath.Join(dir, "lens_of.gen.unformatted.go"))
	require.NoError(t, err)
	assert.Equal(t, "package", string(content))

	assert.NoError(t, writeDebugUnformatted("", "x.go", nil))
}
