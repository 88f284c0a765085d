package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optics-generator/internal/derive"
	"optics-generator/internal/emit"
	"optics-generator/internal/model"
)

const sample = `
version: "1"
packages: ./examples/people
output:
  comments: false
derive:
  strict: true
  report_skipped: true
requests:
  - type: optics-generator/examples/people.Person
  - type: optics-generator/examples/people.Address
    family: optional-owner
  - type: optics-generator/examples/people.Person
    container: optics-generator/examples/people.personLens
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, StringOrArray{"./examples/people"}, f.Packages)
	require.Len(t, f.Requests, 3)

	assert.Equal(t, "optics-generator/examples/people.Person", f.Requests[0].Type)
	assert.Equal(t, 10, f.Requests[0].Line)
	assert.Equal(t, "optional-owner", f.Requests[1].Family)
	assert.Equal(t, "optics-generator/examples/people.personLens", f.Requests[2].Container)
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte("requests: []\n"))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	require.NotNil(t, f.Output.Comments)
	assert.True(t, *f.Output.Comments)
	assert.Equal(t, emit.DefaultHeader, f.Output.Header)
	assert.Equal(t, derive.DefaultConfig(), f.DeriveConfig())
	assert.Equal(t, emit.DefaultRenderConfig(), f.RenderConfig())
}

func TestParse_PackagesList(t *testing.T) {
	f, err := Parse([]byte("packages: [./a, ./b]\n"))
	require.NoError(t, err)
	assert.Equal(t, StringOrArray{"./a", "./b"}, f.Packages)
	assert.Equal(t, []string{"./a", "./b"}, f.Patterns())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "requests: [\n"},
		{"request is not a mapping", "requests:\n  - people.Person\n"},
		{"packages is a mapping", "packages:\n  a: b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestFile_Registry(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	f.Path = "optics.yaml"

	reg, err := f.Registry()
	require.NoError(t, err)

	requests := reg.Requests()
	require.Len(t, requests, 3)

	person := model.TypeID{PkgPath: "optics-generator/examples/people", Name: "Person"}
	assert.Equal(t, person, requests[0].Target)
	assert.Equal(t, derive.FamilyLens, requests[0].Family)
	assert.Equal(t, model.Location{File: "optics.yaml", Line: 10, Column: 1}, requests[0].Location)

	assert.Equal(t, derive.FamilyOptionalOwner, requests[1].Family)
	assert.Equal(t, derive.ShapeShared, requests[1].Shape())

	assert.Equal(t, "personLens", requests[2].Container.Name)
	assert.Equal(t, derive.ShapeNested, requests[2].Shape())
}

func TestFile_RegistryErrors(t *testing.T) {
	f, err := Parse([]byte(`
requests:
  - type: Person
  - family: lens
  - type: optics-generator/examples/people.Person
    family: prism
  - type: optics-generator/examples/people.Person
    container: lenses
`))
	require.NoError(t, err)

	reg, err := f.Registry()
	require.Error(t, err)
	assert.Nil(t, reg)

	assert.Contains(t, err.Error(), "requests[0] (line 3)")
	assert.Contains(t, err.Error(), "requests[1] (line 4): type is required")
	assert.Contains(t, err.Error(), `unknown accessor family "prism"`)
	assert.Contains(t, err.Error(), "requests[3] (line 7): container:")
}

func TestFile_DeriveConfig(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	config := f.DeriveConfig()
	assert.True(t, config.StrictMode)
	assert.True(t, config.ReportSkipped)
	assert.False(t, config.ReportDuplicates)
	assert.True(t, config.WarnEmpty)
}

func TestFile_RenderConfig(t *testing.T) {
	f, err := Parse([]byte("output:\n  dir: generated\n"))
	require.NoError(t, err)

	f.Path = filepath.Join("/work", "optics.yaml")

	config := f.RenderConfig()
	assert.Equal(t, filepath.Join("/work", "generated"), config.OutputDir)
	assert.True(t, config.GenerateComments)
}

func TestFile_PatternsFromRequests(t *testing.T) {
	f, err := Parse([]byte(`
requests:
  - type: optics-generator/examples/people.Person
  - type: optics-generator/examples/people.Address
  - type: optics-generator/examples/people.Person
    container: optics-generator/examples/hr.staffLenses
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"optics-generator/examples/people", "optics-generator/examples/hr"}, f.Patterns())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path)
	assert.Equal(t, dir, f.Dir())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, WriteFile(f, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, f.Packages, loaded.Packages)
	assert.Equal(t, f.Derive, loaded.Derive)
	require.Len(t, loaded.Requests, len(f.Requests))

	for i := range f.Requests {
		assert.Equal(t, f.Requests[i].Type, loaded.Requests[i].Type)
		assert.Equal(t, f.Requests[i].Container, loaded.Requests[i].Container)
	}
}
