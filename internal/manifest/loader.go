package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"optics-generator/internal/derive"
	"optics-generator/internal/emit"
	"optics-generator/internal/model"
)

// DefaultFileName is the manifest looked up when none is given.
const DefaultFileName = "optics.yaml"

// LoadFile loads and parses a manifest from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.Path = path

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Output.Comments == nil {
		comments := true
		f.Output.Comments = &comments
	}

	if f.Output.Header == "" {
		f.Output.Header = emit.DefaultHeader
	}

	if f.Derive.WarnEmpty == nil {
		warn := derive.DefaultConfig().WarnEmpty
		f.Derive.WarnEmpty = &warn
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}

// Dir returns the directory package patterns are resolved from.
func (f *File) Dir() string {
	if f.Path == "" {
		return ""
	}

	return filepath.Dir(f.Path)
}

// Registry converts the request entries into a derivation registry.
// Every malformed entry is reported; the registry is nil on error.
func (f *File) Registry() (*derive.Registry, error) {
	reg := derive.NewRegistry()

	var errs []error

	for i, entry := range f.Requests {
		opts, err := f.requestOptions(entry)
		if err != nil {
			errs = append(errs, fmt.Errorf("requests[%d] (line %d): %w", i, entry.Line, err))
			continue
		}

		target, _ := model.ParseTypeID(entry.Type)
		reg.Request(target, opts...)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return reg, nil
}

func (f *File) requestOptions(entry RequestEntry) ([]derive.RequestOption, error) {
	if entry.Type == "" {
		return nil, errors.New("type is required")
	}

	if _, err := model.ParseTypeID(entry.Type); err != nil {
		return nil, err
	}

	family, err := derive.ParseFamily(entry.Family)
	if err != nil {
		return nil, err
	}

	opts := []derive.RequestOption{derive.WithFamily(family)}

	if entry.Container != "" {
		container, err := model.ParseTypeID(entry.Container)
		if err != nil {
			return nil, fmt.Errorf("container: %w", err)
		}

		opts = append(opts, derive.WithContainer(container))
	}

	if f.Path != "" {
		opts = append(opts, derive.WithLocation(model.Location{File: f.Path, Line: entry.Line, Column: 1}))
	}

	return opts, nil
}

// DeriveConfig returns the engine configuration of the manifest.
func (f *File) DeriveConfig() derive.Config {
	config := derive.DefaultConfig()
	config.StrictMode = f.Derive.Strict
	config.ReportSkipped = f.Derive.ReportSkipped
	config.ReportDuplicates = f.Derive.ReportDuplicates

	if f.Derive.WarnEmpty != nil {
		config.WarnEmpty = *f.Derive.WarnEmpty
	}

	return config
}

// RenderConfig returns the render configuration of the manifest.
func (f *File) RenderConfig() emit.RenderConfig {
	config := emit.DefaultRenderConfig()
	config.OutputDir = f.Output.Dir

	if f.Output.Dir != "" && !filepath.IsAbs(f.Output.Dir) && f.Dir() != "" {
		config.OutputDir = filepath.Join(f.Dir(), f.Output.Dir)
	}

	if f.Output.Comments != nil {
		config.GenerateComments = *f.Output.Comments
	}

	if f.Output.Header != "" {
		config.Header = f.Output.Header
	}

	return config
}

// Patterns returns the package patterns to load: the configured ones, or the
// packages of the requested types.
func (f *File) Patterns() []string {
	if !f.Packages.IsEmpty() {
		return f.Packages
	}

	var res []string

	seen := make(map[string]bool)
	add := func(s string) {
		id, err := model.ParseTypeID(s)
		if err != nil || seen[id.PkgPath] {
			return
		}

		seen[id.PkgPath] = true
		res = append(res, id.PkgPath)
	}

	for _, entry := range f.Requests {
		add(entry.Type)

		if entry.Container != "" {
			add(entry.Container)
		}
	}

	return res
}
