package analyze

// TagKey is the struct tag key read from member fields.
//
//	`optic:"-"`        excludes the member
//	`optic:"required"` treats a pointer member as plain
const TagKey = "optic"

// Config controls package loading.
type Config struct {
	// Dir is the directory packages are resolved from. Empty means the
	// current working directory.
	Dir string
	// BuildTags are passed to the build system as -tags.
	BuildTags []string
	// GeneratedSuffix marks files whose declarations are ignored when
	// collecting identifiers already in use, and whose errors do not fail
	// a load.
	GeneratedSuffix string
}

// DefaultConfig returns the default loading configuration.
func DefaultConfig() Config {
	return Config{
		GeneratedSuffix: ".gen.go",
	}
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path string // Import path
	Name string // Package name
	Dir  string // Directory of the package sources
	// Names lists package-level identifiers not declared in generated files.
	Names []string
	// GeneratedErrors lists the errors found in generated files, which did
	// not fail the load.
	GeneratedErrors []string
}
