package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"optics-generator/internal/derive"
	"optics-generator/internal/manifest"
	"optics-generator/internal/model"
)

// InitOptions holds flags for the init command.
type InitOptions struct {
	*RootOptions
	Family    string
	Container string
	Force     bool
}

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InitOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "init <pkg/path.Type>...",
		Short: "Write a manifest requesting accessors for the given types",
		Long: `Write a manifest with one request per given type. Types are written as
their import path followed by the type name, e.g.
optics-generator/examples/people.Person.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Family, "family", "lens", "accessor family (lens|optional-owner)")
	cmd.Flags().StringVar(&opts.Container, "container", "", "requesting container for nested accessors")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "overwrite an existing manifest")

	return cmd
}

func runInit(opts *InitOptions, types []string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	if _, err := os.Stat(opts.Config); err == nil && !opts.Force {
		return f.Fail("", ExitCommandError, ErrCodeInitExists,
			fmt.Sprintf("manifest %s already exists (use --force to overwrite)", opts.Config), nil)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return f.Fail("", ExitCommandError, ErrCodeManifest, "checking manifest", err)
	}

	if _, err := derive.ParseFamily(opts.Family); err != nil {
		return f.Fail("", ExitCommandError, ErrCodeManifest, "invalid family", err)
	}

	file := &manifest.File{Version: "1"}

	for _, t := range types {
		if _, err := model.ParseTypeID(t); err != nil {
			return f.Fail("", ExitCommandError, ErrCodeManifest, "invalid type", err)
		}

		entry := manifest.RequestEntry{Type: t, Container: opts.Container}
		if opts.Family != "lens" {
			entry.Family = opts.Family
		}

		file.Requests = append(file.Requests, entry)
	}

	if err := manifest.WriteFile(file, opts.Config); err != nil {
		return f.Fail("", ExitCommandError, ErrCodeWrite, "writing manifest", err)
	}

	return f.Success("", fmt.Sprintf("✓ Wrote %s with %d request(s)", opts.Config, len(file.Requests)))
}
