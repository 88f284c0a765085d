package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"optics-generator/internal/manifest"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string // manifest path
	Dir     string // directory packages are resolved from
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command of the optics-generator CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "optics-generator",
		Short: "Derive typed lenses and optionals for Go structs",
		Long: `optics-generator reads a manifest of requested struct types, derives one
accessor per eligible member (a lens, or an optional for pointer members) and
writes them as Go source next to the types or into a requesting container.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", manifest.DefaultFileName, "manifest path")
	cmd.PersistentFlags().StringVar(&opts.Dir, "dir", "", "directory packages are resolved from (default: the manifest's directory)")

	cmd.AddCommand(NewGenCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewInitCommand(opts))

	return cmd
}
