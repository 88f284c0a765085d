package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"optics-generator/internal/emit"
)

// AccessorView is the JSON form of one emitted accessor.
type AccessorView struct {
	Target string `json:"target"`
	Member string `json:"member"`
	Kind   string `json:"kind"`
	Type   string `json:"type"`
	Value  string `json:"value"`
	Path   string `json:"path"`
}

// ListSummary is the result of the list command.
type ListSummary struct {
	Accessors   []AccessorView   `json:"accessors"`
	Diagnostics []DiagnosticView `json:"diagnostics,omitempty"`
}

func (s ListSummary) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d accessor(s)", len(s.Accessors))

	for _, a := range s.Accessors {
		fmt.Fprintf(&b, "\n  %s\t%s", a.Path, a.Type)
	}

	return b.String()
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the accessors the manifest derives",
		Long: `Derive every request of the manifest and list the resulting accessors
with their declaration paths and types, without rendering or writing.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	p, err := runPipeline(cmd.Context(), opts, pipelineOptions{}, f)
	if err != nil {
		return err
	}

	f.Diagnostics(&p.Result.Diagnostics)

	summary := ListSummary{Diagnostics: diagnosticViews(&p.Result.Diagnostics)}

	for _, c := range p.Containers {
		for _, sec := range c.Sections {
			for _, d := range sec.Declarations {
				summary.Accessors = append(summary.Accessors, AccessorView{
					Target: sec.Target.ID.String(),
					Member: d.Accessor.Member,
					Kind:   d.Accessor.Kind.String(),
					Type:   emit.AccessorType(d.Accessor, c.ID.PkgPath, nil),
					Value:  d.Accessor.Value.Render(c.ID.PkgPath, nil),
					Path:   strings.Join(d.Path, "."),
				})
			}
		}
	}

	if err := f.Success(p.RunID(), summary); err != nil {
		return err
	}

	return p.failOnDiagnostics()
}
