package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"optics-generator/internal/emit"
)

// GenOptions holds flags for the gen command.
type GenOptions struct {
	*RootOptions
	Output string
	Strict bool
	DryRun bool
}

// GenSummary is the result of the gen command.
type GenSummary struct {
	Files       []string         `json:"files"`
	Removed     []string         `json:"removed,omitempty"`
	Accessors   int              `json:"accessors"`
	Written     bool             `json:"written"`
	Diagnostics []DiagnosticView `json:"diagnostics,omitempty"`
}

func (s GenSummary) String() string {
	var b strings.Builder

	verb := "Wrote"
	if !s.Written {
		verb = "Would write"
	}

	fmt.Fprintf(&b, "✓ %s %d file(s) with %d accessor(s)", verb, len(s.Files), s.Accessors)

	for _, file := range s.Files {
		fmt.Fprintf(&b, "\n  %s", file)
	}

	for _, file := range s.Removed {
		fmt.Fprintf(&b, "\n  removed: %s", file)
	}

	return b.String()
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Derive accessors and write them as Go source",
		Long: `Derive accessors for every request of the manifest and write them next to
the target types (shared selectors) or the requesting containers. Generated
files of earlier runs that are no longer produced are removed.

Rejected requests are reported and skipped; the remaining files are still
written. The command fails when any error was reported.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write every file into this directory")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "fail without writing when any error is reported")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "render but do not write")

	return cmd
}

func runGen(opts *GenOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	p, err := runPipeline(cmd.Context(), opts.RootOptions, pipelineOptions{
		Strict:    opts.Strict,
		OutputDir: opts.Output,
		Render:    true,
	}, f)
	if err != nil {
		return err
	}

	f.Diagnostics(&p.Result.Diagnostics)

	summary := GenSummary{
		Accessors:   len(p.Result.Accessors()),
		Diagnostics: diagnosticViews(&p.Result.Diagnostics),
	}

	for _, file := range p.Files {
		summary.Files = append(summary.Files, file.Path())
	}

	summary.Removed = p.Orphans

	if p.StrictErr == nil && !opts.DryRun {
		if err := emit.WriteFiles(p.Files); err != nil {
			return f.Fail(p.RunID(), ExitCommandError, ErrCodeWrite, "writing files", err)
		}

		if err := emit.RemoveFiles(p.Orphans); err != nil {
			return f.Fail(p.RunID(), ExitCommandError, ErrCodeWrite, "removing outdated files", err)
		}

		summary.Written = true
	}

	if err := f.Success(p.RunID(), summary); err != nil {
		return err
	}

	return p.failOnDiagnostics()
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
