package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Output string
}

// CheckSummary is the result of the check command.
type CheckSummary struct {
	UpToDate    []string         `json:"up_to_date"`
	Stale       []string         `json:"stale,omitempty"`
	Missing     []string         `json:"missing,omitempty"`
	Diagnostics []DiagnosticView `json:"diagnostics,omitempty"`
}

// OK reports whether every file is up to date.
func (s CheckSummary) OK() bool {
	return len(s.Stale) == 0 && len(s.Missing) == 0
}

func (s CheckSummary) String() string {
	if s.OK() {
		return fmt.Sprintf("✓ %d generated file(s) up to date", len(s.UpToDate))
	}

	var b strings.Builder

	fmt.Fprintf(&b, "✗ %d stale, %d missing generated file(s)", len(s.Stale), len(s.Missing))

	for _, file := range s.Stale {
		fmt.Fprintf(&b, "\n  stale:   %s", file)
	}

	for _, file := range s.Missing {
		fmt.Fprintf(&b, "\n  missing: %s", file)
	}

	return b.String()
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that generated files are up to date",
		Long: `Derive and render every request of the manifest without writing, and
compare the result with the files on disk. Fails when a file is stale or
missing, when an earlier run left a generated file the manifest no longer
produces, or when derivation reported errors.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "compare against this directory")

	return cmd
}

func runCheck(opts *CheckOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	p, err := runPipeline(cmd.Context(), opts.RootOptions, pipelineOptions{
		OutputDir: opts.Output,
		Render:    true,
	}, f)
	if err != nil {
		return err
	}

	f.Diagnostics(&p.Result.Diagnostics)

	summary := CheckSummary{Diagnostics: diagnosticViews(&p.Result.Diagnostics)}

	for _, file := range p.Files {
		existing, err := os.ReadFile(file.Path())

		switch {
		case errors.Is(err, fs.ErrNotExist):
			summary.Missing = append(summary.Missing, file.Path())
		case err != nil:
			return f.Fail(p.RunID(), ExitCommandError, ErrCodeWrite, "reading generated file", err)
		case bytes.Equal(existing, file.Content):
			summary.UpToDate = append(summary.UpToDate, file.Path())
		default:
			summary.Stale = append(summary.Stale, file.Path())
		}
	}

	summary.Stale = append(summary.Stale, p.Orphans...)

	if !summary.OK() {
		if err := f.Error(p.RunID(), ErrCodeStale, summary.String(), summary); err != nil {
			return err
		}

		return NewExitError(ExitFailure, "generated files are out of date")
	}

	if err := f.Success(p.RunID(), summary); err != nil {
		return err
	}

	return p.failOnDiagnostics()
}
