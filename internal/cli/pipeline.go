package cli

import (
	"context"
	"fmt"
	"strings"

	"optics-generator/internal/analyze"
	"optics-generator/internal/derive"
	"optics-generator/internal/emit"
	"optics-generator/internal/manifest"
)

// pipelineOptions are the per-command overrides of the manifest.
type pipelineOptions struct {
	Strict    bool
	OutputDir string
	Render    bool
}

// pipeline is the outcome of one manifest run.
type pipeline struct {
	Manifest   *manifest.File
	Result     *derive.Result
	Containers []emit.Container
	Files      []emit.GeneratedFile
	// Orphans are generated files of earlier runs that the current run no
	// longer produces.
	Orphans []string
	// StrictErr is set when strict mode turned error diagnostics into a failure.
	StrictErr error
}

// RunID returns the derivation run identity, if the run got that far.
func (p *pipeline) RunID() string {
	if p == nil || p.Result == nil {
		return ""
	}

	return p.Result.RunID
}

// runPipeline loads the manifest, introspects the packages, derives and
// optionally renders. Errors are already reported through f.
func runPipeline(ctx context.Context, opts *RootOptions, po pipelineOptions, f *OutputFormatter) (*pipeline, error) {
	m, err := manifest.LoadFile(opts.Config)
	if err != nil {
		return nil, f.Fail("", ExitCommandError, ErrCodeManifest, "loading manifest", err)
	}

	f.VerboseLog("Loaded manifest %s (%d request(s))", m.Path, len(m.Requests))

	reg, err := m.Registry()
	if err != nil {
		return nil, f.Fail("", ExitCommandError, ErrCodeManifest, "invalid requests", err)
	}

	config := analyze.DefaultConfig()

	config.Dir = m.Dir()
	if opts.Dir != "" {
		config.Dir = opts.Dir
	}

	analyzer := analyze.NewAnalyzer(config)

	patterns := m.Patterns()
	f.VerboseLog("Loading packages %s", strings.Join(patterns, ", "))

	infos, err := analyzer.LoadPackages(ctx, patterns...)
	if err != nil {
		return nil, f.Fail("", ExitCommandError, ErrCodeLoad, "loading packages", err)
	}

	for _, info := range infos {
		if n := len(info.GeneratedErrors); n > 0 {
			f.VerboseLog("Ignoring %d error(s) in generated files of %s", n, info.Path)
		}
	}

	deriveConfig := m.DeriveConfig()
	deriveConfig.StrictMode = deriveConfig.StrictMode || po.Strict

	p := &pipeline{Manifest: m}

	p.Result, p.StrictErr = derive.NewEngine(analyzer, deriveConfig).Classify(ctx, reg.Requests())
	if p.Result == nil {
		return nil, f.Fail("", ExitCommandError, ErrCodeDerive, "derivation aborted", p.StrictErr)
	}

	f.VerboseLog("Run %s derived %d accessor(s) in %d group(s)",
		p.Result.RunID, len(p.Result.Accessors()), len(p.Result.Groups))

	emitConfig := emit.DefaultConfig()
	p.Containers = emit.NewEmitter(emitConfig).Emit(p.Result)

	if !po.Render {
		return p, nil
	}

	renderConfig := m.RenderConfig()
	if po.OutputDir != "" {
		renderConfig.OutputDir = po.OutputDir
	}

	renderer := emit.NewRenderer(renderConfig)

	p.Files, err = renderer.Render(p.Containers)
	if err != nil {
		return nil, f.Fail(p.RunID(), ExitCommandError, ErrCodeRender, "rendering", err)
	}

	for _, file := range p.Files {
		f.VerboseLog("Rendered %s", file.Path())
	}

	p.Orphans, err = emit.Orphans(renderer.OutputDirs(p.Result), p.Files, renderConfig.Header, emitConfig.GeneratedSuffix)
	if err != nil {
		return nil, f.Fail(p.RunID(), ExitCommandError, ErrCodeWrite, "scanning output directories", err)
	}

	for _, path := range p.Orphans {
		f.VerboseLog("Outdated %s", path)
	}

	return p, nil
}

// failOnDiagnostics returns an ExitError when the run reported errors.
func (p *pipeline) failOnDiagnostics() error {
	if p.StrictErr != nil {
		return WrapExitError(ExitFailure, "derivation failed", p.StrictErr)
	}

	if n := len(p.Result.Diagnostics.Errors); n > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("derivation reported %d error(s)", n))
	}

	return nil
}
