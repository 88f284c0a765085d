package derive

import (
	"context"
	"errors"
	"fmt"

	"optics-generator/internal/classify"
	"optics-generator/internal/diagnostic"
	"optics-generator/internal/model"
)

// Config holds configuration for the derivation engine.
type Config struct {
	// StrictMode makes Classify return an error when any request failed.
	StrictMode bool
	// WarnEmpty reports targets without eligible members.
	WarnEmpty bool
	// ReportSkipped adds a note for every ineligible member.
	ReportSkipped bool
	// ReportDuplicates adds a note for every request already served.
	ReportDuplicates bool
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		StrictMode:       false,
		WarnEmpty:        true,
		ReportSkipped:    false,
		ReportDuplicates: false,
	}
}

// Engine derives accessor specifications. It holds no per-run state and may
// be used from several goroutines; every Classify call is its own run.
type Engine struct {
	introspector model.TypeIntrospector
	config       Config
}

// NewEngine creates an Engine resolving types through introspector.
func NewEngine(introspector model.TypeIntrospector, config Config) *Engine {
	return &Engine{
		introspector: introspector,
		config:       config,
	}
}

// Classify runs one derivation batch over requests.
//
// Rejected targets and malformed requests are reported as diagnostics and
// skipped; they never suppress the output of other requests. Only context
// cancellation, or any error diagnostic in strict mode, makes Classify fail.
func (e *Engine) Classify(ctx context.Context, requests []Request) (*Result, error) {
	r := newRun()
	res := &Result{RunID: r.id}

	for _, req := range requests {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("derivation run %s: %w", r.id, err)
		}

		key := groupKey{target: req.Target, family: req.Family, container: req.Container}
		if !r.markSeen(key) {
			if e.config.ReportDuplicates {
				res.Diagnostics.Report(diagnostic.DuplicateRequest, req.Target.String(), req.Location,
					req.Target.String(), req.Family.String())
			}

			continue
		}

		group, ok := e.classifyRequest(ctx, r, req, &res.Diagnostics)
		if ok {
			res.Groups = append(res.Groups, group)
		}
	}

	if e.config.StrictMode && res.Diagnostics.HasErrors() {
		return res, errors.New("strict mode: derivation failed with errors")
	}

	return res, nil
}

// classifyRequest serves one request.
func (e *Engine) classifyRequest(
	ctx context.Context,
	r *run,
	req Request,
	diags *diagnostic.Diagnostics,
) (Group, bool) {
	target := req.Target.String()
	group := Group{Family: req.Family, Location: req.Location}

	if req.Shape() == ShapeNested {
		cont, ok := e.container(ctx, req, diags)
		if !ok {
			return Group{}, false
		}

		group.Container = cont
	}

	desc, err := r.describe(ctx, e.introspector, req.Target)
	if err != nil {
		if r.markRejected(req.Target) {
			diags.Report(diagnostic.UnresolvedTarget, target, req.Location, target, err.Error())
		}

		return Group{}, false
	}

	loc := req.Location
	if loc.IsZero() {
		loc = desc.Location
	}

	if reason, ok := rejection(desc); !ok {
		if !r.markRejected(req.Target) {
			return Group{}, false
		}

		switch {
		case desc.OptionalityWrapped:
			diags.Report(diagnostic.OptionalityWrapped, target, loc, target)
		case group.Container != nil:
			diags.Report(diagnostic.ContainerNoCopy, target, loc, group.Container.ID.String(), target, reason)
		default:
			diags.Report(diagnostic.NoCopyWithUpdate, target, loc, target, reason)
		}

		return Group{}, false
	}

	pkg := desc.ID.PkgPath
	if group.Container != nil {
		pkg = group.Container.ID.PkgPath
	}

	if !model.Named(desc.ID, "").NameableFrom(pkg) {
		diags.Report(diagnostic.UnreachableTarget, target, loc, target, pkg, desc.ID.PkgPath)

		return Group{}, false
	}

	members, skipped := classify.Members(desc)

	members, unnameable := classify.Nameable(members, pkg)
	for _, s := range unnameable {
		diags.Add(diagnostic.New(diagnostic.UnreachableMember, loc, desc.ID.Name, s.Name, s.Type.String(), pkg).
			WithTarget(target).
			WithMember(s.Name))
	}

	if e.config.ReportSkipped {
		for _, s := range skipped {
			diags.Add(diagnostic.New(diagnostic.IneligibleMember, loc, desc.ID.Name, s.Name, string(s.Reason)).
				WithTarget(target).
				WithMember(s.Name))
		}
	}

	skipped = append(skipped, unnameable...)

	if len(members) == 0 && e.config.WarnEmpty {
		diags.Report(diagnostic.EmptyTarget, target, loc, target)
	}

	group.Target = desc
	group.Skipped = skipped
	group.Accessors = make([]GeneratedAccessor, 0, len(members))

	for _, m := range members {
		group.Accessors = append(group.Accessors, synthesize(desc, m, req.Family))
	}

	return group, true
}

// container resolves and validates the requesting container of req.
func (e *Engine) container(
	ctx context.Context,
	req Request,
	diags *diagnostic.Diagnostics,
) (*model.ContainerDescriptor, bool) {
	target := req.Target.String()
	name := req.Container.String()

	cont, err := e.introspector.Container(ctx, req.Container)
	if err != nil {
		diags.Report(diagnostic.MalformedRequest, target, req.Location, name, target, err.Error())
		return nil, false
	}

	loc := req.Location
	if loc.IsZero() {
		loc = cont.Location
	}

	var reason string

	switch {
	case !cont.Resolved:
		reason = "type not found"
	case cont.Generic:
		reason = "type is generic"
	case !cont.StaticOnly:
		reason = "type has fields"
	case !nestedInPackage(cont.Nesting):
		reason = "type is nested in another type"
	default:
		return cont, true
	}

	diags.Report(diagnostic.MalformedRequest, target, loc, name, target, reason)

	return nil, false
}

// nestedInPackage reports whether every enclosing scope is a package; Go
// declares methods at package level only.
func nestedInPackage(nesting []model.Scope) bool {
	for _, s := range nesting {
		if s.Kind != model.ScopePackage {
			return false
		}
	}

	return true
}

// rejection returns why desc cannot be derived, and false, or "" and true.
func rejection(desc *model.TargetTypeDescriptor) (string, bool) {
	switch {
	case desc.OptionalityWrapped:
		return "optionality-wrapped", false
	case desc.Generic:
		return "generic types have no single copy-with-update", false
	case !desc.CopyWithUpdate:
		kind := desc.Underlying
		if kind == "" {
			kind = "unknown"
		}

		return kind + " types cannot be copied with one member replaced", false
	default:
		return "", true
	}
}
