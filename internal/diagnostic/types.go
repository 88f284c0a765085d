package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"optics-generator/internal/common"
	"optics-generator/internal/model"
)

// Diagnostics holds all diagnostic information from one derivation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this type of diagnostic.
	Code Code
	// Template is the message template; Args fill its positional verbs.
	Template string
	Args     []string
	// Target identifies which target type this relates to (if any).
	Target string
	// Member identifies which member this relates to (if any).
	Member string
	// Location is the host-supplied source position.
	Location model.Location
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// New builds a diagnostic from its descriptor.
func New(d Descriptor, loc model.Location, args ...string) Diagnostic {
	return Diagnostic{
		Severity: d.Severity,
		Code:     d.Code,
		Template: d.Template,
		Args:     args,
		Location: loc,
	}
}

// WithTarget returns a copy of d attributed to a target type.
func (d Diagnostic) WithTarget(target string) Diagnostic {
	d.Target = target
	return d
}

// WithMember returns a copy of d attributed to a member.
func (d Diagnostic) WithMember(member string) Diagnostic {
	d.Member = member
	return d
}

// Message renders the template with its arguments.
func (d Diagnostic) Message() string {
	args := make([]any, len(d.Args))
	for i, a := range d.Args {
		args[i] = a
	}

	return fmt.Sprintf(d.Template, args...)
}

// Add appends a diagnostic to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// Report builds a diagnostic from its descriptor and adds it.
func (d *Diagnostics) Report(desc Descriptor, target string, loc model.Location, args ...string) {
	d.Add(New(desc, loc, args...).WithTarget(target))
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Codes returns the codes of every diagnostic, errors first.
func (d *Diagnostics) Codes() []Code {
	all := d.All()

	codes := make([]Code, len(all))
	for i, diag := range all {
		codes[i] = diag.Code
	}

	return codes
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if loc := d.Location.String(); loc != "" {
		prefix = append(prefix, loc)
	}

	if d.Target != "" {
		prefix = append(prefix, "["+d.Target+"]")
	}

	if d.Member != "" {
		prefix = append(prefix, d.Member)
	}

	msg := d.Message()
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
