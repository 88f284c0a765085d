package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optics-generator/internal/model"
)

func TestDiagnostic_Message(t *testing.T) {
	d := New(NoCopyWithUpdate, model.Location{File: "people.go", Line: 12, Column: 6},
		"people.Handler", "interface types cannot be copied")

	assert.Equal(t, CodeNoCopyWithUpdate, d.Code)
	assert.Equal(t, SeverityError, d.Severity)
	assert.Equal(t, "type people.Handler does not support copy-with-update: interface types cannot be copied", d.Message())
	assert.Equal(t,
		"people.go:12:6: [OPT0002] type people.Handler does not support copy-with-update: interface types cannot be copied",
		d.String())
}

func TestDiagnostic_StringPrefixes(t *testing.T) {
	d := New(IneligibleMember, model.Location{}, "Person", "secret", "not exported").
		WithTarget("people.Person").
		WithMember("secret")

	assert.Equal(t, "[people.Person] secret: [OPT0102] member Person.secret skipped: not exported", d.String())
}

func TestDiagnostics_AddBySeverity(t *testing.T) {
	var diags Diagnostics

	diags.Report(OptionalityWrapped, "people.PersonRef", model.Location{}, "people.PersonRef")
	diags.Report(EmptyTarget, "people.Empty", model.Location{}, "people.Empty")
	diags.Report(DuplicateRequest, "people.Person", model.Location{}, "people.Person", "lens")

	require.Len(t, diags.Errors, 1)
	require.Len(t, diags.Warnings, 1)
	require.Len(t, diags.Infos, 1)
	assert.True(t, diags.HasErrors())
	assert.False(t, diags.IsValid())
	assert.Equal(t, []Code{CodeOptionalityWrapped, CodeEmptyTarget, CodeDuplicateRequest}, diags.Codes())
}

func TestDiagnostics_Error(t *testing.T) {
	var diags Diagnostics
	require.NoError(t, diags.Error())

	diags.Report(UnresolvedTarget, "people.Ghost", model.Location{}, "people.Ghost", "not found")
	diags.Report(MalformedRequest, "people.Person", model.Location{}, "people.lenses", "people.Person", "generic")

	err := diags.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[OPT0005]")
	assert.Contains(t, err.Error(), "; ")
	assert.Contains(t, err.Error(), "[OPT0003]")
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.Report(EmptyTarget, "x", model.Location{}, "x")
	b.Report(UnresolvedTarget, "y", model.Location{}, "y", "boom")

	a.Merge(b)
	assert.Len(t, a.All(), 2)
	assert.Equal(t, CodeUnresolvedTarget, a.All()[0].Code)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
