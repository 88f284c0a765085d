package diagnostic

// Code is a stable diagnostic identifier.
type Code string

const (
	CodeOptionalityWrapped   Code = "OPT0001"
	CodeNoCopyWithUpdate     Code = "OPT0002"
	CodeMalformedRequest     Code = "OPT0003"
	CodeContainerNoCopy      Code = "OPT0004"
	CodeUnresolvedTarget     Code = "OPT0005"
	CodeUnreachableTarget    Code = "OPT0006"
	CodeEmptyTarget          Code = "OPT0100"
	CodeDuplicateRequest     Code = "OPT0101"
	CodeIneligibleMemberNote Code = "OPT0102"
	CodeUnreachableMember    Code = "OPT0103"
)

// Descriptor is the fixed part of a diagnostic: its code, title, message
// template and severity. Templates use explicit argument indexes.
type Descriptor struct {
	Code     Code
	Title    string
	Template string
	Severity Severity
}

var (
	OptionalityWrapped = Descriptor{
		Code:     CodeOptionalityWrapped,
		Title:    "Optionality-wrapped target type",
		Template: "type %[1]s is optionality-wrapped; only concrete types can be derived",
		Severity: SeverityError,
	}
	NoCopyWithUpdate = Descriptor{
		Code:     CodeNoCopyWithUpdate,
		Title:    "Target type does not support copy-with-update",
		Template: "type %[1]s does not support copy-with-update: %[2]s",
		Severity: SeverityError,
	}
	MalformedRequest = Descriptor{
		Code:     CodeMalformedRequest,
		Title:    "Malformed request",
		Template: "container %[1]s for %[2]s must be a non-generic, static-only type: %[3]s",
		Severity: SeverityError,
	}
	ContainerNoCopy = Descriptor{
		Code:     CodeContainerNoCopy,
		Title:    "Container target does not support copy-with-update",
		Template: "container %[1]s requests accessors for %[2]s, which does not support copy-with-update: %[3]s",
		Severity: SeverityError,
	}
	UnresolvedTarget = Descriptor{
		Code:     CodeUnresolvedTarget,
		Title:    "Unresolved target type",
		Template: "type %[1]s could not be resolved: %[2]s",
		Severity: SeverityError,
	}
	UnreachableTarget = Descriptor{
		Code:     CodeUnreachableTarget,
		Title:    "Target type cannot be named",
		Template: "type %[1]s cannot be named from package %[2]s, where %[3]s is declared",
		Severity: SeverityError,
	}
	EmptyTarget = Descriptor{
		Code:     CodeEmptyTarget,
		Title:    "No eligible members",
		Template: "type %[1]s has no eligible members; no accessors derived",
		Severity: SeverityWarning,
	}
	DuplicateRequest = Descriptor{
		Code:     CodeDuplicateRequest,
		Title:    "Duplicate request",
		Template: "accessors for %[1]s (%[2]s) already requested in this run",
		Severity: SeverityInfo,
	}
	IneligibleMember = Descriptor{
		Code:     CodeIneligibleMemberNote,
		Title:    "Member skipped",
		Template: "member %[1]s.%[2]s skipped: %[3]s",
		Severity: SeverityInfo,
	}
	UnreachableMember = Descriptor{
		Code:     CodeUnreachableMember,
		Title:    "Member type cannot be named",
		Template: "member %[1]s.%[2]s skipped: its type %[3]s cannot be named from package %[4]s",
		Severity: SeverityWarning,
	}
)
