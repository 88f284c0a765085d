package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"optics-generator/internal/diagnostic"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Derivation errors or stale files
	ExitCommandError = 2 // Command error (manifest not found, package load failure, ...)
)

// Error codes reported in JSON output.
const (
	ErrCodeManifest   = "E001"
	ErrCodeLoad       = "E002"
	ErrCodeDerive     = "E003"
	ErrCodeRender     = "E004"
	ErrCodeWrite      = "E005"
	ErrCodeStale      = "E006"
	ErrCodeInitExists = "E007"
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // verbose and diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
	RunID  string    `json:"run_id,omitempty"`
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(runID string, data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
			RunID:  runID,
		})
	}

	fmt.Fprintln(f.Writer, data)

	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(runID, code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
			RunID: runID,
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)

	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}

	return nil
}

// Fail outputs an error and returns it as an ExitError.
func (f *OutputFormatter) Fail(runID string, exit int, code, message string, err error) error {
	var details any
	if err != nil {
		details = err.Error()
	}

	if outErr := f.Error(runID, code, message, details); outErr != nil {
		return outErr
	}

	return WrapExitError(exit, message, err)
}

// VerboseLog outputs a message only if verbose mode is enabled.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting output.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}

	fmt.Fprintf(f.errWriter(), format+"\n", args...)
}

// Diagnostics prints diagnostics in text mode. JSON output carries them in
// the response payload instead.
func (f *OutputFormatter) Diagnostics(diags *diagnostic.Diagnostics) {
	if f.Format == "json" {
		return
	}

	for _, d := range diags.All() {
		if d.Severity == diagnostic.SeverityInfo && !f.Verbose {
			continue
		}

		fmt.Fprintln(f.errWriter(), d.String())
	}
}

func (f *OutputFormatter) errWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}

	return f.Writer
}

// DiagnosticView is the JSON form of a diagnostic.
type DiagnosticView struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Target   string `json:"target,omitempty"`
	Member   string `json:"member,omitempty"`
	Location string `json:"location,omitempty"`
}

func diagnosticViews(diags *diagnostic.Diagnostics) []DiagnosticView {
	all := diags.All()
	if len(all) == 0 {
		return nil
	}

	views := make([]DiagnosticView, 0, len(all))
	for _, d := range all {
		v := DiagnosticView{
			Severity: d.Severity.String(),
			Code:     string(d.Code),
			Message:  d.Message(),
			Target:   d.Target,
			Member:   d.Member,
			Location: d.Location.String(),
		}

		views = append(views, v)
	}

	return views
}
