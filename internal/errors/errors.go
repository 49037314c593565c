// Package errors provides sentinel and structured errors for the create CLI.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the human-readable description (required).
	Message string

	// Location is the file path the error refers to (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// ExitError wraps an error with the process exit code it should produce.
type ExitError struct {
	Err  error
	Code int

	// Printed is set when the command already reported the error to the user.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Message returns the human-facing text of err. A DetailError anywhere in the
// chain contributes its Message; otherwise the error string is used.
func Message(err error) string {
	if err == nil {
		return "unknown error"
	}
	var detail *DetailError
	if errors.As(err, &detail) && detail.Message != "" {
		return detail.Message
	}
	return err.Error()
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewConnectivityError creates a connectivity error with details.
func NewConnectivityError(message string, context map[string]string, cause error) error {
	return &DetailError{
		Type:    "connectivity failed",
		Message: message,
		Context: context,
		Cause:   fmt.Errorf("%w: %w", ErrConnectivity, cause),
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewPermissionError creates a permission denied error with details.
func NewPermissionError(message, location string, cause error) error {
	return &DetailError{
		Type:     "permission denied",
		Message:  message,
		Location: location,
		Cause:    fmt.Errorf("%w: %w", ErrPermission, cause),
	}
}

// NewNotArchiveError reports a remote template whose payload is not a ZIP archive.
func NewNotArchiveError(url, contentType string) error {
	return &DetailError{
		Type:    "invalid template",
		Message: fmt.Sprintf("Remote template does not appear to be a ZIP archive: %s", url),
		Context: map[string]string{"Content-Type": contentType},
		Hint:    "Point the template at a .zip file or a GitHub repository path.",
		Cause:   ErrNotArchive,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
