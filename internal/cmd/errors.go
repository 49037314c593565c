package cmd

import (
	"errors"
	"io"

	"github.com/extension-js/create/internal/config"
	oerrors "github.com/extension-js/create/internal/errors"
	"github.com/extension-js/create/internal/output"
)

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var validationErrs config.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return ExitValidationError
	case errors.Is(err, oerrors.ErrValidation), errors.Is(err, oerrors.ErrNotArchive):
		return ExitValidationError
	case errors.Is(err, oerrors.ErrConnectivity):
		return ExitConnectivityError
	case errors.Is(err, oerrors.ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, oerrors.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, oerrors.ErrConflict):
		return ExitConflict
	default:
		return ExitGeneralError
	}
}

// NewExitError creates an ExitError with the given error and exit code.
func NewExitError(err error, code int) *oerrors.ExitError {
	return &oerrors.ExitError{Err: err, Code: code}
}

// reportError writes message to w and returns err as an already printed
// ExitError. A zero code is derived from err.
func reportError(w io.Writer, message string, err error, code int) error {
	output.Fprintln(w, message)
	if code == 0 {
		code = ExitCodeFromError(err)
	}
	return &oerrors.ExitError{Err: err, Code: code, Printed: true}
}
