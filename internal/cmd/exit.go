// Package cmd provides command implementations for the create CLI.
package cmd

// Exit codes returned by the create binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input, configuration or template payload.
	ExitValidationError = 2

	// ExitConnectivityError indicates a template could not be downloaded.
	ExitConnectivityError = 3

	// ExitPermissionDenied indicates the destination is not writable.
	ExitPermissionDenied = 4

	// ExitNotFound indicates a template, example or config file was not found.
	ExitNotFound = 5

	// ExitConflict indicates the destination holds conflicting files.
	ExitConflict = 6
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitConnectivityError:
		return "Connectivity Error"
	case ExitPermissionDenied:
		return "Permission Denied"
	case ExitNotFound:
		return "Not Found"
	case ExitConflict:
		return "Conflict"
	default:
		return "Unknown"
	}
}
