package errx

import "errors"

// Process exit codes used by command-line callers.
const (
	ExitOK       = 0
	ExitInvalid  = 1
	ExitUsage    = 2
	ExitTimeout  = 3
	ExitInternal = 70
)

// typeToExitCode maps error types to process exit codes
func typeToExitCode(t Type) int {
	switch t {
	case TypeValidation, TypeConflict:
		return ExitInvalid
	case TypeNotFound:
		return ExitUsage
	case TypeTimeout:
		return ExitTimeout
	case TypeExternal, TypeInternal:
		return ExitInternal
	default:
		return ExitInternal
	}
}

// ExitCode returns the exit status a command should use for err.
// Plain errors map to ExitInternal and nil maps to ExitOK.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.ExitCode
	}
	return ExitInternal
}
