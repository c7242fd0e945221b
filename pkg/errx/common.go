package errx

// Common error constructors for convenience

// Internal creates an internal error
func Internal(message string) *Error {
	return New(message, TypeInternal)
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(message, TypeValidation)
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(message, TypeNotFound)
}

// Conflict creates a conflict error
func Conflict(message string) *Error {
	return New(message, TypeConflict)
}

// Timeout creates a timeout error
func Timeout(message string) *Error {
	return New(message, TypeTimeout)
}

// External creates an error for failures coming from caller-supplied work
func External(message string) *Error {
	return New(message, TypeExternal)
}
