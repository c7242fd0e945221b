package errx

// Type represents the category of error
type Type string

const (
	// TypeInternal represents unexpected internal failures
	TypeInternal Type = "INTERNAL"

	// TypeValidation represents invalid input or configuration
	TypeValidation Type = "VALIDATION"

	// TypeNotFound represents a missing resource, such as an unknown command kind
	TypeNotFound Type = "NOT_FOUND"

	// TypeConflict represents a conflicting state
	TypeConflict Type = "CONFLICT"

	// TypeTimeout represents a deadline elapsing before work settled
	TypeTimeout Type = "TIMEOUT"

	// TypeExternal represents failures surfaced from caller-supplied work
	TypeExternal Type = "EXTERNAL"
)

// String returns the string representation of the error type
func (t Type) String() string {
	return string(t)
}
