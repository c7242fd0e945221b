package asyncx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/formkit/pkg/errx"
)

var (
	ErrRegistry = errx.NewRegistry("ASYNC")

	CodeDeadlineExceeded = ErrRegistry.Register("DEADLINE_EXCEEDED", errx.TypeTimeout, "operation timed out")
	CodeInvalidPolicy    = ErrRegistry.Register("INVALID_POLICY", errx.TypeValidation, "invalid retry policy")
	CodeInvalidTimeout   = ErrRegistry.Register("INVALID_TIMEOUT", errx.TypeValidation, "timeout must be positive")
	CodeNoCompetitors    = ErrRegistry.Register("NO_COMPETITORS", errx.TypeValidation, "race needs at least one competitor")
)

// Sentinels for errors.Is.
var (
	ErrDeadlineExceeded = CodeDeadlineExceeded.Sentinel()
	ErrInvalidPolicy    = CodeInvalidPolicy.Sentinel()
	ErrInvalidTimeout   = CodeInvalidTimeout.Sentinel()
	ErrNoCompetitors    = CodeNoCompetitors.Sentinel()
)

// deadlineExceeded also matches context.DeadlineExceeded through its cause.
func deadlineExceeded(d time.Duration) *errx.Error {
	return ErrRegistry.
		NewWithMessage(CodeDeadlineExceeded, fmt.Sprintf("operation timed out after %s", d)).
		WithCause(context.DeadlineExceeded).
		WithDetail("timeout_ms", d.Milliseconds()).
		WithDetail("timeout", d)
}

// IsDeadlineExceeded reports whether err was produced by WithTimeout.
// A task's own context.DeadlineExceeded does not count.
func IsDeadlineExceeded(err error) bool {
	return errors.Is(err, ErrDeadlineExceeded)
}

// DeadlineOf returns the duration that elapsed before WithTimeout gave up.
func DeadlineOf(err error) (time.Duration, bool) {
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != CodeDeadlineExceeded.Code {
		return 0, false
	}
	d, ok := e.Details["timeout"].(time.Duration)
	return d, ok
}
