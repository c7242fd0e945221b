package errx

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry("ASYNC")
	code := reg.Register("DEADLINE_EXCEEDED", TypeTimeout, "operation timed out")

	assert.Equal(t, "ASYNC_DEADLINE_EXCEEDED", code.Code)
	assert.Equal(t, ExitTimeout, code.ExitCode)

	got, ok := reg.Get("DEADLINE_EXCEEDED")
	require.True(t, ok)
	assert.Same(t, code, got)
	assert.Len(t, reg.Codes(), 1)

	err := reg.New(code).WithDetail("timeout_ms", int64(50))
	assert.Equal(t, "[ASYNC_DEADLINE_EXCEEDED] operation timed out", err.Error())

	v, ok := err.Detail("timeout_ms")
	require.True(t, ok)
	assert.Equal(t, int64(50), v)
}

func TestError_IsMatchesSentinel(t *testing.T) {
	reg := NewRegistry("X")
	code := reg.Register("BAD", TypeValidation, "bad input")
	sentinel := code.Sentinel()

	err := fmt.Errorf("outer: %w", reg.NewWithMessage(code, "field name is bad"))

	assert.True(t, errors.Is(err, sentinel))
	assert.False(t, errors.Is(err, New("bad input", TypeValidation)))
}

func TestError_UnwrapsCause(t *testing.T) {
	cause := errors.New("disk on fire")
	reg := NewRegistry("X")
	err := reg.NewWithCause(reg.Register("IO", TypeInternal, "io failed"), cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "[X_IO] io failed: disk on fire", err.Error())
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "msg", TypeInternal))

	base := New("inner", TypeValidation).WithDetail("field", "email")
	wrapped := Wrap(base, "outer", TypeValidation)
	assert.Equal(t, base.Code, wrapped.Code)
	assert.Equal(t, "email", wrapped.Details["field"])

	plain := Wrapf(errors.New("x"), TypeTimeout, "after %d tries", 3)
	assert.Equal(t, "after 3 tries", plain.Message)
	assert.Equal(t, ExitTimeout, plain.ExitCode)
}

func TestIsType(t *testing.T) {
	err := fmt.Errorf("ctx: %w", NotFound("no such kind"))
	assert.True(t, IsType(err, TypeNotFound))
	assert.False(t, IsType(err, TypeConflict))
	assert.False(t, IsType(errors.New("plain"), TypeNotFound))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitInvalid, ExitCode(Validation("bad")))
	assert.Equal(t, ExitUsage, ExitCode(NotFound("missing")))
	assert.Equal(t, ExitTimeout, ExitCode(Timeout("slow")))
	assert.Equal(t, ExitInternal, ExitCode(External("task failed")))
	assert.Equal(t, ExitInternal, ExitCode(errors.New("plain")))
}

func TestMarshalJSON(t *testing.T) {
	err := Conflict("already set").WithDetails(map[string]interface{}{"key": "status"})

	raw, mErr := json.Marshal(err)
	require.NoError(t, mErr)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "CONFLICT", got["code"])
	assert.Equal(t, "[CONFLICT] already set", got["error"])
	assert.Equal(t, float64(ExitInvalid), got["exit_code"])
}
