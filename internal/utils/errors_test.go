package contextutils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := NewAppError(ErrorCodeInvalidInput, SeverityWarn, "Invalid input", "field x is bad")
	assert.Contains(t, err.Error(), "Invalid input")
}

func TestAppError_Is(t *testing.T) {
	err := WrapErrorf(ErrQuestionNotFound, "no questions for difficulty %s", "easy")

	assert.True(t, IsError(err, ErrQuestionNotFound))
	assert.False(t, IsError(err, ErrInvalidInput))
}

func TestWrapError(t *testing.T) {
	t.Run("nil is nil", func(t *testing.T) {
		assert.NoError(t, WrapError(nil, "context"))
	})

	t.Run("preserves app error code", func(t *testing.T) {
		wrapped := WrapError(ErrInvalidAnswerIndex, "while checking answer")
		assert.Equal(t, ErrorCodeInvalidAnswerIndex, GetErrorCode(wrapped))
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		wrapped := WrapError(errors.New("disk exploded"), "loading store")
		assert.Equal(t, ErrorCodeInternalError, GetErrorCode(wrapped))
		assert.Contains(t, wrapped.Error(), "loading store")
	})
}

func TestWrapErrorf_FormatsContext(t *testing.T) {
	wrapped := WrapErrorf(ErrQuestionNotFound, "no questions found (difficulty: %s, count: %d)", "hard", 5)

	require.Error(t, wrapped)
	assert.Contains(t, wrapped.Error(), "difficulty: hard")
	assert.Contains(t, wrapped.Error(), "count: 5")
	assert.Equal(t, ErrorCodeQuestionNotFound, GetErrorCode(wrapped))
}

func TestGetErrorCode_NonAppError(t *testing.T) {
	assert.Equal(t, ErrorCodeInternalError, GetErrorCode(errors.New("plain")))
}

func TestGetErrorSeverity(t *testing.T) {
	assert.Equal(t, SeverityInfo, GetErrorSeverity(ErrQuestionNotFound))
	assert.Equal(t, SeverityError, GetErrorSeverity(errors.New("plain")))
}

func TestAppError_ToJSON(t *testing.T) {
	err := NewAppError(ErrorCodeValidationFailed, SeverityWarn, "Invalid options", "must provide exactly 4 options")

	payload := err.ToJSON()
	assert.Equal(t, "VALIDATION_FAILED", payload["code"])
	assert.Equal(t, "Invalid options", payload["message"])
	assert.Equal(t, "warn", payload["severity"])
	assert.Equal(t, "must provide exactly 4 options", payload["details"])
}

func TestIsValidOption(t *testing.T) {
	for _, valid := range []string{"A", "B", "C", "D", "a", "b", "c", "d"} {
		assert.True(t, IsValidOption(valid), "option %q should be valid", valid)
	}
	for _, invalid := range []string{"", "E", "e", "AB", "1", " a"} {
		assert.False(t, IsValidOption(invalid), "option %q should be invalid", invalid)
	}
}
