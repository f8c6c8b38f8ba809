package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"direct", NewAIQuotaError(cause), ErrCodeAIQuotaExceeded},
		{"wrapped", fmt.Errorf("send: %w", NewAIRequestError(cause)), ErrCodeAIRequestFailed},
		{"deadline", context.DeadlineExceeded, ErrCodeAITimeout},
		{"plain", cause, ErrCodeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NewAIRequestError(nil)))
	assert.True(t, IsRetryable(fmt.Errorf("x: %w", NewAIQuotaError(nil))))
	assert.False(t, IsRetryable(NewAIMalformedError("empty candidates")))
	assert.False(t, IsRetryable(errors.New("plain")))
}

func TestStandardError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewAIRequestError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "boom", err.Details)
	assert.Contains(t, err.Error(), "AI_REQUEST_FAILED")
}
