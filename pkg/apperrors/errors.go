// Package apperrors classifies failures of the suggestion service with stable codes.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeAIRequestFailed     ErrorCode = "AI_REQUEST_FAILED"
	ErrCodeAIQuotaExceeded     ErrorCode = "AI_QUOTA_EXCEEDED"
	ErrCodeAITimeout           ErrorCode = "AI_TIMEOUT"
	ErrCodeAIMalformedResponse ErrorCode = "AI_MALFORMED_RESPONSE"
	ErrCodeAIBlocked           ErrorCode = "AI_BLOCKED"
	ErrCodeInvalidInput        ErrorCode = "INVALID_INPUT"
	ErrCodeCacheUnavailable    ErrorCode = "CACHE_UNAVAILABLE"
	ErrCodeUnknown             ErrorCode = "UNKNOWN"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error { return e.cause }

func newError(code ErrorCode, msg string, retryable bool, cause error) *StandardError {
	se := &StandardError{
		Code:      code,
		Message:   msg,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
	if cause != nil {
		se.Details = cause.Error()
	}
	return se
}

// NewAIRequestError network yoki 5xx xatolari, qayta urinsa bo'ladi.
func NewAIRequestError(cause error) *StandardError {
	return newError(ErrCodeAIRequestFailed, "AI service request failed", true, cause)
}

// NewAIQuotaError 429 javobi.
func NewAIQuotaError(cause error) *StandardError {
	return newError(ErrCodeAIQuotaExceeded, "AI service quota exceeded", true, cause)
}

func NewAITimeoutError(cause error) *StandardError {
	return newError(ErrCodeAITimeout, "AI service timed out", false, cause)
}

// NewAIMalformedError javobda matn yo'q.
func NewAIMalformedError(details string) *StandardError {
	se := newError(ErrCodeAIMalformedResponse, "AI service returned no text", false, nil)
	se.Details = details
	return se
}

func NewAIBlockedError(cause error) *StandardError {
	return newError(ErrCodeAIBlocked, "AI service blocked the prompt", false, cause)
}

func NewInvalidInputError(details string) *StandardError {
	se := newError(ErrCodeInvalidInput, "invalid input", false, nil)
	se.Details = details
	return se
}

func NewCacheUnavailableError(cause error) *StandardError {
	return newError(ErrCodeCacheUnavailable, "suggestion cache unavailable", false, cause)
}

// CodeOf returns the code of the first StandardError in the chain.
// Context errors map to AI_TIMEOUT, anything else to UNKNOWN.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var se *StandardError
	if errors.As(err, &se) {
		return se.Code
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrCodeAITimeout
	}
	return ErrCodeUnknown
}

// IsRetryable reports whether err is marked retryable.
func IsRetryable(err error) bool {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Retryable
	}
	return false
}
