// Package errors provides the typed error taxonomy for the chat pipeline.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// ErrCodeInvalidHistory aborts the turn before any external call.
	ErrCodeInvalidHistory ErrorCode = "INVALID_HISTORY"

	// Safety-path codes: logged and downgraded, never surfaced to the caller.
	ErrCodeSafetyFactsFailed ErrorCode = "SAFETY_FACTS_FAILED"
	ErrCodePlacesFailed      ErrorCode = "PLACES_FAILED"
	ErrCodeDirectionsFailed  ErrorCode = "DIRECTIONS_FAILED"

	// ErrCodeModelFailed aborts the turn; no partial reply is returned.
	ErrCodeModelFailed ErrorCode = "MODEL_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewValidationError creates an invalid-history error surfaced as a client error.
func NewValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidHistory,
		Message:   "Invalid messages format",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewSafetyFactsError creates an internal safety-facts retrieval error.
func NewSafetyFactsError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSafetyFactsFailed,
		Message:   "Safety facts source unavailable",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewPlacesError creates an internal places retrieval error.
func NewPlacesError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePlacesFailed,
		Message:   "Places source unavailable",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewDirectionsError creates an internal directions retrieval error.
func NewDirectionsError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDirectionsFailed,
		Message:   "Directions source unavailable",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewModelError creates a model-reply failure surfaced as a server error.
func NewModelError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelFailed,
		Message:   "Model reply failed",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// AsModel wraps err as a model error unless it already is a StandardError.
func AsModel(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return NewModelError(err)
}

// CodeOf returns the error code carried by err, or "" for untyped errors.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// IsValidation reports whether err is an invalid-history error.
func IsValidation(err error) bool {
	return CodeOf(err) == ErrCodeInvalidHistory
}
