package harness

import (
	"errors"
	"fmt"
)

// SetupError represents a failure while assembling the pipeline.
//
// Setup errors are local, synchronous, and surfaced immediately to the
// caller - none are retried or swallowed. Validation precedes mutation,
// so a failed operation leaves the pipeline and context untouched.
type SetupError struct {
	// Code identifies the error category.
	Code SetupErrorCode

	// Message is a human-readable description.
	Message string

	// Stage names the affected stage (for direction errors).
	Stage string

	// Key is the lookup key that missed (for not-found errors).
	Key string
}

// SetupErrorCode categorizes setup errors.
type SetupErrorCode string

const (
	// ErrCodeInvalidArgument indicates a required input was nil or empty.
	ErrCodeInvalidArgument SetupErrorCode = "INVALID_ARGUMENT"

	// ErrCodeDirectionMismatch indicates a stage descriptor's direction
	// disagrees with the pipeline's direction.
	ErrCodeDirectionMismatch SetupErrorCode = "DIRECTION_MISMATCH"

	// ErrCodeNotFound indicates a document spec lookup missed.
	ErrCodeNotFound SetupErrorCode = "NOT_FOUND"
)

// Error implements the error interface.
func (e *SetupError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("%s: %s (stage=%s)", e.Code, e.Message, e.Stage)
	}
	if e.Key != "" {
		return fmt.Sprintf("%s: %s (key=%s)", e.Code, e.Message, e.Key)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidArgument returns true if the error is an invalid-argument
// setup error. Uses errors.As to handle wrapped errors.
func IsInvalidArgument(err error) bool {
	var se *SetupError
	if errors.As(err, &se) {
		return se.Code == ErrCodeInvalidArgument
	}
	return false
}

// IsDirectionMismatch returns true if the error is a direction-mismatch
// setup error. Uses errors.As to handle wrapped errors.
func IsDirectionMismatch(err error) bool {
	var se *SetupError
	if errors.As(err, &se) {
		return se.Code == ErrCodeDirectionMismatch
	}
	return false
}

// IsNotFound returns true if the error is a not-found setup error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var se *SetupError
	if errors.As(err, &se) {
		return se.Code == ErrCodeNotFound
	}
	return false
}

// NewInvalidArgumentError creates a SetupError for a missing required
// input. The argument names what was absent ("component", "schema", ...).
func NewInvalidArgumentError(what string) *SetupError {
	return &SetupError{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf("%s is required", what),
	}
}

// NewDirectionMismatchError creates a SetupError for a stage whose
// direction disagrees with the pipeline's.
func NewDirectionMismatchError(stageName string, stageReceive bool) *SetupError {
	stageDir, pipelineDir := "send", "receive"
	if stageReceive {
		stageDir, pipelineDir = "receive", "send"
	}
	return &SetupError{
		Code:    ErrCodeDirectionMismatch,
		Message: fmt.Sprintf("component targets a %s stage but the pipeline is a %s pipeline", stageDir, pipelineDir),
		Stage:   stageName,
	}
}

// NewNotFoundError creates a SetupError for a document spec lookup miss.
// Kind names the key space ("name" or "root name").
func NewNotFoundError(kind, key string) *SetupError {
	return &SetupError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("no document spec registered for %s", kind),
		Key:     key,
	}
}
