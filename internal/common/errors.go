package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Failure taxonomy for the pipeline. Each failure is contained at its own
// unit (one schema, one document's extraction) and recorded as an outcome,
// never propagated up to abort a batch.
var (
	ErrExtractionUnavailable = errors.New("extraction backend unavailable")
	ErrExtractionFailed      = errors.New("extraction produced no usable text")
	ErrGenerationFailed      = errors.New("generation backend call failed")
	ErrPersistenceFailed     = errors.New("artifact persistence failed")
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
