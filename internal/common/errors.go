// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// ErrNotFound indicates a referenced item id does not exist in the store.
	ErrNotFound = errors.New("item not found")

	// ErrAnalysisFailed indicates the image analysis call errored or returned
	// output that could not be decoded. Callers degrade to manual entry.
	ErrAnalysisFailed = errors.New("image analysis failed")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ValidationError reports a missing or malformed field on a create draft or
// an import document. It is local and recoverable; stored state is never
// touched when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// CorruptStateError indicates persisted state exists but could not be parsed
// at load time. Raw holds the unreadable payload so callers can preserve it
// for diagnostics instead of silently discarding it.
type CorruptStateError struct {
	Err error
	Key string
	Raw []byte
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt persisted state under %q: %v", e.Key, e.Err)
}

func (e *CorruptStateError) Unwrap() error {
	return e.Err
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
