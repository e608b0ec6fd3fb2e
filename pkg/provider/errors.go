package provider

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes provider errors
type ErrorCode string

const (
	// ErrCodeInvalidConfig marks a configuration validation failure.
	ErrCodeInvalidConfig ErrorCode = "invalid_config"

	// ErrCodeMissingCredential marks a missing API key or credential
	// variable. Raised only by CreateLLM.
	ErrCodeMissingCredential ErrorCode = "missing_credential"

	// ErrCodeMissingDependency marks an unavailable backend. Raised only
	// by CreateLLM.
	ErrCodeMissingDependency ErrorCode = "missing_dependency"
)

// Error is the standardized error returned by provider operations
type Error struct {
	Provider string    // Which provider generated this error
	Code     ErrorCode // Categorized error code
	Field    string    // The configuration field or env var at fault
	Message  string    // Human-readable message
	Err      error     // Wrapped original error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s (field=%s, code=%s)", e.Provider, e.Message, e.Field, e.Code)
	}
	return fmt.Sprintf("[%s] %s (code=%s)", e.Provider, e.Message, e.Code)
}

// Unwrap returns the original error for errors.Is/As
func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigError creates a validation error naming the invalid field.
func NewConfigError(providerName, field, message string) *Error {
	return &Error{
		Provider: providerName,
		Code:     ErrCodeInvalidConfig,
		Field:    field,
		Message:  message,
	}
}

// NewCredentialError creates a missing-credential error naming the
// environment variable the caller must set.
func NewCredentialError(providerName, envVar string) *Error {
	return &Error{
		Provider: providerName,
		Code:     ErrCodeMissingCredential,
		Field:    envVar,
		Message:  fmt.Sprintf("%s environment variable must be set", envVar),
	}
}

// NewDependencyError creates a missing-dependency error for an unavailable
// backend.
func NewDependencyError(providerName, message string) *Error {
	return &Error{
		Provider: providerName,
		Code:     ErrCodeMissingDependency,
		Message:  message,
	}
}

// IsConfigError reports whether err is a provider error with
// ErrCodeInvalidConfig.
func IsConfigError(err error) bool {
	return hasCode(err, ErrCodeInvalidConfig)
}

// IsCredentialError reports whether err is a provider error with
// ErrCodeMissingCredential.
func IsCredentialError(err error) bool {
	return hasCode(err, ErrCodeMissingCredential)
}

// IsDependencyError reports whether err is a provider error with
// ErrCodeMissingDependency.
func IsDependencyError(err error) bool {
	return hasCode(err, ErrCodeMissingDependency)
}

func hasCode(err error, code ErrorCode) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Code == code
}
