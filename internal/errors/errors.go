// Package errors provides structured error handling with category tagging and cause propagation.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error for metrics and user messaging.
type ErrorType string

const (
	// TypeFetch indicates a network failure or malformed collaborator response
	TypeFetch ErrorType = "fetch"
	// TypeNotFound indicates an identifier unknown to a collaborator or store
	TypeNotFound ErrorType = "not_found"
	// TypeParse indicates an ingredient line that cannot yield a name
	TypeParse ErrorType = "parse"
	// TypeValidation indicates invalid input from the caller
	TypeValidation ErrorType = "validation"
	// TypeInternal indicates a programming error or broken invariant
	TypeInternal ErrorType = "internal"
)

// Error represents a structured error with type, message, and context.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// FetchError creates a new fetch error (network failure or malformed response).
func FetchError(message string, cause error) *Error {
	return &Error{
		Type:    TypeFetch,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// NotFoundError creates a new not-found error.
func NotFoundError(message string) *Error {
	return &Error{
		Type:    TypeNotFound,
		Message: message,
		Context: make(map[string]any),
	}
}

// ParseError creates a new parse error.
func ParseError(message string) *Error {
	return &Error{
		Type:    TypeParse,
		Message: message,
		Context: make(map[string]any),
	}
}

// ValidationError creates a new validation error.
func ValidationError(message string) *Error {
	return &Error{
		Type:    TypeValidation,
		Message: message,
		Context: make(map[string]any),
	}
}

// InternalError creates a new internal error.
func InternalError(message string, cause error) *Error {
	return &Error{
		Type:    TypeInternal,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// WithContext adds context fields to the error (chainable).
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// IsType reports whether err is a structured Error of the given type.
func IsType(err error, t ErrorType) bool {
	var structuredErr *Error
	if errors.As(err, &structuredErr) {
		return structuredErr.Type == t
	}
	return false
}

// IsFetch reports whether err is a fetch error.
func IsFetch(err error) bool { return IsType(err, TypeFetch) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return IsType(err, TypeNotFound) }

// IsParse reports whether err is a parse error.
func IsParse(err error) bool { return IsType(err, TypeParse) }

// AsStructuredError converts any error into a structured Error.
// If err is already an *Error, returns it unchanged.
// Otherwise wraps it as an internal error.
func AsStructuredError(err error) *Error {
	if err == nil {
		return nil
	}

	var structuredErr *Error
	if errors.As(err, &structuredErr) {
		return structuredErr
	}

	return InternalError("internal error", err)
}
