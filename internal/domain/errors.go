package domain

import (
	"errors" // Error inspection
	"fmt"    // Formatting
)

// ErrorKind classifies failures so the API layer can pick a status code
type ErrorKind int

const (
	KindInternal       ErrorKind = iota // Unexpected failure
	KindValidation                      // Malformed or missing input
	KindConflict                        // Duplicate unique field
	KindAuthentication                  // Bad credentials or token
	KindAuthorization                   // Authenticated but forbidden
	KindNotFound                        // No such resource
)

// Error is the error type returned by services
type Error struct {
	Kind    ErrorKind // Classification
	Field   string    // Offending input field, validation only
	Message string    // Human readable message
	Err     error     // Underlying cause
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError reports invalid input for field
func NewValidationError(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// NewConflictError reports a duplicate unique field
func NewConflictError(field, message string) *Error {
	return &Error{Kind: KindConflict, Field: field, Message: message}
}

// NewAuthenticationError reports bad credentials or an unusable token
func NewAuthenticationError(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// NewAuthorizationError reports a forbidden action
func NewAuthorizationError(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

// NewNotFoundError reports a missing resource
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewInternalError wraps an unexpected failure
func NewInternalError(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err, KindInternal for foreign errors
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
