// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"strings"
)

// ErrValidation is the sentinel matched by every *ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError collects the messages of every field constraint an input
// violated. Messages keep the declaration order of the violated fields.
type ValidationError struct {
	Messages []string
}

// NewValidationError creates a ValidationError from one or more messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// Error joins the messages with ", ", which is also the text returned to clients.
func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
