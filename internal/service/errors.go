package service

import (
	"errors"
	"fmt"
	"strings"
)

// NoValidItemsMessage is the user-facing message when a cart resolves to
// zero order items.
const NoValidItemsMessage = "No valid items were provided for this order."

var (
	// ErrNoValidItems rejects an order whose cart produced no items
	ErrNoValidItems = errors.New(NoValidItemsMessage)

	// ErrNotFound marks a missing or foreign-owned resource
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials marks a failed login
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError carries field-level messages for rejected writes
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msgs := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

func (e *ValidationError) add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
