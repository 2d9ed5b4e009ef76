package service

import "errors"

// Sentinel errors surfaced to the API layer
var (
	ErrNotFound  = errors.New("not found") // Entity does not exist, or belongs to another user
	ErrForbidden = errors.New("forbidden") // Caller lacks the required privilege
)

// ValidationError reports a field-level problem with a payload
type ValidationError struct {
	Field   string // Offending field name
	Message string // Human-readable detail
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// validationErr builds a field-level validation error
func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
