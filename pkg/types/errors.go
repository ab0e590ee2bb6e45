package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRequestNotFound       = errors.New("request not found")
	ErrPublicationNotFound   = errors.New("publication not found")
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrUserNotFound          = errors.New("user not found")

	// ErrInvalidCredentials carries a deliberately generic message: it must
	// not reveal whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRequestAlreadyReviewed signals an attempt to transition a request
	// out of APPROVED or REJECTED. Both states are terminal.
	ErrRequestAlreadyReviewed = errors.New("request already reviewed")
)

// FieldError indicates a problem with a specific input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports malformed or missing input to a store operation.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}
