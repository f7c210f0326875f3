package port

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// ValidationSource identifies which part of the request failed validation.
type ValidationSource string

const (
	ValidationSourceQuery ValidationSource = "query"
	ValidationSourceBody  ValidationSource = "body"
)

type FieldError struct {
	Path    string
	Message string
}

// ValidationError carries field-addressed validation failures. The field
// details are surfaced verbatim to the caller.
type ValidationError struct {
	Source ValidationSource
	Fields []FieldError
}

// Error implements error.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("invalid %s", e.Source)
	}

	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, fmt.Sprintf("%s: %s", f.Path, f.Message))
	}

	return fmt.Sprintf("invalid %s: %s", e.Source, strings.Join(messages, ", "))
}

func NewValidationError(source ValidationSource, fields ...FieldError) *ValidationError {
	return &ValidationError{
		Source: source,
		Fields: fields,
	}
}

var _ error = &ValidationError{}
