package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is returned when the input fails schema validation.
var ErrInvalid = errors.New("invalid input")

// ErrUnavailable indicates that an external collaborator failed or returned
// an answer we could not use.
var ErrUnavailable = errors.New("external service unavailable")

// FieldError pins a validation failure to a single payload field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError aggregates per-field failures for one payload. It matches
// ErrInvalid under errors.Is, so callers keep a single 400 branch.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrInvalid.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

// Add records a failure for one field.
func (e *ValidationError) Add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: fmt.Sprintf(format, args...)})
}

// Err returns the aggregate error, or nil when no field failed.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// FieldsOf extracts field errors from err, if it carries any.
func FieldsOf(err error) []FieldError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}
