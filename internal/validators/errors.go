package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidInput    = errors.New("invalid input")
)

// FieldError describes one failed rule.
type FieldError struct {
	// Field is the JSON name of the field.
	Field string
	// Rule is the validate tag that failed, e.g. "required".
	Rule string
	// Message is the human-readable description.
	Message string
}

// ValidationError lists every failed rule of one value. It matches
// [ErrInvalidInput].
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
