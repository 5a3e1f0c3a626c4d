// Package errors provides the typed error taxonomy for page generation:
// ParseError for malformed input text, ValidationError for schema violations
// with field-level diagnostics, and LookupError for unknown registry ids.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError describes a single schema violation inside a configuration.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (f FieldError) String() string {
	return fmt.Sprintf("%s: %s (%s)", f.Path, f.Message, f.Code)
}

// ParseError indicates the raw configuration text could not be decoded.
// It is always produced before validation and never downgraded.
type ParseError struct {
	Format  string // "json" or "yaml"
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse %s configuration: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("parse %s configuration: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// NewParseError wraps a decoder failure for the given input format.
func NewParseError(format, message string, cause error) *ParseError {
	return &ParseError{Format: format, Message: message, Cause: cause}
}

// ValidationError carries every schema violation found in one pass.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "configuration is invalid"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return fmt.Sprintf("configuration is invalid: %s", strings.Join(parts, "; "))
}

// NewValidationError builds a ValidationError from field diagnostics.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// LookupError indicates an explicitly requested registry entry does not exist.
// Unknown template ids are fatal; unknown component types embedded in a
// configuration soft-fail during rendering instead (intentional asymmetry).
type LookupError struct {
	Kind string // "template", "component", ...
	ID   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.ID)
}

// NewLookupError reports a missing registry entry of the given kind.
func NewLookupError(kind, id string) *LookupError {
	return &LookupError{Kind: kind, ID: id}
}

// IsParseError reports whether any error in the chain is a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsValidationError reports whether any error in the chain is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsLookupError reports whether any error in the chain is a LookupError.
func IsLookupError(err error) bool {
	var le *LookupError
	return errors.As(err, &le)
}

// AsValidationError extracts a ValidationError from the chain, if present.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
