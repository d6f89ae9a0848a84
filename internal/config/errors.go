package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for config operations
var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrMissingKey     = errors.New("required key missing")
	ErrInvalidVersion = errors.New("not a semantic version")
)

// ParseError records a configuration document that could not be decoded or validated.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config (%s): %v", e.Source, e.Err)
}

// Unwrap returns both the cause and ErrInvalidConfig so callers can match either.
func (e *ParseError) Unwrap() []error {
	return []error{ErrInvalidConfig, e.Err}
}

// NewParseError creates a new ParseError
func NewParseError(source string, err error) *ParseError {
	return &ParseError{
		Source: source,
		Err:    err,
	}
}

// ValidationErrors holds multiple validation errors
type ValidationErrors struct {
	Errors []error
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e.Errors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e *ValidationErrors) Unwrap() []error {
	return e.Errors
}

func (e *ValidationErrors) Add(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// FieldError represents a validation error for a specific key
type FieldError struct {
	Key   string // TOML key
	Value string // Invalid value
	Err   error  // Underlying error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("key %s: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("key %s (%s): %v", e.Key, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError creates a new FieldError
func NewFieldError(key, value string, err error) *FieldError {
	return &FieldError{
		Key:   key,
		Value: value,
		Err:   err,
	}
}
