package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNoWalletSelected is returned when an action needs a selected wallet and none is open.
var ErrNoWalletSelected = errors.New("no wallet selected")

// ErrReportNotGenerated is returned when a report action runs before a report exists for the wallet.
var ErrReportNotGenerated = errors.New("report not yet generated")

// ErrReportInProgress is returned while a generate or submit call for the same wallet is still running.
var ErrReportInProgress = errors.New("report action already in progress")

// FieldError describes a single offending input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field that failed validation for one submission.
// It unwraps to ErrValidation so callers can keep using errors.Is.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError builds a ValidationError from a field -> message map.
// Fields are sorted by name so messages are stable.
func NewValidationError(fields map[string]string) *ValidationError {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	ve := &ValidationError{Fields: make([]FieldError, 0, len(names))}
	for _, name := range names {
		ve.Fields = append(ve.Fields, FieldError{Field: name, Message: fields[name]})
	}
	return ve
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FieldMap returns the field messages keyed by field name.
func (e *ValidationError) FieldMap() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		m[f.Field] = f.Message
	}
	return m
}

// AppError wraps an infrastructure failure with the HTTP status it should surface as.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrReportAlreadySubmitted is returned for any report transition after submission.
var ErrReportAlreadySubmitted = errors.New("report already submitted")
