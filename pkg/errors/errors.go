// Package errors provides custom error types for the winsane system.
// These errors enable programmatic error checking so that callers can tell
// bad user input apart from a malformed catalog, a failed fetch or a failed
// write, and react to each accordingly.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the winsane system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrStructure indicates that an expected catalog shape is missing
	ErrStructure = errors.New("unexpected catalog structure")

	// ErrFetch indicates that the remote catalog could not be retrieved
	ErrFetch = errors.New("fetch failed")

	// ErrPersist indicates that the local catalog could not be written
	ErrPersist = errors.New("persist failed")

	// ErrProcess indicates that an external command did not succeed
	ErrProcess = errors.New("process failed")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// StructureError reports that the catalog lacks a feature or category the
// operation depends on, such as the reserved user category.
type StructureError struct {
	Feature  string
	Category string
	Message  string
}

// Error implements the error interface
func (e *StructureError) Error() string {
	switch {
	case e.Feature != "" && e.Category != "":
		return fmt.Sprintf("catalog structure error at %s/%s: %s", e.Feature, e.Category, e.Message)
	case e.Feature != "":
		return fmt.Sprintf("catalog structure error at %s: %s", e.Feature, e.Message)
	default:
		return fmt.Sprintf("catalog structure error: %s", e.Message)
	}
}

// Is implements errors.Is support
func (e *StructureError) Is(target error) bool {
	return target == ErrStructure
}

// NewStructureError creates a new StructureError
func NewStructureError(feature, category, message string) *StructureError {
	return &StructureError{Feature: feature, Category: category, Message: message}
}

// FetchError represents a failure to retrieve or decode the remote catalog.
type FetchError struct {
	URL        string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch of %s failed (status %d): %s", e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fetch of %s failed: %s", e.URL, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// NewFetchError creates a new FetchError
func NewFetchError(url string, statusCode int, message string, err error) *FetchError {
	return &FetchError{
		URL:        url,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// PersistError represents an error while writing the local catalog.
type PersistError struct {
	Operation string // "create", "write", "remove"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *PersistError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("persist error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("persist error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *PersistError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *PersistError) Is(target error) bool {
	return target == ErrPersist
}

// NewPersistError creates a new PersistError
func NewPersistError(operation, path string, err error) *PersistError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &PersistError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "yaml", "json"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// ProcessError represents an error from an external process or command
type ProcessError struct {
	Operation string // What operation was being performed
	Command   string // The command that was executed
	Output    string // Stdout/stderr output from the process
	ExitCode  int    // Exit code if available
	Err       error  // Underlying error
}

// Error implements the error interface
func (e *ProcessError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("process error during %s (exit %d): %v\nOutput: %s", e.Operation, e.ExitCode, e.Err, e.Output)
	}
	return fmt.Sprintf("process error during %s (exit %d): %v", e.Operation, e.ExitCode, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ProcessError) Is(target error) bool {
	return target == ErrProcess
}

// NewProcessError creates a new ProcessError
func NewProcessError(operation, command, output string, exitCode int, err error) *ProcessError {
	return &ProcessError{
		Operation: operation,
		Command:   command,
		Output:    output,
		ExitCode:  exitCode,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsStructureError checks if an error is a catalog structure error
func IsStructureError(err error) bool {
	return errors.Is(err, ErrStructure)
}

// IsFetchError checks if an error is a remote fetch error
func IsFetchError(err error) bool {
	return errors.Is(err, ErrFetch)
}

// IsPersistError checks if an error is a local write error
func IsPersistError(err error) bool {
	return errors.Is(err, ErrPersist)
}

// IsProcessError checks if an error came from an external command
func IsProcessError(err error) bool {
	return errors.Is(err, ErrProcess)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapPersist wraps an error as a PersistError
func WrapPersist(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewPersistError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapFetch wraps an error as a FetchError
func WrapFetch(url string, statusCode int, err error) error {
	if err == nil {
		return nil
	}
	return &FetchError{
		URL:        url,
		StatusCode: statusCode,
		Message:    err.Error(),
		Err:        err,
	}
}
