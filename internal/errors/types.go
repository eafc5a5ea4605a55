package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// Common error codes.
const (
	ErrCodeFileNotFound     = "ERR_FILE_NOT_FOUND"
	ErrCodePermissionDenied = "ERR_PERMISSION_DENIED"
	ErrCodeReadFailed       = "ERR_READ_FAILED"
	ErrCodeWriteFailed      = "ERR_WRITE_FAILED"
	ErrCodeConfigInvalid    = "ERR_CONFIG_INVALID"
	ErrCodeValidationFailed = "ERR_VALIDATION_FAILED"
	ErrCodeInternalError    = "ERR_INTERNAL"
)

// StyleError is a structured error type with context.
type StyleError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	FilePath    string
	Line        int
	Recoverable bool
}

// Error implements the error interface.
func (e *StyleError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.FilePath != "" {
		location := e.FilePath
		if e.Line > 0 {
			location += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, location)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *StyleError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *StyleError) Is(target error) bool {
	var t *StyleError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *StyleError) WithContext(key string, value interface{}) *StyleError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithLocation adds file location information.
func (e *StyleError) WithLocation(filePath string, line int) *StyleError {
	e.FilePath = filePath
	e.Line = line

	return e
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *StyleError {
	return &StyleError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *StyleError {
	return &StyleError{
		Type:        ErrorTypeIO,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *StyleError {
	return &StyleError{
		Type:        ErrorTypeConfig,
		Code:        code,
		Message:     message,
		Recoverable: false,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *StyleError {
	return &StyleError{
		Type:        ErrorTypeInternal,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// ErrFileNotFound reports a path that does not resolve to a readable file.
func ErrFileNotFound(path string, cause error) *StyleError {
	return NewIOError(ErrCodeFileNotFound, "file not found", cause).WithLocation(path, 0)
}

// ErrPermissionDenied reports a file that exists but cannot be opened.
func ErrPermissionDenied(path string, cause error) *StyleError {
	return NewIOError(ErrCodePermissionDenied, "permission denied", cause).WithLocation(path, 0)
}

// ErrWriteFailed reports a failed stylesheet write.
func ErrWriteFailed(path string, cause error) *StyleError {
	return NewIOError(ErrCodeWriteFailed, "failed to write file", cause).WithLocation(path, 0)
}

// FromFileError classifies an error returned by a read of path.
func FromFileError(path string, err error) *StyleError {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrFileNotFound(path, err)
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied(path, err)
	default:
		return NewIOError(ErrCodeReadFailed, "failed to read file", err).WithLocation(path, 0)
	}
}

// IsNotFound reports whether err is a file-not-found failure.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, &StyleError{Type: ErrorTypeIO, Code: ErrCodeFileNotFound}) ||
		errors.Is(err, fs.ErrNotExist)
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var se *StyleError
	if errors.As(err, &se) {
		return se.Recoverable
	}

	return false
}

// ValidationErrorCollection gathers structural findings into a single error.
type ValidationErrorCollection struct {
	FilePath string
	Findings []string
}

// Error implements the error interface.
func (vec *ValidationErrorCollection) Error() string {
	switch len(vec.Findings) {
	case 0:
		return "no validation errors"
	case 1:
		return vec.Findings[0]
	}

	return fmt.Sprintf("validation failed with %d errors", len(vec.Findings))
}

// Add appends a finding.
func (vec *ValidationErrorCollection) Add(finding string) {
	vec.Findings = append(vec.Findings, finding)
}

// HasErrors returns true if there are any findings.
func (vec *ValidationErrorCollection) HasErrors() bool {
	return len(vec.Findings) > 0
}

// ToStyleError converts the collection to a StyleError, or nil when empty.
func (vec *ValidationErrorCollection) ToStyleError() *StyleError {
	if !vec.HasErrors() {
		return nil
	}

	err := NewValidationError(ErrCodeValidationFailed, strings.Join(vec.Findings, "; ")).
		WithContext("findings", len(vec.Findings))
	err.FilePath = vec.FilePath

	return err
}
