package errors

import (
	"errors"
)

// Wrap wraps an error with additional context, creating a StyleError if the input is not already one
func Wrap(err error, errType ErrorType, code, message string) *StyleError {
	if err == nil {
		return nil
	}

	// Keep location and context of an inner StyleError.
	var se *StyleError
	if errors.As(err, &se) {
		return &StyleError{
			Type:        errType,
			Code:        code,
			Message:     message,
			Cause:       se,
			Context:     se.Context,
			FilePath:    se.FilePath,
			Line:        se.Line,
			Recoverable: se.Recoverable,
		}
	}

	return &StyleError{
		Type:        errType,
		Code:        code,
		Message:     message,
		Cause:       err,
		Recoverable: errType == ErrorTypeValidation,
	}
}

// WrapIO wraps an error as an I/O error
func WrapIO(err error, code, message string) *StyleError {
	se := Wrap(err, ErrorTypeIO, code, message)
	if se != nil {
		se.Recoverable = false
	}
	return se
}

// WrapConfig wraps an error as a configuration error
func WrapConfig(err error, code, message string) *StyleError {
	se := Wrap(err, ErrorTypeConfig, code, message)
	if se != nil {
		se.Recoverable = false
	}
	return se
}

// GetErrorType returns the type of a StyleError, or ErrorTypeInternal for other errors
func GetErrorType(err error) ErrorType {
	var se *StyleError
	if errors.As(err, &se) {
		return se.Type
	}
	return ErrorTypeInternal
}

// GetErrorCode returns the code of a StyleError, or an empty string
func GetErrorCode(err error) string {
	var se *StyleError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
