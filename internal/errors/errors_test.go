package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StyleError
		expected string
	}{
		{
			name:     "message only",
			err:      &StyleError{Message: "boom"},
			expected: "boom",
		},
		{
			name:     "code and location",
			err:      NewIOError(ErrCodeFileNotFound, "file not found", nil).WithLocation("theme.css", 0),
			expected: "[ERR_FILE_NOT_FOUND] theme.css file not found",
		},
		{
			name:     "line and cause",
			err:      NewIOError(ErrCodeReadFailed, "failed to read file", errors.New("eof")).WithLocation("app.css", 7),
			expected: "[ERR_READ_FAILED] app.css:7 failed to read file: eof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestStyleErrorIs(t *testing.T) {
	a := ErrFileNotFound("a.css", nil)
	b := ErrFileNotFound("b.css", nil)
	c := ErrPermissionDenied("a.css", nil)

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

func TestFromFileError(t *testing.T) {
	dir := t.TempDir()

	_, statErr := os.Stat(dir + "/missing.css")
	require.Error(t, statErr)

	err := FromFileError("missing.css", statErr)
	require.NotNil(t, err)
	assert.Equal(t, ErrCodeFileNotFound, err.Code)
	assert.True(t, IsNotFound(err))

	perm := FromFileError("locked.css", fmt.Errorf("open: %w", fs.ErrPermission))
	assert.Equal(t, ErrCodePermissionDenied, perm.Code)
	assert.False(t, IsNotFound(perm))

	other := FromFileError("odd.css", errors.New("device busy"))
	assert.Equal(t, ErrCodeReadFailed, other.Code)

	assert.Nil(t, FromFileError("x", nil))
}

func TestIsNotFoundThroughWrapping(t *testing.T) {
	inner := ErrFileNotFound("theme.css", nil)
	outer := WrapIO(inner, "ERR_THEME_LOAD", "theme could not be loaded")

	assert.True(t, IsNotFound(outer))
	assert.True(t, IsNotFound(fmt.Errorf("install: %w", outer)))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestWrapPreservesLocation(t *testing.T) {
	inner := NewIOError(ErrCodeReadFailed, "failed", nil).
		WithLocation("app.css", 3).
		WithContext("attempt", 1)

	wrapped := Wrap(inner, ErrorTypeConfig, ErrCodeConfigInvalid, "bad config")
	require.NotNil(t, wrapped)
	assert.Equal(t, "app.css", wrapped.FilePath)
	assert.Equal(t, 3, wrapped.Line)
	assert.Equal(t, 1, wrapped.Context["attempt"])
	assert.Equal(t, ErrorTypeConfig, GetErrorType(wrapped))
	assert.Equal(t, ErrCodeConfigInvalid, GetErrorCode(wrapped))

	assert.Nil(t, Wrap(nil, ErrorTypeIO, "x", "y"))
	assert.Equal(t, ErrorTypeInternal, GetErrorType(errors.New("plain")))
	assert.Empty(t, GetErrorCode(errors.New("plain")))
}

func TestRecoverable(t *testing.T) {
	assert.True(t, IsRecoverable(NewValidationError(ErrCodeValidationFailed, "x")))
	assert.False(t, IsRecoverable(NewConfigError(ErrCodeConfigInvalid, "x")))
	assert.False(t, IsRecoverable(WrapConfig(errors.New("x"), ErrCodeConfigInvalid, "y")))
	assert.False(t, IsRecoverable(errors.New("x")))
}

func TestValidationErrorCollection(t *testing.T) {
	vec := &ValidationErrorCollection{FilePath: "app.css"}
	assert.False(t, vec.HasErrors())
	assert.Equal(t, "no validation errors", vec.Error())
	assert.Nil(t, vec.ToStyleError())

	vec.Add("first finding")
	assert.Equal(t, "first finding", vec.Error())

	vec.Add("second finding")
	assert.Equal(t, "validation failed with 2 errors", vec.Error())

	se := vec.ToStyleError()
	require.NotNil(t, se)
	assert.Equal(t, ErrorTypeValidation, se.Type)
	assert.Equal(t, "app.css", se.FilePath)
	assert.Equal(t, "first finding; second finding", se.Message)
	assert.Equal(t, 2, se.Context["findings"])
}
