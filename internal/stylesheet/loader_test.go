package stylesheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/stylekit/internal/errors"
)

func TestLoadThemeContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.css")
	content := "@theme {\n  --color-primary: oklch(0.6 0.2 250);\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := LoadThemeContent(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestLoadThemeContentStripsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.css")
	require.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbf@theme { --x: 1; }\n"), 0o644))

	got, err := LoadThemeContent(path)
	require.NoError(t, err)
	assert.Equal(t, "@theme { --x: 1; }\n", got)
}

func TestLoadThemeContentNotFound(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.css")},
		{"missing directory", filepath.Join(dir, "nope", "theme.css")},
		{"directory", dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadThemeContent(tt.path)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.IsNotFound(err))
			assert.Equal(t, errors.ErrCodeFileNotFound, errors.GetErrorCode(err))
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}

func TestLoadThemeContentEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.css")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	got, err := LoadThemeContent(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}
