// Package testutils holds helpers shared by the stylekit package tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/stylekit/internal/config"
)

// Project is a temporary project laid out like the default configuration.
type Project struct {
	Dir        string
	Stylesheet string
	Theme      string
}

// CreateTempProject creates a temporary project with the default stylesheet
// and theme directories. Files are written only when content is non-empty.
func CreateTempProject(t *testing.T, stylesheet, theme string) *Project {
	t.Helper()

	dir := t.TempDir()
	p := &Project{
		Dir:        dir,
		Stylesheet: filepath.Join(dir, filepath.FromSlash(config.DefaultStylesheetPath)),
		Theme:      filepath.Join(dir, filepath.FromSlash(config.DefaultThemeFile)),
	}

	require.NoError(t, os.MkdirAll(filepath.Dir(p.Stylesheet), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Dir(p.Theme), 0o755))
	if stylesheet != "" {
		WriteFile(t, p.Stylesheet, stylesheet)
	}
	if theme != "" {
		WriteFile(t, p.Theme, theme)
	}

	return p
}

// CreateTestConfig returns a configuration pointing at the project files.
func CreateTestConfig(p *Project) *config.Config {
	cfg := config.Default()
	cfg.Stylesheet.Path = p.Stylesheet
	cfg.Stylesheet.ThemeFile = p.Theme
	return cfg
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// ReadFile returns the content of path.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// AssertFilePermissions checks the permission bits of path.
func AssertFilePermissions(t *testing.T, path string, expectedMode os.FileMode) {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err)

	actualMode := info.Mode().Perm()
	require.Equal(t, expectedMode, actualMode,
		"File %s has incorrect permissions: got %o, want %o",
		path, actualMode, expectedMode)
}

// WaitForContent polls path until its content satisfies match (useful for
// testing file watchers).
func WaitForContent(t *testing.T, path string, match func(string) bool, timeout time.Duration) string {
	t.Helper()

	deadline := time.Now().Add(timeout)
	var last string
	for time.Now().Before(deadline) {
		if data, err := os.ReadFile(path); err == nil {
			last = string(data)
			if match(last) {
				return last
			}
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("File %s did not reach the expected content within %v; last content:\n%s", path, timeout, last)
	return last
}
