package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/stylekit/internal/config"
)

func TestInitService_InitProject(t *testing.T) {
	tests := []struct {
		name     string
		opts     InitOptions
		expected []string
	}{
		{
			name:     "config only",
			opts:     InitOptions{},
			expected: []string{config.FileName},
		},
		{
			name: "with starter files",
			opts: InitOptions{Starter: true},
			expected: []string{
				config.FileName,
				config.DefaultStylesheetPath,
				config.DefaultThemeFile,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "project")
			tt.opts.ProjectDir = dir

			created, err := NewInitService().InitProject(tt.opts)
			require.NoError(t, err)

			want := make([]string, 0, len(tt.expected))
			for _, p := range tt.expected {
				want = append(want, filepath.Join(dir, p))
			}
			assert.Equal(t, want, created)

			for _, p := range created {
				assert.FileExists(t, p)
			}
		})
	}
}

func TestInitService_ExistingConfig(t *testing.T) {
	dir := t.TempDir()
	service := NewInitService()

	_, err := service.InitProject(InitOptions{ProjectDir: dir})
	require.NoError(t, err)

	_, err = service.InitProject(InitOptions{ProjectDir: dir})
	require.Error(t, err)

	_, err = service.InitProject(InitOptions{ProjectDir: dir, Force: true})
	require.NoError(t, err)
}

func TestInitService_KeepsExistingStarterFiles(t *testing.T) {
	dir := t.TempDir()
	sheet := filepath.Join(dir, config.DefaultStylesheetPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(sheet), 0o755))
	require.NoError(t, os.WriteFile(sheet, []byte("body {}\n"), 0o644))

	created, err := NewInitService().InitProject(InitOptions{ProjectDir: dir, Starter: true})
	require.NoError(t, err)
	assert.NotContains(t, created, sheet)

	data, err := os.ReadFile(sheet)
	require.NoError(t, err)
	assert.Equal(t, "body {}\n", string(data))
}
