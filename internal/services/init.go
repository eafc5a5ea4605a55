package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/conneroisu/stylekit/internal/config"
	"github.com/conneroisu/stylekit/internal/errors"
	"github.com/conneroisu/stylekit/internal/fsutil"
)

const starterStylesheet = `@import "tailwindcss";
`

const starterTheme = `@theme {
  --color-primary: oklch(0.62 0.19 259.8);
  --color-secondary: oklch(0.55 0.02 264.4);
  --radius-card: 0.75rem;
  --font-sans: "Inter", ui-sans-serif, system-ui, sans-serif;
}
`

// InitService handles project initialization business logic
type InitService struct{}

// NewInitService creates a new initialization service
func NewInitService() *InitService {
	return &InitService{}
}

// InitOptions contains options for project initialization
type InitOptions struct {
	ProjectDir string
	Force      bool

	// Starter writes a starter stylesheet and theme file at the default
	// locations when they do not exist yet.
	Starter bool
}

// InitProject writes the configuration file and, optionally, starter files.
// It returns the paths it created.
func (s *InitService) InitProject(opts InitOptions) ([]string, error) {
	dir := opts.ProjectDir
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.WrapIO(err, errors.ErrCodeWriteFailed, "cannot create project directory").
			WithLocation(dir, 0)
	}

	var created []string

	configPath := filepath.Join(dir, config.FileName)
	if err := config.WriteDefault(configPath, opts.Force); err != nil {
		return nil, err
	}
	created = append(created, configPath)

	if !opts.Starter {
		return created, nil
	}

	starters := []struct {
		path    string
		content string
	}{
		{filepath.Join(dir, config.DefaultStylesheetPath), starterStylesheet},
		{filepath.Join(dir, config.DefaultThemeFile), starterTheme},
	}

	for _, f := range starters {
		if _, err := os.Stat(f.path); err == nil {
			continue
		}
		if err := fsutil.WriteAtomic(f.path, []byte(f.content), fsutil.DefaultFileMode); err != nil {
			return created, errors.ErrWriteFailed(f.path, fmt.Errorf("write starter file: %w", err))
		}
		created = append(created, f.path)
	}

	return created, nil
}
