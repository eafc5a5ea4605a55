// Package services holds the business logic behind the stylekit commands.
package services

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/conneroisu/stylekit/internal/config"
	"github.com/conneroisu/stylekit/internal/errors"
	"github.com/conneroisu/stylekit/internal/fsutil"
	"github.com/conneroisu/stylekit/internal/logging"
	"github.com/conneroisu/stylekit/internal/stylesheet"
)

// InstallService merges the configured import and theme into a stylesheet
type InstallService struct {
	config *config.Config
	merger *stylesheet.Merger
	logger logging.Logger
}

// NewInstallService creates a new install service
func NewInstallService(cfg *config.Config, logger logging.Logger) *InstallService {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.Nop()
	}

	return &InstallService{
		config: cfg,
		merger: stylesheet.NewMerger(logger),
		logger: logger.WithComponent("install"),
	}
}

// InstallOptions contains options for an install run
type InstallOptions struct {
	StylesheetPath string
	ImportTarget   string

	// ThemeFile is merged as the @theme block. Empty means only the import
	// is ensured.
	ThemeFile string

	DryRun        bool
	CreateMissing bool
	Backup        bool
}

// InstallReport describes what an install run did
type InstallReport struct {
	Path         string
	ImportStatus stylesheet.Status
	ThemeApplied bool
	Created      bool
	Changed      bool
	Written      bool
	BackupPath   string
	Diff         string
	Duration     time.Duration
}

// DefaultOptions returns options filled from the configuration.
func (s *InstallService) DefaultOptions() InstallOptions {
	sheet := s.config.Stylesheet
	return InstallOptions{
		StylesheetPath: sheet.Path,
		ImportTarget:   sheet.Import,
		ThemeFile:      sheet.ThemeFile,
		CreateMissing:  sheet.CreateMissing,
		Backup:         sheet.Backup,
	}
}

// Install ensures the import and, when a theme file is set, the theme block.
// The theme file is read before the stylesheet is touched, so a missing
// theme leaves the stylesheet as it was.
func (s *InstallService) Install(ctx context.Context, opts InstallOptions) (*InstallReport, error) {
	start := time.Now()
	perf := logging.StartOperation(s.logger, "install")

	report, err := s.install(ctx, opts)
	if err != nil {
		perf.EndWithError(ctx, err)
		return nil, err
	}
	perf.End(ctx)

	report.Duration = time.Since(start)
	return report, nil
}

func (s *InstallService) install(ctx context.Context, opts InstallOptions) (*InstallReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(opts.StylesheetPath) == "" {
		return nil, errors.NewValidationError(errors.ErrCodeValidationFailed, "stylesheet path is required")
	}
	if strings.TrimSpace(opts.ImportTarget) == "" {
		return nil, errors.NewValidationError(errors.ErrCodeValidationFailed, "import target is required")
	}

	var (
		theme    string
		hasTheme = strings.TrimSpace(opts.ThemeFile) != ""
	)
	if hasTheme {
		content, err := stylesheet.LoadThemeContent(opts.ThemeFile)
		if err != nil {
			return nil, err
		}
		theme = content
	}

	original, existed, err := readStylesheet(opts.StylesheetPath, opts.CreateMissing)
	if err != nil {
		return nil, err
	}

	var result stylesheet.Result
	if hasTheme {
		result = s.merger.EnsureImportAndTheme(ctx, original, opts.ImportTarget, theme)
	} else {
		result = s.merger.EnsureImport(ctx, original, opts.ImportTarget)
	}

	importStatus := result.Status
	if hasTheme {
		importStatus = result.Import
	}

	report := &InstallReport{
		Path:         opts.StylesheetPath,
		ImportStatus: importStatus,
		ThemeApplied: hasTheme,
		Created:      !existed,
		Changed:      result.Text != original,
	}
	if !report.Changed {
		s.logger.Info(ctx, "Stylesheet already up to date", "path", opts.StylesheetPath)
		return report, nil
	}

	report.Diff = UnifiedDiff(opts.StylesheetPath, original, result.Text)
	if opts.DryRun {
		s.logger.Info(ctx, "Dry run, stylesheet not written", "path", opts.StylesheetPath)
		return report, nil
	}

	if opts.Backup && existed {
		backup, err := fsutil.Backup(opts.StylesheetPath)
		if err != nil {
			return nil, errors.ErrWriteFailed(opts.StylesheetPath+".bak", err)
		}
		report.BackupPath = backup
	}

	perm := fsutil.FileMode(opts.StylesheetPath)
	if err := fsutil.WriteAtomic(opts.StylesheetPath, []byte(result.Text), perm); err != nil {
		return nil, errors.ErrWriteFailed(opts.StylesheetPath, err)
	}
	report.Written = true

	s.logger.Info(ctx, "Stylesheet updated",
		"path", opts.StylesheetPath,
		"import", importStatus.String(),
		"theme", hasTheme,
		"created", report.Created,
	)

	return report, nil
}

// Validate reports structural findings for the stylesheet at path. When
// there are findings the returned error is a validation error listing them.
func (s *InstallService) Validate(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, _, err := readStylesheet(path, false)
	if err != nil {
		return nil, err
	}

	collection := &errors.ValidationErrorCollection{FilePath: path}
	for _, finding := range stylesheet.ValidateStructure(text) {
		collection.Add(finding)
	}

	s.logger.Debug(ctx, "Validated stylesheet", "path", path, "findings", len(collection.Findings))

	if collection.HasErrors() {
		return collection.Findings, collection.ToStyleError()
	}
	return nil, nil
}

// Imports lists the @import statements of the stylesheet at path.
func (s *InstallService) Imports(ctx context.Context, path string) ([]stylesheet.ImportRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, _, err := readStylesheet(path, false)
	if err != nil {
		return nil, err
	}

	return stylesheet.FindImports(stylesheet.Parse(text)), nil
}

// readStylesheet returns the raw stylesheet text. The bytes are not decoded
// so that writing the merge result back changes nothing outside the merge.
func readStylesheet(path string, createMissing bool) (text string, existed bool, err error) {
	info, err := os.Stat(path)
	switch {
	case err != nil && errors.Is(err, os.ErrNotExist) && createMissing:
		return "", false, nil
	case err != nil:
		return "", false, errors.FromFileError(path, err)
	case info.IsDir():
		return "", false, errors.ErrFileNotFound(path, fsutil.ErrNotRegular)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, errors.FromFileError(path, err)
	}

	return string(data), true, nil
}

// UnifiedDiff renders the change from before to after as a unified diff.
func UnifiedDiff(path, before, after string) string {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path,
		FromDate: "original",
		ToDate:   "merged",
		Context:  3,
	}
	diff, _ := difflib.GetUnifiedDiffString(ud)
	return diff
}
