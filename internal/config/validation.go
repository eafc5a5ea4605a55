package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/conneroisu/stylekit/internal/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("safepath", func(fl validator.FieldLevel) bool {
			return validatePath(fl.Field().String()) == nil
		})

		validateInst = v
	})

	return validateInst
}

// validateConfig runs the struct tags and returns the first failure as a
// config error naming the yaml key.
func validateConfig(config *Config) error {
	if config == nil {
		return errors.NewConfigError(errors.ErrCodeConfigInvalid, "configuration is nil")
	}

	if err := validatorInstance().Struct(config); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		return errors.NewConfigError(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())).
			WithContext("field", field).
			WithContext("value", ve.Value())
	}

	return errors.WrapConfig(err, errors.ErrCodeConfigInvalid, "invalid configuration")
}

// yamlishFieldName turns Config.Stylesheet.ThemeFile into stylesheet.theme_file.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, snakeCase(part))
	}
	return strings.Join(lowered, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// validatePath rejects values that cannot be a single file path.
func validatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty path")
	}
	if strings.ContainsAny(path, "\x00\n\r") {
		return fmt.Errorf("path contains control characters: %q", path)
	}
	return nil
}

// ValidationError represents a configuration finding with suggestions
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var builder strings.Builder

	if len(vr.Errors) > 0 {
		builder.WriteString("Validation errors:\n")
		for _, err := range vr.Errors {
			builder.WriteString(fmt.Sprintf("  - %s: %s\n", err.Field, err.Message))
			for _, suggestion := range err.Suggestions {
				builder.WriteString(fmt.Sprintf("      hint: %s\n", suggestion))
			}
		}
	}

	if len(vr.Warnings) > 0 {
		if builder.Len() > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("Validation warnings:\n")
		for _, warning := range vr.Warnings {
			builder.WriteString(fmt.Sprintf("  - %s: %s\n", warning.Field, warning.Message))
			for _, suggestion := range warning.Suggestions {
				builder.WriteString(fmt.Sprintf("      hint: %s\n", suggestion))
			}
		}
	}

	return builder.String()
}

// ValidateConfigWithDetails checks the configuration against the file
// system. Structural problems are errors; files that do not exist yet are
// warnings, since install can create the stylesheet.
func ValidateConfigWithDetails(config *Config) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if err := validateConfig(config); err != nil {
		field := "config"
		var se *errors.StyleError
		if errors.As(err, &se) {
			if f, ok := se.Context["field"].(string); ok {
				field = f
			}
		}
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Message: err.Error(),
		})
		result.Valid = false
		return result
	}

	sheet := config.Stylesheet

	if info, err := os.Stat(sheet.Path); err != nil {
		suggestions := []string{"Run 'stylekit css install' to create it"}
		if !sheet.CreateMissing {
			suggestions = []string{"Enable stylesheet.create_missing or create the file first"}
		}
		result.Warnings = append(result.Warnings, ValidationError{
			Field:       "stylesheet.path",
			Value:       sheet.Path,
			Message:     "stylesheet does not exist",
			Suggestions: suggestions,
		})
	} else if info.IsDir() {
		result.Errors = append(result.Errors, ValidationError{
			Field:       "stylesheet.path",
			Value:       sheet.Path,
			Message:     "stylesheet path is a directory",
			Suggestions: []string{"Point stylesheet.path at a .css file"},
		})
	}

	if filepath.IsAbs(sheet.Import) {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "stylesheet.import",
			Value:   sheet.Import,
			Message: "absolute import targets are resolved by the CSS toolchain, not the file system",
			Suggestions: []string{
				"Use a path relative to the stylesheet, e.g. " + DefaultImportTarget,
			},
		})
	}

	if config.HasTheme() {
		if info, err := os.Stat(sheet.ThemeFile); err != nil || !info.Mode().IsRegular() {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "stylesheet.theme_file",
				Value:   sheet.ThemeFile,
				Message: "theme file not found",
				Suggestions: []string{
					"Check the path is relative to the working directory",
					"Set stylesheet.theme_file to \"\" to only manage the import",
				},
			})
		}
	}

	result.Valid = !result.HasErrors()
	return result
}
