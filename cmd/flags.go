package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/conneroisu/stylekit/internal/services"
)

// StylesheetFlags are the flags shared by the commands that edit a stylesheet.
// Unset flags fall back to the configuration.
type StylesheetFlags struct {
	Stylesheet string
	Import     string
	Theme      string
	NoTheme    bool
	DryRun     bool
	Create     bool
	Backup     bool
	ShowDiff   bool
}

// addStylesheetFlags registers the flags. withTheme adds --theme and
// --no-theme for commands that merge the theme block.
func addStylesheetFlags(fs *pflag.FlagSet, flags *StylesheetFlags, withTheme bool) {
	fs.StringVarP(&flags.Stylesheet, "stylesheet", "s", "", "Stylesheet to update (default from stylesheet.path)")
	fs.StringVarP(&flags.Import, "import", "i", "", "Import target to ensure (default from stylesheet.import)")
	fs.BoolVarP(&flags.DryRun, "dry-run", "n", false, "Show the changes without writing")
	fs.BoolVar(&flags.Create, "create", true, "Create the stylesheet when it does not exist")
	fs.BoolVar(&flags.Backup, "backup", false, "Keep a .bak copy of the previous stylesheet")
	fs.BoolVar(&flags.ShowDiff, "diff", false, "Print a unified diff of the changes")

	if withTheme {
		fs.StringVarP(&flags.Theme, "theme", "t", "", "Theme file holding the @theme block (default from stylesheet.theme_file)")
		fs.BoolVar(&flags.NoTheme, "no-theme", false, "Only ensure the import")
	}
}

// apply overrides opts with the flags the user set explicitly.
func (f *StylesheetFlags) apply(fs *pflag.FlagSet, opts *services.InstallOptions) error {
	if fs.Changed("stylesheet") {
		opts.StylesheetPath = f.Stylesheet
	}
	if fs.Changed("import") {
		opts.ImportTarget = f.Import
	}
	if fs.Changed("theme") {
		opts.ThemeFile = f.Theme
	}
	if fs.Changed("create") {
		opts.CreateMissing = f.Create
	}
	if fs.Changed("backup") {
		opts.Backup = f.Backup
	}
	opts.DryRun = f.DryRun

	if f.NoTheme {
		if fs.Changed("theme") {
			return fmt.Errorf("--theme and --no-theme cannot be used together")
		}
		opts.ThemeFile = ""
	}

	if strings.TrimSpace(opts.StylesheetPath) == "" {
		return fmt.Errorf("no stylesheet given: set stylesheet.path or pass --stylesheet")
	}

	return nil
}

// stylesheetArg resolves the stylesheet for read-only commands: the first
// argument, the --stylesheet flag, or the configured path.
func stylesheetArg(cmd *cobra.Command, args []string, configured string) string {
	if len(args) > 0 {
		return args[0]
	}
	if flag := cmd.Flags().Lookup("stylesheet"); flag != nil && flag.Changed {
		return flag.Value.String()
	}
	return configured
}

// validateFormat checks an --output value.
func validateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(allowed, ", "))
}
