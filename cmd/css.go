package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/stylekit/internal/services"
)

// cssCmd groups the stylesheet commands.
var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Merge imports and theme blocks into a stylesheet",
	Long: `Manage the component library wiring of a stylesheet.

The css command provides subcommands to:
- install the library import and @theme block
- ensure only the import
- validate the structure of a stylesheet
- list its @import statements
- watch the theme file and re-install on change`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help() // nolint:errcheck
	},
}

var (
	installFlags      StylesheetFlags
	ensureImportFlags StylesheetFlags
	importsFormat     string
)

var cssInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Ensure the import and refresh the @theme block",
	Long: `Ensure the stylesheet imports the component library and carries the
library's current @theme block.

The import goes after the last @import, else the last @source, else the
last @plugin or @custom-variant, else at the top of the file. The first
@theme block is replaced with the theme file's contents, or the theme is
appended when the stylesheet has none. Running install twice changes
nothing the second time.

Examples:
  stylekit css install
  stylekit css install --dry-run
  stylekit css install --theme vendor/theme.css --backup`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall(cmd, &installFlags)
	},
}

var cssEnsureImportCmd = &cobra.Command{
	Use:   "ensure-import",
	Short: "Ensure only the import, leaving the theme alone",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ensureImportFlags.NoTheme = true
		return runInstall(cmd, &ensureImportFlags)
	},
}

var cssValidateCmd = &cobra.Command{
	Use:   "validate [stylesheet]",
	Short: "Report structural problems in a stylesheet",
	Long: `Check a stylesheet for problems the merge cannot fix on its own:

- the framework import ("tailwindcss") is not the first import
- the same target is imported twice
- there is more than one @theme block
- a @theme block is never closed

The command exits non-zero when there are findings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var cssImportsCmd = &cobra.Command{
	Use:   "imports [stylesheet]",
	Short: "List the @import statements of a stylesheet",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runImports,
}

func init() {
	rootCmd.AddCommand(cssCmd)
	cssCmd.AddCommand(cssInstallCmd, cssEnsureImportCmd, cssValidateCmd, cssImportsCmd)

	addStylesheetFlags(cssInstallCmd.Flags(), &installFlags, true)
	addStylesheetFlags(cssEnsureImportCmd.Flags(), &ensureImportFlags, false)

	cssValidateCmd.Flags().StringP("stylesheet", "s", "", "Stylesheet to check (default from stylesheet.path)")
	cssImportsCmd.Flags().StringP("stylesheet", "s", "", "Stylesheet to read (default from stylesheet.path)")
	cssImportsCmd.Flags().StringVarP(&importsFormat, "output", "o", "table", "Output format (table, json)")
}

func runInstall(cmd *cobra.Command, flags *StylesheetFlags) error {
	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	service := services.NewInstallService(cfg, logger)
	opts := service.DefaultOptions()
	if err := flags.apply(cmd.Flags(), &opts); err != nil {
		return err
	}

	report, err := service.Install(commandContext(cmd), opts)
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), report, flags.ShowDiff)
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	path := stylesheetArg(cmd, args, cfg.Stylesheet.Path)
	findings, err := services.NewInstallService(cfg, logger).Validate(commandContext(cmd), path)
	if err != nil && len(findings) == 0 {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderFindings(path, findings))
	if len(findings) > 0 {
		return fmt.Errorf("%d structural problem(s) in %s", len(findings), path)
	}
	return nil
}

func runImports(cmd *cobra.Command, args []string) error {
	if err := validateFormat(importsFormat, "table", "json"); err != nil {
		return err
	}

	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	path := stylesheetArg(cmd, args, cfg.Stylesheet.Path)
	refs, err := services.NewInstallService(cfg, logger).Imports(commandContext(cmd), path)
	if err != nil {
		return err
	}

	if importsFormat == "json" {
		type importJSON struct {
			Line       int    `json:"line"`
			Target     string `json:"target"`
			Normalized string `json:"normalized"`
			Form       string `json:"form"`
		}
		out := make([]importJSON, 0, len(refs))
		for _, ref := range refs {
			out = append(out, importJSON{
				Line:       ref.Line + 1,
				Target:     ref.Target,
				Normalized: ref.Normalized,
				Form:       ref.Form,
			})
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	fmt.Fprint(cmd.OutOrStdout(), renderImports(refs))
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
