package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/stylekit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the stylekit configuration",
	Long: `Inspect the configuration resolved from .stylekit.yml, STYLEKIT_*
environment variables and defaults.

Examples:
  stylekit config validate           # Check paths and values
  stylekit config validate --strict  # Treat warnings as errors
  stylekit config show --format json # Print the resolved configuration`,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Long: `Validate the configuration values and check them against the file system.

Errors are values that cannot work, such as a theme file that does not exist.
Warnings point at things install can cope with, such as a stylesheet that
will be created on the first run.`,
	Args: cobra.NoArgs,
	RunE: runConfigValidate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var (
	configStrict bool
	configFormat string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configValidateCmd, configShowCmd)

	configValidateCmd.Flags().BoolVar(&configStrict, "strict", false, "Treat warnings as errors")
	configShowCmd.Flags().StringVar(&configFormat, "format", "yaml", "Output format (yaml, json)")
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	validation := config.ValidateConfigWithDetails(cfg)

	if validation.Valid && !validation.HasWarnings() {
		fmt.Fprintln(out, successStyle.Render("✓")+" configuration is valid")
		return nil
	}

	fmt.Fprint(out, validation.String())

	if validation.HasErrors() {
		return fmt.Errorf("configuration validation failed with %d errors", len(validation.Errors))
	}
	if configStrict {
		return fmt.Errorf("configuration validation failed in strict mode with %d warnings", len(validation.Warnings))
	}

	fmt.Fprintln(out, warningStyle.Render("~")+fmt.Sprintf(" configuration is valid with %d warnings", len(validation.Warnings)))
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if err := validateFormat(configFormat, "yaml", "json"); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	if configFormat == "json" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(cfg)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
