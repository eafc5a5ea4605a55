package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/stylekit/internal/version"
)

var (
	versionFormat   string
	versionShort    bool
	versionDetailed bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show the version, commit and build details of the stylekit binary.

Examples:
  stylekit version
  stylekit version --short
  stylekit version --output json`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "output", "o", "text", "Output format (text, json)")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version")
	versionCmd.Flags().BoolVar(&versionDetailed, "detailed", false, "Print every build detail")
}

func runVersion(cmd *cobra.Command, args []string) error {
	if err := validateFormat(versionFormat, "text", "json"); err != nil {
		return err
	}

	info := version.GetBuildInfo()
	out := cmd.OutOrStdout()

	if versionFormat == "json" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(info)
	}

	switch {
	case versionShort:
		fmt.Fprintln(out, info.Short())
	case versionDetailed:
		fmt.Fprintln(out, info.Detailed())
	default:
		line := "stylekit " + info.Short()
		if !info.IsRelease() {
			line += mutedStyle.Render(" (development build)")
		}
		fmt.Fprintln(out, line)
	}

	return nil
}
