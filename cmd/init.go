package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/stylekit/internal/services"
)

var (
	initForce   bool
	initStarter bool
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Write a .stylekit.yml with default settings",
	Long: `Write a .stylekit.yml with the default stylesheet, import target and
theme file. With --starter, also create a starter stylesheet and theme file
at those locations when they do not exist yet.

Examples:
  stylekit init
  stylekit init --starter
  stylekit init ./web --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing configuration file")
	initCmd.Flags().BoolVar(&initStarter, "starter", false, "Create a starter stylesheet and theme file")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	created, err := services.NewInitService().InitProject(services.InitOptions{
		ProjectDir: dir,
		Force:      initForce,
		Starter:    initStarter,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, path := range created {
		fmt.Fprintln(out, successStyle.Render("✓")+" created "+path)
	}
	fmt.Fprintln(out, mutedStyle.Render("Run 'stylekit css install' to merge the theme into your stylesheet."))

	return nil
}
