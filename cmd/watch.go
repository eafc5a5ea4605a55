package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/stylekit/internal/services"
	"github.com/conneroisu/stylekit/internal/watcher"
)

var (
	watchFlags    StylesheetFlags
	watchDebounce time.Duration
)

var cssWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-install whenever the theme file or stylesheet changes",
	Long: `Run install once, then watch the theme file and the stylesheet and run
it again after every change. Changes are debounced so an editor saving
several times in a row triggers a single run. Because install is
idempotent, the write it performs on the stylesheet settles after one
extra no-op run.

Examples:
  stylekit css watch
  stylekit css watch --debounce 500ms`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	cssCmd.AddCommand(cssWatchCmd)

	addStylesheetFlags(cssWatchCmd.Flags(), &watchFlags, true)
	cssWatchCmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "Delay before re-installing after a change (default from watch.debounce)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	service := services.NewInstallService(cfg, logger)
	opts := service.DefaultOptions()
	if err := watchFlags.apply(cmd.Flags(), &opts); err != nil {
		return err
	}

	delay := cfg.Watch.Debounce
	if cmd.Flags().Changed("debounce") {
		delay = watchDebounce
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	run := func(ctx context.Context) error {
		report, err := service.Install(ctx, opts)
		if err != nil {
			return err
		}
		printReport(out, report, watchFlags.ShowDiff)
		return nil
	}

	if err := run(ctx); err != nil {
		logger.Error(ctx, err, "Initial install failed")
	}

	fw, err := watcher.NewFileWatcher(delay, logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Stop() // nolint:errcheck

	if err := fw.WatchFiles(opts.StylesheetPath, opts.ThemeFile); err != nil {
		return err
	}

	fw.AddHandler(func(ctx context.Context, events []watcher.ChangeEvent) error {
		for _, event := range events {
			logger.Debug(ctx, "Change detected", "path", event.Path, "type", event.Type.String())
		}
		return run(ctx)
	})

	if err := fw.Start(ctx); err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}

	fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("Watching %s (press Ctrl+C to stop)", opts.StylesheetPath)))
	<-ctx.Done()
	fmt.Fprintln(out, mutedStyle.Render("Stopped watching"))

	return nil
}
