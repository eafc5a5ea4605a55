package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/stylekit/internal/config"
	"github.com/conneroisu/stylekit/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stylekit",
	Short: "Keep a stylesheet wired to a component library's import and theme",
	Long: `stylekit merges a component library into a Tailwind-style stylesheet.

It adds the library's @import after the existing imports (or @source,
@plugin and @custom-variant directives) and replaces the stylesheet's @theme
block with the library's theme file, leaving everything else untouched.

Quick Start:
  stylekit init --starter         Write .stylekit.yml and starter files
  stylekit css install            Ensure the import and refresh the theme
  stylekit css validate           Check the stylesheet structure
  stylekit css watch              Re-install on every theme change

Configuration is read from .stylekit.yml, STYLEKIT_* environment variables
and flags, in increasing order of precedence.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is "+config.FileName+", can also use STYLEKIT_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text, json, logfmt)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig wires viper to the config file and environment.
//
// The config file is, in order: the --config flag, STYLEKIT_CONFIG_FILE, or
// .stylekit.yml in the working directory. A missing default file is not an
// error; every value has a default.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv(config.EnvPrefix + "_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(strings.TrimSuffix(config.FileName, ".yml"))
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok && viper.ConfigFileUsed() != "" {
		fmt.Fprintf(os.Stderr, "Warning: could not read config file %s: %v\n", viper.ConfigFileUsed(), err)
	}
}

// loadRuntime loads the configuration and builds the logger for a command.
func loadRuntime(cmd *cobra.Command) (*config.Config, logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})

	return cfg, logger, nil
}
