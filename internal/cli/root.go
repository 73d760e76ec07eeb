// Package cli implements the themedeck command line.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claritypath/themedeck/internal/config"
	"github.com/claritypath/themedeck/internal/logging"
)

var (
	cfgFile        string
	logLevel       string
	logFormat      string
	jsonOutput     bool
	jsonlOutput    bool
	noColor        bool
	noProgress     bool
	nonInteractive bool

	appConfig *config.Config
)

// Build metadata, set from main.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "themedeck",
	Short: "Browse and export the built-in design themes",
	Long: `themedeck resolves palette and style pairs into themes, previews them in a
terminal dashboard and exports them as CSS custom properties.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Close()
	},
}

func init() {
	rootCmd.PersistentPreRunE = initConfig
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/themedeck/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "log format (console, json)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or start the TUI")
}

// SetVersion records build metadata reported by `themedeck version`.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		date = d
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initConfig(cmd *cobra.Command, args []string) error {
	if jsonOutput && jsonlOutput {
		return errors.New("--json and --jsonl are mutually exclusive")
	}

	v := config.New()
	flags := rootCmd.PersistentFlags()
	if err := v.BindPFlag("logging.level", flags.Lookup("log-level")); err != nil {
		return err
	}
	if err := v.BindPFlag("logging.format", flags.Lookup("log-format")); err != nil {
		return err
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}

	if err := logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	}); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	appConfig = cfg
	logger := logging.Component("cli")
	logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("config", cfg.Source).
		Msg("configuration loaded")
	return nil
}

// GetConfig returns the configuration loaded for the running command.
func GetConfig() *config.Config {
	return appConfig
}
