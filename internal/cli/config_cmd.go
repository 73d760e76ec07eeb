package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claritypath/themedeck/internal/config"
)

var initForce bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the themedeck configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		step := startProgress("Writing config")
		path, err := config.WriteExample(initForce)
		if err != nil {
			step.Fail(err)
			return err
		}
		step.Done()

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), map[string]string{"path": path})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			return fmt.Errorf("configuration not loaded")
		}
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), cfg)
		}

		source := cfg.Source
		if source == "" {
			source = "(defaults)"
		}
		return writeTable(cmd.OutOrStdout(), []string{"KEY", "VALUE"}, [][]string{
			{"source", source},
			{"theme.palette", cfg.Theme.Palette},
			{"theme.style", cfg.Theme.Style},
			{"logging.level", cfg.Logging.Level},
			{"logging.format", cfg.Logging.Format},
			{"journal.enabled", fmt.Sprint(cfg.Journal.Enabled)},
			{"journal.path", cfg.Journal.Path},
			{"daemon", fmt.Sprintf("%s:%d", cfg.Daemon.Host, cfg.Daemon.Port)},
			{"tui.gallery", fmt.Sprint(cfg.TUI.Gallery)},
			{"tui.side_panel", fmt.Sprint(cfg.TUI.SidePanel)},
		})
	},
}
