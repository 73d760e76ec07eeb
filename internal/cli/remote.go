package cli

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/claritypath/themedeck/internal/config"
	"github.com/claritypath/themedeck/internal/themed"
)

var (
	remoteAddr    string
	remoteTimeout time.Duration
	remoteFormat  string
	remotePalette string
	remoteStyle   string
)

func init() {
	rootCmd.AddCommand(remoteCmd)
	remoteCmd.AddCommand(remoteGetCmd)
	remoteCmd.AddCommand(remoteListCmd)
	remoteCmd.AddCommand(remoteSetCmd)
	remoteCmd.AddCommand(remoteVarsCmd)

	remoteCmd.PersistentFlags().StringVar(&remoteAddr, "addr", "", "theme service address (default daemon.host:daemon.port)")
	remoteCmd.PersistentFlags().DurationVar(&remoteTimeout, "timeout", 5*time.Second, "request timeout")

	remoteSetCmd.Flags().StringVar(&remotePalette, "palette", "", "palette to select")
	remoteSetCmd.Flags().StringVar(&remoteStyle, "style", "", "style to select")

	remoteVarsCmd.Flags().StringVarP(&remoteFormat, "format", "f", "css", "output format (css, json, yaml, env)")
}

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Talk to a running theme service",
}

var remoteGetCmd = &cobra.Command{
	Use:   "get [palette] [style]",
	Short: "Show the remote theme, or resolve a pair remotely",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var palette, style string
		if len(args) > 0 {
			palette = args[0]
		}
		if len(args) > 1 {
			style = args[1]
		}

		return withRemote(cmd, func(ctx context.Context, client *themed.Client) error {
			t, err := client.GetTheme(ctx, palette, style)
			if err != nil {
				return err
			}
			if IsJSONOutput() || IsJSONLOutput() {
				return WriteOutput(cmd.OutOrStdout(), t)
			}
			return writeThemeDetails(cmd, t)
		})
	},
}

var remoteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the themes offered by the service",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRemote(cmd, func(ctx context.Context, client *themed.Client) error {
			resp, err := client.ListThemes(ctx)
			if err != nil {
				return err
			}
			if IsJSONOutput() || IsJSONLOutput() {
				return WriteOutput(cmd.OutOrStdout(), resp.Themes)
			}
			rows := make([][]string, 0, len(resp.Themes))
			for _, t := range resp.Themes {
				rows = append(rows, []string{currentMarker(t.ID == resp.Current), t.ID, t.Name})
			}
			return writeTable(cmd.OutOrStdout(), []string{"", "ID", "NAME"}, rows)
		})
	},
}

var remoteSetCmd = &cobra.Command{
	Use:   "set [palette] [style]",
	Short: "Change the remote selection",
	Long: `Change the remote selection. Either positional arguments or --palette and
--style may be used; an omitted id keeps the service's current value.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		palette, style := remotePalette, remoteStyle
		if len(args) > 0 {
			palette = args[0]
		}
		if len(args) > 1 {
			style = args[1]
		}
		if palette == "" && style == "" {
			return fmt.Errorf("a palette or a style is required")
		}

		return withRemote(cmd, func(ctx context.Context, client *themed.Client) error {
			resp, err := client.SetSelection(ctx, palette, style)
			if err != nil {
				return err
			}
			if IsJSONOutput() || IsJSONLOutput() {
				return WriteOutput(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", formatChanged(resp.Changed), resp.Theme.ID)
			return nil
		})
	},
}

var remoteVarsCmd = &cobra.Command{
	Use:   "vars",
	Short: "Print the remote styling environment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRemote(cmd, func(ctx context.Context, client *themed.Client) error {
			format := remoteFormat
			if IsJSONOutput() || IsJSONLOutput() {
				format = ""
			}
			resp, err := client.GetVariables(ctx, format)
			if err != nil {
				return err
			}
			if format == "" {
				return WriteOutput(cmd.OutOrStdout(), resp.Variables)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), resp.Rendered)
			return err
		})
	},
}

func withRemote(cmd *cobra.Command, fn func(ctx context.Context, client *themed.Client) error) error {
	addr := remoteTarget()
	client, err := themed.NewClient(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), remoteTimeout)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		return &PreflightError{
			Message:  fmt.Sprintf("theme service at %s is not reachable: %v", addr, err),
			Hint:     "Start the service first or pass --addr",
			NextStep: "themedeck serve",
		}
	}
	return fn(ctx, client)
}

func remoteTarget() string {
	if remoteAddr != "" {
		return remoteAddr
	}
	host, port := "127.0.0.1", 0
	if cfg := GetConfig(); cfg != nil {
		host, port = cfg.Daemon.Host, cfg.Daemon.Port
	}
	if port == 0 {
		port = config.DefaultPort
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}
