package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/claritypath/themedeck/internal/logging"
	"github.com/claritypath/themedeck/internal/store"
	"github.com/claritypath/themedeck/internal/tui"
)

var (
	uiGallery   bool
	uiNoSidebar bool
)

func init() {
	rootCmd.AddCommand(uiCmd)

	uiCmd.Flags().BoolVar(&uiGallery, "gallery", false, "start in the gallery view")
	uiCmd.Flags().BoolVar(&uiNoSidebar, "no-side-panel", false, "hide the palette/style side panel")
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the theme preview TUI",
	Long:  "Launch the terminal dashboard that previews every widget in the current theme.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func runTUI(cmd *cobra.Command) error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "TUI requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use the list/show/css commands",
			NextStep: "themedeck list",
		}
	}

	cfg := GetConfig()
	if cfg != nil && cfg.Logging.File == "" {
		logging.Discard()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, session, err := openSession(ctx, "tui")
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(context.WithoutCancel(ctx)); err != nil {
			session.logger.Warn().Err(err).Msg("failed to close session")
		}
	}()

	gallery := uiGallery
	sidePanel := !uiNoSidebar
	if cfg != nil {
		gallery = gallery || cfg.TUI.Gallery
		sidePanel = sidePanel && cfg.TUI.SidePanel
	}

	return tui.Run(ctx, tui.Options{
		Store:     store.MustFromContext(ctx),
		Env:       session.env,
		Gallery:   gallery,
		SidePanel: sidePanel,
		Logger:    logging.Component("tui"),
	})
}
