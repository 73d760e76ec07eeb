package cli

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/claritypath/themedeck/internal/logging"
	"github.com/claritypath/themedeck/internal/store"
	"github.com/claritypath/themedeck/internal/themed"
)

var (
	serveHost string
	servePort int
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (default daemon.host)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default daemon.port)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gRPC theme service",
	Long: `Run the theme service. Clients read and change the selection with
"themedeck remote"; every change is applied to the same store, so the styling
environment and the journal stay consistent.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		ctx, session, err := openSession(ctx, "grpc")
		if err != nil {
			return err
		}
		defer func() {
			if err := session.Close(context.WithoutCancel(ctx)); err != nil {
				session.logger.Warn().Err(err).Msg("failed to close session")
			}
		}()

		opts := themed.Options{
			Host:    session.cfg.Daemon.Host,
			Port:    session.cfg.Daemon.Port,
			Version: version,
		}
		if serveHost != "" {
			opts.Host = serveHost
		}
		if servePort != 0 {
			opts.Port = servePort
		}

		daemon, err := themed.New(store.MustFromContext(ctx), session.env, logging.Component("themed"), opts)
		if err != nil {
			return err
		}

		step := startProgress(fmt.Sprintf("Listening on %s", daemon.Addr()))
		listener, err := net.Listen("tcp", daemon.Addr())
		if err != nil {
			step.Fail(err)
			return &PreflightError{
				Message:  fmt.Sprintf("cannot listen on %s: %v", daemon.Addr(), err),
				Hint:     "Another themedeck daemon may already be running",
				NextStep: "themedeck serve --port <free port>",
			}
		}
		step.Done()

		return daemon.Serve(ctx, listener)
	},
}
