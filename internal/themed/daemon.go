package themed

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/claritypath/themedeck/internal/config"
	"github.com/claritypath/themedeck/internal/cssvars"
	"github.com/claritypath/themedeck/internal/store"
)

// Options configure the daemon runtime.
type Options struct {
	Host    string
	Port    int
	Version string

	// RateLimiter defaults to NewRateLimiter().
	RateLimiter *RateLimiter
}

// Daemon hosts the theme service and the standard health service.
type Daemon struct {
	logger zerolog.Logger
	opts   Options

	server     *Server
	health     *health.Server
	grpcServer *grpc.Server
}

// New constructs a daemon serving st. env must be kept current by a
// cssvars.Sink attached to st.
func New(st *store.Store, env *cssvars.Environment, logger zerolog.Logger, opts Options) (*Daemon, error) {
	if st == nil {
		return nil, errors.New("store is required")
	}
	if env == nil {
		return nil, errors.New("styling environment is required")
	}
	if opts.Host == "" {
		opts.Host = "127.0.0.1"
	}
	if opts.Port == 0 {
		opts.Port = config.DefaultPort
	}
	if opts.RateLimiter == nil {
		opts.RateLimiter = NewRateLimiter()
	}

	server := NewServer(st, env, logger, WithVersion(opts.Version))

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		opts.RateLimiter.UnaryServerInterceptor(),
		loggingInterceptor(logger),
	))
	RegisterThemeServiceServer(grpcServer, server)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)

	return &Daemon{
		logger:     logger,
		opts:       opts,
		server:     server,
		health:     hs,
		grpcServer: grpcServer,
	}, nil
}

// Run listens on the configured address and serves until ctx is canceled.
func (d *Daemon) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	listener, err := net.Listen("tcp", d.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", d.Addr(), err)
	}
	return d.Serve(ctx, listener)
}

// Serve serves on lis until ctx is canceled.
func (d *Daemon) Serve(ctx context.Context, lis net.Listener) error {
	d.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	d.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	d.logger.Info().
		Str("bind", lis.Addr().String()).
		Str("version", d.opts.Version).
		Msg("theme service starting")

	errCh := make(chan error, 1)
	go func() {
		if err := d.grpcServer.Serve(lis); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		d.logger.Info().Msg("theme service shutting down")
		d.health.Shutdown()
		d.grpcServer.GracefulStop()
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("gRPC server error: %w", err)
		}
	}

	d.logRateStats()
	d.logger.Info().
		Dur("uptime", time.Since(d.server.startedAt)).
		Msg("theme service stopped")
	return nil
}

// logRateStats reports limiter usage for every method that saw traffic.
func (d *Daemon) logRateStats() {
	for _, st := range d.opts.RateLimiter.Stats() {
		if st.Allowed == 0 && st.Denied == 0 {
			continue
		}
		d.logger.Info().
			Str("method", st.Method).
			Int64("allowed", st.Allowed).
			Int64("denied", st.Denied).
			Float64("available", st.Available).
			Msg("rate limit usage")
	}
}

// Addr is the host:port the daemon listens on.
func (d *Daemon) Addr() string {
	return net.JoinHostPort(d.opts.Host, strconv.Itoa(d.opts.Port))
}

// Server returns the service implementation.
func (d *Daemon) Server() *Server {
	return d.server
}

func loggingInterceptor(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		ev := logger.Debug()
		if err != nil {
			ev = logger.Warn().Err(err)
		}
		ev.Str("method", info.FullMethod).Dur("took", time.Since(start)).Msg("rpc")
		return resp, err
	}
}
