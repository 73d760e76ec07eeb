package themed

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/claritypath/themedeck/internal/theme"
)

// Client talks to a running theme service.
type Client struct {
	conn   *grpc.ClientConn
	health healthpb.HealthClient
}

// NewClient connects to target without transport security. Extra options are
// appended after the defaults.
func NewClient(target string, opts ...grpc.DialOption) (*Client, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", target, err)
	}
	return &Client{conn: conn, health: healthpb.NewHealthClient(conn)}, nil
}

// Close releases the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Ping checks the health of the theme service.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil {
		return err
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("theme service is %s", resp.GetStatus())
	}
	return nil
}

// GetTheme returns the current theme when both ids are empty, otherwise the
// resolution of the requested pair.
func (c *Client) GetTheme(ctx context.Context, palette, style string) (theme.Theme, error) {
	var resp ThemeResponse
	err := c.call(ctx, MethodGetTheme, SelectionRequest{Palette: palette, Style: style}, &resp)
	return resp.Theme, err
}

// ListThemes returns every theme and the current theme id.
func (c *Client) ListThemes(ctx context.Context) (ThemesResponse, error) {
	var resp ThemesResponse
	err := c.call(ctx, MethodListThemes, struct{}{}, &resp)
	return resp, err
}

// SetSelection changes the remote selection. Empty ids keep the current value.
func (c *Client) SetSelection(ctx context.Context, palette, style string) (ThemeResponse, error) {
	var resp ThemeResponse
	err := c.call(ctx, MethodSetSelection, SelectionRequest{Palette: palette, Style: style}, &resp)
	return resp, err
}

// GetVariables returns the remote styling environment, rendered in format
// when format is not empty.
func (c *Client) GetVariables(ctx context.Context, format string) (VariablesResponse, error) {
	var resp VariablesResponse
	err := c.call(ctx, MethodGetVariables, VariablesRequest{Format: format}, &resp)
	return resp, err
}

func (c *Client) call(ctx context.Context, method string, in, out any) error {
	req, err := toStruct(in)
	if err != nil {
		return err
	}
	resp := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, method, req, resp); err != nil {
		return err
	}
	return fromStruct(resp, out)
}
