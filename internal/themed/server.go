// Package themed serves the theme store over gRPC.
package themed

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/claritypath/themedeck/internal/cssvars"
	"github.com/claritypath/themedeck/internal/store"
	"github.com/claritypath/themedeck/internal/theme"
)

// ThemeResponse is returned by GetTheme and SetSelection.
type ThemeResponse struct {
	Theme   theme.Theme `json:"theme"`
	Changed bool        `json:"changed,omitempty"`
}

// ThemesResponse is returned by ListThemes.
type ThemesResponse struct {
	Current string        `json:"current"`
	Themes  []theme.Theme `json:"themes"`
}

// VariablesResponse is returned by GetVariables.
type VariablesResponse struct {
	Theme     string        `json:"theme"`
	Variables []cssvars.Var `json:"variables"`
	Rendered  string        `json:"rendered,omitempty"`
}

// Server implements ThemeServiceServer over a store and its styling environment.
type Server struct {
	logger    zerolog.Logger
	store     *store.Store
	env       *cssvars.Environment
	startedAt time.Time
	version   string
}

// ServerOption configures the Server.
type ServerOption func(*Server)

// WithVersion sets the reported version.
func WithVersion(version string) ServerOption {
	return func(s *Server) {
		s.version = version
	}
}

// NewServer creates a service over st. env should be the environment a
// cssvars.Sink attached to st writes into.
func NewServer(st *store.Store, env *cssvars.Environment, logger zerolog.Logger, opts ...ServerOption) *Server {
	s := &Server{
		logger:    logger,
		store:     st,
		env:       env,
		startedAt: time.Now(),
		version:   "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetTheme returns the current theme, or resolves the requested pair without
// changing the selection. A missing field takes the current value.
func (s *Server) GetTheme(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in SelectionRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	current := s.store.Theme()
	if in.Palette == "" && in.Style == "" {
		return encode(ThemeResponse{Theme: current})
	}

	paletteID, styleID := s.fill(in)
	t, err := theme.Resolve(paletteID, styleID)
	if err != nil {
		return nil, toStatus(err)
	}
	return encode(ThemeResponse{Theme: t})
}

// ListThemes returns every combination in registry order.
func (s *Server) ListThemes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return encode(ThemesResponse{
		Current: s.store.Theme().ID,
		Themes:  s.store.Themes(),
	})
}

// SetSelection changes the palette, the style, or both in one atomic update.
func (s *Server) SetSelection(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in SelectionRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if strings.TrimSpace(in.Palette) == "" && strings.TrimSpace(in.Style) == "" {
		return nil, status.Error(codes.InvalidArgument, "palette or style is required")
	}

	before, after, err := s.store.Swap(in.merge)
	if err != nil {
		s.logger.Warn().Err(err).Str("palette", in.Palette).Str("style", in.Style).Msg("rejected selection")
		return nil, toStatus(err)
	}

	changed := after != before
	if changed {
		s.logger.Info().Str("previous", before.ID).Str("current", after.ID).Msg("selection changed")
	}
	return encode(ThemeResponse{Theme: after, Changed: changed})
}

// GetVariables returns the styling environment, optionally rendered.
func (s *Server) GetVariables(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in VariablesRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	resp := VariablesResponse{
		Theme:     s.store.Theme().ID,
		Variables: s.env.Vars(),
	}
	if in.Format != "" {
		var b strings.Builder
		err := cssvars.Render(&b, resp.Variables, cssvars.RenderOptions{
			Format:   in.Format,
			Selector: in.Selector,
			Comment:  resp.Theme,
		})
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		resp.Rendered = b.String()
	}
	return encode(resp)
}

func (s *Server) fill(in SelectionRequest) (theme.PaletteID, theme.StyleID) {
	sel := in.merge(s.store.Selection())
	return sel.Palette, sel.Style
}

// merge overlays the non-empty request fields on sel.
func (in SelectionRequest) merge(sel store.Selection) store.Selection {
	if p := strings.TrimSpace(in.Palette); p != "" {
		sel.Palette = theme.PaletteID(p)
	}
	if st := strings.TrimSpace(in.Style); st != "" {
		sel.Style = theme.StyleID(st)
	}
	return sel
}

func encode(v any) (*structpb.Struct, error) {
	out, err := toStruct(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, theme.ErrUnknownPalette), errors.Is(err, theme.ErrUnknownStyle):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
