package themed

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/claritypath/themedeck/internal/cssvars"
	"github.com/claritypath/themedeck/internal/store"
	"github.com/claritypath/themedeck/internal/theme"
)

func newTestServer(t *testing.T) (*Server, *store.Store, *cssvars.Environment) {
	t.Helper()

	st := store.New(store.WithLogger(zerolog.Nop()))
	sink := cssvars.NewSink(nil, zerolog.Nop())
	require.NoError(t, sink.Attach(st))
	return NewServer(st, sink.Environment(), zerolog.Nop(), WithVersion("test")), st, sink.Environment()
}

func mustStruct(t *testing.T, fields map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	return s
}

func TestServerGetThemeCurrent(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp, err := server.GetTheme(context.Background(), &structpb.Struct{})
	require.NoError(t, err)

	var out ThemeResponse
	require.NoError(t, fromStruct(resp, &out))
	assert.Equal(t, theme.Default(), out.Theme)
}

func TestServerGetThemeResolvesWithoutChangingSelection(t *testing.T) {
	server, st, _ := newTestServer(t)

	resp, err := server.GetTheme(context.Background(), mustStruct(t, map[string]any{"style": "soft-neumorphic"}))
	require.NoError(t, err)

	var out ThemeResponse
	require.NoError(t, fromStruct(resp, &out))
	assert.Equal(t, "calm-professional-soft-neumorphic", out.Theme.ID)
	assert.Equal(t, theme.Default().ID, st.Theme().ID)
}

func TestServerListThemes(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp, err := server.ListThemes(context.Background(), &structpb.Struct{})
	require.NoError(t, err)

	var out ThemesResponse
	require.NoError(t, fromStruct(resp, &out))
	assert.Len(t, out.Themes, 9)
	assert.Equal(t, theme.Default().ID, out.Current)
	assert.Equal(t, theme.DefaultRegistry().All(), out.Themes)
}

func TestServerSetSelection(t *testing.T) {
	server, st, env := newTestServer(t)
	ctx := context.Background()

	resp, err := server.SetSelection(ctx, mustStruct(t, map[string]any{"palette": "modern-wellness"}))
	require.NoError(t, err)

	var out ThemeResponse
	require.NoError(t, fromStruct(resp, &out))
	assert.True(t, out.Changed)
	assert.Equal(t, "modern-wellness-clean-card", out.Theme.ID)
	assert.Equal(t, theme.PaletteModernWellness, st.Palette())

	primary, _ := env.Get("--color-primary")
	assert.Equal(t, "#4F46E5", primary)

	resp, err = server.SetSelection(ctx, mustStruct(t, map[string]any{"palette": "modern-wellness"}))
	require.NoError(t, err)
	out = ThemeResponse{}
	require.NoError(t, fromStruct(resp, &out))
	assert.False(t, out.Changed)
}

func TestServerSetSelectionErrors(t *testing.T) {
	server, st, _ := newTestServer(t)

	tests := []struct {
		name   string
		fields map[string]any
	}{
		{name: "empty", fields: map[string]any{}},
		{name: "unknown palette", fields: map[string]any{"palette": "neon"}},
		{name: "unknown style", fields: map[string]any{"style": "brutalist"}},
		{name: "one bad id in pair", fields: map[string]any{"palette": "warm-earth", "style": "brutalist"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := server.SetSelection(context.Background(), mustStruct(t, tt.fields))
			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
			assert.Equal(t, theme.Default().ID, st.Theme().ID)
		})
	}
}

func TestServerGetVariables(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp, err := server.GetVariables(context.Background(), mustStruct(t, map[string]any{"format": "css"}))
	require.NoError(t, err)

	var out VariablesResponse
	require.NoError(t, fromStruct(resp, &out))
	assert.Len(t, out.Variables, len(cssvars.Keys()))
	assert.Equal(t, theme.Default().ID, out.Theme)
	assert.Contains(t, out.Rendered, ":root {")
	assert.Contains(t, out.Rendered, "--color-primary: #0D7377;")

	_, err = server.GetVariables(context.Background(), mustStruct(t, map[string]any{"format": "toml"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServerConcurrentPartialSelectionsMerge(t *testing.T) {
	server, st, _ := newTestServer(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	require.NoError(t, st.Subscribe("slow", store.SubscriberFunc(func(store.Change) {
		once.Do(func() {
			close(entered)
			<-release
		})
	})))

	inFlight := make(chan error, 1)
	go func() {
		inFlight <- st.SetTheme(theme.PaletteModernWellness, theme.StyleSoftNeumorphic)
	}()
	<-entered

	var wg sync.WaitGroup
	for _, fields := range []map[string]any{
		{"palette": "warm-earth"},
		{"style": "minimalist-clinical"},
	} {
		req := mustStruct(t, fields)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := server.SetSelection(context.Background(), req)
			assert.NoError(t, err)
		}()
	}

	// Let both requests queue up behind the in-flight change.
	time.Sleep(50 * time.Millisecond)
	close(release)

	require.NoError(t, <-inFlight)
	wg.Wait()

	assert.Equal(t, "warm-earth-minimalist-clinical", st.Theme().ID)
	assert.Equal(t, store.Selection{Palette: theme.PaletteWarmEarth, Style: theme.StyleMinimalistClinical}, st.Selection())
}

func TestServerSetSelectionReportsChangeFromSwap(t *testing.T) {
	server, st, _ := newTestServer(t)
	require.NoError(t, st.SetTheme(theme.PaletteWarmEarth, theme.StyleCleanCard))

	resp, err := server.SetSelection(context.Background(), mustStruct(t, map[string]any{"palette": "warm-earth"}))
	require.NoError(t, err)
	var out ThemeResponse
	require.NoError(t, fromStruct(resp, &out))
	assert.False(t, out.Changed)

	resp, err = server.SetSelection(context.Background(), mustStruct(t, map[string]any{"style": "soft-neumorphic"}))
	require.NoError(t, err)
	require.NoError(t, fromStruct(resp, &out))
	assert.True(t, out.Changed)
	assert.Equal(t, "warm-earth-soft-neumorphic", out.Theme.ID)
}
