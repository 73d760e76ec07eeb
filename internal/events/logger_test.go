package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claritypath/themedeck/internal/models"
	"github.com/claritypath/themedeck/internal/store"
	"github.com/claritypath/themedeck/internal/theme"
)

type fakeRepo struct {
	events []*models.Event
	err    error
}

func (r *fakeRepo) Create(ctx context.Context, event *models.Event) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func (r *fakeRepo) last() *models.Event {
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

func TestLogThemeChanged(t *testing.T) {
	repo := &fakeRepo{}
	prev := theme.Default()
	next, err := theme.Resolve(theme.PaletteModernWellness, theme.StyleCleanCard)
	require.NoError(t, err)

	change := store.Change{
		Previous:  prev,
		Current:   next,
		Selection: store.Selection{Palette: theme.PaletteModernWellness, Style: theme.StyleCleanCard},
	}
	require.NoError(t, LogThemeChanged(context.Background(), repo, "session-1", change, "cli"))

	event := repo.last()
	require.NotNil(t, event)
	assert.Equal(t, models.EventTypeThemeChanged, event.Type)
	assert.Equal(t, models.EntityTypeSelection, event.EntityType)
	assert.Equal(t, "session-1", event.EntityID)

	var payload models.ThemeChangedPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, prev.ID, payload.Previous)
	assert.Equal(t, next.ID, payload.Current)
	assert.Equal(t, "modern-wellness", payload.Palette)
	assert.Equal(t, "cli", payload.Source)
}

func TestLogThemeChangedRequiresArguments(t *testing.T) {
	assert.Error(t, LogThemeChanged(context.Background(), nil, "s", store.Change{}, ""))
	assert.Error(t, LogThemeChanged(context.Background(), &fakeRepo{}, "", store.Change{}, ""))
}

func TestLogSessionRejectsOtherTypes(t *testing.T) {
	err := LogSession(context.Background(), &fakeRepo{}, models.EventTypeThemeChanged, "s", "tui", "x")
	assert.Error(t, err)
}

func TestLogThemeFallback(t *testing.T) {
	repo := &fakeRepo{}
	require.NoError(t, LogThemeFallback(context.Background(), repo, "s", "neon", "clean-card", theme.Default().ID))

	var payload models.ThemeFallbackPayload
	require.NoError(t, json.Unmarshal(repo.last().Payload, &payload))
	assert.Equal(t, "neon", payload.RequestedPalette)
	assert.Equal(t, theme.Default().ID, payload.Fallback)
}

func TestJournalRecordsStoreChanges(t *testing.T) {
	repo := &fakeRepo{}
	s := store.New(store.WithLogger(zerolog.Nop()))
	j := NewJournal(repo, "tui", zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, j.Attach(ctx, s))
	require.NoError(t, s.SetPalette(theme.PaletteWarmEarth))
	require.NoError(t, s.SetStyle(theme.StyleMinimalistClinical))
	require.NoError(t, j.Detach(ctx, s))

	require.Len(t, repo.events, 4)
	assert.Equal(t, models.EventTypeSessionStarted, repo.events[0].Type)
	assert.Equal(t, models.EventTypeThemeChanged, repo.events[1].Type)
	assert.Equal(t, models.EventTypeThemeChanged, repo.events[2].Type)
	assert.Equal(t, models.EventTypeSessionEnded, repo.events[3].Type)
	for _, event := range repo.events {
		assert.Equal(t, j.SessionID(), event.EntityID)
	}

	var payload models.ThemeChangedPayload
	require.NoError(t, json.Unmarshal(repo.events[2].Payload, &payload))
	assert.Equal(t, "warm-earth-minimalist-clinical", payload.Current)
}

func TestJournalFailuresDoNotBlockChanges(t *testing.T) {
	repo := &fakeRepo{}
	s := store.New(store.WithLogger(zerolog.Nop()))
	j := NewJournal(repo, "cli", zerolog.Nop())
	require.NoError(t, s.Subscribe(JournalSubscriberID, j))

	repo.err = errors.New("disk full")
	require.NoError(t, s.SetPalette(theme.PaletteModernWellness))
	assert.Equal(t, theme.PaletteModernWellness, s.Palette())
	assert.Empty(t, repo.events)
}
