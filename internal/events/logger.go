// Package events writes selection journal entries.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/claritypath/themedeck/internal/models"
	"github.com/claritypath/themedeck/internal/store"
)

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

// LogThemeChanged records a theme transition for a session.
func LogThemeChanged(ctx context.Context, repo Repository, sessionID string, change store.Change, source string) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}

	payload, err := json.Marshal(models.ThemeChangedPayload{
		Previous: change.Previous.ID,
		Current:  change.Current.ID,
		Palette:  string(change.Selection.Palette),
		Style:    string(change.Selection.Style),
		Source:   source,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal theme payload: %w", err)
	}

	return repo.Create(ctx, &models.Event{
		Timestamp:  change.Timestamp,
		Type:       models.EventTypeThemeChanged,
		EntityType: models.EntityTypeSelection,
		EntityID:   sessionID,
		Payload:    payload,
	})
}

// LogThemeFallback records that a requested selection was replaced by the default theme.
func LogThemeFallback(ctx context.Context, repo Repository, sessionID, palette, style, fallback string) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}

	payload, err := json.Marshal(models.ThemeFallbackPayload{
		RequestedPalette: palette,
		RequestedStyle:   style,
		Fallback:         fallback,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal fallback payload: %w", err)
	}

	return repo.Create(ctx, &models.Event{
		Type:       models.EventTypeThemeFallback,
		EntityType: models.EntityTypeSelection,
		EntityID:   sessionID,
		Payload:    payload,
	})
}

// LogSession records a session.started or session.ended event.
func LogSession(ctx context.Context, repo Repository, eventType models.EventType, sessionID, surface, themeID string) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if eventType != models.EventTypeSessionStarted && eventType != models.EventTypeSessionEnded {
		return fmt.Errorf("not a session event: %s", eventType)
	}

	payload, err := json.Marshal(models.SessionPayload{Surface: surface, Theme: themeID})
	if err != nil {
		return fmt.Errorf("failed to marshal session payload: %w", err)
	}

	return repo.Create(ctx, &models.Event{
		Type:       eventType,
		EntityType: models.EntityTypeSession,
		EntityID:   sessionID,
		Payload:    payload,
	})
}

// JournalSubscriberID is the id the journal registers with the store.
const JournalSubscriberID = "journal"

// Journal is a store subscriber that appends every theme change to the repository.
type Journal struct {
	repo      Repository
	sessionID string
	surface   string
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewJournal creates a journal with a fresh session id. surface names the
// program writing the entries (tui, cli, grpc).
func NewJournal(repo Repository, surface string, logger zerolog.Logger) *Journal {
	return &Journal{
		repo:      repo,
		sessionID: uuid.NewString(),
		surface:   surface,
		timeout:   2 * time.Second,
		logger:    logger,
	}
}

// SessionID returns the entity id used for this journal's entries.
func (j *Journal) SessionID() string {
	return j.sessionID
}

// Attach logs session.started and subscribes to s.
func (j *Journal) Attach(ctx context.Context, s *store.Store) error {
	if err := LogSession(ctx, j.repo, models.EventTypeSessionStarted, j.sessionID, j.surface, s.Theme().ID); err != nil {
		return err
	}
	return s.Subscribe(JournalSubscriberID, j)
}

// Detach unsubscribes from s and logs session.ended.
func (j *Journal) Detach(ctx context.Context, s *store.Store) error {
	if err := s.Unsubscribe(JournalSubscriberID); err != nil {
		return err
	}
	return LogSession(ctx, j.repo, models.EventTypeSessionEnded, j.sessionID, j.surface, s.Theme().ID)
}

// OnThemeChange implements store.Subscriber. Write failures are logged, never
// propagated: the journal must not block a theme change.
func (j *Journal) OnThemeChange(change store.Change) {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := LogThemeChanged(ctx, j.repo, j.sessionID, change, j.surface); err != nil {
		j.logger.Warn().Err(err).Str("theme", change.Current.ID).Msg("failed to journal theme change")
		return
	}
	j.logger.Debug().Str("previous", change.Previous.ID).Str("current", change.Current.ID).Msg("journaled theme change")
}
