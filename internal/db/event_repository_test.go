package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/claritypath/themedeck/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "journal.db")
	db, err := Open(context.Background(), Config{Path: path, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return db
}

func themeChanged(t *testing.T, session, previous, current string, at time.Time) *models.Event {
	t.Helper()

	payload, err := json.Marshal(models.ThemeChangedPayload{Previous: previous, Current: current, Source: "test"})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return &models.Event{
		Timestamp:  at,
		Type:       models.EventTypeThemeChanged,
		EntityType: models.EntityTypeSelection,
		EntityID:   session,
		Payload:    payload,
		Metadata:   map[string]string{"surface": "tui"},
	}
}

func TestEventRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewEventRepository(db)
	ctx := context.Background()

	event := themeChanged(t, "session-1", "calm-professional-clean-card", "modern-wellness-clean-card", time.Time{})
	if err := repo.Create(ctx, event); err != nil {
		t.Fatalf("create event: %v", err)
	}
	if _, err := uuid.Parse(event.ID); err != nil {
		t.Fatalf("expected uuid id, got %q", event.ID)
	}
	if event.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be set")
	}

	got, err := repo.Get(ctx, event.ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if got.Type != models.EventTypeThemeChanged || got.EntityID != "session-1" {
		t.Fatalf("unexpected event: %+v", got)
	}
	if got.Metadata["surface"] != "tui" {
		t.Fatalf("metadata not round-tripped: %+v", got.Metadata)
	}

	var payload models.ThemeChangedPayload
	if err := json.Unmarshal(got.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.Current != "modern-wellness-clean-card" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if !got.Timestamp.Equal(event.Timestamp) {
		t.Fatalf("timestamp mismatch: %v vs %v", got.Timestamp, event.Timestamp)
	}
}

func TestEventRepository_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := NewEventRepository(db).Get(context.Background(), "missing")
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestEventRepository_CreateRejectsInvalid(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := NewEventRepository(db).Create(context.Background(), &models.Event{Type: models.EventTypeThemeChanged})
	if !errors.Is(err, models.ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}
}

func seedJournal(t *testing.T, repo *EventRepository, base time.Time, sessions ...string) []*models.Event {
	t.Helper()

	var created []*models.Event
	for i, session := range sessions {
		event := themeChanged(t, session, "a", fmt.Sprintf("theme-%d", i), base.Add(time.Duration(i)*time.Second))
		if err := repo.Create(context.Background(), event); err != nil {
			t.Fatalf("create event %d: %v", i, err)
		}
		created = append(created, event)
	}
	return created
}

func TestEventRepository_QueryNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewEventRepository(db)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	created := seedJournal(t, repo, base, "s1", "s1", "s1")

	page, err := repo.Query(context.Background(), JournalQuery{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(page.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(page.Events))
	}
	if page.Events[0].ID != created[2].ID || page.Events[1].ID != created[1].ID {
		t.Fatalf("expected newest first, got %s, %s", page.Events[0].ID, page.Events[1].ID)
	}
	if page.NextCursor != created[1].ID {
		t.Fatalf("expected cursor at last returned event, got %q", page.NextCursor)
	}
}

func TestEventRepository_QueryPagination(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewEventRepository(db)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	created := seedJournal(t, repo, base, "s1", "s1", "s1", "s1", "s1")

	for _, oldestFirst := range []bool{false, true} {
		var seen []string
		cursor := ""
		for pages := 0; ; pages++ {
			if pages > len(created) {
				t.Fatal("pagination did not terminate")
			}
			page, err := repo.Query(ctx, JournalQuery{Limit: 2, Cursor: cursor, OldestFirst: oldestFirst})
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			for _, event := range page.Events {
				seen = append(seen, event.ID)
			}
			if page.NextCursor == "" {
				break
			}
			cursor = page.NextCursor
		}

		if len(seen) != len(created) {
			t.Fatalf("oldestFirst=%v: expected %d events across pages, got %d", oldestFirst, len(created), len(seen))
		}
		for i, id := range seen {
			want := created[i].ID
			if !oldestFirst {
				want = created[len(created)-1-i].ID
			}
			if id != want {
				t.Fatalf("oldestFirst=%v: event %d is %s, want %s", oldestFirst, i, id, want)
			}
		}
	}
}

func TestEventRepository_QueryWindowAndFilters(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewEventRepository(db)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	seedJournal(t, repo, base, "s1", "s2", "s1", "s2", "s1")

	fallback := &models.Event{
		Timestamp:  base.Add(10 * time.Second),
		Type:       models.EventTypeThemeFallback,
		EntityType: models.EntityTypeSelection,
		EntityID:   "s1",
	}
	if err := repo.Create(ctx, fallback); err != nil {
		t.Fatalf("create fallback: %v", err)
	}

	tests := []struct {
		name  string
		query JournalQuery
		want  int
	}{
		{"all", JournalQuery{}, 6},
		{"session", JournalQuery{Session: "s1"}, 4},
		{"since inclusive", JournalQuery{Since: base.Add(3 * time.Second)}, 3},
		{"until exclusive", JournalQuery{Until: base.Add(2 * time.Second)}, 2},
		{"window", JournalQuery{Since: base.Add(time.Second), Until: base.Add(4 * time.Second)}, 3},
		{"type", JournalQuery{Types: []models.EventType{models.EventTypeThemeFallback}}, 1},
		{"types", JournalQuery{Types: []models.EventType{models.EventTypeThemeFallback, models.EventTypeThemeChanged}}, 6},
		{"session and window", JournalQuery{Session: "s2", Since: base.Add(2 * time.Second)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := repo.Query(ctx, tt.query)
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			if len(page.Events) != tt.want {
				t.Fatalf("expected %d events, got %d", tt.want, len(page.Events))
			}
			if page.NextCursor != "" {
				t.Fatalf("expected a single page, got cursor %q", page.NextCursor)
			}
		})
	}
}

func TestEventRepository_QueryRejectsUnknownCursor(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := NewEventRepository(db).Query(context.Background(), JournalQuery{Cursor: "missing"})
	if !errors.Is(err, ErrInvalidCursor) {
		t.Fatalf("expected ErrInvalidCursor, got %v", err)
	}
}

func TestEventRepository_QueryEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	page, err := NewEventRepository(db).Query(context.Background(), JournalQuery{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if page.Events == nil || len(page.Events) != 0 || page.NextCursor != "" {
		t.Fatalf("expected an empty page, got %+v", page)
	}
}
