package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/claritypath/themedeck/internal/models"
)

// timestampLayout is fixed-width so stored timestamps sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

const (
	defaultPageSize = 20
	maxPageSize     = 500
)

const eventColumns = `id, timestamp, type, entity_type, entity_id, payload_json, metadata_json`

var (
	// ErrEventNotFound is returned by Get for an unknown id.
	ErrEventNotFound = errors.New("event not found")

	// ErrInvalidCursor is returned by Query when the cursor names no event.
	ErrInvalidCursor = errors.New("invalid journal cursor")
)

// EventRepository reads and appends selection journal events.
type EventRepository struct {
	db *DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

// JournalQuery selects a window of the journal. Zero values leave a filter off.
type JournalQuery struct {
	// Session matches the session id events were recorded under.
	Session string
	Types   []models.EventType
	// Since is inclusive, Until exclusive.
	Since time.Time
	Until time.Time
	// Cursor is the NextCursor of the previous page.
	Cursor      string
	Limit       int
	OldestFirst bool
}

// JournalPage is one page of a journal query.
type JournalPage struct {
	Events     []*models.Event `json:"events"`
	NextCursor string          `json:"next_cursor,omitempty"`
}

// Create appends event to the journal, assigning an id and timestamp if unset.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event == nil {
		return fmt.Errorf("event is required")
	}
	if err := event.Validate(); err != nil {
		return err
	}

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	event.Timestamp = event.Timestamp.UTC()

	var payload, metadata sql.NullString
	if len(event.Payload) > 0 {
		payload = sql.NullString{String: string(event.Payload), Valid: true}
	}
	if len(event.Metadata) > 0 {
		data, err := json.Marshal(event.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}
		metadata = sql.NullString{String: string(data), Valid: true}
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO events (`+eventColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		event.ID,
		event.Timestamp.Format(timestampLayout),
		string(event.Type),
		string(event.EntityType),
		event.EntityID,
		payload,
		metadata,
	); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// Get retrieves an event by ID.
func (r *EventRepository) Get(ctx context.Context, id string) (*models.Event, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	event, err := r.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, id)
	}
	return event, err
}

// Query returns one page of events matching q, newest first unless
// q.OldestFirst is set. Pages continue from q.Cursor.
func (r *EventRepository) Query(ctx context.Context, q JournalQuery) (*JournalPage, error) {
	limit := q.Limit
	switch {
	case limit <= 0:
		limit = defaultPageSize
	case limit > maxPageSize:
		limit = maxPageSize
	}

	var (
		where []string
		args  []any
	)
	if q.Session != "" {
		where = append(where, `entity_id = ?`)
		args = append(args, q.Session)
	}
	if len(q.Types) > 0 {
		where = append(where, `type IN (?`+strings.Repeat(`, ?`, len(q.Types)-1)+`)`)
		for _, t := range q.Types {
			args = append(args, string(t))
		}
	}
	if !q.Since.IsZero() {
		where = append(where, `timestamp >= ?`)
		args = append(args, q.Since.UTC().Format(timestampLayout))
	}
	if !q.Until.IsZero() {
		where = append(where, `timestamp < ?`)
		args = append(args, q.Until.UTC().Format(timestampLayout))
	}

	order, after := `DESC`, `<`
	if q.OldestFirst {
		order, after = `ASC`, `>`
	}
	if q.Cursor != "" {
		anchor, err := r.Get(ctx, q.Cursor)
		if errors.Is(err, ErrEventNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCursor, q.Cursor)
		}
		if err != nil {
			return nil, err
		}
		where = append(where, `(timestamp, id) `+after+` (?, ?)`)
		args = append(args, anchor.Timestamp.UTC().Format(timestampLayout), anchor.ID)
	}

	var query strings.Builder
	query.WriteString(`SELECT ` + eventColumns + ` FROM events`)
	if len(where) > 0 {
		query.WriteString(` WHERE ` + strings.Join(where, ` AND `))
	}
	query.WriteString(` ORDER BY timestamp ` + order + `, id ` + order + ` LIMIT ?`)
	// One extra row tells whether another page follows.
	args = append(args, limit+1)

	rows, err := r.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	page := &JournalPage{Events: []*models.Event{}}
	for rows.Next() {
		event, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		page.Events = append(page.Events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	if len(page.Events) > limit {
		page.Events = page.Events[:limit]
		page.NextCursor = page.Events[limit-1].ID
	}
	return page, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *EventRepository) scan(row rowScanner) (*models.Event, error) {
	var (
		event                       models.Event
		timestamp, kind, entityKind string
		payload, metadata           sql.NullString
	)
	if err := row.Scan(&event.ID, &timestamp, &kind, &entityKind, &event.EntityID, &payload, &metadata); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan event: %w", err)
	}

	event.Type = models.EventType(kind)
	event.EntityType = models.EntityType(entityKind)
	if t, err := time.Parse(time.RFC3339Nano, timestamp); err == nil {
		event.Timestamp = t
	}
	if payload.Valid {
		event.Payload = json.RawMessage(payload.String)
	}
	if metadata.Valid {
		if err := json.Unmarshal([]byte(metadata.String), &event.Metadata); err != nil {
			r.db.logger.Warn().Err(err).Str("event_id", event.ID).Msg("failed to parse event metadata")
		}
	}
	return &event, nil
}
