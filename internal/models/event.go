// Package models defines the records written to the selection journal.
package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// EventType categorizes journal events.
type EventType string

const (
	// Selection events
	EventTypeThemeChanged  EventType = "theme.changed"
	EventTypeThemeFallback EventType = "theme.fallback"

	// Session events
	EventTypeSessionStarted EventType = "session.started"
	EventTypeSessionEnded   EventType = "session.ended"
)

// Known reports whether t is one of the event types the journal writes.
func (t EventType) Known() bool {
	switch t {
	case EventTypeThemeChanged, EventTypeThemeFallback, EventTypeSessionStarted, EventTypeSessionEnded:
		return true
	}
	return false
}

// EntityType identifies the type of entity an event relates to.
type EntityType string

const (
	EntityTypeSelection EntityType = "selection"
	EntityTypeSession   EntityType = "session"
)

// ErrInvalidEvent is returned by Validate.
var ErrInvalidEvent = errors.New("invalid event")

// Event represents an append-only journal entry.
type Event struct {
	// ID is the unique identifier for the event.
	ID string `json:"id"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Type categorizes the event.
	Type EventType `json:"type"`

	// EntityType identifies what kind of entity this event relates to.
	EntityType EntityType `json:"entity_type"`

	// EntityID is the ID of the related entity (the session id for selection events).
	EntityID string `json:"entity_id"`

	// Payload contains event-specific data.
	Payload json.RawMessage `json:"payload,omitempty"`

	// Metadata contains additional context.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Validate checks if the event is valid.
func (e *Event) Validate() error {
	var missing []string
	if strings.TrimSpace(string(e.Type)) == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(string(e.EntityType)) == "" {
		missing = append(missing, "entity_type")
	}
	if strings.TrimSpace(e.EntityID) == "" {
		missing = append(missing, "entity_id")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// ValidationError lists required fields that were empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid event: missing " + strings.Join(e.Fields, ", ")
}

// Unwrap lets errors.Is match ErrInvalidEvent.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidEvent
}

// ThemeChangedPayload is the payload for theme.changed events.
type ThemeChangedPayload struct {
	Previous string `json:"previous"`
	Current  string `json:"current"`
	Palette  string `json:"palette"`
	Style    string `json:"style"`
	Source   string `json:"source,omitempty"` // tui, cli, grpc
}

// ThemeFallbackPayload is the payload for theme.fallback events.
type ThemeFallbackPayload struct {
	RequestedPalette string `json:"requested_palette"`
	RequestedStyle   string `json:"requested_style"`
	Fallback         string `json:"fallback"`
}

// SessionPayload is the payload for session.* events.
type SessionPayload struct {
	Surface string `json:"surface"`
	Theme   string `json:"theme"`
}
