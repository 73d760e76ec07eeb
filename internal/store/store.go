// Package store owns the current palette/style selection and notifies
// subscribers whenever the resolved theme changes.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/claritypath/themedeck/internal/theme"
)

// Store errors.
var (
	ErrDuplicateSubscriber = errors.New("subscriber already registered")
	ErrUnknownSubscriber   = errors.New("subscriber not registered")
)

// Selection is the pair of identifiers chosen by the user.
type Selection struct {
	Palette theme.PaletteID `json:"palette"`
	Style   theme.StyleID   `json:"style"`
}

// Change describes a single theme transition.
type Change struct {
	Previous  theme.Theme
	Current   theme.Theme
	Selection Selection
	Timestamp time.Time
}

// Subscriber receives theme changes synchronously.
//
// OnThemeChange runs while the mutation that caused it is still in progress;
// it may read the store but must not call SetPalette, SetStyle or SetTheme.
type Subscriber interface {
	OnThemeChange(change Change)
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc func(change Change)

// OnThemeChange implements Subscriber.
func (f SubscriberFunc) OnThemeChange(change Change) {
	f(change)
}

type subscription struct {
	id  string
	sub Subscriber
}

// Store holds the selection state and the theme resolved from it.
type Store struct {
	registry *theme.Registry
	logger   zerolog.Logger
	now      func() time.Time

	// writeMu serializes mutate -> resolve -> dispatch.
	writeMu sync.Mutex

	mu          sync.RWMutex
	selection   Selection
	current     theme.Theme
	subscribers []subscription
}

// Option configures a Store.
type Option func(*Store)

// WithPalette sets the initial palette.
func WithPalette(id theme.PaletteID) Option {
	return func(s *Store) {
		s.selection.Palette = id
	}
}

// WithStyle sets the initial style.
func WithStyle(id theme.StyleID) Option {
	return func(s *Store) {
		s.selection.Style = id
	}
}

// WithRegistry overrides the registry used for lookups and enumeration.
func WithRegistry(r *theme.Registry) Option {
	return func(s *Store) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithLogger sets the store logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithClock overrides the clock used to stamp changes.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a store. Unknown initial identifiers fall back to the default theme.
func New(opts ...Option) *Store {
	s := &Store{
		registry: theme.DefaultRegistry(),
		logger:   zerolog.Nop(),
		now:      time.Now,
		selection: Selection{
			Palette: theme.DefaultPalette,
			Style:   theme.DefaultStyle,
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	resolved, fellBack := theme.ResolveOrDefault(s.selection.Palette, s.selection.Style)
	if fellBack {
		s.logger.Warn().
			Str("palette", string(s.selection.Palette)).
			Str("style", string(s.selection.Style)).
			Str("fallback", resolved.ID).
			Msg("unknown initial selection, using default theme")
		s.selection = Selection{Palette: resolved.Palette, Style: resolved.Style}
	}
	s.current = resolved

	return s
}

// Theme returns the currently resolved theme.
func (s *Store) Theme() theme.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Palette returns the selected palette id.
func (s *Store) Palette() theme.PaletteID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.Palette
}

// Style returns the selected style id.
func (s *Store) Style() theme.StyleID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.Style
}

// Selection returns both selected ids.
func (s *Store) Selection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// Themes enumerates every resolvable theme.
func (s *Store) Themes() []theme.Theme {
	return s.registry.All()
}

// Registry returns the registry backing the store.
func (s *Store) Registry() *theme.Registry {
	return s.registry
}

// SetPalette changes the palette and keeps the current style.
func (s *Store) SetPalette(id theme.PaletteID) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.applyLocked(Selection{Palette: id, Style: s.Style()})
}

// SetStyle changes the style and keeps the current palette.
func (s *Store) SetStyle(id theme.StyleID) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.applyLocked(Selection{Palette: s.Palette(), Style: id})
}

// SetTheme changes both ids in one step with a single notification.
func (s *Store) SetTheme(paletteID theme.PaletteID, styleID theme.StyleID) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.applyLocked(Selection{Palette: paletteID, Style: styleID})
}

// Update derives the next selection from the current one and applies it
// atomically, so concurrent cycling (next palette, next style) never skips.
func (s *Store) Update(fn func(Selection) Selection) error {
	_, _, err := s.Swap(fn)
	return err
}

// Swap is Update that also reports the themes before and after the change,
// both read under the same write lock. They are equal when nothing changed.
func (s *Store) Swap(fn func(Selection) Selection) (previous, current theme.Theme, err error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	previous = s.Theme()
	if err := s.applyLocked(fn(s.Selection())); err != nil {
		return previous, previous, err
	}
	return previous, s.Theme(), nil
}

// applyLocked must be called with writeMu held.
func (s *Store) applyLocked(next Selection) error {
	resolved, err := s.resolve(next)
	if err != nil {
		return err
	}

	s.mu.Lock()
	previous := s.current
	if previous == resolved {
		s.mu.Unlock()
		return nil
	}
	s.selection = next
	s.current = resolved
	subs := make([]subscription, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	change := Change{
		Previous:  previous,
		Current:   resolved,
		Selection: next,
		Timestamp: s.now(),
	}

	s.logger.Debug().
		Str("from", previous.ID).
		Str("to", resolved.ID).
		Int("subscribers", len(subs)).
		Msg("theme changed")

	for _, entry := range subs {
		entry.sub.OnThemeChange(change)
	}
	return nil
}

func (s *Store) resolve(sel Selection) (theme.Theme, error) {
	if t, ok := s.registry.Lookup(sel.Palette, sel.Style); ok {
		return t, nil
	}
	// The registry only misses on unknown ids; Resolve names which one.
	t, err := theme.Resolve(sel.Palette, sel.Style)
	if err != nil {
		return theme.Theme{}, fmt.Errorf("resolve selection: %w", err)
	}
	return t, nil
}

// Subscribe registers sub under id. Subscribers are notified in registration order.
func (s *Store) Subscribe(id string, sub Subscriber) error {
	if id == "" {
		return fmt.Errorf("subscriber id is required")
	}
	if sub == nil {
		return fmt.Errorf("subscriber is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.subscribers {
		if entry.id == id {
			return fmt.Errorf("%w: %s", ErrDuplicateSubscriber, id)
		}
	}
	s.subscribers = append(s.subscribers, subscription{id: id, sub: sub})
	return nil
}

// Attach is Subscribe followed by delivering the current theme to sub as a
// Change with Previous equal to Current. Both happen under the write lock, so
// no mutation can land between the registration and the initial delivery.
// It must not be called from inside a subscriber.
func (s *Store) Attach(id string, sub Subscriber) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.Subscribe(id, sub); err != nil {
		return err
	}
	s.mu.RLock()
	current, selection := s.current, s.selection
	s.mu.RUnlock()

	sub.OnThemeChange(Change{
		Previous:  current,
		Current:   current,
		Selection: selection,
		Timestamp: s.now(),
	})
	return nil
}

// Unsubscribe removes the subscriber registered under id.
func (s *Store) Unsubscribe(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, entry := range s.subscribers {
		if entry.id == id {
			s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownSubscriber, id)
}
