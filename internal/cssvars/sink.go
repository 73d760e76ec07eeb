package cssvars

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/claritypath/themedeck/internal/store"
	"github.com/claritypath/themedeck/internal/theme"
)

// SubscriberID is the id the sink registers under in a store.
const SubscriberID = "cssvars"

// Sink writes every resolved theme into an Environment.
type Sink struct {
	env    *Environment
	logger zerolog.Logger
}

// NewSink creates a sink targeting env.
func NewSink(env *Environment, logger zerolog.Logger) *Sink {
	if env == nil {
		env = NewEnvironment()
	}
	return &Sink{env: env, logger: logger}
}

// Environment returns the sink's target environment.
func (s *Sink) Environment() *Environment {
	return s.env
}

// Apply overwrites the environment with t's attributes.
func (s *Sink) Apply(t theme.Theme) {
	vars := Variables(t)
	s.env.Replace(vars)
	s.logger.Debug().
		Str("theme", t.ID).
		Int("vars", len(vars)).
		Msg("styling environment updated")
}

// OnThemeChange implements store.Subscriber.
func (s *Sink) OnThemeChange(change store.Change) {
	s.Apply(change.Current)
}

// Attach registers the sink with st and propagates the current theme
// immediately. A change already in flight finishes before the sink is seeded.
func (s *Sink) Attach(st *store.Store) error {
	if st == nil {
		return fmt.Errorf("store is required")
	}
	if err := st.Attach(SubscriberID, s); err != nil {
		return fmt.Errorf("attach css sink: %w", err)
	}
	return nil
}
