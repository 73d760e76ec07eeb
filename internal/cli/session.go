package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/claritypath/themedeck/internal/config"
	"github.com/claritypath/themedeck/internal/cssvars"
	"github.com/claritypath/themedeck/internal/db"
	"github.com/claritypath/themedeck/internal/events"
	"github.com/claritypath/themedeck/internal/logging"
	"github.com/claritypath/themedeck/internal/store"
	"github.com/claritypath/themedeck/internal/theme"
)

// themeSession is the store plus everything subscribed to it for one command.
type themeSession struct {
	cfg      *config.Config
	store    *store.Store
	env      *cssvars.Environment
	database *db.DB
	journal  *events.Journal
	logger   zerolog.Logger
}

// openSession provisions a store from config, keeps a styling environment in
// sync with it and, when enabled, journals changes. The returned context
// carries the store.
func openSession(ctx context.Context, surface string) (context.Context, *themeSession, error) {
	cfg := GetConfig()
	if cfg == nil {
		loaded, err := config.Load(config.New(), "")
		if err != nil {
			return ctx, nil, err
		}
		cfg = loaded
	}

	palette := theme.PaletteID(cfg.Theme.Palette)
	style := theme.StyleID(cfg.Theme.Style)

	ctx, st := store.Provide(ctx,
		store.WithPalette(palette),
		store.WithStyle(style),
		store.WithLogger(logging.Component("store")),
	)

	env := cssvars.NewEnvironment()
	if err := cssvars.NewSink(env, logging.Component("cssvars")).Attach(st); err != nil {
		return ctx, nil, err
	}

	s := &themeSession{
		cfg:    cfg,
		store:  st,
		env:    env,
		logger: logging.Component(surface),
	}

	if !cfg.Journal.Enabled {
		return ctx, s, nil
	}

	database, err := openDatabase(ctx, cfg)
	if err != nil {
		return ctx, nil, err
	}
	repo := db.NewEventRepository(database)
	journal := events.NewJournal(repo, surface, logging.Component("journal"))

	if _, err := theme.Resolve(palette, style); err != nil {
		if logErr := events.LogThemeFallback(ctx, repo, journal.SessionID(), string(palette), string(style), st.Theme().ID); logErr != nil {
			s.logger.Warn().Err(logErr).Msg("failed to journal theme fallback")
		}
	}
	if err := journal.Attach(ctx, st); err != nil {
		_ = database.Close()
		return ctx, nil, fmt.Errorf("attach journal: %w", err)
	}

	s.database = database
	s.journal = journal
	return ctx, s, nil
}

// Close detaches the journal and releases the database.
func (s *themeSession) Close(ctx context.Context) error {
	if s == nil || s.database == nil {
		return nil
	}
	var errs []error
	if err := s.journal.Detach(ctx, s.store); err != nil {
		errs = append(errs, fmt.Errorf("detach journal: %w", err))
	}
	if err := s.database.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func openDatabase(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	return db.Open(ctx, db.Config{
		Path:   cfg.Journal.Path,
		Logger: logging.Component("db"),
	})
}
