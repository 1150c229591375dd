package app

import (
	"context"
	"fmt"
	"log"

	"life-tiles/pkg/core"
	"life-tiles/pkg/history"
	"life-tiles/pkg/session"
	"life-tiles/pkg/storage"
)

// OpenSession opens the configured store, restores history from it and
// returns a session wired to sched and view. The returned close function
// releases the store.
func OpenSession(ctx context.Context, cfg *Config, sched session.Scheduler, view session.Presenter, logger *log.Logger) (*session.Session, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}
	store, err := storage.NewStore(cfg.Store, cfg.State)
	if err != nil {
		return nil, nil, err
	}
	if err := store.Init(ctx); err != nil {
		_ = storage.CloseIfSupported(store)
		return nil, nil, fmt.Errorf("init %s store: %w", cfg.Store, err)
	}

	hist := history.New(store, core.DefaultSize)
	hist.SetLogger(logger)

	s := session.New(ctx, session.Config{
		Size:      core.DefaultSize,
		Interval:  cfg.IntervalDuration(),
		History:   hist,
		Scheduler: sched,
		Presenter: view,
		Logger:    logger,
	})
	return s, func() error { return storage.CloseIfSupported(store) }, nil
}
