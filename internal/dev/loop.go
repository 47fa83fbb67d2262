package dev

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/marketfront/marketfront/internal/config"
)

// Loop ties the file watcher to the reload server: asset changes trigger
// a full browser reload, CSS-only changes swap stylesheets in place.
type Loop struct {
	watcher *Watcher
	reload  *ReloadServer
	logger  *slog.Logger
}

// NewLoop creates the dev loop from the project configuration.
func NewLoop(cfg *config.Config, logger *slog.Logger) (*Loop, error) {
	debounce, err := time.ParseDuration(cfg.Dev.Debounce)
	if err != nil {
		return nil, fmt.Errorf("parse dev.debounce %q: %w", cfg.Dev.Debounce, err)
	}

	return &Loop{
		watcher: NewWatcher(WatcherConfig{
			Paths:    cfg.Dev.Watch,
			Debounce: debounce,
		}),
		reload: NewReloadServer(),
		logger: logger.With("component", "dev"),
	}, nil
}

// Reload returns the reload server for mounting its WebSocket endpoint.
func (l *Loop) Reload() *ReloadServer {
	return l.reload
}

// Run watches until the context is canceled.
func (l *Loop) Run(ctx context.Context) error {
	l.watcher.OnChange(func(changes []Change) {
		cssOnly := true
		for _, c := range changes {
			if c.Type != ChangeCSS {
				cssOnly = false
				break
			}
		}

		if cssOnly {
			file := filepath.Base(changes[0].Path)
			l.logger.Info("css changed", "file", file, "clients", l.reload.ClientCount())
			l.reload.NotifyCSS(file)
			return
		}
		l.logger.Info("files changed", "count", len(changes), "clients", l.reload.ClientCount())
		l.reload.NotifyReload()
	})

	defer l.reload.Close()
	err := l.watcher.Start(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
