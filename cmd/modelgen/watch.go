package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// debounceWindow coalesces editor write bursts into one regeneration.
const debounceWindow = 300 * time.Millisecond

// relevantEvent reports whether a watcher event should trigger a
// regeneration. Editors commonly save via rename, so renames count.
func relevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// debounceRegenerate calls regenerate once per burst of triggers: after
// the first trigger it waits out the window, absorbing any further
// triggers that arrive in the meantime, then fires. Runs until the
// context is cancelled.
func debounceRegenerate(ctx context.Context, trigger <-chan struct{}, window time.Duration, regenerate func()) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-trigger:
		}
		timer := time.NewTimer(window)
	settle:
		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-trigger:
				// Still part of the same burst.
			case <-timer.C:
				break settle
			}
		}
		regenerate()
	}
}

// watchAndGenerate runs one generation, then regenerates whenever the
// config file or the template directory changes, until the context is
// cancelled. The config is reloaded on every trigger so edits to it
// take effect immediately.
func watchAndGenerate(ctx context.Context, f modelFlags, logger *slog.Logger) error {
	if err := generateOnce(ctx, f, logger); err != nil {
		// Keep watching after a failed run; the next edit may fix it.
		logger.Error("generation failed", "error", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(f.configPath); err != nil {
		return err
	}
	if cfg, err := loadConfig(f); err == nil && cfg.Generation.TemplateDir != "" {
		if err := watcher.Add(cfg.Generation.TemplateDir); err != nil {
			logger.Warn("cannot watch template directory", "dir", cfg.Generation.TemplateDir, "error", err)
		}
	}
	logger.Info("watching for changes", "config", f.configPath)

	trigger := make(chan struct{}, 1)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if relevantEvent(event) {
					select {
					case trigger <- struct{}{}:
					default:
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Warn("watcher error", "error", err)
			}
		}
	})

	g.Go(func() error {
		return debounceRegenerate(ctx, trigger, debounceWindow, func() {
			logger.Info("change detected, regenerating")
			if err := generateOnce(ctx, f, logger); err != nil {
				logger.Error("generation failed", "error", err)
			}
		})
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
