// Package watch keeps a source directory organized continuously. It
// listens for filesystem events with fsnotify, debounces bursts of
// changes and triggers a full organizing run once the directory settles.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"yearsort/internal/config"
	"yearsort/internal/log"
	"yearsort/internal/organize"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
)

// Watcher monitors a source directory and reruns the organizer whenever
// new entries appear.
type Watcher struct {
	cfg       *config.Config
	organizer organize.Organizer
	fsWatcher *fsnotify.Watcher
	ignore    []glob.Glob
	debounce  time.Duration

	mutex   sync.RWMutex
	running bool
}

// New creates a watcher over cfg.Source. The ignore patterns from
// cfg.Watch are compiled up front so a bad pattern fails here instead of
// silently matching nothing at event time.
func New(cfg *config.Config, organizer organize.Organizer) (*Watcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ignore := make([]glob.Glob, 0, len(cfg.Watch.Ignore))
	for _, pattern := range cfg.Watch.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		ignore = append(ignore, g)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		cfg:       cfg,
		organizer: organizer,
		fsWatcher: fsWatcher,
		ignore:    ignore,
		debounce:  time.Duration(cfg.Watch.DebounceSeconds) * time.Second,
	}, nil
}

// Run watches until ctx is cancelled. Each burst of relevant events is
// collapsed into a single organizing run after the debounce interval
// passes with no further activity.
func (w *Watcher) Run(ctx context.Context) error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mutex.Unlock()

	defer func() {
		w.mutex.Lock()
		w.running = false
		w.mutex.Unlock()
	}()

	if err := w.fsWatcher.Add(w.cfg.SourceDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.cfg.SourceDir, err)
	}
	defer w.fsWatcher.Close()

	log.LogWithFields(log.F("directory", w.cfg.SourceDir)).Info("Watching directory")

	// The timer starts stopped; it is armed by the first relevant event.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			log.LogWithFields(log.F("entry", event.Name), log.F("op", event.Op.String())).Debug("Change detected")
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			if err := w.runOnce(ctx); err != nil {
				log.LogWithFields(log.F("error", err)).Error("Organizing run failed")
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-ctx.Done():
			log.Info("Watcher stopped.")
			return ctx.Err()
		}
	}
}

// relevant reports whether an event should arm the debounce timer. Only
// additions matter; removals never create work for the organizer.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	return !w.ignored(filepath.Base(event.Name))
}

func (w *Watcher) ignored(name string) bool {
	if name == config.SettingsFileName {
		return true
	}
	for _, g := range w.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

func (w *Watcher) runOnce(ctx context.Context) error {
	log.Info("Directory settled, organizing")
	stats, err := w.organizer.Organize(ctx)
	if err != nil {
		return err
	}
	log.LogWithFields(
		log.F("moved", stats.Moved()),
		log.F("skipped", stats.Skipped),
		log.F("errors", stats.Errors),
	).Info("Organizing run finished")
	return nil
}

// IsRunning returns whether the watcher loop is currently active.
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}
