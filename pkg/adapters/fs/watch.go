package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/notekeeper/pkg/core"
)

// Watch observes the data file and emits an event after each burst of changes.
// The parent directory must exist; the file itself may not.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	target, err := filepath.Abs(r.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data file path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Atomic saves replace the file, so the directory is watched, not the inode.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	out := make(chan core.Event, 16)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(out)
		defer r.setWatcherActive(false)
		defer watcher.Close()
		return r.watchLoop(ctx, watcher, target, out)
	}, lifecycle.WithErrorHandler(func(err error) {
		r.config.Logger.Error("watcher stopped", "error", err)
	}))

	return out, nil
}

// watchLoop forwards the last event of every debounce window.
func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, target string, out chan<- core.Event) error {
	var (
		pending core.Event
		fire    <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			r.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())

			e, ok := mapEvent(event, target)
			if !ok {
				continue
			}
			pending = e
			fire = time.After(r.config.Debounce)

		case <-fire:
			fire = nil
			select {
			case out <- pending:
			case <-ctx.Done():
				return nil
			}

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			r.config.Logger.Error("fsnotify error", "error", wErr)
		}
	}
}

// mapEvent converts a raw fsnotify event on target into a core.Event.
func mapEvent(event fsnotify.Event, target string) (core.Event, bool) {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return core.Event{}, false
	}
	if strings.HasPrefix(filepath.Base(name), TempFilePrefix) {
		return core.Event{}, false
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
	case event.Has(fsnotify.Write):
		eType = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
	default:
		return core.Event{}, false
	}

	return core.Event{
		Type:      eType,
		Path:      target,
		Timestamp: time.Now().Unix(),
	}, true
}
