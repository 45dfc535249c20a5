package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher signals when the snapshot database changes on disk, so an
// outline edited by another process (or a synced copy) is picked up
// without restarting. Events are debounced; writes made by this process
// are filtered out by the UI via a suppression window around its own
// saves.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher

	events chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	lastEvent time.Time
	debounce  time.Duration
}

// NewWatcher creates a watcher for the snapshot database at path.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		watcher:  fsw,
		events:   make(chan struct{}, 1),
		ctx:      ctx,
		cancel:   cancel,
		debounce: 200 * time.Millisecond,
	}
	return w, nil
}

// Start begins watching. The containing directory is watched rather than
// the file itself so atomic replace-style writes are still observed.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch state dir: %w", err)
	}
	go w.watchLoop()
	return nil
}

// Events returns the change notification channel.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Stop shuts the watcher down.
func (w *Watcher) Stop() {
	w.cancel()
	w.watcher.Close()
}

// watchLoop filters raw fsnotify events down to debounced change signals
// for the watched file.
func (w *Watcher) watchLoop() {
	// Closing the channel unblocks any receiver still waiting after Stop.
	defer close(w.events)

	base := filepath.Base(w.path)
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			// SQLite writes touch the db and its journal/wal siblings.
			if !hasBaseName(event.Name, base) {
				continue
			}

			now := time.Now()
			if now.Sub(w.lastEvent) < w.debounce {
				continue
			}
			w.lastEvent = now

			select {
			case w.events <- struct{}{}:
			default:
				// A reload is already pending, skip (non-blocking)
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Errors are ignored; the watcher is best-effort
		}
	}
}

// hasBaseName reports whether name refers to the db file or one of its
// sqlite sidecar files (-journal, -wal, -shm).
func hasBaseName(name, base string) bool {
	got := filepath.Base(name)
	if got == base {
		return true
	}
	for _, suffix := range []string{"-journal", "-wal", "-shm"} {
		if got == base+suffix {
			return true
		}
	}
	return false
}
