// Package watch re-runs the roster pipeline when a new spreadsheet lands in
// the roster folder.
package watch

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/roster-go/pkg/roster/output"
)

// Handler processes one settled spreadsheet.
type Handler func(ctx context.Context, path string) error

// Watcher watches a folder for created or rewritten spreadsheets and calls
// the handler once per file after writes have settled. Handler calls never
// overlap.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	dir      string
	handler  Handler
	debounce time.Duration
	pending  map[string]time.Time
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool

	stats Stats
}

// Stats counts watcher activity.
type Stats struct {
	Events   int
	Runs     int
	Failures int
	LastPath string
}

// New creates a watcher for dir. Files are handled once no event has been
// seen for them for the debounce interval.
func New(dir string, debounce time.Duration, handler Handler) (*Watcher, error) {
	if handler == nil {
		return nil, errors.New("watch: nil handler")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:  fw,
		dir:      dir,
		handler:  handler,
		debounce: debounce,
		pending:  make(map[string]time.Time),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. It does not block. If the folder cannot be watched
// the watcher is closed and cannot be started again.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		if cerr := w.watcher.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("Error closing folder watcher")
		}
		return err
	}
	log.Info().Str("dir", w.dir).Dur("debounce", w.debounce).Msg("Watching roster folder")

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing folder watcher")
	}
	log.Debug().Str("dir", w.dir).Msg("Folder watcher stopped")
}

// Done is closed when the event loop exits.
func (w *Watcher) Done() <-chan struct{} {
	return w.doneCh
}

// Stats returns a snapshot of watcher activity.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounce / 4
	if tick < 50*time.Millisecond {
		tick = 50 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("Folder watcher error")
		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	if !output.IsSpreadsheet(event.Name) {
		return
	}

	log.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("Spreadsheet event")
	w.mu.Lock()
	w.pending[event.Name] = time.Now()
	w.stats.Events++
	w.mu.Unlock()
}

// flush runs the handler for every pending file that has been quiet for the
// debounce interval.
func (w *Watcher) flush(ctx context.Context) {
	now := time.Now()
	var ready []string

	w.mu.Lock()
	for path, seen := range w.pending {
		if now.Sub(seen) >= w.debounce {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	sort.Strings(ready)
	for _, path := range ready {
		err := w.handler(ctx, path)

		w.mu.Lock()
		w.stats.Runs++
		w.stats.LastPath = path
		if err != nil {
			w.stats.Failures++
		}
		w.mu.Unlock()

		if err != nil {
			log.Error().Str("path", path).Err(err).Msg("Roster run failed")
		}
	}
}
