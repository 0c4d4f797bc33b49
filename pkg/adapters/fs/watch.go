package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a journal must stay quiet before a change
// is reported. Editors save in several steps.
const DefaultDebounce = 100 * time.Millisecond

// ChangeFunc reacts to a settled change of the watched journal.
type ChangeFunc func(ctx context.Context, path string) error

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithWatchLogger sets the watcher logger.
func WithWatchLogger(logger *slog.Logger) WatchOption {
	return func(w *Watcher) { w.logger = logger }
}

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) { w.delay = d }
}

// WithErrorHandler receives errors and panics raised by the change callback.
func WithErrorHandler(fn func(error)) WatchOption {
	return func(w *Watcher) { w.errorHandler = fn }
}

// Watcher runs a callback each time a journal file is saved. It watches
// the parent directory so that rename-on-save editors keep being seen.
type Watcher struct {
	*worker.BaseWorker
	path         string
	onChange     ChangeFunc
	logger       *slog.Logger
	delay        time.Duration
	errorHandler func(error)

	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc

	mu      sync.Mutex
	runs    int
	lastRun time.Time
	lastErr error
}

// NewWatcher creates a watcher for path. It does nothing until Start.
func NewWatcher(path string, onChange ChangeFunc, opts ...WatchOption) *Watcher {
	w := &Watcher{
		BaseWorker: worker.NewBaseWorker("journal-watcher"),
		path:       filepath.Clean(path),
		onChange:   onChange,
		delay:      DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	return w
}

// Start begins watching. It returns once the watch is registered.
func (w *Watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(w.delay)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

// Stop ends the watch and waits for the event loop to exit.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

// Trigger runs the callback now, outside the debounce window.
func (w *Watcher) Trigger(ctx context.Context) {
	w.fire(ctx)
}

func (w *Watcher) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			if w.logger.Enabled(ctx, slog.LevelDebug) {
				w.logger.Error("watcher panic", "error", recovered, "stack", string(debug.Stack()))
			} else {
				w.logger.Error("watcher panic", "error", recovered)
			}
			err = fmt.Errorf("watcher panic: %v", recovered)
		}
	}()
	defer w.watcher.Close()

	err = w.loop(ctx)
	w.debouncer.stopAndWait(5 * time.Second)
	return err
}

func (w *Watcher) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("journal changed", "path", event.Name, "op", event.Op.String())
			w.debouncer.add(func() { w.fire(ctx) })

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("fsnotify error", "error", wErr)
			if w.errorHandler != nil {
				w.errorHandler(wErr)
			}
		}
	}
}

// relevant keeps writes and creations of the watched file. Removals are
// ignored; a rename-on-save shows up as a Create right after.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// fire runs the callback in a supervised goroutine so a panic in user
// code reaches the error handler instead of killing the process.
func (w *Watcher) fire(ctx context.Context) {
	done := make(chan struct{})
	var finished bool
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(done)
		err := w.onChange(ctx, w.path)
		w.record(err)
		finished = true
		if err != nil {
			w.report(err)
		}
		return err
	}, lifecycle.WithErrorHandler(func(err error) {
		if finished {
			return
		}
		w.record(err)
		w.report(fmt.Errorf("change handler panic: %w", err))
	}))
	select {
	case <-done:
	case <-ctx.Done():
	}
}

func (w *Watcher) record(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.runs++
	w.lastRun = time.Now()
	w.lastErr = err
}

func (w *Watcher) report(err error) {
	if w.errorHandler != nil {
		w.errorHandler(err)
		return
	}
	w.logger.Error("change handler failed", "path", w.path, "error", err)
}

// State reports the worker state; the metadata carries the watched path,
// the number of callback runs and the last callback error.
func (w *Watcher) State() worker.State {
	w.mu.Lock()
	meta := map[string]string{
		worker.MetadataType: string(worker.TypeGoroutine),
		"path":              w.path,
		"runs":              strconv.Itoa(w.runs),
	}
	if !w.lastRun.IsZero() {
		meta["last_run"] = w.lastRun.Format(time.RFC3339)
	}
	if w.lastErr != nil {
		meta["last_error"] = w.lastErr.Error()
	}
	w.mu.Unlock()

	return w.ExportState(func(s *worker.State) {
		s.Metadata = meta
	})
}

var _ worker.Worker = (*Watcher)(nil)
