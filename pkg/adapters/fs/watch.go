package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"
)

// debounceInterval is the quiet period before a change burst triggers a
// single rebuild.
const debounceInterval = 200 * time.Millisecond

// WatchConfig configures a Watcher.
type WatchConfig struct {
	// Paths are the files or directories whose changes trigger a rebuild.
	// For a file its parent directory is watched.
	Paths []string
	// Rebuild is invoked after each debounced change burst.
	Rebuild func(ctx context.Context) error
	// Logger receives watch diagnostics. A nil logger disables them.
	Logger *slog.Logger
}

// Watcher rebuilds a document whenever its inputs change on disk. It is a
// lifecycle-managed worker: Start launches the event loop, Stop tears it
// down and waits for in-flight rebuilds.
type Watcher struct {
	*worker.BaseWorker
	config    WatchConfig
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

// NewWatcher creates a watcher for the given inputs. It does not start
// watching until Start is called.
func NewWatcher(config WatchConfig) *Watcher {
	return &Watcher{
		BaseWorker: worker.NewBaseWorker("fs-watcher"),
		config:     config,
	}
}

// Start begins watching and launches the event loop under ctx.
func (w *Watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}
	if w.config.Rebuild == nil {
		return fmt.Errorf("watcher needs a rebuild callback")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := addWatchTargets(watcher, w.config.Paths); err != nil {
		_ = watcher.Close()
		return err
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(debounceInterval)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

// Stop cancels the event loop and waits for it to finish.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

// State reports the worker state for supervision and introspection.
func (w *Watcher) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// addWatchTargets registers each path with the watcher, substituting the
// parent directory for plain files so renames and editor swaps are seen.
func addWatchTargets(watcher *fsnotify.Watcher, paths []string) error {
	seen := make(map[string]struct{})
	for _, path := range paths {
		target := path
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			target = filepath.Dir(path)
		}
		if _, ok := seen[target]; ok {
			continue
		}
		seen[target] = struct{}{}
		if err := watcher.Add(target); err != nil {
			return fmt.Errorf("failed to watch %s: %w", target, err)
		}
	}
	return nil
}

// scheduleRebuild funnels a change through the debouncer and runs the
// rebuild on a supervised goroutine.
func (w *Watcher) scheduleRebuild(ctx context.Context) {
	w.debouncer.trigger(func() {
		lifecycle.Go(ctx, func(ctx context.Context) error {
			if err := w.config.Rebuild(ctx); err != nil {
				if w.config.Logger != nil {
					w.config.Logger.Error("rebuild failed", "error", err)
				}
				return err
			}
			return nil
		}, lifecycle.WithErrorHandler(func(err error) {
			if w.config.Logger != nil {
				w.config.Logger.Error("rebuild panic", "error", err)
			}
		}))
	})
}

func (w *Watcher) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)

			var stack string
			if w.config.Logger != nil && w.config.Logger.Enabled(ctx, slog.LevelDebug) {
				stack = string(debug.Stack())
			}
			if w.config.Logger != nil {
				if stack != "" {
					w.config.Logger.Error("watcher panic", "error", panicErr, "stack", stack)
				} else {
					w.config.Logger.Error("watcher panic", "error", panicErr)
				}
			}
		}
	}()
	defer w.watcher.Close()

	err = w.eventLoop(ctx)

	// Stop accepting new change bursts and wait for in-flight rebuilds, so
	// teardown never races a rebuild mid-write.
	w.debouncer.stopAndWait(5 * time.Second)

	return err
}

func (w *Watcher) eventLoop(ctx context.Context) error {
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

			if !relevantEvent(event) {
				continue
			}
			if w.config.Logger != nil {
				w.config.Logger.Debug("change detected", "path", event.Name, "op", event.Op.String())
			}
			w.scheduleRebuild(ctx)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			if w.config.Logger != nil {
				w.config.Logger.Error("fsnotify error", "error", wErr)
			}
		}
	}
}

// relevantEvent filters out chmod-only noise and atomic-write temp files.
func relevantEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return !isTempFile(event.Name)
}

func isTempFile(path string) bool {
	base := filepath.Base(path)
	return len(base) >= len(tempFilePrefix) && base[:len(tempFilePrefix)] == tempFilePrefix
}
