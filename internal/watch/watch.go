// Package watch implements `friscc watch` (SPEC_FULL.md §B.1, §C): rerun a
// pipeline stage whenever its input file changes on disk. The teacher's
// go.mod names fsnotify but never calls it directly (see DESIGN.md); the
// event-loop shape here follows fsnotify's own documented
// NewWatcher/Add/Events-Errors-select idiom.
package watch

import (
	"context"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Run watches path and calls run once immediately, then again after every
// write event, debounced by debounce so an editor's multi-write save does
// not trigger a burst of reruns. It blocks until ctx is cancelled.
func Run(ctx context.Context, path string, debounce time.Duration, logger *slog.Logger, run func()) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	run()

	var pending *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			if pending != nil {
				pending.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("watch: change detected", "path", event.Name, "op", event.Op.String())
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: fsnotify error", "err", err)

		case <-fire:
			run()
		}
	}
}
