package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/tubescribe/internal/logger"
)

type implWatcher struct {
	filePath string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	settle   time.Duration
}

// Start blocks until ctx is done, calling the handler once per burst of changes to the file
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started. Monitoring: %s", w.filePath)

	// Editors emit several events per save; the timer collapses them into one call.
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.isRelevant(event) {
				continue
			}
			w.logger.Debug(ctx, "Change detected: %s %s", event.Op, event.Name)
			timer.Reset(w.settle)

		case <-timer.C:
			if err := w.handler(ctx, w.filePath); err != nil {
				w.logger.Error(ctx, "Failed to handle change of %s: %v", w.filePath, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isRelevant keeps write and create events for the watched file only
func (w *implWatcher) isRelevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.filePath {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
