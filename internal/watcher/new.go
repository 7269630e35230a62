package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/tubescribe/internal/logger"
)

const defaultSettle = 200 * time.Millisecond

// New creates a Watcher for a single file.
// The parent directory is watched so editors that replace the file on save are still seen.
func New(filePath string, handler EventHandler, log logger.Logger) (Watcher, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		filePath: absPath,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
		settle:   defaultSettle,
	}, nil
}
