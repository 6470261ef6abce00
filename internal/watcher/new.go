package watcher

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/wilofice/voiceflow/internal/logger"
)

// New creates a Watcher that tracks a single file inside dir. The watch is
// non-recursive; events for other entries in the directory are ignored.
func New(dir, filePath string, handler EventHandler, log logger.Logger) (Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir: dir,
		filePath: filePath,
		filename: filepath.Base(filePath),
		handler:  handler,
		logger:   log,
		watcher:  fsWatcher,
	}, nil
}
