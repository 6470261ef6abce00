package watcher

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/wilofice/voiceflow/internal/logger"
)

type implWatcher struct {
	inputDir string
	filePath string
	filename string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
}

// Start processes the tracked file once up front, then blocks handling write
// events until ctx is cancelled. The handler runs synchronously: each cycle
// completes before the next event is taken, so no locking is needed.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started. Monitoring: %s", w.inputDir)

	// Produce the output once before any edit occurs
	if err := w.handler(ctx, w.filePath); err != nil {
		w.logger.Error(ctx, "Initial processing failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Write == fsnotify.Write && filepath.Base(event.Name) == w.filename {
				w.logger.Info(ctx, "Detected modification in %s, reprocessing...", w.filename)
				if err := w.handler(ctx, w.filePath); err != nil {
					w.logger.Error(ctx, "Failed to process %s: %v", w.filePath, err)
				}
			} else {
				w.logger.Debug(ctx, "Ignoring event for %s", event.Name)
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
