package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/wilofice/voiceflow/internal/config"
	"github.com/wilofice/voiceflow/internal/logger"
	"github.com/wilofice/voiceflow/internal/processor"
	"github.com/wilofice/voiceflow/internal/transcript"
	"github.com/wilofice/voiceflow/internal/watcher"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript Cleaner")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Monitoring: %s", cfg.Transcript.Input)
	log.Info(ctx, "Output: %s", cfg.Transcript.Output)

	if _, err := os.Stat(cfg.Transcript.Input); os.IsNotExist(err) {
		log.Error(ctx, "Transcript file not found at %s", cfg.Transcript.Input)
		os.Exit(1)
	}

	// Initialize dependencies
	ext := transcript.New(log)
	proc := processor.New(cfg, ext, log, os.Stdout)

	// Watch the directory containing the transcript file
	watchDir := filepath.Dir(cfg.Transcript.Input)
	w, err := watcher.New(watchDir, cfg.Transcript.Input, proc.Process, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	// Stop the watcher and wait for it to return before exiting
	cancel()
	<-done

	log.Info(ctx, "Transcript Cleaner stopped")
}
