package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/wilofice/voiceflow/internal/logger"
)

func testLogger() logger.Logger {
	return logger.New("error", "json")
}

func waitCall(t *testing.T, calls <-chan string) string {
	t.Helper()
	select {
	case path := <-calls:
		return path
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for handler call")
		return ""
	}
}

func TestNew(t *testing.T) {
	dir := t.TempDir()
	handler := func(ctx context.Context, filePath string) error { return nil }

	w, err := New(dir, filepath.Join(dir, "transcript.txt"), handler, testLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if w == nil {
		t.Fatal("New() returned nil watcher")
	}
	if err := w.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
}

func TestNewInvalidDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	handler := func(ctx context.Context, filePath string) error { return nil }

	if _, err := New(dir, filepath.Join(dir, "transcript.txt"), handler, testLogger()); err == nil {
		t.Error("New() should fail for a nonexistent directory")
	}
}

func TestStartRunsInitialCycle(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "transcript.txt")

	calls := make(chan string, 8)
	handler := func(ctx context.Context, p string) error {
		calls <- p
		return nil
	}

	w, err := New(dir, filePath, handler, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := w.Start(ctx); err != context.Canceled {
		t.Errorf("Start() error = %v, want context.Canceled", err)
	}

	if got := waitCall(t, calls); got != filePath {
		t.Errorf("initial cycle path = %q, want %q", got, filePath)
	}
	if len(calls) != 0 {
		t.Errorf("handler called %d extra times, want none", len(calls))
	}
}

func TestStartReprocessesOnWrite(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "transcript.txt")
	if err := os.WriteFile(filePath, []byte("first"), 0644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan string, 8)
	handler := func(ctx context.Context, p string) error {
		calls <- p
		return nil
	}

	w, err := New(dir, filePath, handler, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Initial cycle fires before the event loop
	waitCall(t, calls)

	// A write to an unrelated file in the same directory is ignored
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("noise"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-calls:
		t.Fatal("handler ran for an unrelated file")
	case <-time.After(250 * time.Millisecond):
	}

	// A write to the tracked file triggers a reprocess
	if err := os.WriteFile(filePath, []byte("second"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := waitCall(t, calls); got != filePath {
		t.Errorf("reprocess path = %q, want %q", got, filePath)
	}

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Start() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for Start() to return")
	}
}

func TestStartContinuesAfterHandlerError(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "transcript.txt")
	if err := os.WriteFile(filePath, []byte("first"), 0644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan string, 8)
	handler := func(ctx context.Context, p string) error {
		calls <- p
		return errors.New("cycle failed")
	}

	w, err := New(dir, filePath, handler, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Initial cycle fails
	waitCall(t, calls)

	// A failed cycle must not end the loop
	if err := os.WriteFile(filePath, []byte("second"), 0644); err != nil {
		t.Fatal(err)
	}
	waitCall(t, calls)

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Start() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for Start() to return")
	}
}

func TestStartContinuesAfterWatchError(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "transcript.txt")
	if err := os.WriteFile(filePath, []byte("first"), 0644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan string, 8)
	handler := func(ctx context.Context, p string) error {
		calls <- p
		return nil
	}

	w, err := New(dir, filePath, handler, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	waitCall(t, calls)

	// Deliver the error the backend reports when its event queue overflows
	select {
	case w.(*implWatcher).watcher.Errors <- fsnotify.ErrEventOverflow:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out delivering watch error")
	}

	// The loop still serves events afterwards
	if err := os.WriteFile(filePath, []byte("second"), 0644); err != nil {
		t.Fatal(err)
	}
	waitCall(t, calls)

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Start() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for Start() to return")
	}
}

func TestStartReturnsAfterStop(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "transcript.txt")

	calls := make(chan string, 8)
	handler := func(ctx context.Context, p string) error {
		calls <- p
		return nil
	}

	w, err := New(dir, filePath, handler, testLogger())
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	waitCall(t, calls)

	if err := w.Stop(); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-done:
		if err == nil || !strings.Contains(err.Error(), "channel closed") {
			t.Errorf("Start() error = %v, want closed channel error", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for Start() to return")
	}
}
