package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/tubescribe/internal/logger"
)

func TestIsRelevant(t *testing.T) {
	w := &implWatcher{filePath: "/etc/app/config.yaml"}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write to file", fsnotify.Event{Name: "/etc/app/config.yaml", Op: fsnotify.Write}, true},
		{"create file", fsnotify.Event{Name: "/etc/app/config.yaml", Op: fsnotify.Create}, true},
		{"chmod only", fsnotify.Event{Name: "/etc/app/config.yaml", Op: fsnotify.Chmod}, false},
		{"sibling file", fsnotify.Event{Name: "/etc/app/other.yaml", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.isRelevant(tt.event); got != tt.want {
				t.Errorf("isRelevant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWatcherCallsHandlerOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: info\n"), 0644); err != nil {
		t.Fatal(err)
	}

	called := make(chan string, 4)
	w, err := New(path, func(ctx context.Context, filePath string) error {
		called <- filePath
		return nil
	}, logger.New("error"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Give the goroutine a moment to enter its loop before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-called:
		want, _ := filepath.Abs(path)
		if got != want {
			t.Errorf("handler path = %q, want %q", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called after write")
	}

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Start() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after cancel")
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := New("/nonexistent/dir/config.yaml", func(context.Context, string) error { return nil }, logger.New("error"))
	if err == nil {
		t.Fatal("New() should fail when the parent directory does not exist")
	}
}
