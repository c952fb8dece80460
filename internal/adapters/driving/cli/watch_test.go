package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInputChange(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "list-one.xml")

	tests := []struct {
		name     string
		path     string
		op       fsnotify.Op
		expected bool
	}{
		{"write to target", target, fsnotify.Write, true},
		{"create target", target, fsnotify.Create, true},
		{"write and chmod", target, fsnotify.Write | fsnotify.Chmod, true},
		{"remove target", target, fsnotify.Remove, false},
		{"rename target", target, fsnotify.Rename, false},
		{"chmod target", target, fsnotify.Chmod, false},
		{"write to sibling", filepath.Join(dir, "other.xml"), fsnotify.Write, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := fsnotify.Event{Name: tt.path, Op: tt.op}
			assert.Equal(t, tt.expected, isInputChange(event, target))
		})
	}
}

func TestWatchInput_RebuildsOnWrite(t *testing.T) {
	original := watchDebounce
	watchDebounce = 10 * time.Millisecond
	defer func() { watchDebounce = original }()

	path := filepath.Join(t.TempDir(), "list-one.xml")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rebuilt := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- watchInput(ctx, path, func() error {
			select {
			case rebuilt <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	// The watcher registers asynchronously, so keep writing until it reacts.
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
loop:
	for {
		select {
		case <-rebuilt:
			break loop
		case <-ticker.C:
			require.NoError(t, os.WriteFile(path, []byte("v2"), 0644))
		case <-deadline:
			t.Fatal("timed out waiting for rebuild")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatchInput_MissingDirectory(t *testing.T) {
	err := watchInput(context.Background(), filepath.Join(t.TempDir(), "nope", "list-one.xml"), func() error {
		return nil
	})

	assert.Error(t, err)
}
