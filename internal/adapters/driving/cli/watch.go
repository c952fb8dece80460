package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/iso4217/internal/logger"
)

// watchDebounce coalesces the burst of events an editor save produces.
var watchDebounce = 200 * time.Millisecond

// watchInput calls rebuild after each change to path until ctx is done.
// The parent directory is watched so editors that replace the file by
// rename are still seen. Rebuild failures are logged, not returned.
func watchInput(ctx context.Context, path string, rebuild func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if isInputChange(event, target) {
				logger.Debug("%s: %s", event.Op, event.Name)
				pending = time.After(watchDebounce)
			}

		case <-pending:
			pending = nil
			if err := rebuild(); err != nil {
				logger.Warn("rebuild failed: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}
}

// isInputChange reports whether event rewrote target.
// Removal and chmod are ignored: the next write or create triggers the rebuild.
func isInputChange(event fsnotify.Event, target string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
