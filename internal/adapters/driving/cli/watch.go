package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/yomu-cli/internal/logger"
)

// watchDebounce is the quiet period after the last change before a
// re-import starts. Archives are often written in several chunks.
var watchDebounce = 500 * time.Millisecond

// watchImports re-imports target whenever it changes, until ctx is done.
// A file target is watched through its parent directory so that editors
// and downloaders that replace the file are still seen.
func watchImports(ctx context.Context, cmd *cobra.Command, target string) error {
	target = filepath.Clean(target)
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("watch %s: %w", target, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := target
	if !info.IsDir() {
		dir = filepath.Dir(target)
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	cmd.Printf("Watching %s for changes (Ctrl+C to stop)...\n", target)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if isImportEvent(event, target, info.IsDir()) {
				logger.Debug("Change: %s %s", event.Op, event.Name)
				pending = time.After(watchDebounce)
			}

		case <-pending:
			pending = nil
			importOnce(ctx, cmd, target)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watch error: %v", err)
		}
	}
}

// isImportEvent reports whether event changes the watched target.
// For a directory target every write or create inside it counts.
func isImportEvent(event fsnotify.Event, target string, isDir bool) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	if isDir {
		return true
	}
	return filepath.Clean(event.Name) == target
}
