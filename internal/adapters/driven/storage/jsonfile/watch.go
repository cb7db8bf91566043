package jsonfile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/tavern/internal/logger"
)

// relevantOps are the events that can change the store's contents.
const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Rename | fsnotify.Remove

// Watch signals on the returned channel whenever the store file changes.
// The parent directory is watched, since writes replace the file by rename.
// Bursts of events coalesce into a single pending signal. The channel is
// closed when ctx is done.
func (s *Store) Watch(ctx context.Context) (<-chan struct{}, error) {
	target, err := filepath.Abs(s.path)
	if err != nil {
		return nil, fmt.Errorf("resolve store path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !isStoreEvent(event, target) {
					continue
				}
				logger.Debug("store changed: %s", event)
				select {
				case changes <- struct{}{}:
				default:
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("store watcher: %v", err)
			}
		}
	}()

	return changes, nil
}

// isStoreEvent reports whether event touches the store file itself.
func isStoreEvent(event fsnotify.Event, target string) bool {
	if event.Op&relevantOps == 0 {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == target
}
