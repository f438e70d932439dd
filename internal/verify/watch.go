package verify

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces bursts of fs events (editors, copies) into a
// single re-verification.
const debounceWindow = 250 * time.Millisecond

// Watch re-runs the file presence check whenever installDir changes,
// passing each fresh Report to fn. The initial state is reported
// immediately. Watch blocks until ctx is canceled.
func Watch(ctx context.Context, installDir string, required []string, fn func(Report)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(installDir); err != nil {
		return fmt.Errorf("watch %s: %w", installDir, err)
	}

	fn(Files(installDir, required))

	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Only create/remove/rename can change presence.
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(debounceWindow)
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(debounceWindow)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			fn(Files(installDir, required))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}
