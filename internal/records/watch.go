package records

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rshade/recordgrid/internal/logging"
)

// ReloadDelay is how long the file must stay quiet before it is reloaded.
// A single save usually arrives as a truncate and one or more writes.
const ReloadDelay = 150 * time.Millisecond

// Watch reloads path whenever it is written or recreated and hands the result
// to onChange. The parent directory is watched so that editors which replace
// the file on save are still seen. Bursts of events are merged into one
// reload after ReloadDelay of quiet. A file that fails to load is reported to
// onChange with a nil slice and the error.
//
// Watch returns once the watcher is running. It stops when ctx is done.
func Watch(ctx context.Context, path string, onChange func([]Record, error)) error {
	return watch(ctx, path, ReloadDelay, onChange)
}

func watch(ctx context.Context, path string, delay time.Duration, onChange func([]Record, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	if err = watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	go watchLoop(ctx, watcher, abs, delay, onChange)
	return nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, abs string, delay time.Duration, onChange func([]Record, error)) {
	log := logging.FromContext(ctx)
	defer watcher.Close()

	timer := time.NewTimer(delay)
	timer.Stop()
	defer timer.Stop()

	// pending is nil while no reload is scheduled.
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != abs || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(delay)
			pending = timer.C
		case <-pending:
			pending = nil
			recs, loadErr := LoadFile(abs)
			if loadErr != nil {
				log.Warn().Ctx(ctx).
					Str("component", "records").
					Str("path", abs).
					Err(loadErr).
					Msg("reload failed")
				onChange(nil, loadErr)
				continue
			}
			log.Info().Ctx(ctx).
				Str("component", "records").
				Str("path", abs).
				Int("count", len(recs)).
				Msg("records reloaded")
			onChange(recs, nil)
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Ctx(ctx).Str("component", "records").Err(watchErr).Msg("file watcher error")
		}
	}
}
