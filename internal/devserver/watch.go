package devserver

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const watchDebounce = 100 * time.Millisecond

// watchEntries watches the parent directories of the entry points and
// notifies the reload hub on debounced write/create events. Watching the
// directories rather than the files themselves catches editors that
// replace files atomically. Blocks until ctx is cancelled.
func watchEntries(ctx context.Context, entryPoints []string, hub *reloadHub, log zerolog.Logger) error {
	if len(entryPoints) == 0 {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dirs := map[string]struct{}{}
	for _, entry := range entryPoints {
		dirs[filepath.Dir(entry)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			log.Warn().Str("dir", dir).Err(err).Msg("watch failed")
		}
	}

	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Debug().Str("file", event.Name).Msg("source changed")
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, hub.notify)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")
		}
	}
}
