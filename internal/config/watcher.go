package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ReloadFunc receives the result of reloading a watched file.
type ReloadFunc func(cfg *Config, err error)

// Watch reloads the file at path each time it is written or created and
// passes the result to fn. It watches the parent directory so editors that
// save by renaming a temporary file are seen. fn runs on the watcher goroutine. Watching stops
// when ctx is done.
func Watch(ctx context.Context, path string, fn ReloadFunc) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return fmt.Errorf("watching %s: %w", path, err)
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !isReload(ev.Op) {
					continue
				}
				fn(Load(abs, nil))

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				fn(nil, fmt.Errorf("%w: %v", ErrWatchStopped, err))
			}
		}
	}()
	return nil
}

func isReload(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create)
}
