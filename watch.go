package stanza

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long to wait for further changes before rebuilding,
// so an editor save burst triggers one rebuild instead of several.
const watchDebounce = 500 * time.Millisecond

// Watch rebuilds the site whenever the content or static directory changes.
// It blocks until ctx is canceled. Build failures are logged, not fatal:
// a schema violation mid-edit should not kill the watch loop.
func (b *Builder) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("stanza: start watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range []string{b.Config.ContentDir, b.Config.StaticDir} {
		if err := addRecursive(watcher, dir); err != nil {
			return err
		}
	}

	var timer *time.Timer
	rebuild := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// New subdirectories need their own watch.
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = addRecursive(watcher, ev.Name)
				}
			}
			if timer == nil {
				timer = time.AfterFunc(watchDebounce, func() { rebuild <- struct{}{} })
			} else {
				timer.Reset(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			b.logger.Warn("watch error", "error", err)
		case <-rebuild:
			timer = nil
			if _, err := b.Build(ctx); err != nil {
				b.logger.Error("rebuild failed", "error", err)
			}
		}
	}
}

func addRecursive(watcher *fsnotify.Watcher, dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("stanza: watch %s: %w", path, err)
			}
		}
		return nil
	})
}
