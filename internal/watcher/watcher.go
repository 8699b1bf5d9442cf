// Package watcher reloads the overlay when the loaded image file changes on
// disk.
package watcher

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"xoverlay/internal/bus"
)

// debounceDelay absorbs the bursts of write events editors produce while
// saving.
const debounceDelay = 200 * time.Millisecond

type Watcher struct {
	cmds  *bus.Commands
	pathC chan string
}

func New(cmds *bus.Commands) *Watcher {
	w := &Watcher{
		cmds:  cmds,
		pathC: make(chan string, 1),
	}

	bus.Subscribe("watcher.Watcher", func(_ context.Context, event bus.EventImageLoaded) error {
		// Keep only the latest path if the service is behind.
		select {
		case <-w.pathC:
		default:
		}
		w.pathC <- event.Path
		return nil
	})

	return w
}

func (w *Watcher) String() string { return "watcher.Watcher" }

func (w *Watcher) Serve(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	// Watch the directory rather than the file: editors that save by
	// rename-replace would otherwise leave the watch on a dead inode.
	var current string
	var watchedDir string

	debounce := time.NewTimer(time.Hour)
	debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case path := <-w.pathC:
			abs, err := filepath.Abs(path)
			if err != nil {
				slog.Warn("Failed to resolve image path", "path", path, "error", err)
				continue
			}

			dir := filepath.Dir(abs)
			if dir != watchedDir {
				if watchedDir != "" {
					_ = fsw.Remove(watchedDir)
				}
				if err := fsw.Add(dir); err != nil {
					slog.Warn("Failed to watch image directory", "dir", dir, "error", err)
					watchedDir = ""
					continue
				}
				watchedDir = dir
			}
			current = abs
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if ev.Name == current && ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				debounce.Reset(debounceDelay)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			slog.Error("Watcher error", "error", err)
		case <-debounce.C:
			if current == "" {
				continue
			}
			slog.Info("Image changed on disk, reloading", "path", current)
			if err := w.cmds.Send(ctx, bus.OpenCmd{Path: current}); err != nil {
				return err
			}
		}
	}
}
