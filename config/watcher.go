package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher reports edits made to a settings file while the program runs.
type Watcher struct {
	fs      *fsnotify.Watcher
	path    string
	changes chan WindowSettings
	done    chan struct{}
	cancel  context.CancelFunc
}

// Watch starts watching the settings file at path. The file's directory is watched
// rather than the file itself so that editors replacing the file are noticed.
// Changes that fail to load are logged and skipped.
func Watch(ctx context.Context, path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	ctx, cancel := context.WithCancel(ctx)
	w := &Watcher{
		fs:      fsw,
		path:    abs,
		changes: make(chan WindowSettings, 1),
		done:    make(chan struct{}),
		cancel:  cancel,
	}
	go w.loop(ctx)
	return w, nil
}

// Changes delivers the latest settings after each successful reload. Only the most
// recent value is kept when the receiver falls behind.
func (w *Watcher) Changes() <-chan WindowSettings {
	return w.changes
}

// Close stops the watcher and waits for it to exit.
func (w *Watcher) Close() error {
	w.cancel()
	<-w.done
	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)
	defer w.fs.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Str("path", w.path).Msg("settings watcher error")
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			c, err := read(w.path)
			if err != nil {
				log.Warn().Err(err).Str("op", ev.Op.String()).Msg("ignoring settings change")
				continue
			}
			log.Debug().Str("op", ev.Op.String()).Str("path", w.path).Msg("settings changed on disk")
			w.publish(c.Window)
		}
	}
}

func (w *Watcher) publish(s WindowSettings) {
	select {
	case <-w.changes:
	default:
	}
	w.changes <- s
}
