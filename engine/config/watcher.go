package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/oriel-sdk/oriel/engine/core"
)

// debounceDelay coalesces the burst of filesystem events one editor save
// produces into a single reload.
const debounceDelay = 100 * time.Millisecond

// Pusher is where reload notifications go.
type Pusher interface {
	PushEvent(event core.Event)
}

// Watcher pushes a config reload event whenever the file changes on disk.
// It watches the directory rather than the file: editors replace files on
// save, and a watch on the old inode would go silent after the first write.
type Watcher struct {
	path     string
	pusher   Pusher
	fsnotify *fsnotify.Watcher
	done     chan struct{}
}

func NewWatcher(path string, pusher Pusher) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsWatch.Add(filepath.Dir(absPath)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	w := &Watcher{
		path:     absPath,
		pusher:   pusher,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}
	go w.start()
	return w, nil
}

func (w *Watcher) start() {
	defer close(w.done)

	var pending *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if pending == nil {
				pending = time.NewTimer(debounceDelay)
				fire = pending.C
			} else {
				pending.Reset(debounceDelay)
			}

		case <-fire:
			pending = nil
			fire = nil
			core.LogInfo("config file %s changed", w.path)
			w.pusher.PushEvent(core.NewEvent(core.KindConfigReloaded, core.HandleNone, core.ConfigPayload{
				Path: w.path,
			}))

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fsnotify.Close()
	<-w.done
	return err
}
