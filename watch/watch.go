// Package watch notifies the editor when a file it has open changes on
// disk underneath it, so it can offer to reload.
package watch

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/rjeczalik/notify"

	"github.com/gridtext/ped/internal/logging"
)

// Watcher tracks a set of paths and runs a callback whenever the
// underlying file changes, is removed and recreated, or renamed over.
//
// notify has no per-path unwatch on a shared channel, so each top-level
// watchpoint gets its own notify channel and forwarding goroutine; tying
// them off individually is what makes UnWatch precise.
type Watcher struct {
	sink     chan event
	watched  map[string][]func()
	watchers map[string]chan notify.EventInfo // path -> its own notify channel
	dirs     []string                         // directories watched on behalf of not-yet-existing files
	lock     sync.Mutex
}

type event struct {
	path string
	kind notify.Event
}

// NewWatcher returns a Watcher. Call Observe in its own goroutine to
// start delivering events.
func NewWatcher() *Watcher {
	return &Watcher{
		sink:     make(chan event, 16),
		watched:  make(map[string][]func()),
		watchers: make(map[string]chan notify.EventInfo),
	}
}

// Watch runs action whenever path changes. If path doesn't exist yet,
// its parent directory is watched instead so action fires once the
// file is created.
func (w *Watcher) Watch(path string, action func()) {
	fi, err := os.Stat(path)
	isDir := err == nil && fi.IsDir()

	if !isDir && os.IsNotExist(err) {
		w.Watch(filepath.Dir(path), nil)
	}
	if !isDir && action == nil {
		logging.Error("watch: no action given for %s", path)
		return
	}

	w.lock.Lock()
	defer w.lock.Unlock()

	if _, ok := w.watchers[path]; ok {
		if action != nil {
			w.watched[path] = append(w.watched[path], action)
		}
		return
	}
	if !isDir && exists(w.dirs, filepath.Dir(path)) {
		w.watched[path] = append(w.watched[path], action)
		return
	}

	if err := w.startWatch(path); err != nil {
		logging.Error("watch: could not watch %s: %s", path, err)
		return
	}
	w.watched[path] = append(w.watched[path], action)

	if isDir {
		w.dirs = append(w.dirs, path)
		for p := range w.watchers {
			if filepath.Dir(p) == path {
				w.stopWatch(p)
			}
		}
	}
}

// UnWatch stops watching path.
func (w *Watcher) UnWatch(path string) {
	w.lock.Lock()
	defer w.lock.Unlock()

	if _, ok := w.watchers[path]; !ok {
		return
	}
	if exists(w.dirs, path) {
		for p := range w.watched {
			if filepath.Dir(p) == path {
				if _, ok := w.watchers[p]; !ok {
					if err := w.startWatch(p); err != nil {
						logging.Error("watch: could not watch %s: %s", p, err)
						return
					}
				}
			}
		}
	}
	w.stopWatch(path)
	w.dirs = removeStr(w.dirs, path)
	delete(w.watched, path)
}

// startWatch registers path on its own notify channel and forwards its
// events into w.sink. Caller must hold w.lock.
func (w *Watcher) startWatch(path string) error {
	c := make(chan notify.EventInfo, 4)
	events := notify.Write | notify.Create | notify.Remove | notify.Rename
	if err := notify.Watch(path, c, events); err != nil {
		return err
	}
	w.watchers[path] = c
	go func() {
		for info := range c {
			w.sink <- event{path: info.Path(), kind: info.Event()}
		}
	}()
	return nil
}

// stopWatch tears down path's notify channel. Caller must hold w.lock.
func (w *Watcher) stopWatch(path string) {
	c, ok := w.watchers[path]
	if !ok {
		return
	}
	notify.Stop(c)
	close(c)
	delete(w.watchers, path)
}

// Observe blocks, dispatching actions as events arrive. Run it in its
// own goroutine.
func (w *Watcher) Observe() {
	for ev := range w.sink {
		w.dispatch(ev)
	}
}

func (w *Watcher) dispatch(ev event) {
	if ev.kind == notify.Remove {
		w.lock.Lock()
		w.stopWatch(ev.path)
		w.lock.Unlock()
		w.Watch(filepath.Dir(ev.path), nil)
	}

	w.lock.Lock()
	defer w.lock.Unlock()
	actions, ok := w.watched[ev.path]
	if !ok {
		return
	}
	for _, action := range actions {
		if action != nil {
			action()
		}
	}
	if !exists(w.dirs, ev.path) {
		return
	}
	for p, actions := range w.watched {
		if filepath.Dir(p) == ev.path {
			if _, ok := w.watchers[p]; !ok {
				for _, action := range actions {
					action()
				}
			}
		}
	}
}

func exists(paths []string, path string) bool {
	for _, p := range paths {
		if p == path {
			return true
		}
	}
	return false
}

func removeStr(slice []string, path string) []string {
	for i, el := range slice {
		if el == path {
			slice[i], slice = slice[len(slice)-1], slice[:len(slice)-1]
			break
		}
	}
	return slice
}
