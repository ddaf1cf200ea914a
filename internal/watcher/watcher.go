// Package watcher monitors open files for outside changes and publishes
// debounced notifications so the editor can offer a reload.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"justcode/internal/log"
	"justcode/internal/pubsub"
)

// Watcher tracks a set of files by watching their parent directories.
// Editors and tools often replace files via rename, which drops inotify
// watches on the file itself; directory watches survive that.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	broker    *pubsub.Broker[string]
	debounce  time.Duration
	done      chan struct{}

	mu     sync.Mutex
	files  map[string]struct{} // absolute paths being tracked
	dirs   map[string]int      // directory -> tracked file count
	timers map[string]*time.Timer
}

// Config holds watcher configuration options.
type Config struct {
	DebounceDur time.Duration
}

// DefaultConfig returns sensible defaults for the watcher.
func DefaultConfig() Config {
	return Config{DebounceDur: 250 * time.Millisecond}
}

// New creates a file watcher. Call Start before Watch.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsw,
		broker:    pubsub.NewBroker[string](),
		debounce:  cfg.DebounceDur,
		done:      make(chan struct{}),
		files:     make(map[string]struct{}),
		dirs:      make(map[string]int),
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Events returns the broker that delivers change notifications. Payloads
// are absolute file paths.
func (w *Watcher) Events() *pubsub.Broker[string] {
	return w.broker
}

// Start begins processing file system events.
func (w *Watcher) Start() {
	go w.loop()
}

// Watch adds a file to the tracked set.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.files[abs]; ok {
		return nil
	}

	dir := filepath.Dir(abs)
	if w.dirs[dir] == 0 {
		if err := w.fsWatcher.Add(dir); err != nil {
			return fmt.Errorf("watching directory %s: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.files[abs] = struct{}{}

	log.Debug(log.CatWatcher, "watching file", "path", abs)
	return nil
}

// WatchDir watches a directory itself, without tracking any file in it.
// Creates, deletes, and renames of untracked entries are published so the
// file tree can refresh its listing. The watch lasts until Stop.
func (w *Watcher) WatchDir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dirs[abs] == 0 {
		if err := w.fsWatcher.Add(abs); err != nil {
			return fmt.Errorf("watching directory %s: %w", abs, err)
		}
	}
	w.dirs[abs]++

	log.Debug(log.CatWatcher, "watching directory", "path", abs)
	return nil
}

// Unwatch removes a file from the tracked set. The directory watch is
// dropped once no tracked file remains in it.
func (w *Watcher) Unwatch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.files[abs]; !ok {
		return nil
	}
	delete(w.files, abs)

	if timer, ok := w.timers[abs]; ok {
		timer.Stop()
		delete(w.timers, abs)
	}

	dir := filepath.Dir(abs)
	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		if err := w.fsWatcher.Remove(dir); err != nil {
			return fmt.Errorf("unwatching directory %s: %w", dir, err)
		}
	}
	return nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)

	w.mu.Lock()
	for _, timer := range w.timers {
		timer.Stop()
	}
	w.timers = map[string]*time.Timer{}
	w.mu.Unlock()

	w.broker.Close()
	return w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "watch error", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}

	w.mu.Lock()
	_, tracked := w.files[abs]
	w.mu.Unlock()

	if !tracked {
		// Untracked entries only matter when the directory listing changed;
		// plain writes to them stay silent.
		switch {
		case event.Op&fsnotify.Create != 0:
			w.broker.Publish(pubsub.FileCreatedEvent, abs)
		case event.Op&fsnotify.Remove != 0:
			w.broker.Publish(pubsub.FileDeletedEvent, abs)
		case event.Op&fsnotify.Rename != 0:
			w.broker.Publish(pubsub.FileRenamedEvent, abs)
		}
		return
	}

	switch {
	case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
		// Writes arrive in bursts; coalesce them per file.
		w.scheduleNotify(abs, pubsub.FileModifiedEvent)
	case event.Op&fsnotify.Remove != 0:
		w.broker.Publish(pubsub.FileDeletedEvent, abs)
	case event.Op&fsnotify.Rename != 0:
		w.broker.Publish(pubsub.FileRenamedEvent, abs)
	}
}

func (w *Watcher) scheduleNotify(path string, eventType pubsub.EventType) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.timers[path]; ok {
		timer.Reset(w.debounce)
		return
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		select {
		case <-w.done:
			return
		default:
		}
		log.Debug(log.CatWatcher, "file changed", "path", path)
		w.broker.Publish(eventType, path)
	})
}
