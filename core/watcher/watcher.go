package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/modfence/modfence/core/logger"
)

const debounceDelay = 500 * time.Millisecond

// Watcher re-runs a callback when files under the watched roots change.
// Change bursts are debounced so one save triggers one pass.
type Watcher struct {
	watcher  *fsnotify.Watcher
	roots    []string
	ignore   []string
	onChange func() error

	mu       sync.Mutex
	debounce *time.Timer
}

func New(roots, ignore []string, onChange func() error) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &Watcher{
		watcher:  fsw,
		roots:    roots,
		ignore:   ignore,
		onChange: onChange,
	}, nil
}

// Watch blocks, dispatching debounced onChange calls until the underlying
// watcher is closed.
func (w *Watcher) Watch() error {
	for _, root := range w.roots {
		if err := w.addRecursively(root); err != nil {
			return fmt.Errorf("failed to add watchers: %w", err)
		}
	}

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if w.ignored(event.Name) {
				continue
			}

			logger.Debug("File event: %s %s", event.Op, event.Name)

			if event.Has(fsnotify.Create) {
				if stat, err := os.Stat(event.Name); err == nil && stat.IsDir() {
					logger.Debug("Adding watcher for new directory: %s", event.Name)
					w.watcher.Add(event.Name)
				}
			}

			w.debounceChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) debounceChange() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}

	w.debounce = time.AfterFunc(debounceDelay, func() {
		logger.Debug("File changes detected, re-running pass...")
		if err := w.onChange(); err != nil {
			logger.Error("Watcher onChange failed: %v", err)
		}
	})
}

func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	return w.watcher.Close()
}

func (w *Watcher) addRecursively(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logger.Warn("Failed to access %s: %v", path, err)
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if w.ignoredName(info.Name()) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

func (w *Watcher) ignored(path string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if w.ignoredName(segment) {
			return true
		}
	}
	return false
}

func (w *Watcher) ignoredName(name string) bool {
	for _, ex := range w.ignore {
		if name == ex {
			return true
		}
	}
	return false
}
