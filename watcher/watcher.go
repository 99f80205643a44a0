// Package watcher reloads a stylesheet when it changes on disk.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"breakpoint-indicator/log"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceDuration is how long the file must stay quiet before a
// reload. Editors often save in several steps (truncate, write, rename).
const DefaultDebounceDuration = 250 * time.Millisecond

// Watcher calls a function once the watched file has been written, created,
// renamed or removed and then left alone for the debounce window. The parent
// directory is watched so that editors which replace the file on save are
// handled.
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	debounce time.Duration
	onChange func()

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Watch starts watching path. onChange runs on the watcher's goroutine. A
// zero debounce uses DefaultDebounceDuration.
func Watch(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve stylesheet path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounceDuration
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		fs:       fsw,
		debounce: debounce,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// loop owns the reload timer. Every relevant event pushes the reload back by
// the debounce window, so a burst of events causes one reload.
func (w *Watcher) loop() {
	defer w.wg.Done()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()
	var pending <-chan time.Time

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			log.Debug("stylesheet event: %s", event)
			timer.Reset(w.debounce)
			pending = timer.C
		case <-pending:
			pending = nil
			w.onChange()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.WarningLog.Printf("stylesheet watcher error: %v", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. A reload that is still waiting out the debounce
// window is dropped.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
	})
	return err
}
