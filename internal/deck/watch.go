package deck

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"slidereel/internal/logger"
)

// ReloadFunc receives a freshly parsed deck, or the error that prevented it
type ReloadFunc func(*Deck, error)

// Watcher reloads a deck file whenever it changes on disk
type Watcher struct {
	path     string
	opts     Options
	onReload ReloadFunc
	delay    time.Duration

	fs        *fsnotify.Watcher
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// Watch starts watching path. The directory is watched rather than the file so
// editors that save by rename keep triggering reloads.
func Watch(path string, opts Options, onReload ReloadFunc) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve deck path: %w", err)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to watch deck directory: %w", err)
	}

	w := &Watcher{
		path:     abs,
		opts:     opts,
		onReload: onReload,
		delay:    100 * time.Millisecond,
		fs:       fs,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Close stops the watcher and waits for its goroutine
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	// Saves arrive as bursts of events; reload once the burst is over
	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}
			fire = timer.C
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("deck watcher error", "error", err)
		case <-fire:
			fire = nil
			d, err := Load(w.path, w.opts)
			if err != nil {
				logger.Warn("deck reload failed", "path", w.path, "error", err)
			} else {
				logger.Info("deck reloaded", "path", w.path, "slides", d.Info.SlideCount)
			}
			w.onReload(d, err)
		}
	}
}
