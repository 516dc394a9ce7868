package theme

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a theme file for changes and reloads it.
type Watcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	logger   *slog.Logger
	onChange func(*Theme)
	done     chan struct{}
	mu       sync.Mutex
	running  bool
}

// NewWatcher creates a watcher for the given theme file. onChange is invoked
// with the reloaded theme after each successful reload.
func NewWatcher(filePath string, logger *slog.Logger, onChange func(*Theme)) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:  fsw,
		filePath: filePath,
		logger:   logger,
		onChange: onChange,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching the theme file for changes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory containing the file (more reliable for writes)
	dir := filepath.Dir(w.filePath)
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	go w.watch()
	return nil
}

// watch is the main watch loop.
func (w *Watcher) watch() {
	filename := filepath.Base(w.filePath)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only care about our file
			if filepath.Base(event.Name) != filename {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.logger.Debug("theme file changed, reloading", "file", w.filePath)
				t, err := Load(w.filePath)
				if err != nil {
					w.logger.Warn("failed to reload theme", "error", err)
					continue
				}
				if w.onChange != nil {
					w.onChange(t)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("theme watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.running = false
	close(w.done)
	return w.watcher.Close()
}
