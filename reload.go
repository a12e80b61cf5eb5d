package learngl

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Reloader watches shader source files and flags them as changed.
//
// Watching happens on a background goroutine, but graphics calls must stay
// on the thread owning the context, so the frame loop polls Changed and
// rebuilds the program itself.
type Reloader struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	changed atomic.Bool
	logger  *slog.Logger

	done chan struct{}
	wg   sync.WaitGroup
}

// NewReloader starts watching the given files. Their parent directories are
// watched so that editors which replace files on save are still seen.
func NewReloader(logger *slog.Logger, paths ...string) (*Reloader, error) {
	if logger == nil {
		logger = slog.Default()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}

	r := &Reloader{
		watcher: w,
		files:   make(map[string]bool),
		logger:  logger,
		done:    make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("shader watcher: %w", err)
		}
		r.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	r.wg.Add(1)
	go r.run()
	return r, nil
}

func (r *Reloader) run() {
	defer r.wg.Done()
	for {
		select {
		case <-r.done:
			return
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if !r.relevant(event) {
				continue
			}
			r.logger.Debug("shader source changed", "file", event.Name, "op", event.Op.String())
			r.changed.Store(true)
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.logger.Warn("shader watcher", "err", err)
		}
	}
}

func (r *Reloader) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return r.files[abs]
}

// Changed reports whether a watched file changed since the last call,
// and clears the flag.
func (r *Reloader) Changed() bool {
	return r.changed.Swap(false)
}

// Close stops watching.
func (r *Reloader) Close() error {
	select {
	case <-r.done:
		return nil
	default:
	}
	close(r.done)
	err := r.watcher.Close()
	r.wg.Wait()
	return err
}
