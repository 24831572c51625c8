package wallpaper

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"
)

// DefaultDebounce collapses the burst of events an atomic file replace produces
const DefaultDebounce = 250 * time.Millisecond

// Watcher reports changes to the wallpaper file. It watches the file's
// directory so replacements via rename are seen too.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan string
	logger    hclog.Logger
	debounce  time.Duration

	mu     sync.Mutex
	target string
	dir    string
	timer  *time.Timer

	done     chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a file system watcher for wallpaper changes
func NewWatcher(logger hclog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		events:    make(chan string, 1),
		logger:    logger,
		debounce:  DefaultDebounce,
		done:      make(chan struct{}),
	}
	go w.processEvents()
	return w, nil
}

// SetTarget points the watcher at a new wallpaper file. An empty path stops watching.
func (w *Watcher) SetTarget(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if path != "" {
		path = filepath.Clean(path)
	}
	if path == w.target {
		return nil
	}

	dir := ""
	if path != "" {
		dir = filepath.Dir(path)
	}
	if dir != w.dir {
		if w.dir != "" {
			// Remove watches (ignore errors)
			_ = w.fsWatcher.Remove(w.dir)
		}
		if dir != "" {
			if err := w.fsWatcher.Add(dir); err != nil {
				w.target, w.dir = "", ""
				return err
			}
		}
		w.dir = dir
	}
	w.target = path
	w.logger.Debug("watching wallpaper", "path", path)
	return nil
}

// Close stops the watcher
func (w *Watcher) Close() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()

		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
	})
	return err
}

// Run forwards change notifications to fn until ctx is done or the watcher closes
func (w *Watcher) Run(ctx context.Context, fn func(path string)) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case path := <-w.events:
			fn(path)
		}
	}
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("wallpaper watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Rename and create cover wallpaper tools that write a temp file and move it into place
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if filepath.Clean(event.Name) != w.target {
		return
	}

	if w.timer != nil {
		w.timer.Stop()
	}
	target := w.target
	w.timer = time.AfterFunc(w.debounce, func() {
		w.emit(target)
	})
}

// emit delivers path, replacing a pending notification that was not read yet
func (w *Watcher) emit(path string) {
	select {
	case <-w.done:
		return
	default:
	}

	select {
	case w.events <- path:
	default:
		select {
		case <-w.events:
		default:
		}
		select {
		case w.events <- path:
		default:
		}
	}
}
