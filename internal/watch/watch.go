// Package watch reports writes to source files so they can be checked
// again.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDelay is how long a file must stay unchanged before it is reported
const DefaultDelay = 200 * time.Millisecond

// Watcher watches directories and reports files accepted by a filter
type Watcher struct {
	watcher *fsnotify.Watcher
	match   func(path string) bool

	// Delay is the quiet period required after the last event for a file.
	Delay time.Duration

	// OnError receives watcher errors, they are dropped when nil.
	OnError func(error)
}

// New watches dirs, match selects the files to report
func New(dirs []string, match func(path string) bool) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}

	return &Watcher{
		watcher: watcher,
		match:   match,
		Delay:   DefaultDelay,
	}, nil
}

// Files returns a filter accepting exactly the given paths
func Files(paths ...string) func(string) bool {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[filepath.Clean(p)] = true
	}
	return func(path string) bool {
		return set[filepath.Clean(path)]
	}
}

// Ext returns a filter accepting files with the given extension
func Ext(ext string) func(string) bool {
	return func(path string) bool {
		return filepath.Ext(path) == ext
	}
}

// Run calls fn for every created or written file until ctx is done. Events
// are debounced per file: fn runs once the file has been quiet for Delay, so
// it sees the content of the last write.
func (w *Watcher) Run(ctx context.Context, fn func(path string)) error {
	defer w.watcher.Close()

	stop := make(chan struct{})
	defer close(stop)

	fired := make(chan string)
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case path := <-fired:
			delete(timers, path)
			fn(path)

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !w.match(event.Name) {
				continue
			}

			if t, exists := timers[event.Name]; exists {
				t.Reset(w.Delay)
				continue
			}

			path := event.Name
			timers[path] = time.AfterFunc(w.Delay, func() {
				select {
				case fired <- path:
				case <-stop:
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			if w.OnError != nil {
				w.OnError(err)
			}
		}
	}
}
