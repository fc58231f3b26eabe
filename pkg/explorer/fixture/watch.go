package fixture

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/datatug/buftug/pkg/explorer"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits for writes to settle before reloading.
const DefaultDebounce = 200 * time.Millisecond

type watchOptions struct {
	debounce time.Duration
	onError  func(error)
}

type WatchOption func(*watchOptions)

func WithDebounce(d time.Duration) WatchOption {
	return func(o *watchOptions) {
		o.debounce = d
	}
}

// OnWatchError sets the callback for reload and watcher errors.
func OnWatchError(f func(error)) WatchOption {
	return func(o *watchOptions) {
		o.onError = f
	}
}

// Watch reloads the fixture at filePath every time it is written and passes
// the new tree to onChange. Reloads are delivered one at a time, but stop
// does not wait for a pending onChange: a callback that blocks, such as a
// UI update queued after the event loop ended, is abandoned.
// The returned stop function may be called more than once.
func Watch(filePath string, onChange func(root *explorer.Folder), options ...WatchOption) (stop func(), err error) {
	o := watchOptions{
		debounce: DefaultDebounce,
		onError:  func(error) {},
	}
	for _, option := range options {
		option(&o)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	// Editors often replace the file, so watch the directory.
	dir := filepath.Dir(absPath)
	if err = fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		watchLoop(fsw, absPath, o, onChange, done)
	}()

	var once sync.Once
	stop = func() {
		once.Do(func() {
			close(done)
			_ = fsw.Close()
			wg.Wait()
		})
	}
	return stop, nil
}

func watchLoop(fsw *fsnotify.Watcher, absPath string, o watchOptions, onChange func(*explorer.Folder), done <-chan struct{}) {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-done:
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != absPath || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(o.debounce)
			} else {
				timer.Reset(o.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			root, err := Load(absPath)
			if err != nil {
				o.onError(err)
				continue
			}
			if !deliver(func() { onChange(root) }, done) {
				return
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			o.onError(err)
		}
	}
}

// deliver runs f on its own goroutine and waits for it or for done.
// It reports whether f finished.
func deliver(f func(), done <-chan struct{}) bool {
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		f()
	}()
	select {
	case <-finished:
		return true
	case <-done:
		return false
	}
}
