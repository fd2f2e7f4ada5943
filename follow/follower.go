// Package follow re-renders template files whenever they change on
// disk.
//
// A Follower pairs a template file with a value map. Follow watches the
// file and emits the rendered output every time it changes, which suits
// status lines, generated banners, and other text that tracks an
// editable template:
//
//	f, err := follow.New("motd.tmpl", vals)
//	for out := range f.Follow(ctx) {
//		fmt.Println(out)
//	}
//
// File watching uses fsnotify with a polling fallback.
package follow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/randalmurphal/formatkit/placeholder"
)

// DefaultPollInterval is the polling cadence when fsnotify is unavailable.
const DefaultPollInterval = 500 * time.Millisecond

// Follower renders a template file against a fixed value map.
type Follower struct {
	path     string
	engine   *placeholder.Engine
	values   map[string]string
	interval time.Duration
}

// New creates a follower for the given template file. The file must
// exist; its content may change freely afterwards.
func New(path string, values map[string]string) (*Follower, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat template file: %w", err)
	}
	return &Follower{
		path:     path,
		engine:   placeholder.NewEngine(),
		values:   values,
		interval: DefaultPollInterval,
	}, nil
}

// WithEngine sets a custom engine, e.g. for a non-default syntax.
func (f *Follower) WithEngine(e *placeholder.Engine) *Follower {
	f.engine = e
	return f
}

// WithPollInterval sets the polling cadence for the fallback path.
func (f *Follower) WithPollInterval(d time.Duration) *Follower {
	if d > 0 {
		f.interval = d
	}
	return f
}

// Path returns the template file being followed.
func (f *Follower) Path() string {
	return f.path
}

// Render reads the template file and renders it once.
func (f *Follower) Render() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("read template file: %w", err)
	}
	return f.engine.Render(string(data), f.values), nil
}

// Follow renders the file and sends the output on the returned channel,
// then re-renders on every change, emitting only when the output
// differs from the previous one. The channel is closed when the context
// is cancelled.
func (f *Follower) Follow(ctx context.Context) <-chan string {
	ch := make(chan string, 8)

	go func() {
		defer close(ch)

		var last string
		if out, err := f.Render(); err == nil {
			if !emit(ctx, ch, out) {
				return
			}
			last = out
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			f.followPolling(ctx, ch, last)
			return
		}
		defer watcher.Close()

		// Watch the directory; watching the file directly breaks on
		// editors that replace it.
		if err := watcher.Add(filepath.Dir(f.path)); err != nil {
			f.followPolling(ctx, ch, last)
			return
		}

		f.followWatcher(ctx, ch, watcher, last)
	}()

	return ch
}

// followWatcher re-renders on fsnotify events for the template file.
func (f *Follower) followWatcher(ctx context.Context, ch chan<- string, watcher *fsnotify.Watcher, last string) {
	base := filepath.Base(f.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			out, err := f.Render()
			if err != nil || out == last {
				continue
			}
			if !emit(ctx, ch, out) {
				return
			}
			last = out

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// followPolling re-renders on modification time changes.
func (f *Follower) followPolling(ctx context.Context, ch chan<- string, last string) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	var lastMod time.Time
	if info, err := os.Stat(f.path); err == nil {
		lastMod = info.ModTime()
	}

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(f.path)
			if err != nil {
				continue
			}
			if !info.ModTime().After(lastMod) {
				continue
			}
			lastMod = info.ModTime()

			out, err := f.Render()
			if err != nil || out == last {
				continue
			}
			if !emit(ctx, ch, out) {
				return
			}
			last = out
		}
	}
}

// emit sends without outliving the context. Returns false when the
// context is done.
func emit(ctx context.Context, ch chan<- string, out string) bool {
	select {
	case ch <- out:
		return true
	case <-ctx.Done():
		return false
	}
}
