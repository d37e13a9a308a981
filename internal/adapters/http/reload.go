package http

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const ReloadPath = "/__xilo/reload"

const reloadScriptID = "__xilo_reload"

var reloadScript = []byte(`<script id="` + reloadScriptID + `">(function(){var es=new EventSource("` + ReloadPath + `");es.addEventListener("reload",function(){window.location.reload()});})();</script>`)

// ReloadHub fans change notifications out to connected browsers.
type ReloadHub struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func NewReloadHub() *ReloadHub {
	return &ReloadHub{
		subs: map[chan struct{}]struct{}{},
	}
}

func (h *ReloadHub) Subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *ReloadHub) Unsubscribe(ch chan struct{}) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
	close(ch)
}

// Notify never blocks; a subscriber with a pending event is skipped.
func (h *ReloadHub) Notify() {
	h.mu.Lock()
	for ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	h.mu.Unlock()
}

func (h *ReloadHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *ReloadHub) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	_, _ = w.Write([]byte("event: ready\ndata: 1\n\n"))
	flusher.Flush()

	for {
		select {
		case <-req.Context().Done():
			return
		case <-ch:
			_, _ = w.Write([]byte("event: reload\ndata: 1\n\n"))
			flusher.Flush()
		}
	}
}

// InjectReloadScript adds the dev reload listener before </body>.
func InjectReloadScript(html []byte) []byte {
	if bytes.Contains(html, []byte(reloadScriptID)) {
		return html
	}

	idx := bytes.LastIndex(html, []byte("</body>"))
	if idx < 0 {
		return append(append([]byte{}, html...), reloadScript...)
	}

	out := make([]byte, 0, len(html)+len(reloadScript))
	out = append(out, html[:idx]...)
	out = append(out, reloadScript...)
	out = append(out, html[idx:]...)
	return out
}

// Watcher reports file system changes under a set of files and directory
// trees. Bursts of events collapse into one onChange call per debounce window.
type Watcher struct {
	paths    []string
	targets  []string
	debounce time.Duration
	onChange func()
	logger   *slog.Logger
}

func NewWatcher(paths []string, debounce time.Duration, onChange func(), logger *slog.Logger) *Watcher {
	return &Watcher{
		paths:    paths,
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled. A path that does not exist yet is
// picked up once it is created.
func (w *Watcher) Run(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Error("watch.failed", "error", err)
		return
	}
	defer watcher.Close()

	for _, p := range w.paths {
		w.add(watcher, p)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !isWatchEvent(event.Op) || !w.relevant(event.Name) {
				continue
			}
			if shouldAddWatchDir(event) {
				if err := w.watchDirs(watcher, event.Name); err != nil {
					w.logger.Warn("watch.add_failed", "path", event.Name, "error", err)
				}
			}
			w.logger.Debug("watch.changed", "path", event.Name, "op", event.Op.String())

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch.error", "error", err)

		case <-fire:
			fire = nil
			w.onChange()
		}
	}
}

// add watches directories recursively. For a file, or a path that is not
// there yet, the parent directory is watched and events are filtered.
func (w *Watcher) add(watcher *fsnotify.Watcher, p string) {
	abs, err := filepath.Abs(p)
	if err != nil {
		w.logger.Warn("watch.add_failed", "path", p, "error", err)
		return
	}
	w.targets = append(w.targets, abs)

	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		if err := w.watchDirs(watcher, abs); err != nil {
			w.logger.Warn("watch.add_failed", "path", abs, "error", err)
		}
		return
	}

	parent := filepath.Dir(abs)
	if _, err := os.Stat(parent); err != nil {
		w.logger.Debug("watch.skipped", "path", abs)
		return
	}
	if err := watcher.Add(parent); err != nil {
		w.logger.Warn("watch.add_failed", "path", parent, "error", err)
	}
}

func (w *Watcher) relevant(name string) bool {
	name = filepath.Clean(name)
	for _, target := range w.targets {
		if name == target || strings.HasPrefix(name, target+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *Watcher) watchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Debug("watch.walk_failed", "path", path, "error", err)
			return nil
		}

		if !d.IsDir() {
			return nil
		}

		if path != root && shouldSkipDir(d.Name()) {
			return filepath.SkipDir
		}

		return watcher.Add(path)
	})
}

var skipDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	".xilo":        {},
}

func shouldSkipDir(name string) bool {
	_, exists := skipDirs[name]
	return exists
}

func isWatchEvent(op fsnotify.Op) bool {
	return op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

func shouldAddWatchDir(event fsnotify.Event) bool {
	if event.Op&fsnotify.Create == 0 {
		return false
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return false
	}

	return info.IsDir() && !shouldSkipDir(info.Name())
}
