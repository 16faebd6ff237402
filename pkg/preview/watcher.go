package preview

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// WatcherConfig configures a Watcher.
type WatcherConfig struct {
	// Dir is the directory tree to watch.
	Dir string

	// Extensions limits the watched files, e.g. []string{".md"}.
	// Empty means every file.
	Extensions []string

	// Ignore lists file or directory names to skip. Glob patterns are
	// matched against the base name.
	Ignore []string

	// Interval is the polling interval (default: 200ms).
	Interval time.Duration
}

// DefaultIgnore contains names skipped by default.
var DefaultIgnore = []string{
	".git",
	"node_modules",
	"*.tmp",
	"*.swp",
	"*~",
}

// Change is one added, modified or removed file.
type Change struct {
	Path    string
	Removed bool
}

// Watcher polls a directory for file changes.
type Watcher struct {
	config     WatcherConfig
	onChange   func([]Change)
	mu         sync.Mutex
	running    bool
	stopCh     chan struct{}
	scanned    bool
	timestamps map[string]time.Time
}

// NewWatcher creates a Watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Interval <= 0 {
		config.Interval = 200 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}
	return &Watcher{
		config:     config,
		timestamps: make(map[string]time.Time),
	}
}

// OnChange sets the callback for a batch of changes. It is called from
// the goroutine running Start.
func (w *Watcher) OnChange(fn func([]Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Files returns the watched files found by the last scan, sorted.
func (w *Watcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	files := make([]string, 0, len(w.timestamps))
	for p := range w.timestamps {
		files = append(files, p)
	}
	slices.Sort(files)
	return files
}

// Scan records the current state of the directory without reporting
// changes. Start scans only when Scan was never called, so changes made
// between Scan and Start are reported by the first poll.
func (w *Watcher) Scan() {
	current := w.snapshot()
	w.mu.Lock()
	w.timestamps = current
	w.scanned = true
	w.mu.Unlock()
}

// Start polls until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	stopCh := w.stopCh
	scanned := w.scanned
	w.mu.Unlock()

	if !scanned {
		w.Scan()
	}

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-ticker.C:
			w.check()
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

func (w *Watcher) check() {
	current := w.snapshot()

	w.mu.Lock()
	var changes []Change
	for p, mod := range current {
		if last, ok := w.timestamps[p]; !ok || !mod.Equal(last) {
			changes = append(changes, Change{Path: p})
		}
	}
	for p := range w.timestamps {
		if _, ok := current[p]; !ok {
			changes = append(changes, Change{Path: p, Removed: true})
		}
	}
	w.timestamps = current
	callback := w.onChange
	w.mu.Unlock()

	if len(changes) == 0 || callback == nil {
		return
	}
	slices.SortFunc(changes, func(a, b Change) int { return strings.Compare(a.Path, b.Path) })
	callback(changes)
}

func (w *Watcher) snapshot() map[string]time.Time {
	files := make(map[string]time.Time)
	filepath.WalkDir(w.config.Dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if p != w.config.Dir && w.shouldIgnore(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !w.matchesExtension(p) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		files[p] = info.ModTime()
		return nil
	})
	return files
}

func (w *Watcher) matchesExtension(p string) bool {
	if len(w.config.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(p))
	for _, e := range w.config.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

func (w *Watcher) shouldIgnore(name string) bool {
	for _, pattern := range w.config.Ignore {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if name == pattern {
			return true
		}
		if strings.ContainsAny(pattern, "*?[") {
			if matched, _ := filepath.Match(pattern, name); matched {
				return true
			}
		}
	}
	return false
}
