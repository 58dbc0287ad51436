package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"PenguinPrep/src/utils"
)

var tableExtensions = []string{".csv", ".xlsx"}

// FileMonitor watches a directory for fresh raw table files so callers can
// re-run preprocessing when a new export lands.
type FileMonitor struct {
	watchDir string
	keyword  string
	watcher  *fsnotify.Watcher

	mu      sync.Mutex
	lastMod time.Time
}

// NewFileMonitor watches dir for created or rewritten .csv/.xlsx files whose
// base name contains keyword.
func NewFileMonitor(dir, keyword string) (*FileMonitor, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &FileMonitor{
		watchDir: dir,
		keyword:  keyword,
		watcher:  watcher,
	}, nil
}

// Watch blocks, invoking handler with the path of every matching file that
// appears or changes. Bursts of events for one write are collapsed by
// modification time. Watch returns nil once Close stops the watcher.
func (m *FileMonitor) Watch(handler func(path string)) error {
	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !m.matches(event.Name) {
				continue
			}
			if !m.fresh(event.Name) {
				continue
			}
			handler(event.Name)
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", m.watchDir, err)
		}
	}
}

// Close stops the watcher and unblocks Watch.
func (m *FileMonitor) Close() error {
	return m.watcher.Close()
}

func (m *FileMonitor) matches(path string) bool {
	base := filepath.Base(path)
	return strings.Contains(base, m.keyword) &&
		utils.Contains(tableExtensions, strings.ToLower(filepath.Ext(base)))
}

// fresh reports whether the file's modification time advances past the last
// handled one, and records it when it does.
func (m *FileMonitor) fresh(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !info.ModTime().After(m.lastMod) {
		return false
	}
	m.lastMod = info.ModTime()
	return true
}
