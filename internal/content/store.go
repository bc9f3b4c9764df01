package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Meertayyab/portfolio/internal/logging"
	"github.com/Meertayyab/portfolio/internal/metrics"
)

const reloadDebounce = 500 * time.Millisecond

// Store serves the current content and swaps it when the file changes.
type Store struct {
	path string
	site atomic.Pointer[Site]
	log  *zap.Logger
}

// NewStore loads path (or the built-in content when empty) into a Store.
func NewStore(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = logging.Log
	}
	site, err := Load(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: path, log: log}
	s.site.Store(site)
	return s, nil
}

// Static wraps already loaded content. Reload and Watch are no-ops.
func Static(site *Site) *Store {
	s := &Store{log: zap.NewNop()}
	s.site.Store(site)
	return s
}

// Site returns the current content. Callers must not modify it.
func (s *Store) Site() *Site {
	return s.site.Load()
}

// Reload reads the file again. On failure the previous content stays.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	site, err := Load(s.path)
	if err != nil {
		metrics.IncrementContentReload("failed")
		return err
	}
	s.site.Store(site)
	metrics.IncrementContentReload("success")
	return nil
}

// Watch reloads the content whenever its file is written, until ctx is done.
// Events are debounced since editors often write a file in several steps.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	// Watch the directory so renames from atomic saves are seen.
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	target := filepath.Clean(s.path)

	go func() {
		defer watcher.Close()
		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDebounce, func() {
					if err := s.Reload(); err != nil {
						s.log.Warn("content reload failed, keeping previous content", zap.String("path", s.path), zap.Error(err))
						return
					}
					s.log.Info("content reloaded", zap.String("path", s.path))
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warn("content watcher error", zap.Error(err))
			}
		}
	}()

	s.log.Info("watching content file", zap.String("path", s.path))
	return nil
}
