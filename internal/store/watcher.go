// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-pass-search/internal/clock"
	"github.com/MKhiriev/go-pass-search/internal/logger"
)

var errWatcherClosed = errors.New("store watcher closed")

// WatcherDebounce is how long the tree must stay quiet before the index is
// invalidated.
const WatcherDebounce = 500 * time.Millisecond

// Watcher invalidates an Index when files under the store change.
type Watcher struct {
	dir    string
	index  *Index
	clock  clock.Clock
	logger *logger.Logger

	mu       sync.Mutex
	debounce *clock.Timer
}

// NewWatcher returns a Watcher for the tree rooted at dir.
func NewWatcher(dir string, index *Index, clk clock.Clock, log *logger.Logger) *Watcher {
	return &Watcher{dir: dir, index: index, clock: clk, logger: log}
}

// Run watches until ctx is done. fsnotify is not recursive, so every
// directory is added on start and new ones as they appear.
//
// A store that cannot be watched, because it is missing or the inotify
// limits are reached, is not an error: the index stops caching and Run
// returns nil, so the workers running beside it keep serving.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.unwatched(fmt.Errorf("error creating store watcher: %w", err))
		return nil
	}
	defer watcher.Close()

	if err := w.addTree(watcher, w.dir); err != nil {
		w.unwatched(fmt.Errorf("error watching store: %w", err))
		return nil
	}

	w.logger.Info().Str("dir", w.dir).Msg("watching password store for changes")

	for {
		select {
		case <-ctx.Done():
			w.stopDebounce()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				w.unwatched(errWatcherClosed)
				return nil
			}
			w.handle(watcher, event)

		case err, ok := <-watcher.Errors:
			if !ok {
				w.unwatched(errWatcherClosed)
				return nil
			}
			w.logger.Warn().Err(err).Msg("store watcher error")
		}
	}
}

// unwatched switches the index to reloading on every call.
func (w *Watcher) unwatched(err error) {
	w.stopDebounce()
	w.index.Disable()
	w.logger.Warn().Err(err).Str("dir", w.dir).Msg("store is not watched, entries are enumerated on every search")
}

func (w *Watcher) handle(watcher *fsnotify.Watcher, event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(watcher, event.Name); err != nil {
				w.logger.Warn().Err(err).Str("dir", event.Name).Msg("failed to watch new directory")
			}
		}
	}

	w.logger.Debug().Str("file", event.Name).Stringer("op", event.Op).Msg("store changed")
	w.schedule()
}

// schedule restarts the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = w.clock.AfterFunc(WatcherDebounce, func() {
		w.index.Invalidate()
		w.logger.Debug().Msg("store index invalidated")
	})
}

func (w *Watcher) stopDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
		w.debounce = nil
	}
}

func (w *Watcher) addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
