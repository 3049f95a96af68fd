// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-pass-search/models"
)

// LoadFunc enumerates the store.
type LoadFunc func(ctx context.Context) ([]models.Entry, error)

// Index caches the result of a LoadFunc until invalidated. A disabled index
// calls the LoadFunc every time.
type Index struct {
	load    LoadFunc
	enabled bool

	mu      sync.Mutex
	entries []models.Entry
	valid   bool
	// epoch changes on every Invalidate so that a load racing an
	// invalidation is not cached.
	epoch uint64
}

// NewIndex returns an Index over load.
func NewIndex(load LoadFunc, enabled bool) *Index {
	return &Index{load: load, enabled: enabled}
}

// Entries returns the cached entries or loads them. Errors are not cached.
// The returned slice is a copy.
func (i *Index) Entries(ctx context.Context) ([]models.Entry, error) {
	i.mu.Lock()
	if !i.enabled {
		i.mu.Unlock()
		return i.load(ctx)
	}
	if i.valid {
		entries := slices.Clone(i.entries)
		i.mu.Unlock()
		return entries, nil
	}
	epoch := i.epoch
	i.mu.Unlock()

	entries, err := i.load(ctx)
	if err != nil {
		return nil, err
	}

	i.mu.Lock()
	if i.enabled && i.epoch == epoch {
		i.entries = entries
		i.valid = true
	}
	i.mu.Unlock()

	return slices.Clone(entries), nil
}

// Invalidate drops the cached entries.
func (i *Index) Invalidate() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.entries = nil
	i.valid = false
	i.epoch++
}

// Disable drops the cache and makes every later Entries call load. It is
// used when changes to the store can no longer be observed.
func (i *Index) Disable() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.enabled = false
	i.entries = nil
	i.valid = false
	i.epoch++
}

// Enabled reports whether entries are cached.
func (i *Index) Enabled() bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.enabled
}

// Valid reports whether the next Entries call is served from the cache.
func (i *Index) Valid() bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.enabled && i.valid
}
