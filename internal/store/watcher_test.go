// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-search/internal/clock"
	"github.com/MKhiriev/go-pass-search/internal/logger"
	"github.com/MKhiriev/go-pass-search/internal/workers"
)

func startWatcher(t *testing.T, dir string, idx *Index, clk clock.Clock) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewWatcher(dir, idx, clk, logger.Nop()).Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("watcher did not stop")
		}
	})
}

// touchUntilScheduled moves new files into dir until the watcher reacts.
// The watcher registers its directories asynchronously, so the first moves
// may go unnoticed. A rename produces a single event.
func touchUntilScheduled(t *testing.T, dir string, clk *clock.FakeClock) {
	t.Helper()
	staging := t.TempDir()
	i := 0
	require.Eventually(t, func() bool {
		i++
		name := fmt.Sprintf("entry-%d.age", i)
		src := filepath.Join(staging, name)
		require.NoError(t, os.WriteFile(src, []byte("x"), 0o600))
		require.NoError(t, os.Rename(src, filepath.Join(dir, name)))
		return clk.PendingCount() > 0
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatcher_InvalidatesAfterDebounce(t *testing.T) {
	ts := newTestStore(t)
	ts.add("github.com", "abc123")
	p := ts.open(true)
	clk := clock.Fake(time.Unix(0, 0))

	_, err := p.ListEntries(context.Background())
	require.NoError(t, err)
	require.True(t, p.Index().Valid())

	startWatcher(t, ts.dir, p.Index(), clk)
	touchUntilScheduled(t, ts.dir, clk)

	clk.Advance(WatcherDebounce - time.Millisecond)
	assert.True(t, p.Index().Valid(), "not before the debounce elapses")

	clk.Advance(WatcherDebounce)
	assert.False(t, p.Index().Valid())
}

func TestWatcher_NestedDirectoryIsWatched(t *testing.T) {
	ts := newTestStore(t)
	ts.add("work/aws/root", "z")
	p := ts.open(true)
	clk := clock.Fake(time.Unix(0, 0))

	_, err := p.ListEntries(context.Background())
	require.NoError(t, err)

	startWatcher(t, ts.dir, p.Index(), clk)
	touchUntilScheduled(t, filepath.Join(ts.dir, "work", "aws"), clk)

	clk.Advance(2 * WatcherDebounce)
	assert.False(t, p.Index().Valid())
}

func TestWatcher_MissingDirDisablesCache(t *testing.T) {
	idx := NewIndex(countingLoad(new(int), nil, nil), true)
	w := NewWatcher(filepath.Join(t.TempDir(), "nope"), idx, clock.Real(), logger.Nop())

	err := w.Run(context.Background())
	assert.NoError(t, err)
	assert.False(t, idx.Enabled())
}

func TestWatcher_MissingDirKeepsOtherWorkersRunning(t *testing.T) {
	idx := NewIndex(countingLoad(new(int), nil, nil), true)
	w := NewWatcher(filepath.Join(t.TempDir(), "no-store"), idx, clock.Real(), logger.Nop())

	serverCtx := make(chan context.Context, 1)
	server := workers.Func(func(ctx context.Context) error {
		serverCtx <- ctx
		<-ctx.Done()
		return nil
	})
	watcherDone := make(chan struct{})
	watch := workers.Func(func(ctx context.Context) error {
		defer close(watcherDone)
		return w.Run(ctx)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	groupErr := make(chan error, 1)
	go func() { groupErr <- workers.NewWorkers(server, watch).Run(ctx) }()

	<-watcherDone
	sctx := <-serverCtx
	assert.NoError(t, sctx.Err(), "server must not be cancelled by the watcher")
	assert.False(t, idx.Enabled())

	cancel()
	select {
	case err := <-groupErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestWatcher_SymlinkedRoot(t *testing.T) {
	ts := newTestStore(t)
	ts.add("github.com", "abc123")
	link := filepath.Join(t.TempDir(), "store-link")
	require.NoError(t, os.Symlink(ts.dir, link))

	p := NewPasswordStore(link, ts.identities, true, logger.Nop())
	clk := clock.Fake(time.Unix(0, 0))

	_, err := p.ListEntries(context.Background())
	require.NoError(t, err)
	require.True(t, p.Index().Valid())

	startWatcher(t, p.Dir(), p.Index(), clk)
	touchUntilScheduled(t, ts.dir, clk)

	clk.Advance(WatcherDebounce)
	assert.False(t, p.Index().Valid())
}
