// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-search/internal/clock"
	"github.com/MKhiriev/go-pass-search/internal/logger"
)

// recordingWriter is an in-memory clipboard that remembers every write.
type recordingWriter struct {
	mu     sync.Mutex
	writes []string
	err    error
}

func (w *recordingWriter) WriteAll(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.err != nil {
		return w.err
	}
	w.writes = append(w.writes, text)
	return nil
}

func (w *recordingWriter) content() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.writes) == 0 {
		return ""
	}
	return w.writes[len(w.writes)-1]
}

func (w *recordingWriter) clears() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := 0
	for _, s := range w.writes {
		if s == "" {
			n++
		}
	}
	return n
}

func newTestSession(t *testing.T) (*Session, *recordingWriter, *clock.FakeClock) {
	t.Helper()
	w := &recordingWriter{}
	clk := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewSession(w, clk, 40*time.Second, logger.Nop()), w, clk
}

func TestCopyWithExpiry_ClearsAfterDelay(t *testing.T) {
	s, w, clk := newTestSession(t)

	ticket, err := s.CopyWithExpiry("abc123", 40*time.Second)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), ticket.Generation)
	assert.Equal(t, clk.Now(), ticket.ScheduledAt)
	assert.Equal(t, 40*time.Second, ticket.Delay)
	assert.Equal(t, clk.Now().Add(40*time.Second), ticket.Deadline())
	assert.Equal(t, "abc123", w.content())

	clk.Advance(39 * time.Second)
	assert.Equal(t, "abc123", w.content(), "not cleared early")

	clk.Advance(time.Second)
	assert.Equal(t, "", w.content())
	assert.Equal(t, 1, w.clears())
}

func TestCopyWithExpiry_Supersession(t *testing.T) {
	s, w, clk := newTestSession(t)

	// A1 copies, A2 copies 10s later, before A1's delay elapses.
	first, err := s.CopyWithExpiry("first", 40*time.Second)
	require.NoError(t, err)
	clk.Advance(10 * time.Second)
	second, err := s.CopyWithExpiry("second", 40*time.Second)
	require.NoError(t, err)
	assert.Greater(t, second.Generation, first.Generation)

	// A1's timer fires: the clipboard must still hold A2's value.
	clk.Advance(30 * time.Second)
	assert.Equal(t, "second", w.content())
	assert.Equal(t, 0, w.clears())

	// A2's timer owns the clear.
	clk.Advance(10 * time.Second)
	assert.Equal(t, "", w.content())
	assert.Equal(t, 1, w.clears())
}

func TestCopyWithExpiry_ShorterLaterDelay(t *testing.T) {
	s, w, clk := newTestSession(t)

	_, err := s.CopyWithExpiry("slow", time.Minute)
	require.NoError(t, err)
	_, err = s.CopyWithExpiry("fast", 5*time.Second)
	require.NoError(t, err)

	clk.Advance(5 * time.Second)
	assert.Equal(t, "", w.content())

	_, err = s.CopyWithExpiry("third", time.Hour)
	require.NoError(t, err)

	// the first copy's timer is stale and must not touch "third"
	clk.Advance(55 * time.Second)
	assert.Equal(t, "third", w.content())
	assert.Equal(t, 1, w.clears())
}

func TestCopyWithExpiry_DoubleCopyClearsOnce(t *testing.T) {
	s, w, clk := newTestSession(t)

	_, err := s.CopyWithExpiry("same", 40*time.Second)
	require.NoError(t, err)
	clk.Advance(time.Second)
	last, err := s.CopyWithExpiry("same", 40*time.Second)
	require.NoError(t, err)

	clk.Advance(39 * time.Second)
	assert.Equal(t, "same", w.content(), "earlier deadline must not clear")
	assert.Equal(t, 0, w.clears())

	clk.Advance(time.Second)
	assert.Equal(t, last.Deadline(), clk.Now())
	assert.Equal(t, 1, w.clears())

	clk.Advance(time.Hour)
	assert.Equal(t, 1, w.clears(), "never two clears")
}

func TestCopyWithExpiry_DefaultDelay(t *testing.T) {
	s, w, clk := newTestSession(t)

	ticket, err := s.CopyWithExpiry("abc", 0)
	require.NoError(t, err)
	assert.Equal(t, 40*time.Second, ticket.Delay)

	clk.Advance(40 * time.Second)
	assert.Equal(t, 1, w.clears())
}

func TestCopyWithExpiry_WriteFailure(t *testing.T) {
	s, w, clk := newTestSession(t)

	_, err := s.CopyWithExpiry("kept", 40*time.Second)
	require.NoError(t, err)

	w.err = errors.New("no display")
	ticket, err := s.CopyWithExpiry("lost", 40*time.Second)
	assert.ErrorIs(t, err, ErrClipboard)
	assert.Contains(t, err.Error(), "no display")
	assert.Equal(t, Ticket{}, ticket)
	assert.Equal(t, uint64(1), s.Generation(), "failed write issues no ticket")

	w.err = nil
	clk.Advance(40 * time.Second)
	assert.Equal(t, "", w.content(), "previous ticket still clears")
}

func TestSession_Close(t *testing.T) {
	t.Run("clears live value and stops timer", func(t *testing.T) {
		s, w, clk := newTestSession(t)

		_, err := s.CopyWithExpiry("abc", 40*time.Second)
		require.NoError(t, err)

		require.NoError(t, s.Close())
		assert.Equal(t, "", w.content())
		assert.Equal(t, 0, clk.PendingCount())

		clk.Advance(time.Minute)
		assert.Equal(t, 1, w.clears())
	})

	t.Run("nothing to clear after expiry", func(t *testing.T) {
		s, w, clk := newTestSession(t)

		_, err := s.CopyWithExpiry("abc", 40*time.Second)
		require.NoError(t, err)
		clk.Advance(40 * time.Second)

		require.NoError(t, s.Close())
		assert.Equal(t, 1, w.clears())
	})

	t.Run("idempotent and rejects copies", func(t *testing.T) {
		s, w, _ := newTestSession(t)

		require.NoError(t, s.Close())
		require.NoError(t, s.Close())

		_, err := s.CopyWithExpiry("abc", time.Second)
		assert.ErrorIs(t, err, ErrSessionClosed)
		assert.Empty(t, w.writes)
	})
}

func TestSession_Pending(t *testing.T) {
	s, _, clk := newTestSession(t)

	_, ok := s.Pending()
	assert.False(t, ok)

	_, err := s.CopyWithExpiry("first", 40*time.Second)
	require.NoError(t, err)
	clk.Advance(10 * time.Second)
	second, err := s.CopyWithExpiry("second", 20*time.Second)
	require.NoError(t, err)

	pending, ok := s.Pending()
	require.True(t, ok)
	assert.Equal(t, second, pending)

	clk.Advance(20 * time.Second)
	_, ok = s.Pending()
	assert.False(t, ok)

	_, err = s.CopyWithExpiry("third", 0)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	_, ok = s.Pending()
	assert.False(t, ok)
}

func TestCopyWithExpiry_RealClock(t *testing.T) {
	w := &recordingWriter{}
	s := NewSession(w, clock.Real(), time.Second, logger.Nop())

	_, err := s.CopyWithExpiry("abc", 10*time.Millisecond)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return w.clears() == 1 }, time.Second, 5*time.Millisecond)
}
