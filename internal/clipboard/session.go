// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-pass-search/internal/clock"
	"github.com/MKhiriev/go-pass-search/internal/logger"
)

// Ticket describes the clear scheduled by one copy.
type Ticket struct {
	Generation  uint64
	ScheduledAt time.Time
	Delay       time.Duration
}

// Deadline is when the clear is due.
func (t Ticket) Deadline() time.Time {
	return t.ScheduledAt.Add(t.Delay)
}

// Session owns the clipboard and its single live clear.
type Session struct {
	writer       Writer
	clock        clock.Clock
	defaultDelay time.Duration
	logger       *logger.Logger

	generation atomic.Uint64

	// mu orders clipboard writes and the generation compare at fire time.
	mu     sync.Mutex
	live   uint64
	ticket Ticket
	timer  *clock.Timer
	closed bool
}

// NewSession returns a Session writing through w. defaultDelay is used when
// CopyWithExpiry gets a non-positive delay.
func NewSession(w Writer, clk clock.Clock, defaultDelay time.Duration, log *logger.Logger) *Session {
	return &Session{
		writer:       w,
		clock:        clk,
		defaultDelay: defaultDelay,
		logger:       log,
	}
}

// CopyWithExpiry writes value to the clipboard and schedules it to be
// cleared after delay. Any clear scheduled by an earlier call becomes a
// no-op. A failed write issues no ticket and leaves the previous one live.
func (s *Session) CopyWithExpiry(value string, delay time.Duration) (Ticket, error) {
	if delay <= 0 {
		delay = s.defaultDelay
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Ticket{}, ErrSessionClosed
	}

	if err := s.writer.WriteAll(value); err != nil {
		return Ticket{}, fmt.Errorf("%w: %w", ErrClipboard, err)
	}

	ticket := Ticket{
		Generation:  s.generation.Add(1),
		ScheduledAt: s.clock.Now(),
		Delay:       delay,
	}
	s.live = ticket.Generation
	s.ticket = ticket
	s.timer = s.clock.AfterFunc(delay, func() { s.expire(ticket.Generation) })

	s.logger.Debug().
		Uint64("generation", ticket.Generation).
		Dur("delay", delay).
		Msg("clipboard clear scheduled")

	return ticket, nil
}

// Generation returns the number of the most recently issued ticket.
func (s *Session) Generation() uint64 {
	return s.generation.Load()
}

// Pending returns the ticket whose clear has not run yet, if any.
func (s *Session) Pending() (Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.live == 0 {
		return Ticket{}, false
	}
	return s.ticket, true
}

// Close stops the pending clear and, if a copied value is still on the
// clipboard, clears it now. Later copies fail with ErrSessionClosed.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.live == 0 {
		return nil
	}

	s.live = 0
	if err := s.writer.WriteAll(""); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboard, err)
	}
	return nil
}

func (s *Session) expire(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current := s.generation.Load(); current != generation || s.live != generation {
		s.logger.Debug().
			Uint64("generation", generation).
			Uint64("current", current).
			Msg("clipboard clear superseded")
		return
	}

	s.live = 0
	s.timer = nil
	if err := s.writer.WriteAll(""); err != nil {
		s.logger.Warn().Err(err).Uint64("generation", generation).Msg("failed to clear clipboard")
		return
	}

	s.logger.Debug().Uint64("generation", generation).Msg("clipboard cleared")
}
