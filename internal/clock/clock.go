// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clock abstracts wall-clock reads and one-shot timers so that code
// scheduling deferred work (clipboard expiry, watcher debounce) and code
// reading the current time (one-time codes) can be driven deterministically
// in tests.
//
// Production code uses [Real]; tests use [Fake] and move time with
// [FakeClock.Advance].
package clock

import "time"

// Clock is the subset of the time package used by this module.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc calls f in its own goroutine (real) or synchronously
	// during Advance (fake) once d has elapsed.
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a handle to a pending AfterFunc call.
type Timer struct {
	stopFunc func() bool
}

// Stop prevents the timer from firing. It reports whether the call stopped
// the timer; false means the timer already fired or was stopped.
func (t *Timer) Stop() bool { return t.stopFunc() }
