// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-pass-search/models"
)

// notificationBuffer is how many undelivered notifications the UI holds.
const notificationBuffer = 16

// statusTransport delivers notifications to the status line.
type statusTransport struct {
	notes chan models.Notification
}

func newStatusTransport() *statusTransport {
	return &statusTransport{notes: make(chan models.Notification, notificationBuffer)}
}

// Send implements notify.Transport. It blocks while the buffer is full,
// until ctx is done.
func (t *statusTransport) Send(ctx context.Context, n models.Notification) error {
	select {
	case t.notes <- n:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
