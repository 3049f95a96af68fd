// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-search/internal/logger"
	"github.com/MKhiriev/go-pass-search/models"
)

// Options are the fixed parts of every notification.
type Options struct {
	AppName string
	Icon    string
	// Timeout is how long the notification stays on screen.
	Timeout time.Duration
	// SendTimeout bounds a single delivery.
	SendTimeout time.Duration
}

// Sink fills in the fixed fields and hands notifications to a Transport.
type Sink struct {
	transport Transport
	opts      Options
	logger    *logger.Logger
}

// NewSink returns a Sink sending through t.
func NewSink(t Transport, opts Options, log *logger.Logger) *Sink {
	return &Sink{transport: t, opts: opts, logger: log}
}

// Notify sends a transient notification. Errors are logged and dropped.
func (s *Sink) Notify(ctx context.Context, summary, body string) {
	if s.opts.SendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.SendTimeout)
		defer cancel()
	}

	err := s.transport.Send(ctx, models.Notification{
		AppName:   s.opts.AppName,
		Icon:      s.opts.Icon,
		Summary:   summary,
		Body:      body,
		Transient: true,
		Timeout:   s.opts.Timeout,
	})
	if err != nil {
		logger.FromContextOr(ctx, s.logger).Warn().Err(err).Str("summary", summary).Msg("notification not delivered")
		return
	}

	logger.FromContextOr(ctx, s.logger).Debug().Str("summary", summary).Msg("notification sent")
}
