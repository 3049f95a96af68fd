// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-search/models"
)

type fanout []Transport

// Fanout returns a Transport that sends every notification through each of
// ts in order. Nil transports are skipped. A failure of one transport does
// not stop the others; the errors are joined.
func Fanout(ts ...Transport) Transport {
	out := make(fanout, 0, len(ts))
	for _, t := range ts {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

func (f fanout) Send(ctx context.Context, n models.Notification) error {
	var errs []error
	for _, t := range f {
		if err := t.Send(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
