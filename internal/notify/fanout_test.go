// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-search/models"
)

func TestFanout_SendsToAll(t *testing.T) {
	var got []string
	record := func(name string, err error) Transport {
		return transportFunc(func(_ context.Context, n models.Notification) error {
			got = append(got, name+":"+n.Summary)
			return err
		})
	}

	errA := errors.New("bus down")
	tr := Fanout(record("a", errA), nil, record("b", nil))

	err := tr.Send(context.Background(), models.Notification{Summary: "s"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.Equal(t, []string{"a:s", "b:s"}, got)
}

func TestFanout_Empty(t *testing.T) {
	assert.NoError(t, Fanout().Send(context.Background(), models.Notification{}))
}
