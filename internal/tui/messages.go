// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-pass-search/models"
)

// searchDoneMsg carries the results of the search numbered seq. Results of
// an older search than the latest one are dropped.
type searchDoneMsg struct {
	seq   int
	terms []string
	metas []models.ResultMeta
}

// activatedMsg reports that an activation was handed to the service.
type activatedMsg struct {
	id string
}

// notificationMsg is an outcome notification of an activation.
type notificationMsg struct {
	note models.Notification
}
