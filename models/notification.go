// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Notification is a transient desktop message. It never carries secret
// material: Summary is an entry name or an outcome title, Body is a fixed
// phrase or an error text.
type Notification struct {
	AppName   string
	Icon      string
	Summary   string
	Body      string
	Transient bool
	Timeout   time.Duration
}
