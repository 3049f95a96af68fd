// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ResultMeta is the display metadata a search surface shows for one result.
type ResultMeta struct {
	ID          string
	Name        string
	Description string
}
