// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clipboard places secrets on the system clipboard and clears them
// after a delay.
//
// Each copy issues a ticket with a new generation number and schedules a
// clear. A scheduled clear only runs if its generation is still the latest
// one, so a timer from an earlier copy never wipes a value copied after it.
// Clearing writes an empty string.
package clipboard
