// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is a terminal search surface for the password store.
//
// It drives the same search service as the D-Bus provider: the query is
// searched as it is typed, Enter activates the selected result and the
// outcome notification is shown in the status line.
package tui
