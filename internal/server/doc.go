// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server publishes the search provider on the D-Bus session bus.
//
// It exports the handler and its introspection data at the configured
// object path, owns the well-known bus name while running and gives both
// back on shutdown.
package server
