// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the bus server.
//
// Implementations block in [Server.Run] until ctx is done and release the
// bus name and exported objects in [Server.Shutdown].
type Server interface {
	// Run publishes the provider and blocks until ctx is done.
	Run(ctx context.Context) error

	// Shutdown unexports the provider and releases the bus name.
	Shutdown()
}
