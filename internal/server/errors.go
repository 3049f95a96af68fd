// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNameTaken is returned by Run when another process owns the bus name.
	ErrNameTaken = errors.New("bus name is already owned")
	// ErrInvalidObjectPath is returned by NewServer for malformed paths.
	ErrInvalidObjectPath = errors.New("invalid dbus object path")
)
