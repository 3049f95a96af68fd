// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrHomeNotSet indicates that no home directory could be determined.
	ErrHomeNotSet = errors.New("could not determine $HOME")
	// ErrInvalidStoreConfigs indicates a missing store directory or
	// identities file.
	ErrInvalidStoreConfigs = errors.New("invalid store configuration")
	// ErrInvalidClipboardConfigs indicates a non-positive clear delay.
	ErrInvalidClipboardConfigs = errors.New("invalid clipboard configuration")
	// ErrInvalidNotifyConfigs indicates non-positive notification timeouts.
	ErrInvalidNotifyConfigs = errors.New("invalid notification configuration")
	// ErrInvalidDBusConfigs indicates an empty bus name or a malformed
	// object path.
	ErrInvalidDBusConfigs = errors.New("invalid dbus configuration")
)
