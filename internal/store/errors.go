// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrEntryNotFound is returned for names that do not map to an entry file.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrDecrypt wraps failures to load identities or decrypt an entry.
	ErrDecrypt = errors.New("could not decrypt entry")
	// ErrStoreUnavailable wraps failures to enumerate the store directory.
	ErrStoreUnavailable = errors.New("password store unavailable")
)
