// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import "errors"

var (
	// ErrClipboard wraps failures of the system clipboard.
	ErrClipboard = errors.New("clipboard error")
	// ErrSessionClosed is returned by CopyWithExpiry after Close.
	ErrSessionClosed = errors.New("clipboard session closed")
)
