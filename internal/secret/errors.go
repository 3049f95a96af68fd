// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secret

import "errors"

var (
	// ErrInvalidSize is returned for negative sizes and non-positive read limits.
	ErrInvalidSize = errors.New("secret: invalid buffer size")
	// ErrTooLarge is returned by NewFromReader when the source exceeds the limit.
	ErrTooLarge = errors.New("secret: source exceeds limit")
	// ErrOutOfRange is returned by Slice for bounds outside the buffer.
	ErrOutOfRange = errors.New("secret: range out of bounds")
)
