// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEntryName    = errors.New("entry name is required")
	ErrAbsoluteEntryName = errors.New("entry name must be relative to the store")
	ErrEntryNameEscapes  = errors.New("entry name leaves the store")
	ErrMalformedEntry    = errors.New("malformed entry name")
	ErrHiddenEntryName   = errors.New("entry name refers to a hidden file")
	ErrEmptyEntryPath    = errors.New("entry path is required")
)
