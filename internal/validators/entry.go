// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-search/models"
)

// Field names accepted by EntryValidator.
const (
	// FieldName targets the '/'-separated entry name.
	FieldName = "name"

	// FieldPath targets the on-disk location of the entry.
	FieldPath = "path"
)

// EntryValidator validates entry names and entries. A bare string is
// validated as a name.
type EntryValidator struct {
}

func NewEntryValidator() Validator {
	return &EntryValidator{}
}

func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validateName(value)
	case models.Entry:
		return v.validateEntry(ctx, value, fields...)
	case *models.Entry:
		return v.validateEntry(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *EntryValidator) validateEntry(_ context.Context, entry models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPath}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if err := v.validateName(entry.Name); err != nil {
				return err
			}
		case FieldPath:
			if entry.Path == "" {
				return ErrEmptyEntryPath
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// validateName accepts relative '/'-separated names whose segments are
// neither empty nor hidden.
func (v *EntryValidator) validateName(name string) error {
	if name == "" {
		return ErrEmptyEntryName
	}
	if strings.HasPrefix(name, "/") {
		return fmt.Errorf("%w: %q", ErrAbsoluteEntryName, name)
	}
	if strings.ContainsRune(name, '\\') || strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %q", ErrMalformedEntry, name)
	}

	for _, segment := range strings.Split(name, "/") {
		switch {
		case segment == "..":
			return fmt.Errorf("%w: %q", ErrEntryNameEscapes, name)
		case segment == "", segment == ".":
			return fmt.Errorf("%w: %q", ErrMalformedEntry, name)
		case strings.HasPrefix(segment, "."):
			return fmt.Errorf("%w: %q", ErrHiddenEntryName, name)
		}
	}

	return nil
}
