// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package otp

import (
	"bytes"
	"unicode"

	"github.com/MKhiriev/go-pass-search/internal/clock"
	"github.com/MKhiriev/go-pass-search/internal/secret"
)

var marker = []byte("otpauth://")

// Extractor generates TOTP codes from decrypted store entries. It keeps no
// state between calls.
type Extractor struct {
	clock clock.Clock
}

// NewExtractor returns an Extractor reading wall-clock time from clk.
func NewExtractor(clk clock.Clock) *Extractor {
	return &Extractor{clock: clk}
}

// Extract finds the provisioning URL in s and returns the current code in a
// new buffer owned by the caller. s is only read; closing it stays the
// caller's job.
func (e *Extractor) Extract(s *secret.Buffer) (*secret.Buffer, error) {
	raw, err := FindURL(s.Bytes())
	if err != nil {
		return nil, err
	}

	descriptor, err := ParseDescriptor(string(raw))
	if err != nil {
		return nil, err
	}

	code, err := descriptor.Code(e.clock.Now())
	if err != nil {
		return nil, err
	}

	return secret.NewFromBytes([]byte(code))
}

// FindURL returns the part of data from the otpauth:// marker up to the
// first whitespace character after it, or to the end of data. The result
// aliases data.
func FindURL(data []byte) ([]byte, error) {
	start := bytes.Index(data, marker)
	if start < 0 {
		return nil, ErrNoOtpURL
	}

	rest := data[start:]
	if end := bytes.IndexFunc(rest, unicode.IsSpace); end >= 0 {
		rest = rest[:end]
	}

	return rest, nil
}
