// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package otp

import "errors"

var (
	// ErrNoOtpURL is returned when the secret contains no otpauth:// marker.
	ErrNoOtpURL = errors.New("no OTP URL found")
	// ErrInvalidOtpURL is returned when the provisioning URL is malformed or
	// misses a required field.
	ErrInvalidOtpURL = errors.New("invalid OTP URL")
	// ErrCodeGeneration is returned when a code cannot be computed from an
	// otherwise well-formed URL (unsupported algorithm, bad base32 secret).
	ErrCodeGeneration = errors.New("could not generate OTP code")
)
