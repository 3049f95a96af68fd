// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package otp turns a decrypted store entry into a current TOTP code.
//
// The entry is scanned for an otpauth:// provisioning URL, which ends at the
// first whitespace character. The URL is parsed leniently: the secret length
// is never checked, so providers that still issue 80-bit secrets work. Codes
// are generated with github.com/pquerna/otp for the time read from an
// injected clock.
package otp
