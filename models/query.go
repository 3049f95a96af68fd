// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OTPSentinel is the reserved first search term that switches a query from
// password delivery to one-time-code delivery.
const OTPSentinel = "otp"

// Mode tells what an activation places on the clipboard.
type Mode int

const (
	// ModePassword delivers the stored password.
	ModePassword Mode = iota
	// ModeOTP delivers a TOTP code generated from the entry's otpauth URL.
	ModeOTP
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeOTP:
		return "otp"
	default:
		return "password"
	}
}

// Query is the parsed form of the terms a search surface sends.
type Query struct {
	// Terms are the search terms with the sentinel stripped.
	Terms []string
	// Mode is derived from the first raw term.
	Mode Mode
}

// ParseQuery derives the mode from the leading sentinel term and strips it.
// The sentinel is matched exactly (case-sensitive). No terms at all yields a
// password query with no terms.
func ParseQuery(terms []string) Query {
	if len(terms) > 0 && terms[0] == OTPSentinel {
		return Query{Terms: terms[1:], Mode: ModeOTP}
	}
	return Query{Terms: terms, Mode: ModePassword}
}
