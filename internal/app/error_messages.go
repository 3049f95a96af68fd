// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across
// go-pass-search.
//
// The Msg* constants are the summaries and bodies of the notifications that
// report the outcome of an activation. Keeping them in one place keeps the
// wording identical across the D-Bus and terminal surfaces.
package app

const (
	// MsgNotFoundSummary is the summary of the notification sent when the
	// activated identifier no longer matches an entry.
	MsgNotFoundSummary = "Error"

	// MsgNotFoundBody is the body paired with MsgNotFoundSummary.
	MsgNotFoundBody = "Could Not Find Password"

	// MsgReadErrorSummary is the summary used when an entry cannot be
	// decrypted. The body is the error text.
	MsgReadErrorSummary = "Could not read entry"

	// MsgPasswordErrorSummary is the summary used when the password line
	// cannot be taken from a decrypted entry. The body is the error text.
	MsgPasswordErrorSummary = "Password Error"

	// MsgUnexpectedErrorBody is the body paired with MsgReadErrorSummary
	// when an activation stops on an unexpected failure.
	MsgUnexpectedErrorBody = "Unexpected error while delivering the entry"

	// MsgOtpErrorSummary is the summary used when no code can be produced
	// from the entry. The body is the error text.
	MsgOtpErrorSummary = "OTP Error"

	// MsgClipboardErrorSummary is the summary used when the clipboard write
	// fails. The body is the error text.
	MsgClipboardErrorSummary = "Clipboard Error"

	// MsgPasswordCopied is the body of the success notification in password
	// mode. Its summary is the entry identifier.
	MsgPasswordCopied = "Password copied to clipboard"

	// MsgOtpCopied is the body of the success notification in OTP mode.
	MsgOtpCopied = "OTP copied to clipboard"
)
