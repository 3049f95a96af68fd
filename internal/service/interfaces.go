// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-search/internal/clipboard"
	"github.com/MKhiriev/go-pass-search/internal/secret"
	"github.com/MKhiriev/go-pass-search/models"
)

// SecretVault is the encrypted credential store.
type SecretVault interface {
	// ListEntries returns the full entry set in store order.
	ListEntries(ctx context.Context) ([]models.Entry, error)
	// ReadSecret decrypts one entry. The caller owns and must close the
	// returned buffer.
	ReadSecret(ctx context.Context, name string) (*secret.Buffer, error)
}

// OtpExtractor derives a one-time code from decrypted entry content.
type OtpExtractor interface {
	// Extract returns the current code in a buffer owned by the caller. The
	// input buffer is not closed.
	Extract(s *secret.Buffer) (*secret.Buffer, error)
}

// ClipboardSession owns the clipboard and its auto-clear.
type ClipboardSession interface {
	CopyWithExpiry(value string, delay time.Duration) (clipboard.Ticket, error)
}

// NotificationSink reports outcomes to the user. It is best effort and
// never fails.
type NotificationSink interface {
	Notify(ctx context.Context, summary, body string)
}

// CredentialMatcher turns search terms into result identifiers.
type CredentialMatcher interface {
	// Filter returns the identifiers of the entries matching terms, in
	// store order. A leading "otp" term selects OTP mode and is not matched.
	Filter(ctx context.Context, terms []string) []string
	// Describe maps identifiers to display metadata.
	Describe(ids []string) []models.ResultMeta
}

// ActivationController delivers the secret of an activated result.
type ActivationController interface {
	// Activate copies the password or code of entry id and reports the
	// outcome through a notification. It has no return value.
	Activate(ctx context.Context, id string, terms []string, timestamp uint32)
}

// SearchProvider is what a search surface calls.
type SearchProvider interface {
	InitialResultSet(ctx context.Context, terms []string) []string
	ResultMetas(ctx context.Context, ids []string) []models.ResultMeta
	ActivateResult(ctx context.Context, id string, terms []string, timestamp uint32)
}

// SearchService is a SearchProvider whose activations run in the background.
type SearchService interface {
	SearchProvider
	// Wait blocks until every started activation has finished.
	Wait()
}
