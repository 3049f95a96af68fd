// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-search/internal/logger"
	"github.com/MKhiriev/go-pass-search/models"
)

type credentialMatcher struct {
	vault SecretVault

	logger *logger.Logger
}

// NewCredentialMatcher returns a CredentialMatcher over vault.
func NewCredentialMatcher(vault SecretVault, logger *logger.Logger) CredentialMatcher {
	return &credentialMatcher{vault: vault, logger: logger}
}

// Filter implements CredentialMatcher. An entry matches when any term is a
// case-insensitive substring of its name. No terms after the sentinel match
// nothing. Enumeration failures yield an empty result.
func (m *credentialMatcher) Filter(ctx context.Context, terms []string) []string {
	query := models.ParseQuery(terms)
	ids := make([]string, 0)
	if len(query.Terms) == 0 {
		return ids
	}

	entries, err := m.vault.ListEntries(ctx)
	if err != nil {
		m.logger.Warn().Err(err).Msg("failed to enumerate password store")
		return ids
	}

	needles := make([]string, len(query.Terms))
	for i, term := range query.Terms {
		needles[i] = strings.ToLower(term)
	}

	for _, entry := range entries {
		if matchesAny(strings.ToLower(entry.Name), needles) {
			ids = append(ids, entry.Name)
		}
	}

	m.logger.Debug().
		Stringer("mode", query.Mode).
		Int("terms", len(query.Terms)).
		Int("results", len(ids)).
		Msg("search filtered")

	return ids
}

// Describe implements CredentialMatcher. The identifier is also the label.
func (m *credentialMatcher) Describe(ids []string) []models.ResultMeta {
	metas := make([]models.ResultMeta, 0, len(ids))
	for _, id := range ids {
		metas = append(metas, models.ResultMeta{ID: id, Name: id})
	}
	return metas
}

func matchesAny(name string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(name, needle) {
			return true
		}
	}
	return false
}
