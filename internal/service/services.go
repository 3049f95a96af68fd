// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-pass-search/internal/logger"
)

// Services groups the pipeline components built over one set of
// collaborators.
type Services struct {
	Matcher   CredentialMatcher
	Activator ActivationController
	Search    SearchService
}

// NewServices wires the matcher, the activation controller and the search
// service.
func NewServices(
	vault SecretVault,
	extractor OtpExtractor,
	clipboard ClipboardSession,
	sink NotificationSink,
	clearDelay time.Duration,
	logger *logger.Logger,
) *Services {
	matcher := NewCredentialMatcher(vault, logger)
	activator := NewActivationController(vault, extractor, clipboard, sink, clearDelay, logger)

	return &Services{
		Matcher:   matcher,
		Activator: activator,
		Search:    NewSearchService(matcher, activator, logger),
	}
}
