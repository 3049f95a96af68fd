// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-pass-search/internal/logger"
	"github.com/MKhiriev/go-pass-search/models"
)

type searchService struct {
	matcher   CredentialMatcher
	activator ActivationController

	wg sync.WaitGroup

	logger *logger.Logger
}

// NewSearchService returns a SearchService answering searches with matcher
// and running activations with activator.
func NewSearchService(matcher CredentialMatcher, activator ActivationController, logger *logger.Logger) SearchService {
	return &searchService{matcher: matcher, activator: activator, logger: logger}
}

// InitialResultSet implements SearchProvider.
func (s *searchService) InitialResultSet(ctx context.Context, terms []string) []string {
	return s.matcher.Filter(ctx, terms)
}

// ResultMetas implements SearchProvider.
func (s *searchService) ResultMetas(_ context.Context, ids []string) []models.ResultMeta {
	return s.matcher.Describe(ids)
}

// ActivateResult implements SearchProvider. The activation runs in its own
// goroutine with a context detached from the caller's cancellation; the
// call returns once it has been started.
func (s *searchService) ActivateResult(ctx context.Context, id string, terms []string, timestamp uint32) {
	terms = slices.Clone(terms)
	ctx = context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error().Interface("panic", r).Str("entry", id).Msg("activation panicked")
			}
		}()

		s.activator.Activate(ctx, id, terms, timestamp)
	}()
}

// Wait implements SearchService.
func (s *searchService) Wait() {
	s.wg.Wait()
}
