// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-search/internal/logger"
	"github.com/MKhiriev/go-pass-search/internal/notify"
	"github.com/MKhiriev/go-pass-search/internal/service"
	"github.com/MKhiriev/go-pass-search/models"
)

// TUI runs the terminal search surface over a SearchService.
type TUI struct {
	transport *statusTransport
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		transport: newStatusTransport(),
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Transport returns the notification transport that feeds the status line.
// The notification sink of the search service must send through it.
func (t *TUI) Transport() notify.Transport {
	return t.transport
}

// Run shows the UI until the user quits or ctx is done, then waits for the
// activations still in flight. initialTerms prefill the query.
func (t *TUI) Run(ctx context.Context, search service.SearchService, initialTerms []string) error {
	m := newModel(ctx, search, t.transport.notes, t.buildInfo, initialTerms)

	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()

	t.logger.Debug().Msg("terminal UI closed, waiting for pending activations")
	search.Wait()

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}
