// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"

	"github.com/MKhiriev/go-pass-search/internal/clipboard"
	"github.com/MKhiriev/go-pass-search/internal/clock"
	"github.com/MKhiriev/go-pass-search/internal/config"
	"github.com/MKhiriev/go-pass-search/internal/logger"
	"github.com/MKhiriev/go-pass-search/internal/notify"
	"github.com/MKhiriev/go-pass-search/internal/tui"
	"github.com/MKhiriev/go-pass-search/internal/workers"
	"github.com/MKhiriev/go-pass-search/models"
)

// SearchApp runs the terminal search surface. Outcomes are shown in the
// UI and, when a session bus is reachable, as desktop notifications.
type SearchApp struct {
	conn   *dbus.Conn
	core   *core
	tui    *tui.TUI
	terms  []string
	out    io.Writer
	logger *logger.Logger
}

// NewSearchApp wires the terminal surface. terms prefill the query.
func NewSearchApp(cfg *config.StructuredConfig, info models.AppBuildInfo, terms []string, log *logger.Logger) *SearchApp {
	ui := tui.New(info, log)
	transports := []notify.Transport{ui.Transport()}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Warn().Err(err).Msg("session bus unavailable, desktop notifications disabled")
		conn = nil
	} else {
		transports = append(transports, notify.NewDBusTransport(conn))
	}

	if !clipboard.Available() {
		log.Warn().Msg("no clipboard utility found, copies will fail")
	}

	return &SearchApp{
		conn:   conn,
		core:   newCore(cfg, clipboard.System(), notify.Fanout(transports...), clock.Real(), log),
		tui:    ui,
		terms:  terms,
		out:    os.Stderr,
		logger: log,
	}
}

// Run shows the UI until the user quits. A copied secret stays on the
// clipboard until its clear is due, so Run keeps waiting after the UI has
// closed unless interrupted.
func (a *SearchApp) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	uiCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ui := workers.Func(func(ctx context.Context) error {
		defer cancel()
		return a.tui.Run(ctx, a.core.services.Search, a.terms)
	})

	runErr := a.core.workers(ui).Run(uiCtx)
	if runErr != nil {
		a.logger.Error().Err(runErr).Msg("terminal search failed")
	}

	a.core.services.Search.Wait()
	a.core.waitForClear(ctx, a.out)

	closeErr := a.core.close()
	if a.conn != nil {
		if err := a.conn.Close(); err != nil {
			closeErr = errors.Join(closeErr, fmt.Errorf("error closing session bus: %w", err))
		}
	}
	return errors.Join(runErr, closeErr)
}
