// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"

	"github.com/MKhiriev/go-pass-search/internal/clipboard"
	"github.com/MKhiriev/go-pass-search/internal/clock"
	"github.com/MKhiriev/go-pass-search/internal/config"
	"github.com/MKhiriev/go-pass-search/internal/handler"
	"github.com/MKhiriev/go-pass-search/internal/logger"
	"github.com/MKhiriev/go-pass-search/internal/notify"
	"github.com/MKhiriev/go-pass-search/internal/server"
	"github.com/MKhiriev/go-pass-search/internal/workers"
)

// App serves the search provider on the session bus.
type App struct {
	conn    *dbus.Conn
	core    *core
	workers *workers.Workers
	logger  *logger.Logger
}

// NewApp connects to the session bus and wires the provider.
func NewApp(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("error connecting to session bus: %w", err)
	}

	if !clipboard.Available() {
		log.Warn().Msg("no clipboard utility found, copies will fail")
	}

	c := newCore(cfg, clipboard.System(), notify.NewDBusTransport(conn), clock.Real(), log)
	handlers := handler.NewHandlers(c.services, log)

	srv, err := server.NewServer(conn, handlers.DBus, cfg.DBus, log)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return &App{
		conn:    conn,
		core:    c,
		workers: c.workers(srv),
		logger:  log,
	}, nil
}

// Run serves until SIGINT, SIGTERM or SIGQUIT, or until a worker fails.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	a.logger.Info().Int("workers", a.workers.Len()).Msg("starting search provider")
	runErr := a.workers.Run(ctx)
	if runErr != nil {
		a.logger.Error().Err(runErr).Msg("worker failed")
	}

	closeErr := a.core.close()
	if err := a.conn.Close(); err != nil {
		closeErr = errors.Join(closeErr, fmt.Errorf("error closing session bus: %w", err))
	}

	a.logger.Info().Msg("search provider stopped")
	return errors.Join(runErr, closeErr)
}
