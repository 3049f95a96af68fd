// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-pass-search/internal/clipboard"
	"github.com/MKhiriev/go-pass-search/internal/clock"
	"github.com/MKhiriev/go-pass-search/internal/config"
	"github.com/MKhiriev/go-pass-search/internal/logger"
	"github.com/MKhiriev/go-pass-search/internal/notify"
	"github.com/MKhiriev/go-pass-search/internal/otp"
	"github.com/MKhiriev/go-pass-search/internal/service"
	"github.com/MKhiriev/go-pass-search/internal/store"
	"github.com/MKhiriev/go-pass-search/internal/workers"
)

// core is the part shared by every surface: the search service and the
// resources it owns.
type core struct {
	store    *store.PasswordStore
	session  *clipboard.Session
	services *service.Services
	// watcher is nil when store watching is disabled.
	watcher *store.Watcher
	clock   clock.Clock
	logger  *logger.Logger
}

func newCore(cfg *config.StructuredConfig, writer clipboard.Writer, transport notify.Transport, clk clock.Clock, log *logger.Logger) *core {
	watch := !cfg.Store.NoWatch

	passwords := store.NewPasswordStore(cfg.Store.Dir, cfg.Store.IdentitiesFile, watch, log)
	session := clipboard.NewSession(writer, clk, cfg.Clipboard.ClearDelay, log)
	sink := notify.NewSink(transport, notify.Options{
		AppName:     cfg.Notify.AppName,
		Icon:        cfg.Notify.Icon,
		Timeout:     cfg.Notify.Timeout,
		SendTimeout: cfg.Notify.SendTimeout,
	}, log)

	c := &core{
		store:    passwords,
		session:  session,
		services: service.NewServices(passwords, otp.NewExtractor(clk), session, sink, cfg.Clipboard.ClearDelay, log),
		clock:    clk,
		logger:   log,
	}
	if watch {
		c.watcher = store.NewWatcher(passwords.Dir(), passwords.Index(), clk, log)
	}
	return c
}

// workers returns the store watcher together with ws.
func (c *core) workers(ws ...workers.Worker) *workers.Workers {
	if c.watcher != nil {
		ws = append(ws, c.watcher)
	}
	return workers.NewWorkers(ws...)
}

// close waits for running activations and then clears a copied secret
// that is still on the clipboard.
func (c *core) close() error {
	c.services.Search.Wait()
	if err := c.session.Close(); err != nil {
		return fmt.Errorf("error closing clipboard session: %w", err)
	}
	return nil
}

// waitForClear blocks until the pending clipboard clear is due or ctx is
// done. It returns at once when nothing is pending.
func (c *core) waitForClear(ctx context.Context, out io.Writer) {
	ticket, ok := c.session.Pending()
	if !ok {
		return
	}

	remaining := ticket.Deadline().Sub(c.clock.Now())
	fmt.Fprintf(out, "Clipboard will be cleared in %s\n", remaining.Round(time.Second))

	due := make(chan struct{})
	timer := c.clock.AfterFunc(remaining, func() { close(due) })
	defer timer.Stop()

	select {
	case <-due:
	case <-ctx.Done():
		c.logger.Info().Msg("interrupted, clearing clipboard now")
	}
}
