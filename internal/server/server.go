// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"

	"github.com/MKhiriev/go-pass-search/internal/config"
	handler "github.com/MKhiriev/go-pass-search/internal/handler/dbus"
	"github.com/MKhiriev/go-pass-search/internal/logger"
)

// Bus is the part of *dbus.Conn used by the server.
type Bus interface {
	Export(v any, path dbus.ObjectPath, iface string) error
	RequestName(name string, flags dbus.RequestNameFlags) (dbus.RequestNameReply, error)
	ReleaseName(name string) (dbus.ReleaseNameReply, error)
}

type server struct {
	bus     Bus
	handler *handler.Handler
	name    string
	path    dbus.ObjectPath

	mu       sync.Mutex
	exported bool
	owned    bool

	logger *logger.Logger
}

// NewServer returns a Server publishing h on bus under cfg's name and path.
func NewServer(bus Bus, h *handler.Handler, cfg config.DBus, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	path := dbus.ObjectPath(cfg.ObjectPath)
	if !path.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidObjectPath, cfg.ObjectPath)
	}

	return &server{
		bus:     bus,
		handler: h,
		name:    cfg.BusName,
		path:    path,
		logger:  logger,
	}, nil
}

// Run exports the provider, claims the bus name and waits for ctx.
func (s *server) Run(ctx context.Context) error {
	if err := s.publish(); err != nil {
		s.Shutdown()
		return err
	}

	s.logger.Info().Str("name", s.name).Str("path", string(s.path)).Msg("search provider is running")

	<-ctx.Done()
	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

// Shutdown implements Server. It is safe to call more than once.
func (s *server) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.owned {
		if _, err := s.bus.ReleaseName(s.name); err != nil {
			s.logger.Warn().Err(err).Msg("failed to release bus name")
		}
		s.owned = false
	}

	if s.exported {
		// exporting nil removes the object
		_ = s.bus.Export(nil, s.path, handler.InterfaceName)
		_ = s.bus.Export(nil, s.path, introspectableInterface)
		s.exported = false
	}
}

const introspectableInterface = "org.freedesktop.DBus.Introspectable"

func (s *server) publish() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.bus.Export(s.handler, s.path, handler.InterfaceName); err != nil {
		return fmt.Errorf("error exporting search provider: %w", err)
	}
	s.exported = true

	node := handler.Introspection(s.handler)
	node.Name = string(s.path)
	if err := s.bus.Export(introspect.NewIntrospectable(node), s.path, introspectableInterface); err != nil {
		return fmt.Errorf("error exporting introspection data: %w", err)
	}

	reply, err := s.bus.RequestName(s.name, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("error requesting bus name %s: %w", s.name, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner && reply != dbus.RequestNameReplyAlreadyOwner {
		return fmt.Errorf("%w: %s", ErrNameTaken, s.name)
	}
	s.owned = true

	return nil
}
