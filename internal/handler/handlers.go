// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers exposing the search
// service.
package handler

import (
	"github.com/MKhiriev/go-pass-search/internal/handler/dbus"
	"github.com/MKhiriev/go-pass-search/internal/logger"
	"github.com/MKhiriev/go-pass-search/internal/service"
)

type Handlers struct {
	DBus *dbus.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		DBus: dbus.NewHandler(services.Search, logger),
	}
}
