// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dbus

import (
	"context"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"

	"github.com/MKhiriev/go-pass-search/internal/logger"
	"github.com/MKhiriev/go-pass-search/internal/service"
	"github.com/MKhiriev/go-pass-search/models"
)

// InterfaceName is the D-Bus interface implemented by Handler.
const InterfaceName = "org.gnome.Shell.SearchProvider2"

// Handler implements the SearchProvider2 methods. godbus exports every
// exported method returning *dbus.Error as its last value.
type Handler struct {
	search service.SearchProvider

	logger *logger.Logger
}

// NewHandler returns a Handler forwarding to search.
func NewHandler(search service.SearchProvider, logger *logger.Logger) *Handler {
	logger.Debug().Msg("dbus handler created")
	return &Handler{search: search, logger: logger}
}

// GetInitialResultSet returns the identifiers matching terms.
func (h *Handler) GetInitialResultSet(terms []string) ([]string, *dbus.Error) {
	ids := h.search.InitialResultSet(h.context(), terms)
	h.logger.Debug().Int("results", len(ids)).Msg("GetInitialResultSet")
	return ids, nil
}

// GetSubsearchResultSet refines a previous search. The store is searched
// again with the new terms; previous results are not reused.
func (h *Handler) GetSubsearchResultSet(previous []string, terms []string) ([]string, *dbus.Error) {
	ids := h.search.InitialResultSet(h.context(), terms)
	h.logger.Debug().Int("previous", len(previous)).Int("results", len(ids)).Msg("GetSubsearchResultSet")
	return ids, nil
}

// GetResultMetas returns display metadata for ids.
func (h *Handler) GetResultMetas(ids []string) ([]map[string]dbus.Variant, *dbus.Error) {
	metas := h.search.ResultMetas(h.context(), ids)

	out := make([]map[string]dbus.Variant, 0, len(metas))
	for _, meta := range metas {
		out = append(out, metaToVariant(meta))
	}
	return out, nil
}

// ActivateResult starts delivery of the entry id. It returns before the
// delivery finishes.
func (h *Handler) ActivateResult(id string, terms []string, timestamp uint32) *dbus.Error {
	h.logger.Debug().Str("entry", id).Msg("ActivateResult")
	h.search.ActivateResult(h.context(), id, terms, timestamp)
	return nil
}

// LaunchSearch would open the provider's own UI. There is none, so it does
// nothing.
func (h *Handler) LaunchSearch(terms []string, timestamp uint32) *dbus.Error {
	h.logger.Debug().Msg("LaunchSearch ignored")
	return nil
}

func (h *Handler) context() context.Context {
	return h.logger.WithContext(context.Background())
}

func metaToVariant(meta models.ResultMeta) map[string]dbus.Variant {
	return map[string]dbus.Variant{
		"id":          dbus.MakeVariant(meta.ID),
		"name":        dbus.MakeVariant(meta.Name),
		"description": dbus.MakeVariant(meta.Description),
	}
}

// Introspection describes the object exported at a search provider path.
func Introspection(h *Handler) *introspect.Node {
	return &introspect.Node{
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			{
				Name:    InterfaceName,
				Methods: introspect.Methods(h),
			},
		},
	}
}
