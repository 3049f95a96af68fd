// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dbus exposes a search service as an
// org.gnome.Shell.SearchProvider2 object on the session bus.
package dbus
