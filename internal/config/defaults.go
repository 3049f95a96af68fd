// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"time"
)

// Defaults applied to fields left empty by every source.
const (
	DefaultStoreDirName       = ".password-store"
	DefaultIdentitiesFilePath = ".passage/identities"
	DefaultClearDelay         = 40 * time.Second
	DefaultNotifyAppName      = "Pass"
	DefaultNotifyIcon         = "dialog-password"
	DefaultNotifyTimeout      = 4 * time.Second
	DefaultNotifySendTimeout  = 2 * time.Second
	DefaultBusName            = "io.m51.Pass.SearchProvider"
	DefaultObjectPath         = "/io/m51/Pass/SearchProvider"
)

// applyDefaults fills unset fields. Paths default under Home, so Home must
// already be resolved.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Store.Dir == "" && cfg.Home != "" {
		cfg.Store.Dir = filepath.Join(cfg.Home, DefaultStoreDirName)
	}
	if cfg.Store.IdentitiesFile == "" && cfg.Home != "" {
		cfg.Store.IdentitiesFile = filepath.Join(cfg.Home, filepath.FromSlash(DefaultIdentitiesFilePath))
	}
	if cfg.Clipboard.ClearDelay == 0 {
		cfg.Clipboard.ClearDelay = DefaultClearDelay
	}
	if cfg.Notify.AppName == "" {
		cfg.Notify.AppName = DefaultNotifyAppName
	}
	if cfg.Notify.Icon == "" {
		cfg.Notify.Icon = DefaultNotifyIcon
	}
	if cfg.Notify.Timeout == 0 {
		cfg.Notify.Timeout = DefaultNotifyTimeout
	}
	if cfg.Notify.SendTimeout == 0 {
		cfg.Notify.SendTimeout = DefaultNotifySendTimeout
	}
	if cfg.DBus.BusName == "" {
		cfg.DBus.BusName = DefaultBusName
	}
	if cfg.DBus.ObjectPath == "" {
		cfg.DBus.ObjectPath = DefaultObjectPath
	}
}
