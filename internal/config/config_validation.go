// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the merged and defaulted [StructuredConfig] can be
// used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Home == "" {
		return ErrHomeNotSet
	}

	if cfg.Store.Dir == "" || cfg.Store.IdentitiesFile == "" {
		return ErrInvalidStoreConfigs
	}

	if cfg.Clipboard.ClearDelay <= 0 {
		return fmt.Errorf("%w: clear delay must be positive, got %s", ErrInvalidClipboardConfigs, cfg.Clipboard.ClearDelay)
	}

	if cfg.Notify.Timeout <= 0 || cfg.Notify.SendTimeout <= 0 {
		return ErrInvalidNotifyConfigs
	}

	if cfg.DBus.BusName == "" || !strings.HasPrefix(cfg.DBus.ObjectPath, "/") {
		return ErrInvalidDBusConfigs
	}

	return nil
}
