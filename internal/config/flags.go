// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// RegisterFlags defines the configuration flags on fs and returns the
// struct they write into. The struct is meaningful once fs has been parsed.
//
// Flags:
//
//	-c, --config           YAML config file path
//	-s, --store-dir        password store root directory
//	-i, --identities-file  age identities file
//	    --no-watch         do not watch the store for changes
//	-d, --clear-delay      clipboard auto-clear delay (e.g. 40s)
//	    --app-name         application name shown in notifications
//	    --icon             notification icon name
//	    --notify-timeout   notification display time (e.g. 4s)
//	    --bus-name         D-Bus well-known name
//	    --object-path      D-Bus object path
//	    --log-file         log file for the terminal search surface
func RegisterFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := new(StructuredConfig)

	fs.StringVarP(&cfg.ConfigFile, "config", "c", "", "YAML config file path")
	fs.StringVarP(&cfg.Store.Dir, "store-dir", "s", "", "Password store root directory")
	fs.StringVarP(&cfg.Store.IdentitiesFile, "identities-file", "i", "", "age identities file")
	fs.DurationVarP(&cfg.Clipboard.ClearDelay, "clear-delay", "d", 0, "Clipboard auto-clear delay (e.g. 40s)")
	fs.StringVar(&cfg.Notify.AppName, "app-name", "", "Application name shown in notifications")
	fs.StringVar(&cfg.Notify.Icon, "icon", "", "Notification icon name")
	fs.DurationVar(&cfg.Notify.Timeout, "notify-timeout", 0, "Notification display time (e.g. 4s)")
	fs.StringVar(&cfg.DBus.BusName, "bus-name", "", "D-Bus well-known name")
	fs.StringVar(&cfg.DBus.ObjectPath, "object-path", "", "D-Bus object path")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file for the terminal search surface")
	fs.BoolVar(&cfg.Store.NoWatch, "no-watch", false, "Do not watch the store for changes")

	return cfg
}

