// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// go-pass-search. It is populated by merging a YAML file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//   - yaml:      key in the optional YAML config file.
type StructuredConfig struct {
	// Home is the user's home directory. It is the base for the default
	// store directory and identities file.
	// Env: HOME
	Home string `env:"HOME" yaml:"home"`

	// Store holds the location of the password store and its decryption
	// identities.
	Store Store `yaml:"store"`

	// Clipboard holds the auto-clear policy.
	Clipboard Clipboard `envPrefix:"CLIPBOARD_" yaml:"clipboard"`

	// Notify holds the desktop notification parameters.
	Notify Notify `envPrefix:"NOTIFY_" yaml:"notify"`

	// DBus holds the well-known name and object path under which the
	// search provider is exported.
	DBus DBus `envPrefix:"DBUS_" yaml:"dbus"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_" yaml:"log"`

	// ConfigFile is the optional path to a YAML configuration file.
	// Env: CONFIG
	ConfigFile string `env:"CONFIG" yaml:"-"`
}

// Store describes the encrypted password store.
type Store struct {
	// Dir is the root directory of the store. Entries are the age-encrypted
	// *.age files below it, as written by passage; *.gpg files of a pass
	// store are not read. The default is $HOME/.password-store, so a
	// passage store kept in ~/.passage/store needs this set explicitly.
	// Env: PASSWORD_STORE_DIR
	Dir string `env:"PASSWORD_STORE_DIR" yaml:"dir"`

	// IdentitiesFile holds the age identities used to decrypt entries.
	// Env: PASSAGE_IDENTITIES_FILE
	IdentitiesFile string `env:"PASSAGE_IDENTITIES_FILE" yaml:"identities_file"`

	// NoWatch disables invalidating the entry index on file-system
	// changes; the store is then enumerated on every search.
	// Env: PASSWORD_STORE_NO_WATCH
	NoWatch bool `env:"PASSWORD_STORE_NO_WATCH" yaml:"no_watch"`
}

// Clipboard holds the clipboard auto-clear policy.
type Clipboard struct {
	// ClearDelay is how long a copied secret stays on the clipboard after
	// the last copy.
	// Env: CLIPBOARD_CLEAR_DELAY
	ClearDelay time.Duration `env:"CLEAR_DELAY" yaml:"clear_delay"`
}

// Notify holds the parameters of outgoing desktop notifications.
type Notify struct {
	// AppName is the application name reported to the notification daemon.
	// Env: NOTIFY_APP_NAME
	AppName string `env:"APP_NAME" yaml:"app_name"`

	// Icon is the freedesktop icon name shown with each notification.
	// Env: NOTIFY_ICON
	Icon string `env:"ICON" yaml:"icon"`

	// Timeout is how long the notification stays visible.
	// Env: NOTIFY_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT" yaml:"timeout"`

	// SendTimeout bounds one delivery attempt to the notification daemon.
	// Env: NOTIFY_SEND_TIMEOUT
	SendTimeout time.Duration `env:"SEND_TIMEOUT" yaml:"send_timeout"`
}

// DBus holds the session-bus coordinates of the search provider.
type DBus struct {
	// BusName is the well-known name requested on the session bus.
	// Env: DBUS_BUS_NAME
	BusName string `env:"BUS_NAME" yaml:"bus_name"`

	// ObjectPath is where the SearchProvider2 interface is exported.
	// Env: DBUS_OBJECT_PATH
	ObjectPath string `env:"OBJECT_PATH" yaml:"object_path"`
}

// Log holds logging settings.
type Log struct {
	// File is where the terminal search surface writes its log. Empty
	// discards it.
	// Env: LOG_FILE
	File string `env:"FILE" yaml:"file"`
}

// GetStructuredConfig loads, merges, defaults and validates the
// configuration. flags is the struct returned by [RegisterFlags] after the
// flag set has been parsed; it may be nil.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withYAML().
		build()
}
