// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFlags_AllFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := RegisterFlags(fs)

	err := fs.Parse([]string{
		"-c", "/etc/pass.yaml",
		"-s", "/srv/store",
		"-i", "/keys.txt",
		"-d", "10s",
		"--app-name", "Passage",
		"--icon", "lock",
		"--notify-timeout", "2s",
		"--bus-name", "org.example.Pass",
		"--object-path", "/org/example/Pass",
		"--log-file", "/tmp/search.log",
		"--no-watch",
	})
	require.NoError(t, err)

	assert.Equal(t, "/etc/pass.yaml", cfg.ConfigFile)
	assert.Equal(t, "/srv/store", cfg.Store.Dir)
	assert.Equal(t, "/keys.txt", cfg.Store.IdentitiesFile)
	assert.True(t, cfg.Store.NoWatch)
	assert.Equal(t, 10*time.Second, cfg.Clipboard.ClearDelay)
	assert.Equal(t, "Passage", cfg.Notify.AppName)
	assert.Equal(t, "lock", cfg.Notify.Icon)
	assert.Equal(t, 2*time.Second, cfg.Notify.Timeout)
	assert.Equal(t, "org.example.Pass", cfg.DBus.BusName)
	assert.Equal(t, "/org/example/Pass", cfg.DBus.ObjectPath)
	assert.Equal(t, "/tmp/search.log", cfg.Log.File)
}

func TestRegisterFlags_NoFlagsLeavesZeroValues(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := RegisterFlags(fs)

	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestRegisterFlags_InvalidDuration(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	assert.Error(t, fs.Parse([]string{"--clear-delay", "soon"}))
}
