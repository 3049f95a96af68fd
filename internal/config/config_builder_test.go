// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempYAMLConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsFromHome verifies that an otherwise empty config is
// completed from the home directory and the fixed defaults.
func TestBuild_DefaultsFromHome(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Home: "/home/tester"})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "/home/tester/.password-store", cfg.Store.Dir)
	assert.Equal(t, "/home/tester/.passage/identities", cfg.Store.IdentitiesFile)
	assert.Equal(t, 40*time.Second, cfg.Clipboard.ClearDelay)
	assert.Equal(t, "Pass", cfg.Notify.AppName)
	assert.Equal(t, "dialog-password", cfg.Notify.Icon)
	assert.Equal(t, 4*time.Second, cfg.Notify.Timeout)
	assert.Equal(t, "io.m51.Pass.SearchProvider", cfg.DBus.BusName)
	assert.Equal(t, "/io/m51/Pass/SearchProvider", cfg.DBus.ObjectPath)
	assert.False(t, cfg.Store.NoWatch)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MissingHome verifies that no home directory is a hard error.
func TestBuild_MissingHome(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrHomeNotSet)
}

// TestBuild_ExplicitStoreDirWins verifies that the store directory override
// is not replaced by the home-based default.
func TestBuild_ExplicitStoreDirWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Home:  "/home/tester",
		Store: Store{Dir: "/srv/store"},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/srv/store", cfg.Store.Dir)
	assert.Equal(t, "/home/tester/.passage/identities", cfg.Store.IdentitiesFile)
}

// TestBuild_LaterLayersOverride verifies env < flags ordering.
func TestBuild_LaterLayersOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Home: "/home/tester", Clipboard: Clipboard{ClearDelay: time.Minute}},
		&StructuredConfig{Clipboard: Clipboard{ClearDelay: 5 * time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Clipboard.ClearDelay)
	assert.Equal(t, "/home/tester", cfg.Home, "zero fields must not override")
}

// TestBuild_InvalidObjectPath verifies D-Bus path validation.
func TestBuild_InvalidObjectPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Home: "/home/tester",
		DBus: DBus{ObjectPath: "io/m51/Pass"},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidDBusConfigs)
}

// TestBuild_NegativeClearDelay verifies clipboard validation.
func TestBuild_NegativeClearDelay(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Home:      "/home/tester",
		Clipboard: Clipboard{ClearDelay: -time.Second},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidClipboardConfigs)
}

// ── withYAML ──────────────────────────────────────────────────────────────────

// TestWithYAML_FileIsLowestPriority verifies that the YAML file fills gaps
// but env/flags values win.
func TestWithYAML_FileIsLowestPriority(t *testing.T) {
	path := writeTempYAMLConfig(t, `
store:
  dir: /from/file
clipboard:
  clear_delay: 90s
notify:
  app_name: FromFile
`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Home:       "/home/tester",
		ConfigFile: path,
		Notify:     Notify{AppName: "FromEnv"},
	})

	cfg, err := b.withYAML().build()
	require.NoError(t, err)

	assert.Equal(t, "/from/file", cfg.Store.Dir)
	assert.Equal(t, 90*time.Second, cfg.Clipboard.ClearDelay)
	assert.Equal(t, "FromEnv", cfg.Notify.AppName)
	assert.Equal(t, path, cfg.ConfigFile)
}

// TestWithYAML_NotSpecified verifies that no file path means no file layer.
func TestWithYAML_NotSpecified(t *testing.T) {
	b := newConfigBuilder().withYAML()
	assert.NoError(t, b.err)
	assert.Nil(t, b.file)
}

// TestWithYAML_MissingFile verifies that a bad path surfaces from build.
func TestWithYAML_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Home:       "/home/tester",
		ConfigFile: filepath.Join(t.TempDir(), "nope.yaml"),
	})

	cfg, err := b.withYAML().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a yaml file")
}

// TestWithYAML_UnknownField verifies strict decoding.
func TestWithYAML_UnknownField(t *testing.T) {
	path := writeTempYAMLConfig(t, "clipboard:\n  delay: 10s\n")

	_, err := parseYAML(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding yaml configs")
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_EnvOverride verifies the PASSWORD_STORE_DIR
// override end to end.
func TestGetStructuredConfig_EnvOverride(t *testing.T) {
	setEnvVars(t, map[string]string{
		"HOME":               "/home/tester",
		"PASSWORD_STORE_DIR": "/srv/store",
	})

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "/srv/store", cfg.Store.Dir)
	assert.Equal(t, 40*time.Second, cfg.Clipboard.ClearDelay)
}

// TestGetStructuredConfig_FlagsBeatEnv verifies flag precedence.
func TestGetStructuredConfig_FlagsBeatEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"HOME":                  "/home/tester",
		"CLIPBOARD_CLEAR_DELAY": "1m",
	})

	cfg, err := GetStructuredConfig(&StructuredConfig{Clipboard: Clipboard{ClearDelay: 15 * time.Second}})
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.Clipboard.ClearDelay)
}
