// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-search/internal/config"
	"github.com/MKhiriev/go-pass-search/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var rootCmd = &cobra.Command{
	Use:   "go-pass-search",
	Short: "Search an age-encrypted password store from the desktop shell",
	Long: `Exposes the entries of a password store to GNOME Shell search and copies
passwords or one-time codes to the clipboard, clearing it after a delay.

Entries are age-encrypted *.age files (the passage format), decrypted with
the identities in $PASSAGE_IDENTITIES_FILE (default ~/.passage/identities).
GPG-encrypted pass stores are not supported. The store is read from
$PASSWORD_STORE_DIR, default ~/.password-store; point it, or --store-dir,
at ~/.passage/store for a passage store in its usual place.`,
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// flagConfig receives the persistent flags shared by every command.
var flagConfig *config.StructuredConfig

func init() {
	flagConfig = config.RegisterFlags(rootCmd.PersistentFlags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func printBuildInfo() {
	info := buildInfo()

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
