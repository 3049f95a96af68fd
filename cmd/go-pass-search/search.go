// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-search/internal/client"
	"github.com/MKhiriev/go-pass-search/internal/config"
	"github.com/MKhiriev/go-pass-search/internal/logger"
)

var searchCmd = &cobra.Command{
	Use:   "search [terms...]",
	Short: "Search the password store in the terminal",
	Long:  "Opens an interactive search. Start the query with \"otp\" to copy a one-time code instead of the password.",
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetStructuredConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	// The UI owns the terminal, so logs go to a file or nowhere.
	log := logger.Nop()
	if cfg.Log.File != "" {
		log = logger.NewFileLogger("go-pass-search", cfg.Log.File)
	}

	var app client.Client = client.NewSearchApp(cfg, buildInfo(), args, log)
	return app.Run(cmd.Context())
}
