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

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the GNOME Shell search provider on the session bus",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	printBuildInfo()

	log := logger.NewLogger("go-pass-search")
	cfg, err := config.GetStructuredConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	var app client.Client
	app, err = client.NewApp(cfg, log)
	if err != nil {
		return fmt.Errorf("init search provider: %w", err)
	}

	return app.Run(cmd.Context())
}
