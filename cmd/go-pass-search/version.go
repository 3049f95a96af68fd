// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		printBuildInfo()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
