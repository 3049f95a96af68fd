// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// parseYAML reads a [StructuredConfig] from the YAML file at path. Durations
// are written as Go duration strings ("40s", "1m").
func parseYAML(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}
	defer f.Close()

	cfg := new(StructuredConfig)
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	return cfg, nil
}
