// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config holds the runtime configuration for the declare service,
// sourced from DECLARE_-prefixed environment variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is the full service configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is where the SQLite database lives. Empty selects an
	// in-memory database (useful for tests and demos, not production).
	DataDir string `envconfig:"DATA_DIR" default:""`

	// SiteDomain is the public origin used when building absolute
	// verification URLs, e.g. "https://declare.example.org".
	SiteDomain string `envconfig:"SITE_DOMAIN" default:""`

	// RecaptchaEnabled turns on captcha checks for non-draft
	// declaration submissions and signer registrations.
	RecaptchaEnabled   bool   `envconfig:"RECAPTCHA_ENABLED" default:"false"`
	RecaptchaSecretKey string `envconfig:"RECAPTCHA_SECRET_KEY" default:""`

	// LogDir adds a file sink next to stdout when set.
	LogDir  string `envconfig:"LOG_DIR" default:""`
	LogJSON bool   `envconfig:"LOG_JSON" default:"false"`

	// DefaultLang is the language used when a request carries none.
	DefaultLang string `envconfig:"DEFAULT_LANG" default:"es"`

	// TracingEnabled exports spans over OTLP gRPC. The collector address
	// comes from the standard OTEL_EXPORTER_OTLP_ENDPOINT variable.
	TracingEnabled bool `envconfig:"TRACING_ENABLED" default:"false"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("declare", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	return &cfg, nil
}
