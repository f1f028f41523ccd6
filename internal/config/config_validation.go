// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sweet-shop-manager Authors

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token sign key and the database DSN are required process-wide
// configuration; everything else has a default.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrUnsupportedDriver
	}

	return nil
}
