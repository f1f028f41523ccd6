package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// provided by any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrMissingDatabaseDSN indicates that no database connection string
	// was provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")
	// ErrUnsupportedDriver indicates a database driver other than
	// "pgx" or "sqlite3".
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
