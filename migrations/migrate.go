package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations for the given driver
// ("pgx" or "sqlite3"). The DDL differs between the dialects (serial ids),
// so each driver has its own migration directory.
func Migrate(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	var dir, dialect string
	switch driver {
	case "pgx":
		dir, dialect = "postgres", "pgx"
	case "sqlite3":
		dir, dialect = "sqlite", "sqlite3"
	default:
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
