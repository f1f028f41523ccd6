package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/Vanshika394/sweet-shop-manager/internal/logger"
	"github.com/Vanshika394/sweet-shop-manager/migrations"
)

// DB wraps *sql.DB together with the driver name and a squirrel statement
// builder configured with the driver's placeholder format ($N for pgx,
// ? for sqlite3). Repositories build their dynamic statements through the
// embedded builder so that one repository implementation serves both
// backends.
type DB struct {
	*sql.DB
	driver  string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// Migrate applies all pending goose migrations for the connected driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Builder exposes the driver-configured statement builder.
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

func builderFor(driver string) sq.StatementBuilderType {
	if driver == "pgx" {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
