package store

import (
	"context"

	"github.com/Vanshika394/sweet-shop-manager/internal/config"
	"github.com/Vanshika394/sweet-shop-manager/internal/logger"
)

type Storages struct {
	UserRepository  UserRepository
	SweetRepository SweetRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		SweetRepository: NewSweetRepository(db, logger),
	}
}

// NewConnect opens a database connection for the configured driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.Driver == "sqlite3" {
		return NewConnectSQLite(ctx, cfg, log)
	}

	return NewConnectPostgres(ctx, cfg, log)
}
