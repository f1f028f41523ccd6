package store

import (
	"context"

	"github.com/Vanshika394/sweet-shop-manager/models"
)

// UserRepository defines persistence operations for user accounts.
// User records are owned by the authentication service; nothing else
// mutates them.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// SweetRepository defines persistence operations for catalog items.
//
// DecrementQuantity and IncrementQuantity are single atomic statements
// against the store: the quantity check and the write happen in one
// conditional UPDATE, never as a separate read followed by a write.
type SweetRepository interface {
	CreateSweet(ctx context.Context, sweet models.Sweet) (models.Sweet, error)
	GetSweet(ctx context.Context, id int64) (models.Sweet, error)
	ListSweets(ctx context.Context) ([]models.Sweet, error)
	SearchSweets(ctx context.Context, filter models.SweetFilter) ([]models.Sweet, error)
	UpdateSweet(ctx context.Context, id int64, patch models.SweetPatch) (models.Sweet, error)
	DeleteSweet(ctx context.Context, id int64) error
	DecrementQuantity(ctx context.Context, id, quantity int64) (models.Sweet, error)
	IncrementQuantity(ctx context.Context, id, quantity int64) (models.Sweet, error)
}
