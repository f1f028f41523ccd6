package service

import (
	"context"

	"github.com/Vanshika394/sweet-shop-manager/models"
)

// AuthService owns the user account lifecycle and the bearer token flow.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	VerifyToken(ctx context.Context, tokenString string) (models.User, error)
}

// InventoryService owns the catalog and the guarded quantity mutations.
// Authorization (token and admin gates) is enforced by the HTTP layer
// before any of these methods are reached.
type InventoryService interface {
	List(ctx context.Context) ([]models.Sweet, error)
	Search(ctx context.Context, filter models.SweetFilter) ([]models.Sweet, error)
	Create(ctx context.Context, req models.CreateSweetRequest) (models.Sweet, error)
	Update(ctx context.Context, id int64, req models.UpdateSweetRequest) (models.Sweet, error)
	Delete(ctx context.Context, id int64) error
	Purchase(ctx context.Context, id, quantity int64) (models.Sweet, error)
	Restock(ctx context.Context, id, quantity int64) (models.Sweet, error)
}

// AppInfoService exposes build/version metadata for the health endpoint.
type AppInfoService interface {
	Version(ctx context.Context) string
}
