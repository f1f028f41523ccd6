package service

import (
	"github.com/Vanshika394/sweet-shop-manager/internal/config"
	"github.com/Vanshika394/sweet-shop-manager/internal/logger"
	"github.com/Vanshika394/sweet-shop-manager/internal/store"
)

type Services struct {
	AuthService      AuthService
	InventoryService InventoryService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.Auth, logger),
		InventoryService: NewInventoryService(storages.SweetRepository, logger),
		AppInfoService:   NewAppInfoService(cfg.App, logger),
	}
}
