package service

import (
	"context"

	"github.com/Vanshika394/sweet-shop-manager/internal/config"
	"github.com/Vanshika394/sweet-shop-manager/internal/logger"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = "N/A"
	}

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}
}

func (s *appInfoService) Version(ctx context.Context) string {
	return s.appVersion
}
