// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sweet-shop-manager Authors

package main

import (
	"context"
	"fmt"

	"github.com/Vanshika394/sweet-shop-manager/internal/config"
	myHTTP "github.com/Vanshika394/sweet-shop-manager/internal/handler/http"
	"github.com/Vanshika394/sweet-shop-manager/internal/logger"
	"github.com/Vanshika394/sweet-shop-manager/internal/server"
	"github.com/Vanshika394/sweet-shop-manager/internal/service"
	"github.com/Vanshika394/sweet-shop-manager/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("sweet-shop-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)
	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
