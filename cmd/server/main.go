// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-service/internal/config"
	"github.com/MKhiriev/go-users-service/internal/handler"
	"github.com/MKhiriev/go-users-service/internal/logger"
	"github.com/MKhiriev/go-users-service/internal/server"
	"github.com/MKhiriev/go-users-service/internal/service"
	"github.com/MKhiriev/go-users-service/internal/store"
	"github.com/MKhiriev/go-users-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	cfg, err := config.GetServerConfig()
	if err != nil {
		logger.NewLogger("go-users-server", config.DefaultLogLevel).
			Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-users-server", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Int("password_hash_cost", cfg.App.PasswordHashCost).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	cfg.App.Version = buildInfo.BuildVersion()
	services, err := service.NewServices(storages.UserRepository, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	router, err := handlers.HTTP.Init()
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing routes")
	}

	srv, err := server.NewServer(router, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())

	return buildInfo
}
