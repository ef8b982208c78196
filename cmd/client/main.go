// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-users-service/internal/adapter"
	"github.com/MKhiriev/go-users-service/internal/config"
	"github.com/MKhiriev/go-users-service/internal/logger"
	"github.com/MKhiriev/go-users-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewConsoleLogger("go-users-client", config.DefaultLogLevel).
			Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewConsoleLogger("go-users-client", cfg.LogLevel)

	usersAdapter, err := adapter.NewHTTPUsersAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create users adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = newCLI(usersAdapter, os.Stdout, log).run(ctx, args); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() models.AppBuildInfo {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())

	return buildInfo
}
