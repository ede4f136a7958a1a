package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"chefbook/config"
	"chefbook/di"
	"chefbook/helper"
	"chefbook/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title						chefbook API
// @version					1.0
// @description				Private-chef booking: signup and booking wizards, chef discovery, availability calendars and the booking lifecycle.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @securityDefinitions.apikey	APIKey
// @in							header
// @name						X-API-Key
//
//go:generate go run github.com/swaggo/swag/cmd/swag init -g cmd/app/main.go -d ../../ -o ../../docs
func main() {
	cfg := config.Get()

	logger.Init(cfg)

	if err := helper.AutoMigrate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply migrations")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := di.InitializeService()

	if err := app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("chefbook stopped with an error")
	}
}
