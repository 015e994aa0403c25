//go:build wireinject
// +build wireinject

package main

import (
	"net/http"

	"socialelections/config"
	"socialelections/internal/command"
	"socialelections/internal/cron"
	"socialelections/internal/database"
	"socialelections/internal/handler"
	"socialelections/internal/middleware"
	"socialelections/internal/router"
	"socialelections/internal/service"
	"socialelections/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			wire.Bind(new(http.Handler), new(*gin.Engine)),
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init cli commands.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			telemetry.ProviderSet,
			command.ProviderSet,
		),
	)
}
