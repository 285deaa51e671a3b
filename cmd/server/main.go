// Package main provides the entry point for the Fokus server
//
// @title Fokus API
// @version 1.0
// @description Waitlist capture and structured Gemini chat for the Fokus landing page
// @BasePath /
// @schemes http https
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/venskie03/fokus/domain/chat"
	"github.com/venskie03/fokus/domain/health"
	"github.com/venskie03/fokus/domain/tracing"
	"github.com/venskie03/fokus/domain/waitlist"
	"github.com/venskie03/fokus/domain/website"
	"github.com/venskie03/fokus/internal/config"
	"github.com/venskie03/fokus/internal/database"
	"github.com/venskie03/fokus/internal/migrate"
	"github.com/venskie03/fokus/internal/server"
	"github.com/venskie03/fokus/pkg/logger"
)

func main() {
	// Load never overwrites a variable that is already set, so .env.local wins over .env
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		database.Module,
		migrate.Module,
		server.Module,
		tracing.Module,

		// Domain modules
		health.Module,
		waitlist.Module,
		chat.Module,
		website.Module,
	).Run()
}
