package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	_ "github.com/andresmdz/rifa-go/docs"
	"github.com/andresmdz/rifa-go/internal/app"
	"github.com/andresmdz/rifa-go/internal/config"
)

// @title Rifa API
// @version 1.0
// @description Raffle ledger service: numbered-ticket sales, participants, draws.
// @host localhost:8080
// @BasePath /
func main() {
	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelInfo}))

	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create application", "error", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		logger.Error("application finished with error", "error", err)
		os.Exit(1)
	}
}
