package main

import (
	"fmt"
	"os"

	"finplanner/internal/app"
	"finplanner/internal/config"
	"finplanner/internal/logger"
	"finplanner/internal/server"
)

//go:generate swag init -g cmd/api/main.go -o internal/docs -d ../../

// @title           Financial Planner Bridge API
// @version         1.0
// @description     Local bridge over the personal finance store: profile, expenses, SIP plans, goals, transactions, portfolio and bulk data.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	manager, svc, err := app.Bootstrap(cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer manager.Close()

	router := server.NewRouter(cfg, svc)

	log.Infow("Starting bridge",
		"addr", cfg.ListenAddr(),
		"driver", manager.Driver(),
		"owner_id", cfg.OwnerID,
		"allow_remote", cfg.AllowRemote,
	)
	if err := router.Run(cfg.ListenAddr()); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
