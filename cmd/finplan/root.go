package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"finplanner/internal/app"
	"finplanner/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "finplan",
	Short:         "Financial planner store maintenance",
	Long:          "Migrate, seed, export, import and inspect the local financial planner store.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// withStore opens and migrates the configured store, runs fn and closes it.
// It never seeds; commands that want defaults ask for them.
func withStore(fn func(cfg *config.Config, svc *app.Services) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	manager, err := app.Open(cfg)
	if err != nil {
		return err
	}
	defer manager.Close()

	return fn(cfg, app.NewServices(manager.DB(), cfg))
}
