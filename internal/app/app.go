// Package app opens the store and assembles the services the binaries share.
package app

import (
	"fmt"

	"gorm.io/gorm"

	"finplanner/internal/config"
	"finplanner/internal/database"
	"finplanner/internal/logger"
	"finplanner/internal/services"
)

// Services bundles every servicer over one store.
type Services struct {
	Profile      services.ProfileServicer
	Expenses     services.ExpenseServicer
	Sips         services.SipServicer
	Goals        services.GoalServicer
	Stats        services.StatsServicer
	Transactions services.TransactionServicer
	Portfolio    services.PortfolioServicer
	Seed         services.SeedServicer
	Data         services.DataServicer
	Analysis     services.AnalysisServicer
}

// NewServices wires the servicers to db.
func NewServices(db *gorm.DB, cfg *config.Config) *Services {
	seed := services.NewSeedService(db)
	return &Services{
		Profile:      services.NewProfileService(db),
		Expenses:     services.NewExpenseService(db),
		Sips:         services.NewSipService(db),
		Goals:        services.NewGoalService(db),
		Stats:        services.NewStatsService(db),
		Transactions: services.NewTransactionService(db),
		Portfolio:    services.NewPortfolioService(db),
		Seed:         seed,
		Data:         services.NewDataService(db, seed, cfg.OwnerID),
		Analysis:     services.NewAnalysisService(db, cfg.NeedsCategories),
	}
}

// Open connects to the configured store and applies pending migrations.
// It does not seed.
func Open(cfg *config.Config) (*database.Manager, error) {
	dbConfig, err := database.NewConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load database configuration: %w", err)
	}

	manager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, err
	}

	if err := manager.RunMigrations(); err != nil {
		_ = manager.Close()
		return nil, err
	}
	return manager, nil
}

// Bootstrap opens and migrates the store, then seeds the owner's defaults.
// Seeding runs strictly after migrations. Seed failures are logged and the
// store is returned as-is.
func Bootstrap(cfg *config.Config) (*database.Manager, *Services, error) {
	manager, err := Open(cfg)
	if err != nil {
		return nil, nil, err
	}

	svc := NewServices(manager.DB(), cfg)
	Seed(svc, cfg.OwnerID)
	return manager, svc, nil
}

// Seed writes default data for owner and backfills starter holdings into
// stores upgraded from a version without them. Failures are only logged.
func Seed(svc *Services, ownerID uint) {
	log := logger.For("app")

	if err := svc.Seed.SeedIfEmpty(ownerID); err != nil {
		log.Errorw("Default data seeding failed", "owner_id", ownerID, "error", err)
	}
	if _, err := svc.Seed.SeedPortfolioIfEmpty(ownerID); err != nil {
		log.Errorw("Portfolio backfill failed", "owner_id", ownerID, "error", err)
	}
}
