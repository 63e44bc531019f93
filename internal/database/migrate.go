package database

import (
	"embed"
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres:// URLs
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	apperrors "finplanner/internal/errors"
	"finplanner/internal/logger"
)

// LatestVersion is the schema version a fully migrated store reports.
//
//	1: profile, expenses, SIP, goals, transactions, dashboard stats
//	2: portfolio items
const LatestVersion uint = 2

//go:embed migrations
var migrationFiles embed.FS

// RunMigrations applies every pending migration step in order. Steps are
// CREATE ... IF NOT EXISTS so re-running one against a partially upgraded
// store is harmless.
func (m *Manager) RunMigrations() error {
	log := logger.For("database")
	log.Info("Running database migrations...")

	mig, closeFn, err := m.newMigrate()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	defer closeFn()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, fmt.Errorf("migration failed: %w", err))
	}

	version, _, _ := mig.Version()
	log.Infow("Database migrations completed successfully", "version", version)
	return nil
}

// MigrateTo moves the schema to exactly the given version, up or down.
func (m *Manager) MigrateTo(version uint) error {
	mig, closeFn, err := m.newMigrate()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := mig.Migrate(version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration to version %d failed: %w", version, err)
	}
	return nil
}

// Rollback reverts the given number of applied steps.
func (m *Manager) Rollback(steps int) error {
	mig, closeFn, err := m.newMigrate()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := mig.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration down failed: %w", err)
	}
	return nil
}

// Version reports the applied schema version. A store with no applied
// migration reports version 0.
func (m *Manager) Version() (uint, bool, error) {
	mig, closeFn, err := m.newMigrate()
	if err != nil {
		return 0, false, err
	}
	defer closeFn()

	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func (m *Manager) newMigrate() (*migrate.Migrate, func(), error) {
	src, err := iofs.New(migrationFiles, "migrations/"+m.config.Driver)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load migration files: %w", err)
	}

	if m.config.Driver == DriverPostgres {
		mig, err := migrate.NewWithSourceInstance("iofs", src, m.postgresURL())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create migrate instance: %w", err)
		}
		return mig, func() { closeMigrate(mig) }, nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return nil, nil, err
	}
	driver, err := sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create sqlite migrate driver: %w", err)
	}
	mig, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	// The sqlite driver shares the store's pool; closing it would close the store.
	return mig, func() { _ = src.Close() }, nil
}

func (m *Manager) postgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(m.config.User, m.config.Password),
		Host:     m.config.Host + ":" + m.config.Port,
		Path:     "/" + m.config.DBName,
		RawQuery: "sslmode=" + m.config.SSLMode,
	}
	return u.String()
}

func closeMigrate(mig *migrate.Migrate) {
	srcErr, dbErr := mig.Close()
	if srcErr != nil {
		logger.Get().Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Get().Warnf("migrate database close error: %v", dbErr)
	}
}
