package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	apperrors "finplanner/internal/errors"
)

// Manager owns the store connection and its schema version.
type Manager struct {
	db     *gorm.DB
	config *Config
}

// NewManager opens the configured store. Any failure is reported as
// ErrStoreUnavailable, which callers treat as fatal.
func NewManager(config *Config) (*Manager, error) {
	var dialector gorm.Dialector
	switch config.Driver {
	case DriverPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  config.DSN(),
			PreferSimpleProtocol: true,
		})
	default:
		if !config.isMemory() {
			if err := os.MkdirAll(filepath.Dir(config.Path), 0o750); err != nil {
				return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, fmt.Errorf("creating data dir: %w", err))
			}
		}
		dialector = sqlite.Open(config.DSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, fmt.Errorf("failed to connect to database: %w", err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, fmt.Errorf("failed to get underlying DB: %w", err))
	}

	if config.Driver == DriverPostgres {
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		// One connection serializes writes and keeps an in-memory store alive.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, fmt.Errorf("failed to reach database: %w", err))
	}

	return &Manager{db: db, config: config}, nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Driver returns the configured storage engine name.
func (m *Manager) Driver() string {
	return m.config.Driver
}

// Close releases the store connection.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
