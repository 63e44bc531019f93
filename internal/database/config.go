package database

import (
	"fmt"
	"strings"

	"finplanner/internal/config"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds database configuration
type Config struct {
	Driver string

	// SQLite
	Path string

	// Postgres
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewConfig derives the store configuration from the application configuration.
func NewConfig(appConfig *config.Config) (*Config, error) {
	cfg := &Config{
		Driver:   appConfig.DBDriver,
		Path:     appConfig.DBPath,
		Host:     appConfig.DBHost,
		Port:     appConfig.DBPort,
		User:     appConfig.DBUser,
		Password: appConfig.DBPassword,
		DBName:   appConfig.DBName,
		SSLMode:  appConfig.DBSSLMode,
	}

	switch cfg.Driver {
	case DriverSQLite, DriverPostgres:
		return cfg, nil
	case "":
		cfg.Driver = DriverSQLite
		return cfg, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use sqlite or postgres)", cfg.Driver)
	}
}

// NewMemoryConfig returns a configuration for a private in-memory SQLite store.
// name must be unique per store that should not share data.
func NewMemoryConfig(name string) *Config {
	return &Config{Driver: DriverSQLite, Path: fmt.Sprintf("file:%s?mode=memory&cache=shared", name)}
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
	}
	if c.isMemory() {
		return c.Path + "&_foreign_keys=on"
	}
	return "file:" + c.Path + "?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on&_busy_timeout=5000"
}

func (c *Config) isMemory() bool {
	return strings.HasPrefix(c.Path, "file:")
}
