package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultOwnerID is the single owner every record belongs to unless OWNER_ID says otherwise.
const DefaultOwnerID uint = 1

// defaultNeedsCategories are the expense categories counted as needs in the
// needs-vs-wants split. Everything else is a want.
var defaultNeedsCategories = []string{
	"Housing", "Rent", "Food", "Groceries", "Transportation", "Utilities",
	"Healthcare", "Insurance", "Education", "EMI",
}

// DefaultNeedsCategories returns a copy of the built-in needs list.
func DefaultNeedsCategories() []string {
	return append([]string(nil), defaultNeedsCategories...)
}

// Config holds application configuration
type Config struct {
	Env string

	// Local bridge
	BindAddr    string
	Port        string
	AllowRemote bool

	// Store
	DBDriver   string
	DataDir    string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Owner scope applied to every access-layer call
	OwnerID uint

	NeedsCategories []string
	ExportDir       string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	dataDir := getEnv("DATA_DIR", defaultDataDir())

	config := &Config{
		Env: getEnv("ENV", "development"),

		BindAddr:    getEnv("BIND_ADDR", "127.0.0.1"),
		Port:        getEnv("PORT", "8080"),
		AllowRemote: getEnvBool("ALLOW_REMOTE", false),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DataDir:    dataDir,
		DBPath:     getEnv("DB_PATH", filepath.Join(dataDir, "financial-planner.db")),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "finplanner"),
		DBPassword: getEnv("DB_PASSWORD", "finplanner"),
		DBName:     getEnv("DB_NAME", "finplanner"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		OwnerID: DefaultOwnerID,

		NeedsCategories: DefaultNeedsCategories(),
		ExportDir:       getEnv("EXPORT_DIR", "."),
	}

	if raw := os.Getenv("OWNER_ID"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			log.Printf("Warning: invalid OWNER_ID value '%s', falling back to %d\n", raw, DefaultOwnerID)
		} else {
			config.OwnerID = uint(id)
		}
	}

	if raw := os.Getenv("NEEDS_CATEGORIES"); raw != "" {
		config.NeedsCategories = splitList(raw)
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// ListenAddr returns the host:port the local bridge binds to.
func (c *Config) ListenAddr() string {
	return c.BindAddr + ":" + c.Port
}

// defaultDataDir follows the XDG data directory convention.
func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "finplanner")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "finplanner")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %v\n", key, raw, defaultValue)
		return defaultValue
	}
	return value
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
