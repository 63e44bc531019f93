package main

import (
	"fmt"
	"os"
	"strconv"

	"finplanner/internal/config"
	"finplanner/internal/database"
	"finplanner/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: migrate <up|down|version|goto> [N]")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	dbConfig, err := database.NewConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}
	manager, err := database.NewManager(dbConfig)
	if err != nil {
		return err
	}
	defer manager.Close()

	log := logger.Get()

	switch command := os.Args[1]; command {
	case "up":
		if err := manager.RunMigrations(); err != nil {
			return err
		}

	case "down":
		steps := 1
		if len(os.Args) > 2 {
			steps, err = strconv.Atoi(os.Args[2])
			if err != nil || steps < 1 {
				return fmt.Errorf("invalid step count: %q", os.Args[2])
			}
		}
		if err := manager.Rollback(steps); err != nil {
			return err
		}
		log.Infof("Rolled back %d migration(s)", steps)

	case "goto":
		if len(os.Args) < 3 {
			return fmt.Errorf("usage: migrate goto <version>")
		}
		version, err := strconv.ParseUint(os.Args[2], 10, 32)
		if err != nil || uint(version) > database.LatestVersion {
			return fmt.Errorf("invalid version: %q", os.Args[2])
		}
		if err := manager.MigrateTo(uint(version)); err != nil {
			return err
		}
		log.Infof("Migrated to version %d", version)

	case "version":
		version, dirty, err := manager.Version()
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		log.Infof("Version: %d (latest %d), Dirty: %v", version, database.LatestVersion, dirty)

	default:
		return fmt.Errorf("unknown command: %s (use up, down, goto or version)", command)
	}

	return nil
}
