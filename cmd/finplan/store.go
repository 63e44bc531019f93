package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"finplanner/internal/app"
	"finplanner/internal/config"
	"finplanner/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(func(_ *config.Config, _ *app.Services) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Schema at version %d\n", database.LatestVersion)
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write default data into an empty store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(func(cfg *config.Config, svc *app.Services) error {
			if err := svc.Seed.SeedIfEmpty(cfg.OwnerID); err != nil {
				return err
			}
			if _, err := svc.Seed.SeedPortfolioIfEmpty(cfg.OwnerID); err != nil {
				return err
			}
			return printCounts(cmd, svc)
		})
	},
}

var sampleTransactionsCmd = &cobra.Command{
	Use:   "sample-transactions",
	Short: "Add the sample activity log entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(func(cfg *config.Config, svc *app.Services) error {
			if err := svc.Seed.SeedSampleTransactions(cfg.OwnerID); err != nil {
				return err
			}
			return printCounts(cmd, svc)
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every record and seed the defaults again",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !flagYes {
			return fmt.Errorf("reset deletes all data; pass --yes to confirm")
		}
		return withStore(func(cfg *config.Config, svc *app.Services) error {
			if err := svc.Data.ResetToDefaults(cfg.OwnerID); err != nil {
				return err
			}
			return printCounts(cmd, svc)
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the row count of each collection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(func(_ *config.Config, svc *app.Services) error {
			return printCounts(cmd, svc)
		})
	},
}

var flagYes bool

func init() {
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Confirm deleting all data")

	rootCmd.AddCommand(migrateCmd, seedCmd, sampleTransactionsCmd, resetCmd, statsCmd)
}
