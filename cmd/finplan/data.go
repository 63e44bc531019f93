package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"finplanner/internal/app"
	"finplanner/internal/config"
	"finplanner/internal/services"
)

var flagExportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the whole store to a dated JSON file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(func(cfg *config.Config, svc *app.Services) error {
			dir := flagExportDir
			if dir == "" {
				dir = cfg.ExportDir
			}
			path, err := services.WriteExportFile(svc.Data, dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the store with the contents of an export file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open import file: %w", err)
		}
		defer f.Close()

		doc, err := services.ReadDocument(f)
		if err != nil {
			return err
		}
		return withStore(func(_ *config.Config, svc *app.Services) error {
			if err := svc.Data.ImportAll(doc); err != nil {
				return err
			}
			return printCounts(cmd, svc)
		})
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagExportDir, "dir", "", "Directory for the export file (default EXPORT_DIR)")

	rootCmd.AddCommand(exportCmd, importCmd)
}

func printCounts(cmd *cobra.Command, svc *app.Services) error {
	counts, err := svc.Data.Stats()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, name := range services.CollectionNames() {
		fmt.Fprintf(out, "  %-16s %d\n", name, counts[name])
	}
	return nil
}
