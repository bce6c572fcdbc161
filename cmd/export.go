package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Rana718/bankseed/internal/config"
	"github.com/Rana718/bankseed/internal/database"
	"github.com/Rana718/bankseed/internal/database/common"
	"github.com/Rana718/bankseed/internal/export"
	"github.com/Rana718/bankseed/internal/loader"
	"github.com/Rana718/bankseed/internal/types"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the dataset to an Excel workbook",
	Long: `
Collect the manifest tables into one .xlsx workbook, one sheet per table.
By default the tables are read from the CSV directory; with --from-db they
are read back from the configured database instead.

Examples:
  bankseed export
  bankseed export --out reports/bank.xlsx
  bankseed export --from-db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
			cfg.OutputDir = dir
		}
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = filepath.Join(cfg.OutputDir, "bank_dataset.xlsx")
		}

		manifest, err := readManifest(cfg)
		if err != nil {
			return err
		}

		var tables []*types.Table
		if fromDB, _ := cmd.Flags().GetBool("from-db"); fromDB {
			tables, err = tablesFromDatabase(cmd.Context(), cfg, manifest)
		} else {
			tables, err = tablesFromDir(cfg.OutputDir, manifest)
		}
		if err != nil {
			return err
		}

		if len(tables) == 0 {
			fmt.Println("No tables found to export")
			return nil
		}

		if err := export.WriteWorkbook(out, tables); err != nil {
			return err
		}

		fmt.Printf("✅ Export completed: %s (%d sheets)\n", out, len(tables))
		return nil
	},
}

func tablesFromDir(dir string, manifest *loader.Manifest) ([]*types.Table, error) {
	var tables []*types.Table
	for _, spec := range manifest.Tables {
		table, err := loader.ReadCSV(filepath.Join(dir, spec.File), spec.Name)
		if errors.Is(err, os.ErrNotExist) {
			color.Yellow("⚠️  %s not found, skipping", spec.File)
			continue
		}
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func tablesFromDatabase(ctx context.Context, cfg *config.Config, manifest *loader.Manifest) ([]*types.Table, error) {
	adapter, err := database.NewAdapter(cfg.Database.Provider)
	if err != nil {
		return nil, err
	}

	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, err
	}

	if err := adapter.Connect(ctx, dbURL); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer adapter.Close()

	if err := adapter.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	existing, err := adapter.GetAllTableNames(ctx)
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(existing))
	for _, name := range existing {
		present[name] = true
	}

	var tables []*types.Table
	for _, spec := range manifest.Tables {
		if !present[spec.Name] {
			color.Yellow("⚠️  table %s not in database, skipping", spec.Name)
			continue
		}
		table, err := adapter.GetTableData(ctx, spec.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to read table %s: %w", spec.Name, err)
		}
		tables = append(tables, table)
	}

	if present[common.RelationsTable] {
		relations, err := adapter.GetTableData(ctx, common.RelationsTable)
		if err != nil {
			return nil, fmt.Errorf("failed to read relations: %w", err)
		}
		tables = append(tables, relations)
	}
	return tables, nil
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("dir", "", "directory holding the CSV files (default from config)")
	exportCmd.Flags().String("out", "", "workbook path (default <dir>/bank_dataset.xlsx)")
	exportCmd.Flags().Bool("from-db", false, "read tables from the database instead of the CSV files")
}
