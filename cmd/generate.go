package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/Rana718/bankseed/internal/export"
	"github.com/Rana718/bankseed/internal/logger"
	"github.com/Rana718/bankseed/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the banking dataset as CSV files",
	Long: `
Generate every table in dependency order (customers, branches, employees,
management, accounts, transactions, loans, payments) and write one
<table>.csv per table, UTF-8 with a byte-order mark.

Examples:
  bankseed generate
  bankseed generate --customers 1000 --transactions 50000
  bankseed generate --seed 42 --xlsx bank_dataset.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		override := func(name string, dst *int) {
			if flags.Changed(name) {
				*dst, _ = flags.GetInt(name)
			}
		}
		override("customers", &cfg.Counts.Customers)
		override("employees", &cfg.Counts.Employees)
		override("branches", &cfg.Counts.Branches)
		override("managers", &cfg.Counts.Managers)
		override("transactions", &cfg.Counts.Transactions)
		override("loans", &cfg.Counts.Loans)
		override("max-payments", &cfg.Counts.MaxPaymentsPerLoan)
		if flags.Changed("seed") {
			cfg.Seed, _ = flags.GetInt64("seed")
		}
		if flags.Changed("dir") {
			cfg.OutputDir, _ = flags.GetString("dir")
		}
		if flags.Changed("xlsx") {
			cfg.Workbook, _ = flags.GetString("xlsx")
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if err := cfg.EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to create directories: %w", err)
		}

		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		started := time.Now()

		color.Cyan("🌱 Generating banking dataset...")
		ds, err := seeder.New(seeder.SeedConfig{
			Customers:          cfg.Counts.Customers,
			Employees:          cfg.Counts.Employees,
			Branches:           cfg.Counts.Branches,
			Managers:           cfg.Counts.Managers,
			Transactions:       cfg.Counts.Transactions,
			Loans:              cfg.Counts.Loans,
			MaxPaymentsPerLoan: cfg.Counts.MaxPaymentsPerLoan,
			Seed:               cfg.Seed,
		}, log).Run(ctx)
		if err != nil {
			return err
		}

		tables := ds.Tables()
		paths, err := export.WriteTables(cfg.OutputDir, tables)
		if err != nil {
			return err
		}
		for i, table := range tables {
			color.Green("  ✓ %-13s %7d rows  → %s", table.Name, len(table.Rows), paths[i])
		}

		if cfg.Workbook != "" {
			workbook := cfg.Workbook
			if !filepath.IsAbs(workbook) && filepath.Dir(workbook) == "." {
				workbook = filepath.Join(cfg.OutputDir, workbook)
			}
			if err := export.WriteWorkbook(workbook, tables); err != nil {
				return err
			}
			color.Green("  ✓ workbook → %s", workbook)
		}

		fmt.Println()
		color.Green("✅ Dataset written to %s in %s", cfg.OutputDir, time.Since(started).Round(time.Millisecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()
	flags.Int("customers", 0, "number of customers (default from config, 500)")
	flags.Int("employees", 0, "number of employees (default from config, 50)")
	flags.Int("branches", 0, "number of branches (default from config, 10)")
	flags.Int("managers", 0, "size of the management team (default from config, 10)")
	flags.Int("transactions", 0, "number of transactions (default from config, 10000)")
	flags.Int("loans", 0, "number of loans (default from config, 500)")
	flags.Int("max-payments", 0, "max payments per active or defaulted loan (default from config, 20)")
	flags.Int64("seed", 0, "random seed; 0 seeds from the clock")
	flags.String("dir", "", "output directory for CSV files")
	flags.String("xlsx", "", "also write an Excel workbook with one sheet per table")
}
