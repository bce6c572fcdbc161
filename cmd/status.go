package cmd

import (
	"fmt"

	"github.com/Rana718/bankseed/internal/database"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the tables and row counts in the database",
	Long: `Show every table currently in the configured database together with its
row count and the number of columns. Use it after "bankseed load" to check
which tables were replaced.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		adapter, err := database.NewAdapter(cfg.Database.Provider)
		if err != nil {
			return err
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if err := adapter.Connect(ctx, dbURL); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer adapter.Close()

		if err := adapter.Ping(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		names, err := adapter.GetAllTableNames(ctx)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			color.Yellow("⚠️  No tables found, run \"bankseed load\" first")
			return nil
		}

		color.Cyan("📊 %d tables in %s database", len(names), cfg.Database.Provider)
		for _, name := range names {
			count, err := adapter.GetTableRowCount(ctx, name)
			if err != nil {
				color.Red("  ✗ %-13s %v", name, err)
				continue
			}
			columns, err := adapter.GetTableColumns(ctx, name)
			if err != nil {
				color.Red("  ✗ %-13s %v", name, err)
				continue
			}
			fmt.Printf("  %-13s %7d rows  %2d columns\n", name, count, len(columns))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
