package cmd

import (
	"fmt"
	"os"

	"github.com/Rana718/bankseed/template"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a bankseed.config.json in the current directory",
	Long: `Create bankseed.config.json with the default row counts, an .env file with
an example DATABASE_URL, and the data directory.

Examples:
  bankseed init
  bankseed init --provider postgresql`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, _ := cmd.Flags().GetString("provider")
		dbType, err := template.ValidateDatabaseType(provider)
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(template.ConfigFileName); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", template.ConfigFileName)
		}

		pt := template.NewProjectTemplate(dbType)
		configJSON, err := pt.GetConfig()
		if err != nil {
			return err
		}
		if err := os.WriteFile(template.ConfigFileName, []byte(configJSON), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", template.ConfigFileName, err)
		}

		if _, err := os.Stat(".env"); os.IsNotExist(err) {
			if err := os.WriteFile(".env", []byte(pt.GetEnvTemplate()), 0644); err != nil {
				return fmt.Errorf("failed to write .env: %w", err)
			}
		}

		for _, dir := range pt.GetDirectoryStructure() {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}
		}

		color.Green("✅ Created %s (%s)", template.ConfigFileName, dbType)
		color.Cyan("Next: bankseed generate && bankseed load")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("provider", "sqlite", "database provider: sqlite, postgresql or mysql")
	initCmd.Flags().BoolP("force", "f", false, "overwrite an existing config file")
}
