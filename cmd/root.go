package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Rana718/bankseed/internal/config"
	"github.com/Rana718/bankseed/internal/logger"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "0.3.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔════════════════════════════════════════════════════╗",
		"║   ██████╗  █████╗ ███╗   ██╗██╗  ██╗               ║",
		"║   ██╔══██╗██╔══██╗████╗  ██║██║ ██╔╝               ║",
		"║   ██████╔╝███████║██╔██╗ ██║█████╔╝   seed         ║",
		"║   ██╔══██╗██╔══██║██║╚██╗██║██╔═██╗                ║",
		"║   ██████╔╝██║  ██║██║ ╚████║██║  ██╗               ║",
		"║   ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝               ║",
		"║                                                    ║",
		"║      Synthetic retail-banking datasets             ║",
		"╚════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("                ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "bankseed",
	Short: "Generate a fictitious banking dataset and load it into a database",
	Long: `
bankseed synthesizes customers, branches, employees, management, accounts,
transactions, loans and loan payments with consistent keys, writes them as
UTF-8 CSV files and bulk loads those files into SQLite, PostgreSQL or MySQL.

Typical flow:
  bankseed generate            # write data/*.csv
  bankseed load                # replace tables in the configured database
  bankseed status              # row counts per table`,

	PersistentPreRunE: setupLogger,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("bankseed version %s\n", Version)
			os.Exit(0)
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./bankseed.config.json)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("bankseed.config")
	}

	viper.SetEnvPrefix("BANKSEED")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			color.Yellow("⚠️  Could not read config: %v (using defaults)", err)
		}
	}
}

// setupLogger attaches a logger at the configured level to the command context.
func setupLogger(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewWithLevel(cfg.LogLevel)
	cmd.SetContext(logger.WithContext(cmd.Context(), log))
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
