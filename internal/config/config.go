package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Version   string   `json:"version" mapstructure:"version"`
	OutputDir string   `json:"output_dir" mapstructure:"output_dir"` // folder for generated .csv files
	Workbook  string   `json:"workbook" mapstructure:"workbook"`     // optional .xlsx written next to the CSVs
	Manifest  string   `json:"manifest" mapstructure:"manifest"`     // optional loader manifest (YAML)
	Seed      int64    `json:"seed" mapstructure:"seed"`
	LogLevel  string   `json:"log_level" mapstructure:"log_level"`
	Counts    Counts   `json:"counts" mapstructure:"counts"`
	Database  Database `json:"database" mapstructure:"database"`
}

type Counts struct {
	Customers          int `json:"customers" mapstructure:"customers"`
	Employees          int `json:"employees" mapstructure:"employees"`
	Branches           int `json:"branches" mapstructure:"branches"`
	Managers           int `json:"managers" mapstructure:"managers"`
	Transactions       int `json:"transactions" mapstructure:"transactions"`
	Loans              int `json:"loans" mapstructure:"loans"`
	MaxPaymentsPerLoan int `json:"max_payments_per_loan" mapstructure:"max_payments_per_loan"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
	URL      string `json:"url" mapstructure:"url"`
}

var supportedProviders = []string{"sqlite", "sqlite3", "postgresql", "postgres", "mysql"}

func DefaultCounts() Counts {
	return Counts{
		Customers:          500,
		Employees:          50,
		Branches:           10,
		Managers:           10,
		Transactions:       10000,
		Loans:              500,
		MaxPaymentsPerLoan: 20,
	}
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Version == "" {
		c.Version = "1"
	}
	if c.OutputDir == "" {
		c.OutputDir = "data"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	// zero means "not configured"; negative values are left for Validate to reject
	defaults := DefaultCounts()
	fill := func(v *int, d int) {
		if *v == 0 {
			*v = d
		}
	}
	fill(&c.Counts.Customers, defaults.Customers)
	fill(&c.Counts.Employees, defaults.Employees)
	fill(&c.Counts.Branches, defaults.Branches)
	fill(&c.Counts.Managers, defaults.Managers)
	fill(&c.Counts.Transactions, defaults.Transactions)
	fill(&c.Counts.Loans, defaults.Loans)
	fill(&c.Counts.MaxPaymentsPerLoan, defaults.MaxPaymentsPerLoan)

	if c.Database.Provider == "" {
		c.Database.Provider = "sqlite"
	}
	if c.Database.URLEnv == "" {
		c.Database.URLEnv = "DATABASE_URL"
	}
	if c.Database.URL == "" && c.IsSQLite() {
		c.Database.URL = "sqlite://bank_database.db"
	}
}

func (c *Config) IsSQLite() bool {
	return c.Database.Provider == "sqlite" || c.Database.Provider == "sqlite3"
}

// GetDatabaseURL prefers the environment variable named by url_env over database.url.
func (c *Config) GetDatabaseURL() (string, error) {
	if dbURL := os.Getenv(c.Database.URLEnv); dbURL != "" {
		return dbURL, nil
	}
	if c.Database.URL != "" {
		return c.Database.URL, nil
	}
	return "", fmt.Errorf("database URL not found in environment variable %s or config", c.Database.URLEnv)
}

func (c *Config) EnsureDirectories() error {
	if c.OutputDir == "" || c.OutputDir == "." {
		return nil
	}
	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.OutputDir, err)
	}
	return nil
}

func (c *Config) Validate() error {
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}

	counts := map[string]int{
		"customers":             c.Counts.Customers,
		"employees":             c.Counts.Employees,
		"branches":              c.Counts.Branches,
		"managers":              c.Counts.Managers,
		"transactions":          c.Counts.Transactions,
		"loans":                 c.Counts.Loans,
		"max_payments_per_loan": c.Counts.MaxPaymentsPerLoan,
	}
	for name, n := range counts {
		if n < 0 {
			return fmt.Errorf("counts.%s cannot be negative (got %d)", name, n)
		}
	}

	return nil
}
