package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Storage backend selectors
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds everything the process needs to run: the listen
// address, the storage backend and its DSN parts, and the bid
// admission policy.
type Config struct {
	ListenAddr string
	Backend    string

	DB DBConfig

	// AllowMultipleBidsPerBidder selects the admission policy; see
	// the bidding service Config for the two behaviors.
	AllowMultipleBidsPerBidder bool
}

type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     int
	Database string
	SSLMode  string
}

// DSN renders the Postgres connection string
func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

// Parse reads flags with environment overrides (AUCTION_ prefix,
// dashes mapped to underscores) and returns the resolved config.
func Parse() Config {
	pflag.String("listen-addr", "0.0.0.0:8080", "")
	pflag.String("storage-backend", BackendMemory, "memory or postgres")
	pflag.Bool("allow-multiple-bids", true, "allow a bidder to re-bid on the same product")

	// db config
	pflag.String("db-user", "", "")
	pflag.String("db-password", "", "")
	pflag.String("db-host", "", "")
	pflag.Int("db-port", 5432, "")
	pflag.String("db-database", "", "")
	pflag.String("db-sslmode", "disable", "")

	// bind pflag to viper
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("AUCTION")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return Config{
		ListenAddr:                 viper.GetString("listen-addr"),
		Backend:                    viper.GetString("storage-backend"),
		AllowMultipleBidsPerBidder: viper.GetBool("allow-multiple-bids"),
		DB: DBConfig{
			User:     viper.GetString("db-user"),
			Password: viper.GetString("db-password"),
			Host:     viper.GetString("db-host"),
			Port:     viper.GetInt("db-port"),
			Database: viper.GetString("db-database"),
			SSLMode:  viper.GetString("db-sslmode"),
		},
	}
}

// Validate checks the parts that cannot have a usable default
func (c Config) Validate() error {
	switch c.Backend {
	case BackendMemory:
		return nil
	case BackendPostgres:
		if c.DB.Host == "" || c.DB.User == "" || c.DB.Database == "" {
			return fmt.Errorf("config: postgres backend requires db-host, db-user and db-database")
		}
		return nil
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Backend)
	}
}
