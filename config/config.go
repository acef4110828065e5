package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system:
// the HTTP server, the Postgres store, the Alpha Vantage provider and the ingestion job.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=findata
//	POSTGRES_SSLMODE=disable
//	POSTGRES_DRIVER=postgres
//	ALPHA_VANTAGE_API_KEY=demo
//	INGEST_SYMBOLS=IBM,AAPL
//	LOAD_DAYS=14
type Config struct {
	Server       ServerConfig       // HTTP server configuration
	Postgres     PostgresConfig     // PostgreSQL connection settings
	AlphaVantage AlphaVantageConfig // Market-data provider settings
	Ingest       IngestConfig       // Batch ingestion settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string // The TCP port the HTTP server will listen on (e.g., "8080")
	RateLimitPerMinute int    // Requests allowed per client IP per minute (0 disables the limiter)
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - Driver: database/sql driver name, "postgres" (lib/pq) or "pgx".
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Driver   string
	URL      string
}

// AlphaVantageConfig holds the settings of the Alpha Vantage HTTP client.
type AlphaVantageConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// IngestConfig holds the symbols to load and the size of the loaded window.
type IngestConfig struct {
	Symbols  []string
	LoadDays int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "findata")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")
	viper.SetDefault("POSTGRES_DRIVER", "postgres")

	viper.SetDefault("ALPHA_VANTAGE_API_KEY", "")
	viper.SetDefault("ALPHA_VANTAGE_BASE_URL", "https://www.alphavantage.co")
	viper.SetDefault("ALPHA_VANTAGE_TIMEOUT", "15s")

	viper.SetDefault("INGEST_SYMBOLS", "IBM,AAPL")
	viper.SetDefault("LOAD_DAYS", 14)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
			Driver:   viper.GetString("POSTGRES_DRIVER"),
		},
		AlphaVantage: AlphaVantageConfig{
			APIKey:  viper.GetString("ALPHA_VANTAGE_API_KEY"),
			BaseURL: strings.TrimRight(viper.GetString("ALPHA_VANTAGE_BASE_URL"), "/"),
			Timeout: viper.GetDuration("ALPHA_VANTAGE_TIMEOUT"),
		},
		Ingest: IngestConfig{
			Symbols:  ParseSymbols(viper.GetString("INGEST_SYMBOLS")),
			LoadDays: viper.GetInt("LOAD_DAYS"),
		},
	}

	// Construct Postgres DSN (used by database/sql)
	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	// Validate critical fields
	validateConfig()
}

// DSN builds the postgres:// connection string understood by both lib/pq and pgx.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// ParseSymbols splits a comma separated list of tickers, trimming blanks,
// upper-casing and dropping duplicates while keeping the original order.
func ParseSymbols(raw string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// The Alpha Vantage API key is not checked here because only the ingest
// command needs it; see RequireAlphaVantage.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if AppConfig.Postgres.Driver != "postgres" && AppConfig.Postgres.Driver != "pgx" {
		missing = append(missing, "POSTGRES_DRIVER (postgres|pgx)")
	}

	if len(missing) > 0 {
		log.Fatalf("❌ Missing required environment variables: %v\n", missing)
	}
}

// RequireAlphaVantage reports which ingestion settings are missing.
// It returns nil when the ingest command can run.
func RequireAlphaVantage(cfg Config) error {
	var missing []string
	if cfg.AlphaVantage.APIKey == "" {
		missing = append(missing, "ALPHA_VANTAGE_API_KEY")
	}
	if cfg.AlphaVantage.BaseURL == "" {
		missing = append(missing, "ALPHA_VANTAGE_BASE_URL")
	}
	if len(cfg.Ingest.Symbols) == 0 {
		missing = append(missing, "INGEST_SYMBOLS")
	}
	if cfg.Ingest.LoadDays < 1 {
		missing = append(missing, "LOAD_DAYS")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing ingestion settings: %s", strings.Join(missing, ", "))
	}
	return nil
}
