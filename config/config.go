package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV:
//
//	SERVER_PORT=8080
//	PRICER_WORKERS=0
//	PRICER_PARALLEL_THRESHOLD=16384
//	PRICER_CHUNK_SIZE=8192
//	PRICER_MAX_SPOTS=2000000
//	HISTORY_ENABLED=false
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=postgres
//	POSTGRES_PASSWORD=postgres
//	POSTGRES_DB=putpricer
//	POSTGRES_SSLMODE=disable
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Pricer   PricerConfig   // Engine tuning and request limits
	History  HistoryConfig  // Pricing run history
	Postgres PostgresConfig // PostgreSQL connection settings (history store)
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string
}

// PricerConfig tunes the parallel pricing engine.
//
// Fields:
//   - Workers: max concurrent chunks (0 = one per CPU).
//   - ParallelThreshold: vectors shorter than this are priced on one goroutine.
//   - ChunkSize: spots per goroutine.
//   - MaxSpots: largest vector accepted by the API and batch mode.
type PricerConfig struct {
	Workers           int
	ParallelThreshold int
	ChunkSize         int
	MaxSpots          int
}

// HistoryConfig toggles recording of pricing runs in Postgres.
type HistoryConfig struct {
	Enabled bool
}

// PostgresConfig defines connection details for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
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
//   - If required variables are missing or out of range, validateConfig()
//     terminates the app with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("PRICER_WORKERS", 0)
	viper.SetDefault("PRICER_PARALLEL_THRESHOLD", 1<<14)
	viper.SetDefault("PRICER_CHUNK_SIZE", 1<<13)
	viper.SetDefault("PRICER_MAX_SPOTS", 2_000_000)

	viper.SetDefault("HISTORY_ENABLED", false)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "putpricer")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Pricer: PricerConfig{
			Workers:           viper.GetInt("PRICER_WORKERS"),
			ParallelThreshold: viper.GetInt("PRICER_PARALLEL_THRESHOLD"),
			ChunkSize:         viper.GetInt("PRICER_CHUNK_SIZE"),
			MaxSpots:          viper.GetInt("PRICER_MAX_SPOTS"),
		},
		History: HistoryConfig{
			Enabled: viper.GetBool("HISTORY_ENABLED"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	validateConfig()
}

// DSN builds the lib/pq connection URL.
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

// validateConfig terminates the application when AppConfig is unusable.
func validateConfig() {
	if problems := AppConfig.Problems(); len(problems) > 0 {
		log.Fatalf("invalid configuration: %v\n", problems)
	}
}

// Problems lists every missing or out-of-range setting by its env var name.
// Postgres settings are only required when history is enabled.
func (c Config) Problems() []string {
	var problems []string

	if c.Server.Port == "" {
		problems = append(problems, "SERVER_PORT")
	}
	if c.Pricer.Workers < 0 {
		problems = append(problems, "PRICER_WORKERS")
	}
	if c.Pricer.ParallelThreshold <= 0 {
		problems = append(problems, "PRICER_PARALLEL_THRESHOLD")
	}
	if c.Pricer.ChunkSize <= 0 {
		problems = append(problems, "PRICER_CHUNK_SIZE")
	}
	if c.Pricer.MaxSpots <= 0 {
		problems = append(problems, "PRICER_MAX_SPOTS")
	}

	if !c.History.Enabled {
		return problems
	}
	if c.Postgres.Host == "" {
		problems = append(problems, "POSTGRES_HOST")
	}
	if c.Postgres.Port == 0 {
		problems = append(problems, "POSTGRES_PORT")
	}
	if c.Postgres.User == "" {
		problems = append(problems, "POSTGRES_USER")
	}
	if c.Postgres.Password == "" {
		problems = append(problems, "POSTGRES_PASSWORD")
	}
	if c.Postgres.DBName == "" {
		problems = append(problems, "POSTGRES_DB")
	}
	return problems
}
