package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: every environment variable is read here and nowhere else
type Config struct {
	Env string // development, staging, production

	// Catalog feeds
	Catalog CatalogConfig

	// Data directories
	Paths PathsConfig

	// Ranking
	Ranking RankingConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// CatalogConfig points at the role weight and position definition tables
type CatalogConfig struct {
	RolesFile     string
	PositionsFile string
}

// PathsConfig holds input and output locations
type PathsConfig struct {
	LeagueDir  string // squad HTML exports
	ReportsDir string // ranking workbooks consumed by the transfer engine
	OutputDir  string // where generated workbooks are written
}

// RankingConfig controls strength evaluation and ranking
type RankingConfig struct {
	PositiveOnly         bool // drop non-positive strengths from rankings
	EvaluateAllPositions bool // score every catalog position, not only natural ones
	Workers              int  // squads evaluated concurrently
}

// Load reads configuration from environment variables
// ⭐ SSOT: the only function that calls os.Getenv()
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		Catalog: CatalogConfig{
			RolesFile:     getEnv("ROLES_FILE", "config/roles.json"),
			PositionsFile: getEnv("POSITIONS_FILE", "config/positions.json"),
		},

		Paths: PathsConfig{
			LeagueDir:  getEnv("LEAGUE_DIR", "raw_files"),
			ReportsDir: getEnv("REPORTS_DIR", "reports"),
			OutputDir:  getEnv("OUTPUT_DIR", "."),
		},

		Ranking: RankingConfig{
			PositiveOnly:         getEnvAsBool("RANK_POSITIVE_ONLY", true),
			EvaluateAllPositions: getEnvAsBool("EVALUATE_ALL_POSITIONS", false),
			Workers:              getEnvAsInt("RANK_WORKERS", 4),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Ranking.Workers <= 0 {
		return fmt.Errorf("RANK_WORKERS must be > 0, got %d", c.Ranking.Workers)
	}

	if c.Catalog.RolesFile == "" || c.Catalog.PositionsFile == "" {
		return fmt.Errorf("ROLES_FILE and POSITIONS_FILE are required")
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{".env"}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
