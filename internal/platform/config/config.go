package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is loaded once in main and passed explicitly to every component;
// nothing in the engine reads the environment or caches configuration at
// module level.
type Config struct {
	Addr               string
	DatabaseURL        string
	JWTSecret          string
	AdminAPIKey        string
	TokenTTL           time.Duration
	Environment        string
	SeedAdminName      string
	SeedAdminEmail     string
	SeedDemoData       bool
	RunMigrations      bool
	RunSeed            bool
	RateLimitPerMinute int
	MetricsEnabled     bool
}

func Load() Config {
	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AdminAPIKey:        getEnv("ADMIN_API_KEY", ""),
		TokenTTL:           getEnvDuration("TOKEN_TTL", time.Hour),
		Environment:        getEnv("APP_ENV", "development"),
		SeedAdminName:      getEnv("SEED_ADMIN_NAME", "System Admin"),
		SeedAdminEmail:     getEnv("SEED_ADMIN_EMAIL", "admin@example.com"),
		SeedDemoData:       getEnvBool("SEED_DEMO_DATA", false),
		RunMigrations:      getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:            getEnvBool("RUN_SEED", true),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if strings.TrimSpace(c.AdminAPIKey) == "" {
			return fmt.Errorf("ADMIN_API_KEY must be set in production")
		}
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	return nil
}
