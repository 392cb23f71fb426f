package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database. All four are required: a partial connection is worse than
	// no connection, so missing any of them is a startup error.
	PSQLHost     string `env:"PSQL_HOST" required:"true"`
	PSQLUsername string `env:"PSQL_USERNAME" required:"true"`
	PSQLPassword string `env:"PSQL_PASSWORD" required:"true"`
	PSQLDatabase string `env:"PSQL_DB" required:"true"`

	// HTTP
	HTTPPort    int      `env:"HTTP_PORT" default:"8080"`
	CORSOrigins []string `env:"CORS_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`

	// Rate limiting for the submission endpoint
	RateLimitRPS   int `env:"RATE_LIMIT_RPS" default:"10"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST" default:"20"`

	// Dashboard cache. Empty REDIS_ADDR disables caching entirely.
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	CacheTTL      time.Duration `env:"CACHE_TTL" default:"5m"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
}

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is applied first when present.
func LoadConfig() (*Config, error) {
	// No .env file is fine, system env vars still apply.
	_ = godotenv.Load()

	config := &Config{}

	// Database connection, fail fast on anything missing
	if err := loadEnvStringRequired(&config.PSQLHost, "PSQL_HOST"); err != nil {
		return nil, err
	}
	if err := loadEnvStringRequired(&config.PSQLUsername, "PSQL_USERNAME"); err != nil {
		return nil, err
	}
	if err := loadEnvStringRequired(&config.PSQLPassword, "PSQL_PASSWORD"); err != nil {
		return nil, err
	}
	if err := loadEnvStringRequired(&config.PSQLDatabase, "PSQL_DB"); err != nil {
		return nil, err
	}

	// HTTP
	if err := loadEnvInt(&config.HTTPPort, "HTTP_PORT", 8080); err != nil {
		return nil, err
	}
	if err := loadEnvStringSlice(&config.CORSOrigins, "CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"}); err != nil {
		return nil, err
	}

	// Rate limiting
	if err := loadEnvInt(&config.RateLimitRPS, "RATE_LIMIT_RPS", 10); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.RateLimitBurst, "RATE_LIMIT_BURST", 20); err != nil {
		return nil, err
	}

	// Cache
	if err := loadEnvString(&config.RedisAddr, "REDIS_ADDR", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.RedisPassword, "REDIS_PASSWORD", ""); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.CacheTTL, "CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}

	// Logging
	if err := loadEnvString(&config.LogLevel, "LOG_LEVEL", "info"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.LogFormat, "LOG_FORMAT", "text"); err != nil {
		return nil, err
	}

	return config, nil
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) error {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvStringRequired(target *string, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return fmt.Errorf("required environment variable %s is not set", key)
	}
	*target = value
	return nil
}

func loadEnvInt(target *int, key string, defaultValue int) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvDuration(target *time.Duration, key string, defaultValue time.Duration) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvStringSlice(target *[]string, key string, defaultValue []string) error {
	if value := os.Getenv(key); value != "" {
		*target = strings.Split(value, ",")
		for i, v := range *target {
			(*target)[i] = strings.TrimSpace(v)
		}
	} else {
		*target = defaultValue
	}
	return nil
}
