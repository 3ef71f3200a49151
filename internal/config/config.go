package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// HTTP server
	Port   string
	APIURL string

	// Database. A PostgreSQL database is used when DBHost is set,
	// the SQLite file at DBDSN otherwise.
	DBDSN      string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBTimeout  time.Duration

	// Name of the header carrying the ID of the authenticated user
	AuthHeader string

	CORSAllowOrigins []string
	EnablePprof      bool
	LogFormat        string
	GinMode          string

	// Create a demo user with categories and transactions on startup
	SeedDemoData bool
}

// Load reads the configuration from the environment.
//
// Variables in a .env file in the working directory are loaded first.
// They never override variables already set in the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("Config")
	}

	return &Config{
		Port:   getEnv("PORT", "8080"),
		APIURL: getEnv("API_URL", "http://localhost:8080"),

		DBDSN:      getEnv("DB_DSN", "data/finance.db"),
		DBHost:     getEnv("DB_HOST", ""),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "finance"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBTimeout:  getEnvDuration("DB_TIMEOUT", 5*time.Second),

		AuthHeader: getEnv("AUTH_HEADER", "X-User-ID"),

		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      os.Getenv("ENABLE_PPROF") == "true",
		LogFormat:        os.Getenv("LOG_FORMAT"),
		GinMode:          getEnv("GIN_MODE", "release"),

		SeedDemoData: os.Getenv("SEED_DEMO_DATA") == "true",
	}
}

// Postgres reports if the PostgreSQL driver is used.
func (c *Config) Postgres() bool {
	return c.DBHost != ""
}

// PostgresDSN returns the connection string for PostgreSQL.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC", c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// BaseURL returns the parsed API_URL.
func (c *Config) BaseURL() (*url.URL, error) {
	return url.Parse(c.APIURL)
}

// Validate validates the configuration and returns an error listing
// all problems found.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if u, err := url.Parse(c.APIURL); err != nil {
		problems = append(problems, fmt.Sprintf("invalid API_URL '%s': %v", c.APIURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		problems = append(problems, fmt.Sprintf("invalid API_URL scheme '%s': must be 'http' or 'https'", u.Scheme))
	}

	if c.Postgres() {
		if c.DBUser == "" {
			problems = append(problems, "DB_USER is required when DB_HOST is set")
		}
		if c.DBName == "" {
			problems = append(problems, "DB_NAME is required when DB_HOST is set")
		}
	} else if c.DBDSN == "" {
		problems = append(problems, "DB_DSN cannot be empty when DB_HOST is not set")
	}

	if c.DBTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid database timeout %v: must be positive", c.DBTimeout))
	}

	if strings.TrimSpace(c.AuthHeader) == "" {
		problems = append(problems, "AUTH_HEADER cannot be empty")
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Warn().Str("key", key).Str("value", value).Msg("Config: not a duration, using default")
	}
	return defaultValue
}
