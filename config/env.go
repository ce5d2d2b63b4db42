package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const DefaultCatalogURL = "https://wefit-movies.vercel.app/api/movies"

type Config struct {
	AppEnv             string
	Port               string
	OriginURL          string
	CatalogURL         string
	CatalogHTTPTimeout time.Duration
	CatalogMinLoading  time.Duration
	SessionCookie      string
	SessionIdleTTL     time.Duration
	SessionMax         int

	// Warnings collected while loading; logged once the logger is up.
	Warnings []string
}

var AppConfig *Config

func LoadConfig() {
	var warnings []string
	if err := godotenv.Load(); err != nil {
		warnings = append(warnings, ".env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("APP_PORT", getEnv("PORT", "8082")),
		OriginURL:          getEnv("ORIGIN_URL", ""),
		CatalogURL:         getEnv("CATALOG_URL", DefaultCatalogURL),
		CatalogHTTPTimeout: getDuration("CATALOG_HTTP_TIMEOUT", 0, &warnings),
		CatalogMinLoading:  getDuration("CATALOG_MIN_LOADING", 2*time.Second, &warnings),
		SessionCookie:      getEnv("SESSION_COOKIE", "wemovies_session"),
		SessionIdleTTL:     getDuration("SESSION_IDLE_TTL", 24*time.Hour, &warnings),
		SessionMax:         getInt("SESSION_MAX", 10000, &warnings),
	}
	AppConfig.Warnings = warnings
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration accepts Go duration strings ("1500ms", "2s"). Unparsable or
// negative values fall back to the default.
func getDuration(key string, defaultValue time.Duration, warnings *[]string) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		*warnings = append(*warnings, fmt.Sprintf("invalid %s=%q, using %s", key, value, defaultValue))
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int, warnings *[]string) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		*warnings = append(*warnings, fmt.Sprintf("invalid %s=%q, using %d", key, value, defaultValue))
		return defaultValue
	}
	return n
}
