package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the server.
type Config struct {
	// Server configuration
	ServerPort         string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	CORSAllowedOrigins []string

	// Catalog query configuration
	QueryTimeout    time.Duration
	DefaultPageSize int
	MaxPageSize     int

	// Per-profile connection pools
	DynamicMaxOpenConns    int
	DynamicMaxIdleConns    int
	DynamicConnMaxLifetime time.Duration
	DynamicConnMaxIdleTime time.Duration
	DynamicMaxCachedDBs    int

	// Default catalog database configuration
	DefaultCatalogEnabled bool
	DBHost                string
	DBPort                int
	DBUser                string
	DBPassword            string
	DBName                string
	DBSSLMode             string
	DBMaxConns            int32
	DBMinConns            int32
	DBMaxConnLifetime     time.Duration
	DBMaxConnIdleTime     time.Duration
	DBHealthCheckPeriod   time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:             getEnv("SERVER_PORT", "8080"),
		ReadTimeout:            getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:           getEnvDuration("HTTP_WRITE_TIMEOUT", 2*time.Minute),
		IdleTimeout:            getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		CORSAllowedOrigins:     getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		QueryTimeout:           getEnvDuration("QUERY_TIMEOUT", 30*time.Second),
		DefaultPageSize:        getEnvInt("DEFAULT_PAGE_SIZE", 50),
		MaxPageSize:            getEnvInt("MAX_PAGE_SIZE", 1000),
		DynamicMaxOpenConns:    getEnvInt("DYNAMIC_MAX_OPEN_CONNS", 5),
		DynamicMaxIdleConns:    getEnvInt("DYNAMIC_MAX_IDLE_CONNS", 2),
		DynamicConnMaxLifetime: getEnvDuration("DYNAMIC_CONN_MAX_LIFETIME", 30*time.Minute),
		DynamicConnMaxIdleTime: getEnvDuration("DYNAMIC_CONN_MAX_IDLE_TIME", 5*time.Minute),
		DynamicMaxCachedDBs:    getEnvInt("DYNAMIC_MAX_CACHED_DBS", 16),
		DefaultCatalogEnabled:  getEnvBool("DEFAULT_CATALOG_ENABLED", false),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnvInt("DB_PORT", 5432),
		DBUser:                 getEnv("DB_USER", "postgres"),
		DBPassword:             getEnv("DB_PASSWORD", "postgres"),
		DBName:                 getEnv("DB_NAME", "resource_catalog"),
		DBSSLMode:              getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:             int32(getEnvInt("DB_MAX_CONNS", 10)),
		DBMinConns:             int32(getEnvInt("DB_MIN_CONNS", 1)),
		DBMaxConnLifetime:      getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:      getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod:    getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be at least 1")
	}
	if c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("MAX_PAGE_SIZE must be at least DEFAULT_PAGE_SIZE")
	}
	if c.DynamicMaxOpenConns < 1 {
		return fmt.Errorf("DYNAMIC_MAX_OPEN_CONNS must be at least 1")
	}
	if c.DynamicMaxCachedDBs < 1 {
		return fmt.Errorf("DYNAMIC_MAX_CACHED_DBS must be at least 1")
	}
	if c.DefaultCatalogEnabled {
		if c.DBHost == "" {
			return fmt.Errorf("DB_HOST is required")
		}
		if c.DBUser == "" {
			return fmt.Errorf("DB_USER is required")
		}
		if c.DBName == "" {
			return fmt.Errorf("DB_NAME is required")
		}
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvList gets a comma-separated environment variable with a default value.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
