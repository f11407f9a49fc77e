package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	originalEnv := make(map[string]string)
	envVars := []string{
		"SERVER_PORT",
		"CORS_ALLOWED_ORIGINS",
		"QUERY_TIMEOUT",
		"DEFAULT_PAGE_SIZE",
		"MAX_PAGE_SIZE",
		"DYNAMIC_MAX_OPEN_CONNS",
		"DYNAMIC_MAX_CACHED_DBS",
		"DEFAULT_CATALOG_ENABLED",
		"DB_HOST",
		"DB_PORT",
		"DB_USER",
		"DB_PASSWORD",
		"DB_NAME",
		"DB_SSL_MODE",
		"DB_MAX_CONNS",
		"DB_MIN_CONNS",
		"LOG_LEVEL",
		"LOG_FORMAT",
	}

	for _, env := range envVars {
		originalEnv[env] = os.Getenv(env)
	}

	defer func() {
		for env, val := range originalEnv {
			if val == "" {
				os.Unsetenv(env)
			} else {
				os.Setenv(env, val)
			}
		}
	}()

	for _, env := range envVars {
		os.Unsetenv(env)
	}

	t.Run("default values", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "http://localhost:5173" {
			t.Errorf("CORSAllowedOrigins = %v, want [http://localhost:5173]", cfg.CORSAllowedOrigins)
		}
		if cfg.QueryTimeout != 30*time.Second {
			t.Errorf("QueryTimeout = %v, want 30s", cfg.QueryTimeout)
		}
		if cfg.DefaultPageSize != 50 {
			t.Errorf("DefaultPageSize = %v, want 50", cfg.DefaultPageSize)
		}
		if cfg.MaxPageSize != 1000 {
			t.Errorf("MaxPageSize = %v, want 1000", cfg.MaxPageSize)
		}
		if cfg.DynamicMaxOpenConns != 5 {
			t.Errorf("DynamicMaxOpenConns = %v, want 5", cfg.DynamicMaxOpenConns)
		}
		if cfg.DefaultCatalogEnabled {
			t.Errorf("DefaultCatalogEnabled = true, want false")
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.DBName != "resource_catalog" {
			t.Errorf("DBName = %v, want resource_catalog", cfg.DBName)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
		}
		if cfg.LogFormat != "json" {
			t.Errorf("LogFormat = %v, want json", cfg.LogFormat)
		}
	})

	t.Run("custom values from environment", func(t *testing.T) {
		os.Setenv("SERVER_PORT", "9090")
		os.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example ,")
		os.Setenv("QUERY_TIMEOUT", "5s")
		os.Setenv("DEFAULT_PAGE_SIZE", "25")
		os.Setenv("MAX_PAGE_SIZE", "200")
		os.Setenv("DEFAULT_CATALOG_ENABLED", "true")
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "testuser")
		os.Setenv("DB_NAME", "testdb")
		os.Setenv("DB_MAX_CONNS", "50")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://b.example" {
			t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
		}
		if cfg.QueryTimeout != 5*time.Second {
			t.Errorf("QueryTimeout = %v, want 5s", cfg.QueryTimeout)
		}
		if cfg.DefaultPageSize != 25 {
			t.Errorf("DefaultPageSize = %v, want 25", cfg.DefaultPageSize)
		}
		if !cfg.DefaultCatalogEnabled {
			t.Errorf("DefaultCatalogEnabled = false, want true")
		}
		if cfg.DBHost != "db.example.com" {
			t.Errorf("DBHost = %v, want db.example.com", cfg.DBHost)
		}
		if cfg.DBPort != 5433 {
			t.Errorf("DBPort = %v, want 5433", cfg.DBPort)
		}
		if cfg.DBMaxConns != 50 {
			t.Errorf("DBMaxConns = %v, want 50", cfg.DBMaxConns)
		}
	})

	t.Run("invalid page sizes are rejected", func(t *testing.T) {
		for _, env := range envVars {
			os.Unsetenv(env)
		}
		os.Setenv("DEFAULT_PAGE_SIZE", "100")
		os.Setenv("MAX_PAGE_SIZE", "10")

		if _, err := Load(); err == nil {
			t.Fatal("Load() expected error when MAX_PAGE_SIZE < DEFAULT_PAGE_SIZE")
		}
	})

	t.Run("default catalog falls back to default database settings", func(t *testing.T) {
		for _, env := range envVars {
			os.Unsetenv(env)
		}
		os.Setenv("DEFAULT_CATALOG_ENABLED", "true")
		os.Setenv("DB_HOST", " ")
		os.Setenv("DB_NAME", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.DBName != "resource_catalog" {
			t.Errorf("DBName = %v, want default", cfg.DBName)
		}
	})

	t.Run("duration fields have correct defaults", func(t *testing.T) {
		for _, env := range envVars {
			os.Unsetenv(env)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.DBMaxConnLifetime != time.Hour {
			t.Errorf("DBMaxConnLifetime = %v, want 1h", cfg.DBMaxConnLifetime)
		}
		if cfg.DynamicConnMaxLifetime != 30*time.Minute {
			t.Errorf("DynamicConnMaxLifetime = %v, want 30m", cfg.DynamicConnMaxLifetime)
		}
		if cfg.DynamicConnMaxIdleTime != 5*time.Minute {
			t.Errorf("DynamicConnMaxIdleTime = %v, want 5m", cfg.DynamicConnMaxIdleTime)
		}
	})
}

func TestLoadClient(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		t.Setenv("RESCONV_CONFIG_DIR", "/tmp/resconv-test")

		cfg, err := LoadClient()
		if err != nil {
			t.Fatalf("LoadClient() error = %v", err)
		}

		if cfg.ServerURL != "http://localhost:8080" {
			t.Errorf("ServerURL = %v, want http://localhost:8080", cfg.ServerURL)
		}
		if cfg.Debounce != 500*time.Millisecond {
			t.Errorf("Debounce = %v, want 500ms", cfg.Debounce)
		}
		if cfg.PageSize != 50 {
			t.Errorf("PageSize = %v, want 50", cfg.PageSize)
		}
		if cfg.UseKeyring {
			t.Errorf("UseKeyring = true, want false")
		}
		if cfg.SessionDir != "" {
			t.Errorf("SessionDir = %v, want empty", cfg.SessionDir)
		}
		if cfg.ConfigDir != "/tmp/resconv-test" {
			t.Errorf("ConfigDir = %v", cfg.ConfigDir)
		}
	})

	t.Run("custom values from environment", func(t *testing.T) {
		t.Setenv("RESCONV_SERVER", "http://converter:9000")
		t.Setenv("RESCONV_DEBOUNCE", "50ms")
		t.Setenv("RESCONV_PAGE_SIZE", "10")
		t.Setenv("RESCONV_USE_KEYRING", "true")
		t.Setenv("RESCONV_SESSION_DIR", "/tmp/resconv-sessions")

		cfg, err := LoadClient()
		if err != nil {
			t.Fatalf("LoadClient() error = %v", err)
		}

		if cfg.ServerURL != "http://converter:9000" {
			t.Errorf("ServerURL = %v", cfg.ServerURL)
		}
		if cfg.Debounce != 50*time.Millisecond {
			t.Errorf("Debounce = %v, want 50ms", cfg.Debounce)
		}
		if cfg.PageSize != 10 {
			t.Errorf("PageSize = %v, want 10", cfg.PageSize)
		}
		if !cfg.UseKeyring {
			t.Errorf("UseKeyring = false, want true")
		}
		if cfg.SessionDir != "/tmp/resconv-sessions" {
			t.Errorf("SessionDir = %v", cfg.SessionDir)
		}
	})

	t.Run("rejects zero page size", func(t *testing.T) {
		t.Setenv("RESCONV_PAGE_SIZE", "0")

		if _, err := LoadClient(); err == nil {
			t.Fatal("LoadClient() expected error for zero page size")
		}
	})
}
