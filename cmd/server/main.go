package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"resource-converter/internal/config"
	"resource-converter/internal/handler"
	"resource-converter/internal/infrastructure/database"
	"resource-converter/internal/logger"
	"resource-converter/internal/metrics"
	"resource-converter/internal/middleware"
	"resource-converter/internal/repository"
	"resource-converter/internal/service"
	"resource-converter/internal/validator"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	logger.Configure(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	// Per-profile connections requested by clients
	connector := database.NewConnector(database.PoolOptions{
		MaxOpenConns:    cfg.DynamicMaxOpenConns,
		MaxIdleConns:    cfg.DynamicMaxIdleConns,
		ConnMaxLifetime: cfg.DynamicConnMaxLifetime,
		ConnMaxIdleTime: cfg.DynamicConnMaxIdleTime,
		MaxCached:       cfg.DynamicMaxCachedDBs,
	})
	defer connector.Close()

	// Optional default catalog
	var (
		pool        *pgxpool.Pool
		defaultConn *database.Conn
		catalogPing handler.Pinger
	)
	if cfg.DefaultCatalogEnabled {
		pool, err = database.NewPostgres(context.Background(), database.PoolConfig{
			Host:              cfg.DBHost,
			Port:              cfg.DBPort,
			User:              cfg.DBUser,
			Password:          cfg.DBPassword,
			Database:          cfg.DBName,
			SSLMode:           cfg.DBSSLMode,
			MaxConns:          cfg.DBMaxConns,
			MinConns:          cfg.DBMinConns,
			MaxConnLifetime:   cfg.DBMaxConnLifetime,
			MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
			HealthCheckPeriod: cfg.DBHealthCheckPeriod,
		})
		if err != nil {
			logger.Fatal("Failed to connect to default catalog",
				slog.String("error", err.Error()))
		}
		defer pool.Close()

		defaultConn = database.CatalogFromPool(pool)
		defer defaultConn.DB.Close()
		catalogPing = pool

		// Start database pool metrics collector
		poolStatsCollector := metrics.NewPoolStatsCollector(pool)
		poolStatsCollector.Start(15 * time.Second)
		defer poolStatsCollector.Stop()
	}

	// Initialize validator and repositories
	v := validator.NewValidator()
	repos := repository.NewFactory()

	// Initialize services
	opts := service.Options{
		QueryTimeout:    cfg.QueryTimeout,
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
	}
	labelService := service.NewLabelService(connector, repos, defaultConn, opts)
	errorMessageService := service.NewErrorMessageService(connector, repos, defaultConn, opts)
	connectionService := service.NewConnectionService(connector, cfg.QueryTimeout)

	// Initialize handlers
	connectionHandler := handler.NewConnectionHandler(connectionService, v)
	labelHandler := handler.NewLabelHandler(labelService, v)
	errorMessageHandler := handler.NewErrorMessageHandler(errorMessageService, v)
	healthHandler := handler.NewHealthHandler(catalogPing, version)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.AccessLog())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/db/test", connectionHandler.TestConnection)

		labels := api.Group("/labels")
		{
			labels.GET("", labelHandler.ListDefault)
			labels.POST("/fetch", labelHandler.Fetch)
			labels.POST("/fetch/ids", labelHandler.FetchIDs)
			labels.POST("/fetch/by-ids", labelHandler.FetchByIDs)
			labels.POST("/properties/download", labelHandler.DownloadProperties)
		}

		errorMessages := api.Group("/error-messages")
		{
			errorMessages.GET("", errorMessageHandler.ListDefault)
			errorMessages.GET("/xml", errorMessageHandler.DefaultXML)
			errorMessages.POST("/fetch", errorMessageHandler.Fetch)
			errorMessages.POST("/fetch/ids", errorMessageHandler.FetchIDs)
			errorMessages.POST("/fetch/by-ids", errorMessageHandler.FetchByIDs)
			errorMessages.POST("/xml/download", errorMessageHandler.DownloadXML)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.Bool("default_catalog", cfg.DefaultCatalogEnabled))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server before closing database handles
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
