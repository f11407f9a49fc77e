package service

import (
	"context"
	"log/slog"
	"time"

	"resource-converter/internal/domain"
	"resource-converter/internal/logger"
)

const (
	// ConnectionSucceeded is returned by TestConnection on success.
	ConnectionSucceeded = "connection succeeded"
	// connectionFailedPrefix starts every failure message.
	connectionFailedPrefix = "connection failed: "
)

// ConnectionService checks client supplied connection settings.
type ConnectionService struct {
	connector Connector
	timeout   time.Duration
}

// NewConnectionService creates a new ConnectionService.
func NewConnectionService(connector Connector, timeout time.Duration) *ConnectionService {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return &ConnectionService{connector: connector, timeout: timeout}
}

// TestConnection opens a throwaway connection, runs a probe query and reports
// the outcome as text.
func (s *ConnectionService) TestConnection(ctx context.Context, cfg domain.ConnectionConfig) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	log := logger.WithFields(ctx,
		slog.String("db_type", string(cfg.DBType)),
		slog.String("host", cfg.Host),
		slog.String("db_name", cfg.DBName),
	)

	if err := s.connector.Test(ctx, cfg); err != nil {
		log.WarnContext(ctx, "Connection test failed", slog.String("error", err.Error()))
		return FailureMessage(err)
	}

	log.InfoContext(ctx, "Connection test succeeded")
	return ConnectionSucceeded
}

// FailureMessage formats a connection failure the way TestConnection reports it.
func FailureMessage(err error) string {
	return connectionFailedPrefix + err.Error()
}
