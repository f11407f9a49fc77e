package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"resource-converter/internal/domain"
	"resource-converter/internal/infrastructure/database"
	"resource-converter/internal/logger"
	"resource-converter/internal/metrics"
)

const (
	// DefaultQueryTimeout bounds every catalog query when no timeout is configured.
	DefaultQueryTimeout = 30 * time.Second
	// DefaultPageSize is used when a fetch request carries no size.
	DefaultPageSize = 50
	// DefaultMaxPageSize caps the size of a fetch request.
	DefaultMaxPageSize = 1000
)

// ErrDefaultCatalogDisabled is returned by default catalog operations when the
// server runs without one.
var ErrDefaultCatalogDisabled = errors.New("default catalog is not configured")

// DatabaseError wraps failures to reach or query a client supplied database.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// Options tunes catalog queries.
type Options struct {
	QueryTimeout    time.Duration
	DefaultPageSize int
	MaxPageSize     int
}

func (o Options) withDefaults() Options {
	if o.QueryTimeout <= 0 {
		o.QueryTimeout = DefaultQueryTimeout
	}
	if o.DefaultPageSize <= 0 {
		o.DefaultPageSize = DefaultPageSize
	}
	if o.MaxPageSize <= 0 {
		o.MaxPageSize = DefaultMaxPageSize
	}
	if o.DefaultPageSize > o.MaxPageSize {
		o.DefaultPageSize = o.MaxPageSize
	}
	return o
}

// catalog holds what label and error message services share: how to reach a
// database and how to bound a query.
type catalog struct {
	resource    domain.ResourceKind
	connector   Connector
	repos       RepositoryFactory
	defaultConn *database.Conn
	opts        Options
}

// open returns a handle for cfg. Unsupported engines keep their sentinel so
// callers can tell a bad request from an unreachable database.
func (c *catalog) open(ctx context.Context, cfg domain.ConnectionConfig) (*database.Conn, error) {
	conn, err := c.connector.Open(ctx, cfg)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedDBType) {
			return nil, err
		}
		return nil, &DatabaseError{Op: "connect to " + string(cfg.DBType), Err: err}
	}
	return conn, nil
}

func (c *catalog) defaultCatalog() (*database.Conn, error) {
	if c.defaultConn == nil {
		return nil, ErrDefaultCatalogDisabled
	}
	return c.defaultConn, nil
}

// bounds clamps paging: a negative page becomes 0, a missing size the default
// and an oversized one the maximum.
func (c *catalog) bounds(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = c.opts.DefaultPageSize
	}
	if size > c.opts.MaxPageSize {
		size = c.opts.MaxPageSize
	}
	return page, size
}

func (c *catalog) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.opts.QueryTimeout)
}

// observe records metrics for a finished query and logs failures.
func (c *catalog) observe(ctx context.Context, op string, dbType domain.DBType, timer *metrics.Timer, err error) {
	metrics.ObserveQuery(string(c.resource), op, err, timer.Seconds())
	if err == nil {
		return
	}
	logger.WithResource(ctx, string(c.resource), op).ErrorContext(ctx, "Catalog query failed",
		slog.String("db_type", string(dbType)),
		slog.String("error", err.Error()),
	)
}

func queryError(op string, err error) error {
	if err == nil {
		return nil
	}
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) || errors.Is(err, domain.ErrUnsupportedDBType) {
		return err
	}
	return &DatabaseError{Op: op, Err: err}
}
