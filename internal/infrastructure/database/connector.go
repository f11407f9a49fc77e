package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	_ "github.com/microsoft/go-mssqldb"
	_ "modernc.org/sqlite"

	"resource-converter/internal/domain"
	"resource-converter/internal/logger"
	"resource-converter/internal/metrics"
)

// Conn pairs an open database handle with its SQL dialect.
type Conn struct {
	DB      *sql.DB
	Dialect Dialect
}

// PoolOptions configures the *sql.DB opened for each connection profile.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// MaxCached bounds how many distinct profiles keep an open pool.
	MaxCached int
}

// Connector opens and caches database handles for connection profiles sent by
// clients. Handles are keyed by driver and DSN; the least recently used handle is
// closed once MaxCached is exceeded.
type Connector struct {
	opts PoolOptions
	open func(driver, dsn string) (*sql.DB, error)

	mu    sync.Mutex
	conns map[string]*Conn
	order []string
}

// NewConnector creates a new Connector.
func NewConnector(opts PoolOptions) *Connector {
	if opts.MaxCached < 1 {
		opts.MaxCached = 1
	}
	return &Connector{
		opts:  opts,
		open:  sql.Open,
		conns: make(map[string]*Conn),
	}
}

// Open returns a verified handle for the connection, reusing a cached one.
func (c *Connector) Open(ctx context.Context, cfg domain.ConnectionConfig) (*Conn, error) {
	driver, dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}
	key := driver + "|" + dsn

	c.mu.Lock()
	if conn, ok := c.conns[key]; ok {
		c.touch(key)
		c.mu.Unlock()
		return conn, nil
	}
	c.mu.Unlock()

	conn, err := c.connect(ctx, cfg.DBType, driver, dsn)
	if err != nil {
		metrics.ConnectionAttemptsTotal.WithLabelValues(string(cfg.DBType), "failure").Inc()
		return nil, err
	}
	metrics.ConnectionAttemptsTotal.WithLabelValues(string(cfg.DBType), "success").Inc()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another request may have opened the same profile meanwhile.
	if existing, ok := c.conns[key]; ok {
		_ = conn.DB.Close()
		c.touch(key)
		return existing, nil
	}

	c.conns[key] = conn
	c.order = append(c.order, key)
	for len(c.order) > c.opts.MaxCached {
		oldest := c.order[0]
		c.order = c.order[1:]
		if evicted, ok := c.conns[oldest]; ok {
			delete(c.conns, oldest)
			if err := evicted.DB.Close(); err != nil {
				logger.Warn("Failed to close evicted connection",
					slog.String("db_type", string(evicted.Dialect.Type)),
					slog.String("error", err.Error()))
			}
		}
	}
	metrics.DynamicConnectionsCached.Set(float64(len(c.conns)))

	return conn, nil
}

// Test opens a throwaway handle and runs the dialect's probe query.
func (c *Connector) Test(ctx context.Context, cfg domain.ConnectionConfig) error {
	driver, dsn, err := DSN(cfg)
	if err != nil {
		return err
	}

	conn, err := c.connect(ctx, cfg.DBType, driver, dsn)
	if err != nil {
		return err
	}
	defer conn.DB.Close()

	var one int
	if err := conn.DB.QueryRowContext(ctx, conn.Dialect.ProbeQuery()).Scan(&one); err != nil {
		return fmt.Errorf("probe query: %w", err)
	}
	return nil
}

// Len returns the number of cached handles.
func (c *Connector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.conns)
}

// Close closes every cached handle.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for key, conn := range c.conns {
		if err := conn.DB.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(c.conns, key)
	}
	c.order = nil
	metrics.DynamicConnectionsCached.Set(0)

	return errors.Join(errs...)
}

func (c *Connector) connect(ctx context.Context, dbType domain.DBType, driver, dsn string) (*Conn, error) {
	db, err := c.open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbType, err)
	}

	db.SetMaxOpenConns(c.opts.MaxOpenConns)
	db.SetMaxIdleConns(c.opts.MaxIdleConns)
	db.SetConnMaxLifetime(c.opts.ConnMaxLifetime)
	db.SetConnMaxIdleTime(c.opts.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", dbType, err)
	}

	return &Conn{DB: db, Dialect: DialectFor(dbType)}, nil
}

// touch moves key to the most recently used position. Caller holds c.mu.
func (c *Connector) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.order = append(c.order, key)
}
