// Package store persists shape records in PostgreSQL, one table per family.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/alexiusacademia/goaisc/internal/config"
	"github.com/alexiusacademia/goaisc/internal/logging"
)

// DB is the subset of the pgx API the repository needs. *pgxpool.Pool,
// *pgx.Conn and pgx.Tx satisfy it.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Client owns the connection pool.
type Client struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewClient creates a connection pool for cfg. Connections are opened
// lazily; call Ping to check the server is reachable.
func NewClient(ctx context.Context, cfg config.Database, logger *zap.Logger) (*Client, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	logger = logging.OrNop(logger)
	logger.Debug("Created connection pool",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Name),
		zap.Int32("max_conns", poolConfig.MaxConns))

	return &Client{pool: pool, logger: logger}, nil
}

// Close releases every pooled connection.
func (c *Client) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
}

// Ping checks the server is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// DB returns the pool as a DB.
func (c *Client) DB() DB {
	return c.pool
}

// Repository returns a repository over the pool for the given schema.
func (c *Client) Repository(schema string) *Repository {
	return NewRepository(c.pool, schema, c.logger)
}

// InTx runs fn against a repository bound to one transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (c *Client) InTx(ctx context.Context, schema string, fn func(*Repository) error) error {
	return pgx.BeginFunc(ctx, c.pool, func(tx pgx.Tx) error {
		return fn(NewRepository(tx, schema, c.logger))
	})
}
