// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/qolzam/jobly/internal/platform/config"
)

// Client wraps sqlx.DB with pool configuration and health checks.
type Client struct {
	db     *sqlx.DB
	schema string
}

// NewClient connects to PostgreSQL and verifies the connection.
func NewClient(ctx context.Context, cfg *config.PostgreSQLConfig) (*Client, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return &Client{db: db, schema: cfg.Schema}, nil
}

// NewClientFromDB wraps an existing connection.
func NewClientFromDB(db *sqlx.DB, schema string) *Client {
	return &Client{db: db, schema: schema}
}

// DB returns the underlying *sqlx.DB connection
func (c *Client) DB() *sqlx.DB {
	return c.db
}

// Schema returns the configured schema, or "" for the search_path default.
func (c *Client) Schema() string {
	return c.schema
}

// Table qualifies name with the configured schema.
func (c *Client) Table(name string) string {
	return QualifiedTable(c.schema, name)
}

// Ping tests the database connection
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}

// QualifiedTable returns schema.name, or name when schema is empty.
func QualifiedTable(schema, name string) string {
	if schema == "" {
		return name
	}
	return schema + "." + name
}
