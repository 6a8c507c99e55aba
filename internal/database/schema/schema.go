// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package schema holds the Jobly table definitions.
package schema

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

//go:embed jobly.sql
var DDL string

// Apply creates the Jobly tables inside pgSchema, creating the schema when
// needed. An empty pgSchema uses the connection's search_path.
func Apply(ctx context.Context, db *sqlx.DB, pgSchema string) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if pgSchema != "" {
		quoted := pq.QuoteIdentifier(pgSchema)
		if _, err := tx.ExecContext(ctx, "CREATE SCHEMA IF NOT EXISTS "+quoted); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "SET LOCAL search_path TO "+quoted); err != nil {
			return fmt.Errorf("set search_path: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, DDL); err != nil {
		return fmt.Errorf("apply ddl: %w", err)
	}
	return tx.Commit()
}

// Drop removes pgSchema and everything in it.
func Drop(ctx context.Context, db *sqlx.DB, pgSchema string) error {
	_, err := db.ExecContext(ctx, "DROP SCHEMA IF EXISTS "+pq.QuoteIdentifier(pgSchema)+" CASCADE")
	return err
}
