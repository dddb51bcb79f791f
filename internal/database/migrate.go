package database

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
)

//go:embed migrations/001_initial.up.sql
var initialMigrationSQL string

//go:embed migrations/002_item_view_indexes.up.sql
var itemViewIndexesSQL string

var requiredTables = []string{
	"items",
	"persons",
	"houses",
	"ownerships",
}

func (db *DB) EnsureSchema(ctx context.Context) error {
	if db == nil || db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	exists, err := db.hasAllRequiredTables(ctx)
	if err != nil {
		return fmt.Errorf("check existing tables: %w", err)
	}

	if !exists {
		slog.Info("database schema missing tables; applying initial migration")
		if _, err := db.Pool.Exec(ctx, initialMigrationSQL); err != nil {
			return fmt.Errorf("apply initial migration: %w", err)
		}

		exists, err = db.hasAllRequiredTables(ctx)
		if err != nil {
			return fmt.Errorf("re-check tables after migration: %w", err)
		}

		if !exists {
			return fmt.Errorf("schema initialization incomplete: required tables are still missing")
		}
	}

	// 002: partial indexes backing the active and deleted item views.
	if err := db.applyItemViewIndexes(ctx); err != nil {
		return fmt.Errorf("apply item view indexes migration: %w", err)
	}

	slog.Info("database schema ensured")
	return nil
}

// applyItemViewIndexes runs migration 002. The SQL uses IF NOT EXISTS so it
// is safe to re-run.
func (db *DB) applyItemViewIndexes(ctx context.Context) error {
	var hasIndex bool
	err := db.Pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pg_indexes
			WHERE schemaname = 'public'
			  AND tablename = 'items'
			  AND indexname = 'items_deleted_created_idx'
		)
	`).Scan(&hasIndex)
	if err != nil {
		return fmt.Errorf("check items_deleted_created_idx: %w", err)
	}

	if !hasIndex {
		slog.Info("applying item view indexes migration (002)")
		if _, err := db.Pool.Exec(ctx, itemViewIndexesSQL); err != nil {
			return fmt.Errorf("exec item view indexes SQL: %w", err)
		}
	}

	return nil
}

func (db *DB) hasAllRequiredTables(ctx context.Context) (bool, error) {
	var count int
	err := db.Pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = 'public'
		  AND table_name = ANY($1)
	`, requiredTables).Scan(&count)
	if err != nil {
		return false, err
	}

	return count == len(requiredTables), nil
}
