package repository

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS shops (
		id               SERIAL PRIMARY KEY,
		name             VARCHAR(255) NOT NULL,
		address          VARCHAR(255) NOT NULL,
		lat              DOUBLE PRECISION NOT NULL,
		lng              DOUBLE PRECISION NOT NULL,
		cashless         VARCHAR(20) NOT NULL,
		opening_hours    TEXT,
		regular_holidays TEXT,
		hours_flagged    BOOLEAN NOT NULL DEFAULT FALSE,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id            SERIAL PRIMARY KEY,
		email         VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate creates the tables the service needs. It is safe to run on every
// start.
func Migrate(ctx context.Context, conn *sql.DB) error {
	for _, stmt := range schema {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("error applying schema: %w", err)
		}
	}
	return nil
}
