package postgres

import (
	"context"
	"fmt"

	"library-backend/internal/logger"

	"github.com/jmoiron/sqlx"
)

// schema is applied in order; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS books (
		book_id        SERIAL PRIMARY KEY,
		title          TEXT NOT NULL,
		author         TEXT NOT NULL,
		published_year TEXT NOT NULL,
		status         TEXT NOT NULL DEFAULT 'available' CHECK (status IN ('available', 'unavailable')),
		book_type      INTEGER NOT NULL CHECK (book_type IN (1, 2, 3)),
		CONSTRAINT books_title_key UNIQUE (title)
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		age         INTEGER NOT NULL,
		city        TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS loans (
		loan_id     SERIAL PRIMARY KEY,
		loan_date   DATE NOT NULL,
		return_date DATE NOT NULL,
		book_id     INTEGER NOT NULL REFERENCES books (book_id) ON DELETE CASCADE,
		customer_id TEXT NOT NULL REFERENCES customers (customer_id) ON DELETE CASCADE
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS loans_book_id_key ON loans (book_id)`,
	`CREATE INDEX IF NOT EXISTS loans_customer_id_idx ON loans (customer_id)`,
	`CREATE INDEX IF NOT EXISTS loans_return_date_idx ON loans (return_date)`,
}

// Migrate creates the tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range schema {
		logger.DatabaseCall("schema.Migrate", stmt, "step", i+1)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.DatabaseResult("schema.Migrate", 0, err, "step", i+1)
			return fmt.Errorf("failed to apply schema step %d: %w", i+1, err)
		}
	}
	logger.Info("Database schema is up to date", "steps", len(schema))
	return nil
}
