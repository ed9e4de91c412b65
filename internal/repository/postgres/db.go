package postgres

import (
	"context"
	"fmt"

	"library-backend/internal/config"
	"library-backend/internal/logger"

	"github.com/jmoiron/sqlx"
)

// Open connects to the configured database, applies the pool limits and
// verifies the connection. The driver is "postgres" (lib/pq) or "pgx".
func Open(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	logger.Debug("Connecting to database...",
		"driver", cfg.Database.Driver,
		"connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))

	db, err := sqlx.Open(cfg.Database.Driver, cfg.GetDatabaseConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime())

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info("Database connection established", "driver", cfg.Database.Driver)
	return db, nil
}
