package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Providers and reviews",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE providers (
					id TEXT PRIMARY KEY,
					position INTEGER NOT NULL,
					name TEXT NOT NULL,
					service TEXT NOT NULL,
					rating REAL NOT NULL CHECK (rating BETWEEN 0 AND 5),
					review_count INTEGER NOT NULL DEFAULT 0,
					hourly_rate REAL NOT NULL CHECK (hourly_rate > 0),
					location TEXT NOT NULL DEFAULT '',
					distance REAL NOT NULL DEFAULT 0,
					image TEXT NOT NULL DEFAULT '',
					availability TEXT NOT NULL DEFAULT '',
					verified INTEGER NOT NULL DEFAULT 0,
					description TEXT NOT NULL DEFAULT '',
					experience INTEGER NOT NULL DEFAULT 0,
					specializations TEXT NOT NULL DEFAULT '[]',
					completed_jobs INTEGER NOT NULL DEFAULT 0,
					lat REAL NOT NULL DEFAULT 0,
					lng REAL NOT NULL DEFAULT 0,
					portfolio TEXT NOT NULL DEFAULT '[]',
					certifications TEXT NOT NULL DEFAULT '[]'
				)`,
				`CREATE INDEX idx_providers_position ON providers(position)`,

				`CREATE TABLE reviews (
					id TEXT PRIMARY KEY,
					position INTEGER NOT NULL,
					provider_id TEXT NOT NULL REFERENCES providers(id),
					user_name TEXT NOT NULL,
					rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
					comment TEXT NOT NULL DEFAULT '',
					date TEXT NOT NULL,
					verified INTEGER NOT NULL DEFAULT 0
				)`,
				`CREATE INDEX idx_reviews_provider ON reviews(provider_id, position)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Bookings and packages",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE bookings (
					id TEXT PRIMARY KEY,
					position INTEGER NOT NULL,
					kind TEXT NOT NULL CHECK (kind IN ('customer', 'provider')),
					provider_id TEXT NOT NULL REFERENCES providers(id),
					provider_name TEXT NOT NULL,
					customer_name TEXT NOT NULL DEFAULT '',
					service TEXT NOT NULL,
					date TEXT NOT NULL,
					time TEXT NOT NULL,
					status TEXT NOT NULL,
					price REAL NOT NULL CHECK (price > 0)
				)`,
				`CREATE INDEX idx_bookings_kind ON bookings(kind, position)`,

				`CREATE TABLE packages (
					id TEXT PRIMARY KEY,
					position INTEGER NOT NULL,
					name TEXT NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					services TEXT NOT NULL DEFAULT '[]',
					regular_price REAL NOT NULL,
					discounted_price REAL NOT NULL,
					savings REAL NOT NULL,
					type TEXT NOT NULL,
					frequency TEXT NOT NULL DEFAULT '',
					popular INTEGER NOT NULL DEFAULT 0
				)`,
				`CREATE INDEX idx_packages_type ON packages(type, position)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate applies all pending database migrations.
func (c *SQLiteCatalog) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	if err := c.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := c.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Debug("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	if err := c.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion); err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}
	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
