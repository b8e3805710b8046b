package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Veraticus/homeserve/internal/model"
	"github.com/Veraticus/homeserve/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// memoryDSN keeps the catalog in memory. Nothing is ever written to disk.
const memoryDSN = ":memory:?_foreign_keys=on"

// queryable is satisfied by both *sql.DB and *sql.Tx.
type queryable interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// SQLiteCatalog implements service.Catalog on an in-memory SQLite database.
type SQLiteCatalog struct {
	db *sql.DB
}

var _ service.Catalog = (*SQLiteCatalog)(nil)

// NewSQLiteCatalog opens an empty in-memory catalog. Call Migrate and Seed
// before reading from it, or use Open which does both.
func NewSQLiteCatalog() (*SQLiteCatalog, error) {
	db, err := sql.Open("sqlite3", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so there must only ever be one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteCatalog{db: db}, nil
}

// Open builds a ready-to-use catalog. An empty seedPath loads the embedded seed.
func Open(ctx context.Context, seedPath string) (*SQLiteCatalog, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var (
		seed *Seed
		err  error
	)
	if seedPath == "" {
		seed, err = DefaultSeed()
	} else {
		seed, err = LoadSeedFile(seedPath)
	}
	if err != nil {
		return nil, err
	}

	c, err := NewSQLiteCatalog()
	if err != nil {
		return nil, err
	}
	if err := c.Migrate(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err := c.Seed(ctx, seed); err != nil {
		_ = c.Close()
		return nil, err
	}

	slog.Debug("Catalog loaded",
		"providers", len(seed.Providers),
		"reviews", len(seed.Reviews),
		"bookings", len(seed.Bookings),
		"jobs", len(seed.Jobs),
		"packages", len(seed.Packages))

	return c, nil
}

// Close closes the database connection.
func (c *SQLiteCatalog) Close() error {
	return c.db.Close()
}

// Seed inserts every record of seed in a single transaction, keeping seed order.
func (c *SQLiteCatalog) Seed(ctx context.Context, seed *Seed) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSeed(seed); err != nil {
		return err
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i := range seed.Providers {
		if err := insertProvider(ctx, tx, i, &seed.Providers[i]); err != nil {
			return err
		}
	}
	for i, r := range seed.Reviews {
		review, err := r.toModel()
		if err != nil {
			return err
		}
		if err := insertReview(ctx, tx, i, &review); err != nil {
			return err
		}
	}
	position := 0
	for _, set := range []struct {
		kind model.BookingKind
		list []seedBooking
	}{
		{model.KindCustomer, seed.Bookings},
		{model.KindProvider, seed.Jobs},
	} {
		for _, b := range set.list {
			booking, err := b.toModel(set.kind)
			if err != nil {
				return err
			}
			if err := insertBooking(ctx, tx, position, &booking); err != nil {
				return err
			}
			position++
		}
	}
	for i := range seed.Packages {
		if err := insertPackage(ctx, tx, i, &seed.Packages[i]); err != nil {
			return err
		}
	}

	return tx.Commit()
}
