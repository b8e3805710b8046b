// Package testutil provides test catalogs for packages that sit on top of
// the reference data. Every catalog is an isolated in-memory SQLite
// database that is closed when the test ends.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/homeserve/internal/catalog"
)

// OpenCatalog returns a catalog loaded with the embedded seed.
func OpenCatalog(t *testing.T) *catalog.SQLiteCatalog {
	t.Helper()

	c, err := catalog.Open(context.Background(), "")
	if err != nil {
		t.Fatalf("failed to open test catalog: %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Errorf("failed to close test catalog: %v", err)
		}
	})
	return c
}

// SetupTestCatalog returns a catalog holding only seed.
//
// Example:
//
//	c := testutil.SetupTestCatalog(t,
//		testutil.NewSeedBuilder(t).
//			WithProvider("Ana Lopez", "Photography", 90).
//			Build(),
//	)
func SetupTestCatalog(t *testing.T, seed *catalog.Seed) *catalog.SQLiteCatalog {
	t.Helper()

	c, err := catalog.NewSQLiteCatalog()
	if err != nil {
		t.Fatalf("failed to create test catalog: %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Errorf("failed to close test catalog: %v", err)
		}
	})

	ctx := context.Background()
	if err := c.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	if err := c.Seed(ctx, seed); err != nil {
		t.Fatalf("failed to seed test catalog: %v", err)
	}
	return c
}
