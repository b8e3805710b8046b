package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/homeserve/internal/common"
	"github.com/Veraticus/homeserve/internal/model"
	"github.com/Veraticus/homeserve/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestCatalog opens the embedded catalog in memory.
func createTestCatalog(t *testing.T) *SQLiteCatalog {
	t.Helper()
	c, err := Open(context.Background(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestListProvidersKeepsSeedOrder(t *testing.T) {
	c := createTestCatalog(t)

	providers, err := c.ListProviders(context.Background())
	require.NoError(t, err)
	require.Len(t, providers, 6)

	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name
	}
	assert.Equal(t, []string{
		"Mike Johnson",
		"Sarah Williams",
		"Clean Pro Services",
		"Green Thumb Landscaping",
		"David Martinez",
		"Fix-It-All Handyman",
	}, names)
}

func TestGetProviderRoundTripsNestedFields(t *testing.T) {
	c := createTestCatalog(t)

	p, err := c.GetProvider(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "Plumbing", p.Service)
	assert.InDelta(t, 4.9, p.Rating, 0.001)
	assert.InDelta(t, 85.0, p.HourlyRate, 0.001)
	assert.InDelta(t, 40.7128, p.Coordinates.Lat, 0.00001)
	assert.True(t, p.Verified)
	assert.Equal(t, []string{"Emergency Repairs", "Pipe Installation", "Water Heater Repair", "Drain Cleaning"}, p.Specializations)
	require.Len(t, p.Portfolio, 2)
	assert.Equal(t, "Modern Bathroom Renovation", p.Portfolio[0].Title)
	require.Len(t, p.Certifications, 2)
	assert.Equal(t, "EPA", p.Certifications[1].Issuer)

	cleaner, err := c.GetProvider(context.Background(), "3")
	require.NoError(t, err)
	assert.False(t, cleaner.HasPortfolio())
	assert.False(t, cleaner.HasCertifications())
}

func TestGetProviderNotFound(t *testing.T) {
	c := createTestCatalog(t)

	_, err := c.GetProvider(context.Background(), "99")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = c.GetProvider(context.Background(), " ")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestListReviews(t *testing.T) {
	c := createTestCatalog(t)
	ctx := context.Background()

	reviews, err := c.ListReviews(ctx, "1")
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, "Jennifer Smith", reviews[0].UserName)
	assert.Equal(t, 4, reviews[2].Rating)
	assert.Equal(t, time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC), reviews[0].Date)

	none, err := c.ListReviews(ctx, "6")
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}

func TestListBookingsByKind(t *testing.T) {
	c := createTestCatalog(t)
	ctx := context.Background()

	bookings, err := c.ListBookings(ctx, model.KindCustomer)
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, model.BookingConfirmed, bookings[0].Status)
	assert.Equal(t, "10:00 AM", bookings[0].Time)
	assert.Empty(t, bookings[0].CustomerName)

	jobs, err := c.ListBookings(ctx, model.KindProvider)
	require.NoError(t, err)
	require.Len(t, jobs, 4)
	assert.Equal(t, "Jennifer Smith", jobs[0].CustomerName)
	assert.InDelta(t, 2400.0, jobs[3].Price, 0.001)
	for _, j := range jobs {
		assert.Equal(t, model.KindProvider, j.Kind)
	}

	_, err = c.ListBookings(ctx, "admin")
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestListPackages(t *testing.T) {
	c := createTestCatalog(t)
	ctx := context.Background()

	all, err := c.ListPackages(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 8)
	assert.Equal(t, "pkg1", all[0].ID)
	assert.True(t, all[0].Popular)
	assert.Equal(t, []string{"Deep House Cleaning", "Window Washing", "Carpet Cleaning"}, all[0].Services)

	tests := []struct {
		packageType model.PackageType
		want        []string
	}{
		{model.PackageBundle, []string{"pkg1", "pkg2", "pkg7", "pkg8"}},
		{model.PackageSubscription, []string{"pkg3", "pkg4"}},
		{model.PackageGroup, []string{"pkg5"}},
		{model.PackageEmergency, []string{"pkg6"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.packageType), func(t *testing.T) {
			pkgs, err := c.ListPackages(ctx, tt.packageType)
			require.NoError(t, err)
			ids := make([]string, len(pkgs))
			for i, p := range pkgs {
				ids[i] = p.ID
				assert.Equal(t, tt.packageType, p.Type)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestLoadSnapshot(t *testing.T) {
	c := createTestCatalog(t)

	snap, err := service.LoadSnapshot(context.Background(), c)
	require.NoError(t, err)

	assert.Len(t, snap.Providers, 6)
	assert.Len(t, snap.Reviews["2"], 2)
	assert.Empty(t, snap.Reviews["5"])
	assert.Len(t, snap.Bookings, 3)
	assert.Len(t, snap.Jobs, 4)
	assert.Len(t, snap.Packages, 8)

	p, ok := snap.Provider("5")
	require.True(t, ok)
	assert.Equal(t, "David Martinez", p.Name)

	_, ok = snap.Provider("nope")
	assert.False(t, ok)
}

func TestOpenFromSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `
providers:
  - id: a
    name: Ana Núñez
    service: Carpentry
    rating: 4.2
    hourly_rate: 55
    specializations: [Cabinets]
packages: []
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	c, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	providers, err := c.ListProviders(context.Background())
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, "Ana Núñez", providers[0].Name)
	assert.Nil(t, providers[0].Portfolio)

	_, err = Open(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMigrateIsIdempotent(t *testing.T) {
	c, err := NewSQLiteCatalog()
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	require.NoError(t, c.Migrate(ctx))
	require.NoError(t, c.Migrate(ctx))

	var version int
	require.NoError(t, c.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
	assert.Equal(t, ExpectedSchemaVersion, version)
}
