package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/homeserve/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestCatalog(t *testing.T) {
	seed := NewSeedBuilder(t).
		WithProvider("Ana Lopez", "Photography", 90).
		WithProviderFunc("Ray Ortiz", "Roofing", 110, func(p *model.ServiceProvider) {
			p.Rating = 3.8
			p.Verified = false
		}).
		WithPackage("Roof Check", model.PackageEmergency, 300, 50).
		Build()

	c := SetupTestCatalog(t, seed)
	ctx := context.Background()

	providers, err := c.ListProviders(ctx)
	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, "1", providers[0].ID)
	assert.Equal(t, "Ana Lopez", providers[0].Name)
	assert.Equal(t, "2", providers[1].ID)
	assert.InDelta(t, 3.8, providers[1].Rating, 0.001)
	assert.False(t, providers[1].Verified)

	packages, err := c.ListPackages(ctx, model.PackageEmergency)
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.InDelta(t, 250, packages[0].DiscountedPrice, 0.001)

	bookings, err := c.ListBookings(ctx, model.KindCustomer)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestOpenCatalog(t *testing.T) {
	c := OpenCatalog(t)

	providers, err := c.ListProviders(context.Background())
	require.NoError(t, err)
	assert.Len(t, providers, 6)
}
