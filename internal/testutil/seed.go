package testutil

import (
	"fmt"
	"testing"

	"github.com/Veraticus/homeserve/internal/catalog"
	"github.com/Veraticus/homeserve/internal/model"
)

// SeedBuilder assembles a small seed for tests. IDs are assigned in the
// order records are added, starting at "1" for providers and "pkg1" for
// packages.
type SeedBuilder struct {
	t         *testing.T
	providers []model.ServiceProvider
	packages  []model.ServicePackage
}

// NewSeedBuilder starts an empty seed.
func NewSeedBuilder(t *testing.T) *SeedBuilder {
	t.Helper()
	return &SeedBuilder{t: t}
}

// WithProvider adds a verified provider rated 4.5 who is 1 mile away.
func (b *SeedBuilder) WithProvider(name, service string, hourlyRate float64) *SeedBuilder {
	return b.WithProviderFunc(name, service, hourlyRate, nil)
}

// WithProviderFunc adds a provider and lets edit adjust it before it is stored.
func (b *SeedBuilder) WithProviderFunc(name, service string, hourlyRate float64, edit func(*model.ServiceProvider)) *SeedBuilder {
	b.t.Helper()
	p := model.ServiceProvider{
		ID:           fmt.Sprintf("%d", len(b.providers)+1),
		Name:         name,
		Service:      service,
		Location:     "Downtown",
		Availability: "Available Today",
		Rating:       4.5,
		HourlyRate:   hourlyRate,
		Distance:     1,
		Verified:     true,
	}
	if edit != nil {
		edit(&p)
	}
	b.providers = append(b.providers, p)
	return b
}

// WithPackage adds a package priced at regular less savings.
func (b *SeedBuilder) WithPackage(name string, packageType model.PackageType, regular, savings float64) *SeedBuilder {
	b.t.Helper()
	if savings >= regular {
		b.t.Fatalf("package %q: savings %.0f must be below the regular price %.0f", name, savings, regular)
	}
	b.packages = append(b.packages, model.ServicePackage{
		ID:              fmt.Sprintf("pkg%d", len(b.packages)+1),
		Name:            name,
		Type:            packageType,
		RegularPrice:    regular,
		DiscountedPrice: regular - savings,
		Savings:         savings,
	})
	return b
}

// Build returns the seed. Reviews, bookings and jobs are left empty.
func (b *SeedBuilder) Build() *catalog.Seed {
	b.t.Helper()
	return &catalog.Seed{
		Providers: append([]model.ServiceProvider(nil), b.providers...),
		Packages:  append([]model.ServicePackage(nil), b.packages...),
	}
}
