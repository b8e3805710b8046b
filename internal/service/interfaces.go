// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/homeserve/internal/model"
)

// Catalog is the read-only reference data the application is built on.
// Every list is returned in seed order.
type Catalog interface {
	// Provider operations
	ListProviders(ctx context.Context) ([]model.ServiceProvider, error)
	GetProvider(ctx context.Context, id string) (*model.ServiceProvider, error)

	// Review operations
	ListReviews(ctx context.Context, providerID string) ([]model.Review, error)

	// Booking operations. KindCustomer returns the signed-in customer's
	// bookings, KindProvider the signed-in provider's jobs.
	ListBookings(ctx context.Context, kind model.BookingKind) ([]model.Booking, error)

	// Package operations. An empty type returns every package.
	ListPackages(ctx context.Context, packageType model.PackageType) ([]model.ServicePackage, error)

	Close() error
}

// Snapshot is every catalog list loaded at once, the shape the UI works from.
type Snapshot struct {
	Reviews   map[string][]model.Review
	Providers []model.ServiceProvider
	Bookings  []model.Booking
	Jobs      []model.Booking
	Packages  []model.ServicePackage
}

// LoadSnapshot reads the whole catalog.
func LoadSnapshot(ctx context.Context, c Catalog) (*Snapshot, error) {
	providers, err := c.ListProviders(ctx)
	if err != nil {
		return nil, err
	}

	reviews := make(map[string][]model.Review, len(providers))
	for _, p := range providers {
		rs, err := c.ListReviews(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		reviews[p.ID] = rs
	}

	bookings, err := c.ListBookings(ctx, model.KindCustomer)
	if err != nil {
		return nil, err
	}
	jobs, err := c.ListBookings(ctx, model.KindProvider)
	if err != nil {
		return nil, err
	}
	packages, err := c.ListPackages(ctx, "")
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Providers: providers,
		Reviews:   reviews,
		Bookings:  bookings,
		Jobs:      jobs,
		Packages:  packages,
	}, nil
}

// Provider looks up a provider in the snapshot.
func (s *Snapshot) Provider(id string) (model.ServiceProvider, bool) {
	for _, p := range s.Providers {
		if p.ID == id {
			return p, true
		}
	}
	return model.ServiceProvider{}, false
}
