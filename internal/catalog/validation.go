// Package catalog holds the marketplace's read-only reference data in an
// in-memory SQLite database seeded from YAML.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/homeserve/internal/common"
	"github.com/Veraticus/homeserve/internal/model"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrInvalidProvider = errors.New("invalid provider")
	ErrInvalidReview   = errors.New("invalid review")
	ErrInvalidBooking  = errors.New("invalid booking")
	ErrInvalidPackage  = errors.New("invalid package")
	ErrInvalidKind     = errors.New("invalid booking kind")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateKind(kind model.BookingKind) error {
	if kind != model.KindCustomer && kind != model.KindProvider {
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	return nil
}

func validateProvider(p *model.ServiceProvider) error {
	if p.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidProvider)
	}
	if p.Name == "" {
		return fmt.Errorf("%w: %s missing name", ErrInvalidProvider, p.ID)
	}
	if p.Service == "" {
		return fmt.Errorf("%w: %s missing service", ErrInvalidProvider, p.ID)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("%w: %s rating %.1f outside 0-5", ErrInvalidProvider, p.ID, p.Rating)
	}
	if p.HourlyRate <= 0 {
		return fmt.Errorf("%w: %s hourly rate must be positive", ErrInvalidProvider, p.ID)
	}
	if p.Distance < 0 {
		return fmt.Errorf("%w: %s negative distance", ErrInvalidProvider, p.ID)
	}
	if p.ReviewCount < 0 || p.CompletedJobs < 0 || p.Experience < 0 {
		return fmt.Errorf("%w: %s negative count", ErrInvalidProvider, p.ID)
	}
	return nil
}

func validateReview(r *seedReview, providers map[string]bool) error {
	if r.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidReview)
	}
	if !providers[r.ProviderID] {
		return fmt.Errorf("%w: %s references unknown provider %q", ErrInvalidReview, r.ID, r.ProviderID)
	}
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("%w: %s rating %d outside 1-5", ErrInvalidReview, r.ID, r.Rating)
	}
	if _, err := r.toModel(); err != nil {
		return err
	}
	return nil
}

func validateBooking(b *seedBooking, providers map[string]bool) error {
	if b.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidBooking)
	}
	if !providers[b.ProviderID] {
		return fmt.Errorf("%w: %s references unknown provider %q", ErrInvalidBooking, b.ID, b.ProviderID)
	}
	if !model.BookingStatus(b.Status).Valid() {
		return fmt.Errorf("%w: %s unknown status %q", ErrInvalidBooking, b.ID, b.Status)
	}
	if b.Price <= 0 {
		return fmt.Errorf("%w: %s price must be positive", ErrInvalidBooking, b.ID)
	}
	if b.Time == "" {
		return fmt.Errorf("%w: %s missing time", ErrInvalidBooking, b.ID)
	}
	if _, err := b.toModel(""); err != nil {
		return err
	}
	return nil
}

func validatePackage(p *model.ServicePackage) error {
	if p.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidPackage)
	}
	known := false
	for _, t := range model.PackageTypes() {
		if p.Type == t {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %s unknown type %q", ErrInvalidPackage, p.ID, p.Type)
	}
	if p.DiscountedPrice <= 0 || p.RegularPrice < p.DiscountedPrice {
		return fmt.Errorf("%w: %s prices %.0f/%.0f", ErrInvalidPackage, p.ID, p.RegularPrice, p.DiscountedPrice)
	}
	return nil
}

// uniqueIDs records IDs for one table and rejects repeats.
type uniqueIDs struct {
	seen    map[string]bool
	invalid error
}

func newUniqueIDs(invalid error) *uniqueIDs {
	return &uniqueIDs{seen: make(map[string]bool), invalid: invalid}
}

func (u *uniqueIDs) add(id string) error {
	if u.seen[id] {
		return fmt.Errorf("%w: %w: ID %s", u.invalid, common.ErrDuplicateEntry, id)
	}
	u.seen[id] = true
	return nil
}

// validateSeed checks every record, the references between them and that IDs
// are unique per table. Bookings and jobs share a table.
func validateSeed(seed *Seed) error {
	providers := newUniqueIDs(ErrInvalidProvider)
	for i := range seed.Providers {
		p := &seed.Providers[i]
		if err := validateProvider(p); err != nil {
			return err
		}
		if err := providers.add(p.ID); err != nil {
			return err
		}
	}

	reviews := newUniqueIDs(ErrInvalidReview)
	for i := range seed.Reviews {
		r := &seed.Reviews[i]
		if err := validateReview(r, providers.seen); err != nil {
			return err
		}
		if err := reviews.add(r.ID); err != nil {
			return err
		}
	}

	bookings := newUniqueIDs(ErrInvalidBooking)
	for _, list := range [][]seedBooking{seed.Bookings, seed.Jobs} {
		for i := range list {
			if err := validateBooking(&list[i], providers.seen); err != nil {
				return err
			}
			if err := bookings.add(list[i].ID); err != nil {
				return err
			}
		}
	}

	packages := newUniqueIDs(ErrInvalidPackage)
	for i := range seed.Packages {
		p := &seed.Packages[i]
		if err := validatePackage(p); err != nil {
			return err
		}
		if err := packages.add(p.ID); err != nil {
			return err
		}
	}
	return nil
}
