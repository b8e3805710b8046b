// Package search filters and sorts the provider list shown on the browse screen.
package search

import (
	"slices"
	"strings"

	"github.com/Veraticus/homeserve/internal/common"
	"github.com/Veraticus/homeserve/internal/model"
	"golang.org/x/text/cases"
)

// SortKey selects the ordering of filtered results.
type SortKey string

// Sort keys.
const (
	SortRating   SortKey = "rating"
	SortPrice    SortKey = "price"
	SortDistance SortKey = "distance"
)

// SortKeys lists every sort key in display order.
func SortKeys() []SortKey {
	return []SortKey{SortRating, SortPrice, SortDistance}
}

// Label is the human-readable name of the sort key.
func (k SortKey) Label() string {
	switch k {
	case SortPrice:
		return "Lowest Price"
	case SortDistance:
		return "Nearest"
	default:
		return "Highest Rated"
	}
}

// ParseSortKey converts user input into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortKeys(), k) {
		return k, nil
	}
	return SortRating, common.InvalidInput("sort key", s, []string{"rating", "price", "distance"})
}

// Price slider bounds and rating presets on the browse screen.
const (
	PriceFloor   = 50.0
	PriceCeiling = 150.0
	PriceStep    = 5.0
)

// RatingPresets are the minimum-rating choices, strictest first. Zero means any rating.
var RatingPresets = []float64{4.5, 4.0, 3.5, 0}

// Criteria is everything the browse screen filters and sorts on.
type Criteria struct {
	Service       string
	Query         string
	SortBy        SortKey
	MaxHourlyRate float64
	MinRating     float64
}

// DefaultCriteria returns the browse screen's initial criteria.
func DefaultCriteria() Criteria {
	return Criteria{
		MaxHourlyRate: PriceCeiling,
		MinRating:     0,
		SortBy:        SortRating,
	}
}

// normalize applies Unicode case folding, so "RAMÍREZ" matches "Ramírez" and
// "STRASSE" matches "Straße". Accents and whitespace are kept as typed.
func normalize(s string) string {
	return cases.Fold().String(s)
}

// Filter returns the providers matching c, ordered by c.SortBy. The input
// slice is never modified and ties keep their input order.
func Filter(providers []model.ServiceProvider, c Criteria) []model.ServiceProvider {
	service := normalize(c.Service)
	query := normalize(c.Query)

	out := make([]model.ServiceProvider, 0, len(providers))
	for _, p := range providers {
		if service != "" && !strings.Contains(normalize(p.Service), service) {
			continue
		}
		if query != "" &&
			!strings.Contains(normalize(p.Name), query) &&
			!strings.Contains(normalize(p.Service), query) &&
			!strings.Contains(normalize(p.Location), query) {
			continue
		}
		if p.HourlyRate > c.MaxHourlyRate {
			continue
		}
		if p.Rating < c.MinRating {
			continue
		}
		out = append(out, p)
	}

	slices.SortStableFunc(out, compareBy(c.SortBy))
	return out
}

func compareBy(key SortKey) func(a, b model.ServiceProvider) int {
	switch key {
	case SortPrice:
		return func(a, b model.ServiceProvider) int { return cmpFloat(a.HourlyRate, b.HourlyRate) }
	case SortDistance:
		return func(a, b model.ServiceProvider) int { return cmpFloat(a.Distance, b.Distance) }
	default:
		return func(a, b model.ServiceProvider) int { return cmpFloat(b.Rating, a.Rating) }
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// IsDefault reports whether c filters nothing beyond the browse defaults.
func (c Criteria) IsDefault() bool {
	return c.Service == "" && c.Query == "" && c.MaxHourlyRate >= PriceCeiling && c.MinRating == 0
}

// Clear resets every filter but keeps the sort order.
func (c Criteria) Clear() Criteria {
	d := DefaultCriteria()
	d.SortBy = c.SortBy
	return d
}

// RaisePrice moves the price cap one step up, bounded by the slider range.
// A cap already at or above the ceiling is left alone.
func (c Criteria) RaisePrice() Criteria {
	if c.MaxHourlyRate >= PriceCeiling {
		return c
	}
	c.MaxHourlyRate = min(PriceCeiling, max(PriceFloor, c.MaxHourlyRate+PriceStep))
	return c
}

// LowerPrice moves the price cap one step down, bounded by the slider range.
// A cap already at or below the floor is left alone.
func (c Criteria) LowerPrice() Criteria {
	if c.MaxHourlyRate <= PriceFloor {
		return c
	}
	c.MaxHourlyRate = max(PriceFloor, min(PriceCeiling, c.MaxHourlyRate-PriceStep))
	return c
}

// NextRating cycles the minimum rating through RatingPresets.
func (c Criteria) NextRating() Criteria {
	i := slices.Index(RatingPresets, c.MinRating)
	c.MinRating = RatingPresets[(i+1)%len(RatingPresets)]
	return c
}

// NextSort cycles the sort key.
func (c Criteria) NextSort() Criteria {
	keys := SortKeys()
	i := slices.Index(keys, c.SortBy)
	c.SortBy = keys[(i+1)%len(keys)]
	return c
}
