// Package quote estimates the price range of a job from a few property details.
package quote

import (
	"math"
	"math/rand"
	"time"

	"github.com/Veraticus/homeserve/internal/common"
)

// Urgency is how soon the customer needs the work done.
type Urgency string

// Urgency levels.
const (
	UrgencyStandard  Urgency = "standard"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

// Option is one choice in a quote option table.
type Option struct {
	ID    string
	Name  string
	Hint  string
	Value float64 // Base rate, multiplier, or flat cost depending on the table
}

var serviceTypes = []Option{
	{ID: "plumbing", Name: "Plumbing", Hint: "Repairs, installs, drains", Value: 85},
	{ID: "electrical", Name: "Electrical", Hint: "Wiring, panels, lighting", Value: 95},
	{ID: "cleaning", Name: "House Cleaning", Hint: "Regular or deep clean", Value: 65},
	{ID: "landscaping", Name: "Landscaping", Hint: "Lawn, garden, trees", Value: 75},
	{ID: "painting", Name: "Painting", Hint: "Interior and exterior", Value: 70},
	{ID: "handyman", Name: "Handyman", Hint: "General repairs", Value: 60},
}

var propertySizes = []Option{
	{ID: "small", Name: "Small (< 1000 sq ft)", Value: 0.8},
	{ID: "medium", Name: "Medium (1000-2000 sq ft)", Value: 1.0},
	{ID: "large", Name: "Large (2000-3000 sq ft)", Value: 1.3},
	{ID: "xlarge", Name: "Extra Large (> 3000 sq ft)", Value: 1.6},
}

var urgencies = []Option{
	{ID: string(UrgencyStandard), Name: "Standard", Hint: "Within a week", Value: 1.0},
	{ID: string(UrgencyUrgent), Name: "Urgent", Hint: "Within 48 hours", Value: 1.5},
	{ID: string(UrgencyEmergency), Name: "Emergency", Hint: "Same day", Value: 2.0},
}

var addOns = []Option{
	{ID: "deep", Name: "Deep Service", Value: 50},
	{ID: "eco", Name: "Eco-Friendly Products", Value: 30},
	{ID: "emergency", Name: "Emergency/Same Day", Value: 100},
	{ID: "weekend", Name: "Weekend Service", Value: 40},
}

// ServiceTypes lists the quotable services in display order.
func ServiceTypes() []Option { return append([]Option(nil), serviceTypes...) }

// PropertySizes lists the property sizes in display order.
func PropertySizes() []Option { return append([]Option(nil), propertySizes...) }

// Urgencies lists the urgency levels in display order.
func Urgencies() []Option { return append([]Option(nil), urgencies...) }

// AddOns lists the optional add-ons in display order.
func AddOns() []Option { return append([]Option(nil), addOns...) }

func lookup(table []Option, id string) (Option, bool) {
	for _, o := range table {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// LookupService returns the service option with the given ID.
func LookupService(id string) (Option, bool) { return lookup(serviceTypes, id) }

// LookupSize returns the property size option with the given ID.
func LookupSize(id string) (Option, bool) { return lookup(propertySizes, id) }

// LookupAddOn returns the add-on with the given ID.
func LookupAddOn(id string) (Option, bool) { return lookup(addOns, id) }

// ParseUrgency converts user input into an Urgency. Empty input is standard.
func ParseUrgency(s string) (Urgency, error) {
	if s == "" {
		return UrgencyStandard, nil
	}
	if _, ok := lookup(urgencies, s); ok {
		return Urgency(s), nil
	}
	return UrgencyStandard, common.InvalidInput("urgency", s, optionIDs(urgencies))
}

// ServiceIDs returns the IDs accepted for Inputs.ServiceType.
func ServiceIDs() []string { return optionIDs(serviceTypes) }

// SizeIDs returns the IDs accepted for Inputs.PropertySize.
func SizeIDs() []string { return optionIDs(propertySizes) }

// AddOnIDs returns the IDs accepted in Inputs.AddOns.
func AddOnIDs() []string { return optionIDs(addOns) }

func optionIDs(table []Option) []string {
	ids := make([]string, len(table))
	for i, o := range table {
		ids[i] = o.ID
	}
	return ids
}

// Inputs are the customer's answers to the quote wizard.
type Inputs struct {
	ServiceType  string
	PropertySize string
	Urgency      Urgency
	AddOns       []string
}

// HasAddOn reports whether id is selected.
func (in Inputs) HasAddOn(id string) bool {
	for _, a := range in.AddOns {
		if a == id {
			return true
		}
	}
	return false
}

// ToggleAddOn selects or deselects an add-on.
func (in Inputs) ToggleAddOn(id string) Inputs {
	out := make([]string, 0, len(in.AddOns)+1)
	found := false
	for _, a := range in.AddOns {
		if a == id {
			found = true
			continue
		}
		out = append(out, a)
	}
	if !found {
		out = append(out, id)
	}
	in.AddOns = out
	return in
}

// Result is a computed price range.
type Result struct {
	Duration        string
	ServiceType     string
	MinPrice        int
	MaxPrice        int
	EstimatedPrice  int
	NearbyProviders int
}

// Provider count bounds for the display-only nearby figure.
const (
	minNearby = 5
	maxNearby = 12
)

// Estimator computes quotes. The zero value is not usable; call NewEstimator.
type Estimator struct {
	rng *rand.Rand
}

// EstimatorOption configures an Estimator.
type EstimatorOption func(*Estimator)

// WithRand sets the random source used for the nearby provider count.
func WithRand(r *rand.Rand) EstimatorOption {
	return func(e *Estimator) {
		e.rng = r
	}
}

// NewEstimator returns an Estimator seeded from the clock unless WithRand is given.
func NewEstimator(opts ...EstimatorOption) *Estimator {
	e := &Estimator{}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // display only
	}
	return e
}

var defaultEstimator = NewEstimator()

// Estimate computes a quote with the package's default estimator.
func Estimate(in Inputs) (Result, bool) {
	return defaultEstimator.Estimate(in)
}

// Estimate computes a quote. It returns false when the service type or
// property size is missing or unknown.
func (e *Estimator) Estimate(in Inputs) (Result, bool) {
	service, ok := lookup(serviceTypes, in.ServiceType)
	if !ok {
		return Result{}, false
	}
	size, ok := lookup(propertySizes, in.PropertySize)
	if !ok {
		return Result{}, false
	}

	urgency := in.Urgency
	if urgency == "" {
		urgency = UrgencyStandard
	}
	multiplier := 1.0
	if u, ok := lookup(urgencies, string(urgency)); ok {
		multiplier = u.Value
	}

	base := service.Value * 2
	base *= size.Value
	base *= multiplier

	extras := 0.0
	for _, id := range in.AddOns {
		if a, ok := lookup(addOns, id); ok {
			extras += a.Value
		}
	}

	total := base + extras

	return Result{
		ServiceType:     service.ID,
		MinPrice:        int(math.Floor(total * 0.85)),
		MaxPrice:        int(math.Ceil(total * 1.15)),
		EstimatedPrice:  int(math.Round(total)),
		Duration:        durationFor(urgency),
		NearbyProviders: minNearby + e.rng.Intn(maxNearby-minNearby+1),
	}, true
}

func durationFor(u Urgency) string {
	switch u {
	case UrgencyEmergency:
		return "1-2 hours"
	case UrgencyUrgent:
		return "2-4 hours"
	default:
		return "4-8 hours"
	}
}
