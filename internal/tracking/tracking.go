// Package tracking simulates a provider travelling to the customer.
package tracking

import "math"

// Status is where the provider is relative to the customer.
type Status string

// Tracking statuses, in the order they occur.
const (
	StatusOnWay   Status = "on-way"
	StatusNearby  Status = "nearby"
	StatusArrived Status = "arrived"
)

// Label is the status as shown to the customer.
func (s Status) Label() string {
	switch s {
	case StatusNearby:
		return "Almost There"
	case StatusArrived:
		return "Arrived"
	default:
		return "On the Way"
	}
}

// Thresholds in minutes of remaining ETA.
const (
	nearbyETA  = 5
	arrivedETA = 1
)

// distanceStep is how many miles the provider covers per tick.
const distanceStep = 0.2

// State is a snapshot of the simulated trip.
type State struct {
	ProviderName    string
	Service         string
	CurrentLocation string
	Phone           string
	Status          Status
	DistanceMiles   float64
	ETAMinutes      int
	startETA        int
}

// Initial is the trip every tracking session starts from.
func Initial() State {
	return State{
		ProviderName:    "Mike Johnson",
		Service:         "Plumbing Repair",
		Status:          StatusOnWay,
		ETAMinutes:      15,
		DistanceMiles:   2.3,
		CurrentLocation: "Main St & 5th Ave",
		Phone:           "(555) 123-4567",
		startETA:        15,
	}
}

// Advance moves the simulation forward one tick. Once the ETA reaches one
// minute the state no longer changes.
func Advance(s State) State {
	if s.ETAMinutes <= arrivedETA {
		return s
	}

	s.ETAMinutes--
	s.DistanceMiles = math.Max(0, math.Round((s.DistanceMiles-distanceStep)*10)/10)

	switch {
	case s.ETAMinutes <= arrivedETA && s.Status == StatusNearby:
		s.Status = StatusArrived
	case s.ETAMinutes <= nearbyETA && s.Status == StatusOnWay:
		s.Status = StatusNearby
	}
	return s
}

// Done reports whether the provider has arrived.
func (s State) Done() bool {
	return s.Status == StatusArrived
}

// Progress is the fraction of the trip covered, for progress bars.
func (s State) Progress() float64 {
	if s.Done() {
		return 1
	}
	start := s.startETA
	if start <= arrivedETA {
		return 0
	}
	p := float64(start-s.ETAMinutes) / float64(start-arrivedETA)
	return math.Min(1, math.Max(0, p))
}
