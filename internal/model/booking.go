package model

import "time"

// BookingStatus is the lifecycle label of a booking or job.
type BookingStatus string

// Booking status constants.
const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// IsUpcoming reports whether the booking still lies ahead.
func (s BookingStatus) IsUpcoming() bool {
	return s == BookingPending || s == BookingConfirmed
}

// IsPast reports whether the booking is finished one way or another.
func (s BookingStatus) IsPast() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// Label returns the capitalized status for display.
func (s BookingStatus) Label() string {
	if s == "" {
		return ""
	}
	return string(s[0]-'a'+'A') + string(s[1:])
}

// BookingKind distinguishes the customer view of a booking from the provider view.
type BookingKind string

// Booking kinds.
const (
	KindCustomer BookingKind = "customer"
	KindProvider BookingKind = "provider"
)

// Booking is a scheduled service. The same shape is used for a customer's
// bookings and a provider's jobs; CustomerName is only set on jobs.
type Booking struct {
	Date         time.Time
	ID           string
	ProviderID   string
	ProviderName string
	Service      string
	Time         string // Slot label, e.g. "10:00 AM"
	CustomerName string
	Status       BookingStatus
	Kind         BookingKind
	Price        float64
}
