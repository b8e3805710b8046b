package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus(t *testing.T) {
	tests := []struct {
		status   BookingStatus
		label    string
		upcoming bool
		past     bool
	}{
		{BookingPending, "Pending", true, false},
		{BookingConfirmed, "Confirmed", true, false},
		{BookingCompleted, "Completed", false, true},
		{BookingCancelled, "Cancelled", false, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.True(t, tt.status.Valid())
			assert.Equal(t, tt.label, tt.status.Label())
			assert.Equal(t, tt.upcoming, tt.status.IsUpcoming())
			assert.Equal(t, tt.past, tt.status.IsPast())
		})
	}
	assert.False(t, BookingStatus("rescheduled").Valid())
	assert.Empty(t, BookingStatus("").Label())
}

func TestServicePackage(t *testing.T) {
	bundle := ServicePackage{Type: PackageBundle, RegularPrice: 450, Savings: 101}
	assert.Equal(t, 22, bundle.DiscountPercent())
	assert.Equal(t, "Bundle", bundle.Badge())
	assert.Equal(t, "Book Package", bundle.CallToAction())

	sub := ServicePackage{Type: PackageSubscription, Frequency: "Monthly", RegularPrice: 260, Savings: 61}
	assert.Equal(t, 23, sub.DiscountPercent())
	assert.Equal(t, "Monthly", sub.Badge())
	assert.Equal(t, "Subscribe Now", sub.CallToAction())

	assert.Equal(t, 0, ServicePackage{}.DiscountPercent())
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"", RoleNone, true},
		{"none", RoleNone, true},
		{"Customer", RoleCustomer, true},
		{" provider ", RoleProvider, true},
		{"admin", RoleNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestApplicationFullName(t *testing.T) {
	a := ProviderApplication{FirstName: "Jo", LastName: "Ng"}
	assert.Equal(t, "Jo Ng", a.FullName())
	assert.Equal(t, "Jo", ProviderApplication{FirstName: "Jo"}.FullName())
}
