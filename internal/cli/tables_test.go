package cli

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/Veraticus/homeserve/internal/model"
	"github.com/Veraticus/homeserve/internal/quote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProviders() []model.ServiceProvider {
	return []model.ServiceProvider{
		{ID: "1", Name: "Mike Johnson", Service: "Plumbing", Rating: 4.9, ReviewCount: 127, HourlyRate: 85, Distance: 2.3, Availability: "Available Today", Verified: true},
		{ID: "6", Name: "Fix-It-All", Service: "Handyman", Rating: 4.5, ReviewCount: 64, HourlyRate: 60, Distance: 1.2, Availability: "Next Week"},
	}
}

func testBookings() []model.Booking {
	day := func(d int) time.Time { return time.Date(2024, 12, d, 0, 0, 0, 0, time.UTC) }
	return []model.Booking{
		{ID: "b1", Date: day(10), Time: "10:00 AM", Service: "Plumbing", ProviderID: "1", ProviderName: "Mike Johnson", CustomerName: "Emily Chen", Status: model.BookingConfirmed, Price: 170},
		{ID: "b2", Date: day(2), Time: "2:00 PM", Service: "Cleaning", ProviderID: "6", ProviderName: "Clean Pro", CustomerName: "Tom Baker", Status: model.BookingCompleted, Price: 1200},
		{ID: "b3", Date: day(15), Time: "9:00 AM", Service: "Painting", ProviderID: "1", ProviderName: "David Martinez", CustomerName: "Ana Ruiz", Status: model.BookingPending, Price: 280},
	}
}

func TestWriteProviders(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProviders(&buf, testProviders()))

	out := buf.String()
	assert.Contains(t, out, "Mike Johnson "+SuccessIcon)
	assert.Contains(t, out, "$85/hr")
	assert.Contains(t, out, "2.3 mi")
	assert.Contains(t, out, "4.9 "+StarIcon)
	assert.Contains(t, out, "Next Week")
	assert.NotContains(t, out, "Fix-It-All "+SuccessIcon)
}

func TestWriteProviders_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProviders(&buf, nil))
	assert.Contains(t, buf.String(), "No providers match")
}

func TestWriteQuote(t *testing.T) {
	in := quote.Inputs{
		ServiceType:  "cleaning",
		PropertySize: "large",
		Urgency:      quote.UrgencyEmergency,
	}
	r, ok := quote.NewEstimator(quote.WithRand(rand.New(rand.NewSource(1)))).Estimate(in)
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, WriteQuote(&buf, in, r))

	out := buf.String()
	assert.Contains(t, out, "Your Estimated Quote")
	assert.Contains(t, out, "House Cleaning")
	assert.Contains(t, out, "Large (2000-3000 sq ft)")
	assert.Contains(t, out, "$338")
	assert.Contains(t, out, "$287 - $389")
	assert.Contains(t, out, "Add-ons:    none")
}

func TestWriteQuote_AddOns(t *testing.T) {
	in := quote.Inputs{ServiceType: "plumbing", PropertySize: "medium", Urgency: quote.UrgencyStandard, AddOns: []string{"deep", "eco"}}
	r, ok := quote.NewEstimator(quote.WithRand(rand.New(rand.NewSource(1)))).Estimate(in)
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, WriteQuote(&buf, in, r))
	assert.Contains(t, buf.String(), "Deep Service, Eco-Friendly Products")
}

func TestWritePackages(t *testing.T) {
	packages := []model.ServicePackage{
		{ID: "pkg1", Name: "Complete Home Clean", Type: model.PackageBundle, Services: []string{"Deep Cleaning", "Window Washing"}, RegularPrice: 450, DiscountedPrice: 350, Savings: 100, Popular: true},
		{ID: "pkg2", Name: "Monthly Lawn Care", Type: model.PackageSubscription, Frequency: "Monthly", Services: []string{"Mowing"}, RegularPrice: 200, DiscountedPrice: 160, Savings: 40},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePackages(&buf, packages))

	out := buf.String()
	assert.Contains(t, out, "Complete Home Clean "+StarIcon)
	assert.Contains(t, out, "$100 (22%)")
	assert.Contains(t, out, "Monthly")
	assert.Contains(t, out, "Deep Cleaning, Window Washing")
}

func TestWriteBookings(t *testing.T) {
	tests := []struct {
		name     string
		kind     model.BookingKind
		expected []string
		missing  []string
	}{
		{
			name:     "customer bookings",
			kind:     model.KindCustomer,
			expected: []string{"2 upcoming · 1 completed · $1,650 spent · 4.7 ★ avg", "Provider", "Mike Johnson", "Dec 10, 2024", "Confirmed"},
			missing:  []string{"Emily Chen"},
		},
		{
			name:     "provider jobs",
			kind:     model.KindProvider,
			expected: []string{"1 completed · $1,200 earned · 4.9 ★ · 2 upcoming", "Customer", "Emily Chen", "Pending"},
			missing:  []string{"Clean Pro"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteBookings(&buf, tt.kind, testBookings(), testProviders()))

			out := buf.String()
			for _, s := range tt.expected {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.missing {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestWriteBookings_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBookings(&buf, model.KindCustomer, nil, nil))
	assert.Contains(t, buf.String(), "0 upcoming · 0 completed · $0 spent")
	assert.Contains(t, buf.String(), "No bookings yet.")
}
