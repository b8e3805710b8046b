package components

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/Veraticus/homeserve/internal/common"
	"github.com/Veraticus/homeserve/internal/model"
)

func testProviders() []model.ServiceProvider {
	return []model.ServiceProvider{
		{ID: "1", Name: "Mike Johnson", Service: "Plumbing", Rating: 4.9, ReviewCount: 127, HourlyRate: 85, Location: "Downtown", Distance: 2.3, Availability: "Available Today", Verified: true, Experience: 15, CompletedJobs: 450, Description: "Licensed master plumber.", Specializations: []string{"Emergency Repairs", "Water Heaters"},
			Certifications: []model.Certification{{ID: "c1", Name: "Master Plumber License", Issuer: "State Board", Year: "2015"}}},
		{ID: "2", Name: "Sarah Williams", Service: "Electrical", Rating: 4.8, ReviewCount: 98, HourlyRate: 95, Location: "Westside", Distance: 3.1, Availability: "Available Tomorrow", Verified: true, Experience: 12, CompletedJobs: 380, Description: "Certified electrician."},
		{ID: "3", Name: "Clean Pro Services", Service: "Cleaning", Rating: 4.7, ReviewCount: 215, HourlyRate: 65, Location: "Citywide", Distance: 1.5, Availability: "Available Today", Experience: 8, CompletedJobs: 890, Description: "Residential cleaning."},
		{ID: "6", Name: "Fix-It-All Handyman", Service: "Handyman", Rating: 4.6, ReviewCount: 73, HourlyRate: 60, Location: "Eastside", Distance: 4.2, Availability: "Available This Week", Experience: 10, CompletedJobs: 320, Description: "General repairs."},
	}
}

func testReviews() []model.Review {
	return []model.Review{
		{ID: "r1", ProviderID: "1", UserName: "Jennifer Smith", Rating: 5, Comment: "Fixed our leak fast.", Date: time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC), Verified: true},
		{ID: "r2", ProviderID: "1", UserName: "Robert Chen", Rating: 5, Comment: "Great work.", Date: time.Date(2024, 11, 8, 0, 0, 0, 0, time.UTC), Verified: true},
		{ID: "r3", ProviderID: "1", UserName: "Lisa Anderson", Rating: 4, Comment: "Good service.", Date: time.Date(2024, 10, 28, 0, 0, 0, 0, time.UTC)},
	}
}

func testBookings() []model.Booking {
	return []model.Booking{
		{ID: "b1", ProviderID: "1", ProviderName: "Mike Johnson", Service: "Plumbing", Date: time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC), Time: "10:00 AM", Status: model.BookingConfirmed, Price: 170, Kind: model.KindCustomer},
		{ID: "b2", ProviderID: "3", ProviderName: "Clean Pro Services", Service: "Cleaning", Date: time.Date(2024, 12, 8, 0, 0, 0, 0, time.UTC), Time: "2:00 PM", Status: model.BookingPending, Price: 260, Kind: model.KindCustomer},
		{ID: "b3", ProviderID: "2", ProviderName: "Sarah Williams", Service: "Electrical", Date: time.Date(2024, 11, 25, 0, 0, 0, 0, time.UTC), Time: "11:00 AM", Status: model.BookingCompleted, Price: 285, Kind: model.KindCustomer},
	}
}

func testJobs() []model.Booking {
	return []model.Booking{
		{ID: "j1", CustomerName: "Jennifer Smith", Service: "Kitchen Sink Repair", Date: time.Date(2024, 12, 4, 0, 0, 0, 0, time.UTC), Time: "9:00 AM", Status: model.BookingConfirmed, Price: 150, Kind: model.KindProvider},
		{ID: "j3", CustomerName: "Susan Lee", Service: "Bathroom Faucet Replacement", Date: time.Date(2024, 12, 6, 0, 0, 0, 0, time.UTC), Time: "2:00 PM", Status: model.BookingPending, Price: 180, Kind: model.KindProvider},
		{ID: "j4", CustomerName: "Robert Chen", Service: "Complete Bathroom Renovation", Date: time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC), Time: "8:00 AM", Status: model.BookingCompleted, Price: 2400, Kind: model.KindProvider},
	}
}

func testPackages() []model.ServicePackage {
	return []model.ServicePackage{
		{ID: "1", Name: "Complete Home Clean", Type: model.PackageBundle, Services: []string{"Deep House Cleaning"}, RegularPrice: 450, DiscountedPrice: 350, Savings: 100, Popular: true},
		{ID: "3", Name: "Monthly Cleaning Subscription", Type: model.PackageSubscription, Frequency: "Monthly", RegularPrice: 200, DiscountedPrice: 160, Savings: 40},
		{ID: "5", Name: "Neighborhood Group Clean", Type: model.PackageGroup, RegularPrice: 400, DiscountedPrice: 300, Savings: 100},
		{ID: "6", Name: "Emergency Home Repair", Type: model.PackageEmergency, RegularPrice: 300, DiscountedPrice: 250, Savings: 50},
	}
}

// captureLogs routes the default logger into a buffer for the rest of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	common.SetupLogger(&buf, slog.LevelDebug, "console")
	return &buf
}
