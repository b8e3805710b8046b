package viewmodel

import "github.com/Veraticus/homeserve/internal/model"

// CustomerStats are the figures across the top of the customer dashboard.
type CustomerStats struct {
	Upcoming   int
	Completed  int
	TotalSpent float64
	AvgRating  float64
}

// NewCustomerStats derives the customer dashboard figures. Total spent adds up
// every booking. The average rating is taken over the distinct providers
// booked, looked up in providers; providers missing from it are skipped.
func NewCustomerStats(bookings []model.Booking, providers []model.ServiceProvider) CustomerStats {
	var s CustomerStats
	seen := make(map[string]bool)
	var sum float64
	var rated int
	for _, b := range bookings {
		s.TotalSpent += b.Price
		switch {
		case b.Status == model.BookingCompleted:
			s.Completed++
		case b.Status.IsUpcoming():
			s.Upcoming++
		}

		if seen[b.ProviderID] {
			continue
		}
		seen[b.ProviderID] = true
		if p, ok := findProvider(providers, b.ProviderID); ok {
			sum += p.Rating
			rated++
		}
	}
	if rated > 0 {
		s.AvgRating = sum / float64(rated)
	}
	return s
}

// JobsRating is the rating of the provider the jobs belong to, or 0 when none
// of them can be found.
func JobsRating(jobs []model.Booking, providers []model.ServiceProvider) float64 {
	for _, j := range jobs {
		if p, ok := findProvider(providers, j.ProviderID); ok {
			return p.Rating
		}
	}
	return 0
}

func findProvider(providers []model.ServiceProvider, id string) (model.ServiceProvider, bool) {
	for _, p := range providers {
		if p.ID == id {
			return p, true
		}
	}
	return model.ServiceProvider{}, false
}

// ProviderStats are the figures across the top of the provider dashboard.
type ProviderStats struct {
	CompletedJobs int
	Upcoming      int
	Earnings      float64
	Rating        float64
}

// NewProviderStats derives the provider dashboard figures. Earnings count
// completed jobs only.
func NewProviderStats(jobs []model.Booking, rating float64) ProviderStats {
	s := ProviderStats{Rating: rating}
	for _, j := range jobs {
		switch {
		case j.Status == model.BookingCompleted:
			s.CompletedJobs++
			s.Earnings += j.Price
		case j.Status.IsUpcoming():
			s.Upcoming++
		}
	}
	return s
}

// SplitBookings separates upcoming from past bookings, keeping order.
func SplitBookings(bookings []model.Booking) (upcoming, past []model.Booking) {
	for _, b := range bookings {
		if b.Status.IsUpcoming() {
			upcoming = append(upcoming, b)
		} else {
			past = append(past, b)
		}
	}
	return upcoming, past
}

// Actions lists the buttons shown on a booking card. They are labels only;
// none of them changes the booking.
func Actions(b model.Booking) []string {
	if b.Kind == model.KindProvider {
		switch b.Status {
		case model.BookingPending:
			return []string{"Accept", "Decline"}
		case model.BookingConfirmed:
			return []string{"View Details", "Contact Customer", "Mark Complete"}
		case model.BookingCompleted:
			return []string{"View Receipt", "Request Review"}
		}
		return nil
	}

	switch b.Status {
	case model.BookingConfirmed:
		return []string{"Reschedule", "Cancel", "Message"}
	case model.BookingPending:
		return []string{"Edit", "Cancel"}
	case model.BookingCompleted:
		return []string{"Leave Review", "Book Again"}
	}
	return nil
}
