package wizard

import (
	"strings"

	"github.com/Veraticus/homeserve/internal/model"
	"github.com/Veraticus/homeserve/internal/quote"
)

func filled(s string) bool { return strings.TrimSpace(s) != "" }

// NewQuote builds the three-step quote estimator flow.
func NewQuote() Wizard[quote.Inputs] {
	return New(
		Step[quote.Inputs]{Title: "Service", Valid: func(in quote.Inputs) bool {
			_, ok := quote.LookupService(in.ServiceType)
			return ok
		}},
		Step[quote.Inputs]{Title: "Property", Valid: func(in quote.Inputs) bool {
			_, ok := quote.LookupSize(in.PropertySize)
			return ok
		}},
		Step[quote.Inputs]{Title: "Options"},
	)
}

// Booking duration bounds in hours.
const (
	MinBookingHours = 2
	MaxBookingHours = 8
)

// TimeSlots are the bookable start times.
var TimeSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

// BookingForm is the data collected by the booking flow.
type BookingForm struct {
	Date           string
	TimeSlot       string
	Description    string
	CardNumber     string
	Expiry         string
	CVV            string
	CardholderName string
	HourlyRate     float64
	Hours          int
}

// NewBookingForm starts a form for a provider at the minimum duration.
func NewBookingForm(hourlyRate float64) BookingForm {
	return BookingForm{HourlyRate: hourlyRate, Hours: MinBookingHours}
}

// Total is the hourly rate times the booked hours.
func (f BookingForm) Total() float64 {
	return f.HourlyRate * float64(f.Hours)
}

// SetHours clamps h to the bookable range.
func (f BookingForm) SetHours(h int) BookingForm {
	f.Hours = min(MaxBookingHours, max(MinBookingHours, h))
	return f
}

// NewBooking builds the details then payment flow. Submitting the payment
// step shows the confirmation.
func NewBooking() Wizard[BookingForm] {
	return New(
		Step[BookingForm]{Title: "Book Service", Valid: func(f BookingForm) bool {
			return filled(f.Date) && filled(f.TimeSlot)
		}},
		Step[BookingForm]{Title: "Payment Details", Valid: func(f BookingForm) bool {
			return filled(f.CardNumber) && filled(f.Expiry) && filled(f.CVV) && filled(f.CardholderName)
		}},
	)
}

// ServiceCategories are the categories a new provider can apply under.
var ServiceCategories = []string{
	"Plumbing", "Electrical", "Cleaning", "Landscaping", "Painting",
	"Handyman", "HVAC", "Carpentry", "Roofing", "Moving",
}

// Weekdays are the availability choices in display order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// NewApplication builds the six-step provider onboarding flow.
func NewApplication() Wizard[model.ProviderApplication] {
	type app = model.ProviderApplication
	return New(
		Step[app]{Title: "Personal", Valid: func(a app) bool {
			return filled(a.FirstName) && filled(a.LastName) && filled(a.Email) && filled(a.Phone)
		}},
		Step[app]{Title: "Services", Valid: func(a app) bool {
			return filled(a.ServiceCategory) && len(a.Specializations) > 0 && filled(a.Description)
		}},
		Step[app]{Title: "Pricing", Valid: func(a app) bool {
			return filled(a.HourlyRate) && len(a.Availability) > 0
		}},
		Step[app]{Title: "Portfolio"},
		Step[app]{Title: "Verification", Valid: func(a app) bool {
			return a.BackgroundCheckConsent
		}},
		Step[app]{Title: "Payment"},
	)
}
