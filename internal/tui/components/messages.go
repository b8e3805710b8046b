package components

import (
	"github.com/Veraticus/homeserve/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen identifies one of the top-level views.
type Screen int

// Screens. The booking wizard is a modal over the profile screen rather than
// a screen of its own.
const (
	ScreenHome Screen = iota
	ScreenBrowse
	ScreenProfile
	ScreenCustomerDashboard
	ScreenProviderDashboard
	ScreenPackages
	ScreenQuote
	ScreenTracking
	ScreenBecomeProvider
)

// String returns the screen's command-line name.
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenBrowse:
		return "browse"
	case ScreenProfile:
		return "profile"
	case ScreenCustomerDashboard:
		return "bookings"
	case ScreenProviderDashboard:
		return "jobs"
	case ScreenPackages:
		return "packages"
	case ScreenQuote:
		return "quote"
	case ScreenTracking:
		return "tracking"
	case ScreenBecomeProvider:
		return "become-provider"
	}
	return "unknown"
}

// Screens lists every screen in declaration order.
func Screens() []Screen {
	return []Screen{
		ScreenHome,
		ScreenBrowse,
		ScreenProfile,
		ScreenCustomerDashboard,
		ScreenProviderDashboard,
		ScreenPackages,
		ScreenQuote,
		ScreenTracking,
		ScreenBecomeProvider,
	}
}

// ParseScreen looks a screen up by its command-line name.
func ParseScreen(name string) (Screen, bool) {
	for _, s := range Screens() {
		if s.String() == name {
			return s, true
		}
	}
	return ScreenHome, false
}

// SearchRequestedMsg asks for the browse screen filtered by service and query.
type SearchRequestedMsg struct {
	Service string
	Query   string
}

// ViewProfileMsg asks for a provider's profile.
type ViewProfileMsg struct {
	ProviderID string
}

// NavigateMsg asks the root to switch screens.
type NavigateMsg struct {
	Screen Screen
}

// OpenBookingMsg opens the booking modal for a provider.
type OpenBookingMsg struct {
	Provider model.ServiceProvider
}

// CloseBookingMsg closes the booking modal. ConfirmationID is empty when the
// booking was abandoned.
type CloseBookingMsg struct {
	ConfirmationID string
}

// ApplicationSubmittedMsg reports a submitted provider application.
type ApplicationSubmittedMsg struct {
	ReferenceID string
	Name        string
}

// BackMsg asks the root to leave the current screen.
type BackMsg struct{}

// send wraps msg in a command.
func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
