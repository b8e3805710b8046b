package components

import (
	"testing"

	"github.com/Veraticus/homeserve/internal/model"
	"github.com/Veraticus/homeserve/internal/tui/themes"
	tuitest "github.com/Veraticus/homeserve/internal/tui/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingIDs(bookings []model.Booking) []string {
	ids := make([]string, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
	}
	return ids
}

func TestDashboardModel_CustomerTabs(t *testing.T) {
	m := NewCustomerDashboard(testBookings(), testProviders(), themes.Default)
	m.Resize(140, 40)

	assert.Equal(t, 0, m.Tab())
	assert.Equal(t, []string{"b1", "b2"}, bookingIDs(m.Listed()))

	view := tuitest.Plain(m.View())
	assert.Contains(t, view, "My Bookings")
	assert.Contains(t, view, "Upcoming (2)")
	assert.Contains(t, view, "Past (1)")
	assert.Contains(t, view, "Total Spent")
	assert.Contains(t, view, "$715")
	assert.Contains(t, view, "Avg Rating")
	assert.Contains(t, view, "4.8 ★")
	assert.NotContains(t, view, "Total Bookings")
	assert.Contains(t, view, "Reschedule", "confirmed booking actions")

	m, _ = m.Update(tuitest.KeyTab())
	assert.Equal(t, 1, m.Tab())
	assert.Equal(t, []string{"b3"}, bookingIDs(m.Listed()))
	assert.Contains(t, tuitest.Plain(m.View()), "Leave Review")

	m, _ = m.Update(tuitest.KeyLeft())
	assert.Equal(t, 0, m.Tab())
}

func TestDashboardModel_ProviderStats(t *testing.T) {
	m := NewProviderDashboard(testJobs(), 4.9, themes.Default)
	m.Resize(140, 40)

	view := tuitest.Plain(m.View())
	for _, want := range []string{
		"Provider Dashboard",
		"Upcoming (2)",
		"Completed (1)",
		"Total Earnings",
		"$2,400",
		"4.9 ★",
		"Customer",
		"Jennifer Smith",
	} {
		assert.Contains(t, view, want)
	}
	assert.Equal(t, []string{"j1", "j3"}, bookingIDs(m.Listed()))
}

func TestDashboardModel_NavigateAndBack(t *testing.T) {
	m := NewProviderDashboard(testJobs(), 4.9, themes.Default)
	m.Resize(140, 40)

	m, _ = m.Update(tuitest.KeyDown())
	assert.Contains(t, tuitest.Plain(m.View()), "Accept", "pending job selected")

	_, cmd := m.Update(tuitest.KeyEsc())
	_, ok := tuitest.FindMsg[BackMsg](cmd)
	require.True(t, ok)
}

func TestDashboardModel_EmptyTab(t *testing.T) {
	m := NewCustomerDashboard(testBookings()[2:], testProviders(), themes.Default)

	assert.Empty(t, m.Listed())
	assert.Contains(t, tuitest.Plain(m.View()), "No upcoming bookings.")
}
