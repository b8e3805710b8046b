package components

import (
	"testing"

	"github.com/Veraticus/homeserve/internal/tui/themes"
	tuitest "github.com/Veraticus/homeserve/internal/tui/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileModel_View(t *testing.T) {
	m := NewProfileModel(testProviders()[0], testReviews(), themes.Default)
	m.Resize(120, 200)

	view := tuitest.Plain(m.View())
	for _, want := range []string{
		"Mike Johnson",
		"Verified",
		"About",
		"Specializations",
		"Water Heaters",
		"Certifications",
		"Master Plumber License",
		"Reviews",
		"Jennifer Smith",
		"Nov 15, 2024",
	} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "Portfolio")
	assert.True(t, tuitest.ContainsInOrder(view, "Jennifer Smith", "Robert Chen", "Lisa Anderson"))
}

func TestProfileModel_ReviewHistogram(t *testing.T) {
	m := NewProfileModel(testProviders()[0], testReviews(), themes.Default)

	s := m.Summary()
	require.Len(t, s.Histogram, 5)
	assert.Equal(t, 5, s.Histogram[0].Stars)
	assert.InDelta(t, 66.67, s.Histogram[0].Percent, 0.01)
	assert.InDelta(t, 33.33, s.Histogram[1].Percent, 0.01)
	assert.Equal(t, 127, s.ReviewCount)
}

func TestProfileModel_NoReviews(t *testing.T) {
	m := NewProfileModel(testProviders()[1], nil, themes.Default)
	m.Resize(120, 200)

	assert.Contains(t, tuitest.Plain(m.View()), "No reviews yet.")
	for _, bar := range m.Summary().Histogram {
		assert.Zero(t, bar.Percent)
	}
}

func TestProfileModel_BookNowAndBack(t *testing.T) {
	m := NewProfileModel(testProviders()[0], testReviews(), themes.Default)

	_, cmd := m.Update(tuitest.KeyEnter())
	msg, ok := tuitest.FindMsg[OpenBookingMsg](cmd)
	require.True(t, ok)
	assert.Equal(t, "1", msg.Provider.ID)

	_, cmd = m.Update(tuitest.KeyEsc())
	_, ok = tuitest.FindMsg[BackMsg](cmd)
	assert.True(t, ok)
}
