package components

import (
	"math/rand"
	"testing"

	"github.com/Veraticus/homeserve/internal/quote"
	"github.com/Veraticus/homeserve/internal/tui/themes"
	tuitest "github.com/Veraticus/homeserve/internal/tui/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuote() QuoteModel {
	return NewQuoteModel(quote.NewEstimator(quote.WithRand(rand.New(rand.NewSource(1)))), themes.Default)
}

// plumbingMedium picks plumbing and a medium property, landing on the last step.
func plumbingMedium(t *testing.T) QuoteModel {
	t.Helper()
	m, _ := tuitest.Drive(newTestQuote(), tuitest.KeyEnter(), tuitest.KeyDown(), tuitest.KeyEnter())
	require.Equal(t, 2, m.Step())
	return m
}

func TestQuoteModel_StandardQuote(t *testing.T) {
	m := plumbingMedium(t)
	assert.Equal(t, "plumbing", m.Inputs().ServiceType)
	assert.Equal(t, "medium", m.Inputs().PropertySize)

	m, _ = m.Update(tuitest.KeyEnter())

	r, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, 170, r.EstimatedPrice)
	assert.Equal(t, 144, r.MinPrice)
	assert.Equal(t, 196, r.MaxPrice)
	assert.Equal(t, "4-8 hours", r.Duration)
	assert.GreaterOrEqual(t, r.NearbyProviders, 5)
	assert.LessOrEqual(t, r.NearbyProviders, 12)

	view := tuitest.Plain(m.View())
	assert.Contains(t, view, "$144 - $196")
	assert.Contains(t, view, "Find Providers at This Price")
}

func TestQuoteModel_UrgencyAndAddOns(t *testing.T) {
	m := plumbingMedium(t)

	// Urgent, then the first add-on.
	m, _ = tuitest.Drive(m, tuitest.KeyDown(), tuitest.KeyPress(" "))
	assert.Equal(t, quote.UrgencyUrgent, m.Inputs().Urgency)

	m, _ = tuitest.Drive(m, tuitest.KeyDown(), tuitest.KeyDown(), tuitest.KeyPress(" "))
	assert.Equal(t, []string{"deep"}, m.Inputs().AddOns)

	m, _ = m.Update(tuitest.KeyPress(" "))
	assert.Empty(t, m.Inputs().AddOns, "space toggles the add-on off again")
	m, _ = m.Update(tuitest.KeyPress(" "))

	m, _ = m.Update(tuitest.KeyEnter())
	r, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, 305, r.EstimatedPrice)
	assert.Equal(t, "2-4 hours", r.Duration)
}

func TestQuoteModel_FindProviders(t *testing.T) {
	m := plumbingMedium(t)
	m, _ = m.Update(tuitest.KeyEnter())

	_, cmd := m.Update(tuitest.KeyEnter())
	msg, ok := tuitest.FindMsg[SearchRequestedMsg](cmd)
	require.True(t, ok)
	assert.Equal(t, "plumbing", msg.Service)
}

func TestQuoteModel_GetAnotherQuote(t *testing.T) {
	m := plumbingMedium(t)
	m, _ = tuitest.Drive(m, tuitest.KeyEnter(), tuitest.KeyRight(), tuitest.KeyEnter())

	assert.Equal(t, 0, m.Step())
	_, ok := m.Result()
	assert.False(t, ok)
	assert.Empty(t, m.Inputs().ServiceType)
	assert.Equal(t, quote.UrgencyStandard, m.Inputs().Urgency)
}

func TestQuoteModel_EscNavigation(t *testing.T) {
	m := plumbingMedium(t)
	m, _ = m.Update(tuitest.KeyEnter())

	m, _ = m.Update(tuitest.KeyEsc())
	_, ok := m.Result()
	assert.False(t, ok, "esc on the result returns to the options")
	assert.Equal(t, 2, m.Step())

	m, _ = tuitest.Drive(m, tuitest.KeyEsc(), tuitest.KeyEsc())
	assert.Equal(t, 0, m.Step())
	assert.Equal(t, "medium", m.Inputs().PropertySize, "selections survive going back")

	_, cmd := m.Update(tuitest.KeyEsc())
	_, ok = tuitest.FindMsg[BackMsg](cmd)
	assert.True(t, ok)
}

func TestQuoteModel_CursorBounds(t *testing.T) {
	m := newTestQuote()
	for n := 0; n < 20; n++ {
		m, _ = m.Update(tuitest.KeyDown())
	}
	m, _ = m.Update(tuitest.KeyEnter())
	assert.Equal(t, "handyman", m.Inputs().ServiceType)

	m, _ = m.Update(tuitest.KeyUp())
	m, _ = m.Update(tuitest.KeyEnter())
	assert.Equal(t, "small", m.Inputs().PropertySize)
}
