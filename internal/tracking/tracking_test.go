package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitial(t *testing.T) {
	s := Initial()
	assert.Equal(t, "Mike Johnson", s.ProviderName)
	assert.Equal(t, "Plumbing Repair", s.Service)
	assert.Equal(t, StatusOnWay, s.Status)
	assert.Equal(t, 15, s.ETAMinutes)
	assert.InDelta(t, 2.3, s.DistanceMiles, 0.0001)
	assert.Equal(t, "Main St & 5th Ave", s.CurrentLocation)
	assert.Equal(t, "(555) 123-4567", s.Phone)
	assert.False(t, s.Done())
	assert.InDelta(t, 0.0, s.Progress(), 0.0001)
}

func TestAdvanceTimeline(t *testing.T) {
	s := Initial()

	s = Advance(s)
	assert.Equal(t, 14, s.ETAMinutes)
	assert.InDelta(t, 2.1, s.DistanceMiles, 0.0001)
	assert.Equal(t, StatusOnWay, s.Status)

	for s.ETAMinutes > 6 {
		s = Advance(s)
	}
	assert.Equal(t, StatusOnWay, s.Status)

	s = Advance(s)
	assert.Equal(t, 5, s.ETAMinutes)
	assert.Equal(t, StatusNearby, s.Status)

	for s.ETAMinutes > 2 {
		s = Advance(s)
		assert.Equal(t, StatusNearby, s.Status)
	}

	s = Advance(s)
	assert.Equal(t, 1, s.ETAMinutes)
	assert.Equal(t, StatusArrived, s.Status)
	assert.True(t, s.Done())
	assert.InDelta(t, 1.0, s.Progress(), 0.0001)

	// Fourteen ticks of 0.2 miles from 2.3 bottom out at zero.
	assert.InDelta(t, 0.0, s.DistanceMiles, 0.0001)
}

func TestAdvanceIsTerminalAtArrival(t *testing.T) {
	s := Initial()
	for i := 0; i < 50; i++ {
		s = Advance(s)
	}
	final := s
	assert.Equal(t, final, Advance(final))
}

func TestAdvanceDistanceRoundsToOneDecimal(t *testing.T) {
	s := State{Status: StatusOnWay, ETAMinutes: 10, DistanceMiles: 1.0}
	for i := 0; i < 3; i++ {
		s = Advance(s)
	}
	assert.Equal(t, 0.4, s.DistanceMiles)
}

func TestAdvanceSkipsArrivalFromOnWay(t *testing.T) {
	// A trip that starts inside the nearby window passes through nearby first.
	s := State{Status: StatusOnWay, ETAMinutes: 2, DistanceMiles: 0.3}
	s = Advance(s)
	assert.Equal(t, StatusNearby, s.Status)
	assert.Equal(t, 1, s.ETAMinutes)
	assert.Equal(t, s, Advance(s))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "On the Way", StatusOnWay.Label())
	assert.Equal(t, "Almost There", StatusNearby.Label())
	assert.Equal(t, "Arrived", StatusArrived.Label())
}

func TestTickerSessions(t *testing.T) {
	tk := NewTicker(0)
	assert.Equal(t, DefaultInterval, tk.Interval())
	assert.False(t, tk.Active())
	assert.Nil(t, tk.Next())

	tk, cmd := tk.Start()
	require.NotNil(t, cmd)
	first := tk.Session()
	assert.True(t, tk.Accept(TickMsg{Session: first}))
	assert.NotNil(t, tk.Next())

	tk = tk.Stop()
	assert.False(t, tk.Accept(TickMsg{Session: first}), "stopped ticker drops in-flight ticks")
	assert.Nil(t, tk.Next())

	tk, _ = tk.Start()
	assert.NotEqual(t, first, tk.Session())
	assert.False(t, tk.Accept(TickMsg{Session: first}), "stale session is dropped after restart")
	assert.True(t, tk.Accept(TickMsg{Session: tk.Session()}))
}

func TestTickerCommandCarriesSession(t *testing.T) {
	tk, cmd := NewTicker(time.Millisecond).Start()
	msg := cmd()
	tick, ok := msg.(TickMsg)
	require.True(t, ok)
	assert.Equal(t, tk.Session(), tick.Session)
	assert.True(t, tk.Accept(tick))
}
