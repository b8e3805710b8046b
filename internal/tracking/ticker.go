package tracking

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is the time between simulation ticks.
const DefaultInterval = 5 * time.Second

// TickMsg advances the simulation. Session identifies the ticker that
// scheduled it so ticks from a cancelled session can be dropped.
type TickMsg struct {
	Time    time.Time
	Session int
}

// Ticker is a cancellable tick handle owned by the tracking screen. Every
// Start opens a new session; Stop closes the current one without opening
// another, so any tick already in flight is ignored when it arrives.
type Ticker struct {
	interval time.Duration
	session  int
	active   bool
}

// NewTicker returns a stopped ticker. A non-positive interval uses DefaultInterval.
func NewTicker(interval time.Duration) Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Ticker{interval: interval}
}

// Interval is the time between ticks.
func (t Ticker) Interval() time.Duration { return t.interval }

// Active reports whether the ticker has an open session.
func (t Ticker) Active() bool { return t.active }

// Session is the current session ID.
func (t Ticker) Session() int { return t.session }

// Start opens a new session and schedules its first tick.
func (t Ticker) Start() (Ticker, tea.Cmd) {
	t.session++
	t.active = true
	return t, t.schedule()
}

// Stop closes the current session.
func (t Ticker) Stop() Ticker {
	t.session++
	t.active = false
	return t
}

// Accept reports whether msg belongs to the open session.
func (t Ticker) Accept(msg TickMsg) bool {
	return t.active && msg.Session == t.session
}

// Next schedules the following tick in the current session. It returns nil
// once the ticker is stopped.
func (t Ticker) Next() tea.Cmd {
	if !t.active {
		return nil
	}
	return t.schedule()
}

func (t Ticker) schedule() tea.Cmd {
	session := t.session
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{Time: now, Session: session}
	})
}
