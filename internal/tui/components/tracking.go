package components

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/homeserve/internal/tracking"
	"github.com/Veraticus/homeserve/internal/tui/themes"
	"github.com/Veraticus/homeserve/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TrackingModel is the live tracking screen. It owns the ticker driving the
// simulation: Start when the screen is shown, Stop when it is left.
type TrackingModel struct {
	theme    themes.Theme
	state    tracking.State
	ticker   tracking.Ticker
	progress progress.Model
	width    int
	height   int
}

// NewTrackingModel creates a stopped tracking screen.
func NewTrackingModel(interval time.Duration, theme themes.Theme) TrackingModel {
	bar := progress.New(progress.WithSolidFill(string(theme.Success)), progress.WithoutPercentage())
	bar.Width = 40
	return TrackingModel{
		theme:    theme,
		state:    tracking.Initial(),
		ticker:   tracking.NewTicker(interval),
		progress: bar,
		width:    80,
		height:   24,
	}
}

// State returns the simulated trip.
func (m TrackingModel) State() tracking.State {
	return m.state
}

// Active reports whether the simulation is running.
func (m TrackingModel) Active() bool {
	return m.ticker.Active()
}

// Start restarts the trip and schedules the first tick of a new session.
func (m TrackingModel) Start() (TrackingModel, tea.Cmd) {
	m.state = tracking.Initial()
	var cmd tea.Cmd
	m.ticker, cmd = m.ticker.Start()
	slog.Debug("Tracking started", "session", m.ticker.Session(), "interval", m.ticker.Interval())
	return m, cmd
}

// Stop cancels the running session. Ticks already scheduled are dropped.
func (m TrackingModel) Stop() TrackingModel {
	if m.ticker.Active() {
		slog.Debug("Tracking stopped", "session", m.ticker.Session())
	}
	m.ticker = m.ticker.Stop()
	return m
}

// Update handles messages.
func (m TrackingModel) Update(msg tea.Msg) (TrackingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tracking.TickMsg:
		if !m.ticker.Accept(msg) {
			return m, nil
		}
		m.state = tracking.Advance(m.state)
		if m.state.Done() {
			slog.Info("Provider arrived", "provider", m.state.ProviderName)
			m.ticker = m.ticker.Stop()
			return m, nil
		}
		return m, m.ticker.Next()

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, send(BackMsg{})
		}
	}
	return m, nil
}

// View renders the tracking screen.
func (m TrackingModel) View() string {
	s := m.state
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)

	status := m.theme.StatusInfo
	switch s.Status {
	case tracking.StatusNearby:
		status = m.theme.StatusWarning
	case tracking.StatusArrived:
		status = m.theme.StatusSuccess
	}

	eta := fmt.Sprintf("%d min", s.ETAMinutes)
	if s.Done() {
		eta = "Now"
	}

	figures := lipgloss.JoinHorizontal(lipgloss.Top,
		renderStat(m.theme, "Status", status.Render(s.Status.Label())),
		renderStat(m.theme, "ETA", eta),
		renderStat(m.theme, "Distance", viewmodel.FormatMiles(s.DistanceMiles)),
	)

	provider := m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Bold.Render(s.ProviderName),
		muted.Render(s.Service),
		"📍 Currently at: "+s.CurrentLocation,
		"🕒 ETA: "+eta,
		"📞 "+s.Phone,
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Track Your Service Provider"),
		m.theme.Subtitle.Render("Real-time location and ETA updates"),
		m.renderRoute(),
		m.progress.ViewAs(s.Progress()),
		"",
		figures,
		provider,
		m.renderJourney(),
		"",
		renderHints(m.theme, "[Esc] Back"),
	)
}

// renderRoute draws the provider's position on a line between start and home.
func (m TrackingModel) renderRoute() string {
	width := max(10, min(60, m.width-8))
	pos := int(m.state.Progress() * float64(width-1))
	road := []rune(strings.Repeat("─", width))
	road[pos] = '🚐'
	return "🔧 " + string(road) + " 🏠"
}

func (m TrackingModel) renderJourney() string {
	type step struct {
		label string
		done  bool
	}
	steps := []step{
		{"Booking confirmed", true},
		{"Started journey", true},
		{"Nearby (within 5 min)", m.state.Status != tracking.StatusOnWay},
		{"Arrived at destination", m.state.Done()},
	}

	lines := []string{m.theme.Bold.Render("Journey Updates")}
	for _, st := range steps {
		if st.done {
			lines = append(lines, m.theme.StatusSuccess.Render("  ● ")+st.label)
		} else {
			lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).Render("  ○ "+st.label))
		}
	}
	return strings.Join(lines, "\n")
}

// Resize updates the component size.
func (m *TrackingModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.progress.Width = min(60, max(20, width-4))
}
