package components

import (
	"strings"

	"github.com/Veraticus/homeserve/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PopularServices are the shortcuts on the home screen.
var PopularServices = []string{
	"Plumbing", "Electrical", "Cleaning", "Landscaping", "Painting", "Photography",
}

// Home screen focus targets, in tab order.
const (
	homeFocusService = iota
	homeFocusLocation
	homeFocusPopular
	homeFocusProvider
	homeFocusCount
)

// HomeModel is the landing screen: a service and location search, popular
// service shortcuts, and the become-a-provider call to action.
type HomeModel struct {
	theme   themes.Theme
	fields  fieldSet
	focus   int
	popular int
	width   int
	height  int
}

// NewHomeModel creates the home screen with the popular services focused.
func NewHomeModel(theme themes.Theme) HomeModel {
	return HomeModel{
		theme: theme,
		fields: newFieldSet(
			fieldSpec{label: "Service", placeholder: "What service do you need?"},
			fieldSpec{label: "Location", placeholder: "Enter your location"},
		),
		focus:  homeFocusPopular,
		width:  80,
		height: 24,
	}
}

// Typing reports whether a text field has the keyboard.
func (m HomeModel) Typing() bool {
	return m.focus == homeFocusService || m.focus == homeFocusLocation
}

// Update handles messages.
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "tab":
		return m, m.setFocus((m.focus + 1) % homeFocusCount)
	case "shift+tab":
		return m, m.setFocus((m.focus + homeFocusCount - 1) % homeFocusCount)
	case "enter":
		return m, m.activate()
	case "esc":
		if m.Typing() {
			return m, m.setFocus(homeFocusPopular)
		}
		return m, nil
	case "/":
		if !m.Typing() {
			return m, m.setFocus(homeFocusService)
		}
	}

	switch m.focus {
	case homeFocusService, homeFocusLocation:
		var cmd tea.Cmd
		m.fields, cmd = m.fields.Update(msg)
		return m, cmd
	case homeFocusPopular:
		switch keyMsg.String() {
		case "left", "h":
			m.popular = (m.popular + len(PopularServices) - 1) % len(PopularServices)
		case "right", "l":
			m.popular = (m.popular + 1) % len(PopularServices)
		}
	}
	return m, nil
}

func (m *HomeModel) setFocus(focus int) tea.Cmd {
	m.focus = focus
	switch focus {
	case homeFocusService:
		return m.fields.Focus(0)
	case homeFocusLocation:
		return m.fields.Focus(1)
	}
	m.fields.Blur()
	return nil
}

func (m HomeModel) activate() tea.Cmd {
	switch m.focus {
	case homeFocusPopular:
		return send(SearchRequestedMsg{Service: PopularServices[m.popular]})
	case homeFocusProvider:
		return send(NavigateMsg{Screen: ScreenBecomeProvider})
	}
	// The location box feeds the free-text query.
	return send(SearchRequestedMsg{
		Service: m.fields.Value(0),
		Query:   m.fields.Value(1),
	})
}

// View renders the home screen.
func (m HomeModel) View() string {
	hero := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Find Trusted Local Service Providers"),
		m.theme.Subtitle.Render("Connect with verified professionals for all your home service needs."),
		m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.fields.View(m.theme),
			"",
			renderButton(m.theme, "Search Services", m.Typing()),
		)),
	)

	chips := make([]string, len(PopularServices))
	for i, s := range PopularServices {
		label := themes.GetServiceIcon(s) + " " + s
		if m.focus == homeFocusPopular && i == m.popular {
			chips[i] = m.theme.Selected.Padding(0, 1).Render(label)
		} else {
			chips[i] = m.theme.Normal.Padding(0, 1).Render(label)
		}
	}
	popular := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Bold.Render("Popular Services"),
		strings.Join(chips, " "),
	)

	cta := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Bold.Render("Grow Your Business"),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Get more bookings and build your reputation with verified reviews."),
		renderButton(m.theme, "Become a Provider", m.focus == homeFocusProvider),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		hero,
		"",
		popular,
		"",
		cta,
		"",
		renderHints(m.theme, "[Tab] Next field", "[/] Search", "[←→] Choose service", "[Enter] Go"),
	)
}

// Resize updates the component size.
func (m *HomeModel) Resize(width, height int) {
	m.width = width
	m.height = height
}
