package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/homeserve/internal/model"
	"github.com/Veraticus/homeserve/internal/tui/components"
	"github.com/charmbracelet/lipgloss"
)

// Rows taken by the header and the status bar.
const (
	headerHeight = 2
	statusHeight = 1
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.lastError != nil && !m.ready {
		return m.renderError()
	}

	if !m.ready {
		return m.renderLoading()
	}

	body := m.renderScreen()
	switch {
	case m.showHelp:
		body = m.renderHelp()
	case m.booking != nil:
		body = lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, m.booking.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(body),
		m.renderStatusBar(),
	)
}

// renderScreen renders the active screen.
func (m Model) renderScreen() string {
	switch m.screen {
	case components.ScreenHome:
		return m.home.View()
	case components.ScreenBrowse:
		return m.browse.View()
	case components.ScreenProfile:
		return m.profile.View()
	case components.ScreenCustomerDashboard:
		return m.customer.View()
	case components.ScreenProviderDashboard:
		return m.provider.View()
	case components.ScreenPackages:
		return m.packages.View()
	case components.ScreenQuote:
		return m.quote.View()
	case components.ScreenTracking:
		return m.tracking.View()
	case components.ScreenBecomeProvider:
		return m.becomeProvider.View()
	}
	return ""
}

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("HomeServe"),
		"",
		m.spinner.View()+" "+lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Loading providers..."),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderError renders a catalog load failure.
func (m Model) renderError() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.StatusError.Render("✗ "+m.lastError.Error()),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press q to quit"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderHeader renders the brand, the navigation and the account slot.
func (m Model) renderHeader() string {
	active := m.screen
	if active == components.ScreenProfile {
		active = components.ScreenBrowse
	}

	var nav []string
	n := 0
	for _, info := range screens {
		if !info.nav {
			continue
		}
		n++
		label := fmt.Sprintf("%d %s", n, info.title)
		if info.screen == active {
			nav = append(nav, m.theme.ActiveTab.Render(label))
		} else {
			nav = append(nav, m.theme.Tab.Render(label))
		}
	}

	account := m.theme.Tab.Render("7 Sign In")
	if m.role != model.RoleNone {
		label := "7 " + screenTitle(dashboardFor(m.role))
		if m.onDashboard() {
			account = m.theme.ActiveTab.Render(label)
		} else {
			account = m.theme.Tab.Render(label)
		}
	}
	nav = append(nav, account)

	brand := m.theme.Bold.Foreground(m.theme.Primary).Render("🏠 HomeServe")
	line := lipgloss.JoinHorizontal(lipgloss.Top, append([]string{brand, "  "}, nav...)...)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().MaxWidth(m.width).Render(line),
		lipgloss.NewStyle().Foreground(m.theme.Border).Render(strings.Repeat("─", max(0, m.width))),
	)
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	left := screenTitle(m.screen)
	if m.booking != nil {
		left = "Booking"
	}

	role := "Guest"
	if m.role != model.RoleNone {
		role = strings.ToUpper(string(m.role[:1])) + string(m.role[1:])
	}

	center := m.status
	right := role + " · ? Help"

	spacing := max(2, m.width-lipgloss.Width(left)-lipgloss.Width(center)-lipgloss.Width(right)-2)
	leftPad := spacing / 2
	rightPad := spacing - leftPad

	status := m.theme.StatusInfo.Render(left) +
		strings.Repeat(" ", leftPad) +
		m.theme.Normal.Render(center) +
		strings.Repeat(" ", rightPad) +
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(right)

	return m.theme.Normal.
		Background(m.theme.Border).
		Width(m.width).
		MaxWidth(m.width).
		Render(status)
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = true

	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	screensHelp := make([]string, 0, len(screens))
	for _, info := range screens {
		screensHelp = append(screensHelp, fmt.Sprintf("  %-18s %s", info.title, muted.Render(info.screen.String())))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("HomeServe - Help"),
		"",
		m.theme.Subtitle.Render("Keys"),
		h.View(m.keymap),
		"",
		m.theme.Subtitle.Render("Screens"),
		strings.Join(screensHelp, "\n"),
		"",
		muted.Render("Global keys are ignored while typing in a field."),
		muted.Render("Press ? or Esc to close help"),
	)

	return lipgloss.Place(
		m.width,
		m.bodyHeight(),
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.
			Width(min(72, max(40, m.width-4))).
			Render(content),
	)
}
