package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/homeserve/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// renderHints renders footer key hints like "[Enter] Select".
func renderHints(theme themes.Theme, hints ...string) string {
	return lipgloss.NewStyle().Foreground(theme.Muted).Render(strings.Join(hints, "  "))
}

// renderTabs renders a tab strip with the active tab underlined.
func renderTabs(theme themes.Theme, labels []string, active int) string {
	tabs := make([]string, len(labels))
	for i, label := range labels {
		if i == active {
			tabs[i] = theme.ActiveTab.Render(label)
		} else {
			tabs[i] = theme.Tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderStepper renders wizard progress as "1 Service › 2 Property › 3 Options".
func renderStepper(theme themes.Theme, titles []string, current int) string {
	parts := make([]string, len(titles))
	for i, title := range titles {
		label := fmt.Sprintf("%d %s", i+1, title)
		switch {
		case i < current:
			parts[i] = lipgloss.NewStyle().Foreground(theme.Success).Render("✓ " + title)
		case i == current:
			parts[i] = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label)
		default:
			parts[i] = lipgloss.NewStyle().Foreground(theme.Muted).Render(label)
		}
	}
	return strings.Join(parts, lipgloss.NewStyle().Foreground(theme.Muted).Render(" › "))
}

// renderStat renders one labelled figure for a dashboard stats row.
func renderStat(theme themes.Theme, label, value string) string {
	return theme.RoundedBox.
		Padding(0, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Foreground(theme.Muted).Render(label),
			theme.Bold.Render(value),
		))
}

// renderChoice renders one option of a single or multiple choice list.
func renderChoice(theme themes.Theme, label string, cursor, chosen bool) string {
	mark := "( )"
	if chosen {
		mark = "(•)"
	}
	line := mark + " " + label
	if cursor {
		return theme.Selected.Render("› " + line)
	}
	return theme.Normal.Render("  " + line)
}

// renderCheck renders one option of a checkbox list.
func renderCheck(theme themes.Theme, label string, cursor, checked bool) string {
	mark := "[ ]"
	if checked {
		mark = "[x]"
	}
	line := mark + " " + label
	if cursor {
		return theme.Selected.Render("› " + line)
	}
	return theme.Normal.Render("  " + line)
}

// renderButton renders an action label, highlighted when focused.
func renderButton(theme themes.Theme, label string, focused bool) string {
	if focused {
		return theme.Selected.Padding(0, 1).Render(label)
	}
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Padding(0, 1).
		Render(label)
}

// renderError renders a validation message.
func renderError(theme themes.Theme, msg string) string {
	if msg == "" {
		return ""
	}
	return theme.StatusError.Render("✗ " + msg)
}
