package components

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/homeserve/internal/model"
	"github.com/Veraticus/homeserve/internal/tui/themes"
	"github.com/Veraticus/homeserve/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// packageRenderer draws service packages in a ListDetail.
type packageRenderer struct {
	theme themes.Theme
}

func (r packageRenderer) Columns(width int) []table.Column {
	available := max(60, width-4)
	return []table.Column{
		{Title: "Package", Width: max(20, available*40/100)},
		{Title: "Type", Width: max(12, available*18/100)},
		{Title: "Price", Width: max(8, available*14/100)},
		{Title: "Save", Width: max(12, available*22/100)},
	}
}

func (r packageRenderer) Row(p model.ServicePackage) table.Row {
	name := p.Name
	if p.Popular {
		name = "★ " + name
	}
	return table.Row{
		name,
		p.Badge(),
		viewmodel.FormatMoney(p.DiscountedPrice),
		fmt.Sprintf("%s (%d%%)", viewmodel.FormatMoney(p.Savings), p.DiscountPercent()),
	}
}

func (r packageRenderer) Detail(p model.ServicePackage, width int) string {
	muted := lipgloss.NewStyle().Foreground(r.theme.Muted)

	lines := []string{}
	if p.Popular {
		lines = append(lines, r.theme.Badge.Render("Most Popular"))
	}
	lines = append(lines,
		r.theme.Bold.Render(p.Name)+"  "+muted.Render(p.Badge()),
		lipgloss.NewStyle().Width(max(10, width)).Render(p.Description),
		"",
		muted.Render("Includes:"),
	)
	for _, s := range p.Services {
		lines = append(lines, r.theme.StatusSuccess.Render("  ✓ ")+s)
	}
	lines = append(lines,
		"",
		muted.Strikethrough(true).Render(viewmodel.FormatMoney(p.RegularPrice))+" "+
			r.theme.Bold.Render(viewmodel.FormatMoney(p.DiscountedPrice)),
		r.theme.StatusSuccess.Render(fmt.Sprintf("Save %s (%d%% off)", viewmodel.FormatMoney(p.Savings), p.DiscountPercent())),
		"",
		renderButton(r.theme, p.CallToAction(), true),
	)
	return strings.Join(lines, "\n")
}

// packageFilters are the type tabs; the empty type lists every package.
var packageFilters = []struct {
	label string
	typ   model.PackageType
}{
	{"All Packages", ""},
	{"Bundles", model.PackageBundle},
	{"Subscriptions", model.PackageSubscription},
	{"Group Deals", model.PackageGroup},
	{"Emergency", model.PackageEmergency},
}

// PackagesModel lists service packages filtered by type.
type PackagesModel struct {
	theme    themes.Theme
	packages []model.ServicePackage
	list     ListDetail[model.ServicePackage]
	notice   string
	filter   int
	width    int
	height   int
}

// NewPackagesModel creates the packages screen showing every package.
func NewPackagesModel(packages []model.ServicePackage, theme themes.Theme) PackagesModel {
	m := PackagesModel{
		theme:    theme,
		packages: packages,
		list:     NewListDetail[model.ServicePackage](packageRenderer{theme: theme}, theme, "No packages of this type."),
		width:    80,
		height:   24,
	}
	m.applyFilter()
	return m
}

// Filter is the active package type, empty for all.
func (m PackagesModel) Filter() model.PackageType {
	return packageFilters[m.filter].typ
}

// Listed returns the packages currently shown.
func (m PackagesModel) Listed() []model.ServicePackage {
	return m.list.Items()
}

// Update handles messages.
func (m PackagesModel) Update(msg tea.Msg) (PackagesModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "tab", "right", "l":
		m.filter = (m.filter + 1) % len(packageFilters)
		m.applyFilter()
		return m, nil
	case "shift+tab", "left", "h":
		m.filter = (m.filter + len(packageFilters) - 1) % len(packageFilters)
		m.applyFilter()
		return m, nil
	case "enter":
		if p, ok := m.list.Selected(); ok {
			m.notice = fmt.Sprintf("%s: %s requested. A provider will reach out to schedule.", p.CallToAction(), p.Name)
			slog.Info("Package requested", "package", p.ID, "type", p.Type)
		}
		return m, nil
	case "esc":
		return m, send(BackMsg{})
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *PackagesModel) applyFilter() {
	typ := packageFilters[m.filter].typ
	filtered := make([]model.ServicePackage, 0, len(m.packages))
	for _, p := range m.packages {
		if typ == "" || p.Type == typ {
			filtered = append(filtered, p)
		}
	}
	m.list = m.list.SetItems(filtered)
	m.notice = ""
}

// View renders the packages screen.
func (m PackagesModel) View() string {
	labels := make([]string, len(packageFilters))
	for i, f := range packageFilters {
		labels[i] = f.label
	}

	sections := []string{
		m.theme.Title.Render("Service Packages & Deals"),
		m.theme.Subtitle.Render("Save money with our bundled services and subscription plans"),
		renderTabs(m.theme, labels, m.filter),
	}

	if m.Filter() == model.PackageGroup {
		sections = append(sections, m.theme.BorderedBox.
			BorderForeground(m.theme.Info).
			Padding(0, 1).
			Width(max(30, min(m.width-2, 90))).
			Render(lipgloss.JoinVertical(lipgloss.Left,
				m.theme.StatusInfo.Render("How Group Discounts Work"),
				"Get your neighbors or friends together to save more! When 3 or more people in the same area book the same service, everyone gets a discount.",
			)))
	}

	sections = append(sections, m.list.View())
	if m.notice != "" {
		sections = append(sections, m.theme.StatusSuccess.Render(m.notice))
	}
	sections = append(sections, "", renderHints(m.theme, "[←→] Package type", "[↑↓] Navigate", "[Enter] Book", "[Esc] Home"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Resize updates the component size.
func (m *PackagesModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.list.Resize(width, max(5, height-10))
}
