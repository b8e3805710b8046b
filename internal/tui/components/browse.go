package components

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/homeserve/internal/model"
	"github.com/Veraticus/homeserve/internal/search"
	"github.com/Veraticus/homeserve/internal/tui/themes"
	"github.com/Veraticus/homeserve/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// providerRenderer draws providers in a ListDetail.
type providerRenderer struct {
	theme themes.Theme
}

func (r providerRenderer) Columns(width int) []table.Column {
	available := max(60, width-4)
	return []table.Column{
		{Title: "Provider", Width: max(16, available*30/100)},
		{Title: "Service", Width: max(11, available*20/100)},
		{Title: "Rating", Width: max(11, available*18/100)},
		{Title: "Rate", Width: max(7, available*14/100)},
		{Title: "Distance", Width: max(8, available*14/100)},
	}
}

func (r providerRenderer) Row(p model.ServiceProvider) table.Row {
	name := p.Name
	if p.Verified {
		name += " ✓"
	}
	return table.Row{
		name,
		p.Service,
		fmt.Sprintf("%.1f (%d)", p.Rating, p.ReviewCount),
		viewmodel.FormatRate(p.HourlyRate),
		viewmodel.FormatMiles(p.Distance),
	}
}

func (r providerRenderer) Detail(p model.ServiceProvider, width int) string {
	body := lipgloss.NewStyle().Width(max(10, width))
	muted := lipgloss.NewStyle().Foreground(r.theme.Muted)

	lines := []string{
		r.theme.Bold.Render(themes.GetServiceIcon(p.Service) + " " + p.Name),
		muted.Render(p.Service + " · " + p.Location),
		r.theme.Star.Render(viewmodel.Stars(p.Rating)) + fmt.Sprintf(" %.1f (%d reviews)", p.Rating, p.ReviewCount),
		"",
		body.Render(viewmodel.SanitizeForDisplay(p.Description)),
		"",
		fmt.Sprintf("%d years experience · %d jobs completed", p.Experience, p.CompletedJobs),
		r.theme.StatusSuccess.Render(p.Availability),
	}
	if len(p.Specializations) > 0 {
		lines = append(lines, "", muted.Render("Specializations: ")+strings.Join(p.Specializations, ", "))
	}
	return strings.Join(lines, "\n")
}

// BrowseModel is the provider list with its filter bar.
type BrowseModel struct {
	theme       themes.Theme
	providers   []model.ServiceProvider
	criteria    search.Criteria
	list        ListDetail[model.ServiceProvider]
	searchInput textinput.Model
	searching   bool
	width       int
	height      int
}

// NewBrowseModel creates the browse screen over the full provider list.
func NewBrowseModel(providers []model.ServiceProvider, criteria search.Criteria, theme themes.Theme) BrowseModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search by name, service, or location..."
	searchInput.CharLimit = 50

	m := BrowseModel{
		theme:       theme,
		providers:   providers,
		criteria:    criteria,
		list:        NewListDetail[model.ServiceProvider](providerRenderer{theme: theme}, theme, "No providers match your filters."),
		searchInput: searchInput,
		width:       80,
		height:      24,
	}
	m.applyFilters()
	return m
}

// Criteria returns the active filters.
func (m BrowseModel) Criteria() search.Criteria {
	return m.criteria
}

// Results returns the providers currently listed.
func (m BrowseModel) Results() []model.ServiceProvider {
	return m.list.Items()
}

// Typing reports whether the search box has the keyboard.
func (m BrowseModel) Typing() bool {
	return m.searching
}

// SetSearch replaces the service and query filters, keeping the rest.
func (m BrowseModel) SetSearch(service, query string) BrowseModel {
	m.criteria.Service = strings.TrimSpace(service)
	m.criteria.Query = strings.TrimSpace(query)
	m.searchInput.SetValue(m.criteria.Query)
	m.applyFilters()
	return m
}

// Update handles messages.
func (m BrowseModel) Update(msg tea.Msg) (BrowseModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		return m.handleSearchMode(keyMsg)
	}

	switch keyMsg.String() {
	case "/":
		m.searching = true
		return m, m.searchInput.Focus()
	case "enter":
		if p, ok := m.list.Selected(); ok {
			return m, send(ViewProfileMsg{ProviderID: p.ID})
		}
		return m, nil
	case "esc":
		return m, send(BackMsg{})
	case "+", "=", "right":
		m.criteria = m.criteria.RaisePrice()
	case "-", "left":
		m.criteria = m.criteria.LowerPrice()
	case "r":
		m.criteria = m.criteria.NextRating()
	case "s":
		m.criteria = m.criteria.NextSort()
	case "c":
		m.criteria = m.criteria.Clear()
		m.searchInput.SetValue("")
	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	m.applyFilters()
	return m, nil
}

func (m BrowseModel) handleSearchMode(msg tea.KeyMsg) (BrowseModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		m.criteria.Query = strings.TrimSpace(m.searchInput.Value())
		m.applyFilters()
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue(m.criteria.Query)
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *BrowseModel) applyFilters() {
	results := search.Filter(m.providers, m.criteria)
	m.list = m.list.SetItems(results)
	slog.Debug("Filtered providers",
		"service", m.criteria.Service,
		"query", m.criteria.Query,
		"max_rate", m.criteria.MaxHourlyRate,
		"min_rating", m.criteria.MinRating,
		"sort", m.criteria.SortBy,
		"results", len(results))
}

// View renders the browse screen.
func (m BrowseModel) View() string {
	count := m.list.Len()
	noun := "providers"
	if count == 1 {
		noun = "provider"
	}
	header := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Service Providers"),
		m.theme.Subtitle.Render(fmt.Sprintf("%d %s found", count, noun)),
	)

	body := m.list.View()
	if count == 0 {
		body = lipgloss.JoinVertical(lipgloss.Left,
			body,
			lipgloss.NewStyle().Padding(0, 2).Render(
				"Try adjusting your filters. "+renderButton(m.theme, "[c] Clear Filters", true)),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.renderFilterBar(),
		"",
		body,
		"",
		m.renderFooter(),
	)
}

func (m BrowseModel) renderFilterBar() string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)

	query := m.criteria.Query
	if m.searching {
		query = m.searchInput.View()
	} else if query == "" {
		query = muted.Render("any")
	}
	service := m.criteria.Service
	if service == "" {
		service = muted.Render("all")
	}
	rating := "Any"
	if m.criteria.MinRating > 0 {
		rating = fmt.Sprintf("%.1f+", m.criteria.MinRating)
	}

	parts := []string{
		muted.Render("Search: ") + query,
		muted.Render("Service: ") + service,
		muted.Render("Max rate: ") + viewmodel.FormatRate(m.criteria.MaxHourlyRate),
		muted.Render("Rating: ") + rating,
		muted.Render("Sort: ") + m.criteria.SortBy.Label(),
	}
	return strings.Join(parts, "  ")
}

func (m BrowseModel) renderFooter() string {
	if m.searching {
		return renderHints(m.theme, "[Enter] Apply", "[Esc] Cancel")
	}
	return renderHints(m.theme,
		"[↑↓] Navigate",
		"[Enter] View Profile",
		"[/] Search",
		"[+/-] Max rate",
		"[r] Rating",
		"[s] Sort",
		"[c] Clear",
	)
}

// Resize updates the component size.
func (m *BrowseModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.searchInput.Width = max(20, width/3)
	// Title, subtitle, filter bar, spacing and footer.
	m.list.Resize(width, max(5, height-8))
}
