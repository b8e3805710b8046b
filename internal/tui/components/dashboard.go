package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/homeserve/internal/model"
	"github.com/Veraticus/homeserve/internal/tui/themes"
	"github.com/Veraticus/homeserve/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// bookingRenderer draws bookings or jobs in a ListDetail.
type bookingRenderer struct {
	theme themes.Theme
	kind  model.BookingKind
}

func (r bookingRenderer) Columns(width int) []table.Column {
	available := max(60, width-4)
	who := "Provider"
	if r.kind == model.KindProvider {
		who = "Customer"
	}
	return []table.Column{
		{Title: "Date", Width: max(12, available*18/100)},
		{Title: "Time", Width: max(8, available*12/100)},
		{Title: "Service", Width: max(14, available*30/100)},
		{Title: who, Width: max(12, available*22/100)},
		{Title: "Price", Width: max(7, available*14/100)},
	}
}

func (r bookingRenderer) Row(b model.Booking) table.Row {
	who := b.ProviderName
	if r.kind == model.KindProvider {
		who = b.CustomerName
	}
	return table.Row{
		viewmodel.FormatDate(b.Date),
		b.Time,
		viewmodel.TruncateString(b.Service, 30),
		who,
		viewmodel.FormatMoney(b.Price),
	}
}

func (r bookingRenderer) Detail(b model.Booking, _ int) string {
	muted := lipgloss.NewStyle().Foreground(r.theme.Muted)

	who := muted.Render("Provider: ") + b.ProviderName
	if r.kind == model.KindProvider {
		who = muted.Render("Customer: ") + b.CustomerName
	}

	actions := viewmodel.Actions(b)
	buttons := make([]string, len(actions))
	for i, a := range actions {
		buttons[i] = renderButton(r.theme, a, false)
	}

	return strings.Join([]string{
		r.theme.Bold.Render(b.Service),
		r.statusStyle(b.Status).Render(b.Status.Label()),
		"",
		who,
		muted.Render("When: ") + viewmodel.FormatDate(b.Date) + " at " + b.Time,
		muted.Render("Price: ") + viewmodel.FormatMoney(b.Price),
		"",
		strings.Join(buttons, " "),
	}, "\n")
}

func (r bookingRenderer) statusStyle(s model.BookingStatus) lipgloss.Style {
	switch s {
	case model.BookingConfirmed:
		return r.theme.StatusInfo
	case model.BookingCompleted:
		return r.theme.StatusSuccess
	case model.BookingCancelled:
		return r.theme.StatusError
	default:
		return r.theme.StatusWarning
	}
}

// Dashboard tabs.
const (
	tabUpcoming = iota
	tabPast
)

// DashboardModel lists a customer's bookings or a provider's jobs split into
// upcoming and past tabs, under a row of summary figures.
type DashboardModel struct {
	theme    themes.Theme
	kind     model.BookingKind
	upcoming []model.Booking
	past     []model.Booking
	customer viewmodel.CustomerStats
	provider viewmodel.ProviderStats
	list     ListDetail[model.Booking]
	tab      int
	width    int
	height   int
}

// NewCustomerDashboard creates the "My Bookings" screen. providers supplies the
// ratings behind the average rating card.
func NewCustomerDashboard(bookings []model.Booking, providers []model.ServiceProvider, theme themes.Theme) DashboardModel {
	m := newDashboard(model.KindCustomer, bookings, theme)
	m.customer = viewmodel.NewCustomerStats(bookings, providers)
	return m
}

// NewProviderDashboard creates the "My Jobs" screen. rating is the provider's
// own rating.
func NewProviderDashboard(jobs []model.Booking, rating float64, theme themes.Theme) DashboardModel {
	m := newDashboard(model.KindProvider, jobs, theme)
	m.provider = viewmodel.NewProviderStats(jobs, rating)
	return m
}

func newDashboard(kind model.BookingKind, bookings []model.Booking, theme themes.Theme) DashboardModel {
	upcoming, past := viewmodel.SplitBookings(bookings)
	empty := "No upcoming bookings."
	if kind == model.KindProvider {
		empty = "No upcoming jobs."
	}
	m := DashboardModel{
		theme:    theme,
		kind:     kind,
		upcoming: upcoming,
		past:     past,
		list:     NewListDetail[model.Booking](bookingRenderer{theme: theme, kind: kind}, theme, empty),
		width:    80,
		height:   24,
	}
	m.list = m.list.SetItems(upcoming)
	return m
}

// Tab is the active tab index, 0 for upcoming and 1 for past.
func (m DashboardModel) Tab() int {
	return m.tab
}

// Listed returns the bookings in the active tab.
func (m DashboardModel) Listed() []model.Booking {
	return m.list.Items()
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "tab", "left", "right":
		m.tab = 1 - m.tab
		m.list = m.list.SetItems(m.tabItems())
		return m, nil
	case "esc":
		return m, send(BackMsg{})
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m DashboardModel) tabItems() []model.Booking {
	if m.tab == tabPast {
		return m.past
	}
	return m.upcoming
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	title, subtitle := "My Bookings", "Manage your service bookings and view history"
	if m.kind == model.KindProvider {
		title, subtitle = "Provider Dashboard", "Manage your jobs and track your performance"
	}

	past := "Past"
	if m.kind == model.KindProvider {
		past = "Completed"
	}
	tabs := renderTabs(m.theme, []string{
		fmt.Sprintf("Upcoming (%d)", len(m.upcoming)),
		fmt.Sprintf("%s (%d)", past, len(m.past)),
	}, m.tab)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(title),
		m.theme.Subtitle.Render(subtitle),
		m.renderStats(),
		"",
		tabs,
		m.list.View(),
		"",
		renderHints(m.theme, "[↑↓] Navigate", "[Tab] Switch tab", "[Esc] Home"),
	)
}

func (m DashboardModel) renderStats() string {
	if m.kind == model.KindProvider {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			renderStat(m.theme, "Upcoming Jobs", fmt.Sprintf("%d", m.provider.Upcoming)),
			renderStat(m.theme, "Completed", fmt.Sprintf("%d", m.provider.CompletedJobs)),
			renderStat(m.theme, "Total Earnings", viewmodel.FormatMoney(m.provider.Earnings)),
			renderStat(m.theme, "Rating", fmt.Sprintf("%.1f ★", m.provider.Rating)),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderStat(m.theme, "Upcoming", fmt.Sprintf("%d", m.customer.Upcoming)),
		renderStat(m.theme, "Completed", fmt.Sprintf("%d", m.customer.Completed)),
		renderStat(m.theme, "Total Spent", viewmodel.FormatMoney(m.customer.TotalSpent)),
		renderStat(m.theme, "Avg Rating", fmt.Sprintf("%.1f ★", m.customer.AvgRating)),
	)
}

// Resize updates the component size.
func (m *DashboardModel) Resize(width, height int) {
	m.width = width
	m.height = height
	// Title, subtitle, stats boxes, tabs and footer.
	m.list.Resize(width, max(5, height-12))
}
