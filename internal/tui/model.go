package tui

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/homeserve/internal/common"
	"github.com/Veraticus/homeserve/internal/model"
	"github.com/Veraticus/homeserve/internal/service"
	"github.com/Veraticus/homeserve/internal/tracking"
	"github.com/Veraticus/homeserve/internal/tui/components"
	"github.com/Veraticus/homeserve/internal/tui/themes"
	"github.com/Veraticus/homeserve/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// screenInfo describes a screen for the header and help.
type screenInfo struct {
	title  string
	screen components.Screen
	nav    bool // Shown in the header navigation
}

// screens lists every screen. The two dashboards share the header slot for
// the signed-in role.
var screens = []screenInfo{
	{screen: components.ScreenHome, title: "Home", nav: true},
	{screen: components.ScreenBrowse, title: "Browse", nav: true},
	{screen: components.ScreenPackages, title: "Packages", nav: true},
	{screen: components.ScreenQuote, title: "Get Quote", nav: true},
	{screen: components.ScreenBecomeProvider, title: "Become a Provider", nav: true},
	{screen: components.ScreenTracking, title: "Track", nav: true},
	{screen: components.ScreenCustomerDashboard, title: "My Bookings"},
	{screen: components.ScreenProviderDashboard, title: "My Jobs"},
	{screen: components.ScreenProfile, title: "Provider Profile"},
}

// screenTitle returns the display title of s.
func screenTitle(s components.Screen) string {
	for _, info := range screens {
		if info.screen == s {
			return info.title
		}
	}
	return s.String()
}

// Model holds the application state: the active screen, the signed-in role,
// and one model per screen. It is only mutated through navigate, signIn,
// signOut, switchRole, search and viewProfile.
type Model struct {
	theme          themes.Theme
	lastError      error
	snapshot       *service.Snapshot
	booking        *components.BookingModel
	home           components.HomeModel
	browse         components.BrowseModel
	profile        components.ProfileModel
	customer       components.DashboardModel
	provider       components.DashboardModel
	packages       components.PackagesModel
	quote          components.QuoteModel
	becomeProvider components.BecomeProviderModel
	tracking       components.TrackingModel
	help           help.Model
	spinner        spinner.Model
	keymap         KeyMap
	status         string
	role           model.Role
	config         Config
	screen         components.Screen
	width          int
	height         int
	hasProfile     bool
	showHelp       bool
	quitting       bool
	ready          bool
}

// New creates the root model.
func New(opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(cfg)
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = s.Style.Foreground(cfg.Theme.Primary)

	return Model{
		config:  cfg,
		theme:   cfg.Theme,
		keymap:  DefaultKeyMap(),
		help:    help.New(),
		spinner: s,
		role:    cfg.Role,
		screen:  components.ScreenHome,
		width:   cfg.Width,
		height:  cfg.Height,
	}
}

// Screen returns the active screen.
func (m Model) Screen() components.Screen {
	return m.screen
}

// Role returns the signed-in role.
func (m Model) Role() model.Role {
	return m.role
}

// BookingOpen reports whether the booking modal is showing.
func (m Model) BookingOpen() bool {
	return m.booking != nil
}

// Status returns the status line message.
func (m Model) Status() string {
	return m.status
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCatalog())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case catalogLoadedMsg:
		return m.handleCatalogLoaded(msg)

	case spinner.TickMsg:
		if m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tracking.TickMsg:
		var cmd tea.Cmd
		m.tracking, cmd = m.tracking.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if next, cmd, handled := m.handleGlobalKeys(msg); handled {
			return next, cmd
		}
	}

	if !m.ready {
		return m, nil
	}

	switch msg := msg.(type) {
	case components.SearchRequestedMsg:
		return m.search(msg.Service, msg.Query)

	case components.ViewProfileMsg:
		return m.viewProfile(msg.ProviderID)

	case components.NavigateMsg:
		return m.navigate(msg.Screen)

	case components.BackMsg:
		if m.screen == components.ScreenProfile {
			return m.navigate(components.ScreenBrowse)
		}
		return m.navigate(components.ScreenHome)

	case components.OpenBookingMsg:
		booking := components.NewBookingModel(msg.Provider, m.theme)
		booking.Resize(m.width, m.bodyHeight())
		m.booking = &booking
		slog.Debug("Booking opened", "provider", msg.Provider.ID)
		return m, nil

	case components.CloseBookingMsg:
		m.booking = nil
		if msg.ConfirmationID != "" {
			m.status = fmt.Sprintf("Booking confirmed · #%s", msg.ConfirmationID)
		}
		return m, nil

	case components.ApplicationSubmittedMsg:
		m.status = fmt.Sprintf("Application %s submitted for %s", msg.ReferenceID, msg.Name)
		return m, nil
	}

	if m.booking != nil {
		booking, cmd := m.booking.Update(msg)
		m.booking = &booking
		return m, cmd
	}
	return m.updateScreen(msg)
}

// updateScreen delegates msg to the active screen.
func (m Model) updateScreen(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case components.ScreenHome:
		m.home, cmd = m.home.Update(msg)
	case components.ScreenBrowse:
		m.browse, cmd = m.browse.Update(msg)
	case components.ScreenProfile:
		m.profile, cmd = m.profile.Update(msg)
	case components.ScreenCustomerDashboard:
		m.customer, cmd = m.customer.Update(msg)
	case components.ScreenProviderDashboard:
		m.provider, cmd = m.provider.Update(msg)
	case components.ScreenPackages:
		m.packages, cmd = m.packages.Update(msg)
	case components.ScreenQuote:
		m.quote, cmd = m.quote.Update(msg)
	case components.ScreenTracking:
		m.tracking, cmd = m.tracking.Update(msg)
	case components.ScreenBecomeProvider:
		m.becomeProvider, cmd = m.becomeProvider.Update(msg)
	}
	return m, cmd
}

// typing reports whether keys belong to a text field or the booking modal.
func (m Model) typing() bool {
	if m.booking != nil {
		return true
	}
	switch m.screen {
	case components.ScreenHome:
		return m.home.Typing()
	case components.ScreenBrowse:
		return m.browse.Typing()
	case components.ScreenBecomeProvider:
		return m.becomeProvider.Typing()
	case components.ScreenProfile, components.ScreenCustomerDashboard, components.ScreenProviderDashboard,
		components.ScreenPackages, components.ScreenQuote, components.ScreenTracking:
		return false
	}
	return false
}

// handleGlobalKeys handles keys that work on every screen. It reports
// whether the key was consumed.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		m.tracking = m.tracking.Stop()
		return m, tea.Quit, true
	}
	if key.Matches(msg, m.keymap.ClearScreen) {
		return m, tea.ClearScreen, true
	}

	if m.showHelp {
		if key.Matches(msg, m.keymap.Help) || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil, true
	}

	if !m.ready {
		if key.Matches(msg, m.keymap.Quit) {
			m.quitting = true
			return m, tea.Quit, true
		}
		return m, nil, true
	}

	if m.typing() {
		return m, nil, false
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		m.tracking = m.tracking.Stop()
		return m, tea.Quit, true
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
		return m, nil, true
	case key.Matches(msg, m.keymap.Home):
		m, cmd = m.navigate(components.ScreenHome)
	case key.Matches(msg, m.keymap.Browse):
		m, cmd = m.navigate(components.ScreenBrowse)
	case key.Matches(msg, m.keymap.Packages):
		m, cmd = m.navigate(components.ScreenPackages)
	case key.Matches(msg, m.keymap.Quote):
		m, cmd = m.navigate(components.ScreenQuote)
	case key.Matches(msg, m.keymap.BecomeProvider):
		m, cmd = m.navigate(components.ScreenBecomeProvider)
	case key.Matches(msg, m.keymap.Tracking):
		m, cmd = m.navigate(components.ScreenTracking)
	case key.Matches(msg, m.keymap.Dashboard):
		if m.role == model.RoleNone {
			m, cmd = m.signIn()
		} else {
			m, cmd = m.navigate(dashboardFor(m.role))
		}
	case key.Matches(msg, m.keymap.SignIn):
		m, cmd = m.signIn()
	case key.Matches(msg, m.keymap.SignOut):
		m, cmd = m.signOut()
	case key.Matches(msg, m.keymap.SwitchRole):
		m, cmd = m.switchRole()
	default:
		return m, nil, false
	}
	return m, cmd, true
}

// dashboardFor returns the dashboard screen of role.
func dashboardFor(role model.Role) components.Screen {
	if role == model.RoleProvider {
		return components.ScreenProviderDashboard
	}
	return components.ScreenCustomerDashboard
}

// navigate switches to screen. Leaving the tracking screen cancels its
// ticker; entering it starts a fresh trip.
func (m Model) navigate(screen components.Screen) (Model, tea.Cmd) {
	if screen == components.ScreenProfile && !m.hasProfile {
		screen = components.ScreenBrowse
	}

	from := m.screen
	if from == components.ScreenTracking && screen != components.ScreenTracking {
		m.tracking = m.tracking.Stop()
	}

	var cmd tea.Cmd
	switch screen {
	case components.ScreenTracking:
		if from != components.ScreenTracking || !m.tracking.Active() {
			m.tracking, cmd = m.tracking.Start()
		}
	case components.ScreenBecomeProvider:
		if m.becomeProvider.Submitted() {
			m.becomeProvider = components.NewBecomeProviderModel(m.theme)
			m.becomeProvider.Resize(m.width, m.bodyHeight())
		}
	case components.ScreenHome, components.ScreenBrowse, components.ScreenProfile,
		components.ScreenCustomerDashboard, components.ScreenProviderDashboard,
		components.ScreenPackages, components.ScreenQuote:
	}

	if from != screen {
		slog.Debug("Navigate", "from", from, "to", screen)
	}
	m.screen = screen
	m.showHelp = false
	return m, cmd
}

// signIn signs in as a customer and opens their bookings.
func (m Model) signIn() (Model, tea.Cmd) {
	if m.role == model.RoleNone {
		m.role = model.RoleCustomer
		m.status = "Signed in as customer"
		slog.Debug("Signed in", "role", m.role)
	}
	return m.navigate(dashboardFor(m.role))
}

// signOut clears the role and leaves any dashboard.
func (m Model) signOut() (Model, tea.Cmd) {
	if m.role == model.RoleNone {
		return m, nil
	}
	slog.Debug("Signed out", "role", m.role)
	m.role = model.RoleNone
	m.status = "Signed out"
	if m.onDashboard() {
		return m.navigate(components.ScreenHome)
	}
	return m, nil
}

// switchRole flips between customer and provider for demos.
func (m Model) switchRole() (Model, tea.Cmd) {
	if m.role == model.RoleProvider {
		m.role = model.RoleCustomer
	} else {
		m.role = model.RoleProvider
	}
	m.status = fmt.Sprintf("Viewing as %s", m.role)
	slog.Debug("Role switched", "role", m.role)
	if m.onDashboard() {
		return m.navigate(dashboardFor(m.role))
	}
	return m, nil
}

func (m Model) onDashboard() bool {
	return m.screen == components.ScreenCustomerDashboard || m.screen == components.ScreenProviderDashboard
}

// search opens the browse screen filtered by service and query.
func (m Model) search(service, query string) (Model, tea.Cmd) {
	m.browse = m.browse.SetSearch(service, query)
	slog.Debug("Search", "service", service, "query", query, "results", len(m.browse.Results()))
	return m.navigate(components.ScreenBrowse)
}

// viewProfile opens a provider's profile.
func (m Model) viewProfile(id string) (Model, tea.Cmd) {
	p, ok := m.snapshot.Provider(id)
	if !ok {
		m.status = fmt.Sprintf("Provider %s not found", id)
		return m, nil
	}
	m.profile = components.NewProfileModel(p, m.snapshot.Reviews[id], m.theme)
	m.profile.Resize(m.width, m.bodyHeight())
	m.hasProfile = true
	return m.navigate(components.ScreenProfile)
}

// handleCatalogLoaded builds every screen from the loaded data.
func (m Model) handleCatalogLoaded(msg catalogLoadedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		m.lastError = msg.err
		common.LogError(msg.err, "Catalog load failed", common.Fields{"screen": m.config.Screen.String()})
		return m, nil
	}

	s := msg.snapshot
	m.snapshot = s
	m.home = components.NewHomeModel(m.theme)
	m.browse = components.NewBrowseModel(s.Providers, m.config.Criteria, m.theme)
	m.customer = components.NewCustomerDashboard(s.Bookings, s.Providers, m.theme)
	m.provider = components.NewProviderDashboard(s.Jobs, viewmodel.JobsRating(s.Jobs, s.Providers), m.theme)
	m.packages = components.NewPackagesModel(s.Packages, m.theme)
	m.quote = components.NewQuoteModel(m.config.Estimator, m.theme)
	m.tracking = components.NewTrackingModel(m.config.TrackingInterval, m.theme)
	m.becomeProvider = components.NewBecomeProviderModel(m.theme)
	m.ready = true
	m.handleResize()

	common.LogDebug("Catalog loaded", common.Fields{
		"providers": len(s.Providers),
		"bookings":  len(s.Bookings),
		"jobs":      len(s.Jobs),
		"packages":  len(s.Packages),
	})

	return m.navigate(m.config.Screen)
}

// bodyHeight is the height left for the active screen under the header and
// above the status bar.
func (m Model) bodyHeight() int {
	return max(5, m.height-headerHeight-statusHeight)
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	m.help.Width = m.width
	if !m.ready {
		return
	}
	h := m.bodyHeight()
	m.home.Resize(m.width, h)
	m.browse.Resize(m.width, h)
	if m.hasProfile {
		m.profile.Resize(m.width, h)
	}
	m.customer.Resize(m.width, h)
	m.provider.Resize(m.width, h)
	m.packages.Resize(m.width, h)
	m.quote.Resize(m.width, h)
	m.tracking.Resize(m.width, h)
	m.becomeProvider.Resize(m.width, h)
	if m.booking != nil {
		m.booking.Resize(m.width, h)
	}
}
