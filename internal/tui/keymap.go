package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keyboard shortcuts. They are only active while
// no text field has focus and no modal is open.
type KeyMap struct {
	// Navigation
	Home           key.Binding
	Browse         key.Binding
	Packages       key.Binding
	Quote          key.Binding
	BecomeProvider key.Binding
	Tracking       key.Binding
	Dashboard      key.Binding

	// Account
	SignIn     key.Binding
	SignOut    key.Binding
	SwitchRole key.Binding

	// Application
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
	ClearScreen key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		Browse: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "browse"),
		),
		Packages: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "packages"),
		),
		Quote: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "get quote"),
		),
		BecomeProvider: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "become a provider"),
		),
		Tracking: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "track"),
		),
		Dashboard: key.NewBinding(
			key.WithKeys("7"),
			key.WithHelp("7", "my bookings/jobs"),
		),

		// Account
		SignIn: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "sign in"),
		),
		SignOut: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sign out"),
		),
		SwitchRole: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "switch role"),
		),

		// Application
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "clear screen"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Home, k.Browse, k.Quote, k.SignIn, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Browse, k.Packages, k.Quote},
		{k.BecomeProvider, k.Tracking, k.Dashboard},
		{k.SignIn, k.SignOut, k.SwitchRole},
		{k.Help, k.Quit, k.ForceQuit, k.ClearScreen},
	}
}
