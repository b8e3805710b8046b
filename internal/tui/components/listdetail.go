package components

import (
	"github.com/Veraticus/homeserve/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Renderer is the per-entity strategy a ListDetail draws with.
type Renderer[T any] interface {
	Columns(width int) []table.Column
	Row(item T) table.Row
	Detail(item T, width int) string
}

// sideBySideWidth is the narrowest width at which the detail pane sits beside
// the table instead of under it.
const sideBySideWidth = 100

// ListDetail is a table of items with a detail pane for the highlighted one.
type ListDetail[T any] struct {
	renderer Renderer[T]
	theme    themes.Theme
	empty    string
	items    []T
	table    table.Model
	width    int
	height   int
}

// listKeyMap keeps the table to arrow and vim movement so screens are free to
// bind the remaining letters.
func listKeyMap() table.KeyMap {
	return table.KeyMap{
		LineUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		LineDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "page down"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("Home", "first"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("End", "last"),
		),
	}
}

// NewListDetail creates an empty list. empty is shown when there are no items.
func NewListDetail[T any](r Renderer[T], theme themes.Theme, empty string) ListDetail[T] {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithKeyMap(listKeyMap()),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	l := ListDetail[T]{
		renderer: r,
		theme:    theme,
		empty:    empty,
		table:    t,
		width:    80,
		height:   20,
	}
	l.Resize(l.width, l.height)
	return l
}

// SetItems replaces the items and moves the cursor to the first one.
func (l ListDetail[T]) SetItems(items []T) ListDetail[T] {
	l.items = items
	rows := make([]table.Row, len(items))
	for i, item := range items {
		rows[i] = l.renderer.Row(item)
	}
	l.table.SetRows(rows)
	l.table.SetCursor(0)
	return l
}

// Items returns the listed items.
func (l ListDetail[T]) Items() []T {
	return l.items
}

// Len is the number of items.
func (l ListDetail[T]) Len() int {
	return len(l.items)
}

// Cursor is the index of the highlighted item.
func (l ListDetail[T]) Cursor() int {
	return l.table.Cursor()
}

// Selected returns the highlighted item.
func (l ListDetail[T]) Selected() (T, bool) {
	i := l.table.Cursor()
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Update moves the cursor.
func (l ListDetail[T]) Update(msg tea.Msg) (ListDetail[T], tea.Cmd) {
	var cmd tea.Cmd
	l.table, cmd = l.table.Update(msg)
	return l, cmd
}

// View renders the table and the detail pane, or the empty message.
func (l ListDetail[T]) View() string {
	if len(l.items) == 0 {
		return lipgloss.NewStyle().
			Foreground(l.theme.Muted).
			Padding(1, 2).
			Render(l.empty)
	}

	item, _ := l.Selected()
	if l.width >= sideBySideWidth {
		detailWidth := l.width - l.tableWidth() - 4
		detail := l.theme.RoundedBox.
			Width(detailWidth).
			Render(l.renderer.Detail(item, detailWidth-4))
		return lipgloss.JoinHorizontal(lipgloss.Top, l.table.View(), "  ", detail)
	}

	detail := l.theme.RoundedBox.
		Width(max(20, l.width-2)).
		Render(l.renderer.Detail(item, max(16, l.width-6)))
	return lipgloss.JoinVertical(lipgloss.Left, l.table.View(), detail)
}

// Resize updates the component size.
func (l *ListDetail[T]) Resize(width, height int) {
	l.width = width
	l.height = height

	tableWidth := l.tableWidth()
	l.table.SetColumns(l.renderer.Columns(tableWidth))
	l.table.SetWidth(tableWidth)
	if width >= sideBySideWidth {
		l.table.SetHeight(max(3, height))
	} else {
		l.table.SetHeight(max(3, height/2))
	}
}

func (l ListDetail[T]) tableWidth() int {
	if l.width >= sideBySideWidth {
		return l.width * 3 / 5
	}
	return max(40, l.width)
}
