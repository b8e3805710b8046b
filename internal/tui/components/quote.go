package components

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/homeserve/internal/quote"
	"github.com/Veraticus/homeserve/internal/tui/themes"
	"github.com/Veraticus/homeserve/internal/tui/viewmodel"
	"github.com/Veraticus/homeserve/internal/wizard"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Buttons on the result card.
const (
	quoteActionFind = iota
	quoteActionAgain
)

// QuoteModel is the instant quote estimator: service, property size, then
// urgency and add-ons, followed by the computed price range.
type QuoteModel struct {
	theme     themes.Theme
	estimator *quote.Estimator
	wizard    wizard.Wizard[quote.Inputs]
	inputs    quote.Inputs
	result    *quote.Result
	progress  progress.Model
	errMsg    string
	cursor    int
	action    int
	width     int
	height    int
}

// NewQuoteModel creates the quote screen. A nil estimator uses a clock-seeded one.
func NewQuoteModel(estimator *quote.Estimator, theme themes.Theme) QuoteModel {
	if estimator == nil {
		estimator = quote.NewEstimator()
	}
	bar := progress.New(progress.WithSolidFill(string(theme.Primary)), progress.WithoutPercentage())
	bar.Width = 40
	return QuoteModel{
		theme:     theme,
		estimator: estimator,
		wizard:    wizard.NewQuote(),
		inputs:    quote.Inputs{Urgency: quote.UrgencyStandard},
		progress:  bar,
		width:     80,
		height:    24,
	}
}

// Inputs returns the selections made so far.
func (m QuoteModel) Inputs() quote.Inputs {
	return m.inputs
}

// Result returns the computed quote, if any.
func (m QuoteModel) Result() (quote.Result, bool) {
	if m.result == nil {
		return quote.Result{}, false
	}
	return *m.result, true
}

// Step is the zero-based wizard step.
func (m QuoteModel) Step() int {
	return m.wizard.Current()
}

// Update handles messages.
func (m QuoteModel) Update(msg tea.Msg) (QuoteModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.wizard.Submitted() {
		return m.updateResult(keyMsg)
	}

	switch keyMsg.String() {
	case "up", "k":
		m.cursor = max(0, m.cursor-1)
	case "down", "j":
		m.cursor = min(m.rows()-1, m.cursor+1)
	case " ":
		m.choose()
	case "enter":
		return m.advance()
	case "esc":
		if m.wizard.IsFirst() {
			return m, send(BackMsg{})
		}
		m.wizard, _ = m.wizard.Back()
		m.cursor = 0
		m.errMsg = ""
	}
	return m, nil
}

func (m QuoteModel) updateResult(msg tea.KeyMsg) (QuoteModel, tea.Cmd) {
	switch msg.String() {
	case "left", "h", "right", "l", "tab":
		m.action = 1 - m.action
	case "enter":
		if m.action == quoteActionAgain {
			return m.reset(), nil
		}
		return m, send(SearchRequestedMsg{Service: m.result.ServiceType})
	case "esc":
		m.wizard, _ = m.wizard.Back()
		m.result = nil
	}
	return m, nil
}

// rows is how many choices the active step lists.
func (m QuoteModel) rows() int {
	switch m.wizard.Current() {
	case 0:
		return len(quote.ServiceTypes())
	case 1:
		return len(quote.PropertySizes())
	}
	return len(quote.Urgencies()) + len(quote.AddOns())
}

// choose applies the choice under the cursor.
func (m *QuoteModel) choose() {
	switch m.wizard.Current() {
	case 0:
		m.inputs.ServiceType = quote.ServiceTypes()[m.cursor].ID
	case 1:
		m.inputs.PropertySize = quote.PropertySizes()[m.cursor].ID
	default:
		urgencies := quote.Urgencies()
		if m.cursor < len(urgencies) {
			m.inputs.Urgency = quote.Urgency(urgencies[m.cursor].ID)
			return
		}
		m.inputs = m.inputs.ToggleAddOn(quote.AddOns()[m.cursor-len(urgencies)].ID)
	}
}

func (m QuoteModel) advance() (QuoteModel, tea.Cmd) {
	// Enter on a single-choice step picks the highlighted option.
	if m.wizard.Current() < 2 {
		m.choose()
	}

	if !m.wizard.IsLast() {
		w, ok := m.wizard.Next(m.inputs)
		if !ok {
			m.errMsg = "Please make a selection"
			return m, nil
		}
		m.wizard = w
		m.cursor = 0
		m.errMsg = ""
		return m, nil
	}

	w, ok := m.wizard.Submit(m.inputs)
	if !ok {
		return m, nil
	}
	result, ok := m.estimator.Estimate(m.inputs)
	if !ok {
		m.errMsg = "Please choose a service and property size"
		return m, nil
	}
	m.wizard = w
	m.result = &result
	m.action = quoteActionFind
	m.errMsg = ""
	slog.Debug("Quote calculated",
		"service", result.ServiceType,
		"min", result.MinPrice,
		"max", result.MaxPrice)
	return m, nil
}

func (m QuoteModel) reset() QuoteModel {
	m.wizard = m.wizard.Reset()
	m.inputs = quote.Inputs{Urgency: quote.UrgencyStandard}
	m.result = nil
	m.cursor = 0
	m.action = quoteActionFind
	m.errMsg = ""
	return m
}

// View renders the quote screen.
func (m QuoteModel) View() string {
	step := m.wizard.Current()
	if m.wizard.Submitted() {
		step = m.wizard.Len()
	}

	var body string
	switch {
	case m.wizard.Submitted():
		body = m.renderResult()
	case m.wizard.Current() == 0:
		body = m.renderOptions("What service do you need?", quote.ServiceTypes(), m.inputs.ServiceType)
	case m.wizard.Current() == 1:
		body = m.renderOptions("How large is your property?", quote.PropertySizes(), m.inputs.PropertySize)
	default:
		body = m.renderExtras()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Instant Quote Estimator"),
		m.theme.Subtitle.Render("Get an estimated price range in seconds"),
		renderStepper(m.theme, append(m.wizard.Titles(), "Quote"), step),
		m.progress.ViewAs(m.wizard.Progress()),
		"",
		body,
		renderError(m.theme, m.errMsg),
		"",
		m.renderFooter(),
	)
}

func (m QuoteModel) renderOptions(question string, options []quote.Option, chosen string) string {
	lines := []string{m.theme.Bold.Render(question)}
	for i, o := range options {
		label := o.Name
		if o.Hint != "" {
			label += lipgloss.NewStyle().Foreground(m.theme.Muted).Render(" · " + o.Hint)
		}
		lines = append(lines, renderChoice(m.theme, label, i == m.cursor, o.ID == chosen))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m QuoteModel) renderExtras() string {
	urgencies := quote.Urgencies()
	lines := []string{m.theme.Bold.Render("How soon do you need it?")}
	for i, u := range urgencies {
		label := fmt.Sprintf("%s · %s (×%.1f)", u.Name, u.Hint, u.Value)
		lines = append(lines, renderChoice(m.theme, label, i == m.cursor, quote.Urgency(u.ID) == m.inputs.Urgency))
	}

	lines = append(lines, "", m.theme.Bold.Render("Add-ons"))
	for i, a := range quote.AddOns() {
		label := fmt.Sprintf("%s (+%s)", a.Name, viewmodel.FormatMoney(a.Value))
		lines = append(lines, renderCheck(m.theme, label, len(urgencies)+i == m.cursor, m.inputs.HasAddOn(a.ID)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m QuoteModel) renderResult() string {
	r := m.result
	service, _ := quote.LookupService(r.ServiceType)
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)

	card := m.theme.RoundedBox.BorderForeground(m.theme.Primary).Render(lipgloss.JoinVertical(lipgloss.Center,
		muted.Render("Estimated Price Range"),
		m.theme.Title.Render(fmt.Sprintf("%s - %s", viewmodel.FormatMoney(float64(r.MinPrice)), viewmodel.FormatMoney(float64(r.MaxPrice)))),
		fmt.Sprintf("Most likely: %s", m.theme.Bold.Render(viewmodel.FormatMoney(float64(r.EstimatedPrice)))),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		card,
		muted.Render("Service: ")+service.Name,
		muted.Render("Estimated duration: ")+r.Duration,
		muted.Render("Available providers: ")+fmt.Sprintf("%d nearby", r.NearbyProviders),
		"",
		renderButton(m.theme, "Find Providers at This Price", m.action == quoteActionFind)+"  "+
			renderButton(m.theme, "Get Another Quote", m.action == quoteActionAgain),
		muted.Render("Final price may vary based on the actual scope of work."),
	)
}

func (m QuoteModel) renderFooter() string {
	if m.wizard.Submitted() {
		return renderHints(m.theme, "[←→] Choose", "[Enter] Go", "[Esc] Edit options")
	}
	if m.wizard.IsLast() {
		return renderHints(m.theme, "[↑↓] Navigate", "[Space] Select", "[Enter] Get Quote", "[Esc] Back")
	}
	return renderHints(m.theme, "[↑↓] Navigate", "[Enter] Next", "[Esc] Back")
}

// Resize updates the component size.
func (m *QuoteModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.progress.Width = min(60, max(20, width-4))
}
