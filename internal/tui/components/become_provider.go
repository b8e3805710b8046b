package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/homeserve/internal/common"
	"github.com/Veraticus/homeserve/internal/model"
	"github.com/Veraticus/homeserve/internal/tui/themes"
	"github.com/Veraticus/homeserve/internal/wizard"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Application steps.
const (
	appStepPersonal = iota
	appStepServices
	appStepPricing
	appStepPortfolio
	appStepVerification
	appStepPayment
)

type controlKind int

const (
	controlField controlKind = iota
	controlCategory
	controlDescription
	controlDays
	controlConsent
)

// control is one focusable element of a step. field indexes the step's
// fieldSet for controlField.
type control struct {
	kind  controlKind
	field int
}

func fields(n int) []control {
	out := make([]control, n)
	for i := range out {
		out[i] = control{kind: controlField, field: i}
	}
	return out
}

// applicationLayout lists each step's controls in tab order.
var applicationLayout = [][]control{
	appStepPersonal:     fields(5),
	appStepServices:     {{kind: controlCategory}, {kind: controlField, field: 0}, {kind: controlField, field: 1}, {kind: controlDescription}},
	appStepPricing:      {{kind: controlField, field: 0}, {kind: controlField, field: 1}, {kind: controlDays}},
	appStepPortfolio:    fields(5),
	appStepVerification: {{kind: controlField, field: 0}, {kind: controlConsent}},
	appStepPayment:      fields(2),
}

// Portfolio step fields.
const (
	certName = iota
	certIssuer
	certYear
	workTitle
	workDescription
)

// BecomeProviderModel is the six-step provider onboarding wizard.
type BecomeProviderModel struct {
	theme       themes.Theme
	wizard      wizard.Wizard[model.ProviderApplication]
	app         model.ProviderApplication
	steps       []fieldSet
	description textarea.Model
	progress    progress.Model
	errMsg      string
	focus       int
	category    int
	day         int
	width       int
	height      int
}

// NewBecomeProviderModel creates the onboarding wizard on its first step.
func NewBecomeProviderModel(theme themes.Theme) BecomeProviderModel {
	desc := textarea.New()
	desc.Placeholder = "Tell customers about your business and experience..."
	desc.SetWidth(50)
	desc.SetHeight(3)
	desc.ShowLineNumbers = false

	bar := progress.New(progress.WithSolidFill(string(theme.Primary)), progress.WithoutPercentage())
	bar.Width = 40

	m := BecomeProviderModel{
		theme:       theme,
		wizard:      wizard.NewApplication(),
		description: desc,
		progress:    bar,
		category:    -1,
		width:       80,
		height:      24,
	}
	m.steps = []fieldSet{
		appStepPersonal: newFieldSet(
			fieldSpec{label: "First name *", placeholder: "John"},
			fieldSpec{label: "Last name *", placeholder: "Smith"},
			fieldSpec{label: "Email *", placeholder: "john@example.com"},
			fieldSpec{label: "Phone *", placeholder: "(555) 123-4567", limit: 20},
			fieldSpec{label: "Business name", placeholder: "Optional"},
		),
		appStepServices: newFieldSet(
			fieldSpec{label: "Specialization *", placeholder: "e.g. Water heaters, then Enter"},
			fieldSpec{label: "Experience", placeholder: "Years in business", limit: 3},
		),
		appStepPricing: newFieldSet(
			fieldSpec{label: "Hourly rate *", placeholder: "75", limit: 6},
			fieldSpec{label: "Travel radius", placeholder: "Miles", limit: 4},
		),
		appStepPortfolio: newFieldSet(
			fieldSpec{label: "Certification", placeholder: "e.g. Master Plumber License"},
			fieldSpec{label: "Issuer", placeholder: "Issuing organization"},
			fieldSpec{label: "Year", placeholder: "2020", limit: 4},
			fieldSpec{label: "Work title", placeholder: "e.g. Kitchen remodel"},
			fieldSpec{label: "Work description", placeholder: "What you did"},
		),
		appStepVerification: newFieldSet(
			fieldSpec{label: "Insurance", placeholder: "Provider and policy number"},
		),
		appStepPayment: newFieldSet(
			fieldSpec{label: "Bank account", placeholder: "Account number", limit: 20},
			fieldSpec{label: "Tax ID", placeholder: "EIN or SSN", limit: 11},
		),
	}
	m.focusControl()
	return m
}

// Application returns the data entered so far.
func (m BecomeProviderModel) Application() model.ProviderApplication {
	return m.app
}

// Step is the zero-based wizard step.
func (m BecomeProviderModel) Step() int {
	return m.wizard.Current()
}

// Submitted reports whether the application was sent.
func (m BecomeProviderModel) Submitted() bool {
	return m.wizard.Submitted()
}

// Typing reports whether a text field has the keyboard.
func (m BecomeProviderModel) Typing() bool {
	if m.wizard.Submitted() {
		return false
	}
	switch m.current().kind {
	case controlField, controlDescription:
		return true
	}
	return false
}

func (m BecomeProviderModel) current() control {
	return applicationLayout[m.wizard.Current()][m.focus]
}

// Update handles messages.
func (m BecomeProviderModel) Update(msg tea.Msg) (BecomeProviderModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.wizard.Submitted() {
		if keyMsg.String() == "enter" {
			return m, send(NavigateMsg{Screen: ScreenHome})
		}
		return m, nil
	}

	step := m.wizard.Current()
	ctl := m.current()

	switch keyMsg.String() {
	case "tab":
		return m, m.moveFocus(1)
	case "shift+tab":
		return m, m.moveFocus(-1)
	case "esc":
		if m.wizard.IsFirst() {
			return m, send(BackMsg{})
		}
		m.wizard, _ = m.wizard.Back()
		m.errMsg = ""
		return m, m.resetFocus()
	case "enter":
		if m.collect(step, ctl) {
			return m, nil
		}
		return m.advance()
	}

	switch ctl.kind {
	case controlCategory:
		n := len(wizard.ServiceCategories)
		switch keyMsg.String() {
		case "left", "h":
			m.category = (max(0, m.category) + n - 1) % n
		case "right", "l", " ":
			m.category = (m.category + 1) % n
		}
		if m.category >= 0 {
			m.app.ServiceCategory = wizard.ServiceCategories[m.category]
		}
	case controlDays:
		n := len(wizard.Weekdays)
		switch keyMsg.String() {
		case "left", "h":
			m.day = (m.day + n - 1) % n
		case "right", "l":
			m.day = (m.day + 1) % n
		case " ":
			m.app.ToggleDay(wizard.Weekdays[m.day])
		}
	case controlConsent:
		if keyMsg.String() == " " {
			m.app.BackgroundCheckConsent = !m.app.BackgroundCheckConsent
		}
	case controlDescription:
		var cmd tea.Cmd
		m.description, cmd = m.description.Update(msg)
		m.app.Description = strings.TrimSpace(m.description.Value())
		return m, cmd
	case controlField:
		if step == appStepServices && ctl.field == 0 && keyMsg.Type == tea.KeyBackspace &&
			m.steps[step].Value(0) == "" && len(m.app.Specializations) > 0 {
			m.app.RemoveSpecialization(len(m.app.Specializations) - 1)
			return m, nil
		}
		var cmd tea.Cmd
		m.steps[step], cmd = m.steps[step].Update(msg)
		m.sync(step)
		return m, cmd
	}
	return m, nil
}

// collect handles Enter on the fields that add list entries. It reports
// whether the key was consumed.
func (m *BecomeProviderModel) collect(step int, ctl control) bool {
	if ctl.kind != controlField {
		return false
	}
	f := &m.steps[step]
	switch {
	case step == appStepServices && ctl.field == 0:
		if !m.app.AddSpecialization(f.Value(0)) {
			return false
		}
		f.SetValue(0, "")
		return true
	case step == appStepPortfolio && ctl.field <= certYear:
		if f.Value(certName) == "" {
			return false
		}
		m.app.Certifications = append(m.app.Certifications, model.ApplicationCertification{
			Name:   f.Value(certName),
			Issuer: f.Value(certIssuer),
			Year:   f.Value(certYear),
		})
		f.SetValue(certName, "")
		f.SetValue(certIssuer, "")
		f.SetValue(certYear, "")
		return true
	case step == appStepPortfolio:
		if f.Value(workTitle) == "" {
			return false
		}
		m.app.PortfolioItems = append(m.app.PortfolioItems, model.ApplicationPortfolioItem{
			Title:       f.Value(workTitle),
			Description: f.Value(workDescription),
		})
		f.SetValue(workTitle, "")
		f.SetValue(workDescription, "")
		return true
	}
	return false
}

// sync copies a step's text fields into the application.
func (m *BecomeProviderModel) sync(step int) {
	f := m.steps[step]
	switch step {
	case appStepPersonal:
		m.app.FirstName = f.Value(0)
		m.app.LastName = f.Value(1)
		m.app.Email = f.Value(2)
		m.app.Phone = f.Value(3)
		m.app.BusinessName = f.Value(4)
	case appStepServices:
		m.app.Experience = f.Value(1)
	case appStepPricing:
		m.app.HourlyRate = f.Value(0)
		m.app.TravelRadius = f.Value(1)
	case appStepVerification:
		m.app.InsuranceInfo = f.Value(0)
	case appStepPayment:
		m.app.BankAccount = f.Value(0)
		m.app.TaxID = f.Value(1)
	}
}

func (m BecomeProviderModel) advance() (BecomeProviderModel, tea.Cmd) {
	if m.wizard.IsLast() {
		w, ok := m.wizard.Submit(m.app)
		if !ok {
			m.errMsg = "Please complete the required fields"
			return m, nil
		}
		m.wizard = w
		m.errMsg = ""
		m.app.ReferenceID = "APP-" + strings.ToUpper(uuid.NewString()[:8])
		m.blurAll()
		common.LogInfo("Provider application submitted", common.Fields{
			"reference":       m.app.ReferenceID,
			"category":        m.app.ServiceCategory,
			"specializations": len(m.app.Specializations),
		})
		return m, send(ApplicationSubmittedMsg{ReferenceID: m.app.ReferenceID, Name: m.app.FullName()})
	}

	w, ok := m.wizard.Next(m.app)
	if !ok {
		m.errMsg = m.missing()
		return m, nil
	}
	m.wizard = w
	m.errMsg = ""
	return m, m.resetFocus()
}

// missing explains why the current step cannot be left.
func (m BecomeProviderModel) missing() string {
	switch m.wizard.Current() {
	case appStepServices:
		return "Choose a category, add at least one specialization, and describe your services"
	case appStepPricing:
		return "Enter an hourly rate and pick at least one available day"
	case appStepVerification:
		return "Consent to the background check to continue"
	}
	return "Please complete the required fields"
}

func (m *BecomeProviderModel) resetFocus() tea.Cmd {
	m.focus = 0
	return m.focusControl()
}

func (m *BecomeProviderModel) moveFocus(delta int) tea.Cmd {
	n := len(applicationLayout[m.wizard.Current()])
	m.focus = (m.focus + delta + n) % n
	return m.focusControl()
}

func (m *BecomeProviderModel) blurAll() {
	for i := range m.steps {
		m.steps[i].Blur()
	}
	m.description.Blur()
}

func (m *BecomeProviderModel) focusControl() tea.Cmd {
	m.blurAll()
	ctl := m.current()
	switch ctl.kind {
	case controlField:
		return m.steps[m.wizard.Current()].Focus(ctl.field)
	case controlDescription:
		return m.description.Focus()
	}
	return nil
}

// View renders the wizard.
func (m BecomeProviderModel) View() string {
	if m.wizard.Submitted() {
		return m.renderSubmitted()
	}

	var body string
	switch m.wizard.Current() {
	case appStepPersonal:
		body = m.renderPersonal()
	case appStepServices:
		body = m.renderServices()
	case appStepPricing:
		body = m.renderPricing()
	case appStepPortfolio:
		body = m.renderPortfolio()
	case appStepVerification:
		body = m.renderVerification()
	case appStepPayment:
		body = m.renderPayment()
	}

	next := "[Enter] Next"
	if m.wizard.IsLast() {
		next = "[Enter] Submit Application"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Become a Service Provider"),
		m.theme.Subtitle.Render("Join our network of trusted professionals"),
		renderStepper(m.theme, m.wizard.Titles(), m.wizard.Current()),
		m.progress.ViewAs(m.wizard.Progress()),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(
			fmt.Sprintf("Step %d of %d", m.wizard.Current()+1, m.wizard.Len())),
		"",
		body,
		"",
		renderError(m.theme, m.errMsg),
		renderHints(m.theme, "[Tab] Next field", next, "[Esc] Back"),
	)
}

func (m BecomeProviderModel) focused(kind controlKind) bool {
	return m.current().kind == kind
}

func (m BecomeProviderModel) heading(title, subtitle string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Bold.Render(title),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(subtitle),
	)
}

func (m BecomeProviderModel) renderPersonal() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.heading("Personal Information", "Tell us about yourself"),
		m.steps[appStepPersonal].View(m.theme),
	)
}

func (m BecomeProviderModel) renderServices() string {
	category := "‹ choose ›"
	if m.category >= 0 {
		category = "‹ " + wizard.ServiceCategories[m.category] + " ›"
	}
	if m.focused(controlCategory) {
		category = m.theme.Selected.Render(category)
	}

	tags := make([]string, len(m.app.Specializations))
	for i, s := range m.app.Specializations {
		tags[i] = m.theme.Highlighted.Padding(0, 1).Render(s)
	}
	tagLine := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("none yet")
	if len(tags) > 0 {
		tagLine = strings.Join(tags, " ")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.heading("Service Details", "What services do you provide?"),
		"Category *  "+category,
		m.steps[appStepServices].View(m.theme),
		"Added: "+tagLine,
		"Description *",
		m.description.View(),
	)
}

func (m BecomeProviderModel) renderPricing() string {
	days := make([]string, len(wizard.Weekdays))
	for i, d := range wizard.Weekdays {
		label := renderCheck(m.theme, d[:3], m.focused(controlDays) && i == m.day, m.app.HasDay(d))
		days[i] = label
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.heading("Pricing & Availability", "Set your rates and schedule"),
		m.steps[appStepPricing].View(m.theme),
		"",
		"Available days *",
		lipgloss.JoinHorizontal(lipgloss.Top, days...),
	)
}

func (m BecomeProviderModel) renderPortfolio() string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	lines := []string{
		m.heading("Certifications & Portfolio", "Optional, but profiles with credentials get more bookings"),
		m.steps[appStepPortfolio].View(m.theme),
		muted.Render("Press Enter on a filled certification or work sample to add it."),
	}
	for _, c := range m.app.Certifications {
		lines = append(lines, fmt.Sprintf("  🏅 %s · %s %s", c.Name, c.Issuer, c.Year))
	}
	for _, p := range m.app.PortfolioItems {
		lines = append(lines, "  🖼  "+p.Title)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m BecomeProviderModel) renderVerification() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.heading("Verification & Trust", "Help customers trust your services"),
		m.theme.BorderedBox.Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left,
			m.theme.StatusInfo.Render("Background Check Required"),
			"• Criminal background check",
			"• Identity verification",
			"• Professional license verification (if applicable)",
		)),
		m.steps[appStepVerification].View(m.theme),
		renderCheck(m.theme, "I consent to a background check *", m.focused(controlConsent), m.app.BackgroundCheckConsent),
	)
}

func (m BecomeProviderModel) renderPayment() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.heading("Payment Information", "How you'll receive payments"),
		m.theme.BorderedBox.Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left,
			m.theme.StatusSuccess.Render("Payment Terms"),
			"• Payments released within 24 hours of job completion",
			"• 15% platform fee per booking",
			"• Weekly direct deposits to your bank account",
		)),
		m.steps[appStepPayment].View(m.theme),
	)
}

func (m BecomeProviderModel) renderSubmitted() string {
	steps := []string{
		"We'll verify your credentials and certifications",
		"Background check will be processed (1-2 business days)",
		"You'll receive an email with your profile setup instructions",
		"Once approved, you can start accepting bookings!",
	}
	lines := []string{
		m.theme.StatusSuccess.Render("✓ Application Submitted!"),
		"",
		"Thank you for applying, " + m.app.FirstName + ". Our team will review your application",
		"and get back to you within 2-3 business days.",
		"",
		"Reference: " + m.theme.Code.Render(m.app.ReferenceID),
		"",
		m.theme.Bold.Render("What Happens Next?"),
	}
	for i, s := range steps {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, s))
	}
	lines = append(lines, "", renderButton(m.theme, "Back to Home", true))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Resize updates the component size.
func (m *BecomeProviderModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.description.SetWidth(min(70, max(20, width-6)))
	m.progress.Width = min(60, max(20, width-4))
}
