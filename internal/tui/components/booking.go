package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/homeserve/internal/common"
	"github.com/Veraticus/homeserve/internal/model"
	"github.com/Veraticus/homeserve/internal/tui/themes"
	"github.com/Veraticus/homeserve/internal/tui/viewmodel"
	"github.com/Veraticus/homeserve/internal/wizard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Controls on the details step, in tab order.
const (
	bookingFocusDate = iota
	bookingFocusSlot
	bookingFocusHours
	bookingFocusDescription
	bookingFocusCount
)

// Payment fields.
const (
	paymentCard = iota
	paymentExpiry
	paymentCVV
	paymentName
)

// BookingModel is the booking modal: service details, then payment, then a
// confirmation.
type BookingModel struct {
	theme          themes.Theme
	provider       model.ServiceProvider
	wizard         wizard.Wizard[wizard.BookingForm]
	form           wizard.BookingForm
	details        fieldSet
	payment        fieldSet
	description    textarea.Model
	confirmationID string
	errMsg         string
	focus          int
	slot           int
	width          int
	height         int
}

// NewBookingModel opens the booking flow for p.
func NewBookingModel(p model.ServiceProvider, theme themes.Theme) BookingModel {
	desc := textarea.New()
	desc.Placeholder = "Describe the work you need done..."
	desc.SetWidth(40)
	desc.SetHeight(3)
	desc.ShowLineNumbers = false

	m := BookingModel{
		theme:    theme,
		provider: p,
		wizard:   wizard.NewBooking(),
		form:     wizard.NewBookingForm(p.HourlyRate),
		details: newFieldSet(
			fieldSpec{label: "Date", placeholder: "YYYY-MM-DD", limit: 10},
		),
		payment: newFieldSet(
			fieldSpec{label: "Card number", placeholder: "1234 5678 9012 3456", limit: 19},
			fieldSpec{label: "Expiry", placeholder: "MM/YY", limit: 5},
			fieldSpec{label: "CVV", placeholder: "123", limit: 4},
			fieldSpec{label: "Cardholder", placeholder: "Name on card"},
		),
		description: desc,
		slot:        -1,
		width:       80,
		height:      24,
	}
	m.details.Focus(0)
	return m
}

// Form returns the data entered so far.
func (m BookingModel) Form() wizard.BookingForm {
	return m.form
}

// Step is the zero-based wizard step.
func (m BookingModel) Step() int {
	return m.wizard.Current()
}

// Confirmed reports whether the booking was submitted.
func (m BookingModel) Confirmed() bool {
	return m.wizard.Submitted()
}

// ConfirmationID is the confirmation number, empty until submitted.
func (m BookingModel) ConfirmationID() string {
	return m.confirmationID
}

// Update handles messages.
func (m BookingModel) Update(msg tea.Msg) (BookingModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.wizard.Submitted() {
		switch keyMsg.String() {
		case "enter", "esc":
			return m, send(CloseBookingMsg{ConfirmationID: m.confirmationID})
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		if m.wizard.IsFirst() {
			return m, send(CloseBookingMsg{})
		}
		m.wizard, _ = m.wizard.Back()
		m.errMsg = ""
		return m, m.focusStep()
	case "tab":
		return m, m.moveFocus(1)
	case "shift+tab":
		return m, m.moveFocus(-1)
	case "enter":
		return m.advance()
	}

	if m.wizard.Current() == 1 {
		var cmd tea.Cmd
		m.payment, cmd = m.payment.Update(msg)
		m.syncPayment()
		return m, cmd
	}
	return m.updateDetails(keyMsg)
}

func (m BookingModel) updateDetails(msg tea.KeyMsg) (BookingModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case bookingFocusDate:
		m.details, cmd = m.details.Update(msg)
		m.form.Date = m.details.Value(0)
	case bookingFocusSlot:
		switch msg.String() {
		case "left", "h":
			m.slot = max(0, m.slot-1)
		case "right", "l":
			m.slot = min(len(wizard.TimeSlots)-1, m.slot+1)
		}
		if m.slot >= 0 {
			m.form.TimeSlot = wizard.TimeSlots[m.slot]
		}
	case bookingFocusHours:
		switch msg.String() {
		case "left", "h", "-":
			m.form = m.form.SetHours(m.form.Hours - 1)
		case "right", "l", "+":
			m.form = m.form.SetHours(m.form.Hours + 1)
		}
	case bookingFocusDescription:
		m.description, cmd = m.description.Update(msg)
		m.form.Description = m.description.Value()
	}
	return m, cmd
}

func (m *BookingModel) syncPayment() {
	m.form.CardNumber = m.payment.Value(paymentCard)
	m.form.Expiry = m.payment.Value(paymentExpiry)
	m.form.CVV = m.payment.Value(paymentCVV)
	m.form.CardholderName = m.payment.Value(paymentName)
}

func (m BookingModel) advance() (BookingModel, tea.Cmd) {
	if m.wizard.IsLast() {
		w, ok := m.wizard.Submit(m.form)
		if !ok {
			m.errMsg = "Please complete all payment fields"
			return m, nil
		}
		m.wizard = w
		m.errMsg = ""
		m.confirmationID = strings.ToUpper(uuid.NewString()[:8])
		m.payment.Blur()
		common.LogInfo("Booking confirmed", common.Fields{
			"confirmation": m.confirmationID,
			"provider":     m.provider.Name,
			"date":         m.form.Date,
			"time":         m.form.TimeSlot,
			"hours":        m.form.Hours,
			"total":        m.form.Total(),
		})
		return m, nil
	}

	w, ok := m.wizard.Next(m.form)
	if !ok {
		m.errMsg = "Please choose a date and time"
		return m, nil
	}
	m.wizard = w
	m.errMsg = ""
	return m, m.focusStep()
}

func (m *BookingModel) focusStep() tea.Cmd {
	m.focus = 0
	if m.wizard.Current() == 1 {
		m.details.Blur()
		m.description.Blur()
		return m.payment.Focus(paymentCard)
	}
	m.payment.Blur()
	return m.details.Focus(0)
}

func (m *BookingModel) moveFocus(delta int) tea.Cmd {
	if m.wizard.Current() == 1 {
		n := m.payment.Len()
		return m.payment.Focus((m.payment.Focused() + delta + n) % n)
	}

	m.focus = (m.focus + delta + bookingFocusCount) % bookingFocusCount
	m.details.Blur()
	m.description.Blur()
	switch m.focus {
	case bookingFocusDate:
		return m.details.Focus(0)
	case bookingFocusDescription:
		return m.description.Focus()
	}
	return nil
}

// View renders the modal.
func (m BookingModel) View() string {
	var body string
	switch {
	case m.wizard.Submitted():
		body = m.renderConfirmation()
	case m.wizard.Current() == 1:
		body = m.renderPayment()
	default:
		body = m.renderDetails()
	}

	title := m.theme.Title.Render(m.wizard.Title())
	if m.wizard.Submitted() {
		title = m.theme.Title.Render("Booking Confirmed!")
	}

	return m.theme.RoundedBox.
		BorderForeground(m.theme.Primary).
		Width(min(72, max(40, m.width-4))).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			renderStepper(m.theme, append(m.wizard.Titles(), "Confirmation"), m.stepIndex()),
			"",
			body,
		))
}

func (m BookingModel) stepIndex() int {
	if m.wizard.Submitted() {
		return m.wizard.Len()
	}
	return m.wizard.Current()
}

func (m BookingModel) renderSummary() string {
	p := m.provider
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Bold.Render(p.Name),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(p.Service+" · "+viewmodel.FormatRate(p.HourlyRate)),
	)
}

func (m BookingModel) renderDetails() string {
	slots := make([]string, len(wizard.TimeSlots))
	for i, s := range wizard.TimeSlots {
		switch {
		case i == m.slot && m.focus == bookingFocusSlot:
			slots[i] = m.theme.Selected.Render(s)
		case i == m.slot:
			slots[i] = m.theme.Highlighted.Render(s)
		default:
			slots[i] = lipgloss.NewStyle().Foreground(m.theme.Muted).Render(s)
		}
	}

	label := func(text string, focus int) string {
		style := lipgloss.NewStyle().Width(12).Foreground(m.theme.Muted)
		if m.focus == focus {
			style = style.Foreground(m.theme.Primary)
		}
		return style.Render(text)
	}

	hours := fmt.Sprintf("‹ %d hours ›", m.form.Hours)
	if m.focus == bookingFocusHours {
		hours = m.theme.Selected.Render(hours)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderSummary(),
		"",
		m.details.View(m.theme),
		label("Time", bookingFocusSlot)+strings.Join(slots, " "),
		label("Duration", bookingFocusHours)+hours,
		label("Details", bookingFocusDescription),
		m.description.View(),
		"",
		m.theme.Bold.Render("Estimated total: "+viewmodel.FormatMoney(m.form.Total())),
		renderError(m.theme, m.errMsg),
		renderHints(m.theme, "[Tab] Next field", "[←→] Adjust", "[Enter] Continue to Payment", "[Esc] Cancel"),
	)
}

func (m BookingModel) renderPayment() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderSummary(),
		fmt.Sprintf("%s at %s · %d hours", m.form.Date, m.form.TimeSlot, m.form.Hours),
		"",
		m.payment.View(m.theme),
		"",
		m.theme.Bold.Render("Total: "+viewmodel.FormatMoney(m.form.Total())),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Payment is held until the job is completed."),
		renderError(m.theme, m.errMsg),
		renderHints(m.theme, "[Tab] Next field", "[Enter] Confirm Booking", "[Esc] Back"),
	)
}

func (m BookingModel) renderConfirmation() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.StatusSuccess.Render("✓ Your booking has been confirmed"),
		"",
		"Confirmation #"+m.theme.Code.Render(m.confirmationID),
		m.renderSummary(),
		fmt.Sprintf("%s at %s · %d hours", m.form.Date, m.form.TimeSlot, m.form.Hours),
		m.theme.Bold.Render("Total: "+viewmodel.FormatMoney(m.form.Total())),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(m.provider.Name+" will contact you to confirm the details."),
		renderHints(m.theme, "[Enter] Done"),
	)
}

// Resize updates the component size.
func (m *BookingModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.description.SetWidth(min(56, max(20, width-16)))
}
