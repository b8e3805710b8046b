package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/homeserve/internal/model"
	"github.com/Veraticus/homeserve/internal/tui/themes"
	"github.com/Veraticus/homeserve/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ProfileModel shows one provider in full with their reviews.
type ProfileModel struct {
	theme    themes.Theme
	provider model.ServiceProvider
	reviews  []model.Review
	summary  viewmodel.ReviewSummary
	viewport viewport.Model
	width    int
	height   int
}

// NewProfileModel creates the profile screen for p.
func NewProfileModel(p model.ServiceProvider, reviews []model.Review, theme themes.Theme) ProfileModel {
	m := ProfileModel{
		theme:    theme,
		provider: p,
		reviews:  reviews,
		summary:  viewmodel.NewReviewSummary(p, reviews),
		viewport: viewport.New(80, 20),
		width:    80,
		height:   24,
	}
	m.viewport.SetContent(m.renderContent())
	return m
}

// Provider returns the provider shown.
func (m ProfileModel) Provider() model.ServiceProvider {
	return m.provider
}

// Summary returns the review summary shown.
func (m ProfileModel) Summary() viewmodel.ReviewSummary {
	return m.summary
}

// Update handles messages.
func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return m, send(OpenBookingMsg{Provider: m.provider})
		case "esc":
			return m, send(BackMsg{})
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the profile.
func (m ProfileModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		renderHints(m.theme, "[↑↓] Scroll", "[Enter] Book Now", "[Esc] Back to results"),
	)
}

func (m ProfileModel) renderContent() string {
	p := m.provider
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	wrap := lipgloss.NewStyle().Width(max(20, m.width-4))

	name := p.Name
	if p.Verified {
		name += " " + m.theme.StatusSuccess.Render("✓ Verified")
	}

	sections := []string{
		m.theme.Title.Render(themes.GetServiceIcon(p.Service) + " " + name),
		muted.Render(fmt.Sprintf("%s · %s · %s away", p.Service, p.Location, viewmodel.FormatMiles(p.Distance))),
		m.theme.Star.Render(viewmodel.Stars(p.Rating)) +
			fmt.Sprintf(" %.1f (%d reviews)   ", p.Rating, p.ReviewCount) +
			m.theme.Bold.Render(viewmodel.FormatRate(p.HourlyRate)) + "   " +
			m.theme.StatusSuccess.Render(p.Availability),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			renderStat(m.theme, "Experience", fmt.Sprintf("%d years", p.Experience)),
			renderStat(m.theme, "Jobs Completed", fmt.Sprintf("%d", p.CompletedJobs)),
			renderStat(m.theme, "Reviews", fmt.Sprintf("%d", p.ReviewCount)),
		),
		m.theme.Bold.Render("About"),
		wrap.Render(viewmodel.SanitizeForDisplay(p.Description)),
	}

	if len(p.Specializations) > 0 {
		sections = append(sections, "", m.theme.Bold.Render("Specializations"))
		for _, s := range p.Specializations {
			sections = append(sections, "  • "+s)
		}
	}

	if p.HasPortfolio() {
		sections = append(sections, "", m.theme.Bold.Render("Portfolio"))
		for _, item := range p.Portfolio {
			sections = append(sections, "  "+m.theme.Normal.Bold(true).Render(item.Title))
			sections = append(sections, wrap.PaddingLeft(4).Render(muted.Render(item.Description)))
		}
	}

	if p.HasCertifications() {
		sections = append(sections, "", m.theme.Bold.Render("Certifications"))
		for _, c := range p.Certifications {
			sections = append(sections, fmt.Sprintf("  🏅 %s · %s (%s)", c.Name, c.Issuer, c.Year))
		}
	}

	sections = append(sections, "", m.renderReviews())
	return strings.Join(sections, "\n")
}

func (m ProfileModel) renderReviews() string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)

	lines := []string{
		m.theme.Bold.Render("Reviews"),
		fmt.Sprintf("%.1f %s  %d reviews", m.summary.Rating, m.theme.Star.Render(viewmodel.Stars(m.summary.Rating)), m.summary.ReviewCount),
	}
	for _, bar := range m.summary.Histogram {
		lines = append(lines, fmt.Sprintf("  %d ★ %s %3.0f%%",
			bar.Stars,
			m.theme.ProgressBar.Render(viewmodel.Bar(bar.Percent/100, 20)),
			bar.Percent))
	}

	if len(m.reviews) == 0 {
		return strings.Join(append(lines, "", muted.Render("No reviews yet.")), "\n")
	}

	wrap := lipgloss.NewStyle().Width(max(20, m.width-8)).PaddingLeft(4)
	for _, r := range m.reviews {
		who := r.UserName
		if r.Verified {
			who += " " + m.theme.StatusSuccess.Render("✓")
		}
		lines = append(lines,
			"",
			"  "+m.theme.Bold.Render(who)+"  "+
				m.theme.Star.Render(viewmodel.Stars(float64(r.Rating)))+"  "+
				muted.Render(viewmodel.FormatDate(r.Date)),
			wrap.Render(viewmodel.SanitizeForDisplay(r.Comment)),
		)
	}
	return strings.Join(lines, "\n")
}

// Resize updates the component size.
func (m *ProfileModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(3, height-2)
	m.viewport.SetContent(m.renderContent())
}
