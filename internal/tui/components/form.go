package components

import (
	"strings"

	"github.com/Veraticus/homeserve/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fieldSpec describes one text field of a form.
type fieldSpec struct {
	label       string
	placeholder string
	limit       int
}

// fieldSet is an ordered group of labelled text inputs with one focused.
type fieldSet struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newFieldSet(specs ...fieldSpec) fieldSet {
	f := fieldSet{
		labels: make([]string, len(specs)),
		inputs: make([]textinput.Model, len(specs)),
	}
	for i, s := range specs {
		in := textinput.New()
		in.Placeholder = s.placeholder
		in.CharLimit = 80
		if s.limit > 0 {
			in.CharLimit = s.limit
		}
		in.Width = 32
		f.labels[i] = s.label
		f.inputs[i] = in
	}
	return f
}

// Len is the number of fields.
func (f fieldSet) Len() int {
	return len(f.inputs)
}

// Focused is the index of the focused field.
func (f fieldSet) Focused() int {
	return f.focus
}

// Focus focuses field i and blurs the others.
func (f *fieldSet) Focus(i int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.focus = min(len(f.inputs)-1, max(0, i))
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	return f.inputs[f.focus].Focus()
}

// Blur removes focus from every field.
func (f *fieldSet) Blur() {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
}

// Value is the trimmed text of field i.
func (f fieldSet) Value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// SetValue replaces the text of field i.
func (f *fieldSet) SetValue(i int, v string) {
	f.inputs[i].SetValue(v)
}

// Reset clears every field.
func (f *fieldSet) Reset() {
	for j := range f.inputs {
		f.inputs[j].Reset()
	}
}

// Update forwards msg to the focused field.
func (f fieldSet) Update(msg tea.Msg) (fieldSet, tea.Cmd) {
	if len(f.inputs) == 0 {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// View renders every field with its label, one per line.
func (f fieldSet) View(theme themes.Theme) string {
	labelWidth := 0
	for _, l := range f.labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}
	label := lipgloss.NewStyle().Width(labelWidth + 2).Foreground(theme.Muted)

	lines := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		l := label.Render(f.labels[i])
		if in.Focused() {
			l = label.Foreground(theme.Primary).Render(f.labels[i])
		}
		lines[i] = l + in.View()
	}
	return strings.Join(lines, "\n")
}
