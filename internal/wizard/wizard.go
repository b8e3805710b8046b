// Package wizard implements the linear multi-step form flow shared by the
// quote, booking, and provider onboarding screens.
package wizard

// Step is one page of a wizard. Valid reports whether the data entered so far
// allows leaving the step forward. A nil Valid always passes.
type Step[T any] struct {
	Valid func(T) bool
	Title string
}

// Wizard tracks the current step of a linear flow. Its methods use value
// receivers and return the updated wizard, matching how Bubble Tea models
// are passed around.
type Wizard[T any] struct {
	steps     []Step[T]
	current   int
	submitted bool
}

// New builds a wizard positioned on its first step.
func New[T any](steps ...Step[T]) Wizard[T] {
	return Wizard[T]{steps: steps}
}

// Current is the zero-based index of the active step.
func (w Wizard[T]) Current() int { return w.current }

// Len is the number of steps.
func (w Wizard[T]) Len() int { return len(w.steps) }

// Title is the active step's title.
func (w Wizard[T]) Title() string {
	if len(w.steps) == 0 {
		return ""
	}
	return w.steps[w.current].Title
}

// Titles lists every step title in order.
func (w Wizard[T]) Titles() []string {
	titles := make([]string, len(w.steps))
	for i, s := range w.steps {
		titles[i] = s.Title
	}
	return titles
}

// IsFirst reports whether the wizard is on its first step.
func (w Wizard[T]) IsFirst() bool { return w.current == 0 }

// IsLast reports whether the wizard is on its final step.
func (w Wizard[T]) IsLast() bool { return w.current == len(w.steps)-1 }

// Submitted reports whether the wizard reached its terminal state.
func (w Wizard[T]) Submitted() bool { return w.submitted }

// CanAdvance reports whether the active step accepts data.
func (w Wizard[T]) CanAdvance(data T) bool {
	if w.submitted || len(w.steps) == 0 {
		return false
	}
	valid := w.steps[w.current].Valid
	return valid == nil || valid(data)
}

// Next moves forward one step when the active step is valid and is not the
// last. The boolean reports whether it moved.
func (w Wizard[T]) Next(data T) (Wizard[T], bool) {
	if w.IsLast() || !w.CanAdvance(data) {
		return w, false
	}
	w.current++
	return w, true
}

// Back moves back one step from any step but the first. A submitted wizard
// returns to editing its last step.
func (w Wizard[T]) Back() (Wizard[T], bool) {
	if w.submitted {
		w.submitted = false
		return w, true
	}
	if w.current == 0 {
		return w, false
	}
	w.current--
	return w, true
}

// Submit enters the terminal state when the wizard is on its valid last step.
func (w Wizard[T]) Submit(data T) (Wizard[T], bool) {
	if !w.IsLast() || !w.CanAdvance(data) {
		return w, false
	}
	w.submitted = true
	return w, true
}

// Reset returns to the first step and clears the submitted state.
func (w Wizard[T]) Reset() Wizard[T] {
	w.current = 0
	w.submitted = false
	return w
}

// Progress is the fraction of steps reached, for progress bars.
func (w Wizard[T]) Progress() float64 {
	if len(w.steps) == 0 {
		return 0
	}
	if w.submitted {
		return 1
	}
	return float64(w.current+1) / float64(len(w.steps))
}
