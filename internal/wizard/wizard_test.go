package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	name  string
	email string
}

func threeSteps() Wizard[form] {
	return New(
		Step[form]{Title: "Name", Valid: func(f form) bool { return f.name != "" }},
		Step[form]{Title: "Email", Valid: func(f form) bool { return f.email != "" }},
		Step[form]{Title: "Review"},
	)
}

func TestNextRefusesInvalidStep(t *testing.T) {
	w := threeSteps()

	w, moved := w.Next(form{})
	assert.False(t, moved)
	assert.Equal(t, 0, w.Current())

	w, moved = w.Next(form{name: "Ada"})
	assert.True(t, moved)
	assert.Equal(t, 1, w.Current())
	assert.Equal(t, "Email", w.Title())

	w, moved = w.Next(form{name: "Ada"})
	assert.False(t, moved)
	assert.Equal(t, 1, w.Current())
}

func TestNextStopsAtLastStep(t *testing.T) {
	w := threeSteps()
	data := form{name: "Ada", email: "ada@example.com"}

	w, _ = w.Next(data)
	w, _ = w.Next(data)
	require.True(t, w.IsLast())

	w, moved := w.Next(data)
	assert.False(t, moved)
	assert.Equal(t, 2, w.Current())
}

func TestBackAlwaysWorksExceptOnFirst(t *testing.T) {
	w := threeSteps()

	_, moved := w.Back()
	assert.False(t, moved)

	data := form{name: "Ada", email: "ada@example.com"}
	w, _ = w.Next(data)
	w, _ = w.Next(data)

	// Back ignores validity: invalid data on an earlier step never traps the user.
	w, moved = w.Back()
	assert.True(t, moved)
	assert.Equal(t, 1, w.Current())
	w, moved = w.Back()
	assert.True(t, moved)
	assert.True(t, w.IsFirst())
}

func TestSubmit(t *testing.T) {
	w := threeSteps()
	data := form{name: "Ada", email: "ada@example.com"}

	_, ok := w.Submit(data)
	assert.False(t, ok, "submit is only allowed on the last step")

	w, _ = w.Next(data)
	w, _ = w.Next(data)
	w, ok = w.Submit(data)
	require.True(t, ok)
	assert.True(t, w.Submitted())
	assert.InDelta(t, 1.0, w.Progress(), 0.0001)
	assert.False(t, w.CanAdvance(data))

	w, moved := w.Back()
	assert.True(t, moved)
	assert.False(t, w.Submitted())
	assert.True(t, w.IsLast())

	w, _ = w.Submit(data)
	w = w.Reset()
	assert.False(t, w.Submitted())
	assert.Equal(t, 0, w.Current())
}

func TestNeverAdvancesPastInvalidStep(t *testing.T) {
	w := threeSteps()
	inputs := []form{{}, {name: "A"}, {email: "e"}, {name: "A", email: "e"}}

	for _, first := range inputs {
		for _, second := range inputs {
			w = w.Reset()
			w1, moved1 := w.Next(first)
			assert.Equal(t, first.name != "", moved1)

			w2, moved2 := w1.Next(second)
			switch {
			case moved1 && moved2:
				assert.NotEmpty(t, second.email)
				assert.Equal(t, 2, w2.Current())
			case moved2:
				assert.NotEmpty(t, second.name)
				assert.Equal(t, 1, w2.Current())
			default:
				assert.Equal(t, w1.Current(), w2.Current())
			}
		}
	}
}

func TestEmptyWizard(t *testing.T) {
	w := New[form]()
	assert.Empty(t, w.Title())
	assert.InDelta(t, 0.0, w.Progress(), 0.0001)
	_, moved := w.Next(form{})
	assert.False(t, moved)
}

func TestTitlesAndProgress(t *testing.T) {
	w := threeSteps()
	assert.Equal(t, []string{"Name", "Email", "Review"}, w.Titles())
	assert.Equal(t, 3, w.Len())
	assert.InDelta(t, 1.0/3.0, w.Progress(), 0.0001)
}
