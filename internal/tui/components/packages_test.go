package components

import (
	"testing"

	"github.com/Veraticus/homeserve/internal/model"
	"github.com/Veraticus/homeserve/internal/tui/themes"
	tuitest "github.com/Veraticus/homeserve/internal/tui/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packageIDs(packages []model.ServicePackage) []string {
	ids := make([]string, len(packages))
	for i, p := range packages {
		ids[i] = p.ID
	}
	return ids
}

func TestPackagesModel_Filters(t *testing.T) {
	tests := []struct {
		name    string
		presses int
		typ     model.PackageType
		want    []string
	}{
		{"all", 0, "", []string{"1", "3", "5", "6"}},
		{"bundles", 1, model.PackageBundle, []string{"1"}},
		{"subscriptions", 2, model.PackageSubscription, []string{"3"}},
		{"group", 3, model.PackageGroup, []string{"5"}},
		{"emergency", 4, model.PackageEmergency, []string{"6"}},
		{"wraps", 5, "", []string{"1", "3", "5", "6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPackagesModel(testPackages(), themes.Default)
			for n := 0; n < tt.presses; n++ {
				m, _ = m.Update(tuitest.KeyTab())
			}
			assert.Equal(t, tt.typ, m.Filter())
			assert.Equal(t, tt.want, packageIDs(m.Listed()))
		})
	}
}

func TestPackagesModel_ShiftTabWrapsBackwards(t *testing.T) {
	m := NewPackagesModel(testPackages(), themes.Default)

	m, _ = m.Update(tuitest.KeyShiftTab())
	assert.Equal(t, model.PackageEmergency, m.Filter())
}

func TestPackagesModel_GroupBanner(t *testing.T) {
	m := NewPackagesModel(testPackages(), themes.Default)
	m.Resize(140, 40)
	assert.NotContains(t, tuitest.Plain(m.View()), "How Group Discounts Work")

	m, _ = tuitest.Drive(m, tuitest.KeyTab(), tuitest.KeyTab(), tuitest.KeyTab())
	assert.Contains(t, tuitest.Plain(m.View()), "How Group Discounts Work")
}

func TestPackagesModel_Detail(t *testing.T) {
	m := NewPackagesModel(testPackages(), themes.Default)
	m.Resize(140, 40)

	view := tuitest.Plain(m.View())
	assert.Contains(t, view, "Most Popular")
	assert.Contains(t, view, "Save $100 (22% off)")
	assert.Contains(t, view, "Book Package")

	m, _ = m.Update(tuitest.KeyDown())
	assert.Contains(t, tuitest.Plain(m.View()), "Subscribe Now")
}

func TestPackagesModel_Request(t *testing.T) {
	m := NewPackagesModel(testPackages(), themes.Default)
	m.Resize(140, 40)

	m, _ = m.Update(tuitest.KeyEnter())
	assert.Contains(t, tuitest.Plain(m.View()), "Book Package: Complete Home Clean requested")

	m, _ = m.Update(tuitest.KeyTab())
	assert.NotContains(t, tuitest.Plain(m.View()), "requested", "changing the filter clears the notice")

	_, cmd := m.Update(tuitest.KeyEsc())
	_, ok := tuitest.FindMsg[BackMsg](cmd)
	require.True(t, ok)
}
