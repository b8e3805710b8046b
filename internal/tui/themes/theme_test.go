package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	assert.Equal(t, CatppuccinMocha.Primary, GetTheme(CatppuccinMochaName).Primary)
	assert.Equal(t, Default.Primary, GetTheme(DefaultName).Primary)
	assert.Equal(t, Default.Primary, GetTheme("solarized").Primary)
}

func TestGetServiceIcon(t *testing.T) {
	assert.Equal(t, "🔧", GetServiceIcon("Plumbing"))
	assert.Equal(t, "⚡", GetServiceIcon("Electrical"))
	assert.Equal(t, "🏠", GetServiceIcon("Roofing"))
}
