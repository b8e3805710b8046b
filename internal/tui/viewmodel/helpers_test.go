package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{85, "$85"},
		{2400, "$2,400"},
		{1234567, "$1,234,567"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.amount))
		})
	}
	assert.Equal(t, "$95/hr", FormatRate(95))
	assert.Equal(t, "1.2 mi", FormatMiles(1.2))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Dec 5, 2024", FormatDate(d))
	assert.Equal(t, "Dec 05", FormatDateShort(d))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "Green T...", TruncateString("Green Thumb Landscaping", 10))
	assert.Equal(t, "Núñ", TruncateString("Núñez", 3))
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★★☆", Stars(4.9))
	assert.Equal(t, "★★★★★", Stars(5))
	assert.Equal(t, "☆☆☆☆☆", Stars(-1))
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", Bar(0.5, 0))
	assert.Equal(t, "█████░░░░░", Bar(0.5, 10))
	assert.Equal(t, "██████████", Bar(2, 10))
}

func TestSanitizeForDisplay(t *testing.T) {
	assert.Equal(t, "Fix leak under sink", SanitizeForDisplay("Fix\nleak   under\x07sink"))
}
