// Package viewmodel holds the derived, display-ready figures the screens render.
package viewmodel

import (
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatMoney formats whole dollars with thousands separators, e.g. "$2,400".
func FormatMoney(amount float64) string {
	return printer.Sprintf("$%.0f", amount)
}

// FormatRate formats an hourly rate, e.g. "$85/hr".
func FormatRate(rate float64) string {
	return FormatMoney(rate) + "/hr"
}

// FormatDate formats a booking date the way the dashboards show it.
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDateShort formats a date in short form.
func FormatDateShort(t time.Time) string {
	return t.Format("Jan 02")
}

// FormatMiles formats a distance with one decimal.
func FormatMiles(miles float64) string {
	return printer.Sprintf("%.1f mi", miles)
}

// TruncateString truncates a string to the specified number of runes with ellipsis.
func TruncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	r := []rune(s)
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// Stars renders a rating as filled and empty stars, rounding down.
func Stars(rating float64) string {
	n := int(rating)
	n = min(5, max(0, n))
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// Bar returns a text-based bar filled to fraction of width.
func Bar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	fraction = min(1, max(0, fraction))
	filled := int(fraction * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// SanitizeForDisplay removes potentially problematic characters for terminal display.
func SanitizeForDisplay(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 32 && r != '\t' {
			return ' '
		}
		return r
	}, s)

	return strings.Join(strings.Fields(s), " ")
}
