package model

import "time"

// Review is a customer review of a provider.
type Review struct {
	Date       time.Time
	ID         string
	ProviderID string
	UserName   string
	Comment    string
	Rating     int // 1-5
	Verified   bool
}
