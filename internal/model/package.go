package model

import "math"

// PackageType groups service packages for filtering.
type PackageType string

// Package types.
const (
	PackageBundle       PackageType = "bundle"
	PackageSubscription PackageType = "subscription"
	PackageGroup        PackageType = "group"
	PackageEmergency    PackageType = "emergency"
)

// PackageTypes lists every package type in display order.
func PackageTypes() []PackageType {
	return []PackageType{PackageBundle, PackageSubscription, PackageGroup, PackageEmergency}
}

// ServicePackage is a discounted bundle, subscription, or group deal.
type ServicePackage struct {
	ID              string      `yaml:"id"`
	Name            string      `yaml:"name"`
	Description     string      `yaml:"description"`
	Frequency       string      `yaml:"frequency,omitempty"` // Subscriptions only
	Type            PackageType `yaml:"type"`
	Services        []string    `yaml:"services"`
	RegularPrice    float64     `yaml:"regular_price"`
	DiscountedPrice float64     `yaml:"discounted_price"`
	Savings         float64     `yaml:"savings"`
	Popular         bool        `yaml:"popular,omitempty"`
}

// DiscountPercent returns the savings as a whole percentage of the regular price.
func (p ServicePackage) DiscountPercent() int {
	if p.RegularPrice <= 0 {
		return 0
	}
	return int(math.Round(p.Savings / p.RegularPrice * 100))
}

// Badge is the short label shown on the package card.
func (p ServicePackage) Badge() string {
	if p.Type == PackageSubscription && p.Frequency != "" {
		return p.Frequency
	}
	s := string(p.Type)
	if s == "" {
		return ""
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// CallToAction is the label of the package's primary button.
func (p ServicePackage) CallToAction() string {
	if p.Type == PackageSubscription {
		return "Subscribe Now"
	}
	return "Book Package"
}
