// Package model defines the core domain models used throughout the application.
package model

// ServiceProvider is a service professional listed in the marketplace.
type ServiceProvider struct {
	ID              string          `yaml:"id"`
	Name            string          `yaml:"name"`
	Service         string          `yaml:"service"`
	Location        string          `yaml:"location"`
	Image           string          `yaml:"image"`
	Availability    string          `yaml:"availability"` // Free text, e.g. "Available Today"
	Description     string          `yaml:"description"`
	Specializations []string        `yaml:"specializations"`
	Portfolio       []PortfolioItem `yaml:"portfolio,omitempty"`
	Certifications  []Certification `yaml:"certifications,omitempty"`
	Coordinates     Coordinates     `yaml:"coordinates"`
	Rating          float64         `yaml:"rating"`
	HourlyRate      float64         `yaml:"hourly_rate"`
	Distance        float64         `yaml:"distance"` // Miles from the customer
	ReviewCount     int             `yaml:"review_count"`
	Experience      int             `yaml:"experience"` // Years
	CompletedJobs   int             `yaml:"completed_jobs"`
	Verified        bool            `yaml:"verified"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lng float64 `yaml:"lng" json:"lng"`
}

// PortfolioItem is a past job showcased on a provider profile.
type PortfolioItem struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Image       string `yaml:"image" json:"image"`
	Description string `yaml:"description" json:"description"`
}

// Certification is a license or credential held by a provider.
type Certification struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Issuer string `yaml:"issuer" json:"issuer"`
	Year   string `yaml:"year" json:"year"`
}

// HasPortfolio reports whether the provider has any portfolio items.
func (p ServiceProvider) HasPortfolio() bool {
	return len(p.Portfolio) > 0
}

// HasCertifications reports whether the provider lists any certifications.
func (p ServiceProvider) HasCertifications() bool {
	return len(p.Certifications) > 0
}
