package model

import "strings"

// Role is the local sign-in flag. There is no authentication behind it.
type Role string

// Roles.
const (
	RoleNone     Role = ""
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
)

// ParseRole converts a flag value into a Role.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return RoleNone, true
	case "customer":
		return RoleCustomer, true
	case "provider":
		return RoleProvider, true
	}
	return RoleNone, false
}

// ApplicationCertification is a certification entered on the onboarding form.
type ApplicationCertification struct {
	Name   string
	Issuer string
	Year   string
}

// ApplicationPortfolioItem is a work sample entered on the onboarding form.
type ApplicationPortfolioItem struct {
	Title       string
	Description string
}

// ProviderApplication accumulates the become-a-provider form. It only lives in
// memory; submitting it assigns a reference ID and nothing else.
type ProviderApplication struct {
	ReferenceID            string
	FirstName              string
	LastName               string
	Email                  string
	Phone                  string
	BusinessName           string
	ServiceCategory        string
	Experience             string
	Description            string
	HourlyRate             string
	TravelRadius           string
	InsuranceInfo          string
	BankAccount            string
	TaxID                  string
	Specializations        []string
	Availability           []string
	Certifications         []ApplicationCertification
	PortfolioItems         []ApplicationPortfolioItem
	BackgroundCheckConsent bool
}

// AddSpecialization appends a trimmed, non-empty specialization.
func (a *ProviderApplication) AddSpecialization(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	a.Specializations = append(a.Specializations, s)
	return true
}

// RemoveSpecialization drops the specialization at index i.
func (a *ProviderApplication) RemoveSpecialization(i int) {
	if i < 0 || i >= len(a.Specializations) {
		return
	}
	a.Specializations = append(a.Specializations[:i:i], a.Specializations[i+1:]...)
}

// ToggleDay adds or removes a weekday from the availability list.
func (a *ProviderApplication) ToggleDay(day string) {
	for i, d := range a.Availability {
		if d == day {
			a.Availability = append(a.Availability[:i:i], a.Availability[i+1:]...)
			return
		}
	}
	a.Availability = append(a.Availability, day)
}

// HasDay reports whether day is in the availability list.
func (a ProviderApplication) HasDay(day string) bool {
	for _, d := range a.Availability {
		if d == day {
			return true
		}
	}
	return false
}

// FullName joins first and last name.
func (a ProviderApplication) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
