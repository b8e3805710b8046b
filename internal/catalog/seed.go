package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/Veraticus/homeserve/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var embeddedSeed []byte

const dateLayout = "2006-01-02"

// Seed is the decoded contents of a seed file.
type Seed struct {
	Providers []model.ServiceProvider `yaml:"providers"`
	Reviews   []seedReview            `yaml:"reviews"`
	Bookings  []seedBooking           `yaml:"bookings"`
	Jobs      []seedBooking           `yaml:"jobs"`
	Packages  []model.ServicePackage  `yaml:"packages"`
}

type seedReview struct {
	ID         string `yaml:"id"`
	ProviderID string `yaml:"provider_id"`
	UserName   string `yaml:"user_name"`
	Comment    string `yaml:"comment"`
	Date       string `yaml:"date"`
	Rating     int    `yaml:"rating"`
	Verified   bool   `yaml:"verified"`
}

type seedBooking struct {
	ID           string  `yaml:"id"`
	ProviderID   string  `yaml:"provider_id"`
	ProviderName string  `yaml:"provider_name"`
	CustomerName string  `yaml:"customer_name"`
	Service      string  `yaml:"service"`
	Date         string  `yaml:"date"`
	Time         string  `yaml:"time"`
	Status       string  `yaml:"status"`
	Price        float64 `yaml:"price"`
}

// DefaultSeed returns the seed compiled into the binary.
func DefaultSeed() (*Seed, error) {
	return ParseSeed(embeddedSeed)
}

// LoadSeedFile reads a seed from disk.
func LoadSeedFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes and validates seed YAML.
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	if err := validateSeed(&seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

func (r seedReview) toModel() (model.Review, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return model.Review{}, fmt.Errorf("%w: review %s date %q", ErrInvalidReview, r.ID, r.Date)
	}
	return model.Review{
		ID:         r.ID,
		ProviderID: r.ProviderID,
		UserName:   r.UserName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		Date:       date,
		Verified:   r.Verified,
	}, nil
}

func (b seedBooking) toModel(kind model.BookingKind) (model.Booking, error) {
	date, err := time.Parse(dateLayout, b.Date)
	if err != nil {
		return model.Booking{}, fmt.Errorf("%w: booking %s date %q", ErrInvalidBooking, b.ID, b.Date)
	}
	return model.Booking{
		ID:           b.ID,
		ProviderID:   b.ProviderID,
		ProviderName: b.ProviderName,
		CustomerName: b.CustomerName,
		Service:      b.Service,
		Date:         date,
		Time:         b.Time,
		Status:       model.BookingStatus(b.Status),
		Kind:         kind,
		Price:        b.Price,
	}, nil
}
