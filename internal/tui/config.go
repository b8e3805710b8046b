package tui

import (
	"time"

	"github.com/Veraticus/homeserve/internal/model"
	"github.com/Veraticus/homeserve/internal/quote"
	"github.com/Veraticus/homeserve/internal/search"
	"github.com/Veraticus/homeserve/internal/service"
	"github.com/Veraticus/homeserve/internal/tracking"
	"github.com/Veraticus/homeserve/internal/tui/components"
	"github.com/Veraticus/homeserve/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme            themes.Theme
	Catalog          service.Catalog
	Snapshot         *service.Snapshot
	Estimator        *quote.Estimator
	Criteria         search.Criteria
	Role             model.Role
	TrackingInterval time.Duration
	Screen           components.Screen
	Width            int
	Height           int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:            themes.Default,
		Criteria:         search.DefaultCriteria(),
		TrackingInterval: tracking.DefaultInterval,
		Screen:           components.ScreenHome,
		Width:            80,
		Height:           24,
	}
}

// WithCatalog sets the catalog the screens are loaded from.
func WithCatalog(c service.Catalog) Option {
	return func(cfg *Config) {
		cfg.Catalog = c
	}
}

// WithSnapshot supplies already loaded catalog data, skipping the catalog.
func WithSnapshot(s *service.Snapshot) Option {
	return func(cfg *Config) {
		cfg.Snapshot = s
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(cfg *Config) {
		cfg.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(cfg *Config) {
		cfg.Width = width
		cfg.Height = height
	}
}

// WithRole starts the UI signed in as role.
func WithRole(role model.Role) Option {
	return func(cfg *Config) {
		cfg.Role = role
	}
}

// WithScreen sets the screen shown once the catalog is loaded.
func WithScreen(screen components.Screen) Option {
	return func(cfg *Config) {
		cfg.Screen = screen
	}
}

// WithTrackingInterval sets the time between live tracking updates.
func WithTrackingInterval(d time.Duration) Option {
	return func(cfg *Config) {
		cfg.TrackingInterval = d
	}
}

// WithCriteria sets the browse screen's initial filters.
func WithCriteria(c search.Criteria) Option {
	return func(cfg *Config) {
		cfg.Criteria = c
	}
}

// WithEstimator sets the quote estimator.
func WithEstimator(e *quote.Estimator) Option {
	return func(cfg *Config) {
		cfg.Estimator = e
	}
}
