package config

import (
	"fmt"
	"time"

	"github.com/Veraticus/homeserve/internal/common"
	"github.com/spf13/viper"
)

// Default values for settings that have them.
const (
	DefaultTheme            = "default"
	DefaultTrackingInterval = 5 * time.Second
	DefaultMaxRate          = 150.0
	DefaultSort             = "rating"
	DefaultLogFile          = "~/.config/homeserve/homeserve.log"
)

// Settings is the typed view of everything homeserve reads from viper.
type Settings struct {
	Theme            string
	SeedPath         string // Empty means the embedded seed
	Sort             string
	LogFile          string
	TrackingInterval time.Duration
	MaxRate          float64
	MinRating        float64
	Width            int
	Height           int
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("ui.theme", DefaultTheme)
	v.SetDefault("ui.width", 0)
	v.SetDefault("ui.height", 0)
	v.SetDefault("tracking.interval", DefaultTrackingInterval)
	v.SetDefault("browse.max_rate", DefaultMaxRate)
	v.SetDefault("browse.min_rating", 0.0)
	v.SetDefault("browse.sort", DefaultSort)
	v.SetDefault("catalog.seed", "")
	v.SetDefault("logging.file", DefaultLogFile)
}

// Load reads and validates settings from v. Defaults are applied first so a
// bare viper instance yields a usable configuration.
func Load(v *viper.Viper) (*Settings, error) {
	if v == nil {
		v = viper.GetViper()
	}
	SetDefaults(v)

	s := &Settings{
		Theme:            v.GetString("ui.theme"),
		Width:            v.GetInt("ui.width"),
		Height:           v.GetInt("ui.height"),
		TrackingInterval: v.GetDuration("tracking.interval"),
		MaxRate:          v.GetFloat64("browse.max_rate"),
		MinRating:        v.GetFloat64("browse.min_rating"),
		Sort:             v.GetString("browse.sort"),
		SeedPath:         ExpandPath(v.GetString("catalog.seed")),
		LogFile:          ExpandPath(v.GetString("logging.file")),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the settings for values the UI cannot work with.
func (s *Settings) Validate() error {
	switch s.Theme {
	case "default", "catppuccin-mocha":
	default:
		return fmt.Errorf("%w: ui.theme %q", common.ErrInvalidConfig, s.Theme)
	}
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("%w: ui size %dx%d", common.ErrInvalidConfig, s.Width, s.Height)
	}
	if s.TrackingInterval <= 0 {
		return fmt.Errorf("%w: tracking.interval must be positive", common.ErrInvalidConfig)
	}
	if s.MaxRate <= 0 {
		return fmt.Errorf("%w: browse.max_rate must be positive", common.ErrInvalidConfig)
	}
	if s.MinRating < 0 || s.MinRating > 5 {
		return fmt.Errorf("%w: browse.min_rating %.1f outside 0-5", common.ErrInvalidConfig, s.MinRating)
	}
	switch s.Sort {
	case "rating", "price", "distance":
	default:
		return fmt.Errorf("%w: browse.sort %q", common.ErrInvalidConfig, s.Sort)
	}
	return nil
}
