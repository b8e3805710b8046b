package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/homeserve/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "default", s.Theme)
	assert.Equal(t, 5*time.Second, s.TrackingInterval)
	assert.InDelta(t, 150.0, s.MaxRate, 0.001)
	assert.InDelta(t, 0.0, s.MinRating, 0.001)
	assert.Equal(t, "rating", s.Sort)
	assert.Empty(t, s.SeedPath)
	assert.NotContains(t, s.LogFile, "~")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
ui:
  theme: catppuccin-mocha
  width: 120
  height: 40
tracking:
  interval: 250ms
browse:
  max_rate: 90
  min_rating: 4.5
  sort: distance
catalog:
  seed: $HOMESERVE_TEST_DIR/seed.yaml
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	t.Setenv("HOMESERVE_TEST_DIR", dir)

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	s, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "catppuccin-mocha", s.Theme)
	assert.Equal(t, 120, s.Width)
	assert.Equal(t, 40, s.Height)
	assert.Equal(t, 250*time.Millisecond, s.TrackingInterval)
	assert.InDelta(t, 90.0, s.MaxRate, 0.001)
	assert.InDelta(t, 4.5, s.MinRating, 0.001)
	assert.Equal(t, "distance", s.Sort)
	assert.Equal(t, filepath.Join(dir, "seed.yaml"), s.SeedPath)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"unknown theme", "ui.theme", "solarized"},
		{"negative width", "ui.width", -1},
		{"zero interval", "tracking.interval", "0s"},
		{"zero max rate", "browse.max_rate", 0},
		{"rating above five", "browse.min_rating", 6},
		{"unknown sort", "browse.sort", "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("HOMESERVE_SEED_DIR", "/srv/seeds")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/.config/homeserve/config.yaml", filepath.Join(home, ".config/homeserve/config.yaml")},
		{"$HOMESERVE_SEED_DIR/seed.yaml", "/srv/seeds/seed.yaml"},
		{"/etc/homeserve.yaml", "/etc/homeserve.yaml"},
		{"~/seeds/../seed.yaml", filepath.Join(home, "seed.yaml")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "homeserve"), Dir())
}
