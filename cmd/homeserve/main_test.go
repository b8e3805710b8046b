package main

import (
	"log/slog"
	"testing"

	"github.com/Veraticus/homeserve/internal/common"
	"github.com/Veraticus/homeserve/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingOptions(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		format     string
		wantLevel  slog.Level
		wantFormat string
		wantErr    bool
	}{
		{name: "defaults", wantLevel: slog.LevelInfo, wantFormat: "console"},
		{name: "debug json", level: "debug", format: "json", wantLevel: slog.LevelDebug, wantFormat: "json"},
		{name: "warn console", level: "warn", format: "console", wantLevel: slog.LevelWarn, wantFormat: "console"},
		{name: "bad level", level: "loud", wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			viper.Set("logging.level", tt.level)
			viper.Set("logging.format", tt.format)

			level, format, err := loggingOptions()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantFormat, format)
		})
	}
}

func TestDefaultCriteria(t *testing.T) {
	settings := &config.Settings{MaxRate: 90, MinRating: 4, Sort: "distance"}

	c, err := defaultCriteria(settings)
	require.NoError(t, err)
	assert.InDelta(t, 90, c.MaxHourlyRate, 0.001)
	assert.InDelta(t, 4, c.MinRating, 0.001)
	assert.Equal(t, "distance", string(c.SortBy))

	settings.Sort = "fastest"
	_, err = defaultCriteria(settings)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"ui", "providers", "quote", "track", "packages", "bookings", "version"} {
		assert.Contains(t, names, want)
	}
}
