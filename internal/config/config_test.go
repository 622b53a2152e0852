package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingAPIKey(t *testing.T) {
	// t.Setenv registers the restore; envconfig only treats a fully unset
	// variable as missing.
	t.Setenv("OPENWEATHER_API_KEY", "placeholder")
	require.NoError(t, os.Unsetenv("OPENWEATHER_API_KEY"))

	_, err := Load()
	require.Error(t, err, "a missing API key must fail before any command runs")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "test-key", cfg.APIKey)
	require.Equal(t, "https://api.openweathermap.org/geo/1.0", cfg.GeoURL)
	require.Equal(t, "https://api.openweathermap.org/data/2.5", cfg.DataURL)
	require.Equal(t, "https://api.openweathermap.org/data/3.0", cfg.OneCallURL)
	require.Equal(t, 3, cfg.ForecastIntervalHours)
	require.True(t, filepath.IsAbs(cfg.FavoritesFile))
	require.Equal(t, "favorites.json", filepath.Base(cfg.FavoritesFile))
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "test-key")
	t.Setenv("SKYCAST_HTTP_TIMEOUT", "3s")
	t.Setenv("SKYCAST_FORECAST_INTERVAL_HOURS", "1")
	t.Setenv("SKYCAST_FAVORITES_FILE", filepath.Join(t.TempDir(), "favs.json"))

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "3s", cfg.HTTPTimeout.String())
	require.Equal(t, 1, cfg.ForecastIntervalHours)
	require.Equal(t, "favs.json", filepath.Base(cfg.FavoritesFile))
}

func TestEntriesPerDay(t *testing.T) {
	tests := []struct {
		intervalHours int
		want          int
	}{
		{3, 8},
		{1, 24},
		{6, 4},
		{24, 1},
		{0, 1},
		{-2, 1},
		{25, 1},
	}

	for _, tt := range tests {
		cfg := Config{ForecastIntervalHours: tt.intervalHours}

		if got := cfg.EntriesPerDay(); got != tt.want {
			t.Errorf("EntriesPerDay() with %dh interval = %d, want %d", tt.intervalHours, got, tt.want)
		}
	}
}
