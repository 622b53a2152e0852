// Package config loads the skycast runtime configuration from the process
// environment, optionally seeded from a .env file in the working directory.
//
// The only required value is the OpenWeatherMap API key; everything else
// carries a default. Loading happens once, before any command logic runs,
// so a missing key is reported as a configuration error rather than a
// mid-command failure.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every externally supplied setting. It is built once at
// startup and passed into the components that need it; there is no
// process-global configuration state.
type Config struct {
	APIKey     string `envconfig:"OPENWEATHER_API_KEY" required:"true"`
	GeoURL     string `envconfig:"SKYCAST_GEO_URL" default:"https://api.openweathermap.org/geo/1.0"`
	DataURL    string `envconfig:"SKYCAST_DATA_URL" default:"https://api.openweathermap.org/data/2.5"`
	OneCallURL string `envconfig:"SKYCAST_ONECALL_URL" default:"https://api.openweathermap.org/data/3.0"`

	HTTPTimeout time.Duration `envconfig:"SKYCAST_HTTP_TIMEOUT" default:"10s"`

	// ForecastIntervalHours is the provider's forecast sampling interval.
	// OpenWeatherMap's 5-day feed delivers one entry every 3 hours.
	ForecastIntervalHours int `envconfig:"SKYCAST_FORECAST_INTERVAL_HOURS" default:"3"`

	FavoritesFile string `envconfig:"SKYCAST_FAVORITES_FILE" default:"favorites.json"`
}

// Load reads a .env file from the working directory when present, then binds
// the environment into a Config. A missing API key fails here.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	path, err := expandPath(cfg.FavoritesFile)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	cfg.FavoritesFile = path

	return &cfg, nil
}

// EntriesPerDay derives the forecast downsampling step from the provider's
// sampling interval: 24h at 3-hour spacing means every 8th entry starts a
// new day.
func (c *Config) EntriesPerDay() int {
	if c.ForecastIntervalHours <= 0 || c.ForecastIntervalHours > 24 {
		return 1
	}

	return 24 / c.ForecastIntervalHours
}

// expandPath expands ~ to the user's home directory and returns an absolute path
func expandPath(path string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("path is empty")
	}

	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}
