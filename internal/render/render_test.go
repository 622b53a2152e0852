package render

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/inovacc/skycast/internal/core"
	"github.com/inovacc/skycast/internal/openweather"
)

func makeEntries(n int, interval time.Duration) []openweather.ForecastEntry {
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	entries := make([]openweather.ForecastEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, openweather.ForecastEntry{
			Time:        start.Add(time.Duration(i) * interval),
			Description: "clear sky",
			Temperature: 20,
			Humidity:    50,
			WindSpeed:   2,
		})
	}

	return entries
}

func TestDailySample_Counts(t *testing.T) {
	tests := []struct {
		name          string
		entries       int
		entriesPerDay int
		want          int
	}{
		{"full 5-day feed", 40, 8, 5},
		{"partial last day", 9, 8, 2},
		{"exactly one day", 8, 8, 1},
		{"fewer than one day", 3, 8, 1},
		{"empty feed", 0, 8, 0},
		{"hourly sampling", 48, 24, 2},
		{"degenerate step", 5, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := makeEntries(tt.entries, 3*time.Hour)

			got := DailySample(entries, tt.entriesPerDay)
			if len(got) != tt.want {
				t.Errorf("DailySample(%d entries, %d/day) = %d entries, want %d",
					tt.entries, tt.entriesPerDay, len(got), tt.want)
			}
		})
	}
}

func TestDailySample_PicksFirstEntryOfEachDay(t *testing.T) {
	entries := makeEntries(24, 3*time.Hour) // three days at 3-hour spacing

	daily := DailySample(entries, 8)
	if len(daily) != 3 {
		t.Fatalf("got %d entries, want 3", len(daily))
	}

	for i, entry := range daily {
		wantDay := 24 + i
		if entry.Time.Day() != wantDay || entry.Time.Hour() != 0 {
			t.Errorf("entry %d at %v, want midnight of day %d", i, entry.Time, wantDay)
		}
	}
}

func TestForecast_OneRowPerDay(t *testing.T) {
	out := Forecast("Paris", makeEntries(16, 3*time.Hour), 8)

	if !strings.Contains(out, "5-Day Forecast for Paris") {
		t.Errorf("missing title in output:\n%s", out)
	}

	if !strings.Contains(out, "2026-08-24") || !strings.Contains(out, "2026-08-25") {
		t.Errorf("missing sampled dates in output:\n%s", out)
	}

	if strings.Count(out, "2026-08-") != 2 {
		t.Errorf("want exactly 2 date rows, got:\n%s", out)
	}
}

func TestCurrent(t *testing.T) {
	out := Current(openweather.CurrentWeather{
		Location:    "Paris",
		Description: "scattered clouds",
		Temperature: 21.4,
		FeelsLike:   20.9,
		Humidity:    56,
		WindSpeed:   3.2,
	})

	for _, want := range []string{
		"Current Weather in Paris",
		"Scattered clouds",
		"21.4°C",
		"20.9°C",
		"56%",
		"3.2 m/s",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAlerts_Empty(t *testing.T) {
	out := Alerts(nil)

	if !strings.Contains(out, "No weather alerts for this location") {
		t.Errorf("empty alerts must render the all-clear panel, got:\n%s", out)
	}
}

func TestAlerts_OnePanelPerAlert(t *testing.T) {
	out := Alerts([]openweather.Alert{
		{
			Event:       "Severe Thunderstorm",
			Description: "Large hail expected.",
			Start:       time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
			End:         time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC),
		},
		{
			Event:       "Flood Warning",
			Description: "River levels rising.",
			Start:       time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
			End:         time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
		},
	})

	for _, want := range []string{
		"Alert: Severe Thunderstorm",
		"Large hail expected.",
		"Alert: Flood Warning",
		"Start: 2026-08-24 12:00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "No weather alerts") {
		t.Error("all-clear panel rendered alongside active alerts")
	}
}

func TestFavoriteReports_MixedResults(t *testing.T) {
	out := FavoriteReports([]core.FavoriteReport{
		{
			Name:    "Paris",
			Weather: openweather.CurrentWeather{Location: "Paris", Description: "clear sky", Temperature: 25},
		},
		{
			Name: "Atlantis",
			Err:  errors.New(`location "Atlantis" not found`),
		},
	})

	if !strings.Contains(out, "Weather for Paris") {
		t.Errorf("missing weather block for Paris:\n%s", out)
	}

	if !strings.Contains(out, `Error getting weather for Atlantis: location "Atlantis" not found`) {
		t.Errorf("missing error line for Atlantis:\n%s", out)
	}
}
