// Package render turns fetched weather data into styled terminal output.
//
// Every function is pure: already-fetched data in, string out. Input is
// assumed well-formed because the client validated the provider response;
// there is no error handling here.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/inovacc/skycast/internal/core"
	"github.com/inovacc/skycast/internal/openweather"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	alertPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 1)
	alertTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	noAlertsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Foreground(lipgloss.Color("10")).
			Padding(0, 1)
)

// Current renders current conditions as a two-column metric/value table.
func Current(w openweather.CurrentWeather) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Current Weather in %s", w.Location)))
	b.WriteString("\n")

	rows := [][2]string{
		{"Weather", capitalize(w.Description)},
		{"Temperature", fmt.Sprintf("%.1f°C", w.Temperature)},
		{"Feels Like", fmt.Sprintf("%.1f°C", w.FeelsLike)},
		{"Humidity", fmt.Sprintf("%d%%", w.Humidity)},
		{"Wind Speed", fmt.Sprintf("%.1f m/s", w.WindSpeed)},
	}

	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			labelStyle.Render(padRight(row[0], 13)),
			valueStyle.Render(row[1]),
		))
	}

	return b.String()
}

// Forecast renders one row per represented day, downsampled from the full
// provider feed via DailySample.
func Forecast(city string, entries []openweather.ForecastEntry, entriesPerDay int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("5-Day Forecast for %s", city)))
	b.WriteString("\n")

	daily := DailySample(entries, entriesPerDay)

	maxWeather := 10
	for _, entry := range daily {
		if len(entry.Description) > maxWeather {
			maxWeather = len(entry.Description)
		}
	}

	b.WriteString(fmt.Sprintf("%s  %s  %s  %s  %s\n",
		headerStyle.Render(padRight("DATE", 10)),
		headerStyle.Render(padRight("WEATHER", maxWeather)),
		headerStyle.Render(padRight("TEMP °C", 8)),
		headerStyle.Render(padRight("HUMIDITY", 8)),
		headerStyle.Render("WIND m/s"),
	))
	b.WriteString(strings.Repeat("-", maxWeather+40))
	b.WriteString("\n")

	for _, entry := range daily {
		b.WriteString(fmt.Sprintf("%s  %s  %s  %s  %s\n",
			padRight(entry.Time.Format("2006-01-02"), 10),
			padRight(capitalize(entry.Description), maxWeather),
			padRight(fmt.Sprintf("%.1f", entry.Temperature), 8),
			padRight(fmt.Sprintf("%d%%", entry.Humidity), 8),
			fmt.Sprintf("%.1f", entry.WindSpeed),
		))
	}

	return b.String()
}

// DailySample picks one representative entry per calendar day from a feed
// sampled entriesPerDay times a day: the first entry of each group. Over N
// entries that is ceil(N/entriesPerDay) results.
func DailySample(entries []openweather.ForecastEntry, entriesPerDay int) []openweather.ForecastEntry {
	if entriesPerDay < 1 {
		entriesPerDay = 1
	}

	daily := make([]openweather.ForecastEntry, 0, (len(entries)+entriesPerDay-1)/entriesPerDay)
	for i := 0; i < len(entries); i += entriesPerDay {
		daily = append(daily, entries[i])
	}

	return daily
}

// Alerts renders one bordered panel per alert. An empty slice renders a
// neutral all-clear panel, not an error.
func Alerts(alerts []openweather.Alert) string {
	if len(alerts) == 0 {
		return noAlertsStyle.Render("No weather alerts for this location") + "\n"
	}

	var b strings.Builder

	for _, alert := range alerts {
		content := fmt.Sprintf("%s\n\n%s\n\nStart: %s\nEnd:   %s",
			alertTitleStyle.Render(fmt.Sprintf("Alert: %s", alert.Event)),
			alert.Description,
			alert.Start.Format("2006-01-02 15:04"),
			alert.End.Format("2006-01-02 15:04"),
		)
		b.WriteString(alertPanelStyle.Render(content))
		b.WriteString("\n")
	}

	return b.String()
}

// FavoriteReports renders the batch favorites result: a weather block per
// reachable favorite and a styled error line for each failure.
func FavoriteReports(reports []core.FavoriteReport) string {
	var b strings.Builder

	for i, report := range reports {
		if i > 0 {
			b.WriteString("\n")
		}

		if report.Err != nil {
			b.WriteString(errStyle.Render(
				fmt.Sprintf("Error getting weather for %s: %v", report.Name, report.Err)))
			b.WriteString("\n")

			continue
		}

		b.WriteString(titleStyle.Render(fmt.Sprintf("Weather for %s", report.Name)))
		b.WriteString("\n")
		b.WriteString(Current(report.Weather))
	}

	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// padRight pads s with spaces to the given width
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return s + strings.Repeat(" ", width-len(s))
}
