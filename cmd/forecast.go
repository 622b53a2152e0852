package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/inovacc/skycast/internal/openweather"
	"github.com/inovacc/skycast/internal/render"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast <location>",
	Short: "Show the 5-day forecast for a location",
	Long: `Fetch the 5-day forecast for a location and show one entry per day.

The provider delivers forecast entries every 3 hours; the table samples the
first entry of each day.

Examples:
  skycast forecast Berlin
  skycast forecast "Buenos Aires"`,
	Args: cobra.ExactArgs(1),
	RunE: runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, args []string) error {
	location := args[0]

	forecast, err := runWithSpinner("Fetching forecast data...", func() (openweather.Forecast, error) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		return weatherClient.Forecast(ctx, location)
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprint(os.Stdout, render.Forecast(forecast.City, forecast.Entries, cfg.EntriesPerDay()))

	return nil
}
