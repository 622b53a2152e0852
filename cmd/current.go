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

var currentCmd = &cobra.Command{
	Use:   "current <location>",
	Short: "Show current weather for a location",
	Long: `Fetch current conditions for a location in metric units.

The location is a free-text place name resolved through the provider's
geocoder on every invocation.

Examples:
  skycast current Paris
  skycast current "New York"`,
	Args: cobra.ExactArgs(1),
	RunE: runCurrent,
}

func init() {
	rootCmd.AddCommand(currentCmd)
}

func runCurrent(_ *cobra.Command, args []string) error {
	location := args[0]

	weather, err := runWithSpinner("Fetching weather data...", func() (openweather.CurrentWeather, error) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		return weatherClient.CurrentWeather(ctx, location)
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprint(os.Stdout, render.Current(weather))

	return nil
}
