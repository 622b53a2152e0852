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

var alertsCmd = &cobra.Command{
	Use:   "alerts <location>",
	Short: "Show active weather alerts for a location",
	Long: `Fetch active government weather alerts for a location.

A location with no active alerts prints an all-clear panel. Alerts require
a One Call API subscription on the provider side.

Examples:
  skycast alerts Miami`,
	Args: cobra.ExactArgs(1),
	RunE: runAlerts,
}

func init() {
	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(_ *cobra.Command, args []string) error {
	location := args[0]

	alerts, err := runWithSpinner("Fetching weather alerts...", func() ([]openweather.Alert, error) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		return weatherClient.Alerts(ctx, location)
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprint(os.Stdout, render.Alerts(alerts))

	return nil
}
