package cmd

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/inovacc/skycast/internal/application"
	"github.com/inovacc/skycast/internal/cli"
	"github.com/inovacc/skycast/internal/config"
	"github.com/inovacc/skycast/internal/favorites"
	"github.com/inovacc/skycast/internal/openweather"
)

var (
	cfg           *config.Config
	weatherClient *openweather.Client
	favStore      *favorites.Store
)

var rootCmd = &cobra.Command{
	Use:     application.AppName,
	Version: application.AppVersion,
	Short:   "A terminal weather client",
	Long: `Skycast fetches current conditions, 5-day forecasts, and weather alerts
from OpenWeatherMap and keeps a local list of favorite locations.

Run 'skycast' without arguments to pick a favorite interactively.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}

		cfg = loaded
		weatherClient = openweather.NewClient(openweather.Config{
			APIKey:     cfg.APIKey,
			GeoURL:     cfg.GeoURL,
			DataURL:    cfg.DataURL,
			OneCallURL: cfg.OneCallURL,
			Timeout:    cfg.HTTPTimeout,
		})
		favStore = favorites.Load(cfg.FavoritesFile)

		return nil
	},
	RunE: runPicker,
}

// runPicker is the bare invocation: choose a favorite interactively and
// show its current weather.
func runPicker(cmd *cobra.Command, _ []string) error {
	names := favStore.Names()
	if len(names) == 0 {
		printEmptyResult("favorite locations", "skycast add-favorite <location>")
		return nil
	}

	p := tea.NewProgram(cli.NewFavoritesPicker(names))

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	choice := finalModel.(cli.PickerModel).Choice()
	if choice == "" {
		return nil
	}

	return runCurrent(cmd, []string{choice})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.SetErrPrefix(errStyle.Render("Error:"))
}
