package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/inovacc/skycast/internal/core"
	"github.com/inovacc/skycast/internal/render"
)

var addFavoriteCmd = &cobra.Command{
	Use:   "add-favorite <location>",
	Short: "Save a location to the favorites list",
	Long: `Save a location for quick access via 'skycast favorites'.

The location is verified against the provider's geocoder before it is
saved, so the list only holds resolvable names. Adding a name that is
already saved is a no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: runAddFavorite,
}

var removeFavoriteCmd = &cobra.Command{
	Use:   "remove-favorite <location>",
	Short: "Remove a location from the favorites list",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoveFavorite,
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Show current weather for every favorite location",
	Long: `Fetch current weather for each saved favorite, one request pair at a
time. A favorite that fails to fetch is reported inline and the remaining
favorites are still shown.`,
	Args: cobra.NoArgs,
	RunE: runFavorites,
}

func init() {
	rootCmd.AddCommand(addFavoriteCmd)
	rootCmd.AddCommand(removeFavoriteCmd)
	rootCmd.AddCommand(favoritesCmd)
}

func runAddFavorite(_ *cobra.Command, args []string) error {
	location := args[0]

	added, err := runWithSpinner("Verifying location...", func() (bool, error) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		return core.AddFavorite(ctx, weatherClient, favStore, location)
	})
	if err != nil {
		return err
	}

	if !added {
		_, _ = fmt.Fprintln(os.Stdout, dimStyle.Render(fmt.Sprintf("%s is already a favorite", location)))
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, okStyle.Render(fmt.Sprintf("Added %s to favorites", location)))

	return nil
}

func runRemoveFavorite(_ *cobra.Command, args []string) error {
	location := args[0]

	removed, err := favStore.Remove(location)
	if err != nil {
		return err
	}

	if !removed {
		_, _ = fmt.Fprintln(os.Stdout, dimStyle.Render(fmt.Sprintf("%s is not a favorite", location)))
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, okStyle.Render(fmt.Sprintf("Removed %s from favorites", location)))

	return nil
}

func runFavorites(_ *cobra.Command, _ []string) error {
	names := favStore.Names()
	if len(names) == 0 {
		printEmptyResult("favorite locations", "skycast add-favorite <location>")
		return nil
	}

	reports, err := runWithSpinner("Fetching weather data...", func() ([]core.FavoriteReport, error) {
		// One minute per favorite; the batch runs sequentially.
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(len(names))*time.Minute)
		defer cancel()

		return core.FetchFavorites(ctx, weatherClient, names), nil
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprint(os.Stdout, render.FavoriteReports(reports))

	return nil
}
