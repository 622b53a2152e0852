package core

import (
	"context"

	"github.com/inovacc/skycast/internal/favorites"
	"github.com/inovacc/skycast/internal/openweather"
)

// WeatherFetcher is the slice of the provider client the favorites
// operations need.
type WeatherFetcher interface {
	ResolveLocation(ctx context.Context, name string) (openweather.Coordinates, error)
	CurrentWeather(ctx context.Context, name string) (openweather.CurrentWeather, error)
}

// FavoriteReport is the outcome for one favorite in a batch fetch: either
// Weather is populated or Err is set, never both.
type FavoriteReport struct {
	Name    string
	Weather openweather.CurrentWeather
	Err     error
}

// AddFavorite verifies that name resolves with the provider before
// persisting it, so the list only ever holds fetchable locations. It
// reports whether the list changed.
func AddFavorite(ctx context.Context, fetcher WeatherFetcher, store *favorites.Store, name string) (bool, error) {
	if _, err := fetcher.ResolveLocation(ctx, name); err != nil {
		return false, err
	}

	return store.Add(name)
}

// FetchFavorites fetches current weather for each name sequentially. A
// failure on one favorite is recorded in its report and iteration
// continues; this is the only partial-failure surface in the program.
func FetchFavorites(ctx context.Context, fetcher WeatherFetcher, names []string) []FavoriteReport {
	reports := make([]FavoriteReport, 0, len(names))

	for _, name := range names {
		weather, err := fetcher.CurrentWeather(ctx, name)
		reports = append(reports, FavoriteReport{Name: name, Weather: weather, Err: err})
	}

	return reports
}
