// Package openweather is the OpenWeatherMap client: free-text location
// geocoding plus current conditions, 5-day forecast, and active alerts at
// resolved coordinates.
//
// The provider splits name search from coordinate-based queries, so every
// data operation is a two-step resolve-then-query exchange. Queries always
// re-resolve the location name; call volume is one command per process, so
// coordinate caching buys nothing.
//
// # Errors
//
// Operations fail with exactly two kinds:
//   - [LocationNotFoundError] when geocoding yields an empty result set
//   - [TransportError] for connection failures, non-2xx responses, and
//     payloads that do not decode
//
// There are no retries. A failed resolve short-circuits the operation;
// the data endpoint is never contacted.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config carries everything the client needs; it is supplied once at
// construction instead of living in package-level state.
type Config struct {
	APIKey     string
	GeoURL     string // geocoding family, e.g. https://api.openweathermap.org/geo/1.0
	DataURL    string // current + forecast family, e.g. .../data/2.5
	OneCallURL string // alerts live on One Call only, e.g. .../data/3.0
	Timeout    time.Duration
	Logger     *slog.Logger
}

// Client fetches weather data from OpenWeatherMap. Safe for sequential use
// from a single command; it holds no mutable state.
type Client struct {
	apiKey     string
	geoURL     string
	dataURL    string
	oneCallURL string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client from cfg. A zero Timeout falls back to 10s so
// no request ever runs without a deadline.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		apiKey:     cfg.APIKey,
		geoURL:     strings.TrimSuffix(cfg.GeoURL, "/"),
		dataURL:    strings.TrimSuffix(cfg.DataURL, "/"),
		oneCallURL: strings.TrimSuffix(cfg.OneCallURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// ResolveLocation resolves a free-text place name to coordinates via the
// geocoding endpoint, limit=1.
func (c *Client) ResolveLocation(ctx context.Context, name string) (Coordinates, error) {
	params := url.Values{}
	params.Set("q", name)
	params.Set("limit", "1")
	params.Set("appid", c.apiKey)

	var results []struct {
		Name string  `json:"name"`
		Lat  float64 `json:"lat"`
		Lon  float64 `json:"lon"`
	}

	if err := c.get(ctx, "geocode", c.geoURL+"/direct", params, &results); err != nil {
		return Coordinates{}, err
	}

	if len(results) == 0 {
		return Coordinates{}, &LocationNotFoundError{Query: name}
	}

	return Coordinates{Lat: results[0].Lat, Lon: results[0].Lon}, nil
}

// CurrentWeather resolves name and fetches current conditions in metric units.
func (c *Client) CurrentWeather(ctx context.Context, name string) (CurrentWeather, error) {
	coords, err := c.ResolveLocation(ctx, name)
	if err != nil {
		return CurrentWeather{}, err
	}

	var response struct {
		Name string `json:"name"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	}

	if err := c.get(ctx, "current weather", c.dataURL+"/weather", c.coordParams(coords), &response); err != nil {
		return CurrentWeather{}, err
	}

	description := ""
	if len(response.Weather) > 0 {
		description = response.Weather[0].Description
	}

	location := response.Name
	if location == "" {
		location = name
	}

	return CurrentWeather{
		Location:    location,
		Description: description,
		Temperature: response.Main.Temp,
		FeelsLike:   response.Main.FeelsLike,
		Humidity:    response.Main.Humidity,
		WindSpeed:   response.Wind.Speed,
	}, nil
}

// Forecast resolves name and fetches the 5-day forecast. Entries are
// returned in provider order, unfiltered.
func (c *Client) Forecast(ctx context.Context, name string) (Forecast, error) {
	coords, err := c.ResolveLocation(ctx, name)
	if err != nil {
		return Forecast{}, err
	}

	var response struct {
		City struct {
			Name string `json:"name"`
		} `json:"city"`
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp     float64 `json:"temp"`
				Humidity int     `json:"humidity"`
			} `json:"main"`
			Wind struct {
				Speed float64 `json:"speed"`
			} `json:"wind"`
			Weather []struct {
				Description string `json:"description"`
			} `json:"weather"`
		} `json:"list"`
	}

	if err := c.get(ctx, "forecast", c.dataURL+"/forecast", c.coordParams(coords), &response); err != nil {
		return Forecast{}, err
	}

	city := response.City.Name
	if city == "" {
		city = name
	}

	forecast := Forecast{
		City:    city,
		Entries: make([]ForecastEntry, 0, len(response.List)),
	}

	for _, item := range response.List {
		description := ""
		if len(item.Weather) > 0 {
			description = item.Weather[0].Description
		}

		forecast.Entries = append(forecast.Entries, ForecastEntry{
			Time:        time.Unix(item.Dt, 0),
			Description: description,
			Temperature: item.Main.Temp,
			Humidity:    item.Main.Humidity,
			WindSpeed:   item.Wind.Speed,
		})
	}

	return forecast, nil
}

// Alerts resolves name and fetches active alerts from the One Call
// endpoint. No active alerts is an empty slice, not an error.
func (c *Client) Alerts(ctx context.Context, name string) ([]Alert, error) {
	coords, err := c.ResolveLocation(ctx, name)
	if err != nil {
		return nil, err
	}

	params := c.coordParams(coords)
	params.Set("exclude", "current,minutely,hourly,daily")

	var response struct {
		Alerts []struct {
			Event       string `json:"event"`
			Description string `json:"description"`
			Start       int64  `json:"start"`
			End         int64  `json:"end"`
		} `json:"alerts"`
	}

	if err := c.get(ctx, "alerts", c.oneCallURL+"/onecall", params, &response); err != nil {
		return nil, err
	}

	alerts := make([]Alert, 0, len(response.Alerts))
	for _, a := range response.Alerts {
		alerts = append(alerts, Alert{
			Event:       a.Event,
			Description: a.Description,
			Start:       time.Unix(a.Start, 0),
			End:         time.Unix(a.End, 0),
		})
	}

	return alerts, nil
}

// coordParams builds the shared query for coordinate-based endpoints.
// Units are fixed to metric; the tool has no imperial mode.
func (c *Client) coordParams(coords Coordinates) url.Values {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	return params
}

func (c *Client) get(ctx context.Context, operation, endpoint string, params url.Values, out any) error {
	c.logger.Debug("requesting provider endpoint",
		slog.String("operation", operation),
		slog.String("endpoint", endpoint),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return &TransportError{Operation: operation, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Operation: operation, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Operation: operation, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &TransportError{
			Operation: operation,
			Err:       fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &TransportError{Operation: operation, Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	return nil
}
