package openweather

import "time"

// Coordinates is a geographic point in WGS 84 degrees. Values are only
// meaningful within the command execution that resolved them; nothing
// caches coordinates between invocations.
type Coordinates struct {
	Lat float64
	Lon float64
}

// CurrentWeather is an immutable snapshot of current conditions for one
// location. All values are metric: Celsius and meters per second.
type CurrentWeather struct {
	Location    string
	Description string
	Temperature float64
	FeelsLike   float64
	Humidity    int
	WindSpeed   float64
}

// ForecastEntry is one timestamped snapshot from the provider's forecast
// feed. Entries arrive at a fixed interval (3 hours on the free tier).
type ForecastEntry struct {
	Time        time.Time
	Description string
	Temperature float64
	Humidity    int
	WindSpeed   float64
}

// Forecast is the full multi-day forecast for one location, in provider
// order. Downsampling to one entry per day is a rendering concern.
type Forecast struct {
	City    string
	Entries []ForecastEntry
}

// Alert is an active government weather alert for a location.
type Alert struct {
	Event       string
	Description string
	Start       time.Time
	End         time.Time
}
