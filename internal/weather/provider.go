package weather

import (
	"context"
	"time"
)

// HourlyFetcher abstracts a weather data source returning an ordered
// hourly observation sequence for the window [from, to).
type HourlyFetcher interface {
	Name() string
	FetchHourly(ctx context.Context, coords Coordinates, from, to time.Time) ([]RawHourlyRecord, error)
}

// Source is the capability surface consumed by the irrigation scheduler.
// Any provider variant sits behind this interface.
type Source interface {
	GetWateringData(ctx context.Context, coords Coordinates) (*WateringSummary, error)
	GetWeatherData(ctx context.Context, coords Coordinates) (*WeatherSummary, error)
	GetEToData(ctx context.Context, coords Coordinates) (*EToInputs, error)
}
