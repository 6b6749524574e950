package weather

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultForecastDays is the forecast horizon when none is configured.
const DefaultForecastDays = 8

// Service implements Source over a single hourly provider. Each entry
// point performs exactly one fetch and runs the aggregation synchronously
// over the returned sequence; no state survives a call.
type Service struct {
	fetcher  HourlyFetcher
	estimate RadiationEstimator
	days     int
	logger   *slog.Logger

	// now is swapped out by tests to pin the current-conditions snapshot.
	now func() time.Time
}

// NewService creates a new Service.
func NewService(fetcher HourlyFetcher, estimate RadiationEstimator, forecastDays int, logger *slog.Logger) *Service {
	if forecastDays <= 0 {
		forecastDays = DefaultForecastDays
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		fetcher:  fetcher,
		estimate: estimate,
		days:     forecastDays,
		logger:   logger,
		now:      time.Now,
	}
}

var _ Source = (*Service)(nil)

// GetWateringData reduces the trailing 24 hours into the means and totals
// the Zimmerman adjustment consumes.
func (s *Service) GetWateringData(ctx context.Context, coords Coordinates) (*WateringSummary, error) {
	now := s.now().Truncate(time.Hour)
	samples, err := s.fetchWindow(ctx, coords, now.Add(-24*time.Hour), now)
	if err != nil {
		return nil, err
	}

	stats, err := ReducePeriod(samples)
	if err != nil {
		return nil, err
	}

	return &WateringSummary{
		Provider:     s.fetcher.Name(),
		MeanTemp:     stats.MeanTemp,
		MeanHumidity: stats.MeanHumidity,
		Precip:       stats.Precip,
		Raining:      stats.Raining,
	}, nil
}

// GetWeatherData builds current conditions and the multi-day forecast
// from an hourly sequence starting at today's local midnight.
func (s *Service) GetWeatherData(ctx context.Context, coords Coordinates) (*WeatherSummary, error) {
	now := s.now()
	from := startOfDay(now)
	samples, err := s.fetchWindow(ctx, coords, from, from.AddDate(0, 0, s.days))
	if err != nil {
		return nil, err
	}

	current, forecast, err := Resample(samples, now)
	if err != nil {
		return nil, err
	}

	return &WeatherSummary{
		Provider: s.fetcher.Name(),
		Current:  current,
		Forecast: forecast,
	}, nil
}

// GetEToData reduces the trailing 24 hours into evapotranspiration inputs,
// delegating solar radiation to the configured estimator.
func (s *Service) GetEToData(ctx context.Context, coords Coordinates) (*EToInputs, error) {
	now := s.now().Truncate(time.Hour)
	samples, err := s.fetchWindow(ctx, coords, now.Add(-24*time.Hour), now)
	if err != nil {
		return nil, err
	}

	inputs, err := BuildEToInputs(samples, coords, s.estimate)
	if err != nil {
		return nil, err
	}
	inputs.Provider = s.fetcher.Name()
	return inputs, nil
}

// fetchWindow is the single suspension point of every entry point: one
// provider call, then normalization of the returned sequence in memory.
func (s *Service) fetchWindow(ctx context.Context, coords Coordinates, from, to time.Time) ([]HourlySample, error) {
	reqID := uuid.NewString()

	recs, err := s.fetcher.FetchHourly(ctx, coords, from, to)
	if err != nil {
		s.logger.Error("provider fetch failed",
			"request", reqID, "provider", s.fetcher.Name(),
			"lat", coords.Lat, "lon", coords.Lon, "error", err)
		return nil, err
	}

	samples, err := NormalizeAll(recs)
	if err != nil {
		s.logger.Error("hourly record normalization failed",
			"request", reqID, "provider", s.fetcher.Name(), "error", err)
		return nil, err
	}

	s.logger.Debug("fetched hourly window",
		"request", reqID, "provider", s.fetcher.Name(),
		"from", from, "to", to, "samples", len(samples))
	return samples, nil
}
