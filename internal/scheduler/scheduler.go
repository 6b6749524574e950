package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"irriweather/internal/weather"
)

// Watchdog periodically probes the weather provider for the configured
// locations and logs reachability. Probe results are discarded: aggregates
// are always computed fresh per request.
type Watchdog struct {
	scheduler *gocron.Scheduler
	source    weather.Source
	locations []weather.Coordinates
	interval  time.Duration
	logger    *slog.Logger
}

// New creates a new Watchdog.
func New(locations []weather.Coordinates, interval time.Duration, source weather.Source, logger *slog.Logger) *Watchdog {
	s := gocron.NewScheduler(time.UTC)
	return &Watchdog{
		scheduler: s,
		source:    source,
		locations: locations,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the periodic probe and starts the underlying scheduler.
func (w *Watchdog) Start() error {
	if len(w.locations) == 0 {
		w.logger.Info("watchdog: no locations configured; nothing to schedule")
		return nil
	}

	minutes := int(w.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := w.scheduler.Every(minutes).Minutes().Do(func() {
		for _, loc := range w.locations {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			summary, err := w.source.GetWateringData(ctx, loc)
			cancel()

			if err != nil {
				w.logger.Warn("watchdog: provider probe failed",
					"lat", loc.Lat, "lon", loc.Lon, "error", err)
				continue
			}
			w.logger.Info("watchdog: provider reachable",
				"lat", loc.Lat, "lon", loc.Lon,
				"meanTemp", summary.MeanTemp, "raining", summary.Raining)
		}
	})
	if err != nil {
		return err
	}

	w.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future probes.
func (w *Watchdog) Stop() {
	if w.scheduler != nil {
		w.scheduler.Stop()
	}
}
