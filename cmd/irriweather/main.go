package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "irriweather/internal/api/http"
	"irriweather/internal/config"
	"irriweather/internal/geo"
	"irriweather/internal/logging"
	"irriweather/internal/scheduler"
	"irriweather/internal/solar"
	"irriweather/internal/weather"
	"irriweather/internal/weather/providers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg, "irriweather")

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provider := providers.NewBrightSkyProvider(httpClient, cfg.ProviderBaseURL)
	service := weather.NewService(provider, solar.ApproximateRadiation, cfg.ForecastDays, logger)
	resolver := geo.NewResolver(cfg.GeocoderAPIKey)

	// Watchdog locations are resolved once at startup; a failed lookup
	// drops the location from the probe list, nothing more.
	var watchCoords []weather.Coordinates
	for _, wl := range cfg.WatchLocations {
		coords, err := resolver.Resolve(wl.City, wl.Country)
		if err != nil {
			logger.Warn("skipping watch location", "city", wl.City, "country", wl.Country, "error", err)
			continue
		}
		watchCoords = append(watchCoords, coords)
	}

	watchdog := scheduler.New(watchCoords, cfg.WatchInterval, service, logger)
	if err := watchdog.Start(); err != nil {
		log.Fatalf("failed to start watchdog: %v", err)
	}
	defer watchdog.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "irriweather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "irriweather",
		})
	})

	httpapi.RegisterRoutes(app, service, resolver)

	go func() {
		logger.Info("listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("fiber server stopped", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("error during shutdown", "error", err)
	}
}
