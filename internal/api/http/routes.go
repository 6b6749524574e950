package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"irriweather/internal/weather"
)

var validate = validator.New()

// Geocoder resolves a city/country pair when the caller supplies no
// coordinates.
type Geocoder interface {
	Resolve(city, country string) (weather.Coordinates, error)
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, source weather.Source, geocoder Geocoder) {
	v1 := app.Group("/api/v1")

	v1.Get("/watering", func(c *fiber.Ctx) error {
		coords, err := resolveCoordinates(c, geocoder)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		summary, err := source.GetWateringData(c.Context(), coords)
		if err != nil {
			return upstreamError(err)
		}
		return c.JSON(summary)
	})

	v1.Get("/weather", func(c *fiber.Ctx) error {
		coords, err := resolveCoordinates(c, geocoder)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		summary, err := source.GetWeatherData(c.Context(), coords)
		if err != nil {
			return upstreamError(err)
		}
		return c.JSON(summary)
	})

	v1.Get("/eto", func(c *fiber.Ctx) error {
		coords, err := resolveCoordinates(c, geocoder)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		inputs, err := source.GetEToData(c.Context(), coords)
		if err != nil {
			return upstreamError(err)
		}
		return c.JSON(inputs)
	})
}

// upstreamError maps the aggregation error kinds onto HTTP statuses. All
// data-quality kinds read as a bad gateway: the request was fine, the
// upstream data was not.
func upstreamError(err error) error {
	switch {
	case errors.Is(err, weather.ErrInsufficientData),
		errors.Is(err, weather.ErrBadWeatherData),
		errors.Is(err, weather.ErrMissingWeatherField):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	case errors.Is(err, weather.ErrWeatherAPI):
		return fiber.NewError(fiber.StatusBadGateway, "weather provider unavailable")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build weather aggregate")
	}
}

// locationQuery holds the query parameters identifying a location: either
// lat+lon, or city+country resolved through the geocoder.
type locationQuery struct {
	Lat     *float64 `validate:"omitempty,gte=-90,lte=90"`
	Lon     *float64 `validate:"omitempty,gte=-180,lte=180"`
	City    string   `validate:"required_without=Lat"`
	Country string   `validate:"required_with=City"`
}

func resolveCoordinates(c *fiber.Ctx, geocoder Geocoder) (weather.Coordinates, error) {
	var q locationQuery

	if s := c.Query("lat"); s != "" {
		lat, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return weather.Coordinates{}, errors.New("invalid lat")
		}
		q.Lat = &lat
	}
	if s := c.Query("lon"); s != "" {
		lon, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return weather.Coordinates{}, errors.New("invalid lon")
		}
		q.Lon = &lon
	}
	q.City = c.Query("city")
	q.Country = c.Query("country")

	if err := validate.Struct(q); err != nil {
		return weather.Coordinates{}, err
	}

	if q.Lat != nil || q.Lon != nil {
		if q.Lat == nil || q.Lon == nil {
			return weather.Coordinates{}, errors.New("lat and lon must be provided together")
		}
		return weather.Coordinates{Lat: *q.Lat, Lon: *q.Lon}, nil
	}

	if geocoder == nil {
		return weather.Coordinates{}, errors.New("no geocoder configured; provide lat and lon")
	}
	return geocoder.Resolve(q.City, q.Country)
}
