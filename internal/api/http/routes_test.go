package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"irriweather/internal/weather"
)

type stubSource struct {
	err       error
	gotCoords weather.Coordinates
}

func (s *stubSource) GetWateringData(_ context.Context, coords weather.Coordinates) (*weather.WateringSummary, error) {
	s.gotCoords = coords
	if s.err != nil {
		return nil, s.err
	}
	return &weather.WateringSummary{Provider: "stub", MeanTemp: 61, MeanHumidity: 48, Raining: false}, nil
}

func (s *stubSource) GetWeatherData(_ context.Context, coords weather.Coordinates) (*weather.WeatherSummary, error) {
	s.gotCoords = coords
	if s.err != nil {
		return nil, s.err
	}
	return &weather.WeatherSummary{Provider: "stub"}, nil
}

func (s *stubSource) GetEToData(_ context.Context, coords weather.Coordinates) (*weather.EToInputs, error) {
	s.gotCoords = coords
	if s.err != nil {
		return nil, s.err
	}
	return &weather.EToInputs{Provider: "stub"}, nil
}

type stubGeocoder struct {
	coords weather.Coordinates
	err    error
}

func (g *stubGeocoder) Resolve(city, country string) (weather.Coordinates, error) {
	return g.coords, g.err
}

func newTestApp(source weather.Source, geocoder Geocoder) *fiber.App {
	app := fiber.New()
	RegisterRoutes(app, source, geocoder)
	return app
}

func TestLocationQueryValidation(t *testing.T) {
	app := newTestApp(&stubSource{}, &stubGeocoder{})

	cases := []struct {
		name string
		url  string
		want int
	}{
		{"no location at all", "/api/v1/watering", http.StatusBadRequest},
		{"lat without lon", "/api/v1/watering?lat=52.52", http.StatusBadRequest},
		{"out of range lat", "/api/v1/watering?lat=123&lon=13.4", http.StatusBadRequest},
		{"city without country", "/api/v1/watering?city=Berlin", http.StatusBadRequest},
		{"coordinates", "/api/v1/watering?lat=52.52&lon=13.41", http.StatusOK},
		{"city and country", "/api/v1/watering?city=Berlin&country=DE", http.StatusOK},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.url, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if resp.StatusCode != tc.want {
			t.Errorf("%s: got status %d, want %d", tc.name, resp.StatusCode, tc.want)
		}
	}
}

func TestCoordinatesPassedThrough(t *testing.T) {
	source := &stubSource{}
	app := newTestApp(source, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/eto?lat=48.21&lon=16.37", nil)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := weather.Coordinates{Lat: 48.21, Lon: 16.37}
	if source.gotCoords != want {
		t.Errorf("coords: got %v, want %v", source.gotCoords, want)
	}
}

func TestGeocoderFallback(t *testing.T) {
	source := &stubSource{}
	geocoder := &stubGeocoder{coords: weather.Coordinates{Lat: 52.52, Lon: 13.41}}
	app := newTestApp(source, geocoder)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather?city=Berlin&country=DE", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, want 200", resp.StatusCode)
	}
	if source.gotCoords != geocoder.coords {
		t.Errorf("coords: got %v, want %v", source.gotCoords, geocoder.coords)
	}
}

func TestUpstreamErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"insufficient data", weather.ErrInsufficientData, http.StatusBadGateway},
		{"data fault", weather.ErrBadWeatherData, http.StatusBadGateway},
		{"missing field", weather.ErrMissingWeatherField, http.StatusBadGateway},
		{"transport", weather.ErrWeatherAPI, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		app := newTestApp(&stubSource{err: tc.err}, nil)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/watering?lat=52.52&lon=13.41", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if resp.StatusCode != tc.want {
			t.Errorf("%s: got status %d, want %d", tc.name, resp.StatusCode, tc.want)
		}
	}
}
