package geo

import (
	"fmt"

	"github.com/kelvins/geocoder"

	"irriweather/internal/weather"
)

// Resolver turns a city/country pair into coordinates through the Google
// geocoding API.
type Resolver struct{}

// NewResolver configures the geocoder API key and returns a Resolver.
func NewResolver(apiKey string) *Resolver {
	geocoder.ApiKey = apiKey
	return &Resolver{}
}

func (r *Resolver) Resolve(city, country string) (weather.Coordinates, error) {
	loc, err := geocoder.Geocoding(geocoder.Address{
		City:    city,
		Country: country,
	})
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("geocoding %s,%s: %w", city, country, err)
	}

	return weather.Coordinates{
		Lat: loc.Latitude,
		Lon: loc.Longitude,
	}, nil
}
