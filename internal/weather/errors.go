package weather

import "errors"

var (
	// ErrWeatherAPI is returned when the provider request itself failed:
	// transport error, non-2xx status, open circuit, or a body that could
	// not be decoded.
	ErrWeatherAPI = errors.New("weather provider request failed")

	// ErrMissingWeatherField is returned when the response decoded but
	// lacks the hourly weather field.
	ErrMissingWeatherField = errors.New("weather field missing from provider response")

	// ErrInsufficientData is returned when a trailing-window aggregation
	// does not receive 23 or 24 samples, or the provider returned an empty
	// sequence. Averaging over a wrong count of hours silently biases the
	// result, so this is a hard failure.
	ErrInsufficientData = errors.New("insufficient weather data")

	// ErrBadWeatherData is returned when a record is missing a mandatory
	// field at normalization time. Missing observations are never coerced
	// to zero-valued weather.
	ErrBadWeatherData = errors.New("bad weather data")
)
