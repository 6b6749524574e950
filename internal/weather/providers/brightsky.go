package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"irriweather/internal/weather"
)

const defaultBrightSkyURL = "https://api.brightsky.dev/weather"

// BrightSkyProvider implements weather.HourlyFetcher for the DWD Bright
// Sky API. Bright Sky serves observed and forecast hours through the same
// endpoint, so both the trailing and forward windows use one code path.
type BrightSkyProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewBrightSkyProvider(client *http.Client, baseURL string) *BrightSkyProvider {
	if baseURL == "" {
		baseURL = defaultBrightSkyURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "brightsky",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &BrightSkyProvider{
		name:    "brightsky",
		baseURL: baseURL,
		client:  client,
		circuit: cb,
	}
}

var _ weather.HourlyFetcher = (*BrightSkyProvider)(nil)

func (p *BrightSkyProvider) Name() string {
	return p.name
}

// FetchHourly returns the ordered hourly records for [from, to). Failures
// are discriminated into the transport, missing-field and empty-response
// kinds; nothing is retried here.
func (p *BrightSkyProvider) FetchHourly(ctx context.Context, coords weather.Coordinates, from, to time.Time) ([]weather.RawHourlyRecord, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", fmt.Sprintf("%f", coords.Lat))
		values.Set("lon", fmt.Sprintf("%f", coords.Lon))
		values.Set("date", from.Format(time.RFC3339))
		values.Set("last_date", to.Format(time.RFC3339))

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", weather.ErrWeatherAPI, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Weather []struct {
			Timestamp        string   `json:"timestamp"`
			Temperature      *float64 `json:"temperature"`
			RelativeHumidity *float64 `json:"relative_humidity"`
			DewPoint         *float64 `json:"dew_point"`
			Precipitation    *float64 `json:"precipitation"`
			WindSpeed        *float64 `json:"wind_speed"`
			CloudCover       *float64 `json:"cloud_cover"`
			Icon             string   `json:"icon"`
		} `json:"weather"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", weather.ErrWeatherAPI, err)
	}
	if payload.Weather == nil {
		return nil, fmt.Errorf("%w: response has no weather array", weather.ErrMissingWeatherField)
	}
	if len(payload.Weather) == 0 {
		return nil, fmt.Errorf("%w: provider returned an empty hourly sequence", weather.ErrInsufficientData)
	}

	recs := make([]weather.RawHourlyRecord, 0, len(payload.Weather))
	for _, h := range payload.Weather {
		// RFC3339 keeps the provider's zone offset, so local start-of-day
		// math downstream stays in the station's zone.
		ts, err := time.Parse(time.RFC3339, h.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%w: bad timestamp %q", weather.ErrBadWeatherData, h.Timestamp)
		}

		recs = append(recs, weather.RawHourlyRecord{
			Time:          ts,
			TemperatureC:  h.Temperature,
			HumidityPct:   h.RelativeHumidity,
			DewPointC:     h.DewPoint,
			PrecipMm:      h.Precipitation,
			WindKmh:       h.WindSpeed,
			CloudCoverPct: h.CloudCover,
			ConditionCode: h.Icon,
		})
	}
	return recs, nil
}
