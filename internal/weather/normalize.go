package weather

import (
	"fmt"
	"math"
)

// Magnus dew-point approximation constants.
const (
	magnusK2 = 17.62
	magnusK3 = 243.12
)

// Normalize converts one raw provider record into a canonical hourly
// sample. Timestamp, temperature, precipitation, wind and cloud cover are
// mandatory; humidity is taken directly when the provider reports it and
// derived from dew point otherwise.
func Normalize(rec RawHourlyRecord) (HourlySample, error) {
	if rec.Time.IsZero() {
		return HourlySample{}, fmt.Errorf("%w: record has no timestamp", ErrBadWeatherData)
	}
	if rec.TemperatureC == nil || rec.PrecipMm == nil || rec.WindKmh == nil || rec.CloudCoverPct == nil {
		return HourlySample{}, fmt.Errorf("%w: record at %s is missing a mandatory field", ErrBadWeatherData, rec.Time)
	}

	tempF := *rec.TemperatureC*1.8 + 32
	precipIn := *rec.PrecipMm / 25.4
	windMph := *rec.WindKmh * 0.62

	return HourlySample{
		Time:       rec.Time,
		Temp:       &tempF,
		Humidity:   normalizeHumidity(rec),
		Precip:     &precipIn,
		Wind:       &windMph,
		CloudCover: *rec.CloudCoverPct / 100,
		Icon:       mapIcon(rec.ConditionCode),
	}, nil
}

// normalizeHumidity prefers the provider's relative humidity and falls
// back to the Magnus approximation from dew point. Both inputs absent
// leaves the sample's humidity absent; the gap is carried, not zeroed.
func normalizeHumidity(rec RawHourlyRecord) *float64 {
	if rec.HumidityPct != nil {
		h := math.Round(*rec.HumidityPct)
		return &h
	}
	if rec.DewPointC == nil {
		return nil
	}
	t := *rec.TemperatureC
	td := *rec.DewPointC
	h := math.Round(100 * math.Exp(magnusK2*td/(magnusK3+td)) / math.Exp(magnusK2*t/(magnusK3+t)))
	return &h
}

// NormalizeAll converts a raw hourly sequence, preserving order. The first
// malformed record fails the whole sequence.
func NormalizeAll(recs []RawHourlyRecord) ([]HourlySample, error) {
	samples := make([]HourlySample, 0, len(recs))
	for _, rec := range recs {
		s, err := Normalize(rec)
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, nil
}
