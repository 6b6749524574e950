package weather

import "fmt"

// PeriodStats holds the trailing-window reductions shared by the watering
// and ETo paths. Min/max fields are nil when the underlying value was
// absent in every sample.
type PeriodStats struct {
	MeanTemp     float64
	MeanHumidity float64
	MeanWind     float64
	TempMin      *float64
	TempMax      *float64
	HumidityMin  *float64
	HumidityMax  *float64
	Precip       float64
	Raining      bool
}

// ReducePeriod reduces a nominal 24-hour trailing window of samples.
// Exactly 23 or 24 samples are accepted: the spring daylight-saving
// transition produces one 23-hour calendar day per year. Any other count
// indicates a partial provider outage and fails rather than skewing the
// averages.
func ReducePeriod(samples []HourlySample) (PeriodStats, error) {
	n := len(samples)
	if n != 23 && n != 24 {
		return PeriodStats{}, fmt.Errorf("%w: got %d hourly samples, want 23 or 24", ErrInsufficientData, n)
	}

	var stats PeriodStats
	var sumTemp, sumHumidity, sumWind float64
	for _, s := range samples {
		sumTemp += orZero(s.Temp)
		sumHumidity += orZero(s.Humidity)
		sumWind += orZero(s.Wind)
		stats.Precip += orZero(s.Precip)

		stats.TempMin = minOpt(stats.TempMin, s.Temp)
		stats.TempMax = maxOpt(stats.TempMax, s.Temp)
		stats.HumidityMin = minOpt(stats.HumidityMin, s.Humidity)
		stats.HumidityMax = maxOpt(stats.HumidityMax, s.Humidity)
	}

	stats.MeanTemp = sumTemp / float64(n)
	stats.MeanHumidity = sumHumidity / float64(n)
	stats.MeanWind = sumWind / float64(n)
	stats.Raining = orZero(samples[n-1].Precip) > 0
	return stats, nil
}

// minOpt updates an optional running minimum. Absent candidates are
// skipped rather than treated as zero, so a provider gap never poisons
// the result with a false minimum.
func minOpt(acc, v *float64) *float64 {
	if v == nil {
		return acc
	}
	if acc == nil || *v < *acc {
		val := *v
		return &val
	}
	return acc
}

func maxOpt(acc, v *float64) *float64 {
	if v == nil {
		return acc
	}
	if acc == nil || *v > *acc {
		val := *v
		return &val
	}
	return acc
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
