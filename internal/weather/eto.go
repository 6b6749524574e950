package weather

import "time"

// RadiationEstimator approximates solar radiation from per-hour cloud
// cover intervals at the given coordinates. The formula is opaque to this
// package; internal/solar ships the default.
type RadiationEstimator func(intervals []CloudCoverInterval, coords Coordinates) float64

// BuildEToInputs reduces a trailing 24-hour window into the inputs of a
// reference-evapotranspiration estimate. Windowing and count validation
// match ReducePeriod.
func BuildEToInputs(samples []HourlySample, coords Coordinates, estimate RadiationEstimator) (*EToInputs, error) {
	stats, err := ReducePeriod(samples)
	if err != nil {
		return nil, err
	}

	intervals := make([]CloudCoverInterval, 0, len(samples))
	for _, s := range samples {
		intervals = append(intervals, CloudCoverInterval{
			Start:    s.Time,
			End:      s.Time.Add(time.Hour),
			Fraction: s.CloudCover,
		})
	}

	return &EToInputs{
		PeriodStartUnix: samples[0].Time.Unix(),
		TempMin:         stats.TempMin,
		TempMax:         stats.TempMax,
		HumidityMin:     stats.HumidityMin,
		HumidityMax:     stats.HumidityMax,
		MeanWind:        stats.MeanWind,
		Precip:          stats.Precip,
		SolarRadiation:  estimate(intervals, coords),
	}, nil
}
