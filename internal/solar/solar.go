// Package solar approximates global solar radiation from cloud cover.
//
// Clear-sky radiation is estimated from the solar elevation angle as
// G = 990*sin(el) - 30 W/m², attenuated per the Kasten-Czeplak relation
// G_c = G * (1 - 0.75*c^3.4) where c is the cloud cover fraction.
package solar

import (
	"math"
	"time"

	"irriweather/internal/weather"
)

const degToRad = math.Pi / 180

// ApproximateRadiation implements weather.RadiationEstimator. It returns
// the period's mean daily solar radiation in kWh/m²/day.
func ApproximateRadiation(intervals []weather.CloudCoverInterval, coords weather.Coordinates) float64 {
	if len(intervals) == 0 {
		return 0
	}

	var wattHours float64
	for _, iv := range intervals {
		mid := iv.Start.Add(iv.End.Sub(iv.Start) / 2)
		el := elevation(mid, coords.Lat, coords.Lon)
		if el <= 0 {
			continue
		}

		clearSky := 990*math.Sin(el) - 30
		if clearSky <= 0 {
			continue
		}

		cloudFactor := 1 - 0.75*math.Pow(iv.Fraction, 3.4)
		wattHours += clearSky * cloudFactor * iv.End.Sub(iv.Start).Hours()
	}

	spanDays := intervals[len(intervals)-1].End.Sub(intervals[0].Start).Hours() / 24
	if spanDays < 1 {
		spanDays = 1
	}
	return wattHours / 1000 / spanDays
}

// elevation returns the solar elevation angle in radians at t, using the
// day-of-year declination and the longitude-corrected hour angle.
func elevation(t time.Time, lat, lon float64) float64 {
	utc := t.UTC()
	doy := float64(utc.YearDay())
	decl := -23.44 * degToRad * math.Cos(2*math.Pi/365*(doy+10))

	solarHour := float64(utc.Hour()) + float64(utc.Minute())/60 + lon/15
	hourAngle := (solarHour - 12) * 15 * degToRad

	latRad := lat * degToRad
	sinEl := math.Sin(latRad)*math.Sin(decl) + math.Cos(latRad)*math.Cos(decl)*math.Cos(hourAngle)
	return math.Asin(sinEl)
}
