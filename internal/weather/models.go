package weather

import (
	"time"
)

// Icon is a normalized sky-condition code shared with the irrigation UI.
type Icon string

const (
	IconClearDay          Icon = "clear-day"
	IconClearNight        Icon = "clear-night"
	IconPartlyCloudyDay   Icon = "partly-cloudy-day"
	IconPartlyCloudyNight Icon = "partly-cloudy-night"
	IconCloudy            Icon = "cloudy"
	IconFog               Icon = "fog"
	IconWind              Icon = "wind"
	IconHail              Icon = "hail"
	IconSleet             Icon = "sleet"
	IconSnow              Icon = "snow"
	IconRain              Icon = "rain"
	IconThunderstorm      Icon = "thunderstorm"
)

// Coordinates identifies the geographic point a request is about.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RawHourlyRecord is one hourly observation as delivered by the provider.
// Optional fields are pointers; decoding leaves absent values nil. Either
// HumidityPct or DewPointC must be present for the humidity to survive
// normalization.
type RawHourlyRecord struct {
	Time          time.Time
	TemperatureC  *float64
	HumidityPct   *float64
	DewPointC     *float64
	PrecipMm      *float64
	WindKmh       *float64
	CloudCoverPct *float64
	ConditionCode string
}

// HourlySample is a unit-normalized, provider-independent hourly record.
// Immutable once produced; one per raw record, same ordering.
type HourlySample struct {
	Time       time.Time
	Temp       *float64 // °F
	Humidity   *float64 // percent, 0-100
	Precip     *float64 // inches
	Wind       *float64 // mph
	CloudCover float64  // fraction, 0.0-1.0
	Icon       Icon
}

// DailySummary is the per-day reduction of one 24-sample forecast bucket.
type DailySummary struct {
	Date    time.Time `json:"date"`
	TempMin int       `json:"tempMin"`
	TempMax int       `json:"tempMax"`
	Precip  float64   `json:"precip"`
	Icon    Icon      `json:"icon"`
}

// CurrentConditions is a snapshot of the most recently elapsed hour within
// today, with the day-level reductions of the first forecast bucket.
type CurrentConditions struct {
	Temp     int     `json:"temp"`
	Humidity int     `json:"humidity"`
	Wind     int     `json:"wind"`
	Icon     Icon    `json:"icon"`
	TempMin  int     `json:"tempMin"`
	TempMax  int     `json:"tempMax"`
	Precip   float64 `json:"precip"`
}

// WeatherSummary bundles current conditions with the multi-day forecast.
type WeatherSummary struct {
	Provider string            `json:"provider"`
	Current  CurrentConditions `json:"current"`
	Forecast []DailySummary    `json:"forecast"`
}

// WateringSummary holds the trailing-day means and totals consumed by the
// water-balance (Zimmerman) adjustment.
type WateringSummary struct {
	Provider     string  `json:"provider"`
	MeanTemp     float64 `json:"meanTemp"`
	MeanHumidity float64 `json:"meanHumidity"`
	Precip       float64 `json:"precip"`
	Raining      bool    `json:"raining"`
}

// CloudCoverInterval is one hour of cloud cover, fed to the solar
// radiation estimator.
type CloudCoverInterval struct {
	Start    time.Time
	End      time.Time
	Fraction float64 // 0.0-1.0
}

// EToInputs are the reductions feeding a reference-evapotranspiration
// estimate. Min/max fields are nil when the underlying value was absent in
// every sample of the window.
type EToInputs struct {
	Provider        string   `json:"provider"`
	PeriodStartUnix int64    `json:"periodStart"`
	TempMin         *float64 `json:"tempMin"`
	TempMax         *float64 `json:"tempMax"`
	HumidityMin     *float64 `json:"humidityMin"`
	HumidityMax     *float64 `json:"humidityMax"`
	MeanWind        float64  `json:"meanWind"`
	Precip          float64  `json:"precip"`
	SolarRadiation  float64  `json:"solarRadiation"`
}
