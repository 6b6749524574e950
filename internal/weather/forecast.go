package weather

import (
	"fmt"
	"math"
	"time"
)

const samplesPerDay = 24

// dateSampleIndex picks the bucket's representative instant for deriving
// its date: a mid-bucket sample is robust to off-by-one boundary samples.
const dateSampleIndex = 12

// Resample partitions an hourly forecast sequence into contiguous
// 24-sample day buckets and reduces each one. The final bucket may run
// short when the provider trims the last hour of the window; buckets too
// short to carry the mid-bucket date sample are dropped entirely. now pins
// the current-conditions snapshot to the most recently elapsed hour of the
// first bucket.
func Resample(samples []HourlySample, now time.Time) (CurrentConditions, []DailySummary, error) {
	if len(samples) == 0 {
		return CurrentConditions{}, nil, fmt.Errorf("%w: empty hourly forecast sequence", ErrInsufficientData)
	}

	var (
		current CurrentConditions
		days    []DailySummary
	)

	for start := 0; start < len(samples); start += samplesPerDay {
		end := start + samplesPerDay
		if end > len(samples) {
			end = len(samples)
		}
		bucket := samples[start:end]
		if len(bucket) <= dateSampleIndex {
			break
		}

		day := reduceDay(bucket)
		days = append(days, day)

		if start == 0 {
			current = snapshotCurrent(bucket, now, day)
		}
	}

	if len(days) == 0 {
		return CurrentConditions{}, nil, fmt.Errorf("%w: forecast sequence shorter than one day bucket", ErrInsufficientData)
	}
	return current, days, nil
}

func reduceDay(bucket []HourlySample) DailySummary {
	first := bucket[0]
	tempMin := first.Temp
	tempMax := first.Temp
	precip := orZero(first.Precip)
	icon := first.Icon

	for _, s := range bucket[1:] {
		tempMin = minOpt(tempMin, s.Temp)
		tempMax = maxOpt(tempMax, s.Temp)
		precip += orZero(s.Precip)

		// Sticky icon rule: the first transition away from clear-day is
		// kept; any further differing icon collapses the day back to
		// clear-day. This asymmetry is a published contract of the
		// day-level summary and is preserved exactly.
		switch {
		case icon == IconClearDay:
			icon = s.Icon
		case s.Icon != icon:
			icon = IconClearDay
		}
	}

	return DailySummary{
		Date:    startOfDay(bucket[dateSampleIndex].Time),
		TempMin: floorOrZero(tempMin),
		TempMax: floorOrZero(tempMax),
		Precip:  precip,
		Icon:    icon,
	}
}

// snapshotCurrent tracks the latest elapsed hour of the first bucket:
// every sample at or before now overwrites the running conditions, so the
// snapshot never reflects a forecast hour.
func snapshotCurrent(bucket []HourlySample, now time.Time, day DailySummary) CurrentConditions {
	latest := bucket[0]
	for _, s := range bucket[1:] {
		if s.Time.After(now) {
			continue
		}
		latest = s
	}

	return CurrentConditions{
		Temp:     floorOrZero(latest.Temp),
		Humidity: floorOrZero(latest.Humidity),
		Wind:     floorOrZero(latest.Wind),
		Icon:     latest.Icon,
		TempMin:  day.TempMin,
		TempMax:  day.TempMax,
		Precip:   day.Precip,
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func floorOrZero(v *float64) int {
	if v == nil {
		return 0
	}
	return int(math.Floor(*v))
}
