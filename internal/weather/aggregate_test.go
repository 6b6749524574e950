package weather

import (
	"errors"
	"math"
	"testing"
	"time"
)

func makeWindow(n int) []HourlySample {
	base := time.Date(2024, 6, 9, 12, 0, 0, 0, time.UTC)
	samples := make([]HourlySample, 0, n)
	for i := 0; i < n; i++ {
		samples = append(samples, HourlySample{
			Time:       base.Add(time.Duration(i) * time.Hour),
			Temp:       fptr(50),
			Humidity:   fptr(50),
			Precip:     fptr(0),
			Wind:       fptr(5),
			CloudCover: 0.5,
			Icon:       IconClearDay,
		})
	}
	return samples
}

func TestReducePeriodSampleCountGuard(t *testing.T) {
	for _, n := range []int{0, 1, 22, 25, 48} {
		if _, err := ReducePeriod(makeWindow(n)); !errors.Is(err, ErrInsufficientData) {
			t.Errorf("n=%d: got %v, want ErrInsufficientData", n, err)
		}
	}
	for _, n := range []int{23, 24} {
		if _, err := ReducePeriod(makeWindow(n)); err != nil {
			t.Errorf("n=%d: unexpected error: %v", n, err)
		}
	}
}

func TestReducePeriodMeans(t *testing.T) {
	samples := makeWindow(24)
	var sum float64
	for i := range samples {
		v := 40 + float64(i) // 40..63°F
		samples[i].Temp = fptr(v)
		sum += v
	}

	stats, err := ReducePeriod(samples)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := sum / 24
	if math.Abs(stats.MeanTemp-want) > 1e-9 {
		t.Errorf("mean temp: got %v, want %v", stats.MeanTemp, want)
	}
	if stats.MeanHumidity != 50 {
		t.Errorf("mean humidity: got %v, want 50", stats.MeanHumidity)
	}
	if stats.TempMin == nil || *stats.TempMin != 40 {
		t.Errorf("temp min: got %v, want 40", stats.TempMin)
	}
	if stats.TempMax == nil || *stats.TempMax != 63 {
		t.Errorf("temp max: got %v, want 63", stats.TempMax)
	}
}

func TestReducePeriodRainingFlag(t *testing.T) {
	samples := makeWindow(24)
	samples[3].Precip = fptr(0.2)

	stats, err := ReducePeriod(samples)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Raining {
		t.Error("raining: rain three hours ago is not raining now")
	}

	samples[23].Precip = fptr(0.04)
	stats, err = ReducePeriod(samples)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stats.Raining {
		t.Error("raining: precipitation in the final sample should set the flag")
	}
	if math.Abs(stats.Precip-0.24) > 1e-9 {
		t.Errorf("precip total: got %v, want 0.24", stats.Precip)
	}
}

func TestReducePeriodNullTolerantMinMax(t *testing.T) {
	// Temperature undefined in every sample: min/max absent, not zero.
	samples := makeWindow(24)
	for i := range samples {
		samples[i].Temp = nil
	}

	stats, err := ReducePeriod(samples)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TempMin != nil || stats.TempMax != nil {
		t.Errorf("temp min/max: got %v/%v, want absent", stats.TempMin, stats.TempMax)
	}

	// A single gap is skipped, not coerced to a false minimum of zero.
	samples = makeWindow(24)
	samples[0].Humidity = nil
	for i := 1; i < len(samples); i++ {
		samples[i].Humidity = fptr(60 + float64(i))
	}

	stats, err = ReducePeriod(samples)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.HumidityMin == nil || *stats.HumidityMin != 61 {
		t.Errorf("humidity min: got %v, want 61", stats.HumidityMin)
	}
	if stats.HumidityMax == nil || *stats.HumidityMax != 83 {
		t.Errorf("humidity max: got %v, want 83", stats.HumidityMax)
	}
}
