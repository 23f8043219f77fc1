package astro

import (
	"errors"
	"math"
	"testing"
	"time"
)

var testObservers = map[string]Observer{
	"greenwich":  {LatDeg: 51.4779, LonDeg: -0.0015, Name: "Greenwich"},
	"sydney":     {LatDeg: -33.8688, LonDeg: 151.2093, Name: "Sydney"},
	"mauna_kea":  {LatDeg: 19.8207, LonDeg: -155.4681, Name: "Mauna Kea"},
	"high_north": {LatDeg: 89.0, LonDeg: 0.0, Name: "High North"},
}

// J2000 positions of a few Messier objects
var testObjects = map[string]struct {
	RAdeg  float64
	DecDeg float64
}{
	"m31": {RAdeg: 10.6847, DecDeg: 41.2687},
	"m42": {RAdeg: 83.8221, DecDeg: -5.3911},
	"m13": {RAdeg: 250.4235, DecDeg: 36.4613},
	"m7":  {RAdeg: 268.4630, DecDeg: -34.7928},
	"m81": {RAdeg: 148.8882, DecDeg: 69.0653},
}

func daySamples(t *testing.T, name string, start time.Time, step time.Duration) []RADecAtTime {
	t.Helper()
	obj := testObjects[name]
	samples, err := SamplesFor(obj.RAdeg, obj.DecDeg, start, 24*time.Hour, step)
	if err != nil {
		t.Fatalf("SamplesFor() error = %v", err)
	}
	return samples
}

func TestSamplesFor(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	samples, err := SamplesFor(10, 20, start, 2*time.Hour, 30*time.Minute)
	if err != nil {
		t.Fatalf("SamplesFor() error = %v", err)
	}
	if len(samples) != 5 {
		t.Fatalf("len = %d, want 5", len(samples))
	}
	if !samples[4].Time.Equal(start.Add(2 * time.Hour)) {
		t.Errorf("last sample at %v", samples[4].Time)
	}
	for _, s := range samples {
		if s.RAdeg != 10 || s.DecDeg != 20 {
			t.Errorf("sample coordinates changed: %+v", s)
		}
	}

	if _, err := SamplesFor(10, 20, start, 0, time.Minute); !errors.Is(err, ErrInvalidSampling) {
		t.Errorf("zero span error = %v", err)
	}
	if _, err := SamplesFor(10, 20, start, time.Hour, 0); !errors.Is(err, ErrInvalidSampling) {
		t.Errorf("zero step error = %v", err)
	}
}

func TestRiseSet_RisesAndSets(t *testing.T) {
	// M42 (dec -5°) rises and sets everywhere except near the poles
	tr := Transformer{}
	for _, site := range []string{"greenwich", "sydney", "mauna_kea"} {
		t.Run(site, func(t *testing.T) {
			obs := testObservers[site]
			samples := daySamples(t, "m42", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 10*time.Minute)

			window, err := tr.RiseSet(obs, samples)
			if err != nil {
				t.Fatalf("RiseSet() error = %v", err)
			}
			if !window.Valid {
				t.Error("RiseSet() returned invalid window")
			}
			if window.AlwaysVisible || window.NeverVisible {
				t.Errorf("M42 should rise and set from %s", site)
			}

			// Upper culmination altitude = 90 - |lat - dec|
			want := 90 - math.Abs(obs.LatDeg-testObjects["m42"].DecDeg)
			if math.Abs(window.MaxElevation-want) > 0.5 {
				t.Errorf("MaxElevation = %.2f°, want ~%.2f°", window.MaxElevation, want)
			}

			if !window.Rise.IsZero() && !window.Set.IsZero() && window.Rise.Before(window.Set) {
				if window.Transit.Before(window.Rise) || window.Transit.After(window.Set) {
					t.Errorf("Transit %v not between Rise %v and Set %v", window.Transit, window.Rise, window.Set)
				}
			}
		})
	}
}

func TestRiseSet_AlreadyUp(t *testing.T) {
	// M42 stands about 37° up from New York at the start of the window
	obs := Observer{LatDeg: 40.7, LonDeg: -74.0}
	start := time.Date(2024, 10, 1, 8, 0, 0, 0, time.UTC)
	samples, err := SamplesFor(83.82, -5.39, start, 24*time.Hour, 10*time.Minute)
	if err != nil {
		t.Fatalf("SamplesFor() error = %v", err)
	}

	tr := Transformer{}
	first, err := tr.Horizontal(83.82, -5.39, start, obs.LatDeg, obs.LonDeg)
	if err != nil || first.AltDeg <= 0 {
		t.Fatalf("M42 should be up at %v: alt=%v err=%v", start, first.AltDeg, err)
	}

	window, err := tr.RiseSet(obs, samples)
	if err != nil {
		t.Fatalf("RiseSet() error = %v", err)
	}
	if !window.Valid || window.Set.IsZero() || window.Rise.IsZero() {
		t.Fatalf("expected both crossings: %+v", window)
	}
	if !window.Set.Before(window.Rise) {
		t.Errorf("Set %v should come before the next Rise %v", window.Set, window.Rise)
	}
	if window.Set.Sub(start) > 12*time.Hour {
		t.Errorf("Set %v is not the same-day set", window.Set)
	}

	pos, err := tr.Horizontal(83.82, -5.39, window.Set, obs.LatDeg, obs.LonDeg)
	if err != nil {
		t.Fatalf("Horizontal() error = %v", err)
	}
	if math.Abs(pos.AltDeg) > 0.5 {
		t.Errorf("altitude at Set = %.2f°, want ~0", pos.AltDeg)
	}
}

func TestRiseSet_Circumpolar(t *testing.T) {
	samples := daySamples(t, "m81", time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), time.Hour)

	window, err := Transformer{}.RiseSet(testObservers["greenwich"], samples)
	if err != nil {
		t.Fatalf("RiseSet() error = %v", err)
	}
	if !window.Valid || !window.AlwaysVisible {
		t.Errorf("M81 should be circumpolar from Greenwich: %+v", window)
	}
}

func TestRiseSet_NeverVisible(t *testing.T) {
	samples := daySamples(t, "m7", time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), time.Hour)

	window, err := Transformer{}.RiseSet(testObservers["high_north"], samples)
	if err != nil {
		t.Fatalf("RiseSet() error = %v", err)
	}
	if !window.Valid || !window.NeverVisible {
		t.Errorf("M7 should never rise at 89°N: %+v", window)
	}
}

func TestRiseSet_AtPoleUsesAltitude(t *testing.T) {
	// Azimuth is undefined at the pole but altitude is fine for rise/set
	pole := Observer{LatDeg: 90}
	samples := daySamples(t, "m31", time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), time.Hour)

	window, err := Transformer{}.RiseSet(pole, samples)
	if err != nil {
		t.Fatalf("RiseSet() error = %v", err)
	}
	if !window.AlwaysVisible {
		t.Errorf("M31 should be circumpolar at the north pole: %+v", window)
	}
	if math.Abs(window.MaxElevation-testObjects["m31"].DecDeg) > 1e-6 {
		t.Errorf("MaxElevation = %v, want declination", window.MaxElevation)
	}
}

func TestRiseSet_InsufficientSamples(t *testing.T) {
	obs := testObservers["greenwich"]
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		samples []RADecAtTime
	}{
		{"empty samples", nil},
		{"one sample", []RADecAtTime{{Time: now}}},
		{"two samples", []RADecAtTime{{Time: now}, {Time: now.Add(time.Hour)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := (Transformer{}).RiseSet(obs, tt.samples); err != ErrInsufficientSamples {
				t.Errorf("RiseSet() error = %v, want ErrInsufficientSamples", err)
			}
		})
	}
}

func TestMaxElevation(t *testing.T) {
	obs := testObservers["mauna_kea"]
	samples := daySamples(t, "m13", time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), time.Hour)

	transit, maxEl, err := Transformer{}.MaxElevation(obs, samples)
	if err != nil {
		t.Fatalf("MaxElevation() error = %v", err)
	}

	want := 90 - math.Abs(obs.LatDeg-testObjects["m13"].DecDeg)
	if math.Abs(maxEl-want) > 2 {
		t.Errorf("MaxElevation() = %.2f°, want ~%.2f°", maxEl, want)
	}
	if transit.Before(samples[0].Time) || transit.After(samples[len(samples)-1].Time) {
		t.Errorf("transit %v outside sample range", transit)
	}

	if _, _, err := (Transformer{}).MaxElevation(obs, nil); err != ErrInsufficientSamples {
		t.Errorf("MaxElevation(nil) error = %v", err)
	}
}

func TestGetElevationTier(t *testing.T) {
	tests := []struct {
		elDeg float64
		want  ElevationTier
	}{
		{-10, ElevationNone},
		{0, ElevationNone},
		{5, ElevationLow},
		{14.9, ElevationLow},
		{15, ElevationMedium},
		{44.9, ElevationMedium},
		{45, ElevationHigh},
		{90, ElevationHigh},
	}

	for _, tt := range tests {
		if got := GetElevationTier(tt.elDeg); got != tt.want {
			t.Errorf("GetElevationTier(%.1f) = %v, want %v", tt.elDeg, got, tt.want)
		}
	}
}

func TestInterpolateCrossing(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	tests := []struct {
		name     string
		el1, el2 float64
		wantFrac float64
	}{
		{"midpoint", -10, 10, 0.5},
		{"quarter", -5, 15, 0.25},
		{"three quarters", -15, 5, 0.75},
		{"flat", 3, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := interpolateCrossing(t1, t2, tt.el1, tt.el2, 0)
			frac := float64(result.Sub(t1)) / float64(t2.Sub(t1))
			if math.Abs(frac-tt.wantFrac) > 0.01 {
				t.Errorf("fraction = %.3f, want %.3f", frac, tt.wantFrac)
			}
		})
	}
}
