package astro

import (
	"errors"
	"math"
	"time"
)

// RADecAtTime represents an RA/Dec position at a specific time.
type RADecAtTime struct {
	Time   time.Time
	RAdeg  float64
	DecDeg float64
}

// VisibilityWindow represents a rise-transit-set cycle for an object.
type VisibilityWindow struct {
	Rise          time.Time // Time object rises above horizon
	Transit       time.Time // Time object crosses meridian (highest point)
	Set           time.Time // Time object sets below horizon
	MaxElevation  float64   // Peak elevation in degrees
	Valid         bool      // Whether a valid window was found
	AlwaysVisible bool      // Object never sets (circumpolar)
	NeverVisible  bool      // Object never rises
}

// MinElevation is the threshold for considering an object "visible".
const MinElevation = 0.0

// Errors for visibility calculations.
var (
	ErrInsufficientSamples = errors.New("insufficient samples for visibility calculation")
	ErrInvalidSampling     = errors.New("sampling span and step must be positive")
)

// SamplesFor returns positions of a fixed RA/Dec object every step over span,
// starting at start. Catalog objects do not move, so every sample carries the
// same coordinates.
func SamplesFor(raDeg, decDeg float64, start time.Time, span, step time.Duration) ([]RADecAtTime, error) {
	if span <= 0 || step <= 0 {
		return nil, ErrInvalidSampling
	}
	n := int(span/step) + 1
	samples := make([]RADecAtTime, 0, n)
	for i := 0; i < n; i++ {
		samples = append(samples, RADecAtTime{
			Time:   start.Add(time.Duration(i) * step),
			RAdeg:  raDeg,
			DecDeg: decDeg,
		})
	}
	return samples, nil
}

// elevation returns altitude only; undefined azimuth does not matter here.
func (tr Transformer) elevation(obs Observer, s RADecAtTime) (float64, error) {
	pos, err := tr.Horizontal(s.RAdeg, s.DecDeg, s.Time, obs.LatDeg, obs.LonDeg)
	if err != nil && !isDegenerate(err) {
		return 0, err
	}
	return pos.AltDeg, nil
}

// RiseSet computes rise, transit, and set times for an object given RA/Dec samples.
// Rise and Set are the first crossings after the first sample, so Set comes
// before Rise when the object starts above the horizon.
// The samples must be in chronological order and span a full cycle
// (24 hours for catalog objects).
//
// Horizon crossings are found by linear interpolation between samples.
func (tr Transformer) RiseSet(obs Observer, samples []RADecAtTime) (VisibilityWindow, error) {
	if len(samples) < 3 {
		return VisibilityWindow{}, ErrInsufficientSamples
	}

	type elSample struct {
		t     time.Time
		elDeg float64
	}
	elSamples := make([]elSample, len(samples))

	minEl := 90.0
	maxEl := -90.0
	maxElIdx := 0

	for i, s := range samples {
		el, err := tr.elevation(obs, s)
		if err != nil {
			return VisibilityWindow{}, err
		}
		elSamples[i] = elSample{t: s.Time, elDeg: el}

		if el < minEl {
			minEl = el
		}
		if el > maxEl {
			maxEl = el
			maxElIdx = i
		}
	}

	if minEl > MinElevation {
		return VisibilityWindow{
			Transit:       elSamples[maxElIdx].t,
			MaxElevation:  maxEl,
			Valid:         true,
			AlwaysVisible: true,
		}, nil
	}
	if maxEl < MinElevation {
		return VisibilityWindow{
			MaxElevation: maxEl,
			Valid:        true,
			NeverVisible: true,
		}, nil
	}

	// Next rise and next set are searched independently: an object already up
	// at the first sample sets before it rises again.
	var riseTime, setTime time.Time
	riseFound, setFound := false, false
	for i := 1; i < len(elSamples) && !(riseFound && setFound); i++ {
		prev, curr := elSamples[i-1], elSamples[i]
		switch {
		case !riseFound && prev.elDeg <= MinElevation && curr.elDeg > MinElevation:
			riseTime = interpolateCrossing(prev.t, curr.t, prev.elDeg, curr.elDeg, MinElevation)
			riseFound = true
		case !setFound && prev.elDeg > MinElevation && curr.elDeg <= MinElevation:
			setTime = interpolateCrossing(prev.t, curr.t, prev.elDeg, curr.elDeg, MinElevation)
			setFound = true
		}
	}

	transitTime, transitEl, err := tr.MaxElevation(obs, samples)
	if err != nil {
		return VisibilityWindow{}, err
	}

	return VisibilityWindow{
		Rise:         riseTime,
		Transit:      transitTime,
		Set:          setTime,
		MaxElevation: transitEl,
		Valid:        riseFound || setFound || elSamples[0].elDeg > MinElevation,
	}, nil
}

// MaxElevation finds the time of maximum elevation for an object.
// Returns the transit time and elevation in degrees.
func (tr Transformer) MaxElevation(obs Observer, samples []RADecAtTime) (time.Time, float64, error) {
	if len(samples) == 0 {
		return time.Time{}, 0, ErrInsufficientSamples
	}

	els := make([]float64, len(samples))
	maxIdx := 0
	for i, s := range samples {
		el, err := tr.elevation(obs, s)
		if err != nil {
			return time.Time{}, 0, err
		}
		els[i] = el
		if el > els[maxIdx] {
			maxIdx = i
		}
	}

	if maxIdx == 0 || maxIdx == len(samples)-1 {
		return samples[maxIdx].Time, els[maxIdx], nil
	}

	// Parabola through the three samples around the peak, t = -1, 0, +1
	y0, y1, y2 := els[maxIdx-1], els[maxIdx], els[maxIdx+1]
	c := y1
	a := (y0+y2)/2 - c
	b := (y2 - y0) / 2
	if a >= 0 {
		return samples[maxIdx].Time, y1, nil
	}

	tMax := math.Max(-1, math.Min(1, -b/(2*a)))
	dt := samples[maxIdx].Time.Sub(samples[maxIdx-1].Time)
	refined := samples[maxIdx].Time.Add(time.Duration(float64(dt) * tMax))

	return refined, a*tMax*tMax + b*tMax + c, nil
}

// interpolateCrossing finds the time when elevation crosses a threshold.
func interpolateCrossing(t1, t2 time.Time, el1, el2, threshold float64) time.Time {
	if math.Abs(el2-el1) < 0.0001 {
		return t1
	}

	fraction := (threshold - el1) / (el2 - el1)
	fraction = math.Max(0, math.Min(1, fraction))

	dt := t2.Sub(t1)
	return t1.Add(time.Duration(float64(dt) * fraction))
}

// ElevationTier categorizes elevation for UI display.
type ElevationTier int

const (
	ElevationNone   ElevationTier = iota // Below horizon
	ElevationLow                         // 0-15 degrees
	ElevationMedium                      // 15-45 degrees
	ElevationHigh                        // 45+ degrees
)

// GetElevationTier returns the tier for a given elevation.
func GetElevationTier(elDeg float64) ElevationTier {
	switch {
	case elDeg <= 0:
		return ElevationNone
	case elDeg < 15:
		return ElevationLow
	case elDeg < 45:
		return ElevationMedium
	default:
		return ElevationHigh
	}
}
