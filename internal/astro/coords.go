package astro

import (
	"math"
	"time"
)

// DegenerateEpsilon is the threshold on cos(alt)*cos(lat) below which
// azimuth is treated as undefined. It is wide enough to catch an object placed
// exactly at zenith whose sin(alt) rounds a few ulps short of 1.
const DegenerateEpsilon = 1e-7

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

// HorizontalPosition is an apparent position in the observer's local frame.
type HorizontalPosition struct {
	AltDeg float64 // [-90, 90]
	AzDeg  float64 // [0, 360), measured from north through east
}

// Transformer converts equatorial to horizontal coordinates using Clock for
// sidereal time. The zero value uses DefaultClock.
type Transformer struct {
	Clock Clock
}

// NewTransformer returns a Transformer backed by c.
func NewTransformer(c Clock) Transformer {
	return Transformer{Clock: c}
}

// EquatorialToHorizontal converts right ascension and declination to altitude
// and azimuth for an observer at (latDeg, lonDeg) at instant t, using the
// linear sidereal clock anchored at J2000.
//
// Azimuth is undefined when the observer stands on a pole or the object is at
// zenith/nadir; a *DegenerateGeometryError is returned then, with the altitude.
func EquatorialToHorizontal(raDeg, decDeg float64, t time.Time, latDeg, lonDeg float64) (HorizontalPosition, error) {
	return Transformer{}.Horizontal(raDeg, decDeg, t, latDeg, lonDeg)
}

// Horizontal is EquatorialToHorizontal with the transformer's clock.
func (tr Transformer) Horizontal(raDeg, decDeg float64, t time.Time, latDeg, lonDeg float64) (HorizontalPosition, error) {
	clock := tr.Clock
	if clock == nil {
		clock = DefaultClock()
	}

	ha := HourAngle(clock.LocalSiderealTime(t, lonDeg), raDeg)

	sinDec, cosDec := SinDeg(decDeg), CosDeg(decDeg)
	sinLat, cosLat := SinDeg(latDeg), CosDeg(latDeg)

	alt, err := AsinDeg(sinDec*sinLat + cosDec*cosLat*CosDeg(ha))
	if err != nil {
		return HorizontalPosition{}, err
	}

	denom := CosDeg(alt) * cosLat
	if math.Abs(denom) < DegenerateEpsilon {
		return HorizontalPosition{AltDeg: alt}, degenerate(alt, latDeg, cosLat)
	}

	// cos(az)·cos(alt) and sin(az)·cos(alt) come straight from the inputs.
	// Dividing by their norm rather than by cos(alt) keeps the acos argument
	// within rounding of ±1 near the zenith, where asin has lost precision.
	north := sinDec*cosLat - cosDec*sinLat*CosDeg(ha)
	east := cosDec * SinDeg(ha)
	norm := math.Hypot(north, east)
	if norm == 0 {
		return HorizontalPosition{AltDeg: alt}, degenerate(alt, latDeg, cosLat)
	}

	a, err := AcosDeg(north / norm)
	if err != nil {
		return HorizontalPosition{AltDeg: alt}, err
	}

	// Object west of the meridian (sin(ha) >= 0) has azimuth beyond 180°
	az := a
	if SinDeg(ha) >= 0 {
		az = 360 - a
	}

	return HorizontalPosition{AltDeg: alt, AzDeg: Normalize360(az)}, nil
}

func degenerate(alt, lat, cosLat float64) *DegenerateGeometryError {
	reason := ReasonPole
	if math.Abs(cosLat) >= DegenerateEpsilon {
		reason = ReasonZenith
		if alt < 0 {
			reason = ReasonNadir
		}
	}
	return &DegenerateGeometryError{Reason: reason, AltDeg: alt, LatDeg: lat}
}
