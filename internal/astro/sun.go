package astro

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// SunPosition calculates the apparent equatorial coordinates of the Sun.
// Uses a simplified solar ephemeris based on the Astronomical Almanac.
// Accuracy: ~0.01 degrees for RA, ~0.001 degrees for Dec.
func SunPosition(t time.Time) (raDeg, decDeg float64) {
	jd := julian.TimeToJD(t.UTC())

	// Julian centuries from J2000.0
	T := (jd - 2451545.0) / 36525.0

	// Mean longitude of the Sun (degrees)
	L0 := Normalize360(280.46646 + 36000.76983*T + 0.0003032*T*T)

	// Mean anomaly of the Sun (degrees)
	M := Normalize360(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := degToRad(M)

	// Equation of center
	C := (1.914602 - 0.004817*T - 0.000014*T*T) * math.Sin(Mrad)
	C += (0.019993 - 0.000101*T) * math.Sin(2*Mrad)
	C += 0.000289 * math.Sin(3*Mrad)

	// Apparent longitude, corrected for aberration and nutation
	omega := 125.04 - 1934.136*T
	sunLonApp := L0 + C - 0.00569 - 0.00478*math.Sin(degToRad(omega))

	eps0 := 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
	eps := eps0 + 0.00256*math.Cos(degToRad(omega))

	sunLonRad := degToRad(sunLonApp)
	epsRad := degToRad(eps)

	ra := math.Atan2(math.Cos(epsRad)*math.Sin(sunLonRad), math.Cos(sunLonRad))
	raDeg = Normalize360(radToDeg(ra))
	decDeg = radToDeg(math.Asin(math.Sin(epsRad) * math.Sin(sunLonRad)))

	return raDeg, decDeg
}

// SunAltitude returns the Sun's altitude in degrees for an observer.
// Only the altitude is needed, so a degenerate azimuth is not an error here.
func (tr Transformer) SunAltitude(obs Observer, t time.Time) (float64, error) {
	ra, dec := SunPosition(t)
	pos, err := tr.Horizontal(ra, dec, t, obs.LatDeg, obs.LonDeg)
	if err != nil && !isDegenerate(err) {
		return 0, err
	}
	return pos.AltDeg, nil
}

// SunSeparation calculates the angular separation between the Sun and a target.
// Returns the separation angle in degrees.
func SunSeparation(targetRA, targetDec float64, t time.Time) float64 {
	sunRA, sunDec := SunPosition(t)
	return AngularSeparation(sunRA, sunDec, targetRA, targetDec)
}

// AngularSeparation calculates the angular separation between two points on the celestial sphere.
// All coordinates in degrees. Returns separation in degrees.
func AngularSeparation(ra1, dec1, ra2, dec2 float64) float64 {
	dRA := degToRad(ra2 - ra1)
	dDec := degToRad(dec2 - dec1)

	// Haversine
	a := math.Sin(dDec/2)*math.Sin(dDec/2) +
		CosDeg(dec1)*CosDeg(dec2)*math.Sin(dRA/2)*math.Sin(dRA/2)
	if a > 1 {
		a = 1
	}

	return radToDeg(2 * math.Asin(math.Sqrt(a)))
}

// SunSeparationTier categorizes sun separation for display.
type SunSeparationTier int

const (
	SunSepSafe    SunSeparationTier = iota // >= 20 degrees
	SunSepCaution                          // 10-20 degrees
	SunSepWarning                          // < 10 degrees
)

// GetSunSeparationTier returns the tier for a given separation angle.
func GetSunSeparationTier(sepDeg float64) SunSeparationTier {
	switch {
	case sepDeg < 10:
		return SunSepWarning
	case sepDeg < 20:
		return SunSepCaution
	default:
		return SunSepSafe
	}
}

// TwilightPhase classifies sky darkness by solar altitude.
type TwilightPhase int

const (
	PhaseDay TwilightPhase = iota
	PhaseCivil
	PhaseNautical
	PhaseAstronomical
	PhaseNight
)

func (p TwilightPhase) String() string {
	switch p {
	case PhaseDay:
		return "day"
	case PhaseCivil:
		return "civil twilight"
	case PhaseNautical:
		return "nautical twilight"
	case PhaseAstronomical:
		return "astronomical twilight"
	case PhaseNight:
		return "night"
	default:
		return "unknown"
	}
}

// Twilight returns the phase for a solar altitude in degrees.
func Twilight(sunAltDeg float64) TwilightPhase {
	switch {
	case sunAltDeg > -0.833:
		return PhaseDay
	case sunAltDeg > -6:
		return PhaseCivil
	case sunAltDeg > -12:
		return PhaseNautical
	case sunAltDeg > -18:
		return PhaseAstronomical
	default:
		return PhaseNight
	}
}
