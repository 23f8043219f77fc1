package astro

import (
	"fmt"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
)

// J2000 is the default reference epoch, 2000-01-01T12:00:00 UTC.
var J2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// Coefficients of the linear sidereal time approximation.
const (
	siderealAtEpoch = 100.46   // degrees
	siderealPerDay  = 0.985647 // degrees per day beyond the solar rate
	degreesPerHour  = 15.0
	secondsPerDay   = 86400.0
)

// Clock yields local sidereal time in degrees [0, 360) for a UTC instant and
// an east-positive longitude.
type Clock interface {
	LocalSiderealTime(t time.Time, lonDeg float64) float64
}

// LinearClock is the linear approximation of Earth's rotation against the stars.
// It ignores precession and nutation; the error grows slowly with distance
// from Epoch. A zero Epoch means J2000.
type LinearClock struct {
	Epoch time.Time
}

// DefaultClock returns a LinearClock anchored at J2000.
func DefaultClock() LinearClock {
	return LinearClock{Epoch: J2000}
}

// LocalSiderealTime implements Clock.
func (c LinearClock) LocalSiderealTime(t time.Time, lonDeg float64) float64 {
	epoch := c.Epoch
	if epoch.IsZero() {
		epoch = J2000
	}
	return LocalSiderealTime(t, lonDeg, epoch)
}

// LocalSiderealTime calculates the Local Sidereal Time in degrees [0, 360)
// for a UTC time, an east-positive longitude and a reference epoch:
//
//	LST = 100.46 + 0.985647*days + lon + 15*hours  (mod 360)
//
// where days is the fractional day count since epoch (negative before it)
// and hours is the UTC time of day.
func LocalSiderealTime(t time.Time, lonDeg float64, epoch time.Time) float64 {
	t = t.UTC()
	days := daysSince(t, epoch)
	hours := SexagesimalToDecimal(t.Hour(), t.Minute(),
		float64(t.Second())+float64(t.Nanosecond())/1e9)

	return Normalize360(siderealAtEpoch + siderealPerDay*days + lonDeg + degreesPerHour*hours)
}

// daysSince returns fractional days from epoch to t. It goes through Unix
// seconds because time.Duration saturates at about ±292 years.
func daysSince(t, epoch time.Time) float64 {
	secs := float64(t.Unix() - epoch.Unix())
	nanos := float64(t.Nanosecond() - epoch.Nanosecond())
	return (secs + nanos/1e9) / secondsPerDay
}

// MeanClock computes IAU mean sidereal time from the Julian date.
type MeanClock struct{}

// LocalSiderealTime implements Clock.
func (MeanClock) LocalSiderealTime(t time.Time, lonDeg float64) float64 {
	gmst := sidereal.Mean(julian.TimeToJD(t.UTC()))
	return Normalize360(radToDeg(gmst.Rad()) + lonDeg)
}

// Clock model names accepted by ParseClockModel.
const (
	ClockLinear = "linear"
	ClockIAU    = "iau"
)

// ParseClockModel returns the Clock for a model name. The epoch only applies
// to the linear model; a zero epoch means J2000.
func ParseClockModel(name string, epoch time.Time) (Clock, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ClockLinear:
		return LinearClock{Epoch: epoch}, nil
	case ClockIAU, "mean":
		return MeanClock{}, nil
	default:
		return nil, fmt.Errorf("unknown sidereal model %q", name)
	}
}

// HourAngle returns LST - RA normalized to [0, 360).
func HourAngle(lstDeg, raDeg float64) float64 {
	return Normalize360(lstDeg - raDeg)
}

// SiderealDay is one rotation of Earth relative to the stars.
const SiderealDay = 23*time.Hour + 56*time.Minute + 4*time.Second
