// Package catalog holds the Messier object table and per-observer sky positions.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/litescript/ls-messier/internal/astro"
)

// ObjectType is the broad classification of a Messier object.
type ObjectType string

const (
	GlobularCluster  ObjectType = "Globular cluster"
	OpenCluster      ObjectType = "Open cluster"
	Galaxy           ObjectType = "Galaxy"
	Nebula           ObjectType = "Nebula"
	PlanetaryNebula  ObjectType = "Planetary nebula"
	SupernovaRemnant ObjectType = "Supernova remnant"
	StarCloud        ObjectType = "Star cloud"
	DoubleStar       ObjectType = "Double star"
	Asterism         ObjectType = "Asterism"
	ReflectionNebula ObjectType = "Reflection nebula"
	ClusterAndNebula ObjectType = "Cluster with nebula"
)

// Object is one catalog entry. Coordinates are J2000.
type Object struct {
	Number        int
	Name          string // common name, may be empty
	Type          ObjectType
	Constellation string
	Magnitude     float64 // apparent visual magnitude
	RAdeg         float64
	DecDeg        float64
}

// ID returns the catalog designation, e.g. "M31".
func (o Object) ID() string {
	return "M" + strconv.Itoa(o.Number)
}

// Title is the designation with the common name when there is one.
func (o Object) Title() string {
	if o.Name == "" {
		return o.ID()
	}
	return o.ID() + " - " + o.Name
}

// MagnitudeClass buckets apparent magnitude for display.
type MagnitudeClass int

const (
	MagnitudeUnknown MagnitudeClass = iota
	MagnitudeLow                    // [0, 3)
	MagnitudeMidLow                 // [3, 6)
	MagnitudeMidHigh                // [6, 9)
	MagnitudeHigh                   // [9, 12)
)

func (c MagnitudeClass) String() string {
	switch c {
	case MagnitudeLow:
		return "low_mag"
	case MagnitudeMidLow:
		return "midlow_mag"
	case MagnitudeMidHigh:
		return "midhigh_mag"
	case MagnitudeHigh:
		return "high_mag"
	default:
		return "unknown_mag"
	}
}

// ClassifyMagnitude returns the display bucket for a magnitude.
func ClassifyMagnitude(mag float64) MagnitudeClass {
	switch {
	case mag >= 0 && mag < 3:
		return MagnitudeLow
	case mag >= 3 && mag < 6:
		return MagnitudeMidLow
	case mag >= 6 && mag < 9:
		return MagnitudeMidHigh
	case mag >= 9 && mag < 12:
		return MagnitudeHigh
	default:
		return MagnitudeUnknown
	}
}

// All returns a copy of every catalog object in catalog order.
func All() []Object {
	out := make([]Object, len(messier))
	copy(out, messier)
	return out
}

// Lookup finds an object by designation. "M31", "m31" and "31" all match.
func Lookup(id string) (Object, error) {
	s := strings.TrimSpace(strings.ToUpper(id))
	s = strings.TrimPrefix(s, "M")
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Object{}, fmt.Errorf("invalid Messier designation %q", id)
	}
	if n < 1 || n > len(messier) {
		return Object{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return messier[n-1], nil
}

// ra converts right ascension in hours/minutes/seconds to degrees.
func ra(h, m int, s float64) float64 {
	return 15 * astro.SexagesimalToDecimal(h, m, s)
}

// dec converts declination to degrees. The strict form keeps the sign of
// southern objects within a degree of the equator, written as (0, -m, s).
func dec(d, m int, s float64) float64 {
	return astro.SexagesimalToDecimalStrict(d, m, s)
}
