package catalog

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/litescript/ls-messier/internal/astro"
)

// Position is an object's apparent place for one observer at one instant.
type Position struct {
	Object    Object
	AltDeg    float64
	AzDeg     float64
	AzDefined bool    // false when the geometry leaves azimuth undefined
	SunSepDeg float64 // angular distance from the Sun
	Err       error   // non-nil when AltDeg is not usable either
}

// Visible reports whether the object is above minAlt degrees.
func (p Position) Visible(minAlt float64) bool {
	return p.Err == nil && p.AltDeg > minAlt
}

// Tier is the elevation bucket used for display.
func (p Position) Tier() astro.ElevationTier {
	return astro.GetElevationTier(p.AltDeg)
}

// Positions computes horizontal coordinates for every object. Work is spread
// over goroutines; results keep the order of objs.
func Positions(tr astro.Transformer, objs []Object, obs astro.Observer, t time.Time) []Position {
	out := make([]Position, len(objs))

	var wg sync.WaitGroup
	for i := range objs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i] = position(tr, objs[i], obs, t)
		}(i)
	}
	wg.Wait()

	return out
}

// PositionOf computes a single object's position.
func PositionOf(tr astro.Transformer, obj Object, obs astro.Observer, t time.Time) Position {
	return position(tr, obj, obs, t)
}

func position(tr astro.Transformer, obj Object, obs astro.Observer, t time.Time) Position {
	p := Position{
		Object:    obj,
		SunSepDeg: astro.SunSeparation(obj.RAdeg, obj.DecDeg, t),
	}

	hp, err := tr.Horizontal(obj.RAdeg, obj.DecDeg, t, obs.LatDeg, obs.LonDeg)
	switch {
	case err == nil:
		p.AltDeg, p.AzDeg, p.AzDefined = hp.AltDeg, hp.AzDeg, true
	case errors.Is(err, astro.ErrDegenerateGeometry):
		p.AltDeg = hp.AltDeg
	default:
		p.AltDeg = hp.AltDeg
		p.Err = err
	}
	return p
}

// SortOrder selects how position lists are ordered.
type SortOrder string

const (
	SortByNumber   SortOrder = "number"
	SortByAltitude SortOrder = "altitude"
)

// Sort orders positions in place. Altitude sorts highest first.
func Sort(ps []Position, order SortOrder) {
	switch order {
	case SortByAltitude:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].AltDeg > ps[j].AltDeg
		})
	default:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].Object.Number < ps[j].Object.Number
		})
	}
}

// FilterVisible returns the positions above minAlt.
func FilterVisible(ps []Position, minAlt float64) []Position {
	var out []Position
	for _, p := range ps {
		if p.Visible(minAlt) {
			out = append(out, p)
		}
	}
	return out
}
