package catalog

import (
	"errors"
	"time"

	"github.com/litescript/ls-messier/internal/astro"
)

// Star is a bright guide star drawn behind the Messier objects in the sky
// view. Coordinates are J2000 degrees.
type Star struct {
	Name   string
	RAdeg  float64
	DecDeg float64
	Mag    float64
}

// GuideStars returns the bright star table in right ascension order.
func GuideStars() []Star {
	out := make([]Star, len(guideStars))
	copy(out, guideStars)
	return out
}

// StarPosition is a guide star's apparent place.
type StarPosition struct {
	Star      Star
	AltDeg    float64
	AzDeg     float64
	AzDefined bool
}

// StarPositions computes horizontal coordinates for stars. Stars whose
// position cannot be computed are left out.
func StarPositions(tr astro.Transformer, stars []Star, obs astro.Observer, t time.Time) []StarPosition {
	out := make([]StarPosition, 0, len(stars))
	for _, s := range stars {
		hp, err := tr.Horizontal(s.RAdeg, s.DecDeg, t, obs.LatDeg, obs.LonDeg)
		if err != nil && !errors.Is(err, astro.ErrDegenerateGeometry) {
			continue
		}
		out = append(out, StarPosition{Star: s, AltDeg: hp.AltDeg, AzDeg: hp.AzDeg, AzDefined: err == nil})
	}
	return out
}

var guideStars = []Star{
	{"Alpheratz", 2.097, 29.091, 2.06},
	{"Schedar", 10.127, 56.537, 2.23},
	{"Diphda", 10.897, -17.987, 2.02},
	{"Mirach", 17.433, 35.621, 2.05},
	{"Achernar", 24.429, -57.237, 0.46},
	{"Hamal", 31.793, 23.463, 2.00},
	{"Polaris", 37.954, 89.264, 2.02},
	{"Algol", 47.042, 40.957, 2.12},
	{"Mirfak", 51.081, 49.861, 1.79},
	{"Aldebaran", 68.980, 16.509, 0.85},
	{"Rigel", 78.634, -8.202, 0.13},
	{"Capella", 79.172, 45.998, 0.08},
	{"Bellatrix", 81.283, 6.350, 1.64},
	{"Elnath", 81.573, 28.608, 1.65},
	{"Alnilam", 84.053, -1.202, 1.69},
	{"Betelgeuse", 88.793, 7.407, 0.50},
	{"Canopus", 95.988, -52.696, -0.74},
	{"Sirius", 101.287, -16.716, -1.46},
	{"Castor", 113.650, 31.889, 1.58},
	{"Procyon", 114.826, 5.225, 0.34},
	{"Pollux", 116.329, 28.026, 1.14},
	{"Alphard", 141.897, -8.659, 2.00},
	{"Regulus", 152.093, 11.967, 1.35},
	{"Dubhe", 165.932, 61.751, 1.79},
	{"Denebola", 177.265, 14.572, 2.13},
	{"Acrux", 186.650, -63.099, 0.76},
	{"Alioth", 193.507, 55.960, 1.77},
	{"Mizar", 200.981, 54.925, 2.04},
	{"Spica", 201.298, -11.161, 0.97},
	{"Alkaid", 206.885, 49.313, 1.86},
	{"Hadar", 210.956, -60.373, 0.61},
	{"Arcturus", 213.915, 19.182, -0.05},
	{"Antares", 247.352, -26.432, 0.96},
	{"Rasalhague", 263.734, 12.560, 2.08},
	{"Kaus Australis", 276.043, -34.384, 1.85},
	{"Vega", 279.235, 38.784, 0.03},
	{"Nunki", 283.816, -26.297, 2.02},
	{"Altair", 297.696, 8.868, 0.76},
	{"Sadr", 305.557, 40.257, 2.23},
	{"Deneb", 310.358, 45.280, 1.25},
	{"Enif", 326.046, 9.875, 2.39},
	{"Fomalhaut", 344.413, -29.622, 1.16},
	{"Markab", 346.190, 15.205, 2.49},
}
