// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"math"

	"cloudeng.io/lunisolar/timescale"
	"github.com/soniakeys/unit"
)

// Planet identifies one of the naked eye planets.
type Planet int

const (
	Mercury Planet = iota
	Venus
	Mars
	Jupiter
	Saturn
)

var planetNames = []string{"Mercury", "Venus", "Mars", "Jupiter", "Saturn"}

func (p Planet) String() string {
	if p < 0 || int(p) >= len(planetNames) {
		return "unknown"
	}
	return planetNames[p]
}

// elements are the mean Keplerian orbital elements, referred to the
// J2000 ecliptic and equinox, and their rates per Julian century. Angles
// are in degrees and the semi-major axis in AU.
type elements struct {
	a, e, i, l, peri, node       float64
	da, de, di, dl, dperi, dnode float64
}

// Approximate elements valid from 1800 to 2050 (E. M. Standish, JPL),
// they remain adequate for indicating the position of each planet on a
// dial well beyond that range.
var (
	earthMoonBarycenter = elements{
		1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0,
		0.00000562, -0.00004392, -0.01294668, 35999.37244981, 0.32327364, 0,
	}
	planetElements = [...]elements{
		Mercury: {
			0.38709927, 0.20563593, 7.00497902, 252.25032350, 77.45779628, 48.33076593,
			0.00000037, 0.00001906, -0.00594749, 149472.67411175, 0.16047689, -0.12534081,
		},
		Venus: {
			0.72333566, 0.00677672, 3.39467605, 181.97909950, 131.60246718, 76.67984255,
			0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.00268329, -0.27769418,
		},
		Mars: {
			1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891,
			0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343,
		},
		Jupiter: {
			5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909,
			-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106,
		},
		Saturn: {
			9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448,
			-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794,
		},
	}
)

// generalPrecession is the precession in longitude per Julian century.
var generalPrecession = unit.AngleFromSec(5028.796).Rad()

// heliocentric returns the heliocentric rectangular coordinates, in AU,
// in the J2000 ecliptic frame T centuries from J2000.0.
func (el elements) heliocentric(T float64) (x, y, z float64) {
	a := el.a + el.da*T
	e := el.e + el.de*T
	incl := unit.AngleFromDeg(el.i + el.di*T).Rad()
	l := el.l + el.dl*T
	peri := el.peri + el.dperi*T
	node := unit.AngleFromDeg(el.node + el.dnode*T).Rad()
	ω := unit.AngleFromDeg(peri).Rad() - node
	M := math.Remainder(unit.AngleFromDeg(l-peri).Rad(), 2*math.Pi)

	E := eccentricAnomaly(e, M)
	xp := a * (math.Cos(E) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(E)

	sω, cω := math.Sincos(ω)
	sΩ, cΩ := math.Sincos(node)
	sI, cI := math.Sincos(incl)
	x = (cω*cΩ-sω*sΩ*cI)*xp + (-sω*cΩ-cω*sΩ*cI)*yp
	y = (cω*sΩ+sω*cΩ*cI)*xp + (-sω*sΩ+cω*cΩ*cI)*yp
	z = sω*sI*xp + cω*sI*yp
	return
}

// eccentricAnomaly solves Kepler's equation, M = E - e sin E, by
// Newton's method.
func eccentricAnomaly(e, M float64) float64 {
	E := M + e*math.Sin(M)
	for range 10 {
		dE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < 1e-12 {
			break
		}
	}
	return E
}

// PlanetLongitude returns the geocentric ecliptic longitude, referred to
// the mean equinox of date, of planet p in [0, 2π).
func PlanetLongitude(p Planet, d float64) float64 {
	T := timescale.Centuries(d)
	xe, ye, _ := earthMoonBarycenter.heliocentric(T)
	x, y, _ := planetElements[p].heliocentric(T)
	return normalize(math.Atan2(y-ye, x-xe) + generalPrecession*T)
}

// PlanetPositions returns the geocentric ecliptic longitudes of Mercury,
// Venus, Mars, Jupiter and Saturn, in that order.
func PlanetPositions(d float64) []float64 {
	pos := make([]float64, len(planetElements))
	for i := range planetElements {
		pos[i] = PlanetLongitude(Planet(i), d)
	}
	return pos
}
