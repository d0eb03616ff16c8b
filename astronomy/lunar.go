// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"math"
	"time"

	"cloudeng.io/lunisolar/timescale"
	"github.com/mooncaker816/learnmeeus/v3/coord"
	"github.com/mooncaker816/learnmeeus/v3/moonposition"
	"github.com/mooncaker816/learnmeeus/v3/nutation"
	"github.com/soniakeys/unit"
)

const (
	// EarthSpeed is the rotation rate of the Earth relative to the
	// stars in degrees per day.
	EarthSpeed = 360.98564736629
	// MoonSpeed is the mean motion of the Moon relative to the stars in
	// degrees per day.
	MoonSpeed = 13.176358
)

// LunarDay returns the mean interval between successive transits of the
// Moon across a meridian.
func LunarDay() time.Duration {
	return timescale.Days(360 / (EarthSpeed - MoonSpeed))
}

// moonAltitudeOffset is subtracted from 0.7275 times the horizontal
// parallax to obtain the altitude of the Moon at rise and set.
var moonAltitudeOffset = unit.AngleFromDeg(0.5667).Rad()

type moon struct {
	longitude, latitude unit.Angle
	distance            float64
	obliquity           unit.Angle
}

func moonAt(d float64) moon {
	jde := timescale.JDE(d)
	λ, β, Δ := moonposition.Position(jde)
	Δψ, Δε := nutation.Nutation(jde)
	return moon{
		longitude: λ + Δψ,
		latitude:  β,
		distance:  Δ,
		obliquity: nutation.MeanObliquity(jde) + Δε,
	}
}

// MoonEclipticLongitude returns the apparent geocentric ecliptic
// longitude of the Moon in [0, 2π).
func MoonEclipticLongitude(d float64) float64 {
	return normalize(moonAt(d).longitude.Rad())
}

// MoonEquatorPosition returns the apparent right ascension, in [0, 2π),
// and declination of the Moon together with its distance in kilometers.
func MoonEquatorPosition(d float64) (ra, dec, distance float64) {
	m := moonAt(d)
	sε, cε := math.Sincos(m.obliquity.Rad())
	α, δ := coord.EclToEq(m.longitude, m.latitude, sε, cε)
	return normalize(α.Rad()), δ.Rad(), m.distance
}

// LunarTimeOffset returns the hour angle of the Moon at moonrise and
// moonset for the specified latitude, +Inf if the Moon does not set and
// -Inf if it does not rise. If light is false the complementary angle,
// measured from the lower meridian, is returned instead with the
// infinities exchanged.
func LunarTimeOffset(latitude, d float64, light bool) float64 {
	_, dec, distance := MoonEquatorPosition(d)
	h0 := 0.7275*moonposition.Parallax(distance).Rad() - moonAltitudeOffset
	h := hourAngle(h0, latitude, dec)
	if light {
		return h
	}
	if math.IsInf(h, 0) {
		return -h
	}
	return math.Pi - h
}
