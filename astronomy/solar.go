// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astronomy provides the solar and lunar position models used to
// locate day boundaries and intraday events. Unless otherwise noted,
// angles are in radians and d denotes the number of TT days since
// J2000.0 as returned by timescale.DaysSinceJ2000.
package astronomy

import (
	"math"
	"time"

	"cloudeng.io/lunisolar/timescale"
	"github.com/mooncaker816/learnmeeus/v3/base"
	"github.com/mooncaker816/learnmeeus/v3/eqtime"
	"github.com/mooncaker816/learnmeeus/v3/nutation"
	"github.com/mooncaker816/learnmeeus/v3/solar"
	"github.com/soniakeys/unit"
)

var (
	// sunAltitude is the altitude of the centre of the Sun at sunrise
	// and sunset allowing for refraction and semi-diameter.
	sunAltitude = unit.AngleFromDeg(-0.8333).Rad()

	obliquityJ2000 = nutation.MeanObliquity(timescale.J2000).Rad()
)

// SunPosition returns the fraction of the tropical year that starts at
// terms[0] which has elapsed at t. terms must be consecutive solar terms,
// at least three of them. The position between terms is found by
// inverting a quadratic fitted through three consecutive terms, which
// follows the Sun's non-uniform apparent motion more closely than linear
// interpolation.
func SunPosition(terms []time.Time, t time.Time) float64 {
	n := len(terms)
	i := 0
	for i+1 < n && t.After(terms[i+1]) {
		i++
	}
	if i > n-2 {
		i = n - 2
	}
	since := func(a, b time.Time) float64 { return b.Sub(a).Seconds() }
	if i <= n/2 && i+2 < n {
		x := interpolate(since(terms[i], terms[i+1]), since(terms[i], terms[i+2]), since(terms[i], t))
		return (float64(i) + x*2) / 24
	}
	x := interpolate(since(terms[i-1], terms[i]), since(terms[i-1], terms[i+1]), since(terms[i-1], t))
	return (float64(i) + (x-0.5)*2) / 24
}

// interpolate returns x such that the quadratic passing through (0, 0),
// (0.5, f2) and (1, f3) has the value y.
func interpolate(f2, f3, y float64) float64 {
	a := f2
	b := f3 - f2 - a
	if b == 0 {
		return y / (2 * a)
	}
	ba := b - 2*a
	return (ba + math.Sqrt(ba*ba+8*b*y)) / (4 * b)
}

// EquationOfTime returns the difference between apparent and mean solar
// time, it is positive when a sundial is ahead of the clock.
func EquationOfTime(d float64) float64 {
	return eqtime.ESmart(timescale.JDE(d)).Rad()
}

// SolarLongitude returns the apparent geocentric ecliptic longitude of
// the Sun in [0, 2π).
func SolarLongitude(d float64) float64 {
	return normalize(solar.ApparentLongitude(base.J2000Century(timescale.JDE(d))).Rad())
}

// DaytimeOffset returns half of the daytime arc, as an hour angle, for the
// specified latitude and progress through the tropical year; a progress of
// zero is the Winter Solstice. +Inf is returned when the Sun does not set
// and -Inf when it does not rise.
func DaytimeOffset(latitude, progress float64) float64 {
	longitude := progress + 1.5*math.Pi
	declination := math.Asin(math.Sin(obliquityJ2000) * math.Sin(longitude))
	return hourAngle(sunAltitude, latitude, declination)
}

// hourAngle returns the hour angle at which a body with the specified
// declination crosses altitude h0, ±Inf when it is circumpolar or never
// rises.
func hourAngle(h0, latitude, declination float64) float64 {
	cosH := (math.Sin(h0) - math.Sin(latitude)*math.Sin(declination)) /
		(math.Cos(latitude) * math.Cos(declination))
	switch {
	case cosH < -1:
		return math.Inf(1)
	case cosH > 1:
		return math.Inf(-1)
	}
	return math.Acos(cosH)
}

func normalize(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
