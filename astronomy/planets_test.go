// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy_test

import (
	"math"
	"testing"
	"time"

	"cloudeng.io/lunisolar/astronomy"
	"cloudeng.io/lunisolar/timescale"
)

func TestInnerPlanetElongation(t *testing.T) {
	maxElongation := map[astronomy.Planet]float64{
		astronomy.Mercury: 28.5,
		astronomy.Venus:   48.5,
	}
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 30 * 24 {
		d := timescale.DaysSinceJ2000(start.AddDate(0, 0, 15*i))
		sun := astronomy.SolarLongitude(d)
		for p, limit := range maxElongation {
			elongation := angleDiff(astronomy.PlanetLongitude(p, d), sun) * 180 / math.Pi
			if elongation > limit {
				t.Errorf("%v: %v: elongation %v > %v", d, p, elongation, limit)
			}
		}
	}
}

func TestOuterPlanetOppositions(t *testing.T) {
	for _, tc := range []struct {
		planet astronomy.Planet
		when   time.Time
	}{
		{astronomy.Mars, time.Date(2022, 12, 8, 5, 0, 0, 0, time.UTC)},
		{astronomy.Jupiter, time.Date(2023, 11, 3, 5, 0, 0, 0, time.UTC)},
		{astronomy.Saturn, time.Date(2023, 8, 27, 8, 0, 0, 0, time.UTC)},
	} {
		d := timescale.DaysSinceJ2000(tc.when)
		lon := astronomy.PlanetLongitude(tc.planet, d)
		if diff := angleDiff(lon, astronomy.SolarLongitude(d)+math.Pi) * 180 / math.Pi; diff > 1.5 {
			t.Errorf("%v: %v: not in opposition: %v", tc.planet, tc.when, diff)
		}
	}
}

func TestPlanetPositions(t *testing.T) {
	d := timescale.DaysSinceJ2000(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	pos := astronomy.PlanetPositions(d)
	if got, want := len(pos), 5; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, p := range pos {
		if p < 0 || p >= 2*math.Pi {
			t.Errorf("%v: out of range: %v", i, p)
		}
		if got, want := p, astronomy.PlanetLongitude(astronomy.Planet(i), d); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	if got, want := astronomy.Saturn.String(), "Saturn"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
