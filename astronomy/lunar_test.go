// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy_test

import (
	"math"
	"testing"
	"time"

	"cloudeng.io/lunisolar/astronomy"
	"cloudeng.io/lunisolar/ephemeris"
	"cloudeng.io/lunisolar/timescale"
)

func TestMoonLongitudeAtPhases(t *testing.T) {
	for _, year := range []int{1950, 2024, 2100} {
		phases, err := ephemeris.Phases(year)
		if err != nil {
			t.Fatal(err)
		}
		full := phases.FirstIsFullMoon
		for _, ev := range phases.Events {
			d := timescale.DaysSinceJ2000(ev)
			elongation := astronomy.MoonEclipticLongitude(d) - astronomy.SolarLongitude(d)
			want := 0.0
			if full {
				want = math.Pi
			}
			if diff := angleDiff(elongation, want); diff > 0.005 {
				t.Errorf("%v: full %v: elongation differs by %v", ev, full, diff)
			}
			full = !full
		}
	}
}

func TestMoonEquatorPosition(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 60 {
		d := timescale.DaysSinceJ2000(start.Add(time.Duration(i) * 12 * time.Hour))
		ra, dec, dist := astronomy.MoonEquatorPosition(d)
		if ra < 0 || ra >= 2*math.Pi {
			t.Errorf("%v: ra out of range: %v", i, ra)
		}
		if math.Abs(dec) > 29.0/180*math.Pi {
			t.Errorf("%v: dec out of range: %v", i, dec)
		}
		if dist < 356000 || dist > 407000 {
			t.Errorf("%v: distance out of range: %v", i, dist)
		}
	}
}

func TestLunarDay(t *testing.T) {
	if got, want := astronomy.LunarDay(), 24*time.Hour+50*time.Minute; (got - want).Abs() > time.Minute {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLunarTimeOffset(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	inf := 0
	for i := range 30 {
		d := timescale.DaysSinceJ2000(start.Add(time.Duration(i) * 24 * time.Hour))

		h := astronomy.LunarTimeOffset(0, d, true)
		if math.Abs(h-math.Pi/2) > 0.01 {
			t.Errorf("%v: equator: got %v", i, h)
		}
		if got, want := astronomy.LunarTimeOffset(0, d, false), math.Pi-h; math.Abs(got-want) > 1e-12 {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}

		_, dec, _ := astronomy.MoonEquatorPosition(d)
		polar := astronomy.LunarTimeOffset(80.0/180*math.Pi, d, true)
		dark := astronomy.LunarTimeOffset(80.0/180*math.Pi, d, false)
		if math.IsInf(polar, 0) {
			inf++
			if (polar > 0) != (dec > 0) {
				t.Errorf("%v: dec %v, offset %v", i, dec, polar)
			}
			if dark != -polar {
				t.Errorf("%v: got %v, want %v", i, dark, -polar)
			}
		}
	}
	if inf == 0 {
		t.Errorf("the Moon should be circumpolar at 80°N at some point in a month")
	}
}
