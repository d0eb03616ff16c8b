// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy_test

import (
	"math"
	"testing"
	"time"

	"cloudeng.io/lunisolar/astronomy"
	"cloudeng.io/lunisolar/datetime"
	"cloudeng.io/lunisolar/ephemeris"
	"cloudeng.io/lunisolar/timescale"
)

func yearOfTerms(t *testing.T, year int) []time.Time {
	t.Helper()
	terms, err := ephemeris.SolarTerms(year)
	if err != nil {
		t.Fatal(err)
	}
	next, err := ephemeris.SolarTerms(year + 1)
	if err != nil {
		t.Fatal(err)
	}
	return append(terms, next[0])
}

func angleDiff(a, b float64) float64 {
	return math.Abs(math.Remainder(a-b, 2*math.Pi))
}

func TestSunPositionAtTerms(t *testing.T) {
	terms := yearOfTerms(t, 2024)
	for k, term := range terms {
		if got, want := astronomy.SunPosition(terms, term), float64(k)/24; math.Abs(got-want) > 1e-9 {
			t.Errorf("%v: got %v, want %v", k, got, want)
		}
	}
}

func TestSunPositionMonotonic(t *testing.T) {
	terms := yearOfTerms(t, 2025)
	prev := -1.0
	for ts := terms[0]; ts.Before(terms[24]); ts = ts.Add(6 * time.Hour) {
		pos := astronomy.SunPosition(terms, ts)
		if pos < 0 || pos >= 1 {
			t.Fatalf("%v: out of range: %v", ts, pos)
		}
		if pos <= prev {
			t.Fatalf("%v: not increasing: %v <= %v", ts, pos, prev)
		}
		prev = pos
		// Position 0 is the Winter Solstice, ie. a longitude of 270°.
		lon := astronomy.SolarLongitude(timescale.DaysSinceJ2000(ts))
		if d := angleDiff(2*math.Pi*pos+1.5*math.Pi, lon); d > 0.005 {
			t.Errorf("%v: position %v and longitude %v differ by %v", ts, pos, lon, d)
		}
	}
}

func TestEquationOfTime(t *testing.T) {
	for _, tc := range []struct {
		when    time.Time
		minutes float64
	}{
		{time.Date(2024, 11, 3, 0, 0, 0, 0, time.UTC), 16.4},
		{time.Date(2024, 2, 11, 12, 0, 0, 0, time.UTC), -14.2},
		{time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC), 0.0},
	} {
		e := astronomy.EquationOfTime(timescale.DaysSinceJ2000(tc.when))
		if got, want := e/(2*math.Pi)*1440, tc.minutes; math.Abs(got-want) > 0.5 {
			t.Errorf("%v: got %v, want %v", tc.when, got, want)
		}
	}
}

func TestDaytimeOffset(t *testing.T) {
	rad := func(deg float64) float64 { return deg / 180 * math.Pi }
	// Summer solstice at 40°N, about 15 hours of daylight.
	if got, want := astronomy.DaytimeOffset(rad(40), math.Pi), 1.9653; math.Abs(got-want) > 0.005 {
		t.Errorf("got %v, want %v", got, want)
	}
	// Equinox at the equator, slightly more than 12 hours.
	got := astronomy.DaytimeOffset(0, math.Pi/2)
	if got <= math.Pi/2 || got > math.Pi/2+0.02 {
		t.Errorf("got %v", got)
	}
	// Symmetry between the hemispheres.
	if got, want := astronomy.DaytimeOffset(rad(-40), 0), astronomy.DaytimeOffset(rad(40), math.Pi); math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := astronomy.DaytimeOffset(rad(70), 0); !math.IsInf(got, -1) {
		t.Errorf("expected polar night, got %v", got)
	}
	if got := astronomy.DaytimeOffset(rad(70), math.Pi); !math.IsInf(got, 1) {
		t.Errorf("expected polar day, got %v", got)
	}
}

func TestStartOfDayCivil(t *testing.T) {
	for _, name := range []string{"Asia/Shanghai", "America/New_York", "Europe/London", "UTC"} {
		loc, err := time.LoadLocation(name)
		if err != nil {
			t.Fatal(err)
		}
		place := &datetime.Place{Latitude: 39.9, Longitude: 116.4}
		for _, ts := range []time.Time{
			time.Date(2024, 3, 10, 12, 0, 0, 0, loc),
			time.Date(2024, 11, 3, 0, 0, 0, 0, loc),
			time.Date(2024, 12, 31, 23, 59, 59, 0, loc),
		} {
			want := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, loc)
			if got := astronomy.StartOfDay(ts, loc, place, false); !got.Equal(want) {
				t.Errorf("%v: got %v, want %v", ts, got, want)
			}
			if got := astronomy.StartOfDay(ts, loc, nil, true); !got.Equal(want) {
				t.Errorf("%v: got %v, want %v", ts, got, want)
			}
			want = time.Date(ts.Year(), ts.Month(), ts.Day()+1, 0, 0, 0, 0, loc)
			if got := astronomy.StartOfNextDay(ts, loc, nil, false); !got.Equal(want) {
				t.Errorf("%v: got %v, want %v", ts, got, want)
			}
		}
	}
}

func TestStartOfDayApparent(t *testing.T) {
	loc := ephemeris.Beijing
	place := &datetime.Place{Latitude: 39.9, Longitude: 116.4}

	// Beijing is 3.6° west of the timezone meridian and the equation of
	// time is close to its maximum so apparent midnight precedes civil
	// midnight by about two minutes.
	noon := time.Date(2024, 11, 3, 12, 0, 0, 0, loc)
	start := astronomy.StartOfDay(noon, loc, place, true)
	if want := time.Date(2024, 11, 2, 23, 58, 0, 0, loc); start.Sub(want).Abs() > 2*time.Minute {
		t.Errorf("got %v, want %v", start, want)
	}
	late := time.Date(2024, 11, 2, 23, 59, 30, 0, loc)
	if got, want := astronomy.StartOfDay(late, loc, place, true), start; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	next := astronomy.StartOfNextDay(noon, loc, place, true)
	if d := next.Sub(start); (d - 24*time.Hour).Abs() > time.Minute {
		t.Errorf("unexpected day length: %v", d)
	}

	// Every instant falls within [start, next start).
	for ts := time.Date(2024, 1, 1, 0, 0, 0, 0, loc); ts.Year() == 2024; ts = ts.Add(7*time.Hour + 13*time.Minute) {
		s := astronomy.StartOfDay(ts, loc, place, true)
		n := astronomy.StartOfNextDay(ts, loc, place, true)
		if ts.Before(s) || !ts.Before(n) {
			t.Fatalf("%v: not in [%v, %v)", ts, s, n)
		}
	}
}
