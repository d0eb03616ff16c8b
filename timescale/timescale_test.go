// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package timescale_test

import (
	"math"
	"testing"
	"time"

	"cloudeng.io/lunisolar/timescale"
	"github.com/mooncaker816/learnmeeus/v3/julian"
)

func TestJulianDay(t *testing.T) {
	for _, tc := range []struct {
		y, m, d int
		want    float64
	}{
		{2000, 1, 1, 2451544.5},
		{1900, 1, 1, 2415020.5},
		{1999, 12, 31, 2451543.5},
		{2024, 2, 29, 2460369.5},
		{1582, 10, 15, 2299160.5},
	} {
		if got, want := timescale.JulianDay(tc.y, tc.m, tc.d), tc.want; got != want {
			t.Errorf("%v-%v-%v: got %v, want %v", tc.y, tc.m, tc.d, got, want)
		}
	}
	for _, y := range []int{1900, 1901, 1999, 2000, 2024, 2100, 2500, 2999, 3000} {
		for _, m := range []int{1, 2, 3, 6, 12} {
			got := timescale.JulianDay(y, m, 15)
			want := julian.CalendarGregorianToJD(y, m, 15)
			if got != want {
				t.Errorf("%v-%v-15: got %v, want %v", y, m, got, want)
			}
		}
	}
}

func secondsToDays(s float64) float64 {
	return s / timescale.SecondsPerDay
}

func deltaTForDate(y, m, d int) float64 {
	jd := timescale.JulianDay(y, m, d)
	return timescale.DeltaT((jd - timescale.J2000) / timescale.DaysPerCentury)
}

func TestDeltaTLeapSeconds(t *testing.T) {
	for _, tc := range []struct {
		y, m, d int
		seconds float64
	}{
		{1972, 3, 1, 42.184},
		{1999, 6, 1, 64.184},
		{2010, 1, 1, 66.184},
		{2016, 6, 1, 68.184},
		{2020, 6, 1, 69.184},
	} {
		got := deltaTForDate(tc.y, tc.m, tc.d)
		if want := secondsToDays(tc.seconds); math.Abs(got-want) > 1e-12 {
			t.Errorf("%v-%v-%v: got %v, want %v", tc.y, tc.m, tc.d, got*timescale.SecondsPerDay, tc.seconds)
		}
	}
}

func TestDeltaTSpline(t *testing.T) {
	// The spline is continuous at the knots and matches the tabulated
	// values there.
	for _, tc := range []struct {
		year    float64
		seconds float64
	}{
		{1900, -1.977},
		{1950, 28.932},
		{1800, 18.367},
	} {
		jd := (tc.year-2000)*365.2425 + 2451544.5
		got := timescale.DeltaT((jd-timescale.J2000)/timescale.DaysPerCentury) * timescale.SecondsPerDay
		if math.Abs(got-tc.seconds) > 1e-3 {
			t.Errorf("%v: got %v, want %v", tc.year, got, tc.seconds)
		}
	}

	// No large discontinuity leaving the leap second window.
	before := deltaTForDate(2021, 12, 31) * timescale.SecondsPerDay
	after := deltaTForDate(2022, 1, 2) * timescale.SecondsPerDay
	if math.Abs(before-after) > 1.5 {
		t.Errorf("discontinuity: %v, %v", before, after)
	}

	// ΔT grows quadratically into the future.
	prev := deltaTForDate(2100, 1, 1)
	for y := 2200; y <= 3000; y += 100 {
		next := deltaTForDate(y, 1, 1)
		if next <= prev {
			t.Errorf("%v: ΔT is not increasing: %v <= %v", y, next, prev)
		}
		prev = next
	}
	if got := deltaTForDate(3000, 1, 1) * timescale.SecondsPerDay; got < 2000 || got > 6000 {
		t.Errorf("ΔT for 3000 out of range: %v", got)
	}
}

func TestDaysSinceJ2000(t *testing.T) {
	noon := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	got := timescale.DaysSinceJ2000(noon)
	if want := secondsToDays(64.184); math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
	// Timezones do not matter.
	loc := time.FixedZone("UTC+8", 8*3600)
	if got, want := timescale.DaysSinceJ2000(noon.In(loc)), got; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	later := noon.Add(36 * time.Hour)
	if got, want := timescale.DaysSinceJ2000(later)-got, 1.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := timescale.JDE(got), timescale.J2000+got; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestJulianDayTimeRoundTrip(t *testing.T) {
	when := time.Date(2024, 2, 10, 6, 59, 0, 0, time.UTC)
	jd := timescale.JulianDayFromTime(when)
	if got, want := jd, timescale.JulianDay(2024, 2, 10)+(6*60+59)/1440.0; math.Abs(got-want) > 1e-8 {
		t.Errorf("got %v, want %v", got, want)
	}
	back := timescale.TimeFromJulianDay(jd)
	if d := back.Sub(when); d > time.Millisecond || d < -time.Millisecond {
		t.Errorf("got %v, want %v", back, when)
	}
	tt := timescale.TimeFromJDE(jd + deltaTForDate(2024, 2, 10))
	if d := tt.Sub(when); d > time.Second || d < -time.Second {
		t.Errorf("got %v, want %v", tt, when)
	}
}

func TestDurations(t *testing.T) {
	if got, want := timescale.Days(1.5), 36*time.Hour; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := timescale.Days(-0.25), -6*time.Hour; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := timescale.Seconds(864), 14*time.Minute+24*time.Second; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
