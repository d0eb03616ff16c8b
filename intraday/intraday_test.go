// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package intraday_test

import (
	"math"
	"testing"
	"time"

	"cloudeng.io/lunisolar/astronomy"
	"cloudeng.io/lunisolar/datetime"
	"cloudeng.io/lunisolar/ephemeris"
	"cloudeng.io/lunisolar/intraday"
	"cloudeng.io/lunisolar/timescale"
)

type day struct {
	t        time.Time
	loc      *time.Location
	place    *datetime.Place
	apparent bool
	terms    []time.Time
}

func newDay(t *testing.T, when time.Time, place datetime.Place, apparent bool) *day {
	t.Helper()
	year := when.In(ephemeris.Beijing).Year()
	cur, err := ephemeris.SolarTerms(year)
	if err != nil {
		t.Fatal(err)
	}
	next, err := ephemeris.SolarTerms(year + 1)
	if err != nil {
		t.Fatal(err)
	}
	terms := append(cur, next...)
	if !when.Before(next[0]) {
		terms = next
	}
	return &day{t: when, loc: when.Location(), place: &place, apparent: apparent, terms: terms}
}

func (d *day) Time() time.Time          { return d.t }
func (d *day) Location() *time.Location { return d.loc }
func (d *day) StartOfDay() time.Time {
	return astronomy.StartOfDay(d.t, d.loc, d.place, d.apparent)
}
func (d *day) StartOfNextDay() time.Time {
	return astronomy.StartOfNextDay(d.t, d.loc, d.place, d.apparent)
}
func (d *day) SunPosition(t time.Time) float64 {
	return astronomy.SunPosition(d.terms, t)
}

var (
	beijing   = datetime.Place{Latitude: 39.9042, Longitude: 116.4074}
	cupertino = datetime.Place{Latitude: 37.3229978, Longitude: -122.0321823}
)

func TestSolar(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		place datetime.Place
		loc   *time.Location
	}{
		{beijing, ephemeris.Beijing},
		{cupertino, la},
	} {
		for month := time.January; month <= time.December; month++ {
			when := time.Date(2024, month, 15, 10, 0, 0, 0, tc.loc)
			events := intraday.Solar(newDay(t, when, tc.place, false), tc.place)
			if got, want := len(events), 5; got != want {
				t.Fatalf("got %v, want %v", got, want)
			}
			for i, ev := range events {
				if ev == nil {
					t.Fatalf("%v: %v: unexpected nil", when, i)
				}
			}
			for i := 1; i < len(events); i++ {
				if !events[i-1].Before(*events[i]) {
					t.Errorf("%v: %v: events out of order: %v", when, i, events)
				}
			}
			rise, set := astronomy.SunRiseAndSet(datetime.CalendarDateFromTime(when), tc.place)
			if d := events[intraday.Sunrise].Sub(rise).Abs(); d > 4*time.Minute {
				t.Errorf("%v: sunrise: got %v, want %v", when, events[intraday.Sunrise], rise.In(tc.loc))
			}
			if d := events[intraday.Sunset].Sub(set).Abs(); d > 4*time.Minute {
				t.Errorf("%v: sunset: got %v, want %v", when, events[intraday.Sunset], set.In(tc.loc))
			}
			noon := astronomy.SolarNoon(datetime.CalendarDateFromTime(when), tc.place)
			if d := events[intraday.Noon].Sub(noon).Abs(); d > time.Minute {
				t.Errorf("%v: noon: got %v, want %v", when, events[intraday.Noon], noon.In(tc.loc))
			}
			if d := events[intraday.NextMidnight].Sub(*events[intraday.PreviousMidnight]); (d - 24*time.Hour).Abs() > time.Minute {
				t.Errorf("%v: unexpected day length: %v", when, d)
			}
		}
	}
}

func TestSolarPolar(t *testing.T) {
	place := datetime.Place{Latitude: 75, Longitude: 20}
	winter := time.Date(2024, 12, 21, 12, 0, 0, 0, time.UTC)
	events := intraday.Solar(newDay(t, winter, place, false), place)
	if events[intraday.PreviousMidnight] == nil || events[intraday.NextMidnight] == nil {
		t.Errorf("midnights should be present: %v", events)
	}
	for _, i := range []int{intraday.Sunrise, intraday.Noon, intraday.Sunset} {
		if events[i] != nil {
			t.Errorf("%v: should be nil: %v", i, events[i])
		}
	}

	summer := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	events = intraday.Solar(newDay(t, summer, place, false), place)
	for i, ev := range events {
		if (i == intraday.Noon) != (ev != nil) {
			t.Errorf("%v: unexpected event: %v", i, ev)
		}
	}
}

// hourAngle returns the local hour angle of the Moon at place in
// (-π, π].
func hourAngle(t time.Time, place datetime.Place) float64 {
	jd := timescale.JulianDayFromTime(t)
	gmst := (280.46061837 + 360.98564736629*(jd-timescale.J2000)) / 180 * math.Pi
	ra, _, _ := astronomy.MoonEquatorPosition(timescale.DaysSinceJ2000(t))
	return math.Remainder(gmst+place.Longitude/180*math.Pi-ra, 2*math.Pi)
}

func TestLunar(t *testing.T) {
	start := time.Date(2024, 2, 1, 9, 30, 0, 0, ephemeris.Beijing)
	lunarDay := astronomy.LunarDay()
	for i := range 30 {
		when := start.AddDate(0, 0, i)
		d := newDay(t, when, beijing, false)
		events := intraday.Lunar(d, beijing)
		if got, want := len(events), 6; got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
		for j, ev := range events {
			if ev == nil {
				t.Fatalf("%v: %v: unexpected nil", when, j)
			}
		}
		prev, next := *events[intraday.PreviousTransit], *events[intraday.NextTransit]
		if got := next.Sub(prev); (got - lunarDay).Abs() > time.Hour {
			t.Errorf("%v: transits are %v apart", when, got)
		}
		// The transits straddle the day.
		if !prev.Before(d.StartOfNextDay()) || !next.After(d.StartOfDay()) {
			t.Errorf("%v: transits %v, %v are not close to the day", when, prev, next)
		}
		for _, tr := range []time.Time{prev, next} {
			// The Sun's right ascension is approximated by its longitude
			// which introduces an error of up to 2.5°.
			if h := hourAngle(tr, beijing); math.Abs(h) > 4.0/180*math.Pi {
				t.Errorf("%v: transit at %v: hour angle %v", when, tr, h)
			}
		}
		order := []int{intraday.PreviousMoonrise, intraday.PreviousTransit, intraday.Moonset, intraday.Moonrise, intraday.NextTransit, intraday.NextMoonset}
		for k := 1; k < len(order); k++ {
			if !events[order[k-1]].Before(*events[order[k]]) {
				t.Errorf("%v: %v: events out of order", when, k)
			}
		}
	}
}

func TestLunarPolar(t *testing.T) {
	place := datetime.Place{Latitude: 80, Longitude: 15}
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	circumpolar := 0
	for i := range 30 {
		when := start.AddDate(0, 0, i)
		events := intraday.Lunar(newDay(t, when, place, false), place)
		if got, want := len(events), 6; got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
		if events[intraday.PreviousMoonrise] == nil && events[intraday.NextMoonset] == nil {
			circumpolar++
		}
	}
	if circumpolar == 0 {
		t.Errorf("expected the Moon to remain above or below the horizon on some days")
	}
}
