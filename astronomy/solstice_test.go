// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy_test

import (
	"testing"
	"time"

	"cloudeng.io/lunisolar/astronomy"
	"cloudeng.io/lunisolar/datetime"
	"cloudeng.io/lunisolar/ephemeris"
)

func TestSolstice(t *testing.T) {
	cd := func(ts time.Time) datetime.CalendarDate {
		return datetime.CalendarDateFromTime(ts.UTC())
	}

	if got, want := cd(astronomy.December(2024)), datetime.NewCalendarDate(2024, 12, 21); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if got, want := cd(astronomy.March(1900)), datetime.NewCalendarDate(1900, 03, 21); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if got, want := cd(astronomy.June(2022)), datetime.NewCalendarDate(2022, 06, 21); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if got, want := cd(astronomy.September(2023)), datetime.NewCalendarDate(2023, 9, 23); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSeasonsMatchSolarTerms(t *testing.T) {
	for _, year := range []int{1901, 1984, 2024, 2050} {
		terms := yearOfTerms(t, year)
		seasons := astronomy.Seasons(year)
		for i, idx := range []int{6, 12, 18, 24} {
			if d := seasons[i].Sub(terms[idx]).Abs(); d > 5*time.Minute {
				t.Errorf("%v: %v: %v: got %v, want %v", year, i, ephemeris.SolarTermName(idx), seasons[i], terms[idx])
			}
		}
	}
}
