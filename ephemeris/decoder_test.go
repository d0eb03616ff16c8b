// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris_test

import (
	"math"
	"sync"
	"testing"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/lunisolar/ephemeris"
	"cloudeng.io/lunisolar/timescale"
	"github.com/mooncaker816/learnmeeus/v3/moonphase"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

func beijing(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, ephemeris.Beijing)
}

func within(a, b time.Time, d time.Duration) bool {
	diff := a.Sub(b)
	return diff <= d && diff >= -d
}

func TestSolarTerms2024(t *testing.T) {
	terms, err := ephemeris.SolarTerms(2024)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(terms), 24; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, want := range map[int]time.Time{
		0:  beijing(2023, 12, 22, 11, 27),
		3:  beijing(2024, 2, 4, 16, 27),
		6:  beijing(2024, 3, 20, 11, 6),
		12: beijing(2024, 6, 21, 4, 51),
		18: beijing(2024, 9, 22, 20, 44),
	} {
		if got := terms[i]; !got.Equal(want) {
			t.Errorf("%v: %v: got %v, want %v", i, ephemeris.SolarTermName(i), got, want)
		}
	}
}

func TestSolarTermsAgainstMeeus(t *testing.T) {
	for year := 1951; year <= 2050; year++ {
		terms, err := ephemeris.SolarTerms(year)
		if err != nil {
			t.Fatal(err)
		}
		for i, jde := range map[int]float64{
			0:  solstice.December(year - 1),
			6:  solstice.March(year),
			12: solstice.June(year),
			18: solstice.September(year),
		} {
			want := timescale.TimeFromJDE(jde)
			if got := terms[i]; !within(got, want, 3*time.Minute) {
				t.Errorf("%v: %v: got %v, want %v", year, i, got, want.In(ephemeris.Beijing))
			}
		}
	}
}

func TestDaylightSavingYears(t *testing.T) {
	// Asia/Shanghai observed daylight saving time in these years and
	// local mean time before 1901, the decoded instants must not move.
	for _, year := range []int{1900, 1919, 1940, 1944, 1949, 1986, 1988, 1991} {
		terms, err := ephemeris.SolarTerms(year)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := terms[12].Format("-0700"), "+0800"; got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
		if year > 1900 {
			want := timescale.TimeFromJDE(solstice.June(year))
			if got := terms[12]; !within(got, want, 5*time.Minute) {
				t.Errorf("%v: june solstice: got %v, want %v", year, got.UTC(), want)
			}
		}
		phases, err := ephemeris.Phases(year)
		if err != nil {
			t.Fatal(err)
		}
		full := phases.FirstIsFullMoon
		for i, ev := range phases.Events {
			if want := nearestPhase(ev, full); !within(ev, want, 5*time.Minute) {
				t.Errorf("%v: %v: full %v: got %v, want %v", year, i, full, ev.UTC(), want)
			}
			full = !full
		}
	}

	// 1944-01-25 new moon at 15:24 UTC.
	phases, err := ephemeris.Phases(1944)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(1944, 1, 25, 15, 24, 0, 0, time.UTC)
	found := false
	for _, ev := range phases.Events {
		if within(ev, want, 3*time.Minute) {
			found = true
		}
	}
	if !found {
		t.Errorf("no phase near %v in %v", want, phases.Events)
	}
}

func TestSolarTermsOrdered(t *testing.T) {
	first, last := ephemeris.YearRange()
	for year := first; year <= last; year++ {
		terms, err := ephemeris.SolarTerms(year)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := terms[0].Month(), time.December; got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
		if got, want := terms[0].Year(), year-1; got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
		for i := 1; i < len(terms); i++ {
			gap := terms[i].Sub(terms[i-1])
			if gap < 14*24*time.Hour || gap > 17*24*time.Hour {
				t.Errorf("%v: %v: unexpected gap: %v", year, i, gap)
			}
		}
	}
}

func decimalYear(t time.Time) float64 {
	return float64(t.Year()) + (float64(t.YearDay())-0.5)/365.25
}

// nearestPhase returns the new or full moon computed by learnmeeus that
// is closest to t.
func nearestPhase(t time.Time, full bool) time.Time {
	phase := moonphase.New
	if full {
		phase = moonphase.Full
	}
	var nearest time.Time
	for _, delta := range []float64{-1, 0, 1} {
		c := timescale.TimeFromJDE(phase(decimalYear(t) + delta/12.3685))
		if nearest.IsZero() || c.Sub(t).Abs() < nearest.Sub(t).Abs() {
			nearest = c
		}
	}
	return nearest
}

func TestMoonPhasesAgainstMeeus(t *testing.T) {
	for _, year := range []int{1900, 1950, 2000, 2024, 2025, 2100, 2500, 2999, 3000} {
		phases, err := ephemeris.Phases(year)
		if err != nil {
			t.Fatal(err)
		}
		full := phases.FirstIsFullMoon
		for i, ev := range phases.Events {
			if got, want := ev.Year(), year; got != want {
				t.Errorf("%v: %v: got %v, want %v", year, i, got, want)
			}
			want := nearestPhase(ev, full)
			if !within(ev, want, 5*time.Minute) {
				t.Errorf("%v: %v: full %v: got %v, want %v", year, i, full, ev, want.In(ephemeris.Beijing))
			}
			full = !full
		}
	}
}

func TestMoonPhases2024(t *testing.T) {
	phases, err := ephemeris.Phases(2024)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := phases.FirstIsFullMoon, false; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(phases.Events), 25; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := phases.Events[0], beijing(2024, 1, 11, 19, 57); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := phases.Events[1], beijing(2024, 1, 26, 1, 54); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := phases.Events[24], beijing(2024, 12, 31, 6, 27); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	for i := 1; i < len(phases.Events); i++ {
		gap := phases.Events[i].Sub(phases.Events[i-1]).Hours() / 24
		if math.Abs(gap-29.53/2) > 1.5 {
			t.Errorf("%v: unexpected gap: %v", i, gap)
		}
	}
}

func TestYearOutOfRange(t *testing.T) {
	for _, year := range []int{1899, 3001, 0, -500} {
		if _, err := ephemeris.SolarTerms(year); !errors.Is(err, ephemeris.ErrYearOutOfRange) {
			t.Errorf("%v: unexpected error: %v", year, err)
		}
		if _, err := ephemeris.Phases(year); !errors.Is(err, ephemeris.ErrYearOutOfRange) {
			t.Errorf("%v: unexpected error: %v", year, err)
		}
	}
}

func TestCacheConcurrency(t *testing.T) {
	var wg sync.WaitGroup
	results := make([][]time.Time, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			terms, err := ephemeris.SolarTerms(2033)
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = terms
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(results); i++ {
		for j := range results[i] {
			if got, want := results[i][j], results[0][j]; !got.Equal(want) {
				t.Errorf("%v: %v: got %v, want %v", i, j, got, want)
			}
		}
	}
	// Modifying a result must not affect subsequent calls.
	results[0][0] = time.Time{}
	terms, _ := ephemeris.SolarTerms(2033)
	if terms[0].IsZero() {
		t.Errorf("cache was modified by a caller")
	}
}

func TestSolarTermNames(t *testing.T) {
	for i, want := range map[int]string{
		0: "冬　至", 1: "小　寒", 3: "立　春", 6: "春　分", 12: "夏　至", 23: "大　雪", 24: "冬　至", -1: "大　雪",
	} {
		if got := ephemeris.SolarTermName(i); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	if got, want := len(ephemeris.EvenSolarTermNames()), 12; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
