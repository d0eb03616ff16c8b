// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"slices"
	"strings"
	"testing"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/lunisolar/calendar"
	"cloudeng.io/lunisolar/datetime"
	"cloudeng.io/lunisolar/ephemeris"
	"github.com/stretchr/testify/require"
)

var beijing = datetime.Place{Latitude: 39.9042, Longitude: 116.4074}

func at(t *testing.T, val string) time.Time {
	t.Helper()
	when, err := time.ParseInLocation("2006-01-02T15:04", val, ephemeris.Beijing)
	if err != nil {
		t.Fatal(err)
	}
	return when
}

func newCalendar(t *testing.T, when time.Time, place *datetime.Place, opts calendar.Options) *calendar.Calendar {
	t.Helper()
	c, err := calendar.New(when, ephemeris.Beijing, place, opts)
	if err != nil {
		t.Fatalf("%v: %v", when, err)
	}
	return c
}

func TestNewYear(t *testing.T) {
	for _, day := range []string{
		"1901-02-19", "1912-02-18", "1950-02-17",
		"2019-02-05", "2020-01-25", "2021-02-12", "2022-02-01",
		"2023-01-22", "2024-02-10", "2025-01-29", "2030-02-03",
		"2051-02-11", "2053-02-19", "2057-02-04", "2058-01-24",
		"2100-02-09",
	} {
		newYear := at(t, day+"T12:00")
		c := newCalendar(t, newYear, nil, calendar.Options{})
		if got, want := c.MonthName(), "正月"; got != want {
			t.Errorf("%v: got %v, want %v", day, got, want)
		}
		if got, want := c.Day(), 1; got != want {
			t.Errorf("%v: got %v, want %v", day, got, want)
		}
		if got, want := c.Year(), newYear.Year(); got != want {
			t.Errorf("%v: got %v, want %v", day, got, want)
		}
		eve := newCalendar(t, newYear.Add(-12*time.Hour-time.Minute), nil, calendar.Options{})
		if got, want := eve.MonthName(), "臘月"; got != want {
			t.Errorf("%v: got %v, want %v", day, got, want)
		}
		if got := eve.Day(); got != 29 && got != 30 {
			t.Errorf("%v: got %v, want 29 or 30", day, got)
		}
	}
}

func TestLeapMonths(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap string
	}{
		{2014, "閏九月"},
		{2017, "閏六月"},
		{2020, "閏四月"},
		{2023, "閏二月"},
		{2025, "閏六月"},
		{2033, ""},
		{2034, "閏冬月"},
	} {
		c := newCalendar(t, time.Date(tc.year, 6, 1, 0, 0, 0, 0, ephemeris.Beijing), nil, calendar.Options{})
		var leaps []string
		for _, name := range c.MonthNames() {
			if strings.HasPrefix(name, calendar.LeapLabel) {
				leaps = append(leaps, name)
			}
		}
		if tc.leap == "" {
			if len(leaps) != 0 {
				t.Errorf("%v: unexpected leap months: %v", tc.year, leaps)
			}
			continue
		}
		if got, want := leaps, []string{tc.leap}; !slices.Equal(got, want) {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}

	c := newCalendar(t, at(t, "2023-03-22T12:00"), nil, calendar.Options{})
	if got, want := c.DateString(), "閏二月一日"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !c.IsLeapMonth() {
		t.Errorf("expected a leap month")
	}
	c = newCalendar(t, at(t, "2023-04-20T12:00"), nil, calendar.Options{})
	if got, want := c.DateString(), "三月一日"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if c.IsLeapMonth() {
		t.Errorf("unexpected leap month")
	}
}

func TestLeapMonthsInAllYears(t *testing.T) {
	const tropicalYear = 365.2422 * 24 * float64(time.Hour)
	first, last := ephemeris.YearRange()
	for year := first + 1; year < last; year++ {
		c := newCalendar(t, time.Date(year, 6, 1, 12, 0, 0, 0, ephemeris.Beijing), nil, calendar.Options{})
		months, leaps := c.MonthsInYear(), c.LeapMonths()
		if months != 12 && months != 13 {
			t.Errorf("%v: got %v months, want 12 or 13", year, months)
		}
		if got, want := leaps == 1, months == 13; got != want {
			t.Errorf("%v: %v months with %v leap months: %v", year, months, leaps, c.MonthNames())
		}
		terms := c.SolarTerms()
		if diff := float64(terms[24].Sub(terms[0])) - tropicalYear; diff > 24*float64(time.Hour) || diff < -24*float64(time.Hour) {
			t.Errorf("%v: year length differs from a tropical year by %v", year, time.Duration(diff))
		}
	}
}

func TestYearSelection(t *testing.T) {
	// The Winter Solstice of 2024 is at 17:20 Beijing time.
	before := newCalendar(t, at(t, "2024-12-21T12:00"), nil, calendar.Options{})
	after := newCalendar(t, at(t, "2024-12-21T18:00"), nil, calendar.Options{})
	if got, want := before.Year(), 2024; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := after.Year(), 2025; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := before.DateString(), after.DateString(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := after.DateString(), "冬月廿一"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	terms := after.SolarTerms()
	if got, want := len(terms), 25; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got := after.CurrentDayInYear(); got < 0 || got > 0.001 {
		t.Errorf("unexpected position: %v", got)
	}
	if got := before.CurrentDayInYear(); got < 0.999 || got >= 1 {
		t.Errorf("unexpected position: %v", got)
	}
}

func TestDateString(t *testing.T) {
	for _, tc := range []struct {
		when string
		date string
		days int
	}{
		{"2024-02-10T12:00", "正月一日", 29},
		{"2024-09-17T12:00", "八月十五", 30},
		{"2024-02-09T23:59", "臘月三十", 30},
	} {
		c := newCalendar(t, at(t, tc.when), nil, calendar.Options{})
		if got, want := c.DateString(), tc.date; got != want {
			t.Errorf("%v: got %v, want %v", tc.when, got, want)
		}
		if got, want := c.MonthLengthInWholeDays(), tc.days; got != want {
			t.Errorf("%v: got %v, want %v", tc.when, got, want)
		}
	}
	if got, want := calendar.DayName(21), "廿一"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.DayName(31), ""; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestErrors(t *testing.T) {
	if _, err := calendar.New(time.Now(), nil, nil, calendar.Options{}); !errors.Is(err, calendar.ErrNoTimeZone) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	for _, when := range []time.Time{
		time.Date(1899, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1900, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(3000, 6, 1, 0, 0, 0, 0, time.UTC),
	} {
		_, err := calendar.New(when, ephemeris.Beijing, nil, calendar.Options{})
		if !errors.Is(err, ephemeris.ErrYearOutOfRange) {
			t.Errorf("%v: unexpected or missing error: %v", when, err)
		}
	}
	for _, when := range []time.Time{
		time.Date(1901, 1, 1, 12, 0, 0, 0, ephemeris.Beijing),
		time.Date(2999, 6, 1, 12, 0, 0, 0, ephemeris.Beijing),
	} {
		newCalendar(t, when, nil, calendar.Options{})
	}
}

func TestUpdate(t *testing.T) {
	c := newCalendar(t, at(t, "2024-03-01T08:00"), nil, calendar.Options{})
	later := at(t, "2024-09-17T12:00")
	require.True(t, c.Update(later, ephemeris.Beijing, nil))
	fresh := newCalendar(t, later, nil, calendar.Options{})
	require.Equal(t, fresh.DateString(), c.DateString())
	require.Equal(t, fresh.Month(), c.Month())
	require.Equal(t, fresh.Day(), c.Day())
	require.Equal(t, later, c.Time())

	// Idempotent.
	require.True(t, c.Update(later, ephemeris.Beijing, nil))
	require.Equal(t, "八月十五", c.DateString())

	// A different timezone or a time outside of the year is rejected and
	// leaves the calendar unchanged.
	require.False(t, c.Update(later, time.UTC, nil))
	require.False(t, c.Update(at(t, "2025-03-01T08:00"), ephemeris.Beijing, nil))
	require.False(t, c.Update(at(t, "2024-12-21T18:00"), ephemeris.Beijing, nil))
	require.Equal(t, later, c.Time())
	require.Equal(t, "八月十五", c.DateString())

	next, err := c.Rebuild(at(t, "2025-01-29T12:00"), ephemeris.Beijing, nil)
	require.NoError(t, err)
	require.Equal(t, 2025, next.Year())
	require.Equal(t, "正月一日", next.DateString())
	require.Equal(t, later, c.Time())

	same, err := c.Rebuild(at(t, "2024-10-01T12:00"), ephemeris.Beijing, nil)
	require.NoError(t, err)
	require.Equal(t, 2024, same.Year())
	require.Equal(t, later, c.Time())

	apparent := newCalendar(t, later, &beijing, calendar.Options{ApparentTime: true})
	elsewhere := datetime.Place{Latitude: 31.2, Longitude: 121.5}
	require.False(t, apparent.Update(later.Add(time.Hour), ephemeris.Beijing, &elsewhere))
	require.True(t, apparent.Update(later.Add(time.Hour), ephemeris.Beijing, &beijing))
}

func TestApparentTime(t *testing.T) {
	when := at(t, "2024-06-10T12:00")
	midnight := time.Date(2024, 6, 10, 0, 0, 0, 0, ephemeris.Beijing)

	// Without a place apparent time has no effect.
	c := newCalendar(t, when, nil, calendar.Options{ApparentTime: true})
	if got, want := c.StartOfDay(), midnight; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	c = newCalendar(t, when, &beijing, calendar.Options{})
	if got, want := c.StartOfDay(), midnight; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	c = newCalendar(t, when, &beijing, calendar.Options{ApparentTime: true})
	start := c.StartOfDay()
	// Beijing is about 14 minutes west of the zone meridian and the
	// equation of time is close to zero.
	if d := start.Sub(midnight); d < 10*time.Minute || d > 18*time.Minute {
		t.Errorf("unexpected start of day: %v", start)
	}
	if d := c.StartOfNextDay().Sub(start); (d - 24*time.Hour).Abs() > time.Minute {
		t.Errorf("unexpected day length: %v", d)
	}
	ev := c.SunMoonPositions()
	for _, i := range []int{0, 2, 4} {
		if ev.Solar[i] != nil {
			t.Errorf("%v: should be nil", i)
		}
	}
	for _, i := range []int{1, 3} {
		if ev.Solar[i] == nil {
			t.Errorf("%v: should not be nil", i)
		}
	}
	hours := c.HourTicks()
	if got, want := len(hours.MajorTicks), 24; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNoPlace(t *testing.T) {
	c := newCalendar(t, at(t, "2024-06-10T12:00"), nil, calendar.Options{})
	for _, ev := range []calendar.DailyEvent{c.SunMoonPositions(), c.SunMoonSubhourPositions()} {
		if got, want := len(ev.Solar), 5; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := len(ev.Lunar), 6; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		for _, p := range append(ev.Solar, ev.Lunar...) {
			if p != nil {
				t.Errorf("unexpected event: %v", *p)
			}
		}
	}
}

func TestTimeString(t *testing.T) {
	for _, tc := range []struct {
		when, want string
	}{
		{"2024-02-10T12:00", "午正初刻"},
		{"2024-02-10T12:30", "午正二刻"},
		{"2024-02-10T12:32", "午正二刻一"},
		{"2024-02-10T11:00", "午初初刻"},
		{"2024-02-10T00:10", "子正初刻四"},
		{"2024-02-10T23:30", "子初二刻五"},
	} {
		c := newCalendar(t, at(t, tc.when), nil, calendar.Options{})
		if got := c.TimeString(); got != tc.want {
			t.Errorf("%v: got %v, want %v", tc.when, got, tc.want)
		}
	}
}

func TestTicks(t *testing.T) {
	c := newCalendar(t, at(t, "2024-02-10T12:30"), nil, calendar.Options{})

	months := c.MonthTicks()
	if got := len(months.MajorTicks); got < 12 || got > 14 {
		t.Errorf("unexpected number of months: %v", got)
	}
	if got := len(months.MinorTicks); got < 12 || got > 13 {
		t.Errorf("unexpected number of full moons: %v", got)
	}

	days := c.DayTicks()
	if got, want := len(days.MajorTicks), c.MonthLengthInWholeDays(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := days.MajorTickNames[0].Name, "一"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !days.MajorTickNames[0].Active || days.MajorTickNames[1].Active {
		t.Errorf("only the first day should be active: %v", days.MajorTickNames[:2])
	}

	hours := c.HourTicks()
	if got, want := len(hours.MajorTicks), 24; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(hours.MinorTicks), 96; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var names []string
	for _, n := range hours.MajorTickNames {
		names = append(names, n.Name)
	}
	if got, want := strings.Join(names, ""), "子丑寅卯辰巳午未申酉戌亥"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	subhours := c.SubhourTicks()
	if got, want := len(subhours.MajorTicks), 10; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := subhours.MajorTickNames[0].Name, "午初"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := c.SubhourInHour(), 0.75; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for i, tk := range []calendar.Ticks{months, days, hours, subhours} {
		for _, s := range [][]float64{tk.MajorTicks, tk.MinorTicks} {
			checkPositions(t, i, s)
		}
		if len(tk.MajorTicks) > 0 && tk.MajorTicks[0] != 0 {
			t.Errorf("%v: first major tick should be at 0: %v", i, tk.MajorTicks)
		}
	}
}

func checkPositions(t *testing.T, label any, positions []float64) {
	t.Helper()
	for j, p := range positions {
		if p < 0 || p >= 1 {
			t.Errorf("%v: %v: out of range: %v", label, j, p)
		}
		if j > 0 && positions[j-1] >= p {
			t.Errorf("%v: %v: out of order: %v", label, j, positions)
		}
	}
}

func TestPositionsInRange(t *testing.T) {
	start := at(t, "2024-01-01T00:00")
	for _, opts := range []calendar.Options{
		{},
		{GlobalMonth: true},
		{ApparentTime: true},
		{GlobalMonth: true, ApparentTime: true, Compact: true},
	} {
		for i := range 60 {
			when := start.Add(time.Duration(i) * 149 * time.Hour)
			c := newCalendar(t, when, &beijing, opts)
			for _, p := range []float64{c.CurrentDayInYear(), c.CurrentDayInMonth(), c.CurrentHourInDay(), c.SubhourInHour()} {
				if p < 0 || p >= 1 {
					t.Errorf("%v: %v: out of range: %v", opts, when, p)
				}
			}
			for _, ev := range []calendar.CelestialEvent{c.EventInMonth(), c.EventInDay(), c.EventInHour()} {
				for _, s := range [][]float64{ev.Eclipse, ev.FullMoon, ev.EvenSolarTerm, ev.OddSolarTerm} {
					checkPositions(t, when, s)
				}
			}
			for _, ev := range []calendar.DailyEvent{c.SunMoonPositions(), c.SunMoonSubhourPositions()} {
				for _, p := range append(ev.Solar, ev.Lunar...) {
					if p != nil && (*p < 0 || *p >= 1) {
						t.Errorf("%v: %v: out of range: %v", opts, when, *p)
					}
				}
			}
			if got := c.Day(); got < 1 || got > c.MonthLengthInWholeDays() {
				t.Errorf("%v: %v: day %v out of range", opts, when, got)
			}
			for _, p := range c.PlanetPositions() {
				if p < 0 || p >= 1 {
					t.Errorf("%v: %v: out of range: %v", opts, when, p)
				}
			}
		}
	}
}

func TestEvents(t *testing.T) {
	c := newCalendar(t, at(t, "2024-02-10T12:00"), nil, calendar.Options{})
	if got, want := len(c.EvenSolarTerms()), 12; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(c.OddSolarTerms()), 12; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	month := c.EventInMonth()
	if got, want := len(month.Eclipse), 1; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got := month.Eclipse[0]; got <= 0 || got >= 1.0/29 {
		t.Errorf("new moon should be on the first day: %v", got)
	}
	if got, want := len(month.FullMoon), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// The new moon of 2024-02-10 occurs at 06:59.
	day := c.EventInDay()
	if got, want := len(day.Eclipse), 1; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got := day.Eclipse[0]; got < 0.28 || got > 0.3 {
		t.Errorf("unexpected new moon position: %v", got)
	}

	global := newCalendar(t, at(t, "2024-02-10T12:00"), nil, calendar.Options{GlobalMonth: true})
	if got := global.EventInMonth().Eclipse; got != nil {
		t.Errorf("unexpected new moons: %v", got)
	}
	if got, want := len(global.PlanetPositions()), 6; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
