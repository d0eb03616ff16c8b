// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar builds the traditional Chinese lunisolar calendar for
// the year containing a given instant. Months run from new moon to new
// moon and are named by the principal solar terms that they contain; a
// month that contains no principal term, in a year with thirteen new
// moons, is a leap month.
//
// A Calendar also locates the instant within the year, month, day and
// double hour and provides the positions of the boundaries and celestial
// events within each of those spans as fractions in [0, 1).
package calendar

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/lunisolar/astronomy"
	"cloudeng.io/lunisolar/datetime"
	"cloudeng.io/lunisolar/ephemeris"
)

// ErrNoTimeZone is returned when a nil timezone is supplied.
var ErrNoTimeZone = errors.New("no timezone specified")

// Options control how month and day boundaries are determined.
type Options struct {
	// GlobalMonth places month boundaries at the instant of the new moon
	// rather than at the start of the day on which it occurs.
	GlobalMonth bool
	// ApparentTime starts each day at local apparent midnight rather
	// than civil midnight. It has no effect unless a place is supplied.
	ApparentTime bool
	// Compact selects the single character month and day names.
	Compact bool
}

// Calendar represents the lunisolar year that contains a specific
// instant. A Calendar is not safe for concurrent use.
type Calendar struct {
	opts  Options
	t     time.Time
	loc   *time.Location
	place *datetime.Place

	year int
	// terms contains 25 solar terms, from the Winter Solstice that
	// starts the year to the one that ends it.
	terms      []time.Time
	yearLength time.Duration
	// evenTerms and oddTerms include the final two terms of the
	// previous year and the lookahead into the next.
	evenTerms []time.Time
	oddTerms  []time.Time
	eclipses  []time.Time
	fullMoons []time.Time

	monthNames     []string
	monthNamesFull []string
	// monthsInYear counts the month boundaries within the year.
	monthsInYear int

	month        int
	preciseMonth int
	day          int
}

// New returns the Calendar for the year containing t in loc. place is
// optional and is only used for apparent time and intraday events.
func New(t time.Time, loc *time.Location, place *datetime.Place, opts Options) (*Calendar, error) {
	if loc == nil {
		return nil, ErrNoTimeZone
	}
	c := &Calendar{
		opts:  opts,
		t:     t,
		loc:   loc,
		place: clonePlace(place),
	}
	if err := c.build(); err != nil {
		return nil, err
	}
	c.updateDate()
	return c, nil
}

func clonePlace(place *datetime.Place) *datetime.Place {
	if place == nil {
		return nil
	}
	p := *place
	return &p
}

func every[T any](s []T, from, step int) []T {
	var out []T
	for i := from; i < len(s); i += step {
		out = append(out, s[i])
	}
	return out
}

// solarTerms returns the solar terms of the calendar year containing t
// followed by the first five of the next year.
func solarTerms(t time.Time, loc *time.Location) (int, []time.Time, error) {
	year := t.In(loc).Year()
	next, err := ephemeris.SolarTerms(year + 1)
	if err != nil {
		return 0, nil, err
	}
	if !t.Before(next[0]) {
		year++
		following, err := ephemeris.SolarTerms(year + 1)
		if err != nil {
			return 0, nil, err
		}
		return year, append(next, following[:5]...), nil
	}
	current, err := ephemeris.SolarTerms(year)
	if err != nil {
		return 0, nil, err
	}
	return year, append(current, next[:5]...), nil
}

func moonPhases(year int) (eclipses, fullMoons []time.Time, err error) {
	var all []time.Time
	var first int
	for i, y := range []int{year - 1, year, year + 1} {
		phases, err := ephemeris.Phases(y)
		if err != nil {
			return nil, nil, err
		}
		if i == 0 && phases.FirstIsFullMoon {
			first = 1
		}
		all = append(all, phases.Events...)
	}
	return every(all, first, 2), every(all, 1-first, 2), nil
}

func (c *Calendar) build() error {
	year, terms, err := solarTerms(c.t, c.loc)
	if err != nil {
		return err
	}
	previous, err := ephemeris.SolarTerms(year - 1)
	if err != nil {
		return err
	}
	eclipses, fullMoons, err := moonPhases(year)
	if err != nil {
		return err
	}

	// Keep the new moons from the one preceding the first solar term to
	// the one following the last.
	start, end := -1, -1
	for i, e := range eclipses {
		b := c.monthBoundary(e)
		if start < 0 && !b.Before(terms[0]) {
			start = i - 1
		}
		if end < 0 && b.After(terms[24]) {
			end = i
		}
	}
	if start < 0 || end < 0 || end+2 > len(eclipses) {
		return fmt.Errorf("%v: insufficient moon phases to span the year", year)
	}
	eclipses = eclipses[start : end+2]
	first, last := eclipses[0], eclipses[len(eclipses)-1]
	fullMoons = slices.DeleteFunc(fullMoons, func(t time.Time) bool {
		return !t.After(first) || !t.Before(last)
	})

	// Count the principal terms within each month.
	even := every(terms, 0, 2)
	var termsInMonth []int
	months := map[int64]struct{}{}
	for i, j, count := 0, 0, 0; i+1 < len(eclipses) && j < len(even); {
		this, next := c.monthBoundary(eclipses[i]), c.monthBoundary(eclipses[i+1])
		if !this.After(even[j]) && next.After(even[j]) {
			count++
			j++
		} else {
			termsInMonth = append(termsInMonth, count)
			count = 0
			i++
		}
		if !this.Before(terms[0]) && this.Before(terms[24]) {
			months[this.UnixNano()] = struct{}{}
		}
	}

	var names, compact []string
	if len(months) == 12 {
		names = slices.Concat(monthNames, monthNames)[:len(eclipses)]
		compact = slices.Concat(monthNamesCompact, monthNamesCompact)[:len(eclipses)]
	} else {
		leap := 0
		for i, n := range termsInMonth {
			label := ""
			if n == 0 && leap == 0 {
				leap = 1
				label = LeapLabel
			}
			idx := modulo(i-leap, 12)
			name := label + monthNames[idx]
			if alt, ok := alternativeNames[name]; ok {
				name = alt
			}
			names = append(names, name)
			compact = append(compact, label+monthNamesCompact[idx])
		}
	}

	c.year = year
	c.terms = terms[:25]
	c.yearLength = terms[24].Sub(terms[0])
	c.evenTerms = append([]time.Time{previous[22]}, even...)
	c.oddTerms = append([]time.Time{previous[23]}, every(terms, 1, 2)...)
	c.eclipses = eclipses
	c.fullMoons = fullMoons
	c.monthsInYear = len(months)
	c.monthNamesFull = names
	c.monthNames = names
	if c.opts.Compact {
		c.monthNames = compact
	}
	return nil
}

// updateDate locates the month and day containing the calendar's time.
func (c *Calendar) updateDate() {
	today := c.startOfDay(c.t)
	i := 0
	for ; i < len(c.eclipses)-1; i++ {
		if c.startOfDay(c.eclipses[i]).After(today) {
			break
		}
	}
	j := 0
	for ; j < len(c.eclipses)-1; j++ {
		if c.eclipses[j].After(c.t) {
			break
		}
	}
	monthStart := c.startOfDay(c.eclipses[i-1])
	c.month = i - 1
	c.preciseMonth = j - 1
	c.day = int(math.Round(today.Sub(monthStart).Hours() / 24))
}

// Update moves the calendar to t without recomputing the year. It
// returns false, leaving the calendar unchanged, if t is not within the
// calendar's year or the timezone differs, in which case a new Calendar
// must be created with New. With apparent time in effect the place must
// also be unchanged.
func (c *Calendar) Update(t time.Time, loc *time.Location, place *datetime.Place) bool {
	if loc == nil || loc.String() != c.loc.String() {
		return false
	}
	if c.opts.ApparentTime && !samePlace(c.place, place) {
		return false
	}
	year := t.In(c.loc).Year()
	if !(year == c.year && c.terms[24].After(t)) && !(year == c.year-1 && !c.terms[0].After(t)) {
		return false
	}
	c.t = t
	c.place = clonePlace(place)
	c.updateDate()
	return true
}

// Rebuild returns a Calendar for t, reusing the receiver's year when
// possible. The receiver is never modified.
func (c *Calendar) Rebuild(t time.Time, loc *time.Location, place *datetime.Place) (*Calendar, error) {
	updated := *c
	if updated.Update(t, loc, place) {
		return &updated, nil
	}
	return New(t, loc, place, c.opts)
}

func samePlace(a, b *datetime.Place) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (c *Calendar) startOfDay(t time.Time) time.Time {
	return astronomy.StartOfDay(t, c.loc, c.place, c.opts.ApparentTime)
}

// monthBoundary returns the instant at which the month starting with the
// new moon at e begins.
func (c *Calendar) monthBoundary(e time.Time) time.Time {
	if c.opts.GlobalMonth {
		return e
	}
	return c.startOfDay(e)
}

// apparent returns true if days start at apparent midnight.
func (c *Calendar) apparent() bool {
	return c.opts.ApparentTime && c.place != nil
}

// fraction returns the position of t within [start, end).
func fraction(start, t, end time.Time) float64 {
	return float64(t.Sub(start)) / float64(end.Sub(start))
}

// Year returns the calendar year, the civil year in which most of it falls.
func (c *Calendar) Year() int {
	return c.year
}

// Month returns the 0-based index of the current month, the first month
// is the one containing the Winter Solstice at the start of the year.
func (c *Calendar) Month() int {
	return c.month
}

// PreciseMonth returns the index of the month when month boundaries
// are placed at the instant of the new moon, it is the same as Month
// otherwise.
func (c *Calendar) PreciseMonth() int {
	if c.opts.GlobalMonth {
		return c.preciseMonth
	}
	return c.month
}

// Day returns the 1-based day of the month.
func (c *Calendar) Day() int {
	return c.day + 1
}

// MonthName returns the name of the current month.
func (c *Calendar) MonthName() string {
	return c.monthNamesFull[c.month]
}

// MonthNames returns the names of all of the months in the year.
func (c *Calendar) MonthNames() []string {
	return slices.Clone(c.monthNamesFull)
}

// MonthsInYear returns the number of months that start between the
// Winter Solstice that starts the year and the one that ends it, it is
// 13 for a year with a leap month and 12 otherwise.
func (c *Calendar) MonthsInYear() int {
	return c.monthsInYear
}

// LeapMonths returns the number of months in MonthNames that are leap
// months.
func (c *Calendar) LeapMonths() int {
	n := 0
	for _, name := range c.monthNamesFull {
		if strings.HasPrefix(name, LeapLabel) {
			n++
		}
	}
	return n
}

// IsLeapMonth returns true if the current month is a leap month.
func (c *Calendar) IsLeapMonth() bool {
	return strings.HasPrefix(c.MonthName(), LeapLabel)
}

// MonthLengthInWholeDays returns the number of days in the current month.
func (c *Calendar) MonthLengthInWholeDays() int {
	m := c.PreciseMonth()
	start := c.startOfDay(c.eclipses[m])
	end := c.startOfDay(c.eclipses[m+1])
	return int(math.Round(end.Sub(start).Hours() / 24))
}

// SolarTerms returns the 25 solar terms that bound the year.
func (c *Calendar) SolarTerms() []time.Time {
	return slices.Clone(c.terms)
}

// NewMoons returns the new moons that bound the months of the year.
func (c *Calendar) NewMoons() []time.Time {
	return slices.Clone(c.eclipses)
}

// FullMoons returns the full moons that occur within the year.
func (c *Calendar) FullMoons() []time.Time {
	return slices.Clone(c.fullMoons)
}

// Time returns the instant that the calendar represents.
func (c *Calendar) Time() time.Time {
	return c.t
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Place returns the calendar's geographic location, if any.
func (c *Calendar) Place() *datetime.Place {
	return clonePlace(c.place)
}

// Options returns the options the calendar was created with.
func (c *Calendar) Options() Options {
	return c.opts
}

// StartOfDay returns the start of the current day.
func (c *Calendar) StartOfDay() time.Time {
	return c.startOfDay(c.t)
}

// StartOfNextDay returns the start of the following day.
func (c *Calendar) StartOfNextDay() time.Time {
	return astronomy.StartOfNextDay(c.t, c.loc, c.place, c.opts.ApparentTime)
}

// SunPosition returns the fraction of the year, measured in solar
// longitude from the Winter Solstice, that has elapsed at t.
func (c *Calendar) SunPosition(t time.Time) float64 {
	return astronomy.SunPosition(c.terms, t)
}

// CurrentDayInYear returns the fraction of the year, in time, that has
// elapsed.
func (c *Calendar) CurrentDayInYear() float64 {
	return fraction(c.terms[0], c.t, c.terms[24])
}

// monthSpan returns the start and end of the current month.
func (c *Calendar) monthSpan() (start, end time.Time) {
	if c.opts.GlobalMonth {
		return c.eclipses[c.preciseMonth], c.eclipses[c.preciseMonth+1]
	}
	return c.startOfDay(c.eclipses[c.month]), c.startOfDay(c.eclipses[c.month+1])
}

// CurrentDayInMonth returns the fraction of the month that has elapsed.
func (c *Calendar) CurrentDayInMonth() float64 {
	start, end := c.monthSpan()
	return fraction(start, c.t, end)
}

// CurrentHourInDay returns the fraction of the day that has elapsed.
func (c *Calendar) CurrentHourInDay() float64 {
	return fraction(c.StartOfDay(), c.t, c.StartOfNextDay())
}

// SubhourInHour returns the fraction of the double hour that has elapsed.
func (c *Calendar) SubhourInHour() float64 {
	start, end := c.hourSpan()
	return fraction(start, c.t, end)
}
