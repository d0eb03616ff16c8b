// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"math"
	"slices"
	"time"

	"cloudeng.io/lunisolar/datetime"
)

// TickName is a label placed at a position within a ring of ticks.
type TickName struct {
	Position float64 `yaml:"position"`
	Name     string  `yaml:"name"`
	// Active is true if the labelled span has started.
	Active bool `yaml:"active"`
}

// Ticks contains the positions, as fractions in [0, 1), of the major and
// minor divisions of a span together with the labels for the major ones.
type Ticks struct {
	MajorTicks     []float64  `yaml:"major_ticks"`
	MajorTickNames []TickName `yaml:"major_tick_names"`
	MinorTicks     []float64  `yaml:"minor_ticks,omitempty"`
}

const (
	minNameLength        = 0.006
	minNameLengthCompact = 0.009
	minSubhourGap        = 0.03
	minSubhourGapCompact = 0.045
	// quarter is one 刻, a hundredth of a day.
	quarter = 864 * time.Second
	// subQuarter is a sixth of a 刻.
	subQuarter = 144 * time.Second
)

func (c *Calendar) minNameLength() float64 {
	if c.opts.Compact {
		return minNameLengthCompact
	}
	return minNameLength
}

func (c *Calendar) minSubhourGap() float64 {
	if c.opts.Compact {
		return minSubhourGapCompact
	}
	return minSubhourGap
}

// centredNames places each name midway between successive divides, the
// final name occupies the span from the last divide to 1. A name is
// omitted when its span is too short to display it.
func centredNames(divides []float64, names []string, minLength, current float64) []TickName {
	var out []TickName
	previous := 0.0
	add := func(end float64, name string) {
		position := (end + previous) / 2
		if position-previous > minLength*float64(nameLength(name)) {
			out = append(out, TickName{
				Position: position,
				Name:     name,
				Active:   previous <= current,
			})
		}
		previous = end
	}
	for i, d := range divides {
		add(d, nameAt(names, i))
	}
	add(1, nameAt(names, len(divides)))
	return out
}

func within(positions []float64, lo, hi float64, includeLo bool) []float64 {
	out := []float64{}
	for _, p := range positions {
		if (p > lo || (includeLo && p == lo)) && p < hi {
			out = append(out, p)
		}
	}
	return out
}

func fractions(start, end time.Time, times []time.Time) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = fraction(start, t, end)
	}
	return out
}

// MonthTicks returns the month boundaries within the year with the new
// moons as major ticks and the full moons as minor ones.
func (c *Calendar) MonthTicks() Ticks {
	start, end := c.terms[0], c.terms[24]
	boundaries := make([]time.Time, len(c.eclipses))
	for i, e := range c.eclipses {
		boundaries[i] = c.monthBoundary(e)
	}
	divides := within(fractions(start, end, boundaries), 0, 1, false)
	names := make([]string, len(divides)+1)
	for i := range names {
		names[i] = c.monthNames[i%len(c.monthNames)]
	}
	return Ticks{
		MajorTicks:     append([]float64{0}, divides...),
		MajorTickNames: centredNames(divides, names, c.minNameLength(), c.CurrentDayInYear()),
		MinorTicks:     within(fractions(start, end, c.fullMoons), 0, 1, false),
	}
}

// DayTicks returns the day boundaries within the current month.
func (c *Calendar) DayTicks() Ticks {
	start, end := c.monthSpan()
	date := start
	if c.opts.GlobalMonth {
		date = c.startOfDay(start)
	}
	var days []time.Time
	for date.Before(end) {
		date = c.nextDay(date)
		days = append(days, date)
	}
	divides := within(fractions(start, end, days), 0, 1, false)

	all := dayNames
	if c.opts.Compact {
		all = dayNamesCompact
	}
	n := min(c.MonthLengthInWholeDays(), len(all))
	names := append(slices.Clone(all[:n]), all[0])
	return Ticks{
		MajorTicks:     append([]float64{0}, divides...),
		MajorTickNames: centredNames(divides, names, c.minNameLength(), c.CurrentDayInMonth()),
	}
}

// nextDay returns the start of the day following the one that starts
// at date.
func (c *Calendar) nextDay(date time.Time) time.Time {
	if c.apparent() {
		return c.startOfDay(date.Add(36 * time.Hour))
	}
	return datetime.CalendarDateFromTime(date.In(c.loc)).AddDays(1).At(0, 0, 0, c.loc)
}

// hours describes the single hours of the current day and the double
// hour that contains the calendar's time.
type hours struct {
	startOfDay, startOfNextDay time.Time
	divides                    []time.Time
	names                      []string
	start, end                 time.Time
}

// hourIndex returns the hour of the day, 0 to 23, that starts at t.
func (c *Calendar) hourIndex(sod, next, t time.Time) int {
	if c.apparent() {
		return int(math.Round(fraction(sod, t, next) * 24))
	}
	return t.In(c.loc).Hour()
}

func (c *Calendar) hours() hours {
	h := hours{
		startOfDay:     c.StartOfDay(),
		startOfNextDay: c.StartOfNextDay(),
	}
	dayLength := h.startOfNextDay.Sub(h.startOfDay)
	step := time.Hour
	if c.apparent() {
		step = dayLength / 24
	}
	for hour := h.startOfDay; hour.Before(h.startOfNextDay.Add(-time.Second)); hour = hour.Add(step) {
		h.divides = append(h.divides, hour)
		idx := c.hourIndex(h.startOfDay, h.startOfNextDay, hour)
		name := ""
		if idx%2 == 0 {
			name = terrestrialBranches[(idx/2)%12]
		}
		h.names = append(h.names, name)
		if idx%2 == 1 {
			if !hour.After(c.t) {
				h.start = hour
			} else if h.end.IsZero() {
				h.end = hour
			}
		}
	}
	if h.start.IsZero() {
		if c.apparent() {
			h.start = h.startOfDay.Add(-step)
		} else {
			hour := h.startOfDay.Add(-time.Hour)
			for hour.In(c.loc).Hour()%2 == 0 {
				hour = hour.Add(-time.Hour)
			}
			h.start = hour
		}
	}
	if h.end.IsZero() {
		if c.apparent() {
			h.end = h.startOfNextDay.Add(step)
		} else {
			hour := h.startOfNextDay.Add(time.Hour)
			for hour.In(c.loc).Hour()%2 == 0 {
				hour = hour.Add(time.Hour)
			}
			h.end = hour
		}
	}
	return h
}

// hourSpan returns the start and end of the current double hour.
func (c *Calendar) hourSpan() (start, end time.Time) {
	h := c.hours()
	return h.start, h.end
}

// HourTicks returns the hours of the current day as major ticks, with
// the double hours named, and the quarters (刻) as minor ticks.
func (c *Calendar) HourTicks() Ticks {
	h := c.hours()
	divides := fractions(h.startOfDay, h.startOfNextDay, h.divides)
	dayLength := h.startOfNextDay.Sub(h.startOfDay)

	const tolerance = 1e-9
	var quarters []float64
	for k := 0; ; k++ {
		q := float64(time.Duration(k)*quarter) / float64(dayLength)
		if q >= 1 {
			break
		}
		if !slices.ContainsFunc(divides, func(d float64) bool { return math.Abs(d-q) < tolerance }) {
			quarters = append(quarters, q)
		}
	}

	var names []TickName
	current := c.CurrentHourInDay()
	hourStart := 0.0
	for i, d := range divides {
		if h.names[i] == "" {
			hourStart = d
			continue
		}
		names = append(names, TickName{
			Position: d,
			Name:     h.names[i],
			Active:   hourStart <= current,
		})
	}
	return Ticks{
		MajorTicks:     divides,
		MajorTickNames: names,
		MinorTicks:     quarters,
	}
}

type subhours struct {
	ticks      Ticks
	timeString string
}

func positiveMod(x float64) float64 {
	return x - math.Floor(x)
}

func sortedUnique(s []float64) []float64 {
	slices.Sort(s)
	return slices.Compact(s)
}

func (c *Calendar) subhours() subhours {
	h := c.hours()
	span := func(t time.Time) float64 { return fraction(h.start, t, h.end) }
	step := time.Hour
	if c.apparent() {
		step = h.startOfNextDay.Sub(h.startOfDay) / 24
	}

	var out subhours
	var major []float64
	var majorNames []string
	currentHour := h.start
	for tick := h.start; tick.Before(h.end.Add(-time.Second)); tick = tick.Add(step) {
		major = append(major, span(tick))
		order := c.hourIndex(h.startOfDay, h.startOfNextDay, tick) + 1
		name := terrestrialBranches[(order/2)%12] + subHourNames[order%2]
		majorNames = append(majorNames, name)
		if !tick.After(c.t) {
			out.timeString = name
			currentHour = tick
		}
	}

	all := slices.Clone(major)
	origin := h.startOfDay.Add(-6 * quarter)
	quarterCount := 0
	currentQuarter := currentHour
	for tick := origin; tick.Before(h.end); tick = tick.Add(quarter) {
		if tick.After(h.start) {
			all = append(all, span(tick))
		}
		if tick.After(currentHour) && !tick.After(c.t) {
			currentQuarter = tick
			quarterCount++
		}
	}
	out.timeString += nameAt(quarterNumbers, quarterCount) + "刻"
	all = sortedUnique(all)

	current := c.SubhourInHour()
	gap := c.minSubhourGap()
	var names []TickName
	count, j := 1, 0
	for i, p := range all {
		if slices.Contains(major, p) {
			names = append(names, TickName{Position: p, Name: nameAt(majorNames, j), Active: p <= current})
			j++
			count = 1
			continue
		}
		prev := all[modulo(i-1, len(all))]
		next := all[(i+1)%len(all)]
		if min(positiveMod(p-prev), positiveMod(next-p)) > gap {
			names = append(names, TickName{Position: p, Name: nameAt(quarterNumbers, count), Active: p <= current})
		}
		count++
	}

	var minor []float64
	minorCount := 0
	for tick := origin; tick.Before(h.end); tick = tick.Add(subQuarter) {
		if tick.After(h.start) {
			if p := span(tick); !slices.Contains(all, p) {
				minor = append(minor, p)
			}
		}
		if tick.After(currentQuarter) && !tick.After(c.t) {
			minorCount++
		}
	}
	if minorCount > 0 {
		out.timeString += nameAt(quarterNumbers, minorCount)
	}
	out.ticks = Ticks{
		MajorTicks:     all,
		MajorTickNames: names,
		MinorTicks:     sortedUnique(minor),
	}
	return out
}

// SubhourTicks returns the divisions of the current double hour: its two
// single hours and the quarters (刻) as major ticks and sixths of a
// quarter as minor ticks.
func (c *Calendar) SubhourTicks() Ticks {
	return c.subhours().ticks
}
