// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"math"
	"time"

	"cloudeng.io/lunisolar/astronomy"
	"cloudeng.io/lunisolar/intraday"
	"cloudeng.io/lunisolar/timescale"
)

// CelestialEvent contains the positions of the new moons, full moons and
// solar terms that fall within a span, as fractions in [0, 1).
type CelestialEvent struct {
	Eclipse       []float64 `yaml:"eclipse,omitempty"`
	FullMoon      []float64 `yaml:"full_moon,omitempty"`
	OddSolarTerm  []float64 `yaml:"odd_solar_term,omitempty"`
	EvenSolarTerm []float64 `yaml:"even_solar_term,omitempty"`
}

// DailyEvent contains the positions of the intraday solar and lunar
// events, in the order returned by intraday.Solar and intraday.Lunar.
// An entry is nil if the event does not occur within the span.
type DailyEvent struct {
	Solar []*float64
	Lunar []*float64
}

func (c *Calendar) eventsIn(start, end time.Time, eclipses bool) CelestialEvent {
	var ev CelestialEvent
	if eclipses {
		ev.Eclipse = within(fractions(start, end, c.eclipses), 0, 1, true)
	}
	ev.FullMoon = within(fractions(start, end, c.fullMoons), 0, 1, true)
	ev.EvenSolarTerm = within(fractions(start, end, c.evenTerms), 0, 1, true)
	ev.OddSolarTerm = within(fractions(start, end, c.oddTerms), 0, 1, true)
	return ev
}

// EvenSolarTerms returns the positions of the principal solar terms
// within the year, the Winter Solstice that starts it is at 0.
func (c *Calendar) EvenSolarTerms() []float64 {
	return append([]float64{0}, within(fractions(c.terms[0], c.terms[24], c.evenTerms), 0, 1, false)...)
}

// OddSolarTerms returns the positions of the remaining solar terms
// within the year.
func (c *Calendar) OddSolarTerms() []float64 {
	return within(fractions(c.terms[0], c.terms[24], c.oddTerms), 0, 1, false)
}

// EventInMonth returns the events within the current month. New moons
// are omitted when months start at the new moon itself.
func (c *Calendar) EventInMonth() CelestialEvent {
	start, end := c.monthSpan()
	return c.eventsIn(start, end, !c.opts.GlobalMonth)
}

// EventInDay returns the events within the current day.
func (c *Calendar) EventInDay() CelestialEvent {
	return c.eventsIn(c.StartOfDay(), c.StartOfNextDay(), true)
}

// EventInHour returns the events within the current double hour.
func (c *Calendar) EventInHour() CelestialEvent {
	start, end := c.hourSpan()
	return c.eventsIn(start, end, true)
}

var _ intraday.Day = (*Calendar)(nil)

func mapEvents(events []*time.Time, start, end time.Time) []*float64 {
	out := make([]*float64, len(events))
	for i, ev := range events {
		if ev == nil || ev.Before(start) || !ev.Before(end) {
			continue
		}
		f := fraction(start, *ev, end)
		out[i] = &f
	}
	return out
}

func (c *Calendar) dailyEvents(start, end time.Time) DailyEvent {
	if c.place == nil {
		return DailyEvent{
			Solar: make([]*float64, 5),
			Lunar: make([]*float64, 6),
		}
	}
	ev := DailyEvent{
		Solar: mapEvents(intraday.Solar(c, *c.place), start, end),
		Lunar: mapEvents(intraday.Lunar(c, *c.place), start, end),
	}
	if c.apparent() {
		// Midnight and noon coincide with the day's own boundaries.
		ev.Solar[intraday.PreviousMidnight] = nil
		ev.Solar[intraday.Noon] = nil
		ev.Solar[intraday.NextMidnight] = nil
	}
	return ev
}

// SunMoonPositions returns the positions of sunrise, sunset, moonrise,
// moonset and the related events within the current day. All entries
// are nil if the calendar has no place.
func (c *Calendar) SunMoonPositions() DailyEvent {
	return c.dailyEvents(c.StartOfDay(), c.StartOfNextDay())
}

// SunMoonSubhourPositions is like SunMoonPositions but for the current
// double hour.
func (c *Calendar) SunMoonSubhourPositions() DailyEvent {
	start, end := c.hourSpan()
	return c.dailyEvents(start, end)
}

// PlanetPositions returns the positions of Mercury, Venus, Mars, Jupiter,
// Saturn and the Moon as fractions of a circle, rotated so that an
// ecliptic longitude of 270°, the Winter Solstice, is at 0.
func (c *Calendar) PlanetPositions() []float64 {
	d := timescale.DaysSinceJ2000(c.t)
	longitudes := append(astronomy.PlanetPositions(d), astronomy.MoonEclipticLongitude(d))
	out := make([]float64, len(longitudes))
	for i, l := range longitudes {
		out[i] = positiveMod(l/(2*math.Pi) + 0.25)
	}
	return out
}
