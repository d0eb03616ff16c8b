// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/lunisolar/astronomy"
	"cloudeng.io/lunisolar/calendar"
	"cloudeng.io/lunisolar/datetime"
	"cloudeng.io/lunisolar/ephemeris"
	"cloudeng.io/lunisolar/intraday"
	"cloudeng.io/lunisolar/timescale"
	"gopkg.in/yaml.v3"
)

var stdout io.Writer = os.Stdout

func printYAML(v any) error {
	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

const timeFormat = "2006-01-02 15:04:05 MST"

type dateReport struct {
	Time         string  `yaml:"time"`
	JulianDay    float64 `yaml:"julian_day"`
	Year         int     `yaml:"year"`
	Month        string  `yaml:"month"`
	Day          int     `yaml:"day"`
	LeapMonth    bool    `yaml:"leap_month"`
	MonthLength  int     `yaml:"month_length"`
	Date         string  `yaml:"date"`
	DoubleHour   string  `yaml:"double_hour"`
	StartOfDay   string  `yaml:"start_of_day"`
	YearFraction float64 `yaml:"year_fraction"`
	SunPosition  float64 `yaml:"sun_position"`
}

func newDateReport(c *calendar.Calendar) dateReport {
	return dateReport{
		Time:         c.Time().Format(timeFormat),
		JulianDay:    timescale.JulianDayFromTime(c.Time()),
		Year:         c.Year(),
		Month:        c.MonthName(),
		Day:          c.Day(),
		LeapMonth:    c.IsLeapMonth(),
		MonthLength:  c.MonthLengthInWholeDays(),
		Date:         c.DateString(),
		DoubleHour:   c.TimeString(),
		StartOfDay:   c.StartOfDay().Format(timeFormat),
		YearFraction: c.CurrentDayInYear(),
		SunPosition:  c.SunPosition(c.Time()),
	}
}

func dateCmd(ctx context.Context, values any, _ []string) error {
	c, err := newCalendar(ctx, values.(*dateFlags))
	if err != nil {
		return err
	}
	return printYAML(newDateReport(c))
}

func yearAndLocation(ctx context.Context, fv *yearFlags) (int, *time.Location, error) {
	cfg, err := loadConfig(ctx, globalFlags.Config)
	if err != nil {
		return 0, nil, err
	}
	loc, err := resolveLocation(cfg, fv.Timezone)
	if err != nil {
		return 0, nil, err
	}
	year := fv.Year
	if year == 0 {
		year = time.Now().In(loc).Year()
	}
	return year, loc, nil
}

type termReport struct {
	Name string `yaml:"name"`
	Time string `yaml:"time"`
}

func termsCmd(ctx context.Context, values any, _ []string) error {
	year, loc, err := yearAndLocation(ctx, values.(*yearFlags))
	if err != nil {
		return err
	}
	terms, err := ephemeris.SolarTerms(year)
	if err != nil {
		return err
	}
	report := make([]termReport, len(terms))
	for i, t := range terms {
		report[i] = termReport{Name: ephemeris.SolarTermName(i), Time: t.In(loc).Format(timeFormat)}
	}
	return printYAML(report)
}

type phaseReport struct {
	Phase string `yaml:"phase"`
	Time  string `yaml:"time"`
}

func phasesCmd(ctx context.Context, values any, _ []string) error {
	year, loc, err := yearAndLocation(ctx, values.(*yearFlags))
	if err != nil {
		return err
	}
	phases, err := ephemeris.Phases(year)
	if err != nil {
		return err
	}
	report := make([]phaseReport, len(phases.Events))
	for i, t := range phases.Events {
		name := "new moon"
		if (i%2 == 0) == phases.FirstIsFullMoon {
			name = "full moon"
		}
		report[i] = phaseReport{Phase: name, Time: t.In(loc).Format(timeFormat)}
	}
	return printYAML(report)
}

var (
	solarEventNames = []string{"previous midnight", "sunrise", "noon", "sunset", "next midnight"}
	lunarEventNames = []string{"previous moonrise", "previous transit", "moonset", "moonrise", "next transit", "next moonset"}
)

type eventReport struct {
	Event    string   `yaml:"event"`
	Time     string   `yaml:"time,omitempty"`
	Position *float64 `yaml:"position,omitempty"`
}

func eventReports(names []string, times []*time.Time, positions []*float64, loc *time.Location) []eventReport {
	out := make([]eventReport, len(times))
	for i, t := range times {
		out[i] = eventReport{Event: names[i], Position: positions[i]}
		if t != nil {
			out[i].Time = t.In(loc).Format(timeFormat)
		}
	}
	return out
}

func eventsCmd(ctx context.Context, values any, _ []string) error {
	c, err := newCalendar(ctx, values.(*dateFlags))
	if err != nil {
		return err
	}
	place := c.Place()
	if place == nil {
		return fmt.Errorf("a place is required to compute intraday events")
	}
	positions := c.SunMoonPositions()
	return printYAML(map[string][]eventReport{
		"solar":     eventReports(solarEventNames, intraday.Solar(c, *place), positions.Solar, c.Location()),
		"lunar":     eventReports(lunarEventNames, intraday.Lunar(c, *place), positions.Lunar, c.Location()),
		"reference": referenceEvents(c, *place),
	})
}

// referenceEvents reports sunrise, solar noon and sunset as computed by the NOAA
// algorithm for comparison with the solar events.
func referenceEvents(c *calendar.Calendar, place datetime.Place) []eventReport {
	date := datetime.CalendarDateFromTime(c.StartOfDay().Add(12 * time.Hour).In(c.Location()))
	rise, set := astronomy.SunRiseAndSet(date, place)
	times := []*time.Time{nil, nil, nil}
	if !rise.IsZero() && !set.IsZero() {
		noon := astronomy.SolarNoon(date, place)
		times = []*time.Time{&rise, &noon, &set}
	}
	return eventReports([]string{"sunrise", "noon", "sunset"}, times, []*float64{nil, nil, nil}, c.Location())
}

type ticksReport struct {
	Date    dateReport                         `yaml:"date"`
	Month   calendar.Ticks                     `yaml:"month"`
	Day     calendar.Ticks                     `yaml:"day"`
	Hour    calendar.Ticks                     `yaml:"hour"`
	Subhour calendar.Ticks                     `yaml:"subhour"`
	Events  map[string]calendar.CelestialEvent `yaml:"events"`
	Planets []float64                          `yaml:"planets"`
}

func ticksCmd(ctx context.Context, values any, _ []string) error {
	c, err := newCalendar(ctx, values.(*dateFlags))
	if err != nil {
		return err
	}
	return printYAML(ticksReport{
		Date:    newDateReport(c),
		Month:   c.MonthTicks(),
		Day:     c.DayTicks(),
		Hour:    c.HourTicks(),
		Subhour: c.SubhourTicks(),
		Events: map[string]calendar.CelestialEvent{
			"month": c.EventInMonth(),
			"day":   c.EventInDay(),
			"hour":  c.EventInHour(),
		},
		Planets: c.PlanetPositions(),
	})
}
