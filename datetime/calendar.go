// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datetime provides the civil date and geographic place types
// used by the lunisolar calendar packages.
package datetime

import (
	"fmt"
	"time"
)

// Month as an int.
type Month time.Month

// CalendarDate represents a civil date with a year, month and day.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// NewCalendarDate returns a CalendarDate for the specified year, month and day.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// CalendarDateFromTime returns the civil date of t in t's location.
func CalendarDateFromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: Month(m), Day: d}
}

// At returns the time.Time for the date and time of day in the specified
// location. Out of range values, such as an hour of 24, are normalized
// by time.Date.
func (cd CalendarDate) At(hour, minute, second int, loc *time.Location) time.Time {
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, hour, minute, second, 0, loc)
}

// AddDays returns the date n days after cd, n may be negative.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDateFromTime(time.Date(cd.Year, time.Month(cd.Month), cd.Day+n, 12, 0, 0, 0, time.UTC))
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}
