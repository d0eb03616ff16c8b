// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package timescale provides conversions between civil time, Julian days
// and the uniform Terrestrial Time (TT) scale used by the ephemeris and
// position models.
package timescale

import (
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
)

const (
	// J2000 is the Julian day of the J2000.0 epoch, 2000-01-01 12:00 TT.
	J2000 = 2451545.0
	// SecondsPerDay is the number of SI seconds in a day.
	SecondsPerDay = 86400.0
	// DaysPerCentury is the number of days in a Julian century.
	DaysPerCentury = 36525.0
)

// JulianDay returns the Julian day at 00:00 UT of the specified proleptic
// Gregorian date. January and February are treated as months 13 and 14 of
// the preceding year.
func JulianDay(year, month, day int) float64 {
	if month <= 2 {
		month += 12
		year--
	}
	b := year/400 - year/100 + year/4
	return float64(365*year-679004+b) + math.Floor(30.6001*float64(month+1)) + float64(day) + 2400000.5
}

// DeltaTForJulianDay returns ΔT, in days, for the year that starts
// at or near jd. The value is evaluated half a year after jd and is used
// as a constant for the whole year.
func DeltaTForJulianDay(jd float64) float64 {
	return DeltaT((jd - J2000 + 365.25*0.5) / DaysPerCentury)
}

// DaysSinceJ2000 returns the number of TT days between J2000.0 and t.
// ΔT is evaluated once for t's UTC date.
func DaysSinceJ2000(t time.Time) float64 {
	u := t.UTC()
	y, m, d := u.Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	jd := JulianDay(y, int(m), d)
	days := jd + DeltaTForJulianDay(jd) - (J2000 - 0.5)
	return days + u.Sub(noon).Seconds()/SecondsPerDay
}

// JDE returns the Julian ephemeris day (TT) for the number of days
// since J2000.0 as returned by DaysSinceJ2000.
func JDE(daysSinceJ2000 float64) float64 {
	return J2000 + daysSinceJ2000
}

// Centuries returns the number of Julian centuries since J2000.0.
func Centuries(daysSinceJ2000 float64) float64 {
	return daysSinceJ2000 / DaysPerCentury
}

// Days returns the duration of the specified, possibly fractional,
// number of days.
func Days(days float64) time.Duration {
	return time.Duration(math.Round(days * SecondsPerDay * float64(time.Second)))
}

// Seconds returns the duration of the specified, possibly fractional,
// number of seconds.
func Seconds(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}

// JulianDayFromTime returns the Julian day (UT) for t.
func JulianDayFromTime(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// TimeFromJulianDay returns the UTC time for the Julian day (UT) jd.
func TimeFromJulianDay(jd float64) time.Time {
	return julian.JDToTime(jd).UTC()
}

// TimeFromJDE returns the UTC time for the Julian ephemeris day (TT) jde
// by subtracting ΔT.
func TimeFromJDE(jde float64) time.Time {
	return TimeFromJulianDay(jde - DeltaT((jde-J2000)/DaysPerCentury))
}
