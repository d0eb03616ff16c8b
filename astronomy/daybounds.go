// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"math"
	"time"

	"cloudeng.io/lunisolar/datetime"
	"cloudeng.io/lunisolar/timescale"
)

// StartOfDay returns the start of the day containing t. The day starts
// at civil midnight in loc unless apparent is set and a place is
// supplied, in which case it starts at local apparent midnight, the
// instant at which the Sun is on the lower meridian of place.
func StartOfDay(t time.Time, loc *time.Location, place *datetime.Place, apparent bool) time.Time {
	y, m, d := t.In(loc).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)
	if place == nil || !apparent {
		return today
	}
	start := ApparentMidnight(today, *place)
	if t.Before(start) {
		return ApparentMidnight(time.Date(y, m, d-1, 0, 0, 0, 0, loc), *place)
	}
	tomorrow := ApparentMidnight(time.Date(y, m, d+1, 0, 0, 0, 0, loc), *place)
	if !t.Before(tomorrow) {
		return tomorrow
	}
	return start
}

// StartOfNextDay returns the start of the day following the one that
// contains t.
func StartOfNextDay(t time.Time, loc *time.Location, place *datetime.Place, apparent bool) time.Time {
	start := StartOfDay(t, loc, place, apparent)
	return StartOfDay(start.Add(36*time.Hour), loc, place, apparent)
}

// ApparentMidnight converts the civil midnight, or any other civil
// time, to the corresponding local apparent solar time at place. The
// timezone offset is replaced by the longitude of place and the result
// is then corrected by the equation of time.
func ApparentMidnight(civil time.Time, place datetime.Place) time.Time {
	return MeanToApparent(LocalMeanTime(civil, place))
}

// LocalMeanTime returns the instant at which local mean time at place
// reads the same as the wall clock reading of civil.
func LocalMeanTime(civil time.Time, place datetime.Place) time.Time {
	_, offset := civil.Zone()
	return civil.Add(timescale.Seconds(float64(offset) - place.Longitude/360*timescale.SecondsPerDay))
}

// MeanToApparent adjusts a local mean time to the instant at which local
// apparent time has the same reading.
func MeanToApparent(t time.Time) time.Time {
	e := EquationOfTime(timescale.DaysSinceJ2000(t))
	return t.Add(-timescale.Days(e / (2 * math.Pi)))
}
