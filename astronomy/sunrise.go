// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"time"

	"cloudeng.io/lunisolar/datetime"
	"github.com/nathan-osman/go-sunrise"
)

// SunRiseAndSet returns the time of sunrise and sunset for the specified
// date and place. The returned times are in UTC.
func SunRiseAndSet(date datetime.CalendarDate, place datetime.Place) (rise, set time.Time) {
	rise, set = sunrise.SunriseSunset(
		place.Latitude, place.Longitude,
		date.Year, time.Month(date.Month), date.Day)
	return
}

// SolarNoon returns the midpoint between sunrise and sunset as computed
// by SunRiseAndSet, it is the zero time if the Sun does not rise or set.
func SolarNoon(date datetime.CalendarDate, place datetime.Place) time.Time {
	rise, set := SunRiseAndSet(date, place)
	if rise.IsZero() || set.IsZero() {
		return time.Time{}
	}
	return rise.Add(set.Sub(rise) / 2)
}
