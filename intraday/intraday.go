// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package intraday computes the times of sunrise, sunset, solar noon and
// midnight and of moonrise, moonset and lunar transit for a single day.
package intraday

import (
	"math"
	"time"

	"cloudeng.io/lunisolar/astronomy"
	"cloudeng.io/lunisolar/datetime"
	"cloudeng.io/lunisolar/timescale"
)

// Day represents the day for which events are to be computed.
type Day interface {
	// Time returns the instant of interest within the day.
	Time() time.Time
	// Location returns the timezone of the day.
	Location() *time.Location
	// StartOfDay returns the start of the day.
	StartOfDay() time.Time
	// StartOfNextDay returns the start of the following day.
	StartOfNextDay() time.Time
	// SunPosition returns the fraction of the tropical year, starting
	// at the Winter Solstice, that has elapsed at t.
	SunPosition(t time.Time) float64
}

// Indices of the events returned by Solar.
const (
	PreviousMidnight = iota
	Sunrise
	Noon
	Sunset
	NextMidnight
)

// Indices of the events returned by Lunar.
const (
	PreviousMoonrise = iota
	PreviousTransit
	Moonset
	Moonrise
	NextTransit
	NextMoonset
)

func radians(deg float64) float64 {
	return deg / 180 * math.Pi
}

// fractionOfDay returns the duration corresponding to angle, an hour
// angle in radians.
func fractionOfDay(angle float64) time.Duration {
	return timescale.Days(angle / (2 * math.Pi))
}

// Solar returns the times of the previous apparent midnight, sunrise,
// apparent noon, sunset and the next apparent midnight for day at place.
// Sunrise and sunset are nil during polar day and night, noon is nil
// during polar night and the midnights are nil during polar day.
func Solar(day Day, place datetime.Place) []*time.Time {
	date := datetime.CalendarDateFromTime(day.StartOfDay().Add(12 * time.Hour).In(day.Location()))
	localMean := func(hour int) time.Time {
		return astronomy.LocalMeanTime(date.At(hour, 0, 0, day.Location()), place)
	}
	localNoon := localMean(12)
	noon := astronomy.MeanToApparent(localNoon)
	priorMidnight := astronomy.MeanToApparent(localMean(0))
	nextMidnight := astronomy.MeanToApparent(localMean(24))

	offset := astronomy.DaytimeOffset(radians(place.Latitude), day.SunPosition(day.Time())*2*math.Pi)
	switch {
	case math.IsInf(offset, 1):
		return []*time.Time{nil, nil, &noon, nil, nil}
	case math.IsInf(offset, -1):
		return []*time.Time{&priorMidnight, nil, nil, nil, &nextMidnight}
	}
	sunrise := astronomy.MeanToApparent(localNoon.Add(-fractionOfDay(offset)))
	sunset := astronomy.MeanToApparent(localNoon.Add(fractionOfDay(offset)))
	return []*time.Time{&priorMidnight, &sunrise, &noon, &sunset, &nextMidnight}
}

type lunar struct {
	day      Day
	place    datetime.Place
	latitude float64
	lunarDay time.Duration
}

func (l *lunar) lunarDays(f float64) time.Duration {
	return time.Duration(f * float64(l.lunarDay))
}

// riseAndSet returns the moonrise, transit and moonset around the
// transit at meridian together with the hour angle used to locate them.
func (l *lunar) riseAndSet(meridian time.Time, light bool) ([3]*time.Time, float64) {
	offset := astronomy.LunarTimeOffset(l.latitude, timescale.DaysSinceJ2000(meridian), light)
	switch {
	case math.IsInf(offset, 1):
		return [3]*time.Time{nil, &meridian, nil}, offset
	case math.IsInf(offset, -1):
		return [3]*time.Time{}, offset
	}
	rise := meridian.Add(-l.lunarDays(offset / (2 * math.Pi)))
	set := meridian.Add(l.lunarDays(offset / (2 * math.Pi)))
	return [3]*time.Time{&rise, &meridian, &set}, offset
}

// roundHalf wraps x into [-0.5, 0.5).
func roundHalf(x float64) float64 {
	return x - 1 - math.Floor(x-0.5)
}

// meridianOffset returns the fraction of a lunar day until the Moon
// next crosses the meridian of place, it is negative if the crossing
// has just occurred.
func (l *lunar) meridianOffset(t time.Time) float64 {
	ra, _, _ := astronomy.MoonEquatorPosition(timescale.DaysSinceJ2000(t))
	start := astronomy.StartOfDay(t, l.day.Location(), &l.place, true)
	next := astronomy.StartOfNextDay(t, l.day.Location(), &l.place, true)
	progress := float64(t.Sub(start)) / float64(next.Sub(start))
	return roundHalf(-l.day.SunPosition(t) - 0.25 - progress + ra/(2*math.Pi))
}

// blend interpolates between two estimates of the same event computed
// from adjacent transits, weighted by the change in the hour angle.
func blend(from, to time.Time, offset, otherOffset float64) *time.Time {
	w := (1 + (offset-otherOffset)/math.Pi) / 2
	t := from.Add(time.Duration(float64(to.Sub(from)) * w))
	return &t
}

// Lunar returns the previous moonrise, the previous transit, the
// moonset following it, the moonrise preceding the next transit, the
// next transit and the moonset following it, for day at place. Entries
// are nil when the Moon does not rise or set.
func Lunar(day Day, place datetime.Place) []*time.Time {
	l := &lunar{
		day:      day,
		place:    place,
		latitude: radians(place.Latitude),
		lunarDay: astronomy.LunarDay(),
	}
	now := day.Time()
	diff := l.meridianOffset(now)
	var previous, next time.Time
	if diff >= 0 {
		next = now.Add(l.lunarDays(diff))
		previous = now.Add(l.lunarDays(diff - 1))
	} else {
		previous = now.Add(l.lunarDays(diff))
		next = now.Add(l.lunarDays(diff + 1))
	}
	if previous.Add(12 * time.Hour).Before(day.StartOfDay()) {
		previous = previous.Add(l.lunarDay)
		next = next.Add(l.lunarDay)
	} else if !next.Add(-12 * time.Hour).Before(day.StartOfNextDay()) {
		previous = previous.Add(-l.lunarDay)
		next = next.Add(-l.lunarDay)
	}
	previous = previous.Add(l.lunarDays(l.meridianOffset(previous)))
	next = next.Add(l.lunarDays(l.meridianOffset(next)))

	previousTimes, previousOffset := l.riseAndSet(previous, true)
	nextTimes, nextOffset := l.riseAndSet(next, true)
	mid := previous.Add(next.Sub(previous) / 2)
	midTimes, midOffset := l.riseAndSet(mid, false)

	results := []*time.Time{previousTimes[0], previousTimes[1]}
	switch {
	case previousTimes[2] != nil && midTimes[0] != nil:
		results = append(results, blend(*midTimes[0], *previousTimes[2], midOffset, previousOffset))
	case math.IsInf(midOffset, -1):
		results = append(results, nil)
	case previousTimes[2] != nil:
		results = append(results, previousTimes[2])
	default:
		results = append(results, midTimes[0])
	}
	switch {
	case midTimes[2] != nil && nextTimes[0] != nil:
		results = append(results, blend(*nextTimes[0], *midTimes[2], nextOffset, midOffset))
	case math.IsInf(midOffset, -1):
		results = append(results, nil)
	case nextTimes[0] != nil:
		results = append(results, nextTimes[0])
	default:
		results = append(results, midTimes[2])
	}
	return append(results, nextTimes[1], nextTimes[2])
}
