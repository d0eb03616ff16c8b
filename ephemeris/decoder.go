// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ephemeris decodes the instants of the 24 solar terms and of the
// new and full moons for the years 1900 to 3000. Each instant is
// computed from a compact harmonic series and then corrected, to the
// minute, using an embedded per-year table. All instants are expressed
// as Beijing (Asia/Shanghai) civil time.
package ephemeris

import (
	"fmt"
	"math"
	"slices"
	"sync"
	"time"
	_ "time/tzdata" // Asia/Shanghai must be available on all platforms.

	"cloudeng.io/errors"
	"cloudeng.io/lunisolar/timescale"
)

// ErrYearOutOfRange is returned for years that have no correction table.
var ErrYearOutOfRange = errors.New("year out of range")

// Beijing is the civil timezone of the traditional calendar.
var Beijing = mustLoadLocation("Asia/Shanghai")

// ChinaStandardTime is the fixed UTC+8 reference zone of the encoded
// instants. Unlike Beijing it has no local mean time before 1901 and no
// daylight saving time.
var ChinaStandardTime = time.FixedZone("CST", 8*60*60)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

const (
	minutesPerDay = 1440
	// encodings use 1441 slots per day so that a rounded minute of 1440
	// remains distinct from the following midnight.
	slotsPerDay = minutesPerDay + 1
	// corrections are stored with a bias of 5 minutes.
	correctionBias = 5
	synodicMonth   = 29.5306
	// maxPhaseSearch bounds the search for the first phase of the year.
	maxPhaseSearch = 10
)

// MoonPhases holds the alternating new and full moons whose UTC+8 civil
// date falls in a given year.
type MoonPhases struct {
	Events          []time.Time
	FirstIsFullMoon bool
}

// YearRange returns the first and last years that can be decoded.
func YearRange() (first, last int) {
	return firstYear, lastYear
}

func checkYear(year int) error {
	if year < firstYear || year > lastYear {
		return fmt.Errorf("%v: %w", year, ErrYearOutOfRange)
	}
	return nil
}

type cache struct {
	sync.RWMutex
	terms  map[int][]time.Time
	phases map[int]MoonPhases
}

func (c *cache) solarTerms(year int) []time.Time {
	c.RLock()
	terms, ok := c.terms[year]
	c.RUnlock()
	if ok {
		return terms
	}
	c.Lock()
	defer c.Unlock()
	if terms, ok := c.terms[year]; ok {
		return terms
	}
	terms = decodeSolarTerms(year)
	c.terms[year] = terms
	return terms
}

func (c *cache) moonPhases(year int) MoonPhases {
	c.RLock()
	phases, ok := c.phases[year]
	c.RUnlock()
	if ok {
		return phases
	}
	c.Lock()
	defer c.Unlock()
	if phases, ok := c.phases[year]; ok {
		return phases
	}
	phases = decodeMoonPhases(year)
	c.phases[year] = phases
	return phases
}

var decoded = &cache{
	terms:  map[int][]time.Time{},
	phases: map[int]MoonPhases{},
}

// SolarTerms returns the 24 solar terms for year. The first is the
// Winter Solstice in December of the previous year, the remainder follow
// at 15° intervals of solar longitude.
func SolarTerms(year int) ([]time.Time, error) {
	if err := checkYear(year); err != nil {
		return nil, err
	}
	return slices.Clone(decoded.solarTerms(year)), nil
}

// Phases returns the new and full moons for year.
func Phases(year int) (MoonPhases, error) {
	if err := checkYear(year); err != nil {
		return MoonPhases{}, err
	}
	phases := decoded.moonPhases(year)
	return MoonPhases{
		Events:          slices.Clone(phases.Events),
		FirstIsFullMoon: phases.FirstIsFullMoon,
	}, nil
}

// yearOffset returns the JD of the start of the year, in UT+8, and the
// offset in days of J2000.0 (TT) from it.
func yearOffset(year int) (jd0, offset float64) {
	jd0 = timescale.JulianDay(year-1, 12, 31) - 1.0/3
	dt := timescale.DeltaTForJulianDay(jd0)
	return jd0, timescale.J2000 - jd0 - dt
}

// encode rounds the day count v to the nearest minute and encodes it as
// slotsPerDay*day + minute.
func encode(v float64) int {
	day := math.Floor(v)
	minute := int((v-day)*minutesPerDay + 0.5)
	return minute + slotsPerDay*int(day)
}

// decode converts an encoded instant, in UTC+8, into a time. Days are
// counted from December 31st of the previous year.
func decode(year, enc int) time.Time {
	day := floorDiv(enc, slotsPerDay)
	hm := enc - slotsPerDay*day
	return time.Date(year, time.January, day, hm/60, hm%60, 0, 0, ChinaStandardTime)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func decodeSolarTerms(year int) []time.Time {
	_, offset := yearOffset(year)
	s := &solarSeries[band(year)]
	corrections := solarTermCorrections[year-firstYear]
	terms := make([]time.Time, len(corrections))
	for i := range corrections {
		ls := float64(year-2000) + float64(i)/24
		enc := encode(s.eval(offset, ls)) + int(corrections[i]) - correctionBias
		terms[i] = decode(year, enc)
	}
	return terms
}

func decodeMoonPhases(year int) MoonPhases {
	jd0, offset := yearOffset(year)
	s := &lunarSeries[band(year)]
	row := moonPhaseCorrections[year-firstYear]
	parity := float64(row[0])
	corrections := row[1:]

	// Lunations are counted from the new moon of 2000-01-06.
	jdL0 := 2451550.259469 + 0.5*parity*synodicMonth
	lm0 := math.Floor((jd0+1-jdL0)/synodicMonth) - 1
	var lm float64
	for i := range maxPhaseSearch {
		lm = lm0 + 0.5*parity + float64(i)
		if encode(s.eval(offset, lm))+int(corrections[0])-correctionBias > minutesPerDay {
			break
		}
	}
	events := make([]time.Time, len(corrections))
	for i, c := range corrections {
		l := lm + float64(i)*0.5
		events[i] = decode(year, encode(s.eval(offset, l))+int(c)-correctionBias)
	}
	return MoonPhases{Events: events, FirstIsFullMoon: row[0] == 1}
}
