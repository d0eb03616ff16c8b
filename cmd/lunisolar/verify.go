// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/lunisolar/astronomy"
	"cloudeng.io/lunisolar/calendar"
	"cloudeng.io/lunisolar/ephemeris"
	"cloudeng.io/lunisolar/timescale"
	"cloudeng.io/sync/errgroup"
	"github.com/mooncaker816/learnmeeus/v3/moonphase"
)

type verifyFlags struct {
	From      int           `subcmd:"from,1901,'first calendar year to verify'"`
	To        int           `subcmd:"to,2999,'last calendar year to verify'"`
	Tolerance time.Duration `subcmd:"tolerance,5m,'maximum allowed difference from the reference ephemeris'"`
	BlockSize int           `subcmd:"block-size,50,'number of years verified by each goroutine'"`
}

const tropicalYear = time.Duration(365.2422 * 24 * float64(time.Hour))

// ErrMismatch is returned when a decoded event differs from the reference
// ephemeris by more than the allowed tolerance.
var ErrMismatch = errors.New("mismatch")

type verifier struct {
	tolerance time.Duration
	mu        sync.Mutex
	years     int
	leaps     int
}

func (v *verifier) check(what string, year int, got, want time.Time) error {
	if d := got.Sub(want).Abs(); d > v.tolerance {
		return fmt.Errorf("%v: %v: got %v, want %v (%v): %w", year, what,
			got.In(ephemeris.Beijing).Format(timeFormat), want.In(ephemeris.Beijing).Format(timeFormat), d, ErrMismatch)
	}
	return nil
}

func (v *verifier) solarTerms(year int) error {
	terms, err := ephemeris.SolarTerms(year)
	if err != nil {
		return err
	}
	var errs errors.M
	errs.Append(v.check("december solstice", year, terms[0], astronomy.December(year-1)))
	seasons := astronomy.Seasons(year)
	for i, name := range []string{"march equinox", "june solstice", "september equinox"} {
		errs.Append(v.check(name, year, terms[6*(i+1)], seasons[i]))
	}
	return errs.Err()
}

func decimalYear(t time.Time) float64 {
	return float64(t.Year()) + (float64(t.YearDay())-0.5)/365.25
}

// nearestPhase returns the new or full moon closest to t computed
// from the mean lunation and its periodic terms.
func nearestPhase(t time.Time, full bool) time.Time {
	phase := moonphase.New
	if full {
		phase = moonphase.Full
	}
	var nearest time.Time
	for _, lunation := range []float64{-1, 0, 1} {
		c := timescale.TimeFromJDE(phase(decimalYear(t) + lunation/12.3685))
		if nearest.IsZero() || c.Sub(t).Abs() < nearest.Sub(t).Abs() {
			nearest = c
		}
	}
	return nearest
}

func (v *verifier) moonPhases(year int) error {
	phases, err := ephemeris.Phases(year)
	if err != nil {
		return err
	}
	var errs errors.M
	full := phases.FirstIsFullMoon
	for _, ev := range phases.Events {
		what := "new moon"
		if full {
			what = "full moon"
		}
		errs.Append(v.check(what, year, ev, nearestPhase(ev, full)))
		full = !full
	}
	return errs.Err()
}

func (v *verifier) calendarYear(year int) error {
	c, err := calendar.New(time.Date(year, 6, 1, 12, 0, 0, 0, ephemeris.Beijing), ephemeris.Beijing, nil, calendar.Options{})
	if err != nil {
		return err
	}
	months, leaps := c.MonthsInYear(), c.LeapMonths()
	if (months != 12 && months != 13) || (months == 13) != (leaps == 1) {
		return fmt.Errorf("%v: %v months with %v leap months: %w", year, months, leaps, ErrMismatch)
	}
	terms := c.SolarTerms()
	if d := terms[24].Sub(terms[0]) - tropicalYear; d.Abs() > 24*time.Hour {
		return fmt.Errorf("%v: year length differs from a tropical year by %v: %w", year, d, ErrMismatch)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.years++
	v.leaps += leaps
	return nil
}

func (v *verifier) block(ctx context.Context, from, to int) error {
	var errs errors.M
	for year := from; year <= to; year++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		errs.Append(v.solarTerms(year), v.moonPhases(year), v.calendarYear(year))
	}
	err := errs.Err()
	logger := ctxlog.Logger(ctx)
	if err != nil {
		logger.Warn("verification failed", "from", from, "to", to, "error", err)
	} else {
		logger.Debug("verified", "from", from, "to", to)
	}
	return err
}

func verifyCmd(ctx context.Context, values any, _ []string) error {
	fv := values.(*verifyFlags)
	first, last := ephemeris.YearRange()
	if fv.From <= first || fv.To >= last || fv.From > fv.To {
		return fmt.Errorf("years must be within %v..%v: %w", first+1, last-1, ephemeris.ErrYearOutOfRange)
	}
	if fv.BlockSize <= 0 {
		fv.BlockSize = 1
	}
	v := &verifier{tolerance: fv.Tolerance}
	// All blocks run to completion so that every mismatch is reported.
	var g errgroup.T
	for from := fv.From; from <= fv.To; from += fv.BlockSize {
		to := min(from+fv.BlockSize-1, fv.To)
		g.Go(func() error {
			return v.block(ctx, from, to)
		})
	}
	err := g.Wait()
	ctxlog.Logger(ctx).Info("verification complete", "years", v.years, "leap months", v.leaps)
	if err != nil {
		return err
	}
	return printYAML(map[string]int{"years": v.years, "leap_months": v.leaps})
}
