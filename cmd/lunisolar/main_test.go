// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/lunisolar/ephemeris"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	out := &bytes.Buffer{}
	stdout = out
	t.Cleanup(func() { stdout = os.Stdout })
	return out
}

func testContext(t *testing.T) context.Context {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return ctxlog.Context(t.Context(), logger)
}

func writeConfig(t *testing.T, contents string) {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0o600))
	globalFlags.Config = filename
	t.Cleanup(func() { globalFlags.Config = "" })
}

func TestDate(t *testing.T) {
	ctx := testContext(t)
	out := capture(t)
	fv := &dateFlags{Time: "2024-02-10T12:30"}
	require.NoError(t, dateCmd(ctx, fv, nil))
	var report dateReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))
	require.Equal(t, 2024, report.Year)
	require.Equal(t, "正月", report.Month)
	require.Equal(t, 1, report.Day)
	require.Equal(t, "正月一日", report.Date)
	require.Equal(t, "午正二刻", report.DoubleHour)
	require.False(t, report.LeapMonth)
	require.Equal(t, 29, report.MonthLength)
	// 2024-02-10 04:30 UTC.
	require.InDelta(t, 2460350.6875, report.JulianDay, 1e-6)
}

func TestConfig(t *testing.T) {
	ctx := testContext(t)
	writeConfig(t, `timezone: America/Los_Angeles
place: {latitude: 37.32, longitude: -122.03}
compact: true
`)
	s, err := resolve(ctx, LocationFlags{}, CalendarFlags{})
	require.NoError(t, err)
	require.Equal(t, "America/Los_Angeles", s.loc.String())
	require.NotNil(t, s.place)
	require.Equal(t, 37.32, s.place.Latitude)
	require.True(t, s.opts.Compact)
	require.False(t, s.opts.ApparentTime)

	// Flags override the configuration.
	s, err = resolve(ctx, LocationFlags{Timezone: "Asia/Shanghai", Place: "39.9,116.4"}, CalendarFlags{ApparentTime: true})
	require.NoError(t, err)
	require.Equal(t, ephemeris.Beijing.String(), s.loc.String())
	require.Equal(t, 116.4, s.place.Longitude)
	require.True(t, s.opts.ApparentTime)

	writeConfig(t, "place: {latitude: 95, longitude: 0}\n")
	_, err = resolve(ctx, LocationFlags{}, CalendarFlags{})
	require.Error(t, err)

	_, err = resolve(ctx, LocationFlags{Place: "north"}, CalendarFlags{})
	require.Error(t, err)
}

func TestPostcode(t *testing.T) {
	ctx := testContext(t)
	db := filepath.Join(t.TempDir(), "US.txt")
	require.NoError(t, os.WriteFile(db, []byte("US\t95014\tCupertino\tCalifornia\tCA\tSanta Clara\t085\t\t\t37.318\t-122.0449\t4\n"), 0o600))
	writeConfig(t, "postcode_db: "+db+"\n")

	s, err := resolve(ctx, LocationFlags{Postcode: "CA 95014"}, CalendarFlags{})
	require.NoError(t, err)
	require.Equal(t, -122.0449, s.place.Longitude)

	_, err = resolve(ctx, LocationFlags{Postcode: "CA 95015"}, CalendarFlags{})
	require.Error(t, err)

	_, err = resolve(ctx, LocationFlags{Postcode: "CA 95014", DB: filepath.Join(t.TempDir(), "missing.txt")}, CalendarFlags{})
	require.Error(t, err)
}

func TestParseTime(t *testing.T) {
	for _, val := range []string{"2024-02-10T12:30:00+08:00", "2024-02-10T04:30:00Z", "2024-02-10T12:30", "2024-02-10T12:30:00"} {
		got, err := parseTime(val, ephemeris.Beijing)
		require.NoError(t, err)
		require.True(t, got.Equal(time.Date(2024, 2, 10, 12, 30, 0, 0, ephemeris.Beijing)), val)
	}
	_, err := parseTime("yesterday", ephemeris.Beijing)
	require.Error(t, err)
}

func TestTermsAndPhases(t *testing.T) {
	ctx := testContext(t)
	out := capture(t)
	require.NoError(t, termsCmd(ctx, &yearFlags{Year: 2024}, nil))
	var terms []termReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &terms))
	require.Len(t, terms, 24)
	require.Equal(t, ephemeris.SolarTermName(0), terms[0].Name)
	require.Equal(t, "2023-12-22 11:27:00 CST", terms[0].Time)

	out.Reset()
	require.NoError(t, phasesCmd(ctx, &yearFlags{Year: 2024}, nil))
	var phases []phaseReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &phases))
	require.Len(t, phases, 25)
	require.Equal(t, "new moon", phases[0].Phase)
	require.Equal(t, "full moon", phases[1].Phase)

	err := termsCmd(ctx, &yearFlags{Year: 3001}, nil)
	require.True(t, errors.Is(err, ephemeris.ErrYearOutOfRange))
}

func TestEventsAndTicks(t *testing.T) {
	ctx := testContext(t)
	out := capture(t)
	fv := &dateFlags{Time: "2024-06-10T12:00", LocationFlags: LocationFlags{Place: "39.9042,116.4074"}}
	require.NoError(t, eventsCmd(ctx, fv, nil))
	var events map[string][]eventReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &events))
	require.Len(t, events["solar"], 5)
	require.Len(t, events["lunar"], 6)
	require.Equal(t, "sunrise", events["solar"][1].Event)
	require.NotNil(t, events["solar"][1].Position)
	require.Len(t, events["reference"], 3)
	for _, ev := range events["reference"] {
		require.NotEmpty(t, ev.Time, ev.Event)
	}
	require.Equal(t, "noon", events["reference"][1].Event)
	// The NOAA noon agrees with the engine's apparent noon.
	reference, err := time.ParseInLocation(timeFormat, events["reference"][1].Time, ephemeris.Beijing)
	require.NoError(t, err)
	noon, err := time.ParseInLocation(timeFormat, events["solar"][2].Time, ephemeris.Beijing)
	require.NoError(t, err)
	require.Less(t, reference.Sub(noon).Abs(), 3*time.Minute)

	require.Error(t, eventsCmd(ctx, &dateFlags{Time: "2024-06-10T12:00"}, nil))

	out.Reset()
	require.NoError(t, ticksCmd(ctx, fv, nil))
	var ticks ticksReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &ticks))
	require.Len(t, ticks.Hour.MajorTicks, 24)
	require.Len(t, ticks.Planets, 6)
	require.Contains(t, ticks.Events, "month")
}

func TestVerify(t *testing.T) {
	ctx := testContext(t)
	out := capture(t)
	fv := &verifyFlags{From: 2020, To: 2025, Tolerance: 5 * time.Minute, BlockSize: 4}
	require.NoError(t, verifyCmd(ctx, fv, nil))
	var summary map[string]int
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &summary))
	require.Equal(t, 6, summary["years"])
	// 2020, 2023 and 2025 have leap months.
	require.Equal(t, 3, summary["leap_months"])

	fv = &verifyFlags{From: 1900, To: 1910, Tolerance: 5 * time.Minute, BlockSize: 4}
	require.True(t, errors.Is(verifyCmd(ctx, fv, nil), ephemeris.ErrYearOutOfRange))

	// An impossibly small tolerance reports mismatches.
	fv = &verifyFlags{From: 2024, To: 2024, Tolerance: time.Nanosecond, BlockSize: 1}
	require.True(t, errors.Is(verifyCmd(ctx, fv, nil), ErrMismatch))
}
