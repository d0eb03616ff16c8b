// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/file"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/lunisolar/calendar"
	"cloudeng.io/lunisolar/datetime"
	"cloudeng.io/lunisolar/ephemeris"
	"cloudeng.io/lunisolar/places"
)

// Config represents the yaml configuration file, flags override the
// values it contains.
type Config struct {
	Timezone     string          `yaml:"timezone"`
	Place        *datetime.Place `yaml:"place"`
	GlobalMonth  bool            `yaml:"global_month"`
	ApparentTime bool            `yaml:"apparent_time"`
	Compact      bool            `yaml:"compact"`
	PostcodeDB   string          `yaml:"postcode_db"`
}

func loadConfig(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if len(filename) == 0 {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigFile(ctx, filename, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Place != nil {
		if err := cfg.Place.Validate(); err != nil {
			return cfg, fmt.Errorf("%v: %w", filename, err)
		}
	}
	ctxlog.Logger(ctx).Info("loaded config", "file", filename, "timezone", cfg.Timezone, "place", cfg.Place)
	return cfg, nil
}

// LocationFlags specify the timezone and optional place.
type LocationFlags struct {
	Timezone string `subcmd:"tz,,'IANA timezone, defaults to the configured timezone or Asia/Shanghai'"`
	Place    string `subcmd:"place,,'geographic location as <latitude>,<longitude> in degrees'"`
	Postcode string `subcmd:"postcode,,'postal code as <admin> <code>, eg. CA 95014, to be looked up in the postal code database'"`
	DB       string `subcmd:"postcode-db,,'geonames postal code database, defaults to the configured database'"`
}

// CalendarFlags specify the calendar options.
type CalendarFlags struct {
	GlobalMonth  bool `subcmd:"global-month,false,'start months at the instant of the new moon rather than the start of the day'"`
	ApparentTime bool `subcmd:"apparent-time,false,'start days at local apparent midnight, requires a place'"`
	Compact      bool `subcmd:"compact,false,'use single character month and day names'"`
}

type dateFlags struct {
	LocationFlags
	CalendarFlags
	Time string `subcmd:"time,,'time in RFC3339 format or as YYYY-MM-DDTHH:MM in the selected timezone, defaults to now'"`
}

type yearFlags struct {
	Year     int    `subcmd:"year,0,'calendar year, defaults to the current year'"`
	Timezone string `subcmd:"tz,,'IANA timezone used to display times, defaults to the configured timezone or Asia/Shanghai'"`
}

// settings is the result of merging the configuration file with flags.
type settings struct {
	loc   *time.Location
	place *datetime.Place
	opts  calendar.Options
}

func resolveLocation(cfg Config, tz string) (*time.Location, error) {
	if len(tz) == 0 {
		tz = cfg.Timezone
	}
	if len(tz) == 0 {
		return ephemeris.Beijing, nil
	}
	return time.LoadLocation(tz)
}

func resolve(ctx context.Context, lf LocationFlags, cf CalendarFlags) (settings, error) {
	cfg, err := loadConfig(ctx, globalFlags.Config)
	if err != nil {
		return settings{}, err
	}
	loc, err := resolveLocation(cfg, lf.Timezone)
	if err != nil {
		return settings{}, err
	}
	s := settings{
		loc:   loc,
		place: cfg.Place,
		opts: calendar.Options{
			GlobalMonth:  cfg.GlobalMonth || cf.GlobalMonth,
			ApparentTime: cfg.ApparentTime || cf.ApparentTime,
			Compact:      cfg.Compact || cf.Compact,
		},
	}
	switch {
	case len(lf.Place) > 0:
		p, err := datetime.ParsePlace(lf.Place)
		if err != nil {
			return settings{}, err
		}
		s.place = &p
	case len(lf.Postcode) > 0:
		db := lf.DB
		if len(db) == 0 {
			db = cfg.PostcodeDB
		}
		p, err := lookupPostcode(ctx, db, lf.Postcode)
		if err != nil {
			return settings{}, err
		}
		s.place = &p
	}
	return s, nil
}

func lookupPostcode(ctx context.Context, filename, postcode string) (datetime.Place, error) {
	if len(filename) == 0 {
		return datetime.Place{}, fmt.Errorf("no postal code database specified")
	}
	data, err := file.FSReadFile(ctx, filename)
	if err != nil {
		return datetime.Place{}, err
	}
	db := places.NewDB()
	if err := db.Load(data); err != nil {
		return datetime.Place{}, fmt.Errorf("%v: %w", filename, err)
	}
	ctxlog.Logger(ctx).Debug("loaded postal codes", "file", filename, "entries", db.Len())
	return db.Lookup(postcode)
}

func parseTime(val string, loc *time.Location) (time.Time, error) {
	if len(val) == 0 {
		return time.Now().In(loc), nil
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, val, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time: %q", val)
}

func newCalendar(ctx context.Context, fv *dateFlags) (*calendar.Calendar, error) {
	s, err := resolve(ctx, fv.LocationFlags, fv.CalendarFlags)
	if err != nil {
		return nil, err
	}
	when, err := parseTime(fv.Time, s.loc)
	if err != nil {
		return nil, err
	}
	ctxlog.Logger(ctx).Debug("building calendar", "time", when, "place", s.place, "options", s.opts)
	return calendar.New(when, s.loc, s.place, s.opts)
}
