// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command lunisolar displays the traditional Chinese lunisolar calendar
// date, solar terms, moon phases, intraday events and dial positions for
// a given time and place, and verifies the decoded ephemeris.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const commands = `name: lunisolar
summary: display and verify the chinese lunisolar calendar
commands:
  - name: date
    summary: display the lunisolar date and time for a given time and place.
  - name: terms
    summary: display the 24 solar terms for a year.
  - name: phases
    summary: display the new and full moons for a year.
  - name: events
    summary: display sunrise, sunset, moonrise, moonset and transits for a day.
  - name: ticks
    summary: display the positions of the month, day, hour and subhour dial divisions.
  - name: verify
    summary: cross-check the decoded solar terms and moon phases and build every supported calendar year.
`

// GlobalFlags are common to all commands.
type GlobalFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'yaml configuration file supplying defaults for timezone, place and calendar options'"`
}

var globalFlags GlobalFlags

func cli() *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(commands)
	cmdSet.Set("date").MustRunnerAndFlags(dateCmd,
		subcmd.MustRegisteredFlagSet(&dateFlags{}))
	cmdSet.Set("terms").MustRunnerAndFlags(termsCmd,
		subcmd.MustRegisteredFlagSet(&yearFlags{}))
	cmdSet.Set("phases").MustRunnerAndFlags(phasesCmd,
		subcmd.MustRegisteredFlagSet(&yearFlags{}))
	cmdSet.Set("events").MustRunnerAndFlags(eventsCmd,
		subcmd.MustRegisteredFlagSet(&dateFlags{}))
	cmdSet.Set("ticks").MustRunnerAndFlags(ticksCmd,
		subcmd.MustRegisteredFlagSet(&dateFlags{}))
	cmdSet.Set("verify").MustRunnerAndFlags(verifyCmd,
		subcmd.MustRegisteredFlagSet(&verifyFlags{}))

	globals := subcmd.NewFlagSet()
	globals.MustRegisterFlagStruct(&globalFlags, nil, nil)
	cmdSet.WithGlobalFlags(globals)
	cmdSet.WithMain(withLogger)
	return cmdSet
}

// withLogger runs the selected command with a logger, configured by the
// global logging flags, stored in its context.
func withLogger(ctx context.Context, runner func(context.Context) error) error {
	logger, err := globalFlags.LoggingConfig().NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()
	return runner(ctxlog.Context(ctx, logger.Logger))
}

func main() {
	subcmd.Dispatch(context.Background(), cli())
}
