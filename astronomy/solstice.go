// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"time"

	"cloudeng.io/lunisolar/timescale"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// December returns the instant of the winter solstice.
func December(year int) time.Time {
	return timescale.TimeFromJDE(solstice.December(year))
}

// March returns the instant of the vernal/spring equinox.
func March(year int) time.Time {
	return timescale.TimeFromJDE(solstice.March(year))
}

// June returns the instant of the summer solstice.
func June(year int) time.Time {
	return timescale.TimeFromJDE(solstice.June(year))
}

// September returns the instant of the autumnal equinox.
func September(year int) time.Time {
	return timescale.TimeFromJDE(solstice.September(year))
}

// Seasons returns the instants of the March equinox, June solstice,
// September equinox and December solstice of year, in that order.
func Seasons(year int) [4]time.Time {
	return [4]time.Time{March(year), June(year), September(year), December(year)}
}
