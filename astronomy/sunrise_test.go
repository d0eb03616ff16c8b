// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy_test

import (
	"testing"
	"time"

	"cloudeng.io/lunisolar/astronomy"
	"cloudeng.io/lunisolar/datetime"
)

func TestSunrise(t *testing.T) {
	loc, _ := time.LoadLocation("America/Los_Angeles")
	place := datetime.Place{
		Latitude:  37.3229978,
		Longitude: -122.0321823}
	cd := datetime.NewCalendarDate(2024, 1, 1)
	rise, set := astronomy.SunRiseAndSet(cd, place)

	if got, want := rise, cd.At(7, 22, 13, loc); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := set, cd.At(17, 00, 33, loc); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	sn := astronomy.SolarNoon(cd, place)

	if got, want := sn, cd.At(12, 11, 23, loc); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
