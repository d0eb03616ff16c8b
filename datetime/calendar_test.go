// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime_test

import (
	"testing"
	"time"

	"cloudeng.io/lunisolar/datetime"
)

func TestCalendarDate(t *testing.T) {
	ncd := datetime.NewCalendarDate
	for _, tc := range []struct {
		cd   datetime.CalendarDate
		days int
		want datetime.CalendarDate
	}{
		{ncd(2024, 2, 28), 1, ncd(2024, 2, 29)},
		{ncd(2023, 2, 28), 1, ncd(2023, 3, 1)},
		{ncd(2024, 1, 1), -1, ncd(2023, 12, 31)},
		{ncd(2024, 12, 31), 1, ncd(2025, 1, 1)},
		{ncd(1900, 3, 1), -1, ncd(1900, 2, 28)},
	} {
		if got, want := tc.cd.AddDays(tc.days), tc.want; got != want {
			t.Errorf("%v + %v: got %v, want %v", tc.cd, tc.days, got, want)
		}
	}

	if got, want := ncd(2024, 2, 1).String(), "2024-02-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCalendarDateTime(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		t.Fatal(err)
	}
	cd := datetime.NewCalendarDate(2024, 2, 10)
	if got, want := cd.At(12, 30, 15, loc), time.Date(2024, 2, 10, 12, 30, 15, 0, loc); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	// Hour 24 is midnight of the following day.
	if got, want := cd.At(24, 0, 0, loc), time.Date(2024, 2, 11, 0, 0, 0, 0, loc); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	now := time.Date(2024, 2, 10, 23, 59, 0, 0, loc)
	if got, want := datetime.CalendarDateFromTime(now), cd; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := datetime.CalendarDateFromTime(now.UTC()), cd; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
