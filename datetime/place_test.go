// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime_test

import (
	"testing"

	"cloudeng.io/lunisolar/datetime"
)

func TestParsePlace(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  datetime.Place
	}{
		{"39.9,116.4", datetime.Place{Latitude: 39.9, Longitude: 116.4}},
		{" -33.87 , 151.21 ", datetime.Place{Latitude: -33.87, Longitude: 151.21}},
		{"0,0", datetime.Place{}},
	} {
		p, err := datetime.ParsePlace(tc.input)
		if err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if got, want := p, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}

	for _, tc := range []string{
		"39.9",
		"north,116.4",
		"39.9,east",
		"91,0",
		"0,181",
	} {
		if _, err := datetime.ParsePlace(tc); err == nil {
			t.Errorf("%v: expected an error", tc)
		}
	}
}

func TestPlaceString(t *testing.T) {
	p := datetime.Place{Latitude: 22.3, Longitude: 114.17}
	if got, want := p.String(), "22.3000,114.1700"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
