// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package places_test

import (
	"testing"

	"cloudeng.io/lunisolar/datetime"
	"cloudeng.io/lunisolar/places"
)

const sampleData = `
US	99553	Akutan	Alaska	AK	Aleutians East	013			54.143	-165.7854	1
GB	BN91	Worthing	England	ENG					50.818	-0.3754	
GB	AL3 8QE	Slip End	England	ENG	Bedfordshire		Central Bedfordshire	E06000056	51.8479	-0.4474	6
`

func TestPlace(t *testing.T) {
	db := places.NewDB()
	if err := db.Load([]byte(sampleData)); err != nil {
		t.Fatalf("failed to load sample data: %v", err)
	}
	if got, want := db.Len(), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tc := range []struct {
		admin, postal string
		want          datetime.Place
	}{
		{"AK", "99553", datetime.Place{Latitude: 54.143, Longitude: -165.7854}},
		{"ENG", "BN91", datetime.Place{Latitude: 50.818, Longitude: -0.3754}},
		{"ENG", "AL3 8QE", datetime.Place{Latitude: 51.8479, Longitude: -0.4474}},
	} {
		p, ok := db.Place(tc.admin, tc.postal)
		if !ok {
			t.Errorf("%v %v: not found", tc.admin, tc.postal)
		}
		if got, want := p, tc.want; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if _, ok := db.Place("ENG", "AL3 8QF"); ok {
		t.Errorf("expected not to find AL3 8QF")
	}

	p, err := db.Lookup("ENG AL3 8QE")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := p.Latitude, 51.8479; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, query := range []string{"99553", "AK 00000"} {
		if _, err := db.Lookup(query); err == nil {
			t.Errorf("%v: expected an error", query)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	for _, data := range []string{
		"US\t99553\tAkutan\n",
		"US\t99553\tAkutan\tAlaska\tAK\t\t\t\t\tnorth\t-165.7854\t1\n",
		"US\t99553\tAkutan\tAlaska\tAK\t\t\t\t\t54.143\twest\t1\n",
		"US\t99553\tAkutan\tAlaska\tAK\t\t\t\t\t154.143\t-165.7854\t1\n",
	} {
		if err := places.NewDB().Load([]byte(data)); err == nil {
			t.Errorf("%q: expected an error", data)
		}
	}
}
