// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"strconv"
	"strings"
)

// Place represents a geographic location in degrees, latitude is
// positive north of the equator and longitude positive east of Greenwich.
type Place struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// ParsePlace parses a place of the form "<latitude>,<longitude>".
func ParsePlace(val string) (Place, error) {
	lat, long, ok := strings.Cut(val, ",")
	if !ok {
		return Place{}, fmt.Errorf("invalid place: %q: expected <latitude>,<longitude>", val)
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return Place{}, fmt.Errorf("invalid latitude: %q: %w", lat, err)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(long), 64)
	if err != nil {
		return Place{}, fmt.Errorf("invalid longitude: %q: %w", long, err)
	}
	p := Place{Latitude: la, Longitude: lo}
	return p, p.Validate()
}

// Validate returns an error if the latitude or longitude are out of range.
func (p Place) Validate() error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("latitude out of range: %v", p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("longitude out of range: %v", p.Longitude)
	}
	return nil
}

func (p Place) String() string {
	return fmt.Sprintf("%.4f,%.4f", p.Latitude, p.Longitude)
}
