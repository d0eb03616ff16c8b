// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package places resolves postal codes to geographic locations using the
// tab separated postal code dumps published by www.geonames.org.
package places

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/lunisolar/datetime"
)

// DB is an in-memory postal code database.
type DB struct {
	lookup map[string]datetime.Place
}

// NewDB returns an empty database.
func NewDB() *DB {
	return &DB{lookup: map[string]datetime.Place{}}
}

// Len returns the number of postal codes in the database.
func (db *DB) Len() int {
	return len(db.lookup)
}

// Place returns the location of the postal code within the specified
// admin code, eg. AK 99553. GB and CA postal codes may be given in their
// short or long forms, eg. ENG BN91 or ENG "BN91 9AA".
func (db *DB) Place(admin, postal string) (datetime.Place, bool) {
	p, ok := db.lookup[admin+" "+postal]
	return p, ok
}

// Lookup is like Place but accepts a single string of the form
// "<admin> <postal code>".
func (db *DB) Lookup(query string) (datetime.Place, error) {
	admin, postal, ok := strings.Cut(strings.TrimSpace(query), " ")
	if !ok {
		return datetime.Place{}, fmt.Errorf("invalid postal code: %q: expected <admin> <postal code>", query)
	}
	p, ok := db.Place(admin, strings.TrimSpace(postal))
	if !ok {
		return datetime.Place{}, fmt.Errorf("unknown postal code: %q", query)
	}
	return p, nil
}

// Load adds the entries in data, in geonames format, to the database.
func (db *DB) Load(data []byte) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if len(text) == 0 {
			continue
		}
		parts := strings.Split(text, "\t")
		if len(parts) != 12 {
			return fmt.Errorf("line %v: wrong number of fields: %v != 12", line, len(parts))
		}
		lat, err := strconv.ParseFloat(parts[9], 64)
		if err != nil {
			return fmt.Errorf("line %v: invalid latitude: %q: %w", line, parts[9], err)
		}
		long, err := strconv.ParseFloat(parts[10], 64)
		if err != nil {
			return fmt.Errorf("line %v: invalid longitude: %q: %w", line, parts[10], err)
		}
		p := datetime.Place{Latitude: lat, Longitude: long}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("line %v: %w", line, err)
		}
		db.lookup[parts[4]+" "+parts[1]] = p
	}
	return scanner.Err()
}
