// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import "slices"

var (
	evenSolarTermNames = [12]string{"冬　至", "大　寒", "雨　水", "春　分", "穀　雨", "小　滿", "夏　至", "大　暑", "處　暑", "秋　分", "霜　降", "小　雪"}
	oddSolarTermNames  = [12]string{"小　寒", "立　春", "驚　蟄", "清　明", "立　夏", "芒　種", "小　暑", "立　秋", "白　露", "寒　露", "立　冬", "大　雪"}
)

// IsEvenTerm returns true for the principal terms (中氣), those at
// multiples of 30° of solar longitude starting at the Winter Solstice.
func IsEvenTerm(i int) bool {
	return i%2 == 0
}

// SolarTermName returns the name of the i'th solar term of a year,
// i is taken modulo 24.
func SolarTermName(i int) string {
	i = ((i % 24) + 24) % 24
	if IsEvenTerm(i) {
		return evenSolarTermNames[i/2]
	}
	return oddSolarTermNames[i/2]
}

// EvenSolarTermNames returns the names of the 12 principal terms.
func EvenSolarTermNames() []string {
	return slices.Clone(evenSolarTermNames[:])
}

// OddSolarTermNames returns the names of the 12 sectional terms (節氣).
func OddSolarTermNames() []string {
	return slices.Clone(oddSolarTermNames[:])
}
