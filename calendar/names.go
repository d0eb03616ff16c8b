// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "unicode/utf8"

var (
	// monthNames starts with the month containing the Winter Solstice.
	monthNames        = []string{"冬月", "臘月", "正月", "二月", "三月", "四月", "五月", "六月", "七月", "八月", "九月", "十月"}
	monthNamesCompact = []string{"㋊", "㋋", "㋀", "㋁", "㋂", "㋃", "㋄", "㋅", "㋆", "㋇", "㋈", "㋉"}
	dayNames          = []string{"一", "二", "三", "四", "五", "六", "七", "八", "九", "十", "十一", "十二", "十三", "十四", "十五", "十六", "十七", "十八", "十九", "二十", "廿一", "廿二", "廿三", "廿四", "廿五", "廿六", "廿七", "廿八", "廿九", "三十"}
	dayNamesCompact   = []string{"㏠", "㏡", "㏢", "㏣", "㏤", "㏥", "㏦", "㏧", "㏨", "㏩", "㏪", "㏫", "㏬", "㏭", "㏮", "㏯", "㏰", "㏱", "㏲", "㏳", "㏴", "㏵", "㏶", "㏷", "㏸", "㏹", "㏺", "㏻", "㏼", "㏽"}
	// terrestrialBranches name the twelve double hours starting at 23:00.
	terrestrialBranches = []string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
	subHourNames        = []string{"初", "正"}
	quarterNumbers      = []string{"初", "一", "二", "三", "四", "五"}
	alternativeNames    = map[string]string{"閏正月": "閏一月"}
)

// LeapLabel prefixes the name of a leap month.
const LeapLabel = "閏"

// DayName returns the name of the day of the month, day is 1-based.
func DayName(day int) string {
	if day < 1 || day > len(dayNames) {
		return ""
	}
	return dayNames[day-1]
}

func nameAt(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return ""
	}
	return names[i]
}

func nameLength(name string) int {
	return utf8.RuneCountInString(name)
}

// modulo returns a mod n in [0, n).
func modulo(a, n int) int {
	return ((a % n) + n) % n
}
