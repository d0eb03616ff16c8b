// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

// DateString returns the month and day, eg. 正月初一 is rendered as
// 正月一日 and the fifteenth day of the eighth month as 八月十五.
func (c *Calendar) DateString() string {
	day := nameAt(dayNames, c.day)
	if nameLength(day) > 1 {
		return c.monthNamesFull[c.month] + day
	}
	return c.monthNamesFull[c.month] + day + "日"
}

// TimeString returns the double hour, whether it is the first (初) or
// second (正) half, the number of quarters (刻) within that half and,
// if non-zero, the number of sixths of a quarter since the last one,
// eg. 午正二刻.
func (c *Calendar) TimeString() string {
	return c.subhours().timeString
}
