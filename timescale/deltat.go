// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package timescale

import "math"

// DeltaT returns TT - UT in days for T, the number of Julian centuries
// from J2000. Between 1972 and 2022 the value is 32.184s plus the
// accumulated leap seconds (TAI - UTC), outside of that interval a
// cubic spline fit to historical observations is used, with parabolic
// extrapolation before -720 and after 2019.
func DeltaT(T float64) float64 {
	t := 36525*T + J2000
	if t > leapSecondWindowEnd || t < leapSecondWindowStart {
		return deltaTSpline(fractionalYear(t)) / SecondsPerDay
	}
	dt := 42.184
	for i, l := range leapSecondBoundaries {
		if t > l {
			dt += float64(len(leapSecondBoundaries) - i - 1)
			break
		}
	}
	return dt / SecondsPerDay
}

const (
	leapSecondWindowStart = 2441317.5 // 1972-01-01
	leapSecondWindowEnd   = 2459580.5 // 2022-01-01
	gregorianReform       = 2299160.5 // 1582-10-15
)

// fractionalYear converts a JD to a decimal year using the Gregorian
// calendar after the reform and the Julian calendar before it.
func fractionalYear(jd float64) float64 {
	if jd >= gregorianReform {
		return (jd-2451544.5)/365.2425 + 2000
	}
	return (jd+0.5)/365.25 - 4712
}

func deltaTTail(y float64) float64 {
	t := y - 1825
	return 0.00314115*t*t + 284.8435805251424*math.Cos(0.4487989505128276*(0.01*t+0.75))
}

// deltaTSpline returns ΔT in seconds for the decimal year y.
func deltaTSpline(y float64) float64 {
	switch {
	case y < -720:
		return deltaTTail(y) + 1.007739546148514
	case y > 2019:
		return deltaTTail(y) - 150.263031657016
	}
	l := len(splineKnots) - 1
	for l >= 0 && !(y >= splineKnots[l]) {
		l--
	}
	r := (y - splineKnots[l]) / (splineEnds[l] - splineKnots[l])
	return splineC1[l] + r*(splineC2[l]+r*(splineC3[l]+r*splineC4[l]))
}

// The spline segments start at splineKnots[i] and are normalized by
// splineEnds[i]; the leap second boundaries are the JDs at which TAI - UTC
// last changed, most recent first.
var (
	splineKnots = [...]float64{
		-720, -100, 400, 1000, 1150, 1300, 1500, 1600, 1650, 1720, 1800, 1810,
		1820, 1830, 1840, 1850, 1855, 1860, 1865, 1870, 1875, 1880, 1885, 1890,
		1895, 1900, 1905, 1910, 1915, 1920, 1925, 1930, 1935, 1940, 1945, 1950,
		1953, 1956, 1959, 1962, 1965, 1968, 1971, 1974, 1977, 1980, 1983, 1986,
		1989, 1992, 1995, 1998, 2001, 2004, 2007, 2010, 2013, 2016,
	}
	splineEnds = [...]float64{
		-100, 400, 100, 1150, 1300, 1500, 1600, 1650, 1720, 1800, 1810, 1820,
		1830, 1840, 1850, 1855, 1860, 1865, 1870, 1875, 1880, 1885, 1890, 1895,
		1900, 1905, 1910, 1915, 1920, 1925, 1930, 1935, 1940, 1945, 1950, 1953,
		1956, 1959, 1962, 1965, 1968, 1971, 1974, 1977, 1980, 1983, 1986, 1989,
		1992, 1995, 1998, 2001, 2004, 2007, 2010, 2013, 2016, 2019,
	}
	splineC1 = [...]float64{
		20371.848, 11557.668, 6535.116, 1650.393, 1056.647, 681.149, 292.343, 109.127,
		43.952, 12.068, 18.367, 15.678, 16.516, 10.804, 7.634, 9.338,
		10.357, 9.04, 8.255, 2.371, -1.126, -3.21, -4.388, -3.884,
		-5.017, -1.977, 4.923, 11.142, 17.479, 21.617, 23.789, 24.418,
		24.164, 24.426, 27.05, 28.932, 30.002, 30.76, 32.652, 33.621,
		35.093, 37.956, 40.951, 44.244, 47.291, 50.361, 52.936, 54.984,
		56.373, 58.453, 60.678, 62.898, 64.083, 64.553, 65.197, 66.061,
		66.92, 68.109,
	}
	splineC2 = [...]float64{
		-9999.586, -5822.27, -5671.519, -753.21, -459.628, -421.345, -192.841, -78.697,
		-68.089, 2.507, -3.481, 0.021, -2.157, -6.018, -0.416, 1.642,
		-0.486, -0.591, -3.456, -5.593, -2.314, -1.893, 0.101, -0.531,
		0.134, 5.715, 6.828, 6.33, 5.518, 3.02, 1.333, 0.052,
		-0.419, 1.645, 2.499, 1.127, 0.737, 1.409, 1.577, 0.868,
		2.275, 3.035, 3.157, 3.199, 3.069, 2.878, 2.354, 1.577,
		1.648, 2.235, 2.324, 1.804, 0.674, 0.466, 0.804, 0.839,
		1.007, 1.277,
	}
	splineC3 = [...]float64{
		776.247, 1303.151, -298.291, 184.811, 108.771, 61.953, -6.572, 10.505,
		38.333, 41.731, -1.126, 4.629, -6.806, 2.944, 2.658, 0.261,
		-2.389, 2.284, -5.148, 3.011, 0.269, 0.152, 1.842, -2.474,
		3.138, 2.443, -1.329, 0.831, -1.643, -0.856, -0.831, -0.449,
		-0.022, 2.086, -1.232, 0.22, -0.61, 1.282, -1.115, 0.406,
		1.002, -0.242, 0.364, -0.323, 0.193, -0.384, -0.14, -0.637,
		0.708, -0.121, 0.21, -0.729, -0.402, 0.194, 0.144, -0.109,
		0.277, -0.007,
	}
	splineC4 = [...]float64{
		409.16, -503.433, 1085.087, -25.346, -24.641, -29.414, 16.197, 3.018,
		-2.127, -37.939, 1.918, -3.812, 3.25, -0.096, -0.539, -0.883,
		1.558, -2.477, 2.72, -0.914, -0.039, 0.563, -1.438, 1.871,
		-0.232, -1.257, 0.72, -0.825, 0.262, 0.008, 0.127, 0.142,
		0.702, -1.106, 0.614, -0.277, 0.631, -0.799, 0.507, 0.199,
		-0.414, 0.202, -0.229, 0.172, -0.192, 0.081, -0.165, 0.448,
		-0.276, 0.11, -0.313, 0.109, 0.199, -0.017, -0.084, 0.128,
		-0.095, -0.139,
	}
	leapSecondBoundaries = [...]float64{
		2457754.5, 2457204.5, 2456109.5, 2454832.5,
		2453736.5, 2451179.5, 2450630.5, 2450083.5,
		2449534.5, 2449169.5, 2448804.5, 2448257.5,
		2447892.5, 2447161.5, 2446247.5, 2445516.5,
		2445151.5, 2444786.5, 2444239.5, 2443874.5,
		2443509.5, 2443144.5, 2442778.5, 2442413.5,
		2442048.5, 2441683.5, 2441499.5, 2441133.5,
	}
)
