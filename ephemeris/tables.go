// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

const (
	firstYear = 1900
	lastYear  = 3000
)

// solarTermCorrections holds, per year starting at firstYear, the minute
// corrections (biased by 5) applied to the harmonic series for each of the
// 24 solar terms. The reference instants are the apparent solar longitudes
// at multiples of 15°, computed from the truncated VSOP87 series with
// nutation and aberration, converted to UT and rounded to the minute.
var solarTermCorrections = [...][24]int8{
	{4, 3, 3, 3, 3, 3, 2, 2, 1, 1, 1, 1, 1, 3, 3, 6, 5, 8, 6, 8, 7, 7, 6, 5}, // 1900
	{4, 2, 1, 1, 2, 2, 3, 3, 5, 5, 6, 6, 7, 6, 7, 5, 6, 5, 6, 5, 5, 6, 5, 5}, // 1901
	{5, 5, 4, 4, 4, 6, 5, 7, 6, 7, 6, 6, 4, 4, 3, 2, 1, 1, 0, 1, 3, 3, 6, 6}, // 1902
	{8, 7, 9, 7, 7, 6, 5, 4, 3, 1, 1, 1, 1, 2, 1, 2, 2, 2, 2, 4, 3, 5, 5, 6}, // 1903
	{5, 7, 6, 6, 5, 5, 4, 3, 2, 2, 2, 2, 3, 5, 7, 7, 8, 7, 8, 6, 6, 4, 4, 3}, // 1904
	{3, 3, 3, 4, 4, 6, 6, 7, 7, 8, 7, 9, 8, 9, 9, 9, 9, 9, 8, 8, 6, 5, 5, 3}, // 1905
	{4, 3, 3, 3, 6, 5, 8, 7, 9, 9, 9, 8, 8, 6, 6, 6, 5, 5, 5, 6, 6, 7, 6, 7}, // 1906
	{6, 7, 5, 6, 4, 4, 3, 4, 3, 3, 2, 2, 3, 2, 4, 3, 6, 5, 7, 8, 10, 9, 11, 9}, // 1907
	{11, 8, 7, 5, 4, 2, 0, 0, -1, 1, 0, 1, 2, 5, 5, 7, 6, 8, 7, 8, 8, 8, 8, 8}, // 1908
	{8, 7, 6, 5, 5, 3, 3, 2, 3, 2, 3, 3, 5, 5, 7, 6, 6, 5, 5, 4, 4, 4, 3, 5}, // 1909
	{5, 7, 6, 9, 8, 10, 8, 8, 6, 5, 3, 2, 2, 1, 1, 0, 0, 0, 1, 0, 1, 2, 3, 3}, // 1910
	{5, 5, 7, 6, 7, 7, 6, 5, 3, 1, 0, -2, -2, -3, -3, -1, -2, 0, 1, 3, 2, 4, 3, 4}, // 1911
	{2, 3, 2, 3, 3, 2, 3, 2, 3, 1, 1, 1, 1, 1, 2, 1, 3, 3, 4, 4, 4, 4, 3, 3}, // 1912
	{2, 1, 0, 1, -1, 1, 1, 4, 4, 6, 6, 7, 6, 6, 4, 4, 2, 2, 2, 2, 2, 2, 3, 2}, // 1913
	{3, 2, 4, 2, 4, 3, 5, 4, 5, 5, 6, 5, 5, 4, 3, 2, 0, 0, -1, 0, -1, 2, 2, 5}, // 1914
	{5, 7, 7, 8, 6, 5, 3, 2, 2, 0, 1, 0, 0, 1, 2, 2, 3, 2, 3, 3, 4, 4, 6, 5}, // 1915
	{7, 6, 7, 6, 5, 4, 3, 3, 1, 2, 0, 2, 3, 5, 5, 8, 8, 9, 8, 8, 6, 5, 5, 4}, // 1916
	{5, 4, 4, 5, 6, 6, 7, 7, 7, 7, 8, 6, 7, 7, 8, 8, 8, 7, 7, 7, 7, 6, 5, 5}, // 1917
	{4, 4, 5, 6, 7, 9, 10, 10, 10, 10, 9, 8, 7, 5, 5, 3, 3, 3, 5, 4, 6, 6, 8, 7}, // 1918
	{9, 7, 8, 6, 6, 6, 6, 6, 5, 5, 4, 4, 3, 3, 1, 2, 1, 4, 3, 6, 6, 9, 8, 9}, // 1919
	{8, 8, 6, 6, 4, 3, 3, 2, 3, 2, 4, 4, 6, 6, 7, 7, 7, 7, 7, 6, 7, 6, 6, 6}, // 1920
	{6, 6, 5, 5, 4, 4, 3, 5, 4, 6, 7, 9, 9, 9, 8, 9, 7, 6, 5, 4, 3, 3, 4, 3}, // 1921
	{4, 4, 6, 6, 7, 7, 8, 7, 7, 6, 6, 5, 6, 6, 5, 5, 4, 4, 3, 4, 2, 3, 3, 5}, // 1922
	{4, 6, 5, 6, 7, 6, 5, 3, 3, 0, 0, -1, 0, 0, 2, 3, 5, 4, 7, 5, 7, 5, 6, 5}, // 1923
	{4, 3, 2, 2, 1, 0, -1, 0, 0, 1, 0, 1, 0, 2, 4, 5, 6, 8, 7, 8, 8, 7, 7, 5}, // 1924
	{5, 3, 3, 1, 2, 1, 2, 2, 3, 3, 5, 4, 5, 5, 5, 5, 4, 5, 5, 6, 5, 5, 5, 6}, // 1925
	{5, 5, 5, 5, 5, 5, 4, 4, 4, 4, 3, 3, 2, 1, 1, -1, 0, -2, 0, 0, 2, 3, 5, 6}, // 1926
	{7, 8, 8, 7, 7, 6, 4, 3, 1, 0, -1, -1, -2, -1, -1, 1, -1, 2, 1, 2, 3, 4, 4, 5}, // 1927
	{6, 6, 7, 6, 6, 4, 5, 3, 3, 2, 1, 0, 2, 2, 3, 5, 5, 5, 6, 5, 4, 4, 2, 2}, // 1928
	{2, 2, 2, 4, 4, 5, 6, 7, 7, 9, 8, 8, 8, 7, 6, 6, 5, 5, 5, 4, 5, 3, 3, 2}, // 1929
	{3, 2, 4, 3, 6, 7, 8, 9, 9, 9, 8, 8, 6, 6, 4, 3, 1, 2, 1, 4, 3, 5, 6, 7}, // 1930
	{6, 7, 6, 5, 4, 4, 4, 4, 4, 3, 3, 2, 3, 3, 3, 3, 4, 3, 5, 5, 7, 7, 8, 8}, // 1931
	{8, 7, 6, 5, 2, 2, 1, 1, 0, 2, 2, 4, 5, 6, 7, 8, 8, 8, 7, 7, 7, 7, 7, 6}, // 1932
	{7, 5, 7, 5, 5, 4, 5, 4, 4, 5, 6, 7, 7, 9, 9, 9, 7, 8, 5, 5, 4, 4, 3, 4}, // 1933
	{4, 6, 6, 8, 9, 9, 9, 9, 7, 6, 5, 4, 4, 3, 3, 3, 3, 2, 3, 2, 3, 3, 4, 5}, // 1934
	{5, 5, 6, 7, 7, 7, 6, 6, 4, 3, 1, 1, -1, 1, 0, 2, 2, 4, 4, 6, 6, 7, 6, 5}, // 1935
	{5, 4, 3, 1, 2, 1, 3, 2, 3, 2, 4, 2, 3, 3, 4, 4, 6, 6, 6, 6, 6, 7, 5, 5}, // 1936
	{3, 3, 1, 2, 0, 2, 1, 4, 4, 6, 7, 8, 7, 7, 7, 5, 5, 3, 5, 4, 5, 4, 6, 4}, // 1937
	{6, 4, 5, 4, 5, 4, 4, 4, 4, 4, 4, 5, 5, 4, 3, 3, 1, 1, 0, 2, 1, 3, 4, 6}, // 1938
	{7, 8, 8, 7, 6, 4, 3, 1, 1, -2, 0, -1, 0, 0, 3, 3, 4, 4, 5, 5, 6, 6, 6, 7}, // 1939
	{7, 8, 6, 7, 5, 5, 3, 3, 1, 0, 0, 1, 1, 3, 5, 7, 9, 8, 9, 8, 8, 6, 6, 4}, // 1940
	{5, 3, 5, 4, 4, 4, 6, 5, 6, 5, 5, 5, 5, 5, 5, 6, 6, 7, 6, 7, 6, 6, 5, 6}, // 1941
	{4, 5, 5, 6, 7, 8, 9, 9, 9, 7, 7, 5, 4, 2, 2, 0, 1, 1, 2, 3, 5, 6, 8, 8}, // 1942
	{9, 8, 7, 7, 6, 6, 5, 4, 3, 3, 1, 1, 0, 0, 0, 1, 0, 2, 3, 5, 5, 7, 8, 8}, // 1943
	{9, 7, 7, 5, 5, 3, 4, 2, 3, 2, 3, 3, 4, 4, 5, 5, 4, 5, 5, 5, 4, 5, 4, 6}, // 1944
	{4, 6, 5, 5, 5, 5, 5, 6, 6, 6, 6, 7, 7, 7, 6, 5, 5, 2, 3, 1, 2, 0, 1, 1}, // 1945
	{3, 3, 5, 6, 8, 8, 8, 9, 7, 7, 5, 5, 3, 4, 2, 3, 0, 1, 0, 0, 0, 1, 1, 2}, // 1946
	{3, 3, 5, 4, 5, 5, 6, 4, 4, 2, 2, 0, 1, 0, 1, 2, 3, 3, 4, 4, 5, 4, 4, 4}, // 1947
	{3, 3, 1, 2, 1, 0, 1, 1, 1, 2, 3, 4, 4, 5, 6, 5, 7, 7, 8, 6, 7, 6, 6, 4}, // 1948
	{4, 1, 3, 1, 1, 1, 2, 4, 4, 6, 7, 8, 8, 9, 7, 7, 5, 5, 4, 5, 4, 5, 4, 6}, // 1949
	{5, 6, 6, 6, 5, 5, 6, 6, 6, 5, 6, 4, 5, 4, 4, 2, 3, 1, 2, 2, 3, 4, 6, 7}, // 1950
	{7, 8, 8, 9, 7, 7, 5, 5, 2, 2, 0, 2, 1, 2, 3, 3, 4, 5, 5, 5, 5, 5, 6, 5}, // 1951
	{8, 6, 8, 6, 7, 5, 6, 4, 5, 3, 4, 3, 5, 6, 7, 8, 9, 10, 9, 9, 7, 7, 5, 5}, // 1952
	{3, 3, 2, 4, 4, 6, 7, 8, 8, 8, 9, 9, 9, 8, 8, 7, 8, 7, 8, 7, 7, 6, 6, 5}, // 1953
	{4, 4, 4, 5, 5, 7, 7, 8, 8, 8, 7, 8, 6, 6, 4, 4, 3, 4, 3, 5, 6, 8, 8, 9}, // 1954
	{9, 8, 8, 6, 6, 3, 3, 2, 3, 1, 1, 0, 1, 2, 3, 3, 4, 5, 6, 7, 7, 8, 9, 10}, // 1955
	{8, 8, 5, 5, 3, 2, 0, -1, -1, -1, 0, 2, 3, 4, 6, 6, 8, 7, 8, 6, 7, 6, 7, 6}, // 1956
	{8, 7, 7, 6, 6, 5, 5, 5, 4, 4, 3, 5, 5, 6, 6, 6, 6, 5, 4, 4, 3, 4, 3, 4}, // 1957
	{5, 5, 7, 7, 8, 8, 9, 6, 7, 4, 3, 1, 1, -1, 1, -1, 1, 0, 1, 1, 2, 3, 3, 5}, // 1958
	{4, 5, 5, 6, 6, 6, 5, 5, 3, 2, 0, -1, -2, -2, -2, -1, 1, 2, 3, 4, 5, 5, 6, 4}, // 1959
	{4, 3, 3, 1, 2, 1, 2, 2, 2, 3, 3, 3, 2, 3, 2, 4, 3, 4, 4, 6, 5, 6, 4, 5}, // 1960
	{3, 3, 1, 1, 0, 2, 2, 3, 5, 5, 7, 7, 7, 6, 6, 3, 4, 1, 2, 1, 2, 2, 4, 4}, // 1961
	{5, 5, 5, 5, 5, 6, 5, 5, 5, 6, 5, 5, 4, 4, 3, 2, 0, 0, -1, -1, 0, 2, 4, 5}, // 1962
	{7, 7, 8, 7, 8, 5, 5, 3, 2, 0, 1, 0, 1, 2, 2, 3, 5, 5, 4, 5, 4, 4, 3, 5}, // 1963
	{4, 5, 4, 6, 4, 5, 4, 4, 3, 3, 3, 4, 5, 6, 8, 8, 9, 8, 10, 7, 9, 6, 6, 4}, // 1964
	{4, 3, 3, 3, 5, 6, 7, 9, 8, 10, 8, 9, 9, 9, 8, 9, 8, 9, 7, 8, 7, 6, 6, 6}, // 1965
	{5, 4, 6, 6, 7, 7, 9, 9, 10, 8, 9, 7, 6, 5, 4, 4, 4, 3, 4, 5, 6, 7, 8, 9}, // 1966
	{8, 9, 8, 8, 6, 6, 5, 5, 3, 4, 3, 3, 3, 3, 4, 4, 4, 5, 6, 6, 8, 7, 10, 9}, // 1967
	{9, 7, 8, 5, 5, 4, 3, 3, 2, 3, 3, 5, 5, 7, 7, 8, 7, 8, 7, 7, 6, 6, 6, 6}, // 1968
	{5, 6, 5, 5, 6, 6, 6, 6, 7, 6, 8, 7, 8, 8, 8, 7, 7, 5, 6, 4, 4, 3, 3, 4}, // 1969
	{4, 6, 5, 7, 7, 8, 7, 8, 6, 6, 4, 4, 3, 3, 3, 3, 2, 3, 2, 3, 3, 3, 5, 4}, // 1970
	{6, 4, 5, 4, 5, 3, 3, 2, 2, 0, 0, -1, -1, -1, 0, 2, 3, 5, 6, 8, 7, 8, 7, 7}, // 1971
	{5, 5, 3, 3, 1, 1, 0, 1, 0, 0, 2, 2, 3, 3, 5, 5, 6, 5, 8, 7, 8, 7, 8, 6}, // 1972
	{6, 4, 3, 2, 2, 3, 1, 3, 2, 4, 4, 5, 5, 5, 5, 4, 2, 3, 2, 3, 3, 5, 5, 5}, // 1973
	{7, 7, 8, 7, 8, 7, 7, 5, 6, 4, 4, 2, 2, 1, 1, 0, 0, 0, -1, 1, 2, 3, 5, 8}, // 1974
	{7, 10, 9, 10, 9, 8, 6, 5, 2, 1, 0, -1, -2, -1, 0, 1, 3, 2, 4, 4, 5, 4, 6, 4}, // 1975
	{6, 5, 6, 6, 7, 6, 6, 6, 5, 5, 3, 4, 3, 5, 4, 6, 6, 7, 6, 7, 6, 6, 5, 4}, // 1976
	{3, 3, 3, 3, 4, 6, 8, 9, 10, 10, 11, 9, 9, 7, 8, 5, 5, 5, 4, 4, 5, 5, 5, 5}, // 1977
	{4, 5, 4, 6, 5, 7, 8, 9, 9, 10, 8, 8, 7, 5, 4, 3, 3, 1, 2, 3, 4, 5, 8, 7}, // 1978
	{9, 8, 9, 6, 6, 5, 4, 3, 3, 3, 3, 3, 3, 5, 4, 5, 5, 6, 5, 7, 6, 8, 7, 9}, // 1979
	{8, 8, 7, 6, 5, 4, 3, 2, 3, 3, 4, 5, 7, 8, 10, 9, 10, 8, 9, 6, 6, 5, 5, 5}, // 1980
	{5, 6, 6, 6, 6, 7, 6, 7, 7, 8, 6, 9, 8, 9, 9, 9, 8, 7, 6, 6, 4, 3, 4, 3}, // 1981
	{5, 5, 7, 7, 9, 10, 10, 9, 10, 7, 7, 5, 4, 4, 3, 4, 3, 5, 4, 4, 4, 5, 4, 5}, // 1982
	{4, 6, 5, 6, 6, 6, 6, 5, 4, 4, 2, 2, 2, 1, 2, 3, 4, 5, 8, 7, 8, 7, 7, 6}, // 1983
	{5, 3, 3, 2, 2, 2, 2, 3, 3, 5, 5, 6, 5, 7, 6, 8, 7, 8, 7, 8, 8, 7, 7, 6}, // 1984
	{5, 3, 3, 2, 1, 1, 3, 4, 6, 7, 8, 8, 9, 8, 7, 6, 6, 4, 3, 4, 4, 4, 5, 6}, // 1985
	{6, 7, 5, 7, 6, 6, 5, 5, 4, 5, 4, 4, 4, 4, 4, 4, 4, 3, 3, 2, 3, 4, 6, 6}, // 1986
	{8, 8, 9, 8, 7, 6, 4, 3, 1, 1, -1, 0, 0, 2, 2, 4, 5, 7, 6, 8, 7, 8, 6, 6}, // 1987
	{5, 6, 4, 5, 4, 4, 4, 2, 3, 1, 2, 2, 4, 4, 6, 6, 9, 8, 10, 8, 9, 8, 7, 7}, // 1988
	{5, 5, 4, 4, 5, 6, 6, 8, 7, 9, 8, 8, 7, 6, 6, 7, 6, 6, 7, 6, 7, 7, 8, 7}, // 1989
	{8, 6, 8, 7, 8, 7, 8, 7, 8, 6, 5, 4, 3, 3, 1, 2, 1, 1, 2, 4, 5, 7, 8, 10}, // 1990
	{9, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 1, 2, 1, 2, 1, 3, 2, 5, 5, 7, 7, 9, 8}, // 1991
	{9, 9, 9, 7, 6, 5, 4, 4, 3, 4, 2, 4, 4, 5, 5, 6, 5, 6, 5, 5, 4, 5, 5, 4}, // 1992
	{5, 4, 6, 5, 6, 6, 8, 6, 8, 7, 8, 6, 7, 6, 6, 5, 4, 4, 2, 2, 1, 1, 1, 3}, // 1993
	{3, 5, 4, 7, 7, 9, 8, 9, 7, 7, 5, 4, 4, 2, 2, 1, 2, 1, 1, 1, 2, 2, 4, 3}, // 1994
	{5, 3, 4, 4, 4, 4, 3, 4, 3, 3, 1, 1, 0, 2, 2, 3, 3, 6, 5, 6, 7, 7, 5, 5}, // 1995
	{4, 3, 2, 1, 1, 0, 1, 1, 3, 2, 4, 4, 6, 6, 8, 7, 8, 6, 7, 7, 7, 7, 6, 6}, // 1996
	{5, 4, 3, 4, 2, 3, 3, 4, 5, 7, 7, 9, 8, 8, 8, 7, 6, 6, 5, 4, 5, 5, 6, 6}, // 1997
	{7, 7, 9, 8, 9, 7, 8, 6, 6, 5, 4, 4, 4, 4, 3, 4, 3, 4, 3, 4, 4, 5, 5, 8}, // 1998
	{8, 9, 9, 10, 9, 9, 8, 6, 5, 2, 3, 1, 2, 2, 4, 5, 7, 7, 8, 7, 8, 7, 7, 7}, // 1999
	{6, 6, 6, 6, 5, 7, 6, 7, 6, 7, 6, 7, 6, 7, 8, 9, 10, 10, 10, 10, 9, 8, 7, 5}, // 2000
	{5, 3, 4, 3, 5, 6, 8, 9, 11, 11, 11, 11, 11, 10, 8, 8, 7, 7, 7, 7, 7, 8, 6, 8}, // 2001
	{7, 8, 6, 7, 6, 7, 7, 7, 8, 7, 7, 7, 6, 5, 5, 3, 3, 2, 4, 3, 6, 7, 9, 8}, // 2002
	{10, 8, 8, 6, 4, 3, 2, 2, 1, 2, 0, 2, 1, 4, 3, 5, 4, 6, 6, 8, 8, 8, 8, 9}, // 2003
	{9, 8, 7, 5, 5, 3, 3, 1, 2, 1, 3, 3, 6, 6, 8, 8, 8, 8, 7, 6, 6, 6, 6, 6}, // 2004
	{5, 6, 6, 7, 6, 6, 5, 6, 5, 6, 4, 5, 5, 6, 6, 5, 5, 5, 4, 3, 3, 2, 3, 3}, // 2005
	{5, 5, 7, 7, 9, 9, 10, 8, 7, 6, 4, 3, 1, 0, 0, 1, 1, 2, 1, 3, 3, 5, 5, 6}, // 2006
	{5, 6, 6, 6, 6, 6, 5, 5, 4, 2, 2, -1, -1, -1, 0, 0, 2, 2, 5, 6, 7, 7, 7, 7}, // 2007
	{6, 5, 4, 3, 3, 3, 2, 4, 3, 6, 4, 5, 4, 5, 5, 5, 4, 5, 5, 6, 6, 6, 6, 5}, // 2008
	{6, 4, 5, 4, 5, 4, 6, 6, 7, 8, 8, 8, 9, 8, 6, 5, 3, 3, 1, 1, 0, 3, 3, 5}, // 2009
	{6, 8, 8, 9, 9, 8, 8, 7, 7, 5, 5, 4, 4, 3, 4, 2, 3, 1, 1, 1, 2, 3, 5, 4}, // 2010
	{7, 7, 8, 8, 7, 8, 6, 6, 3, 4, 2, 2, 3, 4, 4, 6, 7, 7, 7, 7, 6, 6, 6, 5}, // 2011
	{5, 4, 5, 4, 6, 4, 5, 5, 6, 6, 7, 7, 8, 9, 10, 11, 11, 11, 10, 10, 8, 9, 6, 6}, // 2012
	{4, 5, 3, 4, 5, 6, 7, 8, 9, 10, 11, 11, 11, 11, 10, 9, 10, 8, 9, 7, 9, 8, 8, 8}, // 2013
	{8, 7, 8, 7, 8, 9, 8, 9, 8, 8, 7, 7, 6, 7, 5, 6, 4, 6, 5, 8, 8, 10, 10, 11}, // 2014
	{11, 11, 9, 9, 8, 6, 5, 3, 4, 3, 4, 2, 4, 4, 5, 5, 7, 8, 9, 9, 9, 10, 9, 10}, // 2015
	{9, 9, 8, 8, 6, 7, 4, 5, 4, 5, 5, 7, 7, 8, 9, 10, 11, 10, 9, 8, 9, 7, 7, 6}, // 2016
	{7, 6, 7, 6, 7, 7, 8, 8, 8, 8, 8, 8, 8, 8, 7, 7, 6, 7, 5, 5, 4, 4, 3, 5}, // 2017
	{4, 5, 5, 7, 7, 7, 8, 8, 8, 5, 6, 3, 3, 2, 2, 2, 4, 3, 4, 4, 5, 6, 6, 6}, // 2018
	{6, 5, 5, 4, 3, 4, 2, 3, 2, 3, 1, 1, 0, 2, 1, 3, 4, 6, 6, 8, 8, 7, 8, 6}, // 2019
	{5, 3, 3, 0, 0, -1, 0, -1, 1, 0, 3, 3, 5, 5, 6, 6, 6, 6, 6, 6, 6, 7, 6, 7}, // 2020
	{5, 5, 4, 4, 3, 4, 4, 4, 4, 5, 6, 6, 7, 6, 6, 5, 5, 3, 3, 2, 3, 3, 6, 5}, // 2021
	{7, 8, 9, 9, 9, 9, 7, 6, 4, 4, 2, 2, 1, 2, 1, 2, 1, 2, 2, 3, 3, 5, 6, 6}, // 2022
	{8, 8, 10, 9, 9, 7, 7, 5, 5, 2, 1, -1, 0, 1, 3, 3, 5, 6, 7, 8, 7, 8, 7, 7}, // 2023
	{5, 6, 5, 7, 6, 7, 6, 7, 7, 7, 6, 6, 6, 6, 6, 6, 8, 7, 9, 8, 9, 7, 7, 5}, // 2024
	{5, 4, 5, 4, 6, 6, 9, 10, 11, 11, 11, 11, 9, 8, 6, 6, 4, 5, 3, 5, 5, 6, 6, 8}, // 2025
	{7, 7, 7, 7, 8, 8, 9, 8, 9, 8, 8, 6, 6, 4, 4, 2, 3, 1, 2, 2, 5, 6, 7, 9}, // 2026
	{9, 9, 8, 8, 5, 6, 4, 5, 3, 4, 2, 4, 4, 5, 5, 6, 5, 6, 6, 6, 7, 7, 7, 7}, // 2027
	{8, 7, 7, 5, 6, 4, 4, 3, 3, 4, 5, 6, 8, 9, 9, 10, 9, 9, 7, 7, 5, 5, 4, 5}, // 2028
	{4, 6, 5, 7, 7, 8, 8, 8, 9, 8, 8, 8, 8, 8, 9, 8, 9, 7, 6, 5, 5, 4, 4, 4}, // 2029
	{4, 5, 6, 7, 8, 9, 8, 9, 7, 7, 4, 4, 2, 3, 2, 3, 3, 5, 5, 6, 6, 7, 7, 7}, // 2030
	{7, 5, 6, 4, 5, 4, 5, 3, 4, 2, 3, 2, 2, 2, 2, 4, 5, 7, 8, 10, 9, 11, 9, 9}, // 2031
	{6, 6, 3, 4, 2, 2, 2, 3, 3, 4, 5, 6, 7, 7, 7, 7, 7, 7, 8, 7, 8, 7, 8, 7}, // 2032
	{7, 5, 6, 5, 5, 4, 5, 6, 6, 7, 7, 8, 7, 8, 7, 7, 4, 4, 3, 4, 3, 5, 6, 8}, // 2033
	{8, 8, 9, 9, 9, 8, 9, 6, 6, 4, 4, 3, 3, 2, 2, 2, 3, 2, 3, 2, 3, 5, 5, 7}, // 2034
	{7, 8, 7, 8, 6, 7, 5, 5, 2, 2, 0, 1, 1, 2, 3, 4, 6, 6, 8, 8, 8, 7, 7, 6}, // 2035
	{6, 5, 5, 4, 5, 5, 6, 5, 5, 5, 6, 7, 7, 8, 8, 9, 8, 9, 8, 9, 8, 9, 6, 7}, // 2036
	{5, 5, 4, 5, 5, 6, 7, 8, 9, 8, 9, 9, 9, 8, 8, 6, 6, 5, 6, 5, 6, 6, 7, 7}, // 2037
	{8, 8, 8, 8, 7, 8, 8, 8, 6, 7, 6, 6, 4, 4, 3, 3, 2, 3, 3, 5, 6, 7, 8, 9}, // 2038
	{10, 10, 11, 8, 8, 6, 5, 4, 3, 2, 2, 1, 2, 3, 3, 4, 5, 6, 6, 7, 6, 8, 7, 8}, // 2039
	{8, 9, 7, 8, 6, 6, 6, 5, 5, 4, 5, 5, 6, 6, 8, 7, 8, 7, 7, 6, 6, 4, 5, 4}, // 2040
	{5, 4, 5, 6, 7, 9, 9, 10, 9, 10, 8, 9, 7, 8, 6, 6, 4, 5, 3, 3, 2, 2, 2, 3}, // 2041
	{3, 4, 5, 6, 7, 8, 9, 9, 9, 7, 6, 4, 4, 2, 2, 1, 2, 2, 3, 3, 4, 5, 4, 5}, // 2042
	{4, 4, 3, 4, 3, 4, 3, 4, 3, 4, 3, 3, 3, 3, 4, 4, 5, 5, 7, 7, 8, 7, 7, 5}, // 2043
	{5, 4, 3, 1, 2, 1, 2, 2, 3, 5, 6, 7, 8, 9, 8, 9, 8, 8, 6, 7, 6, 7, 6, 6}, // 2044
	{6, 6, 4, 4, 4, 4, 6, 5, 7, 7, 8, 8, 10, 9, 10, 8, 7, 6, 5, 4, 4, 4, 5, 7}, // 2045
	{7, 9, 9, 10, 9, 10, 8, 8, 6, 6, 4, 4, 4, 4, 5, 5, 6, 6, 6, 6, 7, 6, 7, 7}, // 2046
	{9, 7, 9, 8, 8, 7, 7, 6, 5, 4, 3, 2, 3, 4, 5, 7, 8, 10, 10, 12, 11, 10, 8, 8}, // 2047
	{6, 7, 5, 6, 6, 6, 6, 6, 8, 7, 8, 8, 8, 8, 9, 9, 11, 10, 12, 11, 12, 11, 11, 9}, // 2048
	{7, 6, 5, 5, 5, 6, 7, 9, 10, 11, 10, 10, 8, 9, 7, 7, 5, 6, 6, 6, 7, 8, 8, 9}, // 2049
	{9, 8, 9, 7, 7, 6, 7, 5, 6, 5, 5, 4, 4, 3, 2, 3, 3, 3, 4, 4, 6, 9, 9, 11}, // 2050
	{10, 11, 9, 9, 6, 5, 2, 3, 1, 1, 0, 2, 2, 3, 4, 4, 5, 5, 7, 6, 7, 7, 8, 8}, // 2051
	{8, 7, 7, 6, 5, 4, 3, 2, 1, 2, 2, 4, 4, 6, 6, 7, 7, 7, 5, 6, 4, 5, 4, 5}, // 2052
	{4, 4, 5, 5, 7, 6, 8, 8, 8, 7, 7, 6, 6, 5, 5, 5, 5, 4, 3, 3, 2, 2, 3, 4}, // 2053
	{4, 5, 6, 8, 7, 9, 8, 8, 6, 6, 3, 3, 0, 0, 0, 0, 1, 2, 3, 3, 5, 5, 6, 6}, // 2054
	{6, 5, 6, 4, 4, 4, 4, 3, 3, 2, 1, 1, 1, 2, 1, 3, 3, 6, 5, 7, 8, 8, 7, 8}, // 2055
	{6, 6, 4, 3, 3, 2, 3, 3, 4, 4, 5, 6, 6, 7, 7, 5, 6, 5, 6, 4, 6, 6, 7, 6}, // 2056
	{6, 6, 5, 6, 6, 6, 6, 8, 7, 8, 8, 9, 7, 8, 6, 5, 3, 2, 2, 2, 1, 2, 4, 4}, // 2057
	{7, 7, 9, 9, 10, 9, 9, 7, 7, 5, 5, 4, 3, 3, 2, 3, 2, 3, 3, 4, 3, 4, 3, 5}, // 2058
	{4, 7, 6, 7, 7, 7, 7, 6, 6, 4, 4, 4, 4, 4, 5, 5, 8, 7, 9, 8, 9, 7, 7, 5}, // 2059
	{4, 3, 4, 3, 4, 4, 5, 6, 7, 8, 8, 10, 9, 11, 10, 11, 9, 10, 9, 9, 8, 8, 7, 6}, // 2060
	{6, 4, 4, 4, 6, 5, 8, 8, 11, 10, 12, 11, 11, 10, 10, 8, 8, 7, 7, 7, 7, 7, 8, 9}, // 2061
	{8, 9, 8, 9, 8, 8, 7, 7, 6, 7, 6, 6, 6, 5, 5, 4, 5, 5, 6, 6, 8, 8, 10, 10}, // 2062
	{11, 10, 10, 9, 8, 6, 5, 4, 2, 3, 2, 3, 3, 5, 6, 8, 7, 9, 9, 10, 9, 9, 9, 9}, // 2063
	{9, 9, 8, 7, 7, 6, 6, 5, 5, 4, 5, 5, 7, 7, 9, 9, 10, 9, 9, 7, 8, 6, 6, 6}, // 2064
	{5, 5, 5, 6, 6, 9, 8, 9, 8, 9, 7, 8, 6, 6, 6, 6, 5, 6, 5, 4, 5, 4, 5, 4}, // 2065
	{6, 5, 8, 6, 8, 8, 8, 7, 7, 5, 4, 2, 1, 0, 0, 0, 0, 2, 3, 4, 5, 7, 6, 7}, // 2066
	{5, 6, 4, 3, 2, 2, 1, 1, 1, 0, 1, 0, 1, 1, 1, 2, 3, 3, 5, 6, 7, 7, 8, 7}, // 2067
	{7, 5, 4, 3, 1, 1, 1, 1, 1, 3, 4, 5, 5, 6, 6, 7, 5, 5, 3, 5, 5, 5, 6, 6}, // 2068
	{6, 6, 7, 6, 6, 4, 6, 5, 5, 4, 6, 5, 6, 6, 5, 5, 4, 2, 2, 2, 1, 2, 2, 5}, // 2069
	{6, 8, 9, 10, 10, 10, 8, 7, 5, 4, 3, 2, 1, 1, 1, 1, 3, 2, 4, 4, 5, 4, 6, 5}, // 2070
	{7, 7, 8, 7, 8, 8, 7, 6, 5, 4, 3, 3, 1, 2, 3, 6, 5, 9, 7, 10, 9, 8, 7, 6}, // 2071
	{6, 5, 5, 5, 5, 6, 7, 7, 9, 7, 9, 8, 8, 8, 9, 8, 9, 8, 8, 8, 9, 7, 7, 7}, // 2072
	{6, 5, 5, 5, 5, 7, 8, 10, 11, 11, 11, 11, 10, 9, 7, 6, 5, 4, 4, 4, 5, 5, 7, 6}, // 2073
	{8, 7, 9, 7, 8, 7, 8, 7, 7, 7, 6, 6, 5, 5, 3, 4, 2, 3, 3, 4, 5, 6, 7, 8}, // 2074
	{7, 9, 7, 6, 6, 5, 4, 3, 3, 2, 3, 3, 5, 5, 7, 6, 8, 7, 8, 6, 6, 6, 6, 6}, // 2075
	{6, 6, 4, 5, 4, 5, 4, 4, 4, 5, 6, 7, 8, 9, 10, 10, 9, 9, 7, 7, 5, 4, 3, 2}, // 2076
	{3, 2, 4, 4, 6, 6, 8, 7, 8, 8, 9, 7, 7, 8, 7, 7, 7, 6, 6, 4, 4, 4, 3, 4}, // 2077
	{4, 5, 4, 6, 6, 7, 7, 7, 6, 5, 4, 4, 3, 2, 3, 2, 4, 4, 6, 6, 8, 7, 9, 7}, // 2078
	{7, 5, 5, 3, 2, 3, 1, 2, 1, 2, 1, 2, 1, 4, 3, 5, 5, 7, 7, 9, 9, 10, 9, 9}, // 2079
	{8, 6, 5, 3, 2, 1, 2, 2, 3, 4, 5, 6, 7, 8, 8, 8, 8, 7, 7, 7, 7, 7, 8, 9}, // 2080
	{7, 8, 7, 7, 6, 7, 6, 6, 6, 6, 6, 6, 5, 5, 5, 4, 4, 3, 3, 2, 4, 3, 5, 5}, // 2081
	{7, 8, 9, 8, 9, 8, 8, 6, 4, 3, 2, 1, 0, 1, 0, 1, 1, 3, 3, 5, 4, 6, 6, 7}, // 2082
	{6, 7, 6, 6, 6, 6, 6, 4, 4, 3, 3, 1, 2, 2, 4, 4, 5, 6, 8, 8, 8, 8, 8, 7}, // 2083
	{5, 5, 3, 4, 2, 3, 3, 4, 5, 6, 5, 7, 6, 7, 7, 6, 6, 6, 6, 6, 7, 7, 7, 5}, // 2084
	{6, 4, 6, 4, 6, 4, 7, 6, 8, 8, 8, 8, 7, 6, 6, 5, 4, 4, 3, 4, 3, 6, 5, 8}, // 2085
	{8, 10, 9, 9, 7, 7, 6, 6, 5, 3, 3, 2, 2, 1, 2, 1, 2, 2, 3, 3, 5, 6, 8, 8}, // 2086
	{10, 10, 9, 8, 7, 6, 4, 4, 1, 2, 0, 1, 0, 2, 4, 5, 5, 7, 6, 7, 7, 6, 6, 7}, // 2087
	{7, 6, 7, 6, 8, 6, 6, 5, 6, 5, 5, 4, 6, 6, 7, 7, 7, 6, 6, 6, 4, 4, 3, 4}, // 2088
	{2, 4, 3, 6, 7, 9, 9, 11, 10, 9, 8, 7, 6, 4, 4, 3, 3, 2, 2, 1, 3, 2, 3, 2}, // 2089
	{3, 3, 5, 4, 6, 7, 7, 8, 7, 7, 4, 4, 2, 2, 0, 1, -1, 2, 2, 4, 4, 6, 5, 5}, // 2090
	{5, 4, 3, 2, 2, 2, 2, 1, 4, 2, 4, 3, 4, 3, 5, 4, 5, 5, 6, 6, 7, 7, 7, 7}, // 2091
	{5, 4, 2, 2, 0, 1, 0, 2, 3, 5, 6, 8, 8, 9, 9, 8, 8, 6, 6, 5, 5, 4, 5, 4}, // 2092
	{5, 4, 6, 5, 6, 6, 6, 7, 7, 7, 8, 8, 9, 9, 8, 8, 6, 6, 4, 4, 3, 3, 3, 6}, // 2093
	{5, 7, 7, 9, 8, 9, 8, 6, 6, 4, 4, 2, 3, 2, 5, 4, 6, 5, 7, 7, 8, 7, 7, 7}, // 2094
	{7, 6, 6, 6, 6, 6, 5, 6, 4, 4, 3, 4, 3, 4, 5, 8, 9, 11, 11, 12, 11, 11, 10, 8}, // 2095
	{7, 5, 5, 3, 4, 4, 5, 5, 7, 7, 8, 8, 8, 9, 9, 9, 9, 9, 9, 10, 9, 9, 8, 8}, // 2096
	{7, 6, 5, 5, 5, 7, 7, 8, 9, 9, 9, 8, 8, 7, 7, 4, 5, 3, 4, 4, 6, 6, 8, 8}, // 2097
	{10, 10, 9, 9, 9, 7, 7, 7, 5, 5, 3, 3, 1, 2, 1, 2, 1, 2, 2, 3, 4, 6, 8, 8}, // 2098
	{8, 8, 8, 6, 6, 4, 3, 1, 1, 0, 1, 0, 2, 2, 3, 4, 5, 5, 5, 5, 4, 5, 4, 5}, // 2099
	{4, 6, 4, 5, 4, 5, 3, 4, 4, 4, 4, 6, 6, 7, 7, 7, 7, 6, 5, 4, 3, 2, 3, 1}, // 2100
	{2, 1, 3, 3, 5, 6, 7, 8, 8, 7, 6, 6, 4, 4, 3, 3, 2, 3, 1, 3, 2, 3, 2, 3}, // 2101
	{3, 4, 4, 4, 5, 5, 6, 4, 6, 3, 3, 1, 1, -1, 0, 0, 1, 2, 4, 4, 6, 7, 7, 7}, // 2102
	{5, 6, 3, 4, 2, 2, 1, 1, 0, 2, 0, 1, 0, 2, 3, 4, 4, 5, 5, 6, 7, 7, 8, 7}, // 2103
	{8, 5, 6, 3, 3, 2, 3, 2, 3, 3, 5, 5, 6, 6, 6, 7, 5, 6, 4, 5, 4, 5, 4, 6}, // 2104
	{5, 7, 6, 8, 7, 7, 8, 8, 7, 6, 6, 5, 6, 5, 5, 3, 4, 2, 2, 1, 2, 1, 3, 4}, // 2105
	{5, 6, 8, 8, 9, 9, 9, 9, 7, 6, 3, 3, 2, 1, 1, 3, 2, 3, 4, 5, 4, 5, 5, 5}, // 2106
	{5, 5, 5, 5, 5, 4, 6, 5, 6, 5, 5, 4, 5, 4, 5, 6, 7, 8, 8, 8, 8, 8, 7, 6}, // 2107
	{3, 3, 1, 3, 2, 3, 4, 5, 6, 8, 9, 10, 10, 10, 10, 9, 10, 8, 8, 7, 8, 7, 7, 5}, // 2108
	{5, 4, 4, 3, 4, 4, 6, 7, 7, 9, 9, 10, 9, 9, 7, 8, 6, 5, 4, 5, 4, 6, 7, 7}, // 2109
	{8, 8, 8, 7, 7, 6, 5, 4, 4, 3, 4, 2, 4, 4, 5, 5, 6, 5, 6, 6, 7, 8, 8, 10}, // 2110
	{9, 10, 7, 8, 5, 5, 3, 2, 0, 0, 0, 1, 3, 4, 6, 7, 8, 8, 9, 8, 8, 8, 8, 6}, // 2111
	{7, 5, 6, 4, 5, 4, 5, 4, 4, 3, 5, 5, 6, 7, 7, 9, 8, 9, 7, 8, 7, 6, 5, 5}, // 2112
	{4, 4, 4, 5, 7, 7, 8, 8, 8, 6, 6, 4, 3, 3, 3, 2, 3, 1, 3, 2, 3, 3, 4, 4}, // 2113
	{3, 4, 4, 4, 4, 5, 4, 5, 3, 3, 0, 0, -3, -2, -3, -2, -2, 0, 1, 3, 4, 6, 7, 6}, // 2114
	{6, 4, 4, 2, 2, 1, 1, 0, 0, 0, 1, 1, 2, 0, 1, 2, 2, 3, 3, 5, 5, 6, 5, 6}, // 2115
	{4, 4, 2, 3, 1, 1, 1, 1, 2, 2, 4, 4, 5, 6, 5, 4, 4, 2, 2, 1, 1, 1, 2, 2}, // 2116
	{4, 4, 5, 5, 5, 6, 6, 7, 5, 6, 4, 5, 4, 5, 4, 4, 2, 2, 0, 1, 0, 0, 2, 3}, // 2117
	{4, 6, 8, 7, 9, 7, 8, 6, 5, 3, 2, 0, 0, -1, 0, 1, 3, 3, 4, 5, 4, 6, 4, 6}, // 2118
	{5, 5, 4, 5, 4, 5, 5, 5, 3, 4, 2, 3, 2, 3, 4, 5, 7, 8, 9, 8, 9, 8, 8, 6}, // 2119
	{6, 4, 4, 2, 4, 4, 6, 6, 7, 8, 7, 8, 8, 8, 7, 7, 7, 7, 6, 7, 7, 8, 7, 7}, // 2120
	{6, 6, 5, 5, 6, 6, 8, 8, 10, 9, 10, 8, 7, 6, 5, 3, 3, 2, 3, 2, 4, 5, 6, 8}, // 2121
	{8, 9, 8, 9, 8, 8, 7, 7, 5, 5, 3, 4, 2, 2, 1, 2, 1, 1, 2, 3, 4, 4, 6, 6}, // 2122
	{8, 6, 8, 6, 7, 4, 5, 3, 3, 2, 3, 3, 4, 5, 5, 5, 6, 6, 5, 5, 4, 5, 3, 4}, // 2123
	{3, 4, 2, 4, 3, 4, 4, 5, 5, 5, 6, 6, 8, 8, 8, 7, 8, 5, 6, 3, 4, 2, 2, 1}, // 2124
	{2, 2, 2, 3, 4, 6, 6, 8, 8, 9, 7, 7, 6, 6, 5, 5, 4, 4, 3, 4, 3, 3, 3, 3}, // 2125
	{4, 3, 4, 3, 4, 3, 4, 3, 4, 3, 4, 2, 2, 1, 1, 2, 3, 4, 4, 6, 7, 7, 7, 8}, // 2126
	{5, 6, 3, 3, 1, 1, 0, 0, 0, 0, 1, 2, 4, 4, 6, 6, 8, 7, 9, 8, 9, 9, 10, 7}, // 2127
	{8, 6, 5, 3, 3, 2, 1, 2, 2, 3, 3, 5, 6, 8, 8, 8, 7, 7, 6, 6, 5, 5, 5, 6}, // 2128
	{6, 6, 7, 6, 7, 6, 8, 6, 7, 5, 5, 3, 4, 3, 4, 3, 4, 3, 3, 2, 3, 3, 4, 6}, // 2129
	{5, 8, 7, 9, 9, 10, 8, 8, 5, 5, 2, 1, 0, -1, -1, 0, 1, 3, 4, 4, 5, 6, 6, 5}, // 2130
	{6, 4, 5, 3, 5, 4, 4, 4, 3, 3, 3, 2, 2, 3, 2, 4, 4, 6, 6, 8, 6, 8, 6, 5}, // 2131
	{4, 3, 2, 1, 2, 2, 3, 4, 6, 6, 8, 8, 8, 8, 8, 6, 6, 4, 5, 4, 5, 5, 5, 5}, // 2132
	{4, 5, 4, 4, 4, 5, 5, 7, 6, 8, 7, 8, 6, 5, 4, 4, 2, 2, 1, 1, 2, 2, 4, 5}, // 2133
	{7, 6, 8, 6, 6, 4, 5, 3, 3, 1, 2, 2, 1, 1, 2, 2, 2, 3, 3, 4, 3, 5, 5, 7}, // 2134
	{6, 8, 6, 6, 5, 5, 3, 2, 1, 0, 0, 1, 3, 3, 5, 5, 7, 6, 7, 6, 6, 4, 5, 4}, // 2135
	{4, 3, 4, 4, 4, 5, 4, 5, 5, 6, 5, 6, 5, 7, 7, 7, 6, 7, 5, 5, 4, 4, 3, 2}, // 2136
	{3, 2, 3, 4, 6, 6, 8, 8, 9, 7, 7, 5, 5, 3, 3, 2, 2, 1, 2, 3, 2, 4, 3, 4}, // 2137
	{4, 4, 3, 5, 4, 5, 4, 5, 5, 5, 2, 2, 1, 0, -1, -1, 0, 1, 2, 4, 6, 6, 7, 5}, // 2138
	{6, 4, 3, 1, 1, 0, 0, 0, 1, 1, 2, 3, 3, 4, 4, 4, 3, 5, 4, 6, 5, 6, 5, 6}, // 2139
	{5, 5, 3, 3, 2, 1, 2, 2, 3, 3, 6, 6, 8, 7, 8, 7, 6, 5, 4, 3, 2, 2, 3, 4}, // 2140
	{4, 5, 5, 6, 5, 7, 6, 7, 6, 7, 5, 6, 5, 6, 5, 5, 5, 4, 3, 2, 2, 1, 3, 3}, // 2141
	{5, 5, 7, 7, 8, 7, 7, 5, 5, 3, 3, 2, 1, 2, 2, 3, 5, 7, 6, 8, 7, 8, 7, 8}, // 2142
	{6, 6, 4, 4, 4, 3, 3, 3, 3, 2, 3, 2, 4, 4, 6, 7, 9, 8, 10, 10, 11, 10, 9, 7}, // 2143
	{6, 5, 4, 2, 2, 3, 3, 4, 5, 6, 6, 8, 7, 9, 8, 9, 8, 8, 8, 9, 8, 8, 8, 8}, // 2144
	{9, 7, 7, 5, 7, 6, 7, 6, 7, 6, 7, 5, 4, 3, 4, 2, 2, 2, 2, 3, 3, 5, 6, 8}, // 2145
	{8, 9, 8, 9, 6, 6, 5, 3, 1, 1, 0, -1, -1, -1, -1, -1, 0, 0, 2, 2, 4, 4, 7, 6}, // 2146
	{7, 6, 6, 6, 5, 4, 3, 2, 1, 0, 0, 1, 1, 2, 2, 3, 3, 4, 3, 4, 4, 4, 3, 3}, // 2147
	{3, 2, 3, 2, 3, 3, 4, 4, 5, 4, 5, 4, 5, 4, 4, 4, 4, 3, 3, 1, 1, 0, 0, 0}, // 2148
	{0, 1, 0, 3, 3, 6, 6, 7, 6, 7, 6, 5, 3, 2, 1, 0, 1, 0, 1, 0, 1, 0, 2, 2}, // 2149
	{3, 2, 4, 2, 3, 3, 3, 2, 3, 2, 2, 1, 0, -1, -2, -1, -1, 1, 1, 4, 3, 6, 5, 6}, // 2150
	{4, 4, 3, 2, 1, 0, 0, -1, 0, 0, 1, 1, 3, 3, 4, 4, 4, 4, 5, 4, 5, 5, 6, 5}, // 2151
	{5, 5, 3, 4, 2, 3, 2, 4, 3, 5, 4, 7, 6, 7, 7, 7, 6, 5, 4, 3, 2, 2, 3, 3}, // 2152
	{5, 5, 7, 7, 8, 8, 9, 8, 8, 7, 6, 5, 5, 4, 4, 3, 3, 3, 1, 2, 1, 2, 1, 4}, // 2153
	{3, 5, 6, 8, 7, 9, 8, 7, 7, 5, 4, 3, 2, 1, 1, 1, 3, 3, 5, 5, 7, 6, 6, 5}, // 2154
	{5, 3, 3, 2, 3, 3, 4, 6, 5, 5, 5, 6, 5, 6, 6, 7, 6, 8, 7, 8, 8, 8, 7, 6}, // 2155
	{4, 2, 2, 1, 2, 1, 3, 4, 7, 7, 10, 9, 11, 10, 9, 8, 7, 6, 6, 5, 5, 5, 5, 6}, // 2156
	{5, 6, 4, 6, 4, 6, 5, 7, 6, 7, 7, 8, 7, 7, 7, 5, 5, 3, 4, 3, 4, 4, 6, 6}, // 2157
	{8, 8, 8, 7, 7, 5, 5, 3, 2, 2, 1, 2, 1, 3, 3, 4, 3, 5, 5, 6, 5, 7, 6, 8}, // 2158
	{6, 6, 6, 5, 5, 4, 3, 1, 1, -1, 1, 0, 3, 4, 7, 7, 9, 9, 9, 8, 8, 7, 6, 6}, // 2159
	{4, 4, 3, 4, 4, 5, 4, 5, 4, 5, 4, 5, 5, 5, 6, 7, 6, 6, 7, 6, 6, 4, 3, 2}, // 2160
	{3, 2, 4, 2, 5, 4, 6, 6, 6, 5, 4, 3, 2, 1, 0, 1, 0, 1, 1, 3, 3, 4, 4, 5}, // 2161
	{4, 5, 4, 4, 4, 3, 4, 3, 3, 1, 1, -1, -2, -3, -2, -4, -2, -1, 2, 3, 5, 5, 6, 6}, // 2162
	{6, 5, 3, 1, 0, 0, -1, -1, -1, 0, -1, 1, 0, 2, 1, 2, 2, 3, 2, 3, 3, 4, 5, 4}, // 2163
	{5, 3, 3, 2, 3, 1, 2, 1, 2, 3, 5, 4, 6, 5, 5, 5, 4, 3, 2, 1, 0, 1, 0, 3}, // 2164
	{2, 4, 5, 6, 6, 7, 7, 7, 6, 5, 4, 4, 3, 3, 3, 2, 2, 1, 1, 0, 1, 0, 2, 2}, // 2165
	{4, 4, 5, 5, 6, 6, 6, 6, 4, 4, 1, 1, 0, 1, 1, 2, 2, 5, 4, 6, 6, 7, 6, 6}, // 2166
	{5, 4, 3, 3, 3, 3, 4, 3, 5, 3, 5, 4, 5, 4, 6, 6, 7, 7, 8, 8, 9, 8, 8, 7}, // 2167
	{5, 5, 3, 4, 2, 3, 3, 6, 6, 8, 8, 9, 9, 9, 8, 8, 7, 6, 6, 5, 5, 5, 6, 5}, // 2168
	{7, 5, 7, 6, 6, 7, 7, 8, 7, 7, 7, 7, 6, 6, 4, 4, 2, 2, 1, 3, 2, 4, 4, 6}, // 2169
	{6, 8, 8, 8, 7, 6, 6, 4, 4, 3, 2, 1, 2, 1, 2, 2, 2, 2, 3, 3, 5, 5, 5, 5}, // 2170
	{5, 5, 5, 4, 4, 4, 3, 3, 2, 3, 2, 3, 3, 5, 4, 6, 6, 7, 6, 5, 5, 4, 3, 2}, // 2171
	{2, 1, 2, 1, 3, 2, 5, 5, 6, 6, 8, 7, 7, 7, 7, 7, 6, 6, 5, 4, 3, 3, 1, 1}, // 2172
	{0, 1, 1, 2, 2, 4, 5, 6, 7, 7, 6, 5, 5, 4, 3, 1, 3, 2, 2, 2, 4, 3, 4, 4}, // 2173
	{4, 3, 3, 2, 2, 2, 1, 2, 1, 2, 0, 1, 0, 1, 1, 2, 1, 3, 4, 6, 7, 8, 9, 8}, // 2174
	{7, 6, 5, 2, 1, -1, 0, -2, -1, -2, 1, 0, 2, 4, 5, 6, 7, 6, 7, 6, 6, 7, 7, 8}, // 2175
	{6, 7, 5, 5, 3, 3, 2, 2, 2, 3, 3, 5, 5, 6, 7, 7, 6, 6, 6, 4, 4, 3, 4, 4}, // 2176
	{7, 6, 9, 8, 10, 9, 9, 9, 7, 6, 3, 3, 2, 1, 0, 2, 1, 3, 2, 3, 3, 4, 4, 5}, // 2177
	{5, 6, 6, 7, 7, 8, 8, 6, 6, 2, 2, -2, -1, -3, -2, -2, 1, 1, 4, 5, 6, 7, 6, 6}, // 2178
	{5, 5, 3, 4, 3, 3, 3, 4, 4, 5, 3, 4, 3, 3, 3, 3, 4, 5, 5, 6, 7, 6, 7, 5}, // 2179
	{6, 4, 3, 1, 2, 2, 3, 5, 6, 6, 8, 7, 7, 7, 6, 5, 4, 3, 2, 3, 2, 3, 3, 4}, // 2180
	{4, 5, 4, 5, 5, 6, 5, 6, 7, 6, 6, 5, 6, 4, 4, 1, 1, -1, 0, -1, 2, 1, 4, 5}, // 2181
	{6, 7, 7, 7, 6, 6, 4, 4, 1, 2, 0, 1, 0, 2, 1, 3, 2, 3, 3, 3, 4, 4, 5, 5}, // 2182
	{6, 5, 5, 4, 4, 3, 4, 2, 2, 1, 1, 1, 2, 4, 6, 7, 7, 7, 6, 6, 5, 5, 3, 3}, // 2183
	{2, 3, 2, 4, 3, 5, 5, 6, 6, 6, 7, 7, 6, 7, 7, 6, 6, 5, 6, 4, 5, 3, 3, 1}, // 2184
	{2, 1, 3, 4, 5, 6, 7, 8, 7, 8, 6, 6, 4, 4, 2, 2, 0, 1, 1, 3, 3, 4, 4, 5}, // 2185
	{4, 4, 4, 4, 4, 3, 4, 3, 4, 3, 4, 1, 1, 0, 1, 0, 1, 1, 3, 4, 6, 6, 7, 7}, // 2186
	{5, 5, 3, 3, 1, 2, 0, 1, 1, 3, 3, 5, 5, 5, 6, 6, 6, 5, 5, 4, 5, 4, 4, 4}, // 2187
	{4, 3, 4, 2, 3, 3, 3, 4, 4, 6, 6, 8, 9, 9, 9, 9, 7, 6, 3, 3, 1, 2, 1, 2}, // 2188
	{2, 4, 4, 6, 6, 7, 8, 7, 8, 7, 8, 6, 6, 5, 6, 5, 5, 4, 5, 3, 3, 3, 4, 3}, // 2189
	{3, 5, 4, 5, 5, 5, 4, 6, 3, 4, 2, 3, 2, 3, 3, 5, 5, 7, 7, 9, 9, 9, 8, 7}, // 2190
	{6, 3, 3, 2, 2, 1, 2, 1, 3, 2, 4, 4, 6, 7, 7, 8, 9, 11, 11, 11, 10, 11, 9, 10}, // 2191
	{7, 7, 3, 4, 3, 3, 3, 4, 4, 5, 7, 7, 8, 8, 8, 7, 7, 7, 7, 6, 7, 7, 8, 7}, // 2192
	{8, 7, 7, 7, 6, 6, 6, 6, 4, 4, 3, 3, 2, 3, 2, 2, 1, 2, 0, 2, 3, 4, 6, 7}, // 2193
	{8, 9, 9, 8, 8, 6, 6, 3, 3, 1, 0, -1, -2, -3, -1, 0, 1, 1, 2, 3, 4, 5, 5, 6}, // 2194
	{5, 6, 5, 6, 4, 5, 3, 2, 1, 2, 0, 1, 1, 1, 2, 3, 4, 3, 4, 3, 3, 2, 3, 1}, // 2195
	{2, 1, 2, 1, 3, 3, 4, 5, 5, 6, 6, 6, 5, 5, 3, 4, 3, 3, 2, 2, 1, 1, 0, 1}, // 2196
	{0, 1, 1, 2, 3, 4, 5, 6, 7, 5, 6, 3, 3, 0, 0, -1, -1, -2, -1, -1, 1, 2, 3, 4}, // 2197
	{4, 3, 3, 3, 1, 1, 0, 2, 0, 1, 0, 1, -1, 0, -1, 0, 0, 1, 2, 3, 4, 5, 6, 6}, // 2198
	{6, 5, 4, 1, 1, -1, 0, -1, -1, 0, 1, 1, 4, 5, 6, 6, 6, 5, 4, 5, 4, 5, 4, 6}, // 2199
	{5, 6, 4, 5, 4, 4, 4, 4, 4, 4, 5, 5, 7, 6, 8, 6, 8, 5, 5, 3, 3, 2, 2, 3}, // 2200
	{4, 5, 6, 8, 8, 10, 9, 10, 8, 7, 5, 5, 3, 3, 2, 3, 2, 3, 3, 3, 3, 4, 4, 5}, // 2201
	{6, 5, 6, 6, 8, 7, 8, 7, 7, 5, 5, 3, 2, 1, 1, 2, 3, 5, 6, 8, 7, 9, 7, 7}, // 2202
	{5, 5, 3, 4, 2, 3, 3, 5, 5, 6, 6, 6, 7, 6, 7, 6, 7, 6, 8, 7, 8, 7, 8, 6}, // 2203
	{6, 4, 4, 3, 2, 3, 4, 6, 7, 9, 9, 11, 10, 10, 9, 9, 6, 6, 4, 5, 3, 5, 4, 5}, // 2204
	{5, 5, 6, 5, 6, 6, 6, 6, 7, 6, 7, 6, 7, 5, 6, 4, 3, 3, 2, 2, 3, 4, 4, 6}, // 2205
	{6, 8, 6, 7, 5, 5, 3, 3, 2, 1, 1, 1, 2, 3, 4, 4, 6, 6, 6, 6, 7, 6, 6, 5}, // 2206
	{7, 4, 5, 4, 4, 3, 3, 1, 1, 0, 1, 2, 3, 5, 6, 8, 8, 10, 8, 8, 6, 6, 4, 4}, // 2207
	{2, 2, 1, 2, 2, 2, 4, 4, 6, 5, 6, 4, 6, 5, 6, 5, 6, 5, 6, 5, 5, 4, 4, 4}, // 2208
	{3, 3, 4, 5, 5, 6, 6, 7, 6, 6, 3, 3, 1, 1, 0, 0, -1, 0, 1, 3, 3, 5, 6, 6}, // 2209
	{7, 5, 5, 3, 4, 2, 3, 1, 1, 0, 0, -2, -2, -3, -3, -2, -2, 0, 1, 3, 4, 6, 6, 7}, // 2210
	{6, 7, 4, 5, 3, 2, 1, 0, 1, 1, 2, 2, 3, 3, 4, 3, 4, 3, 3, 2, 4, 2, 4, 4}, // 2211
	{4, 4, 5, 4, 4, 6, 5, 6, 5, 6, 5, 6, 5, 6, 5, 5, 4, 3, 1, 1, 0, 0, 0, 1}, // 2212
	{2, 3, 5, 6, 8, 8, 9, 8, 9, 7, 7, 4, 4, 2, 2, 2, 1, 1, 1, 1, 2, 3, 2, 4}, // 2213
	{3, 5, 5, 6, 5, 6, 5, 7, 5, 5, 4, 4, 2, 2, 2, 2, 4, 4, 6, 6, 8, 6, 8, 6}, // 2214
	{6, 4, 4, 2, 3, 2, 3, 3, 3, 5, 5, 6, 6, 8, 7, 9, 8, 9, 8, 9, 8, 8, 7, 7}, // 2215
	{6, 5, 4, 3, 4, 3, 5, 5, 8, 7, 10, 8, 10, 9, 10, 8, 8, 7, 6, 4, 5, 5, 6, 6}, // 2216
	{7, 7, 7, 8, 7, 9, 8, 8, 6, 7, 6, 6, 5, 5, 4, 4, 4, 3, 3, 3, 4, 4, 6, 6}, // 2217
	{7, 7, 9, 7, 9, 7, 6, 5, 4, 2, 2, 1, 2, 1, 2, 3, 4, 6, 5, 6, 5, 7, 5, 6}, // 2218
	{5, 5, 4, 5, 4, 5, 5, 4, 4, 4, 4, 3, 5, 5, 7, 7, 8, 7, 8, 6, 6, 5, 4, 3}, // 2219
	{2, 2, 1, 2, 2, 4, 5, 8, 7, 9, 8, 9, 7, 7, 6, 7, 6, 6, 4, 4, 4, 3, 2, 2}, // 2220
	{2, 1, 2, 1, 3, 3, 6, 6, 8, 7, 8, 6, 6, 4, 3, 2, 2, 2, 3, 3, 4, 6, 5, 6}, // 2221
	{4, 5, 3, 3, 2, 1, 1, 1, 0, 1, 1, 2, 2, 2, 3, 3, 4, 4, 6, 5, 7, 6, 8, 7}, // 2222
	{7, 5, 4, 2, 2, 0, -1, 0, -2, 0, 0, 3, 4, 7, 8, 10, 9, 9, 7, 7, 6, 6, 6, 7}, // 2223
	{6, 6, 5, 5, 5, 4, 6, 4, 6, 4, 6, 5, 6, 7, 8, 8, 8, 7, 6, 5, 5, 4, 3, 4}, // 2224
	{4, 6, 5, 7, 7, 9, 8, 8, 7, 6, 3, 3, 2, 1, 1, 1, 3, 3, 3, 4, 5, 5, 6, 4}, // 2225
	{6, 5, 6, 6, 7, 6, 6, 6, 5, 3, 2, 1, 0, 0, -1, 1, 2, 4, 5, 8, 8, 10, 9, 8}, // 2226
	{6, 6, 4, 4, 3, 2, 3, 2, 4, 4, 4, 4, 5, 4, 5, 4, 5, 5, 6, 5, 7, 7, 7, 6}, // 2227
	{6, 5, 4, 4, 3, 4, 3, 6, 6, 9, 8, 9, 7, 7, 6, 5, 4, 3, 2, 2, 2, 2, 3, 4}, // 2228
	{6, 5, 7, 6, 7, 7, 8, 6, 7, 6, 6, 4, 4, 3, 2, 2, 0, 0, 0, 1, 1, 2, 2, 5}, // 2229
	{5, 7, 6, 7, 6, 6, 5, 4, 2, 1, 1, 1, 1, 1, 3, 2, 4, 2, 4, 4, 5, 4, 4, 4}, // 2230
	{4, 3, 3, 3, 3, 4, 3, 3, 2, 4, 3, 4, 4, 6, 6, 7, 7, 8, 6, 6, 5, 4, 3, 2}, // 2231
	{2, 1, 2, 2, 3, 3, 6, 6, 8, 7, 8, 7, 8, 6, 6, 6, 6, 6, 5, 5, 4, 3, 2, 4}, // 2232
	{2, 4, 3, 4, 4, 6, 6, 7, 7, 7, 6, 5, 3, 2, 1, 1, 1, 1, 3, 3, 5, 5, 7, 6}, // 2233
	{7, 5, 6, 4, 4, 3, 3, 3, 2, 2, 1, 2, 1, 1, 1, 2, 2, 4, 3, 6, 6, 7, 7, 8}, // 2234
	{7, 6, 5, 4, 3, 2, 2, 1, 2, 2, 4, 3, 5, 5, 7, 7, 7, 6, 6, 5, 5, 4, 4, 5}, // 2235
	{4, 5, 5, 6, 5, 7, 6, 7, 7, 8, 7, 8, 7, 8, 7, 8, 6, 6, 5, 3, 3, 2, 3, 2}, // 2236
	{4, 4, 6, 6, 8, 8, 9, 9, 8, 8, 7, 5, 5, 4, 3, 4, 2, 4, 4, 5, 5, 6, 5, 5}, // 2237
	{5, 6, 5, 5, 5, 5, 5, 5, 5, 4, 5, 3, 4, 3, 5, 5, 6, 6, 9, 8, 10, 10, 10, 9}, // 2238
	{7, 5, 4, 3, 2, 2, 1, 3, 2, 4, 4, 6, 7, 8, 8, 9, 8, 10, 8, 9, 9, 9, 9, 8}, // 2239
	{7, 5, 6, 3, 4, 2, 4, 3, 6, 6, 8, 7, 9, 8, 8, 7, 6, 6, 5, 5, 5, 6, 6, 7}, // 2240
	{7, 9, 8, 10, 8, 9, 7, 8, 6, 5, 4, 4, 3, 2, 2, 1, 3, 1, 2, 2, 4, 3, 6, 6}, // 2241
	{8, 7, 9, 7, 8, 7, 6, 5, 2, 1, -1, 0, -2, 0, 0, 1, 2, 3, 4, 5, 4, 5, 4, 5}, // 2242
	{4, 4, 4, 4, 5, 4, 5, 3, 5, 3, 4, 3, 4, 3, 5, 4, 6, 5, 6, 4, 4, 4, 2, 2}, // 2243
	{1, 2, 0, 3, 3, 4, 5, 7, 8, 8, 7, 8, 6, 5, 4, 4, 3, 2, 2, 1, 2, 0, 2, 0}, // 2244
	{2, 1, 3, 2, 4, 4, 5, 6, 6, 6, 6, 5, 4, 2, 1, 0, -2, -1, -1, 1, 1, 4, 4, 6}, // 2245
	{5, 5, 4, 4, 2, 2, 2, 1, 2, 1, 2, 1, 2, 2, 3, 2, 3, 2, 4, 3, 4, 5, 5, 6}, // 2246
	{6, 6, 4, 4, 2, 2, 1, 2, 1, 3, 2, 5, 5, 7, 8, 9, 9, 7, 7, 5, 4, 3, 3, 3}, // 2247
	{5, 3, 5, 4, 7, 6, 7, 7, 8, 8, 9, 8, 9, 9, 8, 9, 8, 7, 6, 5, 4, 3, 2, 3}, // 2248
	{2, 5, 5, 8, 9, 11, 11, 11, 10, 9, 8, 6, 5, 4, 5, 3, 5, 4, 6, 5, 7, 7, 7, 5}, // 2249
	{6, 5, 5, 6, 6, 6, 6, 8, 6, 6, 5, 5, 3, 5, 4, 5, 5, 7, 7, 10, 10, 10, 10, 9}, // 2250
	{8, 6, 5, 4, 3, 2, 4, 4, 6, 6, 8, 7, 9, 9, 10, 10, 10, 9, 9, 9, 9, 9, 8, 9}, // 2251
	{6, 7, 5, 5, 4, 5, 4, 7, 7, 9, 10, 10, 10, 9, 9, 8, 7, 5, 6, 4, 5, 4, 5, 5}, // 2252
	{7, 6, 8, 7, 7, 7, 7, 7, 6, 6, 5, 6, 5, 5, 4, 5, 3, 4, 2, 4, 4, 6, 6, 7}, // 2253
	{7, 7, 7, 7, 6, 4, 4, 2, 3, 0, 1, 0, 1, 1, 4, 4, 6, 6, 7, 7, 7, 7, 6, 6}, // 2254
	{5, 5, 3, 4, 2, 2, 2, 3, 2, 2, 2, 4, 3, 6, 7, 7, 8, 9, 9, 8, 7, 6, 6, 4}, // 2255
	{4, 2, 4, 2, 4, 3, 5, 6, 6, 6, 6, 6, 6, 6, 4, 5, 4, 5, 4, 5, 4, 5, 4, 5}, // 2256
	{4, 5, 4, 5, 4, 5, 5, 4, 5, 3, 3, 2, 1, 0, -1, -2, 0, -1, 1, 2, 4, 5, 7, 7}, // 2257
	{8, 7, 7, 5, 4, 4, 1, 2, 1, 1, -1, 0, -1, 1, 0, 1, 1, 2, 2, 4, 5, 6, 7, 7}, // 2258
	{7, 7, 7, 5, 5, 3, 3, 2, 2, 2, 3, 3, 5, 4, 5, 6, 5, 6, 4, 4, 3, 3, 3, 4}, // 2259
	{3, 5, 4, 7, 6, 7, 7, 8, 9, 9, 8, 8, 7, 7, 7, 5, 6, 4, 4, 3, 2, 1, 2, 1}, // 2260
	{2, 3, 5, 6, 8, 9, 10, 10, 9, 9, 7, 6, 4, 3, 2, 2, 1, 3, 2, 4, 3, 5, 5, 5}, // 2261
	{5, 5, 4, 3, 4, 4, 5, 5, 5, 5, 6, 4, 4, 4, 5, 4, 5, 5, 7, 7, 8, 9, 8, 8}, // 2262
	{6, 6, 3, 4, 2, 3, 1, 4, 3, 6, 6, 8, 8, 10, 10, 9, 9, 9, 8, 7, 8, 7, 7, 6}, // 2263
	{7, 5, 6, 4, 5, 5, 6, 6, 7, 8, 9, 9, 10, 10, 9, 9, 7, 6, 5, 5, 3, 5, 4, 6}, // 2264
	{6, 7, 7, 8, 9, 9, 9, 8, 7, 6, 6, 4, 4, 3, 4, 4, 4, 3, 4, 3, 4, 5, 5, 7}, // 2265
	{6, 7, 7, 8, 7, 7, 6, 6, 4, 4, 2, 3, 1, 2, 3, 5, 5, 7, 7, 7, 7, 6, 7, 5}, // 2266
	{5, 3, 5, 3, 4, 4, 5, 5, 6, 5, 6, 5, 6, 6, 7, 8, 7, 8, 8, 8, 6, 6, 3, 4}, // 2267
	{2, 2, 1, 2, 3, 5, 6, 8, 9, 9, 10, 9, 8, 7, 7, 5, 5, 4, 5, 4, 5, 4, 5, 4}, // 2268
	{4, 3, 3, 3, 4, 4, 4, 6, 6, 7, 5, 6, 4, 3, 2, 1, 0, 1, 1, 3, 4, 6, 7, 7}, // 2269
	{7, 6, 6, 3, 3, 1, 1, -1, 1, 0, 1, 1, 3, 3, 4, 5, 5, 5, 6, 6, 7, 8, 8, 9}, // 2270
	{8, 8, 6, 5, 3, 3, 1, 1, 1, 2, 2, 4, 5, 7, 8, 8, 8, 7, 8, 6, 6, 4, 5, 4}, // 2271
	{6, 5, 6, 5, 6, 6, 6, 6, 6, 6, 5, 6, 5, 6, 5, 6, 6, 6, 4, 5, 4, 5, 3, 4}, // 2272
	{4, 5, 6, 7, 9, 10, 11, 9, 9, 6, 6, 4, 3, 1, 1, 1, 2, 2, 4, 4, 6, 7, 7, 8}, // 2273
	{7, 7, 5, 6, 5, 6, 5, 6, 4, 5, 3, 3, 1, 2, 2, 2, 3, 5, 6, 7, 8, 8, 9, 8}, // 2274
	{8, 6, 6, 3, 4, 3, 3, 4, 5, 5, 6, 7, 8, 7, 7, 8, 6, 6, 6, 6, 5, 6, 6, 7}, // 2275
	{5, 6, 5, 6, 5, 6, 7, 7, 8, 9, 9, 9, 9, 7, 7, 5, 4, 2, 3, 1, 2, 2, 3, 4}, // 2276
	{5, 6, 6, 7, 8, 8, 7, 8, 6, 7, 5, 5, 4, 4, 3, 3, 1, 2, 1, 1, 1, 2, 3, 4}, // 2277
	{6, 4, 6, 6, 6, 4, 5, 4, 4, 3, 3, 2, 4, 3, 4, 5, 5, 6, 5, 6, 4, 5, 4, 4}, // 2278
	{2, 3, 2, 3, 2, 3, 3, 4, 4, 5, 6, 6, 7, 8, 9, 8, 10, 8, 9, 7, 6, 4, 4, 1}, // 2279
	{1, 0, 1, 1, 2, 3, 5, 7, 8, 10, 9, 9, 9, 9, 7, 7, 5, 6, 4, 5, 4, 5, 4, 4}, // 2280
	{4, 3, 4, 3, 4, 5, 6, 5, 6, 5, 6, 4, 4, 3, 3, 2, 3, 2, 4, 4, 5, 6, 7, 8}, // 2281
	{7, 7, 5, 6, 3, 4, 1, 2, 1, 2, 1, 3, 2, 3, 4, 5, 6, 6, 6, 6, 7, 7, 8, 6}, // 2282
	{8, 6, 7, 5, 5, 4, 4, 3, 3, 4, 5, 5, 7, 8, 8, 9, 9, 9, 7, 8, 5, 5, 3, 5}, // 2283
	{4, 4, 4, 6, 6, 8, 8, 9, 10, 9, 9, 8, 8, 8, 8, 7, 8, 6, 7, 5, 4, 3, 4, 4}, // 2284
	{4, 4, 4, 6, 6, 8, 9, 10, 9, 9, 7, 7, 5, 5, 3, 4, 4, 4, 5, 6, 7, 8, 9, 7}, // 2285
	{7, 6, 5, 3, 4, 3, 4, 3, 4, 3, 5, 4, 4, 5, 5, 5, 6, 7, 8, 9, 9, 10, 9, 9}, // 2286
	{7, 6, 3, 3, 1, 1, 1, 2, 2, 3, 5, 6, 8, 8, 9, 8, 9, 8, 9, 7, 9, 7, 9, 8}, // 2287
	{8, 7, 7, 6, 5, 6, 4, 6, 5, 7, 6, 8, 7, 8, 7, 7, 5, 5, 4, 4, 4, 4, 5, 6}, // 2288
	{7, 8, 9, 8, 9, 7, 7, 6, 5, 3, 2, 0, 0, -1, 1, 0, 0, 2, 2, 3, 3, 4, 5, 6}, // 2289
	{6, 8, 7, 8, 7, 7, 5, 4, 3, 2, -1, -1, -1, 0, 1, 2, 4, 3, 6, 6, 6, 5, 6, 5}, // 2290
	{5, 2, 4, 4, 4, 5, 4, 5, 5, 4, 4, 4, 3, 4, 4, 5, 4, 5, 4, 5, 4, 4, 3, 3}, // 2291
	{1, 2, 1, 2, 3, 4, 7, 7, 9, 8, 9, 7, 6, 5, 4, 2, 2, 0, 2, 1, 2, 2, 3, 4}, // 2292
	{3, 4, 4, 4, 4, 5, 5, 7, 5, 6, 5, 5, 3, 2, 1, -1, -2, -1, -1, 0, 2, 4, 6, 5}, // 2293
	{7, 5, 5, 4, 4, 2, 2, 1, 2, 1, 2, 2, 3, 4, 4, 4, 4, 4, 3, 5, 3, 5, 4, 6}, // 2294
	{4, 6, 4, 4, 4, 4, 3, 3, 4, 3, 5, 6, 8, 8, 10, 9, 10, 8, 7, 5, 5, 3, 3, 2}, // 2295
	{3, 3, 3, 5, 5, 7, 8, 10, 9, 11, 8, 10, 9, 9, 8, 8, 8, 8, 6, 6, 5, 4, 4, 3}, // 2296
	{4, 3, 6, 6, 8, 8, 10, 9, 10, 8, 8, 6, 5, 4, 4, 4, 4, 5, 7, 7, 7, 8, 7, 8}, // 2297
	{7, 7, 5, 5, 5, 5, 4, 5, 6, 5, 5, 5, 5, 6, 7, 7, 8, 8, 10, 10, 11, 11, 11, 9}, // 2298
	{9, 6, 6, 4, 4, 3, 3, 5, 5, 7, 8, 9, 9, 10, 10, 10, 9, 10, 7, 8, 7, 8, 7, 7}, // 2299
	{7, 6, 6, 6, 7, 6, 8, 7, 10, 9, 11, 9, 10, 9, 9, 8, 6, 5, 5, 4, 4, 4, 4, 6}, // 2300
	{6, 7, 7, 8, 7, 8, 7, 7, 6, 6, 4, 5, 4, 3, 3, 2, 3, 3, 3, 2, 4, 4, 6, 5}, // 2301
	{6, 4, 5, 4, 6, 4, 4, 3, 2, 2, 2, 2, 3, 4, 4, 5, 6, 7, 6, 8, 6, 6, 5, 5}, // 2302
	{3, 3, 2, 2, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 7, 7, 7, 6, 6, 5, 5, 3}, // 2303
	{2, 1, 0, 2, 0, 2, 3, 5, 5, 8, 6, 7, 5, 5, 4, 4, 3, 3, 3, 2, 4, 3, 5, 3}, // 2304
	{5, 4, 6, 4, 5, 4, 4, 4, 4, 3, 4, 2, 2, 1, 1, 0, 0, 1, 1, 3, 4, 6, 6, 8}, // 2305
	{7, 8, 6, 6, 5, 4, 2, 1, 1, 0, -1, -1, 0, 0, 2, 3, 4, 3, 5, 4, 5, 5, 6, 6}, // 2306
	{6, 6, 6, 5, 5, 5, 5, 5, 4, 4, 3, 5, 4, 7, 6, 7, 6, 7, 6, 5, 4, 4, 4, 3}, // 2307
	{3, 4, 5, 6, 8, 9, 10, 10, 11, 10, 10, 7, 7, 5, 5, 4, 4, 4, 3, 3, 3, 3, 2, 3}, // 2308
	{3, 4, 4, 7, 6, 9, 9, 9, 9, 9, 8, 6, 4, 3, 2, 1, 1, 1, 3, 4, 5, 6, 7, 6}, // 2309
	{6, 5, 4, 4, 4, 3, 4, 5, 4, 5, 5, 6, 5, 5, 5, 6, 5, 6, 5, 8, 7, 8, 7, 7}, // 2310
	{5, 5, 3, 3, 2, 2, 3, 2, 5, 5, 8, 9, 10, 10, 11, 9, 9, 7, 7, 6, 6, 5, 5, 6}, // 2311
	{5, 6, 4, 5, 4, 6, 5, 7, 7, 8, 8, 10, 9, 10, 8, 8, 7, 5, 4, 3, 4, 2, 3, 3}, // 2312
	{6, 6, 8, 8, 9, 8, 7, 6, 6, 4, 4, 3, 3, 4, 4, 4, 3, 5, 5, 6, 5, 6, 4, 6}, // 2313
	{5, 6, 5, 5, 5, 5, 5, 4, 4, 2, 2, 1, 3, 2, 4, 5, 8, 7, 9, 8, 8, 7, 6, 5}, // 2314
	{4, 3, 2, 2, 2, 3, 3, 5, 4, 7, 6, 7, 6, 8, 7, 9, 8, 9, 8, 8, 7, 7, 6, 4}, // 2315
	{4, 2, 2, 1, 3, 2, 6, 6, 8, 8, 9, 8, 8, 6, 6, 4, 3, 3, 4, 4, 4, 5, 4, 5}, // 2316
	{4, 5, 4, 4, 3, 4, 3, 4, 4, 4, 4, 4, 3, 2, 2, 0, 1, 0, 3, 2, 5, 6, 8, 7}, // 2317
	{8, 7, 6, 5, 4, 2, 1, 1, 0, 0, 0, 2, 2, 3, 4, 5, 5, 5, 4, 5, 5, 5, 5, 5}, // 2318
	{5, 4, 4, 4, 4, 2, 3, 1, 3, 2, 3, 3, 5, 5, 7, 7, 8, 7, 6, 5, 4, 3, 2, 3}, // 2319
	{2, 3, 3, 5, 5, 7, 7, 9, 8, 8, 7, 8, 6, 5, 5, 5, 5, 4, 4, 4, 4, 3, 3, 3}, // 2320
	{4, 3, 5, 5, 6, 6, 7, 7, 6, 5, 4, 3, 1, 1, 1, 1, 0, 3, 2, 6, 6, 7, 6, 7}, // 2321
	{6, 6, 5, 4, 4, 3, 4, 3, 4, 2, 3, 2, 3, 2, 4, 4, 5, 5, 7, 7, 8, 8, 8, 8}, // 2322
	{8, 7, 5, 5, 3, 4, 2, 4, 4, 6, 5, 7, 7, 7, 7, 7, 6, 6, 5, 5, 4, 5, 5, 5}, // 2323
	{7, 5, 7, 5, 7, 6, 8, 7, 8, 8, 8, 8, 7, 6, 5, 4, 2, 3, 1, 2, 1, 2, 2, 4}, // 2324
	{4, 6, 6, 8, 8, 9, 8, 8, 7, 5, 4, 3, 2, 1, 1, 0, 1, 0, 1, 1, 3, 3, 3, 4}, // 2325
	{4, 4, 4, 4, 4, 5, 4, 5, 3, 3, 2, 3, 1, 3, 3, 5, 4, 5, 5, 5, 5, 4, 3, 3}, // 2326
	{2, 0, 1, 0, 1, 1, 3, 3, 6, 5, 7, 7, 7, 7, 7, 7, 7, 6, 5, 5, 4, 4, 3, 2}, // 2327
	{0, 1, 0, 1, 1, 4, 4, 6, 7, 9, 9, 9, 8, 7, 6, 5, 4, 2, 3, 2, 3, 2, 4, 3}, // 2328
	{5, 4, 5, 3, 4, 4, 4, 4, 3, 4, 3, 3, 3, 4, 3, 3, 2, 2, 2, 4, 4, 6, 6, 8}, // 2329
	{7, 7, 7, 5, 5, 3, 3, 1, 2, 1, 2, 1, 3, 4, 6, 6, 7, 8, 7, 7, 7, 6, 7, 6}, // 2330
	{6, 6, 5, 6, 4, 5, 4, 5, 5, 6, 5, 7, 6, 8, 9, 9, 10, 9, 9, 7, 6, 5, 5, 3}, // 2331
	{4, 2, 5, 5, 7, 7, 9, 11, 11, 11, 10, 9, 8, 7, 7, 6, 6, 6, 5, 6, 5, 6, 5, 5}, // 2332
	{4, 5, 4, 5, 6, 7, 8, 8, 8, 7, 7, 5, 5, 3, 3, 1, 3, 2, 5, 6, 8, 8, 9, 8}, // 2333
	{7, 6, 5, 4, 2, 2, 2, 3, 2, 4, 4, 5, 4, 6, 5, 6, 6, 7, 7, 8, 8, 9, 9, 8}, // 2334
	{8, 6, 6, 3, 3, 1, 3, 3, 4, 4, 7, 7, 8, 8, 8, 8, 8, 7, 6, 6, 5, 5, 4, 6}, // 2335
	{4, 6, 4, 6, 5, 5, 5, 5, 6, 6, 6, 6, 6, 6, 6, 4, 4, 2, 2, 0, 1, 0, 2, 2}, // 2336
	{4, 5, 7, 7, 7, 8, 7, 7, 5, 4, 1, 2, 0, 1, 0, 2, 1, 2, 2, 3, 3, 4, 4, 4}, // 2337
	{4, 4, 5, 4, 4, 4, 4, 2, 4, 1, 1, -1, 1, 0, 3, 3, 5, 5, 6, 6, 5, 5, 4, 3}, // 2338
	{2, 2, 0, 1, 1, 2, 3, 4, 4, 5, 5, 6, 6, 5, 6, 6, 6, 5, 6, 5, 5, 4, 4, 1}, // 2339
	{2, 1, 1, 1, 2, 4, 5, 7, 7, 8, 8, 8, 6, 5, 3, 2, 1, 1, 0, 1, 2, 3, 3, 4}, // 2340
	{4, 4, 3, 4, 4, 4, 4, 3, 5, 3, 4, 3, 3, 1, 1, -1, 0, -2, 1, 0, 3, 4, 5, 6}, // 2341
	{6, 6, 5, 5, 3, 3, 1, 2, 0, 2, 1, 2, 3, 5, 4, 6, 5, 5, 4, 4, 4, 3, 4, 3}, // 2342
	{4, 3, 5, 3, 5, 3, 4, 4, 6, 5, 7, 6, 8, 8, 8, 9, 8, 8, 7, 6, 4, 4, 2, 2}, // 2343
	{1, 2, 2, 4, 5, 7, 8, 9, 10, 9, 10, 9, 8, 7, 7, 5, 6, 5, 5, 4, 5, 4, 5, 4}, // 2344
	{4, 4, 4, 4, 5, 7, 6, 8, 7, 8, 5, 5, 4, 4, 3, 4, 4, 5, 5, 7, 7, 8, 8, 9}, // 2345
	{8, 6, 5, 3, 3, 2, 3, 2, 4, 3, 4, 4, 5, 5, 6, 7, 8, 9, 8, 9, 9, 10, 8, 9}, // 2346
	{7, 8, 5, 5, 2, 4, 3, 3, 4, 5, 7, 8, 9, 10, 9, 10, 10, 8, 8, 6, 7, 6, 6, 6}, // 2347
	{7, 6, 6, 6, 7, 7, 7, 7, 7, 7, 6, 7, 6, 6, 5, 6, 4, 4, 2, 4, 2, 4, 4, 5}, // 2348
	{5, 6, 6, 6, 7, 6, 6, 5, 5, 3, 3, 1, 2, 0, 1, 1, 2, 2, 3, 3, 4, 5, 5, 6}, // 2349
	{4, 5, 4, 4, 3, 3, 3, 3, 2, 2, 0, 1, 1, 2, 2, 3, 4, 6, 6, 5, 5, 5, 5, 2}, // 2350
	{3, 0, 1, -1, 0, 0, 1, 1, 3, 3, 5, 5, 5, 5, 4, 4, 4, 4, 4, 5, 3, 3, 2, 2}, // 2351
	{1, 1, 0, 1, 1, 2, 3, 5, 6, 5, 7, 6, 5, 4, 3, 1, 0, 0, 0, 0, 1, 2, 4, 4}, // 2352
	{5, 5, 4, 5, 3, 3, 2, 3, 1, 1, 0, 0, -1, 0, -1, 0, -1, -1, -1, 0, 2, 3, 5, 5}, // 2353
	{7, 5, 6, 4, 4, 2, 3, 1, 0, 0, 1, 0, 1, 1, 4, 4, 5, 5, 4, 5, 4, 4, 3, 4}, // 2354
	{3, 5, 4, 5, 5, 5, 5, 5, 6, 6, 5, 5, 6, 6, 7, 6, 7, 6, 6, 4, 4, 2, 3, 0}, // 2355
	{1, 1, 3, 4, 6, 8, 10, 11, 11, 11, 9, 9, 6, 6, 4, 4, 2, 3, 2, 3, 3, 3, 3, 3}, // 2356
	{3, 3, 3, 4, 5, 5, 7, 7, 9, 7, 7, 6, 4, 2, 3, 1, 1, 1, 3, 4, 5, 6, 6, 7}, // 2357
	{5, 6, 3, 4, 2, 3, 2, 3, 3, 4, 5, 6, 5, 6, 6, 6, 6, 6, 6, 5, 6, 5, 6, 5}, // 2358
	{6, 3, 3, 2, 2, 1, 3, 3, 4, 6, 7, 9, 10, 10, 9, 9, 7, 7, 5, 5, 3, 3, 2, 3}, // 2359
	{3, 4, 4, 4, 5, 6, 6, 6, 8, 7, 8, 7, 9, 7, 7, 5, 5, 3, 3, 2, 1, 1, 2, 3}, // 2360
	{3, 4, 5, 6, 6, 7, 6, 6, 4, 5, 2, 3, 1, 2, 2, 4, 4, 4, 3, 4, 4, 4, 4, 4}, // 2361
	{4, 3, 4, 3, 4, 2, 4, 2, 3, 2, 3, 2, 3, 3, 5, 6, 7, 8, 8, 9, 7, 7, 5, 5}, // 2362
	{2, 2, 0, 1, 1, 2, 3, 4, 5, 5, 7, 6, 7, 7, 7, 7, 7, 7, 8, 6, 7, 5, 5, 3}, // 2363
	{3, 1, 2, 2, 2, 3, 5, 7, 6, 9, 7, 7, 5, 6, 4, 4, 2, 2, 2, 2, 4, 4, 5, 5}, // 2364
	{7, 6, 6, 5, 5, 3, 4, 2, 4, 2, 2, 1, 2, 1, 0, 0, 0, 1, 1, 2, 3, 4, 5, 7}, // 2365
	{6, 7, 4, 5, 3, 2, 0, 0, -1, -1, 0, 0, 1, 2, 4, 5, 5, 5, 6, 5, 5, 3, 4, 3}, // 2366
	{4, 3, 4, 4, 4, 4, 4, 5, 4, 6, 4, 6, 5, 7, 6, 7, 6, 7, 5, 6, 4, 3, 2, 2}, // 2367
	{0, 1, 2, 2, 4, 5, 7, 7, 9, 7, 8, 6, 6, 4, 4, 2, 3, 1, 2, 2, 3, 3, 3, 4}, // 2368
	{3, 4, 3, 5, 3, 5, 4, 6, 5, 5, 4, 3, 2, 2, 1, 1, 1, 2, 3, 4, 6, 7, 8, 7}, // 2369
	{8, 5, 6, 3, 3, 1, 2, 1, 1, 1, 2, 3, 4, 4, 4, 5, 5, 6, 5, 7, 6, 7, 7, 7}, // 2370
	{5, 6, 4, 4, 3, 3, 3, 4, 5, 5, 7, 6, 8, 7, 9, 7, 7, 6, 5, 3, 4, 3, 3, 3}, // 2371
	{4, 5, 5, 6, 6, 8, 7, 9, 8, 8, 7, 7, 6, 5, 4, 3, 2, 2, 0, 1, 0, 1, 2, 2}, // 2372
	{4, 3, 6, 5, 7, 6, 7, 6, 7, 5, 4, 2, 2, 1, 1, 1, 0, 2, 1, 2, 3, 3, 2, 3}, // 2373
	{2, 3, 1, 2, 2, 2, 2, 3, 4, 3, 4, 3, 4, 3, 4, 4, 5, 4, 6, 5, 5, 3, 3, 1}, // 2374
	{1, -1, -2, -2, -1, -1, 1, 3, 4, 7, 6, 8, 8, 9, 7, 7, 5, 6, 4, 4, 3, 3, 2, 1}, // 2375
	{0, 0, 0, 0, 0, 0, 3, 3, 6, 6, 8, 7, 7, 6, 5, 4, 2, 1, 1, 0, 1, 2, 3, 4}, // 2376
	{4, 5, 4, 4, 3, 3, 1, 2, 1, 2, 1, 2, 1, 2, 3, 3, 3, 2, 3, 3, 5, 4, 6, 5}, // 2377
	{6, 5, 6, 4, 4, 3, 2, 0, 0, 0, 0, 1, 2, 4, 5, 7, 7, 9, 7, 7, 6, 6, 5, 4}, // 2378
	{4, 4, 3, 4, 5, 5, 6, 6, 7, 6, 7, 6, 8, 7, 9, 9, 10, 9, 9, 7, 7, 6, 5, 4}, // 2379
	{3, 3, 3, 5, 6, 8, 9, 10, 10, 10, 8, 8, 5, 6, 4, 4, 3, 4, 4, 5, 5, 5, 6, 5}, // 2380
	{6, 4, 5, 4, 5, 4, 6, 5, 6, 5, 5, 4, 3, 2, 1, 1, 1, 2, 4, 6, 6, 9, 8, 10}, // 2381
	{7, 7, 5, 5, 3, 2, 3, 2, 2, 2, 3, 3, 4, 3, 5, 5, 6, 4, 6, 5, 7, 5, 7, 6}, // 2382
	{5, 4, 4, 3, 1, 2, 1, 3, 2, 5, 4, 6, 6, 6, 6, 6, 5, 4, 2, 2, 2, 1, 2, 2}, // 2383
	{3, 3, 4, 4, 5, 5, 7, 6, 7, 5, 6, 4, 4, 4, 3, 2, 1, 1, -1, -1, -1, 0, 1, 3}, // 2384
	{2, 5, 4, 6, 5, 6, 5, 4, 2, 2, 0, 0, -2, -2, -2, -1, 1, 1, 2, 2, 3, 3, 3, 2}, // 2385
	{3, 1, 2, 2, 2, 1, 2, 2, 1, 2, 1, 1, 1, 1, 2, 4, 4, 6, 5, 7, 5, 5, 4, 3}, // 2386
	{2, 0, 0, 0, 1, 1, 3, 3, 5, 5, 6, 5, 6, 5, 5, 5, 4, 3, 4, 4, 4, 3, 2, 3}, // 2387
	{2, 2, 2, 2, 2, 4, 5, 7, 6, 8, 6, 7, 5, 4, 3, 1, 0, -1, 0, -1, 0, 2, 3, 3}, // 2388
	{5, 4, 6, 4, 6, 4, 4, 4, 3, 3, 3, 2, 2, 2, 0, 1, 0, 0, 0, 1, 1, 3, 3, 5}, // 2389
	{4, 5, 5, 5, 4, 4, 3, 3, 3, 3, 3, 3, 4, 5, 6, 6, 7, 5, 6, 3, 4, 2, 2, 1}, // 2390
	{1, 1, 1, 2, 2, 4, 5, 7, 7, 9, 9, 10, 9, 9, 9, 8, 8, 7, 6, 5, 4, 2, 1, 0}, // 2391
	{1, -1, 1, 1, 4, 5, 8, 8, 10, 10, 11, 10, 10, 7, 7, 6, 4, 4, 4, 4, 4, 4, 3, 4}, // 2392
	{3, 4, 2, 3, 2, 4, 4, 5, 5, 5, 6, 5, 5, 4, 5, 4, 5, 5, 6, 6, 7, 7, 8, 6}, // 2393
	{7, 5, 4, 2, 2, 1, 0, 1, 1, 3, 3, 5, 5, 7, 8, 10, 9, 10, 8, 9, 9, 8, 8, 7}, // 2394
	{6, 6, 5, 3, 3, 2, 3, 2, 5, 4, 7, 6, 9, 9, 10, 9, 9, 8, 7, 6, 5, 5, 4, 4}, // 2395
	{3, 5, 4, 7, 6, 7, 6, 8, 7, 7, 5, 6, 5, 5, 4, 4, 4, 4, 4, 3, 3, 2, 4, 4}, // 2396
	{5, 5, 7, 6, 7, 6, 7, 5, 4, 3, 1, 0, 0, 0, -1, 0, 0, 2, 2, 5, 3, 5, 4, 4}, // 2397
	{3, 3, 2, 1, 1, 1, 2, 1, 2, 0, 1, 0, 1, 1, 1, 2, 4, 4, 5, 4, 5, 4, 3, 3}, // 2398
	{1, 0, -1, -1, -2, 0, 0, 3, 3, 6, 6, 7, 6, 5, 4, 4, 3, 2, 2, 2, 3, 2, 2, 1}, // 2399
	{2, 0, 1, 0, 2, 1, 3, 3, 4, 4, 5, 5, 4, 3, 1, 1, -2, -2, -3, -1, -1, 0, 1, 3}, // 2400
	{3, 5, 4, 5, 3, 3, 1, 0, 1, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1, 1, 2, 2, 4, 4}, // 2401
	{5, 5, 5, 4, 3, 3, 1, 2, 0, 1, -1, 0, 1, 3, 3, 6, 6, 7, 6, 5, 5, 4, 4, 2}, // 2402
	{3, 2, 3, 3, 4, 4, 6, 5, 7, 6, 7, 6, 7, 6, 7, 7, 7, 7, 6, 6, 4, 4, 2, 3}, // 2403
	{2, 3, 2, 4, 5, 8, 8, 10, 10, 10, 9, 8, 6, 4, 3, 2, 2, 1, 3, 3, 4, 4, 6, 5}, // 2404
	{5, 4, 5, 4, 5, 5, 5, 6, 6, 6, 5, 5, 3, 3, 2, 2, 1, 2, 2, 4, 4, 6, 7, 7}, // 2405
	{7, 6, 4, 4, 3, 2, 2, 1, 4, 3, 5, 4, 6, 6, 6, 6, 7, 5, 6, 4, 4, 5, 5, 5}, // 2406
	{4, 5, 3, 4, 2, 4, 2, 5, 5, 8, 8, 9, 9, 10, 9, 8, 7, 6, 4, 3, 2, 1, 2, 1}, // 2407
	{2, 2, 4, 3, 5, 6, 7, 7, 7, 7, 7, 7, 7, 6, 5, 5, 3, 3, 1, 1, 0, 1, 0, 2}, // 2408
	{2, 3, 3, 5, 4, 4, 5, 5, 4, 3, 3, 2, 2, 1, 3, 2, 4, 4, 6, 4, 5, 4, 4, 3}, // 2409
	{2, 2, 0, 1, 0, 1, 0, 2, 1, 3, 2, 4, 3, 5, 5, 7, 8, 8, 8, 8, 7, 7, 6, 3}, // 2410
	{3, 0, 0, -1, 0, -1, 1, 2, 5, 6, 7, 7, 8, 8, 8, 7, 7, 7, 7, 7, 6, 6, 4, 5}, // 2411
	{3, 4, 2, 3, 3, 4, 4, 5, 5, 5, 5, 5, 5, 4, 4, 1, 2, 1, 1, 1, 3, 3, 5, 5}, // 2412
	{6, 6, 6, 5, 5, 4, 2, 3, 1, 1, -1, 0, -1, 0, 0, 1, 0, 2, 2, 3, 3, 4, 5, 5}, // 2413
	{6, 6, 7, 5, 5, 3, 4, 2, 3, 2, 2, 1, 3, 2, 4, 4, 5, 5, 6, 5, 4, 3, 3, 2}, // 2414
	{1, 2, 1, 3, 2, 4, 5, 6, 6, 7, 7, 7, 6, 5, 5, 4, 4, 4, 4, 3, 3, 1, 2, 0}, // 2415
	{1, 0, 2, 2, 4, 5, 7, 8, 9, 9, 8, 8, 7, 5, 3, 3, 0, 1, 0, 2, 1, 3, 3, 4}, // 2416
	{4, 4, 4, 4, 3, 3, 4, 4, 5, 3, 4, 3, 3, 1, 2, 2, 2, 2, 3, 3, 4, 6, 7, 6}, // 2417
	{6, 6, 4, 3, 1, 2, 1, 2, 1, 3, 2, 5, 5, 7, 6, 7, 7, 6, 6, 5, 5, 5, 5, 5}, // 2418
	{6, 4, 5, 4, 4, 3, 5, 4, 5, 6, 7, 7, 8, 8, 8, 8, 7, 6, 4, 4, 2, 2, 1, 2}, // 2419
	{3, 4, 4, 6, 7, 8, 9, 9, 8, 7, 7, 5, 5, 4, 4, 2, 2, 1, 2, 1, 1, 1, 2, 2}, // 2420
	{3, 3, 4, 6, 5, 6, 6, 7, 5, 5, 2, 2, 0, 1, 0, 1, 1, 2, 3, 4, 3, 3, 4, 3}, // 2421
	{2, 2, 2, 1, 2, 2, 3, 2, 5, 4, 4, 4, 4, 4, 5, 4, 5, 5, 5, 5, 4, 4, 3, 3}, // 2422
	{1, 1, -2, -1, -2, 1, 1, 3, 5, 8, 9, 10, 9, 8, 8, 5, 5, 3, 3, 2, 3, 2, 3, 1}, // 2423
	{2, 1, 2, 1, 3, 3, 4, 5, 5, 7, 7, 8, 6, 7, 4, 4, 1, 1, -1, 0, 0, 2, 2, 4}, // 2424
	{5, 5, 5, 4, 4, 3, 3, 2, 2, 1, 3, 1, 3, 3, 4, 4, 5, 4, 4, 4, 4, 4, 3, 5}, // 2425
	{4, 5, 3, 5, 3, 4, 3, 3, 2, 3, 3, 4, 5, 7, 8, 10, 10, 10, 10, 8, 8, 6, 5, 3}, // 2426
	{3, 1, 3, 1, 4, 4, 6, 6, 7, 8, 9, 9, 10, 9, 10, 9, 10, 10, 8, 9, 7, 6, 4, 4}, // 2427
	{3, 3, 1, 3, 5, 6, 8, 8, 10, 9, 9, 7, 7, 6, 6, 4, 5, 4, 5, 5, 7, 7, 8, 8}, // 2428
	{7, 6, 5, 5, 4, 4, 3, 5, 4, 4, 3, 4, 2, 3, 2, 2, 2, 4, 4, 5, 6, 8, 9, 7}, // 2429
	{8, 6, 5, 3, 2, 0, 1, 0, 2, 1, 3, 2, 4, 4, 5, 5, 5, 6, 5, 5, 4, 5, 4, 5}, // 2430
	{4, 5, 3, 4, 3, 4, 3, 4, 4, 5, 7, 6, 8, 6, 6, 5, 4, 3, 2, 1, 1, 1, 1, 1}, // 2431
	{2, 2, 3, 4, 5, 6, 6, 6, 6, 6, 4, 4, 3, 3, 1, 1, -1, 0, -2, -1, -1, -1, 0, 1}, // 2432
	{2, 2, 3, 3, 4, 3, 5, 3, 4, 2, 2, -1, 0, -1, 0, 0, 1, 2, 3, 2, 3, 3, 3, 3}, // 2433
	{1, 2, 0, 1, -1, 1, 0, 1, 1, 2, 2, 4, 3, 4, 3, 4, 5, 5, 5, 5, 5, 4, 4, 2}, // 2434
	{2, -1, 0, -1, 0, 0, 2, 3, 4, 6, 6, 7, 7, 8, 7, 6, 4, 5, 3, 4, 3, 3, 2, 3}, // 2435
	{3, 3, 3, 3, 3, 5, 6, 5, 7, 5, 7, 5, 5, 4, 3, 1, 1, 0, -1, 0, 1, 2, 3, 5}, // 2436
	{5, 7, 6, 6, 5, 6, 4, 4, 2, 3, 1, 2, 1, 2, 1, 2, 2, 2, 2, 2, 3, 3, 4, 4}, // 2437
	{5, 3, 5, 4, 6, 5, 5, 4, 4, 3, 4, 4, 4, 5, 6, 7, 6, 7, 6, 7, 4, 4, 2, 2}, // 2438
	{0, 2, 0, 2, 3, 5, 6, 8, 9, 9, 10, 10, 10, 8, 9, 7, 7, 5, 6, 4, 4, 3, 3, 2}, // 2439
	{2, 1, 1, 2, 4, 5, 7, 9, 9, 11, 9, 10, 7, 7, 5, 4, 3, 3, 2, 3, 3, 4, 5, 6}, // 2440
	{6, 5, 5, 3, 3, 2, 4, 3, 5, 3, 5, 3, 5, 4, 4, 5, 5, 6, 6, 7, 7, 7, 8, 9}, // 2441
	{7, 7, 4, 4, 1, 1, 0, 1, 1, 2, 3, 5, 7, 8, 8, 9, 9, 9, 9, 7, 8, 6, 7, 5}, // 2442
	{5, 5, 4, 3, 5, 4, 4, 5, 5, 7, 6, 8, 8, 9, 10, 10, 9, 9, 7, 6, 5, 4, 3, 3}, // 2443
	{3, 5, 5, 6, 7, 8, 9, 8, 9, 6, 6, 4, 4, 3, 3, 3, 3, 3, 3, 2, 3, 3, 3, 4}, // 2444
	{4, 5, 4, 5, 4, 5, 5, 5, 3, 3, 1, 1, -1, -1, -1, 0, 2, 2, 4, 5, 6, 5, 6, 4}, // 2445
	{4, 2, 2, 1, 1, 1, 2, 3, 3, 4, 3, 4, 4, 4, 3, 4, 3, 5, 4, 6, 4, 6, 4, 4}, // 2446
	{1, 1, -1, -1, -1, 0, 2, 3, 5, 5, 7, 7, 7, 5, 5, 3, 2, 0, 1, 0, 1, 1, 2, 2}, // 2447
	{2, 3, 2, 3, 2, 3, 3, 5, 4, 6, 5, 6, 4, 4, 2, 1, 0, -1, -3, -2, -2, -1, 1, 3}, // 2448
	{5, 4, 6, 4, 6, 4, 4, 2, 2, 1, 1, 0, 1, 1, 2, 2, 2, 3, 3, 3, 2, 3, 2, 3}, // 2449
	{2, 4, 3, 5, 3, 4, 4, 4, 4, 4, 4, 4, 5, 6, 7, 7, 8, 8, 8, 6, 7, 4, 3, 2}, // 2450
	{2, 1, 2, 2, 4, 5, 7, 9, 10, 11, 10, 11, 9, 9, 9, 9, 7, 7, 6, 6, 5, 4, 3, 2}, // 2451
	{3, 2, 3, 3, 5, 6, 9, 9, 11, 11, 11, 8, 8, 6, 5, 4, 4, 3, 3, 3, 4, 5, 6, 7}, // 2452
	{6, 6, 5, 6, 4, 6, 4, 5, 5, 6, 5, 6, 4, 4, 4, 3, 4, 4, 5, 5, 7, 6, 8, 7}, // 2453
	{8, 6, 6, 4, 5, 3, 3, 3, 4, 5, 5, 7, 8, 9, 8, 9, 8, 9, 6, 7, 5, 5, 4, 4}, // 2454
	{3, 4, 3, 3, 4, 5, 6, 6, 8, 8, 10, 9, 10, 10, 10, 8, 8, 6, 4, 3, 2, 2, 1, 2}, // 2455
	{1, 3, 3, 5, 5, 7, 7, 9, 8, 9, 7, 7, 6, 6, 5, 4, 4, 4, 3, 2, 2, 1, 3, 2}, // 2456
	{3, 2, 4, 2, 3, 3, 4, 3, 4, 3, 3, 2, 2, 3, 3, 4, 5, 6, 6, 7, 6, 6, 5, 5}, // 2457
	{3, 2, 0, -1, -1, 0, 0, 2, 2, 3, 5, 5, 6, 7, 8, 7, 9, 8, 10, 8, 9, 8, 7, 5}, // 2458
	{4, 2, 1, 1, 0, 1, 1, 3, 4, 6, 6, 9, 8, 8, 8, 7, 6, 7, 5, 5, 4, 5, 5, 5}, // 2459
	{6, 4, 5, 4, 5, 3, 5, 4, 5, 4, 5, 4, 5, 4, 3, 3, 2, 1, 2, 3, 3, 4, 5, 7}, // 2460
	{7, 9, 8, 9, 7, 7, 4, 4, 2, 2, 1, 0, 0, 0, 1, 2, 3, 3, 5, 4, 5, 5, 5, 4}, // 2461
	{6, 4, 5, 4, 5, 5, 5, 4, 3, 4, 3, 4, 3, 4, 4, 5, 6, 7, 6, 6, 5, 5, 3, 3}, // 2462
	{1, 1, 2, 1, 3, 4, 7, 7, 10, 10, 11, 10, 9, 7, 7, 5, 5, 4, 4, 4, 4, 3, 3, 3}, // 2463
	{2, 3, 2, 4, 3, 6, 6, 9, 8, 9, 8, 8, 7, 5, 3, 2, 1, 0, 1, 1, 3, 3, 5, 4}, // 2464
	{6, 5, 6, 3, 4, 2, 3, 3, 3, 4, 4, 4, 4, 4, 4, 4, 4, 5, 3, 6, 5, 7, 6, 6}, // 2465
	{6, 6, 4, 4, 3, 3, 2, 1, 3, 2, 4, 5, 7, 8, 9, 8, 8, 7, 8, 5, 6, 4, 4, 4}, // 2466
	{4, 4, 3, 4, 4, 6, 5, 6, 6, 7, 7, 9, 8, 9, 9, 9, 7, 7, 5, 4, 3, 2, 2, 1}, // 2467
	{3, 2, 5, 6, 8, 8, 9, 9, 9, 8, 8, 6, 5, 4, 3, 3, 2, 2, 2, 2, 2, 3, 1, 3}, // 2468
	{2, 4, 3, 5, 5, 5, 5, 6, 6, 4, 4, 3, 2, 1, 1, 1, 3, 3, 5, 5, 5, 5, 5, 3}, // 2469
	{3, 1, 1, 0, 0, 2, 2, 4, 5, 6, 5, 6, 5, 7, 6, 6, 6, 7, 5, 6, 5, 5, 4, 3}, // 2470
	{2, 0, 0, -1, 0, 0, 3, 4, 8, 8, 10, 9, 11, 9, 8, 6, 5, 3, 2, 1, 1, 2, 2, 3}, // 2471
	{2, 4, 3, 4, 3, 4, 4, 5, 5, 7, 6, 7, 6, 6, 5, 4, 2, 1, 1, 0, 1, 1, 4, 3}, // 2472
	{5, 4, 6, 5, 5, 5, 5, 3, 2, 3, 2, 3, 3, 4, 5, 6, 7, 7, 6, 7, 5, 6, 5, 5}, // 2473
	{4, 4, 3, 4, 4, 3, 4, 3, 5, 4, 6, 6, 8, 8, 10, 10, 11, 11, 11, 9, 9, 7, 6, 4}, // 2474
	{3, 2, 1, 2, 2, 5, 6, 8, 8, 11, 10, 11, 10, 11, 10, 9, 9, 9, 9, 8, 8, 8, 8, 6}, // 2475
	{6, 4, 6, 5, 7, 7, 8, 8, 9, 8, 8, 7, 6, 4, 3, 4, 3, 3, 4, 5, 5, 7, 8, 9}, // 2476
	{8, 8, 6, 7, 5, 4, 3, 3, 4, 3, 3, 2, 2, 1, 3, 2, 4, 3, 5, 5, 7, 7, 8, 8}, // 2477
	{9, 7, 7, 5, 4, 5, 3, 4, 4, 5, 4, 6, 5, 7, 6, 7, 6, 6, 4, 5, 4, 4, 4, 4}, // 2478
	{5, 4, 4, 3, 6, 5, 7, 6, 8, 7, 8, 7, 8, 6, 6, 5, 3, 2, 1, 0, 0, 0, -1, 0}, // 2479
	{1, 2, 2, 5, 5, 7, 8, 8, 8, 8, 6, 5, 5, 3, 2, 1, 1, 0, 0, -1, 1, 0, 1, 0}, // 2480
	{2, 2, 2, 2, 3, 3, 4, 4, 4, 4, 3, 3, 1, 2, 2, 3, 2, 4, 4, 5, 4, 4, 4, 3}, // 2481
	{1, 0, 0, -1, -1, -1, 1, 1, 3, 4, 6, 5, 7, 7, 8, 7, 8, 7, 7, 6, 6, 5, 4, 4}, // 2482
	{2, 2, 0, 1, 0, 2, 2, 5, 6, 8, 8, 11, 9, 10, 8, 7, 7, 4, 4, 3, 2, 2, 3, 3}, // 2483
	{5, 3, 5, 5, 7, 6, 7, 7, 6, 7, 6, 6, 6, 5, 4, 4, 3, 3, 2, 2, 2, 3, 3, 5}, // 2484
	{6, 6, 6, 7, 7, 7, 6, 6, 5, 4, 4, 3, 3, 3, 4, 5, 6, 6, 6, 6, 6, 5, 5, 4}, // 2485
	{3, 3, 4, 4, 4, 6, 6, 8, 7, 8, 7, 8, 8, 9, 8, 9, 10, 10, 9, 8, 7, 5, 4, 2}, // 2486
	{2, 0, 1, 1, 4, 4, 8, 9, 11, 13, 14, 13, 13, 11, 9, 8, 7, 7, 6, 6, 4, 5, 3, 4}, // 2487
	{2, 3, 2, 4, 4, 6, 7, 8, 10, 10, 11, 10, 9, 8, 7, 5, 5, 3, 4, 3, 6, 5, 7, 6}, // 2488
	{7, 6, 6, 4, 3, 3, 2, 3, 3, 5, 4, 6, 6, 7, 7, 8, 7, 8, 7, 8, 7, 8, 8, 7}, // 2489
	{7, 6, 5, 3, 3, 2, 2, 1, 3, 4, 6, 6, 9, 10, 12, 11, 11, 10, 10, 9, 8, 7, 5, 6}, // 2490
	{4, 5, 4, 5, 4, 5, 5, 6, 6, 7, 7, 9, 9, 9, 9, 9, 9, 8, 7, 6, 5, 3, 3, 3}, // 2491
	{4, 3, 6, 5, 7, 7, 7, 8, 7, 6, 4, 4, 3, 2, 2, 3, 2, 4, 3, 5, 4, 6, 5, 6}, // 2492
	{5, 5, 5, 5, 5, 5, 5, 5, 4, 3, 3, 0, 0, 0, 0, 1, 2, 3, 5, 6, 7, 7, 6, 6}, // 2493
	{5, 4, 2, 2, 1, 2, 1, 2, 2, 4, 3, 5, 4, 4, 4, 4, 3, 4, 4, 5, 5, 4, 5, 4}, // 2494
	{4, 2, 2, 1, 2, 2, 4, 4, 7, 8, 8, 8, 8, 7, 5, 4, 1, 1, 0, 0, 0, 1, 1, 3}, // 2495
	{3, 5, 4, 6, 6, 6, 6, 6, 6, 5, 5, 4, 4, 3, 3, 0, 0, -2, -1, -2, -1, 0, 2, 3}, // 2496
	{4, 5, 5, 6, 5, 5, 5, 5, 3, 4, 2, 3, 2, 4, 3, 5, 4, 6, 4, 5, 4, 4, 3, 2}, // 2497
	{3, 2, 3, 2, 4, 3, 6, 5, 7, 6, 8, 7, 8, 8, 9, 9, 9, 9, 9, 7, 6, 6, 4, 3}, // 2498
	{1, 2, 1, 3, 3, 5, 7, 9, 10, 12, 12, 12, 12, 11, 11, 9, 8, 7, 7, 5, 6, 5, 5, 4}, // 2499
	{5, 3, 5, 5, 6, 6, 8, 9, 9, 10, 9, 9, 8, 8, 5, 5, 4, 5, 3, 5, 5, 7, 7, 8}, // 2500
	{6, 7, 7, 6, 5, 5, 5, 4, 5, 3, 4, 4, 5, 4, 6, 6, 7, 6, 6, 6, 7, 6, 6, 6}, // 2501
	{6, 7, 5, 6, 4, 4, 3, 5, 3, 5, 5, 7, 8, 8, 10, 9, 10, 8, 8, 5, 5, 2, 3, 2}, // 2502
	{3, 2, 3, 4, 6, 6, 8, 8, 9, 9, 9, 10, 10, 10, 9, 9, 6, 6, 3, 3, 0, 1, -1, 0}, // 2503
	{0, 2, 2, 4, 5, 7, 7, 8, 9, 7, 7, 5, 5, 5, 5, 4, 4, 2, 3, 1, 2, 1, 2, 1}, // 2504
	{1, 1, 1, 2, 1, 3, 2, 4, 4, 4, 3, 4, 3, 5, 4, 5, 6, 7, 7, 7, 6, 5, 4, 3}, // 2505
	{3, 0, 0, -2, -1, -1, 0, 0, 2, 2, 5, 7, 8, 9, 10, 9, 9, 9, 8, 8, 6, 5, 3, 4}, // 2506
	{2, 2, 0, 1, 0, 1, 1, 2, 3, 6, 6, 8, 9, 9, 10, 8, 8, 6, 5, 3, 4, 3, 3, 3}, // 2507
	{5, 5, 6, 7, 6, 7, 6, 6, 4, 4, 2, 4, 2, 3, 3, 4, 3, 4, 2, 3, 2, 3, 3, 5}, // 2508
	{6, 6, 7, 6, 7, 5, 5, 3, 3, 0, 0, -1, 0, 0, 2, 3, 5, 5, 6, 6, 5, 5, 4, 5}, // 2509
	{3, 4, 3, 6, 4, 6, 5, 6, 6, 5, 6, 5, 5, 6, 7, 7, 8, 7, 8, 6, 6, 4, 4, 2}, // 2510
	{2, 1, 2, 2, 4, 5, 7, 8, 10, 11, 10, 10, 8, 8, 6, 6, 3, 4, 2, 3, 2, 3, 2, 3}, // 2511
	{3, 4, 4, 5, 5, 5, 7, 7, 8, 7, 8, 6, 6, 5, 4, 2, 3, 0, 1, 1, 2, 3, 4, 5}, // 2512
	{6, 7, 6, 5, 4, 4, 3, 4, 3, 3, 3, 4, 4, 4, 5, 5, 5, 5, 5, 4, 4, 3, 4, 4}, // 2513
	{5, 4, 5, 3, 4, 3, 3, 2, 3, 4, 5, 6, 8, 10, 10, 11, 9, 9, 6, 6, 2, 3, 0, 2}, // 2514
	{0, 3, 2, 4, 5, 5, 6, 7, 7, 7, 8, 8, 9, 9, 9, 8, 8, 6, 5, 2, 2, 0, 1, -1}, // 2515
	{0, 2, 3, 4, 6, 7, 8, 8, 7, 7, 5, 5, 3, 4, 3, 4, 3, 3, 3, 3, 3, 3, 3, 2}, // 2516
	{3, 2, 2, 2, 3, 3, 4, 3, 4, 3, 3, 3, 3, 3, 3, 5, 5, 7, 6, 7, 7, 6, 4, 4}, // 2517
	{2, 2, 0, 1, 0, 1, 1, 2, 3, 5, 6, 7, 7, 8, 9, 7, 8, 7, 8, 5, 6, 4, 5, 3}, // 2518
	{3, 2, 1, 0, 2, 1, 3, 5, 5, 8, 7, 9, 9, 9, 8, 8, 5, 5, 2, 2, 1, 1, 1, 3}, // 2519
	{3, 4, 4, 5, 6, 6, 6, 5, 5, 4, 5, 4, 5, 5, 6, 5, 5, 3, 3, 2, 1, 2, 3, 3}, // 2520
	{3, 5, 5, 6, 5, 5, 4, 4, 2, 3, 2, 2, 3, 4, 6, 7, 8, 9, 8, 7, 7, 4, 4, 3}, // 2521
	{3, 1, 3, 2, 3, 2, 4, 4, 4, 5, 7, 8, 9, 10, 10, 12, 11, 12, 10, 10, 8, 8, 5, 4}, // 2522
	{2, 2, 2, 2, 3, 4, 6, 7, 8, 9, 10, 9, 10, 10, 10, 9, 9, 7, 8, 6, 6, 5, 6, 5}, // 2523
	{5, 4, 5, 5, 4, 5, 4, 5, 5, 5, 4, 5, 4, 4, 4, 3, 4, 4, 3, 4, 4, 5, 7, 7}, // 2524
	{9, 8, 8, 6, 7, 4, 3, 2, 2, 0, 1, 1, 2, 3, 4, 4, 5, 6, 5, 6, 5, 6, 5, 7}, // 2525
	{5, 7, 6, 6, 4, 5, 3, 3, 2, 2, 3, 3, 4, 5, 7, 6, 7, 5, 6, 3, 3, 2, 2, 0}, // 2526
	{2, 2, 3, 4, 5, 7, 7, 8, 8, 8, 7, 7, 6, 6, 5, 5, 2, 3, 0, 1, -1, 0, -1, -1}, // 2527
	{1, 1, 3, 4, 6, 6, 8, 7, 7, 5, 5, 2, 2, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 2}, // 2528
	{1, 2, 1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 2, 2, 2, 2, 2, 3, 4, 4, 4, 3, 4, 2}, // 2529
	{2, 1, 1, -1, 0, 0, 1, 1, 2, 4, 5, 7, 7, 8, 8, 8, 6, 6, 4, 5, 3, 4, 2, 3}, // 2530
	{2, 3, 1, 2, 2, 3, 3, 4, 6, 6, 8, 8, 9, 9, 9, 7, 7, 4, 3, 1, 0, 0, 1, 3}, // 2531
	{3, 5, 6, 7, 7, 7, 7, 7, 5, 6, 4, 4, 3, 4, 4, 4, 4, 3, 3, 2, 2, 1, 3, 3}, // 2532
	{5, 4, 7, 6, 7, 6, 6, 5, 4, 3, 3, 2, 2, 4, 5, 6, 7, 9, 8, 9, 6, 6, 3, 4}, // 2533
	{2, 3, 2, 4, 4, 5, 6, 6, 7, 8, 7, 7, 9, 9, 10, 9, 10, 9, 10, 8, 8, 6, 5, 3}, // 2534
	{3, 2, 1, 2, 4, 5, 6, 10, 10, 12, 11, 13, 10, 11, 9, 8, 7, 7, 5, 5, 4, 5, 5, 5}, // 2535
	{6, 4, 5, 4, 6, 5, 6, 6, 7, 7, 7, 6, 7, 6, 6, 5, 4, 4, 4, 3, 4, 5, 6, 7}, // 2536
	{7, 7, 6, 6, 4, 4, 3, 2, 2, 2, 3, 4, 5, 6, 8, 7, 9, 7, 9, 7, 8, 6, 6, 5}, // 2537
	{6, 4, 6, 4, 4, 3, 3, 2, 3, 3, 4, 6, 7, 10, 11, 12, 10, 10, 7, 7, 4, 4, 3, 2}, // 2538
	{2, 2, 3, 4, 5, 5, 6, 6, 7, 6, 8, 7, 8, 8, 8, 8, 8, 6, 6, 3, 3, 2, 1, 2}, // 2539
	{2, 4, 4, 6, 6, 7, 7, 7, 5, 6, 3, 3, 2, 1, 2, 2, 3, 2, 3, 3, 4, 4, 4, 2}, // 2540
	{4, 2, 3, 2, 3, 2, 3, 2, 2, 1, 0, 0, 0, 1, 1, 3, 2, 5, 4, 7, 5, 6, 4, 5}, // 2541
	{3, 3, 1, 1, 1, 0, 1, 2, 3, 3, 4, 5, 6, 5, 6, 5, 6, 4, 5, 3, 4, 3, 3, 3}, // 2542
	{3, 3, 2, 2, 3, 4, 3, 5, 5, 6, 6, 7, 6, 7, 6, 4, 3, 1, -1, -2, -1, -2, 0, 0}, // 2543
	{3, 4, 5, 5, 7, 6, 6, 6, 5, 4, 3, 3, 3, 3, 3, 2, 2, 1, 1, 1, -1, 0, 0, 2}, // 2544
	{2, 4, 4, 6, 5, 5, 5, 5, 3, 3, 3, 3, 3, 3, 5, 5, 7, 6, 7, 5, 6, 4, 4, 1}, // 2545
	{1, 0, 1, 2, 2, 3, 4, 5, 6, 7, 7, 8, 9, 10, 10, 10, 9, 9, 7, 7, 6, 5, 3, 3}, // 2546
	{2, 1, 2, 2, 4, 4, 7, 7, 9, 9, 11, 11, 11, 10, 10, 8, 8, 6, 6, 4, 4, 4, 3, 5}, // 2547
	{4, 6, 5, 6, 6, 6, 5, 6, 6, 7, 6, 6, 6, 5, 5, 5, 4, 3, 5, 3, 5, 5, 7, 7}, // 2548
	{8, 7, 8, 6, 6, 5, 3, 3, 2, 2, 2, 3, 3, 5, 6, 7, 6, 8, 6, 8, 6, 7, 5, 6}, // 2549
	{5, 6, 5, 5, 5, 5, 5, 4, 5, 4, 5, 6, 7, 8, 10, 9, 10, 9, 8, 6, 5, 3, 3, 2}, // 2550
	{2, 2, 3, 4, 4, 6, 7, 8, 8, 9, 8, 9, 7, 7, 7, 6, 6, 4, 3, 2, 2, 0, 1, 0}, // 2551
	{2, 2, 4, 3, 5, 5, 7, 7, 7, 6, 5, 4, 3, 3, 2, 3, 2, 3, 3, 4, 3, 5, 3, 3}, // 2552
	{2, 3, 1, 2, 1, 1, 1, 1, 1, 1, 3, 2, 3, 3, 5, 4, 6, 5, 7, 5, 7, 6, 6, 4}, // 2553
	{3, 1, 1, -1, -2, -1, -2, 0, 0, 2, 3, 6, 7, 9, 8, 9, 7, 8, 6, 6, 5, 5, 5, 4}, // 2554
	{4, 3, 4, 3, 3, 2, 3, 3, 4, 3, 5, 5, 6, 6, 7, 7, 5, 4, 2, 2, 1, 1, 2, 3}, // 2555
	{4, 6, 6, 7, 6, 7, 5, 4, 3, 1, 0, 0, 0, 0, 1, 1, 3, 2, 3, 2, 3, 2, 4, 3}, // 2556
	{5, 5, 7, 6, 7, 6, 6, 5, 3, 2, 0, 1, 0, 2, 2, 5, 5, 7, 6, 7, 6, 6, 5, 4}, // 2557
	{3, 3, 2, 3, 3, 4, 5, 5, 7, 6, 6, 6, 7, 5, 6, 6, 7, 6, 7, 5, 6, 4, 4, 3}, // 2558
	{2, 2, 1, 3, 3, 6, 6, 9, 9, 11, 9, 9, 8, 8, 7, 5, 3, 2, 2, 1, 2, 2, 4, 3}, // 2559
	{5, 4, 5, 5, 6, 5, 6, 6, 6, 6, 5, 5, 4, 3, 2, 2, 1, 1, 0, 1, 1, 3, 3, 5}, // 2560
	{4, 5, 5, 5, 4, 4, 3, 2, 2, 1, 3, 2, 4, 4, 6, 5, 6, 5, 5, 3, 4, 3, 3, 2}, // 2561
	{3, 3, 2, 3, 3, 3, 3, 4, 3, 5, 5, 6, 7, 9, 9, 9, 8, 7, 6, 3, 2, 1, 0, -1}, // 2562
	{1, -1, 2, 2, 5, 4, 7, 7, 8, 7, 8, 8, 8, 7, 7, 7, 6, 5, 3, 3, 0, 1, -2, 0}, // 2563
	{0, 2, 2, 4, 5, 6, 6, 6, 6, 5, 4, 3, 2, 1, 2, 1, 2, 2, 3, 3, 5, 3, 4, 2}, // 2564
	{3, 2, 2, 2, 2, 2, 2, 3, 2, 3, 2, 3, 2, 4, 3, 5, 5, 7, 5, 7, 6, 6, 6, 5}, // 2565
	{4, 2, 2, 0, 1, 0, 1, 1, 4, 4, 6, 6, 7, 8, 9, 8, 8, 6, 5, 4, 4, 4, 3, 4}, // 2566
	{3, 5, 3, 4, 4, 5, 5, 6, 6, 7, 8, 8, 8, 8, 7, 6, 6, 4, 3, 0, 1, 0, 2, 2}, // 2567
	{5, 4, 7, 6, 8, 7, 7, 6, 5, 4, 3, 4, 3, 4, 3, 4, 3, 4, 2, 4, 2, 3, 2, 3}, // 2568
	{3, 4, 4, 4, 5, 5, 5, 5, 5, 3, 4, 3, 4, 4, 7, 7, 8, 8, 9, 8, 8, 6, 6, 4}, // 2569
	{3, 3, 1, 2, 1, 2, 3, 4, 5, 7, 7, 8, 9, 10, 10, 9, 10, 9, 9, 8, 7, 6, 5, 4}, // 2570
	{4, 2, 3, 1, 3, 2, 5, 5, 7, 7, 8, 8, 8, 8, 8, 7, 5, 6, 4, 5, 4, 5, 4, 6}, // 2571
	{5, 8, 7, 7, 6, 6, 5, 4, 4, 2, 3, 2, 2, 2, 2, 1, 3, 2, 4, 3, 5, 5, 6, 7}, // 2572
	{8, 8, 8, 6, 5, 4, 2, 1, 0, 0, -2, -1, -1, 1, 3, 4, 5, 6, 5, 6, 4, 4, 4, 4}, // 2573
	{5, 4, 5, 5, 5, 4, 4, 4, 4, 3, 4, 4, 5, 6, 6, 7, 6, 7, 5, 4, 2, 2, 1, 1}, // 2574
	{0, 3, 2, 5, 5, 7, 7, 8, 8, 8, 7, 5, 5, 4, 3, 3, 2, 1, 2, 0, 0, -1, 0, -2}, // 2575
	{1, 0, 3, 3, 5, 6, 6, 7, 6, 6, 4, 4, 2, 1, -1, 0, -1, 1, 0, 2, 1, 2, 2, 2}, // 2576
	{1, 1, 1, 0, 1, 0, 1, 1, 3, 2, 3, 3, 4, 3, 4, 4, 4, 4, 4, 4, 4, 4, 4, 3}, // 2577
	{1, 2, -1, 0, -2, -1, -1, 0, 1, 3, 5, 7, 9, 9, 9, 8, 8, 5, 5, 3, 3, 1, 1, 1}, // 2578
	{2, 1, 3, 2, 4, 3, 3, 4, 4, 6, 6, 7, 8, 8, 7, 7, 5, 5, 2, 1, -1, 0, 0, 2}, // 2579
	{2, 4, 5, 6, 7, 7, 6, 5, 4, 3, 3, 1, 2, 2, 4, 3, 5, 4, 5, 3, 4, 3, 3, 3}, // 2580
	{4, 3, 4, 5, 4, 5, 4, 4, 3, 3, 2, 3, 2, 4, 4, 7, 8, 10, 9, 9, 8, 7, 6, 4}, // 2581
	{4, 2, 3, 2, 3, 3, 5, 5, 7, 7, 8, 8, 9, 9, 9, 9, 9, 10, 8, 8, 7, 7, 5, 5}, // 2582
	{4, 4, 2, 4, 3, 5, 6, 8, 8, 10, 10, 10, 10, 9, 8, 6, 6, 4, 4, 2, 4, 3, 5, 5}, // 2583
	{6, 6, 6, 6, 6, 6, 6, 6, 5, 6, 5, 5, 4, 5, 3, 4, 2, 4, 3, 4, 4, 5, 6, 7}, // 2584
	{7, 7, 7, 5, 5, 3, 3, 1, 1, 0, 2, 2, 4, 4, 6, 6, 7, 7, 6, 6, 5, 5, 3, 4}, // 2585
	{3, 4, 3, 4, 2, 3, 2, 2, 2, 3, 4, 5, 7, 7, 8, 8, 8, 7, 7, 4, 4, 2, 2, 0}, // 2586
	{2, 1, 3, 3, 5, 5, 6, 7, 6, 6, 5, 5, 4, 5, 4, 4, 3, 4, 1, 2, 1, 1, 1, 1}, // 2587
	{1, 2, 2, 3, 4, 4, 3, 3, 3, 1, 1, -1, -1, -2, -1, -2, 0, 0, 2, 2, 3, 3, 4, 4}, // 2588
	{4, 4, 2, 3, 1, 1, 0, 0, -1, 0, -1, 0, -1, 0, 1, 2, 3, 3, 4, 4, 5, 4, 5, 4}, // 2589
	{5, 2, 3, 0, 1, 0, 0, 0, 1, 2, 2, 4, 4, 5, 5, 5, 3, 3, 2, 2, 1, 2, 1, 2}, // 2590
	{2, 4, 3, 5, 5, 5, 5, 5, 5, 5, 5, 4, 5, 4, 4, 2, 2, -1, -1, -3, -1, -2, 0, 0}, // 2591
	{2, 4, 6, 7, 8, 8, 8, 7, 5, 4, 2, 2, 0, 1, -1, 0, 0, 1, 0, 1, 1, 1, 1, 1}, // 2592
	{2, 2, 4, 3, 4, 4, 6, 4, 5, 4, 4, 3, 4, 4, 4, 5, 6, 6, 6, 6, 5, 4, 3, 3}, // 2593
	{1, 1, 0, 1, 1, 2, 3, 5, 6, 8, 9, 10, 10, 10, 10, 8, 8, 6, 6, 4, 5, 3, 4, 2}, // 2594
	{2, 1, 2, 1, 3, 3, 5, 6, 8, 9, 9, 10, 9, 10, 7, 8, 5, 4, 2, 3, 1, 3, 2, 4}, // 2595
	{4, 6, 6, 5, 6, 4, 4, 3, 5, 4, 4, 3, 5, 4, 4, 4, 5, 3, 4, 4, 4, 4, 5, 6}, // 2596
	{6, 7, 5, 6, 4, 4, 2, 2, 1, 1, 0, 2, 4, 4, 6, 8, 8, 9, 8, 7, 6, 4, 4, 3}, // 2597
	{4, 3, 4, 3, 4, 3, 4, 4, 4, 4, 5, 6, 7, 8, 8, 10, 8, 9, 6, 6, 4, 3, 1, 2}, // 2598
	{0, 1, 2, 3, 5, 6, 8, 8, 8, 8, 7, 6, 6, 5, 6, 5, 4, 3, 3, 1, 2, 2, 1, 1}, // 2599
	{2, 2, 2, 4, 3, 5, 5, 5, 4, 5, 3, 3, 1, 1, 0, 1, 2, 2, 3, 3, 4, 4, 4, 3}, // 2600
	{3, 2, 2, 0, 0, -1, 0, -1, 0, 1, 2, 3, 3, 4, 4, 5, 5, 5, 6, 6, 6, 6, 5, 5}, // 2601
	{3, 3, 1, 1, -1, 0, -1, -1, 1, 2, 4, 5, 7, 7, 9, 7, 7, 4, 4, 2, 2, 2, 2, 2}, // 2602
	{3, 2, 3, 3, 4, 3, 3, 4, 3, 4, 3, 4, 3, 5, 5, 5, 4, 3, 1, 0, -1, -1, 0, 2}, // 2603
	{3, 4, 6, 6, 7, 6, 7, 4, 4, 1, 1, -1, 0, -1, 0, 2, 3, 3, 3, 4, 3, 4, 3, 4}, // 2604
	{3, 4, 3, 4, 3, 4, 3, 3, 2, 1, 0, 0, 1, 1, 3, 4, 5, 6, 8, 6, 7, 5, 5, 3}, // 2605
	{3, 2, 2, 1, 3, 2, 3, 4, 5, 5, 5, 6, 7, 7, 6, 7, 6, 7, 6, 6, 5, 6, 4, 5}, // 2606
	{3, 4, 3, 3, 4, 5, 6, 7, 8, 7, 8, 7, 6, 5, 4, 3, 3, 1, 1, 0, 2, 2, 3, 5}, // 2607
	{5, 6, 6, 7, 6, 6, 5, 5, 4, 4, 2, 2, 1, 1, 0, 0, 0, 0, 1, 1, 2, 2, 4, 4}, // 2608
	{6, 5, 7, 5, 6, 4, 3, 2, 2, 1, 1, 2, 3, 4, 4, 5, 4, 5, 4, 4, 2, 3, 2, 2}, // 2609
	{1, 2, 2, 3, 3, 3, 3, 4, 4, 4, 5, 5, 7, 7, 8, 7, 7, 5, 5, 2, 2, -1, 0, -2}, // 2610
	{-1, -1, 0, 2, 3, 5, 5, 8, 7, 7, 7, 7, 5, 6, 4, 4, 3, 3, 1, 1, 0, 0, 0, -1}, // 2611
	{0, 0, 2, 2, 3, 3, 4, 3, 4, 3, 3, 2, 2, 1, 1, 1, 2, 3, 3, 3, 3, 4, 3, 4}, // 2612
	{2, 3, 1, 1, 0, 0, -1, 0, -1, 1, 1, 2, 3, 3, 5, 5, 7, 5, 7, 6, 6, 5, 5, 4}, // 2613
	{5, 3, 3, 1, 0, 0, 0, 1, 1, 3, 3, 6, 7, 8, 8, 9, 7, 7, 5, 5, 3, 3, 3, 3}, // 2614
	{3, 4, 4, 4, 5, 5, 5, 5, 6, 5, 6, 5, 6, 5, 6, 4, 4, 3, 2, 1, 1, 0, 1, 2}, // 2615
	{3, 5, 6, 8, 7, 8, 7, 7, 5, 4, 2, 2, 1, 1, 2, 2, 3, 4, 5, 5, 6, 5, 5, 3}, // 2616
	{5, 3, 4, 3, 4, 4, 4, 4, 4, 3, 3, 3, 3, 4, 3, 6, 5, 8, 7, 9, 7, 7, 5, 5}, // 2617
	{3, 2, 1, 1, 0, 1, 2, 3, 5, 6, 7, 7, 8, 8, 8, 8, 7, 6, 7, 5, 5, 5, 5, 4}, // 2618
	{4, 4, 3, 4, 3, 4, 4, 6, 6, 7, 7, 7, 6, 5, 4, 4, 3, 3, 2, 1, 1, 2, 4, 4}, // 2619
	{6, 6, 7, 5, 5, 4, 3, 2, 1, 0, 0, 0, 0, -1, 0, 1, 0, 1, 0, 2, 2, 4, 3, 5}, // 2620
	{5, 6, 6, 6, 4, 4, 3, 1, 0, -1, -1, -1, 0, 2, 4, 4, 6, 5, 6, 4, 5, 3, 4, 2}, // 2621
	{3, 2, 3, 3, 4, 5, 4, 5, 3, 5, 3, 4, 3, 5, 5, 6, 5, 5, 3, 3, 2, 1, 0, 0}, // 2622
	{0, 1, 2, 3, 5, 5, 8, 7, 8, 7, 7, 5, 4, 2, 2, 1, 1, 0, 0, -1, 0, 0, 0, 1}, // 2623
	{1, 3, 2, 4, 3, 5, 4, 5, 5, 4, 2, 2, 0, -1, -1, -2, -1, -1, 1, 0, 3, 3, 4, 3}, // 2624
	{3, 2, 3, 0, 1, 0, 0, 0, 1, 1, 2, 3, 2, 3, 3, 3, 2, 4, 2, 4, 3, 4, 2, 4}, // 2625
	{3, 2, 2, 1, 0, 0, 1, 1, 2, 3, 6, 5, 8, 8, 8, 7, 6, 3, 3, 0, 1, -1, 0, 0}, // 2626
	{1, 3, 3, 5, 4, 5, 5, 6, 5, 6, 5, 5, 5, 5, 5, 5, 4, 2, 1, 0, -2, -1, -1, -1}, // 2627
	{2, 2, 5, 5, 7, 6, 6, 5, 4, 3, 2, 2, 1, 2, 1, 3, 3, 5, 4, 5, 3, 4, 3, 4}, // 2628
	{2, 3, 2, 3, 3, 4, 4, 4, 4, 3, 3, 3, 4, 5, 7, 7, 9, 9, 10, 8, 9, 7, 7, 5}, // 2629
	{3, 2, 0, 1, 1, 2, 2, 5, 6, 8, 7, 9, 9, 10, 10, 10, 9, 9, 7, 7, 7, 6, 6, 4}, // 2630
	{4, 4, 5, 3, 5, 5, 6, 6, 8, 8, 9, 8, 8, 7, 7, 6, 5, 4, 3, 4, 3, 5, 4, 6}, // 2631
	{6, 8, 6, 7, 6, 6, 5, 4, 3, 3, 2, 3, 2, 2, 3, 3, 4, 3, 4, 3, 5, 4, 5, 5}, // 2632
	{6, 5, 6, 5, 4, 3, 2, 2, 1, 1, 1, 2, 2, 5, 5, 7, 6, 8, 6, 6, 5, 5, 4, 3}, // 2633
	{3, 3, 2, 2, 2, 2, 3, 2, 4, 3, 5, 4, 6, 6, 6, 6, 7, 5, 5, 3, 2, 1, 0, 0}, // 2634
	{-1, 0, 0, 1, 2, 4, 3, 5, 5, 5, 4, 3, 2, 1, 1, 1, 1, 0, 1, 0, 0, -1, 0, 0}, // 2635
	{2, 1, 2, 2, 3, 1, 3, 2, 1, 0, 0, -1, -2, -1, -2, -1, -2, 1, 0, 2, 3, 4, 3, 4}, // 2636
	{3, 3, 1, 0, -1, -1, -1, -2, -1, -2, -1, -2, 0, 1, 3, 2, 3, 2, 3, 2, 4, 4, 4, 4}, // 2637
	{3, 3, 2, 1, 1, 0, -1, 1, 0, 2, 2, 4, 4, 6, 6, 5, 5, 4, 2, 1, 1, 1, 1, 1}, // 2638
	{3, 3, 5, 5, 6, 7, 7, 6, 6, 4, 4, 4, 3, 2, 2, 3, 1, 2, 0, 0, -1, 0, -1, 1}, // 2639
	{2, 4, 4, 7, 7, 7, 7, 6, 6, 3, 2, 0, 0, -1, 0, -1, 1, 1, 4, 2, 4, 3, 4, 2}, // 2640
	{3, 2, 2, 2, 3, 3, 4, 5, 4, 5, 4, 4, 3, 4, 4, 5, 5, 6, 6, 7, 5, 6, 4, 4}, // 2641
	{3, 2, 2, 0, 1, 1, 3, 3, 6, 6, 9, 9, 9, 8, 9, 8, 7, 5, 4, 3, 3, 3, 3, 3}, // 2642
	{3, 4, 3, 4, 3, 4, 4, 6, 6, 7, 7, 7, 7, 6, 5, 4, 4, 1, 2, 0, 1, 1, 3, 4}, // 2643
	{6, 6, 7, 6, 6, 5, 4, 3, 2, 1, 1, 2, 1, 2, 2, 4, 2, 4, 2, 4, 3, 4, 4, 5}, // 2644
	{5, 5, 5, 5, 4, 3, 3, 1, 1, 0, 0, 0, 2, 3, 5, 6, 8, 7, 8, 5, 6, 4, 3, 3}, // 2645
	{2, 2, 2, 3, 2, 5, 4, 5, 5, 6, 5, 5, 6, 7, 7, 7, 8, 7, 6, 5, 4, 2, 2, 0}, // 2646
	{2, 0, 3, 3, 5, 5, 7, 7, 8, 6, 6, 5, 4, 4, 2, 3, 2, 2, 2, 2, 1, 2, 1, 3}, // 2647
	{2, 3, 2, 3, 3, 3, 3, 3, 3, 2, 2, 1, 1, -1, 1, 0, 2, 1, 4, 3, 6, 5, 7, 5}, // 2648
	{5, 4, 2, 1, 0, -1, -1, 0, -2, 0, 0, 2, 2, 4, 4, 4, 4, 5, 4, 5, 4, 5, 4, 4}, // 2649
	{5, 3, 3, 1, 0, -1, 0, 0, 1, 1, 3, 4, 5, 6, 7, 6, 5, 4, 2, 2, 0, 1, 0, 2}, // 2650
	{1, 4, 4, 6, 6, 6, 5, 6, 5, 4, 4, 4, 3, 3, 3, 1, 2, 1, 1, -1, 0, -1, 1, 1}, // 2651
	{2, 3, 5, 5, 6, 6, 5, 4, 2, 2, 0, -1, -2, -1, -1, 1, 0, 3, 2, 4, 3, 5, 4, 3}, // 2652
	{3, 3, 3, 2, 3, 3, 3, 2, 3, 2, 3, 2, 3, 3, 5, 5, 6, 6, 7, 6, 7, 6, 5, 5}, // 2653
	{3, 3, 2, 2, 2, 3, 2, 4, 5, 6, 7, 7, 7, 7, 7, 6, 6, 4, 5, 4, 4, 4, 4, 3}, // 2654
	{5, 3, 5, 4, 6, 6, 6, 7, 6, 7, 7, 7, 5, 6, 4, 4, 1, 1, 0, 1, 0, 2, 2, 5}, // 2655
	{5, 7, 7, 8, 7, 7, 6, 5, 5, 3, 3, 1, 1, 1, 1, 1, 2, 1, 2, 1, 3, 2, 3, 4}, // 2656
	{5, 4, 4, 5, 4, 4, 3, 3, 2, 3, 2, 3, 3, 5, 5, 6, 5, 6, 5, 4, 3, 2, 1, 1}, // 2657
	{1, 0, 1, 1, 3, 3, 4, 5, 6, 6, 7, 7, 7, 8, 7, 7, 6, 5, 3, 3, 0, 1, -1, -1}, // 2658
	{-2, 0, -1, 2, 3, 4, 6, 6, 7, 7, 7, 6, 5, 4, 4, 2, 3, 1, 2, 0, 1, 0, 1, 1}, // 2659
	{2, 1, 1, 1, 2, 2, 2, 3, 1, 2, 1, 2, 1, 2, 1, 2, 2, 3, 3, 4, 4, 5, 6, 5}, // 2660
	{5, 3, 2, 1, 1, -1, -1, -1, 0, 0, 1, 2, 4, 4, 6, 7, 7, 7, 7, 6, 6, 5, 5, 6}, // 2661
	{4, 5, 3, 3, 2, 2, 1, 2, 2, 3, 4, 5, 6, 8, 8, 8, 9, 7, 7, 3, 4, 2, 3, 3}, // 2662
	{4, 4, 6, 7, 8, 8, 8, 8, 7, 6, 5, 5, 4, 4, 3, 5, 4, 5, 4, 4, 3, 4, 3, 4}, // 2663
	{4, 5, 6, 7, 7, 7, 7, 6, 5, 3, 3, 1, 1, 0, 1, 1, 4, 4, 6, 6, 7, 6, 6, 5}, // 2664
	{5, 4, 3, 2, 2, 2, 2, 4, 3, 4, 3, 5, 4, 4, 5, 6, 6, 7, 8, 8, 8, 7, 7, 6}, // 2665
	{6, 4, 4, 2, 2, 1, 3, 3, 5, 6, 7, 8, 8, 8, 7, 7, 5, 6, 3, 4, 3, 4, 3, 4}, // 2666
	{4, 5, 4, 5, 3, 4, 3, 4, 4, 4, 5, 4, 4, 3, 4, 1, 1, 0, 1, 0, 1, 1, 3, 4}, // 2667
	{6, 7, 7, 6, 6, 4, 3, 2, 0, 1, -2, 0, -1, 0, 1, 2, 2, 3, 2, 3, 3, 4, 4, 4}, // 2668
	{6, 5, 6, 4, 5, 2, 3, 1, 0, -2, -1, 0, 0, 2, 4, 5, 6, 7, 6, 5, 3, 3, 2, 2}, // 2669
	{1, 3, 1, 3, 2, 4, 4, 5, 5, 5, 4, 4, 5, 5, 5, 5, 6, 4, 5, 3, 3, 1, 1, -1}, // 2670
	{1, 1, 3, 3, 5, 5, 7, 7, 7, 6, 5, 4, 2, 2, 0, 0, -1, 0, -1, 0, 0, 2, 2, 2}, // 2671
	{3, 3, 3, 3, 3, 2, 3, 3, 4, 2, 3, 1, 0, -1, -1, -1, 0, 0, 2, 1, 3, 4, 4, 5}, // 2672
	{4, 4, 2, 2, 0, 1, 0, 0, 0, 1, 1, 3, 4, 4, 4, 4, 4, 3, 3, 2, 3, 2, 3, 2}, // 2673
	{4, 3, 3, 1, 3, 2, 2, 3, 4, 4, 6, 6, 7, 7, 7, 8, 5, 5, 1, 2, -2, 0, -2, 0}, // 2674
	{0, 2, 3, 5, 6, 6, 7, 7, 8, 6, 6, 4, 4, 4, 4, 4, 4, 2, 2, 0, 0, 0, 0, 1}, // 2675
	{2, 3, 3, 4, 5, 6, 5, 5, 4, 4, 2, 3, 2, 2, 2, 3, 4, 6, 6, 6, 6, 6, 6, 5}, // 2676
	{4, 2, 2, 1, 3, 1, 3, 3, 4, 3, 5, 5, 6, 6, 7, 8, 9, 10, 9, 10, 9, 8, 7, 7}, // 2677
	{5, 5, 3, 3, 1, 3, 3, 4, 5, 6, 8, 9, 10, 9, 11, 9, 10, 7, 8, 6, 7, 5, 7, 6}, // 2678
	{7, 7, 6, 6, 7, 6, 6, 7, 6, 6, 5, 6, 4, 6, 4, 4, 3, 4, 2, 3, 3, 4, 5, 7}, // 2679
	{7, 8, 9, 8, 8, 6, 6, 4, 4, 1, 1, 0, 0, 0, 1, 2, 4, 4, 4, 6, 5, 6, 6, 7}, // 2680
	{6, 8, 6, 6, 5, 5, 3, 3, 2, 2, 0, 2, 2, 3, 4, 5, 5, 5, 6, 4, 5, 4, 3, 2}, // 2681
	{3, 1, 3, 1, 3, 3, 4, 4, 4, 5, 4, 4, 4, 5, 4, 4, 3, 3, 1, 2, 0, 1, 0, 0}, // 2682
	{0, 1, 1, 2, 4, 4, 6, 6, 7, 5, 6, 3, 3, 1, 0, -1, -1, -2, -1, -1, 1, 1, 1, 2}, // 2683
	{2, 3, 2, 2, 1, 1, 0, 1, -1, 0, -1, -1, -1, -1, -2, -1, -1, 0, 0, 1, 3, 3, 5, 4}, // 2684
	{5, 3, 3, 1, 1, -1, -1, -2, -1, -1, 0, 1, 2, 3, 5, 5, 4, 6, 4, 5, 3, 4, 3, 4}, // 2685
	{3, 4, 3, 4, 3, 3, 3, 3, 3, 3, 4, 4, 6, 6, 7, 6, 6, 5, 4, 1, 1, 0, 1, 1}, // 2686
	{3, 4, 6, 7, 7, 9, 8, 9, 7, 7, 4, 5, 2, 3, 2, 3, 2, 3, 1, 2, 1, 2, 2, 2}, // 2687
	{4, 3, 6, 6, 8, 7, 8, 7, 7, 5, 5, 2, 2, 1, 1, 2, 3, 4, 4, 6, 6, 6, 5, 5}, // 2688
	{4, 4, 2, 3, 2, 4, 3, 4, 5, 6, 6, 6, 7, 6, 7, 6, 8, 6, 8, 7, 7, 6, 6, 4}, // 2689
	{5, 3, 3, 2, 2, 2, 4, 5, 7, 9, 10, 10, 10, 11, 9, 9, 6, 6, 3, 4, 2, 3, 2, 4}, // 2690
	{4, 5, 4, 5, 5, 5, 6, 5, 7, 6, 7, 6, 7, 5, 6, 5, 4, 2, 2, 1, 1, 2, 3, 3}, // 2691
	{4, 6, 5, 6, 5, 5, 3, 3, 2, 2, 1, 3, 2, 3, 4, 5, 5, 5, 6, 4, 5, 4, 5, 3}, // 2692
	{5, 3, 4, 4, 4, 2, 3, 2, 2, 1, 1, 3, 5, 7, 7, 10, 9, 10, 9, 9, 6, 6, 4, 3}, // 2693
	{2, 2, 1, 2, 2, 3, 5, 5, 6, 5, 7, 6, 7, 7, 8, 7, 9, 7, 8, 6, 6, 3, 4, 2}, // 2694
	{2, 2, 2, 3, 4, 5, 5, 7, 6, 7, 5, 6, 3, 3, 2, 3, 3, 3, 4, 5, 5, 5, 6, 6}, // 2695
	{7, 5, 5, 3, 4, 2, 3, 1, 2, 1, 1, 0, 0, 0, -1, 1, 1, 3, 4, 6, 6, 8, 7, 8}, // 2696
	{6, 7, 4, 3, 2, 0, 0, -1, -1, 0, 0, 1, 3, 3, 5, 4, 6, 4, 5, 4, 6, 5, 6, 6}, // 2697
	{6, 5, 6, 5, 4, 5, 4, 4, 3, 4, 4, 5, 4, 6, 5, 6, 4, 4, 2, 2, 0, 1, 1, 2}, // 2698
	{3, 4, 6, 5, 8, 7, 7, 6, 6, 5, 4, 2, 1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 3}, // 2699
	{3, 4, 4, 6, 5, 6, 5, 5, 4, 3, 2, 1, 0, 0, 1, 1, 3, 3, 4, 4, 7, 5, 6, 4}, // 2700
	{5, 3, 4, 2, 2, 2, 2, 2, 2, 3, 3, 4, 4, 5, 5, 7, 6, 7, 6, 8, 6, 7, 5, 6}, // 2701
	{5, 4, 4, 3, 2, 2, 4, 4, 6, 6, 8, 7, 10, 8, 9, 7, 7, 6, 5, 3, 4, 4, 4, 5}, // 2702
	{6, 7, 6, 8, 7, 8, 6, 7, 6, 7, 5, 5, 3, 4, 3, 3, 3, 2, 1, 1, 2, 2, 4, 4}, // 2703
	{7, 7, 9, 8, 9, 6, 6, 4, 3, 2, 1, 0, 0, 1, 1, 2, 2, 4, 3, 5, 4, 5, 4, 5}, // 2704
	{4, 5, 5, 6, 5, 5, 5, 4, 4, 3, 3, 2, 4, 4, 5, 6, 6, 5, 7, 4, 5, 3, 3, 2}, // 2705
	{1, 2, 2, 3, 3, 5, 5, 7, 7, 9, 7, 8, 7, 7, 6, 7, 5, 5, 3, 3, 1, 1, 1, -1}, // 2706
	{1, 0, 2, 2, 4, 4, 6, 6, 8, 7, 7, 6, 5, 3, 2, 1, 1, 1, 0, 1, 1, 3, 2, 3}, // 2707
	{2, 4, 2, 3, 1, 2, 1, 2, 1, 1, 2, 2, 2, 3, 3, 3, 3, 3, 4, 4, 5, 5, 6, 5}, // 2708
	{6, 4, 4, 1, 1, 0, -1, 0, 0, 1, 1, 4, 5, 7, 8, 10, 8, 9, 7, 7, 5, 5, 4, 4}, // 2709
	{4, 4, 4, 4, 4, 4, 5, 4, 5, 4, 7, 6, 8, 9, 10, 10, 9, 8, 7, 6, 4, 3, 2, 3}, // 2710
	{3, 5, 5, 8, 8, 10, 8, 8, 7, 6, 5, 4, 3, 4, 4, 4, 5, 5, 5, 4, 6, 4, 5, 4}, // 2711
	{5, 5, 6, 5, 7, 7, 7, 6, 5, 4, 3, 2, 2, 2, 2, 4, 4, 7, 7, 9, 9, 10, 9, 9}, // 2712
	{7, 6, 4, 5, 3, 3, 3, 3, 4, 4, 5, 4, 5, 5, 6, 6, 7, 6, 8, 7, 8, 8, 8, 7}, // 2713
	{7, 6, 5, 4, 3, 3, 3, 4, 4, 7, 6, 8, 7, 7, 6, 5, 4, 3, 2, 2, 3, 3, 4, 4}, // 2714
	{6, 6, 8, 7, 8, 7, 7, 7, 6, 5, 5, 4, 4, 3, 2, 1, 0, 0, -1, 0, 0, 2, 3, 5}, // 2715
	{6, 8, 7, 8, 7, 6, 4, 3, 2, 0, -1, -1, 0, 0, 1, 1, 3, 2, 3, 3, 4, 2, 4, 3}, // 2716
	{4, 3, 4, 5, 4, 4, 3, 3, 2, 3, 1, 3, 3, 5, 5, 7, 7, 8, 5, 5, 3, 4, 2, 2}, // 2717
	{1, 1, 2, 2, 3, 3, 6, 5, 7, 7, 8, 6, 7, 6, 6, 5, 5, 5, 4, 3, 3, 2, 1, 2}, // 2718
	{0, 3, 2, 4, 4, 6, 6, 7, 7, 6, 5, 4, 3, 2, 1, 1, 1, 0, 2, 1, 3, 3, 5, 3}, // 2719
	{5, 4, 5, 4, 4, 3, 3, 2, 2, 2, 1, 2, 1, 2, 1, 1, 1, 3, 2, 5, 4, 6, 6, 7}, // 2720
	{5, 6, 4, 4, 3, 2, 2, 0, 2, 1, 3, 3, 5, 5, 6, 6, 7, 5, 5, 4, 4, 4, 3, 4}, // 2721
	{3, 5, 4, 5, 4, 5, 5, 6, 5, 7, 6, 7, 7, 7, 7, 7, 6, 6, 4, 2, 1, 0, 0, 0}, // 2722
	{2, 2, 6, 6, 8, 8, 10, 9, 8, 8, 7, 6, 4, 4, 3, 4, 3, 4, 3, 4, 3, 4, 3, 4}, // 2723
	{3, 4, 4, 4, 4, 5, 5, 5, 5, 4, 4, 3, 4, 3, 5, 4, 6, 6, 8, 8, 9, 7, 8, 7}, // 2724
	{6, 5, 3, 2, 2, 2, 2, 3, 3, 6, 5, 7, 8, 9, 9, 11, 11, 11, 9, 10, 9, 9, 8, 7}, // 2725
	{7, 5, 5, 3, 4, 3, 4, 4, 6, 7, 9, 9, 11, 11, 10, 10, 9, 8, 7, 7, 5, 6, 5, 6}, // 2726
	{6, 8, 7, 9, 8, 8, 7, 6, 6, 5, 5, 5, 5, 4, 5, 4, 5, 4, 5, 4, 5, 6, 7, 6}, // 2727
	{9, 8, 10, 8, 8, 7, 6, 4, 2, 1, -1, -1, 0, 1, 1, 3, 4, 5, 6, 7, 6, 7, 7, 6}, // 2728
	{6, 5, 5, 4, 4, 3, 4, 2, 2, 1, 2, 1, 3, 2, 5, 5, 6, 7, 7, 6, 6, 5, 4, 4}, // 2729
	{2, 3, 2, 3, 3, 5, 4, 7, 7, 7, 6, 6, 5, 4, 3, 3, 4, 2, 3, 1, 2, 1, 2, 0}, // 2730
	{2, 1, 3, 2, 4, 4, 5, 4, 5, 4, 3, 2, 1, 0, -1, -1, -3, -2, -2, 0, 0, 3, 3, 4}, // 2731
	{4, 4, 3, 3, 2, 2, 1, 0, 0, 0, 0, -1, 0, 0, 1, 0, 1, 0, 2, 2, 4, 4, 6, 6}, // 2732
	{6, 6, 4, 4, 3, 2, 0, 0, -1, 1, 0, 2, 3, 5, 5, 6, 7, 6, 5, 3, 3, 2, 3, 3}, // 2733
	{4, 4, 6, 4, 6, 6, 6, 5, 6, 5, 5, 6, 6, 6, 7, 7, 6, 6, 4, 4, 2, 2, 0, 3}, // 2734
	{2, 5, 6, 9, 9, 10, 10, 10, 9, 7, 6, 4, 4, 2, 3, 2, 3, 2, 4, 3, 5, 3, 5, 4}, // 2735
	{5, 5, 6, 6, 7, 8, 7, 7, 6, 6, 4, 4, 2, 2, 2, 3, 3, 5, 5, 8, 8, 9, 8, 8}, // 2736
	{7, 5, 5, 4, 3, 3, 5, 4, 6, 6, 8, 7, 8, 7, 7, 8, 7, 8, 7, 7, 6, 7, 6, 7}, // 2737
	{5, 6, 4, 5, 4, 5, 5, 7, 8, 9, 10, 10, 9, 10, 9, 7, 6, 4, 4, 2, 3, 2, 4, 3}, // 2738
	{6, 5, 7, 7, 8, 7, 7, 7, 7, 7, 5, 6, 4, 5, 3, 4, 2, 2, 1, 2, 2, 3, 4, 5}, // 2739
	{6, 6, 7, 7, 6, 5, 5, 3, 4, 1, 2, 1, 2, 3, 4, 4, 6, 6, 6, 6, 6, 5, 5, 5}, // 2740
	{4, 4, 3, 4, 3, 4, 3, 4, 2, 4, 3, 5, 5, 6, 8, 9, 10, 10, 9, 7, 7, 5, 4, 2}, // 2741
	{3, 2, 2, 2, 3, 3, 5, 5, 7, 8, 8, 8, 8, 8, 7, 8, 7, 7, 6, 7, 5, 6, 4, 4}, // 2742
	{3, 5, 3, 5, 4, 6, 5, 6, 6, 5, 5, 3, 4, 3, 3, 1, 2, 2, 4, 3, 6, 6, 7, 7}, // 2743
	{7, 7, 6, 5, 3, 3, 2, 2, 1, 1, 0, 1, 0, 1, 2, 3, 4, 5, 5, 6, 6, 8, 9, 8}, // 2744
	{9, 8, 7, 6, 5, 3, 2, 1, 2, 1, 2, 3, 4, 5, 5, 6, 6, 7, 5, 5, 3, 4, 3, 5}, // 2745
	{4, 5, 4, 6, 6, 6, 6, 6, 6, 5, 5, 5, 5, 5, 5, 4, 4, 3, 3, 1, 1, 0, 1, 0}, // 2746
	{3, 3, 5, 6, 8, 8, 9, 9, 8, 7, 5, 4, 2, 2, 1, 1, 1, 1, 1, 3, 2, 4, 4, 4}, // 2747
	{4, 4, 4, 4, 5, 4, 5, 4, 5, 3, 4, 2, 3, 2, 3, 3, 4, 4, 5, 6, 6, 7, 7, 7}, // 2748
	{6, 5, 3, 3, 1, 3, 2, 3, 3, 4, 5, 7, 7, 8, 9, 8, 8, 8, 7, 6, 7, 5, 6, 5}, // 2749
	{7, 5, 6, 4, 5, 4, 5, 6, 6, 7, 8, 8, 8, 9, 8, 8, 6, 6, 4, 4, 2, 3, 3, 5}, // 2750
	{5, 7, 7, 9, 8, 9, 8, 7, 7, 5, 5, 3, 4, 3, 4, 3, 3, 2, 2, 2, 4, 3, 5, 6}, // 2751
	{6, 8, 8, 9, 7, 8, 6, 6, 4, 4, 1, 1, 0, 1, 2, 3, 5, 6, 6, 6, 5, 6, 5, 5}, // 2752
	{5, 4, 5, 4, 6, 4, 5, 5, 5, 5, 5, 4, 5, 5, 6, 7, 7, 8, 7, 6, 5, 5, 3, 3}, // 2753
	{2, 2, 1, 3, 2, 5, 6, 7, 9, 9, 9, 8, 8, 7, 6, 5, 5, 3, 4, 3, 3, 1, 3, 1}, // 2754
	{2, 2, 3, 3, 4, 4, 5, 6, 5, 7, 5, 5, 3, 3, 2, 1, 1, 1, 1, 2, 3, 4, 5, 5}, // 2755
	{6, 5, 5, 3, 2, 0, 1, -1, 1, 0, 1, 1, 2, 3, 3, 4, 4, 5, 5, 5, 5, 6, 6, 7}, // 2756
	{5, 7, 5, 5, 2, 2, 1, 0, 0, 1, 2, 4, 6, 7, 9, 10, 10, 8, 9, 6, 7, 4, 5, 3}, // 2757
	{5, 4, 6, 5, 6, 6, 6, 6, 6, 6, 5, 6, 6, 7, 7, 9, 7, 9, 6, 6, 4, 4, 3, 3}, // 2758
	{3, 5, 6, 7, 9, 8, 9, 8, 8, 5, 5, 3, 2, 2, 3, 3, 4, 5, 6, 6, 7, 8, 8, 8}, // 2759
	{7, 8, 7, 7, 6, 6, 5, 5, 4, 4, 2, 2, 1, 1, 1, 3, 4, 6, 7, 9, 10, 10, 11, 9}, // 2760
	{9, 6, 6, 4, 4, 2, 2, 2, 3, 3, 4, 5, 5, 6, 6, 7, 6, 6, 6, 7, 6, 8, 6, 8}, // 2761
	{7, 8, 6, 6, 6, 5, 6, 7, 7, 7, 7, 7, 7, 6, 6, 4, 4, 2, 3, 1, 2, 1, 3, 4}, // 2762
	{5, 6, 8, 7, 8, 8, 6, 7, 5, 5, 3, 3, 1, 1, 0, 0, -1, 0, -1, 0, 0, 1, 2, 3}, // 2763
	{6, 5, 7, 5, 6, 5, 4, 3, 2, 1, 1, 0, 1, 0, 2, 2, 3, 4, 3, 4, 3, 4, 2, 3}, // 2764
	{2, 4, 2, 4, 2, 3, 3, 4, 3, 3, 3, 3, 4, 4, 6, 6, 7, 6, 7, 4, 5, 2, 2, 0}, // 2765
	{0, 0, 0, 0, 2, 3, 4, 6, 6, 7, 6, 8, 5, 6, 5, 6, 3, 4, 3, 3, 2, 2, 2, 2}, // 2766
	{2, 2, 4, 3, 5, 4, 6, 5, 5, 4, 4, 3, 3, 1, 1, 0, 0, 0, 1, 1, 3, 4, 5, 7}, // 2767
	{6, 7, 5, 6, 4, 3, 2, 2, 1, 1, 0, 1, 1, 1, 2, 2, 4, 3, 5, 4, 5, 5, 6, 6}, // 2768
	{7, 6, 7, 5, 5, 3, 4, 2, 3, 2, 3, 4, 4, 6, 7, 8, 7, 7, 5, 6, 3, 4, 2, 3}, // 2769
	{3, 4, 5, 6, 7, 8, 9, 9, 9, 9, 9, 7, 7, 7, 7, 6, 6, 4, 4, 3, 2, 2, 1, 1}, // 2770
	{2, 4, 4, 7, 7, 9, 9, 10, 9, 9, 7, 7, 4, 3, 2, 3, 3, 3, 3, 4, 4, 5, 6, 5}, // 2771
	{6, 4, 6, 4, 5, 4, 5, 4, 5, 5, 5, 5, 5, 5, 5, 6, 6, 8, 7, 9, 8, 9, 8, 8}, // 2772
	{6, 6, 4, 3, 1, 2, 2, 2, 3, 4, 6, 7, 9, 10, 11, 10, 11, 10, 10, 8, 8, 7, 8, 6}, // 2773
	{7, 6, 6, 5, 5, 5, 4, 6, 6, 7, 7, 9, 9, 10, 10, 10, 8, 8, 6, 6, 5, 5, 5, 6}, // 2774
	{8, 8, 10, 9, 10, 8, 8, 6, 5, 3, 3, 1, 2, 1, 2, 3, 3, 3, 4, 4, 5, 6, 5, 7}, // 2775
	{6, 9, 7, 8, 7, 7, 4, 4, 2, 0, -1, -1, -1, 0, 1, 3, 5, 5, 8, 7, 8, 6, 7, 6}, // 2776
	{6, 5, 6, 5, 6, 4, 5, 5, 4, 4, 3, 3, 3, 4, 4, 5, 5, 7, 6, 6, 5, 5, 4, 3}, // 2777
	{3, 3, 2, 3, 4, 4, 5, 6, 7, 7, 7, 4, 4, 2, 2, 1, 2, 1, 1, 0, 1, 1, 1, 2}, // 2778
	{2, 3, 3, 4, 3, 4, 4, 6, 5, 6, 3, 4, 1, 1, -1, -2, -2, -3, -2, 0, 2, 2, 4, 4}, // 2779
	{6, 5, 6, 3, 3, 1, 2, 0, 0, 0, 0, 0, 1, 1, 2, 2, 2, 3, 2, 3, 2, 4, 3, 5}, // 2780
	{4, 5, 4, 5, 2, 1, 2, 1, 2, 2, 3, 4, 6, 7, 8, 8, 8, 7, 7, 4, 3, 2, 2, 2}, // 2781
	{2, 3, 3, 4, 6, 7, 7, 8, 7, 8, 7, 8, 6, 7, 6, 7, 6, 7, 5, 4, 2, 2, 2, 2}, // 2782
	{3, 3, 6, 6, 8, 8, 9, 8, 8, 6, 6, 4, 3, 3, 2, 3, 3, 4, 4, 6, 6, 6, 6, 7}, // 2783
	{5, 6, 5, 5, 4, 5, 5, 4, 4, 4, 4, 4, 4, 3, 5, 4, 6, 6, 8, 8, 9, 9, 9, 8}, // 2784
	{8, 6, 5, 4, 3, 3, 2, 4, 4, 5, 5, 7, 8, 8, 8, 9, 8, 8, 7, 8, 6, 7, 7, 7}, // 2785
	{6, 6, 6, 5, 5, 5, 7, 6, 8, 7, 9, 8, 8, 8, 7, 6, 6, 4, 3, 2, 2, 2, 3, 5}, // 2786
	{5, 7, 7, 9, 7, 9, 7, 7, 5, 6, 4, 4, 3, 2, 3, 2, 3, 2, 3, 2, 2, 2, 4, 4}, // 2787
	{6, 5, 6, 6, 6, 4, 4, 3, 2, 2, 1, 2, 1, 2, 3, 5, 5, 6, 5, 6, 5, 5, 4, 5}, // 2788
	{3, 3, 2, 3, 3, 2, 3, 3, 4, 4, 5, 5, 6, 7, 8, 8, 9, 8, 8, 7, 7, 4, 4, 3}, // 2789
	{2, 2, 1, 1, 1, 3, 3, 5, 6, 7, 6, 7, 6, 6, 5, 5, 5, 5, 4, 4, 5, 3, 4, 4}, // 2790
	{4, 3, 5, 4, 4, 4, 3, 2, 3, 2, 2, 1, 1, 1, 1, 1, 1, 2, 2, 4, 5, 7, 7, 9}, // 2791
	{8, 9, 7, 7, 5, 3, 2, 0, -1, -2, -2, -2, -1, -1, 1, 1, 4, 3, 5, 5, 7, 6, 7, 7}, // 2792
	{7, 7, 7, 6, 4, 3, 2, 2, 0, 0, -1, 1, 1, 2, 4, 5, 4, 6, 4, 5, 3, 3, 3, 3}, // 2793
	{4, 5, 6, 6, 7, 7, 9, 8, 9, 6, 6, 5, 4, 2, 2, 2, 2, 2, 2, 2, 1, 2, 1, 3}, // 2794
	{2, 5, 4, 7, 7, 8, 8, 8, 7, 6, 4, 2, 1, -1, -1, -2, -2, -2, 1, 1, 3, 3, 5, 4}, // 2795
	{6, 4, 5, 3, 4, 3, 3, 4, 3, 4, 3, 3, 2, 3, 2, 4, 2, 4, 4, 5, 5, 7, 6, 6}, // 2796
	{6, 5, 4, 3, 2, 1, 3, 2, 4, 4, 6, 5, 7, 8, 8, 7, 7, 6, 6, 4, 5, 4, 4, 5}, // 2797
	{5, 5, 5, 5, 4, 5, 4, 6, 5, 7, 7, 8, 7, 8, 6, 7, 5, 3, 3, 1, 1, 1, 2, 2}, // 2798
	{5, 5, 8, 8, 8, 7, 8, 6, 6, 3, 3, 3, 2, 2, 2, 2, 2, 3, 2, 4, 3, 3, 3, 5}, // 2799
	{4, 6, 6, 7, 6, 6, 5, 4, 3, 1, 1, 0, 1, 1, 3, 3, 6, 5, 7, 6, 7, 5, 5, 4}, // 2800
	{3, 3, 2, 3, 2, 3, 3, 4, 4, 6, 5, 6, 4, 6, 6, 6, 6, 7, 6, 6, 4, 4, 4, 2}, // 2801
	{2, 1, 2, 1, 3, 3, 6, 6, 8, 7, 8, 8, 7, 5, 4, 3, 3, 3, 2, 2, 1, 3, 2, 3}, // 2802
	{2, 4, 2, 4, 2, 4, 3, 4, 3, 4, 4, 3, 3, 2, 2, 0, 0, -1, 1, 1, 3, 4, 5, 5}, // 2803
	{6, 5, 6, 3, 4, 2, 1, 1, 0, 1, -1, 1, 2, 3, 4, 6, 5, 5, 4, 5, 4, 5, 5, 5}, // 2804
	{5, 5, 5, 4, 3, 2, 3, 2, 2, 1, 3, 4, 6, 7, 9, 9, 10, 9, 7, 6, 4, 3, 2, 2}, // 2805
	{2, 4, 3, 5, 5, 6, 7, 8, 7, 8, 7, 7, 7, 6, 7, 7, 7, 7, 7, 5, 5, 3, 4, 3}, // 2806
	{5, 4, 6, 5, 7, 7, 8, 7, 6, 6, 3, 3, 2, 1, 1, 3, 2, 5, 5, 6, 6, 10, 8, 8}, // 2807
	{6, 7, 5, 5, 3, 3, 3, 2, 3, 1, 2, 0, 2, 2, 3, 4, 6, 6, 8, 8, 10, 10, 10, 10}, // 2808
	{9, 8, 7, 5, 4, 3, 2, 3, 3, 4, 3, 5, 5, 6, 6, 7, 6, 6, 6, 5, 6, 5, 6, 6}, // 2809
	{7, 7, 7, 6, 7, 6, 7, 6, 6, 5, 5, 4, 4, 4, 2, 2, 1, 1, 0, 0, 0, 1, 1, 4}, // 2810
	{4, 6, 7, 8, 7, 8, 7, 6, 5, 3, 2, 0, 0, -1, 0, -2, -1, -2, 0, 0, 2, 2, 4, 4}, // 2811
	{4, 5, 5, 5, 5, 4, 4, 4, 1, 2, 0, 0, -1, 0, 1, 2, 2, 3, 3, 3, 3, 3, 2, 2}, // 2812
	{2, 1, 1, 0, 2, 1, 3, 2, 3, 3, 4, 4, 5, 4, 5, 5, 5, 5, 4, 4, 3, 3, 1, 1}, // 2813
	{0, 1, -1, 2, 1, 3, 3, 5, 6, 6, 7, 6, 6, 5, 4, 3, 2, 1, 1, 1, 2, 1, 3, 2}, // 2814
	{4, 3, 4, 4, 3, 3, 3, 3, 2, 2, 2, 2, 0, 1, 0, 0, -1, 1, 0, 2, 2, 4, 5, 6}, // 2815
	{6, 7, 5, 4, 4, 2, 2, 0, 0, -1, -1, -1, 1, 1, 4, 4, 5, 5, 5, 4, 5, 4, 5, 5}, // 2816
	{5, 6, 5, 5, 4, 5, 3, 3, 2, 3, 3, 5, 4, 6, 6, 8, 8, 8, 7, 5, 4, 3, 3, 2}, // 2817
	{3, 2, 5, 4, 7, 7, 9, 8, 9, 8, 7, 7, 6, 6, 5, 5, 4, 5, 4, 4, 3, 3, 3, 3}, // 2818
	{2, 4, 4, 5, 5, 7, 8, 7, 8, 7, 6, 4, 4, 2, 3, 1, 3, 2, 4, 4, 7, 6, 8, 7}, // 2819
	{7, 6, 4, 3, 3, 3, 1, 3, 2, 3, 2, 4, 4, 5, 5, 6, 5, 7, 6, 7, 7, 8, 8, 7}, // 2820
	{7, 6, 5, 2, 3, 1, 2, 1, 3, 4, 6, 6, 8, 9, 9, 9, 9, 8, 7, 7, 5, 6, 5, 6}, // 2821
	{5, 6, 5, 6, 5, 6, 4, 5, 4, 5, 5, 5, 6, 6, 6, 5, 6, 3, 4, 1, 2, 2, 4, 3}, // 2822
	{5, 5, 7, 7, 8, 7, 6, 5, 3, 2, -1, -1, -1, 0, 0, 2, 1, 3, 2, 4, 4, 5, 5, 5}, // 2823
	{6, 6, 6, 6, 6, 5, 4, 2, 2, 0, 0, -2, -1, -2, 0, 2, 4, 5, 6, 6, 6, 6, 5, 4}, // 2824
	{4, 4, 2, 3, 1, 3, 2, 2, 2, 3, 2, 2, 2, 2, 2, 3, 4, 3, 4, 3, 4, 3, 3, 1}, // 2825
	{2, 1, 2, 1, 3, 3, 5, 6, 6, 6, 5, 5, 3, 2, 0, 0, -2, 0, -2, 0, 0, 1, 2, 4}, // 2826
	{4, 4, 4, 4, 3, 4, 3, 2, 3, 2, 1, -1, -1, -3, -2, -4, -3, -5, -2, -2, 1, 2, 4, 5}, // 2827
	{6, 6, 5, 5, 3, 2, 1, 1, -2, 0, -2, -1, -1, 1, 2, 3, 3, 3, 2, 2, 1, 2, 3, 2}, // 2828
	{4, 4, 5, 4, 5, 3, 3, 2, 3, 3, 4, 4, 5, 5, 5, 6, 6, 6, 4, 3, 2, 2, -1, 0}, // 2829
	{0, 2, 2, 4, 5, 7, 7, 8, 8, 7, 7, 6, 6, 4, 5, 3, 4, 3, 3, 1, 2, 1, 3, 2}, // 2830
	{2, 3, 4, 5, 5, 6, 6, 7, 6, 6, 4, 4, 1, 2, 1, 1, 1, 3, 3, 5, 5, 6, 6, 7}, // 2831
	{7, 5, 5, 3, 4, 3, 3, 2, 3, 2, 3, 3, 3, 3, 4, 5, 6, 7, 7, 7, 7, 7, 7, 8}, // 2832
	{6, 7, 4, 5, 2, 3, 2, 3, 3, 4, 5, 7, 7, 8, 8, 8, 8, 6, 6, 4, 6, 4, 5, 4}, // 2833
	{5, 5, 6, 5, 6, 6, 7, 7, 6, 7, 6, 7, 5, 6, 5, 5, 3, 4, 1, 2, 1, 2, 2, 3}, // 2834
	{3, 6, 6, 7, 8, 7, 7, 5, 5, 4, 3, 1, 2, 0, 2, 1, 1, 1, 3, 2, 3, 3, 3, 4}, // 2835
	{4, 4, 3, 4, 3, 4, 2, 3, 2, 2, 1, 1, 1, 3, 3, 5, 6, 6, 7, 6, 6, 4, 5, 2}, // 2836
	{2, 1, 1, -1, 0, 0, 2, 2, 3, 3, 4, 5, 6, 7, 6, 7, 6, 7, 6, 6, 4, 4, 2, 2}, // 2837
	{0, 1, -1, 0, 0, 1, 2, 3, 5, 5, 6, 5, 6, 4, 5, 3, 4, 2, 2, 2, 3, 3, 4, 4}, // 2838
	{5, 5, 5, 5, 3, 2, 1, 2, 0, 1, -2, 0, -1, 0, -1, 0, -1, 1, 0, 2, 3, 5, 6, 6}, // 2839
	{7, 7, 7, 4, 3, 1, 0, -2, -3, -4, -4, -3, -2, -1, 1, 3, 3, 4, 5, 5, 4, 5, 4, 5}, // 2840
	{5, 6, 4, 6, 5, 4, 3, 3, 3, 2, 1, 2, 3, 3, 4, 4, 6, 4, 6, 3, 4, 2, 3, 1}, // 2841
	{3, 2, 3, 4, 5, 7, 8, 9, 7, 7, 5, 5, 2, 2, 0, 1, 0, 1, 0, 2, 1, 2, 2, 2}, // 2842
	{3, 3, 4, 3, 5, 5, 6, 6, 7, 5, 4, 2, 2, -1, -1, -2, -1, 0, 0, 2, 4, 5, 6, 7}, // 2843
	{6, 6, 4, 4, 2, 3, 1, 2, 1, 2, 2, 3, 3, 3, 3, 3, 4, 3, 4, 4, 5, 5, 6, 5}, // 2844
	{6, 4, 4, 2, 2, 1, 1, 1, 2, 3, 4, 6, 6, 7, 7, 7, 5, 6, 3, 3, 2, 3, 2, 3}, // 2845
	{3, 4, 4, 5, 5, 5, 5, 5, 5, 5, 6, 5, 6, 4, 5, 4, 3, 1, 1, -1, 0, 0, 1, 3}, // 2846
	{3, 6, 6, 8, 7, 7, 5, 5, 2, 2, 0, -1, -2, 0, 0, 1, 1, 2, 2, 2, 2, 3, 3, 3}, // 2847
	{5, 4, 5, 4, 5, 3, 3, 2, 2, 0, 0, 0, -1, 1, 1, 3, 4, 6, 5, 6, 5, 5, 4, 4}, // 2848
	{2, 3, 1, 2, 1, 2, 2, 3, 4, 3, 4, 4, 5, 4, 5, 4, 6, 4, 5, 4, 4, 3, 4, 2}, // 2849
	{2, 1, 1, 2, 2, 3, 4, 5, 5, 6, 5, 6, 4, 4, 1, 1, 0, 0, -1, 0, 1, 2, 3, 4}, // 2850
	{4, 4, 5, 4, 4, 3, 3, 2, 2, 1, 2, 0, 1, -1, -1, -1, -1, 0, 0, 1, 2, 3, 4, 6}, // 2851
	{5, 6, 5, 5, 3, 2, 1, 0, -2, -1, -1, 0, 1, 2, 4, 4, 6, 5, 5, 4, 5, 3, 4, 3}, // 2852
	{4, 3, 4, 3, 4, 3, 3, 3, 3, 3, 4, 4, 5, 7, 6, 8, 8, 8, 6, 6, 4, 4, 2, 2}, // 2853
	{1, 2, 3, 4, 5, 5, 7, 6, 7, 6, 7, 5, 5, 4, 4, 4, 3, 3, 4, 4, 4, 4, 3, 4}, // 2854
	{4, 5, 4, 5, 3, 4, 4, 4, 3, 3, 1, 1, 0, 0, 0, 0, 1, 2, 4, 5, 7, 7, 9, 8}, // 2855
	{9, 6, 7, 4, 4, 2, 2, 0, 1, 0, 0, 0, 1, 2, 2, 4, 4, 6, 6, 7, 7, 8, 7, 8}, // 2856
	{7, 7, 6, 5, 3, 3, 1, 1, 2, 2, 2, 3, 4, 4, 6, 4, 5, 3, 4, 2, 3, 2, 3, 3}, // 2857
	{5, 5, 5, 6, 6, 7, 7, 7, 6, 6, 4, 4, 3, 2, 1, 1, 0, 0, -1, -1, -1, 0, 1, 1}, // 2858
	{4, 4, 7, 7, 8, 7, 7, 5, 5, 2, 1, 0, -1, -3, -3, -3, -3, -1, -2, 0, 0, 1, 1, 2}, // 2859
	{2, 3, 3, 3, 2, 4, 3, 2, 2, 1, 1, 0, 1, 0, 1, 2, 3, 2, 3, 3, 3, 2, 2, 0}, // 2860
	{0, 0, 0, -1, -1, 1, 2, 3, 4, 6, 5, 6, 5, 5, 4, 5, 3, 4, 2, 2, 1, 2, 0, 0}, // 2861
	{0, 0, 0, 0, 0, 1, 3, 3, 5, 5, 7, 5, 6, 3, 3, 2, 0, -1, -1, -1, -1, 0, 1, 3}, // 2862
	{3, 4, 3, 5, 3, 3, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 1, 3, 2, 5, 4}, // 2863
	{6, 6, 7, 5, 4, 3, 1, 0, -1, -1, -2, 0, 0, 2, 3, 6, 5, 7, 5, 6, 4, 4, 4, 4}, // 2864
	{4, 4, 4, 4, 4, 4, 4, 4, 5, 4, 4, 4, 6, 5, 7, 7, 8, 7, 7, 5, 5, 3, 3, 2}, // 2865
	{2, 2, 3, 5, 6, 7, 8, 10, 9, 10, 7, 7, 5, 4, 3, 3, 3, 2, 3, 3, 3, 4, 5, 4}, // 2866
	{5, 4, 5, 4, 6, 5, 6, 5, 6, 4, 5, 3, 3, 2, 1, 1, 1, 2, 2, 4, 5, 7, 7, 8}, // 2867
	{6, 7, 4, 5, 2, 3, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 7, 6, 7, 6, 7, 7, 7, 6}, // 2868
	{6, 5, 4, 3, 2, 2, 1, 2, 1, 4, 4, 6, 6, 7, 8, 8, 7, 7, 4, 5, 3, 3, 2, 3}, // 2869
	{4, 3, 5, 4, 5, 4, 4, 3, 5, 3, 5, 4, 4, 3, 4, 4, 3, 3, 1, 2, 1, 2, 2, 4}, // 2870
	{4, 6, 5, 7, 5, 6, 5, 3, 2, 0, -1, -2, -3, -3, -2, -1, 1, 1, 3, 2, 5, 3, 5, 4}, // 2871
	{5, 2, 4, 2, 3, 1, 1, 0, -1, -1, -4, -3, -3, -1, -1, 2, 3, 5, 4, 6, 5, 6, 4, 4}, // 2872
	{2, 2, 1, 1, 1, 0, 2, 1, 3, 2, 3, 2, 3, 1, 3, 3, 3, 3, 3, 2, 3, 3, 2, 3}, // 2873
	{2, 3, 1, 2, 1, 3, 2, 4, 3, 5, 3, 2, 1, 0, -1, -2, -3, -3, -3, -2, -1, 1, 2, 2}, // 2874
	{4, 4, 5, 4, 4, 2, 3, 2, 1, -1, 0, -1, -2, -2, -3, -2, -3, -3, -3, 0, 0, 2, 2, 4}, // 2875
	{5, 5, 5, 5, 4, 3, 2, 1, 0, -1, 0, -1, 0, 0, 3, 2, 3, 2, 3, 2, 2, 1, 2, 1}, // 2876
	{1, 2, 2, 3, 3, 3, 3, 4, 4, 5, 4, 5, 4, 6, 4, 5, 5, 5, 3, 2, 1, 0, -1, -1}, // 2877
	{-1, 0, 1, 1, 4, 5, 6, 6, 8, 7, 7, 6, 6, 4, 3, 2, 2, 2, 1, 1, 1, 2, 1, 3}, // 2878
	{2, 4, 3, 3, 3, 4, 4, 4, 4, 3, 3, 2, 2, 1, 1, 1, 2, 2, 4, 3, 6, 6, 7, 6}, // 2879
	{6, 6, 5, 3, 2, 1, 0, 1, 0, 1, 0, 3, 3, 4, 5, 7, 6, 7, 6, 7, 7, 7, 7, 7}, // 2880
	{6, 5, 6, 4, 3, 2, 2, 2, 3, 3, 5, 5, 6, 6, 8, 7, 8, 6, 6, 4, 3, 4, 3, 4}, // 2881
	{4, 5, 5, 7, 6, 7, 6, 7, 5, 6, 4, 4, 3, 3, 2, 2, 2, 1, 2, 0, 1, 1, 2, 2}, // 2882
	{5, 4, 7, 6, 8, 6, 6, 5, 4, 3, 1, 0, -2, -1, -2, -1, 0, 1, 2, 3, 3, 5, 3, 5}, // 2883
	{4, 4, 3, 3, 2, 2, 3, 1, 3, 1, 2, 0, 1, 1, 2, 3, 4, 5, 6, 5, 6, 4, 3, 3}, // 2884
	{2, 1, -1, 0, -1, 0, 0, 2, 2, 4, 5, 6, 5, 6, 4, 4, 4, 4, 3, 3, 3, 3, 4, 3}, // 2885
	{3, 1, 2, 1, 2, 1, 2, 2, 3, 4, 4, 3, 3, 2, 1, 0, -1, -1, -2, 0, -1, 1, 2, 4}, // 2886
	{4, 6, 5, 5, 3, 2, 0, -1, -2, -3, -3, -4, -3, -3, -2, -2, -1, -1, 1, 0, 2, 3, 4, 5}, // 2887
	{7, 6, 6, 6, 4, 3, 1, 0, -2, -2, -3, -2, -2, 0, 1, 3, 4, 5, 4, 5, 4, 4, 4, 4}, // 2888
	{4, 3, 4, 3, 5, 3, 5, 4, 4, 3, 3, 2, 2, 2, 3, 4, 4, 5, 4, 3, 3, 3, 2, 1}, // 2889
	{1, 2, 2, 5, 5, 7, 8, 8, 8, 7, 6, 5, 3, 2, 0, -1, 0, -1, 1, 1, 3, 3, 4, 3}, // 2890
	{6, 4, 6, 5, 6, 5, 5, 5, 4, 4, 2, 2, 0, -1, -1, -1, -2, 0, 0, 3, 3, 6, 6, 7}, // 2891
	{7, 7, 5, 4, 3, 2, 2, 1, 2, 1, 2, 3, 3, 3, 4, 4, 4, 3, 4, 4, 4, 3, 4, 5}, // 2892
	{5, 5, 4, 5, 3, 4, 2, 3, 4, 5, 5, 7, 6, 7, 7, 6, 5, 3, 2, 1, 1, 0, 1, 0}, // 2893
	{2, 3, 4, 5, 6, 6, 6, 6, 6, 6, 5, 4, 4, 4, 3, 3, 2, 1, 0, 0, -2, 0, -1, 1}, // 2894
	{1, 4, 4, 5, 5, 5, 5, 4, 4, 2, 2, -1, 0, 0, 1, 1, 2, 2, 4, 3, 3, 3, 3, 2}, // 2895
	{2, 2, 1, 1, 0, 2, 1, 2, 1, 2, 1, 1, 1, 2, 3, 5, 6, 7, 6, 7, 6, 5, 4, 2}, // 2896
	{2, 0, 0, -2, 0, -1, 1, 1, 3, 4, 6, 5, 6, 6, 6, 5, 5, 5, 5, 5, 4, 4, 3, 3}, // 2897
	{2, 3, 1, 2, 2, 4, 3, 4, 5, 5, 4, 4, 4, 2, 3, 1, 2, 0, 1, 1, 2, 3, 5, 4}, // 2898
	{6, 6, 6, 5, 5, 3, 2, 2, 0, 1, -1, 0, -1, 0, 0, 1, 0, 2, 1, 3, 3, 4, 5, 6}, // 2899
	{6, 6, 6, 5, 5, 3, 3, 1, 2, -1, 1, 0, 2, 2, 4, 5, 7, 7, 7, 6, 5, 5, 4, 4}, // 2900
	{3, 4, 3, 4, 3, 5, 4, 6, 4, 5, 5, 6, 5, 5, 6, 5, 7, 6, 6, 5, 5, 3, 3, 1}, // 2901
	{2, 1, 3, 2, 4, 4, 6, 6, 7, 7, 6, 6, 4, 3, 2, 2, 1, 2, 2, 3, 3, 6, 5, 7}, // 2902
	{6, 6, 6, 5, 5, 4, 4, 3, 3, 2, 1, 0, 0, -1, 0, 0, 1, 1, 3, 4, 6, 7, 8, 8}, // 2903
	{8, 7, 5, 5, 1, 2, -1, 0, -2, -1, -1, 0, 0, 2, 3, 4, 4, 5, 5, 5, 6, 5, 6, 6}, // 2904
	{7, 6, 6, 5, 5, 3, 3, 2, 3, 2, 3, 3, 4, 4, 5, 5, 4, 4, 3, 3, 2, 3, 1, 3}, // 2905
	{3, 6, 5, 8, 7, 8, 8, 7, 5, 3, 3, 1, 0, -1, 0, -1, 0, -2, 0, -2, 0, 0, 1, 2}, // 2906
	{4, 4, 5, 6, 6, 6, 5, 5, 3, 1, 0, -2, -3, -3, -4, -2, -2, 0, 0, 1, 2, 3, 3, 3}, // 2907
	{3, 2, 3, 2, 3, 2, 3, 2, 2, 1, 2, 0, 1, 0, 1, 1, 2, 3, 3, 3, 3, 3, 2, 3}, // 2908
	{1, 1, -1, 1, -1, 0, 1, 3, 3, 5, 5, 6, 6, 5, 4, 2, 3, 1, 1, 0, 1, 0, 2, 1}, // 2909
	{1, 1, 2, 1, 2, 2, 3, 4, 4, 4, 4, 4, 3, 3, 1, 1, -1, -2, -3, -2, -2, 0, 1, 3}, // 2910
	{4, 5, 6, 4, 5, 3, 2, 1, 1, -1, 0, -2, -1, 0, 0, 1, 2, 2, 2, 2, 2, 2, 3, 4}, // 2911
	{4, 5, 4, 5, 3, 3, 2, 1, 0, 0, 0, 0, 1, 3, 5, 7, 7, 8, 8, 6, 6, 4, 4, 2}, // 2912
	{3, 2, 3, 2, 5, 4, 6, 6, 6, 6, 6, 6, 6, 6, 7, 8, 7, 8, 7, 7, 5, 5, 2, 3}, // 2913
	{1, 3, 2, 3, 4, 6, 8, 8, 9, 8, 8, 6, 6, 4, 4, 2, 3, 2, 4, 3, 5, 5, 6, 6}, // 2914
	{6, 6, 5, 5, 4, 5, 4, 5, 3, 5, 2, 3, 2, 2, 1, 2, 2, 3, 4, 6, 7, 8, 8, 9}, // 2915
	{9, 7, 7, 4, 3, 1, 1, 0, 1, 1, 2, 3, 4, 4, 5, 6, 6, 7, 6, 6, 6, 7, 5, 7}, // 2916
	{6, 6, 4, 5, 3, 3, 2, 3, 3, 3, 5, 5, 7, 6, 7, 6, 6, 4, 5, 3, 3, 2, 3, 2}, // 2917
	{4, 4, 5, 6, 7, 6, 6, 6, 5, 4, 3, 2, 1, 2, 0, 2, 0, 0, -1, 0, -1, 0, 1, 2}, // 2918
	{4, 4, 5, 5, 6, 3, 4, 2, 1, -1, -1, -4, -3, -3, -3, -2, 0, 1, 2, 2, 3, 4, 3, 4}, // 2919
	{4, 4, 2, 3, 2, 2, 0, 1, 0, 0, 0, 0, 0, 1, 1, 2, 3, 4, 5, 5, 6, 4, 4, 3}, // 2920
	{4, 1, 2, 0, 1, 1, 1, 2, 3, 3, 3, 4, 3, 4, 3, 2, 2, 2, 0, 2, 1, 3, 2, 2}, // 2921
	{3, 3, 3, 4, 3, 4, 4, 4, 4, 4, 4, 2, 2, 0, 1, -2, -2, -3, -2, -3, -1, 1, 2, 4}, // 2922
	{5, 6, 6, 6, 5, 6, 3, 3, 0, 0, -2, -1, -3, -1, -3, -1, -1, 0, 0, 1, 1, 2, 3, 3}, // 2923
	{6, 5, 6, 5, 6, 4, 4, 3, 2, 0, 1, 0, 1, 1, 3, 4, 4, 6, 4, 4, 3, 3, 1, 2}, // 2924
	{1, 2, 1, 3, 3, 5, 5, 7, 7, 7, 8, 7, 7, 5, 6, 4, 5, 4, 5, 3, 3, 2, 2, 0}, // 2925
	{2, 1, 2, 3, 4, 5, 6, 8, 7, 9, 7, 7, 5, 4, 2, 3, 1, 1, 1, 2, 2, 4, 4, 4}, // 2926
	{6, 4, 5, 4, 4, 3, 4, 2, 3, 2, 3, 2, 3, 2, 2, 2, 3, 4, 4, 5, 5, 7, 7, 8}, // 2927
	{7, 7, 5, 5, 3, 2, 0, 1, 1, 1, 1, 3, 5, 6, 7, 7, 9, 8, 9, 6, 7, 5, 7, 5}, // 2928
	{6, 4, 6, 4, 4, 4, 3, 4, 3, 5, 4, 6, 6, 8, 8, 9, 8, 8, 5, 5, 4, 4, 2, 4}, // 2929
	{4, 4, 5, 7, 7, 7, 8, 7, 8, 5, 6, 3, 3, 3, 3, 3, 3, 2, 3, 2, 3, 3, 4, 4}, // 2930
	{4, 5, 4, 6, 5, 6, 5, 4, 3, 2, 1, 0, -1, -1, -1, 1, 2, 3, 5, 5, 6, 5, 6, 4}, // 2931
	{5, 2, 3, 2, 2, 1, 2, 1, 2, 2, 2, 3, 2, 3, 4, 4, 5, 7, 6, 7, 6, 7, 5, 5}, // 2932
	{3, 2, 0, 0, 0, 0, 0, 1, 4, 4, 5, 5, 6, 5, 5, 4, 4, 2, 3, 2, 3, 3, 3, 4}, // 2933
	{3, 3, 2, 3, 1, 2, 1, 2, 1, 3, 2, 2, 1, 1, 1, 0, -1, -1, -2, -2, 0, 1, 3, 4}, // 2934
	{7, 6, 8, 6, 6, 4, 3, 0, -1, -2, -3, -4, -3, -2, -2, 0, 0, 1, 2, 2, 3, 3, 4, 5}, // 2935
	{5, 6, 5, 6, 4, 3, 2, 1, -1, -2, -1, -2, 0, 0, 3, 3, 5, 5, 6, 5, 6, 4, 4, 2}, // 2936
	{3, 2, 3, 3, 4, 5, 6, 6, 5, 6, 5, 6, 4, 5, 4, 5, 4, 5, 4, 5, 4, 4, 3, 3}, // 2937
	{3, 3, 4, 5, 6, 7, 8, 8, 9, 7, 7, 4, 3, 1, 1, 0, -1, -1, 1, 1, 3, 4, 5, 6}, // 2938
	{7, 8, 6, 6, 5, 5, 4, 5, 4, 4, 3, 2, 1, 0, 0, 0, 1, 1, 3, 3, 5, 6, 8, 7}, // 2939
	{8, 7, 7, 5, 5, 3, 3, 3, 2, 2, 2, 3, 3, 5, 5, 5, 4, 6, 4, 5, 3, 5, 3, 5}, // 2940
	{4, 5, 5, 5, 5, 4, 5, 5, 6, 5, 7, 6, 7, 6, 6, 5, 4, 3, 2, 1, 1, 0, 1, 2}, // 2941
	{2, 3, 4, 6, 6, 7, 6, 8, 6, 6, 4, 5, 2, 2, 2, 1, 1, 0, 0, 0, -1, 0, 1, 2}, // 2942
	{3, 3, 5, 4, 5, 4, 5, 3, 3, 2, 1, 0, 0, -1, 0, 1, 2, 3, 3, 5, 4, 5, 4, 4}, // 2943
	{2, 2, 0, 1, 0, 1, 0, 1, 1, 1, 2, 2, 3, 3, 5, 5, 7, 6, 7, 6, 7, 5, 6, 4}, // 2944
	{3, 2, 1, 1, 0, 1, 1, 3, 4, 5, 5, 7, 6, 7, 6, 6, 5, 5, 3, 4, 3, 4, 4, 4}, // 2945
	{5, 4, 5, 3, 4, 2, 5, 4, 5, 3, 4, 3, 4, 2, 2, 2, 1, 0, 0, 1, 1, 3, 4, 6}, // 2946
	{6, 8, 7, 8, 7, 6, 4, 3, 1, 1, 0, 0, 0, 0, 1, 1, 3, 3, 5, 4, 6, 5, 6, 6}, // 2947
	{7, 7, 7, 6, 6, 5, 5, 4, 2, 3, 2, 2, 2, 4, 4, 7, 7, 9, 7, 8, 6, 6, 4, 4}, // 2948
	{3, 2, 2, 3, 4, 4, 6, 6, 8, 8, 9, 8, 8, 7, 6, 5, 6, 5, 6, 5, 5, 5, 4, 5}, // 2949
	{4, 4, 3, 5, 5, 6, 6, 8, 7, 7, 6, 6, 5, 4, 3, 1, 1, 1, 1, 1, 4, 4, 6, 6}, // 2950
	{8, 6, 6, 4, 5, 2, 2, 1, 1, 1, 1, 0, 0, 0, 1, 2, 2, 3, 3, 5, 5, 7, 6, 8}, // 2951
	{7, 8, 5, 5, 4, 2, 1, 0, 1, 0, 1, 1, 4, 4, 6, 5, 7, 6, 6, 4, 5, 5, 5, 5}, // 2952
	{6, 6, 6, 5, 4, 5, 3, 5, 3, 5, 3, 5, 4, 5, 5, 6, 5, 5, 2, 2, 1, 1, 1, 2}, // 2953
	{3, 3, 6, 6, 8, 7, 8, 7, 7, 5, 4, 2, 1, 0, -1, 0, 0, 0, 1, 1, 0, 2, 2, 3}, // 2954
	{4, 5, 5, 6, 5, 7, 6, 6, 4, 2, 1, 0, -1, -2, -1, -2, 0, 1, 3, 3, 5, 3, 5, 4}, // 2955
	{3, 3, 3, 2, 2, 2, 2, 3, 3, 3, 2, 4, 2, 3, 3, 4, 3, 5, 4, 5, 5, 4, 3, 4}, // 2956
	{2, 1, 1, 0, 1, 0, 3, 3, 5, 5, 7, 7, 8, 5, 5, 4, 3, 2, 1, 0, 0, 2, 2, 3}, // 2957
	{3, 4, 3, 4, 3, 4, 3, 5, 4, 5, 4, 4, 3, 3, 2, 1, 1, -1, 0, -2, 0, 0, 2, 3}, // 2958
	{6, 5, 6, 6, 6, 4, 4, 2, 1, 0, -1, -1, 0, 1, 1, 4, 3, 5, 4, 5, 4, 5, 4, 5}, // 2959
	{4, 5, 4, 5, 5, 4, 4, 3, 3, 1, 2, 2, 4, 4, 7, 8, 9, 8, 9, 8, 8, 6, 5, 4}, // 2960
	{3, 3, 2, 3, 3, 5, 5, 7, 6, 8, 7, 8, 7, 7, 8, 8, 8, 7, 7, 7, 6, 6, 5, 4}, // 2961
	{5, 4, 5, 5, 7, 6, 7, 7, 8, 7, 7, 6, 5, 4, 3, 3, 2, 3, 3, 6, 6, 8, 8, 9}, // 2962
	{9, 10, 8, 7, 5, 4, 4, 3, 3, 2, 2, 1, 2, 1, 3, 2, 4, 4, 7, 6, 9, 8, 9, 10}, // 2963
	{10, 9, 7, 6, 5, 4, 2, 3, 1, 3, 2, 3, 4, 5, 6, 7, 7, 8, 7, 7, 6, 7, 6, 7}, // 2964
	{7, 6, 7, 6, 6, 5, 6, 5, 5, 5, 6, 5, 5, 5, 5, 5, 5, 4, 3, 2, 1, 2, 2, 3}, // 2965
	{2, 5, 4, 7, 6, 7, 6, 6, 5, 4, 2, 1, 0, 0, 0, -1, 0, -1, 0, 0, 1, 1, 3, 2}, // 2966
	{4, 3, 5, 4, 5, 4, 4, 4, 2, 1, -1, -1, -3, -2, -2, 0, 0, 3, 3, 4, 4, 5, 4, 4}, // 2967
	{3, 2, 2, 0, 1, -1, 0, -1, 1, -1, 1, 0, 2, 2, 3, 3, 4, 4, 4, 4, 5, 5, 4, 4}, // 2968
	{2, 2, 1, 1, 0, 1, 1, 2, 3, 4, 4, 5, 5, 5, 5, 4, 3, 2, 2, 1, 2, 1, 3, 3}, // 2969
	{4, 4, 6, 5, 6, 5, 5, 4, 3, 3, 2, 1, 1, 0, -1, 0, -1, 0, -1, 0, -1, 2, 2, 5}, // 2970
	{6, 8, 7, 8, 7, 7, 5, 3, 3, 0, -1, -2, -2, -2, 0, 1, 3, 2, 4, 3, 4, 4, 4, 5}, // 2971
	{5, 5, 5, 6, 5, 6, 5, 6, 4, 5, 3, 3, 2, 3, 3, 5, 6, 7, 6, 6, 5, 5, 3, 2}, // 2972
	{3, 1, 3, 2, 4, 5, 8, 7, 9, 10, 11, 9, 8, 7, 6, 5, 4, 4, 3, 4, 3, 4, 2, 4}, // 2973
	{3, 4, 3, 5, 5, 6, 7, 8, 9, 8, 8, 7, 7, 5, 4, 2, 2, 0, 1, 1, 4, 3, 6, 6}, // 2974
	{7, 7, 6, 5, 5, 4, 3, 3, 2, 4, 3, 4, 2, 4, 4, 5, 4, 5, 5, 6, 6, 7, 7, 8}, // 2975
	{7, 7, 6, 5, 4, 2, 3, 0, 2, 2, 4, 4, 6, 7, 9, 9, 9, 9, 8, 7, 6, 6, 5, 6}, // 2976
	{5, 6, 5, 6, 5, 6, 5, 6, 5, 6, 6, 7, 8, 8, 8, 8, 8, 7, 7, 5, 4, 3, 4, 2}, // 2977
	{5, 5, 6, 6, 9, 8, 9, 8, 6, 5, 4, 4, 2, 2, 2, 2, 2, 3, 3, 5, 4, 5, 5, 6}, // 2978
	{6, 6, 5, 6, 6, 5, 6, 4, 4, 1, 2, -1, 0, 0, 1, 1, 3, 5, 7, 7, 8, 8, 8, 7}, // 2979
	{6, 5, 4, 3, 2, 2, 1, 2, 2, 3, 2, 3, 3, 3, 4, 4, 5, 6, 6, 6, 7, 6, 7, 6}, // 2980
	{6, 3, 3, 1, 2, 1, 2, 3, 4, 5, 6, 6, 6, 5, 4, 3, 2, 2, 0, 2, 1, 4, 4, 5}, // 2981
	{5, 7, 6, 7, 6, 6, 5, 4, 4, 3, 3, 1, 2, 0, 1, -1, -1, -2, -1, -2, 0, 1, 3, 4}, // 2982
	{6, 7, 8, 7, 6, 5, 3, 2, 0, 0, -2, -2, -2, -1, 0, 1, 2, 3, 3, 4, 3, 3, 4, 4}, // 2983
	{4, 4, 5, 4, 5, 4, 4, 3, 4, 3, 3, 2, 4, 4, 6, 6, 7, 8, 7, 7, 5, 6, 4, 3}, // 2984
	{2, 3, 1, 3, 3, 5, 5, 7, 7, 8, 8, 8, 7, 6, 7, 6, 6, 4, 5, 4, 5, 3, 5, 3}, // 2985
	{4, 4, 5, 4, 6, 6, 7, 8, 7, 7, 6, 6, 4, 4, 2, 2, 1, 2, 2, 4, 4, 7, 7, 8}, // 2986
	{9, 9, 8, 6, 6, 5, 4, 3, 4, 2, 2, 1, 2, 1, 3, 3, 4, 4, 5, 5, 6, 7, 7, 8}, // 2987
	{8, 8, 7, 7, 4, 4, 3, 3, 2, 3, 3, 5, 4, 5, 7, 6, 8, 7, 7, 6, 5, 4, 5, 3}, // 2988
	{5, 4, 6, 4, 7, 6, 7, 7, 8, 7, 8, 7, 7, 7, 5, 6, 4, 4, 2, 2, 1, 1, 0, 2}, // 2989
	{2, 4, 4, 5, 6, 7, 8, 8, 7, 6, 5, 3, 3, 1, 2, 0, 1, 0, 1, 0, 2, 2, 3, 2}, // 2990
	{3, 3, 3, 4, 3, 4, 3, 4, 2, 3, 2, 2, 0, 1, 1, 2, 3, 4, 5, 6, 5, 5, 5, 4}, // 2991
	{4, 2, 2, 0, 0, -1, 1, 0, 2, 2, 4, 5, 6, 6, 7, 7, 7, 7, 7, 7, 6, 7, 4, 5}, // 2992
	{3, 3, 1, 2, 0, 2, 1, 3, 4, 5, 6, 6, 7, 7, 8, 7, 6, 4, 5, 3, 4, 3, 4, 4}, // 2993
	{6, 6, 7, 6, 6, 6, 5, 4, 3, 2, 2, 2, 1, 3, 2, 3, 2, 3, 3, 4, 4, 5, 6, 7}, // 2994
	{8, 8, 9, 8, 8, 6, 5, 3, 2, -1, 0, -2, -1, -1, 2, 3, 5, 6, 7, 7, 8, 7, 7, 7}, // 2995
	{5, 7, 6, 7, 5, 6, 5, 4, 4, 4, 3, 4, 3, 4, 5, 6, 8, 8, 10, 9, 10, 7, 8, 6}, // 2996
	{6, 4, 5, 4, 6, 6, 7, 8, 8, 9, 8, 8, 6, 5, 4, 4, 3, 4, 3, 4, 4, 5, 6, 6}, // 2997
	{6, 5, 5, 5, 5, 5, 5, 5, 6, 4, 5, 2, 2, 1, 1, -1, 0, -2, -1, 0, 2, 4, 6, 7}, // 2998
	{9, 9, 7, 7, 5, 4, 3, 2, 1, 1, 0, 1, 0, 1, 0, 2, 2, 3, 3, 4, 5, 5, 6, 7}, // 2999
	{8, 7, 7, 5, 5, 3, 3, 1, 0, 1, 2, 2, 4, 5, 5, 5, 5, 6, 4, 5, 3, 3, 2, 4}, // 3000
}

// moonPhaseCorrections holds, per year starting at firstYear, the parity
// of the first phase of the year (0 for a new moon, 1 for a full moon)
// followed by the minute corrections (biased by 5) for each phase whose
// Beijing civil date falls in the year.
var moonPhaseCorrections = [...][]int8{
	{0, 6, 7, 6, 6, 6, 5, 6, 3, 5, 4, 4, 4, 4, 6, 6, 6, 6, 6, 2, 6, 1, 6, 5, 6, 7}, // 1900
	{1, 7, 7, 7, 6, 4, 8, 4, 8, 5, 7, 5, 4, 5, 4, 6, 6, 6, 4, 5, 0, 3, 2, 5, 6, 6}, // 1901
	{0, 6, 6, 4, 4, 5, 4, 7, 5, 8, 7, 6, 7, 5, 5, 6, 4, 5, 4, 4, 4, 4, 3, 4, 4, 5}, // 1902
	{1, 6, 4, 7, 3, 6, 6, 5, 6, 7, 6, 7, 7, 5, 7, 2, 5, 2, 4, 4, 4, 5, 6, 6, 5}, // 1903
	{1, 5, 3, 7, 4, 8, 7, 7, 7, 6, 6, 6, 6, 6, 7, 4, 6, 2, 4, 3, 4, 6, 6, 6, 6, 4}, // 1904
	{0, 3, 4, 2, 6, 5, 6, 7, 6, 6, 5, 3, 5, 5, 5, 6, 4, 5, 5, 4, 6, 6, 5, 7, 3, 6}, // 1905
	{1, 3, 4, 5, 4, 4, 5, 4, 4, 5, 3, 6, 3, 5, 4, 5, 6, 7, 7, 8, 8, 6, 6, 2, 6, 3}, // 1906
	{0, 6, 5, 5, 5, 4, 2, 4, 3, 3, 7, 3, 7, 4, 5, 5, 6, 8, 9, 8, 8, 7, 4, 5, 2}, // 1907
	{0, 5, 5, 5, 7, 5, 3, 4, 1, 3, 3, 2, 5, 4, 5, 5, 4, 6, 6, 5, 8, 5, 7, 6, 5, 6}, // 1908
	{1, 5, 5, 6, 6, 5, 6, 3, 6, 2, 4, 3, 3, 5, 4, 6, 5, 6, 3, 6, 1, 6, 3, 6, 6, 7}, // 1909
	{0, 7, 6, 5, 5, 5, 4, 8, 3, 8, 5, 5, 6, 5, 6, 7, 7, 6, 6, 3, 4, 1, 4, 5, 6}, // 1910
	{0, 7, 7, 5, 5, 4, 3, 5, 4, 8, 6, 7, 6, 5, 5, 6, 4, 6, 4, 4, 4, 3, 4, 4, 5, 6}, // 1911
	{1, 6, 6, 8, 5, 7, 5, 6, 7, 6, 6, 7, 6, 7, 7, 3, 5, 2, 4, 2, 3, 5, 6, 6, 5, 5}, // 1912
	{0, 4, 6, 4, 8, 6, 8, 7, 6, 6, 6, 6, 6, 7, 5, 7, 3, 5, 2, 3, 5, 5, 6, 7, 5, 4}, // 1913
	{1, 4, 3, 5, 4, 7, 8, 7, 7, 5, 4, 6, 4, 5, 6, 5, 6, 5, 5, 6, 5, 5, 6, 3, 6}, // 1914
	{1, 3, 5, 4, 4, 4, 5, 5, 6, 6, 6, 8, 4, 7, 3, 6, 6, 6, 7, 8, 8, 7, 7, 3, 5, 1}, // 1915
	{0, 5, 4, 5, 5, 4, 3, 4, 3, 4, 5, 3, 7, 3, 6, 4, 4, 6, 6, 8, 9, 8, 7, 6, 2, 6}, // 1916
	{1, 4, 6, 7, 6, 6, 4, 2, 3, 2, 2, 4, 3, 5, 4, 4, 5, 5, 5, 7, 5, 8, 5, 5, 5, 4}, // 1917
	{0, 5, 6, 5, 5, 5, 4, 6, 2, 5, 3, 3, 5, 5, 5, 6, 6, 5, 7, 3, 6, 1, 6, 5, 6}, // 1918
	{0, 7, 6, 6, 5, 4, 3, 6, 3, 7, 4, 6, 5, 4, 5, 5, 6, 7, 6, 4, 5, 1, 4, 2, 4, 6}, // 1919
	{1, 7, 7, 6, 4, 4, 4, 3, 7, 5, 7, 6, 5, 5, 5, 4, 6, 3, 5, 4, 3, 4, 3, 4, 5, 5}, // 1920
	{0, 5, 7, 4, 7, 4, 5, 5, 5, 6, 6, 5, 6, 6, 4, 6, 1, 5, 2, 4, 4, 5, 6, 6, 5, 5}, // 1921
	{1, 5, 3, 6, 3, 8, 6, 6, 5, 5, 5, 6, 5, 5, 7, 4, 6, 1, 3, 3, 4, 6, 6, 6, 6}, // 1922
	{1, 4, 3, 4, 3, 6, 6, 8, 8, 6, 6, 6, 4, 6, 5, 5, 7, 4, 5, 5, 4, 5, 5, 5, 6, 3}, // 1923
	{0, 6, 4, 4, 5, 4, 5, 6, 4, 6, 6, 4, 6, 3, 6, 4, 5, 6, 7, 7, 8, 7, 5, 6, 2, 7}, // 1924
	{1, 3, 7, 6, 6, 5, 5, 3, 4, 3, 3, 6, 3, 6, 3, 4, 5, 5, 6, 8, 8, 7, 7, 4, 6, 2}, // 1925
	{0, 5, 6, 6, 7, 5, 4, 4, 1, 3, 3, 3, 6, 4, 5, 5, 4, 6, 7, 5, 8, 4, 6, 4, 4}, // 1926
	{0, 5, 5, 5, 6, 5, 5, 6, 2, 6, 3, 5, 4, 4, 5, 6, 6, 6, 7, 4, 6, 1, 6, 3, 6, 6}, // 1927
	{1, 6, 6, 6, 5, 4, 5, 3, 8, 4, 8, 5, 5, 5, 4, 5, 6, 6, 5, 5, 2, 4, 0, 3, 4, 6}, // 1928
	{0, 6, 6, 4, 4, 3, 3, 5, 3, 7, 6, 6, 6, 5, 5, 6, 4, 6, 5, 5, 5, 3, 4, 4, 4, 6}, // 1929
	{1, 6, 4, 6, 3, 5, 3, 4, 5, 5, 5, 7, 6, 6, 7, 4, 6, 2, 4, 2, 5, 5, 5, 6, 5}, // 1930
	{1, 5, 4, 6, 3, 8, 4, 7, 7, 6, 6, 6, 6, 6, 7, 5, 7, 2, 4, 2, 3, 4, 4, 6, 6, 4}, // 1931
	{0, 4, 3, 2, 5, 3, 6, 7, 6, 6, 6, 4, 5, 4, 5, 6, 4, 5, 4, 5, 5, 5, 5, 6, 4, 6}, // 1932
	{1, 4, 5, 4, 4, 5, 4, 4, 5, 4, 4, 6, 2, 5, 2, 4, 5, 5, 7, 8, 7, 7, 7, 3, 7}, // 1933
	{1, 2, 6, 4, 5, 6, 4, 4, 3, 2, 3, 5, 3, 6, 2, 4, 3, 5, 6, 7, 8, 9, 7, 6, 6, 2}, // 1934
	{0, 6, 4, 6, 7, 5, 5, 5, 2, 3, 2, 3, 4, 3, 5, 3, 3, 5, 4, 4, 7, 4, 7, 5, 5, 6}, // 1935
	{1, 6, 6, 7, 6, 6, 7, 4, 7, 2, 5, 3, 3, 4, 4, 5, 6, 5, 4, 6, 1, 6, 1, 5, 5, 6}, // 1936
	{0, 7, 6, 5, 5, 5, 3, 7, 4, 8, 4, 6, 4, 3, 4, 5, 6, 6, 6, 4, 4, 1, 4, 3, 4}, // 1937
	{0, 6, 6, 6, 5, 4, 4, 4, 4, 7, 5, 8, 6, 5, 6, 4, 4, 6, 4, 6, 4, 3, 4, 3, 4, 5}, // 1938
	{1, 5, 5, 6, 4, 6, 4, 6, 6, 6, 7, 7, 7, 7, 7, 5, 6, 2, 5, 1, 3, 4, 4, 5, 4, 5}, // 1939
	{0, 4, 4, 2, 6, 4, 8, 6, 7, 7, 6, 6, 6, 7, 6, 7, 3, 5, 1, 3, 3, 4, 5, 6, 6, 5}, // 1940
	{1, 3, 3, 3, 2, 6, 5, 6, 6, 5, 5, 5, 4, 6, 5, 5, 6, 4, 5, 4, 4, 5, 5, 4, 6}, // 1941
	{1, 3, 5, 2, 4, 4, 4, 4, 4, 4, 5, 6, 4, 6, 2, 6, 4, 6, 7, 7, 7, 8, 7, 5, 6, 1}, // 1942
	{0, 6, 3, 6, 5, 5, 4, 3, 2, 3, 3, 3, 6, 3, 5, 2, 4, 4, 5, 7, 8, 7, 7, 6, 3, 6}, // 1943
	{1, 2, 6, 6, 7, 7, 5, 4, 3, 1, 2, 3, 3, 5, 3, 4, 4, 4, 5, 6, 5, 7, 4, 7, 5, 5}, // 1944
	{0, 6, 5, 5, 6, 5, 4, 6, 2, 5, 2, 4, 3, 3, 4, 5, 6, 6, 7, 4, 7, 2, 6, 4, 6}, // 1945
	{0, 7, 6, 6, 5, 4, 3, 5, 2, 7, 3, 6, 4, 4, 5, 3, 5, 6, 6, 6, 5, 2, 4, 1, 5, 5}, // 1946
	{1, 6, 7, 6, 5, 5, 3, 3, 6, 4, 8, 6, 6, 6, 4, 5, 5, 3, 6, 4, 4, 4, 3, 4, 3, 4}, // 1947
	{0, 6, 5, 5, 7, 4, 6, 5, 5, 6, 6, 6, 6, 6, 6, 6, 3, 5, 0, 4, 3, 4, 4, 4, 5, 5}, // 1948
	{1, 4, 3, 5, 3, 8, 5, 7, 6, 6, 6, 5, 5, 6, 6, 4, 6, 1, 4, 1, 3, 4, 4, 6, 6}, // 1949
	{1, 4, 4, 3, 2, 5, 4, 7, 6, 6, 6, 6, 5, 6, 4, 7, 5, 5, 6, 4, 4, 4, 4, 4, 6, 3}, // 1950
	{0, 5, 2, 4, 3, 4, 4, 5, 4, 6, 5, 4, 6, 3, 6, 2, 5, 4, 5, 7, 7, 6, 6, 6, 2, 6}, // 1951
	{1, 2, 6, 4, 6, 5, 5, 3, 3, 3, 3, 5, 3, 6, 2, 4, 2, 3, 5, 6, 7, 8, 7, 5, 5, 3}, // 1952
	{0, 6, 4, 6, 7, 5, 5, 4, 2, 3, 2, 3, 4, 3, 5, 4, 4, 5, 5, 5, 7, 5, 7, 5, 6}, // 1953
	{0, 5, 5, 5, 5, 5, 5, 5, 3, 5, 1, 5, 2, 3, 4, 4, 5, 6, 6, 5, 6, 2, 5, 2, 6, 4}, // 1954
	{1, 6, 7, 6, 4, 4, 4, 3, 6, 3, 8, 3, 6, 4, 3, 5, 5, 6, 7, 5, 4, 5, 0, 4, 2, 5}, // 1955
	{0, 6, 5, 6, 6, 3, 4, 4, 3, 6, 5, 7, 5, 4, 5, 4, 4, 6, 3, 5, 4, 4, 5, 3, 4}, // 1956
	{0, 5, 4, 6, 6, 3, 7, 3, 5, 5, 5, 6, 6, 5, 6, 6, 4, 5, 1, 4, 1, 3, 4, 4, 6, 5}, // 1957
	{1, 4, 4, 4, 2, 6, 4, 8, 5, 6, 6, 5, 5, 6, 6, 7, 7, 3, 5, 1, 4, 3, 4, 6, 5, 5}, // 1958
	{0, 5, 3, 2, 4, 2, 5, 5, 6, 6, 6, 5, 6, 4, 6, 5, 6, 6, 5, 5, 5, 4, 5, 5, 5, 6}, // 1959
	{1, 4, 6, 4, 4, 5, 4, 4, 5, 4, 5, 6, 3, 7, 2, 5, 3, 5, 6, 6, 6, 7, 6, 4, 6}, // 1960
	{1, 2, 7, 4, 7, 6, 6, 4, 3, 2, 3, 3, 3, 6, 2, 5, 2, 4, 4, 5, 7, 8, 7, 8, 6, 4}, // 1961
	{0, 5, 2, 7, 6, 6, 6, 5, 3, 4, 1, 3, 3, 3, 5, 3, 4, 4, 4, 5, 6, 5, 7, 4, 5, 5}, // 1962
	{1, 4, 6, 5, 6, 6, 6, 5, 7, 3, 7, 2, 5, 3, 4, 5, 5, 6, 6, 6, 4, 5, 0, 5, 2, 6}, // 1963
	{0, 6, 6, 5, 4, 4, 3, 4, 2, 8, 3, 6, 4, 4, 5, 4, 5, 6, 6, 6, 5, 2, 4, 1, 4}, // 1964
	{0, 5, 5, 7, 6, 4, 4, 3, 3, 5, 3, 6, 4, 5, 5, 4, 4, 5, 3, 6, 4, 4, 3, 3, 4, 4}, // 1965
	{1, 4, 5, 5, 4, 6, 2, 6, 3, 4, 5, 5, 6, 6, 6, 6, 6, 4, 6, 1, 4, 2, 3, 4, 4, 4}, // 1966
	{0, 4, 3, 2, 4, 2, 7, 4, 7, 5, 5, 5, 5, 6, 6, 6, 6, 7, 2, 5, 1, 3, 5, 5, 5, 5}, // 1967
	{1, 3, 3, 3, 2, 5, 4, 7, 6, 6, 6, 5, 3, 6, 3, 5, 4, 4, 5, 4, 4, 5, 5, 4, 6}, // 1968
	{1, 4, 6, 3, 4, 3, 3, 4, 4, 4, 5, 4, 4, 6, 1, 5, 1, 4, 5, 6, 7, 7, 7, 7, 6, 3}, // 1969
	{0, 6, 2, 7, 5, 6, 5, 4, 2, 3, 3, 3, 4, 2, 5, 1, 3, 2, 3, 5, 6, 7, 8, 6, 5, 6}, // 1970
	{1, 3, 7, 5, 7, 7, 6, 6, 5, 2, 4, 2, 3, 5, 3, 4, 3, 3, 4, 4, 4, 6, 4, 6, 4}, // 1971
	{1, 6, 5, 5, 6, 6, 6, 6, 6, 3, 6, 2, 5, 2, 4, 4, 4, 5, 5, 6, 5, 5, 1, 6, 1, 6}, // 1972
	{0, 5, 6, 7, 6, 4, 4, 4, 3, 7, 3, 7, 4, 5, 4, 3, 4, 5, 5, 7, 5, 3, 4, 0, 4, 3}, // 1973
	{1, 5, 6, 5, 5, 5, 3, 4, 4, 3, 7, 6, 8, 6, 5, 6, 5, 5, 6, 4, 6, 4, 3, 4, 3, 4}, // 1974
	{0, 4, 3, 4, 4, 3, 6, 3, 6, 5, 5, 7, 6, 7, 7, 6, 5, 7, 1, 5, 1, 4, 4, 4, 5}, // 1975
	{0, 5, 4, 3, 3, 2, 6, 3, 8, 6, 7, 6, 6, 6, 6, 7, 6, 7, 4, 5, 1, 4, 3, 4, 6, 5}, // 1976
	{1, 4, 4, 2, 2, 3, 2, 5, 5, 6, 6, 5, 5, 5, 3, 6, 5, 6, 6, 5, 6, 4, 4, 6, 5, 4}, // 1977
	{0, 6, 3, 5, 2, 3, 3, 3, 4, 4, 4, 5, 4, 2, 6, 2, 5, 3, 5, 6, 6, 7, 7, 6, 5, 6}, // 1978
	{1, 2, 7, 3, 7, 5, 5, 4, 4, 3, 3, 3, 3, 5, 2, 5, 2, 3, 4, 4, 6, 7, 7, 7, 5}, // 1979
	{1, 3, 5, 3, 7, 6, 7, 7, 5, 3, 3, 2, 3, 2, 3, 4, 2, 3, 3, 4, 5, 6, 5, 7, 4, 6}, // 1980
	{0, 5, 5, 6, 5, 6, 6, 4, 4, 5, 2, 5, 1, 3, 2, 3, 4, 4, 5, 5, 5, 3, 5, 1, 6, 3}, // 1981
	{1, 7, 6, 6, 5, 5, 4, 3, 5, 3, 7, 1, 7, 4, 4, 5, 4, 5, 6, 5, 6, 5, 2, 4, 1, 5}, // 1982
	{0, 6, 6, 7, 5, 4, 5, 2, 4, 5, 4, 8, 5, 5, 5, 4, 4, 5, 3, 6, 3, 4, 3, 3, 4}, // 1983
	{0, 5, 5, 5, 5, 5, 7, 4, 7, 4, 6, 6, 6, 6, 7, 6, 5, 5, 2, 5, -1, 4, 2, 4, 4, 5}, // 1984
	{1, 4, 4, 4, 3, 5, 3, 7, 5, 8, 6, 5, 6, 5, 6, 7, 6, 6, 7, 2, 4, 2, 3, 4, 4, 5}, // 1985
	{0, 5, 3, 3, 2, 2, 5, 3, 6, 6, 6, 6, 5, 4, 6, 4, 6, 5, 6, 6, 5, 5, 5, 5, 5, 5}, // 1986
	{1, 3, 5, 2, 5, 4, 4, 5, 4, 5, 5, 6, 5, 6, 2, 6, 2, 5, 4, 5, 6, 7, 6, 6, 5}, // 1987
	{1, 2, 6, 2, 7, 4, 6, 5, 4, 4, 3, 3, 4, 5, 3, 5, 1, 4, 2, 3, 5, 6, 7, 7, 6, 5}, // 1988
	{0, 5, 3, 6, 5, 7, 7, 6, 4, 3, 1, 3, 1, 3, 4, 3, 5, 4, 3, 4, 4, 4, 6, 4, 7, 4}, // 1989
	{1, 5, 5, 5, 5, 6, 4, 5, 5, 3, 6, 2, 6, 2, 4, 4, 5, 6, 6, 6, 6, 5, 1, 6, 2}, // 1990
	{1, 6, 5, 6, 6, 6, 4, 3, 4, 2, 6, 3, 7, 3, 5, 4, 4, 5, 6, 6, 7, 5, 4, 4, 1, 4}, // 1991
	{0, 4, 5, 7, 6, 5, 5, 3, 3, 3, 4, 7, 5, 6, 5, 4, 5, 4, 4, 6, 3, 6, 3, 3, 5, 4}, // 1992
	{1, 4, 5, 4, 5, 5, 2, 6, 3, 6, 5, 5, 5, 6, 6, 7, 6, 5, 6, 2, 5, 2, 4, 5, 5, 5}, // 1993
	{0, 4, 4, 3, 3, 2, 5, 3, 7, 5, 6, 6, 5, 5, 6, 6, 7, 7, 4, 5, 1, 4, 3, 4, 6}, // 1994
	{0, 6, 4, 5, 2, 3, 4, 3, 6, 5, 7, 6, 5, 5, 5, 4, 6, 4, 6, 5, 4, 5, 4, 4, 5, 4}, // 1995
	{1, 4, 5, 3, 6, 3, 5, 4, 5, 4, 5, 5, 5, 5, 3, 6, 1, 5, 2, 5, 6, 6, 6, 7, 6, 4}, // 1996
	{0, 6, 3, 7, 4, 8, 6, 6, 5, 3, 2, 4, 4, 3, 5, 1, 4, 1, 3, 4, 5, 6, 7, 6, 6, 5}, // 1997
	{1, 3, 5, 3, 7, 6, 7, 6, 5, 3, 4, 2, 4, 4, 4, 5, 3, 4, 3, 4, 4, 5, 4, 6, 3}, // 1998
	{1, 6, 4, 5, 6, 5, 5, 6, 5, 5, 6, 3, 6, 2, 4, 4, 3, 5, 5, 5, 5, 5, 3, 6, 1, 6}, // 1999
	{0, 4, 6, 6, 6, 5, 4, 3, 4, 5, 3, 7, 3, 6, 3, 3, 4, 3, 5, 6, 5, 5, 5, 1, 4, 2}, // 2000
	{1, 5, 6, 6, 6, 5, 3, 4, 2, 4, 5, 3, 7, 5, 5, 6, 4, 5, 5, 4, 6, 3, 5, 4, 4, 5}, // 2001
	{0, 4, 4, 5, 5, 4, 6, 2, 6, 3, 5, 6, 5, 6, 7, 6, 6, 6, 3, 5, 1, 4, 3, 4, 5}, // 2002
	{0, 5, 5, 3, 3, 2, 4, 3, 8, 5, 8, 6, 6, 6, 5, 6, 7, 7, 6, 6, 2, 4, 2, 4, 5, 4}, // 2003
	{1, 5, 4, 3, 3, 2, 1, 5, 3, 6, 6, 6, 6, 5, 4, 6, 4, 6, 5, 5, 5, 4, 5, 5, 5, 5}, // 2004
	{0, 6, 3, 6, 3, 4, 4, 4, 4, 4, 4, 4, 5, 4, 5, 2, 5, 1, 5, 4, 6, 7, 7, 7, 7, 6}, // 2005
	{1, 3, 7, 2, 8, 4, 6, 5, 5, 4, 4, 3, 4, 5, 3, 6, 2, 4, 2, 4, 5, 6, 7, 7, 6}, // 2006
	{1, 4, 5, 3, 6, 5, 8, 7, 6, 5, 4, 3, 4, 3, 4, 5, 4, 4, 3, 3, 4, 5, 4, 6, 3, 7}, // 2007
	{0, 4, 6, 6, 6, 6, 7, 5, 6, 6, 3, 7, 2, 5, 2, 4, 3, 4, 5, 5, 6, 5, 4, 2, 5, 2}, // 2008
	{1, 7, 5, 7, 7, 6, 4, 4, 4, 3, 6, 3, 7, 2, 5, 4, 3, 6, 5, 6, 7, 6, 4, 4, 1}, // 2009
	{1, 5, 3, 6, 6, 6, 5, 4, 2, 3, 3, 4, 7, 4, 6, 6, 5, 6, 5, 4, 6, 3, 6, 3, 4, 4}, // 2010
	{0, 4, 4, 5, 4, 5, 5, 3, 7, 4, 7, 6, 6, 7, 7, 7, 8, 6, 5, 6, 1, 5, 1, 5, 4, 4}, // 2011
	{1, 5, 4, 3, 3, 3, 1, 6, 2, 7, 5, 7, 5, 5, 6, 6, 7, 7, 7, 5, 5, 2, 4, 3, 5, 6}, // 2012
	{0, 5, 5, 4, 1, 2, 2, 1, 5, 5, 6, 5, 4, 4, 5, 4, 7, 4, 6, 6, 5, 5, 5, 4, 5}, // 2013
	{0, 5, 4, 6, 2, 6, 3, 4, 3, 3, 4, 4, 4, 5, 5, 3, 6, 2, 5, 3, 6, 6, 6, 6, 7, 5}, // 2014
	{1, 4, 5, 2, 6, 4, 7, 6, 6, 4, 3, 3, 3, 4, 3, 5, 2, 4, 1, 3, 4, 5, 6, 7, 6, 6}, // 2015
	{0, 5, 4, 6, 4, 7, 7, 7, 7, 5, 4, 4, 1, 3, 3, 3, 4, 2, 3, 4, 3, 4, 5, 4, 7, 3}, // 2016
	{1, 6, 5, 5, 6, 6, 5, 6, 5, 5, 5, 2, 6, 2, 4, 3, 3, 5, 5, 6, 6, 6, 3, 6, 2}, // 2017
	{1, 7, 4, 7, 7, 6, 6, 5, 3, 3, 5, 3, 7, 2, 6, 3, 4, 4, 4, 6, 6, 5, 5, 4, 2, 5}, // 2018
	{0, 2, 6, 7, 6, 7, 6, 4, 5, 3, 4, 6, 5, 7, 5, 6, 5, 4, 5, 5, 3, 5, 2, 4, 3, 3}, // 2019
	{1, 4, 5, 4, 6, 5, 4, 6, 3, 7, 4, 6, 5, 5, 7, 7, 7, 6, 6, 3, 6, 0, 4, 3, 5, 5}, // 2020
	{0, 5, 4, 4, 2, 2, 4, 3, 7, 4, 7, 6, 6, 6, 6, 6, 8, 7, 7, 6, 3, 5, 2, 4, 5}, // 2021
	{0, 5, 6, 4, 3, 3, 2, 2, 5, 4, 7, 6, 6, 6, 6, 5, 7, 5, 7, 5, 6, 6, 4, 5, 5, 4}, // 2022
	{1, 5, 4, 3, 5, 1, 5, 3, 4, 5, 4, 5, 6, 6, 5, 6, 2, 6, 2, 6, 4, 6, 6, 6, 6, 5}, // 2023
	{0, 5, 3, 6, 2, 7, 5, 7, 5, 5, 4, 4, 4, 4, 5, 3, 5, 1, 3, 1, 3, 5, 6, 7, 7, 5}, // 2024
	{1, 5, 5, 3, 7, 5, 7, 6, 5, 5, 4, 2, 4, 3, 4, 4, 3, 5, 4, 5, 5, 4, 4, 6, 3}, // 2025
	{1, 7, 4, 5, 5, 5, 5, 5, 5, 5, 5, 3, 6, 2, 5, 2, 4, 5, 5, 6, 6, 6, 5, 6, 2, 6}, // 2026
	{0, 2, 7, 6, 7, 7, 6, 4, 4, 4, 4, 6, 3, 7, 3, 4, 4, 3, 6, 5, 6, 7, 5, 3, 5, 1}, // 2027
	{1, 5, 5, 7, 7, 6, 5, 5, 2, 4, 3, 4, 7, 4, 6, 5, 4, 5, 5, 4, 6, 3, 6, 4, 4}, // 2028
	{1, 5, 5, 5, 6, 4, 4, 5, 3, 6, 2, 6, 5, 4, 6, 6, 6, 7, 6, 5, 6, 2, 5, 2, 5, 5}, // 2029
	{0, 6, 5, 5, 3, 3, 3, 2, 6, 3, 8, 5, 6, 5, 5, 6, 7, 7, 8, 7, 5, 5, 1, 5, 4, 5}, // 2030
	{1, 6, 5, 4, 4, 2, 2, 3, 3, 6, 5, 7, 6, 5, 5, 6, 4, 7, 4, 6, 5, 5, 6, 5, 5, 6}, // 2031
	{0, 6, 4, 6, 3, 7, 3, 6, 5, 5, 5, 5, 5, 5, 5, 3, 6, 1, 5, 2, 5, 5, 6, 6, 6}, // 2032
	{0, 5, 4, 5, 2, 7, 4, 8, 6, 6, 5, 4, 3, 4, 5, 5, 6, 3, 5, 1, 3, 4, 5, 6, 6, 6}, // 2033
	{1, 5, 4, 3, 5, 3, 8, 6, 7, 7, 6, 4, 5, 3, 4, 4, 4, 4, 4, 5, 4, 4, 4, 5, 4, 6}, // 2034
	{0, 3, 6, 4, 5, 6, 6, 6, 7, 6, 6, 7, 3, 6, 2, 5, 3, 4, 6, 5, 6, 6, 5, 3, 5, 1}, // 2035
	{1, 6, 4, 7, 6, 7, 5, 5, 3, 4, 5, 4, 8, 3, 6, 3, 3, 5, 5, 6, 7, 5, 5, 4, 3}, // 2036
	{1, 5, 3, 6, 6, 6, 6, 5, 3, 4, 2, 4, 5, 4, 7, 5, 5, 5, 4, 5, 5, 4, 6, 3, 4, 4}, // 2037
	{0, 4, 5, 4, 4, 5, 5, 4, 6, 3, 7, 3, 6, 6, 6, 7, 8, 8, 7, 6, 4, 6, 1, 5, 2, 5}, // 2038
	{1, 6, 4, 3, 4, 2, 2, 4, 2, 7, 4, 7, 5, 6, 6, 6, 7, 8, 7, 7, 7, 3, 5, 3, 5, 6}, // 2039
	{0, 5, 6, 5, 3, 3, 2, 2, 5, 4, 6, 5, 5, 5, 5, 4, 6, 4, 7, 5, 6, 6, 5, 6, 6}, // 2040
	{0, 6, 5, 6, 3, 5, 2, 6, 3, 4, 4, 4, 5, 5, 5, 4, 6, 2, 6, 1, 6, 4, 7, 8, 7, 6}, // 2041
	{1, 6, 5, 4, 6, 3, 8, 5, 7, 6, 5, 4, 4, 3, 5, 5, 3, 5, 1, 3, 2, 5, 6, 6, 7, 7}, // 2042
	{0, 5, 6, 6, 4, 7, 6, 9, 8, 6, 6, 5, 4, 5, 3, 5, 4, 3, 4, 3, 4, 4, 4, 4, 6, 3}, // 2043
	{1, 7, 5, 7, 6, 6, 7, 6, 6, 6, 6, 4, 6, 2, 6, 2, 4, 5, 5, 6, 7, 6, 5, 5, 2}, // 2044
	{1, 6, 3, 8, 6, 8, 7, 6, 5, 4, 5, 5, 6, 3, 6, 2, 4, 3, 4, 6, 5, 6, 6, 5, 3, 4}, // 2045
	{0, 1, 5, 5, 6, 8, 6, 6, 5, 3, 5, 4, 5, 7, 5, 6, 5, 4, 6, 5, 5, 6, 3, 5, 4, 4}, // 2046
	{1, 4, 4, 4, 5, 4, 4, 5, 3, 7, 4, 7, 5, 6, 6, 7, 7, 7, 7, 5, 6, 1, 5, 1, 5}, // 2047
	{1, 5, 5, 5, 5, 2, 3, 2, 2, 6, 3, 7, 4, 6, 5, 5, 6, 7, 7, 8, 6, 4, 6, 2, 5, 4}, // 2048
	{0, 6, 6, 5, 4, 4, 0, 2, 3, 2, 6, 4, 6, 5, 5, 5, 6, 5, 7, 5, 7, 6, 5, 6, 5, 6}, // 2049
	{1, 6, 5, 5, 5, 2, 6, 2, 5, 4, 4, 5, 5, 5, 6, 5, 4, 6, 1, 6, 3, 6, 7, 7, 7, 7}, // 2050
	{0, 5, 4, 6, 2, 8, 4, 8, 6, 6, 5, 5, 4, 4, 5, 5, 5, 2, 5, 1, 3, 4, 5, 6, 6}, // 2051
	{0, 6, 6, 4, 4, 6, 4, 8, 6, 7, 7, 5, 4, 4, 2, 4, 4, 4, 5, 4, 5, 5, 5, 6, 6, 4}, // 2052
	{1, 7, 5, 7, 6, 6, 7, 6, 6, 6, 5, 5, 6, 2, 6, 2, 4, 3, 4, 6, 6, 6, 6, 6, 4, 5}, // 2053
	{0, 2, 7, 5, 8, 8, 7, 6, 5, 4, 5, 5, 5, 7, 3, 6, 3, 3, 4, 5, 6, 7, 5, 5, 4, 2}, // 2054
	{1, 5, 4, 7, 7, 7, 7, 6, 4, 5, 3, 5, 6, 5, 7, 6, 5, 6, 4, 5, 5, 3, 6, 2, 5}, // 2055
	{1, 4, 4, 5, 5, 5, 6, 5, 5, 6, 4, 7, 4, 6, 5, 6, 6, 7, 7, 7, 7, 3, 6, 1, 5, 3}, // 2056
	{0, 6, 5, 5, 4, 3, 2, 3, 5, 2, 8, 4, 7, 6, 5, 6, 7, 7, 9, 9, 7, 6, 3, 6, 3, 5}, // 2057
	{1, 6, 6, 6, 4, 2, 2, 2, 2, 5, 4, 7, 5, 6, 6, 5, 6, 7, 5, 8, 5, 7, 6, 6, 6, 6}, // 2058
	{0, 5, 6, 6, 3, 6, 2, 6, 4, 5, 5, 5, 6, 6, 5, 5, 6, 2, 6, 1, 6, 4, 6, 7, 7}, // 2059
	{0, 6, 5, 5, 3, 6, 3, 8, 5, 7, 6, 5, 5, 4, 4, 5, 5, 4, 5, 2, 5, 2, 4, 6, 6, 7}, // 2060
	{1, 7, 5, 5, 5, 4, 7, 5, 7, 7, 5, 5, 5, 3, 4, 3, 5, 4, 4, 5, 4, 4, 4, 5, 5, 6}, // 2061
	{0, 4, 7, 4, 6, 6, 6, 7, 6, 6, 6, 5, 4, 6, 2, 6, 2, 5, 5, 5, 6, 6, 6, 4, 5, 1}, // 2062
	{1, 6, 3, 7, 6, 8, 7, 6, 5, 5, 5, 4, 6, 4, 7, 3, 4, 3, 4, 6, 6, 6, 6, 5, 4}, // 2063
	{1, 5, 2, 6, 5, 7, 8, 7, 5, 6, 3, 5, 4, 4, 7, 5, 6, 5, 4, 5, 4, 4, 6, 3, 6, 4}, // 2064
	{0, 4, 5, 5, 5, 6, 5, 5, 6, 3, 7, 3, 7, 4, 6, 7, 7, 7, 8, 7, 6, 6, 2, 7, 3, 6}, // 2065
	{1, 6, 6, 6, 4, 3, 3, 3, 2, 6, 3, 8, 5, 6, 5, 5, 7, 8, 7, 8, 7, 5, 6, 3, 6, 5}, // 2066
	{0, 6, 7, 6, 5, 4, 2, 3, 4, 3, 7, 6, 6, 6, 5, 5, 6, 5, 7, 4, 6, 5, 5, 6, 5}, // 2067
	{0, 6, 7, 5, 5, 6, 4, 7, 3, 6, 5, 5, 6, 5, 5, 6, 6, 4, 6, 2, 5, 3, 6, 6, 7, 7}, // 2068
	{1, 7, 5, 4, 6, 3, 8, 5, 8, 6, 7, 5, 5, 5, 5, 5, 5, 6, 3, 5, 1, 4, 4, 5, 7, 6}, // 2069
	{0, 5, 5, 3, 4, 6, 5, 8, 7, 8, 7, 6, 6, 5, 4, 5, 5, 6, 5, 4, 5, 4, 4, 4, 5}, // 2070
	{0, 4, 6, 4, 6, 4, 6, 6, 6, 6, 7, 7, 6, 7, 3, 6, 2, 5, 3, 4, 5, 5, 6, 6, 5, 4}, // 2071
	{1, 6, 2, 7, 5, 8, 7, 7, 6, 5, 4, 5, 6, 5, 7, 3, 6, 2, 4, 4, 4, 6, 6, 5, 5, 4}, // 2072
	{0, 3, 5, 3, 7, 6, 7, 7, 6, 3, 4, 3, 5, 5, 5, 7, 6, 6, 6, 5, 6, 6, 4, 7, 3, 5}, // 2073
	{1, 4, 4, 5, 5, 4, 5, 4, 4, 6, 2, 7, 3, 6, 6, 7, 7, 8, 8, 8, 7, 4, 7, 2, 7}, // 2074
	{1, 4, 7, 7, 6, 4, 4, 2, 2, 4, 2, 7, 4, 6, 5, 5, 6, 6, 7, 9, 7, 7, 6, 4, 6, 4}, // 2075
	{0, 7, 7, 6, 6, 5, 2, 3, 1, 3, 4, 4, 6, 5, 5, 5, 5, 5, 6, 4, 8, 5, 6, 7, 6, 7}, // 2076
	{1, 7, 6, 6, 6, 4, 6, 3, 5, 3, 5, 5, 4, 5, 5, 5, 5, 5, 2, 6, 2, 5, 5, 7, 7, 7}, // 2077
	{0, 6, 6, 5, 3, 7, 3, 9, 6, 8, 7, 5, 5, 5, 5, 6, 6, 4, 5, 2, 4, 2, 5, 5, 6}, // 2078
	{0, 6, 7, 5, 5, 5, 5, 8, 6, 9, 7, 7, 7, 5, 4, 5, 3, 6, 4, 4, 5, 4, 4, 4, 4, 4}, // 2079
	{1, 6, 5, 8, 4, 8, 7, 7, 7, 7, 7, 7, 7, 4, 6, 2, 6, 2, 4, 4, 5, 6, 5, 5, 5, 4}, // 2080
	{0, 2, 6, 3, 8, 7, 8, 7, 6, 5, 5, 6, 5, 7, 5, 7, 3, 5, 4, 4, 6, 6, 6, 6, 4, 3}, // 2081
	{1, 4, 2, 6, 6, 7, 8, 6, 6, 6, 3, 6, 5, 6, 7, 6, 7, 6, 5, 6, 6, 5, 6, 3, 6}, // 2082
	{1, 4, 4, 5, 5, 5, 6, 5, 6, 6, 4, 7, 4, 7, 5, 6, 7, 7, 8, 8, 7, 6, 6, 2, 6, 3}, // 2083
	{0, 6, 6, 6, 6, 4, 3, 2, 3, 3, 6, 3, 7, 4, 6, 5, 6, 7, 8, 8, 9, 7, 5, 6, 3, 6}, // 2084
	{1, 6, 7, 8, 6, 4, 3, 0, 2, 2, 3, 5, 5, 6, 5, 4, 6, 5, 5, 8, 5, 8, 6, 6, 6, 6}, // 2085
	{0, 6, 6, 5, 5, 6, 3, 6, 3, 6, 5, 5, 6, 5, 6, 6, 6, 5, 6, 2, 6, 3, 6, 6, 6}, // 2086
	{0, 7, 6, 5, 5, 5, 3, 8, 4, 8, 6, 6, 6, 4, 4, 6, 5, 6, 6, 3, 5, 2, 4, 5, 6, 8}, // 2087
	{1, 7, 6, 6, 4, 4, 6, 5, 8, 7, 7, 7, 5, 5, 5, 3, 5, 3, 5, 4, 4, 5, 5, 5, 6, 6}, // 2088
	{0, 5, 7, 4, 7, 5, 6, 7, 6, 7, 6, 6, 5, 6, 3, 6, 2, 5, 4, 5, 6, 6, 7, 6, 5}, // 2089
	{0, 4, 5, 3, 8, 6, 8, 8, 7, 7, 5, 5, 5, 7, 5, 7, 3, 6, 3, 3, 5, 5, 7, 6, 6, 6}, // 2090
	{1, 4, 3, 6, 5, 9, 8, 8, 8, 6, 5, 6, 4, 6, 6, 6, 7, 6, 6, 6, 4, 5, 6, 4, 5, 3}, // 2091
	{0, 5, 5, 5, 6, 6, 5, 6, 6, 4, 6, 3, 7, 3, 6, 6, 7, 7, 8, 8, 8, 7, 4, 7, 2, 7}, // 2092
	{1, 5, 7, 7, 5, 4, 4, 2, 3, 4, 3, 7, 3, 6, 5, 5, 6, 6, 7, 9, 8, 7, 6, 3, 6}, // 2093
	{1, 4, 6, 7, 6, 6, 5, 2, 3, 2, 3, 6, 5, 7, 6, 5, 6, 5, 5, 7, 5, 7, 5, 6, 6, 5}, // 2094
	{0, 6, 6, 5, 6, 6, 3, 6, 3, 6, 4, 6, 5, 5, 6, 6, 6, 5, 5, 3, 6, 2, 6, 5, 7, 7}, // 2095
	{1, 7, 6, 5, 5, 4, 6, 4, 8, 5, 7, 6, 4, 5, 4, 5, 6, 6, 5, 5, 2, 5, 2, 5, 6, 6}, // 2096
	{0, 7, 6, 4, 4, 4, 4, 7, 6, 8, 8, 6, 6, 5, 4, 6, 4, 6, 5, 5, 6, 4, 5, 5, 5}, // 2097
	{0, 5, 6, 4, 7, 4, 7, 6, 6, 7, 7, 7, 7, 7, 5, 6, 3, 5, 3, 5, 5, 6, 7, 7, 5, 5}, // 2098
	{1, 5, 3, 6, 4, 8, 7, 9, 8, 6, 5, 6, 6, 6, 7, 4, 6, 3, 4, 3, 4, 6, 6, 6, 6, 4}, // 2099
	{0, 3, 4, 4, 6, 6, 8, 8, 6, 6, 5, 3, 5, 4, 5, 7, 5, 6, 6, 5, 7, 5, 5, 6, 4, 6}, // 2100
	{1, 5, 5, 6, 5, 5, 6, 4, 5, 5, 3, 7, 3, 6, 4, 6, 7, 7, 8, 9, 8, 6, 6, 2, 7}, // 2101
	{1, 3, 7, 7, 7, 7, 5, 3, 3, 3, 3, 7, 4, 7, 4, 6, 5, 6, 8, 8, 7, 8, 7, 5, 7, 3}, // 2102
	{0, 7, 6, 7, 8, 6, 5, 4, 2, 4, 4, 4, 6, 5, 6, 6, 4, 5, 6, 5, 7, 5, 8, 5, 6, 7}, // 2103
	{1, 7, 6, 8, 6, 6, 7, 4, 7, 3, 6, 5, 5, 5, 5, 5, 6, 6, 4, 6, 1, 6, 3, 6, 7}, // 2104
	{1, 7, 7, 6, 5, 4, 5, 3, 8, 5, 9, 6, 6, 7, 5, 6, 6, 6, 7, 6, 4, 6, 2, 4, 5, 6}, // 2105
	{0, 7, 6, 5, 5, 2, 4, 5, 5, 8, 7, 7, 8, 6, 5, 6, 4, 6, 4, 6, 5, 5, 5, 4, 5, 6}, // 2106
	{1, 6, 4, 6, 3, 7, 6, 7, 7, 6, 8, 7, 6, 6, 7, 4, 6, 1, 5, 3, 5, 6, 5, 6, 6, 5}, // 2107
	{0, 3, 5, 3, 8, 6, 9, 7, 7, 7, 6, 4, 5, 6, 6, 7, 4, 5, 3, 4, 5, 5, 7, 6, 5}, // 2108
	{0, 5, 4, 3, 5, 4, 7, 7, 6, 7, 5, 4, 5, 4, 6, 6, 6, 7, 6, 6, 7, 5, 6, 5, 4, 6}, // 2109
	{1, 3, 5, 5, 5, 6, 5, 5, 6, 5, 4, 6, 3, 6, 3, 6, 6, 7, 8, 9, 8, 8, 7, 4, 6, 2}, // 2110
	{0, 7, 5, 7, 7, 6, 4, 4, 2, 3, 5, 3, 7, 3, 6, 5, 4, 6, 6, 7, 9, 7, 7, 7, 4, 7}, // 2111
	{1, 5, 8, 8, 7, 6, 5, 2, 3, 1, 3, 4, 4, 5, 4, 4, 6, 5, 4, 6, 4, 7, 5, 7, 7}, // 2112
	{1, 6, 7, 7, 6, 6, 5, 4, 6, 2, 7, 4, 5, 5, 5, 6, 6, 6, 6, 6, 3, 6, 2, 6, 6, 7}, // 2113
	{0, 8, 7, 6, 5, 4, 3, 6, 4, 9, 5, 8, 6, 5, 6, 5, 6, 7, 6, 5, 6, 2, 4, 3, 5, 7}, // 2114
	{1, 7, 7, 7, 4, 5, 5, 5, 8, 7, 9, 8, 7, 7, 5, 5, 6, 4, 6, 4, 5, 5, 4, 5, 5, 5}, // 2115
	{0, 5, 6, 4, 8, 5, 7, 6, 6, 8, 7, 7, 8, 6, 5, 6, 2, 5, 3, 5, 5, 5, 7, 6, 6}, // 2116
	{0, 5, 4, 2, 6, 4, 9, 7, 8, 8, 7, 6, 6, 6, 6, 7, 5, 7, 3, 4, 4, 4, 6, 5, 6, 6}, // 2117
	{1, 4, 3, 4, 3, 7, 6, 7, 8, 6, 6, 6, 4, 7, 5, 6, 7, 6, 7, 7, 5, 6, 5, 5, 5, 3}, // 2118
	{0, 6, 3, 5, 4, 4, 5, 6, 4, 6, 5, 4, 7, 3, 7, 5, 7, 7, 7, 8, 8, 7, 6, 6, 3}, // 2119
	{0, 7, 4, 7, 7, 7, 6, 4, 2, 2, 2, 3, 6, 3, 6, 4, 5, 6, 5, 7, 8, 7, 8, 7, 5, 6}, // 2120
	{1, 4, 7, 6, 7, 7, 5, 4, 3, 1, 3, 2, 3, 6, 5, 5, 6, 5, 6, 6, 5, 7, 5, 7, 6, 7}, // 2121
	{0, 7, 7, 6, 6, 5, 5, 5, 2, 6, 3, 5, 4, 5, 6, 6, 6, 7, 6, 5, 6, 2, 6, 3, 7, 8}, // 2122
	{1, 7, 7, 6, 4, 4, 5, 3, 8, 5, 9, 5, 6, 5, 4, 6, 5, 5, 6, 6, 3, 5, 2, 5, 6}, // 2123
	{1, 7, 8, 6, 5, 5, 3, 4, 6, 5, 8, 7, 7, 7, 5, 5, 5, 4, 6, 4, 5, 5, 4, 6, 5, 5}, // 2124
	{0, 7, 6, 5, 7, 4, 8, 5, 7, 6, 7, 7, 7, 6, 6, 6, 4, 6, 2, 5, 3, 5, 7, 5, 6, 5}, // 2125
	{1, 4, 4, 5, 3, 8, 6, 10, 8, 8, 7, 6, 6, 6, 6, 6, 7, 3, 5, 3, 4, 4, 5, 6, 5, 4}, // 2126
	{0, 4, 4, 3, 6, 5, 8, 8, 7, 8, 6, 5, 6, 4, 6, 6, 6, 6, 6, 6, 6, 5, 6, 6, 4}, // 2127
	{0, 6, 3, 6, 5, 6, 6, 6, 5, 7, 5, 5, 7, 3, 6, 3, 6, 5, 7, 7, 8, 8, 7, 6, 4, 6}, // 2128
	{1, 3, 6, 6, 7, 7, 6, 5, 4, 2, 3, 5, 3, 7, 3, 6, 4, 5, 6, 7, 8, 9, 7, 6, 6, 4}, // 2129
	{0, 6, 5, 7, 7, 6, 6, 5, 2, 4, 2, 3, 6, 5, 6, 5, 6, 7, 5, 5, 7, 5, 8, 4, 6, 7}, // 2130
	{1, 6, 7, 6, 5, 6, 6, 4, 7, 3, 6, 4, 5, 6, 5, 6, 6, 6, 6, 6, 3, 5, 2, 6, 5}, // 2131
	{1, 7, 8, 7, 5, 5, 4, 3, 6, 3, 8, 5, 7, 7, 5, 6, 6, 6, 7, 6, 6, 5, 3, 5, 4, 6}, // 2132
	{0, 7, 6, 7, 5, 3, 3, 4, 4, 6, 5, 8, 7, 6, 6, 5, 5, 5, 3, 6, 5, 6, 6, 5, 5, 5}, // 2133
	{1, 4, 6, 5, 4, 7, 4, 7, 6, 7, 7, 7, 7, 7, 6, 5, 6, 3, 5, 2, 5, 5, 6, 7, 6, 4}, // 2134
	{0, 4, 4, 3, 6, 3, 9, 7, 8, 8, 7, 6, 6, 5, 6, 7, 5, 6, 3, 4, 4, 4, 7, 6, 6}, // 2135
	{0, 5, 4, 4, 4, 4, 7, 6, 8, 8, 6, 6, 6, 3, 5, 4, 5, 6, 5, 6, 6, 6, 7, 5, 5, 6}, // 2136
	{1, 4, 6, 4, 5, 6, 5, 5, 6, 4, 5, 5, 4, 7, 3, 7, 5, 6, 7, 7, 8, 8, 7, 6, 6, 3}, // 2137
	{0, 7, 4, 8, 7, 7, 6, 5, 3, 4, 3, 3, 6, 3, 7, 3, 5, 5, 5, 7, 7, 7, 8, 6, 5}, // 2138
	{0, 6, 4, 8, 7, 8, 9, 6, 5, 5, 2, 4, 3, 4, 6, 4, 5, 5, 4, 5, 5, 5, 6, 3, 6, 5}, // 2139
	{1, 5, 7, 6, 6, 7, 6, 6, 6, 3, 7, 3, 5, 4, 4, 5, 6, 6, 7, 6, 5, 6, 2, 6, 3, 7}, // 2140
	{0, 7, 7, 7, 6, 4, 4, 4, 3, 7, 4, 8, 6, 6, 6, 4, 6, 6, 6, 7, 6, 4, 5, 2, 5, 6}, // 2141
	{1, 6, 7, 6, 5, 4, 3, 4, 5, 6, 9, 7, 8, 7, 5, 6, 5, 4, 5, 4, 6, 5, 5, 5, 5}, // 2142
	{1, 4, 6, 4, 5, 6, 3, 6, 4, 7, 7, 7, 7, 8, 6, 7, 7, 3, 6, 1, 4, 3, 5, 6, 6, 6}, // 2143
	{0, 5, 4, 3, 4, 2, 8, 6, 9, 7, 6, 7, 6, 5, 6, 6, 5, 6, 3, 6, 2, 4, 5, 5, 6, 5}, // 2144
	{1, 4, 4, 3, 3, 4, 4, 7, 8, 6, 7, 5, 5, 6, 4, 7, 6, 7, 7, 7, 7, 7, 5, 6, 5, 3}, // 2145
	{0, 6, 3, 5, 4, 5, 5, 5, 5, 6, 5, 5, 5, 3, 6, 3, 6, 6, 7, 8, 8, 8, 7, 6, 4}, // 2146
	{0, 6, 3, 7, 6, 7, 7, 5, 5, 4, 3, 3, 4, 4, 6, 2, 5, 3, 5, 6, 6, 8, 8, 7, 7, 6}, // 2147
	{1, 4, 7, 5, 8, 8, 6, 7, 4, 3, 4, 2, 3, 5, 4, 6, 5, 4, 6, 4, 6, 6, 4, 8, 5, 7}, // 2148
	{0, 7, 7, 7, 7, 5, 6, 5, 3, 6, 2, 6, 3, 5, 5, 5, 6, 7, 6, 6, 5, 2, 6, 3, 6, 6}, // 2149
	{1, 7, 8, 7, 6, 5, 5, 4, 7, 4, 9, 5, 8, 6, 5, 6, 5, 6, 7, 5, 5, 5, 2, 5, 4}, // 2150
	{1, 6, 7, 6, 6, 6, 4, 5, 4, 4, 7, 7, 8, 8, 6, 6, 5, 5, 5, 4, 6, 4, 4, 5, 4, 5}, // 2151
	{0, 6, 5, 6, 6, 4, 7, 4, 7, 6, 7, 8, 6, 7, 7, 6, 5, 6, 2, 5, 2, 4, 5, 5, 6, 5}, // 2152
	{1, 4, 3, 3, 2, 5, 3, 8, 7, 8, 8, 6, 6, 6, 6, 7, 7, 6, 6, 3, 5, 4, 5, 6, 5, 5}, // 2153
	{0, 4, 2, 2, 3, 3, 6, 5, 7, 8, 6, 6, 5, 4, 6, 4, 6, 6, 6, 7, 6, 5, 6, 5, 5}, // 2154
	{0, 5, 3, 6, 4, 5, 5, 5, 5, 5, 4, 5, 5, 3, 6, 2, 5, 4, 5, 6, 7, 8, 8, 6, 5, 6}, // 2155
	{1, 2, 6, 4, 8, 7, 7, 6, 4, 2, 3, 3, 3, 5, 3, 5, 3, 4, 5, 5, 7, 7, 8, 8, 6, 5}, // 2156
	{0, 6, 4, 7, 7, 7, 8, 5, 3, 4, 1, 3, 3, 3, 5, 4, 5, 5, 5, 6, 5, 5, 7, 4, 6}, // 2157
	{0, 6, 6, 7, 6, 7, 6, 5, 5, 5, 3, 6, 3, 6, 5, 5, 6, 6, 6, 7, 5, 5, 5, 2, 6, 4}, // 2158
	{1, 7, 8, 7, 7, 5, 4, 3, 5, 3, 8, 4, 7, 5, 5, 5, 4, 5, 6, 6, 6, 5, 4, 5, 3, 6}, // 2159
	{0, 7, 7, 8, 6, 5, 5, 2, 4, 5, 5, 8, 6, 7, 6, 4, 5, 5, 3, 5, 3, 5, 4, 5, 5, 5}, // 2160
	{1, 5, 6, 5, 5, 6, 4, 6, 5, 7, 7, 7, 7, 8, 7, 7, 7, 4, 6, 2, 5, 4, 4, 6, 5}, // 2161
	{1, 5, 4, 3, 3, 4, 2, 7, 5, 9, 8, 7, 7, 6, 7, 7, 7, 7, 6, 4, 5, 2, 4, 5, 4, 6}, // 2162
	{0, 5, 4, 4, 2, 3, 6, 5, 8, 8, 8, 7, 5, 5, 5, 4, 6, 6, 6, 7, 6, 6, 5, 5, 6, 5}, // 2163
	{1, 4, 5, 3, 5, 5, 5, 6, 5, 5, 6, 4, 5, 6, 3, 5, 3, 5, 5, 7, 8, 8, 8, 7, 6, 4}, // 2164
	{0, 6, 2, 8, 5, 8, 6, 5, 4, 4, 3, 4, 4, 3, 6, 3, 5, 4, 5, 6, 6, 7, 8, 7, 6}, // 2165
	{0, 5, 4, 7, 5, 7, 8, 7, 7, 4, 3, 4, 2, 4, 5, 5, 5, 5, 5, 5, 5, 5, 5, 4, 7, 4}, // 2166
	{1, 6, 6, 6, 7, 6, 6, 6, 5, 4, 6, 2, 6, 3, 4, 5, 5, 6, 6, 6, 5, 5, 2, 5, 2, 7}, // 2167
	{0, 7, 7, 8, 7, 5, 4, 3, 3, 5, 3, 7, 4, 5, 5, 4, 5, 4, 6, 6, 5, 4, 4, 2, 5, 4}, // 2168
	{1, 6, 7, 6, 6, 5, 3, 4, 3, 4, 7, 6, 8, 7, 6, 6, 4, 5, 6, 4, 6, 5, 5, 5, 4}, // 2169
	{1, 5, 5, 4, 5, 4, 3, 6, 3, 6, 5, 6, 7, 7, 7, 7, 6, 5, 6, 2, 5, 2, 5, 5, 6, 6}, // 2170
	{0, 5, 4, 4, 3, 2, 6, 4, 9, 7, 9, 7, 6, 6, 6, 6, 6, 6, 4, 6, 3, 4, 4, 5, 6, 5}, // 2171
	{1, 5, 4, 3, 3, 3, 3, 6, 5, 7, 7, 6, 6, 4, 4, 6, 4, 6, 5, 6, 8, 6, 5, 6, 5, 5}, // 2172
	{0, 6, 3, 6, 4, 5, 5, 5, 5, 5, 5, 5, 4, 3, 5, 2, 5, 3, 5, 6, 7, 7, 7, 6, 6}, // 2173
	{0, 5, 3, 7, 5, 8, 8, 8, 7, 5, 3, 3, 4, 4, 5, 3, 5, 2, 4, 5, 4, 6, 7, 6, 6, 5}, // 2174
	{1, 4, 6, 5, 7, 8, 8, 9, 6, 5, 4, 2, 4, 3, 4, 5, 4, 4, 5, 4, 5, 4, 4, 6, 4, 6}, // 2175
	{0, 5, 6, 7, 7, 6, 7, 5, 5, 5, 3, 6, 2, 4, 3, 4, 5, 5, 5, 6, 5, 4, 5, 1, 6, 4}, // 2176
	{1, 7, 7, 7, 6, 5, 3, 3, 4, 3, 7, 4, 8, 5, 6, 6, 5, 6, 7, 6, 6, 5, 3, 4, 3}, // 2177
	{1, 5, 6, 6, 7, 5, 3, 4, 2, 4, 5, 5, 8, 6, 7, 7, 4, 5, 5, 4, 5, 4, 5, 4, 5, 5}, // 2178
	{0, 5, 5, 6, 4, 5, 5, 3, 7, 4, 6, 6, 6, 7, 7, 6, 7, 5, 4, 5, 1, 5, 3, 5, 6, 5}, // 2179
	{1, 5, 4, 2, 2, 3, 2, 6, 4, 8, 7, 6, 7, 5, 6, 7, 7, 7, 7, 4, 6, 3, 4, 5, 5}, // 2180
	{1, 7, 5, 3, 2, 2, 2, 4, 4, 6, 6, 6, 7, 5, 5, 5, 3, 7, 6, 6, 7, 7, 7, 6, 5, 5}, // 2181
	{0, 5, 4, 5, 2, 5, 4, 5, 6, 6, 5, 6, 5, 5, 5, 3, 6, 2, 5, 5, 6, 8, 7, 7, 6, 5}, // 2182
	{1, 3, 5, 2, 8, 6, 7, 7, 5, 5, 3, 2, 4, 4, 3, 5, 2, 4, 3, 4, 6, 6, 8, 7, 6, 6}, // 2183
	{0, 6, 4, 7, 5, 8, 8, 6, 6, 4, 2, 3, 1, 3, 4, 3, 5, 4, 3, 5, 4, 5, 5, 3, 6}, // 2184
	{0, 5, 6, 7, 6, 7, 7, 5, 6, 5, 4, 6, 2, 5, 3, 5, 5, 5, 7, 6, 6, 5, 5, 2, 5, 2}, // 2185
	{1, 6, 6, 7, 8, 6, 5, 4, 3, 3, 6, 4, 8, 5, 6, 5, 4, 6, 4, 6, 6, 5, 4, 4, 2, 5}, // 2186
	{0, 5, 6, 8, 6, 7, 5, 3, 5, 4, 4, 7, 6, 7, 6, 5, 5, 3, 4, 5, 3, 5, 3, 4, 5, 4}, // 2187
	{1, 4, 6, 4, 5, 5, 3, 6, 3, 7, 6, 6, 7, 6, 6, 7, 7, 6, 6, 3, 5, 2, 4, 5, 5}, // 2188
	{1, 6, 5, 3, 3, 2, 2, 4, 3, 8, 6, 7, 7, 5, 6, 6, 7, 7, 6, 5, 6, 2, 5, 4, 4, 6}, // 2189
	{0, 5, 4, 4, 2, 2, 2, 3, 5, 6, 7, 8, 6, 6, 5, 5, 6, 5, 6, 6, 6, 5, 6, 5, 6, 4}, // 2190
	{1, 5, 5, 2, 5, 3, 4, 5, 4, 5, 5, 4, 5, 4, 4, 5, 2, 5, 3, 5, 7, 6, 7, 8, 6, 5}, // 2191
	{0, 5, 3, 6, 4, 8, 6, 7, 5, 3, 2, 2, 2, 3, 5, 3, 5, 2, 3, 4, 5, 7, 7, 5, 6}, // 2192
	{0, 4, 4, 5, 4, 7, 7, 8, 8, 5, 4, 4, 2, 3, 3, 3, 5, 5, 5, 6, 5, 6, 4, 4, 5, 3}, // 2193
	{1, 6, 5, 5, 6, 6, 5, 6, 5, 5, 6, 3, 6, 3, 4, 4, 4, 6, 5, 6, 7, 5, 4, 4, 2, 6}, // 2194
	{0, 4, 8, 8, 7, 7, 6, 3, 4, 4, 3, 7, 3, 7, 4, 4, 5, 4, 6, 6, 5, 5, 4, 3, 5, 3}, // 2195
	{1, 6, 6, 6, 7, 5, 4, 4, 2, 4, 5, 4, 7, 6, 6, 6, 4, 5, 5, 3, 5, 3, 6, 5, 4}, // 2196
	{1, 5, 6, 5, 6, 4, 4, 5, 3, 6, 4, 6, 6, 6, 7, 7, 7, 8, 6, 4, 5, 1, 5, 3, 5, 6}, // 2197
	{0, 5, 6, 5, 3, 2, 4, 3, 7, 5, 8, 7, 7, 7, 6, 6, 7, 6, 6, 6, 3, 5, 3, 4, 5, 4}, // 2198
	{1, 6, 4, 3, 2, 1, 3, 5, 5, 7, 7, 6, 7, 4, 5, 4, 3, 6, 4, 6, 6, 6, 6, 6, 5}, // 2199
	{1, 6, 4, 4, 5, 3, 5, 4, 5, 5, 5, 5, 5, 4, 5, 5, 2, 4, 2, 5, 5, 6, 7, 7, 6, 6}, // 2200
	{0, 5, 3, 5, 2, 7, 5, 8, 6, 5, 4, 3, 3, 4, 4, 4, 6, 3, 4, 4, 4, 6, 5, 6, 6, 4}, // 2201
	{1, 4, 4, 3, 5, 5, 7, 7, 6, 6, 4, 3, 4, 2, 3, 4, 4, 5, 5, 5, 5, 4, 4, 5, 4, 6}, // 2202
	{0, 4, 6, 6, 6, 6, 6, 5, 6, 5, 3, 5, 2, 5, 2, 3, 5, 4, 6, 6, 5, 5, 4, 2, 5}, // 2203
	{0, 2, 6, 6, 7, 8, 5, 4, 3, 3, 3, 5, 3, 6, 3, 4, 4, 3, 6, 5, 6, 6, 5, 4, 4, 3}, // 2204
	{1, 5, 4, 6, 7, 6, 5, 4, 1, 3, 2, 3, 6, 5, 7, 6, 5, 5, 4, 5, 5, 3, 5, 3, 4, 5}, // 2205
	{0, 4, 5, 5, 4, 5, 4, 3, 6, 3, 7, 5, 6, 7, 6, 6, 8, 6, 5, 5, 2, 5, 1, 4, 5, 5}, // 2206
	{1, 7, 5, 4, 3, 2, 2, 4, 3, 7, 6, 7, 7, 4, 6, 6, 6, 7, 5, 5, 5, 3, 4, 4, 5}, // 2207
	{1, 8, 5, 5, 4, 1, 2, 2, 3, 5, 5, 7, 6, 5, 5, 4, 3, 5, 3, 6, 4, 5, 6, 5, 5, 6}, // 2208
	{0, 5, 5, 5, 3, 5, 3, 5, 5, 5, 6, 6, 5, 6, 5, 4, 5, 2, 5, 3, 5, 6, 6, 7, 6, 5}, // 2209
	{1, 4, 4, 3, 7, 4, 8, 7, 6, 6, 5, 4, 3, 4, 4, 4, 3, 4, 2, 4, 4, 4, 6, 6, 5, 5}, // 2210
	{0, 4, 3, 5, 5, 7, 7, 8, 8, 5, 5, 4, 2, 4, 3, 4, 5, 4, 4, 5, 3, 5, 3, 4, 5}, // 2211
	{0, 3, 6, 4, 5, 6, 6, 6, 6, 5, 5, 5, 3, 6, 2, 5, 3, 4, 6, 6, 7, 7, 5, 4, 4, 1}, // 2212
	{1, 5, 4, 7, 7, 6, 6, 5, 3, 3, 4, 4, 7, 4, 6, 5, 3, 5, 4, 6, 6, 6, 6, 4, 2, 4}, // 2213
	{0, 3, 5, 6, 6, 8, 5, 4, 4, 2, 4, 5, 5, 7, 6, 6, 6, 4, 6, 4, 4, 5, 2, 4, 3}, // 2214
	{0, 4, 5, 5, 4, 5, 4, 3, 5, 2, 5, 3, 5, 6, 6, 7, 7, 7, 7, 6, 3, 4, 1, 4, 4, 5}, // 2215
	{1, 7, 5, 4, 4, 2, 2, 2, 2, 5, 3, 6, 6, 4, 6, 5, 6, 7, 6, 6, 6, 4, 5, 3, 4, 6}, // 2216
	{0, 5, 6, 4, 3, 2, 0, 1, 3, 3, 6, 6, 6, 6, 4, 4, 5, 3, 6, 4, 6, 7, 6, 6, 6, 4}, // 2217
	{1, 5, 4, 3, 4, 2, 5, 3, 4, 4, 5, 4, 5, 4, 4, 4, 2, 4, 1, 5, 4, 6, 7, 7, 7}, // 2218
	{1, 6, 5, 3, 5, 3, 8, 5, 8, 7, 5, 5, 3, 3, 3, 4, 3, 4, 1, 3, 2, 3, 6, 5, 6, 6}, // 2219
	{0, 4, 5, 4, 4, 7, 5, 8, 8, 6, 6, 4, 2, 3, 1, 3, 3, 4, 4, 4, 4, 5, 4, 5, 5, 4}, // 2220
	{1, 6, 4, 6, 6, 6, 7, 6, 5, 6, 5, 3, 5, 2, 5, 2, 3, 4, 4, 6, 6, 5, 5, 3, 2, 4}, // 2221
	{0, 3, 7, 7, 8, 8, 6, 6, 5, 4, 4, 5, 4, 6, 4, 5, 5, 3, 6, 4, 5, 5, 3, 3, 3}, // 2222
	{0, 2, 5, 5, 6, 8, 5, 7, 4, 3, 4, 3, 4, 6, 5, 7, 6, 4, 6, 3, 4, 4, 2, 5, 3, 4}, // 2223
	{1, 4, 5, 4, 6, 3, 5, 4, 3, 6, 3, 6, 4, 5, 6, 6, 7, 7, 6, 5, 5, 2, 4, 2, 5, 4}, // 2224
	{0, 5, 5, 3, 2, 1, 1, 1, 4, 3, 7, 6, 7, 7, 5, 7, 6, 6, 8, 6, 5, 5, 3, 4, 4, 4}, // 2225
	{1, 7, 4, 4, 3, 0, 1, 1, 2, 5, 5, 6, 7, 5, 6, 4, 4, 5, 4, 6, 5, 6, 6, 6, 5}, // 2226
	{1, 6, 4, 5, 4, 2, 5, 2, 5, 4, 4, 5, 5, 4, 5, 4, 4, 4, 1, 5, 2, 4, 6, 6, 7, 6}, // 2227
	{0, 5, 4, 4, 2, 5, 3, 7, 7, 6, 5, 3, 4, 3, 3, 3, 4, 3, 4, 2, 3, 5, 4, 7, 6, 6}, // 2228
	{1, 5, 3, 3, 4, 4, 7, 7, 6, 7, 4, 4, 2, 2, 3, 3, 4, 5, 4, 5, 5, 4, 5, 4, 4, 5}, // 2229
	{0, 3, 6, 5, 6, 6, 6, 6, 7, 5, 5, 5, 3, 5, 2, 3, 3, 4, 6, 5, 6, 6, 5, 4, 4}, // 2230
	{0, 1, 6, 5, 8, 8, 7, 7, 5, 4, 3, 4, 4, 5, 3, 5, 3, 2, 5, 3, 5, 5, 5, 5, 3, 3}, // 2231
	{1, 5, 3, 7, 7, 6, 7, 5, 4, 3, 1, 3, 3, 4, 6, 5, 5, 6, 3, 5, 4, 3, 4, 2, 4, 4}, // 2232
	{0, 5, 6, 5, 5, 6, 3, 4, 4, 3, 6, 4, 6, 6, 6, 7, 8, 6, 7, 5, 3, 4, 1, 5, 3}, // 2233
	{0, 5, 6, 4, 5, 3, 1, 2, 2, 2, 6, 4, 7, 6, 5, 7, 5, 6, 7, 6, 6, 6, 3, 4, 3, 5}, // 2234
	{1, 6, 5, 7, 4, 2, 2, 1, 2, 4, 4, 7, 6, 5, 6, 3, 4, 4, 3, 5, 4, 6, 5, 5, 6, 5}, // 2235
	{0, 4, 6, 4, 3, 4, 2, 5, 3, 4, 4, 5, 4, 5, 4, 5, 4, 2, 5, 1, 5, 5, 6, 7, 6, 6}, // 2236
	{1, 5, 4, 2, 4, 2, 6, 5, 7, 6, 4, 4, 3, 3, 4, 4, 4, 4, 2, 4, 3, 3, 6, 5, 6}, // 2237
	{1, 6, 4, 4, 3, 3, 6, 5, 8, 8, 6, 7, 4, 3, 4, 2, 4, 4, 4, 4, 4, 3, 5, 3, 5, 4}, // 2238
	{0, 3, 5, 3, 6, 5, 6, 7, 6, 5, 5, 5, 3, 5, 2, 4, 2, 4, 4, 4, 6, 6, 5, 4, 3, 2}, // 2239
	{1, 5, 3, 7, 6, 7, 7, 6, 4, 4, 3, 3, 5, 3, 5, 3, 4, 4, 3, 6, 5, 6, 5, 4, 3, 3}, // 2240
	{0, 2, 5, 5, 6, 8, 6, 5, 4, 2, 3, 3, 4, 6, 5, 7, 7, 4, 6, 4, 4, 5, 2, 4, 2}, // 2241
	{0, 4, 4, 4, 5, 5, 3, 4, 3, 3, 5, 2, 6, 5, 5, 6, 6, 7, 7, 6, 5, 5, 2, 5, 2, 5}, // 2242
	{1, 6, 5, 7, 5, 3, 2, 1, 1, 4, 3, 6, 5, 6, 5, 4, 6, 5, 6, 7, 5, 5, 5, 3, 5, 5}, // 2243
	{0, 5, 7, 5, 4, 3, 1, 2, 1, 2, 5, 5, 6, 6, 4, 5, 4, 4, 6, 3, 6, 5, 6, 6, 6, 6}, // 2244
	{1, 7, 5, 5, 4, 2, 5, 3, 5, 4, 5, 5, 5, 4, 6, 4, 3, 4, 1, 4, 2, 5, 6, 6, 7}, // 2245
	{1, 6, 4, 4, 4, 2, 6, 4, 8, 7, 7, 6, 4, 4, 4, 4, 4, 4, 3, 4, 2, 3, 4, 4, 6, 5}, // 2246
	{0, 4, 4, 3, 3, 4, 4, 7, 8, 7, 8, 5, 5, 3, 2, 3, 2, 4, 4, 3, 4, 5, 3, 5, 4, 4}, // 2247
	{1, 5, 3, 5, 4, 6, 6, 6, 6, 6, 4, 5, 4, 2, 4, 1, 3, 2, 3, 5, 5, 6, 6, 4, 3, 3}, // 2248
	{0, 1, 5, 5, 7, 8, 7, 6, 4, 4, 4, 4, 4, 6, 4, 5, 4, 3, 5, 3, 6, 5, 4, 4, 3}, // 2249
	{0, 2, 3, 2, 5, 6, 5, 7, 5, 3, 3, 2, 3, 5, 4, 6, 6, 5, 7, 4, 5, 4, 3, 4, 2, 4}, // 2250
	{1, 4, 5, 5, 5, 4, 5, 2, 3, 4, 2, 6, 3, 5, 5, 5, 7, 7, 6, 7, 5, 4, 4, 1, 4, 3}, // 2251
	{0, 6, 7, 4, 4, 3, 0, 1, 1, 2, 4, 3, 6, 5, 4, 6, 5, 7, 7, 7, 7, 6, 3, 5, 4}, // 2252
	{0, 5, 7, 4, 6, 3, 2, 2, -1, 1, 3, 3, 5, 5, 4, 6, 3, 5, 4, 4, 5, 4, 6, 6, 6, 6}, // 2253
	{1, 6, 5, 6, 4, 4, 4, 2, 5, 3, 5, 5, 5, 5, 6, 4, 4, 4, 0, 4, 1, 4, 4, 5, 8, 7}, // 2254
	{0, 7, 5, 3, 3, 5, 3, 7, 5, 7, 7, 5, 5, 3, 4, 4, 3, 4, 3, 2, 3, 3, 4, 6, 5, 7}, // 2255
	{1, 6, 4, 4, 4, 3, 6, 6, 8, 8, 5, 6, 3, 3, 2, 2, 4, 3, 4, 4, 4, 4, 5, 4, 5}, // 2256
	{1, 3, 3, 5, 4, 6, 6, 6, 7, 7, 6, 6, 5, 5, 5, 2, 5, 2, 3, 5, 5, 6, 5, 5, 4, 3}, // 2257
	{0, 2, 4, 2, 7, 7, 8, 8, 6, 6, 5, 4, 4, 6, 4, 6, 3, 3, 4, 3, 6, 4, 6, 5, 3, 2}, // 2258
	{1, 3, 2, 5, 5, 7, 8, 6, 7, 5, 3, 4, 3, 4, 5, 6, 6, 6, 5, 6, 4, 4, 3, 2, 4, 3}, // 2259
	{0, 3, 5, 4, 5, 5, 2, 4, 4, 2, 5, 2, 5, 5, 6, 7, 7, 7, 8, 7, 7, 5, 2, 4, 2}, // 2260
	{0, 5, 6, 5, 6, 3, 2, 1, 0, 1, 4, 3, 6, 4, 6, 6, 4, 7, 6, 7, 7, 5, 5, 5, 3, 5}, // 2261
	{1, 5, 6, 8, 4, 4, 2, 0, 2, 1, 2, 5, 5, 5, 6, 4, 6, 4, 4, 5, 3, 5, 4, 6, 6, 5}, // 2262
	{0, 5, 6, 3, 4, 3, 1, 5, 2, 4, 3, 4, 5, 4, 4, 5, 4, 4, 4, 1, 4, 2, 5, 6, 6, 8}, // 2263
	{1, 6, 4, 4, 3, 1, 5, 3, 7, 5, 5, 5, 3, 4, 3, 4, 4, 4, 2, 4, 2, 3, 5, 4, 7}, // 2264
	{1, 5, 5, 4, 3, 2, 4, 4, 6, 7, 6, 8, 5, 5, 3, 2, 3, 2, 4, 4, 4, 5, 5, 4, 5, 3}, // 2265
	{0, 3, 4, 3, 5, 4, 6, 7, 6, 6, 6, 5, 5, 5, 2, 4, 1, 3, 3, 4, 5, 5, 6, 5, 4, 3}, // 2266
	{1, 3, 2, 6, 5, 8, 9, 7, 6, 5, 4, 4, 4, 4, 5, 3, 4, 3, 2, 5, 3, 5, 5, 4, 4}, // 2267
	{1, 3, 2, 4, 4, 6, 7, 6, 8, 5, 4, 4, 2, 4, 4, 4, 6, 6, 5, 6, 3, 6, 4, 3, 4, 2}, // 2268
	{0, 5, 4, 4, 5, 6, 4, 5, 3, 3, 4, 2, 5, 3, 5, 5, 5, 7, 7, 7, 7, 5, 3, 4, 1, 4}, // 2269
	{1, 4, 5, 7, 5, 5, 4, 2, 2, 3, 3, 5, 4, 6, 6, 4, 6, 5, 7, 6, 6, 5, 4, 3, 5, 4}, // 2270
	{0, 5, 7, 5, 6, 4, 2, 2, 1, 3, 3, 4, 6, 5, 4, 6, 3, 5, 4, 4, 5, 4, 6, 6, 6}, // 2271
	{0, 6, 6, 5, 6, 3, 3, 4, 2, 5, 3, 4, 4, 5, 5, 5, 4, 5, 3, 3, 4, 1, 4, 5, 6, 7}, // 2272
	{1, 6, 5, 5, 2, 2, 3, 2, 6, 6, 7, 7, 5, 6, 4, 5, 5, 4, 4, 4, 2, 4, 3, 3, 6, 4}, // 2273
	{0, 6, 5, 3, 2, 2, 3, 5, 6, 7, 8, 6, 7, 4, 4, 3, 3, 4, 3, 4, 5, 4, 5, 5, 3, 5}, // 2274
	{1, 3, 3, 5, 3, 6, 5, 6, 6, 7, 5, 6, 5, 4, 4, 2, 4, 2, 3, 4, 4, 6, 5, 5, 4}, // 2275
	{1, 3, 1, 4, 3, 6, 7, 8, 7, 6, 5, 3, 3, 4, 5, 4, 6, 4, 4, 5, 4, 6, 5, 6, 5, 3}, // 2276
	{0, 3, 3, 2, 5, 5, 6, 7, 5, 6, 3, 3, 4, 3, 4, 5, 6, 6, 7, 5, 7, 4, 5, 5, 3, 5}, // 2277
	{1, 3, 5, 5, 5, 5, 6, 4, 5, 3, 3, 5, 3, 6, 4, 5, 6, 6, 7, 8, 6, 6, 5, 2, 5, 3}, // 2278
	{0, 5, 7, 6, 7, 4, 2, 2, 1, 1, 4, 2, 6, 4, 4, 5, 4, 7, 5, 7, 7, 6, 5, 6, 4}, // 2279
	{0, 6, 7, 7, 8, 5, 5, 2, 0, 2, 1, 2, 5, 4, 5, 6, 3, 5, 3, 4, 5, 3, 5, 4, 6, 6}, // 2280
	{1, 6, 6, 7, 4, 5, 4, 3, 5, 3, 5, 4, 5, 5, 5, 5, 6, 4, 4, 4, 1, 4, 2, 4, 6, 5}, // 2281
	{0, 7, 6, 4, 4, 3, 3, 6, 4, 8, 7, 6, 7, 4, 5, 4, 4, 5, 4, 3, 4, 2, 3, 5, 4, 7}, // 2282
	{1, 5, 5, 4, 2, 3, 4, 5, 7, 7, 7, 8, 4, 5, 3, 2, 4, 2, 3, 4, 4, 4, 5, 4, 5}, // 2283
	{1, 3, 4, 4, 3, 5, 4, 5, 6, 7, 6, 6, 5, 6, 5, 3, 4, 2, 4, 3, 4, 6, 5, 6, 5, 3}, // 2284
	{0, 3, 2, 2, 5, 5, 7, 7, 6, 6, 4, 4, 4, 4, 5, 6, 4, 5, 4, 3, 5, 3, 7, 4, 4, 4}, // 2285
	{1, 3, 2, 4, 3, 6, 7, 6, 8, 4, 4, 4, 3, 5, 5, 6, 7, 5, 5, 6, 4, 6, 3, 3, 4, 2}, // 2286
	{0, 5, 4, 4, 5, 5, 3, 5, 3, 3, 4, 2, 5, 2, 4, 5, 5, 7, 8, 7, 8, 6, 4, 5, 2}, // 2287
	{0, 5, 5, 6, 8, 6, 4, 2, 1, 1, 2, 2, 4, 3, 4, 5, 4, 6, 5, 7, 7, 6, 7, 5, 4, 5}, // 2288
	{1, 5, 5, 8, 5, 7, 4, 2, 2, 0, 2, 3, 4, 5, 6, 5, 7, 4, 6, 5, 4, 6, 4, 6, 6, 6}, // 2289
	{0, 6, 6, 5, 6, 3, 4, 5, 2, 5, 4, 5, 5, 4, 5, 6, 5, 5, 3, 3, 4, 2, 5, 6, 6}, // 2290
	{0, 8, 7, 7, 5, 4, 3, 4, 3, 7, 6, 7, 7, 4, 6, 3, 4, 4, 4, 4, 4, 2, 3, 3, 4, 7}, // 2291
	{1, 5, 7, 5, 3, 3, 3, 4, 6, 5, 8, 8, 6, 7, 3, 4, 3, 2, 4, 4, 5, 5, 5, 5, 6, 4}, // 2292
	{0, 5, 4, 3, 5, 3, 6, 5, 6, 6, 7, 6, 6, 5, 5, 5, 3, 4, 2, 4, 5, 5, 7, 5, 5, 4}, // 2293
	{1, 3, 2, 4, 3, 7, 8, 8, 9, 6, 6, 5, 5, 5, 6, 5, 5, 3, 4, 4, 3, 7, 3, 5, 4}, // 2294
	{1, 3, 2, 3, 3, 5, 6, 7, 9, 6, 7, 4, 3, 4, 3, 5, 5, 5, 6, 7, 5, 7, 4, 5, 4, 2}, // 2295
	{0, 4, 3, 4, 5, 5, 5, 5, 3, 5, 3, 3, 4, 2, 5, 4, 5, 6, 6, 7, 8, 7, 6, 5, 2, 5}, // 2296
	{1, 3, 6, 7, 6, 6, 4, 2, 2, 0, 2, 4, 3, 6, 4, 5, 6, 5, 7, 6, 7, 7, 5, 4, 5, 3}, // 2297
	{0, 5, 6, 6, 8, 5, 5, 3, 0, 2, 1, 3, 5, 5, 6, 6, 3, 6, 3, 4, 5, 4, 5, 5, 5}, // 2298
	{0, 6, 6, 6, 7, 5, 5, 4, 2, 5, 3, 5, 4, 3, 5, 5, 5, 5, 4, 4, 4, 2, 4, 3, 5, 7}, // 2299
	{1, 6, 7, 6, 3, 3, 2, 2, 5, 3, 7, 6, 5, 6, 3, 5, 4, 5, 5, 5, 4, 4, 2, 4, 6, 5}, // 2300
	{0, 7, 5, 4, 4, 2, 2, 3, 4, 7, 7, 7, 8, 4, 5, 3, 3, 4, 3, 5, 4, 4, 6, 6, 4, 7}, // 2301
	{1, 3, 4, 5, 4, 6, 5, 6, 7, 7, 7, 7, 5, 6, 5, 3, 4, 2, 3, 3, 3, 6, 5, 6, 5}, // 2302
	{1, 3, 3, 3, 2, 5, 6, 8, 9, 7, 8, 5, 5, 5, 5, 5, 5, 4, 5, 3, 3, 6, 3, 6, 5, 4}, // 2303
	{0, 4, 3, 3, 4, 5, 7, 8, 7, 9, 4, 4, 4, 3, 4, 4, 5, 6, 6, 5, 7, 4, 6, 4, 4, 4}, // 2304
	{1, 3, 5, 4, 5, 6, 6, 4, 6, 4, 5, 4, 4, 6, 4, 6, 5, 6, 7, 8, 7, 7, 5, 4, 4}, // 2305
	{1, 2, 5, 5, 6, 8, 6, 5, 3, 2, 3, 2, 3, 5, 4, 5, 5, 4, 7, 5, 7, 6, 6, 6, 4, 3}, // 2306
	{0, 5, 4, 6, 9, 6, 7, 4, 3, 2, 1, 2, 3, 3, 5, 5, 4, 6, 3, 6, 4, 4, 5, 4, 5, 6}, // 2307
	{1, 6, 7, 6, 5, 6, 4, 4, 4, 2, 5, 3, 4, 6, 5, 6, 6, 6, 7, 5, 3, 4, 2, 5, 6, 6}, // 2308
	{0, 8, 6, 6, 4, 2, 2, 3, 2, 6, 5, 7, 7, 5, 6, 4, 6, 5, 5, 5, 5, 3, 4, 4, 4}, // 2309
	{0, 8, 5, 8, 5, 4, 4, 2, 3, 6, 6, 8, 8, 5, 8, 3, 4, 4, 3, 4, 4, 4, 5, 4, 5, 6}, // 2310
	{1, 4, 6, 4, 3, 4, 4, 6, 6, 6, 7, 6, 6, 7, 5, 6, 4, 3, 4, 2, 4, 5, 5, 7, 6, 5}, // 2311
	{0, 4, 3, 3, 4, 3, 7, 7, 8, 7, 6, 5, 4, 3, 4, 5, 4, 5, 4, 3, 5, 4, 7, 5, 6, 5}, // 2312
	{1, 3, 2, 3, 2, 5, 6, 7, 9, 6, 7, 5, 4, 4, 3, 5, 6, 6, 6, 7, 5, 8, 4, 5, 4}, // 2313
	{1, 3, 4, 4, 4, 6, 5, 5, 6, 3, 5, 4, 4, 4, 3, 5, 3, 4, 6, 6, 8, 8, 6, 6, 5, 3}, // 2314
	{0, 5, 5, 7, 8, 7, 7, 4, 3, 2, 1, 2, 4, 3, 5, 4, 4, 6, 3, 7, 5, 7, 7, 5, 4, 5}, // 2315
	{1, 4, 6, 7, 7, 9, 5, 5, 3, 2, 2, 2, 3, 4, 5, 5, 7, 4, 6, 4, 5, 5, 3, 6, 5, 5}, // 2316
	{0, 7, 7, 6, 7, 4, 6, 4, 3, 6, 3, 5, 4, 5, 6, 5, 6, 7, 5, 4, 3, 1, 4, 3, 6}, // 2317
	{0, 8, 7, 7, 6, 4, 3, 3, 3, 6, 6, 8, 7, 6, 7, 3, 6, 5, 5, 5, 4, 3, 3, 2, 3, 6}, // 2318
	{1, 4, 8, 5, 5, 4, 2, 3, 4, 5, 8, 8, 7, 9, 4, 7, 3, 4, 4, 3, 5, 5, 4, 5, 6, 4}, // 2319
	{0, 6, 3, 4, 4, 3, 5, 4, 6, 7, 7, 7, 7, 5, 7, 5, 4, 4, 2, 3, 4, 4, 6, 5, 6, 5}, // 2320
	{1, 3, 3, 2, 2, 5, 5, 7, 8, 7, 7, 6, 6, 6, 6, 6, 6, 4, 4, 4, 4, 6, 3, 6, 4}, // 2321
	{1, 4, 3, 1, 1, 3, 4, 6, 8, 6, 9, 5, 6, 4, 3, 5, 5, 6, 6, 7, 7, 7, 5, 7, 4, 4}, // 2322
	{0, 5, 3, 4, 5, 5, 6, 5, 4, 5, 3, 4, 4, 3, 5, 3, 4, 5, 6, 8, 8, 7, 7, 5, 4, 4}, // 2323
	{1, 3, 6, 6, 7, 8, 6, 5, 3, 1, 2, 2, 2, 4, 3, 5, 5, 4, 7, 6, 8, 7, 6, 6, 5, 4}, // 2324
	{0, 6, 5, 6, 8, 6, 7, 4, 3, 2, 1, 3, 4, 4, 5, 6, 5, 6, 3, 7, 5, 4, 6, 5, 6}, // 2325
	{0, 7, 6, 8, 8, 6, 7, 4, 5, 5, 3, 6, 4, 5, 5, 4, 6, 6, 5, 6, 3, 3, 4, 2, 5, 6}, // 2326
	{1, 7, 9, 7, 6, 5, 3, 3, 4, 3, 7, 6, 7, 6, 4, 6, 4, 5, 6, 5, 5, 4, 3, 4, 5, 5}, // 2327
	{0, 8, 6, 8, 5, 3, 4, 3, 4, 6, 6, 7, 8, 6, 7, 3, 4, 4, 3, 4, 4, 4, 5, 5, 5}, // 2328
	{0, 6, 4, 6, 3, 4, 5, 4, 7, 7, 7, 8, 7, 7, 8, 6, 6, 4, 4, 3, 2, 4, 5, 5, 7, 5}, // 2329
	{1, 5, 3, 1, 2, 3, 4, 8, 8, 8, 9, 7, 7, 5, 6, 6, 6, 5, 5, 4, 3, 5, 4, 7, 4, 6}, // 2330
	{0, 4, 2, 3, 3, 2, 5, 6, 7, 9, 6, 7, 4, 4, 4, 4, 5, 6, 5, 6, 7, 5, 8, 4, 5, 4}, // 2331
	{1, 3, 5, 3, 4, 4, 5, 5, 6, 3, 6, 3, 4, 4, 3, 5, 5, 5, 7, 7, 9, 8, 7, 7, 5}, // 2332
	{1, 3, 5, 4, 7, 7, 6, 7, 4, 3, 2, 2, 2, 4, 4, 5, 4, 4, 7, 4, 8, 6, 7, 6, 6, 4}, // 2333
	{0, 5, 4, 7, 8, 7, 9, 5, 6, 3, 2, 3, 3, 3, 4, 5, 6, 6, 4, 7, 3, 5, 4, 3, 6, 5}, // 2334
	{1, 6, 7, 7, 7, 8, 4, 6, 4, 3, 5, 3, 5, 5, 4, 6, 6, 6, 8, 5, 5, 4, 2, 5, 4, 6}, // 2335
	{0, 8, 7, 8, 5, 3, 3, 3, 2, 5, 4, 6, 6, 5, 7, 3, 6, 5, 6, 5, 5, 4, 4, 4, 5}, // 2336
	{0, 7, 6, 9, 6, 6, 3, 2, 3, 4, 5, 8, 8, 7, 9, 5, 7, 3, 4, 4, 4, 5, 5, 5, 6, 5}, // 2337
	{1, 4, 7, 4, 5, 5, 4, 6, 5, 6, 7, 6, 7, 8, 7, 8, 5, 4, 4, 2, 4, 4, 5, 7, 5, 7}, // 2338
	{0, 5, 3, 4, 3, 3, 6, 6, 8, 9, 7, 8, 6, 6, 5, 5, 5, 6, 4, 5, 4, 4, 7, 4, 8, 4}, // 2339
	{1, 4, 3, 2, 3, 4, 4, 6, 8, 6, 9, 4, 6, 4, 3, 5, 5, 6, 7, 7, 7, 8, 5, 7, 4}, // 2340
	{1, 4, 4, 3, 5, 4, 5, 6, 6, 5, 7, 4, 5, 4, 4, 4, 3, 4, 6, 6, 9, 8, 8, 8, 5, 5}, // 2341
	{0, 4, 3, 6, 6, 8, 9, 7, 6, 4, 2, 3, 3, 4, 5, 4, 4, 5, 4, 7, 5, 8, 6, 6, 6, 5}, // 2342
	{1, 4, 5, 5, 7, 9, 6, 8, 4, 4, 3, 1, 3, 4, 5, 5, 6, 5, 7, 4, 6, 4, 5, 6, 5}, // 2343
	{1, 6, 7, 7, 7, 7, 5, 6, 4, 4, 4, 3, 5, 4, 4, 6, 5, 6, 6, 5, 7, 4, 3, 4, 3, 5}, // 2344
	{0, 7, 7, 9, 6, 5, 4, 3, 2, 4, 3, 7, 6, 6, 8, 4, 8, 4, 6, 6, 5, 5, 3, 3, 4, 4}, // 2345
	{1, 5, 9, 5, 8, 4, 3, 3, 3, 3, 6, 6, 8, 8, 6, 8, 4, 6, 4, 4, 4, 4, 5, 5, 6, 5}, // 2346
	{0, 7, 4, 7, 4, 5, 5, 4, 6, 5, 6, 7, 6, 6, 7, 5, 6, 4, 4, 4, 2, 4, 6, 5, 8}, // 2347
	{0, 6, 5, 4, 2, 2, 4, 3, 7, 8, 7, 9, 6, 7, 5, 5, 7, 5, 6, 5, 5, 5, 6, 4, 9, 4}, // 2348
	{1, 7, 4, 2, 2, 2, 3, 5, 6, 6, 9, 5, 7, 4, 4, 5, 4, 6, 5, 6, 7, 7, 6, 8, 5, 6}, // 2349
	{0, 5, 4, 5, 4, 5, 5, 6, 6, 7, 5, 6, 4, 5, 4, 3, 4, 3, 5, 7, 7, 8, 8, 7, 6, 4}, // 2350
	{1, 3, 6, 5, 7, 9, 7, 8, 4, 4, 3, 2, 3, 3, 3, 4, 4, 4, 6, 4, 8, 6, 7, 7, 5}, // 2351
	{1, 5, 6, 5, 7, 9, 8, 10, 6, 6, 3, 2, 2, 2, 4, 4, 5, 6, 7, 4, 7, 3, 5, 5, 4, 5}, // 2352
	{0, 5, 6, 7, 8, 7, 8, 5, 7, 5, 4, 6, 4, 5, 5, 5, 7, 6, 7, 7, 5, 5, 4, 2, 4, 4}, // 2353
	{1, 6, 8, 7, 9, 5, 4, 4, 4, 3, 6, 5, 7, 7, 5, 7, 4, 7, 5, 5, 6, 4, 4, 4, 4, 5}, // 2354
	{0, 7, 6, 10, 5, 6, 4, 2, 3, 4, 6, 8, 7, 6, 9, 4, 8, 4, 4, 4, 3, 4, 4, 4, 6}, // 2355
	{0, 6, 4, 6, 3, 5, 4, 4, 5, 5, 6, 7, 7, 8, 8, 7, 8, 5, 5, 4, 3, 4, 5, 5, 7, 5}, // 2356
	{1, 6, 5, 3, 2, 1, 2, 4, 6, 7, 9, 7, 8, 6, 7, 6, 6, 7, 6, 5, 5, 5, 4, 7, 4, 8}, // 2357
	{0, 4, 4, 3, 2, 2, 3, 5, 6, 8, 7, 9, 4, 6, 4, 4, 5, 5, 6, 6, 7, 7, 8, 5, 7, 4}, // 2358
	{1, 5, 5, 4, 5, 4, 5, 6, 6, 5, 6, 4, 5, 3, 3, 4, 3, 5, 6, 6, 9, 8, 8, 8, 6}, // 2359
	{1, 5, 5, 4, 6, 7, 7, 9, 6, 6, 3, 2, 2, 2, 3, 4, 3, 4, 5, 3, 8, 5, 8, 7, 6, 6}, // 2360
	{0, 5, 4, 6, 7, 8, 9, 7, 9, 5, 4, 2, 2, 3, 4, 4, 5, 5, 4, 7, 3, 6, 4, 4, 5, 5}, // 2361
	{1, 6, 7, 7, 8, 8, 6, 7, 4, 5, 5, 3, 5, 4, 4, 5, 5, 6, 6, 5, 7, 4, 3, 3, 3}, // 2362
	{1, 6, 7, 7, 10, 7, 6, 5, 3, 3, 4, 4, 7, 5, 6, 6, 3, 7, 3, 6, 6, 5, 4, 3, 3, 4}, // 2363
	{0, 6, 5, 9, 6, 8, 5, 4, 3, 2, 4, 6, 6, 8, 9, 6, 8, 4, 6, 4, 4, 5, 4, 4, 5, 5}, // 2364
	{1, 5, 7, 4, 6, 4, 5, 5, 5, 6, 7, 6, 8, 8, 8, 9, 7, 8, 5, 4, 4, 2, 4, 6, 5, 8}, // 2365
	{0, 6, 4, 4, 2, 3, 4, 5, 7, 8, 9, 10, 7, 8, 6, 7, 6, 6, 5, 5, 4, 5, 6, 4, 8}, // 2366
	{0, 4, 6, 4, 2, 2, 2, 3, 5, 7, 7, 9, 6, 8, 4, 5, 5, 4, 6, 6, 7, 8, 8, 7, 8, 5}, // 2367
	{1, 6, 4, 4, 4, 3, 5, 5, 5, 5, 6, 5, 6, 4, 4, 4, 3, 4, 5, 5, 7, 7, 9, 8, 7, 6}, // 2368
	{0, 4, 3, 5, 4, 8, 8, 7, 8, 5, 4, 3, 3, 4, 4, 5, 5, 4, 4, 6, 4, 9, 6, 7, 5, 5}, // 2369
	{1, 4, 5, 5, 7, 8, 7, 10, 6, 7, 4, 3, 3, 3, 4, 5, 5, 5, 7, 5, 7, 4, 6, 4, 5}, // 2370
	{1, 6, 6, 6, 8, 7, 7, 8, 5, 6, 4, 4, 5, 3, 4, 5, 3, 7, 6, 7, 7, 6, 5, 4, 3, 4}, // 2371
	{0, 5, 7, 10, 7, 8, 6, 4, 3, 2, 3, 5, 5, 6, 7, 5, 8, 4, 8, 6, 6, 6, 4, 4, 5, 4}, // 2372
	{1, 5, 8, 6, 9, 5, 5, 4, 3, 3, 4, 5, 7, 7, 7, 8, 4, 8, 4, 5, 4, 4, 4, 6, 5, 6}, // 2373
	{0, 6, 6, 7, 4, 6, 5, 4, 6, 5, 7, 7, 6, 8, 8, 7, 8, 5, 5, 3, 3, 4, 4, 5, 8}, // 2374
	{0, 6, 7, 6, 3, 3, 3, 3, 5, 6, 8, 9, 6, 8, 5, 7, 6, 6, 6, 6, 5, 5, 5, 4, 8, 5}, // 2375
	{1, 8, 5, 4, 3, 2, 2, 3, 5, 6, 8, 6, 8, 4, 6, 4, 4, 5, 5, 6, 6, 7, 7, 8, 5, 7}, // 2376
	{0, 4, 5, 4, 4, 5, 5, 6, 7, 6, 6, 7, 5, 6, 4, 4, 4, 3, 4, 6, 6, 8, 7, 8, 7, 5}, // 2377
	{1, 4, 4, 4, 6, 7, 8, 10, 6, 7, 4, 3, 4, 4, 4, 4, 3, 4, 5, 3, 8, 4, 8, 5, 5}, // 2378
	{1, 5, 4, 4, 6, 6, 7, 10, 7, 9, 4, 5, 2, 2, 3, 3, 4, 5, 6, 5, 7, 3, 6, 4, 4, 4}, // 2379
	{0, 4, 5, 7, 7, 7, 7, 5, 7, 4, 5, 4, 3, 4, 4, 4, 6, 5, 8, 8, 7, 7, 4, 4, 3, 3}, // 2380
	{1, 6, 7, 7, 10, 6, 6, 4, 3, 3, 4, 4, 7, 6, 6, 7, 4, 8, 4, 7, 5, 5, 5, 4, 3}, // 2381
	{1, 5, 6, 6, 10, 6, 9, 5, 4, 3, 3, 5, 6, 6, 7, 8, 6, 9, 3, 6, 4, 4, 4, 4, 4, 6}, // 2382
	{0, 6, 5, 7, 4, 6, 4, 4, 5, 4, 6, 6, 6, 8, 7, 8, 9, 6, 8, 5, 4, 4, 3, 5, 7, 6}, // 2383
	{1, 9, 5, 4, 4, 2, 2, 3, 3, 6, 8, 7, 9, 5, 8, 6, 7, 7, 6, 6, 5, 5, 5, 7, 5, 9}, // 2384
	{0, 5, 7, 4, 2, 2, 1, 3, 5, 7, 7, 9, 6, 8, 4, 5, 5, 4, 6, 6, 7, 7, 7, 7, 9}, // 2385
	{0, 5, 6, 4, 4, 5, 4, 5, 6, 6, 7, 7, 5, 7, 4, 5, 4, 3, 3, 4, 4, 8, 6, 9, 8, 7}, // 2386
	{1, 7, 5, 4, 6, 6, 8, 10, 8, 9, 4, 5, 3, 3, 3, 3, 4, 4, 4, 4, 7, 3, 8, 5, 7, 5}, // 2387
	{0, 5, 4, 5, 5, 7, 8, 8, 11, 5, 7, 3, 4, 3, 3, 4, 5, 5, 6, 7, 5, 8, 3, 5, 4, 4}, // 2388
	{1, 5, 6, 6, 7, 7, 7, 8, 5, 7, 4, 5, 5, 4, 5, 6, 4, 7, 6, 8, 7, 5, 5, 3, 2}, // 2389
	{1, 4, 5, 6, 10, 8, 9, 6, 4, 5, 4, 4, 6, 5, 6, 7, 4, 8, 3, 8, 5, 6, 6, 4, 3, 4}, // 2390
	{0, 4, 5, 8, 6, 10, 5, 5, 3, 3, 3, 4, 5, 7, 7, 6, 9, 4, 8, 4, 5, 4, 4, 5, 6, 5}, // 2391
	{1, 6, 6, 5, 7, 3, 5, 3, 3, 5, 5, 6, 7, 6, 8, 8, 7, 9, 5, 6, 4, 3, 4, 5, 5, 8}, // 2392
	{0, 6, 7, 4, 2, 2, 1, 2, 5, 6, 8, 9, 7, 8, 6, 8, 7, 6, 7, 6, 5, 4, 4, 4, 8}, // 2393
	{0, 4, 8, 4, 4, 2, 1, 2, 3, 4, 6, 8, 6, 8, 4, 6, 3, 5, 5, 4, 6, 7, 7, 7, 8, 5}, // 2394
	{1, 8, 4, 5, 4, 4, 5, 4, 5, 6, 6, 5, 6, 4, 5, 2, 3, 3, 2, 4, 5, 6, 9, 8, 8, 7}, // 2395
	{0, 5, 4, 3, 4, 6, 7, 7, 9, 6, 7, 3, 3, 3, 3, 4, 4, 3, 4, 5, 3, 8, 5, 9, 5, 6}, // 2396
	{1, 4, 4, 4, 5, 6, 7, 10, 6, 9, 5, 5, 3, 3, 3, 4, 4, 5, 6, 5, 7, 4, 7, 4, 5}, // 2397
	{1, 6, 5, 6, 8, 8, 8, 9, 6, 8, 5, 6, 4, 4, 4, 3, 4, 6, 4, 7, 7, 6, 6, 4, 3, 4}, // 2398
	{0, 4, 6, 9, 7, 10, 7, 7, 5, 3, 4, 4, 4, 6, 6, 5, 7, 3, 8, 5, 7, 5, 4, 5, 4, 3}, // 2399
	{1, 5, 6, 7, 11, 6, 9, 5, 4, 4, 3, 4, 6, 7, 8, 8, 6, 9, 4, 7, 3, 4, 4, 4, 4}, // 2400
	{1, 5, 5, 6, 7, 4, 7, 3, 5, 5, 5, 7, 7, 7, 9, 7, 9, 9, 7, 8, 5, 4, 3, 3, 4, 6}, // 2401
	{0, 6, 8, 5, 4, 3, 1, 2, 3, 4, 7, 8, 7, 10, 5, 8, 6, 8, 7, 6, 6, 5, 5, 5, 7, 5}, // 2402
	{1, 10, 4, 7, 3, 2, 1, 1, 3, 5, 6, 7, 9, 5, 9, 3, 5, 5, 4, 5, 6, 6, 7, 8, 7, 8}, // 2403
	{0, 4, 6, 4, 4, 4, 3, 4, 5, 6, 6, 6, 5, 7, 4, 5, 4, 3, 4, 5, 4, 8, 6, 9, 7}, // 2404
	{0, 6, 5, 3, 3, 5, 5, 7, 9, 6, 8, 5, 5, 4, 3, 4, 4, 5, 4, 4, 3, 7, 4, 9, 6, 7}, // 2405
	{1, 6, 5, 4, 5, 5, 7, 9, 7, 11, 5, 7, 3, 3, 3, 3, 4, 5, 5, 6, 7, 5, 7, 4, 6, 4}, // 2406
	{0, 5, 5, 6, 7, 8, 7, 7, 8, 5, 6, 3, 4, 3, 2, 3, 5, 3, 7, 6, 8, 8, 6, 5, 3, 4}, // 2407
	{1, 5, 6, 7, 10, 7, 9, 5, 4, 3, 3, 3, 5, 5, 5, 6, 4, 7, 3, 8, 5, 6, 5, 4, 4}, // 2408
	{1, 4, 4, 6, 9, 6, 11, 5, 6, 3, 3, 4, 4, 5, 7, 7, 6, 9, 4, 8, 3, 5, 4, 4, 4, 5}, // 2409
	{0, 5, 7, 7, 6, 8, 4, 6, 4, 4, 5, 5, 6, 7, 6, 8, 7, 7, 9, 5, 6, 4, 3, 4, 5, 5}, // 2410
	{1, 9, 6, 8, 5, 2, 3, 2, 2, 5, 6, 7, 8, 5, 8, 5, 7, 6, 6, 7, 5, 5, 4, 5, 5, 9}, // 2411
	{0, 5, 9, 4, 5, 2, 1, 2, 4, 5, 6, 8, 6, 9, 4, 7, 4, 5, 5, 5, 5, 7, 7, 6, 7}, // 2412
	{0, 5, 8, 3, 5, 4, 4, 5, 5, 6, 7, 6, 6, 7, 5, 6, 4, 5, 3, 3, 3, 6, 5, 9, 7, 7}, // 2413
	{1, 6, 4, 4, 3, 4, 7, 8, 8, 10, 7, 8, 4, 5, 4, 4, 4, 4, 4, 3, 4, 3, 8, 4, 8, 5}, // 2414
	{0, 5, 4, 3, 4, 5, 7, 7, 10, 6, 10, 4, 5, 2, 3, 3, 4, 5, 6, 7, 6, 8, 4, 7, 4, 5}, // 2415
	{1, 5, 5, 5, 6, 7, 7, 7, 5, 7, 4, 6, 4, 3, 4, 4, 3, 6, 4, 8, 7, 6, 7, 3, 3}, // 2416
	{1, 3, 3, 5, 9, 8, 10, 6, 7, 5, 3, 4, 4, 4, 6, 6, 4, 7, 3, 9, 4, 7, 5, 4, 4, 3}, // 2417
	{0, 3, 4, 6, 5, 10, 6, 9, 4, 4, 3, 3, 4, 5, 6, 7, 9, 5, 9, 3, 7, 3, 4, 4, 4, 5}, // 2418
	{1, 6, 6, 6, 7, 4, 6, 2, 4, 3, 4, 5, 5, 5, 8, 6, 8, 9, 6, 7, 5, 4, 4, 4, 4}, // 2419
	{1, 8, 5, 8, 5, 4, 3, 1, 2, 3, 3, 6, 7, 6, 8, 5, 9, 6, 8, 7, 7, 6, 5, 5, 5, 7}, // 2420
	{0, 5, 9, 4, 7, 3, 1, 1, 1, 2, 5, 6, 6, 9, 4, 8, 3, 5, 4, 5, 5, 5, 6, 7, 8, 6}, // 2421
	{1, 9, 5, 7, 4, 5, 5, 4, 6, 6, 5, 6, 6, 5, 7, 3, 5, 3, 3, 3, 4, 4, 8, 6, 9, 7}, // 2422
	{0, 6, 5, 3, 4, 4, 6, 7, 9, 7, 9, 5, 5, 4, 3, 5, 4, 4, 3, 4, 3, 6, 4, 9, 5}, // 2423
	{0, 8, 4, 4, 4, 4, 5, 6, 9, 7, 10, 5, 7, 3, 3, 3, 3, 4, 5, 5, 5, 6, 5, 7, 3, 5}, // 2424
	{1, 4, 4, 5, 6, 7, 8, 8, 8, 8, 6, 8, 4, 5, 4, 3, 3, 5, 3, 7, 6, 7, 7, 4, 4, 2}, // 2425
	{0, 3, 3, 5, 6, 10, 8, 9, 6, 5, 4, 3, 4, 5, 5, 5, 5, 3, 7, 3, 8, 5, 6, 5, 3, 3}, // 2426
	{1, 4, 4, 5, 9, 6, 11, 4, 6, 3, 2, 3, 4, 5, 6, 7, 6, 9, 4, 8, 3, 5, 3, 4, 4}, // 2427
	{1, 5, 4, 5, 6, 5, 6, 3, 5, 3, 3, 4, 4, 5, 7, 7, 8, 9, 8, 9, 5, 6, 3, 2, 4, 5}, // 2428
	{0, 4, 9, 5, 6, 3, 1, 2, 0, 3, 4, 5, 6, 8, 5, 9, 4, 8, 7, 6, 7, 5, 4, 4, 5, 5}, // 2429
	{1, 9, 5, 10, 4, 5, 2, 1, 2, 3, 4, 5, 7, 5, 9, 3, 7, 3, 4, 4, 4, 5, 6, 6, 7, 8}, // 2430
	{0, 6, 8, 3, 6, 4, 4, 4, 4, 5, 6, 5, 6, 7, 4, 6, 3, 4, 3, 4, 4, 6, 5, 10, 7}, // 2431
	{0, 8, 7, 3, 4, 3, 4, 6, 6, 7, 9, 5, 7, 3, 4, 4, 3, 4, 3, 4, 3, 5, 3, 9, 5, 9}, // 2432
	{1, 5, 6, 4, 3, 4, 6, 7, 8, 10, 6, 10, 4, 6, 3, 3, 3, 3, 4, 5, 6, 5, 7, 4, 7, 3}, // 2433
	{0, 5, 4, 5, 6, 7, 7, 8, 7, 6, 8, 5, 6, 4, 4, 3, 3, 2, 5, 4, 7, 6, 6, 6, 3, 4}, // 2434
	{1, 3, 4, 6, 9, 8, 11, 6, 7, 4, 3, 4, 3, 5, 5, 5, 4, 6, 2, 8, 3, 7, 4, 4, 3}, // 2435
	{1, 3, 3, 4, 6, 6, 10, 6, 9, 4, 4, 3, 3, 4, 5, 6, 7, 9, 6, 9, 4, 7, 3, 4, 3, 3}, // 2436
	{0, 4, 5, 5, 5, 7, 3, 7, 2, 4, 4, 4, 5, 6, 6, 8, 7, 8, 9, 6, 8, 4, 4, 3, 3, 4}, // 2437
	{1, 7, 5, 9, 5, 4, 3, 0, 2, 3, 4, 5, 7, 6, 9, 4, 9, 5, 7, 7, 5, 6, 5, 4, 4}, // 2438
	{1, 7, 5, 10, 4, 7, 2, 2, 1, 1, 2, 4, 5, 5, 8, 4, 9, 3, 6, 4, 4, 5, 6, 6, 7, 7}, // 2439
	{0, 7, 9, 4, 7, 3, 3, 3, 3, 4, 5, 5, 6, 6, 5, 7, 4, 6, 3, 3, 2, 4, 4, 8, 6, 9}, // 2440
	{1, 7, 6, 5, 3, 3, 4, 5, 7, 9, 6, 9, 5, 6, 3, 4, 4, 4, 4, 3, 3, 2, 6, 3, 9, 5}, // 2441
	{0, 7, 4, 3, 2, 3, 5, 6, 8, 7, 11, 4, 8, 2, 3, 2, 3, 3, 4, 5, 6, 7, 4, 7, 3}, // 2442
	{0, 6, 3, 4, 5, 5, 6, 8, 7, 7, 7, 5, 7, 3, 5, 2, 3, 2, 4, 2, 7, 6, 7, 7, 5, 4}, // 2443
	{1, 3, 3, 4, 5, 6, 10, 7, 9, 6, 5, 5, 4, 4, 5, 4, 5, 6, 3, 8, 3, 8, 5, 6, 4, 3}, // 2444
	{0, 2, 3, 4, 5, 9, 6, 10, 5, 7, 3, 4, 3, 5, 5, 7, 7, 6, 9, 4, 8, 3, 6, 3, 4, 4}, // 2445
	{1, 6, 5, 7, 6, 5, 7, 3, 6, 3, 4, 4, 5, 5, 6, 5, 9, 8, 7, 9, 4, 6, 3, 3, 3}, // 2446
	{1, 5, 5, 9, 6, 7, 4, 2, 2, 1, 3, 4, 5, 5, 8, 4, 9, 5, 9, 6, 6, 6, 5, 4, 4, 5}, // 2447
	{0, 5, 10, 5, 9, 4, 4, 2, 1, 1, 3, 4, 6, 7, 5, 8, 3, 8, 4, 5, 4, 5, 5, 6, 6, 6}, // 2448
	{1, 7, 4, 8, 3, 6, 3, 4, 5, 5, 5, 7, 6, 6, 7, 4, 7, 3, 4, 3, 3, 3, 5, 4, 8, 6}, // 2449
	{0, 7, 5, 3, 3, 2, 3, 6, 7, 7, 9, 5, 8, 3, 5, 4, 4, 4, 3, 4, 3, 5, 3, 9, 4}, // 2450
	{0, 9, 4, 4, 3, 2, 3, 4, 6, 6, 9, 5, 10, 3, 5, 2, 3, 2, 3, 3, 5, 6, 5, 7, 3, 7}, // 2451
	{1, 2, 5, 3, 4, 4, 6, 5, 7, 6, 6, 7, 4, 7, 3, 4, 3, 3, 3, 6, 4, 8, 6, 6, 6, 2}, // 2452
	{0, 3, 2, 3, 5, 8, 6, 10, 5, 6, 4, 3, 3, 3, 4, 5, 5, 4, 7, 2, 9, 3, 8, 4, 3, 3}, // 2453
	{1, 2, 3, 4, 6, 6, 10, 5, 9, 4, 5, 2, 3, 3, 4, 6, 6, 8, 5, 9, 3, 7, 2, 4, 3}, // 2454
	{1, 4, 4, 5, 5, 5, 6, 3, 6, 2, 4, 3, 3, 3, 5, 4, 8, 6, 8, 8, 6, 8, 4, 4, 3, 4}, // 2455
	{0, 5, 9, 6, 9, 5, 3, 2, 0, 1, 1, 3, 4, 6, 4, 8, 3, 8, 5, 7, 7, 6, 6, 5, 5, 5}, // 2456
	{1, 8, 6, 11, 4, 8, 3, 2, 1, 1, 3, 4, 6, 6, 8, 4, 8, 2, 6, 3, 4, 4, 4, 5, 7, 7}, // 2457
	{0, 6, 9, 4, 7, 3, 4, 4, 4, 5, 6, 4, 7, 5, 5, 6, 3, 5, 2, 2, 1, 3, 3, 8, 6}, // 2458
	{0, 9, 6, 6, 5, 2, 3, 4, 5, 6, 9, 6, 8, 3, 6, 3, 4, 4, 3, 3, 2, 3, 2, 6, 3, 9}, // 2459
	{1, 4, 7, 4, 3, 2, 3, 5, 7, 8, 7, 10, 5, 8, 3, 5, 2, 3, 3, 4, 5, 5, 7, 4, 7, 2}, // 2460
	{0, 6, 2, 3, 4, 5, 5, 7, 6, 7, 8, 6, 7, 4, 5, 3, 3, 2, 5, 3, 7, 5, 8, 6, 4}, // 2461
	{0, 4, 2, 3, 3, 6, 6, 10, 7, 10, 5, 5, 4, 4, 4, 4, 5, 4, 5, 2, 7, 2, 8, 3, 6, 3}, // 2462
	{1, 2, 2, 2, 4, 4, 8, 5, 9, 4, 6, 3, 3, 3, 4, 5, 7, 7, 6, 9, 4, 9, 3, 6, 2, 3}, // 2463
	{0, 3, 5, 4, 6, 5, 3, 6, 1, 5, 1, 4, 3, 4, 4, 7, 6, 8, 8, 8, 9, 5, 6, 3, 3, 3}, // 2464
	{1, 6, 5, 9, 5, 6, 4, 1, 2, 0, 3, 4, 5, 5, 8, 3, 8, 4, 8, 6, 7, 6, 5, 4, 4}, // 2465
	{1, 5, 5, 9, 5, 10, 4, 5, 1, 1, 1, 2, 3, 5, 6, 4, 8, 3, 7, 2, 5, 4, 4, 5, 6, 6}, // 2466
	{0, 7, 8, 5, 8, 2, 5, 3, 4, 3, 4, 3, 5, 4, 6, 6, 4, 6, 3, 3, 1, 3, 3, 6, 5, 10}, // 2467
	{1, 6, 7, 5, 2, 3, 2, 3, 5, 6, 7, 9, 5, 8, 3, 5, 4, 4, 4, 3, 3, 3, 5, 3, 9, 4}, // 2468
	{0, 9, 3, 5, 3, 2, 3, 4, 6, 7, 9, 5, 9, 3, 6, 2, 3, 2, 3, 3, 4, 5, 5, 7, 3}, // 2469
	{0, 7, 2, 6, 3, 4, 5, 6, 6, 7, 7, 6, 8, 3, 6, 2, 3, 2, 2, 2, 6, 3, 8, 5, 6, 5}, // 2470
	{1, 2, 3, 2, 4, 6, 9, 7, 10, 6, 7, 4, 4, 4, 4, 5, 4, 5, 3, 6, 2, 8, 3, 8, 3, 3}, // 2471
	{0, 2, 2, 2, 4, 6, 5, 10, 5, 9, 3, 5, 3, 3, 3, 5, 6, 6, 8, 5, 9, 3, 7, 2, 4, 2}, // 2472
	{1, 3, 3, 5, 5, 5, 6, 3, 6, 3, 5, 3, 4, 4, 6, 4, 8, 6, 8, 8, 6, 7, 3, 4, 2}, // 2473
	{1, 3, 4, 7, 5, 9, 4, 4, 2, 0, 2, 2, 4, 4, 6, 3, 8, 3, 9, 4, 8, 6, 5, 4, 4, 4}, // 2474
	{0, 5, 8, 5, 10, 3, 7, 1, 1, 0, 0, 2, 3, 5, 5, 7, 3, 8, 1, 5, 3, 4, 4, 4, 5, 7}, // 2475
	{1, 6, 6, 8, 3, 6, 2, 4, 3, 4, 3, 5, 4, 7, 5, 6, 8, 4, 6, 2, 3, 2, 3, 3, 8, 5}, // 2476
	{0, 9, 6, 4, 4, 1, 2, 3, 4, 6, 8, 5, 8, 3, 7, 3, 4, 5, 4, 4, 3, 4, 3, 7, 3}, // 2477
	{0, 10, 4, 7, 3, 3, 3, 3, 4, 6, 8, 6, 10, 4, 8, 1, 5, 1, 2, 2, 4, 4, 5, 7, 4, 8}, // 2478
	{1, 2, 6, 2, 4, 3, 5, 5, 7, 6, 6, 8, 5, 7, 3, 5, 2, 2, 2, 5, 3, 7, 5, 7, 7, 4}, // 2479
	{0, 4, 1, 2, 3, 6, 6, 9, 6, 9, 4, 5, 3, 4, 5, 4, 4, 4, 6, 2, 8, 3, 9, 4, 6}, // 2480
	{0, 3, 3, 2, 2, 5, 5, 9, 6, 10, 5, 7, 3, 3, 3, 4, 4, 6, 7, 6, 9, 4, 8, 2, 6, 2}, // 2481
	{1, 3, 3, 5, 4, 6, 6, 4, 7, 2, 6, 2, 4, 3, 4, 3, 6, 5, 8, 7, 7, 9, 5, 5, 3, 3}, // 2482
	{0, 4, 6, 5, 10, 5, 7, 3, 1, 1, 0, 2, 2, 4, 3, 7, 2, 9, 3, 8, 5, 6, 5, 4, 3, 4}, // 2483
	{1, 6, 5, 9, 5, 9, 3, 5, 1, 1, 2, 2, 4, 5, 7, 4, 9, 3, 8, 2, 5, 3, 4, 3, 6}, // 2484
	{1, 5, 6, 7, 4, 7, 2, 5, 2, 3, 3, 5, 3, 6, 4, 6, 6, 5, 7, 2, 4, 1, 2, 2, 6, 4}, // 2485
	{0, 10, 5, 7, 4, 2, 3, 2, 3, 5, 6, 6, 9, 4, 8, 3, 6, 4, 4, 4, 3, 2, 2, 4, 3, 9}, // 2486
	{1, 3, 8, 3, 4, 2, 1, 2, 3, 5, 6, 9, 5, 9, 2, 7, 2, 3, 2, 3, 3, 5, 5, 5, 8, 3}, // 2487
	{0, 7, 2, 4, 2, 4, 4, 6, 4, 7, 7, 6, 7, 4, 6, 3, 4, 2, 3, 2, 6, 3, 8, 5, 5}, // 2488
	{0, 5, 2, 2, 1, 3, 5, 9, 6, 11, 5, 8, 4, 4, 4, 4, 5, 4, 5, 3, 6, 2, 8, 3, 7, 2}, // 2489
	{1, 3, 2, 2, 2, 4, 7, 5, 10, 4, 9, 3, 4, 2, 2, 3, 4, 5, 6, 7, 5, 9, 3, 7, 3, 5}, // 2490
	{0, 2, 3, 4, 6, 4, 5, 6, 3, 6, 1, 4, 2, 3, 2, 4, 2, 6, 5, 8, 8, 6, 7, 4, 3, 2}, // 2491
	{1, 4, 5, 9, 5, 9, 4, 4, 2, 0, 2, 2, 3, 3, 6, 3, 8, 2, 9, 4, 8, 5, 5, 4, 4}, // 2492
	{1, 4, 4, 8, 5, 11, 4, 7, 1, 2, 1, 1, 2, 3, 5, 4, 8, 3, 9, 2, 6, 2, 4, 3, 5, 5}, // 2493
	{0, 7, 7, 6, 8, 4, 7, 2, 5, 3, 4, 4, 6, 3, 6, 5, 6, 6, 3, 6, 1, 2, 1, 4, 3, 8}, // 2494
	{1, 5, 9, 5, 5, 3, 1, 3, 3, 5, 6, 9, 4, 9, 3, 8, 3, 5, 5, 3, 4, 3, 4, 3, 7}, // 2495
	{1, 4, 10, 3, 7, 3, 2, 1, 3, 3, 6, 8, 7, 10, 4, 9, 2, 5, 2, 3, 3, 4, 4, 5, 6, 3}, // 2496
	{0, 8, 2, 6, 2, 4, 3, 5, 6, 8, 7, 8, 8, 6, 8, 3, 5, 2, 3, 1, 4, 2, 7, 4, 7, 4}, // 2497
	{1, 3, 3, 0, 2, 2, 6, 6, 10, 6, 10, 4, 6, 4, 4, 5, 4, 5, 2, 5, 2, 8, 2, 9, 3, 5}, // 2498
	{0, 3, 1, 1, 1, 4, 4, 8, 4, 9, 3, 7, 2, 3, 2, 3, 4, 5, 7, 6, 8, 4, 9, 2, 5}, // 2499
	{0, 2, 3, 3, 4, 4, 5, 5, 4, 6, 2, 5, 2, 3, 3, 4, 3, 7, 4, 9, 7, 8, 8, 4, 5, 2}, // 2500
	{1, 4, 2, 5, 2, 8, 4, 7, 3, 4, 3, 2, 3, 3, 3, 2, 4, 1, 7, 4, 9, 8, 9, 7, 5, 4}, // 2501
	{0, 3, 4, 3, 9, 4, 11, 3, 7, 2, 2, 1, 1, 1, 3, 4, 2, 7, 3, 8, 5, 7, 4, 4, 4, 4}, // 2502
	{1, 4, 5, 7, 4, 9, 3, 7, 3, 4, 3, 3, 1, 4, 2, 5, 7, 7, 9, 5, 6, 2, 2, 2, 4}, // 2503
	{1, 3, 9, 5, 8, 6, 4, 4, 3, 4, 4, 5, 3, 7, 2, 8, 3, 8, 7, 6, 5, 2, 2, 1, 3, 1}, // 2504
	{0, 8, 4, 11, 5, 7, 4, 4, 2, 4, 4, 5, 8, 5, 10, 4, 8, 4, 4, 3, 2, 2, 2, 3, 3, 7}, // 2505
	{1, 4, 9, 3, 8, 4, 6, 4, 6, 4, 7, 6, 8, 8, 6, 9, 5, 5, 2, 1, 0, 3, 2, 6, 6, 6}, // 2506
	{0, 6, 4, 5, 2, 5, 3, 8, 4, 9, 4, 8, 5, 6, 7, 5, 5, 4, 3, 1, 4, 1, 8, 3, 8}, // 2507
	{0, 5, 5, 3, 2, 1, 3, 5, 4, 9, 5, 11, 5, 8, 4, 5, 5, 4, 5, 4, 6, 4, 9, 3, 8, 3}, // 2508
	{1, 5, 3, 4, 2, 4, 2, 5, 6, 4, 8, 4, 7, 4, 4, 3, 4, 2, 5, 6, 8, 10, 7, 10, 5, 5}, // 2509
	{0, 3, 3, 3, 7, 4, 9, 3, 6, 4, 3, 4, 3, 4, 2, 3, 1, 6, 2, 8, 6, 9, 8, 6, 6}, // 2510
	{0, 4, 4, 3, 6, 3, 10, 3, 9, 3, 5, 1, 3, 2, 3, 4, 3, 6, 4, 9, 4, 8, 5, 5, 5, 4}, // 2511
	{1, 3, 5, 5, 5, 8, 4, 8, 3, 6, 3, 4, 2, 3, 0, 5, 5, 7, 9, 6, 8, 4, 4, 2, 2, 2}, // 2512
	{0, 7, 5, 9, 6, 7, 5, 4, 4, 4, 4, 4, 6, 3, 8, 3, 8, 6, 7, 7, 4, 4, 2, 2, 1, 5}, // 2513
	{1, 2, 10, 4, 9, 4, 5, 2, 3, 3, 4, 5, 4, 9, 4, 9, 4, 6, 4, 3, 3, 3, 3, 4, 6}, // 2514
	{1, 4, 8, 4, 9, 3, 6, 4, 5, 3, 5, 4, 6, 6, 6, 9, 6, 7, 3, 2, 1, 1, 1, 5, 4, 8}, // 2515
	{0, 6, 5, 5, 3, 4, 3, 5, 3, 8, 4, 9, 5, 8, 6, 7, 7, 5, 5, 2, 3, 1, 5, 3, 8, 5}, // 2516
	{1, 8, 4, 3, 2, 2, 3, 3, 7, 3, 10, 4, 9, 4, 6, 4, 4, 4, 4, 5, 3, 7, 4, 9, 4, 7}, // 2517
	{0, 4, 5, 4, 5, 3, 5, 4, 4, 7, 4, 8, 3, 5, 3, 3, 1, 3, 3, 7, 7, 7, 9, 6, 7}, // 2518
	{0, 3, 4, 2, 6, 4, 8, 4, 7, 3, 4, 4, 3, 4, 3, 3, 2, 4, 1, 7, 4, 9, 7, 7, 7, 5}, // 2519
	{1, 4, 3, 3, 4, 8, 4, 11, 4, 7, 2, 3, 2, 3, 2, 3, 4, 3, 7, 3, 9, 4, 6, 4, 3, 4}, // 2520
	{0, 5, 4, 5, 7, 5, 9, 5, 8, 4, 5, 4, 4, 2, 4, 2, 6, 7, 6, 9, 4, 6, 2, 2, 1, 4}, // 2521
	{1, 3, 9, 5, 7, 5, 4, 4, 3, 4, 4, 5, 3, 6, 1, 8, 4, 7, 7, 5, 6, 3, 2, 0, 3}, // 2522
	{1, 2, 8, 4, 10, 4, 6, 3, 3, 2, 3, 3, 4, 7, 4, 9, 4, 8, 4, 5, 4, 2, 2, 3, 3, 3}, // 2523
	{0, 6, 3, 8, 4, 7, 3, 5, 3, 5, 3, 6, 5, 6, 9, 6, 9, 5, 5, 3, 2, 1, 3, 2, 7, 5}, // 2524
	{1, 6, 5, 3, 4, 2, 3, 3, 6, 4, 9, 4, 8, 5, 7, 7, 6, 6, 4, 3, 1, 4, 1, 7, 4, 8}, // 2525
	{0, 5, 5, 3, 2, 2, 2, 5, 3, 8, 4, 9, 4, 6, 4, 4, 4, 4, 5, 4, 6, 4, 9, 5, 8}, // 2526
	{0, 5, 6, 3, 4, 2, 4, 2, 4, 5, 3, 7, 4, 6, 4, 4, 2, 3, 2, 6, 5, 8, 10, 8, 9, 5}, // 2527
	{1, 6, 3, 4, 3, 7, 4, 8, 4, 5, 3, 3, 4, 3, 3, 3, 3, 1, 5, 2, 8, 6, 9, 8, 6, 5}, // 2528
	{0, 4, 3, 4, 7, 4, 11, 5, 9, 4, 5, 3, 2, 2, 3, 3, 3, 6, 3, 8, 4, 7, 4, 5, 3}, // 2529
	{0, 4, 3, 6, 5, 6, 8, 5, 9, 5, 6, 4, 3, 2, 4, 1, 5, 5, 6, 9, 6, 8, 4, 3, 2, 2}, // 2530
	{1, 3, 7, 5, 10, 6, 7, 6, 4, 4, 4, 4, 4, 5, 2, 7, 2, 8, 5, 7, 7, 5, 4, 1, 2, 1}, // 2531
	{0, 6, 3, 10, 4, 9, 4, 4, 3, 4, 3, 5, 6, 5, 8, 5, 9, 4, 6, 4, 3, 3, 2, 2, 3, 5}, // 2532
	{1, 3, 7, 2, 7, 3, 6, 3, 5, 3, 6, 4, 7, 7, 7, 10, 6, 7, 4, 2, 2, 2, 1, 5, 4}, // 2533
	{1, 8, 6, 5, 4, 3, 3, 2, 4, 4, 8, 4, 8, 4, 7, 6, 7, 7, 4, 5, 2, 3, 0, 6, 2, 9}, // 2534
	{0, 5, 7, 4, 3, 1, 1, 2, 3, 5, 3, 8, 3, 8, 4, 6, 4, 4, 4, 4, 5, 4, 7, 5, 9, 4}, // 2535
	{1, 7, 4, 4, 2, 4, 2, 3, 2, 4, 5, 3, 7, 3, 5, 3, 3, 1, 3, 3, 7, 8, 8, 9, 6, 6}, // 2536
	{0, 4, 3, 4, 5, 4, 9, 3, 7, 4, 4, 4, 4, 4, 3, 2, 1, 3, 1, 6, 3, 9, 7, 8, 6}, // 2537
	{0, 4, 3, 4, 4, 4, 8, 4, 11, 4, 7, 3, 3, 1, 2, 2, 3, 3, 3, 7, 3, 8, 4, 7, 5, 4}, // 2538
	{1, 4, 6, 4, 6, 6, 4, 8, 4, 7, 4, 4, 2, 3, 1, 4, 2, 5, 7, 7, 9, 5, 6, 3, 2, 2}, // 2539
	{0, 5, 4, 9, 5, 8, 6, 5, 5, 3, 4, 5, 4, 4, 6, 2, 7, 4, 8, 7, 6, 6, 3, 2, 1, 3}, // 2540
	{1, 3, 8, 4, 10, 5, 7, 4, 4, 3, 4, 4, 5, 7, 4, 9, 4, 8, 5, 5, 4, 2, 2, 3, 3}, // 2541
	{1, 4, 7, 4, 8, 4, 8, 4, 5, 4, 5, 4, 6, 5, 7, 9, 6, 9, 5, 5, 2, 1, 0, 3, 2, 6}, // 2542
	{0, 4, 6, 5, 3, 3, 3, 3, 3, 6, 4, 8, 4, 9, 5, 8, 8, 7, 7, 4, 4, 2, 4, 1, 7, 3}, // 2543
	{1, 8, 4, 4, 3, 2, 1, 2, 4, 3, 8, 4, 9, 4, 8, 5, 5, 5, 5, 5, 5, 7, 5, 9, 4, 8}, // 2544
	{0, 4, 6, 4, 4, 3, 4, 3, 4, 5, 5, 7, 4, 7, 4, 4, 2, 2, 2, 4, 5, 8, 9, 7, 8}, // 2545
	{0, 4, 5, 3, 4, 4, 7, 4, 8, 3, 6, 4, 4, 4, 3, 3, 2, 3, 1, 4, 2, 8, 6, 9, 7, 6}, // 2546
	{1, 5, 4, 3, 3, 6, 4, 9, 4, 9, 3, 5, 2, 2, 1, 2, 2, 3, 6, 4, 8, 4, 7, 5, 5, 4}, // 2547
	{0, 4, 4, 5, 5, 6, 7, 5, 8, 4, 6, 4, 3, 3, 4, 2, 5, 5, 7, 9, 6, 7, 4, 2, 2, 2}, // 2548
	{1, 3, 7, 4, 9, 5, 6, 5, 4, 4, 5, 3, 4, 4, 2, 6, 2, 8, 6, 7, 7, 5, 4, 2, 2}, // 2549
	{1, 2, 6, 3, 10, 5, 9, 4, 4, 3, 3, 3, 4, 5, 4, 7, 4, 8, 4, 6, 4, 3, 3, 3, 2, 4}, // 2550
	{0, 4, 4, 7, 3, 7, 3, 5, 3, 5, 3, 5, 4, 6, 7, 7, 10, 6, 7, 4, 2, 2, 2, 2, 6, 4}, // 2551
	{1, 8, 6, 5, 4, 2, 3, 3, 4, 4, 7, 4, 8, 5, 8, 7, 7, 7, 6, 5, 2, 3, 1, 6, 3}, // 2552
	{1, 9, 5, 8, 4, 3, 2, 2, 2, 4, 6, 5, 10, 4, 8, 5, 7, 5, 4, 4, 4, 5, 4, 7, 4, 8}, // 2553
	{0, 4, 7, 4, 5, 4, 5, 3, 5, 4, 5, 7, 5, 7, 4, 5, 3, 2, 2, 3, 3, 7, 6, 8, 9, 6}, // 2554
	{1, 7, 4, 4, 4, 5, 5, 8, 4, 8, 4, 5, 4, 3, 4, 3, 3, 2, 2, 1, 6, 3, 8, 7, 8, 6}, // 2555
	{0, 5, 3, 4, 4, 4, 8, 5, 10, 4, 8, 4, 4, 4, 3, 3, 4, 4, 4, 7, 4, 8, 4, 6, 4}, // 2556
	{0, 3, 4, 5, 4, 5, 6, 5, 8, 5, 7, 5, 5, 4, 3, 2, 3, 2, 6, 7, 7, 9, 5, 5, 2, 2}, // 2557
	{1, 2, 5, 4, 9, 5, 8, 5, 4, 4, 4, 4, 4, 4, 3, 5, 2, 7, 4, 8, 7, 5, 5, 3, 2, 2}, // 2558
	{0, 3, 2, 8, 4, 10, 4, 6, 3, 4, 2, 4, 3, 5, 7, 5, 10, 5, 9, 5, 5, 4, 3, 3, 3, 3}, // 2559
	{1, 4, 6, 4, 7, 3, 6, 3, 4, 4, 4, 3, 6, 5, 7, 9, 8, 10, 6, 5, 3, 1, 2, 3, 2}, // 2560
	{1, 7, 5, 7, 5, 3, 3, 3, 4, 4, 6, 4, 8, 4, 8, 6, 8, 8, 6, 7, 4, 3, 1, 4, 2, 8}, // 2561
	{0, 4, 9, 5, 5, 2, 2, 2, 3, 3, 3, 7, 4, 8, 4, 7, 5, 5, 4, 4, 4, 5, 6, 5, 9, 5}, // 2562
	{1, 9, 5, 6, 4, 4, 3, 4, 2, 4, 4, 4, 7, 4, 6, 4, 3, 2, 2, 2, 4, 4, 8, 8, 8, 9}, // 2563
	{0, 6, 5, 4, 4, 5, 7, 4, 8, 4, 6, 4, 5, 5, 4, 4, 3, 3, 0, 4, 2, 8, 5, 9, 7}, // 2564
	{0, 6, 5, 4, 3, 5, 6, 5, 10, 5, 9, 4, 6, 4, 3, 3, 2, 3, 3, 5, 3, 8, 3, 7, 4, 5}, // 2565
	{1, 5, 5, 5, 7, 5, 6, 7, 5, 8, 5, 6, 4, 3, 2, 3, 1, 4, 4, 6, 8, 6, 7, 4, 3, 2}, // 2566
	{0, 3, 3, 7, 5, 9, 5, 7, 5, 4, 5, 5, 4, 4, 5, 3, 6, 3, 8, 6, 8, 7, 5, 4, 2, 1}, // 2567
	{1, 2, 5, 3, 9, 4, 8, 4, 4, 3, 4, 3, 5, 5, 5, 8, 5, 9, 5, 7, 5, 3, 3, 3, 2}, // 2568
	{1, 3, 4, 4, 7, 3, 8, 4, 6, 5, 5, 4, 6, 4, 7, 7, 7, 10, 7, 7, 5, 2, 2, 2, 1, 5}, // 2569
	{0, 4, 7, 5, 4, 4, 2, 3, 3, 4, 4, 7, 4, 8, 4, 8, 7, 8, 9, 5, 5, 3, 3, 2, 6, 3}, // 2570
	{1, 10, 5, 7, 3, 3, 1, 2, 2, 3, 5, 3, 9, 3, 8, 5, 5, 5, 5, 4, 4, 5, 4, 7, 5}, // 2571
	{1, 9, 5, 8, 5, 5, 3, 4, 3, 4, 4, 4, 6, 5, 7, 5, 6, 4, 2, 3, 3, 3, 7, 6, 8, 9}, // 2572
	{0, 6, 6, 4, 4, 4, 6, 5, 8, 4, 8, 4, 5, 5, 4, 4, 3, 1, 1, 3, 1, 6, 4, 9, 7, 8}, // 2573
	{1, 6, 5, 4, 4, 4, 5, 8, 5, 10, 4, 7, 4, 3, 2, 2, 2, 3, 3, 4, 7, 3, 8, 5, 7, 5}, // 2574
	{0, 5, 5, 5, 5, 6, 6, 5, 8, 5, 8, 5, 4, 4, 3, 1, 4, 3, 6, 7, 7, 9, 6, 6, 4}, // 2575
	{0, 3, 4, 5, 4, 9, 5, 8, 5, 5, 5, 5, 5, 5, 4, 3, 5, 2, 7, 5, 8, 7, 6, 6, 3, 3}, // 2576
	{1, 3, 4, 4, 9, 5, 10, 5, 7, 5, 5, 4, 5, 4, 5, 7, 5, 8, 4, 8, 5, 5, 4, 3, 3, 4}, // 2577
	{0, 3, 5, 7, 4, 8, 4, 7, 5, 5, 4, 5, 4, 6, 6, 7, 9, 8, 10, 6, 6, 3, 1, 2, 4, 3}, // 2578
	{1, 7, 4, 6, 5, 3, 3, 2, 3, 4, 5, 4, 7, 4, 8, 6, 8, 8, 7, 7, 4, 4, 3, 3, 2}, // 2579
	{1, 8, 4, 9, 4, 5, 3, 2, 1, 3, 4, 4, 8, 5, 9, 5, 7, 6, 5, 5, 3, 5, 5, 5, 5, 8}, // 2580
	{0, 4, 8, 4, 6, 4, 4, 3, 5, 2, 5, 5, 5, 7, 6, 7, 4, 3, 3, 2, 2, 4, 5, 7, 8, 8}, // 2581
	{1, 8, 5, 5, 4, 4, 4, 6, 4, 8, 3, 6, 4, 5, 5, 5, 3, 3, 2, 1, 3, 2, 8, 5, 8, 7}, // 2582
	{0, 6, 5, 4, 3, 4, 5, 5, 9, 4, 8, 4, 5, 4, 3, 3, 3, 3, 4, 6, 4, 8, 4, 7, 5}, // 2583
	{0, 5, 5, 5, 4, 6, 5, 6, 6, 5, 8, 5, 6, 4, 3, 3, 3, 2, 5, 5, 7, 9, 6, 8, 5, 3}, // 2584
	{1, 4, 4, 4, 7, 6, 9, 6, 6, 6, 5, 5, 5, 4, 4, 3, 2, 6, 2, 8, 6, 8, 7, 5, 4, 2}, // 2585
	{0, 3, 3, 6, 4, 10, 5, 9, 4, 5, 4, 4, 4, 5, 5, 5, 8, 4, 8, 5, 7, 5, 4, 5, 4, 3}, // 2586
	{1, 5, 5, 5, 7, 4, 7, 4, 5, 5, 4, 4, 5, 4, 6, 7, 8, 10, 7, 8, 5, 3, 2, 3, 3}, // 2587
	{1, 7, 5, 8, 5, 5, 5, 3, 4, 4, 4, 5, 7, 4, 8, 5, 8, 8, 8, 9, 6, 5, 3, 3, 2, 5}, // 2588
	{0, 3, 10, 5, 8, 4, 3, 2, 3, 3, 4, 5, 5, 8, 4, 9, 6, 6, 6, 4, 5, 4, 5, 5, 6, 5}, // 2589
	{1, 9, 5, 8, 6, 5, 4, 4, 4, 5, 4, 6, 7, 6, 7, 5, 5, 4, 2, 2, 3, 3, 6, 6, 8}, // 2590
	{1, 8, 6, 6, 5, 3, 5, 5, 5, 8, 4, 8, 4, 6, 6, 5, 6, 4, 4, 3, 3, 2, 6, 5, 9, 6}, // 2591
	{0, 7, 5, 5, 3, 4, 4, 5, 8, 5, 9, 5, 8, 5, 4, 4, 3, 3, 3, 4, 4, 7, 4, 8, 5, 6}, // 2592
	{1, 5, 4, 4, 5, 4, 7, 6, 6, 8, 6, 7, 6, 5, 5, 2, 2, 3, 3, 6, 7, 7, 8, 5, 5, 3}, // 2593
	{0, 2, 4, 6, 5, 9, 5, 7, 5, 4, 5, 5, 4, 5, 4, 3, 5, 3, 7, 5, 9, 8, 6, 6, 4}, // 2594
	{0, 3, 3, 4, 4, 9, 5, 9, 5, 6, 4, 4, 3, 4, 4, 5, 6, 5, 9, 5, 9, 6, 5, 5, 3, 3}, // 2595
	{1, 4, 4, 4, 5, 4, 7, 4, 6, 5, 4, 4, 4, 3, 6, 5, 7, 9, 8, 11, 7, 5, 4, 1, 2, 4}, // 2596
	{0, 3, 7, 5, 6, 5, 3, 3, 3, 3, 4, 5, 4, 7, 4, 7, 6, 8, 8, 7, 7, 5, 4, 3, 4, 3}, // 2597
	{1, 8, 5, 9, 5, 5, 3, 2, 2, 2, 3, 4, 6, 3, 8, 5, 6, 6, 5, 5, 3, 5, 4, 6, 6}, // 2598
	{1, 9, 5, 9, 5, 6, 5, 4, 4, 4, 3, 5, 4, 5, 7, 5, 7, 5, 3, 3, 1, 2, 5, 5, 8, 7}, // 2599
	{0, 7, 7, 5, 5, 5, 4, 5, 7, 5, 8, 4, 6, 5, 5, 5, 5, 5, 3, 2, 1, 4, 2, 7, 5, 8}, // 2600
	{1, 7, 6, 5, 5, 4, 6, 7, 6, 10, 6, 9, 5, 6, 4, 3, 3, 2, 3, 3, 5, 4, 7, 4, 6, 5}, // 2601
	{0, 5, 6, 5, 5, 7, 5, 7, 8, 6, 8, 6, 7, 5, 3, 3, 3, 2, 4, 5, 7, 8, 6, 7, 4}, // 2602
	{0, 3, 3, 4, 5, 8, 6, 9, 6, 7, 6, 6, 5, 5, 4, 4, 4, 2, 6, 3, 8, 6, 8, 7, 4, 3}, // 2603
	{1, 3, 2, 3, 6, 4, 10, 6, 9, 5, 5, 4, 5, 4, 6, 6, 6, 8, 6, 9, 5, 6, 6, 4, 4, 3}, // 2604
	{0, 3, 5, 4, 4, 7, 3, 7, 5, 6, 6, 5, 4, 5, 5, 7, 8, 8, 10, 8, 8, 5, 3, 3, 3}, // 2605
	{0, 3, 7, 4, 8, 5, 4, 3, 3, 2, 4, 3, 4, 6, 4, 7, 4, 8, 8, 8, 9, 6, 5, 3, 3, 3}, // 2606
	{1, 7, 4, 9, 5, 7, 3, 3, 2, 2, 2, 4, 5, 4, 8, 4, 9, 6, 6, 7, 5, 6, 4, 5, 5, 6}, // 2607
	{0, 6, 8, 5, 7, 5, 5, 5, 4, 3, 5, 3, 5, 6, 6, 8, 5, 6, 5, 2, 3, 3, 4, 7, 6, 8}, // 2608
	{1, 8, 6, 6, 5, 4, 5, 5, 6, 8, 4, 7, 4, 6, 6, 5, 6, 4, 3, 2, 2, 2, 6, 4, 9}, // 2609
	{1, 7, 8, 6, 5, 4, 4, 4, 5, 7, 5, 9, 5, 7, 4, 4, 4, 3, 3, 3, 4, 5, 7, 5, 8, 5}, // 2610
	{0, 7, 6, 5, 5, 6, 4, 6, 6, 5, 7, 5, 7, 6, 4, 4, 1, 2, 3, 3, 6, 7, 7, 8, 5, 5}, // 2611
	{1, 4, 3, 5, 6, 6, 10, 6, 8, 6, 6, 6, 6, 5, 6, 4, 3, 4, 2, 6, 4, 7, 7, 6, 6, 4}, // 2612
	{0, 3, 3, 4, 5, 9, 6, 10, 6, 7, 6, 5, 4, 4, 5, 5, 7, 5, 8, 5, 8, 5, 5, 5, 3}, // 2613
	{0, 3, 4, 4, 5, 6, 5, 8, 4, 7, 5, 4, 5, 4, 3, 6, 5, 8, 9, 8, 10, 7, 5, 4, 1, 2}, // 2614
	{1, 4, 3, 7, 5, 6, 5, 3, 3, 4, 3, 5, 5, 5, 7, 4, 8, 7, 9, 9, 8, 7, 6, 3, 3, 4}, // 2615
	{0, 3, 8, 5, 8, 4, 4, 3, 2, 2, 4, 4, 5, 7, 5, 10, 5, 7, 6, 4, 6, 4, 4, 5, 6, 6}, // 2616
	{1, 8, 5, 8, 5, 6, 5, 4, 4, 4, 3, 6, 4, 6, 8, 6, 7, 5, 3, 3, 1, 2, 4, 5, 8}, // 2617
	{1, 8, 8, 7, 5, 4, 5, 4, 5, 7, 5, 7, 4, 6, 5, 6, 7, 6, 5, 4, 3, 2, 4, 3, 8, 6}, // 2618
	{0, 9, 6, 6, 5, 4, 3, 5, 5, 5, 8, 5, 9, 5, 6, 4, 3, 4, 4, 4, 4, 6, 4, 8, 4, 7}, // 2619
	{1, 6, 5, 5, 5, 5, 6, 5, 7, 7, 6, 9, 7, 7, 5, 4, 3, 3, 3, 5, 5, 7, 8, 6, 7, 4}, // 2620
	{0, 4, 4, 4, 5, 8, 5, 9, 5, 7, 5, 6, 6, 6, 5, 5, 3, 3, 5, 3, 8, 6, 8, 7, 5}, // 2621
	{0, 5, 4, 3, 4, 6, 5, 10, 6, 9, 6, 5, 5, 5, 4, 5, 5, 5, 8, 4, 9, 5, 6, 6, 4, 5}, // 2622
	{1, 4, 3, 5, 4, 4, 7, 4, 7, 5, 5, 5, 4, 4, 5, 5, 7, 7, 9, 11, 8, 8, 6, 4, 4, 3}, // 2623
	{0, 4, 7, 5, 8, 5, 4, 4, 3, 4, 4, 4, 5, 5, 3, 7, 5, 8, 9, 9, 9, 6, 5, 4, 4}, // 2624
	{0, 4, 7, 5, 11, 6, 8, 4, 4, 3, 3, 3, 4, 6, 5, 8, 5, 8, 5, 6, 6, 4, 5, 4, 5, 5}, // 2625
	{1, 7, 6, 8, 6, 8, 6, 5, 5, 5, 4, 4, 4, 6, 6, 6, 8, 6, 6, 5, 2, 3, 3, 4, 7, 6}, // 2626
	{0, 8, 8, 6, 5, 5, 4, 6, 5, 6, 7, 5, 8, 4, 6, 6, 5, 6, 5, 3, 2, 3, 2, 6, 4, 8}, // 2627
	{1, 6, 7, 5, 4, 4, 5, 4, 6, 7, 6, 9, 6, 8, 6, 4, 5, 3, 4, 4, 4, 4, 6, 4, 7}, // 2628
	{1, 4, 6, 5, 4, 5, 5, 4, 6, 6, 6, 8, 7, 8, 7, 4, 5, 2, 3, 3, 3, 6, 7, 7, 8, 6}, // 2629
	{0, 5, 4, 3, 5, 6, 5, 8, 6, 7, 5, 5, 5, 6, 5, 6, 4, 3, 4, 2, 6, 4, 8, 6, 6, 5}, // 2630
	{1, 4, 2, 4, 4, 4, 8, 5, 9, 6, 7, 5, 4, 4, 5, 5, 5, 6, 6, 9, 5, 8, 6, 5, 5, 3}, // 2631
	{0, 3, 5, 4, 5, 5, 4, 6, 4, 6, 5, 4, 5, 4, 4, 6, 6, 8, 10, 9, 10, 8, 5, 5, 3}, // 2632
	{0, 4, 5, 5, 9, 5, 6, 5, 4, 3, 4, 4, 5, 4, 3, 6, 3, 8, 6, 8, 9, 7, 8, 5, 4, 5}, // 2633
	{1, 5, 5, 9, 5, 9, 5, 5, 4, 3, 2, 3, 3, 4, 6, 4, 8, 5, 7, 6, 5, 6, 5, 6, 6, 7}, // 2634
	{0, 7, 8, 6, 8, 5, 6, 5, 4, 4, 4, 3, 5, 5, 6, 7, 6, 7, 5, 3, 3, 2, 3, 4, 5, 8}, // 2635
	{1, 8, 8, 7, 6, 5, 6, 5, 7, 6, 5, 8, 4, 7, 6, 6, 7, 6, 5, 3, 2, 2, 4, 2, 8}, // 2636
	{1, 5, 9, 6, 6, 5, 5, 4, 6, 7, 7, 9, 6, 9, 6, 6, 5, 3, 4, 3, 4, 4, 5, 4, 7, 4}, // 2637
	{0, 7, 5, 6, 6, 6, 6, 7, 6, 7, 7, 7, 8, 7, 7, 6, 3, 3, 2, 2, 4, 5, 7, 8, 6, 6}, // 2638
	{1, 4, 3, 4, 4, 5, 8, 6, 9, 6, 8, 6, 7, 7, 7, 6, 5, 4, 3, 6, 4, 8, 7, 7, 6}, // 2639
	{1, 5, 3, 2, 2, 4, 5, 5, 9, 5, 8, 6, 6, 6, 5, 6, 6, 5, 6, 8, 6, 9, 5, 7, 6, 4}, // 2640
	{0, 5, 4, 3, 5, 5, 5, 6, 4, 7, 5, 5, 6, 4, 5, 5, 4, 7, 8, 9, 10, 8, 8, 6, 3, 4}, // 2641
	{1, 3, 4, 7, 5, 8, 4, 4, 3, 3, 3, 4, 3, 4, 4, 4, 7, 5, 8, 9, 9, 10, 6, 6, 4, 4}, // 2642
	{0, 4, 7, 5, 9, 5, 7, 4, 3, 2, 2, 2, 3, 4, 5, 7, 5, 8, 6, 6, 7, 4, 6, 4, 5}, // 2643
	{0, 6, 7, 6, 8, 6, 7, 6, 4, 6, 4, 4, 4, 3, 6, 6, 6, 9, 7, 6, 5, 2, 3, 2, 4, 7}, // 2644
	{1, 6, 8, 7, 6, 6, 5, 4, 7, 5, 6, 7, 5, 7, 4, 6, 6, 5, 6, 5, 3, 3, 2, 2, 6, 5}, // 2645
	{0, 9, 7, 8, 6, 5, 4, 5, 4, 6, 7, 5, 9, 5, 7, 5, 4, 4, 2, 3, 3, 4, 5, 7, 5, 8}, // 2646
	{1, 5, 6, 6, 5, 6, 6, 5, 6, 6, 6, 8, 7, 8, 7, 5, 5, 2, 2, 3, 3, 7, 6, 7, 8}, // 2647
	{1, 5, 5, 4, 3, 5, 6, 6, 9, 6, 8, 6, 7, 7, 6, 6, 6, 4, 3, 4, 3, 6, 5, 8, 6, 6}, // 2648
	{0, 5, 3, 3, 4, 5, 5, 9, 6, 10, 6, 8, 6, 5, 5, 4, 5, 6, 6, 5, 8, 5, 7, 5, 4, 5}, // 2649
	{1, 3, 4, 4, 4, 5, 5, 4, 7, 5, 7, 6, 4, 6, 3, 4, 6, 5, 8, 10, 9, 11, 7, 6, 5, 3}, // 2650
	{0, 4, 6, 5, 8, 5, 6, 4, 3, 4, 4, 3, 5, 4, 4, 6, 4, 8, 6, 9, 9, 7, 8, 5, 3}, // 2651
	{0, 4, 5, 4, 9, 5, 8, 5, 5, 4, 3, 3, 4, 4, 6, 7, 5, 8, 5, 7, 6, 5, 6, 4, 5, 5}, // 2652
	{1, 5, 6, 7, 5, 8, 5, 6, 6, 4, 5, 4, 4, 5, 5, 6, 8, 7, 8, 5, 3, 3, 2, 4, 5, 5}, // 2653
	{0, 8, 8, 7, 6, 5, 5, 5, 4, 6, 6, 5, 6, 3, 7, 5, 7, 7, 6, 5, 4, 2, 3, 4, 4, 7}, // 2654
	{1, 5, 8, 7, 5, 5, 5, 3, 6, 5, 6, 8, 6, 8, 5, 6, 6, 4, 5, 4, 5, 4, 5, 5, 7}, // 2655
	{1, 5, 7, 5, 5, 6, 4, 5, 6, 5, 7, 7, 6, 9, 7, 7, 6, 3, 4, 2, 3, 5, 5, 7, 7, 7}, // 2656
	{0, 6, 5, 4, 5, 5, 6, 8, 6, 9, 6, 7, 6, 7, 6, 6, 4, 4, 3, 3, 4, 3, 7, 6, 7, 6}, // 2657
	{1, 5, 4, 3, 3, 5, 6, 5, 9, 6, 8, 5, 5, 6, 4, 4, 5, 5, 5, 7, 6, 9, 6, 7, 6}, // 2658
	{1, 4, 6, 5, 5, 5, 5, 4, 6, 4, 6, 5, 5, 5, 3, 4, 4, 4, 6, 8, 8, 10, 8, 8, 6, 3}, // 2659
	{0, 5, 4, 5, 8, 6, 8, 5, 5, 4, 3, 4, 5, 4, 5, 5, 4, 6, 4, 8, 8, 8, 9, 5, 5, 4}, // 2660
	{1, 3, 5, 7, 5, 9, 6, 7, 5, 4, 3, 3, 3, 4, 4, 5, 7, 5, 8, 5, 5, 6, 4, 5, 5, 5}, // 2661
	{0, 7, 7, 6, 8, 6, 7, 6, 5, 6, 4, 4, 4, 3, 6, 6, 7, 8, 6, 6, 5, 1, 3, 3, 4}, // 2662
	{0, 7, 6, 8, 7, 6, 5, 4, 4, 6, 5, 6, 7, 5, 7, 5, 7, 7, 7, 7, 5, 4, 3, 2, 2, 6}, // 2663
	{1, 4, 9, 6, 6, 5, 4, 3, 4, 4, 6, 7, 7, 9, 5, 8, 6, 4, 5, 3, 4, 4, 4, 5, 6, 4}, // 2664
	{0, 8, 5, 6, 6, 5, 6, 6, 5, 6, 6, 7, 8, 7, 8, 6, 5, 5, 1, 3, 2, 3, 6, 5, 7, 6}, // 2665
	{1, 5, 5, 4, 3, 5, 5, 5, 8, 6, 8, 6, 6, 6, 6, 7, 6, 4, 3, 4, 3, 7, 5, 8, 6}, // 2666
	{1, 6, 5, 3, 3, 4, 3, 4, 7, 5, 9, 5, 6, 6, 4, 5, 4, 5, 5, 6, 6, 9, 5, 8, 6, 5}, // 2667
	{0, 6, 4, 5, 5, 4, 5, 5, 4, 7, 5, 7, 6, 4, 6, 3, 3, 5, 6, 8, 9, 9, 9, 7, 5, 5}, // 2668
	{1, 3, 5, 5, 5, 8, 5, 6, 4, 3, 4, 4, 3, 5, 4, 3, 4, 3, 7, 6, 8, 9, 7, 7, 6, 5}, // 2669
	{0, 5, 5, 6, 9, 6, 9, 5, 4, 4, 3, 2, 3, 3, 4, 5, 4, 7, 5, 6, 6, 4, 6, 4, 6}, // 2670
	{0, 5, 6, 7, 8, 6, 7, 5, 6, 6, 3, 5, 4, 4, 5, 5, 7, 8, 8, 8, 6, 4, 4, 2, 3, 5}, // 2671
	{1, 6, 8, 7, 7, 7, 5, 5, 5, 5, 7, 6, 6, 7, 4, 7, 6, 7, 8, 6, 6, 4, 2, 3, 4, 4}, // 2672
	{0, 7, 6, 9, 6, 6, 5, 4, 4, 6, 6, 6, 8, 6, 8, 5, 6, 6, 3, 5, 3, 3, 4, 4, 4, 7}, // 2673
	{1, 5, 6, 6, 6, 6, 5, 5, 6, 5, 7, 6, 7, 9, 7, 7, 6, 3, 3, 2, 3, 5, 4, 7, 7}, // 2674
	{1, 6, 6, 4, 3, 4, 3, 6, 7, 6, 9, 5, 7, 6, 6, 7, 7, 5, 5, 4, 3, 5, 4, 7, 6, 7}, // 2675
	{0, 6, 4, 3, 3, 3, 4, 6, 5, 9, 5, 9, 6, 6, 6, 5, 5, 5, 5, 6, 7, 6, 8, 6, 6, 5}, // 2676
	{1, 4, 5, 4, 3, 5, 4, 4, 5, 4, 6, 5, 4, 5, 3, 4, 3, 4, 6, 7, 9, 10, 8, 8, 6, 3}, // 2677
	{0, 5, 4, 6, 7, 5, 7, 4, 4, 3, 3, 3, 4, 2, 4, 3, 2, 6, 5, 8, 8, 7, 8, 6, 4}, // 2678
	{0, 5, 4, 4, 7, 5, 9, 5, 6, 4, 3, 3, 3, 2, 4, 4, 5, 7, 5, 8, 6, 5, 7, 4, 5, 4}, // 2679
	{1, 5, 6, 6, 5, 7, 5, 7, 6, 4, 6, 3, 4, 4, 3, 5, 6, 7, 8, 6, 6, 5, 2, 4, 3, 5}, // 2680
	{0, 8, 6, 8, 7, 6, 5, 5, 5, 6, 5, 6, 6, 4, 6, 4, 6, 6, 6, 6, 4, 3, 3, 2, 3}, // 2681
	{0, 6, 5, 9, 7, 7, 6, 4, 4, 5, 4, 6, 7, 6, 8, 5, 7, 6, 4, 5, 3, 4, 3, 4, 5, 6}, // 2682
	{1, 5, 8, 5, 6, 6, 5, 6, 5, 5, 6, 6, 6, 7, 8, 8, 7, 5, 5, 1, 3, 2, 3, 6, 6, 6}, // 2683
	{0, 7, 5, 5, 5, 4, 6, 6, 7, 9, 6, 8, 7, 7, 7, 8, 7, 7, 4, 4, 3, 2, 5, 4, 7, 6}, // 2684
	{1, 6, 5, 4, 2, 4, 5, 5, 8, 6, 9, 6, 7, 6, 5, 6, 5, 5, 6, 6, 6, 7, 5, 7, 5}, // 2685
	{1, 5, 6, 4, 4, 5, 4, 5, 5, 4, 6, 5, 6, 6, 4, 5, 2, 3, 4, 5, 8, 9, 8, 9, 7, 5}, // 2686
	{0, 5, 3, 5, 5, 5, 7, 4, 6, 4, 3, 4, 5, 4, 6, 3, 4, 5, 4, 7, 7, 9, 9, 6, 6, 5}, // 2687
	{1, 3, 4, 4, 5, 8, 5, 8, 5, 5, 4, 2, 4, 4, 3, 5, 5, 5, 8, 5, 7, 6, 4, 6, 4, 5}, // 2688
	{0, 6, 6, 6, 7, 5, 7, 5, 5, 6, 3, 4, 4, 3, 4, 4, 6, 8, 7, 8, 5, 3, 4, 1, 3}, // 2689
	{0, 5, 5, 8, 7, 7, 6, 5, 4, 4, 4, 6, 5, 5, 5, 4, 7, 6, 7, 8, 6, 6, 4, 2, 3, 4}, // 2690
	{1, 4, 8, 6, 8, 6, 4, 4, 3, 3, 5, 4, 6, 7, 5, 8, 5, 6, 6, 3, 5, 3, 4, 4, 5, 4}, // 2691
	{0, 6, 5, 7, 5, 5, 6, 5, 6, 5, 6, 6, 6, 7, 9, 7, 7, 6, 2, 3, 1, 3, 4, 4, 6, 6}, // 2692
	{1, 6, 6, 4, 3, 5, 4, 6, 7, 6, 8, 6, 7, 7, 6, 7, 6, 5, 4, 3, 2, 4, 3, 7, 6}, // 2693
	{1, 7, 6, 4, 4, 4, 2, 4, 5, 5, 8, 5, 7, 5, 5, 5, 3, 5, 4, 5, 5, 7, 6, 8, 6, 7}, // 2694
	{0, 6, 4, 6, 5, 4, 5, 4, 5, 5, 4, 6, 5, 5, 6, 2, 4, 3, 4, 5, 7, 8, 10, 8, 7, 6}, // 2695
	{1, 3, 6, 4, 5, 8, 6, 7, 5, 5, 4, 3, 4, 5, 3, 4, 2, 3, 5, 4, 7, 7, 7, 7, 5, 4}, // 2696
	{0, 5, 4, 6, 7, 6, 10, 6, 7, 5, 3, 4, 3, 3, 4, 4, 4, 6, 5, 7, 6, 5, 5, 4, 5}, // 2697
	{0, 4, 5, 6, 6, 6, 7, 6, 7, 6, 4, 6, 3, 4, 4, 3, 6, 7, 7, 9, 7, 6, 5, 1, 3, 2}, // 2698
	{1, 5, 7, 6, 7, 5, 4, 4, 4, 3, 6, 5, 6, 6, 4, 6, 4, 7, 8, 6, 7, 5, 4, 3, 2, 3}, // 2699
	{0, 6, 5, 8, 6, 7, 5, 3, 4, 5, 4, 6, 7, 7, 9, 6, 8, 5, 4, 6, 2, 4, 3, 3, 4}, // 2700
	{0, 5, 4, 7, 4, 5, 6, 5, 6, 5, 5, 6, 5, 6, 8, 7, 8, 7, 5, 5, 1, 3, 2, 3, 6, 6}, // 2701
	{1, 7, 6, 5, 4, 4, 3, 5, 5, 5, 7, 4, 7, 6, 7, 7, 6, 7, 6, 4, 3, 3, 3, 5, 5, 8}, // 2702
	{0, 5, 5, 4, 2, 2, 4, 3, 4, 6, 5, 8, 5, 6, 6, 5, 6, 5, 6, 5, 7, 6, 8, 6, 7, 6}, // 2703
	{1, 4, 5, 4, 5, 4, 3, 5, 4, 4, 6, 5, 6, 6, 3, 5, 2, 4, 4, 5, 8, 9, 9, 9, 7}, // 2704
	{1, 5, 6, 3, 6, 6, 6, 7, 5, 5, 4, 3, 3, 4, 3, 4, 2, 2, 3, 2, 6, 6, 8, 8, 6, 7}, // 2705
	{0, 5, 4, 5, 5, 6, 8, 6, 7, 5, 4, 4, 3, 2, 2, 3, 4, 5, 4, 7, 5, 6, 7, 4, 7, 4}, // 2706
	{1, 6, 6, 5, 7, 7, 5, 6, 5, 5, 6, 3, 5, 2, 3, 5, 4, 6, 7, 7, 7, 5, 3, 4, 1, 4}, // 2707
	{0, 5, 5, 8, 7, 7, 6, 5, 4, 6, 4, 7, 4, 5, 6, 3, 7, 5, 7, 7, 5, 4, 3, 1, 2}, // 2708
	{0, 3, 3, 7, 6, 8, 6, 5, 5, 4, 4, 6, 5, 6, 7, 5, 7, 5, 6, 5, 3, 5, 2, 3, 4, 4}, // 2709
	{1, 4, 6, 4, 6, 5, 5, 6, 4, 6, 6, 5, 6, 6, 6, 8, 7, 7, 6, 2, 3, 1, 2, 4, 4, 6}, // 2710
	{0, 5, 5, 4, 3, 2, 5, 3, 6, 6, 6, 7, 5, 8, 7, 7, 8, 6, 5, 5, 2, 3, 4, 3, 6}, // 2711
	{0, 4, 6, 4, 3, 3, 2, 2, 4, 5, 5, 7, 6, 7, 6, 5, 6, 4, 5, 5, 5, 5, 7, 5, 8, 5}, // 2712
	{1, 5, 6, 3, 6, 4, 4, 4, 4, 4, 5, 4, 6, 5, 4, 5, 2, 3, 2, 4, 5, 6, 8, 9, 8, 7}, // 2713
	{0, 5, 3, 6, 3, 5, 7, 5, 7, 4, 3, 3, 3, 3, 4, 2, 4, 2, 2, 4, 5, 7, 8, 7, 7, 6}, // 2714
	{1, 5, 5, 4, 6, 6, 5, 8, 5, 5, 4, 2, 3, 2, 3, 3, 3, 5, 6, 5, 7, 6, 6, 7, 3}, // 2715
	{1, 6, 5, 5, 6, 6, 6, 7, 5, 6, 6, 4, 6, 3, 4, 3, 3, 5, 6, 6, 9, 6, 6, 4, 1, 4}, // 2716
	{0, 3, 5, 7, 6, 8, 6, 5, 5, 4, 3, 6, 4, 6, 4, 4, 6, 4, 7, 7, 6, 6, 4, 3, 3, 2}, // 2717
	{1, 4, 6, 5, 9, 6, 6, 5, 4, 3, 5, 3, 6, 6, 6, 7, 5, 6, 5, 3, 5, 2, 4, 3, 3, 4}, // 2718
	{0, 5, 5, 6, 5, 5, 6, 4, 6, 4, 6, 6, 5, 7, 8, 8, 9, 7, 5, 5, 1, 2, 1, 3, 5}, // 2719
	{0, 5, 6, 5, 4, 3, 4, 3, 6, 5, 6, 7, 5, 7, 6, 7, 8, 7, 7, 6, 3, 3, 2, 3, 5, 4}, // 2720
	{1, 6, 5, 5, 4, 3, 2, 4, 4, 5, 7, 6, 7, 6, 5, 6, 3, 6, 3, 5, 5, 5, 5, 7, 5, 6}, // 2721
	{0, 5, 4, 5, 3, 4, 4, 4, 5, 4, 4, 6, 5, 5, 5, 3, 5, 1, 3, 4, 5, 7, 9, 7, 8, 6}, // 2722
	{1, 5, 5, 3, 6, 5, 5, 7, 4, 5, 3, 3, 4, 4, 3, 4, 2, 3, 3, 3, 5, 5, 7, 8, 6}, // 2723
	{1, 6, 4, 4, 5, 5, 5, 8, 5, 8, 5, 4, 4, 2, 4, 3, 3, 4, 5, 4, 7, 4, 5, 6, 4, 6}, // 2724
	{0, 4, 4, 5, 5, 5, 6, 5, 6, 5, 4, 6, 2, 5, 2, 2, 3, 4, 6, 8, 7, 7, 6, 3, 4, 2}, // 2725
	{1, 4, 6, 6, 8, 6, 6, 4, 3, 3, 5, 3, 5, 4, 3, 4, 3, 6, 5, 7, 7, 5, 5, 3, 1, 2}, // 2726
	{0, 4, 4, 8, 5, 7, 5, 4, 4, 3, 3, 5, 4, 6, 6, 5, 7, 5, 5, 6, 3, 5, 2, 3, 4}, // 2727
	{0, 3, 4, 6, 4, 6, 5, 4, 5, 4, 5, 5, 4, 6, 6, 7, 8, 7, 6, 6, 2, 4, 0, 3, 4, 4}, // 2728
	{1, 6, 6, 5, 5, 3, 3, 5, 3, 6, 6, 5, 7, 5, 6, 6, 6, 7, 6, 4, 4, 2, 2, 4, 3, 7}, // 2729
	{0, 6, 7, 5, 3, 3, 3, 2, 4, 4, 4, 7, 5, 7, 5, 4, 6, 3, 5, 5, 5, 5, 6, 5, 7}, // 2730
	{0, 5, 6, 6, 4, 5, 3, 4, 4, 3, 4, 5, 5, 6, 5, 5, 6, 2, 4, 2, 3, 5, 6, 8, 8, 6}, // 2731
	{1, 7, 6, 3, 6, 4, 7, 8, 6, 7, 5, 5, 4, 4, 5, 5, 3, 4, 1, 2, 4, 4, 7, 6, 6, 7}, // 2732
	{0, 5, 4, 5, 3, 6, 7, 6, 8, 6, 6, 5, 3, 4, 2, 2, 4, 4, 4, 6, 4, 7, 6, 4, 6, 3}, // 2733
	{1, 5, 5, 5, 6, 6, 6, 7, 5, 6, 6, 4, 6, 2, 3, 3, 3, 5, 6, 7, 8, 6, 5, 5, 1}, // 2734
	{1, 3, 3, 5, 7, 5, 6, 5, 5, 4, 4, 4, 6, 4, 5, 5, 4, 6, 4, 7, 7, 6, 6, 4, 3, 2}, // 2735
	{0, 1, 3, 5, 4, 7, 5, 5, 4, 3, 3, 4, 4, 6, 6, 6, 7, 5, 7, 6, 4, 6, 2, 4, 3, 3}, // 2736
	{1, 5, 5, 5, 6, 4, 5, 5, 3, 5, 4, 5, 5, 4, 6, 7, 7, 8, 7, 4, 5, 0, 3, 2, 3, 5}, // 2737
	{0, 5, 5, 4, 3, 2, 3, 2, 4, 4, 5, 5, 5, 6, 5, 7, 7, 7, 7, 6, 4, 4, 3, 3, 5}, // 2738
	{0, 4, 7, 5, 4, 3, 1, 1, 3, 2, 4, 5, 4, 6, 5, 6, 5, 4, 6, 4, 6, 4, 5, 6, 7, 5}, // 2739
	{1, 6, 6, 5, 6, 4, 4, 4, 4, 4, 4, 4, 6, 5, 5, 5, 2, 4, 1, 3, 2, 4, 6, 7, 7, 8}, // 2740
	{0, 6, 5, 5, 3, 6, 5, 6, 7, 4, 4, 3, 3, 4, 4, 3, 4, 1, 2, 2, 2, 6, 5, 7, 8, 6}, // 2741
	{1, 6, 5, 4, 5, 5, 6, 8, 5, 7, 4, 3, 4, 1, 3, 2, 3, 4, 3, 3, 5, 4, 5, 5, 3}, // 2742
	{1, 6, 3, 5, 6, 5, 6, 7, 5, 6, 5, 5, 6, 3, 5, 3, 3, 4, 3, 6, 7, 6, 6, 4, 2, 4}, // 2743
	{0, 1, 4, 5, 5, 8, 6, 5, 5, 4, 4, 5, 4, 7, 4, 4, 4, 3, 6, 5, 6, 7, 4, 5, 3, 1}, // 2744
	{1, 2, 3, 4, 7, 5, 7, 6, 4, 5, 4, 4, 6, 4, 6, 6, 4, 7, 5, 5, 5, 2, 4, 1, 3, 3}, // 2745
	{0, 4, 4, 5, 4, 5, 4, 4, 5, 4, 5, 4, 5, 6, 6, 7, 9, 8, 8, 6, 3, 4, 1, 3, 3}, // 2746
	{0, 4, 6, 4, 4, 3, 2, 1, 4, 3, 5, 5, 5, 7, 5, 7, 7, 7, 8, 7, 5, 4, 2, 3, 4, 3}, // 2747
	{1, 6, 5, 5, 4, 2, 2, 3, 2, 4, 4, 5, 6, 5, 7, 5, 5, 6, 3, 5, 4, 5, 5, 6, 5, 7}, // 2748
	{0, 5, 5, 6, 4, 5, 3, 3, 4, 3, 4, 5, 4, 5, 5, 4, 5, 1, 3, 1, 3, 5, 6, 7, 8}, // 2749
	{0, 7, 5, 6, 3, 5, 4, 6, 6, 5, 5, 3, 3, 3, 3, 4, 4, 2, 3, 2, 2, 4, 4, 7, 7, 7}, // 2750
	{1, 6, 5, 4, 4, 3, 5, 6, 5, 7, 5, 5, 5, 2, 4, 2, 3, 3, 4, 4, 5, 4, 6, 5, 4, 6}, // 2751
	{0, 3, 5, 4, 5, 6, 5, 5, 6, 5, 6, 6, 3, 6, 2, 3, 2, 2, 4, 5, 6, 8, 5, 5, 5, 1}, // 2752
	{1, 5, 3, 5, 7, 6, 7, 5, 4, 4, 4, 3, 6, 3, 4, 3, 2, 4, 4, 5, 6, 6, 6, 3, 3}, // 2753
	{1, 4, 3, 4, 6, 5, 8, 5, 6, 4, 3, 4, 4, 4, 5, 5, 5, 7, 5, 6, 5, 4, 5, 2, 4, 3}, // 2754
	{0, 4, 5, 5, 4, 6, 3, 4, 5, 3, 5, 4, 5, 5, 5, 6, 7, 7, 8, 7, 4, 5, 0, 3, 1, 3}, // 2755
	{1, 5, 4, 5, 5, 3, 3, 4, 3, 6, 4, 6, 6, 5, 6, 5, 7, 7, 6, 7, 5, 3, 3, 2, 2, 5}, // 2756
	{0, 4, 6, 5, 3, 4, 2, 2, 4, 2, 5, 5, 4, 6, 4, 5, 5, 3, 6, 3, 5, 4, 4, 5, 7}, // 2757
	{0, 5, 6, 5, 4, 5, 3, 4, 3, 3, 4, 4, 4, 5, 4, 5, 5, 2, 4, 0, 3, 2, 4, 6, 6, 7}, // 2758
	{1, 7, 5, 4, 5, 2, 6, 5, 6, 7, 5, 5, 4, 4, 4, 5, 4, 5, 2, 2, 2, 2, 4, 5, 6, 6}, // 2759
	{0, 5, 5, 4, 3, 4, 4, 5, 7, 5, 7, 4, 4, 5, 2, 4, 3, 3, 3, 4, 4, 5, 4, 5, 5, 3}, // 2760
	{1, 5, 4, 5, 5, 5, 5, 5, 5, 5, 5, 4, 6, 1, 4, 1, 2, 3, 3, 6, 6, 6, 6, 5, 1}, // 2761
	{1, 4, 1, 4, 5, 6, 7, 5, 5, 4, 3, 3, 5, 3, 6, 3, 3, 4, 3, 6, 6, 6, 7, 5, 4, 4}, // 2762
	{0, 1, 3, 3, 4, 6, 5, 6, 5, 3, 4, 3, 3, 4, 4, 6, 6, 5, 7, 5, 5, 6, 3, 5, 2, 3}, // 2763
	{1, 3, 3, 4, 5, 3, 5, 5, 4, 6, 3, 6, 5, 4, 5, 5, 7, 8, 7, 7, 5, 1, 4, 0, 3, 4}, // 2764
	{0, 4, 7, 5, 4, 3, 2, 2, 4, 2, 6, 4, 4, 6, 4, 6, 6, 7, 7, 6, 5, 5, 3, 3, 4}, // 2765
	{0, 4, 7, 5, 6, 5, 3, 2, 2, 2, 4, 3, 4, 5, 4, 6, 5, 4, 5, 3, 5, 3, 5, 4, 6, 5}, // 2766
	{1, 6, 5, 5, 6, 4, 6, 3, 5, 4, 3, 4, 5, 5, 6, 5, 5, 5, 1, 3, 1, 3, 5, 5, 7, 6}, // 2767
	{0, 6, 5, 5, 2, 6, 4, 7, 7, 6, 6, 4, 4, 4, 4, 4, 5, 3, 3, 1, 2, 3, 3, 6, 6, 6}, // 2768
	{1, 6, 4, 4, 5, 3, 6, 6, 6, 8, 5, 6, 5, 2, 4, 2, 2, 3, 3, 3, 4, 3, 5, 5, 4}, // 2769
	{1, 5, 3, 5, 4, 4, 5, 4, 5, 6, 5, 5, 5, 3, 5, 1, 4, 2, 2, 5, 5, 7, 8, 6, 4, 4}, // 2770
	{0, 1, 5, 3, 5, 7, 5, 6, 4, 3, 3, 4, 4, 6, 3, 5, 3, 2, 5, 4, 6, 6, 6, 6, 4, 2}, // 2771
	{1, 3, 2, 4, 6, 5, 7, 5, 5, 5, 3, 4, 4, 4, 6, 5, 5, 6, 4, 5, 5, 3, 5, 2, 3}, // 2772
	{1, 3, 3, 4, 4, 3, 5, 3, 4, 5, 3, 5, 2, 4, 4, 4, 6, 7, 7, 9, 6, 4, 5, 0, 3, 2}, // 2773
	{0, 4, 5, 5, 5, 3, 2, 2, 2, 1, 4, 3, 5, 4, 4, 5, 4, 6, 8, 6, 8, 5, 3, 4, 2, 3}, // 2774
	{1, 6, 5, 6, 4, 4, 4, 1, 2, 2, 3, 5, 5, 5, 6, 4, 5, 6, 3, 6, 3, 4, 5, 5, 5, 5}, // 2775
	{0, 5, 5, 5, 3, 5, 3, 5, 3, 4, 4, 4, 5, 5, 5, 5, 5, 2, 4, 0, 3, 2, 4, 6, 7}, // 2776
	{0, 7, 6, 6, 4, 5, 3, 7, 5, 6, 7, 4, 5, 4, 4, 4, 4, 4, 3, 1, 1, 1, 2, 4, 5, 6}, // 2777
	{1, 7, 5, 5, 5, 3, 5, 4, 6, 7, 5, 7, 5, 4, 5, 2, 4, 3, 3, 4, 4, 4, 6, 4, 5, 5}, // 2778
	{0, 4, 6, 3, 6, 5, 5, 5, 6, 5, 6, 6, 5, 6, 2, 5, 1, 3, 3, 3, 6, 7, 6, 6, 5, 2}, // 2779
	{1, 4, 1, 6, 6, 6, 8, 6, 6, 5, 4, 4, 6, 3, 6, 3, 3, 4, 3, 5, 5, 5, 6, 3, 3}, // 2780
	{1, 3, 1, 3, 4, 5, 7, 5, 7, 5, 4, 5, 4, 4, 5, 4, 5, 6, 5, 6, 5, 4, 6, 2, 4, 2}, // 2781
	{0, 4, 4, 4, 3, 4, 3, 4, 4, 3, 6, 2, 6, 4, 4, 5, 6, 7, 8, 7, 7, 6, 2, 4, 0, 3}, // 2782
	{1, 4, 4, 6, 4, 3, 2, 2, 1, 3, 2, 6, 4, 5, 6, 5, 7, 7, 7, 9, 6, 5, 4, 2, 3, 3}, // 2783
	{0, 3, 7, 4, 5, 4, 2, 2, 2, 2, 3, 3, 4, 6, 4, 6, 5, 4, 6, 2, 5, 3, 4, 5, 5}, // 2784
	{0, 5, 6, 5, 5, 5, 3, 6, 3, 4, 3, 3, 3, 4, 4, 5, 5, 3, 5, 1, 3, 0, 3, 4, 5, 7}, // 2785
	{1, 7, 6, 5, 4, 2, 6, 3, 6, 5, 5, 5, 3, 3, 4, 4, 4, 4, 3, 4, 1, 2, 4, 4, 6, 6}, // 2786
	{0, 5, 5, 4, 3, 4, 3, 5, 5, 5, 6, 5, 5, 4, 2, 4, 1, 3, 3, 3, 4, 5, 4, 5, 5, 4}, // 2787
	{1, 6, 3, 6, 5, 5, 6, 5, 5, 6, 6, 6, 6, 3, 5, 1, 3, 1, 2, 4, 4, 6, 7, 5, 4}, // 2788
	{1, 4, 2, 5, 3, 6, 7, 6, 6, 4, 4, 4, 4, 3, 6, 3, 3, 2, 2, 4, 4, 6, 6, 5, 5, 4}, // 2789
	{0, 3, 3, 3, 5, 6, 5, 7, 5, 4, 5, 3, 4, 3, 3, 4, 5, 4, 6, 5, 6, 5, 3, 5, 1, 3}, // 2790
	{1, 3, 4, 5, 4, 4, 5, 4, 4, 6, 3, 7, 4, 5, 5, 5, 6, 8, 8, 9, 7, 4, 4, 0, 3}, // 2791
	{1, 2, 3, 5, 4, 4, 3, 2, 2, 4, 3, 6, 4, 5, 5, 4, 5, 5, 6, 8, 7, 6, 5, 3, 4, 2}, // 2792
	{0, 4, 6, 5, 6, 5, 4, 3, 2, 2, 3, 3, 4, 4, 5, 6, 4, 4, 6, 2, 5, 2, 5, 4, 4, 5}, // 2793
	{1, 6, 5, 5, 4, 3, 5, 2, 5, 3, 3, 4, 3, 4, 6, 6, 6, 6, 3, 5, 0, 3, 3, 4, 6, 6}, // 2794
	{0, 6, 5, 4, 3, 4, 2, 6, 4, 5, 6, 4, 5, 5, 4, 6, 4, 5, 4, 2, 2, 1, 2, 5, 5}, // 2795
	{0, 7, 6, 4, 5, 4, 3, 5, 4, 6, 7, 6, 6, 5, 4, 5, 2, 4, 3, 3, 3, 4, 4, 5, 4, 4}, // 2796
	{1, 5, 3, 5, 3, 6, 5, 4, 5, 5, 5, 5, 5, 5, 5, 2, 4, 1, 3, 3, 4, 6, 7, 6, 5, 5}, // 2797
	{0, 3, 5, 2, 5, 6, 6, 7, 4, 4, 4, 3, 3, 5, 3, 5, 2, 3, 3, 3, 6, 5, 6, 7, 4, 3}, // 2798
	{1, 3, 2, 4, 4, 4, 7, 5, 6, 5, 3, 5, 3, 4, 5, 5, 5, 5, 5, 6, 5, 4, 6, 1, 5}, // 2799
	{1, 2, 3, 3, 4, 3, 4, 4, 4, 4, 3, 6, 3, 5, 3, 4, 5, 5, 6, 9, 7, 7, 6, 2, 4, 1}, // 2800
	{0, 5, 5, 5, 7, 4, 4, 3, 2, 1, 4, 2, 5, 3, 3, 4, 4, 5, 6, 6, 8, 6, 5, 5, 2, 4}, // 2801
	{1, 4, 4, 7, 5, 5, 5, 2, 2, 1, 1, 4, 3, 4, 5, 4, 5, 5, 4, 6, 3, 6, 4, 5, 5, 5}, // 2802
	{0, 5, 7, 4, 5, 6, 3, 6, 3, 4, 3, 4, 4, 4, 5, 6, 6, 5, 5, 1, 4, 0, 3, 4, 5}, // 2803
	{0, 7, 6, 5, 5, 5, 3, 7, 4, 7, 6, 6, 6, 4, 4, 5, 4, 5, 4, 2, 2, 0, 2, 3, 3, 6}, // 2804
	{1, 6, 5, 5, 3, 3, 4, 4, 6, 6, 6, 7, 6, 6, 5, 2, 4, 1, 3, 3, 4, 4, 5, 4, 5, 4}, // 2805
	{0, 4, 5, 3, 6, 4, 4, 5, 4, 5, 5, 5, 6, 6, 3, 5, 1, 3, 2, 3, 5, 5, 6, 6, 5, 4}, // 2806
	{1, 4, 1, 5, 3, 6, 6, 5, 6, 5, 4, 5, 5, 4, 7, 4, 5, 3, 3, 4, 4, 6, 6, 4, 5}, // 2807
	{1, 3, 2, 3, 2, 4, 5, 4, 7, 5, 4, 6, 3, 5, 4, 4, 5, 5, 5, 7, 5, 6, 5, 3, 6, 2}, // 2808
	{0, 4, 4, 3, 4, 4, 3, 4, 4, 3, 5, 3, 6, 3, 4, 4, 4, 6, 7, 7, 9, 7, 4, 5, 1, 4}, // 2809
	{1, 3, 4, 6, 4, 4, 3, 2, 2, 3, 2, 5, 2, 5, 4, 4, 5, 5, 7, 9, 7, 8, 5, 4, 4}, // 2810
	{1, 3, 5, 6, 5, 6, 4, 3, 3, 1, 2, 3, 3, 4, 4, 4, 6, 5, 5, 6, 3, 6, 4, 5, 5, 5}, // 2811
	{0, 6, 6, 6, 6, 6, 4, 6, 3, 6, 4, 4, 4, 4, 4, 5, 5, 6, 5, 2, 4, -1, 3, 3, 4, 6}, // 2812
	{1, 6, 7, 6, 5, 3, 5, 3, 6, 5, 6, 6, 4, 5, 4, 4, 6, 5, 4, 3, 1, 3, 2, 3, 5, 5}, // 2813
	{0, 7, 7, 5, 5, 4, 4, 5, 4, 5, 6, 5, 6, 4, 3, 5, 1, 4, 3, 3, 3, 4, 4, 5, 5}, // 2814
	{0, 4, 5, 3, 6, 4, 6, 5, 5, 6, 6, 5, 6, 6, 5, 6, 2, 5, 0, 2, 3, 4, 6, 6, 5, 5}, // 2815
	{1, 4, 2, 5, 2, 6, 6, 6, 7, 6, 6, 5, 5, 5, 6, 4, 5, 3, 3, 3, 2, 5, 4, 5, 6, 3}, // 2816
	{0, 4, 3, 2, 4, 4, 5, 7, 5, 6, 5, 4, 5, 3, 4, 4, 4, 5, 5, 5, 6, 5, 5, 5, 2, 5}, // 2817
	{1, 2, 4, 4, 3, 3, 4, 3, 4, 4, 3, 6, 2, 5, 3, 5, 5, 6, 7, 9, 8, 7, 6, 2, 4}, // 2818
	{1, 1, 5, 5, 4, 6, 3, 2, 2, 1, 2, 4, 2, 5, 3, 4, 5, 4, 6, 7, 7, 9, 5, 5, 4, 2}, // 2819
	{0, 5, 4, 4, 7, 5, 5, 4, 1, 3, 2, 2, 4, 3, 4, 5, 4, 5, 5, 4, 6, 2, 6, 3, 4, 5}, // 2820
	{1, 5, 5, 6, 5, 4, 6, 3, 6, 3, 5, 3, 3, 3, 4, 4, 6, 5, 5, 5, 1, 4, 1, 4, 5, 5}, // 2821
	{0, 7, 6, 5, 4, 4, 2, 6, 3, 7, 5, 4, 5, 3, 4, 4, 5, 5, 4, 3, 3, 1, 2, 3, 4}, // 2822
	{0, 7, 6, 5, 5, 3, 4, 4, 4, 6, 5, 6, 7, 5, 5, 5, 3, 5, 2, 4, 3, 3, 4, 5, 4, 5}, // 2823
	{1, 5, 4, 6, 3, 6, 5, 5, 5, 5, 6, 5, 6, 6, 7, 3, 5, 0, 3, 1, 2, 5, 5, 6, 7, 5}, // 2824
	{0, 4, 5, 3, 6, 5, 7, 7, 6, 6, 5, 4, 5, 5, 5, 5, 3, 4, 2, 2, 3, 4, 6, 5, 5, 5}, // 2825
	{1, 3, 3, 3, 3, 5, 6, 5, 7, 5, 5, 6, 3, 5, 5, 5, 5, 5, 6, 6, 5, 6, 5, 3, 5}, // 2826
	{1, 2, 4, 4, 4, 4, 4, 4, 5, 4, 4, 5, 3, 6, 3, 5, 4, 5, 6, 8, 8, 9, 7, 4, 5, 1}, // 2827
	{0, 5, 3, 5, 7, 5, 5, 4, 2, 3, 3, 2, 6, 3, 5, 3, 4, 5, 5, 6, 8, 6, 7, 5, 4, 5}, // 2828
	{1, 3, 5, 6, 5, 7, 5, 3, 3, 1, 3, 3, 3, 4, 4, 4, 6, 5, 5, 6, 3, 6, 3, 5, 4, 5}, // 2829
	{0, 6, 5, 5, 5, 5, 4, 6, 3, 6, 2, 3, 4, 3, 4, 6, 6, 6, 6, 3, 5, 0, 4, 3, 5}, // 2830
	{0, 6, 6, 6, 5, 4, 3, 5, 2, 7, 4, 6, 6, 4, 5, 4, 5, 6, 5, 5, 4, 1, 3, 1, 3, 4}, // 2831
	{1, 4, 6, 6, 4, 5, 4, 3, 5, 5, 6, 6, 5, 6, 5, 4, 5, 2, 5, 2, 3, 3, 3, 4, 5, 4}, // 2832
	{0, 5, 6, 3, 7, 4, 6, 6, 5, 5, 5, 5, 6, 5, 5, 6, 2, 4, 0, 3, 3, 4, 5, 6, 6}, // 2833
	{0, 5, 4, 2, 5, 2, 6, 6, 6, 6, 5, 5, 5, 5, 5, 6, 4, 6, 3, 3, 3, 4, 5, 5, 6, 6}, // 2834
	{1, 3, 4, 3, 2, 3, 4, 5, 7, 5, 6, 6, 3, 5, 4, 4, 4, 4, 5, 6, 6, 7, 6, 5, 6, 3}, // 2835
	{0, 6, 3, 5, 5, 4, 4, 4, 4, 5, 5, 4, 6, 2, 5, 2, 4, 4, 6, 6, 8, 8, 6, 6, 2, 5}, // 2836
	{1, 2, 6, 6, 5, 6, 5, 4, 2, 1, 2, 5, 2, 5, 3, 3, 4, 3, 5, 7, 7, 8, 6, 6, 6}, // 2837
	{1, 3, 6, 5, 5, 7, 5, 6, 5, 2, 3, 2, 2, 3, 3, 5, 5, 5, 5, 5, 4, 6, 3, 6, 3, 4}, // 2838
	{0, 5, 5, 5, 6, 5, 6, 6, 4, 8, 3, 6, 4, 4, 5, 5, 6, 7, 6, 5, 5, 0, 3, 0, 4, 5}, // 2839
	{1, 5, 6, 6, 5, 5, 4, 3, 6, 4, 8, 6, 6, 6, 4, 5, 5, 5, 6, 4, 3, 4, 1, 3, 3, 4}, // 2840
	{0, 6, 6, 5, 6, 4, 5, 4, 4, 6, 6, 7, 7, 5, 6, 6, 3, 5, 2, 4, 3, 4, 4, 4, 4}, // 2841
	{0, 5, 4, 4, 5, 3, 6, 4, 6, 6, 5, 5, 6, 7, 7, 7, 4, 6, 1, 4, 1, 3, 4, 6, 6, 6}, // 2842
	{1, 4, 3, 4, 1, 5, 4, 6, 6, 5, 6, 5, 5, 6, 6, 6, 6, 4, 5, 2, 4, 5, 4, 6, 6, 5}, // 2843
	{0, 5, 3, 3, 4, 3, 5, 6, 5, 6, 6, 5, 6, 4, 6, 4, 5, 6, 5, 5, 6, 6, 6, 6, 3, 6}, // 2844
	{1, 2, 5, 4, 4, 4, 4, 3, 4, 4, 4, 5, 2, 6, 2, 4, 4, 5, 7, 8, 8, 10, 8, 5, 6}, // 2845
	{1, 1, 6, 3, 6, 6, 5, 4, 3, 2, 2, 3, 2, 5, 2, 4, 3, 3, 5, 6, 7, 9, 7, 8, 6, 4}, // 2846
	{0, 5, 4, 5, 7, 5, 7, 5, 3, 5, 2, 3, 3, 3, 4, 4, 5, 6, 5, 5, 6, 3, 6, 3, 5, 5}, // 2847
	{1, 5, 6, 7, 5, 6, 6, 4, 6, 2, 7, 3, 4, 4, 3, 5, 5, 6, 6, 6, 2, 5, 0, 4, 4, 6}, // 2848
	{0, 7, 7, 7, 6, 5, 4, 5, 3, 7, 4, 6, 5, 4, 5, 4, 4, 6, 4, 5, 4, 1, 2, 2, 3}, // 2849
	{0, 6, 6, 7, 7, 4, 5, 3, 4, 6, 4, 6, 7, 6, 6, 6, 5, 6, 2, 5, 2, 3, 4, 4, 4, 4}, // 2850
	{1, 4, 5, 5, 4, 6, 4, 7, 6, 6, 6, 6, 6, 7, 7, 6, 7, 2, 4, 1, 3, 3, 4, 5, 6, 5}, // 2851
	{0, 5, 4, 3, 5, 3, 8, 7, 8, 8, 6, 6, 6, 6, 6, 6, 5, 5, 2, 3, 3, 3, 5, 5, 5}, // 2852
	{0, 5, 4, 3, 3, 2, 4, 4, 5, 7, 5, 6, 6, 4, 6, 3, 5, 4, 5, 6, 6, 6, 6, 6, 5, 6}, // 2853
	{1, 3, 5, 3, 4, 4, 4, 3, 4, 3, 4, 5, 3, 6, 2, 5, 2, 4, 5, 6, 8, 9, 8, 7, 6, 2}, // 2854
	{0, 5, 2, 6, 6, 6, 6, 4, 3, 3, 2, 3, 5, 3, 6, 3, 4, 4, 4, 6, 7, 6, 8, 6, 5, 4}, // 2855
	{1, 3, 5, 5, 6, 7, 5, 4, 5, 2, 3, 2, 3, 4, 3, 5, 5, 5, 6, 6, 4, 6, 2, 6, 4}, // 2856
	{1, 6, 6, 6, 5, 6, 5, 5, 6, 3, 7, 2, 5, 3, 3, 5, 4, 6, 6, 6, 5, 5, 1, 4, 2, 5}, // 2857
	{0, 6, 6, 7, 6, 4, 4, 4, 3, 6, 3, 7, 5, 5, 5, 5, 5, 6, 6, 7, 6, 5, 4, 2, 4, 4}, // 2858
	{1, 5, 7, 5, 5, 6, 3, 4, 4, 4, 6, 6, 6, 6, 6, 6, 6, 3, 6, 2, 5, 3, 4, 5, 5, 5}, // 2859
	{0, 5, 5, 4, 7, 4, 7, 5, 7, 7, 6, 6, 6, 6, 7, 7, 4, 5, 1, 3, 1, 3, 4, 5, 6}, // 2860
	{0, 7, 5, 4, 5, 3, 7, 5, 7, 7, 7, 7, 5, 5, 5, 6, 6, 6, 3, 5, 3, 3, 4, 5, 6, 6}, // 2861
	{1, 5, 6, 3, 3, 4, 4, 5, 6, 5, 6, 6, 4, 6, 4, 6, 4, 5, 5, 6, 6, 6, 5, 6, 6, 3}, // 2862
	{0, 7, 2, 5, 4, 5, 5, 4, 4, 5, 5, 5, 6, 3, 7, 3, 5, 4, 5, 6, 7, 7, 8, 7, 4, 6}, // 2863
	{1, 2, 6, 4, 6, 7, 5, 5, 4, 2, 4, 4, 4, 6, 3, 5, 3, 3, 5, 6, 6, 8, 7, 7, 5}, // 2864
	{1, 4, 6, 4, 6, 7, 6, 6, 5, 3, 4, 2, 4, 3, 3, 4, 4, 4, 6, 5, 5, 6, 3, 6, 3, 5}, // 2865
	{0, 5, 5, 6, 5, 5, 5, 5, 3, 7, 2, 7, 3, 5, 5, 5, 6, 7, 7, 7, 6, 3, 5, 0, 4, 3}, // 2866
	{1, 6, 7, 6, 6, 5, 3, 2, 5, 2, 8, 4, 6, 6, 4, 6, 5, 6, 7, 6, 6, 4, 2, 4, 2}, // 2867
	{1, 4, 6, 6, 7, 6, 4, 5, 4, 4, 6, 5, 6, 6, 6, 7, 5, 4, 6, 2, 5, 2, 4, 3, 4, 5}, // 2868
	{0, 5, 4, 5, 6, 3, 7, 4, 7, 5, 5, 6, 5, 6, 7, 7, 6, 7, 2, 5, 1, 4, 4, 4, 6, 6}, // 2869
	{1, 6, 5, 4, 3, 5, 2, 6, 6, 7, 7, 6, 5, 5, 6, 6, 6, 5, 6, 3, 4, 4, 4, 6, 6, 5}, // 2870
	{0, 6, 4, 4, 3, 2, 4, 4, 6, 7, 6, 7, 6, 4, 7, 3, 5, 4, 5, 6, 6, 5, 6, 6, 5}, // 2871
	{0, 6, 3, 6, 4, 6, 5, 4, 4, 4, 4, 5, 5, 4, 6, 2, 5, 2, 4, 4, 6, 7, 8, 8, 7, 7}, // 2872
	{1, 3, 7, 4, 8, 6, 6, 7, 5, 3, 3, 2, 3, 5, 2, 5, 2, 3, 3, 4, 6, 7, 7, 8, 6, 5}, // 2873
	{0, 6, 4, 7, 6, 6, 8, 6, 6, 6, 3, 4, 3, 4, 5, 4, 5, 6, 6, 6, 6, 4, 6, 3, 6, 4}, // 2874
	{1, 6, 6, 6, 5, 6, 5, 5, 6, 4, 7, 3, 7, 4, 4, 5, 6, 6, 8, 7, 6, 6, 1, 5, 1}, // 2875
	{1, 5, 6, 6, 7, 6, 4, 4, 5, 4, 7, 4, 8, 6, 6, 6, 5, 5, 6, 5, 7, 5, 4, 4, 2, 3}, // 2876
	{0, 4, 4, 7, 6, 5, 6, 3, 5, 4, 5, 7, 6, 7, 7, 6, 6, 6, 4, 6, 2, 5, 4, 4, 5, 5}, // 2877
	{1, 5, 6, 5, 4, 6, 3, 7, 4, 6, 5, 5, 6, 6, 6, 7, 8, 5, 6, 1, 4, 1, 4, 5, 5, 6}, // 2878
	{0, 6, 4, 3, 4, 2, 6, 5, 7, 7, 7, 6, 5, 6, 7, 7, 7, 7, 4, 5, 3, 4, 4, 5, 6}, // 2879
	{0, 6, 4, 5, 3, 3, 4, 3, 5, 6, 5, 7, 6, 5, 6, 3, 6, 3, 5, 6, 5, 6, 6, 6, 6, 6}, // 2880
	{1, 4, 7, 3, 6, 5, 5, 4, 4, 4, 4, 4, 4, 6, 2, 5, 1, 4, 3, 5, 7, 7, 8, 8, 7, 5}, // 2881
	{0, 6, 2, 7, 5, 7, 7, 5, 5, 4, 2, 4, 4, 3, 6, 2, 4, 3, 4, 5, 6, 7, 9, 6, 7, 6}, // 2882
	{1, 4, 6, 5, 7, 7, 6, 6, 5, 3, 5, 2, 4, 4, 3, 5, 4, 5, 6, 6, 5, 6, 3, 7, 4}, // 2883
	{1, 7, 7, 7, 7, 7, 6, 7, 5, 4, 7, 3, 8, 3, 5, 4, 3, 5, 6, 6, 7, 6, 3, 5, 1, 5}, // 2884
	{0, 5, 6, 7, 7, 6, 6, 4, 4, 6, 3, 8, 4, 7, 5, 4, 5, 5, 6, 7, 6, 5, 5, 2, 4, 3}, // 2885
	{1, 4, 7, 6, 7, 6, 4, 5, 4, 5, 6, 5, 7, 6, 7, 6, 6, 5, 7, 3, 5, 3, 4, 4, 4}, // 2886
	{1, 5, 5, 4, 5, 5, 4, 8, 5, 9, 7, 7, 7, 7, 7, 8, 8, 7, 7, 3, 5, 1, 3, 3, 4, 5}, // 2887
	{0, 5, 5, 4, 3, 2, 5, 3, 7, 7, 7, 7, 7, 6, 7, 6, 7, 6, 6, 6, 3, 4, 3, 4, 5, 6}, // 2888
	{1, 6, 5, 4, 4, 3, 3, 5, 5, 6, 6, 6, 6, 6, 4, 6, 3, 6, 4, 6, 6, 6, 6, 7, 5, 5}, // 2889
	{0, 6, 3, 7, 3, 5, 4, 4, 4, 4, 4, 5, 5, 4, 7, 3, 6, 3, 5, 6, 7, 8, 8, 7, 7}, // 2890
	{0, 7, 3, 7, 3, 6, 6, 6, 6, 4, 3, 4, 3, 3, 6, 3, 6, 3, 4, 4, 5, 7, 7, 7, 9, 6}, // 2891
	{1, 6, 6, 4, 7, 6, 6, 8, 6, 5, 6, 3, 5, 3, 3, 4, 4, 5, 6, 6, 6, 6, 4, 6, 2, 7}, // 2892
	{0, 5, 6, 7, 6, 6, 6, 5, 5, 6, 3, 7, 2, 5, 3, 3, 5, 5, 7, 8, 7, 6, 6, 2, 6, 2}, // 2893
	{1, 6, 6, 6, 7, 6, 4, 4, 3, 3, 6, 3, 7, 4, 4, 5, 4, 6, 7, 6, 7, 6, 4, 5, 3}, // 2894
	{1, 5, 5, 5, 7, 6, 5, 6, 4, 5, 4, 5, 7, 6, 7, 7, 6, 6, 6, 3, 6, 2, 5, 3, 4, 5}, // 2895
	{0, 5, 5, 5, 5, 4, 7, 4, 8, 5, 7, 6, 6, 7, 7, 7, 7, 7, 4, 6, 0, 4, 1, 4, 5, 6}, // 2896
	{1, 6, 6, 5, 4, 5, 3, 7, 5, 7, 7, 6, 6, 6, 5, 7, 6, 7, 6, 4, 5, 3, 3, 4, 4, 6}, // 2897
	{0, 6, 5, 5, 3, 4, 4, 4, 6, 6, 6, 7, 6, 5, 7, 3, 7, 4, 6, 6, 6, 6, 6, 6, 5}, // 2898
	{0, 6, 3, 7, 3, 6, 4, 5, 5, 5, 5, 5, 5, 6, 7, 3, 7, 2, 5, 3, 5, 7, 7, 7, 7, 6}, // 2899
	{1, 5, 6, 3, 7, 5, 7, 8, 7, 6, 5, 4, 4, 5, 4, 6, 2, 4, 3, 3, 5, 5, 6, 8, 6, 7}, // 2900
	{0, 5, 4, 6, 4, 7, 6, 6, 7, 6, 3, 5, 3, 5, 4, 4, 5, 4, 5, 6, 5, 5, 6, 4, 7}, // 2901
	{0, 3, 6, 5, 6, 6, 6, 5, 5, 5, 4, 7, 2, 7, 3, 5, 4, 4, 7, 7, 7, 7, 6, 3, 6, 1}, // 2902
	{1, 5, 4, 7, 7, 6, 5, 5, 4, 4, 6, 4, 8, 5, 6, 5, 5, 6, 5, 6, 7, 5, 6, 4, 2, 4}, // 2903
	{0, 3, 4, 7, 6, 6, 6, 4, 6, 4, 4, 6, 6, 7, 6, 6, 7, 6, 5, 7, 3, 6, 2, 5, 5, 5}, // 2904
	{1, 5, 5, 4, 5, 6, 4, 7, 4, 7, 5, 6, 6, 6, 6, 8, 7, 7, 7, 3, 6, 1, 4, 3, 5}, // 2905
	{1, 7, 6, 5, 5, 3, 3, 5, 3, 8, 5, 7, 7, 6, 6, 7, 7, 8, 8, 7, 7, 4, 5, 4, 5, 6}, // 2906
	{0, 5, 6, 6, 3, 4, 3, 3, 5, 4, 6, 6, 6, 6, 6, 4, 7, 4, 6, 4, 6, 7, 7, 6, 7, 7}, // 2907
	{1, 5, 7, 4, 8, 5, 7, 6, 5, 5, 5, 5, 5, 6, 5, 6, 2, 5, 1, 4, 5, 6, 7, 8, 7, 7}, // 2908
	{0, 6, 4, 8, 5, 8, 7, 7, 7, 5, 4, 3, 4, 4, 6, 4, 6, 3, 4, 3, 5, 6, 7, 6, 8}, // 2909
	{0, 6, 6, 6, 4, 7, 6, 7, 8, 6, 5, 5, 3, 5, 3, 4, 5, 4, 5, 5, 5, 6, 5, 4, 7, 3}, // 2910
	{1, 7, 5, 6, 7, 6, 6, 6, 6, 6, 7, 4, 8, 3, 7, 4, 4, 5, 5, 7, 8, 6, 5, 6, 1, 5}, // 2911
	{0, 2, 6, 6, 7, 7, 6, 5, 4, 5, 4, 7, 4, 7, 5, 5, 5, 4, 5, 6, 6, 7, 5, 4, 4, 3}, // 2912
	{1, 5, 5, 6, 7, 6, 5, 6, 3, 5, 5, 5, 7, 6, 7, 7, 6, 6, 6, 3, 7, 2, 5, 3, 4}, // 2913
	{1, 5, 5, 5, 5, 4, 4, 6, 3, 8, 4, 6, 6, 6, 7, 7, 7, 9, 8, 5, 7, 2, 4, 2, 4, 5}, // 2914
	{0, 5, 6, 4, 3, 3, 3, 2, 6, 4, 8, 6, 6, 7, 6, 6, 7, 7, 8, 7, 5, 5, 2, 4, 4, 5}, // 2915
	{1, 6, 6, 4, 5, 3, 3, 4, 4, 6, 5, 6, 6, 6, 5, 6, 3, 6, 3, 6, 6, 6, 7, 6, 6, 6}, // 2916
	{0, 6, 4, 7, 4, 7, 5, 5, 5, 4, 4, 5, 4, 5, 6, 3, 6, 1, 5, 3, 6, 7, 8, 8, 8}, // 2917
	{0, 7, 5, 7, 3, 7, 5, 7, 7, 6, 5, 4, 3, 4, 4, 4, 6, 3, 4, 3, 3, 5, 5, 6, 8, 6}, // 2918
	{1, 7, 6, 5, 7, 6, 7, 7, 7, 7, 7, 4, 6, 3, 5, 4, 4, 5, 4, 5, 5, 5, 5, 6, 3, 7}, // 2919
	{0, 4, 7, 6, 7, 7, 6, 6, 6, 6, 5, 8, 3, 7, 2, 4, 4, 4, 6, 6, 7, 7, 6, 3, 5, 2}, // 2920
	{1, 7, 5, 8, 9, 7, 6, 6, 4, 4, 6, 4, 8, 4, 6, 4, 4, 5, 5, 6, 7, 5, 5, 4, 2}, // 2921
	{1, 5, 3, 6, 6, 6, 6, 6, 4, 6, 4, 6, 7, 6, 8, 7, 7, 8, 7, 5, 7, 2, 6, 2, 5, 5}, // 2922
	{0, 4, 5, 5, 4, 5, 5, 4, 7, 4, 8, 6, 7, 7, 7, 8, 9, 8, 8, 7, 3, 5, 0, 4, 4, 4}, // 2923
	{1, 6, 6, 4, 4, 3, 2, 5, 3, 8, 6, 8, 7, 6, 6, 6, 6, 8, 7, 6, 6, 3, 5, 4, 5}, // 2924
	{1, 5, 6, 5, 5, 2, 4, 2, 3, 4, 4, 5, 6, 5, 6, 6, 5, 7, 4, 7, 5, 6, 6, 7, 7, 7}, // 2925
	{0, 6, 5, 6, 3, 7, 4, 5, 4, 4, 4, 4, 4, 5, 6, 4, 7, 2, 6, 2, 5, 5, 6, 8, 8, 7}, // 2926
	{1, 6, 6, 3, 7, 4, 8, 7, 7, 7, 5, 4, 4, 3, 5, 6, 4, 6, 2, 4, 4, 4, 6, 6, 6, 8}, // 2927
	{0, 5, 5, 5, 4, 7, 6, 7, 8, 6, 5, 5, 2, 5, 2, 4, 4, 4, 5, 6, 5, 6, 6, 4, 7}, // 2928
	{0, 3, 8, 5, 7, 7, 7, 5, 5, 5, 5, 6, 3, 6, 2, 5, 2, 3, 5, 5, 7, 8, 7, 6, 6, 2}, // 2929
	{1, 5, 3, 7, 7, 7, 7, 6, 4, 5, 4, 4, 7, 4, 8, 4, 4, 5, 4, 6, 7, 5, 7, 5, 4, 4}, // 2930
	{0, 3, 5, 5, 5, 7, 6, 5, 6, 3, 5, 5, 5, 6, 5, 6, 7, 6, 6, 6, 3, 7, 2, 5, 3, 4}, // 2931
	{1, 6, 5, 6, 5, 5, 5, 7, 4, 8, 5, 7, 6, 6, 6, 7, 7, 8, 7, 5, 6, 0, 4, 2, 5}, // 2932
	{1, 6, 6, 6, 5, 4, 4, 4, 3, 7, 4, 7, 6, 6, 6, 5, 7, 7, 7, 8, 7, 4, 6, 3, 5, 5}, // 2933
	{0, 5, 7, 6, 5, 6, 3, 4, 4, 4, 5, 5, 6, 7, 5, 5, 7, 4, 7, 4, 7, 6, 6, 7, 7, 6}, // 2934
	{1, 6, 6, 4, 7, 4, 8, 5, 6, 5, 5, 6, 6, 6, 5, 7, 3, 6, 2, 5, 3, 5, 6, 7, 7, 6}, // 2935
	{0, 5, 4, 6, 3, 7, 5, 8, 7, 7, 6, 5, 4, 5, 4, 4, 6, 3, 4, 3, 4, 5, 5, 6, 7}, // 2936
	{0, 6, 6, 5, 5, 6, 4, 7, 7, 7, 6, 6, 3, 6, 2, 5, 3, 4, 4, 5, 5, 6, 6, 5, 6, 3}, // 2937
	{1, 7, 4, 6, 6, 6, 6, 6, 5, 6, 6, 4, 8, 3, 7, 2, 5, 4, 4, 6, 8, 7, 7, 6, 3, 5}, // 2938
	{0, 2, 6, 4, 7, 8, 6, 5, 5, 4, 4, 6, 4, 8, 4, 6, 5, 4, 6, 6, 6, 7, 5, 6, 5}, // 2939
	{0, 3, 5, 4, 6, 7, 6, 7, 6, 3, 6, 4, 5, 6, 5, 6, 6, 6, 6, 6, 5, 6, 3, 6, 2, 5}, // 2940
	{1, 5, 4, 5, 5, 4, 4, 4, 4, 7, 4, 8, 4, 5, 6, 6, 7, 8, 8, 8, 8, 4, 6, 2, 5, 5}, // 2941
	{0, 5, 7, 5, 5, 3, 3, 2, 5, 3, 7, 4, 6, 6, 6, 6, 7, 6, 8, 6, 7, 7, 4, 5, 4, 5}, // 2942
	{1, 6, 6, 6, 5, 3, 5, 3, 4, 5, 5, 6, 6, 5, 6, 6, 4, 7, 3, 6, 4, 6, 6, 6, 6}, // 2943
	{1, 7, 6, 5, 7, 3, 8, 4, 7, 5, 5, 5, 5, 5, 5, 6, 4, 6, 1, 4, 1, 4, 5, 6, 7, 8}, // 2944
	{0, 8, 7, 7, 4, 8, 4, 8, 7, 7, 7, 5, 4, 4, 4, 4, 5, 3, 4, 2, 3, 3, 4, 5, 6, 6}, // 2945
	{1, 7, 5, 5, 6, 5, 7, 7, 7, 7, 6, 6, 6, 3, 6, 2, 4, 5, 4, 5, 6, 5, 5, 5, 4, 6}, // 2946
	{0, 3, 7, 4, 6, 7, 6, 5, 6, 6, 6, 7, 4, 8, 3, 5, 3, 4, 5, 5, 6, 7, 6, 5, 5}, // 2947
	{0, 1, 6, 3, 7, 8, 7, 7, 6, 4, 5, 5, 4, 7, 4, 7, 4, 4, 5, 4, 5, 6, 5, 6, 4, 4}, // 2948
	{1, 4, 3, 5, 5, 5, 7, 6, 5, 5, 3, 6, 4, 5, 7, 5, 7, 7, 6, 7, 7, 4, 7, 2, 6, 3}, // 2949
	{0, 5, 5, 5, 5, 5, 3, 3, 6, 3, 7, 4, 7, 6, 6, 7, 7, 8, 9, 8, 6, 6, 1, 5, 2, 5}, // 2950
	{1, 6, 6, 5, 4, 3, 3, 3, 2, 6, 5, 8, 6, 6, 6, 6, 6, 8, 7, 8, 6, 5, 5, 3, 5}, // 2951
	{1, 5, 5, 6, 6, 4, 4, 3, 4, 3, 4, 5, 5, 5, 6, 6, 5, 6, 3, 7, 4, 6, 6, 6, 7, 6}, // 2952
	{0, 6, 6, 6, 4, 7, 3, 8, 4, 6, 4, 4, 5, 4, 5, 4, 5, 3, 5, 1, 5, 3, 5, 7, 7, 8}, // 2953
	{1, 7, 6, 4, 6, 3, 8, 5, 8, 7, 6, 5, 4, 4, 5, 5, 4, 6, 3, 4, 3, 3, 5, 5, 6, 7}, // 2954
	{0, 5, 7, 4, 4, 6, 6, 6, 7, 7, 7, 6, 4, 6, 2, 5, 3, 4, 4, 5, 5, 5, 6, 5, 6}, // 2955
	{0, 4, 8, 4, 8, 7, 7, 7, 7, 6, 6, 6, 5, 7, 2, 6, 2, 4, 3, 4, 6, 6, 6, 6, 6, 3}, // 2956
	{1, 6, 2, 6, 6, 7, 8, 6, 5, 5, 4, 4, 5, 4, 8, 4, 5, 4, 4, 6, 5, 6, 7, 4, 5, 4}, // 2957
	{0, 3, 5, 4, 5, 7, 5, 6, 6, 4, 6, 4, 6, 6, 6, 7, 6, 6, 7, 6, 5, 6, 2, 6, 3, 5}, // 2958
	{1, 4, 5, 5, 5, 4, 5, 5, 4, 8, 4, 8, 5, 6, 7, 6, 7, 8, 8, 7, 7, 3, 5, 1, 5}, // 2959
	{1, 4, 5, 6, 4, 4, 3, 2, 2, 5, 3, 7, 4, 7, 6, 5, 6, 7, 6, 8, 6, 7, 6, 4, 6, 4}, // 2960
	{0, 6, 6, 6, 5, 5, 2, 3, 2, 3, 4, 4, 6, 6, 5, 5, 5, 4, 7, 2, 7, 4, 5, 6, 6, 6}, // 2961
	{1, 6, 6, 4, 6, 3, 7, 3, 7, 4, 5, 5, 5, 5, 6, 7, 5, 6, 2, 5, 1, 4, 4, 6, 6}, // 2962
	{1, 7, 6, 6, 5, 3, 7, 4, 8, 6, 7, 6, 5, 4, 5, 4, 5, 5, 3, 5, 2, 3, 3, 4, 6, 7}, // 2963
	{0, 5, 7, 5, 5, 6, 5, 7, 6, 7, 7, 6, 5, 6, 2, 5, 2, 4, 4, 4, 4, 5, 5, 5, 5, 4}, // 2964
	{1, 6, 3, 7, 5, 7, 6, 6, 6, 5, 5, 5, 6, 4, 7, 2, 5, 2, 4, 5, 5, 7, 7, 7, 5, 5}, // 2965
	{0, 2, 6, 3, 7, 7, 6, 6, 5, 4, 5, 4, 5, 7, 4, 6, 3, 4, 4, 5, 6, 6, 5, 6, 5}, // 2966
	{0, 4, 5, 3, 6, 6, 7, 7, 6, 5, 6, 3, 6, 5, 5, 7, 6, 7, 6, 6, 5, 5, 3, 5, 1, 6}, // 2967
	{1, 4, 5, 5, 5, 5, 5, 5, 4, 7, 3, 7, 4, 7, 5, 5, 6, 7, 7, 8, 7, 5, 7, 1, 5, 3}, // 2968
	{0, 6, 6, 6, 6, 5, 3, 3, 3, 2, 6, 4, 7, 5, 5, 5, 5, 6, 7, 6, 8, 6, 4, 6, 3, 5}, // 2969
	{1, 5, 5, 6, 5, 4, 4, 2, 4, 4, 4, 5, 5, 6, 7, 5, 6, 7, 3, 7, 3, 7, 5, 5, 6}, // 2970
	{1, 6, 5, 5, 5, 3, 6, 3, 8, 4, 6, 5, 5, 5, 5, 5, 6, 6, 3, 6, 0, 4, 2, 5, 6, 7}, // 2971
	{0, 7, 6, 5, 4, 5, 3, 7, 5, 8, 6, 6, 5, 4, 3, 4, 5, 5, 5, 2, 4, 2, 3, 5, 5, 6}, // 2972
	{1, 6, 5, 6, 4, 4, 5, 4, 7, 6, 6, 6, 6, 4, 5, 2, 5, 3, 4, 5, 5, 5, 5, 5, 4, 6}, // 2973
	{0, 3, 7, 3, 7, 5, 6, 6, 5, 5, 4, 5, 4, 7, 2, 7, 2, 4, 4, 4, 6, 6, 6, 6, 5}, // 2974
	{0, 3, 5, 2, 7, 6, 8, 7, 6, 5, 5, 4, 4, 5, 5, 7, 3, 5, 3, 3, 5, 5, 5, 6, 4, 5}, // 2975
	{1, 4, 3, 4, 4, 5, 7, 6, 6, 6, 3, 6, 3, 5, 5, 5, 6, 5, 6, 7, 5, 5, 6, 3, 6, 2}, // 2976
	{0, 6, 5, 5, 5, 5, 3, 4, 5, 3, 6, 2, 7, 4, 5, 5, 6, 7, 9, 7, 7, 7, 3, 5, 1, 5}, // 2977
	{1, 5, 5, 6, 5, 3, 3, 2, 2, 4, 3, 7, 4, 6, 6, 5, 6, 6, 6, 8, 6, 6, 6, 4, 6}, // 2978
	{1, 4, 6, 7, 5, 5, 5, 3, 4, 3, 4, 5, 4, 6, 6, 5, 5, 5, 4, 6, 3, 7, 4, 6, 6, 6}, // 2979
	{0, 7, 6, 6, 5, 6, 4, 8, 4, 7, 4, 5, 5, 4, 4, 5, 5, 4, 5, 1, 4, 1, 4, 4, 6, 7}, // 2980
	{1, 7, 6, 5, 5, 4, 7, 4, 8, 6, 7, 6, 5, 4, 4, 4, 5, 5, 4, 5, 2, 4, 3, 4, 5}, // 2981
	{1, 6, 5, 7, 4, 5, 5, 4, 6, 6, 7, 7, 6, 6, 5, 3, 6, 2, 5, 4, 5, 5, 5, 4, 5, 4}, // 2982
	{0, 3, 6, 2, 7, 4, 7, 7, 7, 7, 6, 6, 6, 7, 4, 7, 2, 5, 2, 4, 5, 5, 6, 6, 5, 3}, // 2983
	{1, 4, 1, 6, 3, 7, 7, 7, 7, 5, 4, 5, 4, 5, 7, 4, 6, 3, 4, 4, 4, 5, 6, 5, 6, 3}, // 2984
	{0, 3, 5, 3, 5, 5, 5, 6, 5, 4, 6, 2, 5, 4, 5, 6, 5, 6, 6, 6, 6, 6, 3, 6, 2}, // 2985
	{0, 5, 4, 5, 5, 4, 4, 4, 3, 3, 5, 3, 7, 3, 6, 5, 5, 7, 8, 8, 9, 8, 5, 6, 1, 5}, // 2986
	{1, 3, 6, 6, 5, 4, 4, 2, 2, 2, 1, 6, 4, 6, 4, 5, 5, 5, 6, 8, 7, 8, 6, 5, 5, 3}, // 2987
	{0, 6, 5, 5, 7, 5, 3, 4, 1, 4, 3, 3, 5, 4, 4, 5, 5, 4, 5, 2, 6, 2, 7, 5, 6, 6}, // 2988
	{1, 6, 6, 5, 5, 4, 7, 3, 7, 4, 5, 4, 4, 4, 4, 5, 5, 6, 3, 5, 1, 5, 3, 5, 7}, // 2989
	{1, 7, 6, 6, 5, 4, 5, 2, 7, 5, 7, 6, 5, 4, 4, 3, 4, 5, 4, 5, 3, 4, 2, 4, 5, 5}, // 2990
	{0, 6, 7, 4, 6, 4, 5, 6, 5, 7, 7, 7, 6, 5, 4, 6, 2, 5, 2, 3, 4, 3, 5, 4, 4, 4}, // 2991
	{1, 5, 3, 7, 4, 8, 6, 7, 6, 5, 5, 5, 6, 5, 7, 2, 5, 1, 4, 3, 4, 6, 6, 6, 5, 5}, // 2992
	{0, 3, 6, 2, 7, 6, 8, 7, 6, 5, 4, 3, 4, 6, 4, 6, 3, 5, 3, 3, 5, 5, 5, 5, 3}, // 2993
	{0, 4, 4, 3, 5, 4, 6, 6, 6, 6, 6, 4, 6, 4, 6, 5, 5, 6, 6, 6, 6, 5, 4, 6, 2, 6}, // 2994
	{1, 2, 4, 4, 4, 4, 4, 3, 4, 5, 3, 7, 3, 7, 4, 5, 5, 6, 7, 8, 7, 7, 6, 3, 6, 1}, // 2995
	{0, 5, 4, 5, 6, 5, 3, 2, 1, 2, 4, 3, 7, 4, 6, 4, 4, 6, 6, 6, 8, 5, 6, 5, 3, 5}, // 2996
	{1, 4, 5, 6, 5, 4, 5, 1, 3, 2, 3, 4, 4, 5, 6, 5, 6, 6, 4, 7, 2, 7, 4, 6, 6}, // 2997
	{1, 6, 6, 5, 4, 4, 6, 2, 7, 2, 6, 4, 4, 5, 4, 5, 5, 6, 4, 6, 2, 5, 1, 4, 5, 6}, // 2998
	{0, 7, 6, 5, 4, 4, 3, 6, 4, 8, 6, 6, 6, 4, 5, 4, 4, 5, 5, 3, 4, 1, 4, 3, 4, 6}, // 2999
	{1, 6, 5, 6, 3, 5, 4, 4, 7, 6, 6, 6, 6, 5, 5, 3, 5, 2, 4, 4, 4, 5, 5, 5, 5}, // 3000
}
