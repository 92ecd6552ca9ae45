package julian

import "time"

// Epoch offsets of the Fliegel–Van Flandern style day count.
const (
	yearOffset = 4800
	dayOffset  = 32045
)

// DayNumber returns the Julian Day Number of the proleptic Gregorian date
// year-month-day, with year in astronomical numbering.
func DayNumber(year int, month time.Month, day int) int {
	a := floorDiv(14-int(month), 12)
	y := year + yearOffset - a
	m := int(month) + 12*a - 3

	return day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - dayOffset
}

// DayNumberOf returns the Julian Day Number of t's calendar date in t's location.
// The clock time is ignored.
func DayNumberOf(t time.Time) int {
	y, m, d := t.Date()
	return DayNumber(y, m, d)
}

// FromZeroless returns the Julian Day Number of a date given in historical
// year numbering (no year 0, -1 is 1 BC).
// Returns 0 for year 0, which does not exist in that numbering.
func FromZeroless(year int, month time.Month, day int) int {
	switch {
	case year == 0:
		return 0
	case year < 0:
		year++
	}
	return DayNumber(year, month, day)
}

// ToGregorian returns the proleptic Gregorian date of the Julian Day Number jdn,
// with year in astronomical numbering.
func ToGregorian(jdn int) (year int, month time.Month, day int) {
	a := jdn + dayOffset - 1
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)

	day = e - floorDiv(153*m+2, 5) + 1
	month = time.Month(m + 3 - 12*floorDiv(m, 10))
	year = 100*b + d - yearOffset + floorDiv(m, 10)

	return year, month, day
}

// Weekday returns the day of the week of the Julian Day Number jdn.
func Weekday(jdn int) time.Weekday {
	return time.Weekday(floorMod(jdn+1, 7))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - b*floorDiv(a, b)
}
