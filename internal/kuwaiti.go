package internal

import "math"

// Constants of the tabular (Kuwaiti) Hijri calendar.
const (
	hijriEpoch = 1948084 // JDN of the day before 1 Muharram 1 AH
	cycleDays  = 10631   // days in a 30-year cycle
	cycleYears = 30
)

const (
	yearLength = float64(cycleDays) / cycleYears
	yearShift  = 8.01 / 60
)

// civilFromJDN converts a Julian Day Number to a Hijri year, month and day.
// It is total over int. The arithmetic is carried out in float64 so that
// results match the published algorithm for every input, including the
// occasional month 13, which is clamped to 12 (day 30 of Dhu al-Hijjah).
func civilFromJDN(jdn int) (year, month, day int) {
	z := float64(jdn - hijriEpoch)

	cycle := math.Floor(z / cycleDays)
	z -= cycleDays * cycle

	j := math.Floor((z - yearShift) / yearLength)
	z -= math.Floor(j*yearLength + yearShift)

	year = int(cycleYears*cycle + j)
	month = int(math.Floor((z + 28.5001) / 29.5))
	if month == 13 {
		month = 12
	}
	day = int(z - math.Floor(29.5001*float64(month)-29))

	return year, month, day
}
