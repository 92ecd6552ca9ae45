package julian_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hijri/pkg/julian"
)

func TestDayNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  int
	}{
		{"J2000 epoch", 2000, time.January, 1, 2451545},
		{"unix epoch", 1970, time.January, 1, 2440588},
		{"hijri reference date", 1993, time.January, 31, 2449019},
		{"day after reference", 1993, time.February, 1, 2449020},
		{"leap day", 2024, time.February, 29, 2460370},
		{"first day of common era", 1, time.January, 1, 1721426},
		{"year zero", 0, time.January, 1, 1721060},
		{"negative year", -1, time.December, 31, 1721059},
		{"julian period start", -4713, time.November, 24, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, julian.DayNumber(tt.year, tt.month, tt.day))
		})
	}
}

func TestDayNumberOf(t *testing.T) {
	t.Parallel()

	t.Run("ignores clock time", func(t *testing.T) {
		t.Parallel()
		morning := time.Date(1993, time.February, 1, 0, 0, 0, 0, time.UTC)
		evening := time.Date(1993, time.February, 1, 23, 59, 59, 0, time.UTC)
		require.Equal(t, julian.DayNumberOf(morning), julian.DayNumberOf(evening))
	})

	t.Run("uses the date in the value's location", func(t *testing.T) {
		t.Parallel()
		loc := time.FixedZone("UTC+3", 3*60*60)
		ts := time.Date(1993, time.January, 31, 22, 0, 0, 0, time.UTC).In(loc)
		require.Equal(t, 2449020, julian.DayNumberOf(ts))
	})
}

func TestFromZeroless(t *testing.T) {
	t.Parallel()

	t.Run("positive years match astronomical numbering", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, julian.DayNumber(1993, time.February, 1), julian.FromZeroless(1993, time.February, 1))
	})

	t.Run("1 BC is astronomical year 0", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, julian.DayNumber(0, time.March, 1), julian.FromZeroless(-1, time.March, 1))
	})

	t.Run("year zero is invalid", func(t *testing.T) {
		t.Parallel()
		require.Zero(t, julian.FromZeroless(0, time.January, 1))
	})
}

func TestToGregorian(t *testing.T) {
	t.Parallel()

	t.Run("inverts DayNumber", func(t *testing.T) {
		t.Parallel()
		start := julian.DayNumber(-4000, time.January, 1)
		end := julian.DayNumber(6000, time.January, 1)
		for jdn := start; jdn < end; jdn += 997 {
			y, m, d := julian.ToGregorian(jdn)
			require.Equal(t, jdn, julian.DayNumber(y, m, d), "jdn %d -> %d-%d-%d", jdn, y, m, d)
		}
	})

	t.Run("agrees with the time package", func(t *testing.T) {
		t.Parallel()
		ts := time.Date(1900, time.March, 1, 0, 0, 0, 0, time.UTC)
		for range 3000 {
			y, m, d := julian.ToGregorian(julian.DayNumberOf(ts))
			gy, gm, gd := ts.Date()
			require.Equal(t, []int{gy, int(gm), gd}, []int{y, int(m), d})
			ts = ts.AddDate(0, 0, 47)
		}
	})
}

func TestWeekday(t *testing.T) {
	t.Parallel()

	require.Equal(t, time.Saturday, julian.Weekday(2451545))
	require.Equal(t, time.Monday, julian.Weekday(2449020))
	require.Equal(t, time.Monday, julian.Weekday(0))

	ts := time.Date(1800, time.January, 1, 0, 0, 0, 0, time.UTC)
	for range 500 {
		require.Equal(t, ts.Weekday(), julian.Weekday(julian.DayNumberOf(ts)))
		ts = ts.AddDate(0, 0, 113)
	}
}
