package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCivilFromJDN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		jdn              int
		year, month, day int
	}{
		{name: "1970-01-01", jdn: 2440588, year: 1389, month: 10, day: 23},
		{name: "1993-01-31", jdn: 2449019, year: 1413, month: 8, day: 8},
		{name: "1993-02-01", jdn: 2449020, year: 1413, month: 8, day: 9},
		{name: "2000-01-01", jdn: 2451545, year: 1420, month: 9, day: 25},
		{name: "2024-03-11", jdn: 2460381, year: 1445, month: 9, day: 2},
		{name: "2024-04-09", jdn: 2460410, year: 1445, month: 10, day: 1},
		{name: "2026-10-19", jdn: 2461333, year: 1448, month: 5, day: 8},
		{name: "month 13 clamped 2021-08-08", jdn: 2459435, year: 1442, month: 12, day: 30},
		{name: "month 13 clamped 2024-07-06", jdn: 2460498, year: 1445, month: 12, day: 30},
		{name: "new year after clamp", jdn: 2460499, year: 1446, month: 1, day: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			y, m, d := civilFromJDN(tt.jdn)
			require.Equal(t, tt.year, y)
			require.Equal(t, tt.month, m)
			require.Equal(t, tt.day, d)
		})
	}
}

func TestCivilFromJDN_Continuity(t *testing.T) {
	t.Parallel()

	py, pm, pd := civilFromJDN(2299999)
	for jdn := 2300000; jdn < 2600000; jdn++ {
		y, m, d := civilFromJDN(jdn)

		require.GreaterOrEqual(t, m, 1)
		require.LessOrEqual(t, m, 12)
		require.GreaterOrEqual(t, d, 1)
		require.LessOrEqual(t, d, 30)

		nextDay := y == py && m == pm && d == pd+1
		nextMonth := y == py && m == pm+1 && d == 1
		nextYear := y == py+1 && m == 1 && d == 1 && pm == 12
		require.True(t, nextDay || nextMonth || nextYear,
			"jdn %d: %d-%d-%d follows %d-%d-%d", jdn, y, m, d, py, pm, pd)

		py, pm, pd = y, m, d
	}
}
