package internal_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hijri/internal"
)

func TestConverter_Adjustment(t *testing.T) {
	t.Parallel()

	t.Run("defaults to minus one", func(t *testing.T) {
		t.Parallel()

		c := internal.NewConverter()
		defer c.Close()
		require.Equal(t, -1, c.Adjustment())
		require.Equal(t, internal.DefaultAdjustment, c.Adjustment())
	})

	t.Run("set then get", func(t *testing.T) {
		t.Parallel()

		c := internal.NewConverter()
		defer c.Close()
		for _, n := range []int{0, 2, -3, 1000, -1000} {
			c.SetAdjustment(n)
			require.Equal(t, n, c.Adjustment())
		}
	})

	t.Run("option", func(t *testing.T) {
		t.Parallel()

		c := internal.NewConverter(internal.WithAdjustment(1))
		defer c.Close()
		require.Equal(t, 1, c.Adjustment())
	})

	t.Run("converters are independent", func(t *testing.T) {
		t.Parallel()

		a := internal.NewConverter()
		defer a.Close()
		b := internal.NewConverter()
		defer b.Close()

		a.SetAdjustment(3)
		require.Equal(t, 3, a.Adjustment())
		require.Equal(t, -1, b.Adjustment())
	})
}

func TestConvert_AdjustmentShift(t *testing.T) {
	t.Parallel()

	t.Run("zero matches the unadjusted date", func(t *testing.T) {
		t.Parallel()

		c := internal.NewConverter(internal.WithAdjustment(0))
		defer c.Close()

		d := c.Convert(time.Date(1993, 1, 31, 0, 0, 0, 0, time.UTC))
		require.Equal(t, "1413-08-08", d.String())
		require.Equal(t, time.Date(1993, 1, 31, 0, 0, 0, 0, time.UTC), d.Time())
	})

	t.Run("minus one reads the previous day", func(t *testing.T) {
		t.Parallel()

		c := internal.NewConverter()
		defer c.Close()

		d := c.Convert(time.Date(1993, 2, 1, 19, 0, 0, 0, time.UTC))
		require.Equal(t, "1413-08-08", d.String())
		require.Equal(t, time.Date(1993, 1, 31, 19, 0, 0, 0, time.UTC), d.Time())
	})

	t.Run("positive offsets add days", func(t *testing.T) {
		t.Parallel()

		c := internal.NewConverter()
		defer c.Close()

		d := c.ConvertWithAdjustment(time.Date(1993, 1, 30, 0, 0, 0, 0, time.UTC), 1)
		require.Equal(t, "1413-08-08", d.String())
		require.Equal(t, -1, c.Adjustment())
	})

	t.Run("weekday is captured before the shift", func(t *testing.T) {
		t.Parallel()

		c := internal.NewConverter()
		defer c.Close()

		src := time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)
		for offset := -5; offset <= 5; offset++ {
			d := c.ConvertWithAdjustment(src, offset)
			require.Equal(t, time.Monday, d.Weekday(), "offset %d", offset)
			require.Equal(t, "Monday", d.DayName(), "offset %d", offset)
			require.Equal(t, src.AddDate(0, 0, offset), d.Time(), "offset %d", offset)
		}
	})

	t.Run("time of day and location survive", func(t *testing.T) {
		t.Parallel()

		c := internal.NewConverter()
		defer c.Close()

		riyadh := time.FixedZone("AST", 3*60*60)
		src := time.Date(2024, 4, 9, 23, 45, 10, 0, riyadh)
		d := c.Convert(src)
		require.Equal(t, 23, d.Time().Hour())
		require.Equal(t, 45, d.Time().Minute())
		require.Equal(t, riyadh, d.Time().Location())
		require.Equal(t, src, d.Gregorian())
	})
}

func TestProfiles(t *testing.T) {
	t.Parallel()

	t.Run("load yaml", func(t *testing.T) {
		t.Parallel()

		p, err := internal.LoadProfiles(strings.NewReader("SA: -1\neg: 0\nma: 1\n"))
		require.NoError(t, err)
		require.Equal(t, []string{"eg", "ma", "sa"}, p.Names())

		offset, ok := p.Lookup("sa")
		require.True(t, ok)
		require.Equal(t, -1, offset)
	})

	t.Run("empty yaml", func(t *testing.T) {
		t.Parallel()

		p, err := internal.LoadProfiles(strings.NewReader(""))
		require.NoError(t, err)
		require.Empty(t, p)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := internal.LoadProfiles(strings.NewReader("sa: [1, 2"))
		require.ErrorIs(t, err, internal.ErrInvalidProfiles)
	})

	t.Run("parse env form", func(t *testing.T) {
		t.Parallel()

		p, err := internal.ParseProfiles("sa=-1, eg = 0,,MA=1")
		require.NoError(t, err)
		require.Equal(t, internal.Profiles{"sa": -1, "eg": 0, "ma": 1}, p)
	})

	t.Run("parse rejects malformed pairs", func(t *testing.T) {
		t.Parallel()

		for _, in := range []string{"sa", "sa=x", "=1"} {
			_, err := internal.ParseProfiles(in)
			require.ErrorIs(t, err, internal.ErrInvalidProfiles, in)
		}
	})

	t.Run("use profile", func(t *testing.T) {
		t.Parallel()

		c := internal.NewConverter(internal.WithProfiles(internal.Profiles{"eg": 0, "ma": 1}))
		defer c.Close()

		require.NoError(t, c.UseProfile("MA"))
		require.Equal(t, 1, c.Adjustment())

		err := c.UseProfile("xx")
		require.ErrorIs(t, err, internal.ErrUnknownProfile)
		require.Equal(t, 1, c.Adjustment())

		offset, ok := c.Profile("eg")
		require.True(t, ok)
		require.Equal(t, 0, offset)
	})
}
