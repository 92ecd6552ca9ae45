package internal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hijri/internal"
	"github.com/dmitrymomot/hijri/pkg/i18n"
)

func TestDate_FormatPreset(t *testing.T) {
	t.Parallel()

	c := internal.NewConverter()
	defer c.Close()

	src := time.Date(1993, 2, 1, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		locale string
		preset i18n.Preset
		want   string
	}{
		{locale: "en", preset: i18n.PresetFullDateTime, want: "Monday, Sha'aban 8, 1413 7:00 PM"},
		{locale: "ar", preset: i18n.PresetFullDateTime, want: "الاثنين 8 شَعبان 1413 19:00"},
		{locale: "en", preset: i18n.PresetLongDate, want: "Sha'aban 8, 1413"},
		{locale: "en", preset: i18n.PresetDate, want: "08/08/1413"},
		{locale: "ar", preset: i18n.PresetDate, want: "8/8/1413"},
		{locale: "en", preset: i18n.PresetTime, want: "7:00 PM"},
		{locale: "fr", preset: i18n.PresetFullDateTime, want: "lundi 8 Sha'aban 1413 19:00"},
		{locale: "ru", preset: i18n.PresetFullDateTime, want: "понедельник, 8 Sha'aban 1413 г., 19:00"},
		{locale: "tr", preset: i18n.PresetFullDateTime, want: "8 Sha'aban 1413 Pazartesi 19:00"},
		{locale: "id", preset: i18n.PresetLongDateTime, want: "8 Sha'aban 1413 pukul 19.00"},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+string(tt.preset), func(t *testing.T) {
			t.Parallel()

			got, err := c.Convert(src, tt.locale).FormatPreset(tt.preset)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown preset", func(t *testing.T) {
		t.Parallel()

		_, err := c.Convert(src).FormatPreset("LLLLL")
		require.ErrorIs(t, err, internal.ErrInvalidLayout)
	})
}

func TestDate_Format(t *testing.T) {
	t.Parallel()

	c := internal.NewConverter()
	defer c.Close()

	en := c.Convert(time.Date(1993, 2, 1, 19, 4, 5, 123000000, time.UTC))
	ar := c.Convert(time.Date(1993, 2, 1, 19, 4, 5, 123000000, time.UTC), "ar")

	tests := []struct {
		name   string
		date   *internal.Date
		layout string
		want   string
	}{
		{name: "iso date", date: en, layout: "2006-01-02", want: "1413-08-08"},
		{name: "short year and unpadded", date: en, layout: "06/1/2", want: "13/8/8"},
		{name: "space padded day", date: en, layout: "[_2]", want: "[ 8]"},
		{name: "underscore before year", date: en, layout: "x_2006", want: "x_1413"},
		{name: "short names", date: en, layout: "Mon Jan 2", want: "Mon Sha'aban 8"},
		{name: "clock", date: en, layout: "15:04:05.000 PM MST -07:00", want: "19:04:05.123 PM UTC +00:00"},
		{name: "twelve hour", date: en, layout: "03:04 pm", want: "07:04 pm"},
		{name: "literal text", date: en, layout: "Day 2 of January", want: "Day 8 of Sha'aban"},
		{name: "lowercase after Jan is literal", date: en, layout: "Janet", want: "Janet"},
		{name: "arabic names", date: ar, layout: "Monday, 2 January 2006", want: "الاثنين, 8 شَعبان 1413"},
		{name: "arabic short names", date: ar, layout: "Mon Jan", want: "اثنين شَعبان"},
		{name: "empty layout", date: en, layout: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, tt.date.Format(tt.layout))
		})
	}
}

func TestDate_FormatEndOfMonth(t *testing.T) {
	t.Parallel()

	c := internal.NewConverter(internal.WithAdjustment(0))
	defer c.Close()

	// 29 Safar: a Gregorian February 29 in a common year must not roll over.
	safar := c.Convert(time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC))
	require.Equal(t, "1446-02-29", safar.Format("2006-01-02"))
	require.Equal(t, "Safar 29, 1446", safar.Format("January 2, 2006"))

	// The clamped month 13 renders as 30 Dhu al-Hijjah.
	hijjah := c.Convert(time.Date(2024, 7, 6, 0, 0, 0, 0, time.UTC), "ar")
	require.Equal(t, "1445-12-30", hijjah.Format("2006-01-02"))
	require.Equal(t, "السبت 30 ذو الحِجّة 1445", hijjah.Format("Monday 2 January 2006"))
}
