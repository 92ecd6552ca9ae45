package internal

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrymomot/hijri/pkg/i18n"
)

// Date is a Hijri date produced by a Converter. It keeps the adjusted
// Gregorian instant for time-of-day and zone rendering next to the Hijri
// fields, and owns its locale state. Dates are independent values; SetLocale
// must not race with reads of the same Date.
type Date struct {
	conv *Converter
	tr   *i18n.Translator

	source time.Time // instant passed to the converter
	t      time.Time // source shifted by the adjustment

	locale    string
	fallbacks []string

	adjustment int
	jdn        int
	year       int
	month      int
	day        int
	weekday    time.Weekday
}

// Year returns the Hijri year.
func (d *Date) Year() int { return d.year }

// Month returns the Hijri month, 1 through 12.
func (d *Date) Month() int { return d.month }

// Day returns the day of the Hijri month, 1 through 30.
func (d *Date) Day() int { return d.day }

// Weekday is the weekday of the instant given to the converter. The
// adjustment never changes it.
func (d *Date) Weekday() time.Weekday { return d.weekday }

// Locale returns the locale the date resolves names for, as it was given.
func (d *Date) Locale() string { return d.locale }

// Time returns the Gregorian instant after the adjustment was applied.
func (d *Date) Time() time.Time { return d.t }

// Gregorian returns the instant the date was converted from.
func (d *Date) Gregorian() time.Time { return d.source }

// Adjustment returns the day offset used for this date.
func (d *Date) Adjustment() int { return d.adjustment }

// JulianDay returns the Julian Day Number the Hijri fields were derived from.
func (d *Date) JulianDay() int { return d.jdn }

// Translator returns the translator resolving names for the current locale.
func (d *Date) Translator() *i18n.Translator { return d.tr }

// SetLocale switches the locale used for names and presets. The translator
// is only re-derived when locale or fallbacks differ from the current ones.
// An empty locale selects the converter default.
func (d *Date) SetLocale(locale string, fallbacks ...string) *Date {
	if locale == "" {
		locale = d.conv.defaultLocale
	}
	if d.tr != nil && locale == d.locale && slices.Equal(fallbacks, d.fallbacks) {
		return d
	}
	d.locale = locale
	d.fallbacks = slices.Clone(fallbacks)
	d.tr = d.conv.Translator(locale, fallbacks...)
	return d
}

// YearWithEra renders the year with the locale's era suffix, e.g. "1413 AH".
func (d *Date) YearWithEra() string {
	return i18n.ReplacePlaceholders(
		d.tr.Lookup("era", "{{year}} AH"),
		i18n.M{"year": d.year},
	)
}

// String returns the date as "YYYY-MM-DD".
func (d *Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

type dateJSON struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Day        int    `json:"day"`
	Weekday    int    `json:"weekday"`
	Locale     string `json:"locale"`
	MonthName  string `json:"month_name"`
	DayName    string `json:"day_name"`
	Formatted  string `json:"formatted"`
	Adjustment int    `json:"adjustment"`
	JulianDay  int    `json:"jdn"`
	Gregorian  string `json:"gregorian"`
}

// MarshalJSON encodes the Hijri fields with localized names and the
// full date-time preset rendering.
func (d *Date) MarshalJSON() ([]byte, error) {
	formatted, err := d.FormatPreset(i18n.PresetFullDateTime)
	if err != nil {
		return nil, err
	}
	return json.Marshal(dateJSON{
		Year:       d.year,
		Month:      d.month,
		Day:        d.day,
		Weekday:    int(d.weekday),
		Locale:     d.locale,
		MonthName:  d.MonthName(),
		DayName:    d.DayName(),
		Formatted:  formatted,
		Adjustment: d.adjustment,
		JulianDay:  d.jdn,
		Gregorian:  d.source.Format(time.RFC3339),
	})
}
