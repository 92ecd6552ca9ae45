// Package hijri converts Gregorian dates to the Hijri (Islamic) calendar
// and renders them with localized month and weekday names.
//
// Conversion uses the tabular Kuwaiti algorithm over the Julian Day
// Number of the Gregorian date. Because tabular dates can differ from
// local moon sighting by a day or two, every Converter applies a signed
// day adjustment before converting; new converters start at
// [DefaultAdjustment] (-1).
//
// # Quick Start
//
//	conv := hijri.New()
//	d := conv.Convert(time.Date(1993, 2, 1, 19, 0, 0, 0, time.UTC))
//
//	d.Year(), d.Month(), d.Day() // 1413 8 8
//	d.FormatPreset(hijri.PresetFullDateTime)
//	// Monday, Sha'aban 8, 1413 7:00 PM
//
//	d.SetLocale("ar").FormatPreset(hijri.PresetFullDateTime)
//	// الاثنين 8 شَعبان 1413 19:00
//
// # Adjustment
//
// The adjustment shifts the instant by whole days before conversion. The
// weekday is taken from the instant before the shift, so a Monday stays a
// Monday whatever the offset. Named offsets can be registered as
// [Profiles] and selected with Converter.UseProfile:
//
//	profiles, _ := hijri.ParseProfiles("sa=-1,eg=0")
//	conv := hijri.New(hijri.WithProfiles(profiles))
//	_ = conv.UseProfile("eg")
//
// # Locales
//
// Locales whose primary language is "ar" use Arabic month names; every
// other locale uses the transliterated names (Muharram, Safar, ...).
// Weekday names come from the calendar translations, embedded for en, ar,
// fr, ru, tr and id. Custom catalogs are supplied with [WithI18n].
//
// # Formatting
//
// Date.Format takes a Go reference layout. Date elements (2006, January,
// 01, 2, Monday, Mon, ...) are rendered from the Hijri fields, clock and
// zone elements from the adjusted instant. English names are then
// replaced with the localized ones.
//
// # Package-level helpers
//
// [Convert], [Today], [SetAdjustment] and [Adjustment] use a shared
// process-wide converter returned by [Default].
package hijri
