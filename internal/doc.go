// Package internal implements Gregorian to Hijri conversion with the
// tabular Kuwaiti algorithm.
//
// A [Converter] holds the day adjustment and default locale. Each call to
// [Converter.Convert] shifts the instant by the adjustment, computes its
// Julian Day Number and derives the Hijri year, month and day. The weekday
// is taken before the shift. The resulting [Date] resolves month and
// weekday names through pkg/i18n, with the month names replaced by the
// Arabic or transliterated Hijri table depending on the locale, and
// renders Go reference layouts with [Date.Format].
//
// The root package re-exports these types; applications should import it
// instead.
package internal
