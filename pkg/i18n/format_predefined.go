package i18n

import "strings"

// FormatEnUS returns a LocaleFormat configured for US English (en-US).
func FormatEnUS() *LocaleFormat {
	return NewLocaleFormat()
}

// FormatEnGB returns a LocaleFormat configured for British English (en-GB).
func FormatEnGB() *LocaleFormat {
	return NewLocaleFormat(
		WithDateFormat("02/01/2006"),
		WithTimeFormat("15:04"),
		WithLongDateFormat("2 January 2006"),
		WithDateTimeFormat("2 January 2006 15:04"),
		WithFullDateTimeFormat("Monday, 2 January 2006 15:04"),
	)
}

// FormatArSA returns a LocaleFormat configured for Arabic (ar-SA).
// Arabic renders the clock in 24-hour form and puts the day before the month.
func FormatArSA() *LocaleFormat {
	return NewLocaleFormat(
		WithDateFormat("2/1/2006"),
		WithTimeFormat("15:04"),
		WithLongDateFormat("2 January 2006"),
		WithDateTimeFormat("2 January 2006 15:04"),
		WithFullDateTimeFormat("Monday 2 January 2006 15:04"),
	)
}

// FormatFrFR returns a LocaleFormat configured for French (fr-FR).
func FormatFrFR() *LocaleFormat {
	return NewLocaleFormat(
		WithDateFormat("02/01/2006"),
		WithTimeFormat("15:04"),
		WithLongDateFormat("2 January 2006"),
		WithDateTimeFormat("2 January 2006 15:04"),
		WithFullDateTimeFormat("Monday 2 January 2006 15:04"),
	)
}

// FormatRuRU returns a LocaleFormat configured for Russian (ru-RU).
func FormatRuRU() *LocaleFormat {
	return NewLocaleFormat(
		WithDateFormat("02.01.2006"),
		WithTimeFormat("15:04"),
		WithLongDateFormat("2 January 2006 г."),
		WithDateTimeFormat("2 January 2006 г., 15:04"),
		WithFullDateTimeFormat("Monday, 2 January 2006 г., 15:04"),
	)
}

// FormatTrTR returns a LocaleFormat configured for Turkish (tr-TR).
func FormatTrTR() *LocaleFormat {
	return NewLocaleFormat(
		WithDateFormat("02.01.2006"),
		WithTimeFormat("15:04"),
		WithLongDateFormat("2 January 2006"),
		WithDateTimeFormat("2 January 2006 15:04"),
		WithFullDateTimeFormat("2 January 2006 Monday 15:04"),
	)
}

// FormatIdID returns a LocaleFormat configured for Indonesian (id-ID).
func FormatIdID() *LocaleFormat {
	return NewLocaleFormat(
		WithDateFormat("02/01/2006"),
		WithTimeFormat("15.04"),
		WithLongDateFormat("2 January 2006"),
		WithDateTimeFormat("2 January 2006 pukul 15.04"),
		WithFullDateTimeFormat("Monday, 2 January 2006 pukul 15.04"),
	)
}

// predefinedFormats maps lower-cased language tags to their format constructors.
var predefinedFormats = map[string]func() *LocaleFormat{
	"en":    FormatEnUS,
	"en-us": FormatEnUS,
	"en-gb": FormatEnGB,
	"ar":    FormatArSA,
	"ar-sa": FormatArSA,
	"fr":    FormatFrFR,
	"fr-fr": FormatFrFR,
	"ru":    FormatRuRU,
	"ru-ru": FormatRuRU,
	"tr":    FormatTrTR,
	"tr-tr": FormatTrTR,
	"id":    FormatIdID,
	"id-id": FormatIdID,
}

// FormatFor returns the predefined LocaleFormat for a language tag,
// trying the full tag first and then its base language.
// Unknown languages get US English layouts.
func FormatFor(lang string) *LocaleFormat {
	tag := strings.ToLower(strings.ReplaceAll(lang, "_", "-"))
	if fn, ok := predefinedFormats[tag]; ok {
		return fn()
	}
	if fn, ok := predefinedFormats[baseLanguage(tag)]; ok {
		return fn()
	}
	return FormatEnUS()
}
