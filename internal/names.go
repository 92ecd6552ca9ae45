package internal

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/hijri/pkg/i18n"
)

var arabicMonths = []string{
	"مُحرَّم",
	"صفَر",
	"ربيع الأول",
	"ربيع الآخر",
	"جمادى الأول",
	"جمادى الآخرة",
	"رَجب",
	"شَعبان",
	"رَمضان",
	"شوّال",
	"ذو القِعدة",
	"ذو الحِجّة",
}

var transliteratedMonths = []string{
	"Muharram",
	"Safar",
	"Rabi' Al-Awwal",
	"Rabi' Al-Akher",
	"Jumada Al-Awwal",
	"Jumada Al-Akherah",
	"Rajab",
	"Sha'aban",
	"Ramadan",
	"Shawwal",
	"Dhu Al-Qi'dah",
	"Dhu Al-Hijjah",
}

// ArabicMonths returns the twelve Hijri month names in Arabic script.
func ArabicMonths() []string { return slices.Clone(arabicMonths) }

// TransliteratedMonths returns the twelve Hijri month names in Latin script.
func TransliteratedMonths() []string { return slices.Clone(transliteratedMonths) }

// IsArabic reports whether locale selects Arabic month names: its first two
// characters are "ar", compared case-insensitively.
func IsArabic(locale string) bool {
	return len(locale) >= 2 && strings.EqualFold(locale[:2], "ar")
}

// MonthNames returns the Hijri month table for locale.
func MonthNames(locale string) []string {
	if IsArabic(locale) {
		return ArabicMonths()
	}
	return TransliteratedMonths()
}

// normalizeLocale lowercases the language subtag so that catalog lookups
// match the case-insensitive Arabic and format checks: "AR" reads "ar" and
// "Ar-sa" reads "ar-sa". The region and separator are kept.
func normalizeLocale(locale string) string {
	lang, rest := locale, ""
	if i := strings.IndexAny(locale, "-_"); i >= 0 {
		lang, rest = locale[:i], locale[i:]
	}
	return strings.ToLower(lang) + rest
}

func normalizeLocales(locales []string) []string {
	if len(locales) == 0 {
		return locales
	}
	out := make([]string, len(locales))
	for i, l := range locales {
		out[i] = normalizeLocale(l)
	}
	return out
}

// ValidateLocale returns ErrInvalidLocale when locale is not a well-formed
// BCP 47 tag. Underscores are accepted as separators.
func ValidateLocale(locale string) error {
	if _, ok := i18n.Canonical(locale); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
	}
	return nil
}

// TranslatedMonthName resolves the month name from the "months" family of
// keys, e.g. keySuffix "_short" reads "months_short". context is the layout
// text the name will appear in and selects between standalone and inflected
// forms. An empty defaultValue falls back to the English name of the month
// number.
func (d *Date) TranslatedMonthName(context, keySuffix, defaultValue string) string {
	if defaultValue == "" {
		defaultValue = englishMonth(d.month)
	}
	return d.translatedName("months", keySuffix, context, d.month-1, defaultValue)
}

// TranslatedDayName is TranslatedMonthName for the "weekdays" family,
// indexed by the weekday captured before adjustment.
func (d *Date) TranslatedDayName(context, keySuffix, defaultValue string) string {
	if defaultValue == "" {
		defaultValue = d.weekday.String()
	}
	return d.translatedName("weekdays", keySuffix, context, int(d.weekday), defaultValue)
}

// MonthName returns the full month name in the date's locale.
func (d *Date) MonthName() string { return d.TranslatedMonthName("", "", "") }

// ShortMonthName returns the month name used for short layouts. Hijri
// month names are not abbreviated, so it matches MonthName.
func (d *Date) ShortMonthName() string {
	return d.TranslatedMonthName("", "_short", shortName(englishMonth(d.month)))
}

// DayName returns the full weekday name in the date's locale.
func (d *Date) DayName() string { return d.TranslatedDayName("", "", "") }

// ShortDayName returns the abbreviated weekday name, or the first three
// letters of the English name when the locale has none.
func (d *Date) ShortDayName() string {
	return d.TranslatedDayName("", "_short", shortName(d.weekday.String()))
}

// translatedName applies, in order: a Resolver stored under base+suffix,
// the standalone form when one exists and the context does not call for the
// inflected form, and finally the indexed entry itself.
func (d *Date) translatedName(base, suffix, context string, index int, def string) string {
	key := base + suffix

	if msg, ok := d.tr.Message(key); ok && msg.IsResolver() {
		if name := msg.Resolve(d.t, context, index); name != "" {
			return name
		}
		return def
	}

	idx := strconv.Itoa(index)
	standalone := key + "_standalone"
	if d.tr.Lookup(standalone+"."+idx, "") != "" {
		useStandalone := context == ""
		if !useStandalone {
			if matched, ok := d.tr.Match(base+"_regexp", context); ok && !matched {
				useStandalone = true
			}
		}
		if useStandalone {
			key = standalone
		}
	}

	name := d.tr.Lookup(key+"."+idx, "")
	if name == "" {
		d.conv.logger.Warn("calendar name missing, using default",
			slog.String("locale", d.locale),
			slog.String("key", key+"."+idx),
			slog.String("default", def),
		)
		return def
	}
	return name
}

// englishMonth names month m of 1..12 after the Gregorian month with the
// same number, the form the rendering stage emits before substitution.
func englishMonth(m int) string {
	return time.Month(m).String()
}

func shortName(s string) string {
	if len(s) > 3 {
		return s[:3]
	}
	return s
}
