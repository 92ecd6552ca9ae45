package hijri

import (
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/hijri/internal"
	"github.com/dmitrymomot/hijri/pkg/i18n"
)

// Type aliases - public API
type (
	// Converter turns Gregorian instants into Hijri dates.
	// It carries the day adjustment and the default locale and is safe
	// for concurrent use.
	Converter = internal.Converter

	// Date is a Hijri date with its source instant, locale and
	// adjustment. Dates are independent values; SetLocale mutates the
	// receiver and must not race with other calls on the same Date.
	Date = internal.Date

	// Option configures a Converter.
	Option = internal.Option

	// Profiles maps profile names (e.g. "sa", "eg") to day offsets.
	Profiles = internal.Profiles

	// Preset names a locale-dependent layout.
	Preset = i18n.Preset
)

// Layout presets.
const (
	PresetDate            = i18n.PresetDate
	PresetLongDate        = i18n.PresetLongDate
	PresetLongDateTime    = i18n.PresetLongDateTime
	PresetFullDateTime    = i18n.PresetFullDateTime
	PresetTime            = i18n.PresetTime
	PresetTimeWithSeconds = i18n.PresetTimeWithSeconds
)

// DefaultAdjustment is the offset a new Converter starts with.
const DefaultAdjustment = internal.DefaultAdjustment

// Errors
var (
	ErrUnknownProfile  = internal.ErrUnknownProfile
	ErrInvalidProfiles = internal.ErrInvalidProfiles
	ErrInvalidLocale   = internal.ErrInvalidLocale
	ErrInvalidLayout   = internal.ErrInvalidLayout
)

// Constructors

// New creates a Converter.
//
// Example:
//
//	conv := hijri.New(
//	    hijri.WithAdjustment(0),
//	    hijri.WithLocale("ar"),
//	)
//	d := conv.Convert(time.Date(2024, 4, 9, 0, 0, 0, 0, time.UTC))
//	fmt.Println(d.Format("Monday 2 January 2006")) // الثلاثاء 1 شوّال 1445
func New(opts ...Option) *Converter {
	return internal.NewConverter(opts...)
}

// Converter options

// WithAdjustment sets the initial day offset. Default: DefaultAdjustment.
func WithAdjustment(days int) Option {
	return internal.WithAdjustment(days)
}

// WithLocale sets the locale used when Convert gets none. Default: "en".
func WithLocale(locale string) Option {
	return internal.WithLocale(locale)
}

// WithI18n replaces the built-in calendar translations. The catalog must
// provide weekdays, weekdays_short, months and months_short in the
// converter's namespace.
func WithI18n(i *i18n.I18n) Option {
	return internal.WithI18n(i)
}

// WithNamespace sets the catalog namespace. Default: "calendar".
func WithNamespace(ns string) Option {
	return internal.WithNamespace(ns)
}

// WithLogger sets the logger for conversion and translation diagnostics.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithProfiles registers named adjustment profiles.
func WithProfiles(p Profiles) Option {
	return internal.WithProfiles(p)
}

// WithClock replaces time.Now for Today.
func WithClock(now func() time.Time) Option {
	return internal.WithClock(now)
}

// Profiles

// LoadProfiles reads profiles from YAML:
//
//	sa: -1
//	eg: 0
func LoadProfiles(r io.Reader) (Profiles, error) {
	return internal.LoadProfiles(r)
}

// ParseProfiles reads profiles from "name=offset" pairs separated by commas.
func ParseProfiles(s string) (Profiles, error) {
	return internal.ParseProfiles(s)
}

// Names

// ArabicMonths returns the twelve Hijri month names in Arabic script.
func ArabicMonths() []string {
	return internal.ArabicMonths()
}

// TransliteratedMonths returns the twelve Hijri month names in Latin script.
func TransliteratedMonths() []string {
	return internal.TransliteratedMonths()
}

// MonthNames returns the twelve Hijri month names used for locale.
func MonthNames(locale string) []string {
	return internal.MonthNames(locale)
}

// IsArabic reports whether locale selects the Arabic month names.
func IsArabic(locale string) bool {
	return internal.IsArabic(locale)
}

// ValidateLocale returns ErrInvalidLocale for malformed locale identifiers.
func ValidateLocale(locale string) error {
	return internal.ValidateLocale(locale)
}

// Catalog returns the built-in calendar translations.
func Catalog() *i18n.I18n {
	return internal.Catalog()
}
