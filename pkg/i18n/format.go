package i18n

import "time"

// Preset names a locale-dependent layout, following the long-date-format
// tokens common to date libraries (L, LL, LLL, LLLL, LT, LTS).
type Preset string

// Layout presets.
const (
	PresetDate            Preset = "L"    // 01/02/2006
	PresetLongDate        Preset = "LL"   // January 2, 2006
	PresetLongDateTime    Preset = "LLL"  // January 2, 2006 3:04 PM
	PresetFullDateTime    Preset = "LLLL" // Monday, January 2, 2006 3:04 PM
	PresetTime            Preset = "LT"   // 3:04 PM
	PresetTimeWithSeconds Preset = "LTS"  // 3:04:05 PM
)

// LocaleFormat holds the Go time layouts used by a locale.
// It is immutable after creation and safe for concurrent use.
type LocaleFormat struct {
	layouts map[Preset]string
}

// LocaleFormatOption configures a LocaleFormat during construction.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat creates a new LocaleFormat with the given options.
// If no options are provided, it defaults to US English layouts.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		layouts: map[Preset]string{
			PresetDate:            "01/02/2006",
			PresetLongDate:        "January 2, 2006",
			PresetLongDateTime:    "January 2, 2006 3:04 PM",
			PresetFullDateTime:    "Monday, January 2, 2006 3:04 PM",
			PresetTime:            "3:04 PM",
			PresetTimeWithSeconds: "3:04:05 PM",
		},
	}

	for _, opt := range opts {
		opt(lf)
	}

	return lf
}

// WithLayout sets the Go time layout for a preset.
// Empty layouts are ignored.
func WithLayout(p Preset, layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		if layout != "" {
			lf.layouts[p] = layout
		}
	}
}

// WithDateFormat sets the short date layout (L).
func WithDateFormat(layout string) LocaleFormatOption {
	return WithLayout(PresetDate, layout)
}

// WithTimeFormat sets the time layouts (LT, LTS). The seconds variant
// inserts ":05" after the minutes of the given layout.
func WithTimeFormat(layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		WithLayout(PresetTime, layout)(lf)
		WithLayout(PresetTimeWithSeconds, withSeconds(layout))(lf)
	}
}

// WithLongDateFormat sets the long date layout (LL).
func WithLongDateFormat(layout string) LocaleFormatOption {
	return WithLayout(PresetLongDate, layout)
}

// WithDateTimeFormat sets the long date-time layout (LLL).
func WithDateTimeFormat(layout string) LocaleFormatOption {
	return WithLayout(PresetLongDateTime, layout)
}

// WithFullDateTimeFormat sets the long date-time layout with weekday (LLLL).
func WithFullDateTimeFormat(layout string) LocaleFormatOption {
	return WithLayout(PresetFullDateTime, layout)
}

// Layout returns the Go time layout for the preset.
// The second result is false for unknown presets.
func (lf *LocaleFormat) Layout(p Preset) (string, bool) {
	layout, ok := lf.layouts[p]
	return layout, ok
}

// FormatDate formats a date with the locale's short date layout.
func (lf *LocaleFormat) FormatDate(t time.Time) string {
	return t.Format(lf.layouts[PresetDate])
}

// FormatTime formats a time with the locale's time layout.
func (lf *LocaleFormat) FormatTime(t time.Time) string {
	return t.Format(lf.layouts[PresetTime])
}

// FormatDateTime formats a datetime with the locale's long date-time layout.
func (lf *LocaleFormat) FormatDateTime(t time.Time) string {
	return t.Format(lf.layouts[PresetLongDateTime])
}

func withSeconds(layout string) string {
	for _, minutes := range []string{"04", "4"} {
		for i := 0; i+len(minutes) <= len(layout); i++ {
			if layout[i:i+len(minutes)] != minutes || i == 0 {
				continue
			}
			if sep := layout[i-1]; sep == ':' || sep == '.' {
				return layout[:i+len(minutes)] + string(sep) + "05" + layout[i+len(minutes):]
			}
		}
	}
	return layout
}
