package api

import (
	"time"

	"github.com/dmitrymomot/hijri/internal"
	"github.com/dmitrymomot/hijri/pkg/i18n"
)

// Result is the response body of a conversion. It is the cached unit, so
// it holds only rendered values.
type Result struct {
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

// render is either a Go layout or a preset name.
type render struct {
	layout string
	preset i18n.Preset
}

func (r render) key() string {
	if r.layout != "" {
		return "layout:" + r.layout
	}
	return "preset:" + string(r.preset)
}

func newResult(d *internal.Date, r render) (Result, error) {
	formatted := ""
	if r.layout != "" {
		formatted = d.Format(r.layout)
	} else {
		var err error
		if formatted, err = d.FormatPreset(r.preset); err != nil {
			return Result{}, err
		}
	}

	return Result{
		Year:       d.Year(),
		Month:      d.Month(),
		Day:        d.Day(),
		Weekday:    int(d.Weekday()),
		Locale:     d.Locale(),
		MonthName:  d.MonthName(),
		DayName:    d.DayName(),
		Formatted:  formatted,
		Adjustment: d.Adjustment(),
		JulianDay:  d.JulianDay(),
		Gregorian:  d.Gregorian().Format(time.RFC3339),
	}, nil
}
