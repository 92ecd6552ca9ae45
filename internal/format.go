package internal

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/hijri/pkg/i18n"
)

// Format renders the date with a Go reference layout. Date elements come
// from the Hijri fields, clock and zone elements from the adjusted instant.
// English month and weekday names in the rendered text are then replaced
// with the localized names in a single pass:
//
//	d.Format("Monday, January 2, 2006 3:04 PM") // Monday, Sha'aban 8, 1413 7:00 PM
//
// Short month names are replaced with the full localized name.
func (d *Date) Format(layout string) string {
	rendered := d.render(layout)

	weekday := d.weekday.String()
	month := englishMonth(d.month)
	monthName := d.MonthName()

	return strings.NewReplacer(
		weekday, d.DayName(),
		month, monthName,
		shortName(weekday), d.ShortDayName(),
		shortName(month), monthName,
	).Replace(rendered)
}

// FormatPreset renders one of the locale's preset layouts.
func (d *Date) FormatPreset(p i18n.Preset) (string, error) {
	layout, ok := d.tr.Format().Layout(p)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidLayout, p)
	}
	return d.Format(layout), nil
}
