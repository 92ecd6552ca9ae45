package hijri

import (
	"sync"
	"time"
)

var defaultConverter = sync.OnceValue(func() *Converter { return New() })

// Default returns the process-wide converter used by the package-level
// functions. It is shared: SetAdjustment on it affects every caller.
func Default() *Converter {
	return defaultConverter()
}

// Convert converts t with the default converter.
func Convert(t time.Time, locale ...string) *Date {
	return Default().Convert(t, locale...)
}

// Today converts the current time with the default converter.
func Today(locale ...string) *Date {
	return Default().Today(locale...)
}

// SetAdjustment sets the day offset of the default converter.
func SetAdjustment(days int) {
	Default().SetAdjustment(days)
}

// Adjustment returns the day offset of the default converter.
func Adjustment() int {
	return Default().Adjustment()
}
