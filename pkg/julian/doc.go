// Package julian converts between proleptic Gregorian calendar dates and
// Julian Day Numbers.
//
// A Julian Day Number (JDN) is a continuous count of days used as a
// calendar-agnostic intermediate when converting between calendar systems.
// JDN 0 is Monday, 1 January 4713 BC in the proleptic Julian calendar
// (24 November 4714 BC proleptic Gregorian).
//
// # Year Numbering
//
// DayNumber uses astronomical year numbering, the same convention as the
// standard library's time package: year 0 is 1 BC, year -1 is 2 BC.
//
//	jdn := julian.DayNumber(2000, time.January, 1) // 2451545
//
// FromZeroless accepts historical year numbering where there is no year 0
// and -1 means 1 BC. Year 0 is invalid there and yields 0:
//
//	julian.FromZeroless(-1, time.January, 1) == julian.DayNumber(0, time.January, 1)
//
// # Validation
//
// Conversions are pure arithmetic and do not validate their input. Passing an
// impossible date (31 April) produces a number without meaning. Dates taken
// from a time.Time are always valid.
package julian
