package internal

import (
	"strconv"
	"strings"
)

// chunk identifies a layout element. Date elements (January, Jan, 1, 01,
// Monday, Mon, 2, _2, 02, 2006, 06) are rendered from the Hijri fields;
// chunkClock covers everything else package time renders on its own,
// including the day-of-year elements.
type chunk int

const (
	chunkNone chunk = iota
	chunkClock
	chunkLongMonth
	chunkMonth
	chunkNumMonth
	chunkZeroMonth
	chunkLongWeekday
	chunkWeekday
	chunkDay
	chunkUnderDay
	chunkZeroDay
	chunkLongYear
	chunkYear
)

var zoneElements = [...]string{
	"-07:00:00", "-070000", "-07:00", "-0700", "-07",
	"Z07:00:00", "Z070000", "Z07:00", "Z0700", "Z07",
}

// render formats layout using the Hijri fields for date elements.
func (d *Date) render(layout string) string {
	var b strings.Builder
	b.Grow(len(layout) + 10)

	for layout != "" {
		prefix, kind, elem, suffix := nextChunk(layout)
		b.WriteString(prefix)
		layout = suffix

		switch kind {
		case chunkNone:
		case chunkClock:
			b.WriteString(d.t.Format(elem))
		case chunkLongMonth:
			b.WriteString(englishMonth(d.month))
		case chunkMonth:
			b.WriteString(shortName(englishMonth(d.month)))
		case chunkNumMonth:
			b.WriteString(strconv.Itoa(d.month))
		case chunkZeroMonth:
			b.WriteString(pad(d.month, 2, '0'))
		case chunkLongWeekday:
			b.WriteString(d.weekday.String())
		case chunkWeekday:
			b.WriteString(shortName(d.weekday.String()))
		case chunkDay:
			b.WriteString(strconv.Itoa(d.day))
		case chunkUnderDay:
			b.WriteString(pad(d.day, 2, ' '))
		case chunkZeroDay:
			b.WriteString(pad(d.day, 2, '0'))
		case chunkLongYear:
			if d.year < 0 {
				b.WriteByte('-')
			}
			b.WriteString(pad(abs(d.year), 4, '0'))
		case chunkYear:
			b.WriteString(pad(abs(d.year)%100, 2, '0'))
		}
	}

	return b.String()
}

// nextChunk splits layout around its first element the way package time
// does, so literal text is never mistaken for an element and vice versa.
func nextChunk(layout string) (prefix string, kind chunk, elem, suffix string) {
	for i := 0; i < len(layout); i++ {
		rest := layout[i:]
		cut := func(k chunk, n int) (string, chunk, string, string) {
			return layout[:i], k, layout[i : i+n], layout[i+n:]
		}

		switch c := layout[i]; c {
		case 'J':
			if strings.HasPrefix(rest, "January") {
				return cut(chunkLongMonth, 7)
			}
			if strings.HasPrefix(rest, "Jan") && !startsWithLower(rest[3:]) {
				return cut(chunkMonth, 3)
			}
		case 'M':
			if strings.HasPrefix(rest, "Monday") {
				return cut(chunkLongWeekday, 6)
			}
			if strings.HasPrefix(rest, "Mon") && !startsWithLower(rest[3:]) {
				return cut(chunkWeekday, 3)
			}
			if strings.HasPrefix(rest, "MST") {
				return cut(chunkClock, 3)
			}
		case '0':
			if len(rest) >= 2 && '1' <= rest[1] && rest[1] <= '6' {
				switch rest[1] {
				case '1':
					return cut(chunkZeroMonth, 2)
				case '2':
					return cut(chunkZeroDay, 2)
				case '6':
					return cut(chunkYear, 2)
				default:
					return cut(chunkClock, 2)
				}
			}
			if strings.HasPrefix(rest, "002") {
				return cut(chunkClock, 3)
			}
		case '1':
			if strings.HasPrefix(rest, "15") {
				return cut(chunkClock, 2)
			}
			return cut(chunkNumMonth, 1)
		case '2':
			if strings.HasPrefix(rest, "2006") {
				return cut(chunkLongYear, 4)
			}
			return cut(chunkDay, 1)
		case '_':
			if strings.HasPrefix(rest, "_2006") {
				// literal underscore followed by the year
				return layout[:i+1], chunkLongYear, "2006", layout[i+5:]
			}
			if strings.HasPrefix(rest, "_2") {
				return cut(chunkUnderDay, 2)
			}
			if strings.HasPrefix(rest, "__2") {
				return cut(chunkClock, 3)
			}
		case '3', '4', '5':
			return cut(chunkClock, 1)
		case 'P':
			if strings.HasPrefix(rest, "PM") {
				return cut(chunkClock, 2)
			}
		case 'p':
			if strings.HasPrefix(rest, "pm") {
				return cut(chunkClock, 2)
			}
		case '-', 'Z':
			for _, z := range zoneElements {
				if z[0] == c && strings.HasPrefix(rest, z) {
					return cut(chunkClock, len(z))
				}
			}
		case '.', ',':
			if len(rest) >= 2 && (rest[1] == '0' || rest[1] == '9') {
				j := 1
				for j < len(rest) && rest[j] == rest[1] {
					j++
				}
				if j == len(rest) || !isDigit(rest[j]) {
					return cut(chunkClock, j)
				}
			}
		}
	}
	return layout, chunkNone, "", ""
}

func startsWithLower(s string) bool {
	return s != "" && 'a' <= s[0] && s[0] <= 'z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func pad(n, width int, fill byte) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat(string(fill), width-len(s)) + s
}
