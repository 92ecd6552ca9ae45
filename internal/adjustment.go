package internal

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultAdjustment is the day offset a new Converter starts with.
const DefaultAdjustment = -1

// applyAdjustment shifts t by offset calendar days and returns the weekday
// t had before the shift. Time of day and location are preserved.
func applyAdjustment(t time.Time, offset int) (time.Time, time.Weekday) {
	weekday := t.Weekday()
	if offset > 0 {
		return t.AddDate(0, 0, offset), weekday
	}
	return t.AddDate(0, 0, -abs(offset)), weekday
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Profiles maps a region or authority name to the day offset observed there,
// e.g. {"sa": -1, "eg": 0}. Names are case-insensitive.
type Profiles map[string]int

// Lookup returns the offset registered for name.
func (p Profiles) Lookup(name string) (int, bool) {
	offset, ok := p[strings.ToLower(strings.TrimSpace(name))]
	return offset, ok
}

// Names returns the profile names in sorted order.
func (p Profiles) Names() []string {
	return slices.Sorted(maps.Keys(p))
}

// LoadProfiles reads profiles from a YAML mapping of name to offset:
//
//	sa: -1
//	eg: 0
//	ma: 1
func LoadProfiles(r io.Reader) (Profiles, error) {
	raw := map[string]int{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfiles, err)
	}
	return normalizeProfiles(raw), nil
}

// ParseProfiles reads profiles from the "name=offset,name=offset" form used
// in environment variables.
func ParseProfiles(s string) (Profiles, error) {
	raw := map[string]int{}
	for pair := range strings.SplitSeq(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidProfiles, pair)
		}
		offset, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidProfiles, pair, err)
		}
		raw[name] = offset
	}
	return normalizeProfiles(raw), nil
}

func normalizeProfiles(raw map[string]int) Profiles {
	p := make(Profiles, len(raw))
	for name, offset := range raw {
		p[strings.ToLower(strings.TrimSpace(name))] = offset
	}
	return p
}
