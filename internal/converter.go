package internal

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/dmitrymomot/hijri/pkg/cache"
	"github.com/dmitrymomot/hijri/pkg/i18n"
	"github.com/dmitrymomot/hijri/pkg/julian"
	"github.com/dmitrymomot/hijri/pkg/logger"
)

// Converter turns Gregorian instants into Hijri dates. It carries the day
// adjustment and the default locale, and shares derived translators between
// the dates it creates. A Converter is safe for concurrent use.
type Converter struct {
	i18n          *i18n.I18n
	translators   *cache.Memory[*i18n.Translator]
	logger        *slog.Logger
	profiles      Profiles
	defaultLocale string
	namespace     string
	now           func() time.Time

	mu         sync.RWMutex
	adjustment int
}

// Option configures a Converter.
type Option func(*Converter)

// WithAdjustment sets the initial day offset. Default: DefaultAdjustment.
func WithAdjustment(days int) Option {
	return func(c *Converter) {
		c.adjustment = days
	}
}

// WithLocale sets the locale used when Convert is called without one.
// Default: "en".
func WithLocale(locale string) Option {
	return func(c *Converter) {
		if locale != "" {
			c.defaultLocale = locale
		}
	}
}

// WithI18n replaces the built-in calendar catalog.
func WithI18n(i *i18n.I18n) Option {
	return func(c *Converter) {
		c.i18n = i
	}
}

// WithNamespace sets the catalog namespace holding calendar names.
// Default: "calendar".
func WithNamespace(ns string) Option {
	return func(c *Converter) {
		if ns != "" {
			c.namespace = ns
		}
	}
}

// WithLogger sets the logger for conversion debug output. Default: discard.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithProfiles registers named adjustment profiles for UseProfile.
func WithProfiles(p Profiles) Option {
	return func(c *Converter) {
		c.profiles = maps.Clone(p)
	}
}

// WithClock sets the source of "now" for Today. Default: time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.now = now
		}
	}
}

// NewConverter creates a Converter. Without WithI18n it uses Catalog.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		adjustment:    DefaultAdjustment,
		defaultLocale: "en",
		namespace:     Namespace,
		logger:        logger.NewNope(),
		now:           time.Now,
		profiles:      Profiles{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.i18n == nil {
		c.i18n = Catalog()
	}
	c.translators = cache.NewMemory[*i18n.Translator](
		cache.WithCleanupInterval(0),
		cache.WithMaxEntries(256),
	)
	return c
}

// SetAdjustment replaces the day offset applied by later conversions.
// Any integer is accepted.
func (c *Converter) SetAdjustment(days int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.adjustment = days
}

// Adjustment returns the current day offset.
func (c *Converter) Adjustment() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.adjustment
}

// UseProfile sets the adjustment to the offset of a registered profile.
func (c *Converter) UseProfile(name string) error {
	offset, ok := c.profiles.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	c.SetAdjustment(offset)
	return nil
}

// Profile returns the offset of a registered profile.
func (c *Converter) Profile(name string) (int, bool) {
	return c.profiles.Lookup(name)
}

// Profiles returns a copy of the registered profiles.
func (c *Converter) Profiles() Profiles {
	return maps.Clone(c.profiles)
}

// DefaultLocale returns the locale used when a conversion names none.
func (c *Converter) DefaultLocale() string { return c.defaultLocale }

// Languages lists the languages with calendar translations, default first.
func (c *Converter) Languages() []string { return c.i18n.Languages() }

// Convert returns the Hijri date of t using the current adjustment.
// The first locale argument selects the locale, any further ones are
// fallbacks; with none the converter's default locale is used.
func (c *Converter) Convert(t time.Time, locale ...string) *Date {
	return c.convert(t, c.Adjustment(), locale)
}

// ConvertWithAdjustment is Convert with a one-off offset. The stored
// adjustment is not changed.
func (c *Converter) ConvertWithAdjustment(t time.Time, days int, locale ...string) *Date {
	return c.convert(t, days, locale)
}

// Now returns the current instant of the converter's clock.
func (c *Converter) Now() time.Time { return c.now() }

// Today converts the current instant of the converter's clock.
func (c *Converter) Today(locale ...string) *Date {
	return c.Convert(c.Now(), locale...)
}

// Close releases the translator cache.
func (c *Converter) Close() error {
	return c.translators.Close()
}

func (c *Converter) convert(t time.Time, offset int, locale []string) *Date {
	shifted, weekday := applyAdjustment(t, offset)
	// Year numbering follows gregoriantojd: year 0 maps to day 0 and
	// negative years count from -1 as 1 BC.
	jdn := julian.FromZeroless(shifted.Date())
	year, month, day := civilFromJDN(jdn)

	d := &Date{
		conv:       c,
		source:     t,
		t:          shifted,
		adjustment: offset,
		jdn:        jdn,
		year:       year,
		month:      month,
		day:        day,
		weekday:    weekday,
	}

	loc := c.defaultLocale
	var fallbacks []string
	if len(locale) > 0 && locale[0] != "" {
		loc, fallbacks = locale[0], locale[1:]
	}
	d.SetLocale(loc, fallbacks...)

	c.logger.Debug("converted to hijri",
		slog.Time("gregorian", t),
		slog.Int("adjustment", offset),
		slog.Int("jdn", jdn),
		slog.String("hijri", d.String()),
		slog.String("locale", loc),
	)

	return d
}

// Translator returns the translator used for dates in locale: the catalog
// entries for the locale and its fallbacks with the Hijri month table of
// the locale installed over the month names. Translators are built once per
// locale and fallback list and then shared.
func (c *Converter) Translator(locale string, fallbacks ...string) *i18n.Translator {
	locale = normalizeLocale(locale)
	fallbacks = normalizeLocales(fallbacks)
	key := cache.Key(append([]string{locale}, fallbacks...)...)
	tr, err := cache.GetOrSet(context.Background(), c.translators, key,
		func(context.Context) (*i18n.Translator, time.Duration, error) {
			c.logger.Debug("deriving calendar translator",
				slog.String("locale", locale),
				slog.Any("fallbacks", fallbacks),
			)
			return c.deriveTranslator(locale, fallbacks), -1, nil
		})
	if err != nil {
		return c.deriveTranslator(locale, fallbacks)
	}
	return tr
}

func (c *Converter) deriveTranslator(locale string, fallbacks []string) *i18n.Translator {
	months := MonthNames(locale)
	byIndex := func(_ time.Time, _ string, index int) string {
		if index < 0 || index >= len(months) {
			return ""
		}
		return months[index]
	}

	// A resolver on the base keys takes precedence over standalone and
	// inflected forms, so every context yields the Hijri name.
	return i18n.NewTranslator(c.i18n, locale, c.namespace, nil).
		WithFallbacks(fallbacks...).
		WithOverrides(map[string]any{
			"months":       i18n.Resolver(byIndex),
			"months_short": i18n.Resolver(byIndex),
		})
}
