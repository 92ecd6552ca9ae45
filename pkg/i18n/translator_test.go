package i18n_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hijri/pkg/i18n"
)

func newCalendarI18n(t *testing.T) *i18n.I18n {
	t.Helper()

	inst, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithTranslations("en", "calendar", map[string]any{
			"months":   []string{"January", "February", "March"},
			"weekdays": []string{"Sunday", "Monday"},
			"era":      "{{year}} AH",
		}),
		i18n.WithTranslations("ru", "calendar", map[string]any{
			"weekdays":            []string{"воскресенье", "понедельник"},
			"weekdays_standalone": []string{"воскресенье", "понедельник"},
			"weekdays_regexp":     `\[ ?[Вв] ?\] ?Monday`,
			"months_regexp":       `(`,
		}),
		i18n.WithTranslations("fr", "calendar", map[string]any{
			"months": []string{"janvier"},
		}),
	)
	require.NoError(t, err)
	return inst
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	inst := newCalendarI18n(t)

	t.Run("panics with nil i18n", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() {
			i18n.NewTranslator(nil, "en", "calendar", nil)
		})
	})

	t.Run("defaults to i18n default language when empty", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(inst, "", "calendar", nil)
		require.Equal(t, "en", tr.Language())
		require.Equal(t, "calendar", tr.Namespace())
	})

	t.Run("picks the predefined format for the language", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(inst, "ar", "calendar", nil)
		layout, ok := tr.Format().Layout(i18n.PresetFullDateTime)
		require.True(t, ok)
		require.Equal(t, "Monday 2 January 2006 15:04", layout)
	})

	t.Run("uses provided format", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(inst, "ar", "calendar", i18n.FormatEnGB())
		ts := time.Date(2024, time.March, 11, 18, 30, 0, 0, time.UTC)
		require.Equal(t, "11/03/2024", tr.Format().FormatDate(ts))
	})
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()

	inst := newCalendarI18n(t)

	t.Run("translates keys with placeholders", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(inst, "en", "calendar", nil)
		require.Equal(t, "March", tr.T("months.2"))
		require.Equal(t, "1445 AH", tr.T("era", i18n.M{"year": 1445}))
	})

	t.Run("returns key when missing", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(inst, "en", "calendar", nil)
		require.Equal(t, "months.11", tr.T("months.11"))
	})

	t.Run("lookup returns default for missing keys", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(inst, "en", "calendar", nil)
		require.Equal(t, "fallback", tr.Lookup("months.11", "fallback"))
		require.Equal(t, "January", tr.Lookup("months.0", "fallback"))
	})
}

func TestTranslator_WithFallbacks(t *testing.T) {
	t.Parallel()

	inst := newCalendarI18n(t)
	base := i18n.NewTranslator(inst, "ru", "calendar", nil)
	withFr := base.WithFallbacks("fr")

	require.Equal(t, "janvier", withFr.T("months.0"))
	require.Equal(t, "January", base.T("months.0"), "original translator is unchanged")
	require.Equal(t, []string{"fr"}, withFr.Fallbacks())
	require.Empty(t, base.Fallbacks())
}

func TestTranslator_WithOverrides(t *testing.T) {
	t.Parallel()

	inst := newCalendarI18n(t)
	base := i18n.NewTranslator(inst, "en", "calendar", nil)
	over := base.WithOverrides(map[string]any{
		"months": []string{"Muharram", "Safar"},
	})

	t.Run("shadows stored entries", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Safar", over.T("months.1"))
	})

	t.Run("keeps entries that are not overridden", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "March", over.T("months.2"))
		require.Equal(t, "Monday", over.T("weekdays.1"))
	})

	t.Run("does not leak into the original", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "February", base.T("months.1"))
	})

	t.Run("stacks with earlier overrides", func(t *testing.T) {
		t.Parallel()
		stacked := over.WithOverrides(map[string]any{"era": "{{year}} H"})
		require.Equal(t, "Safar", stacked.T("months.1"))
		require.Equal(t, "1 H", stacked.T("era", i18n.M{"year": 1}))
	})
}

func TestTranslator_Match(t *testing.T) {
	t.Parallel()

	inst := newCalendarI18n(t)
	tr := i18n.NewTranslator(inst, "ru", "calendar", nil)

	t.Run("matches stored expression", func(t *testing.T) {
		t.Parallel()
		matched, ok := tr.Match("weekdays_regexp", "[В] Monday")
		require.True(t, ok)
		require.True(t, matched)

		matched, ok = tr.Match("weekdays_regexp", "Monday")
		require.True(t, ok)
		require.False(t, matched)
	})

	t.Run("invalid expression is treated as absent", func(t *testing.T) {
		t.Parallel()
		_, ok := tr.Match("months_regexp", "anything")
		require.False(t, ok)
	})

	t.Run("missing expression is absent", func(t *testing.T) {
		t.Parallel()
		en := i18n.NewTranslator(inst, "en", "calendar", nil)
		_, ok := en.Match("weekdays_regexp", "Monday")
		require.False(t, ok)
	})
}
