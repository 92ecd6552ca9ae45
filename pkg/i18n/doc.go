// Package i18n is a small translation engine keyed by language, namespace and
// dotted message key.
//
// Entries are stored as Message values, a tagged variant that is either a
// literal string or a Resolver computed at lookup time. All configuration is
// done at construction time; an I18n instance is immutable and safe for
// concurrent use.
//
// # Basic Usage
//
//	tr, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithTranslations("en", "calendar", map[string]any{
//			"weekdays": []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
//			"era":      "{{year}} AH",
//		}),
//	)
//
//	tr.T("en", "calendar", "weekdays.1")                  // "Monday"
//	tr.T("en", "calendar", "era", i18n.M{"year": 1413}) // "1413 AH"
//
// # File-Based Translations
//
// Load translations from JSON or YAML files using fs.FS.
// File convention: {lang}/{namespace}.json (or .yaml/.yml).
//
//	//go:embed locales
//	var localesFS embed.FS
//
//	sub, _ := fs.Sub(localesFS, "locales")
//	tr, err := i18n.New(i18n.WithYAMLDir(sub))
//
// # Resolvers
//
// Languages whose names change with grammatical context can register a
// Resolver instead of a list:
//
//	i18n.WithResolver("xx", "calendar", "months", func(date time.Time, context string, index int) string {
//		...
//	})
//
// # Fallback
//
// Lookups try the requested language, its base language ("ar" for "ar-SA"),
// any fallback languages given to the lookup, and finally the default language.
//
// # Translator
//
// Translator fixes the language, namespace and LocaleFormat. Derived
// translators add fallback languages or override individual entries without
// touching the shared I18n instance:
//
//	t := i18n.NewTranslator(tr, "ar", "calendar", nil).
//		WithOverrides(map[string]any{"months": hijriMonths})
//
// # Locale Formats
//
// LocaleFormat maps the presets L, LL, LLL, LLLL, LT and LTS to Go time
// layouts for a locale. FormatFor picks a predefined format by language tag.
package i18n
