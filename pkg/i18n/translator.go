package i18n

import (
	"maps"
	"regexp"
	"slices"
	"sync"
)

// Translator provides a simplified translation interface with a fixed language and namespace context.
// Derived translators (WithFallbacks, WithOverrides) are new values; a Translator is never mutated
// after construction and is safe for concurrent use.
type Translator struct {
	i18n      *I18n
	format    *LocaleFormat
	overrides map[string]Message
	patterns  *sync.Map // key -> *regexp.Regexp (nil when the pattern does not compile)
	language  string
	namespace string
	fallbacks []string
}

// NewTranslator creates a new Translator with the specified language, namespace, and optional format.
// If format is nil, the predefined format for the language is used (see FormatFor).
// If language is empty, it defaults to the I18n instance's default language.
func NewTranslator(i18n *I18n, language, namespace string, format *LocaleFormat) *Translator {
	if i18n == nil {
		panic("i18n: service is not provided")
	}
	if language == "" {
		language = i18n.DefaultLanguage()
	}
	if format == nil {
		format = FormatFor(language)
	}
	return &Translator{
		i18n:      i18n,
		language:  language,
		namespace: namespace,
		format:    format,
		patterns:  &sync.Map{},
	}
}

// WithFallbacks returns a copy of the translator that consults langs, in order,
// after its own language and before the default language.
func (t *Translator) WithFallbacks(langs ...string) *Translator {
	c := t.clone()
	c.fallbacks = append(slices.Clone(t.fallbacks), langs...)
	return c
}

// WithOverrides returns a copy of the translator in which the given entries
// shadow the stored translations for the translator's own language.
// The map follows the same shape rules as WithTranslations.
func (t *Translator) WithOverrides(translations map[string]any) *Translator {
	c := t.clone()
	c.overrides = make(map[string]Message, len(t.overrides)+len(translations))
	maps.Copy(c.overrides, t.overrides)
	maps.Copy(c.overrides, flattenTranslations(translations, ""))
	return c
}

// Message returns the entry for key, checking overrides before the fallback chain.
func (t *Translator) Message(key string) (Message, bool) {
	if msg, ok := t.overrides[key]; ok {
		return msg, true
	}
	return t.i18n.Lookup(t.language, t.namespace, key, t.fallbacks...)
}

// Has reports whether key resolves.
func (t *Translator) Has(key string) bool {
	_, ok := t.Message(key)
	return ok
}

// T translates a key using the translator's language and namespace context.
// Returns the key itself when nothing is found.
func (t *Translator) T(key string, placeholders ...M) string {
	msg, ok := t.Message(key)
	if !ok {
		t.i18n.reportMissing(t.language, t.namespace, key)
		return key
	}
	return ReplacePlaceholders(msg.Text(), mergePlaceholders(placeholders...))
}

// Lookup returns the literal text for key or def when the key is missing,
// without reporting it as missing.
func (t *Translator) Lookup(key, def string) string {
	if msg, ok := t.Message(key); ok && !msg.IsResolver() {
		return msg.Text()
	}
	return def
}

// Match reports whether the regular expression stored under key matches s.
// The second result is false when no expression is stored or it does not compile.
func (t *Translator) Match(key, s string) (matched, ok bool) {
	if cached, found := t.patterns.Load(key); found {
		re, _ := cached.(*regexp.Regexp)
		if re == nil {
			return false, false
		}
		return re.MatchString(s), true
	}

	msg, exists := t.Message(key)
	if !exists || msg.IsResolver() || msg.Text() == "" {
		t.patterns.Store(key, (*regexp.Regexp)(nil))
		return false, false
	}

	re, err := regexp.Compile(msg.Text())
	if err != nil {
		t.patterns.Store(key, (*regexp.Regexp)(nil))
		return false, false
	}
	t.patterns.Store(key, re)

	return re.MatchString(s), true
}

// Language returns the translator's language.
func (t *Translator) Language() string {
	return t.language
}

// Namespace returns the translator's namespace.
func (t *Translator) Namespace() string {
	return t.namespace
}

// Fallbacks returns the translator's fallback languages.
func (t *Translator) Fallbacks() []string {
	return slices.Clone(t.fallbacks)
}

// Format returns the LocaleFormat used by this translator.
func (t *Translator) Format() *LocaleFormat {
	return t.format
}

func (t *Translator) clone() *Translator {
	return &Translator{
		i18n:      t.i18n,
		format:    t.format,
		overrides: t.overrides,
		patterns:  &sync.Map{},
		language:  t.language,
		namespace: t.namespace,
		fallbacks: t.fallbacks,
	}
}
