package i18n

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// DefaultLang is the default language code used when no default language is specified.
const DefaultLang = "en"

// I18n stores translations and resolves them through a language fallback chain.
// It is immutable after creation, making it safe for concurrent use.
type I18n struct {
	// Flattened messages for O(1) lookups.
	// Key format: "lang:namespace:key.path"
	messages map[string]Message

	// Optional handler called when a translation key is not found.
	missingKeyHandler func(lang, namespace, key string)

	defaultLang string
	languages   []string
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates a new I18n instance with the given options.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		messages:    make(map[string]Message),
		defaultLang: DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	i.languages = i.buildLanguagesList()

	return i, nil
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithTranslations loads translations for a specific language and namespace.
// Values may be strings, Messages, Resolvers, nested maps or lists;
// nested values are flattened with dot notation and list items are keyed by index
// ("months.0" ... "months.11").
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		i.add(lang, namespace, translations)
		return nil
	}
}

// WithResolver registers a computed entry under key.
// A resolver registered at a list key such as "months" takes precedence over
// the individual "months.N" entries when a name is resolved.
func WithResolver(lang, namespace, key string, fn Resolver) Option {
	return func(i *I18n) error {
		switch {
		case lang == "":
			return ErrEmptyLanguage
		case namespace == "":
			return ErrEmptyNamespace
		case fn == nil:
			return ErrNilResolver
		}
		i.messages[buildKey(lang, namespace, key)] = Resolved(fn)
		return nil
	}
}

// WithMissingKeyHandler sets a handler function that will be called when a translation
// key is not found in any language of the fallback chain.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// Lookup finds the message for key. The chain is: lang, its base language
// ("ar" for "ar-SA"), each fallback language (and its base), then the default language.
func (i *I18n) Lookup(lang, namespace, key string, fallbacks ...string) (Message, bool) {
	for _, candidate := range i.chain(lang, fallbacks) {
		if msg, ok := i.messages[buildKey(candidate, namespace, key)]; ok {
			return msg, true
		}
	}
	return Message{}, false
}

// Has reports whether key resolves for lang without reporting a missing key.
func (i *I18n) Has(lang, namespace, key string, fallbacks ...string) bool {
	_, ok := i.Lookup(lang, namespace, key, fallbacks...)
	return ok
}

// T retrieves a translation for the given language, namespace, and key.
// Placeholders in the translation are replaced with values from the provided maps.
// Resolver entries are rendered with a zero date, empty context and index -1.
// Returns the key itself if no translation exists.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	msg, ok := i.Lookup(lang, namespace, key)
	if !ok {
		i.reportMissing(lang, namespace, key)
		return key
	}

	text := msg.Text()
	if msg.IsResolver() {
		text = msg.Resolve(time.Time{}, "", -1)
	}

	return ReplacePlaceholders(text, mergePlaceholders(placeholders...))
}

// Languages returns the list of languages that have at least one translation,
// default language first.
func (i *I18n) Languages() []string {
	return slices.Clone(i.languages)
}

// DefaultLanguage returns the default/fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

func (i *I18n) reportMissing(lang, namespace, key string) {
	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}
}

func (i *I18n) chain(lang string, fallbacks []string) []string {
	out := make([]string, 0, 2*len(fallbacks)+3)
	push := func(l string) {
		if l != "" && !slices.Contains(out, l) {
			out = append(out, l)
		}
	}

	for _, l := range append([]string{lang}, fallbacks...) {
		push(l)
		push(baseLanguage(l))
	}
	push(i.defaultLang)

	return out
}

func (i *I18n) add(lang, namespace string, translations map[string]any) {
	for key, msg := range flattenTranslations(translations, "") {
		i.messages[buildKey(lang, namespace, key)] = msg
	}
}

func (i *I18n) buildLanguagesList() []string {
	set := map[string]bool{i.defaultLang: true}
	for composite := range i.messages {
		if lang, _, ok := strings.Cut(composite, ":"); ok {
			set[lang] = true
		}
	}
	delete(set, i.defaultLang)

	others := make([]string, 0, len(set))
	for lang := range set {
		others = append(others, lang)
	}
	slices.Sort(others)

	return append([]string{i.defaultLang}, others...)
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func flattenTranslations(data map[string]any, prefix string) map[string]Message {
	result := make(map[string]Message)
	for key, value := range data {
		flattenValue(result, joinKey(prefix, key), value)
	}
	return result
}

func flattenValue(result map[string]Message, key string, value any) {
	switch v := value.(type) {
	case string:
		result[key] = Literal(v)
	case Message:
		result[key] = v
	case Resolver:
		result[key] = Resolved(v)
	case func(time.Time, string, int) string:
		result[key] = Resolved(v)
	case map[string]any:
		for sub, val := range v {
			flattenValue(result, joinKey(key, sub), val)
		}
	case map[string]string:
		for sub, val := range v {
			result[joinKey(key, sub)] = Literal(val)
		}
	case []string:
		for idx, val := range v {
			result[joinKey(key, strconv.Itoa(idx))] = Literal(val)
		}
	case []any:
		for idx, val := range v {
			flattenValue(result, joinKey(key, strconv.Itoa(idx)), val)
		}
	case nil:
	default:
		result[key] = Literal(fmt.Sprintf("%v", v))
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// baseLanguage strips the region from a language tag ("ar-SA" -> "ar", "pt_BR" -> "pt").
// Returns the input unchanged if there is no region.
func baseLanguage(lang string) string {
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		return lang[:i]
	}
	return lang
}
