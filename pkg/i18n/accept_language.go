package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage parses the Accept-Language header and returns the most
// applicable language from the available languages list.
// Quality values are honoured and regional variants match their base language
// ("ar-EG" matches "ar"). If nothing matches, returns the first available language.
//
// Example header: "ar-EG,ar;q=0.9,en;q=0.8"
// Available: ["en", "ar"]
// Returns: "ar"
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if lang, ok := MatchAcceptLanguage(header, available); ok {
		return lang
	}
	return available[0]
}

// MatchAcceptLanguage is ParseAcceptLanguage without the fallback: ok is
// false when the header is empty, malformed or matches nothing available.
func MatchAcceptLanguage(header string, available []string) (string, bool) {
	if len(available) == 0 || header == "" {
		return "", false
	}

	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	requested, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(requested) == 0 {
		return "", false
	}

	supported := make([]language.Tag, len(available))
	for i, lang := range available {
		supported[i] = language.Make(lang)
	}

	_, idx, confidence := language.NewMatcher(supported).Match(requested...)
	if confidence == language.No || idx < 0 || idx >= len(available) {
		return "", false
	}

	return available[idx], true
}

// Canonical returns the canonical BCP 47 form of a locale identifier
// ("ar_sa" -> "ar-SA"). The second result is false when lang is not a
// well-formed tag.
func Canonical(lang string) (string, bool) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return "", false
	}
	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return "", false
	}
	return tag.String(), true
}
