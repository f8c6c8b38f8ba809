// Package i18n holds the localized UI strings of the advisor.
package i18n

import (
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/yourusername/career-advisor/internal/domain/entity"
)

// Option til tanlash ro'yxati elementi
type Option struct {
	Code entity.Language `json:"code"`
	Name string          `json:"name"`
}

var languages = []Option{
	{Code: entity.LanguageSpanish, Name: "Español"},
	{Code: entity.LanguageEnglish, Name: "English"},
	{Code: entity.LanguagePortuguese, Name: "Português"},
	{Code: entity.LanguageItalian, Name: "Italiano"},
}

var matcher = language.NewMatcher([]language.Tag{
	language.Spanish,
	language.English,
	language.Portuguese,
	language.Italian,
})

// Translate returns the text of key in lang, or key itself when either is unknown.
func Translate(lang entity.Language, key string) string {
	if v, ok := translations[string(lang)][key]; ok {
		return v
	}
	return key
}

// Format Translate + "{name}" placeholderlarni almashtirish.
func Format(lang entity.Language, key string, args map[string]string) string {
	text := Translate(lang, key)
	for name, val := range args {
		text = strings.ReplaceAll(text, "{"+name+"}", val)
	}
	return text
}

// Languages returns the supported languages in selector order.
func Languages() []Option {
	out := make([]Option, len(languages))
	copy(out, languages)
	return out
}

// Supported reports whether lang has a translation table.
func Supported(lang entity.Language) bool {
	_, ok := translations[string(lang)]
	return ok
}

// Table returns a copy of the translation table for lang, nil for unknown languages.
func Table(lang entity.Language) map[string]string {
	src, ok := translations[string(lang)]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Keys tartiblangan kalitlar ro'yxati (testlar va API uchun)
func Keys(lang entity.Language) []string {
	src := translations[string(lang)]
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Negotiate picks a supported language from an Accept-Language header.
func Negotiate(acceptLanguage string) entity.Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return entity.LanguageSpanish
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return entity.LanguageSpanish
	}
	return languages[idx].Code
}

// Resolve explicit kod bo'lsa o'sha, aks holda header orqali
func Resolve(explicit, acceptLanguage string) entity.Language {
	lang := entity.Language(strings.ToLower(strings.TrimSpace(explicit)))
	if Supported(lang) {
		return lang
	}
	return Negotiate(acceptLanguage)
}
