// Package i18n holds the static en/ar message table and language negotiation.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the two supported UI languages.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// Default is used when nothing else is known.
const Default = English

var (
	supportedTags = []language.Tag{language.English, language.Arabic}
	matcher       = language.NewMatcher(supportedTags)
)

// ParseLanguage accepts exactly "en" or "ar".
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case English, Arabic:
		return Language(s), true
	default:
		return "", false
	}
}

// Negotiate picks en or ar from a BCP 47 tag or an Accept-Language header,
// e.g. "ar-AE" or "fr-CH, ar;q=0.9". Unmatched input yields Default.
func Negotiate(header string) Language {
	header = strings.ReplaceAll(strings.TrimSpace(header), "_", "-")
	if header == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	if supportedTags[idx] == language.Arabic {
		return Arabic
	}
	return English
}

// IsRTL reports right-to-left layout.
func (l Language) IsRTL() bool {
	return l == Arabic
}

// Tag returns the BCP 47 tag.
func (l Language) Tag() language.Tag {
	if l == Arabic {
		return language.Arabic
	}
	return language.English
}

// Translator resolves message keys. Unknown keys come back unchanged.
type Translator interface {
	T(lang Language, key string) string
	Tf(lang Language, key string, params map[string]string) string
}

// Table is the built-in Translator.
type Table struct {
	messages map[Language]map[string]string
	fallback Language
}

// NewTable returns the table with the shipped en and ar messages.
func NewTable() *Table {
	return &Table{
		messages: map[Language]map[string]string{
			English: english,
			Arabic:  arabic,
		},
		fallback: English,
	}
}

// T looks up key in lang, then in the fallback language, then returns key.
func (t *Table) T(lang Language, key string) string {
	if msgs, ok := t.messages[lang]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := t.messages[t.fallback][key]; ok {
		return msg
	}
	return key
}

// Tf is T with {name} placeholders replaced from params.
func (t *Table) Tf(lang Language, key string, params map[string]string) string {
	msg := t.T(lang, key)
	if len(params) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// Keys returns every key of lang, mostly for completeness checks.
func (t *Table) Keys(lang Language) []string {
	msgs := t.messages[lang]
	keys := make([]string, 0, len(msgs))
	for k := range msgs {
		keys = append(keys, k)
	}
	return keys
}
