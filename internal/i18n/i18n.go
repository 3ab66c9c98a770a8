// Package i18n provides the Arabic/English message catalog and language negotiation.
package i18n

import (
	"golang.org/x/text/language"
)

type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
)

type Direction string

const (
	RTL Direction = "rtl"
	LTR Direction = "ltr"
)

// Supported languages in matcher preference order.
var supported = []language.Tag{language.Arabic, language.English}

type Translator struct {
	fallback Language
	matcher  language.Matcher
	messages map[Language]map[string]string
}

func New(fallback Language) *Translator {
	if fallback != Arabic && fallback != English {
		fallback = Arabic
	}
	return &Translator{
		fallback: fallback,
		matcher:  language.NewMatcher(supported),
		messages: map[Language]map[string]string{
			Arabic:  arabic,
			English: english,
		},
	}
}

// Translate looks the key up in lang, then in English, and returns the key itself
// when neither catalog knows it.
func (t *Translator) Translate(lang Language, key string) string {
	if msg, ok := t.messages[lang][key]; ok {
		return msg
	}
	if msg, ok := t.messages[English][key]; ok {
		return msg
	}
	return key
}

func (t *Translator) Direction(lang Language) Direction {
	if lang == Arabic {
		return RTL
	}
	return LTR
}

// Negotiate picks a language from an explicit choice (e.g. ?lang=en) or an
// Accept-Language header. Unknown input resolves to the fallback language.
func (t *Translator) Negotiate(explicit, acceptLanguage string) Language {
	if explicit != "" {
		if tag, err := language.Parse(explicit); err == nil {
			return t.match(tag)
		}
	}
	if acceptLanguage == "" {
		return t.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.fallback
	}
	return t.match(tags...)
}

func (t *Translator) match(tags ...language.Tag) Language {
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.fallback
	}
	if supported[idx] == language.English {
		return English
	}
	return Arabic
}
