package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Hindi,
})

// Negotiate escolhe o idioma pelo parâmetro explícito e, na falta dele, pelo Accept-Language
func Negotiate(lang string, acceptLanguage string) Locale {
	if lang = strings.TrimSpace(lang); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			if locale, ok := match(tag); ok {
				return locale
			}
		}
	}

	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			if locale, ok := match(tags...); ok {
				return locale
			}
		}
	}

	return DefaultLocale
}

func match(tags ...language.Tag) (Locale, bool) {
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	return SupportedLocales[index], true
}
