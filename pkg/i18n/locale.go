package i18n

import (
	"golang.org/x/text/language"
)

// Locale is a supported two-letter translation locale. The bundle files are
// embedded at build time, so the supported set is fixed.
type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
)

// DefaultLocale is the fallback applied when a language tag cannot be
// resolved to a supported locale.
const DefaultLocale = LocaleES

func SupportedLocales() []Locale {
	return []Locale{LocaleES, LocaleEN}
}

func IsSupported(value string) bool {
	switch Locale(value) {
	case LocaleES, LocaleEN:
		return true
	default:
		return false
	}
}

// ResolveLocale derives the locale from a BCP-47-ish language tag. Only the
// primary subtag is consulted: "es-MX" resolves to "es". Unsupported or
// unparsable tags fall back to the given default.
func ResolveLocale(languageTag string, fallback Locale) Locale {
	tag, err := language.Parse(languageTag)
	if err != nil {
		return fallback
	}

	base, _ := tag.Base()
	if primary := base.String(); IsSupported(primary) {
		return Locale(primary)
	}

	return fallback
}
