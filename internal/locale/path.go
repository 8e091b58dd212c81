package locale

import (
	"strings"

	"legalsite/internal/domain/entity"

	"golang.org/x/text/language"
)

//nolint:gochecknoglobals
var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// SwitchPath rewrites path so its leading locale segment is lang. A path
// without a locale segment gets one prepended. Query strings are kept.
func SwitchPath(path string, lang entity.Language) string {
	rest, query, _ := strings.Cut(path, "?")
	rest = StripLocale(rest)

	out := "/" + lang.String()
	if rest != "/" {
		out += rest
	}
	if query != "" {
		out += "?" + query
	}

	return out
}

// StripLocale removes a leading /en or /ar segment, returning at least "/".
func StripLocale(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	segment, rest, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if entity.Language(segment).IsValid() {
		path = "/" + rest
	}

	if path == "" {
		return "/"
	}

	return path
}

// Negotiate picks the supported language that best matches an
// Accept-Language header, defaulting to English.
func Negotiate(acceptLanguage string) entity.Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return entity.LanguageEnglish
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return entity.LanguageEnglish
	}

	return entity.SupportedLanguages()[index]
}
