// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"

	domainerrors "legalsite/internal/domain/errors"
)

// Language represents a supported site locale.
type Language string

const (
	// LanguageEnglish is the default, left-to-right locale.
	LanguageEnglish Language = "en"
	// LanguageArabic is the right-to-left locale.
	LanguageArabic Language = "ar"
)

// Direction values for the document's dir attribute.
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// Languages is a slice of Language for convenience.
type Languages []Language

// SupportedLanguages lists every locale the site serves, default first.
func SupportedLanguages() Languages {
	return Languages{LanguageEnglish, LanguageArabic}
}

// ParseLanguage validates a locale code such as "en" or "AR".
func ParseLanguage(code string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	if !lang.IsValid() {
		return "", domainerrors.ErrUnknownLocale.WithDetails(code)
	}

	return lang, nil
}

// String returns the string representation of the Language.
func (l Language) String() string {
	return string(l)
}

// IsValid checks if the Language is a supported value.
func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageArabic:
		return true
	default:
		return false
	}
}

// IsRTL reports whether text in this language runs right-to-left.
func (l Language) IsRTL() bool {
	return l == LanguageArabic
}

// Direction returns "rtl" for Arabic and "ltr" otherwise.
func (l Language) Direction() string {
	if l.IsRTL() {
		return DirectionRTL
	}

	return DirectionLTR
}

// Other returns the opposite language of the bilingual pair.
func (l Language) Other() Language {
	if l == LanguageEnglish {
		return LanguageArabic
	}

	return LanguageEnglish
}

// Contains checks if the languages slice contains a specific language.
func (ls Languages) Contains(lang Language) bool {
	return slices.Contains(ls, lang)
}

// ToStrings converts Languages to []string.
func (ls Languages) ToStrings() []string {
	result := make([]string, len(ls))
	for i, l := range ls {
		result[i] = l.String()
	}

	return result
}
