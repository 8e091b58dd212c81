package entity

import "strings"

// LocalizedText is a value that exists in an English and an Arabic variant.
type LocalizedText struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// NewLocalizedText builds a LocalizedText from its two variants.
func NewLocalizedText(en, ar string) LocalizedText {
	return LocalizedText{EN: en, AR: ar}
}

// Get returns the variant for lang when it is non-blank, falling back to the
// English variant and finally to the empty string.
func (t LocalizedText) Get(lang Language) string {
	if lang == LanguageArabic && strings.TrimSpace(t.AR) != "" {
		return t.AR
	}
	if strings.TrimSpace(t.EN) != "" {
		return t.EN
	}

	return ""
}

// IsZero reports whether both variants are blank.
func (t LocalizedText) IsZero() bool {
	return strings.TrimSpace(t.EN) == "" && strings.TrimSpace(t.AR) == ""
}

// ContainsFold reports whether either variant contains needle, ignoring case.
// needle must already be lower-cased.
func (t LocalizedText) ContainsFold(needle string) bool {
	return strings.Contains(strings.ToLower(t.EN), needle) ||
		strings.Contains(strings.ToLower(t.AR), needle)
}
