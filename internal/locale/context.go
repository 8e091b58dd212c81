// Package locale resolves the active language and text direction for a
// request or an interactive session.
package locale

import (
	"legalsite/internal/domain/entity"
)

// Context is the active language and its reading direction. It is passed
// explicitly to views and usecases.
type Context struct {
	Language entity.Language `json:"language"`
	IsRTL    bool            `json:"isRTL"`
}

// NewContext derives the context for lang.
func NewContext(lang entity.Language) Context {
	return Context{Language: lang, IsRTL: lang.IsRTL()}
}

// Parse builds a context from a route segment. Unknown codes fail with
// ErrUnknownLocale.
func Parse(code string) (Context, error) {
	lang, err := entity.ParseLanguage(code)
	if err != nil {
		return Context{}, err
	}

	return NewContext(lang), nil
}

// Default is the English context.
func Default() Context {
	return NewContext(entity.LanguageEnglish)
}

// Dir returns the value for the document's dir attribute.
func (c Context) Dir() string {
	return c.Language.Direction()
}

// Lang returns the value for the document's lang attribute.
func (c Context) Lang() string {
	return c.Language.String()
}

// Other returns the context for the opposite language.
func (c Context) Other() Context {
	return NewContext(c.Language.Other())
}
