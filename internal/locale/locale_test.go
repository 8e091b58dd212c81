package locale

import (
	"testing"

	"legalsite/internal/domain/entity"
	domainerrors "legalsite/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNavigator struct {
	paths []string
}

func (n *fakeNavigator) Navigate(path string) {
	n.paths = append(n.paths, path)
}

type fakeDocument struct {
	lang, dir string
}

func (d *fakeDocument) SetLang(lang string) { d.lang = lang }
func (d *fakeDocument) SetDir(dir string)   { d.dir = dir }

func TestParse(t *testing.T) {
	ctx, err := Parse("ar")
	require.NoError(t, err)
	assert.Equal(t, Context{Language: entity.LanguageArabic, IsRTL: true}, ctx)
	assert.Equal(t, "rtl", ctx.Dir())
	assert.Equal(t, "ar", ctx.Lang())
	assert.Equal(t, "ltr", ctx.Other().Dir())

	_, err = Parse("de")
	assert.ErrorIs(t, err, domainerrors.ErrUnknownLocale)
}

func TestSwitchPath(t *testing.T) {
	tests := []struct {
		path string
		lang entity.Language
		want string
	}{
		{"/en/services/employment-law", entity.LanguageArabic, "/ar/services/employment-law"},
		{"/ar/services/employment-law", entity.LanguageEnglish, "/en/services/employment-law"},
		{"/en", entity.LanguageArabic, "/ar"},
		{"/en/", entity.LanguageArabic, "/ar"},
		{"/", entity.LanguageArabic, "/ar"},
		{"", entity.LanguageArabic, "/ar"},
		{"/services/x", entity.LanguageArabic, "/ar/services/x"},
		{"/english/page", entity.LanguageArabic, "/ar/english/page"},
		{"/en/search?q=contract", entity.LanguageArabic, "/ar/search?q=contract"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, SwitchPath(tt.path, tt.lang))
		})
	}
}

func TestNegotiate(t *testing.T) {
	assert.Equal(t, entity.LanguageArabic, Negotiate("ar-SA,ar;q=0.9,en;q=0.8"))
	assert.Equal(t, entity.LanguageEnglish, Negotiate("en-GB,en;q=0.9"))
	assert.Equal(t, entity.LanguageEnglish, Negotiate("fr-FR"))
	assert.Equal(t, entity.LanguageEnglish, Negotiate(""))
	assert.Equal(t, entity.LanguageEnglish, Negotiate("%%garbage"))
}

func TestResolver_BeforeMountUsesRoutedLanguage(t *testing.T) {
	nav := &fakeNavigator{}
	doc := &fakeDocument{}
	r := NewResolver(entity.LanguageArabic, nav, doc)

	assert.False(t, r.Mounted())
	assert.Equal(t, NewContext(entity.LanguageArabic), r.Context())

	assert.Empty(t, r.ToggleLanguage("/ar/services/employment-law"))
	assert.Empty(t, nav.paths)
	assert.Empty(t, doc.dir)
	assert.Equal(t, entity.LanguageArabic, r.Context().Language)
}

func TestResolver_ToggleLanguage(t *testing.T) {
	nav := &fakeNavigator{}
	doc := &fakeDocument{}
	r := NewResolver(entity.LanguageEnglish, nav, doc)

	r.Mount()
	assert.Equal(t, "ltr", doc.dir)
	assert.Equal(t, "en", doc.lang)

	target := r.ToggleLanguage("/en/services/employment-law")

	assert.Equal(t, "/ar/services/employment-law", target)
	assert.Equal(t, []string{"/ar/services/employment-law"}, nav.paths)
	assert.Equal(t, "rtl", doc.dir)
	assert.Equal(t, "ar", doc.lang)
	assert.True(t, r.Context().IsRTL)

	assert.Equal(t, "/en/services/employment-law", r.ToggleLanguage(target))
	assert.Equal(t, "ltr", doc.dir)
}

func TestResolver_InvalidRoutedLanguage(t *testing.T) {
	r := NewResolver(entity.Language("xx"), nil, nil)
	r.Mount()

	assert.Equal(t, entity.LanguageEnglish, r.Context().Language)
	assert.Equal(t, "/ar", r.ToggleLanguage("/"))
}
