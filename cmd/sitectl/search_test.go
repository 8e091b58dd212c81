package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"legalsite/internal/domain/entity"
	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/errors"
	"legalsite/internal/infra/fallback"
	mockusecase "legalsite/internal/mocks/usecase"
	"legalsite/internal/usecase"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T, uc usecase.SearchUsecase) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	a := newApp()
	a.newSearch = func(*cobra.Command) (usecase.SearchUsecase, error) { return uc, nil }

	root := newRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)

	return root, buf
}

func contractOutcome(lang entity.Language, state entity.SearchState) usecase.Outcome {
	results := entity.EmptySearchResultSet()
	results.Services = fallback.NewStore().SearchServices("contract")

	return usecase.Outcome{Query: "contract", Language: lang, State: state, Results: results}
}

func TestSearchCmd_Text(t *testing.T) {
	uc := mockusecase.NewMockSearchUsecase(t)
	uc.EXPECT().Search(mock.Anything, "contract", entity.LanguageEnglish).
		Return(contractOutcome(entity.LanguageEnglish, entity.SearchDegraded))

	root, buf := newTestRoot(t, uc)
	root.SetArgs([]string{"search", "contract"})
	require.NoError(t, root.Execute())

	out := buf.String()
	assert.Contains(t, out, "Services:")
	assert.Contains(t, out, "/en/services/real-estate-law")
	assert.Contains(t, out, "/en/services/employment-law")
	assert.Contains(t, out, "bundled content")
}

func TestSearchCmd_JSONJoinsArgs(t *testing.T) {
	uc := mockusecase.NewMockSearchUsecase(t)
	uc.EXPECT().Search(mock.Anything, "legal advisor", entity.LanguageArabic).
		Return(usecase.Outcome{Query: "legal advisor", Language: entity.LanguageArabic, State: entity.SearchSucceeded, Results: entity.EmptySearchResultSet()})

	root, buf := newTestRoot(t, uc)
	root.SetArgs([]string{"search", "legal", "advisor", "--lang", "ar", "--json"})
	require.NoError(t, root.Execute())

	var got usecase.Outcome
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, entity.SearchSucceeded, got.State)
	assert.Equal(t, entity.LanguageArabic, got.Language)
}

func TestSearchCmd_Errors(t *testing.T) {
	t.Run("needs a query", func(t *testing.T) {
		root, _ := newTestRoot(t, mockusecase.NewMockSearchUsecase(t))
		root.SetArgs([]string{"search"})
		assert.Error(t, root.Execute())
	})

	t.Run("unknown language", func(t *testing.T) {
		root, _ := newTestRoot(t, mockusecase.NewMockSearchUsecase(t))
		root.SetArgs([]string{"search", "law", "--lang", "fr"})

		err := root.Execute()
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUnknownLocale))
	})
}

func TestSearchCmd_NoResults(t *testing.T) {
	uc := mockusecase.NewMockSearchUsecase(t)
	uc.EXPECT().Search(mock.Anything, "zzz", entity.LanguageEnglish).
		Return(usecase.Outcome{Query: "zzz", Language: entity.LanguageEnglish, State: entity.SearchSucceeded, Results: entity.EmptySearchResultSet()})

	root, buf := newTestRoot(t, uc)
	root.SetArgs([]string{"search", "zzz"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "No results found.")
	assert.NotContains(t, buf.String(), "bundled")
}

func TestLiveCmd_Flags(t *testing.T) {
	root, _ := newTestRoot(t, mockusecase.NewMockSearchUsecase(t))

	live, _, err := root.Find([]string{"live"})
	require.NoError(t, err)
	flag := live.Flags().Lookup("lang")
	require.NotNil(t, flag)
	assert.Equal(t, "l", flag.Shorthand)
	assert.Equal(t, "en", flag.DefValue)
}
