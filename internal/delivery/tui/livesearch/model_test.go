package livesearch

import (
	"context"
	"strings"
	"testing"
	"time"

	"legalsite/internal/domain/entity"
	"legalsite/internal/infra/fallback"
	mockusecase "legalsite/internal/mocks/usecase"
	"legalsite/internal/usecase"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func typeText(m *Model, text string) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(text))
	for _, r := range text {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		cmds = append(cmds, cmd)
	}

	return cmds
}

func teamOutcome(query string, lang entity.Language) usecase.Outcome {
	results := entity.EmptySearchResultSet()
	results.Team = fallback.NewStore().SearchTeam(query)

	return usecase.Outcome{Query: query, Language: lang, State: entity.SearchSucceeded, Results: results}
}

func TestModel_DebouncesKeystrokes(t *testing.T) {
	search := mockusecase.NewMockSearchUsecase(t)
	m := New(context.Background(), search, entity.LanguageEnglish, WithDebounce(time.Millisecond))
	m.Init()

	cmds := typeText(m, "law")
	require.Len(t, cmds, 3)
	assert.Equal(t, "law", m.Query())
	assert.Equal(t, 3, m.seq)

	// ticks of superseded keystrokes issue nothing
	_, cmd := m.Update(debounceMsg{seq: 1})
	assert.Nil(t, cmd)
	_, cmd = m.Update(debounceMsg{seq: 2})
	assert.Nil(t, cmd)

	search.EXPECT().Search(mock.Anything, "law", entity.LanguageEnglish).
		Return(teamOutcome("law", entity.LanguageEnglish)).Once()

	_, cmd = m.Update(debounceMsg{seq: 3})
	require.NotNil(t, cmd)
	assert.True(t, m.searching)

	msg := cmd()
	result, ok := msg.(resultMsg)
	require.True(t, ok)
	assert.Equal(t, 3, result.seq)

	m.Update(result)
	require.NotNil(t, m.Outcome())
	assert.False(t, m.searching)
	assert.Equal(t, "law", m.Outcome().Query)
}

func TestModel_DropsStaleResults(t *testing.T) {
	search := mockusecase.NewMockSearchUsecase(t)
	m := New(context.Background(), search, entity.LanguageEnglish)
	m.Init()

	typeText(m, "la")
	m.Update(resultMsg{seq: 1, outcome: teamOutcome("l", entity.LanguageEnglish)})
	assert.Nil(t, m.Outcome(), "result for an older keystroke is ignored")

	m.Update(resultMsg{seq: 2, outcome: teamOutcome("la", entity.LanguageEnglish)})
	require.NotNil(t, m.Outcome())
	assert.Equal(t, "la", m.Outcome().Query)
}

func TestModel_NewSearchCancelsInflight(t *testing.T) {
	search := mockusecase.NewMockSearchUsecase(t)
	m := New(context.Background(), search, entity.LanguageEnglish)
	m.Init()

	var first context.Context
	search.EXPECT().Search(mock.Anything, "a", entity.LanguageEnglish).
		Run(func(ctx context.Context, _ string, _ entity.Language) { first = ctx }).
		Return(usecase.Outcome{}).Once()

	typeText(m, "a")
	_, firstCmd := m.Update(debounceMsg{seq: 1})
	require.NotNil(t, firstCmd)

	typeText(m, "b")
	_, secondCmd := m.Update(debounceMsg{seq: 2})
	require.NotNil(t, secondCmd)

	firstCmd()
	require.NotNil(t, first)
	assert.ErrorIs(t, first.Err(), context.Canceled)
}

func TestModel_ToggleLanguage(t *testing.T) {
	search := mockusecase.NewMockSearchUsecase(t)
	m := New(context.Background(), search, entity.LanguageEnglish, WithQuery("legal advisor"))

	search.EXPECT().Search(mock.Anything, "legal advisor", entity.LanguageEnglish).
		Return(teamOutcome("legal advisor", entity.LanguageEnglish)).Once()
	search.EXPECT().Search(mock.Anything, "legal advisor", entity.LanguageArabic).
		Return(teamOutcome("legal advisor", entity.LanguageArabic)).Once()

	initCmd := m.Init()
	require.NotNil(t, initCmd)
	assert.Equal(t, "en", m.Lang())
	assert.Equal(t, entity.DirectionLTR, m.Dir())

	// run the pre-filled search directly; Init batches it with the cursor blink
	m.Update(m.runSearch(m.seq)())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	require.NotNil(t, cmd)
	assert.Equal(t, entity.LanguageArabic, m.Language())
	assert.Equal(t, "/ar/search", m.Path())
	assert.Equal(t, "ar", m.Lang())
	assert.Equal(t, entity.DirectionRTL, m.Dir())

	m.Update(cmd())
	require.NotNil(t, m.Outcome())
	assert.Equal(t, entity.LanguageArabic, m.Outcome().Language)
	assert.Len(t, m.Outcome().Results.Team, 3)
}

func TestModel_ViewAlignsByDirection(t *testing.T) {
	search := mockusecase.NewMockSearchUsecase(t)

	for _, tt := range []struct {
		lang       entity.Language
		rightAlign bool
	}{
		{entity.LanguageEnglish, false},
		{entity.LanguageArabic, true},
	} {
		t.Run(tt.lang.String(), func(t *testing.T) {
			m := New(context.Background(), search, tt.lang)
			m.Init()
			m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
			m.Update(resultMsg{seq: 0, outcome: teamOutcome("legal advisor", tt.lang)})

			out := m.View()
			var line string
			for _, l := range strings.Split(out, "\n") {
				if strings.Contains(l, "Ayesha Khan") {
					line = l
				}
			}
			require.NotEmpty(t, line)
			assert.Equal(t, tt.rightAlign, strings.HasPrefix(line, " "))
		})
	}
}

func TestModel_QuitCancels(t *testing.T) {
	search := mockusecase.NewMockSearchUsecase(t)
	m := New(context.Background(), search, entity.LanguageEnglish)
	m.Init()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.ErrorIs(t, m.ctx.Err(), context.Canceled)
}
