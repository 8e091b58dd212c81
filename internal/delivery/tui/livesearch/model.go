// Package livesearch is an interactive terminal search over the site's
// team, services and blog. Keystrokes are debounced and only the response to
// the latest query is shown.
package livesearch

import (
	"context"
	"strconv"
	"strings"
	"time"

	"legalsite/internal/delivery/http/view"
	"legalsite/internal/domain/entity"
	"legalsite/internal/locale"
	"legalsite/internal/usecase"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultDebounce is the quiet period after the last keystroke before a search runs.
const DefaultDebounce = 300 * time.Millisecond

const defaultWidth = 80

// debounceMsg fires when the quiet period of keystroke seq ends.
type debounceMsg struct {
	seq int
}

// resultMsg carries the outcome of the search issued for seq.
type resultMsg struct {
	seq     int
	outcome usecase.Outcome
}

// Model is the bubbletea model of the live search.
type Model struct {
	search   usecase.SearchUsecase
	resolver *locale.Resolver
	input    textinput.Model
	keys     KeyMap
	styles   Styles
	debounce time.Duration

	ctx      context.Context
	cancel   context.CancelFunc
	inflight context.CancelFunc

	// seq identifies the latest query; ticks and results tagged with an
	// older value are ignored.
	seq       int
	searching bool
	outcome   *usecase.Outcome

	path  string
	lang  string
	dir   string
	width int
}

// Option customizes a Model.
type Option func(*Model)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(m *Model) {
		m.debounce = d
	}
}

// WithQuery pre-fills the search box.
func WithQuery(query string) Option {
	return func(m *Model) {
		m.input.SetValue(query)
	}
}

// New creates the live search model for lang. Cancelling ctx aborts any
// in-flight search.
func New(ctx context.Context, search usecase.SearchUsecase, lang entity.Language, opts ...Option) *Model {
	ctx, cancel := context.WithCancel(ctx)

	input := textinput.New()
	input.CharLimit = 256
	input.Width = 50
	input.Focus()

	m := &Model{
		search:   search,
		input:    input,
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		debounce: DefaultDebounce,
		ctx:      ctx,
		cancel:   cancel,
		width:    defaultWidth,
	}
	m.resolver = locale.NewResolver(lang, m, m)
	m.path = "/" + m.resolver.Context().Lang() + "/search"
	m.applyPlaceholder()

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Navigate implements locale.Navigator.
func (m *Model) Navigate(path string) {
	m.path = path
}

// SetLang implements locale.Document.
func (m *Model) SetLang(lang string) {
	m.lang = lang
}

// SetDir implements locale.Document.
func (m *Model) SetDir(dir string) {
	m.dir = dir
}

// Init mounts the locale resolver and runs the pre-filled query, if any.
func (m *Model) Init() tea.Cmd {
	m.resolver.Mount()

	if strings.TrimSpace(m.input.Value()) == "" {
		return textinput.Blink
	}
	m.seq++

	return tea.Batch(textinput.Blink, m.runSearch(m.seq))
}

// Update handles keystrokes, debounce ticks and search results.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case debounceMsg:
		if msg.seq != m.seq {
			return m, nil
		}

		return m, m.runSearch(msg.seq)

	case resultMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.searching = false
		outcome := msg.outcome
		m.outcome = &outcome

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()

		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.resolver.ToggleLanguage(m.path)
		m.applyPlaceholder()
		m.seq++

		return m, m.runSearch(m.seq)
	}

	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}

	m.seq++
	seq := m.seq
	tick := tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})

	return m, tea.Batch(cmd, tick)
}

// runSearch cancels the previous search and returns a command issuing a new one tagged seq.
func (m *Model) runSearch(seq int) tea.Cmd {
	if m.inflight != nil {
		m.inflight()
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.inflight = cancel
	m.searching = true

	query := m.input.Value()
	lang := m.resolver.Context().Language

	return func() tea.Msg {
		defer cancel()

		return resultMsg{seq: seq, outcome: m.search.Search(ctx, query, lang)}
	}
}

func (m *Model) applyPlaceholder() {
	m.input.Placeholder = view.Translate(m.resolver.Context().Language, "search.placeholder")
}

// View renders the search box and the latest results.
func (m *Model) View() string {
	lc := m.resolver.Context()
	t := func(msgKey string) string { return view.Translate(lc.Language, msgKey) }

	lines := []string{
		m.styles.Title.Render(t("site.name") + " · " + t("search.title")),
		m.input.View(),
		"",
	}

	switch {
	case m.searching:
		lines = append(lines, m.styles.Muted.Render("…"))
	case m.outcome == nil || m.outcome.State == entity.SearchIdle:
		lines = append(lines, m.styles.Muted.Render(t("search.prompt")))
	case m.outcome.Results.Total() == 0:
		lines = append(lines, t("search.empty"))
	default:
		lines = append(lines, m.resultLines(lc)...)
	}

	if m.outcome != nil && m.outcome.State == entity.SearchDegraded && !m.searching {
		lines = append(lines, "", m.styles.Degraded.Render("! "+strconv.Itoa(m.outcome.Results.Total())+" · fallback"))
	}

	lines = append(lines, "", m.styles.Muted.Render(m.keys.Toggle.Help().Key+" "+m.keys.Toggle.Help().Desc+"  "+m.keys.Quit.Help().Key+" "+m.keys.Quit.Help().Desc))

	align := lipgloss.Left
	if lc.IsRTL {
		align = lipgloss.Right
	}
	block := lipgloss.NewStyle().Width(m.width).Align(align)

	return block.Render(strings.Join(lines, "\n"))
}

func (m *Model) resultLines(lc locale.Context) []string {
	results := m.outcome.Results
	t := func(msgKey string) string { return view.Translate(lc.Language, msgKey) }

	var lines []string
	if len(results.Team) > 0 {
		lines = append(lines, m.styles.Section.Render(t("search.team")))
		for _, member := range results.Team {
			lines = append(lines, m.styles.Item.Render(member.Name+" · "+member.Role))
		}
	}
	if len(results.Services) > 0 {
		lines = append(lines, m.styles.Section.Render(t("search.services")))
		for _, svc := range results.Services {
			lines = append(lines, m.styles.Item.Render(svc.Title.Get(lc.Language)))
		}
	}
	if len(results.Blog) > 0 {
		lines = append(lines, m.styles.Section.Render(t("search.blog")))
		for _, post := range results.Blog {
			lines = append(lines, m.styles.Item.Render(post.Title.Get(lc.Language)))
		}
	}

	return lines
}

// Language returns the live language.
func (m *Model) Language() entity.Language {
	return m.resolver.Context().Language
}

// Path returns the page the session is on, as the site would route it.
func (m *Model) Path() string {
	return m.path
}

// Lang and Dir return the document attributes last applied by the resolver.
func (m *Model) Lang() string {
	return m.lang
}

func (m *Model) Dir() string {
	return m.dir
}

// Query returns the current search box value.
func (m *Model) Query() string {
	return m.input.Value()
}

// Outcome returns the latest accepted outcome, or nil before the first result.
func (m *Model) Outcome() *usecase.Outcome {
	return m.outcome
}
