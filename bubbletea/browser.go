// Package bubbletea provides an interactive terminal browser for posts.
package bubbletea

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/tutorials"
)

// DefaultDebounce is how long typing must pause before the query is applied.
const DefaultDebounce = 100 * time.Millisecond

// QueryMsg applies a debounced search query. Only the message carrying the
// latest sequence number is applied; older ones are dropped.
type QueryMsg struct {
	Seq   uint64
	Query string
}

type focusArea int

const (
	focusSearch focusArea = iota
	focusKeywords
)

// Browser is the Bubbletea model of the post browser: a search box, a
// keyword bar and the list of visible posts.
type Browser struct {
	session  *tutorials.Session
	input    textinput.Model
	keywords []string
	cursor   int
	focus    focusArea
	snap     tutorials.Snapshot
	pending  uint64
	debounce time.Duration
	theme    Theme
	styles   styles
	width    int
	quitting bool
}

// Option configures a Browser.
type Option func(*Browser)

// WithDebounce sets the typing debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(b *Browser) {
		b.debounce = d
	}
}

// WithTheme sets the initial theme.
func WithTheme(t Theme) Option {
	return func(b *Browser) {
		b.theme = t
	}
}

// NewBrowser creates a Browser over the session's entries.
func NewBrowser(session *tutorials.Session, opts ...Option) *Browser {
	ti := textinput.New()
	ti.Placeholder = "Search tutorials"
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.Width = 40
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	b := &Browser{
		session:  session,
		input:    ti,
		keywords: session.Keywords(),
		snap:     session.Snapshot(),
		debounce: DefaultDebounce,
		theme:    ThemeDark,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.styles = newStyles(b.theme)
	return b
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return textinput.Blink
}

// Snapshot returns the filter state currently displayed.
func (b *Browser) Snapshot() tutorials.Snapshot {
	return b.snap
}

// Theme returns the active theme.
func (b *Browser) Theme() Theme {
	return b.theme
}

// Query returns the text in the search box.
func (b *Browser) Query() string {
	return b.input.Value()
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		if msg.Width > 10 {
			b.input.Width = msg.Width - 10
		}
		return b, nil

	case QueryMsg:
		if msg.Seq != b.pending {
			return b, nil
		}
		b.snap = b.session.SetQuery(msg.Query)
		return b, nil

	case tea.KeyMsg:
		return b.handleKey(msg)
	}

	return b, nil
}

func (b *Browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		b.quitting = true
		return b, tea.Quit
	case "ctrl+r":
		b.pending++
		b.input.SetValue("")
		b.snap = b.session.Reset()
		return b, nil
	case "ctrl+t":
		b.theme = b.theme.Toggle()
		b.styles = newStyles(b.theme)
		return b, nil
	case "tab", "shift+tab":
		b.toggleFocus()
		return b, nil
	}

	if b.focus == focusKeywords {
		return b.handleKeywordKey(msg)
	}

	before := b.input.Value()
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	if b.input.Value() == before {
		return b, cmd
	}
	return b, tea.Batch(cmd, b.schedule(b.input.Value()))
}

func (b *Browser) handleKeywordKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h", "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "right", "l", "down", "j":
		if b.cursor < len(b.keywords)-1 {
			b.cursor++
		}
	case "enter", " ":
		if len(b.keywords) == 0 {
			return b, nil
		}
		// A selection supersedes any query still waiting for its debounce.
		b.pending++
		b.snap = b.session.SelectKeyword(b.keywords[b.cursor])
	case "q":
		b.quitting = true
		return b, tea.Quit
	}
	return b, nil
}

func (b *Browser) toggleFocus() {
	if b.focus == focusSearch {
		b.focus = focusKeywords
		b.input.Blur()
		return
	}
	b.focus = focusSearch
	b.input.Focus()
}

// schedule returns a command delivering query after the debounce interval.
func (b *Browser) schedule(query string) tea.Cmd {
	b.pending++
	seq := b.pending
	return tea.Tick(b.debounce, func(time.Time) tea.Msg {
		return QueryMsg{Seq: seq, Query: query}
	})
}

// View implements tea.Model.
func (b *Browser) View() string {
	if b.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(b.styles.title.Render("Tutorials"))
	s.WriteString("\n")
	s.WriteString(b.styles.search.Render(b.input.View()))
	s.WriteString("\n")
	s.WriteString(b.renderKeywords())
	s.WriteString("\n\n")
	s.WriteString(b.renderPosts())
	s.WriteString("\n")
	s.WriteString(b.styles.help.Render("tab: keywords • enter: select • ctrl+r: reset • ctrl+t: theme • esc: quit"))
	return s.String()
}

func (b *Browser) renderKeywords() string {
	parts := make([]string, 0, len(b.keywords))
	for i, k := range b.keywords {
		style := b.styles.keyword
		switch {
		case k == b.snap.ActiveKeyword:
			style = b.styles.keywordActive
		case b.focus == focusKeywords && i == b.cursor:
			style = b.styles.keywordCursor
		}
		parts = append(parts, style.Render(k))
	}
	return strings.Join(parts, " ")
}

func (b *Browser) renderPosts() string {
	if b.snap.AllHidden {
		return b.styles.empty.Render(tutorials.NoResultsMessage)
	}

	visible := tutorials.VisibleEntries(b.session.Entries(), b.snap.Visibility)
	parts := make([]string, 0, len(visible))
	for _, e := range visible {
		var s strings.Builder
		title := e.Title
		if title == "" {
			title = e.Slug
		}
		s.WriteString(b.styles.postTitle.Render(title))
		meta := e.Date
		if len(e.Keywords) > 0 {
			meta = strings.TrimSpace(meta + "  " + strings.Join(e.Keywords, ", "))
		}
		if meta != "" {
			s.WriteString("\n")
			s.WriteString(b.styles.postMeta.Render(meta))
		}
		if e.Abstract != "" {
			s.WriteString("\n")
			s.WriteString(b.styles.postDesc.Render(e.Abstract))
		}
		parts = append(parts, s.String())
	}
	return strings.Join(parts, "\n\n")
}
