package bubbletea_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/tutorials"
	"github.com/fwojciec/tutorials/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrowser(t *testing.T) *bubbletea.Browser {
	t.Helper()
	session := tutorials.NewSession([]tutorials.PostEntry{
		{ID: "1", Slug: "drag", Title: "Drag and Drop", Keywords: []string{"css", "js"}, SearchableText: "Drag and Drop css js"},
		{ID: "2", Slug: "shiny", Title: "Rmarkdown in Shiny", Keywords: []string{"r"}, SearchableText: "Rmarkdown in Shiny r"},
	})
	return bubbletea.NewBrowser(session, bubbletea.WithDebounce(time.Millisecond))
}

func typeText(b *bubbletea.Browser, text string) []tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range text {
		_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		cmds = append(cmds, cmd)
	}
	return cmds
}

func press(b *bubbletea.Browser, key tea.KeyType) tea.Cmd {
	_, cmd := b.Update(tea.KeyMsg{Type: key})
	return cmd
}

// queryMsgs runs cmd and collects the QueryMsg values it produces.
func queryMsgs(cmd tea.Cmd) []bubbletea.QueryMsg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case bubbletea.QueryMsg:
		return []bubbletea.QueryMsg{msg}
	case tea.BatchMsg:
		var msgs []bubbletea.QueryMsg
		for _, c := range msg {
			msgs = append(msgs, queryMsgs(c)...)
		}
		return msgs
	}
	return nil
}

func TestBrowser_Search(t *testing.T) {
	t.Parallel()

	t.Run("applies the query after the debounce", func(t *testing.T) {
		t.Parallel()

		b := newBrowser(t)
		cmds := typeText(b, "css")

		assert.Equal(t, "css", b.Query())
		assert.Equal(t, tutorials.FilterIdle, b.Snapshot().State, "nothing applied before the debounce fires")

		msgs := queryMsgs(cmds[len(cmds)-1])
		require.Len(t, msgs, 1)
		b.Update(msgs[0])

		snap := b.Snapshot()
		assert.Equal(t, "css", snap.Query)
		assert.True(t, snap.Visibility.Visible("1"))
		assert.False(t, snap.Visibility.Visible("2"))
	})

	t.Run("drops stale queries", func(t *testing.T) {
		t.Parallel()

		b := newBrowser(t)
		cmds := typeText(b, "sh")

		first := queryMsgs(cmds[0])
		require.Len(t, first, 1)
		assert.Equal(t, "s", first[0].Query)

		b.Update(first[0])

		assert.Equal(t, tutorials.FilterIdle, b.Snapshot().State)

		last := queryMsgs(cmds[1])
		require.Len(t, last, 1)
		b.Update(last[0])

		assert.Equal(t, "sh", b.Snapshot().Query)
	})

	t.Run("shows the no results message when everything is hidden", func(t *testing.T) {
		t.Parallel()

		b := newBrowser(t)
		cmds := typeText(b, "zzz")
		for _, m := range queryMsgs(cmds[len(cmds)-1]) {
			b.Update(m)
		}

		assert.True(t, b.Snapshot().AllHidden)
		assert.Contains(t, b.View(), tutorials.NoResultsMessage)
		assert.NotContains(t, b.View(), "Drag and Drop")
	})

	t.Run("lists visible posts", func(t *testing.T) {
		t.Parallel()

		b := newBrowser(t)

		view := b.View()

		assert.Contains(t, view, "Drag and Drop")
		assert.Contains(t, view, "Rmarkdown in Shiny")
	})
}

func TestBrowser_Keywords(t *testing.T) {
	t.Parallel()

	t.Run("selects the keyword under the cursor", func(t *testing.T) {
		t.Parallel()

		b := newBrowser(t)
		press(b, tea.KeyTab)
		press(b, tea.KeyRight)
		press(b, tea.KeyRight)
		press(b, tea.KeyEnter)

		snap := b.Snapshot()
		assert.Equal(t, "r", snap.ActiveKeyword)
		assert.Equal(t, tutorials.FilterFiltered, snap.State)
	})

	t.Run("cursor stays within the keyword bar", func(t *testing.T) {
		t.Parallel()

		b := newBrowser(t)
		press(b, tea.KeyTab)
		press(b, tea.KeyLeft)
		press(b, tea.KeyEnter)

		assert.Equal(t, "css", b.Snapshot().ActiveKeyword)
	})

	t.Run("selection supersedes a pending query", func(t *testing.T) {
		t.Parallel()

		b := newBrowser(t)
		cmds := typeText(b, "shiny")
		press(b, tea.KeyTab)
		press(b, tea.KeyEnter)
		for _, m := range queryMsgs(cmds[len(cmds)-1]) {
			b.Update(m)
		}

		assert.Equal(t, "css", b.Snapshot().ActiveKeyword)
		assert.Equal(t, "css", b.Snapshot().Query)
	})

	t.Run("typing does not reach the search box while keywords have focus", func(t *testing.T) {
		t.Parallel()

		b := newBrowser(t)
		press(b, tea.KeyTab)
		typeText(b, "x")

		assert.Empty(t, b.Query())
	})
}

func TestBrowser_Reset(t *testing.T) {
	t.Parallel()

	b := newBrowser(t)
	cmds := typeText(b, "css")
	press(b, tea.KeyCtrlR)
	for _, m := range queryMsgs(cmds[len(cmds)-1]) {
		b.Update(m)
	}

	snap := b.Snapshot()
	assert.Empty(t, b.Query())
	assert.Equal(t, tutorials.FilterIdle, snap.State)
	assert.Equal(t, 2, snap.Visibility.Count())
}

func TestBrowser_ThemeToggle(t *testing.T) {
	t.Parallel()

	b := newBrowser(t)
	assert.Equal(t, bubbletea.ThemeDark, b.Theme())

	press(b, tea.KeyCtrlT)
	assert.Equal(t, bubbletea.ThemeLight, b.Theme())

	press(b, tea.KeyCtrlT)
	assert.Equal(t, bubbletea.ThemeDark, b.Theme())
}

func TestBrowser_Quit(t *testing.T) {
	t.Parallel()

	b := newBrowser(t)

	cmd := press(b, tea.KeyEsc)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, b.View())
}

func TestTheme_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dark", bubbletea.ThemeDark.String())
	assert.Equal(t, "light", bubbletea.ThemeLight.String())
}
