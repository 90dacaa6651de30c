package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/tutorials/bubbletea"
	main "github.com/fwojciec/tutorials/cmd/tutorials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("runs the browser over every post", func(t *testing.T) {
		t.Parallel()

		var model tea.Model
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Posts:  postsService(examplePosts(), nil),
			RunTUI: func(m tea.Model) error {
				model = m
				return nil
			},
		}

		err := (&main.BrowseCmd{Light: true}).Run(deps)

		require.NoError(t, err)
		browser, ok := model.(*bubbletea.Browser)
		require.True(t, ok, "model should be a Browser")
		assert.Equal(t, bubbletea.ThemeLight, browser.Theme())
		assert.Equal(t, 2, browser.Snapshot().Visibility.Count())
	})

	t.Run("does not start the browser without posts", func(t *testing.T) {
		t.Parallel()

		started := false
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Posts:  postsService(nil, nil),
			RunTUI: func(tea.Model) error {
				started = true
				return nil
			},
		}

		err := (&main.BrowseCmd{}).Run(deps)

		require.NoError(t, err)
		assert.False(t, started)
		assert.Contains(t, stdout.String(), "No posts found")
	})

	t.Run("returns program errors", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Posts:  postsService(examplePosts(), nil),
			RunTUI: func(tea.Model) error {
				return errors.New("no tty")
			},
		}

		err := (&main.BrowseCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "no tty")
	})
}
