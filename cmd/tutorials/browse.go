package main

import (
	"fmt"

	"github.com/fwojciec/tutorials"
	"github.com/fwojciec/tutorials/bubbletea"
)

// Run executes the browse command.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	posts, err := deps.Posts.FindPosts(deps.Ctx, tutorials.PostFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tutorials.ErrorMessage(err))
		return err
	}

	if len(posts) == 0 {
		fmt.Fprintln(deps.Stdout, "No posts found. Use 'tutorials build' to add some.")
		return nil
	}

	session := tutorials.NewSession(tutorials.Entries(posts), filterOptions(c.Legacy)...)
	theme := bubbletea.ThemeDark
	if c.Light {
		theme = bubbletea.ThemeLight
	}

	if err := deps.RunTUI(bubbletea.NewBrowser(session, bubbletea.WithTheme(theme))); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}
