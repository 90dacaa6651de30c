package main

import (
	"fmt"

	"github.com/fwojciec/tutorials"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	posts, err := deps.Posts.FindPosts(deps.Ctx, tutorials.PostFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tutorials.ErrorMessage(err))
		return err
	}

	if len(posts) == 0 {
		fmt.Fprintln(deps.Stdout, "No posts found. Use 'tutorials build' to add some.")
		return nil
	}

	entries := tutorials.Entries(posts)
	engine := tutorials.NewFilterEngine(filterOptions(c.Legacy)...)
	switch {
	case c.Keyword != "":
		engine.SelectKeyword(c.Keyword)
	case c.Query != "":
		engine.SetQuery(c.Query)
	}

	set := engine.Evaluate(entries)
	if engine.AllHidden(set) {
		fmt.Fprintln(deps.Stdout, tutorials.NoResultsMessage)
		return nil
	}

	fmt.Fprintln(deps.Stdout, tutorials.FormatEntries(tutorials.VisibleEntries(entries, set)))
	return nil
}
