package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/tutorials"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	post, err := deps.Posts.FindPostBySlug(deps.Ctx, c.Slug)
	if err != nil {
		if tutorials.ErrorCode(err) == tutorials.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: post %q not found. Use 'tutorials list' to see available posts.\n", c.Slug)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", tutorials.ErrorMessage(err))
		return err
	}

	if c.HTML {
		fmt.Fprintln(deps.Stdout, post.HTML)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "# %s\n", post.Title)
	var meta []string
	if post.Date != "" {
		meta = append(meta, post.Date)
	}
	if len(post.Keywords) > 0 {
		meta = append(meta, strings.Join(post.Keywords, ", "))
	}
	if len(meta) > 0 {
		fmt.Fprintln(deps.Stdout, strings.Join(meta, " | "))
	}
	if post.Abstract != "" {
		fmt.Fprintf(deps.Stdout, "\n%s\n", post.Abstract)
	}
	fmt.Fprintf(deps.Stdout, "\n%s\n", strings.TrimSpace(post.Body))
	return nil
}
