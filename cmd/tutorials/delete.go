package main

import (
	"fmt"

	"github.com/fwojciec/tutorials"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return tutorials.Errorf(tutorials.EINVALID, "use --force to confirm deletion")
	}

	post, err := deps.Posts.FindPostBySlug(deps.Ctx, c.Slug)
	if err != nil {
		if tutorials.ErrorCode(err) == tutorials.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: post %q not found. Use 'tutorials list' to see available posts.\n", c.Slug)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", tutorials.ErrorMessage(err))
		return err
	}

	if err := deps.Posts.DeletePost(deps.Ctx, post.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tutorials.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted post %q\n", post.Slug)
	return nil
}
