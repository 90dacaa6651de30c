package main

import (
	"fmt"

	"github.com/fwojciec/tutorials"
)

// Run executes the keywords command.
func (c *KeywordsCmd) Run(deps *Dependencies) error {
	keywords, err := deps.Posts.Keywords(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tutorials.ErrorMessage(err))
		return err
	}

	if len(keywords) == 0 {
		fmt.Fprintln(deps.Stdout, "No keywords found.")
		return nil
	}

	for _, k := range keywords {
		fmt.Fprintln(deps.Stdout, k)
	}
	return nil
}
