package main

import (
	"fmt"

	"github.com/fwojciec/tutorials"
	"github.com/fwojciec/tutorials/build"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	if deps.Builder == nil {
		fmt.Fprintln(deps.Stderr, "error: build pipeline not configured")
		return tutorials.Errorf(tutorials.EINTERNAL, "build pipeline not configured")
	}

	progress := func(event build.ProgressEvent) {
		switch event.Type {
		case build.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d sources\n", event.Total)
		case build.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.Path, errorText(event.Error))
		}
	}

	result, err := deps.Builder.Build(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Built %d posts (%s), %d unchanged, %d deleted, %d failed\n",
		result.Built, build.FormatBytes(result.Bytes), result.Skipped, result.Deleted, result.Failed)
	if c.Out != "" {
		fmt.Fprintf(deps.Stdout, "  Wrote %d pages to %s\n", result.Pages, c.Out)
	}

	return nil
}

// errorText returns the message of application errors and the full text of
// anything else, so infrastructure failures stay diagnosable.
func errorText(err error) string {
	if tutorials.ErrorCode(err) == tutorials.EINTERNAL {
		return err.Error()
	}
	return tutorials.ErrorMessage(err)
}
