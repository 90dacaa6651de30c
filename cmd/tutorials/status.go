package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fwojciec/tutorials"
)

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	rows := make([][]string, 0, len(c.Repos))
	for _, full := range c.Repos {
		owner, name, ok := strings.Cut(full, "/")
		if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
			fmt.Fprintf(deps.Stderr, "error: invalid repository %q, expected OWNER/NAME\n", full)
			return tutorials.Errorf(tutorials.EINVALID, "invalid repository %q", full)
		}

		stats, err := deps.Repos.FindRepo(deps.Ctx, owner, name)
		if err != nil {
			if tutorials.ErrorCode(err) == tutorials.ENOTFOUND {
				fmt.Fprintf(deps.Stderr, "error: repository %q not found\n", full)
				return err
			}
			fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
			return err
		}

		rows = append(rows, []string{
			stats.Name,
			stats.Language,
			strconv.Itoa(stats.OpenIssues),
			strconv.Itoa(stats.Watchers),
			strconv.Itoa(stats.Stargazers),
			strconv.Itoa(stats.Forks),
			tutorials.FormatDate(stats.CreatedAt),
			tutorials.FormatDate(stats.UpdatedAt),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Repo", "Language", "Open Issues", "Watchers", "Stars", "Forks", "Created", "Updated").
		Rows(rows...)
	fmt.Fprintln(deps.Stdout, t.Render())
	return nil
}
