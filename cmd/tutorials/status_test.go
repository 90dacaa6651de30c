package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/tutorials"
	main "github.com/fwojciec/tutorials/cmd/tutorials"
	"github.com/fwojciec/tutorials/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders a table row per repository", func(t *testing.T) {
		t.Parallel()

		var requested []string
		repos := &mock.RepoService{
			FindRepoFn: func(_ context.Context, owner, name string) (*tutorials.RepoStats, error) {
				requested = append(requested, owner+"/"+name)
				return &tutorials.RepoStats{
					Name:       owner + "/" + name,
					Language:   "R",
					OpenIssues: 12,
					Watchers:   340,
					Stargazers: 5100,
					Forks:      1700,
					CreatedAt:  time.Date(2012, 6, 20, 0, 0, 0, 0, time.UTC),
					UpdatedAt:  time.Date(2019, 11, 5, 0, 0, 0, 0, time.UTC),
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Repos:  repos,
		}

		err := (&main.StatusCmd{Repos: []string{"rstudio/shiny"}}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"rstudio/shiny"}, requested)
		output := stdout.String()
		assert.Contains(t, output, "Repo")
		assert.Contains(t, output, "rstudio/shiny")
		assert.Contains(t, output, "5100")
		assert.Contains(t, output, "20 Jun 2012")
		assert.Contains(t, output, "5 Nov 2019")
	})

	t.Run("rejects malformed repository names", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Repos:  &mock.RepoService{},
		}

		err := (&main.StatusCmd{Repos: []string{"shiny"}}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, tutorials.EINVALID, tutorials.ErrorCode(err))
		assert.Contains(t, stderr.String(), "OWNER/NAME")
	})

	t.Run("reports unknown repositories", func(t *testing.T) {
		t.Parallel()

		repos := &mock.RepoService{
			FindRepoFn: func(_ context.Context, _, _ string) (*tutorials.RepoStats, error) {
				return nil, tutorials.Errorf(tutorials.ENOTFOUND, "repository not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Repos:  repos,
		}

		err := (&main.StatusCmd{Repos: []string{"nobody/nothing"}}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, tutorials.ENOTFOUND, tutorials.ErrorCode(err))
		assert.Contains(t, stderr.String(), `repository "nobody/nothing" not found`)
	})
}
