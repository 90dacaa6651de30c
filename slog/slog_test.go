package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/tutorials"
	"github.com/fwojciec/tutorials/mock"
	tutslog "github.com/fwojciec/tutorials/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Renderer{
			RenderFn: func(markdown string) (string, error) {
				return "<h1>Hi</h1>", nil
			},
		}

		r := tutslog.NewLoggingRenderer(inner, newLogger(&buf))
		html, err := r.Render("# Hi")

		require.NoError(t, err)
		assert.Equal(t, "<h1>Hi</h1>", html)
		output := buf.String()
		assert.Contains(t, output, "render markdown")
		assert.Contains(t, output, "in=4")
		assert.Contains(t, output, "out=11")
		assert.Contains(t, output, "duration=")
	})

	t.Run("stays quiet above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Renderer{
			RenderFn: func(string) (string, error) { return "", nil },
		}

		_, err := tutslog.NewLoggingRenderer(inner, logger).Render("x")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingSourceReader_ReadSources(t *testing.T) {
	t.Parallel()

	t.Run("logs count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SourceReader{
			ReadSourcesFn: func(context.Context) ([]*tutorials.Source, error) {
				return []*tutorials.Source{{Path: "a.md"}, {Path: "b.md"}}, nil
			},
		}

		sources, err := tutslog.NewLoggingSourceReader(inner, newLogger(&buf)).ReadSources(context.Background())

		require.NoError(t, err)
		assert.Len(t, sources, 2)
		assert.Contains(t, buf.String(), "read sources")
		assert.Contains(t, buf.String(), "count=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SourceReader{
			ReadSourcesFn: func(context.Context) ([]*tutorials.Source, error) {
				return nil, errors.New("permission denied")
			},
		}

		_, err := tutslog.NewLoggingSourceReader(inner, newLogger(&buf)).ReadSources(context.Background())

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"permission denied\"")
	})
}

func TestLoggingRepoService_FindRepo(t *testing.T) {
	t.Parallel()

	t.Run("logs repository name", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RepoService{
			FindRepoFn: func(_ context.Context, owner, name string) (*tutorials.RepoStats, error) {
				return &tutorials.RepoStats{Name: name}, nil
			},
		}

		stats, err := tutslog.NewLoggingRepoService(inner, newLogger(&buf)).FindRepo(context.Background(), "octo", "hello")

		require.NoError(t, err)
		assert.Equal(t, "hello", stats.Name)
		assert.Contains(t, buf.String(), "find repo")
		assert.Contains(t, buf.String(), "repo=octo/hello")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RepoService{
			FindRepoFn: func(context.Context, string, string) (*tutorials.RepoStats, error) {
				return nil, errors.New("rate limited")
			},
		}

		_, err := tutslog.NewLoggingRepoService(inner, newLogger(&buf)).FindRepo(context.Background(), "o", "r")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"rate limited\"")
	})
}
