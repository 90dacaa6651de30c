package tutorials_test

import (
	"testing"
	"time"

	"github.com/fwojciec/tutorials"
	"github.com/stretchr/testify/assert"
)

func TestFormatEntries(t *testing.T) {
	t.Parallel()

	t.Run("formats single entry with all fields", func(t *testing.T) {
		t.Parallel()

		entries := []tutorials.PostEntry{
			{
				Slug:     "drag-and-drop",
				Title:    "Drag and Drop",
				Date:     "2019-10-27",
				Abstract: "Build a drag and drop demo.",
				Keywords: []string{"css", "js"},
			},
		}

		result := tutorials.FormatEntries(entries)

		expected := "## Drag and Drop (2019-10-27)\nBuild a drag and drop demo.\nkeywords: css, js\n/drag-and-drop"
		assert.Equal(t, expected, result)
	})

	t.Run("uses slug when title is empty", func(t *testing.T) {
		t.Parallel()

		result := tutorials.FormatEntries([]tutorials.PostEntry{{Slug: "untitled"}})

		assert.Equal(t, "## untitled\n/untitled", result)
	})

	t.Run("formats multiple entries with blank line separator", func(t *testing.T) {
		t.Parallel()

		entries := []tutorials.PostEntry{
			{Slug: "one", Title: "One"},
			{Slug: "two", Title: "Two"},
		}

		result := tutorials.FormatEntries(entries)

		assert.Equal(t, "## One\n/one\n\n## Two\n/two", result)
	})

	t.Run("returns empty string for empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tutorials.FormatEntries([]tutorials.PostEntry{}))
	})

	t.Run("returns empty string for nil slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tutorials.FormatEntries(nil))
	})
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5 Nov 2019", tutorials.FormatDate(time.Date(2019, 11, 5, 8, 0, 0, 0, time.UTC)))
	assert.Empty(t, tutorials.FormatDate(time.Time{}))
}
