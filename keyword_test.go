package tutorials_test

import (
	"testing"

	"github.com/fwojciec/tutorials"
	"github.com/stretchr/testify/assert"
)

func TestKeywords(t *testing.T) {
	t.Parallel()

	t.Run("returns distinct keywords sorted", func(t *testing.T) {
		t.Parallel()

		entries := []tutorials.PostEntry{
			{ID: "1", Keywords: []string{"shiny", "css", "js"}},
			{ID: "2", Keywords: []string{"r", "css"}},
			{ID: "3", Keywords: []string{"js", ""}},
		}

		assert.Equal(t, []string{"css", "js", "r", "shiny"}, tutorials.Keywords(entries))
	})

	t.Run("returns nil without keywords", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, tutorials.Keywords(nil))
		assert.Nil(t, tutorials.Keywords([]tutorials.PostEntry{{ID: "1"}}))
	})
}
