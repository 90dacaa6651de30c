package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/tutorials"
	"github.com/fwojciec/tutorials/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Site Output
// The store uses temp directory for atomic updates

func TestFileStore_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory
	base := t.TempDir()
	store := fs.NewFileStore(base, "public")

	// When I save a page
	err := store.Save(context.Background(), &tutorials.Page{
		Path: "drag-and-drop/index.html",
		HTML: "<h1>Drag and Drop</h1>",
	})

	// Then no error occurs
	require.NoError(t, err)

	// And the file exists in the temp directory (not final)
	tempPath := filepath.Join(base, "public.tmp", "drag-and-drop", "index.html")
	_, err = os.Stat(tempPath)
	require.NoError(t, err, "file should exist in temp directory")

	// And final directory does not exist yet
	_, err = os.Stat(filepath.Join(base, "public"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestFileStore_CommitMovesFromTempToFinal(t *testing.T) {
	t.Parallel()

	// Given a store with saved pages
	base := t.TempDir()
	store := fs.NewFileStore(base, "public")
	err := store.Save(context.Background(), &tutorials.Page{Path: "index.html", HTML: "<main></main>"})
	require.NoError(t, err)

	// When I commit
	err = store.Commit()

	// Then no error occurs
	require.NoError(t, err)

	// And final directory holds the page content
	content, err := os.ReadFile(filepath.Join(base, "public", "index.html"))
	require.NoError(t, err, "file should exist in final directory after commit")
	assert.Equal(t, "<main></main>", string(content))

	// And temp directory is gone
	_, err = os.Stat(filepath.Join(base, "public.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestFileStore_CommitReplacesPreviousOutput(t *testing.T) {
	t.Parallel()

	// Given a previous build with a page that no longer exists
	base := t.TempDir()
	first := fs.NewFileStore(base, "public")
	require.NoError(t, first.Save(context.Background(), &tutorials.Page{Path: "old/index.html", HTML: "old"}))
	require.NoError(t, first.Commit())

	// When a new build commits
	second := fs.NewFileStore(base, "public")
	require.NoError(t, second.Save(context.Background(), &tutorials.Page{Path: "index.html", HTML: "new"}))
	require.NoError(t, second.Commit())

	// Then the stale page is gone
	_, err := os.Stat(filepath.Join(base, "public", "old", "index.html"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_AbortCleansUpTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store with saved pages
	base := t.TempDir()
	store := fs.NewFileStore(base, "public")
	err := store.Save(context.Background(), &tutorials.Page{Path: "index.html", HTML: "x"})
	require.NoError(t, err)

	// When I abort
	err = store.Abort()

	// Then no error occurs
	require.NoError(t, err)

	// And temp directory is cleaned up
	_, err = os.Stat(filepath.Join(base, "public.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after abort")

	// And final directory doesn't exist
	_, err = os.Stat(filepath.Join(base, "public"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist after abort")
}

func TestFileStore_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	// Given a store
	base := t.TempDir()
	store := fs.NewFileStore(base, "public")

	// When I try to save a page with path traversal
	err := store.Save(context.Background(), &tutorials.Page{
		Path: "../../../etc/passwd",
		HTML: "bad content",
	})

	// Then an EINVALID error is returned
	require.Error(t, err, "path traversal should be rejected")
	assert.Equal(t, tutorials.EINVALID, tutorials.ErrorCode(err))
	assert.Contains(t, err.Error(), "path traversal")
}

func TestFileStore_RejectsEmptyPath(t *testing.T) {
	t.Parallel()

	store := fs.NewFileStore(t.TempDir(), "public")

	err := store.Save(context.Background(), &tutorials.Page{Path: "/", HTML: "x"})

	assert.Equal(t, tutorials.EINVALID, tutorials.ErrorCode(err))
}
