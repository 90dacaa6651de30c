package fs

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/tutorials"
)

// Ensure FileStore implements tutorials.PageStore at compile time.
var _ tutorials.PageStore = (*FileStore)(nil)

// FileStore implements tutorials.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the page below the temporary directory.
func (s *FileStore) Save(ctx context.Context, page *tutorials.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := pagePath(page.Path)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(page.HTML), 0644)
}

// pagePath converts a slash-separated page path to a local path.
// Paths that could leave the site root are rejected.
func pagePath(p string) (string, error) {
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", tutorials.Errorf(tutorials.EINVALID, "path traversal in page path %q", p)
		}
	}
	cleaned := path.Clean(strings.TrimPrefix(p, "/"))
	if cleaned == "." || cleaned == "/" {
		return "", tutorials.Errorf(tutorials.EINVALID, "page path required")
	}
	return filepath.FromSlash(cleaned), nil
}

// Commit replaces the output directory with the temporary directory.
func (s *FileStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the temporary directory.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
