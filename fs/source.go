// Package fs reads post sources from and writes site pages to the local
// file system.
package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/tutorials"
)

// Ensure SourceReader implements tutorials.SourceReader at compile time.
var _ tutorials.SourceReader = (*SourceReader)(nil)

// DraftPrefix marks post files that are left out of builds unless drafts
// are included.
const DraftPrefix = "draft-"

// SourceReader reads Markdown post sources below a content directory.
type SourceReader struct {
	dir    string
	drafts bool
}

// SourceOption configures a SourceReader.
type SourceOption func(*SourceReader)

// WithDrafts includes draft-* files.
func WithDrafts() SourceOption {
	return func(r *SourceReader) {
		r.drafts = true
	}
}

// NewSourceReader creates a SourceReader for the content directory dir.
func NewSourceReader(dir string, opts ...SourceOption) *SourceReader {
	r := &SourceReader{dir: dir}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadSources returns every *.md file below the content directory, sorted
// by path. Hidden directories are skipped.
func (r *SourceReader) ReadSources(ctx context.Context) ([]*tutorials.Source, error) {
	info, err := os.Stat(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, tutorials.Errorf(tutorials.ENOTFOUND, "content directory %q not found", r.dir)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, tutorials.Errorf(tutorials.EINVALID, "content path %q is not a directory", r.dir)
	}

	var sources []*tutorials.Source
	err = filepath.WalkDir(r.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if path != r.dir && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(name), ".md") {
			return nil
		}
		if !r.drafts && strings.HasPrefix(name, DraftPrefix) {
			return nil
		}

		rel, err := filepath.Rel(r.dir, path)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		sources = append(sources, &tutorials.Source{
			Path:    filepath.ToSlash(rel),
			Content: content,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Path < sources[j].Path
	})
	return sources, nil
}
