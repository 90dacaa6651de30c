package mock

import (
	"context"

	"github.com/fwojciec/tutorials"
)

var (
	_ tutorials.SourceReader      = (*SourceReader)(nil)
	_ tutorials.FrontmatterParser = (*FrontmatterParser)(nil)
)

// SourceReader is a mock implementation of tutorials.SourceReader.
type SourceReader struct {
	ReadSourcesFn func(ctx context.Context) ([]*tutorials.Source, error)
}

func (r *SourceReader) ReadSources(ctx context.Context) ([]*tutorials.Source, error) {
	return r.ReadSourcesFn(ctx)
}

// FrontmatterParser is a mock implementation of tutorials.FrontmatterParser.
type FrontmatterParser struct {
	ParseFn func(content []byte) (*tutorials.Frontmatter, string, error)
}

func (p *FrontmatterParser) Parse(content []byte) (*tutorials.Frontmatter, string, error) {
	return p.ParseFn(content)
}
