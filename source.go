package tutorials

import "context"

// Source is a raw Markdown post file read from a content directory.
type Source struct {
	// Path is relative to the content directory, using forward slashes.
	Path    string
	Content []byte
}

// SourceReader reads post sources from a content location.
type SourceReader interface {
	// ReadSources returns all post sources in a stable order.
	ReadSources(ctx context.Context) ([]*Source, error)
}

// Frontmatter holds the metadata block at the top of a post source.
type Frontmatter struct {
	Title    string
	Abstract string
	Date     string
	Keywords []string
	Slug     string
}

// FrontmatterParser splits a post source into metadata and Markdown body.
type FrontmatterParser interface {
	// Parse returns the frontmatter and the remaining Markdown body.
	// Returns EINVALID if the frontmatter is malformed or lacks a title.
	Parse(content []byte) (*Frontmatter, string, error)
}
