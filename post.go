package tutorials

import (
	"context"
	"time"
)

// Post represents a built tutorial post.
type Post struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	SourcePath     string    `json:"sourcePath"`
	Title          string    `json:"title"`
	Abstract       string    `json:"abstract"`
	Date           string    `json:"date"` // display string, never parsed
	Keywords       []string  `json:"keywords"`
	Body           string    `json:"body"` // Markdown
	HTML           string    `json:"html"`
	SearchableText string    `json:"searchableText"`
	ContentHash    string    `json:"contentHash"`
	BuiltAt        time.Time `json:"builtAt"`
}

// Validate returns an error if the post contains invalid fields.
func (p *Post) Validate() error {
	if p.Slug == "" {
		return Errorf(EINVALID, "post slug required")
	}
	if p.Title == "" {
		return Errorf(EINVALID, "post title required")
	}
	return nil
}

// Entry returns the listing view of the post consumed by the filter engine.
func (p *Post) Entry() PostEntry {
	keywords := make([]string, len(p.Keywords))
	copy(keywords, p.Keywords)
	return PostEntry{
		ID:             p.ID,
		Slug:           p.Slug,
		Title:          p.Title,
		Abstract:       p.Abstract,
		Date:           p.Date,
		Keywords:       keywords,
		SearchableText: p.SearchableText,
	}
}

// Entries returns the listing views of posts in the same order.
func Entries(posts []*Post) []PostEntry {
	entries := make([]PostEntry, 0, len(posts))
	for _, p := range posts {
		entries = append(entries, p.Entry())
	}
	return entries
}

// PostService represents a service for managing posts.
type PostService interface {
	// UpsertPost creates the post or replaces the post with the same slug.
	UpsertPost(ctx context.Context, post *Post) error

	// FindPostByID retrieves a post by ID.
	// Returns ENOTFOUND if post does not exist.
	FindPostByID(ctx context.Context, id string) (*Post, error)

	// FindPostBySlug retrieves a post by slug.
	// Returns ENOTFOUND if post does not exist.
	FindPostBySlug(ctx context.Context, slug string) (*Post, error)

	// FindPosts retrieves posts matching the filter.
	FindPosts(ctx context.Context, filter PostFilter) ([]*Post, error)

	// Keywords returns the distinct keywords of all posts, sorted.
	Keywords(ctx context.Context) ([]string, error)

	// DeletePost permanently removes a post.
	// Returns ENOTFOUND if post does not exist.
	DeletePost(ctx context.Context, id string) error
}

// SortOrder represents the sort order for post queries.
type SortOrder string

// SortOrder constants for PostFilter.
const (
	SortByTitle   SortOrder = "title"
	SortByBuiltAt SortOrder = "built_at"
)

// PostFilter represents a filter for FindPosts.
type PostFilter struct {
	ID      *string `json:"id"`
	Slug    *string `json:"slug"`
	Keyword *string `json:"keyword"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}
