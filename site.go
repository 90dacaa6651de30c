package tutorials

import "context"

// Page is a rendered site page.
type Page struct {
	// Path is relative to the site root, e.g. "index.html".
	Path string
	HTML string
}

// SiteRenderer renders the pages of a static site.
type SiteRenderer interface {
	EntryRenderer

	// RenderIndex renders the listing page with keyword controls.
	RenderIndex(entries []PostEntry, keywords []string) (*Page, error)

	// RenderKeyword renders the listing page of the entries visible when
	// the keyword is selected.
	RenderKeyword(keyword string, entries []PostEntry, keywords []string) (*Page, error)

	// RenderPost renders the page of a single post.
	RenderPost(post *Post) (*Page, error)
}

// PageStore persists pages to storage with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}
