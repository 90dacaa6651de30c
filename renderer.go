package tutorials

// Renderer converts Markdown to HTML.
type Renderer interface {
	// Render transforms a Markdown body into an HTML fragment.
	Render(markdown string) (string, error)
}

// TextExtractor reduces HTML to the text a reader sees.
type TextExtractor interface {
	// ExtractText returns the visible text of the HTML fragment with
	// separate elements joined by single spaces.
	ExtractText(html string) (string, error)
}

// EntryRenderer renders the listing markup of a post entry, the same markup
// the post list shows for it.
type EntryRenderer interface {
	RenderEntry(entry PostEntry) (string, error)
}
