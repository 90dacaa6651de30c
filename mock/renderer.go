package mock

import "github.com/fwojciec/tutorials"

var (
	_ tutorials.Renderer      = (*Renderer)(nil)
	_ tutorials.TextExtractor = (*TextExtractor)(nil)
	_ tutorials.EntryRenderer = (*EntryRenderer)(nil)
)

// Renderer is a mock implementation of tutorials.Renderer.
type Renderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}

// TextExtractor is a mock implementation of tutorials.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

// EntryRenderer is a mock implementation of tutorials.EntryRenderer.
type EntryRenderer struct {
	RenderEntryFn func(entry tutorials.PostEntry) (string, error)
}

func (r *EntryRenderer) RenderEntry(entry tutorials.PostEntry) (string, error) {
	return r.RenderEntryFn(entry)
}
