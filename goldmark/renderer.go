// Package goldmark renders Markdown post bodies to HTML.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/fwojciec/tutorials"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Ensure Renderer implements tutorials.Renderer at compile time.
var _ tutorials.Renderer = (*Renderer)(nil)

// Renderer wraps goldmark to convert Markdown to HTML.
// Fenced code blocks carry a "language-<lang>" class for client-side
// syntax highlighting.
type Renderer struct {
	md      goldmark.Markdown
	rawHTML bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRawHTML passes raw HTML in Markdown through to the output.
// By default raw HTML is replaced with a comment.
func WithRawHTML() Option {
	return func(r *Renderer) {
		r.rawHTML = true
	}
}

// NewRenderer creates a new Renderer with GitHub Flavored Markdown and
// emoji shortcodes enabled.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}

	var htmlOpts []renderer.Option
	if r.rawHTML {
		htmlOpts = append(htmlOpts, html.WithUnsafe())
	}

	r.md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			emoji.Emoji,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(htmlOpts...),
	)
	return r
}

// Render transforms a Markdown body into an HTML fragment.
func (r *Renderer) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}
