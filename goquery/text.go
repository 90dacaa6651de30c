// Package goquery extracts searchable text from rendered HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tutorials"
	"golang.org/x/net/html"
)

var _ tutorials.TextExtractor = (*TextExtractor)(nil)

// skipSelector matches elements whose content is never shown to readers.
const skipSelector = "script, style, noscript, template"

// TextExtractor reduces HTML to its visible text.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the text nodes of html in document order, with runs of
// whitespace collapsed and separate nodes joined by a single space.
func (e *TextExtractor) ExtractText(htmlContent string) (string, error) {
	if strings.TrimSpace(htmlContent) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", tutorials.Errorf(tutorials.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find(skipSelector).Remove()

	var words []string
	for _, n := range doc.Nodes {
		words = collectText(n, words)
	}
	return strings.Join(words, " "), nil
}

func collectText(n *html.Node, words []string) []string {
	switch n.Type {
	case html.TextNode:
		return append(words, strings.Fields(n.Data)...)
	case html.CommentNode:
		return words
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		words = collectText(c, words)
	}
	return words
}
