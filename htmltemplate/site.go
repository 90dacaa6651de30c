// Package htmltemplate renders post entries and static site pages with
// html/template.
package htmltemplate

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
	"unicode"

	"github.com/fwojciec/tutorials"
)

// Ensure SiteRenderer implements tutorials.SiteRenderer at compile time.
var _ tutorials.SiteRenderer = (*SiteRenderer)(nil)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("site").Funcs(template.FuncMap{
	"join":        strings.Join,
	"keywordSlug": KeywordSlug,
}).ParseFS(templateFS, "templates/*.html"))

// DefaultSiteTitle is the site title used when none is configured.
const DefaultSiteTitle = "shinyTutorials"

// latestCount is the number of featured entries on the index page.
const latestCount = 2

// SiteRenderer renders entry markup and static site pages.
type SiteRenderer struct {
	siteTitle string
}

// Option configures a SiteRenderer.
type Option func(*SiteRenderer)

// WithSiteTitle sets the title shown in the page header.
func WithSiteTitle(title string) Option {
	return func(r *SiteRenderer) {
		r.siteTitle = title
	}
}

// NewSiteRenderer creates a new SiteRenderer.
func NewSiteRenderer(opts ...Option) *SiteRenderer {
	r := &SiteRenderer{siteTitle: DefaultSiteTitle}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type listPage struct {
	SiteTitle string
	Title     string
	Heading   string
	Latest    []tutorials.PostEntry
	Entries   []tutorials.PostEntry
	Keywords  []string
	Active    string
	NoResults string
}

type postPage struct {
	SiteTitle string
	Title     string
	Post      *tutorials.Post
	Body      template.HTML
}

// RenderEntry renders the listing markup of a single entry.
func (r *SiteRenderer) RenderEntry(entry tutorials.PostEntry) (string, error) {
	return execute("entry", entry)
}

// RenderIndex renders index.html with the latest entries, the keyword menu
// and every entry in the given order.
func (r *SiteRenderer) RenderIndex(entries []tutorials.PostEntry, keywords []string) (*tutorials.Page, error) {
	html, err := execute("index", listPage{
		SiteTitle: r.siteTitle,
		Title:     "home",
		Heading:   "Available Tutorials",
		Latest:    tutorials.LatestEntries(entries, latestCount),
		Entries:   entries,
		Keywords:  keywords,
		NoResults: tutorials.NoResultsMessage,
	})
	if err != nil {
		return nil, err
	}
	return &tutorials.Page{Path: "index.html", HTML: html}, nil
}

// RenderKeyword renders keywords/<slug>/index.html listing the entries
// visible when keyword is selected.
func (r *SiteRenderer) RenderKeyword(keyword string, entries []tutorials.PostEntry, keywords []string) (*tutorials.Page, error) {
	slug := KeywordSlug(keyword)
	if slug == "" {
		return nil, tutorials.Errorf(tutorials.EINVALID, "keyword %q has no usable characters", keyword)
	}

	html, err := execute("index", listPage{
		SiteTitle: r.siteTitle,
		Title:     keyword,
		Heading:   "Tutorials: " + keyword,
		Entries:   entries,
		Keywords:  keywords,
		Active:    keyword,
		NoResults: tutorials.NoResultsMessage,
	})
	if err != nil {
		return nil, err
	}
	return &tutorials.Page{Path: "keywords/" + slug + "/index.html", HTML: html}, nil
}

// RenderPost renders <slug>/index.html. The post HTML is trusted renderer
// output and is inserted unescaped.
func (r *SiteRenderer) RenderPost(post *tutorials.Post) (*tutorials.Page, error) {
	if err := post.Validate(); err != nil {
		return nil, err
	}

	html, err := execute("post", postPage{
		SiteTitle: r.siteTitle,
		Title:     post.Title,
		Post:      post,
		Body:      template.HTML(post.HTML),
	})
	if err != nil {
		return nil, err
	}
	return &tutorials.Page{Path: post.Slug + "/index.html", HTML: html}, nil
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", tutorials.Errorf(tutorials.EINTERNAL, "render %s: %v", name, err)
	}
	return buf.String(), nil
}

// KeywordSlug lowercases keyword and replaces each run of characters other
// than letters and digits with a single hyphen.
func KeywordSlug(keyword string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(keyword) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
			continue
		}
		hyphen = true
	}
	return b.String()
}
