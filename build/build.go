// Package build turns Markdown post sources into stored posts and, when
// configured, a static site.
package build

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/tutorials"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of sources processed at once when
// Builder.Concurrency is not set.
const DefaultConcurrency = 4

// Builder orchestrates the content pipeline: read, parse, render, extract
// searchable text, store. Site and Pages are optional; when both are set
// the static site is written after the posts are stored.
type Builder struct {
	Sources     tutorials.SourceReader
	Parser      tutorials.FrontmatterParser
	Renderer    tutorials.Renderer
	Entries     tutorials.EntryRenderer
	Extractor   tutorials.TextExtractor
	Posts       tutorials.PostService
	Site        tutorials.SiteRenderer
	Pages       tutorials.PageStore
	Concurrency int

	// Force rebuilds posts whose source is unchanged.
	Force bool
}

// Result holds the outcome of a build.
type Result struct {
	Built   int
	Skipped int
	Failed  int
	Deleted int
	Pages   int
	Bytes   int
}

// ProgressEvent reports progress during a build.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting build progress.
type ProgressFunc func(event ProgressEvent)

// sourceResult holds the outcome of processing a single source.
type sourceResult struct {
	position int
	path     string
	post     *tutorials.Post
	skipped  bool
	err      error
}

// Build processes every source and stores the resulting posts. Sources that
// fail are counted and reported through progress; they do not stop the build.
// Stored posts whose source no longer exists are deleted.
func (b *Builder) Build(ctx context.Context, progress ProgressFunc) (*Result, error) {
	sources, err := b.Sources.ReadSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}

	stored, err := b.Posts.FindPosts(ctx, tutorials.PostFilter{})
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	existing := make(map[string]*tutorials.Post, len(stored))
	for _, p := range stored {
		existing[p.Slug] = p
	}

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan sourceResult, len(sources))
	var completed atomic.Int64
	total := len(sources)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, src := range sources {
			g.Go(func() error {
				resultCh <- b.processSource(gctx, i, src, existing)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in source order
	results := make([]sourceResult, len(sources))
	for r := range resultCh {
		results[r.position] = r

		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Add(1)),
			Total:     total,
			Path:      r.path,
		}
		switch {
		case r.err != nil:
			event.Type = ProgressFailed
			event.Error = r.err
		case r.skipped:
			event.Type = ProgressSkipped
		}
		if progress != nil {
			progress(event)
		}
	}

	var result Result
	seenSlugs := make(map[string]string)
	failedPaths := make(map[string]bool)
	for _, r := range results {
		if r.err != nil {
			failedPaths[r.path] = true
			result.Failed++
			continue
		}

		if other, ok := seenSlugs[r.post.Slug]; ok {
			failedPaths[r.path] = true
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:  ProgressFailed,
					Total: total,
					Path:  r.path,
					Error: tutorials.Errorf(tutorials.ECONFLICT, "slug %q already used by %s", r.post.Slug, other),
				})
			}
			continue
		}
		seenSlugs[r.post.Slug] = r.path

		if r.skipped {
			result.Skipped++
			continue
		}

		if err := b.Posts.UpsertPost(ctx, r.post); err != nil {
			failedPaths[r.path] = true
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Total: total, Path: r.path, Error: err})
			}
			continue
		}
		result.Built++
		result.Bytes += len(r.post.HTML)
	}

	for _, p := range stored {
		if _, ok := seenSlugs[p.Slug]; ok {
			continue
		}
		// A failed source keeps its previous post.
		if failedPaths[p.SourcePath] {
			continue
		}
		if err := b.Posts.DeletePost(ctx, p.ID); err != nil {
			return nil, fmt.Errorf("delete post %s: %w", p.Slug, err)
		}
		result.Deleted++
	}

	if b.Site != nil && b.Pages != nil {
		pages, err := b.writeSite(ctx)
		if err != nil {
			return nil, fmt.Errorf("write site: %w", err)
		}
		result.Pages = pages
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &result, nil
}

// processSource parses, renders and indexes a single source. An unchanged
// source yields the stored post marked as skipped.
func (b *Builder) processSource(ctx context.Context, position int, src *tutorials.Source, existing map[string]*tutorials.Post) sourceResult {
	result := sourceResult{position: position, path: src.Path}

	if err := ctx.Err(); err != nil {
		result.err = err
		return result
	}

	fm, body, err := b.Parser.Parse(src.Content)
	if err != nil {
		result.err = err
		return result
	}

	slug := fm.Slug
	if slug == "" {
		slug = SlugFromPath(src.Path)
	}
	if slug == "" {
		result.err = tutorials.Errorf(tutorials.EINVALID, "cannot derive slug from %q", src.Path)
		return result
	}

	hash := ComputeHash(src.Content)
	if prev, ok := existing[slug]; ok && !b.Force && prev.ContentHash == hash && prev.SourcePath == src.Path {
		result.post = prev
		result.skipped = true
		return result
	}

	html, err := b.Renderer.Render(body)
	if err != nil {
		result.err = fmt.Errorf("render: %w", err)
		return result
	}

	post := &tutorials.Post{
		Slug:        slug,
		SourcePath:  src.Path,
		Title:       fm.Title,
		Abstract:    fm.Abstract,
		Date:        fm.Date,
		Keywords:    fm.Keywords,
		Body:        body,
		HTML:        html,
		ContentHash: hash,
	}

	markup, err := b.Entries.RenderEntry(post.Entry())
	if err != nil {
		result.err = fmt.Errorf("render entry: %w", err)
		return result
	}
	text, err := b.Extractor.ExtractText(markup)
	if err != nil {
		result.err = fmt.Errorf("extract text: %w", err)
		return result
	}
	post.SearchableText = text

	result.post = post
	return result
}

// writeSite renders the index, one page per post and one page per keyword,
// then commits them. Any failure aborts the pending pages.
func (b *Builder) writeSite(ctx context.Context) (n int, err error) {
	defer func() {
		if err != nil {
			_ = b.Pages.Abort()
		}
	}()

	posts, err := b.Posts.FindPosts(ctx, tutorials.PostFilter{})
	if err != nil {
		return 0, err
	}
	entries := tutorials.Entries(posts)
	keywords := tutorials.Keywords(entries)

	save := func(page *tutorials.Page, err error) error {
		if err != nil {
			return err
		}
		if err := b.Pages.Save(ctx, page); err != nil {
			return err
		}
		n++
		return nil
	}

	if err := save(b.Site.RenderIndex(entries, keywords)); err != nil {
		return 0, err
	}
	for _, p := range posts {
		if err := save(b.Site.RenderPost(p)); err != nil {
			return 0, err
		}
	}

	engine := tutorials.NewFilterEngine()
	keywordPaths := make(map[string]string, len(keywords))
	for _, k := range keywords {
		engine.SelectKeyword(k)
		visible := tutorials.VisibleEntries(entries, engine.Evaluate(entries))
		page, err := b.Site.RenderKeyword(k, visible, keywords)
		if err != nil {
			return 0, err
		}
		if other, ok := keywordPaths[page.Path]; ok {
			return 0, tutorials.Errorf(tutorials.ECONFLICT, "keywords %q and %q both map to %s", other, k, page.Path)
		}
		keywordPaths[page.Path] = k
		if err := save(page, nil); err != nil {
			return 0, err
		}
	}

	if err := b.Pages.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

// SlugFromPath derives a post slug from its source path: the extension is
// dropped and a trailing "index" names its directory.
// "shiny/index.md" and "shiny.md" both yield "shiny".
func SlugFromPath(p string) string {
	p = strings.TrimSuffix(p, path.Ext(p))
	if path.Base(p) == "index" {
		p = path.Dir(p)
	}
	if p == "." {
		return ""
	}
	return strings.Trim(p, "/")
}
