package mock

import (
	"context"

	"github.com/fwojciec/tutorials"
)

var (
	_ tutorials.SiteRenderer = (*SiteRenderer)(nil)
	_ tutorials.PageStore    = (*PageStore)(nil)
)

// SiteRenderer is a mock implementation of tutorials.SiteRenderer.
type SiteRenderer struct {
	RenderEntryFn   func(entry tutorials.PostEntry) (string, error)
	RenderIndexFn   func(entries []tutorials.PostEntry, keywords []string) (*tutorials.Page, error)
	RenderKeywordFn func(keyword string, entries []tutorials.PostEntry, keywords []string) (*tutorials.Page, error)
	RenderPostFn    func(post *tutorials.Post) (*tutorials.Page, error)
}

func (r *SiteRenderer) RenderEntry(entry tutorials.PostEntry) (string, error) {
	return r.RenderEntryFn(entry)
}

func (r *SiteRenderer) RenderIndex(entries []tutorials.PostEntry, keywords []string) (*tutorials.Page, error) {
	return r.RenderIndexFn(entries, keywords)
}

func (r *SiteRenderer) RenderKeyword(keyword string, entries []tutorials.PostEntry, keywords []string) (*tutorials.Page, error) {
	return r.RenderKeywordFn(keyword, entries, keywords)
}

func (r *SiteRenderer) RenderPost(post *tutorials.Post) (*tutorials.Page, error) {
	return r.RenderPostFn(post)
}

// PageStore is a mock implementation of tutorials.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *tutorials.Page) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *tutorials.Page) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}
